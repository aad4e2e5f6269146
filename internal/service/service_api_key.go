package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coladapo/puo-memo-platform/internal/config"
	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/store"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/internal/validators"
	"github.com/coladapo/puo-memo-platform/models"
)

// Defaults applied to key issuance requests that omit the fields.
const (
	DefaultKeyName            = "Default API Key"
	DefaultRateLimitPerMinute = 60
	DefaultRateLimitPerHour   = 1000
)

// apiKeyService is the concrete implementation of APIKeyService.
//
// It issues keys of the form <prefix><64 hex chars>, stores only their
// SHA-256 digest, and authenticates presented keys by digest lookup.
type apiKeyService struct {
	// apiKeyRepository persists and looks up key records.
	apiKeyRepository store.APIKeyRepository

	// userRepository resolves the owning account during validation so that
	// downstream handlers get the caller's tier and counters for free.
	userRepository store.UserRepository

	// validator enforces issuance request rules (name length, expiry sign,
	// rate limit sign).
	validator validators.Validator

	// keyPrefix is the non-secret prefix every generated key starts with.
	keyPrefix string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAPIKeyService constructs an APIKeyService wired to the given
// repositories and populated with the key prefix from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAPIKeyService(apiKeyRepository store.APIKeyRepository, userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) APIKeyService {
	return &apiKeyService{
		apiKeyRepository: apiKeyRepository,
		userRepository:   userRepository,
		validator:        validator,
		keyPrefix:        cfg.KeyPrefix,
		logger:           logger,
	}
}

// Create issues a new API key for the given user.
//
// Omitted request fields fall back to defaults: name [DefaultKeyName], rate
// limits [DefaultRateLimitPerMinute] and [DefaultRateLimitPerHour], no
// expiry. When ExpiresInDays is present, expires_at is set that many days
// out; an explicit 0 therefore produces a key that is already expired.
//
// The returned value is the only place the plaintext key ever appears; the
// database holds its SHA-256 digest and the last four characters for display.
func (s *apiKeyService) Create(ctx context.Context, userID string, req models.CreateAPIKeyRequest) (models.APIKeyCreated, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid api key request")
		return models.APIKeyCreated{}, newValidationError(err)
	}

	key, hash, suffix, err := utils.GenerateAPIKey(s.keyPrefix)
	if err != nil {
		log.Err(err).Msg("api key generation failed")
		return models.APIKeyCreated{}, fmt.Errorf("api key generation failed: %w", err)
	}

	record := models.APIKey{
		UserID:             userID,
		KeyHash:            hash,
		KeyPrefix:          s.keyPrefix,
		KeySuffix:          suffix,
		Name:               req.Name,
		RateLimitPerMinute: req.RateLimitPerMinute,
		RateLimitPerHour:   req.RateLimitPerHour,
	}
	if record.Name == "" {
		record.Name = DefaultKeyName
	}
	if record.RateLimitPerMinute == 0 {
		record.RateLimitPerMinute = DefaultRateLimitPerMinute
	}
	if record.RateLimitPerHour == 0 {
		record.RateLimitPerHour = DefaultRateLimitPerHour
	}
	if req.ExpiresInDays != nil {
		record.ExpiresAt = time.Now().UTC().Add(time.Duration(*req.ExpiresInDays) * 24 * time.Hour)
	}

	saved, err := s.apiKeyRepository.CreateKey(ctx, record)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("api key creation ended with error")
		return models.APIKeyCreated{}, fmt.Errorf("api key creation ended with error: %w", err)
	}

	return models.APIKeyCreated{APIKey: saved, Key: key}, nil
}

// Validate authenticates a presented API key.
//
// The key is hashed and looked up by digest; the record must be active and
// unexpired, and its owner must exist and be active. Every failure collapses
// into [ErrAPIKeyInvalid] outward; the distinct causes appear only in logs,
// so responses never reveal whether a key exists, is disabled, or has
// expired.
//
// On success last_used_at is stamped; a failure to stamp is logged and
// ignored, the request proceeds.
func (s *apiKeyService) Validate(ctx context.Context, key string) (models.KeyAuth, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return models.KeyAuth{}, ErrAPIKeyInvalid
	}

	hash := utils.HashAPIKey(key)

	record, err := s.apiKeyRepository.FindKeyByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrAPIKeyNotFound) {
			log.Warn().Msg("unknown api key presented")
			return models.KeyAuth{}, ErrAPIKeyInvalid
		}
		log.Err(err).Msg("api key lookup failed")
		return models.KeyAuth{}, fmt.Errorf("api key lookup failed: %w", err)
	}

	if !record.IsActive {
		log.Warn().Str("keyID", record.ID).Msg("deactivated api key presented")
		return models.KeyAuth{}, ErrAPIKeyInvalid
	}
	// a key is valid strictly before its expiry, same as tokens
	if !record.ExpiresAt.IsZero() && !record.ExpiresAt.After(time.Now().UTC()) {
		log.Warn().Str("keyID", record.ID).Time("expiresAt", record.ExpiresAt).Msg("expired api key presented")
		return models.KeyAuth{}, ErrAPIKeyInvalid
	}

	owner, err := s.userRepository.FindUserByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("keyID", record.ID).Msg("api key references missing user")
			return models.KeyAuth{}, ErrAPIKeyInvalid
		}
		log.Err(err).Str("keyID", record.ID).Msg("api key owner lookup failed")
		return models.KeyAuth{}, fmt.Errorf("api key owner lookup failed: %w", err)
	}
	if !owner.IsActive {
		log.Warn().Str("keyID", record.ID).Str("userID", owner.ID).Msg("api key of deactivated account presented")
		return models.KeyAuth{}, ErrAPIKeyInvalid
	}

	if err := s.apiKeyRepository.TouchLastUsed(ctx, record.ID); err != nil {
		log.Warn().Err(err).Str("keyID", record.ID).Msg("failed to stamp api key last use")
	}

	return models.KeyAuth{
		UserID:             owner.ID,
		User:               owner,
		APIKeyID:           record.ID,
		RateLimitPerMinute: record.RateLimitPerMinute,
		RateLimitPerHour:   record.RateLimitPerHour,
	}, nil
}

// List returns the user's key records, newest first. Hashes stay internal:
// the model hides KeyHash from JSON, so listings expose prefix, suffix and
// limits only.
func (s *apiKeyService) List(ctx context.Context, userID string) ([]models.APIKey, error) {
	log := logger.FromContext(ctx)

	keys, err := s.apiKeyRepository.ListKeysByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("api key listing failed")
		return nil, fmt.Errorf("api key listing failed: %w", err)
	}

	return keys, nil
}
