package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/models"
)

// apiKeyRepository is the PostgreSQL-backed implementation of
// [APIKeyRepository]. Only the SHA-256 digest of a key ever reaches this
// layer; the plaintext key exists solely in the issuing request's response.
type apiKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAPIKeyRepository constructs an [APIKeyRepository] backed by the provided
// database connection and logger.
func NewAPIKeyRepository(db *DB, logger *logger.Logger) APIKeyRepository {
	logger.Debug().Msg("creating api key repository")
	return &apiKeyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateKey persists a new API key record and returns it with server-assigned
// fields populated (ID, IsActive, CreatedAt).
func (r *apiKeyRepository) CreateKey(ctx context.Context, key models.APIKey) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAPIKey,
		key.UserID,
		key.KeyHash,
		key.KeyPrefix,
		key.KeySuffix,
		key.Name,
		nullTime(key.ExpiresAt),
		key.RateLimitPerMinute,
		key.RateLimitPerHour,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.CreateKey").Msg("error: row is nil")
		return models.APIKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanAPIKey(row)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.CreateKey").Msg("error: scanning error")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindKeyByHash retrieves a key record by the SHA-256 digest of the presented
// key. A missing row surfaces as [ErrAPIKeyNotFound]; the caller decides how
// much of that to reveal outward.
func (r *apiKeyRepository) FindKeyByHash(ctx context.Context, keyHash string) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAPIKeyByHash, keyHash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.FindKeyByHash").Msg("error: row is nil")
		return models.APIKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundKey, err := scanAPIKey(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.APIKey{}, ErrAPIKeyNotFound
		}
		log.Err(err).Str("func", "*apiKeyRepository.FindKeyByHash").Msg("error: scanning error")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundKey, nil
}

// TouchLastUsed stamps last_used_at of the given key with the database's
// current time. Called on every successful key validation.
func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchAPIKeyLastUsed, id); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.TouchLastUsed").Msg("error touching last used")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListKeysByUser returns all key records owned by the given user, newest
// first. A user with no keys yields an empty slice, not an error.
func (r *apiKeyRepository) ListKeysByUser(ctx context.Context, userID string) ([]models.APIKey, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAPIKeysByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.ListKeysByUser").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.APIKey, 0)
	for rows.Next() {
		key, err := scanAPIKey(rows)
		if err != nil {
			log.Err(err).Str("func", "*apiKeyRepository.ListKeysByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.ListKeysByUser").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

// scanAPIKey decodes an api_keys row into a [models.APIKey], converting
// nullable columns at the persistence boundary.
func scanAPIKey(row rowScanner) (models.APIKey, error) {
	var (
		key        models.APIKey
		expiresAt  sql.NullTime
		lastUsedAt sql.NullTime
	)

	err := row.Scan(
		&key.ID,
		&key.UserID,
		&key.KeyHash,
		&key.KeyPrefix,
		&key.KeySuffix,
		&key.Name,
		&expiresAt,
		&key.RateLimitPerMinute,
		&key.RateLimitPerHour,
		&key.IsActive,
		&lastUsedAt,
		&key.CreatedAt,
	)
	if err != nil {
		return models.APIKey{}, err
	}

	if expiresAt.Valid {
		key.ExpiresAt = expiresAt.Time
	}
	if lastUsedAt.Valid {
		key.LastUsedAt = lastUsedAt.Time
	}

	return key, nil
}
