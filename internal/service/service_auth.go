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
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// apiKeyService issues the default API key during registration.
	apiKeyService APIKeyService

	// validator enforces email shape and the password policy on registration.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, apiKeyService APIKeyService, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		apiKeyService:  apiKeyService,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account and issues its default API key.
//
// The request must carry a well-formed email and a password satisfying the
// policy (at least 8 characters with an uppercase letter, a lowercase letter
// and a digit). The password is hashed with bcrypt before persistence; the
// plaintext never leaves this function.
//
// Returns the persisted user and the freshly issued key, or:
//   - A validators error if email or password is rejected.
//   - A wrapped storage error if persistence fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.APIKeyCreated, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid registration request")
		return models.User{}, models.APIKeyCreated{}, newValidationError(err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.APIKeyCreated{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FullName:     req.FullName,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, models.APIKeyCreated{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	defaultKey, err := a.apiKeyService.Create(ctx, registeredUser.ID, models.CreateAPIKeyRequest{})
	if err != nil {
		log.Err(err).Str("userID", registeredUser.ID).Msg("default api key issuance failed")
		return models.User{}, models.APIKeyCreated{}, fmt.Errorf("default api key issuance failed: %w", err)
	}

	return registeredUser, defaultKey, nil
}

// Login authenticates an existing user.
//
// Unknown email and wrong password both collapse into
// [ErrInvalidCredentials] so responses never reveal whether an account
// exists. A deactivated account with correct credentials returns
// [ErrAccountDeactivated].
//
// On success last_login_at is stamped; a failure to stamp is logged and
// ignored, the login still succeeds.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid login request")
		return models.User{}, newValidationError(err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("userID", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Warn().Str("userID", foundUser.ID).Msg("login attempt for deactivated account")
		return models.User{}, ErrAccountDeactivated
	}

	if err := a.userRepository.UpdateLastLogin(ctx, foundUser.ID); err != nil {
		log.Warn().Err(err).Str("userID", foundUser.ID).Msg("failed to stamp last login")
	} else {
		foundUser.LastLoginAt = time.Now().UTC()
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user, embedding the user id
// as "sub" and the email as a private claim.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.IssueToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("userID", user.ID).Msg("token issuance failed")
		return models.Token{}, fmt.Errorf("token issuance failed: %w", err)
	}

	return token, nil
}

// ParseToken verifies a bearer token's signature, issuer and expiry. Every
// failure collapses into [ErrTokenInvalid]; the underlying cause is logged.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// UserByID loads the account behind an authenticated request.
func (a *authService) UserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("userID", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
