package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/coladapo/puo-memo-platform/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. A duplicate email surfaces as
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves a user by its unique email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves a user by its identifier.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateLastLogin stamps last_login_at with the current time.
	UpdateLastLogin(ctx context.Context, id string) error

	// ResetMonthlyCounts zeroes monthly_memory_count for every user and
	// returns the number of affected rows. Invoked by the monthly usage
	// worker at each period boundary.
	ResetMonthlyCounts(ctx context.Context) (int64, error)
}

// APIKeyRepository is the data-access contract for API key records.
type APIKeyRepository interface {
	// CreateKey persists a new key record (hash and display fields only,
	// never the plaintext key) and returns it with server-assigned fields.
	CreateKey(ctx context.Context, key models.APIKey) (models.APIKey, error)

	// FindKeyByHash retrieves a key record by the SHA-256 digest of the
	// presented key. Missing rows surface as [ErrAPIKeyNotFound].
	FindKeyByHash(ctx context.Context, keyHash string) (models.APIKey, error)

	// TouchLastUsed stamps last_used_at with the current time.
	TouchLastUsed(ctx context.Context, id string) error

	// ListKeysByUser returns all key records owned by the given user,
	// newest first.
	ListKeysByUser(ctx context.Context, userID string) ([]models.APIKey, error)
}

// MemoryRepository is the data-access contract for memory entities.
// Every operation is scoped by the owning user's id.
type MemoryRepository interface {
	// CreateMemory persists a new memory and increments the owner's usage
	// counters in the same transaction.
	CreateMemory(ctx context.Context, memory models.Memory) (models.Memory, error)

	// SearchMemories returns up to limit memories of the given user whose
	// content matches the query (case-insensitive substring), newest first.
	// An empty query matches everything.
	SearchMemories(ctx context.Context, userID, query string, limit uint64) ([]models.Memory, error)
}

// UsageLogRepository records handled API requests for billing and analytics.
type UsageLogRepository interface {
	InsertUsageLog(ctx context.Context, entry models.UsageLog) error
}
