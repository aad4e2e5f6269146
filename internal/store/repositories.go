package store

import (
	"github.com/coladapo/puo-memo-platform/internal/logger"
)

// Repositories bundles every data-access contract of the application so that
// the service layer can be wired from a single value.
type Repositories struct {
	UserRepository     UserRepository
	APIKeyRepository   APIKeyRepository
	MemoryRepository   MemoryRepository
	UsageLogRepository UsageLogRepository
}

// NewRepositories constructs all repositories over the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		APIKeyRepository:   NewAPIKeyRepository(db, logger),
		MemoryRepository:   NewMemoryRepository(db, logger),
		UsageLogRepository: NewUsageLogRepository(db, logger),
	}
}
