package service

import (
	"github.com/coladapo/puo-memo-platform/internal/config"
	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/store"
	"github.com/coladapo/puo-memo-platform/internal/validators"
)

type Services struct {
	AuthService   AuthService
	APIKeyService APIKeyService
	MemoryService MemoryService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	apiKeyService := NewAPIKeyService(repositories.APIKeyRepository, repositories.UserRepository, validator, cfg.Auth, logger)

	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, apiKeyService, validator, cfg.Auth, logger),
		APIKeyService: apiKeyService,
		MemoryService: NewMemoryService(repositories.MemoryRepository, validator, logger),
	}
}
