package http

import (
	"github.com/coladapo/puo-memo-platform/internal/config"
	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/service"
	"github.com/coladapo/puo-memo-platform/internal/store"
)

type Handler struct {
	services *service.Services

	// usageLogs receives one record per authenticated API request; writes
	// happen off the request path.
	usageLogs store.UsageLogRepository

	// version is reported by the root and health endpoints.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, usageLogs store.UsageLogRepository, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		usageLogs: usageLogs,
		version:   cfg.Version,
		logger:    logger,
	}
}
