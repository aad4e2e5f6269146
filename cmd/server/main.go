package main

import (
	"context"
	"fmt"

	"github.com/coladapo/puo-memo-platform/internal/config"
	httphandler "github.com/coladapo/puo-memo-platform/internal/handler/http"
	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/server"
	"github.com/coladapo/puo-memo-platform/internal/service"
	"github.com/coladapo/puo-memo-platform/internal/store"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/internal/workers"
	"github.com/coladapo/puo-memo-platform/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("puo-memo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.Auth.TokenSignKey == "" {
		key, err := utils.RandomHex(32)
		if err != nil {
			log.Fatal().Err(err).Msg("error generating ephemeral token sign key")
		}

		cfg.Auth.TokenSignKey = key
		log.Warn().Msg("AUTH_TOKEN_SIGN_KEY is not set, using an ephemeral key: issued tokens will not survive a restart")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, *cfg, log)
	handler := httphandler.NewHandler(services, repositories.UsageLogRepository, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(repositories, log).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
