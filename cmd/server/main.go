package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/handler"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/server"
	"github.com/kim-mccallum/recipe-app-api/internal/service"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
	"github.com/kim-mccallum/recipe-app-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	log := logger.NewLogger("recipe-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	storages, err := store.NewStorages(db, cfg.Storage.Files.UploadsDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
