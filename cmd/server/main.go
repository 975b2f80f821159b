package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/handler"
	"github.com/MKhiriev/go-books-api/internal/i18n"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/ratelimit"
	"github.com/MKhiriev/go-books-api/internal/server"
	"github.com/MKhiriev/go-books-api/internal/service"
	"github.com/MKhiriev/go-books-api/internal/store"
	"github.com/MKhiriev/go-books-api/internal/workers"
	"github.com/MKhiriev/go-books-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-books-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Object("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter, err := ratelimit.New(ratelimit.Config{
		Capacity:       cfg.RateLimit.Capacity,
		RefillTokens:   cfg.RateLimit.RefillTokens,
		RefillInterval: cfg.RateLimit.RefillInterval,
		MaxClients:     cfg.RateLimit.MaxClients,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}

	catalog, err := i18n.NewCatalog(cfg.Locale.Default, cfg.Locale.Supported)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading message catalogs")
	}

	handlers, err := handler.NewHandlers(services, limiter, catalog, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	pruner := workers.NewTicker("ratelimit-prune", cfg.RateLimit.PruneInterval, func(ctx context.Context) {
		logger.FromContext(ctx).Debug().Int("pruned", limiter.Prune()).Int("tracked", limiter.Len()).Msg("rate limit buckets pruned")
	}, log)

	srv, err := server.NewServer(handlers, cfg.Server, log, pruner)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
