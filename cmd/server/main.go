package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/music-auth/internal/adapter"
	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/handler"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/internal/server"
	"github.com/MKhiriev/music-auth/internal/service"
	"github.com/MKhiriev/music-auth/internal/store"
	"github.com/MKhiriev/music-auth/models"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("music-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Build = buildInfo
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := storages.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	resolver, err := adapter.NewIdentityResolver(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating identity resolver")
		return
	}

	m := metrics.NewMetrics(prometheus.NewRegistry())
	services := service.NewServices(storages, resolver, *cfg, m, log)

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
