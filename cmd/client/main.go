package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/client"
	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/service"
	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("offline-store").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("offline-store", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	auth := adapter.NewTokenSource(cfg.App.AuthToken, nil)
	gateway, err := adapter.NewHTTPNetworkGateway(cfg.Adapter, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create network gateway")
	}

	services := service.NewClientServices(localStorage, gateway, auth, cfg.Store, log)

	app, err := client.NewApp(services, cfg.Store, cfg.Workers,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
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
