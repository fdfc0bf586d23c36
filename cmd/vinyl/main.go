package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/simonxoxoo/vinyl-app/internal/client"
	"github.com/simonxoxoo/vinyl-app/internal/config"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/service"
	"github.com/simonxoxoo/vinyl-app/internal/store"
	"github.com/simonxoxoo/vinyl-app/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vinyl-app")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, cfg.App, log)
	backupJob := workers.NewBackupJob(services.TransferService, cfg.Storage.BackupDir, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(services, backupJob, cfg.Workers, log)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app run error")
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
