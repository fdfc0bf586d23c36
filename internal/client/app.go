package client

import (
	"context"

	"github.com/simonxoxoo/vinyl-app/internal/config"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/service"
	"github.com/simonxoxoo/vinyl-app/internal/workers"
)

// App is the catalog application runtime. It restores a remembered session
// at startup, keeps the auto-backup job running while a session is active,
// and shuts everything down when its context is cancelled.
type App struct {
	services  *service.Services
	backupJob workers.BackupJob
	workers   config.ClientWorkers
	logger    *logger.Logger
}

func NewApp(services *service.Services, backupJob workers.BackupJob, workersCfg config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		services:  services,
		backupJob: backupJob,
		workers:   workersCfg,
		logger:    logger,
	}
}

// Run implements Client. It blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if profile, restored := a.services.AuthService.RestoreSession(ctx); restored {
		a.logger.Info().Str("username", profile.Username).Msg("session restored")
		a.startBackups(ctx, profile.Username)
	}

	<-ctx.Done()
	a.backupJob.Stop()

	return nil
}

// startBackups launches the periodic backup job for username when the
// feature is configured. A zero interval disables auto-backups.
func (a *App) startBackups(ctx context.Context, username string) {
	if a.workers.BackupInterval <= 0 {
		return
	}

	a.logger.Info().
		Str("username", username).
		Dur("interval", a.workers.BackupInterval).
		Msg("starting auto-backup job")
	a.backupJob.Start(ctx, username, a.workers.BackupInterval)
}
