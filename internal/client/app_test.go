package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonxoxoo/vinyl-app/internal/config"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/mock"
	"github.com/simonxoxoo/vinyl-app/internal/service"
	"github.com/simonxoxoo/vinyl-app/models"
	"go.uber.org/mock/gomock"
)

func TestApp_Run_StartsBackupsForRestoredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthService(ctrl)
	job := mock.NewMockBackupJob(ctrl)
	services := &service.Services{AuthService: auth}

	interval := 30 * time.Minute
	ctx, cancel := context.WithCancel(context.Background())

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.UserProfile{Username: "alice"}, true)
	job.EXPECT().Start(gomock.Any(), "alice", interval)
	job.EXPECT().Stop()

	app := NewApp(services, job, config.ClientWorkers{BackupInterval: interval}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not shut down")
	}
}

func TestApp_Run_NoSessionNoBackups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthService(ctrl)
	job := mock.NewMockBackupJob(ctrl)
	services := &service.Services{AuthService: auth}

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.UserProfile{}, false)
	// Start must never be called; Stop still runs on shutdown.
	job.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := NewApp(services, job, config.ClientWorkers{BackupInterval: time.Hour}, logger.Nop())
	assert.NoError(t, app.Run(ctx))
}

func TestApp_Run_ZeroIntervalDisablesBackups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthService(ctrl)
	job := mock.NewMockBackupJob(ctrl)
	services := &service.Services{AuthService: auth}

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.UserProfile{Username: "alice"}, true)
	job.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := NewApp(services, job, config.ClientWorkers{}, logger.Nop())
	assert.NoError(t, app.Run(ctx))
}
