package workers

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/mock"
)

func TestBackupJob_WritesSnapshotsOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	transfer := mock.NewMockTransferService(ctrl)

	written := make(chan struct{}, 16)
	transfer.EXPECT().WriteBackup(gomock.Any(), "alice", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer) error {
			_, err := io.WriteString(w, `{"user":{},"collection":[]}`)
			select {
			case written <- struct{}{}:
			default:
			}
			return err
		},
	).MinTimes(1)

	job := NewBackupJob(transfer, dir, logger.Nop())
	job.Start(context.Background(), "alice", 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-written:
	case <-time.After(2 * time.Second):
		t.Fatal("backup was never written")
	}
	job.Stop()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0].Name(), "alice-backup-")
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{},"collection":[]}`, string(content))
}

func TestBackupJob_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewBackupJob(mock.NewMockTransferService(ctrl), t.TempDir(), logger.Nop())

	// Must not panic or block.
	job.Stop()
	job.Stop()
}

func TestBackupJob_StopHaltsTheLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mock.NewMockTransferService(ctrl)
	transfer.EXPECT().WriteBackup(gomock.Any(), "alice", gomock.Any()).Return(nil).AnyTimes()

	job := NewBackupJob(transfer, t.TempDir(), logger.Nop())
	job.Start(context.Background(), "alice", 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	job.Stop()

	// After Stop returns the goroutine has exited; a second Stop is a no-op.
	job.Stop()
}

func TestBackupJob_RestartReplacesPreviousLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := mock.NewMockTransferService(ctrl)
	transfer.EXPECT().WriteBackup(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	job := NewBackupJob(transfer, t.TempDir(), logger.Nop())
	job.Start(context.Background(), "alice", 5*time.Millisecond)
	job.Start(context.Background(), "bob", 5*time.Millisecond)
	job.Stop()
}
