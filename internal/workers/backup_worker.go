// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/simonxoxoo/vinyl-app/internal/logger"
	"github.com/simonxoxoo/vinyl-app/internal/service"
)

type backupJob struct {
	transfer service.TransferService
	dir      string
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackupJob creates a backupJob that writes a timestamped backup snapshot
// of the user's data into dir on a ticker. The job is idle until Start is
// called.
func NewBackupJob(transfer service.TransferService, dir string, logger *logger.Logger) BackupJob {
	return &backupJob{transfer: transfer, dir: dir, logger: logger}
}

// Start implements BackupJob. It stops any previously running job, then
// launches a background goroutine that writes a backup every interval. If
// interval is zero or negative it defaults to 15 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *backupJob) Start(ctx context.Context, username string, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.writeSnapshot(jobCtx, username); err != nil {
					j.logger.Err(err).Str("username", username).Msg("auto-backup failed")
				}
			}
		}
	}()
}

// Stop implements BackupJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *backupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *backupJob) writeSnapshot(ctx context.Context, username string) error {
	if err := os.MkdirAll(j.dir, 0o700); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s-backup-%s.json", username, time.Now().Format("20060102-150405"))
	file, err := os.Create(filepath.Join(j.dir, name))
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}

	if err := j.transfer.WriteBackup(ctx, username, file); err != nil {
		file.Close()
		return fmt.Errorf("write backup: %w", err)
	}

	return file.Close()
}
