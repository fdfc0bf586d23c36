package workers

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// BackupJob periodically snapshots one user's data to disk while a session
// is active.
type BackupJob interface {
	// Start launches the background loop for username. A previously running
	// loop is stopped first.
	Start(ctx context.Context, username string, interval time.Duration)

	// Stop cancels the loop and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
