package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/guest-nama/internal/adapter"
	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
)

// invalidationHandler is called once when the storage server rejects the
// session of userID.
type invalidationHandler func(ctx context.Context, userID string)

type revalidationJob struct {
	adapter   adapter.StorageAdapter
	onInvalid invalidationHandler

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRevalidationJob creates a revalidationJob that calls
// storageAdapter.VerifySession on a ticker. The job is idle until Start is
// called.
func NewRevalidationJob(storageAdapter adapter.StorageAdapter, onInvalid invalidationHandler, logger *logger.Logger) RevalidationJob {
	return &revalidationJob{adapter: storageAdapter, onInvalid: onInvalid, logger: logger}
}

// Start implements RevalidationJob. A failed check is logged and retried on
// the next tick. An explicit rejection ends the loop and then calls the
// invalidation handler outside of the job's wait group, so the handler may
// call Stop.
func (j *revalidationJob) Start(ctx context.Context, userID string, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultRevalidationInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		if j.run(jobCtx, userID, interval) && j.onInvalid != nil {
			j.onInvalid(ctx, userID)
		}
	}()
}

// run ticks until jobCtx is done or the session is rejected. It reports
// whether the session was rejected.
func (j *revalidationJob) run(jobCtx context.Context, userID string, interval time.Duration) bool {
	defer j.wg.Done()

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-jobCtx.Done():
			return false
		case <-t.C:
			valid, err := j.adapter.VerifySession(jobCtx, userID)
			if err != nil {
				if jobCtx.Err() != nil {
					return false
				}
				j.logger.Warn().Err(err).Str("user_id", userID).Msg("session revalidation failed, keeping session")
				continue
			}
			if !valid {
				j.logger.Info().Str("user_id", userID).Msg("session rejected by storage server")
				return true
			}
		}
	}
}

// Stop implements RevalidationJob. It cancels the background goroutine's
// context and blocks until the check loop has exited. Safe to call when the
// job is not running.
func (j *revalidationJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
