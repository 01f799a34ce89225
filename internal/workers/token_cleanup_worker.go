package workers

import (
	"time"

	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/repositories"
)

// TokenCleanupWorker deletes expired email verification tokens on a
// fixed interval.
type TokenCleanupWorker struct {
	verificationRepo repositories.VerificationRepository
	interval         time.Duration
	done             chan struct{}
}

func NewTokenCleanupWorker(verificationRepo repositories.VerificationRepository, interval time.Duration) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		verificationRepo: verificationRepo,
		interval:         interval,
		done:             make(chan struct{}),
	}
}

func (w *TokenCleanupWorker) Start() {
	go w.run()
	logger.WorkerLog("token_cleanup", "started", "interval", w.interval.String())
}

func (w *TokenCleanupWorker) Stop() {
	close(w.done)
	logger.WorkerLog("token_cleanup", "stopped")
}

func (w *TokenCleanupWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			deleted, err := w.verificationRepo.DeleteExpiredTokens(time.Now())
			if err != nil {
				logger.WorkerLog("token_cleanup", "cleanup failed", "error", err)
				continue
			}
			if deleted > 0 {
				logger.WorkerLog("token_cleanup", "removed expired tokens", "count", deleted)
			}
		}
	}
}
