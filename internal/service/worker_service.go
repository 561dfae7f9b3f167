package service

import (
	"context"
	"time"

	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

// WorkerService flushes dirty collection snapshots in the background when
// the store runs with asynchronous persistence
type WorkerService struct {
	store    *store.Store
	interval time.Duration
	logger   zerolog.Logger
}

func NewWorkerService(s *store.Store, interval time.Duration, logger zerolog.Logger) *WorkerService {
	return &WorkerService{
		store:    s,
		interval: interval,
		logger:   logger.With().Str("service", "persist_worker").Logger(),
	}
}

// Start runs until ctx is cancelled, then performs a final flush
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("snapshot flush worker started")

	for {
		select {
		case <-ctx.Done():
			// ctx is already cancelled; the last flush gets its own deadline
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			w.flush(flushCtx)
			cancel()
			w.logger.Info().Msg("snapshot flush worker stopped")
			return
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *WorkerService) flush(ctx context.Context) {
	pending := w.store.Pending()
	if pending == 0 {
		return
	}
	if err := w.store.Flush(ctx); err != nil {
		w.logger.Error().Err(err).Int("pending", pending).Msg("snapshot flush failed")
		return
	}
	w.logger.Debug().Int("collections", pending).Msg("snapshots flushed")
}
