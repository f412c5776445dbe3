// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/store"
)

// defaultTokenPurgeInterval is used when the configured interval is not
// positive.
const defaultTokenPurgeInterval = time.Hour

// TokenPurgeWorker periodically clears signup and password reset tokens
// whose expiry has passed. Expired tokens are already rejected by the
// auth service; purging only keeps dead hashes out of the users table.
type TokenPurgeWorker struct {
	users    store.UserRepository
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewTokenPurgeWorker(users store.UserRepository, interval time.Duration, logger *logger.Logger) *TokenPurgeWorker {
	if interval <= 0 {
		interval = defaultTokenPurgeInterval
	}

	return &TokenPurgeWorker{
		users:    users,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run purges once right away and then every interval. A previous run is
// stopped first.
func (w *TokenPurgeWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("token purge worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.purge(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.purge(jobCtx)
			}
		}
	}()
}

func (w *TokenPurgeWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *TokenPurgeWorker) purge(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)

	cleared, err := w.users.PurgeExpiredTokens(ctx, w.now())
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Msg("error purging expired tokens")
		}
		return
	}

	if cleared > 0 {
		w.logger.Info().Int64("cleared", cleared).Msg("expired tokens purged")
	}
}
