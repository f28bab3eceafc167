// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
)

const defaultRetentionInterval = time.Hour

// RetentionWorker purges old artifacts on a fixed interval.
type RetentionWorker struct {
	purger   Purger
	interval time.Duration
	maxAge   time.Duration

	logger *logger.Logger
}

// NewRetentionWorker returns a worker that calls purger.Purge(maxAge) once
// on start and then every interval. A non-positive interval means one hour.
func NewRetentionWorker(purger Purger, interval, maxAge time.Duration, logger *logger.Logger) *RetentionWorker {
	if interval <= 0 {
		interval = defaultRetentionInterval
	}

	return &RetentionWorker{
		purger:   purger,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Run implements [Worker]. It returns at once when maxAge is not positive.
func (w *RetentionWorker) Run(ctx context.Context) {
	if w.maxAge <= 0 {
		return
	}

	w.logger.Info().
		Str("func", "*RetentionWorker.Run").
		Dur("interval", w.interval).
		Dur("max_age", w.maxAge).
		Msg("retention worker started")

	w.purge(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "*RetentionWorker.Run").Msg("retention worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *RetentionWorker) purge(ctx context.Context) {
	n, err := w.purger.Purge(ctx, w.maxAge)
	if err != nil {
		w.logger.Err(err).Str("func", "*RetentionWorker.purge").Int("purged", n).Msg("error purging artifacts")
		return
	}
	if n > 0 {
		w.logger.Debug().Str("func", "*RetentionWorker.purge").Int("purged", n).Msg("old artifacts purged")
	}
}
