// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Retention periodically deletes audit entries older than the configured
// window. Sweep failures are logged and retried on the next tick.
type Retention struct {
	store  Store
	logger *slog.Logger
	cron   *cron.Cron
	maxAge time.Duration
}

// NewRetention creates a retention sweeper. schedule is a cron expression;
// retentionDays must be positive.
func NewRetention(
	logger *slog.Logger,
	store Store,
	schedule string,
	retentionDays int,
) (*Retention, error) {
	r := &Retention{
		store:  store,
		logger: logger,
		cron:   cron.New(),
		maxAge: time.Duration(retentionDays) * 24 * time.Hour,
	}

	if _, err := r.cron.AddFunc(schedule, r.sweep); err != nil {
		return nil, err
	}

	return r, nil
}

// Start begins the schedule without blocking.
func (r *Retention) Start() {
	r.logger.Info(
		"starting audit retention sweeper",
		slog.Duration("max_age", r.maxAge),
	)
	r.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (r *Retention) Stop(
	ctx context.Context,
) {
	stopped := r.cron.Stop()

	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
}

func (r *Retention) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-r.maxAge)

	removed, err := r.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		r.logger.Warn(
			"audit retention sweep failed",
			slog.String("error", err.Error()),
		)
		return
	}

	if removed > 0 {
		r.logger.Info(
			"audit retention sweep completed",
			slog.Int64("removed", removed),
			slog.Time("cutoff", cutoff),
		)
	}
}
