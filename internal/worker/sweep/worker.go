// Package sweep runs the periodic lifecycle sweeps: expiring overdue
// blackouts and authorizations and releasing held flags whose windows have
// passed.
package sweep

import (
	"context"
	"time"

	"github.com/harborlight/harborlight/internal/authorization"
	"github.com/harborlight/harborlight/internal/blackout"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/setup"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Worker periodically expires overdue blackouts and authorizations and
// releases due sensitive holds. Every sweep is idempotent; running two
// workers concurrently wastes cycles but corrupts nothing.
type Worker struct {
	blackouts      *blackout.Controller
	authorizations *authorization.Service
	suppressor     *pipeline.Suppressor
	interval       time.Duration
	logger         *zap.Logger
}

// New creates a sweep worker from the application bundle.
func New(app *setup.App, logger *zap.Logger) *Worker {
	safety := &app.Config.Common.Safety

	blackouts := blackout.NewController(app.DB.Model().Blackout(), safety, logger)
	authorizations := authorization.NewService(app.DB.Model().Authorization(), safety, logger)
	suppressor := pipeline.NewSuppressor(app.DB.Model().Suppression(), blackouts, safety, logger)

	return &Worker{
		blackouts:      blackouts,
		authorizations: authorizations,
		suppressor:     suppressor,
		interval:       time.Duration(app.Config.Worker.SweepInterval) * time.Millisecond,
		logger:         logger.Named("sweep"),
	}
}

// Start begins the sweep loop. It runs one sweep immediately, then once per
// interval until the context is canceled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Sweep worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Sweep worker stopped")
			return
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

// runSweep executes the three sweeps concurrently. The ordering between
// blackout expiry and hold release does not matter within one pass; a hold
// whose blackout expires in the same pass is released by the next one.
func (w *Worker) runSweep(ctx context.Context) {
	now := time.Now()
	p := pool.New().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		expired, err := w.blackouts.ExpireOverdue(ctx, now)
		if err != nil {
			w.logger.Error("Failed to expire overdue blackouts", zap.Error(err))
			return err
		}

		if expired > 0 {
			w.logger.Info("Expired overdue blackouts", zap.Int64("count", expired))
		}

		return nil
	})

	p.Go(func(ctx context.Context) error {
		expired, err := w.authorizations.ExpireOverdue(ctx, now)
		if err != nil {
			w.logger.Error("Failed to expire overdue authorizations", zap.Error(err))
			return err
		}

		if expired > 0 {
			w.logger.Info("Expired overdue authorizations", zap.Int64("count", expired))
		}

		return nil
	})

	p.Go(func(ctx context.Context) error {
		released, err := w.suppressor.ReleaseDue(ctx, now)
		if err != nil {
			w.logger.Error("Failed to release due sensitive holds", zap.Error(err))
			return err
		}

		if released > 0 {
			w.logger.Info("Released due sensitive holds", zap.Int("count", released))
		}

		return nil
	})

	// Errors are already logged per sweep; the loop keeps running.
	_ = p.Wait()
}
