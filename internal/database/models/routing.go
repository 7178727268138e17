package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/dbretry"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// RoutingModel handles database operations for signal routing results.
type RoutingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewRouting creates a new RoutingModel instance.
func NewRouting(db *bun.DB, logger *zap.Logger) *RoutingModel {
	return &RoutingModel{
		db:     db,
		logger: logger.Named("db_routing"),
	}
}

// CreateResult stores a new pending routing result for a (signal, partner)
// attempt.
func (m *RoutingModel) CreateResult(ctx context.Context, result *types.SignalRoutingResult) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if _, err := m.db.NewInsert().Model(result).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create routing result: %w", err)
		}

		return nil
	})
}

// MarkSent records a successful webhook dispatch.
func (m *RoutingModel) MarkSent(ctx context.Context, id uuid.UUID, retryCount int, now time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.SignalRoutingResult)(nil)).
			Set("status = ?", enum.RoutingStatusSent).
			Set("retry_count = ?", retryCount).
			Set("updated_at = ?", now).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark routing result sent: %w", err)
		}

		return nil
	})
}

// MarkFailed records an exhausted dispatch attempt with its last error.
func (m *RoutingModel) MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, lastError string, now time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.SignalRoutingResult)(nil)).
			Set("status = ?", enum.RoutingStatusFailed).
			Set("retry_count = ?", retryCount).
			Set("last_error = ?", lastError).
			Set("updated_at = ?", now).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark routing result failed: %w", err)
		}

		return nil
	})
}

// Acknowledge records the partner's confirmation for a sent signal.
func (m *RoutingModel) Acknowledge(
	ctx context.Context, signalID, partnerID, partnerReferenceID string, now time.Time,
) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewUpdate().
			Model((*types.SignalRoutingResult)(nil)).
			Set("status = ?", enum.RoutingStatusAcknowledged).
			Set("acknowledged = TRUE").
			Set("partner_reference_id = ?", partnerReferenceID).
			Set("updated_at = ?", now).
			Where("signal_id = ?", signalID).
			Where("partner_id = ?", partnerID).
			Where("status = ?", enum.RoutingStatusSent).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to acknowledge routing result: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check acknowledgment update: %w", err)
		}

		if affected == 0 {
			return types.ErrRoutingResultMissing
		}

		return nil
	})
}

// GetResultsBySignal returns all routing attempts for a signal, oldest first.
func (m *RoutingModel) GetResultsBySignal(ctx context.Context, signalID string) ([]*types.SignalRoutingResult, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.SignalRoutingResult, error) {
		var results []*types.SignalRoutingResult

		err := m.db.NewSelect().
			Model(&results).
			Where("signal_id = ?", signalID).
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get routing results: %w", err)
		}

		return results, nil
	})
}
