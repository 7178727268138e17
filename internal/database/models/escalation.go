package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/dbretry"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// EscalationModel handles database operations for partner-reported
// escalations. The escalation table is structurally isolated from all
// family-readable data; nothing in this model is reachable from a
// family-scoped query.
type EscalationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewEscalation creates a new EscalationModel instance.
func NewEscalation(db *bun.DB, logger *zap.Logger) *EscalationModel {
	return &EscalationModel{
		db:     db,
		logger: logger.Named("db_escalation"),
	}
}

// Create appends a new escalation record. Records always start unsealed.
func (m *EscalationModel) Create(ctx context.Context, escalation *types.SignalEscalation) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if _, err := m.db.NewInsert().Model(escalation).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create escalation: %w", err)
		}

		return nil
	})
}

// Seal marks an escalation as sealed. Sealed records are excluded from
// ordinary admin reads; only the single-use authorization path returns them.
func (m *EscalationModel) Seal(ctx context.Context, id uuid.UUID, sealedBy string, now time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewUpdate().
			Model((*types.SignalEscalation)(nil)).
			Set("sealed = TRUE").
			Set("sealed_at = ?", now).
			Set("sealed_by = ?", sealedBy).
			Where("id = ?", id).
			Where("sealed = FALSE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seal escalation: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check seal update: %w", err)
		}

		if affected == 0 {
			exists, err := m.db.NewSelect().
				Model((*types.SignalEscalation)(nil)).
				Where("id = ?", id).
				Exists(ctx)
			if err != nil {
				return fmt.Errorf("failed to check escalation existence: %w", err)
			}

			if !exists {
				return types.ErrEscalationNotFound
			}

			return types.ErrEscalationAlreadySealed
		}

		return nil
	})
}

// GetUnsealedBySignal returns the unsealed escalations for a signal. This is
// the ordinary admin read path; sealed records never appear here.
func (m *EscalationModel) GetUnsealedBySignal(ctx context.Context, signalID string) ([]*types.SignalEscalation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.SignalEscalation, error) {
		var escalations []*types.SignalEscalation

		err := m.db.NewSelect().
			Model(&escalations).
			Where("signal_id = ?", signalID).
			Where("sealed = FALSE").
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get unsealed escalations: %w", err)
		}

		return escalations, nil
	})
}
