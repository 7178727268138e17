package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/dbretry"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SuppressionModel handles database operations for sensitive holds and the
// append-only distress suppression log.
type SuppressionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSuppression creates a new SuppressionModel instance.
func NewSuppression(db *bun.DB, logger *zap.Logger) *SuppressionModel {
	return &SuppressionModel{
		db:     db,
		logger: logger.Named("db_suppression"),
	}
}

// Hold moves a pending flag onto sensitive hold and writes the audit log
// entry in the same transaction. A flag may enter sensitive hold only once;
// any other current status fails the transition.
func (m *SuppressionModel) Hold(
	ctx context.Context, flagID uuid.UUID, reason enum.SuppressionReason, releasableAfter time.Time, now time.Time,
) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			flag := new(types.ConcernFlag)

			err := tx.NewSelect().
				Model(flag).
				Where("id = ?", flagID).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return types.ErrFlagNotFound
				}

				return fmt.Errorf("failed to lock flag for hold: %w", err)
			}

			if flag.Status != enum.FlagStatusPending {
				return types.ErrFlagNotPending
			}

			_, err = tx.NewUpdate().
				Model((*types.ConcernFlag)(nil)).
				Set("status = ?", enum.FlagStatusSensitiveHold).
				Set("suppression_reason = ?", reason).
				Set("releasable_after = ?", releasableAfter).
				Where("id = ?", flagID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to place flag on hold: %w", err)
			}

			entry := &types.DistressSuppressionLog{
				ID:                uuid.New(),
				ScreenshotID:      flag.ContentID,
				ChildID:           flag.ChildID,
				FamilyID:          flag.FamilyID,
				ConcernCategory:   flag.Category,
				Severity:          flag.Severity,
				SuppressionReason: reason,
				Timestamp:         now,
				ReleasableAfter:   releasableAfter,
			}

			if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
				return fmt.Errorf("failed to write suppression log: %w", err)
			}

			return nil
		})
	})
}

// Release moves a held flag to released and stamps the matching suppression
// log entries. Released is terminal; the transition is conditional on the
// flag actually being on hold.
func (m *SuppressionModel) Release(ctx context.Context, flagID uuid.UUID, now time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			flag := new(types.ConcernFlag)

			err := tx.NewSelect().
				Model(flag).
				Where("id = ?", flagID).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return types.ErrFlagNotFound
				}

				return fmt.Errorf("failed to lock flag for release: %w", err)
			}

			if flag.Status != enum.FlagStatusSensitiveHold {
				return types.ErrFlagNotHeld
			}

			_, err = tx.NewUpdate().
				Model((*types.ConcernFlag)(nil)).
				Set("status = ?", enum.FlagStatusReleased).
				Where("id = ?", flagID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to release flag: %w", err)
			}

			_, err = tx.NewUpdate().
				Model((*types.DistressSuppressionLog)(nil)).
				Set("released = TRUE").
				Set("released_at = ?", now).
				Where("screenshot_id = ?", flag.ContentID).
				Where("concern_category = ?", flag.Category).
				Where("released = FALSE").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to stamp suppression log: %w", err)
			}

			return nil
		})
	})
}

// CloseByReview moves a pending flag to reviewed or dismissed through
// ordinary parental review. Held flags are out of scope here; they follow
// the blackout rules instead.
func (m *SuppressionModel) CloseByReview(ctx context.Context, flagID uuid.UUID, dismissed bool) error {
	status := enum.FlagStatusReviewed
	if dismissed {
		status = enum.FlagStatusDismissed
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewUpdate().
			Model((*types.ConcernFlag)(nil)).
			Set("status = ?", status).
			Where("id = ?", flagID).
			Where("status = ?", enum.FlagStatusPending).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to close flag by review: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check review update: %w", err)
		}

		if affected == 0 {
			return types.ErrFlagNotPending
		}

		return nil
	})
}

// GetLogsByChild returns the suppression log entries for a child, newest
// first. This is an operator-facing read; the log never reaches families.
func (m *SuppressionModel) GetLogsByChild(ctx context.Context, childID string) ([]*types.DistressSuppressionLog, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.DistressSuppressionLog, error) {
		var logs []*types.DistressSuppressionLog

		err := m.db.NewSelect().
			Model(&logs).
			Where("child_id = ?", childID).
			Order("timestamp DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get suppression logs: %w", err)
		}

		return logs, nil
	})
}

// GetHeldFlagsDue returns held flags whose releasable-after time has passed.
// Used by the sweep worker to drive time-based releases.
func (m *SuppressionModel) GetHeldFlagsDue(ctx context.Context, now time.Time) ([]*types.ConcernFlag, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ConcernFlag, error) {
		var flags []*types.ConcernFlag

		err := m.db.NewSelect().
			Model(&flags).
			Where("status = ?", enum.FlagStatusSensitiveHold).
			Where("releasable_after <= ?", now).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get due held flags: %w", err)
		}

		return flags, nil
	})
}
