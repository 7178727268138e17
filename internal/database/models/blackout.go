package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harborlight/harborlight/internal/database/dbretry"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// BlackoutModel handles database operations for family-notification
// blackouts. Creation, extension and release for a signal are linearized
// through row locks so two callers cannot create duplicate active blackouts
// or double-apply an extension.
type BlackoutModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewBlackout creates a new BlackoutModel instance.
func NewBlackout(db *bun.DB, logger *zap.Logger) *BlackoutModel {
	return &BlackoutModel{
		db:     db,
		logger: logger.Named("db_blackout"),
	}
}

// Create stores a new blackout record. It fails if an active blackout
// already exists for the signal; the partial unique index on
// (signal_id) WHERE status = active backstops the in-transaction check.
func (m *BlackoutModel) Create(ctx context.Context, record *types.BlackoutRecord) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			exists, err := tx.NewSelect().
				Model((*types.BlackoutRecord)(nil)).
				Where("signal_id = ?", record.SignalID).
				Where("status = ?", enum.BlackoutStatusActive).
				For("UPDATE").
				Exists(ctx)
			if err != nil {
				return fmt.Errorf("failed to check for active blackout: %w", err)
			}

			if exists {
				return types.ErrActiveBlackoutExists
			}

			if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create blackout: %w", err)
			}

			return nil
		})
	})
}

// GetActive retrieves the active blackout record for a signal.
func (m *BlackoutModel) GetActive(ctx context.Context, signalID string) (*types.BlackoutRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.BlackoutRecord, error) {
		record := new(types.BlackoutRecord)

		err := m.db.NewSelect().
			Model(record).
			Where("signal_id = ?", signalID).
			Where("status = ?", enum.BlackoutStatusActive).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrBlackoutNotFound
			}

			return nil, fmt.Errorf("failed to get active blackout: %w", err)
		}

		return record, nil
	})
}

// AppendExtension appends one extension entry and moves the expiry forward
// by the extension's hours. The row is locked so concurrent extensions from
// different partners are serialized and both retained as separate entries.
// Extending an expired or missing blackout fails, as does exceeding the
// cumulative extension cap.
func (m *BlackoutModel) AppendExtension(
	ctx context.Context, signalID string, ext types.BlackoutExtension, maxCumulative time.Duration, now time.Time,
) (*types.BlackoutRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.BlackoutRecord, error) {
		record := new(types.BlackoutRecord)

		err := m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			err := tx.NewSelect().
				Model(record).
				Where("signal_id = ?", signalID).
				Where("status = ?", enum.BlackoutStatusActive).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return types.ErrBlackoutNotFound
				}

				return fmt.Errorf("failed to lock blackout for extension: %w", err)
			}

			if !now.Before(record.ExpiresAt) {
				return types.ErrBlackoutExpired
			}

			extension := time.Duration(ext.Hours) * time.Hour
			if record.CumulativeExtension()+extension > maxCumulative {
				return types.ErrMaxCumulativeExtension
			}

			record.Extensions = append(record.Extensions, ext)
			record.ExpiresAt = record.ExpiresAt.Add(extension)

			_, err = tx.NewUpdate().
				Model((*types.BlackoutRecord)(nil)).
				Set("extensions = ?", record.Extensions).
				Set("expires_at = ?", record.ExpiresAt).
				Where("id = ?", record.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to append blackout extension: %w", err)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		return record, nil
	})
}

// Release ends an active blackout before its expiry. Only partners may do
// this and the caller identity is recorded for audit.
func (m *BlackoutModel) Release(
	ctx context.Context, signalID, partnerID, reason string, now time.Time,
) (*types.BlackoutRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.BlackoutRecord, error) {
		record := new(types.BlackoutRecord)

		err := m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			err := tx.NewSelect().
				Model(record).
				Where("signal_id = ?", signalID).
				Where("status = ?", enum.BlackoutStatusActive).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// A released or expired record still exists for the signal;
					// report that rather than a missing blackout.
					exists, existsErr := tx.NewSelect().
						Model((*types.BlackoutRecord)(nil)).
						Where("signal_id = ?", signalID).
						Exists(ctx)
					if existsErr != nil {
						return fmt.Errorf("failed to check for inactive blackout: %w", existsErr)
					}

					if exists {
						return types.ErrBlackoutNotActive
					}

					return types.ErrBlackoutNotFound
				}

				return fmt.Errorf("failed to lock blackout for release: %w", err)
			}

			if !now.Before(record.ExpiresAt) {
				return types.ErrBlackoutExpired
			}

			record.Status = enum.BlackoutStatusReleased
			record.ReleasedBy = partnerID
			record.ReleaseReason = reason
			record.ReleasedAt = now

			_, err = tx.NewUpdate().
				Model((*types.BlackoutRecord)(nil)).
				Set("status = ?", record.Status).
				Set("released_by = ?", record.ReleasedBy).
				Set("release_reason = ?", record.ReleaseReason).
				Set("released_at = ?", record.ReleasedAt).
				Where("id = ?", record.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to release blackout: %w", err)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		return record, nil
	})
}

// ExpireOverdue marks active blackouts whose window has passed as expired.
// The conditional update makes the sweep idempotent; re-running it once all
// overdue records are expired affects zero rows.
func (m *BlackoutModel) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		result, err := m.db.NewUpdate().
			Model((*types.BlackoutRecord)(nil)).
			Set("status = ?", enum.BlackoutStatusExpired).
			Where("status = ?", enum.BlackoutStatusActive).
			Where("expires_at <= ?", now).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to expire overdue blackouts: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to count expired blackouts: %w", err)
		}

		return affected, nil
	})
}
