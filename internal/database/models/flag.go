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

// FlagModel handles database operations for concern flags and the per-day
// throttle state.
type FlagModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewFlag creates a new FlagModel instance.
func NewFlag(db *bun.DB, logger *zap.Logger) *FlagModel {
	return &FlagModel{
		db:     db,
		logger: logger.Named("db_flag"),
	}
}

// CreateFlag stores a newly surfaced concern flag. At most one flag exists
// per (content item, category) pair; a second insert for the same pair fails.
func (m *FlagModel) CreateFlag(ctx context.Context, flag *types.ConcernFlag) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewInsert().
			Model(flag).
			On("CONFLICT (content_id, category) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create concern flag: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check concern flag insert: %w", err)
		}

		if affected == 0 {
			return types.ErrFlagAlreadyExists
		}

		return nil
	})
}

// GetFlag retrieves a concern flag by ID.
func (m *FlagModel) GetFlag(ctx context.Context, id uuid.UUID) (*types.ConcernFlag, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ConcernFlag, error) {
		flag := new(types.ConcernFlag)

		err := m.db.NewSelect().
			Model(flag).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrFlagNotFound
			}

			return nil, fmt.Errorf("failed to get concern flag: %w", err)
		}

		return flag, nil
	})
}

// GetFamilyVisibleFlags returns the flags a family is allowed to see. Flags
// on sensitive hold are excluded here, at the query boundary, so no
// family-facing caller can observe a held flag regardless of client-side
// filtering. Throttled flags are retained in storage but never delivered.
func (m *FlagModel) GetFamilyVisibleFlags(ctx context.Context, familyID string) ([]*types.ConcernFlag, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ConcernFlag, error) {
		var flags []*types.ConcernFlag

		err := m.db.NewSelect().
			Model(&flags).
			Where("family_id = ?", familyID).
			Where("status != ?", enum.FlagStatusSensitiveHold).
			Where("deliverable = TRUE").
			Order("detected_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get family visible flags: %w", err)
		}

		return flags, nil
	})
}

// GetThrottleState retrieves the throttle state for a child on a given day.
// Returns a zeroed state if none exists yet.
func (m *FlagModel) GetThrottleState(ctx context.Context, childID, day string) (*types.FlagThrottleState, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.FlagThrottleState, error) {
		state := new(types.FlagThrottleState)

		err := m.db.NewSelect().
			Model(state).
			Where("child_id = ?", childID).
			Where("day = ?", day).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &types.FlagThrottleState{ChildID: childID, Day: day}, nil
			}

			return nil, fmt.Errorf("failed to get throttle state: %w", err)
		}

		return state, nil
	})
}

// ReserveAlertSlot atomically decides whether a qualifying flag may be
// delivered to the family today. The throttle state row is locked for the
// duration of the transaction so concurrent flags for the same child cannot
// both claim the last slot. A negative limit means unlimited delivery.
//
// The flag row is updated in the same transaction: either marked deliverable
// or marked throttled with a timestamp. Throttled flags stay in storage.
func (m *FlagModel) ReserveAlertSlot(
	ctx context.Context, flag *types.ConcernFlag, day string, limit int, now time.Time,
) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		var delivered bool

		err := m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			state := new(types.FlagThrottleState)

			err := tx.NewSelect().
				Model(state).
				Where("child_id = ?", flag.ChildID).
				Where("day = ?", day).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("failed to lock throttle state: %w", err)
				}

				// First flag of the day; state is created lazily
				state = &types.FlagThrottleState{
					ChildID:        flag.ChildID,
					Day:            day,
					SeverityCounts: make(map[enum.FlagSeverity]int),
				}
			}

			if state.SeverityCounts == nil {
				state.SeverityCounts = make(map[enum.FlagSeverity]int)
			}

			state.SeverityCounts[flag.Severity]++
			state.UpdatedAt = now

			delivered = limit < 0 || state.AlertsSentToday < limit
			if delivered {
				state.AlertsSentToday++
				state.AlertedFlagIDs = append(state.AlertedFlagIDs, flag.ID)
			} else {
				state.ThrottledToday++
			}

			_, err = tx.NewInsert().
				Model(state).
				On("CONFLICT (child_id, day) DO UPDATE").
				Set("alerts_sent_today = EXCLUDED.alerts_sent_today").
				Set("throttled_today = EXCLUDED.throttled_today").
				Set("alerted_flag_ids = EXCLUDED.alerted_flag_ids").
				Set("severity_counts = EXCLUDED.severity_counts").
				Set("updated_at = EXCLUDED.updated_at").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update throttle state: %w", err)
			}

			update := tx.NewUpdate().
				Model((*types.ConcernFlag)(nil)).
				Where("id = ?", flag.ID)

			if delivered {
				update = update.Set("deliverable = TRUE")
			} else {
				update = update.
					Set("throttled = TRUE").
					Set("throttled_at = ?", now)
			}

			if _, err := update.Exec(ctx); err != nil {
				return fmt.Errorf("failed to update flag delivery state: %w", err)
			}

			return nil
		})

		return delivered, err
	})
}
