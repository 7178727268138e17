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

// LegalModel handles database operations for legal requests. Like
// escalations, legal requests live outside all family-readable data.
type LegalModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewLegal creates a new LegalModel instance.
func NewLegal(db *bun.DB, logger *zap.Logger) *LegalModel {
	return &LegalModel{
		db:     db,
		logger: logger.Named("db_legal"),
	}
}

// Create stores a new legal request. Requests are always created in pending
// legal review; there is no auto-approval path.
func (m *LegalModel) Create(ctx context.Context, request *types.LegalRequest) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if _, err := m.db.NewInsert().Model(request).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create legal request: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a legal request.
func (m *LegalModel) GetByID(ctx context.Context, id uuid.UUID) (*types.LegalRequest, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.LegalRequest, error) {
		request := new(types.LegalRequest)

		err := m.db.NewSelect().
			Model(request).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrLegalRequestNotFound
			}

			return nil, fmt.Errorf("failed to get legal request: %w", err)
		}

		return request, nil
	})
}

// Review transitions a pending request to approved or denied, recording the
// human reviewer. The conditional update guards against double review.
func (m *LegalModel) Review(
	ctx context.Context, id uuid.UUID, reviewerID string, approved bool, notes string, now time.Time,
) error {
	status := enum.LegalRequestStatusDenied
	if approved {
		status = enum.LegalRequestStatusApproved
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewUpdate().
			Model((*types.LegalRequest)(nil)).
			Set("status = ?", status).
			Set("reviewed_by = ?", reviewerID).
			Set("reviewed_at = ?", now).
			Set("review_notes = ?", notes).
			Where("id = ?", id).
			Where("status = ?", enum.LegalRequestStatusPendingLegalReview).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to review legal request: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check review update: %w", err)
		}

		if affected == 0 {
			return types.ErrLegalRequestNotPending
		}

		return nil
	})
}

// Fulfill transitions an approved request to fulfilled.
func (m *LegalModel) Fulfill(ctx context.Context, id uuid.UUID, fulfilledBy string, now time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewUpdate().
			Model((*types.LegalRequest)(nil)).
			Set("status = ?", enum.LegalRequestStatusFulfilled).
			Set("fulfilled_by = ?", fulfilledBy).
			Set("fulfilled_at = ?", now).
			Where("id = ?", id).
			Where("status = ?", enum.LegalRequestStatusApproved).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to fulfill legal request: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check fulfillment update: %w", err)
		}

		if affected == 0 {
			return types.ErrLegalRequestNotApproved
		}

		return nil
	})
}
