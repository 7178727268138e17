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

// AuthorizationModel handles database operations for sealed-signal access
// authorizations. Approval, denial and consumption are conditional writes so
// the dual-control and single-use guarantees hold under concurrency.
type AuthorizationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAuthorization creates a new AuthorizationModel instance.
func NewAuthorization(db *bun.DB, logger *zap.Logger) *AuthorizationModel {
	return &AuthorizationModel{
		db:     db,
		logger: logger.Named("db_authorization"),
	}
}

// Create stores a new pending authorization.
func (m *AuthorizationModel) Create(ctx context.Context, auth *types.SignalAccessAuthorization) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if _, err := m.db.NewInsert().Model(auth).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create authorization: %w", err)
		}

		return nil
	})
}

// GetByID retrieves an authorization.
func (m *AuthorizationModel) GetByID(ctx context.Context, id uuid.UUID) (*types.SignalAccessAuthorization, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SignalAccessAuthorization, error) {
		auth := new(types.SignalAccessAuthorization)

		err := m.db.NewSelect().
			Model(auth).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrAuthorizationNotFound
			}

			return nil, fmt.Errorf("failed to get authorization: %w", err)
		}

		return auth, nil
	})
}

// Approve transitions a pending authorization to approved. The approver must
// be a different principal than the requester; self-approval is a dedicated
// error so callers can branch on it.
func (m *AuthorizationModel) Approve(ctx context.Context, id uuid.UUID, approverID string) error {
	return m.decide(ctx, id, approverID, func(auth *types.SignalAccessAuthorization) {
		auth.Status = enum.AuthorizationStatusApproved
		auth.ApprovedBy = approverID
	})
}

// Deny transitions a pending authorization to denied with a reason. The same
// dual-control rule applies as for approval.
func (m *AuthorizationModel) Deny(ctx context.Context, id uuid.UUID, denierID, reason string) error {
	return m.decide(ctx, id, denierID, func(auth *types.SignalAccessAuthorization) {
		auth.Status = enum.AuthorizationStatusDenied
		auth.DeniedBy = denierID
		auth.DenialReason = reason
	})
}

// decide locks the authorization row, enforces the dual-control and
// pending-state guards, applies the decision and writes it back.
func (m *AuthorizationModel) decide(
	ctx context.Context, id uuid.UUID, deciderID string, apply func(*types.SignalAccessAuthorization),
) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			auth := new(types.SignalAccessAuthorization)

			err := tx.NewSelect().
				Model(auth).
				Where("id = ?", id).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return types.ErrAuthorizationNotFound
				}

				return fmt.Errorf("failed to lock authorization: %w", err)
			}

			if auth.AdminUserID == deciderID {
				return types.ErrSelfApproval
			}

			if auth.Status != enum.AuthorizationStatusPending {
				return types.ErrAuthorizationNotPending
			}

			apply(auth)

			_, err = tx.NewUpdate().
				Model(auth).
				WherePK().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update authorization: %w", err)
			}

			return nil
		})
	})
}

// MarkUsed flips the single-use bit. Calling it twice on the same
// authorization fails the second time; the conditional update is the
// concurrency guard.
func (m *AuthorizationModel) MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		result, err := m.db.NewUpdate().
			Model((*types.SignalAccessAuthorization)(nil)).
			Set("used = TRUE").
			Set("used_at = ?", now).
			Where("id = ?", id).
			Where("used = FALSE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark authorization used: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check used update: %w", err)
		}

		if affected == 0 {
			exists, err := m.db.NewSelect().
				Model((*types.SignalAccessAuthorization)(nil)).
				Where("id = ?", id).
				Exists(ctx)
			if err != nil {
				return fmt.Errorf("failed to check authorization existence: %w", err)
			}

			if !exists {
				return types.ErrAuthorizationNotFound
			}

			return types.ErrAuthorizationUsed
		}

		return nil
	})
}

// ConsumeForSignalRead atomically consumes an approved authorization and
// returns the signal's escalations, sealed ones included. This is the only
// path by which sealed records are ever returned to an admin caller; the
// validation, the single-use flip and the read happen in one transaction.
func (m *AuthorizationModel) ConsumeForSignalRead(
	ctx context.Context, id uuid.UUID, signalID string, now time.Time,
) ([]*types.SignalEscalation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.SignalEscalation, error) {
		var escalations []*types.SignalEscalation

		err := m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			auth := new(types.SignalAccessAuthorization)

			err := tx.NewSelect().
				Model(auth).
				Where("id = ?", id).
				For("UPDATE").
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return types.ErrAuthorizationNotFound
				}

				return fmt.Errorf("failed to lock authorization for consumption: %w", err)
			}

			if auth.Used {
				return types.ErrAuthorizationUsed
			}

			// Fail closed: anything short of a currently valid grant
			// withholds the data.
			if !auth.Valid(signalID, now) {
				return types.ErrAuthorizationInvalid
			}

			_, err = tx.NewUpdate().
				Model((*types.SignalAccessAuthorization)(nil)).
				Set("used = TRUE").
				Set("used_at = ?", now).
				Where("id = ?", id).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to consume authorization: %w", err)
			}

			err = tx.NewSelect().
				Model(&escalations).
				Where("signal_id = ?", signalID).
				Order("created_at ASC").
				Scan(ctx)
			if err != nil {
				return fmt.Errorf("failed to read escalations under authorization: %w", err)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		return escalations, nil
	})
}

// ExpireOverdue marks pending and approved authorizations whose validity
// window has passed as expired. Used grants are terminal and skipped, which
// keeps the sweep idempotent.
func (m *AuthorizationModel) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		result, err := m.db.NewUpdate().
			Model((*types.SignalAccessAuthorization)(nil)).
			Set("status = ?", enum.AuthorizationStatusExpired).
			Where("status IN (?)", bun.In([]enum.AuthorizationStatus{
				enum.AuthorizationStatusPending,
				enum.AuthorizationStatusApproved,
			})).
			Where("used = FALSE").
			Where("expires_at <= ?", now).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to expire overdue authorizations: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to count expired authorizations: %w", err)
		}

		return affected, nil
	})
}
