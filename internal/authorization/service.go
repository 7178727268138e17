// Package authorization implements dual-control, single-use, time-boxed
// grants for administrative access to sealed or escalated signals.
package authorization

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/setup/config"
	"go.uber.org/zap"
)

// Store persists access authorizations.
type Store interface {
	Create(ctx context.Context, auth *types.SignalAccessAuthorization) error
	GetByID(ctx context.Context, id uuid.UUID) (*types.SignalAccessAuthorization, error)
	Approve(ctx context.Context, id uuid.UUID, approverID string) error
	Deny(ctx context.Context, id uuid.UUID, denierID, reason string) error
	MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) error
	ConsumeForSignalRead(ctx context.Context, id uuid.UUID, signalID string, now time.Time) ([]*types.SignalEscalation, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Service drives the authorization lifecycle: request, second-person
// decision, validation, and single-use consumption.
type Service struct {
	store  Store
	safety *config.Safety
	logger *zap.Logger
}

// NewService creates an authorization service.
func NewService(store Store, safety *config.Safety, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		safety: safety,
		logger: logger.Named("authorization"),
	}
}

// Request files a new pending authorization for the given admin and signal.
// The reason is mandatory; a grant without a stated purpose is not auditable.
// The validity window starts at request time, not approval time.
func (s *Service) Request(
	ctx context.Context, adminUserID, signalID string,
	authType enum.AuthorizationType, reason string, now time.Time,
) (*types.SignalAccessAuthorization, error) {
	if reason == "" {
		return nil, types.ErrAuthorizationReason
	}

	auth := &types.SignalAccessAuthorization{
		ID:                uuid.New(),
		AdminUserID:       adminUserID,
		SignalID:          signalID,
		AuthorizationType: authType,
		Reason:            reason,
		Status:            enum.AuthorizationStatusPending,
		RequestedAt:       now,
		ExpiresAt:         now.Add(s.safety.AuthorizationValidity()),
	}

	if err := s.store.Create(ctx, auth); err != nil {
		return nil, err
	}

	s.logger.Info("Requested signal access authorization",
		zap.String("authorizationID", auth.ID.String()),
		zap.String("adminUserID", adminUserID),
		zap.String("signalID", signalID),
		zap.String("type", authType.String()))

	return auth, nil
}

// Approve grants a pending authorization. The store rejects self-approval
// and non-pending states.
func (s *Service) Approve(ctx context.Context, id uuid.UUID, approverID string) error {
	if err := s.store.Approve(ctx, id, approverID); err != nil {
		return err
	}

	s.logger.Info("Approved signal access authorization",
		zap.String("authorizationID", id.String()),
		zap.String("approverID", approverID))

	return nil
}

// Deny rejects a pending authorization with a reason.
func (s *Service) Deny(ctx context.Context, id uuid.UUID, denierID, reason string) error {
	if err := s.store.Deny(ctx, id, denierID, reason); err != nil {
		return err
	}

	s.logger.Info("Denied signal access authorization",
		zap.String("authorizationID", id.String()),
		zap.String("denierID", denierID))

	return nil
}

// Validate reports whether the authorization currently permits reading the
// signal. It never returns an error for an invalid grant; a missing record
// simply does not authorize anything.
func (s *Service) Validate(ctx context.Context, id uuid.UUID, signalID string, now time.Time) (bool, error) {
	auth, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrAuthorizationNotFound) {
			return false, nil
		}

		return false, err
	}

	return auth.Valid(signalID, now), nil
}

// MarkUsed consumes an authorization without a read, e.g. when access was
// exercised through an external channel. Not idempotent: a second call
// returns types.ErrAuthorizationUsed.
func (s *Service) MarkUsed(ctx context.Context, id uuid.UUID, now time.Time) error {
	return s.store.MarkUsed(ctx, id, now)
}

// ConsumeForRead atomically consumes the authorization and returns the
// signal's escalation records, sealed ones included. Everything short of a
// valid, unused, unexpired grant for exactly this signal fails closed with
// no data returned.
func (s *Service) ConsumeForRead(
	ctx context.Context, id uuid.UUID, signalID string, now time.Time,
) ([]*types.SignalEscalation, error) {
	escalations, err := s.store.ConsumeForSignalRead(ctx, id, signalID, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Consumed authorization for sealed signal read",
		zap.String("authorizationID", id.String()),
		zap.String("signalID", signalID),
		zap.Int("escalations", len(escalations)))

	return escalations, nil
}

// ExpireOverdue sweeps expired pending and approved grants.
func (s *Service) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	return s.store.ExpireOverdue(ctx, now)
}
