package authorization_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/authorization"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memAuthStore mirrors the database model's conditional-update semantics in
// memory.
type memAuthStore struct {
	auths       map[uuid.UUID]*types.SignalAccessAuthorization
	escalations map[string][]*types.SignalEscalation
}

func newMemAuthStore() *memAuthStore {
	return &memAuthStore{
		auths:       make(map[uuid.UUID]*types.SignalAccessAuthorization),
		escalations: make(map[string][]*types.SignalEscalation),
	}
}

func (s *memAuthStore) Create(_ context.Context, auth *types.SignalAccessAuthorization) error {
	s.auths[auth.ID] = auth
	return nil
}

func (s *memAuthStore) GetByID(_ context.Context, id uuid.UUID) (*types.SignalAccessAuthorization, error) {
	auth, ok := s.auths[id]
	if !ok {
		return nil, types.ErrAuthorizationNotFound
	}

	return auth, nil
}

func (s *memAuthStore) decide(id uuid.UUID, deciderID string, apply func(*types.SignalAccessAuthorization)) error {
	auth, ok := s.auths[id]
	if !ok {
		return types.ErrAuthorizationNotFound
	}

	if auth.AdminUserID == deciderID {
		return types.ErrSelfApproval
	}

	if auth.Status != enum.AuthorizationStatusPending {
		return types.ErrAuthorizationNotPending
	}

	apply(auth)

	return nil
}

func (s *memAuthStore) Approve(_ context.Context, id uuid.UUID, approverID string) error {
	return s.decide(id, approverID, func(auth *types.SignalAccessAuthorization) {
		auth.Status = enum.AuthorizationStatusApproved
		auth.ApprovedBy = approverID
	})
}

func (s *memAuthStore) Deny(_ context.Context, id uuid.UUID, denierID, reason string) error {
	return s.decide(id, denierID, func(auth *types.SignalAccessAuthorization) {
		auth.Status = enum.AuthorizationStatusDenied
		auth.DeniedBy = denierID
		auth.DenialReason = reason
	})
}

func (s *memAuthStore) MarkUsed(_ context.Context, id uuid.UUID, now time.Time) error {
	auth, ok := s.auths[id]
	if !ok {
		return types.ErrAuthorizationNotFound
	}

	if auth.Used {
		return types.ErrAuthorizationUsed
	}

	auth.Used = true
	auth.UsedAt = now

	return nil
}

func (s *memAuthStore) ConsumeForSignalRead(
	_ context.Context, id uuid.UUID, signalID string, now time.Time,
) ([]*types.SignalEscalation, error) {
	auth, ok := s.auths[id]
	if !ok {
		return nil, types.ErrAuthorizationNotFound
	}

	if auth.Used {
		return nil, types.ErrAuthorizationUsed
	}

	if !auth.Valid(signalID, now) {
		return nil, types.ErrAuthorizationInvalid
	}

	auth.Used = true
	auth.UsedAt = now

	return s.escalations[signalID], nil
}

func (s *memAuthStore) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	var expired int64

	for _, auth := range s.auths {
		pendingOrApproved := auth.Status == enum.AuthorizationStatusPending ||
			auth.Status == enum.AuthorizationStatusApproved
		if pendingOrApproved && !auth.Used && !now.Before(auth.ExpiresAt) {
			auth.Status = enum.AuthorizationStatusExpired
			expired++
		}
	}

	return expired, nil
}

func newService(store authorization.Store) *authorization.Service {
	safety := config.DefaultSafety()
	return authorization.NewService(store, &safety, zap.NewNop())
}

func TestRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Requires a reason", func(t *testing.T) {
		t.Parallel()

		service := newService(newMemAuthStore())

		_, err := service.Request(ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "", now)
		assert.ErrorIs(t, err, types.ErrAuthorizationReason)
	})

	t.Run("Starts pending with the configured validity", func(t *testing.T) {
		t.Parallel()

		service := newService(newMemAuthStore())

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "post-incident review", now)
		require.NoError(t, err)

		assert.Equal(t, enum.AuthorizationStatusPending, auth.Status)
		assert.Equal(t, now.Add(24*time.Hour), auth.ExpiresAt)
		assert.False(t, auth.Used)
	})
}

func TestDualControl(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Requester cannot approve their own request", func(t *testing.T) {
		t.Parallel()

		service := newService(newMemAuthStore())

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "post-incident review", now)
		require.NoError(t, err)

		assert.ErrorIs(t, service.Approve(ctx, auth.ID, "admin-1"), types.ErrSelfApproval)
		assert.ErrorIs(t, service.Deny(ctx, auth.ID, "admin-1", "no"), types.ErrSelfApproval)
	})

	t.Run("Second principal approves", func(t *testing.T) {
		t.Parallel()

		store := newMemAuthStore()
		service := newService(store)

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "post-incident review", now)
		require.NoError(t, err)

		require.NoError(t, service.Approve(ctx, auth.ID, "admin-2"))
		assert.Equal(t, enum.AuthorizationStatusApproved, store.auths[auth.ID].Status)

		// A decided request cannot be decided again.
		assert.ErrorIs(t, service.Deny(ctx, auth.ID, "admin-3", "late"), types.ErrAuthorizationNotPending)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	store := newMemAuthStore()
	service := newService(store)

	approved, err := service.Request(
		ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "post-incident review", now)
	require.NoError(t, err)
	require.NoError(t, service.Approve(ctx, approved.ID, "admin-2"))

	pending, err := service.Request(
		ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "post-incident review", now)
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       uuid.UUID
		signalID string
		at       time.Time
		expected bool
	}{
		{name: "Approved unexpired matching signal", id: approved.ID, signalID: "signal-1", at: now.Add(time.Hour), expected: true},
		{name: "Wrong signal", id: approved.ID, signalID: "signal-2", at: now.Add(time.Hour), expected: false},
		{name: "Expired grant", id: approved.ID, signalID: "signal-1", at: now.Add(25 * time.Hour), expected: false},
		{name: "Pending grant", id: pending.ID, signalID: "signal-1", at: now.Add(time.Hour), expected: false},
		{name: "Unknown grant", id: uuid.New(), signalID: "signal-1", at: now.Add(time.Hour), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, err := service.Validate(ctx, tt.id, tt.signalID, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
		})
	}
}

func TestSingleUse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("MarkUsed is not idempotent", func(t *testing.T) {
		t.Parallel()

		service := newService(newMemAuthStore())

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeIncidentAudit, "audit trail", now)
		require.NoError(t, err)
		require.NoError(t, service.Approve(ctx, auth.ID, "admin-2"))

		require.NoError(t, service.MarkUsed(ctx, auth.ID, now.Add(time.Hour)))
		assert.ErrorIs(t, service.MarkUsed(ctx, auth.ID, now.Add(2*time.Hour)), types.ErrAuthorizationUsed)
	})

	t.Run("ConsumeForRead returns sealed records exactly once", func(t *testing.T) {
		t.Parallel()

		store := newMemAuthStore()
		store.escalations["signal-1"] = []*types.SignalEscalation{
			{ID: uuid.New(), SignalID: "signal-1", Sealed: false},
			{ID: uuid.New(), SignalID: "signal-1", Sealed: true},
		}
		service := newService(store)

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeLegalRequest, "court order 26-119", now)
		require.NoError(t, err)
		require.NoError(t, service.Approve(ctx, auth.ID, "admin-2"))

		escalations, err := service.ConsumeForRead(ctx, auth.ID, "signal-1", now.Add(time.Hour))
		require.NoError(t, err)
		assert.Len(t, escalations, 2)

		// The grant is spent; a second read fails closed.
		_, err = service.ConsumeForRead(ctx, auth.ID, "signal-1", now.Add(time.Hour))
		assert.ErrorIs(t, err, types.ErrAuthorizationUsed)
	})

	t.Run("ConsumeForRead fails closed on a pending grant", func(t *testing.T) {
		t.Parallel()

		service := newService(newMemAuthStore())

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeLegalRequest, "court order 26-119", now)
		require.NoError(t, err)

		_, err = service.ConsumeForRead(ctx, auth.ID, "signal-1", now.Add(time.Hour))
		assert.ErrorIs(t, err, types.ErrAuthorizationInvalid)
	})

	t.Run("ConsumeForRead fails closed on a signal mismatch", func(t *testing.T) {
		t.Parallel()

		service := newService(newMemAuthStore())

		auth, err := service.Request(
			ctx, "admin-1", "signal-1", enum.AuthorizationTypeLegalRequest, "court order 26-119", now)
		require.NoError(t, err)
		require.NoError(t, service.Approve(ctx, auth.ID, "admin-2"))

		_, err = service.ConsumeForRead(ctx, auth.ID, "signal-2", now.Add(time.Hour))
		assert.ErrorIs(t, err, types.ErrAuthorizationInvalid)
	})
}

func TestExpireOverdue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	store := newMemAuthStore()
	service := newService(store)

	pending, err := service.Request(
		ctx, "admin-1", "signal-1", enum.AuthorizationTypeCrisisReview, "review", now)
	require.NoError(t, err)

	used, err := service.Request(
		ctx, "admin-1", "signal-2", enum.AuthorizationTypeCrisisReview, "review", now)
	require.NoError(t, err)
	require.NoError(t, service.Approve(ctx, used.ID, "admin-2"))
	require.NoError(t, service.MarkUsed(ctx, used.ID, now.Add(time.Hour)))

	expired, err := service.ExpireOverdue(ctx, now.Add(25*time.Hour))
	require.NoError(t, err)

	// Only the unspent grant expires; used grants are terminal.
	assert.Equal(t, int64(1), expired)
	assert.Equal(t, enum.AuthorizationStatusExpired, store.auths[pending.ID].Status)
	assert.Equal(t, enum.AuthorizationStatusApproved, store.auths[used.ID].Status)
}
