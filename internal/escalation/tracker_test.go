package escalation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/escalation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memEscalationStore struct {
	escalations map[uuid.UUID]*types.SignalEscalation
}

func newMemEscalationStore() *memEscalationStore {
	return &memEscalationStore{escalations: make(map[uuid.UUID]*types.SignalEscalation)}
}

func (s *memEscalationStore) Create(_ context.Context, escalation *types.SignalEscalation) error {
	s.escalations[escalation.ID] = escalation
	return nil
}

func (s *memEscalationStore) Seal(_ context.Context, id uuid.UUID, sealedBy string, now time.Time) error {
	escalation, ok := s.escalations[id]
	if !ok {
		return types.ErrEscalationNotFound
	}

	if escalation.Sealed {
		return types.ErrEscalationAlreadySealed
	}

	escalation.Sealed = true
	escalation.SealedBy = sealedBy
	escalation.SealedAt = now

	return nil
}

func (s *memEscalationStore) GetUnsealedBySignal(_ context.Context, signalID string) ([]*types.SignalEscalation, error) {
	var matched []*types.SignalEscalation

	for _, escalation := range s.escalations {
		if escalation.SignalID == signalID && !escalation.Sealed {
			matched = append(matched, escalation)
		}
	}

	return matched, nil
}

type memLegalStore struct {
	requests map[uuid.UUID]*types.LegalRequest
}

func newMemLegalStore() *memLegalStore {
	return &memLegalStore{requests: make(map[uuid.UUID]*types.LegalRequest)}
}

func (s *memLegalStore) Create(_ context.Context, request *types.LegalRequest) error {
	s.requests[request.ID] = request
	return nil
}

func (s *memLegalStore) GetByID(_ context.Context, id uuid.UUID) (*types.LegalRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, types.ErrLegalRequestNotFound
	}

	return request, nil
}

func (s *memLegalStore) Review(
	_ context.Context, id uuid.UUID, reviewerID string, approved bool, notes string, now time.Time,
) error {
	request, ok := s.requests[id]
	if !ok {
		return types.ErrLegalRequestNotFound
	}

	if request.Status != enum.LegalRequestStatusPendingLegalReview {
		return types.ErrLegalRequestNotPending
	}

	if approved {
		request.Status = enum.LegalRequestStatusApproved
	} else {
		request.Status = enum.LegalRequestStatusDenied
	}

	request.ReviewedBy = reviewerID
	request.ReviewedAt = now
	request.ReviewNotes = notes

	return nil
}

func (s *memLegalStore) Fulfill(_ context.Context, id uuid.UUID, fulfilledBy string, now time.Time) error {
	request, ok := s.requests[id]
	if !ok {
		return types.ErrLegalRequestNotFound
	}

	if request.Status != enum.LegalRequestStatusApproved {
		return types.ErrLegalRequestNotApproved
	}

	request.Status = enum.LegalRequestStatusFulfilled
	request.FulfilledBy = fulfilledBy
	request.FulfilledAt = now

	return nil
}

func newTracker(store escalation.Store, legal escalation.LegalStore) *escalation.Tracker {
	return escalation.NewTracker(store, legal, zap.NewNop())
}

func TestReport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Requires a partner identity", func(t *testing.T) {
		t.Parallel()

		tracker := newTracker(newMemEscalationStore(), newMemLegalStore())

		_, err := tracker.Report(ctx, "signal-1", "", enum.EscalationTypeMandatoryReport, "US-CA", now)
		assert.ErrorIs(t, err, escalation.ErrPartnerRequired)
	})

	t.Run("New escalations start unsealed", func(t *testing.T) {
		t.Parallel()

		store := newMemEscalationStore()
		tracker := newTracker(store, newMemLegalStore())

		record, err := tracker.Report(ctx, "signal-1", "partner-1", enum.EscalationTypeMandatoryReport, "US-CA", now)
		require.NoError(t, err)

		assert.False(t, record.Sealed)
		assert.Equal(t, enum.EscalationTypeMandatoryReport, record.EscalationType)

		unsealed, err := tracker.UnsealedBySignal(ctx, "signal-1")
		require.NoError(t, err)
		assert.Len(t, unsealed, 1)
	})
}

func TestSeal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	store := newMemEscalationStore()
	tracker := newTracker(store, newMemLegalStore())

	record, err := tracker.Report(ctx, "signal-1", "partner-1", enum.EscalationTypeLawEnforcementReferral, "US-CA", now)
	require.NoError(t, err)

	require.NoError(t, tracker.Seal(ctx, record.ID, "policy:mandatory-report", now.Add(time.Hour)))

	// Sealed records vanish from ordinary reads.
	unsealed, err := tracker.UnsealedBySignal(ctx, "signal-1")
	require.NoError(t, err)
	assert.Empty(t, unsealed)

	// Sealing is one-way.
	assert.ErrorIs(t,
		tracker.Seal(ctx, record.ID, "admin-1", now.Add(2*time.Hour)),
		types.ErrEscalationAlreadySealed)

	assert.ErrorIs(t,
		tracker.Seal(ctx, uuid.New(), "admin-1", now),
		types.ErrEscalationNotFound)
}

func TestLegalRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Requires at least one signal", func(t *testing.T) {
		t.Parallel()

		tracker := newTracker(newMemEscalationStore(), newMemLegalStore())

		_, err := tracker.OpenLegalRequest(
			ctx, enum.LegalRequestTypeCourtOrder, "County Court", "US-CA", "26-119", nil, now)
		assert.ErrorIs(t, err, types.ErrLegalRequestNoSignals)
	})

	t.Run("Every request starts in pending legal review", func(t *testing.T) {
		t.Parallel()

		tracker := newTracker(newMemEscalationStore(), newMemLegalStore())

		for _, requestType := range enum.LegalRequestTypeValues() {
			request, err := tracker.OpenLegalRequest(
				ctx, requestType, "County Court", "US-CA", "26-119", []string{"signal-1"}, now)
			require.NoError(t, err)
			assert.Equal(t, enum.LegalRequestStatusPendingLegalReview, request.Status)
		}
	})

	t.Run("Review requires a reviewer identity", func(t *testing.T) {
		t.Parallel()

		tracker := newTracker(newMemEscalationStore(), newMemLegalStore())

		request, err := tracker.OpenLegalRequest(
			ctx, enum.LegalRequestTypeSubpoena, "County Court", "US-CA", "26-119", []string{"signal-1"}, now)
		require.NoError(t, err)

		err = tracker.ReviewLegalRequest(ctx, request.ID, "", true, "", now)
		assert.ErrorIs(t, err, types.ErrReviewerRequired)
	})

	t.Run("Fulfillment requires prior approval", func(t *testing.T) {
		t.Parallel()

		legal := newMemLegalStore()
		tracker := newTracker(newMemEscalationStore(), legal)

		request, err := tracker.OpenLegalRequest(
			ctx, enum.LegalRequestTypeSearchWarrant, "County Court", "US-CA", "26-119", []string{"signal-1"}, now)
		require.NoError(t, err)

		err = tracker.FulfillLegalRequest(ctx, request.ID, "admin-1", now)
		assert.ErrorIs(t, err, types.ErrLegalRequestNotApproved)

		require.NoError(t, tracker.ReviewLegalRequest(ctx, request.ID, "counsel-1", true, "order verified", now))
		require.NoError(t, tracker.FulfillLegalRequest(ctx, request.ID, "admin-1", now.Add(time.Hour)))

		stored, err := tracker.GetLegalRequest(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.LegalRequestStatusFulfilled, stored.Status)
		assert.Equal(t, "counsel-1", stored.ReviewedBy)
		assert.Equal(t, "admin-1", stored.FulfilledBy)
	})

	t.Run("Denied requests cannot be fulfilled", func(t *testing.T) {
		t.Parallel()

		tracker := newTracker(newMemEscalationStore(), newMemLegalStore())

		request, err := tracker.OpenLegalRequest(
			ctx, enum.LegalRequestTypeEmergencyDisclosure, "Sheriff", "US-CA", "ED-7", []string{"signal-1"}, now)
		require.NoError(t, err)

		require.NoError(t, tracker.ReviewLegalRequest(ctx, request.ID, "counsel-1", false, "insufficient basis", now))

		err = tracker.FulfillLegalRequest(ctx, request.ID, "admin-1", now)
		assert.ErrorIs(t, err, types.ErrLegalRequestNotApproved)
	})
}
