package routing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticPartners struct {
	partners []*types.CrisisPartner
}

func (s *staticPartners) GetActivePartners(_ context.Context) ([]*types.CrisisPartner, error) {
	return s.partners, nil
}

type memResultStore struct {
	results map[uuid.UUID]*types.SignalRoutingResult
}

func newMemResultStore() *memResultStore {
	return &memResultStore{results: make(map[uuid.UUID]*types.SignalRoutingResult)}
}

func (s *memResultStore) CreateResult(_ context.Context, result *types.SignalRoutingResult) error {
	s.results[result.ID] = result
	return nil
}

func (s *memResultStore) MarkSent(_ context.Context, id uuid.UUID, retryCount int, _ time.Time) error {
	s.results[id].Status = enum.RoutingStatusSent
	s.results[id].RetryCount = retryCount

	return nil
}

func (s *memResultStore) MarkFailed(_ context.Context, id uuid.UUID, retryCount int, lastError string, _ time.Time) error {
	s.results[id].Status = enum.RoutingStatusFailed
	s.results[id].RetryCount = retryCount
	s.results[id].LastError = lastError

	return nil
}

func (s *memResultStore) bySignalAndStatus(signalID string, status enum.RoutingStatus) []*types.SignalRoutingResult {
	var matched []*types.SignalRoutingResult

	for _, result := range s.results {
		if result.SignalID == signalID && result.Status == status {
			matched = append(matched, result)
		}
	}

	return matched
}

// scriptedDispatcher fails delivery for the partner IDs it is told to.
type scriptedDispatcher struct {
	failing map[string]bool
	calls   []string
}

func (d *scriptedDispatcher) Dispatch(
	_ context.Context, partner *types.CrisisPartner, _ *routing.SignalRoutingPayload,
) (int, error) {
	d.calls = append(d.calls, partner.ID)

	if d.failing[partner.ID] {
		return 3, errors.New("connection refused")
	}

	return 1, nil
}

type memTriageQueue struct {
	items []*routing.TriageItem
}

func (q *memTriageQueue) Enqueue(_ context.Context, item *routing.TriageItem) error {
	q.items = append(q.items, item)
	return nil
}

func partner(id, jurisdiction string, priority int, capabilities ...string) *types.CrisisPartner {
	return &types.CrisisPartner{
		ID:            id,
		Name:          id,
		WebhookURL:    "https://" + id + ".example.org/hook",
		Active:        true,
		Jurisdictions: []string{jurisdiction},
		Priority:      priority,
		Capabilities:  capabilities,
	}
}

func TestMatchPartners(t *testing.T) {
	t.Parallel()

	t.Run("Country coverage includes subdivisions", func(t *testing.T) {
		t.Parallel()

		national := partner("us-national", "US", 2, "self_harm_response")
		state := partner("ca-state", "US-CA", 1, "self_harm_response")

		matched := routing.MatchPartners(
			[]*types.CrisisPartner{national, state}, "US-CA", []string{"self_harm_response"})
		require.Len(t, matched, 2)
		assert.Equal(t, "ca-state", matched[0].ID)
		assert.Equal(t, "us-national", matched[1].ID)
	})

	t.Run("Subdivision coverage never widens to the country", func(t *testing.T) {
		t.Parallel()

		state := partner("ca-state", "US-CA", 1, "self_harm_response")

		matched := routing.MatchPartners([]*types.CrisisPartner{state}, "US", []string{"self_harm_response"})
		assert.Empty(t, matched)
	})

	t.Run("Bare country code is not a subdivision", func(t *testing.T) {
		t.Parallel()

		canada := partner("ca-national", "CA", 1, "self_harm_response")

		matched := routing.MatchPartners([]*types.CrisisPartner{canada}, "US-CA", []string{"self_harm_response"})
		assert.Empty(t, matched)
	})

	t.Run("Capability mismatch excludes the partner", func(t *testing.T) {
		t.Parallel()

		reporting := partner("us-reporting", "US", 1, "mandatory_reporting")

		matched := routing.MatchPartners([]*types.CrisisPartner{reporting}, "US", []string{"self_harm_response"})
		assert.Empty(t, matched)
	})

	t.Run("Inactive partners are skipped", func(t *testing.T) {
		t.Parallel()

		inactive := partner("us-inactive", "US", 1, "self_harm_response")
		inactive.Active = false

		matched := routing.MatchPartners([]*types.CrisisPartner{inactive}, "US", []string{"self_harm_response"})
		assert.Empty(t, matched)
	})
}

func routePayload(t *testing.T) *routing.SignalRoutingPayload {
	t.Helper()

	payload, err := routing.BuildPayload(map[string]any{
		"signalId":     "signal-1",
		"childAge":     14,
		"timestamp":    time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		"jurisdiction": "US-CA",
	})
	require.NoError(t, err)

	return payload
}

func TestRoute(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	capabilities := []string{"self_harm_response"}

	t.Run("Delivers to the highest priority match", func(t *testing.T) {
		t.Parallel()

		results := newMemResultStore()
		dispatcher := &scriptedDispatcher{}
		triage := &memTriageQueue{}
		router := routing.NewRouter(
			&staticPartners{partners: []*types.CrisisPartner{
				partner("us-national", "US", 2, "self_harm_response"),
				partner("ca-state", "US-CA", 1, "self_harm_response"),
			}},
			results, dispatcher, triage, zap.NewNop())

		result, err := router.Route(t.Context(), routePayload(t), capabilities, now)
		require.NoError(t, err)

		assert.Equal(t, "ca-state", result.PartnerID)
		assert.Equal(t, enum.RoutingStatusSent, result.Status)
		assert.Equal(t, 0, result.RetryCount)
		assert.Equal(t, []string{"ca-state"}, dispatcher.calls)
		assert.Empty(t, triage.items)
	})

	t.Run("Falls back to the next match on failure", func(t *testing.T) {
		t.Parallel()

		results := newMemResultStore()
		dispatcher := &scriptedDispatcher{failing: map[string]bool{"ca-state": true}}
		triage := &memTriageQueue{}
		router := routing.NewRouter(
			&staticPartners{partners: []*types.CrisisPartner{
				partner("us-national", "US", 2, "self_harm_response"),
				partner("ca-state", "US-CA", 1, "self_harm_response"),
			}},
			results, dispatcher, triage, zap.NewNop())

		result, err := router.Route(t.Context(), routePayload(t), capabilities, now)
		require.NoError(t, err)

		assert.Equal(t, "us-national", result.PartnerID)
		assert.Equal(t, []string{"ca-state", "us-national"}, dispatcher.calls)

		// The failed attempt is preserved with its error. Retry counts never
		// include the first attempt, on either outcome.
		failed := results.bySignalAndStatus("signal-1", enum.RoutingStatusFailed)
		require.Len(t, failed, 1)
		assert.Equal(t, "ca-state", failed[0].PartnerID)
		assert.Equal(t, 2, failed[0].RetryCount)
		assert.Contains(t, failed[0].LastError, "connection refused")
		assert.Equal(t, 0, result.RetryCount)
	})

	t.Run("No match queues for manual triage", func(t *testing.T) {
		t.Parallel()

		results := newMemResultStore()
		triage := &memTriageQueue{}
		router := routing.NewRouter(
			&staticPartners{partners: []*types.CrisisPartner{
				partner("gb-national", "GB", 1, "self_harm_response"),
			}},
			results, &scriptedDispatcher{}, triage, zap.NewNop())

		_, err := router.Route(t.Context(), routePayload(t), capabilities, now)
		assert.ErrorIs(t, err, types.ErrNoPartnerMatch)

		require.Len(t, triage.items, 1)
		assert.Equal(t, "signal-1", triage.items[0].SignalID)
		assert.Equal(t, "US-CA", triage.items[0].Jurisdiction)
	})

	t.Run("Exhausted fallbacks queue for manual triage", func(t *testing.T) {
		t.Parallel()

		results := newMemResultStore()
		dispatcher := &scriptedDispatcher{failing: map[string]bool{"ca-state": true, "us-national": true}}
		triage := &memTriageQueue{}
		router := routing.NewRouter(
			&staticPartners{partners: []*types.CrisisPartner{
				partner("us-national", "US", 2, "self_harm_response"),
				partner("ca-state", "US-CA", 1, "self_harm_response"),
			}},
			results, dispatcher, triage, zap.NewNop())

		_, err := router.Route(t.Context(), routePayload(t), capabilities, now)
		assert.ErrorIs(t, err, routing.ErrAllPartnersFailed)

		assert.Len(t, results.bySignalAndStatus("signal-1", enum.RoutingStatusFailed), 2)
		require.Len(t, triage.items, 1)
	})
}
