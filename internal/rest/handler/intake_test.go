package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/rest/handler"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/harborlight/harborlight/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type stubFlagStore struct {
	created []*types.ConcernFlag
}

func (s *stubFlagStore) CreateFlag(_ context.Context, flag *types.ConcernFlag) error {
	s.created = append(s.created, flag)
	return nil
}

func (s *stubFlagStore) ReserveAlertSlot(
	_ context.Context, _ *types.ConcernFlag, _ string, _ int, _ time.Time,
) (bool, error) {
	return true, nil
}

type stubSuppressionStore struct {
	held []uuid.UUID
}

func (s *stubSuppressionStore) Hold(
	_ context.Context, flagID uuid.UUID, _ enum.SuppressionReason, _, _ time.Time,
) error {
	s.held = append(s.held, flagID)
	return nil
}

func (s *stubSuppressionStore) Release(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return nil
}

func (s *stubSuppressionStore) GetHeldFlagsDue(_ context.Context, _ time.Time) ([]*types.ConcernFlag, error) {
	return nil, nil
}

type stubBlackouts struct {
	begun []string
}

func (b *stubBlackouts) Begin(
	_ context.Context, signalID, childID string, now time.Time,
) (*types.BlackoutRecord, error) {
	b.begun = append(b.begun, signalID)

	return &types.BlackoutRecord{
		ID:        uuid.New(),
		SignalID:  signalID,
		ChildID:   childID,
		StartedAt: now,
		ExpiresAt: now.Add(48 * time.Hour),
		Status:    enum.BlackoutStatusActive,
	}, nil
}

func (b *stubBlackouts) IsActive(_ context.Context, _ string, _ time.Time) (bool, error) {
	return true, nil
}

type stubRouter struct {
	routed []*routing.SignalRoutingPayload
}

func (r *stubRouter) Route(
	_ context.Context, payload *routing.SignalRoutingPayload, _ []string, _ time.Time,
) (*types.SignalRoutingResult, error) {
	r.routed = append(r.routed, payload)

	return &types.SignalRoutingResult{
		ID:       uuid.New(),
		SignalID: payload.SignalID,
		Status:   enum.RoutingStatusSent,
	}, nil
}

type intakeFixture struct {
	handler   *handler.IntakeHandler
	flags     *stubFlagStore
	holds     *stubSuppressionStore
	blackouts *stubBlackouts
	router    *stubRouter
}

func newIntakeFixture(t *testing.T) *intakeFixture {
	t.Helper()

	safety := config.DefaultSafety()
	logger := zap.NewNop()

	flags := &stubFlagStore{}
	holds := &stubSuppressionStore{}
	blackouts := &stubBlackouts{}
	router := &stubRouter{}

	suppressor := pipeline.NewSuppressor(holds, blackouts, &safety, logger)
	intake := pipeline.New(
		pipeline.NewThresholder(&safety), flags,
		pipeline.NewGovernor(flags, &safety, logger),
		suppressor, blackouts, router, logger)

	return &intakeFixture{
		handler:   handler.NewIntakeHandler(intake, logger),
		flags:     flags,
		holds:     holds,
		blackouts: blackouts,
		router:    router,
	}
}

func submitBody(t *testing.T, mutate func(*restTypes.SubmitSignalRequest)) string {
	t.Helper()

	body := restTypes.SubmitSignalRequest{
		ContentID:     "content-1",
		ChildID:       "child-1",
		FamilyID:      "family-1",
		Category:      "Bullying",
		Severity:      "High",
		Confidence:    90,
		Reasoning:     "direct threat language",
		DetectedAt:    time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		Settings:      restTypes.FamilySettingsRequest{Level: "Balanced", Tier: "Standard"},
		Day:           "2026-01-10",
		ChildAge:      13,
		Jurisdiction:  "US-CA",
		Platform:      "chat",
		TriggerMethod: "classifier",
		DeviceID:      "device-1",
	}

	if mutate != nil {
		mutate(&body)
	}

	data, err := sonic.Marshal(body)
	require.NoError(t, err)

	return string(data)
}

func (f *intakeFixture) submit(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/intake/signals", strings.NewReader(body))
	rec := httptest.NewRecorder()
	require.NoError(t, f.handler.SubmitSignal(rec, bunrouter.NewRequest(req)))

	return rec
}

func TestSubmitSignalConfidenceBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		confidence     int
		expectedStatus int
		expectStored   bool
	}{
		{
			name:           "Above range rejected",
			confidence:     150,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative rejected",
			confidence:     -1,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Upper bound accepted",
			confidence:     100,
			expectedStatus: http.StatusOK,
			expectStored:   true,
		},
		{
			name:           "Lower bound accepted and discarded as sub-threshold",
			confidence:     0,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fixture := newIntakeFixture(t)

			rec := fixture.submit(t, submitBody(t, func(body *restTypes.SubmitSignalRequest) {
				body.Confidence = tt.confidence
			}))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectStored {
				assert.Len(t, fixture.flags.created, 1)
			} else {
				assert.Empty(t, fixture.flags.created)
			}
		})
	}
}

func TestSubmitSignalInvalidJurisdictionWritesNothing(t *testing.T) {
	t.Parallel()

	fixture := newIntakeFixture(t)

	rec := fixture.submit(t, submitBody(t, func(body *restTypes.SubmitSignalRequest) {
		body.Category = "Self-Harm Indicators"
		body.Jurisdiction = "California"
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fixture.flags.created)
	assert.Empty(t, fixture.holds.held)
	assert.Empty(t, fixture.blackouts.begun)
	assert.Empty(t, fixture.router.routed)
}
