package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/pipeline"
	"github.com/harborlight/harborlight/internal/routing"
	"github.com/harborlight/harborlight/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memFlagStore struct {
	flags map[string]*types.ConcernFlag // keyed by content+category
}

func newMemFlagStore() *memFlagStore {
	return &memFlagStore{flags: make(map[string]*types.ConcernFlag)}
}

func (s *memFlagStore) CreateFlag(_ context.Context, flag *types.ConcernFlag) error {
	key := flag.ContentID + "/" + flag.Category
	if _, ok := s.flags[key]; ok {
		return types.ErrFlagAlreadyExists
	}

	s.flags[key] = flag

	return nil
}

type recordingBlackouts struct {
	begun []string
}

func (b *recordingBlackouts) Begin(
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

type recordingRouter struct {
	payloads []*routing.SignalRoutingPayload
	err      error
}

func (r *recordingRouter) Route(
	_ context.Context, payload *routing.SignalRoutingPayload, _ []string, _ time.Time,
) (*types.SignalRoutingResult, error) {
	r.payloads = append(r.payloads, payload)

	if r.err != nil {
		return nil, r.err
	}

	return &types.SignalRoutingResult{
		ID:       uuid.New(),
		SignalID: payload.SignalID,
		Status:   enum.RoutingStatusSent,
	}, nil
}

type pipelineFixture struct {
	pipeline    *pipeline.Pipeline
	flags       *memFlagStore
	throttle    *memThrottleStore
	suppression *memSuppressionStore
	blackouts   *recordingBlackouts
	router      *recordingRouter
}

func newPipelineFixture() *pipelineFixture {
	safety := config.DefaultSafety()
	logger := zap.NewNop()

	f := &pipelineFixture{
		flags:       newMemFlagStore(),
		throttle:    newMemThrottleStore(),
		suppression: newMemSuppressionStore(),
		blackouts:   &recordingBlackouts{},
		router:      &recordingRouter{},
	}

	f.pipeline = pipeline.New(
		pipeline.NewThresholder(&safety),
		f.flags,
		pipeline.NewGovernor(f.throttle, &safety, logger),
		pipeline.NewSuppressor(f.suppression, &staticBlackouts{}, &safety, logger),
		f.blackouts,
		f.router,
		logger,
	)

	return f
}

func testSignal(category string, confidence int) *pipeline.Signal {
	return &pipeline.Signal{
		Flag: &types.ConcernFlag{
			ID:         uuid.New(),
			ContentID:  uuid.NewString(),
			ChildID:    "child-1",
			FamilyID:   "family-1",
			Category:   category,
			Severity:   enum.FlagSeverityHigh,
			Confidence: confidence,
			DetectedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		},
		Settings: &pipeline.FamilySettings{
			FamilyID: "family-1",
			Level:    enum.SensitivityLevelBalanced,
			Tier:     enum.ThrottleTierStandard,
		},
		Day:           "2026-01-10",
		ChildAge:      14,
		Jurisdiction:  "US-CA",
		Platform:      "android",
		TriggerMethod: "on_device_classifier",
		DeviceID:      "d41d8cd98f00b204",
	}
}

func TestProcess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Sub-threshold flags are discarded without storage", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()

		outcome, err := f.pipeline.Process(ctx, testSignal("Bullying", 60), now)
		require.NoError(t, err)

		assert.False(t, outcome.Stored)
		assert.Empty(t, f.flags.flags)
	})

	t.Run("Ordinary flag is stored and delivered", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()

		outcome, err := f.pipeline.Process(ctx, testSignal("Bullying", 80), now)
		require.NoError(t, err)

		assert.True(t, outcome.Stored)
		assert.True(t, outcome.Delivered)
		assert.False(t, outcome.Held)
		assert.Empty(t, f.blackouts.begun)
		assert.Empty(t, f.router.payloads)
	})

	t.Run("Duplicate content and category is rejected", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()
		signal := testSignal("Bullying", 80)

		_, err := f.pipeline.Process(ctx, signal, now)
		require.NoError(t, err)

		duplicate := testSignal("Bullying", 85)
		duplicate.Flag.ContentID = signal.Flag.ContentID

		_, err = f.pipeline.Process(ctx, duplicate, now)
		assert.ErrorIs(t, err, types.ErrFlagAlreadyExists)
	})

	t.Run("Crisis flag is held, blacked out and routed", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()
		signal := testSignal("Self-Harm Indicators", 92)

		outcome, err := f.pipeline.Process(ctx, signal, now)
		require.NoError(t, err)

		assert.True(t, outcome.Stored)
		assert.True(t, outcome.Held)
		assert.False(t, outcome.Delivered)
		assert.Equal(t, enum.SuppressionReasonSelfHarmDetected, outcome.SuppressionReason)

		require.NotNil(t, outcome.Blackout)
		assert.Equal(t, []string{signal.Flag.ID.String()}, f.blackouts.begun)

		require.NotNil(t, outcome.Routing)
		require.Len(t, f.router.payloads, 1)

		// The payload carries the anonymized projection, not family PII.
		payload := f.router.payloads[0]
		assert.Equal(t, signal.Flag.ID.String(), payload.SignalID)
		assert.Equal(t, 14, payload.ChildAge)
		assert.Equal(t, "US-CA", payload.Jurisdiction)
	})

	t.Run("Invalid crisis payload rejects the signal before any write", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()
		signal := testSignal("Self-Harm Indicators", 92)
		signal.Jurisdiction = "California"

		_, err := f.pipeline.Process(ctx, signal, now)
		require.ErrorIs(t, err, routing.ErrInvalidJurisdiction)

		assert.Empty(t, f.flags.flags)
		assert.Empty(t, f.suppression.held)
		assert.Empty(t, f.blackouts.begun)
		assert.Empty(t, f.router.payloads)
	})

	t.Run("Invalid child age rejects the signal before any write", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()
		signal := testSignal("Acute Distress", 93)
		signal.ChildAge = 0

		_, err := f.pipeline.Process(ctx, signal, now)
		require.ErrorIs(t, err, routing.ErrInvalidChildAge)

		assert.Empty(t, f.flags.flags)
		assert.Empty(t, f.blackouts.begun)
	})

	t.Run("Ordinary flag ignores routing context", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()
		signal := testSignal("Bullying", 80)
		signal.Jurisdiction = ""

		outcome, err := f.pipeline.Process(ctx, signal, now)
		require.NoError(t, err)

		assert.True(t, outcome.Stored)
		assert.True(t, outcome.Delivered)
	})

	t.Run("Routing failure does not fail intake", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()
		f.router.err = types.ErrNoPartnerMatch

		outcome, err := f.pipeline.Process(ctx, testSignal("Suicidal Ideation", 96), now)
		require.NoError(t, err)

		assert.True(t, outcome.Held)
		assert.Nil(t, outcome.Routing)
	})

	t.Run("Throttled crisis flag is still held and routed", func(t *testing.T) {
		t.Parallel()

		f := newPipelineFixture()

		// Exhaust the standard tier's three daily slots.
		for range 3 {
			_, err := f.pipeline.Process(ctx, testSignal("Bullying", 80), now)
			require.NoError(t, err)
		}

		outcome, err := f.pipeline.Process(ctx, testSignal("Acute Distress", 93), now)
		require.NoError(t, err)

		assert.True(t, outcome.Stored)
		assert.False(t, outcome.Delivered)
		assert.True(t, outcome.Held)
		assert.Len(t, f.router.payloads, 1)
	})
}
