// Package pipeline implements the signal intake path: confidence
// thresholding, daily alert throttling, sensitive-hold suppression, and
// handoff of crisis signals to blackout and partner routing.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/routing"
	"go.uber.org/zap"
)

// FlagStore persists concern flags.
type FlagStore interface {
	CreateFlag(ctx context.Context, flag *types.ConcernFlag) error
}

// BlackoutStarter opens a notification blackout for a crisis signal.
type BlackoutStarter interface {
	Begin(ctx context.Context, signalID, childID string, now time.Time) (*types.BlackoutRecord, error)
}

// SignalRouter hands a crisis signal to an external partner.
type SignalRouter interface {
	Route(ctx context.Context, payload *routing.SignalRoutingPayload, capabilities []string, now time.Time) (*types.SignalRoutingResult, error)
}

// reasonCapabilities maps a suppression reason to the partner capabilities a
// responder needs for it.
var reasonCapabilities = map[enum.SuppressionReason][]string{ //nolint:gochecknoglobals // reference data
	enum.SuppressionReasonSelfHarmDetected: {"self_harm_response"},
	enum.SuppressionReasonCrisisURLVisited: {"crisis_counseling"},
	enum.SuppressionReasonDistressSignals:  {"crisis_counseling"},
}

// Signal is one detection entering the pipeline together with the family
// and device context routing needs.
type Signal struct {
	Flag     *types.ConcernFlag
	Settings *FamilySettings
	// Day keys the daily throttle window; the caller supplies it so the
	// decision is deterministic under test and across timezones.
	Day             string
	ChildAge        int
	Jurisdiction    string
	FamilyStructure string
	Platform        string
	TriggerMethod   string
	DeviceID        string
}

// Outcome reports what the pipeline did with a signal.
type Outcome struct {
	// Stored is false when the flag fell below the confidence gate and was
	// discarded without a trace.
	Stored bool
	// Delivered is false for stored flags the daily throttle withheld.
	Delivered bool
	// Held is true when the flag entered sensitive hold.
	Held              bool
	SuppressionReason enum.SuppressionReason
	Blackout          *types.BlackoutRecord
	Routing           *types.SignalRoutingResult
}

// Pipeline wires the intake stages together.
type Pipeline struct {
	thresholder *Thresholder
	flags       FlagStore
	governor    *Governor
	suppressor  *Suppressor
	blackouts   BlackoutStarter
	router      SignalRouter
	logger      *zap.Logger
}

// New creates a pipeline over the given stages.
func New(
	thresholder *Thresholder, flags FlagStore, governor *Governor,
	suppressor *Suppressor, blackouts BlackoutStarter, router SignalRouter,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		thresholder: thresholder,
		flags:       flags,
		governor:    governor,
		suppressor:  suppressor,
		blackouts:   blackouts,
		router:      router,
		logger:      logger.Named("pipeline"),
	}
}

// Process runs one signal through the pipeline. Sub-threshold flags are
// discarded without storage. Stored flags pass the daily throttle, then the
// crisis check; a crisis flag is held from the family, covered by a fresh
// blackout, and routed to a crisis partner. Routing failure never fails
// intake: the signal is already queued for manual triage by then.
//
// For crisis categories the routing payload is built before anything is
// written, so a validation failure rejects the signal whole rather than
// leaving a held, blacked-out flag nothing will ever route.
func (p *Pipeline) Process(ctx context.Context, signal *Signal, now time.Time) (*Outcome, error) {
	flag := signal.Flag
	outcome := &Outcome{SuppressionReason: enum.SuppressionReasonNone}

	if !p.thresholder.ShouldSurface(flag, signal.Settings) {
		p.logger.Debug("Flag below effective threshold, discarding",
			zap.String("category", flag.Category),
			zap.Int("confidence", flag.Confidence))

		return outcome, nil
	}

	var payload *routing.SignalRoutingPayload

	if _, crisis := ReasonForCategory(flag.Category); crisis {
		var err error

		payload, err = routing.BuildPayload(map[string]any{
			"signalId":        flag.ID.String(),
			"childAge":        signal.ChildAge,
			"timestamp":       flag.DetectedAt,
			"familyStructure": signal.FamilyStructure,
			"jurisdiction":    signal.Jurisdiction,
			"platform":        signal.Platform,
			"triggerMethod":   signal.TriggerMethod,
			"deviceId":        signal.DeviceID,
		})
		if err != nil {
			return nil, err
		}
	}

	flag.Status = enum.FlagStatusPending
	if err := p.flags.CreateFlag(ctx, flag); err != nil {
		return nil, err
	}

	outcome.Stored = true

	delivered, err := p.governor.Admit(ctx, flag, signal.Settings.Tier, signal.Day, now)
	if err != nil {
		return nil, err
	}

	outcome.Delivered = delivered

	reason, held, err := p.suppressor.MaybeHold(ctx, flag, now)
	if err != nil {
		return nil, err
	}

	if !held {
		return outcome, nil
	}

	outcome.Held = true
	outcome.SuppressionReason = reason
	// A held flag is never family-visible regardless of the throttle slot
	// it claimed.
	outcome.Delivered = false

	record, err := p.blackouts.Begin(ctx, flag.ID.String(), flag.ChildID, now)
	if err != nil {
		return nil, err
	}

	outcome.Blackout = record

	result, err := p.router.Route(ctx, payload, reasonCapabilities[reason], now)
	if err != nil {
		if errors.Is(err, types.ErrNoPartnerMatch) || errors.Is(err, routing.ErrAllPartnersFailed) {
			p.logger.Warn("Crisis signal left in manual triage",
				zap.String("signalID", flag.ID.String()),
				zap.Error(err))

			return outcome, nil
		}

		return nil, err
	}

	outcome.Routing = result

	return outcome, nil
}
