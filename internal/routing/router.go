package routing

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"go.uber.org/zap"
)

// ErrAllPartnersFailed is returned when every matching partner rejected
// delivery after retries.
var ErrAllPartnersFailed = errors.New("all matching partners failed delivery")

// PartnerSource lists active crisis partners.
type PartnerSource interface {
	GetActivePartners(ctx context.Context) ([]*types.CrisisPartner, error)
}

// ResultStore records routing attempt outcomes.
type ResultStore interface {
	CreateResult(ctx context.Context, result *types.SignalRoutingResult) error
	MarkSent(ctx context.Context, id uuid.UUID, retryCount int, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, lastError string, now time.Time) error
}

// Router selects crisis partners for surfaced signals and drives webhook
// delivery with per-partner fallback.
type Router struct {
	partners   PartnerSource
	results    ResultStore
	dispatcher Dispatcher
	triage     TriageQueue
	logger     *zap.Logger
}

// NewRouter creates a router over the given partner source, result store,
// dispatcher, and triage queue.
func NewRouter(
	partners PartnerSource, results ResultStore, dispatcher Dispatcher,
	triage TriageQueue, logger *zap.Logger,
) *Router {
	return &Router{
		partners:   partners,
		results:    results,
		dispatcher: dispatcher,
		triage:     triage,
		logger:     logger.Named("router"),
	}
}

// MatchPartners filters active partners by jurisdiction and capability and
// orders them by priority, lowest first. Order among equal priorities is
// stable.
func MatchPartners(partners []*types.CrisisPartner, jurisdiction string, capabilities []string) []*types.CrisisPartner {
	var matched []*types.CrisisPartner

	for _, partner := range partners {
		if !partner.Active {
			continue
		}

		if !partner.SupportsJurisdiction(jurisdiction) {
			continue
		}

		if !partner.SupportsAnyCapability(capabilities) {
			continue
		}

		matched = append(matched, partner)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})

	return matched
}

// Route delivers the payload to the highest-priority matching partner,
// falling back to the next match when delivery fails. Every attempt leaves a
// routing result row. When no partner matches, or every match fails, the
// signal is queued for manual triage and an error is returned; a crisis
// signal is never silently dropped.
func (r *Router) Route(
	ctx context.Context, payload *SignalRoutingPayload, capabilities []string, now time.Time,
) (*types.SignalRoutingResult, error) {
	partners, err := r.partners.GetActivePartners(ctx)
	if err != nil {
		return nil, err
	}

	matched := MatchPartners(partners, payload.Jurisdiction, capabilities)
	if len(matched) == 0 {
		r.logger.Error("No partner matches signal, queueing for manual triage",
			zap.String("signalID", payload.SignalID),
			zap.String("jurisdiction", payload.Jurisdiction),
			zap.Strings("capabilities", capabilities))

		if err := r.enqueueTriage(ctx, payload, capabilities, "no matching partner", now); err != nil {
			return nil, err
		}

		return nil, types.ErrNoPartnerMatch
	}

	for _, partner := range matched {
		result := &types.SignalRoutingResult{
			ID:        uuid.New(),
			SignalID:  payload.SignalID,
			PartnerID: partner.ID,
			Status:    enum.RoutingStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.results.CreateResult(ctx, result); err != nil {
			return nil, err
		}

		attempts, dispatchErr := r.dispatcher.Dispatch(ctx, partner, payload)

		// The first attempt is not a retry; a partner failing once shows zero.
		retries := max(attempts-1, 0)

		if dispatchErr == nil {
			if err := r.results.MarkSent(ctx, result.ID, retries, now); err != nil {
				return nil, err
			}

			result.Status = enum.RoutingStatusSent
			result.RetryCount = retries

			r.logger.Info("Routed signal to crisis partner",
				zap.String("signalID", payload.SignalID),
				zap.String("partnerID", partner.ID),
				zap.Int("attempts", attempts))

			return result, nil
		}

		if err := r.results.MarkFailed(ctx, result.ID, retries, dispatchErr.Error(), now); err != nil {
			return nil, err
		}

		r.logger.Warn("Partner delivery failed, falling back to next match",
			zap.String("signalID", payload.SignalID),
			zap.String("partnerID", partner.ID),
			zap.Error(dispatchErr))
	}

	r.logger.Error("All matching partners failed, queueing for manual triage",
		zap.String("signalID", payload.SignalID),
		zap.Int("partnersTried", len(matched)))

	if err := r.enqueueTriage(ctx, payload, capabilities, "all matching partners failed", now); err != nil {
		return nil, err
	}

	return nil, ErrAllPartnersFailed
}

func (r *Router) enqueueTriage(
	ctx context.Context, payload *SignalRoutingPayload, capabilities []string, reason string, now time.Time,
) error {
	return r.triage.Enqueue(ctx, &TriageItem{
		SignalID:     payload.SignalID,
		Jurisdiction: payload.Jurisdiction,
		Capabilities: capabilities,
		Reason:       reason,
		QueuedAt:     now,
	})
}
