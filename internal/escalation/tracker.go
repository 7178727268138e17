// Package escalation tracks partner-reported escalations and the legal
// review workflow governing access to sealed records.
package escalation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"go.uber.org/zap"
)

// ErrPartnerRequired is returned when an escalation report lacks the
// reporting partner identity.
var ErrPartnerRequired = errors.New("escalation requires a reporting partner identity")

// Store persists escalations.
type Store interface {
	Create(ctx context.Context, escalation *types.SignalEscalation) error
	Seal(ctx context.Context, id uuid.UUID, sealedBy string, now time.Time) error
	GetUnsealedBySignal(ctx context.Context, signalID string) ([]*types.SignalEscalation, error)
}

// LegalStore persists legal requests.
type LegalStore interface {
	Create(ctx context.Context, request *types.LegalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*types.LegalRequest, error)
	Review(ctx context.Context, id uuid.UUID, reviewerID string, approved bool, notes string, now time.Time) error
	Fulfill(ctx context.Context, id uuid.UUID, fulfilledBy string, now time.Time) error
}

// Tracker manages escalation records and legal requests against them.
type Tracker struct {
	store  Store
	legal  LegalStore
	logger *zap.Logger
}

// NewTracker creates a tracker over the given stores.
func NewTracker(store Store, legal LegalStore, logger *zap.Logger) *Tracker {
	return &Tracker{
		store:  store,
		legal:  legal,
		logger: logger.Named("escalation"),
	}
}

// Report records a partner-reported escalation. New escalations always start
// unsealed.
func (t *Tracker) Report(
	ctx context.Context, signalID, partnerID string,
	escalationType enum.EscalationType, jurisdiction string, now time.Time,
) (*types.SignalEscalation, error) {
	if partnerID == "" {
		return nil, ErrPartnerRequired
	}

	escalation := &types.SignalEscalation{
		ID:             uuid.New(),
		SignalID:       signalID,
		PartnerID:      partnerID,
		EscalationType: escalationType,
		Jurisdiction:   jurisdiction,
		Sealed:         false,
		CreatedAt:      now,
	}

	if err := t.store.Create(ctx, escalation); err != nil {
		return nil, err
	}

	t.logger.Info("Recorded signal escalation",
		zap.String("signalID", signalID),
		zap.String("partnerID", partnerID),
		zap.String("type", escalationType.String()))

	return escalation, nil
}

// Seal marks an escalation as sealed. Sealing is one-way; a sealed record
// can only be reached again through the legal request workflow or a consumed
// access authorization.
func (t *Tracker) Seal(ctx context.Context, id uuid.UUID, sealedBy string, now time.Time) error {
	if err := t.store.Seal(ctx, id, sealedBy, now); err != nil {
		return err
	}

	t.logger.Info("Sealed signal escalation",
		zap.String("escalationID", id.String()),
		zap.String("sealedBy", sealedBy))

	return nil
}

// UnsealedBySignal returns the escalations for a signal visible to ordinary
// admin reads. Sealed records are excluded here by construction.
func (t *Tracker) UnsealedBySignal(ctx context.Context, signalID string) ([]*types.SignalEscalation, error) {
	return t.store.GetUnsealedBySignal(ctx, signalID)
}

// OpenLegalRequest files a legal-process request for sealed signal data. The
// request always starts in pending legal review regardless of type; an
// emergency disclosure request moves faster through review, not around it.
func (t *Tracker) OpenLegalRequest(
	ctx context.Context, requestType enum.LegalRequestType,
	agency, jurisdiction, documentReference string, signalIDs []string, now time.Time,
) (*types.LegalRequest, error) {
	if len(signalIDs) == 0 {
		return nil, types.ErrLegalRequestNoSignals
	}

	request := &types.LegalRequest{
		ID:                uuid.New(),
		RequestType:       requestType,
		RequestingAgency:  agency,
		Jurisdiction:      jurisdiction,
		DocumentReference: documentReference,
		SignalIDs:         signalIDs,
		Status:            enum.LegalRequestStatusPendingLegalReview,
		CreatedAt:         now,
	}

	if err := t.legal.Create(ctx, request); err != nil {
		return nil, err
	}

	t.logger.Info("Opened legal request",
		zap.String("requestID", request.ID.String()),
		zap.String("type", requestType.String()),
		zap.String("agency", agency),
		zap.Int("signals", len(signalIDs)))

	return request, nil
}

// ReviewLegalRequest records a human review decision. The reviewer identity
// is mandatory; there is no path to an approved request without one.
func (t *Tracker) ReviewLegalRequest(
	ctx context.Context, id uuid.UUID, reviewerID string, approved bool, notes string, now time.Time,
) error {
	if reviewerID == "" {
		return types.ErrReviewerRequired
	}

	if err := t.legal.Review(ctx, id, reviewerID, approved, notes, now); err != nil {
		return err
	}

	t.logger.Info("Reviewed legal request",
		zap.String("requestID", id.String()),
		zap.String("reviewerID", reviewerID),
		zap.Bool("approved", approved))

	return nil
}

// FulfillLegalRequest marks an approved request as fulfilled by the named
// operator.
func (t *Tracker) FulfillLegalRequest(
	ctx context.Context, id uuid.UUID, fulfilledBy string, now time.Time,
) error {
	if fulfilledBy == "" {
		return types.ErrFulfillerRequired
	}

	if err := t.legal.Fulfill(ctx, id, fulfilledBy, now); err != nil {
		return err
	}

	t.logger.Info("Fulfilled legal request",
		zap.String("requestID", id.String()),
		zap.String("fulfilledBy", fulfilledBy))

	return nil
}

// GetLegalRequest returns a legal request by ID.
func (t *Tracker) GetLegalRequest(ctx context.Context, id uuid.UUID) (*types.LegalRequest, error) {
	return t.legal.GetByID(ctx, id)
}
