package blackout

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

// Store is the persistence surface the controller needs. The database
// blackout model satisfies it; its operations linearize writes per signal.
type Store interface {
	Create(ctx context.Context, record *types.BlackoutRecord) error
	GetActive(ctx context.Context, signalID string) (*types.BlackoutRecord, error)
	AppendExtension(
		ctx context.Context, signalID string, ext types.BlackoutExtension, maxCumulative time.Duration, now time.Time,
	) (*types.BlackoutRecord, error)
	Release(ctx context.Context, signalID, partnerID, reason string, now time.Time) (*types.BlackoutRecord, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Controller enforces the mandatory family-notification blackout after a
// crisis signal is routed externally. Only the receiving partner may move
// the window, and only forward.
type Controller struct {
	store  Store
	safety *config.Safety
	logger *zap.Logger
}

// NewController creates a blackout controller.
func NewController(store Store, safety *config.Safety, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		safety: safety,
		logger: logger.Named("blackout"),
	}
}

// Begin starts the blackout window for a signal. It fails with
// ErrActiveBlackoutExists if one is already in force.
func (c *Controller) Begin(ctx context.Context, signalID, childID string, now time.Time) (*types.BlackoutRecord, error) {
	record := &types.BlackoutRecord{
		ID:         uuid.New(),
		SignalID:   signalID,
		ChildID:    childID,
		StartedAt:  now,
		ExpiresAt:  now.Add(c.safety.BlackoutDuration()),
		Extensions: []types.BlackoutExtension{},
		Status:     enum.BlackoutStatusActive,
	}

	if err := c.store.Create(ctx, record); err != nil {
		return nil, err
	}

	c.logger.Info("Blackout started",
		zap.String("signalID", signalID),
		zap.String("childID", childID),
		zap.Time("expiresAt", record.ExpiresAt))

	return record, nil
}

// Extend moves the blackout window forward on behalf of a partner. Only the
// configured increments are accepted and the cumulative extension is capped;
// every successful call appends exactly one extension entry.
func (c *Controller) Extend(
	ctx context.Context, signalID, partnerID string, hours int, reason string, now time.Time,
) (*types.BlackoutRecord, error) {
	if !c.safety.AllowedExtension(hours) {
		return nil, types.ErrInvalidExtensionHours
	}

	if reason == "" {
		return nil, types.ErrExtensionReasonRequired
	}

	record, err := c.store.AppendExtension(ctx, signalID, types.BlackoutExtension{
		PartnerID:  partnerID,
		Hours:      hours,
		Reason:     reason,
		ExtendedAt: now,
	}, c.safety.MaxCumulativeExtension(), now)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Blackout extended",
		zap.String("signalID", signalID),
		zap.String("partnerID", partnerID),
		zap.Int("hours", hours),
		zap.Time("expiresAt", record.ExpiresAt))

	return record, nil
}

// ReleaseEarly ends the blackout before its expiry on behalf of a partner.
// Families and unauthenticated admins have no path here; the caller identity
// is the partner resolved by the API layer and is logged for audit.
func (c *Controller) ReleaseEarly(
	ctx context.Context, signalID, partnerID, reason string, now time.Time,
) (*types.BlackoutRecord, error) {
	if reason == "" {
		return nil, types.ErrReleaseReasonRequired
	}

	record, err := c.store.Release(ctx, signalID, partnerID, reason, now)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Blackout released early",
		zap.String("signalID", signalID),
		zap.String("partnerID", partnerID),
		zap.String("reason", reason))

	return record, nil
}

// IsActive reports whether a blackout is in force for the signal right now.
// Computed live from the record's expiry; the status column alone can be
// stale between expiry and the next sweep.
func (c *Controller) IsActive(ctx context.Context, signalID string, now time.Time) (bool, error) {
	record, err := c.store.GetActive(ctx, signalID)
	if err != nil {
		if errors.Is(err, types.ErrBlackoutNotFound) {
			return false, nil
		}

		return false, err
	}

	return record.IsActive(now), nil
}

// ExpireOverdue marks overdue blackouts as expired. Idempotent; used by the
// background sweep.
func (c *Controller) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	return c.store.ExpireOverdue(ctx, now)
}
