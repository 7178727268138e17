package pipeline

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

// crisisCategories maps concern categories that indicate a child-safety
// crisis to the suppression reason recorded for them. Categories outside
// this set follow the ordinary review flow.
var crisisCategories = map[string]enum.SuppressionReason{ //nolint:gochecknoglobals // reference data
	"Self-Harm Indicators":    enum.SuppressionReasonSelfHarmDetected,
	"Suicidal Ideation":       enum.SuppressionReasonSelfHarmDetected,
	"Crisis Resource Seeking": enum.SuppressionReasonCrisisURLVisited,
	"Acute Distress":          enum.SuppressionReasonDistressSignals,
}

// ReasonForCategory returns the suppression reason for a crisis category,
// or false if the category does not indicate a crisis.
func ReasonForCategory(category string) (enum.SuppressionReason, bool) {
	reason, ok := crisisCategories[category]
	return reason, ok
}

// SuppressionStore is the persistence surface the suppressor needs.
type SuppressionStore interface {
	Hold(ctx context.Context, flagID uuid.UUID, reason enum.SuppressionReason, releasableAfter, now time.Time) error
	Release(ctx context.Context, flagID uuid.UUID, now time.Time) error
	GetHeldFlagsDue(ctx context.Context, now time.Time) ([]*types.ConcernFlag, error)
}

// BlackoutChecker reports whether an active blackout still covers a signal.
type BlackoutChecker interface {
	IsActive(ctx context.Context, signalID string, now time.Time) (bool, error)
}

// Suppressor places crisis flags on sensitive hold and releases them once
// the hold window and any blackout have passed. Suppression is orthogonal to
// throttling; a throttled flag can still enter sensitive hold.
type Suppressor struct {
	store     SuppressionStore
	blackouts BlackoutChecker
	safety    *config.Safety
	logger    *zap.Logger
}

// NewSuppressor creates a suppression controller.
func NewSuppressor(
	store SuppressionStore, blackouts BlackoutChecker, safety *config.Safety, logger *zap.Logger,
) *Suppressor {
	return &Suppressor{
		store:     store,
		blackouts: blackouts,
		safety:    safety,
		logger:    logger.Named("suppression"),
	}
}

// MaybeHold places the flag on sensitive hold if its category indicates a
// crisis. The hold becomes releasable one blackout duration after detection.
// Returns the recorded reason and whether a hold was taken.
func (s *Suppressor) MaybeHold(
	ctx context.Context, flag *types.ConcernFlag, now time.Time,
) (enum.SuppressionReason, bool, error) {
	reason, ok := ReasonForCategory(flag.Category)
	if !ok {
		return enum.SuppressionReasonNone, false, nil
	}

	releasableAfter := flag.DetectedAt.Add(s.safety.BlackoutDuration())

	if err := s.store.Hold(ctx, flag.ID, reason, releasableAfter, now); err != nil {
		return enum.SuppressionReasonNone, false, err
	}

	s.logger.Info("Flag placed on sensitive hold",
		zap.String("flagID", flag.ID.String()),
		zap.String("childID", flag.ChildID),
		zap.String("reason", reason.String()),
		zap.Time("releasableAfter", releasableAfter))

	return reason, true, nil
}

// TryRelease releases a held flag if its hold window has passed and no
// active blackout still covers the signal. On any ambiguity the flag stays
// held; the sensitive path fails closed.
func (s *Suppressor) TryRelease(ctx context.Context, flag *types.ConcernFlag, now time.Time) error {
	if flag.Status != enum.FlagStatusSensitiveHold {
		return types.ErrFlagNotHeld
	}

	if now.Before(flag.ReleasableAfter) {
		return types.ErrFlagNotReleasable
	}

	active, err := s.blackouts.IsActive(ctx, flag.ID.String(), now)
	if err != nil {
		return err
	}

	if active {
		return types.ErrFlagNotReleasable
	}

	return s.store.Release(ctx, flag.ID, now)
}

// ReleaseEarly releases a held flag before its window on a partner's
// authority. The partner identity and reason are recorded; the hold window
// and any blackout are bypassed.
func (s *Suppressor) ReleaseEarly(
	ctx context.Context, flag *types.ConcernFlag, partnerID, reason string, now time.Time,
) error {
	if flag.Status != enum.FlagStatusSensitiveHold {
		return types.ErrFlagNotHeld
	}

	if reason == "" {
		return types.ErrReleaseReasonRequired
	}

	if err := s.store.Release(ctx, flag.ID, now); err != nil {
		return err
	}

	s.logger.Info("Held flag released early by partner",
		zap.String("flagID", flag.ID.String()),
		zap.String("partnerID", partnerID),
		zap.String("reason", reason))

	return nil
}

// ReleaseDue releases every held flag whose window has passed and whose
// blackout has ended. Flags still covered by a blackout are skipped, not
// failed; the next sweep picks them up. Returns the number released.
func (s *Suppressor) ReleaseDue(ctx context.Context, now time.Time) (int, error) {
	flags, err := s.store.GetHeldFlagsDue(ctx, now)
	if err != nil {
		return 0, err
	}

	released := 0

	for _, flag := range flags {
		err := s.TryRelease(ctx, flag, now)
		if err != nil {
			if errors.Is(err, types.ErrFlagNotReleasable) {
				continue
			}

			return released, err
		}

		released++
	}

	return released, nil
}
