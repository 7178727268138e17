package pipeline

import (
	"context"
	"time"

	"github.com/harborlight/harborlight/internal/database/types"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/harborlight/harborlight/internal/setup/config"
	"go.uber.org/zap"
)

// ThrottleStore is the persistence surface the governor needs. The database
// flag model satisfies it; tests use an in-memory fake.
type ThrottleStore interface {
	// ReserveAlertSlot atomically claims a delivery slot for the flag on the
	// given day, or records it as throttled. A negative limit means
	// unlimited delivery.
	ReserveAlertSlot(ctx context.Context, flag *types.ConcernFlag, day string, limit int, now time.Time) (bool, error)
}

// Governor caps how many flags surface to a family per day. Throttled flags
// are retained in storage and counted; they are only dropped from
// notification, never from the record.
type Governor struct {
	store  ThrottleStore
	safety *config.Safety
	logger *zap.Logger
}

// NewGovernor creates a throttle governor.
func NewGovernor(store ThrottleStore, safety *config.Safety, logger *zap.Logger) *Governor {
	return &Governor{
		store:  store,
		safety: safety,
		logger: logger.Named("throttle"),
	}
}

// Admit decides whether a qualifying flag is delivered to the family today.
// The day string comes from the caller so the decision stays deterministic.
func (g *Governor) Admit(
	ctx context.Context, flag *types.ConcernFlag, tier enum.ThrottleTier, day string, now time.Time,
) (bool, error) {
	limit := g.safety.DailyLimit(tier)

	delivered, err := g.store.ReserveAlertSlot(ctx, flag, day, limit, now)
	if err != nil {
		return false, err
	}

	if !delivered {
		g.logger.Debug("Flag throttled for the day",
			zap.String("flagID", flag.ID.String()),
			zap.String("childID", flag.ChildID),
			zap.String("tier", tier.String()),
			zap.Int("limit", limit))
	}

	return delivered, nil
}
