package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrActiveBlackoutExists      = errors.New("an active blackout already exists for signal")
	ErrBlackoutNotFound          = errors.New("no active blackout found for signal")
	ErrBlackoutExpired           = errors.New("blackout has already expired")
	ErrBlackoutNotActive         = errors.New("blackout is not active")
	ErrInvalidExtensionHours     = errors.New("extension hours must be 24, 48 or 72")
	ErrMaxCumulativeExtension    = errors.New("extension exceeds maximum cumulative blackout extension")
	ErrExtensionReasonRequired   = errors.New("extension reason must not be empty")
	ErrReleaseReasonRequired     = errors.New("release reason must not be empty")
)

// BlackoutExtension records a single partner-initiated extension of a
// blackout window. Extensions are additive; concurrent extensions from
// different partners are all retained.
type BlackoutExtension struct {
	PartnerID  string    `json:"partnerId"`
	Hours      int       `json:"hours"`
	Reason     string    `json:"reason"`
	ExtendedAt time.Time `json:"extendedAt"`
}

// BlackoutRecord enforces the mandatory family-notification blackout after a
// crisis signal is routed externally. At most one active record exists per
// signal at any time; the window only ever moves forward.
type BlackoutRecord struct {
	bun.BaseModel `bun:"table:blackout_records"`

	ID            uuid.UUID           `bun:",pk,type:uuid"`
	SignalID      string              `bun:",notnull"`
	ChildID       string              `bun:",notnull"`
	StartedAt     time.Time           `bun:",notnull"`
	ExpiresAt     time.Time           `bun:",notnull"`
	Extensions    []BlackoutExtension `bun:",type:jsonb"`
	Status        enum.BlackoutStatus `bun:",notnull"`
	ReleasedBy    string              `bun:",nullzero"` // Partner that released the blackout early
	ReleaseReason string              `bun:",nullzero"`
	ReleasedAt    time.Time           `bun:",nullzero"`
}

// IsActive reports whether the blackout is in force at the given instant.
// The status column alone is insufficient because a record can be stale
// between expiry and the next sweep.
func (b *BlackoutRecord) IsActive(now time.Time) bool {
	return b.Status == enum.BlackoutStatusActive && now.Before(b.ExpiresAt)
}

// ExtendedBy returns the distinct partner IDs that have extended the blackout,
// in first-extension order.
func (b *BlackoutRecord) ExtendedBy() []string {
	seen := make(map[string]struct{}, len(b.Extensions))
	partners := make([]string, 0, len(b.Extensions))

	for _, ext := range b.Extensions {
		if _, ok := seen[ext.PartnerID]; ok {
			continue
		}

		seen[ext.PartnerID] = struct{}{}
		partners = append(partners, ext.PartnerID)
	}

	return partners
}

// CumulativeExtension returns the total extension applied so far.
func (b *BlackoutRecord) CumulativeExtension() time.Duration {
	var total time.Duration
	for _, ext := range b.Extensions {
		total += time.Duration(ext.Hours) * time.Hour
	}

	return total
}
