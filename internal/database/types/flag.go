package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrFlagNotFound      = errors.New("concern flag not found")
	ErrFlagAlreadyExists = errors.New("concern flag already exists for content and category")
	ErrFlagNotPending    = errors.New("concern flag is not pending")
	ErrFlagNotHeld       = errors.New("concern flag is not on sensitive hold")
	ErrFlagNotReleasable = errors.New("concern flag is not releasable yet")
)

// ConcernFlag represents a detected potential-risk annotation on a piece of
// content. A flag is immutable once created; only its delivery and suppression
// bookkeeping fields change afterwards. At most one flag exists per
// (content item, category) pair.
type ConcernFlag struct {
	bun.BaseModel `bun:"table:concern_flags"`

	ID         uuid.UUID         `bun:",pk,type:uuid"` // Unique flag identifier, doubles as the signal ID
	ContentID  string            `bun:",notnull"`      // Screenshot or content item the flag was raised on
	ChildID    string            `bun:",notnull"`      // Child the content belongs to
	FamilyID   string            `bun:",notnull"`      // Family the child belongs to
	Category   string            `bun:",notnull"`      // Concern category reported by the classifier
	Severity   enum.FlagSeverity `bun:",notnull"`      // Low, medium or high
	Confidence int               `bun:",notnull"`      // Classifier confidence in [0,100]
	Reasoning  string            `bun:",nullzero"`     // Classifier reasoning text
	DetectedAt time.Time         `bun:",notnull"`      // When the classifier produced the flag

	Status            enum.FlagStatus        `bun:",notnull"`  // Lifecycle status
	SuppressionReason enum.SuppressionReason `bun:",nullzero"` // Why the flag was held, if it was
	ReleasableAfter   time.Time              `bun:",nullzero"` // Earliest time a held flag may be released

	Deliverable bool      `bun:",notnull"`  // Whether the flag may be surfaced to the family
	Throttled   bool      `bun:",notnull"`  // Whether the daily throttle withheld delivery
	ThrottledAt time.Time `bun:",nullzero"` // When the throttle decision was made
}

// FlagThrottleState tracks how many alerts a child's family has received on a
// given day. The day string is supplied by the caller rather than derived from
// the wall clock so the throttle logic stays deterministic.
type FlagThrottleState struct {
	bun.BaseModel `bun:"table:flag_throttle_states"`

	ChildID         string                    `bun:",pk"`         // Child the state belongs to
	Day             string                    `bun:",pk"`         // Calendar day, caller-supplied (YYYY-MM-DD)
	AlertsSentToday int                       `bun:",notnull"`    // Alerts surfaced to the family today
	ThrottledToday  int                       `bun:",notnull"`    // Qualifying flags withheld by the throttle today
	AlertedFlagIDs  []uuid.UUID               `bun:",type:jsonb"` // IDs of the flags surfaced today
	SeverityCounts  map[enum.FlagSeverity]int `bun:",type:jsonb"` // Per-severity counts of qualifying flags
	UpdatedAt       time.Time                 `bun:",notnull"`    // Last modification time
}

// DistressSuppressionLog is an append-only audit record written whenever a
// flag enters sensitive hold. It is never mutated except to flip Released and
// stamp ReleasedAt.
type DistressSuppressionLog struct {
	bun.BaseModel `bun:"table:distress_suppression_logs"`

	ID                uuid.UUID              `bun:",pk,type:uuid"`
	ScreenshotID      string                 `bun:",notnull"`
	ChildID           string                 `bun:",notnull"`
	FamilyID          string                 `bun:",notnull"`
	ConcernCategory   string                 `bun:",notnull"`
	Severity          enum.FlagSeverity      `bun:",notnull"`
	SuppressionReason enum.SuppressionReason `bun:",notnull"`
	Timestamp         time.Time              `bun:",notnull"`
	ReleasableAfter   time.Time              `bun:",nullzero"`
	Released          bool                   `bun:",notnull"`
	ReleasedAt        time.Time              `bun:",nullzero"`
}
