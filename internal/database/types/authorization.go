package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrAuthorizationNotFound   = errors.New("access authorization not found")
	ErrAuthorizationNotPending = errors.New("access authorization is not pending")
	ErrAuthorizationUsed       = errors.New("access authorization already used")
	ErrAuthorizationInvalid    = errors.New("access authorization is not valid for this signal")
	ErrSelfApproval            = errors.New("access authorization cannot be approved by its requester")
	ErrAuthorizationReason     = errors.New("access authorization reason must not be empty")
)

// SignalAccessAuthorization is a dual-control, single-use, time-boxed grant
// that an administrator must hold before reading a sealed or escalated
// signal. It is approved or denied only by a principal other than the
// requester and consumed exactly once.
type SignalAccessAuthorization struct {
	bun.BaseModel `bun:"table:signal_access_authorizations"`

	ID                uuid.UUID                `bun:",pk,type:uuid"`
	AdminUserID       string                   `bun:",notnull"` // Requesting administrator
	SignalID          string                   `bun:",notnull"`
	AuthorizationType enum.AuthorizationType   `bun:",notnull"`
	Reason            string                   `bun:",notnull"`
	Status            enum.AuthorizationStatus `bun:",notnull"`
	ApprovedBy        string                   `bun:",nullzero"`
	DeniedBy          string                   `bun:",nullzero"`
	DenialReason      string                   `bun:",nullzero"`
	Used              bool                     `bun:",notnull"`
	UsedAt            time.Time                `bun:",nullzero"`
	RequestedAt       time.Time                `bun:",notnull"`
	ExpiresAt         time.Time                `bun:",notnull"`
}

// Valid reports whether the authorization permits reading the given signal at
// the given instant. It is a pure check: approved, unused, unexpired and
// scoped to the same signal. Any mismatch yields false rather than an error
// so callers can gate access cheaply.
func (a *SignalAccessAuthorization) Valid(signalID string, now time.Time) bool {
	return a.Status == enum.AuthorizationStatusApproved &&
		!a.Used &&
		now.Before(a.ExpiresAt) &&
		a.SignalID == signalID
}
