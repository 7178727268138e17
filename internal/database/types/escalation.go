package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrEscalationNotFound       = errors.New("signal escalation not found")
	ErrEscalationAlreadySealed  = errors.New("signal escalation is already sealed")
	ErrLegalRequestNotFound     = errors.New("legal request not found")
	ErrLegalRequestNotPending   = errors.New("legal request is not pending legal review")
	ErrLegalRequestNotApproved  = errors.New("legal request is not approved")
	ErrReviewerRequired         = errors.New("legal request review requires a reviewer identity")
	ErrFulfillerRequired        = errors.New("legal request fulfillment requires a fulfiller identity")
	ErrLegalRequestNoSignals    = errors.New("legal request must reference at least one signal")
)

// SignalEscalation is a partner-reported escalation of a routed crisis
// signal. Escalations live in a collection structurally isolated from all
// family-readable data; once sealed, a record is also excluded from ordinary
// admin reads.
type SignalEscalation struct {
	bun.BaseModel `bun:"table:signal_escalations"`

	ID             uuid.UUID           `bun:",pk,type:uuid"`
	SignalID       string              `bun:",notnull"`
	PartnerID      string              `bun:",notnull"`
	EscalationType enum.EscalationType `bun:",notnull"`
	Jurisdiction   string              `bun:",notnull"`
	Sealed         bool                `bun:",notnull"`
	SealedAt       time.Time           `bun:",nullzero"`
	SealedBy       string              `bun:",nullzero"` // Operator or policy identity that sealed the record
	CreatedAt      time.Time           `bun:",notnull"`
}

// LegalRequest tracks a legal-process request for sealed signal data. A
// request is always created in pending legal review and is never
// auto-approved; review and fulfillment require distinct human identities.
type LegalRequest struct {
	bun.BaseModel `bun:"table:legal_requests"`

	ID                uuid.UUID               `bun:",pk,type:uuid"`
	RequestType       enum.LegalRequestType   `bun:",notnull"`
	RequestingAgency  string                  `bun:",notnull"`
	Jurisdiction      string                  `bun:",notnull"`
	DocumentReference string                  `bun:",notnull"` // e.g. court order number
	SignalIDs         []string                `bun:",type:jsonb"`
	Status            enum.LegalRequestStatus `bun:",notnull"`
	ReviewedBy        string                  `bun:",nullzero"`
	ReviewedAt        time.Time               `bun:",nullzero"`
	ReviewNotes       string                  `bun:",nullzero"`
	FulfilledBy       string                  `bun:",nullzero"`
	FulfilledAt       time.Time               `bun:",nullzero"`
	CreatedAt         time.Time               `bun:",notnull"`
}
