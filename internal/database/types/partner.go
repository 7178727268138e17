package types

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harborlight/harborlight/internal/database/types/enum"
	"github.com/uptrace/bun"
)

var (
	ErrPartnerNotFound      = errors.New("crisis partner not found")
	ErrNoPartnerMatch       = errors.New("no active partner matches jurisdiction and capabilities")
	ErrInsecureWebhookURL   = errors.New("partner webhook URL must use https")
	ErrRoutingResultMissing = errors.New("signal routing result not found")
)

// CrisisPartner is long-lived reference data describing an external
// crisis-response organization. Created and updated by operators only;
// safe for unsynchronized concurrent reads.
type CrisisPartner struct {
	bun.BaseModel `bun:"table:crisis_partners"`

	ID            string    `bun:",pk"`       // Operator-assigned partner slug
	Name          string    `bun:",notnull"`
	WebhookURL    string    `bun:",notnull"`  // Must start with https://
	APIKeyHash    string    `bun:",notnull"`  // bcrypt hash of the pre-shared API key
	Active        bool      `bun:",notnull"`
	Jurisdictions []string  `bun:",type:jsonb"` // Country or country-subdivision codes
	Priority      int       `bun:",notnull"`    // Lower is preferred
	Capabilities  []string  `bun:",type:jsonb"` // e.g. "self_harm_response", "mandatory_reporting"
	CreatedAt     time.Time `bun:",notnull"`
	UpdatedAt     time.Time `bun:",notnull"`
}

// SupportsJurisdiction reports whether the partner covers the given
// jurisdiction. A partner covering a whole country ("US") covers every
// subdivision of it ("US-CA"); a subdivision entry never widens to the
// country, and a bare "CA" does not match "US-CA".
func (p *CrisisPartner) SupportsJurisdiction(jurisdiction string) bool {
	country, _, _ := strings.Cut(jurisdiction, "-")

	for _, j := range p.Jurisdictions {
		if j == jurisdiction || j == country {
			return true
		}
	}

	return false
}

// SupportsAnyCapability reports whether the partner provides at least one of
// the requested capabilities. An empty request matches any partner.
func (p *CrisisPartner) SupportsAnyCapability(requested []string) bool {
	if len(requested) == 0 {
		return true
	}

	for _, want := range requested {
		for _, have := range p.Capabilities {
			if want == have {
				return true
			}
		}
	}

	return false
}

// SignalRoutingResult records one routing attempt for a (signal, partner)
// pair, including retry bookkeeping and the partner's acknowledgment.
type SignalRoutingResult struct {
	bun.BaseModel `bun:"table:signal_routing_results"`

	ID                 uuid.UUID          `bun:",pk,type:uuid"`
	SignalID           string             `bun:",notnull"`
	PartnerID          string             `bun:",notnull"`
	Status             enum.RoutingStatus `bun:",notnull"`
	Acknowledged       bool               `bun:",notnull"`
	PartnerReferenceID string             `bun:",nullzero"` // Partner-side case reference
	RetryCount         int                `bun:",notnull"`
	LastError          string             `bun:",nullzero"`
	CreatedAt          time.Time          `bun:",notnull"`
	UpdatedAt          time.Time          `bun:",notnull"`
}
