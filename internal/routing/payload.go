package routing

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrUnknownPayloadField = errors.New("field is not in the routing payload allow-list")
	ErrMissingPayloadField = errors.New("required routing payload field is missing")
	ErrInvalidJurisdiction = errors.New("jurisdiction must be a country code or country-subdivision code")
	ErrInvalidChildAge     = errors.New("child age must be between 1 and 17")
)

// jurisdictionPattern matches ISO-style country ("US") and
// country-subdivision ("US-CA") codes.
var jurisdictionPattern = regexp.MustCompile(`^[A-Z]{2}(-[A-Z0-9]{1,3})?$`)

// SignalRoutingPayload is the closed projection of a signal sent to a crisis
// partner. It carries the minimum a responder needs and nothing else: no
// names, no contact info, no screenshots, no browsing history. The schema is
// closed; construction rejects any field outside the allow-list.
type SignalRoutingPayload struct {
	SignalID        string    `json:"signalId"`
	ChildAge        int       `json:"childAge"` // Age in years, never a birthdate
	Timestamp       time.Time `json:"timestamp"`
	FamilyStructure string    `json:"familyStructure"`
	Jurisdiction    string    `json:"jurisdiction"`
	Platform        string    `json:"platform"`
	TriggerMethod   string    `json:"triggerMethod"`
	DeviceID        string    `json:"deviceId"` // Anonymized device identifier
}

// payloadFields is the allow-list for payload construction. Anything not
// listed here is rejected at build time, not silently dropped.
var payloadFields = map[string]struct{}{ //nolint:gochecknoglobals // reference data
	"signalId":        {},
	"childAge":        {},
	"timestamp":       {},
	"familyStructure": {},
	"jurisdiction":    {},
	"platform":        {},
	"triggerMethod":   {},
	"deviceId":        {},
}

// BuildPayload constructs a routing payload from a field document, enforcing
// the closed schema. Unknown keys fail construction so a careless caller
// cannot widen the data shared with a partner.
func BuildPayload(fields map[string]any) (*SignalRoutingPayload, error) {
	for key := range fields {
		if _, ok := payloadFields[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPayloadField, key)
		}
	}

	payload := &SignalRoutingPayload{}

	var ok bool
	if payload.SignalID, ok = fields["signalId"].(string); !ok || payload.SignalID == "" {
		return nil, fmt.Errorf("%w: signalId", ErrMissingPayloadField)
	}

	if payload.ChildAge, ok = fields["childAge"].(int); !ok {
		return nil, fmt.Errorf("%w: childAge", ErrMissingPayloadField)
	}

	if payload.Timestamp, ok = fields["timestamp"].(time.Time); !ok {
		return nil, fmt.Errorf("%w: timestamp", ErrMissingPayloadField)
	}

	if payload.Jurisdiction, ok = fields["jurisdiction"].(string); !ok {
		return nil, fmt.Errorf("%w: jurisdiction", ErrMissingPayloadField)
	}

	payload.FamilyStructure, _ = fields["familyStructure"].(string)
	payload.Platform, _ = fields["platform"].(string)
	payload.TriggerMethod, _ = fields["triggerMethod"].(string)
	payload.DeviceID, _ = fields["deviceId"].(string)

	return payload, payload.Validate()
}

// Validate checks the payload invariants independent of construction path.
func (p *SignalRoutingPayload) Validate() error {
	if p.SignalID == "" {
		return fmt.Errorf("%w: signalId", ErrMissingPayloadField)
	}

	if p.ChildAge < 1 || p.ChildAge > 17 {
		return ErrInvalidChildAge
	}

	if !jurisdictionPattern.MatchString(p.Jurisdiction) {
		return ErrInvalidJurisdiction
	}

	return nil
}
