// Package types defines the REST API request and response shapes.
package types

import "time"

// AcknowledgeRequest is a partner's confirmation that it received a routed
// signal.
type AcknowledgeRequest struct {
	PartnerReferenceID string `json:"partnerReferenceId"`
}

// ExtendBlackoutRequest asks to push a signal's blackout window forward.
type ExtendBlackoutRequest struct {
	Hours  int    `json:"hours"`
	Reason string `json:"reason"`
}

// ReleaseBlackoutRequest ends a blackout before its expiry.
type ReleaseBlackoutRequest struct {
	Reason string `json:"reason"`
}

// ReviewFlagRequest closes a pending flag through parental review.
type ReviewFlagRequest struct {
	Dismissed bool `json:"dismissed"`
}

// ReleaseHoldRequest releases a signal's sensitive hold before its window.
type ReleaseHoldRequest struct {
	Reason string `json:"reason"`
}

// BlackoutResponse is the partner-visible view of a blackout record.
type BlackoutResponse struct {
	SignalID            string    `json:"signalId"`
	Status              string    `json:"status"`
	StartedAt           time.Time `json:"startedAt"`
	ExpiresAt           time.Time `json:"expiresAt"`
	ExtensionCount      int       `json:"extensionCount"`
	CumulativeExtension string    `json:"cumulativeExtension"`
}

// ReportEscalationRequest records a partner-side escalation of a signal.
type ReportEscalationRequest struct {
	EscalationType string `json:"escalationType"`
	Jurisdiction   string `json:"jurisdiction"`
}

// EscalationResponse is the admin-visible view of an escalation record.
type EscalationResponse struct {
	ID             string    `json:"id"`
	SignalID       string    `json:"signalId"`
	PartnerID      string    `json:"partnerId"`
	EscalationType string    `json:"escalationType"`
	Jurisdiction   string    `json:"jurisdiction"`
	Sealed         bool      `json:"sealed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RequestAuthorizationRequest files a sealed-signal access request.
type RequestAuthorizationRequest struct {
	SignalID          string `json:"signalId"`
	AuthorizationType string `json:"authorizationType"`
	Reason            string `json:"reason"`
}

// AuthorizationResponse is the requester's view of an access authorization.
type AuthorizationResponse struct {
	ID          string    `json:"id"`
	SignalID    string    `json:"signalId"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// DenyAuthorizationRequest rejects a pending authorization.
type DenyAuthorizationRequest struct {
	Reason string `json:"reason"`
}

// ValidateAuthorizationResponse reports whether a grant currently authorizes
// reading a signal.
type ValidateAuthorizationResponse struct {
	Valid bool `json:"valid"`
}

// ConsumeAuthorizationRequest consumes a grant and reads the signal's
// escalations.
type ConsumeAuthorizationRequest struct {
	SignalID string `json:"signalId"`
}

// SealEscalationRequest seals an escalation record.
type SealEscalationRequest struct {
	SealedBy string `json:"sealedBy"`
}

// OpenLegalRequestRequest files a legal-process request for sealed data.
type OpenLegalRequestRequest struct {
	RequestType       string   `json:"requestType"`
	RequestingAgency  string   `json:"requestingAgency"`
	Jurisdiction      string   `json:"jurisdiction"`
	DocumentReference string   `json:"documentReference"`
	SignalIDs         []string `json:"signalIds"`
}

// ReviewLegalRequestRequest records a human review decision.
type ReviewLegalRequestRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

// LegalRequestResponse is the admin view of a legal request.
type LegalRequestResponse struct {
	ID                string    `json:"id"`
	RequestType       string    `json:"requestType"`
	RequestingAgency  string    `json:"requestingAgency"`
	Jurisdiction      string    `json:"jurisdiction"`
	DocumentReference string    `json:"documentReference"`
	SignalIDs         []string  `json:"signalIds"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

// FlagResponse is the family-visible view of a concern flag. Held flags are
// never converted into this shape.
type FlagResponse struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	Severity   string    `json:"severity"`
	Confidence int       `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	DetectedAt time.Time `json:"detectedAt"`
	Status     string    `json:"status"`
}

// SuppressionLogResponse is the admin view of one suppression log entry.
type SuppressionLogResponse struct {
	FlagID       string    `json:"flagId"`
	ChildID      string    `json:"childId"`
	Reason       string    `json:"reason"`
	SuppressedAt time.Time `json:"suppressedAt"`
	Released     bool      `json:"released"`
}

// UpsertPartnerRequest registers or updates a crisis partner. The plaintext
// API key is hashed before it reaches storage.
type UpsertPartnerRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	WebhookURL    string   `json:"webhookUrl"`
	APIKey        string   `json:"apiKey"`
	Active        bool     `json:"active"`
	Jurisdictions []string `json:"jurisdictions"`
	Priority      int      `json:"priority"`
	Capabilities  []string `json:"capabilities"`
}

// PartnerResponse is the operator view of a crisis partner. The key hash is
// never serialized.
type PartnerResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	WebhookURL    string   `json:"webhookUrl"`
	Active        bool     `json:"active"`
	Jurisdictions []string `json:"jurisdictions"`
	Priority      int      `json:"priority"`
	Capabilities  []string `json:"capabilities"`
}

// RoutingResultResponse is one routing attempt for a signal.
type RoutingResultResponse struct {
	PartnerID          string    `json:"partnerId"`
	Status             string    `json:"status"`
	Acknowledged       bool      `json:"acknowledged"`
	PartnerReferenceID string    `json:"partnerReferenceId,omitempty"`
	RetryCount         int       `json:"retryCount"`
	LastError          string    `json:"lastError,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ThrottleStateResponse reports a child's alert accounting for one day.
type ThrottleStateResponse struct {
	ChildID         string `json:"childId"`
	Day             string `json:"day"`
	AlertsSentToday int    `json:"alertsSentToday"`
	ThrottledToday  int    `json:"throttledToday"`
}

// FamilySettingsRequest carries the per-family tuning evaluated at intake.
type FamilySettingsRequest struct {
	Level             string         `json:"level"`
	Tier              string         `json:"tier"`
	CategoryOverrides map[string]int `json:"categoryOverrides"`
}

// SubmitSignalRequest is one detection entering the pipeline.
type SubmitSignalRequest struct {
	ContentID       string                `json:"contentId"`
	ChildID         string                `json:"childId"`
	FamilyID        string                `json:"familyId"`
	Category        string                `json:"category"`
	Severity        string                `json:"severity"`
	Confidence      int                   `json:"confidence"`
	Reasoning       string                `json:"reasoning"`
	DetectedAt      time.Time             `json:"detectedAt"`
	Settings        FamilySettingsRequest `json:"settings"`
	Day             string                `json:"day"`
	ChildAge        int                   `json:"childAge"`
	Jurisdiction    string                `json:"jurisdiction"`
	FamilyStructure string                `json:"familyStructure"`
	Platform        string                `json:"platform"`
	TriggerMethod   string                `json:"triggerMethod"`
	DeviceID        string                `json:"deviceId"`
}

// SubmitSignalResponse reports what the pipeline did with a submission.
// Suppression details are deliberately absent; intake callers learn only
// whether the flag was stored and delivered.
type SubmitSignalResponse struct {
	SignalID  string `json:"signalId,omitempty"`
	Stored    bool   `json:"stored"`
	Delivered bool   `json:"delivered"`
}

// ErrorResponse carries a machine-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
