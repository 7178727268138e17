package enum

// EscalationType represents the kind of escalation a crisis partner reported.
//
//go:generate go tool enumer -type=EscalationType -trimprefix=EscalationType
type EscalationType int

const (
	EscalationTypeAssessment EscalationType = iota
	EscalationTypeMandatoryReport
	EscalationTypeLawEnforcementReferral
)

// LegalRequestType represents the kind of legal process behind a request.
//
//go:generate go tool enumer -type=LegalRequestType -trimprefix=LegalRequestType
type LegalRequestType int

const (
	LegalRequestTypeSubpoena LegalRequestType = iota
	LegalRequestTypeCourtOrder
	LegalRequestTypeSearchWarrant
	LegalRequestTypeEmergencyDisclosure
)

// LegalRequestStatus represents the review state of a legal request.
//
//go:generate go tool enumer -type=LegalRequestStatus -trimprefix=LegalRequestStatus
type LegalRequestStatus int

const (
	// LegalRequestStatusPendingLegalReview is the only state a request may be created in.
	LegalRequestStatusPendingLegalReview LegalRequestStatus = iota
	LegalRequestStatusApproved
	LegalRequestStatusDenied
	LegalRequestStatusFulfilled
)
