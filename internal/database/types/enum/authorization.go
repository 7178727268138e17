package enum

// AuthorizationStatus represents the state of a sealed-signal access authorization.
//
//go:generate go tool enumer -type=AuthorizationStatus -trimprefix=AuthorizationStatus
type AuthorizationStatus int

const (
	AuthorizationStatusPending AuthorizationStatus = iota
	AuthorizationStatusApproved
	AuthorizationStatusDenied
	AuthorizationStatusExpired
)

// AuthorizationType represents why an administrator needs sealed-signal access.
//
//go:generate go tool enumer -type=AuthorizationType -trimprefix=AuthorizationType
type AuthorizationType int

const (
	AuthorizationTypeLegalRequest AuthorizationType = iota
	AuthorizationTypeCrisisReview
	AuthorizationTypeIncidentAudit
)
