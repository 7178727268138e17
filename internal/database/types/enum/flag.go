package enum

// FlagSeverity represents how serious a concern flag is.
//
//go:generate go tool enumer -type=FlagSeverity -trimprefix=FlagSeverity
type FlagSeverity int

const (
	FlagSeverityLow FlagSeverity = iota
	FlagSeverityMedium
	FlagSeverityHigh
)

// FlagStatus represents the lifecycle state of a concern flag.
//
//go:generate go tool enumer -type=FlagStatus -trimprefix=FlagStatus
type FlagStatus int

const (
	// FlagStatusPending indicates a flag that has surfaced but not yet been handled.
	FlagStatusPending FlagStatus = iota
	// FlagStatusSensitiveHold indicates a flag withheld from family visibility
	// because it signals a child-safety crisis.
	FlagStatusSensitiveHold
	// FlagStatusReviewed indicates a flag closed through ordinary parental review.
	FlagStatusReviewed
	// FlagStatusDismissed indicates a flag dismissed through ordinary parental review.
	FlagStatusDismissed
	// FlagStatusReleased indicates a previously held flag released to the family.
	// This state is terminal.
	FlagStatusReleased
)

// SuppressionReason represents why a flag was placed on sensitive hold.
//
//go:generate go tool enumer -type=SuppressionReason -trimprefix=SuppressionReason
type SuppressionReason int

const (
	// SuppressionReasonNone is the zero value for flags that were never suppressed.
	SuppressionReasonNone SuppressionReason = iota
	SuppressionReasonSelfHarmDetected
	SuppressionReasonCrisisURLVisited
	SuppressionReasonDistressSignals
)

// SensitivityLevel represents a family's chosen confidence threshold level.
//
//go:generate go tool enumer -type=SensitivityLevel -trimprefix=SensitivityLevel
type SensitivityLevel int

const (
	SensitivityLevelSensitive SensitivityLevel = iota
	SensitivityLevelBalanced
	SensitivityLevelRelaxed
)

// ThrottleTier represents how many alerts a family receives per day.
//
//go:generate go tool enumer -type=ThrottleTier -trimprefix=ThrottleTier
type ThrottleTier int

const (
	ThrottleTierMinimal ThrottleTier = iota
	ThrottleTierStandard
	ThrottleTierDetailed
	ThrottleTierAll
)
