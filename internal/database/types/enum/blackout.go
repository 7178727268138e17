package enum

// BlackoutStatus represents the state of a family-notification blackout.
//
//go:generate go tool enumer -type=BlackoutStatus -trimprefix=BlackoutStatus
type BlackoutStatus int

const (
	// BlackoutStatusActive indicates the blackout window is still in force.
	// Callers must also check the expiry time; a record can be stale.
	BlackoutStatusActive BlackoutStatus = iota
	// BlackoutStatusExpired indicates the window passed without partner action.
	BlackoutStatusExpired
	// BlackoutStatusReleased indicates a partner released the blackout early.
	BlackoutStatusReleased
)

// RoutingStatus represents the state of a signal routing attempt.
//
//go:generate go tool enumer -type=RoutingStatus -trimprefix=RoutingStatus
type RoutingStatus int

const (
	RoutingStatusPending RoutingStatus = iota
	RoutingStatusSent
	RoutingStatusAcknowledged
	RoutingStatusFailed
)
