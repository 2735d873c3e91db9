package order

import (
	"fmt"

	"hyperlocal/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Placed ─> Accepted ─> Preparing ─> ReadyForPickup ─> Assigned ─> PickedUp ─> Delivered
//	   │          │           │              │               │           │
//	   └──────────┴───────────┴──────────────┴───────────────┴───────────┴─> Cancelled
//
// Delivered and Cancelled are terminal. Who may take which edge is decided by the
// transition table in transitions.go, not by Status itself.
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	Placed
	Accepted
	Preparing
	ReadyForPickup
	Assigned
	PickedUp
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		Accepted:       "accepted",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		Assigned:       "assigned",
		PickedUp:       "picked_up",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Placed, Accepted, Preparing, ReadyForPickup, Assigned, PickedUp, Delivered, Cancelled}
}

// ParseStatus maps the wire name ("ready_for_pickup") to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is still moving towards delivery.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// precedes reports whether next lies strictly further along the forward path than s.
// Cancelled is reachable from every non-terminal status.
func (s Status) precedes(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == Cancelled {
		return true
	}
	return next > s
}
