// Package order implements the Order aggregate and its role-aware state machine.
//
// The transition table in transitions.go is the single source of truth for which actor may
// move an order between which statuses. Three entry points use it:
//   - Transition for ordinary status updates (merchant progress, pickup, cancellation)
//   - Claim for an agent taking an unassigned ready_for_pickup order
//   - Deliver for the OTP-gated picked_up -> delivered step
//
// Violations return ErrInvalidTransition, a lost claim returns ErrAlreadyAssigned, and a wrong
// code returns ErrInvalidOTP. In every failure case the order is left unchanged.
//
// ValidTransitions evaluates the same table to tell a caller which actions it may offer.
package order
