package order

import (
	"errors"
	"fmt"

	"hyperlocal/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidTransition is returned for any status change outside the transition table,
	// by a role without the right, or on an order the actor does not own or hold.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyAssigned is returned to an agent claiming an order that already has an agent.
	ErrAlreadyAssigned = errors.New("order is already assigned")

	// ErrInvalidOTP is returned when the submitted delivery code does not match.
	ErrInvalidOTP = errors.New("invalid otp")
)

// operation names the entry point a transition must go through.
type operation int

const (
	opStatus operation = iota
	opClaim
	opDeliver
)

type precondition func(o *Order, a Actor) bool

type transition struct {
	from  []Status
	to    Status
	role  kernel.Role
	op    operation
	guard precondition
}

func ownsStore(o *Order, a Actor) bool {
	return o.merchantID.IsEqual(a.ID)
}

func ownsOrder(o *Order, a Actor) bool {
	return o.customerID.IsEqual(a.ID)
}

func holdsAssignment(o *Order, a Actor) bool {
	return o.agentID != nil && o.agentID.IsEqual(a.ID)
}

func canClaim(o *Order, a Actor) bool {
	return o.agentID == nil && a.Online
}

func anyone(*Order, Actor) bool {
	return true
}

func nonTerminal() []Status {
	return []Status{Placed, Accepted, Preparing, ReadyForPickup, Assigned, PickedUp}
}

// table is the complete set of permitted edges. An edge not listed here does not exist.
func table() []transition {
	return []transition{
		{from: []Status{Placed}, to: Accepted, role: kernel.RoleMerchant, op: opStatus, guard: ownsStore},
		{from: []Status{Accepted}, to: Preparing, role: kernel.RoleMerchant, op: opStatus, guard: ownsStore},
		{from: []Status{Preparing}, to: ReadyForPickup, role: kernel.RoleMerchant, op: opStatus, guard: ownsStore},
		{from: []Status{Placed, Accepted, Preparing}, to: Cancelled, role: kernel.RoleMerchant, op: opStatus, guard: ownsStore},

		{from: []Status{ReadyForPickup}, to: Assigned, role: kernel.RoleAgent, op: opClaim, guard: canClaim},
		{from: []Status{Assigned, ReadyForPickup}, to: PickedUp, role: kernel.RoleAgent, op: opStatus, guard: holdsAssignment},
		{from: []Status{PickedUp}, to: Delivered, role: kernel.RoleAgent, op: opDeliver, guard: holdsAssignment},

		{from: []Status{Placed}, to: Cancelled, role: kernel.RoleCustomer, op: opStatus, guard: ownsOrder},

		{from: nonTerminal(), to: Cancelled, role: kernel.RoleAdmin, op: opStatus, guard: anyone},
	}
}

func (t transition) permits(o *Order, a Actor, to Status, op operation) bool {
	if t.to != to || t.role != a.Role || t.op != op {
		return false
	}
	for _, from := range t.from {
		if from == o.status {
			return t.guard(o, a)
		}
	}
	return false
}

func (o *Order) check(a Actor, to Status, op operation) error {
	if !o.status.precedes(to) {
		return invalidTransition(o.status, to, a)
	}
	for _, t := range table() {
		if t.permits(o, a, to, op) {
			return nil
		}
	}
	return invalidTransition(o.status, to, a)
}

func invalidTransition(from, to Status, a Actor) error {
	return fmt.Errorf("%w: %s -> %s as %s", ErrInvalidTransition, from, to, a.Role)
}

// ValidTransitions lists the statuses the actor may move the order to right now, including
// assigned (via claim) and delivered (via OTP verification).
func (o *Order) ValidTransitions(a Actor) []Status {
	var out []Status
	seen := map[Status]bool{}
	for _, t := range table() {
		if seen[t.to] || !o.status.precedes(t.to) {
			continue
		}
		if t.permits(o, a, t.to, t.op) {
			seen[t.to] = true
			out = append(out, t.to)
		}
	}
	return out
}
