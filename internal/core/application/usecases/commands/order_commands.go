package commands

import (
	"errors"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/guard"
)

var ErrOrderCommandIsNotConstructed = errors.New("order command must be created via its constructor")

func validateActor(a order.Actor) error {
	return errors.Join(a.ID.Validate(), a.Role.Validate())
}

// UpdateOrderStatusCommand requests a status change on behalf of an actor. The generic status
// update cannot reach assigned or delivered; those go through claim and OTP verification.
type UpdateOrderStatusCommand struct {
	orderID kernel.UUID
	actor   order.Actor
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, actor order.Actor, status string) (UpdateOrderStatusCommand, error) {
	s, statusErr := order.ParseStatus(status)
	if err := errors.Join(orderID.Validate(), validateActor(actor), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return UpdateOrderStatusCommand{orderID: orderID, actor: actor, status: s, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOrderCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Actor() order.Actor { return c.actor }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

// AcceptOrderCommand is the merchant's shortcut for placed -> accepted.
type AcceptOrderCommand struct {
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.UUID, actor order.Actor) (AcceptOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), validateActor(actor)); err != nil {
		return AcceptOrderCommand{}, err
	}
	return AcceptOrderCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AcceptOrderCommand) Actor() order.Actor { return c.actor }

// ClaimOrderCommand assigns a ready order to the acting agent. It is not idempotent and must
// not be retried blindly: of concurrent claimers exactly one wins.
type ClaimOrderCommand struct {
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(orderID kernel.UUID, actor order.Actor) (ClaimOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), validateActor(actor)); err != nil {
		return ClaimOrderCommand{}, err
	}
	return ClaimOrderCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c ClaimOrderCommand) Actor() order.Actor { return c.actor }

// VerifyOTPCommand completes delivery when the candidate code matches the order's OTP.
type VerifyOTPCommand struct {
	orderID   kernel.UUID
	actor     order.Actor
	candidate string

	guard guard.ConstructorGuard
}

// NewVerifyOTPCommand accepts any candidate string; a malformed code is simply a mismatch.
func NewVerifyOTPCommand(orderID kernel.UUID, actor order.Actor, candidate string) (VerifyOTPCommand, error) {
	if err := errors.Join(orderID.Validate(), validateActor(actor)); err != nil {
		return VerifyOTPCommand{}, err
	}
	return VerifyOTPCommand{orderID: orderID, actor: actor, candidate: candidate, guard: guard.NewConstructorGuard()}, nil
}

func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrOrderCommandIsNotConstructed)
}

func (c VerifyOTPCommand) OrderID() kernel.UUID { return c.orderID }
func (c VerifyOTPCommand) Actor() order.Actor { return c.actor }
func (c VerifyOTPCommand) Candidate() string { return c.candidate }
