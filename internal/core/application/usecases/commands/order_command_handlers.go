package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/errs"
)

// transitionOrder loads the order, applies fn and persists it with the version predicate.
// A concurrent writer makes Update fail with errs.ErrVersionIsInvalid; nothing is written.
func transitionOrder(
	ctx context.Context,
	factory OrderUoWFactory,
	orderID kernel.UUID,
	fn func(*order.Order, time.Time) error,
) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = fn(o, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateOrderStatusCommandHandler moves an order along its lifecycle on behalf of the actor.
// Illegal moves are reported as order.ErrInvalidTransition and a stale read as
// errs.ErrVersionIsInvalid.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Transition(cmd.Actor(), cmd.Status(), now)
	})
}

// AcceptOrderCommandHandler lets the store owner take a placed order.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory}
}

// Handle accepts the order for cmd.Actor().
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Accept(cmd.Actor(), now)
	})
}

// ClaimOrderCommandHandler resolves the claim race. The loser either sees the winner's
// agent on load (domain check) or loses the version compare-and-set on update; both surface
// as order.ErrAlreadyAssigned.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyAssigned):
//	    // another agent got there first
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // not ready for pickup, the agent is offline, or the agent already holds it
//	}
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for agent claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{uowFactory: uowFactory}
}

// Handle assigns the order to the calling agent. A version conflict on update means another
// agent committed first and is mapped to order.ErrAlreadyAssigned; every other error is
// returned unchanged.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Claim(cmd.Actor(), now)
	})
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return fmt.Errorf("%w: order %s", order.ErrAlreadyAssigned, cmd.OrderID())
	}
	return err
}

// VerifyOTPCommandHandler completes a delivery. Only the assigned agent may submit the OTP.
type VerifyOTPCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewVerifyOTPCommandHandler(uowFactory OrderUoWFactory) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{uowFactory: uowFactory}
}

// Handle marks the order delivered on an exact OTP match. Attempts are not limited.
func (h VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Deliver(cmd.Actor(), cmd.Candidate(), now)
	})
}
