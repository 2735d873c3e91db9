package commands

import (
	"errors"
	"fmt"
	"strings"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns the customer's cart into an order.
//
// Example:
//
//	distance := 2.0
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), customerID, "12 MG Road", 12.97, 77.59, &distance)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd) // the order is placed and the cart emptied
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	address    string
	location   kernel.Location
	distanceKm *float64

	guard guard.ConstructorGuard
}

// NewCheckoutCommand takes an optional distance; without one the distance between the store
// and the delivery location is used.
func NewCheckoutCommand(
	orderID, customerID kernel.UUID,
	address string,
	lat, lng float64,
	distanceKm *float64,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}

	location, locErr := kernel.NewLocation(lat, lng)
	cmd.location = location

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		locErr,
		cmd.setAddress(address),
		cmd.setDistance(distanceKm),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CheckoutCommand) Address() string {
	return c.address
}

func (c CheckoutCommand) Location() kernel.Location {
	return c.location
}

func (c CheckoutCommand) DistanceKm() *float64 {
	return c.distanceKm
}

func (c *CheckoutCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	c.address = address
	return nil
}

func (c *CheckoutCommand) setDistance(d *float64) error {
	if d == nil {
		return nil
	}
	if *d < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance_km", fmt.Errorf("%v is negative", *d))
	}
	v := *d
	c.distanceKm = &v
	return nil
}
