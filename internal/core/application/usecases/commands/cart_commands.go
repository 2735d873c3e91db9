package commands

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrCartCommandIsNotConstructed = errors.New("cart command must be created via its constructor")
)

// AddCartItemCommand adds quantity of a product variant (and optional size) to the user's cart.
type AddCartItemCommand struct {
	userID    kernel.UUID
	productID kernel.UUID
	variantID kernel.UUID
	sizeID    *kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(
	userID, productID, variantID kernel.UUID,
	sizeID *kernel.UUID,
	quantity int,
) (AddCartItemCommand, error) {
	var qtyErr error
	if quantity < 1 {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	if err := errors.Join(userID.Validate(), productID.Validate(), variantID.Validate(), qtyErr); err != nil {
		return AddCartItemCommand{}, err
	}
	return AddCartItemCommand{
		userID:    userID,
		productID: productID,
		variantID: variantID,
		sizeID:    sizeID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c AddCartItemCommand) UserID() kernel.UUID { return c.userID }
func (c AddCartItemCommand) ProductID() kernel.UUID { return c.productID }
func (c AddCartItemCommand) VariantID() kernel.UUID { return c.variantID }
func (c AddCartItemCommand) SizeID() *kernel.UUID { return c.sizeID }
func (c AddCartItemCommand) Quantity() int { return c.quantity }

// UpdateCartItemCommand sets the quantity of one cart line. Zero or less removes it.
type UpdateCartItemCommand struct {
	userID   kernel.UUID
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(userID, lineID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	if err := errors.Join(userID.Validate(), lineID.Validate()); err != nil {
		return UpdateCartItemCommand{}, err
	}
	return UpdateCartItemCommand{
		userID:   userID,
		lineID:   lineID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateCartItemCommand) LineID() kernel.UUID { return c.lineID }
func (c UpdateCartItemCommand) Quantity() int { return c.quantity }

// ClearCartCommand empties the user's cart. Clearing an empty or missing cart succeeds.
type ClearCartCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	if err := userID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c ClearCartCommand) UserID() kernel.UUID { return c.userID }

// SetCartDistanceCommand records the delivery distance the cart is priced for.
type SetCartDistanceCommand struct {
	userID     kernel.UUID
	distanceKm float64

	guard guard.ConstructorGuard
}

func NewSetCartDistanceCommand(userID kernel.UUID, distanceKm float64) (SetCartDistanceCommand, error) {
	var distErr error
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		distErr = errs.NewValueIsInvalidErrorWithCause("distance_km", fmt.Errorf("%v is not a non-negative distance", distanceKm))
	}
	if err := errors.Join(userID.Validate(), distErr); err != nil {
		return SetCartDistanceCommand{}, err
	}
	return SetCartDistanceCommand{userID: userID, distanceKm: distanceKm, guard: guard.NewConstructorGuard()}, nil
}

func (c SetCartDistanceCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c SetCartDistanceCommand) UserID() kernel.UUID { return c.userID }
func (c SetCartDistanceCommand) DistanceKm() float64 { return c.distanceKm }

// PurgeStaleCartsCommand removes carts untouched for longer than maxAge.
type PurgeStaleCartsCommand struct {
	before time.Time

	guard guard.ConstructorGuard
}

func NewPurgeStaleCartsCommand(now time.Time, maxAge time.Duration) (PurgeStaleCartsCommand, error) {
	if maxAge <= 0 {
		return PurgeStaleCartsCommand{}, errs.NewValueIsInvalidErrorWithCause("max_age", fmt.Errorf("%s is not positive", maxAge))
	}
	return PurgeStaleCartsCommand{before: now.Add(-maxAge), guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrCartCommandIsNotConstructed)
}

func (c PurgeStaleCartsCommand) Before() time.Time { return c.before }
