package cart

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// DefaultDistanceKm is used until the customer sets a delivery distance.
const DefaultDistanceKm = 2.0

// Line is one product/variant/size choice with its quantity.
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	variantID kernel.UUID
	sizeID    *kernel.UUID
	quantity  int
}

func RestoreLine(id, productID, variantID kernel.UUID, sizeID *kernel.UUID, quantity int) Line {
	return Line{id: id, productID: productID, variantID: variantID, sizeID: sizeID, quantity: quantity}
}

func (l Line) ID() kernel.UUID {
	return l.id
}

func (l Line) ProductID() kernel.UUID {
	return l.productID
}

func (l Line) VariantID() kernel.UUID {
	return l.variantID
}

func (l Line) SizeID() *kernel.UUID {
	return l.sizeID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) sameChoice(productID, variantID kernel.UUID, sizeID *kernel.UUID) bool {
	if !l.productID.IsEqual(productID) || !l.variantID.IsEqual(variantID) {
		return false
	}
	if l.sizeID == nil || sizeID == nil {
		return l.sizeID == nil && sizeID == nil
	}
	return l.sizeID.IsEqual(*sizeID)
}

// Cart belongs to exactly one user. All lines come from the same store; storeID is nil
// exactly when the cart has no lines.
type Cart struct {
	userID     kernel.UUID
	storeID    *kernel.UUID
	lines      []Line
	distanceKm float64
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewCart returns an empty cart at DefaultDistanceKm.
func NewCart(userID kernel.UUID, now time.Time) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		userID:     userID,
		distanceKm: DefaultDistanceKm,
		updatedAt:  now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart rebuilds a persisted cart.
func RestoreCart(
	userID kernel.UUID,
	storeID *kernel.UUID,
	lines []Line,
	distanceKm float64,
	updatedAt time.Time,
) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		storeID = nil
	}
	return &Cart{
		userID:     userID,
		storeID:    storeID,
		lines:      append([]Line(nil), lines...),
		distanceKm: distanceKm,
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

func (c *Cart) StoreID() *kernel.UUID {
	return c.storeID
}

func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) DistanceKm() float64 {
	return c.distanceKm
}

func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem merges quantity into an identical product+variant+size line or appends a new line.
// Adding a product from another store empties the cart first. It returns the affected line.
func (c *Cart) AddItem(
	productID, storeID, variantID kernel.UUID,
	sizeID *kernel.UUID,
	quantity int,
	now time.Time,
) (Line, error) {
	if err := errors.Join(productID.Validate(), storeID.Validate(), variantID.Validate()); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}

	if c.storeID != nil && !c.storeID.IsEqual(storeID) {
		c.lines = nil
	}
	c.storeID = &storeID
	c.updatedAt = now.UTC()

	for i := range c.lines {
		if c.lines[i].sameChoice(productID, variantID, sizeID) {
			c.lines[i].quantity += quantity
			return c.lines[i], nil
		}
	}

	line := Line{
		id:        kernel.NewUUID(),
		productID: productID,
		variantID: variantID,
		sizeID:    sizeID,
		quantity:  quantity,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *Cart) UpdateQuantity(lineID kernel.UUID, quantity int, now time.Time) error {
	idx := -1
	for i := range c.lines {
		if c.lines[i].id.IsEqual(lineID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.NewObjectNotFoundError("item_id", lineID)
	}

	if quantity <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		if len(c.lines) == 0 {
			c.storeID = nil
		}
	} else {
		c.lines[idx].quantity = quantity
	}
	c.updatedAt = now.UTC()
	return nil
}

// Clear empties the cart. Clearing an empty cart is a no-op.
func (c *Cart) Clear(now time.Time) {
	c.lines = nil
	c.storeID = nil
	c.updatedAt = now.UTC()
}

// SetDistance records the delivery distance used for fee calculation.
func (c *Cart) SetDistance(km float64, now time.Time) error {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance_km", fmt.Errorf("%v is not a non-negative distance", km))
	}
	c.distanceKm = km
	c.updatedAt = now.UTC()
	return nil
}
