package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

var numberPattern = regexp.MustCompile(`^ORD-\d{5}$`)

// Number is the human-facing order reference, "ORD-" followed by five digits.
type Number string

// NewNumber draws a random number in ORD-10000..ORD-99999. Uniqueness is enforced by storage.
func NewNumber() (Number, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return Number(fmt.Sprintf("ORD-%05d", n.Int64()+10000)), nil
}

func (n Number) Validate() error {
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause("order_number", fmt.Errorf("%q does not match ORD-#####", string(n)))
	}
	return nil
}

func (n Number) String() string {
	return string(n)
}

// Item is the immutable snapshot of a cart line taken at checkout.
type Item struct {
	ProductID   kernel.UUID
	VariantID   kernel.UUID
	SizeID      *kernel.UUID
	ProductName string
	VariantName string
	SizeName    string
	UnitPrice   kernel.Money
	Quantity    int
	ItemTotal   kernel.Money
}

// Charges are fixed at checkout. PlatformFee is the platform's share of the subtotal and is
// not added to Total.
type Charges struct {
	Subtotal        kernel.Money
	BaseDeliveryFee kernel.Money
	DeliveryFee     kernel.Money
	PlatformFee     kernel.Money
	Total           kernel.Money
}

// Destination is where the order is delivered.
type Destination struct {
	Address  string
	Location kernel.Location
	// DistanceKm is the distance the delivery fee was priced at.
	DistanceKm float64
	// RouteKm is the great-circle distance from the store to Location.
	RouteKm float64
}

// Promotions records which cart promotions applied at checkout.
type Promotions struct {
	GiftEligible        bool
	FreeDeliveryApplied bool
}

// StatusChange is one audited transition. Pending changes are persisted as history rows and
// outbox events in the same transaction as the order.
type StatusChange struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	From      Status
	To        Status
	ActorID   kernel.UUID
	ActorRole kernel.Role
	At        time.Time
}

// Order is the aggregate root of the delivery lifecycle.
//
// Immutable after creation: number, items, charges, otp, customer, store and merchant.
// Mutable: status and agent. Status only moves along the transition table.
type Order struct {
	id          kernel.UUID
	number      Number
	customerID  kernel.UUID
	storeID     kernel.UUID
	merchantID  kernel.UUID
	agentID     *kernel.UUID
	items       []Item
	charges     Charges
	otp         OTP
	destination Destination
	promotions  Promotions
	status      Status
	version     int
	createdAt   time.Time
	updatedAt   time.Time

	changes []StatusChange

	guard guard.ConstructorGuard
}

// NewOrder places an order. The first status change (unknown -> placed) is recorded so the
// creation is published like every other transition.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID, storeID, merchantID kernel.UUID,
	items []Item,
	charges Charges,
	otp OTP,
	destination Destination,
	promotions Promotions,
	now time.Time,
) (*Order, error) {
	o := &Order{
		id:          id,
		number:      number,
		customerID:  customerID,
		storeID:     storeID,
		merchantID:  merchantID,
		items:       append([]Item(nil), items...),
		charges:     charges,
		otp:         otp,
		destination: destination,
		promotions:  promotions,
		status:      Placed,
		createdAt:   now.UTC(),
		updatedAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		customerID.Validate(),
		storeID.Validate(),
		merchantID.Validate(),
		otp.Validate(),
		validateItems(items),
		validateCharges(items, charges),
		validateDestination(destination),
	); err != nil {
		return nil, err
	}

	o.changes = append(o.changes, StatusChange{
		ID:        kernel.NewUUID(),
		OrderID:   id,
		From:      Unknown,
		To:        Placed,
		ActorID:   customerID,
		ActorRole: kernel.RoleCustomer,
		At:        o.createdAt,
	})

	return o, nil
}

// RestoreOrder rebuilds a persisted order at the given version.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID, storeID, merchantID kernel.UUID,
	agentID *kernel.UUID,
	items []Item,
	charges Charges,
	otp OTP,
	destination Destination,
	promotions Promotions,
	status Status,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate(), otp.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		number:      number,
		customerID:  customerID,
		storeID:     storeID,
		merchantID:  merchantID,
		agentID:     agentID,
		items:       append([]Item(nil), items...),
		charges:     charges,
		otp:         otp,
		destination: destination,
		promotions:  promotions,
		status:      status,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// AgentID returns nil until an agent claims the order.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Charges() Charges {
	return o.charges
}

func (o *Order) OTP() OTP {
	return o.otp
}

func (o *Order) Destination() Destination {
	return o.destination
}

func (o *Order) Promotions() Promotions {
	return o.promotions
}

func (o *Order) Status() Status {
	return o.status
}

// Version is the persisted version this instance was loaded at.
func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// PendingChanges returns the transitions not yet persisted.
func (o *Order) PendingChanges() []StatusChange {
	return append([]StatusChange(nil), o.changes...)
}

// ClearPendingChanges is called by the repository once changes are stored.
func (o *Order) ClearPendingChanges() {
	o.changes = nil
}

// CanView reports whether the actor may read the order: its customer, the store's merchant,
// the assigned agent, any agent while it waits unassigned for pickup, or an admin.
func (o *Order) CanView(a Actor) bool {
	switch a.Role {
	case kernel.RoleAdmin:
		return true
	case kernel.RoleCustomer:
		return ownsOrder(o, a)
	case kernel.RoleMerchant:
		return ownsStore(o, a)
	case kernel.RoleAgent:
		return holdsAssignment(o, a) || (o.status == ReadyForPickup && o.agentID == nil)
	default:
		return false
	}
}

// CanSeeOTP is true only for the customer who placed the order.
func (o *Order) CanSeeOTP(a Actor) bool {
	return a.Role == kernel.RoleCustomer && ownsOrder(o, a)
}

// Transition moves the order to the requested status. Assigned and Delivered are not reachable
// here; use Claim and Deliver.
func (o *Order) Transition(a Actor, to Status, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := o.check(a, to, opStatus); err != nil {
		return err
	}
	o.apply(a, to, now)
	return nil
}

// Accept is the merchant's placed -> accepted transition.
func (o *Order) Accept(a Actor, now time.Time) error {
	return o.Transition(a, Accepted, now)
}

// Claim assigns the order to the acting agent. An order that already has an agent yields
// ErrAlreadyAssigned; every other violation yields ErrInvalidTransition.
func (o *Order) Claim(a Actor, now time.Time) error {
	if a.Role == kernel.RoleAgent && o.agentID != nil && !o.status.IsTerminal() {
		if holdsAssignment(o, a) {
			return fmt.Errorf("%w: order %s is already %s by this agent", ErrInvalidTransition, o.number, o.status)
		}
		return fmt.Errorf("%w: order %s", ErrAlreadyAssigned, o.number)
	}
	if err := o.check(a, Assigned, opClaim); err != nil {
		return err
	}

	agentID := a.ID
	o.agentID = &agentID
	o.apply(a, Assigned, now)
	return nil
}

// Deliver completes the order when the assigned agent submits the exact OTP. A mismatch leaves
// the order in picked_up and returns ErrInvalidOTP.
func (o *Order) Deliver(a Actor, candidate string, now time.Time) error {
	if err := o.check(a, Delivered, opDeliver); err != nil {
		return err
	}
	if !o.otp.Matches(candidate) {
		return ErrInvalidOTP
	}
	o.apply(a, Delivered, now)
	return nil
}

func (o *Order) apply(a Actor, to Status, now time.Time) {
	o.changes = append(o.changes, StatusChange{
		ID:        kernel.NewUUID(),
		OrderID:   o.id,
		From:      o.status,
		To:        to,
		ActorID:   a.ID,
		ActorRole: a.Role,
		At:        now.UTC(),
	})
	o.status = to
	o.updatedAt = now.UTC()
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, it := range items {
		if it.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d has quantity %d", i, it.Quantity))
		}
		if !it.UnitPrice.Mul(int64(it.Quantity)).IsEqual(it.ItemTotal) {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %d total %s is not %s x %d", i, it.ItemTotal, it.UnitPrice, it.Quantity))
		}
	}
	return nil
}

func validateCharges(items []Item, c Charges) error {
	sum := kernel.Zero()
	for _, it := range items {
		sum = sum.Add(it.ItemTotal)
	}
	if !sum.IsEqual(c.Subtotal) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal", fmt.Errorf("%s is not the sum of items %s", c.Subtotal, sum))
	}
	if !c.Subtotal.Add(c.DeliveryFee).IsEqual(c.Total) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is not subtotal %s plus delivery fee %s", c.Total, c.Subtotal, c.DeliveryFee))
	}
	return nil
}

func validateDestination(d Destination) error {
	if strings.TrimSpace(d.Address) == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	if d.DistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance_km", fmt.Errorf("%v is negative", d.DistanceKm))
	}
	if d.RouteKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("route_km", fmt.Errorf("%v is negative", d.RouteKm))
	}
	return d.Location.Validate()
}
