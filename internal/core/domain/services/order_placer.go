package services

import (
	"errors"
	"fmt"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCartIsEmpty is returned when checking out a cart without lines.
	ErrCartIsEmpty = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cart is empty"))

	// ErrStoreIsClosed is returned when the cart's store is not accepting orders.
	ErrStoreIsClosed = errs.NewValueIsInvalidErrorWithCause("store", errors.New("store is closed"))

	// ErrCartHasUnavailableItems is returned when a line no longer resolves in the catalog.
	ErrCartHasUnavailableItems = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cart contains unavailable items"))
)

// DefaultPlatformFeePercent is the platform's share of the subtotal.
var DefaultPlatformFeePercent = decimal.NewFromInt(5)

// PlaceRequest carries everything needed to place one order.
type PlaceRequest struct {
	OrderID    kernel.UUID
	Number     order.Number
	OTP        order.OTP
	CustomerID kernel.UUID
	Cart       *cart.Cart
	Store      *catalog.Store
	Products   cart.ProductLookup
	Address    string
	Location   kernel.Location
	// DistanceKm overrides the distance saved on the cart when set.
	DistanceKm *float64
	Now        time.Time
}

// OrderPlacer prices a cart with the pricing policy and snapshots it into an order.
//
// Business rules:
//   - the cart must be non-empty and every line must still exist in the catalog
//   - the store must be the cart's store and must be open
//   - the order's charges are exactly the cart summary at checkout, priced at the cart's
//     distance unless the checkout names one
//   - the platform fee is a percentage of the subtotal and is not charged to the customer
type OrderPlacer struct {
	policy             cart.Policy
	platformFeePercent decimal.Decimal
}

func NewOrderPlacer(policy cart.Policy, platformFeePercent decimal.Decimal) OrderPlacer {
	return OrderPlacer{policy: policy, platformFeePercent: platformFeePercent}
}

// Place builds the order. The cart and the store are left untouched; the caller clears the
// cart and counts the order against the store in the same unit of work.
func (p OrderPlacer) Place(req PlaceRequest) (*order.Order, error) {
	if err := errors.Join(req.Cart.Validate(), req.Store.Validate()); err != nil {
		return nil, err
	}
	if req.Cart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}
	if sid := req.Cart.StoreID(); sid == nil || !sid.IsEqual(req.Store.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("store", fmt.Errorf("cart does not belong to store %s", req.Store.ID()))
	}
	if !req.Store.IsOpen() {
		return nil, ErrStoreIsClosed
	}

	lines := req.Cart.PriceLines(req.Products)
	if len(lines) != len(req.Cart.Lines()) {
		return nil, ErrCartHasUnavailableItems
	}

	distance, err := p.distance(req)
	if err != nil {
		return nil, err
	}
	route, err := req.Store.Location().DistanceKm(req.Location)
	if err != nil {
		return nil, err
	}
	summary := p.policy.Summarize(lines, distance)

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.Item{
			ProductID:   l.ProductID,
			VariantID:   l.VariantID,
			SizeID:      l.SizeID,
			ProductName: l.ProductName,
			VariantName: l.VariantName,
			SizeName:    l.SizeName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			ItemTotal:   l.ItemTotal,
		})
	}

	charges := order.Charges{
		Subtotal:        summary.Subtotal,
		BaseDeliveryFee: summary.BaseDeliveryFee,
		DeliveryFee:     summary.DeliveryFee,
		PlatformFee:     summary.Subtotal.Percent(p.platformFeePercent),
		Total:           summary.Total,
	}

	o, err := order.NewOrder(
		req.OrderID,
		req.Number,
		req.CustomerID,
		req.Store.ID(),
		req.Store.MerchantID(),
		items,
		charges,
		req.OTP,
		order.Destination{Address: req.Address, Location: req.Location, DistanceKm: distance, RouteKm: route},
		order.Promotions{
			GiftEligible:        summary.Promotions.GiftEligible,
			FreeDeliveryApplied: summary.Promotions.FreeDeliveryApplied,
		},
		req.Now,
	)
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (p OrderPlacer) distance(req PlaceRequest) (float64, error) {
	if req.DistanceKm != nil {
		if *req.DistanceKm < 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause("distance_km", fmt.Errorf("%v is negative", *req.DistanceKm))
		}
		return *req.DistanceKm, nil
	}
	return req.Cart.DistanceKm(), nil
}
