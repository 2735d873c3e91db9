package services_test

import (
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/services"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	store    *catalog.Store
	product  *catalog.Product
	variant  catalog.Variant
	cart     *cart.Cart
	customer kernel.UUID
	home     kernel.Location
}

func newCheckoutFixture(t *testing.T, price int64, qty int) checkoutFixture {
	t.Helper()
	now := time.Now()
	storeLoc, _ := kernel.NewLocation(12.9716, 77.5946)
	home, _ := kernel.NewLocation(12.9800, 77.6000)

	store, err := catalog.NewStore(kernel.NewUUID(), kernel.NewUUID(), "Fresh Foods Kitchen", "123 Main St",
		storeLoc, "", "", now)
	require.NoError(t, err)
	variant, err := catalog.NewVariant(kernel.NewUUID(), "Regular", "", kernel.MoneyFromInt(price), 0,
		kernel.Zero(), nil)
	require.NoError(t, err)
	product, err := catalog.NewProduct(kernel.NewUUID(), store.ID(), store.MerchantID(), "Classic Burger", "",
		"", "", []catalog.Variant{variant}, now)
	require.NoError(t, err)

	customer := kernel.NewUUID()
	c, err := cart.NewCart(customer, now)
	require.NoError(t, err)
	_, err = c.AddItem(product.ID(), store.ID(), variant.ID(), nil, qty, now)
	require.NoError(t, err)

	return checkoutFixture{store: store, product: product, variant: variant, cart: c, customer: customer, home: home}
}

func (f checkoutFixture) request(t *testing.T, distance *float64) services.PlaceRequest {
	t.Helper()
	otp, err := order.OTPFromString("4821")
	require.NoError(t, err)
	return services.PlaceRequest{
		OrderID:    kernel.NewUUID(),
		Number:     "ORD-54321",
		OTP:        otp,
		CustomerID: f.customer,
		Cart:       f.cart,
		Store:      f.store,
		Products:   cart.ProductLookup{f.product.ID(): f.product},
		Address:    "42 Lake View",
		Location:   f.home,
		DistanceKm: distance,
		Now:        time.Now(),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestOrderPlacer_Place(t *testing.T) {
	placer := services.NewOrderPlacer(cart.DefaultPolicy(), services.DefaultPlatformFeePercent)

	t.Run("snapshots the priced cart", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 2)

		o, err := placer.Place(f.request(t, ptr(2.0)))

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.True(t, o.Charges().Subtotal.IsEqual(kernel.MoneyFromInt(200)))
		assert.True(t, o.Charges().DeliveryFee.IsEqual(kernel.MoneyFromInt(20)))
		assert.True(t, o.Charges().Total.IsEqual(kernel.MoneyFromInt(220)))
		assert.True(t, o.Charges().PlatformFee.IsEqual(kernel.MoneyFromInt(10)))
		assert.True(t, o.MerchantID().IsEqual(f.store.MerchantID()))
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Classic Burger", o.Items()[0].ProductName)
		assert.Zero(t, f.store.TotalOrders(), "the store counter is incremented in storage")
		assert.False(t, f.cart.IsEmpty())
	})

	t.Run("free delivery is carried into the order", func(t *testing.T) {
		f := newCheckoutFixture(t, 250, 2)

		o, err := placer.Place(f.request(t, ptr(1.0)))

		require.NoError(t, err)
		assert.True(t, o.Promotions().FreeDeliveryApplied)
		assert.True(t, o.Charges().DeliveryFee.IsZero())
		assert.True(t, o.Charges().BaseDeliveryFee.IsEqual(kernel.MoneyFromInt(20)))
		assert.True(t, o.Charges().Total.IsEqual(kernel.MoneyFromInt(500)))
	})

	t.Run("priced at the distance saved on the cart", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)
		require.NoError(t, f.cart.SetDistance(10, time.Now()))
		lookup := cart.ProductLookup{f.product.ID(): f.product}
		shown := cart.DefaultPolicy().Summarize(f.cart.PriceLines(lookup), f.cart.DistanceKm())

		o, err := placer.Place(f.request(t, nil))

		require.NoError(t, err)
		assert.InDelta(t, 10.0, o.Destination().DistanceKm, 1e-9)
		assert.True(t, o.Charges().DeliveryFee.IsEqual(kernel.MoneyFromInt(100)))
		assert.True(t, o.Charges().DeliveryFee.IsEqual(shown.DeliveryFee))
		assert.True(t, o.Charges().Total.IsEqual(shown.Total))
	})

	t.Run("explicit distance wins over the cart", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)
		require.NoError(t, f.cart.SetDistance(10, time.Now()))

		o, err := placer.Place(f.request(t, ptr(2.0)))

		require.NoError(t, err)
		assert.InDelta(t, 2.0, o.Destination().DistanceKm, 1e-9)
		assert.True(t, o.Charges().DeliveryFee.IsEqual(kernel.MoneyFromInt(20)))
	})

	t.Run("route distance comes from the store location", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)

		o, err := placer.Place(f.request(t, nil))

		require.NoError(t, err)
		assert.Greater(t, o.Destination().RouteKm, 0.5)
		assert.Less(t, o.Destination().RouteKm, 2.0)
		assert.InDelta(t, cart.DefaultDistanceKm, o.Destination().DistanceKm, 1e-9)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)
		f.cart.Clear(time.Now())

		_, err := placer.Place(f.request(t, ptr(2.0)))
		require.ErrorIs(t, err, services.ErrCartIsEmpty)
	})

	t.Run("closed store", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)
		closed := false
		require.NoError(t, f.store.Update(f.store.MerchantID(), kernel.RoleMerchant, catalog.StorePatch{IsOpen: &closed}))

		_, err := placer.Place(f.request(t, ptr(2.0)))
		require.ErrorIs(t, err, services.ErrStoreIsClosed)
	})

	t.Run("vanished product", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)
		req := f.request(t, ptr(2.0))
		req.Products = cart.ProductLookup{}

		_, err := placer.Place(req)
		require.ErrorIs(t, err, services.ErrCartHasUnavailableItems)
	})

	t.Run("negative distance", func(t *testing.T) {
		f := newCheckoutFixture(t, 100, 1)
		_, err := placer.Place(f.request(t, ptr(-1.0)))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
