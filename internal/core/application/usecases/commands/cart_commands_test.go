package commands_test

import (
	"testing"
	"time"

	"hyperlocal/internal/core/application/usecases/commands"
	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/services"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shop struct {
	store   *catalog.Store
	product *catalog.Product
	variant catalog.Variant
}

func newShop(t *testing.T, price int64) shop {
	t.Helper()
	loc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)
	store, err := catalog.NewStore(kernel.NewUUID(), kernel.NewUUID(), "Udupi Cafe", "Church St", loc, "", "", time.Now())
	require.NoError(t, err)

	v, err := catalog.NewVariant(kernel.NewUUID(), "Plate", "", kernel.MoneyFromInt(price), 0, kernel.Zero(), nil)
	require.NoError(t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), store.ID(), store.MerchantID(), "Idli", "", "", "",
		[]catalog.Variant{v}, time.Now())
	require.NoError(t, err)

	return shop{store: store, product: p, variant: v}
}

func TestAddCartItemCommandHandler_Handle(t *testing.T) {
	t.Run("creates the cart on first add", func(t *testing.T) {
		ctx := t.Context()
		s := newShop(t, 100)
		userID := kernel.NewUUID()
		cmd, err := commands.NewAddCartItemCommand(userID, s.product.ID(), s.variant.ID(), nil, 2)
		require.NoError(t, err)

		products := new(MockProductRepository)
		carts := new(MockCartRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(products).Once(),
			products.On("Get", ctx, s.product.ID()).Return(s.product, nil).Once(),
			uow.On("CartRepository").Return(carts).Once(),
			carts.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("cart", userID)).Once(),
			carts.On("Save", ctx, mock.MatchedBy(func(c *cart.Cart) bool {
				return len(c.Lines()) == 1 && c.Lines()[0].Quantity() == 2 && c.StoreID().IsEqual(s.store.ID())
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewAddCartItemCommandHandler(newFactory[commands.CartUoW](uow)).Handle(ctx, cmd)
		require.NoError(t, err)
		uow.AssertExpectations(t)
		carts.AssertExpectations(t)
		products.AssertExpectations(t)
	})

	t.Run("unknown variant is rejected before touching the cart", func(t *testing.T) {
		ctx := t.Context()
		s := newShop(t, 100)
		cmd, err := commands.NewAddCartItemCommand(kernel.NewUUID(), s.product.ID(), kernel.NewUUID(), nil, 1)
		require.NoError(t, err)

		products := new(MockProductRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, false)
		uow.On("ProductRepository").Return(products).Once()
		products.On("Get", ctx, s.product.ID()).Return(s.product, nil).Once()

		err = commands.NewAddCartItemCommandHandler(newFactory[commands.CartUoW](uow)).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "CartRepository")
	})

	t.Run("quantity below one", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestClearCartCommandHandler_IsIdempotent(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	for range 2 {
		ctx := t.Context()
		carts := new(MockCartRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, true)
		uow.On("CartRepository").Return(carts).Once()
		carts.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("cart", userID)).Once()
		carts.On("Save", ctx, mock.MatchedBy(func(c *cart.Cart) bool { return c.IsEmpty() })).Return(nil).Once()

		err = commands.NewClearCartCommandHandler(newFactory[commands.CartUoW](uow)).Handle(ctx, cmd)
		require.NoError(t, err)
		carts.AssertExpectations(t)
	}
}

func TestUpdateCartItemCommandHandler_ZeroRemovesLine(t *testing.T) {
	ctx := t.Context()
	s := newShop(t, 100)
	userID := kernel.NewUUID()
	c, err := cart.NewCart(userID, time.Now())
	require.NoError(t, err)
	line, err := c.AddItem(s.product.ID(), s.store.ID(), s.variant.ID(), nil, 2, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCartItemCommand(userID, line.ID(), 0)
	require.NoError(t, err)

	carts := new(MockCartRepository)
	uow := new(MockUoW)
	expectTx(uow, ctx, true)
	uow.On("CartRepository").Return(carts).Once()
	carts.On("Get", ctx, userID).Return(c, nil).Once()
	carts.On("Save", ctx, c).Return(nil).Once()

	err = commands.NewUpdateCartItemCommandHandler(newFactory[commands.CartUoW](uow)).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Price(cart.DefaultPolicy(), nil).Subtotal.IsZero())
}

func TestSetCartDistanceCommand_RejectsNegative(t *testing.T) {
	_, err := commands.NewSetCartDistanceCommand(kernel.NewUUID(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPurgeStaleCartsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	cmd, err := commands.NewPurgeStaleCartsCommand(now, 72*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-72*time.Hour), cmd.Before())

	carts := new(MockCartRepository)
	uow := new(MockUoW)
	expectTx(uow, ctx, true)
	uow.On("CartRepository").Return(carts).Once()
	carts.On("DeleteStale", ctx, cmd.Before()).Return(int64(3), nil).Once()

	removed, err := commands.NewPurgeStaleCartsCommandHandler(newFactory[commands.CartUoW](uow)).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestCheckoutCommandHandler_Handle(t *testing.T) {
	placer := services.NewOrderPlacer(cart.DefaultPolicy(), services.DefaultPlatformFeePercent)
	distance := 2.0

	t.Run("places order and empties cart", func(t *testing.T) {
		ctx := t.Context()
		s := newShop(t, 100)
		customerID := kernel.NewUUID()
		c, err := cart.NewCart(customerID, time.Now())
		require.NoError(t, err)
		_, err = c.AddItem(s.product.ID(), s.store.ID(), s.variant.ID(), nil, 2, time.Now())
		require.NoError(t, err)

		cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID, "12 MG Road", 12.97, 77.6, &distance)
		require.NoError(t, err)

		carts := new(MockCartRepository)
		stores := new(MockStoreRepository)
		products := new(MockProductRepository)
		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, true)
		uow.On("CartRepository").Return(carts).Once()
		uow.On("StoreRepository").Return(stores).Once()
		uow.On("ProductRepository").Return(products).Once()
		uow.On("OrderRepository").Return(orders).Once()
		carts.On("Get", ctx, customerID).Return(c, nil).Once()
		stores.On("Get", ctx, s.store.ID()).Return(s.store, nil).Once()
		products.On("GetMany", ctx, []kernel.UUID{s.product.ID()}).Return([]*catalog.Product{s.product}, nil).Once()
		orders.On("NumberExists", ctx, mock.AnythingOfType("order.Number")).Return(true, nil).Once()
		orders.On("NumberExists", ctx, mock.AnythingOfType("order.Number")).Return(false, nil).Once()

		var placed *order.Order
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
			Return(nil).Once()
		stores.On("IncrementOrders", ctx, s.store.ID()).Return(nil).Once()
		carts.On("Save", ctx, c).Return(nil).Once()

		err = commands.NewCheckoutCommandHandler(newFactory[commands.CheckoutUoW](uow), placer).Handle(ctx, cmd)
		require.NoError(t, err)

		require.NotNil(t, placed)
		assert.Equal(t, cmd.OrderID(), placed.ID())
		assert.Equal(t, order.Placed, placed.Status())
		assert.Equal(t, "200.00", placed.Charges().Subtotal.String())
		assert.Equal(t, "20.00", placed.Charges().DeliveryFee.String())
		assert.Equal(t, "220.00", placed.Charges().Total.String())
		assert.Equal(t, "10.00", placed.Charges().PlatformFee.String())
		require.NoError(t, placed.OTP().Validate())
		require.NoError(t, placed.Number().Validate())
		assert.True(t, c.IsEmpty())
		orders.AssertExpectations(t)
		stores.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("missing cart is an empty cart", func(t *testing.T) {
		ctx := t.Context()
		customerID := kernel.NewUUID()
		cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), customerID, "12 MG Road", 12.97, 77.6, nil)
		require.NoError(t, err)

		carts := new(MockCartRepository)
		uow := new(MockUoW)
		expectTx(uow, ctx, false)
		uow.On("CartRepository").Return(carts).Once()
		carts.On("Get", ctx, customerID).Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once()

		err = commands.NewCheckoutCommandHandler(newFactory[commands.CheckoutUoW](uow), placer).Handle(ctx, cmd)
		require.ErrorIs(t, err, services.ErrCartIsEmpty)
	})

	t.Run("address is required", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), kernel.NewUUID(), " ", 12.97, 77.6, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
