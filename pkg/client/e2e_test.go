package client_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"hyperlocal/cmd"
	"hyperlocal/internal/pkg/logging"
	"hyperlocal/pkg/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MarketplaceSuite struct {
	suite.Suite

	ctx     context.Context
	baseURL string
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceSuite))
}

func (s *MarketplaceSuite) SetupTest() {
	t := s.T()
	t.Setenv("JWT_SECRET", "e2e-secret")
	t.Setenv("DB_DRIVER", cmd.DriverSQLite)
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := cmd.LoadConfig("")
	s.Require().NoError(err)

	log := logging.Discard()
	db, err := cmd.OpenDatabase(cfg, log)
	s.Require().NoError(err)
	t.Cleanup(func() { cmd.CloseDatabase(db, log) })

	root, err := cmd.NewCompositionRoot(cfg, db, log)
	s.Require().NoError(err)
	t.Cleanup(root.Close)

	s.ctx = context.Background()
	seeded, err := root.CreateSeeder().Seed(s.ctx)
	s.Require().NoError(err)
	s.Require().True(seeded)

	e, err := root.CreateRouter()
	s.Require().NoError(err)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	s.baseURL = srv.URL
}

func (s *MarketplaceSuite) login(email, password string) *client.Client {
	c := client.New(s.baseURL, nil)
	_, err := c.Login(s.ctx, email, password)
	s.Require().NoError(err)
	return c
}

func (s *MarketplaceSuite) Test_SeededCatalogue() {
	c := client.New(s.baseURL, nil)

	stores, err := c.ListStores(s.ctx, "")
	s.Require().NoError(err)
	s.Len(stores, 3)

	result, err := c.Search(s.ctx, "sushi")
	s.Require().NoError(err)
	s.NotEmpty(result.Stores)
	s.NotEmpty(result.Products)

	banners, err := c.ListBanners(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(banners, 2)
	s.Equal("Fresh Deals Today!", banners[0].Title)

	cms, err := c.CMS(s.ctx)
	s.Require().NoError(err)
	s.JSONEq(`"QuickDrop"`, string(cms["platform_name"]))

	promos, err := c.ListPromotions(s.ctx)
	s.Require().NoError(err)
	s.Len(promos, 3)
}

func (s *MarketplaceSuite) Test_AnonymousCallsAreUnauthorized() {
	c := client.New(s.baseURL, nil)

	_, err := c.ListOrders(s.ctx, "")
	s.ErrorIs(err, client.ErrUnauthorized)

	_, err = c.Login(s.ctx, "customer@delivery.com", "wrong-password")
	s.ErrorIs(err, client.ErrUnauthorized)
}

func (s *MarketplaceSuite) Test_RegisterAndRestore() {
	store := &client.MemoryTokenStore{}
	c := client.New(s.baseURL, client.NewSession(store))

	u, err := c.Register(s.ctx, client.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret1", Roles: []string{client.RoleMerchant},
	})
	s.Require().NoError(err)
	s.Equal(client.RoleMerchant, u.ActiveRole)
	s.ElementsMatch([]string{client.RoleMerchant, client.RoleCustomer}, u.Roles)

	resumed := client.New(s.baseURL, client.NewSession(store))
	restored, err := resumed.Restore(s.ctx)
	s.Require().NoError(err)
	s.Equal(u.Id, restored.Id)

	_, err = c.Register(s.ctx, client.RegisterRequest{Name: "Dup", Email: "ASHA@example.com", Password: "secret1"})
	s.ErrorIs(err, client.ErrConflict)

	_, err = c.Register(s.ctx, client.RegisterRequest{Name: "Root", Email: "root@example.com", Password: "secret1",
		Roles: []string{client.RoleAdmin}})
	s.ErrorIs(err, client.ErrForbidden)

	_, err = c.Register(s.ctx, client.RegisterRequest{Email: "nobody@example.com"})
	s.ErrorIs(err, client.ErrValidation)

	s.Require().NoError(c.Logout(s.ctx))
	token, _ := store.Load(s.ctx)
	s.Empty(token)
}

func (s *MarketplaceSuite) Test_OrderLifecycle() {
	customer := s.login("customer@delivery.com", "customer123")
	merchant := s.login("merchant@delivery.com", "merchant123")
	agent := s.login("agent@delivery.com", "agent123")
	admin := s.login("admin@delivery.com", "admin123")

	products, err := customer.ListProducts(s.ctx, client.ProductFilter{Search: "Classic Burger"})
	s.Require().NoError(err)
	s.Require().NotEmpty(products)
	burger := products[0]
	variant := burger.Variants[0]

	cart, err := customer.AddToCart(s.ctx, client.AddCartItemRequest{
		ProductId: burger.Id, VariantId: variant.Id, Quantity: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(cart.Items, 1)
	s.InDelta(variant.Price*2, cart.Subtotal, 0.001)
	s.InDelta(cart.Subtotal+cart.DeliveryFee, cart.Total, 0.001)

	cleared, err := customer.ClearCart(s.ctx)
	s.Require().NoError(err)
	s.Empty(cleared.Items)
	cleared, err = customer.ClearCart(s.ctx)
	s.Require().NoError(err)
	s.Empty(cleared.Items)

	_, err = customer.AddToCart(s.ctx, client.AddCartItemRequest{ProductId: burger.Id, VariantId: variant.Id, Quantity: 2})
	s.Require().NoError(err)

	distance := 2.0
	placed, err := customer.Checkout(s.ctx, client.CheckoutRequest{
		DeliveryAddress: "12 Lake Road", Lat: 12.97, Lng: 77.59, DistanceKm: &distance,
	})
	s.Require().NoError(err)
	s.Equal(client.StatusPlaced, placed.Status)
	s.Regexp(`^ORD-\d{5}$`, placed.OrderNumber)
	s.Require().Len(placed.Otp, 4)
	s.InDelta(placed.Subtotal+placed.DeliveryFee, placed.Total, 0.001)

	cart, err = customer.GetCart(s.ctx)
	s.Require().NoError(err)
	s.Empty(cart.Items)

	png, err := customer.GetOrderOTPQR(s.ctx, placed.Id)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(png, []byte("\x89PNG")))
	_, err = merchant.GetOrderOTPQR(s.ctx, placed.Id)
	s.ErrorIs(err, client.ErrForbidden)

	_, err = merchant.UpdateOrderStatus(s.ctx, placed.Id, client.StatusReadyForPickup)
	s.ErrorIs(err, client.ErrInvalidTransition)

	o, err := merchant.AcceptOrder(s.ctx, placed.Id)
	s.Require().NoError(err)
	s.Equal(client.StatusAccepted, o.Status)
	s.Empty(o.Otp)

	_, err = merchant.UpdateOrderStatus(s.ctx, placed.Id, client.StatusPlaced)
	s.ErrorIs(err, client.ErrInvalidTransition)

	o, err = merchant.UpdateOrderStatus(s.ctx, placed.Id, client.StatusPreparing)
	s.Require().NoError(err)
	o, err = merchant.UpdateOrderStatus(s.ctx, o.Id, client.StatusReadyForPickup)
	s.Require().NoError(err)
	s.Equal(client.StatusReadyForPickup, o.Status)

	available, err := agent.ListAvailableOrders(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(placed.Id, available[0].Id)

	o, err = agent.ClaimOrder(s.ctx, placed.Id)
	s.Require().NoError(err)
	s.Equal(client.StatusAssigned, o.Status)

	rival := client.New(s.baseURL, nil)
	_, err = rival.Register(s.ctx, client.RegisterRequest{
		Name: "Second Agent", Email: "rival@example.com", Password: "secret1", Roles: []string{client.RoleAgent},
	})
	s.Require().NoError(err)
	_, err = rival.ToggleOnline(s.ctx)
	s.Require().NoError(err)
	_, err = rival.ClaimOrder(s.ctx, placed.Id)
	s.ErrorIs(err, client.ErrAlreadyAssigned)

	o, err = agent.UpdateOrderStatus(s.ctx, placed.Id, client.StatusPickedUp)
	s.Require().NoError(err)
	s.True(client.CanPerform(o, client.StatusDelivered))

	wrong := "0000"
	if placed.Otp == wrong {
		wrong = "9999"
	}
	_, err = agent.VerifyOTP(s.ctx, placed.Id, wrong)
	s.ErrorIs(err, client.ErrInvalidOTP)
	o, err = agent.GetOrder(s.ctx, placed.Id)
	s.Require().NoError(err)
	s.Equal(client.StatusPickedUp, o.Status)

	o, err = agent.VerifyOTP(s.ctx, placed.Id, placed.Otp)
	s.Require().NoError(err)
	s.Equal(client.StatusDelivered, o.Status)

	_, err = admin.UpdateOrderStatus(s.ctx, placed.Id, client.StatusCancelled)
	s.ErrorIs(err, client.ErrInvalidTransition)

	history, err := customer.GetOrderHistory(s.ctx, placed.Id)
	s.Require().NoError(err)
	s.Require().NotEmpty(history)
	s.Equal(client.StatusDelivered, history[len(history)-1].To)

	s.checkDashboards(merchant, agent)
	s.checkSettlement(agent, admin)
}

func (s *MarketplaceSuite) Test_CheckoutChargesWhatTheCartShowed() {
	customer := s.login("customer@delivery.com", "customer123")

	products, err := customer.ListProducts(s.ctx, client.ProductFilter{Search: "Classic Burger"})
	s.Require().NoError(err)
	s.Require().NotEmpty(products)
	burger := products[0]

	_, err = customer.AddToCart(s.ctx, client.AddCartItemRequest{ProductId: burger.Id, VariantId: burger.Variants[0].Id})
	s.Require().NoError(err)
	shown, err := customer.SetCartDistance(s.ctx, 10)
	s.Require().NoError(err)
	s.InDelta(10.0, shown.DistanceKm, 0.001)

	// dropped off next door to the store, but the cart was priced for 10 km
	placed, err := customer.Checkout(s.ctx, client.CheckoutRequest{
		DeliveryAddress: "Next to Fresh Foods Kitchen", Lat: 12.9716, Lng: 77.5946,
	})
	s.Require().NoError(err)

	s.InDelta(shown.Subtotal, placed.Subtotal, 0.001)
	s.InDelta(shown.DeliveryFee, placed.DeliveryFee, 0.001)
	s.InDelta(shown.Total, placed.Total, 0.001)
	s.InDelta(10.0, placed.DistanceKm, 0.001)
	s.Less(placed.RouteKm, 0.1)
}

func (s *MarketplaceSuite) checkDashboards(merchant, agent *client.Client) {
	d, err := merchant.Dashboard(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(d.Merchant)
	s.Equal(1, d.Merchant.Delivered)

	d, err = agent.Dashboard(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(d.Agent)
	s.Equal(1, d.Agent.TotalDeliveries)

	u, err := agent.SwitchRole(s.ctx, client.RoleCustomer)
	s.Require().NoError(err)
	s.Equal(client.RoleCustomer, u.ActiveRole)
	d, err = agent.Dashboard(s.ctx)
	s.Require().NoError(err)
	s.NotNil(d.Customer)
	s.Nil(d.Agent)

	_, err = agent.ListAvailableOrders(s.ctx)
	s.ErrorIs(err, client.ErrForbidden)

	_, err = agent.SwitchRole(s.ctx, client.RoleAgent)
	s.Require().NoError(err)
}

func (s *MarketplaceSuite) checkSettlement(agent, admin *client.Client) {
	requested, err := agent.RequestSettlement(s.ctx, 20)
	s.Require().NoError(err)
	s.Equal("pending", requested.Status)

	_, err = agent.Settle(s.ctx, requested.Id)
	s.ErrorIs(err, client.ErrForbidden)

	settled, err := admin.Settle(s.ctx, requested.Id)
	s.Require().NoError(err)
	s.Equal("settled", settled.Status)

	_, err = admin.Settle(s.ctx, requested.Id)
	s.ErrorIs(err, client.ErrConflict)

	_, err = admin.Settle(s.ctx, uuid.New())
	s.ErrorIs(err, client.ErrNotFound)
}

func TestClient_MerchantManagesStore(t *testing.T) {
	t.Setenv("JWT_SECRET", "e2e-secret")
	t.Setenv("DB_DRIVER", cmd.DriverSQLite)
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)
	log := logging.Discard()
	db, err := cmd.OpenDatabase(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { cmd.CloseDatabase(db, log) })
	root, err := cmd.NewCompositionRoot(cfg, db, log)
	require.NoError(t, err)
	e, err := root.CreateRouter()
	require.NoError(t, err)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	merchant := client.New(srv.URL, nil)
	_, err = merchant.Register(ctx, client.RegisterRequest{
		Name: "Meera", Email: "meera@example.com", Password: "secret1", Roles: []string{client.RoleMerchant},
	})
	require.NoError(t, err)

	st, err := merchant.CreateStore(ctx, client.CreateStoreRequest{Name: "Corner Bakery", Lat: 12.97, Lng: 77.59})
	require.NoError(t, err)
	assert.True(t, st.IsOpen)

	p, err := merchant.CreateProduct(ctx, client.CreateProductRequest{
		StoreId: st.Id,
		Name:    "Sourdough",
		Variants: []client.VariantInput{{
			Name:  "Loaf",
			Price: 120,
			Sizes: []client.SizeInput{{Name: "Half", IsDefault: true}, {Name: "Whole", PriceModifier: 100}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", p.Name)
	require.Len(t, p.Variants, 1)
	assert.Len(t, p.Variants[0].Sizes, 2)

	closed := false
	st, err = merchant.UpdateStore(ctx, st.Id, client.UpdateStoreRequest{IsOpen: &closed})
	require.NoError(t, err)
	assert.False(t, st.IsOpen)
	assert.Len(t, st.Products, 1)

	customer := client.New(srv.URL, nil)
	_, err = customer.Register(ctx, client.RegisterRequest{Name: "Kiran", Email: "kiran@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = customer.UpdateStore(ctx, st.Id, client.UpdateStoreRequest{IsOpen: &closed})
	assert.ErrorIs(t, err, client.ErrForbidden)
}
