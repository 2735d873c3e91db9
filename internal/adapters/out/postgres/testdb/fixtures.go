package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hyperlocal/internal/adapters/out/postgres"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Seeder writes fixtures straight through the repositories, outside any transaction.
type Seeder struct {
	t   testing.TB
	ctx context.Context
	db  *gorm.DB
	seq int
}

func NewSeeder(t testing.TB, db *gorm.DB) *Seeder {
	return &Seeder{t: t, ctx: context.Background(), db: db}
}

func (s *Seeder) uow() *postgres.GormUnitOfWork {
	return postgres.NewGormUnitOfWorkFactory(s.db).Create().(*postgres.GormUnitOfWork)
}

// User stores a user holding roles; the first role is active.
func (s *Seeder) User(name string, roles ...kernel.Role) *user.User {
	s.t.Helper()
	s.seq++
	email := fmt.Sprintf("user%d@example.com", s.seq)
	u, err := user.NewUser(kernel.NewUUID(), name, email, "", "hash", roles, user.Profile{}, time.Now())
	require.NoError(s.t, err)
	require.NoError(s.t, s.uow().UserRepository().Add(s.ctx, u))
	return u
}

func (s *Seeder) Store(merchantID kernel.UUID, name string) *catalog.Store {
	s.t.Helper()
	loc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(s.t, err)
	st, err := catalog.NewStore(kernel.NewUUID(), merchantID, name, "MG Road", loc, "", "", time.Now())
	require.NoError(s.t, err)
	require.NoError(s.t, s.uow().StoreRepository().Add(s.ctx, st))
	return st
}

// Product stores a single-variant product priced at price with a Small (+0) and Large (+30) size.
func (s *Seeder) Product(st *catalog.Store, name string, price int64) *catalog.Product {
	s.t.Helper()
	small, err := catalog.NewSize(kernel.NewUUID(), "Small", kernel.Zero(), true)
	require.NoError(s.t, err)
	large, err := catalog.NewSize(kernel.NewUUID(), "Large", kernel.MoneyFromInt(30), false)
	require.NoError(s.t, err)
	v, err := catalog.NewVariant(kernel.NewUUID(), "Regular", "", kernel.MoneyFromInt(price), 0, kernel.Zero(),
		[]catalog.Size{small, large})
	require.NoError(s.t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), st.ID(), st.MerchantID(), name, name+" description", "", "",
		[]catalog.Variant{v}, time.Now())
	require.NoError(s.t, err)
	require.NoError(s.t, s.uow().ProductRepository().Add(s.ctx, p))
	return p
}

// Order places a 2 x 100 order with a 20 delivery fee and OTP 4821.
func (s *Seeder) Order(customerID kernel.UUID, st *catalog.Store) *order.Order {
	s.t.Helper()
	o := NewOrder(s.t, customerID, st, order.Number(fmt.Sprintf("ORD-%05d", 10000+s.nextSeq())))
	require.NoError(s.t, s.uow().OrderRepository().Add(s.ctx, o))
	return o
}

func (s *Seeder) nextSeq() int {
	s.seq++
	return s.seq
}

// NewOrder builds an unsaved order for st.
func NewOrder(t testing.TB, customerID kernel.UUID, st *catalog.Store, number order.Number) *order.Order {
	t.Helper()
	otp, err := order.OTPFromString("4821")
	require.NoError(t, err)
	loc, err := kernel.NewLocation(12.98, 77.60)
	require.NoError(t, err)

	price := kernel.MoneyFromInt(100)
	items := []order.Item{{
		ProductID:   kernel.NewUUID(),
		VariantID:   kernel.NewUUID(),
		ProductName: "Masala Dosa",
		VariantName: "Regular",
		UnitPrice:   price,
		Quantity:    2,
		ItemTotal:   price.Mul(2),
	}}
	charges := order.Charges{
		Subtotal:        kernel.MoneyFromInt(200),
		BaseDeliveryFee: kernel.MoneyFromInt(20),
		DeliveryFee:     kernel.MoneyFromInt(20),
		PlatformFee:     kernel.MoneyFromInt(10),
		Total:           kernel.MoneyFromInt(220),
	}

	o, err := order.NewOrder(kernel.NewUUID(), number, customerID, st.ID(), st.MerchantID(), items, charges, otp,
		order.Destination{Address: "12 Residency Road", Location: loc, DistanceKm: 2}, order.Promotions{}, time.Now())
	require.NoError(t, err)
	return o
}

// Tracker records aggregates passed to TrackAggregate. Expectations default to Maybe.
type Tracker struct {
	mock.Mock
}

func NewTracker() *Tracker {
	tr := new(Tracker)
	tr.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return tr
}

func (m *Tracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}
