package orderrepo_test

import (
	"encoding/json"
	"testing"
	"time"

	"hyperlocal/internal/adapters/out/postgres/orderrepo"
	"hyperlocal/internal/adapters/out/postgres/outboxrepo"
	"hyperlocal/internal/adapters/out/postgres/testdb"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type fixture struct {
	db       *gorm.DB
	seed     *testdb.Seeder
	repo     *orderrepo.GormOrderRepository
	tracker  *MockAggregateTracker
	customer order.Actor
	merchant order.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewSQLite(t)
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	seed := testdb.NewSeeder(t, db)
	return &fixture{
		db:       db,
		seed:     seed,
		repo:     orderrepo.NewGormOrderRepository(db, tracker),
		tracker:  tracker,
		customer: order.NewActor(kernel.NewUUID(), kernel.RoleCustomer, false),
		merchant: order.NewActor(kernel.NewUUID(), kernel.RoleMerchant, false),
	}
}

func TestAdd_PersistsSnapshotHistoryAndOutbox(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	st := f.seed.Store(f.merchant.ID, "Dosa Corner")
	o := testdb.NewOrder(t, f.customer.ID, st, "ORD-54321")

	require.NoError(t, f.repo.Add(ctx, o))
	assert.Empty(t, o.PendingChanges())

	got, err := f.repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Number("ORD-54321"), got.Number())
	assert.Equal(t, order.Placed, got.Status())
	assert.Equal(t, "4821", got.OTP().String())
	require.Len(t, got.Items(), 1)
	assert.Equal(t, "Masala Dosa", got.Items()[0].ProductName)
	assert.True(t, kernel.MoneyFromInt(220).IsEqual(got.Charges().Total))
	assert.True(t, kernel.MoneyFromInt(10).IsEqual(got.Charges().PlatformFee))
	assert.Equal(t, 0, got.Version())

	var history []orderrepo.StatusHistoryDTO
	require.NoError(t, f.db.Find(&history, "order_id = ?", o.ID().Bytes()).Error)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].FromStatus)
	assert.Equal(t, "placed", history[0].ToStatus)
	assert.Equal(t, "customer", history[0].ActorRole)

	var outbox []outboxrepo.OutboxDTO
	require.NoError(t, f.db.Find(&outbox).Error)
	require.Len(t, outbox, 1)
	assert.Equal(t, "order.placed", outbox[0].EventType)
	assert.Nil(t, outbox[0].PublishedAt)

	var event orderrepo.StatusEvent
	require.NoError(t, json.Unmarshal(outbox[0].Payload, &event))
	assert.Equal(t, "ORD-54321", event.OrderNumber)
	assert.Equal(t, st.ID().String(), event.StoreID)
}

func TestAdd_DuplicateNumber(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	st := f.seed.Store(f.merchant.ID, "Dosa Corner")

	require.NoError(t, f.repo.Add(ctx, testdb.NewOrder(t, f.customer.ID, st, "ORD-11111")))
	err := f.repo.Add(ctx, testdb.NewOrder(t, f.customer.ID, st, "ORD-11111"))
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	exists, err := f.repo.NumberExists(ctx, "ORD-11111")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.repo.NumberExists(ctx, "ORD-22222")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdate_BumpsVersionAndRecordsTransition(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	st := f.seed.Store(f.merchant.ID, "Dosa Corner")
	o := f.seed.Order(f.customer.ID, st)

	loaded, err := f.repo.Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Accept(order.NewActor(st.MerchantID(), kernel.RoleMerchant, false), time.Now()))
	require.NoError(t, f.repo.Update(ctx, loaded))

	got, err := f.repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, got.Status())
	assert.Equal(t, 1, got.Version())

	var count int64
	require.NoError(t, f.db.Model(&orderrepo.StatusHistoryDTO{}).Where("order_id = ?", o.ID().Bytes()).Count(&count).Error)
	assert.EqualValues(t, 2, count)
	require.NoError(t, f.db.Model(&outboxrepo.OutboxDTO{}).Where("event_type = ?", "order.accepted").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdate_StaleVersionLosesAndWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	st := f.seed.Store(f.merchant.ID, "Dosa Corner")
	o := f.seed.Order(f.customer.ID, st)
	owner := order.NewActor(st.MerchantID(), kernel.RoleMerchant, false)

	// Walk the order to ready_for_pickup.
	for _, to := range []order.Status{order.Accepted, order.Preparing, order.ReadyForPickup} {
		loaded, err := f.repo.Get(ctx, o.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Transition(owner, to, time.Now()))
		require.NoError(t, f.repo.Update(ctx, loaded))
	}

	first, err := f.repo.Get(ctx, o.ID())
	require.NoError(t, err)
	second, err := f.repo.Get(ctx, o.ID())
	require.NoError(t, err)

	agentA := order.NewActor(kernel.NewUUID(), kernel.RoleAgent, true)
	agentB := order.NewActor(kernel.NewUUID(), kernel.RoleAgent, true)
	require.NoError(t, first.Claim(agentA, time.Now()))
	require.NoError(t, second.Claim(agentB, time.Now()))

	require.NoError(t, f.repo.Update(ctx, first))
	err = f.repo.Update(ctx, second)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	got, err := f.repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Assigned, got.Status())
	require.NotNil(t, got.AgentID())
	assert.Equal(t, agentA.ID, *got.AgentID())

	var count int64
	require.NoError(t, f.db.Model(&orderrepo.StatusHistoryDTO{}).Where("to_status = ?", "assigned").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdate_MissingOrder(t *testing.T) {
	f := newFixture(t)
	st := f.seed.Store(f.merchant.ID, "Dosa Corner")
	o := testdb.NewOrder(t, f.customer.ID, st, "ORD-33333")

	err := f.repo.Update(t.Context(), o)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.Get(t.Context(), kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
