package commands_test

import (
	"context"
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/content"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/model/settlement"
	"hyperlocal/internal/core/domain/model/user"
	"hyperlocal/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *catalog.Store) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, s *catalog.Store) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStoreRepository) IncrementOrders(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*catalog.Store)
	return s, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]*catalog.Product)
	return p, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) NumberExists(ctx context.Context, n order.Number) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

type MockSettlementRepository struct{ mock.Mock }

func (m *MockSettlementRepository) Add(ctx context.Context, s *settlement.Settlement) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettlementRepository) Update(ctx context.Context, s *settlement.Settlement) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettlementRepository) Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*settlement.Settlement)
	return s, args.Error(1)
}

type MockContentRepository struct{ mock.Mock }

func (m *MockContentRepository) AddBanner(ctx context.Context, b *content.Banner) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockContentRepository) UpsertCMS(ctx context.Context, e *content.CMSEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockContentRepository) AddPromotion(ctx context.Context, p *content.Promotion) error {
	return m.Called(ctx, p).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

// MockUoW satisfies every unit-of-work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	return m.Called().Get(0).(ports.StoreRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SettlementRepository() ports.SettlementRepository {
	return m.Called().Get(0).(ports.SettlementRepository)
}

func (m *MockUoW) ContentRepository() ports.ContentRepository {
	return m.Called().Get(0).(ports.ContentRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

// MockFactory hands out a prepared MockUoW as whichever unit-of-work type T the handler needs.
type MockFactory[T any] struct{ mock.Mock }

func (m *MockFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

func newFactory[T any](uow *MockUoW) *MockFactory[T] {
	f := new(MockFactory[T])
	f.On("Create").Return(uow).Once()
	return f
}

// expectTx registers Begin and a trailing Rollback; pass commit to also expect Commit.
func expectTx(uow *MockUoW, ctx context.Context, commit bool) {
	uow.On("Begin", ctx).Return(nil).Once()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Maybe()
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	return m.Called(ctx, msgs).Error(0)
}

type MockSearchIndex struct{ mock.Mock }

func (m *MockSearchIndex) Index(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSearchIndex) Search(ctx context.Context, q string, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, q, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}
