package cmd

import (
	"context"
	"sync"
	"testing"

	"hyperlocal/internal/adapters/out/auth"
	"hyperlocal/internal/adapters/out/postgres"
	"hyperlocal/internal/adapters/out/postgres/catalogrepo"
	"hyperlocal/internal/adapters/out/postgres/contentrepo"
	"hyperlocal/internal/adapters/out/postgres/testdb"
	"hyperlocal/internal/adapters/out/postgres/userrepo"
	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/logging"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingIndex struct {
	mu      sync.Mutex
	indexed []string
	fail    bool
}

func (r *recordingIndex) Index(_ context.Context, p *catalog.Product) error {
	if r.fail {
		return errors.New("cluster red")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexed = append(r.indexed, p.Name())
	return nil
}

func (r *recordingIndex) Search(context.Context, string, int) ([]kernel.UUID, error) {
	return nil, nil
}

func newTestSeeder(t *testing.T, db *gorm.DB, index *recordingIndex, password string) *Seeder {
	t.Helper()
	s := NewSeeder(db, postgres.NewGormUnitOfWorkFactory(db), auth.NewBcryptHasher(4), nil, password, logging.Discard())
	if index != nil {
		s.index = index
	}
	return s
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeeder_WritesDemoMarketplace(t *testing.T) {
	db := testdb.NewSQLite(t)
	index := &recordingIndex{}

	seeded, err := newTestSeeder(t, db, index, "").Seed(context.Background())

	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, int64(len(seedUsers)), count(t, db, &userrepo.UserDTO{}))
	assert.Equal(t, int64(len(seedStores)), count(t, db, &catalogrepo.StoreDTO{}))
	assert.Equal(t, int64(len(seedProducts)), count(t, db, &catalogrepo.ProductDTO{}))
	assert.Positive(t, count(t, db, &contentrepo.BannerDTO{}))
	assert.Positive(t, count(t, db, &contentrepo.CMSEntryDTO{}))
	assert.Positive(t, count(t, db, &contentrepo.PromotionDTO{}))
	assert.Len(t, index.indexed, len(seedProducts))
}

func TestSeeder_SecondRunIsNoop(t *testing.T) {
	db := testdb.NewSQLite(t)
	s := newTestSeeder(t, db, nil, "")

	_, err := s.Seed(context.Background())
	require.NoError(t, err)
	seeded, err := s.Seed(context.Background())

	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, int64(len(seedUsers)), count(t, db, &userrepo.UserDTO{}))
}

func TestSeeder_DemoAccountsCanSignIn(t *testing.T) {
	db := testdb.NewSQLite(t)
	ctx := context.Background()
	_, err := newTestSeeder(t, db, nil, "").Seed(ctx)
	require.NoError(t, err)

	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
	hasher := auth.NewBcryptHasher(4)

	agent, err := uow.UserRepository().GetByEmail(ctx, "agent@delivery.com")
	require.NoError(t, err)
	require.NoError(t, hasher.Compare(agent.PasswordHash(), "agent123"))
	assert.True(t, agent.Roles().Has(kernel.RoleAgent))
	assert.True(t, agent.IsOnline())

	admin, err := uow.UserRepository().GetByEmail(ctx, "admin@delivery.com")
	require.NoError(t, err)
	assert.True(t, admin.Roles().Has(kernel.RoleAdmin))
}

func TestSeeder_PasswordOverride(t *testing.T) {
	db := testdb.NewSQLite(t)
	ctx := context.Background()
	_, err := newTestSeeder(t, db, nil, "s3cret-demo").Seed(ctx)
	require.NoError(t, err)

	merchant, err := postgres.NewGormUnitOfWorkFactory(db).Create().UserRepository().GetByEmail(ctx, "merchant@delivery.com")
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher(4)
	require.NoError(t, hasher.Compare(merchant.PasswordHash(), "s3cret-demo"))
	assert.Error(t, hasher.Compare(merchant.PasswordHash(), "merchant123"))
}

func TestSeeder_IndexFailureDoesNotFailSeeding(t *testing.T) {
	db := testdb.NewSQLite(t)

	seeded, err := newTestSeeder(t, db, &recordingIndex{fail: true}, "").Seed(context.Background())

	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Equal(t, int64(len(seedProducts)), count(t, db, &catalogrepo.ProductDTO{}))
}
