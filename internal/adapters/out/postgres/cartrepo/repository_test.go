package cartrepo_test

import (
	"testing"
	"time"

	"hyperlocal/internal/adapters/out/postgres/cartrepo"
	"hyperlocal/internal/adapters/out/postgres/testdb"
	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	db := testdb.NewSQLite(t)
	seed := testdb.NewSeeder(t, db)
	repo := cartrepo.NewGormCartRepository(db, testdb.NewTracker())
	ctx := t.Context()

	customer := seed.User("Asha", kernel.RoleCustomer)
	st := seed.Store(kernel.NewUUID(), "Dosa Corner")
	dosa := seed.Product(st, "Dosa", 100)
	variant := dosa.Variants()[0]
	large := variant.Sizes()[1].ID()

	_, err := repo.Get(ctx, customer.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	now := time.Now()
	c, err := cart.NewCart(customer.ID(), now)
	require.NoError(t, err)
	_, err = c.AddItem(dosa.ID(), st.ID(), variant.ID(), nil, 2, now)
	require.NoError(t, err)
	_, err = c.AddItem(dosa.ID(), st.ID(), variant.ID(), &large, 1, now)
	require.NoError(t, err)
	require.NoError(t, c.SetDistance(4.5, now))
	require.NoError(t, repo.Save(ctx, c))

	got, err := repo.Get(ctx, customer.ID())
	require.NoError(t, err)
	require.NotNil(t, got.StoreID())
	assert.Equal(t, st.ID(), *got.StoreID())
	assert.InDelta(t, 4.5, got.DistanceKm(), 1e-9)
	lines := got.Lines()
	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].SizeID())
	assert.Equal(t, 2, lines[0].Quantity())
	require.NotNil(t, lines[1].SizeID())
	assert.Equal(t, large, *lines[1].SizeID())

	// Saving again replaces the lines instead of appending.
	require.NoError(t, got.UpdateQuantity(lines[0].ID(), 0, now))
	require.NoError(t, repo.Save(ctx, got))

	got, err = repo.Get(ctx, customer.ID())
	require.NoError(t, err)
	require.Len(t, got.Lines(), 1)
	assert.Equal(t, large, *got.Lines()[0].SizeID())

	got.Clear(now)
	require.NoError(t, repo.Save(ctx, got))
	got, err = repo.Get(ctx, customer.ID())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Nil(t, got.StoreID())
}

func TestCartRepository_DeleteStale(t *testing.T) {
	db := testdb.NewSQLite(t)
	repo := cartrepo.NewGormCartRepository(db, testdb.NewTracker())
	ctx := t.Context()

	now := time.Now()
	old, err := cart.NewCart(kernel.NewUUID(), now.Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = old.AddItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, 1, now.Add(-48*time.Hour))
	require.NoError(t, err)
	fresh, err := cart.NewCart(kernel.NewUUID(), now)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, old))
	require.NoError(t, repo.Save(ctx, fresh))

	removed, err := repo.DeleteStale(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, err = repo.Get(ctx, old.UserID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = repo.Get(ctx, fresh.UserID())
	assert.NoError(t, err)

	var lines int64
	require.NoError(t, db.Model(&cartrepo.LineDTO{}).Count(&lines).Error)
	assert.Zero(t, lines)
}
