package settlementrepo_test

import (
	"testing"
	"time"

	"hyperlocal/internal/adapters/out/postgres/settlementrepo"
	"hyperlocal/internal/adapters/out/postgres/testdb"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/settlement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementRepository_SettlesOnce(t *testing.T) {
	db := testdb.NewSQLite(t)
	repo := settlementrepo.NewGormSettlementRepository(db, testdb.NewTracker())
	ctx := t.Context()

	amount, err := kernel.ParseMoney("1250.50")
	require.NoError(t, err)
	s, err := settlement.NewSettlement(kernel.NewUUID(), kernel.NewUUID(), "Ravi", kernel.RoleAgent, amount, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, s))

	first, err := repo.Get(ctx, s.ID())
	require.NoError(t, err)
	second, err := repo.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, settlement.Pending, first.Status())
	assert.True(t, amount.IsEqual(first.Amount()))

	adminA, adminB := kernel.NewUUID(), kernel.NewUUID()
	require.NoError(t, first.Settle(adminA, kernel.RoleAdmin, time.Now()))
	require.NoError(t, second.Settle(adminB, kernel.RoleAdmin, time.Now()))

	require.NoError(t, repo.Update(ctx, first))
	assert.ErrorIs(t, repo.Update(ctx, second), settlement.ErrAlreadySettled)

	got, err := repo.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, settlement.Settled, got.Status())
	require.NotNil(t, got.SettledAt())
	require.NotNil(t, got.SettledBy())
	assert.Equal(t, adminA, *got.SettledBy())
}
