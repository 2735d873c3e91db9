package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"hyperlocal/internal/core/domain/model/dashboard"
	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	agentErr error
}

func (fakeSource) CustomerStats(context.Context, kernel.UUID) (dashboard.CustomerStats, error) {
	return dashboard.CustomerStats{TotalOrders: 3}, nil
}

func (fakeSource) MerchantStats(context.Context, kernel.UUID) (dashboard.MerchantStats, error) {
	return dashboard.MerchantStats{TotalOrders: 7, PendingOrders: 2}, nil
}

func (f fakeSource) AgentStats(context.Context, kernel.UUID) (dashboard.AgentStats, error) {
	return dashboard.AgentStats{
		TotalDeliveries: 4,
		TotalEarnings:   kernel.MoneyFromInt(120),
		Settled:         kernel.MoneyFromInt(50),
	}, f.agentErr
}

func (fakeSource) AdminStats(context.Context) (dashboard.AdminStats, error) {
	return dashboard.AdminStats{TotalOrders: 11}, nil
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	userID := kernel.NewUUID()

	t.Run("each role gets its own variant", func(t *testing.T) {
		for _, role := range kernel.AllRoles() {
			s, err := dashboard.Resolve(ctx, role, userID, fakeSource{})
			require.NoError(t, err)
			assert.Equal(t, role, s.Role())
		}
	})

	t.Run("switching role switches the variant", func(t *testing.T) {
		s, err := dashboard.Resolve(ctx, kernel.RoleCustomer, userID, fakeSource{})
		require.NoError(t, err)
		assert.IsType(t, dashboard.CustomerStats{}, s)

		s, err = dashboard.Resolve(ctx, kernel.RoleMerchant, userID, fakeSource{})
		require.NoError(t, err)
		m, ok := s.(dashboard.MerchantStats)
		require.True(t, ok)
		assert.Equal(t, 7, m.TotalOrders)
	})

	t.Run("agent pending settlement is earnings minus settled", func(t *testing.T) {
		s, err := dashboard.Resolve(ctx, kernel.RoleAgent, userID, fakeSource{})
		require.NoError(t, err)
		a := s.(dashboard.AgentStats)
		assert.True(t, a.PendingSettlement.IsEqual(kernel.MoneyFromInt(70)))
	})

	t.Run("source errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := dashboard.Resolve(ctx, kernel.RoleAgent, userID, fakeSource{agentErr: boom})
		require.ErrorIs(t, err, boom)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := dashboard.Resolve(ctx, kernel.Role("pilot"), userID, fakeSource{})
		require.Error(t, err)
	})
}
