// Package dashboard maps a user's active role to the statistics variant shown for that role.
//
// Stats is a closed set of four variants. Resolve is the only place that dispatches on the role,
// so adding a role means adding a variant and a case here.
package dashboard

import (
	"context"
	"fmt"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
)

// Stats is implemented only by the variants in this package.
type Stats interface {
	Role() kernel.Role
	isStats()
}

type CustomerStats struct {
	TotalOrders  int
	ActiveOrders int
	TotalSpent   kernel.Money
}

type MerchantStats struct {
	TotalOrders   int
	Delivered     int
	Cancelled     int
	PendingOrders int
	TotalRevenue  kernel.Money
}

// AgentStats.PendingSettlement is earnings not yet covered by settled payouts.
type AgentStats struct {
	TotalDeliveries   int
	ActiveOrders      int
	TotalEarnings     kernel.Money
	Settled           kernel.Money
	PendingSettlement kernel.Money
}

type AdminStats struct {
	TotalOrders    int
	Delivered      int
	Cancelled      int
	TotalEarnings  kernel.Money
	PlatformFees   kernel.Money
	TotalMerchants int
	TotalAgents    int
	TotalCustomers int
}

func (CustomerStats) Role() kernel.Role { return kernel.RoleCustomer }
func (MerchantStats) Role() kernel.Role { return kernel.RoleMerchant }
func (AgentStats) Role() kernel.Role { return kernel.RoleAgent }
func (AdminStats) Role() kernel.Role { return kernel.RoleAdmin }

func (CustomerStats) isStats() {}
func (MerchantStats) isStats() {}
func (AgentStats) isStats() {}
func (AdminStats) isStats() {}

// Source loads the raw aggregates for each variant.
type Source interface {
	CustomerStats(ctx context.Context, userID kernel.UUID) (CustomerStats, error)
	MerchantStats(ctx context.Context, userID kernel.UUID) (MerchantStats, error)
	AgentStats(ctx context.Context, userID kernel.UUID) (AgentStats, error)
	AdminStats(ctx context.Context) (AdminStats, error)
}

// Resolve returns the variant for role.
func Resolve(ctx context.Context, role kernel.Role, userID kernel.UUID, src Source) (Stats, error) {
	switch role {
	case kernel.RoleCustomer:
		return src.CustomerStats(ctx, userID)
	case kernel.RoleMerchant:
		return src.MerchantStats(ctx, userID)
	case kernel.RoleAgent:
		s, err := src.AgentStats(ctx, userID)
		if err != nil {
			return nil, err
		}
		s.PendingSettlement = s.TotalEarnings.Sub(s.Settled)
		return s, nil
	case kernel.RoleAdmin:
		return src.AdminStats(ctx)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("no dashboard for role %q", role))
	}
}
