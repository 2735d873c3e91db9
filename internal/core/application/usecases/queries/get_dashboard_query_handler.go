package queries

import (
	"context"

	"hyperlocal/internal/core/domain/model/dashboard"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/domain/model/settlement"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (dashboard.Stats, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return dashboard.Resolve(ctx, query.role, query.userID, sqlSource{db: h.db})
}

// sqlSource aggregates dashboard figures straight from the order, user and settlement tables.
// Money sums only count delivered orders.
type sqlSource struct {
	db *gorm.DB
}

var _ dashboard.Source = sqlSource{}

var (
	delivered = order.Delivered.String()
	cancelled = order.Cancelled.String()
)

func (s sqlSource) CustomerStats(ctx context.Context, userID kernel.UUID) (dashboard.CustomerStats, error) {
	var row struct {
		TotalOrders  int
		ActiveOrders int
		TotalSpent   decimal.Decimal
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN status NOT IN (?, ?) THEN 1 ELSE 0 END), 0) AS active_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0) AS total_spent
		FROM orders
		WHERE customer_id = ?
	`, delivered, cancelled, delivered, userID.Bytes()).Scan(&row).Error
	if err != nil {
		return dashboard.CustomerStats{}, err
	}

	spent, err := kernel.NewMoney(row.TotalSpent)
	if err != nil {
		return dashboard.CustomerStats{}, err
	}
	return dashboard.CustomerStats{
		TotalOrders:  row.TotalOrders,
		ActiveOrders: row.ActiveOrders,
		TotalSpent:   spent,
	}, nil
}

func (s sqlSource) MerchantStats(ctx context.Context, userID kernel.UUID) (dashboard.MerchantStats, error) {
	var row struct {
		TotalOrders   int
		Delivered     int
		Cancelled     int
		PendingOrders int
		TotalRevenue  decimal.Decimal
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS delivered,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled,
			COALESCE(SUM(CASE WHEN status IN (?, ?, ?) THEN 1 ELSE 0 END), 0) AS pending_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN subtotal ELSE 0 END), 0) AS total_revenue
		FROM orders
		WHERE merchant_id = ?
	`,
		delivered, cancelled,
		order.Placed.String(), order.Accepted.String(), order.Preparing.String(),
		delivered, userID.Bytes(),
	).Scan(&row).Error
	if err != nil {
		return dashboard.MerchantStats{}, err
	}

	revenue, err := kernel.NewMoney(row.TotalRevenue)
	if err != nil {
		return dashboard.MerchantStats{}, err
	}
	return dashboard.MerchantStats{
		TotalOrders:   row.TotalOrders,
		Delivered:     row.Delivered,
		Cancelled:     row.Cancelled,
		PendingOrders: row.PendingOrders,
		TotalRevenue:  revenue,
	}, nil
}

func (s sqlSource) AgentStats(ctx context.Context, userID kernel.UUID) (dashboard.AgentStats, error) {
	var row struct {
		TotalDeliveries int
		ActiveOrders    int
		TotalEarnings   decimal.Decimal
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS total_deliveries,
			COALESCE(SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END), 0) AS active_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN delivery_fee ELSE 0 END), 0) AS total_earnings
		FROM orders
		WHERE agent_id = ?
	`, delivered, order.Assigned.String(), order.PickedUp.String(), delivered, userID.Bytes()).Scan(&row).Error
	if err != nil {
		return dashboard.AgentStats{}, err
	}

	var payouts struct {
		Settled decimal.Decimal
	}
	err = s.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) AS settled
		FROM settlements
		WHERE user_id = ? AND status = ?
	`, userID.Bytes(), settlement.Settled.String()).Scan(&payouts).Error
	if err != nil {
		return dashboard.AgentStats{}, err
	}

	earnings, err := kernel.NewMoney(row.TotalEarnings)
	if err != nil {
		return dashboard.AgentStats{}, err
	}
	paid, err := kernel.NewMoney(payouts.Settled)
	if err != nil {
		return dashboard.AgentStats{}, err
	}
	return dashboard.AgentStats{
		TotalDeliveries: row.TotalDeliveries,
		ActiveOrders:    row.ActiveOrders,
		TotalEarnings:   earnings,
		Settled:         paid,
	}, nil
}

func (s sqlSource) AdminStats(ctx context.Context) (dashboard.AdminStats, error) {
	var orders struct {
		TotalOrders   int
		Delivered     int
		Cancelled     int
		TotalEarnings decimal.Decimal
		PlatformFees  decimal.Decimal
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS delivered,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled,
			COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0) AS total_earnings,
			COALESCE(SUM(CASE WHEN status = ? THEN platform_fee ELSE 0 END), 0) AS platform_fees
		FROM orders
	`, delivered, cancelled, delivered, delivered).Scan(&orders).Error
	if err != nil {
		return dashboard.AdminStats{}, err
	}

	var users struct {
		TotalMerchants int
		TotalAgents    int
		TotalCustomers int
	}
	err = s.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN roles LIKE ? THEN 1 ELSE 0 END), 0) AS total_merchants,
			COALESCE(SUM(CASE WHEN roles LIKE ? THEN 1 ELSE 0 END), 0) AS total_agents,
			COALESCE(SUM(CASE WHEN roles LIKE ? THEN 1 ELSE 0 END), 0) AS total_customers
		FROM users
	`, rolePattern(kernel.RoleMerchant), rolePattern(kernel.RoleAgent), rolePattern(kernel.RoleCustomer)).Scan(&users).Error
	if err != nil {
		return dashboard.AdminStats{}, err
	}

	earnings, err := kernel.NewMoney(orders.TotalEarnings)
	if err != nil {
		return dashboard.AdminStats{}, err
	}
	fees, err := kernel.NewMoney(orders.PlatformFees)
	if err != nil {
		return dashboard.AdminStats{}, err
	}
	return dashboard.AdminStats{
		TotalOrders:    orders.TotalOrders,
		Delivered:      orders.Delivered,
		Cancelled:      orders.Cancelled,
		TotalEarnings:  earnings,
		PlatformFees:   fees,
		TotalMerchants: users.TotalMerchants,
		TotalAgents:    users.TotalAgents,
		TotalCustomers: users.TotalCustomers,
	}, nil
}

func rolePattern(r kernel.Role) string {
	return "%" + r.String() + "%"
}
