package queries

import (
	"context"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler scopes orders by the actor's active role: a customer sees their own
// orders, a merchant the orders of their stores, an agent the orders assigned to them and an
// admin everything.
type ListOrdersQueryHandler struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func NewListOrdersQueryHandler(db *gorm.DB, uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, uowFactory: uowFactory}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("orders")
	actorID := query.actor.ID.Bytes()
	switch query.actor.Role {
	case kernel.RoleCustomer:
		stmt = stmt.Where("customer_id = ?", actorID)
	case kernel.RoleMerchant:
		stmt = stmt.Where("merchant_id = ?", actorID)
	case kernel.RoleAgent:
		stmt = stmt.Where("agent_id = ?", actorID)
	case kernel.RoleAdmin:
	default:
		return []OrderView{}, nil
	}
	if query.status != nil {
		stmt = stmt.Where("status = ?", query.status.String())
	}

	var ids []uuid.UUID
	if err := stmt.Order("created_at DESC").Limit(defaultListLimit).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return loadOrderViews(ctx, h.db, h.uowFactory, query.actor, ids)
}

// ListAvailableOrdersQueryHandler lists unassigned orders that are ready for pickup. Only an
// agent may ask.
type ListAvailableOrdersQueryHandler struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func NewListAvailableOrdersQueryHandler(db *gorm.DB, uowFactory ports.UnitOfWorkFactory) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{db: db, uowFactory: uowFactory}
}

func (h ListAvailableOrdersQueryHandler) Handle(ctx context.Context, query ListAvailableOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.actor.Role != kernel.RoleAgent {
		return nil, errs.NewForbiddenError("list available orders")
	}

	var ids []uuid.UUID
	err := h.db.WithContext(ctx).Table("orders").
		Where("status = ? AND agent_id IS NULL", order.ReadyForPickup.String()).
		Order("created_at DESC").
		Limit(defaultListLimit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return loadOrderViews(ctx, h.db, h.uowFactory, query.actor, ids)
}

type GetOrderQueryHandler struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(db *gorm.DB, uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.orderID)
	if err != nil {
		return OrderView{}, err
	}
	if !o.CanView(query.actor) {
		return OrderView{}, errs.NewForbiddenError("view order")
	}

	views, err := orderViews(ctx, h.db, query.actor, []*order.Order{o})
	if err != nil {
		return OrderView{}, err
	}
	return views[0], nil
}

type GetOrderHistoryQueryHandler struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB, uowFactory ports.UnitOfWorkFactory) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db, uowFactory: uowFactory}
}

type historyRow struct {
	FromStatus string
	ToStatus   string
	ActorID    uuid.UUID
	ActorRole  string
	ChangedAt  time.Time
}

// Handle returns the audit trail oldest first.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.orderID)
	if err != nil {
		return nil, err
	}
	if !o.CanView(query.actor) {
		return nil, errs.NewForbiddenError("view order history")
	}

	var rows []historyRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT from_status, to_status, actor_id, actor_role, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	actorIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		actorIDs = append(actorIDs, r.ActorID)
	}
	names, err := lookupNames(ctx, h.db, usersTable, actorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		actorID, err := kernel.UUIDFromBytes(r.ActorID[:])
		if err != nil {
			return nil, err
		}
		out = append(out, HistoryEntry{
			From:      r.FromStatus,
			To:        r.ToStatus,
			ActorID:   actorID,
			ActorName: names[r.ActorID],
			ActorRole: r.ActorRole,
			ChangedAt: r.ChangedAt,
		})
	}
	return out, nil
}

func loadOrderViews(
	ctx context.Context,
	db *gorm.DB,
	uowFactory ports.UnitOfWorkFactory,
	actor order.Actor,
	raw []uuid.UUID,
) ([]OrderView, error) {
	if len(raw) == 0 {
		return []OrderView{}, nil
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	orders, err := uowFactory.Create().OrderRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderViews(ctx, db, actor, orders)
}

// orderViews keeps the order of orders and resolves store and user names in two reads.
func orderViews(ctx context.Context, db *gorm.DB, actor order.Actor, orders []*order.Order) ([]OrderView, error) {
	var storeIDs, userIDs []uuid.UUID
	for _, o := range orders {
		storeIDs = append(storeIDs, o.StoreID().Bytes())
		userIDs = append(userIDs, o.CustomerID().Bytes())
		if a := o.AgentID(); a != nil {
			userIDs = append(userIDs, a.Bytes())
		}
	}

	storeNames, err := lookupNames(ctx, db, storesTable, storeIDs)
	if err != nil {
		return nil, err
	}
	userNames, err := lookupNames(ctx, db, usersTable, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := OrderView{
			ID:           o.ID(),
			Number:       o.Number().String(),
			CustomerID:   o.CustomerID(),
			CustomerName: userNames[o.CustomerID().Bytes()],
			StoreID:      o.StoreID(),
			StoreName:    storeNames[o.StoreID().Bytes()],
			MerchantID:   o.MerchantID(),
			AgentID:      o.AgentID(),
			Items:        o.Items(),
			Charges:      o.Charges(),
			Destination:  o.Destination(),
			Promotions:   o.Promotions(),
			Status:       o.Status(),
			Actions:      o.ValidTransitions(actor),
			CreatedAt:    o.CreatedAt(),
			UpdatedAt:    o.UpdatedAt(),
		}
		if v.Actions == nil {
			v.Actions = []order.Status{}
		}
		if a := o.AgentID(); a != nil {
			v.AgentName = userNames[a.Bytes()]
		}
		if o.CanSeeOTP(actor) {
			v.OTP = o.OTP().String()
		}
		out = append(out, v)
	}
	return out, nil
}
