package queries

import (
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed          = errors.New("ListOrdersQuery must be created via NewListOrdersQuery")
	ErrListAvailableOrdersQueryIsNotConstructed = errors.New("ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery")
	ErrGetOrderQueryIsNotConstructed            = errors.New("GetOrderQuery must be created via NewGetOrderQuery")
	ErrGetOrderHistoryQueryIsNotConstructed     = errors.New("GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery")
)

// OrderView is an order as seen by one actor. OTP is empty unless the actor is the customer
// who placed it; Actions lists the statuses the actor may request next.
type OrderView struct {
	ID           kernel.UUID
	Number       string
	CustomerID   kernel.UUID
	CustomerName string
	StoreID      kernel.UUID
	StoreName    string
	MerchantID   kernel.UUID
	AgentID      *kernel.UUID
	AgentName    string
	Items        []order.Item
	Charges      order.Charges
	OTP          string
	Destination  order.Destination
	Promotions   order.Promotions
	Status       order.Status
	Actions      []order.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HistoryEntry is one audited status change.
type HistoryEntry struct {
	From      string
	To        string
	ActorID   kernel.UUID
	ActorName string
	ActorRole string
	ChangedAt time.Time
}

// ListOrdersQuery lists the orders visible under the actor's active role, newest first.
type ListOrdersQuery struct {
	actor  order.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor order.Actor, status *order.Status) (ListOrdersQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListAvailableOrdersQuery lists orders waiting for an agent.
type ListAvailableOrdersQuery struct {
	actor order.Actor

	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery(actor order.Actor) (ListAvailableOrdersQuery, error) {
	if err := actor.ID.Validate(); err != nil {
		return ListAvailableOrdersQuery{}, err
	}
	return ListAvailableOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

type GetOrderQuery struct {
	actor   order.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor order.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actor.ID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type GetOrderHistoryQuery struct {
	actor   order.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(actor order.Actor, orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(actor.ID.Validate(), orderID.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}
