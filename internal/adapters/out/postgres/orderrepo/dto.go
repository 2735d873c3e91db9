// Package orderrepo persists orders, their item snapshots and their audited status history.
package orderrepo

import (
	"encoding/json"
	"time"

	"hyperlocal/internal/adapters/out/postgres/outboxrepo"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/order"
	"hyperlocal/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version is bumped on every update and guards concurrent writers.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number              string          `gorm:"column:order_number;type:varchar(16);not null;uniqueIndex"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	AgentID             *uuid.UUID      `gorm:"type:uuid;index"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BaseDeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlatformFee         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OTP                 string          `gorm:"column:otp;type:varchar(4);not null"`
	Address             string          `gorm:"type:varchar(512);not null"`
	Lat                 float64         `gorm:"not null"`
	Lng                 float64         `gorm:"not null"`
	DistanceKm          float64         `gorm:"not null"`
	RouteKm             float64         `gorm:"not null;default:0"`
	GiftEligible        bool            `gorm:"not null;default:false"`
	FreeDeliveryApplied bool            `gorm:"not null;default:false"`
	Status              string          `gorm:"type:varchar(32);not null;index"`
	Version             int             `gorm:"not null;default:0"`
	CreatedAt           time.Time       `gorm:"not null;index"`
	UpdatedAt           time.Time       `gorm:"not null"`
	Items               []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	VariantID   uuid.UUID       `gorm:"type:uuid;not null"`
	SizeID      *uuid.UUID      `gorm:"type:uuid"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	VariantName string          `gorm:"type:varchar(255);not null"`
	SizeName    string          `gorm:"type:varchar(64)"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	ItemTotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO is one audited transition. FromStatus is empty for the initial placement.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(32)"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(16);not null"`
	ChangedAt  time.Time `gorm:"not null;index"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// StatusEvent is the outbox payload published for every status change.
type StatusEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	StoreID     string    `json:"store_id"`
	CustomerID  string    `json:"customer_id"`
	AgentID     string    `json:"agent_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventType names the outbox event for a transition into to.
func EventType(to order.Status) string {
	return "order." + to.String()
}

func fromDomain(o *order.Order) OrderDTO {
	c := o.Charges()
	d := o.Destination()
	p := o.Promotions()
	dto := OrderDTO{
		ID:                  o.ID().Bytes(),
		Number:              o.Number().String(),
		CustomerID:          o.CustomerID().Bytes(),
		StoreID:             o.StoreID().Bytes(),
		MerchantID:          o.MerchantID().Bytes(),
		AgentID:             rawID(o.AgentID()),
		Subtotal:            c.Subtotal.Decimal(),
		BaseDeliveryFee:     c.BaseDeliveryFee.Decimal(),
		DeliveryFee:         c.DeliveryFee.Decimal(),
		PlatformFee:         c.PlatformFee.Decimal(),
		Total:               c.Total.Decimal(),
		OTP:                 o.OTP().String(),
		Address:             d.Address,
		Lat:                 d.Location.Lat(),
		Lng:                 d.Location.Lng(),
		DistanceKm:          d.DistanceKm,
		RouteKm:             d.RouteKm,
		GiftEligible:        p.GiftEligible,
		FreeDeliveryApplied: p.FreeDeliveryApplied,
		Status:              o.Status().String(),
		Version:             o.Version(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
	for i, it := range o.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:          uuid.New(),
			OrderID:     dto.ID,
			Position:    i,
			ProductID:   it.ProductID.Bytes(),
			VariantID:   it.VariantID.Bytes(),
			SizeID:      rawID(it.SizeID),
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			SizeName:    it.SizeName,
			UnitPrice:   it.UnitPrice.Decimal(),
			Quantity:    it.Quantity,
			ItemTotal:   it.ItemTotal.Decimal(),
		})
	}
	return dto
}

// ToDomain rebuilds an order; Items must be loaded in position order.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	var ids [3]kernel.UUID
	for i, raw := range []uuid.UUID{dto.ID, dto.CustomerID, dto.StoreID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := domainID(dto.AgentID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		item, err := itemToDomain(it)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	charges, err := chargesToDomain(dto)
	if err != nil {
		return nil, err
	}
	otp, err := order.OTPFromString(dto.OTP)
	if err != nil {
		return nil, err
	}
	loc, err := kernel.NewLocation(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		ids[0],
		order.Number(dto.Number),
		ids[1], ids[2], merchantID,
		agentID,
		items,
		charges,
		otp,
		order.Destination{Address: dto.Address, Location: loc, DistanceKm: dto.DistanceKm, RouteKm: dto.RouteKm},
		order.Promotions{GiftEligible: dto.GiftEligible, FreeDeliveryApplied: dto.FreeDeliveryApplied},
		status,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(it ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(it.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	variantID, err := kernel.UUIDFromBytes(it.VariantID[:])
	if err != nil {
		return order.Item{}, err
	}
	sizeID, err := domainID(it.SizeID)
	if err != nil {
		return order.Item{}, err
	}
	unit, err := kernel.NewMoney(it.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	total, err := kernel.NewMoney(it.ItemTotal)
	if err != nil {
		return order.Item{}, err
	}
	return order.Item{
		ProductID:   productID,
		VariantID:   variantID,
		SizeID:      sizeID,
		ProductName: it.ProductName,
		VariantName: it.VariantName,
		SizeName:    it.SizeName,
		UnitPrice:   unit,
		Quantity:    it.Quantity,
		ItemTotal:   total,
	}, nil
}

func chargesToDomain(dto OrderDTO) (order.Charges, error) {
	var amounts [5]kernel.Money
	for i, d := range []decimal.Decimal{dto.Subtotal, dto.BaseDeliveryFee, dto.DeliveryFee, dto.PlatformFee, dto.Total} {
		m, err := kernel.NewMoney(d)
		if err != nil {
			return order.Charges{}, err
		}
		amounts[i] = m
	}
	return order.Charges{
		Subtotal:        amounts[0],
		BaseDeliveryFee: amounts[1],
		DeliveryFee:     amounts[2],
		PlatformFee:     amounts[3],
		Total:           amounts[4],
	}, nil
}

// changeRows maps pending status changes to their history rows and outbox rows.
func changeRows(o *order.Order) ([]StatusHistoryDTO, []outboxrepo.OutboxDTO, error) {
	changes := o.PendingChanges()
	history := make([]StatusHistoryDTO, 0, len(changes))
	outbox := make([]outboxrepo.OutboxDTO, 0, len(changes))

	for _, ch := range changes {
		from := ""
		if ch.From != order.Unknown {
			from = ch.From.String()
		}
		history = append(history, StatusHistoryDTO{
			ID:         ch.ID.Bytes(),
			OrderID:    ch.OrderID.Bytes(),
			FromStatus: from,
			ToStatus:   ch.To.String(),
			ActorID:    ch.ActorID.Bytes(),
			ActorRole:  ch.ActorRole.String(),
			ChangedAt:  ch.At,
		})

		event := StatusEvent{
			OrderID:     o.ID().String(),
			OrderNumber: o.Number().String(),
			From:        from,
			To:          ch.To.String(),
			ActorID:     ch.ActorID.String(),
			ActorRole:   ch.ActorRole.String(),
			StoreID:     o.StoreID().String(),
			CustomerID:  o.CustomerID().String(),
			OccurredAt:  ch.At,
		}
		if a := o.AgentID(); a != nil {
			event.AgentID = a.String()
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, nil, err
		}
		outbox = append(outbox, outboxrepo.FromMessage(ports.OutboxMessage{
			ID:          ch.ID,
			EventType:   EventType(ch.To),
			AggregateID: o.ID(),
			Payload:     payload,
			OccurredAt:  ch.At,
		}))
	}
	return history, outbox, nil
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
