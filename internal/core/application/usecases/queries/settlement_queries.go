package queries

import (
	"context"
	"errors"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/settlement"
	"hyperlocal/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListSettlementsQueryIsNotConstructed = errors.New("ListSettlementsQuery must be created via NewListSettlementsQuery")

type SettlementView struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	UserName  string
	Role      kernel.Role
	Amount    kernel.Money
	Status    settlement.Status
	CreatedAt time.Time
	SettledAt *time.Time
	SettledBy *kernel.UUID
}

// ListSettlementsQuery returns every settlement to an admin and the caller's own otherwise.
type ListSettlementsQuery struct {
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

func NewListSettlementsQuery(userID kernel.UUID, role kernel.Role) (ListSettlementsQuery, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return ListSettlementsQuery{}, err
	}
	return ListSettlementsQuery{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q ListSettlementsQuery) Validate() error {
	return q.guard.Validate(ErrListSettlementsQueryIsNotConstructed)
}

type ListSettlementsQueryHandler struct {
	db *gorm.DB
}

func NewListSettlementsQueryHandler(db *gorm.DB) ListSettlementsQueryHandler {
	return ListSettlementsQueryHandler{db: db}
}

type settlementRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	UserName    string
	Role        string
	Amount      decimal.Decimal
	Status      string
	CreatedAt   time.Time
	SettledAt   *time.Time
	SettledByID *uuid.UUID
}

func (h ListSettlementsQueryHandler) Handle(ctx context.Context, query ListSettlementsQuery) ([]SettlementView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).Table("settlements").
		Select("id, user_id, user_name, role, amount, status, created_at, settled_at, settled_by_id")
	if query.role != kernel.RoleAdmin {
		stmt = stmt.Where("user_id = ?", query.userID.Bytes())
	}

	var rows []settlementRow
	if err := stmt.Order("created_at DESC").Limit(defaultListLimit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]SettlementView, 0, len(rows))
	for _, r := range rows {
		v, err := r.view()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r settlementRow) view() (SettlementView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return SettlementView{}, err
	}
	userID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return SettlementView{}, err
	}
	role, err := kernel.ParseRole(r.Role)
	if err != nil {
		return SettlementView{}, err
	}
	amount, err := kernel.NewMoney(r.Amount)
	if err != nil {
		return SettlementView{}, err
	}
	status, err := settlement.ParseStatus(r.Status)
	if err != nil {
		return SettlementView{}, err
	}

	v := SettlementView{
		ID:        id,
		UserID:    userID,
		UserName:  r.UserName,
		Role:      role,
		Amount:    amount,
		Status:    status,
		CreatedAt: r.CreatedAt,
		SettledAt: r.SettledAt,
	}
	if r.SettledByID != nil {
		by, err := kernel.UUIDFromBytes(r.SettledByID[:])
		if err != nil {
			return SettlementView{}, err
		}
		v.SettledBy = &by
	}
	return v, nil
}
