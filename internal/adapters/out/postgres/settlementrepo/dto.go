// Package settlementrepo persists payout requests.
package settlementrepo

import (
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/domain/model/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SettlementDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserName    string          `gorm:"type:varchar(255)"`
	Role        string          `gorm:"type:varchar(16);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	SettledAt   *time.Time
	SettledByID *uuid.UUID `gorm:"type:uuid"`
}

func (SettlementDTO) TableName() string {
	return "settlements"
}

func fromDomain(s *settlement.Settlement) SettlementDTO {
	dto := SettlementDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID().Bytes(),
		UserName:  s.UserName(),
		Role:      s.Role().String(),
		Amount:    s.Amount().Decimal(),
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
		SettledAt: s.SettledAt(),
	}
	if by := s.SettledBy(); by != nil {
		raw := by.Bytes()
		dto.SettledByID = &raw
	}
	return dto
}

func toDomain(dto SettlementDTO) (*settlement.Settlement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	var settledBy *kernel.UUID
	if dto.SettledByID != nil {
		by, err := kernel.UUIDFromBytes(dto.SettledByID[:])
		if err != nil {
			return nil, err
		}
		settledBy = &by
	}

	return settlement.RestoreSettlement(id, userID, dto.UserName, role, amount, settlement.Status(dto.Status),
		dto.CreatedAt, dto.SettledAt, settledBy)
}
