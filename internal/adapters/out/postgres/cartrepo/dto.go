// Package cartrepo persists one cart per user.
package cartrepo

import (
	"time"

	"hyperlocal/internal/core/domain/model/cart"
	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CartDTO struct {
	UserID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StoreID    *uuid.UUID `gorm:"type:uuid"`
	DistanceKm float64    `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null;index"`
	Lines      []LineDTO  `gorm:"foreignKey:CartUserID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "carts"
}

type LineDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CartUserID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position   int        `gorm:"not null"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null"`
	VariantID  uuid.UUID  `gorm:"type:uuid;not null"`
	SizeID     *uuid.UUID `gorm:"type:uuid"`
	Quantity   int        `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) CartDTO {
	dto := CartDTO{
		UserID:     c.UserID().Bytes(),
		DistanceKm: c.DistanceKm(),
		UpdatedAt:  c.UpdatedAt(),
	}
	if s := c.StoreID(); s != nil {
		raw := s.Bytes()
		dto.StoreID = &raw
	}
	for i, l := range c.Lines() {
		ld := LineDTO{
			ID:         l.ID().Bytes(),
			CartUserID: dto.UserID,
			Position:   i,
			ProductID:  l.ProductID().Bytes(),
			VariantID:  l.VariantID().Bytes(),
			Quantity:   l.Quantity(),
		}
		if s := l.SizeID(); s != nil {
			raw := s.Bytes()
			ld.SizeID = &raw
		}
		dto.Lines = append(dto.Lines, ld)
	}
	return dto
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := optionalID(dto.StoreID)
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, ld := range dto.Lines {
		id, err := kernel.UUIDFromBytes(ld.ID[:])
		if err != nil {
			return nil, err
		}
		productID, err := kernel.UUIDFromBytes(ld.ProductID[:])
		if err != nil {
			return nil, err
		}
		variantID, err := kernel.UUIDFromBytes(ld.VariantID[:])
		if err != nil {
			return nil, err
		}
		sizeID, err := optionalID(ld.SizeID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.RestoreLine(id, productID, variantID, sizeID, ld.Quantity))
	}

	return cart.RestoreCart(userID, storeID, lines, dto.DistanceKm, dto.UpdatedAt)
}
