// Package catalogrepo persists stores and products with their variants and sizes.
package catalogrepo

import (
	"time"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StoreDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(512)"`
	Lat          float64   `gorm:"not null"`
	Lng          float64   `gorm:"not null"`
	ImageURL     string    `gorm:"type:varchar(512)"`
	IsOpen       bool      `gorm:"not null;default:true"`
	WorkingHours string    `gorm:"type:varchar(64)"`
	Rating       float64   `gorm:"not null"`
	TotalOrders  int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

// ProductDTO owns its variants, which own their sizes. Position keeps the declared order.
type ProductDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	MerchantID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Name        string       `gorm:"type:varchar(255);not null"`
	Description string       `gorm:"type:text"`
	BaseType    string       `gorm:"type:varchar(32);not null;index"`
	ImageURL    string       `gorm:"type:varchar(512)"`
	CreatedAt   time.Time    `gorm:"not null"`
	Variants    []VariantDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type VariantDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position          int             `gorm:"not null"`
	Name              string          `gorm:"type:varchar(255);not null"`
	VariantType       string          `gorm:"type:varchar(32);not null"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SubscriptionDays  int             `gorm:"not null;default:0"`
	SubscriptionPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Sizes             []SizeDTO       `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

func (VariantDTO) TableName() string {
	return "product_variants"
}

type SizeDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VariantID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"not null"`
	Name          string          `gorm:"type:varchar(64);not null"`
	PriceModifier decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsDefault     bool            `gorm:"not null;default:false"`
}

func (SizeDTO) TableName() string {
	return "variant_sizes"
}

func storeFromDomain(s *catalog.Store) StoreDTO {
	return StoreDTO{
		ID:           s.ID().Bytes(),
		MerchantID:   s.MerchantID().Bytes(),
		Name:         s.Name(),
		Address:      s.Address(),
		Lat:          s.Location().Lat(),
		Lng:          s.Location().Lng(),
		ImageURL:     s.ImageURL(),
		IsOpen:       s.IsOpen(),
		WorkingHours: s.WorkingHours(),
		Rating:       s.Rating(),
		TotalOrders:  s.TotalOrders(),
		CreatedAt:    s.CreatedAt(),
	}
}

// StoreToDomain rebuilds a store from its row.
func StoreToDomain(dto StoreDTO) (*catalog.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	loc, err := kernel.NewLocation(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreStore(id, merchantID, dto.Name, dto.Address, loc, dto.ImageURL, dto.IsOpen,
		dto.WorkingHours, dto.Rating, dto.TotalOrders, dto.CreatedAt)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	dto := ProductDTO{
		ID:          p.ID().Bytes(),
		StoreID:     p.StoreID().Bytes(),
		MerchantID:  p.MerchantID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		BaseType:    p.BaseType(),
		ImageURL:    p.ImageURL(),
		CreatedAt:   p.CreatedAt(),
	}
	for i, v := range p.Variants() {
		vd := VariantDTO{
			ID:                v.ID().Bytes(),
			ProductID:         dto.ID,
			Position:          i,
			Name:              v.Name(),
			VariantType:       v.VariantType(),
			Price:             v.Price().Decimal(),
			SubscriptionDays:  v.SubscriptionDays(),
			SubscriptionPrice: v.SubscriptionPrice().Decimal(),
		}
		for j, s := range v.Sizes() {
			vd.Sizes = append(vd.Sizes, SizeDTO{
				ID:            s.ID().Bytes(),
				VariantID:     vd.ID,
				Position:      j,
				Name:          s.Name(),
				PriceModifier: s.PriceModifier().Decimal(),
				IsDefault:     s.IsDefault(),
			})
		}
		dto.Variants = append(dto.Variants, vd)
	}
	return dto
}

// ProductToDomain rebuilds a product; variants and sizes must be loaded in position order.
func ProductToDomain(dto ProductDTO) (*catalog.Product, error) {
	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{dto.ID, dto.StoreID, dto.MerchantID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	variants := make([]catalog.Variant, 0, len(dto.Variants))
	for _, vd := range dto.Variants {
		sizes := make([]catalog.Size, 0, len(vd.Sizes))
		for _, sd := range vd.Sizes {
			sizeID, err := kernel.UUIDFromBytes(sd.ID[:])
			if err != nil {
				return nil, err
			}
			modifier, err := kernel.NewMoney(sd.PriceModifier)
			if err != nil {
				return nil, err
			}
			size, err := catalog.NewSize(sizeID, sd.Name, modifier, sd.IsDefault)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, size)
		}

		variantID, err := kernel.UUIDFromBytes(vd.ID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(vd.Price)
		if err != nil {
			return nil, err
		}
		subPrice, err := kernel.NewMoney(vd.SubscriptionPrice)
		if err != nil {
			return nil, err
		}
		v, err := catalog.NewVariant(variantID, vd.Name, vd.VariantType, price, vd.SubscriptionDays, subPrice, sizes)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	return catalog.RestoreProduct(ids[0], ids[1], ids[2], dto.Name, dto.Description, dto.BaseType, dto.ImageURL,
		variants, dto.CreatedAt)
}
