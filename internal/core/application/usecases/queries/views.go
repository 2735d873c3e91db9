// Package queries contains read-only operations. Handlers read straight from the database with
// SQL through GORM; the few views that need domain rules (order actions, OTP visibility, cart
// pricing) hydrate aggregates through a unit of work without opening a transaction.
package queries

import (
	"context"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultListLimit   = 100
	defaultSearchLimit = 20
)

type UserView struct {
	ID         kernel.UUID
	Name       string
	Email      string
	Phone      string
	Roles      []kernel.Role
	ActiveRole kernel.Role
	IsOnline   bool
	Profile    ProfileView
	CreatedAt  time.Time
}

type ProfileView struct {
	LicenseNo    string
	VehicleNo    string
	ShopName     string
	ShopAddress  string
	WorkingHours string
	ProfilePhoto string
	JoinWhatsapp bool
}

type StoreView struct {
	ID           kernel.UUID
	MerchantID   kernel.UUID
	Name         string
	Address      string
	Lat          float64
	Lng          float64
	ImageURL     string
	IsOpen       bool
	WorkingHours string
	Rating       float64
	TotalOrders  int
}

type SizeView struct {
	ID            kernel.UUID
	Name          string
	PriceModifier kernel.Money
	IsDefault     bool
}

type VariantView struct {
	ID                kernel.UUID
	Name              string
	VariantType       string
	Price             kernel.Money
	SubscriptionDays  int
	SubscriptionPrice kernel.Money
	Sizes             []SizeView
}

type ProductView struct {
	ID          kernel.UUID
	StoreID     kernel.UUID
	MerchantID  kernel.UUID
	Name        string
	Description string
	BaseType    string
	ImageURL    string
	Variants    []VariantView
}

type storeRow struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID
	Name         string
	Address      string
	Lat          float64
	Lng          float64
	ImageURL     string
	IsOpen       bool
	WorkingHours string
	Rating       float64
	TotalOrders  int
}

const storeColumns = `id, merchant_id, name, address, lat, lng, image_url, is_open, working_hours, rating, total_orders`

func (r storeRow) view() (StoreView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return StoreView{}, err
	}
	merchantID, err := kernel.UUIDFromBytes(r.MerchantID[:])
	if err != nil {
		return StoreView{}, err
	}
	return StoreView{
		ID:           id,
		MerchantID:   merchantID,
		Name:         r.Name,
		Address:      r.Address,
		Lat:          r.Lat,
		Lng:          r.Lng,
		ImageURL:     r.ImageURL,
		IsOpen:       r.IsOpen,
		WorkingHours: r.WorkingHours,
		Rating:       r.Rating,
		TotalOrders:  r.TotalOrders,
	}, nil
}

func storeViews(rows []storeRow) ([]StoreView, error) {
	out := make([]StoreView, 0, len(rows))
	for _, r := range rows {
		v, err := r.view()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

type productRow struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	MerchantID  uuid.UUID
	Name        string
	Description string
	BaseType    string
	ImageURL    string
}

const productColumns = `id, store_id, merchant_id, name, description, base_type, image_url`

type variantRow struct {
	ID                uuid.UUID
	ProductID         uuid.UUID
	Name              string
	VariantType       string
	Price             decimal.Decimal
	SubscriptionDays  int
	SubscriptionPrice decimal.Decimal
}

type sizeRow struct {
	ID            uuid.UUID
	VariantID     uuid.UUID
	Name          string
	PriceModifier decimal.Decimal
	IsDefault     bool
}

// productViews attaches variants and sizes to rows with two batched reads, keeping row order.
func productViews(ctx context.Context, db *gorm.DB, rows []productRow) ([]ProductView, error) {
	if len(rows) == 0 {
		return []ProductView{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		productIDs = append(productIDs, r.ID)
	}

	var variants []variantRow
	err := db.WithContext(ctx).Raw(`
		SELECT id, product_id, name, variant_type, price, subscription_days, subscription_price
		FROM product_variants
		WHERE product_id IN ?
		ORDER BY product_id, position
	`, productIDs).Scan(&variants).Error
	if err != nil {
		return nil, err
	}

	variantIDs := make([]uuid.UUID, 0, len(variants))
	for _, v := range variants {
		variantIDs = append(variantIDs, v.ID)
	}

	sizesByVariant := map[uuid.UUID][]SizeView{}
	if len(variantIDs) > 0 {
		var sizes []sizeRow
		err = db.WithContext(ctx).Raw(`
			SELECT id, variant_id, name, price_modifier, is_default
			FROM variant_sizes
			WHERE variant_id IN ?
			ORDER BY variant_id, position
		`, variantIDs).Scan(&sizes).Error
		if err != nil {
			return nil, err
		}
		for _, s := range sizes {
			id, err := kernel.UUIDFromBytes(s.ID[:])
			if err != nil {
				return nil, err
			}
			modifier, err := kernel.NewMoney(s.PriceModifier)
			if err != nil {
				return nil, err
			}
			sizesByVariant[s.VariantID] = append(sizesByVariant[s.VariantID], SizeView{
				ID:            id,
				Name:          s.Name,
				PriceModifier: modifier,
				IsDefault:     s.IsDefault,
			})
		}
	}

	variantsByProduct := map[uuid.UUID][]VariantView{}
	for _, v := range variants {
		id, err := kernel.UUIDFromBytes(v.ID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(v.Price)
		if err != nil {
			return nil, err
		}
		subPrice, err := kernel.NewMoney(v.SubscriptionPrice)
		if err != nil {
			return nil, err
		}
		sizes := sizesByVariant[v.ID]
		if sizes == nil {
			sizes = []SizeView{}
		}
		variantsByProduct[v.ProductID] = append(variantsByProduct[v.ProductID], VariantView{
			ID:                id,
			Name:              v.Name,
			VariantType:       v.VariantType,
			Price:             price,
			SubscriptionDays:  v.SubscriptionDays,
			SubscriptionPrice: subPrice,
			Sizes:             sizes,
		})
	}

	out := make([]ProductView, 0, len(rows))
	for _, r := range rows {
		var ids [3]kernel.UUID
		for i, raw := range []uuid.UUID{r.ID, r.StoreID, r.MerchantID} {
			id, err := kernel.UUIDFromBytes(raw[:])
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		vs := variantsByProduct[r.ID]
		if vs == nil {
			vs = []VariantView{}
		}
		out = append(out, ProductView{
			ID:          ids[0],
			StoreID:     ids[1],
			MerchantID:  ids[2],
			Name:        r.Name,
			Description: r.Description,
			BaseType:    r.BaseType,
			ImageURL:    r.ImageURL,
			Variants:    vs,
		})
	}
	return out, nil
}

// likePattern wraps term for a case-insensitive LIKE against a LOWER()ed column.
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}

const (
	usersTable  = "users"
	storesTable = "stores"
)

type nameRow struct {
	ID   uuid.UUID
	Name string
}

// lookupNames maps ids to the name column of table. Missing ids are simply absent.
func lookupNames(ctx context.Context, db *gorm.DB, table string, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []nameRow
	if err := db.WithContext(ctx).Table(table).Select("id, name").Where("id IN ?", ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}
