package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"
	"hyperlocal/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

const (
	DefaultBaseType    = "food"
	DefaultVariantType = "general"
)

// Size adjusts a variant's price by a non-negative modifier.
type Size struct {
	id            kernel.UUID
	name          string
	priceModifier kernel.Money
	isDefault     bool
}

func NewSize(id kernel.UUID, name string, priceModifier kernel.Money, isDefault bool) (Size, error) {
	if err := id.Validate(); err != nil {
		return Size{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Size{}, errs.NewValueIsRequiredError("size name")
	}
	return Size{id: id, name: name, priceModifier: priceModifier, isDefault: isDefault}, nil
}

func (s Size) ID() kernel.UUID { return s.id }
func (s Size) Name() string { return s.name }
func (s Size) PriceModifier() kernel.Money { return s.priceModifier }
func (s Size) IsDefault() bool { return s.isDefault }

// Variant is a priced option of a product, optionally with a subscription plan and sizes.
type Variant struct {
	id                kernel.UUID
	name              string
	variantType       string
	price             kernel.Money
	subscriptionDays  int
	subscriptionPrice kernel.Money
	sizes             []Size
}

func NewVariant(
	id kernel.UUID,
	name, variantType string,
	price kernel.Money,
	subscriptionDays int,
	subscriptionPrice kernel.Money,
	sizes []Size,
) (Variant, error) {
	if err := id.Validate(); err != nil {
		return Variant{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Variant{}, errs.NewValueIsRequiredError("variant name")
	}
	if subscriptionDays < 0 {
		return Variant{}, errs.NewValueIsInvalidErrorWithCause("subscription_days",
			fmt.Errorf("%d is negative", subscriptionDays))
	}
	if strings.TrimSpace(variantType) == "" {
		variantType = DefaultVariantType
	}

	return Variant{
		id:                id,
		name:              name,
		variantType:       variantType,
		price:             price,
		subscriptionDays:  subscriptionDays,
		subscriptionPrice: subscriptionPrice,
		sizes:             append([]Size(nil), sizes...),
	}, nil
}

func (v Variant) ID() kernel.UUID { return v.id }
func (v Variant) Name() string { return v.name }
func (v Variant) VariantType() string { return v.variantType }
func (v Variant) Price() kernel.Money { return v.price }
func (v Variant) SubscriptionDays() int { return v.subscriptionDays }
func (v Variant) SubscriptionPrice() kernel.Money { return v.subscriptionPrice }

func (v Variant) Sizes() []Size {
	return append([]Size(nil), v.sizes...)
}

func (v Variant) size(id kernel.UUID) (Size, bool) {
	for _, s := range v.sizes {
		if s.id.IsEqual(id) {
			return s, true
		}
	}
	return Size{}, false
}

// LinePrice is the resolved unit price of one product/variant/size choice.
type LinePrice struct {
	ProductName string
	VariantName string
	SizeName    string
	UnitPrice   kernel.Money
}

// Product is sold by one store.
type Product struct {
	id          kernel.UUID
	storeID     kernel.UUID
	merchantID  kernel.UUID
	name        string
	description string
	baseType    string
	imageURL    string
	variants    []Variant
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewProduct requires at least one variant.
func NewProduct(
	id, storeID, merchantID kernel.UUID,
	name, description, baseType, imageURL string,
	variants []Variant,
	now time.Time,
) (*Product, error) {
	if strings.TrimSpace(baseType) == "" {
		baseType = DefaultBaseType
	}
	p := &Product{
		description: strings.TrimSpace(description),
		baseType:    baseType,
		imageURL:    imageURL,
		createdAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID(id, &p.id),
		validateID(storeID, &p.storeID),
		validateID(merchantID, &p.merchantID),
		p.setName(name),
		p.setVariants(variants),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(
	id, storeID, merchantID kernel.UUID,
	name, description, baseType, imageURL string,
	variants []Variant,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		description: description,
		baseType:    baseType,
		imageURL:    imageURL,
		variants:    append([]Variant(nil), variants...),
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID(id, &p.id),
		validateID(storeID, &p.storeID),
		validateID(merchantID, &p.merchantID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) StoreID() kernel.UUID {
	return p.storeID
}

func (p *Product) MerchantID() kernel.UUID {
	return p.merchantID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) BaseType() string {
	return p.baseType
}

func (p *Product) ImageURL() string {
	return p.imageURL
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) Variants() []Variant {
	return append([]Variant(nil), p.variants...)
}

// PriceFor resolves the unit price of a variant and optional size:
// variant.price + size.price_modifier.
func (p *Product) PriceFor(variantID kernel.UUID, sizeID *kernel.UUID) (LinePrice, error) {
	var (
		variant Variant
		found   bool
	)
	for _, v := range p.variants {
		if v.id.IsEqual(variantID) {
			variant, found = v, true
			break
		}
	}
	if !found {
		return LinePrice{}, errs.NewObjectNotFoundError("variant_id", variantID)
	}

	lp := LinePrice{
		ProductName: p.name,
		VariantName: variant.name,
		UnitPrice:   variant.price,
	}

	if sizeID != nil {
		size, ok := variant.size(*sizeID)
		if !ok {
			return LinePrice{}, errs.NewObjectNotFoundError("size_id", *sizeID)
		}
		lp.SizeName = size.name
		lp.UnitPrice = lp.UnitPrice.Add(size.priceModifier)
	}

	return lp, nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setVariants(variants []Variant) error {
	if len(variants) == 0 {
		return errs.NewValueIsRequiredError("variants")
	}
	for _, v := range variants {
		if err := v.id.Validate(); err != nil {
			return err
		}
	}
	p.variants = append([]Variant(nil), variants...)
	return nil
}
