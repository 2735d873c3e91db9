package cart

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	GiftMessage             = "You've earned a FREE gift with your purchase!"
	FreeDeliveryMessage     = "Free Delivery Applied!"
	NoFreeDeliveryMessage   = "Free delivery not available for this distance"
	giftUpsellTemplate      = "Add %s more to get a FREE gift!"
	freeDeliveryNudgeFormat = "Add %s more for free delivery (within %skm)"
)

// FeeSchedule prices delivery by distance:
// Base + ceil(max(0, d - IncludedKm)) * PerKm.
type FeeSchedule struct {
	Base       kernel.Money
	IncludedKm float64
	PerKm      kernel.Money
}

// FeeFor is a non-decreasing step function of distance.
func (f FeeSchedule) FeeFor(distanceKm float64) kernel.Money {
	extra := math.Ceil(math.Max(0, distanceKm-f.IncludedKm))
	return f.Base.Add(f.PerKm.Mul(int64(extra)))
}

// FreeDeliveryTier waives the delivery fee when subtotal > MinSubtotal and distance < MaxKm.
type FreeDeliveryTier struct {
	MinSubtotal kernel.Money
	MaxKm       float64
}

func (t FreeDeliveryTier) covers(distanceKm float64) bool {
	return distanceKm < t.MaxKm
}

func (t FreeDeliveryTier) applies(subtotal kernel.Money, distanceKm float64) bool {
	return subtotal.GreaterThan(t.MinSubtotal) && t.covers(distanceKm)
}

// Policy is the complete set of pricing rules.
type Policy struct {
	Fees          FeeSchedule
	FreeDelivery  []FreeDeliveryTier
	GiftThreshold kernel.Money
}

// DefaultPolicy: ₹20 covers the first 2 km, then ₹10 per started km; free delivery above ₹499
// within 3 km or above ₹999 within 5 km; gift above ₹1000.
func DefaultPolicy() Policy {
	return Policy{
		Fees: FeeSchedule{
			Base:       kernel.MoneyFromInt(20),
			IncludedKm: 2,
			PerKm:      kernel.MoneyFromInt(10),
		},
		FreeDelivery: []FreeDeliveryTier{
			{MinSubtotal: kernel.MoneyFromInt(499), MaxKm: 3},
			{MinSubtotal: kernel.MoneyFromInt(999), MaxKm: 5},
		},
		GiftThreshold: kernel.MoneyFromInt(1000),
	}
}

// ParseFreeDeliveryTiers reads "min:maxKm" pairs separated by commas, e.g. "499:3,999:5".
func ParseFreeDeliveryTiers(s string) ([]FreeDeliveryTier, error) {
	var tiers []FreeDeliveryTier
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		minStr, kmStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("free delivery tier", fmt.Errorf("%q is not min:km", part))
		}
		minSubtotal, err := kernel.ParseMoney(strings.TrimSpace(minStr))
		if err != nil {
			return nil, err
		}
		km, err := strconv.ParseFloat(strings.TrimSpace(kmStr), 64)
		if err != nil || km <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("free delivery tier", fmt.Errorf("%q has a bad distance", part))
		}
		tiers = append(tiers, FreeDeliveryTier{MinSubtotal: minSubtotal, MaxKm: km})
	}
	return tiers, nil
}

// PricedLine is a cart line priced against the current catalog.
type PricedLine struct {
	LineID      kernel.UUID
	ProductID   kernel.UUID
	VariantID   kernel.UUID
	SizeID      *kernel.UUID
	ProductName string
	VariantName string
	SizeName    string
	ImageURL    string
	UnitPrice   kernel.Money
	Quantity    int
	ItemTotal   kernel.Money
}

// Promotions are the promotion flags and messages shown with a cart.
type Promotions struct {
	GiftEligible        bool
	GiftMessage         string
	UpsellMessage       string
	FreeDeliveryApplied bool
	FreeDeliveryMessage string
}

// Summary is the fully recomputed cart view.
//
// Total == Subtotal + DeliveryFee and Subtotal == Σ ItemTotal always hold. BaseDeliveryFee is the
// distance fee before promotions.
type Summary struct {
	StoreID         *kernel.UUID
	Lines           []PricedLine
	ItemCount       int
	Subtotal        kernel.Money
	BaseDeliveryFee kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	DistanceKm      float64
	Promotions      Promotions
}

// Summarize applies the policy to priced lines. An empty cart costs nothing and carries no
// promotion messages.
func (p Policy) Summarize(lines []PricedLine, distanceKm float64) Summary {
	s := Summary{
		Lines:      lines,
		DistanceKm: distanceKm,
	}
	for _, l := range lines {
		s.Subtotal = s.Subtotal.Add(l.ItemTotal)
		s.ItemCount += l.Quantity
	}
	if len(lines) == 0 {
		return s
	}

	s.BaseDeliveryFee = p.Fees.FeeFor(distanceKm)
	s.DeliveryFee = s.BaseDeliveryFee

	if s.Subtotal.GreaterThan(p.GiftThreshold) {
		s.Promotions.GiftEligible = true
		s.Promotions.GiftMessage = GiftMessage
	} else {
		remaining := ceilRupees(p.GiftThreshold.Sub(s.Subtotal))
		s.Promotions.UpsellMessage = fmt.Sprintf(giftUpsellTemplate, remaining.Rupees())
	}

	for _, t := range p.FreeDelivery {
		if t.applies(s.Subtotal, distanceKm) {
			s.Promotions.FreeDeliveryApplied = true
			s.Promotions.FreeDeliveryMessage = FreeDeliveryMessage
			s.DeliveryFee = kernel.Zero()
			break
		}
	}
	if !s.Promotions.FreeDeliveryApplied {
		s.Promotions.FreeDeliveryMessage = p.nudge(s.Subtotal, distanceKm)
	}

	s.Total = s.Subtotal.Add(s.DeliveryFee)
	return s
}

// nudge names the cheapest tier that covers the distance.
func (p Policy) nudge(subtotal kernel.Money, distanceKm float64) string {
	var covering []FreeDeliveryTier
	for _, t := range p.FreeDelivery {
		if t.covers(distanceKm) {
			covering = append(covering, t)
		}
	}
	if len(covering) == 0 {
		return NoFreeDeliveryMessage
	}
	sort.SliceStable(covering, func(i, j int) bool {
		return covering[i].MinSubtotal.LessThan(covering[j].MinSubtotal)
	})

	best := covering[0]
	needed := best.MinSubtotal.Sub(subtotal).Decimal().Floor().Add(decimal.NewFromInt(1))
	neededMoney, _ := kernel.NewMoney(needed)
	return fmt.Sprintf(freeDeliveryNudgeFormat, neededMoney.Rupees(), strconv.FormatFloat(best.MaxKm, 'f', -1, 64))
}

// ceilRupees rounds up to whole rupees with a minimum of ₹1, since thresholds are strict.
func ceilRupees(m kernel.Money) kernel.Money {
	d := m.Decimal().Ceil()
	if d.LessThan(decimal.NewFromInt(1)) {
		d = decimal.NewFromInt(1)
	}
	out, _ := kernel.NewMoney(d)
	return out
}

// ProductLookup resolves catalog products by id.
type ProductLookup map[kernel.UUID]*catalog.Product

// PriceLines prices every line against the catalog. Lines whose product, variant or size no
// longer exists are left out.
func (c *Cart) PriceLines(products ProductLookup) []PricedLine {
	out := make([]PricedLine, 0, len(c.lines))
	for _, l := range c.lines {
		p, ok := products[l.productID]
		if !ok || p == nil {
			continue
		}
		lp, err := p.PriceFor(l.variantID, l.sizeID)
		if err != nil {
			continue
		}
		out = append(out, PricedLine{
			LineID:      l.id,
			ProductID:   l.productID,
			VariantID:   l.variantID,
			SizeID:      l.sizeID,
			ProductName: lp.ProductName,
			VariantName: lp.VariantName,
			SizeName:    lp.SizeName,
			ImageURL:    p.ImageURL(),
			UnitPrice:   lp.UnitPrice,
			Quantity:    l.quantity,
			ItemTotal:   lp.UnitPrice.Mul(int64(l.quantity)),
		})
	}
	return out
}

// Price prices the cart and applies the policy.
func (c *Cart) Price(policy Policy, products ProductLookup) Summary {
	s := policy.Summarize(c.PriceLines(products), c.distanceKm)
	s.StoreID = c.storeID
	return s
}
