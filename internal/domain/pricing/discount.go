package pricing

import (
	"strings"

	"inspection_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineKind int

const (
	LineOther LineKind = iota
	LineService
	LineAddon
)

// Line is the normalized shape every discountable entry is reduced to before
// matching: pricing services, pricing add-ons and approved requested add-ons.
type Line struct {
	Kind      LineKind
	ServiceID string
	AddonName string
	// Base is the pre-discount amount the discount is computed from.
	Base float64
}

// LineFromPricingItem normalizes a pricing item. The base is OriginalPrice when
// it is positive, otherwise Price.
func LineFromPricingItem(it entities.PricingItem) Line {
	base := it.Price
	if it.OriginalPrice != nil && *it.OriginalPrice > 0 {
		base = *it.OriginalPrice
	}
	l := Line{ServiceID: strings.TrimSpace(it.ServiceID), AddonName: it.AddonName, Base: base}
	switch it.Type {
	case entities.PricingItemService:
		l.Kind = LineService
	case entities.PricingItemAddon:
		l.Kind = LineAddon
	default:
		l.Kind = LineOther
	}
	return l
}

// LineFromRequestedAddon normalizes a requested add-on; its fee is the base.
func LineFromRequestedAddon(a entities.RequestedAddon) Line {
	return Line{
		Kind:      LineAddon,
		ServiceID: strings.TrimSpace(a.ServiceID),
		AddonName: a.AddonName,
		Base:      a.AddFee,
	}
}

// Lines flattens pricing items and approved requested add-ons into matchable lines.
func Lines(items []entities.PricingItem, requested []entities.RequestedAddon) []Line {
	out := make([]Line, 0, len(items)+len(requested))
	for _, it := range items {
		out = append(out, LineFromPricingItem(it))
	}
	for _, a := range requested {
		if a.Status != entities.RequestedAddonApproved {
			continue
		}
		out = append(out, LineFromRequestedAddon(a))
	}
	return out
}

// MatchAndDiscount returns the discount the code grants on a single line, or 0
// when the code is missing, inactive, has empty applicability sets or does not
// match the line.
func MatchAndDiscount(line Line, code *entities.DiscountCode) float64 {
	return toFloat(matchAndDiscount(line, code))
}

func matchAndDiscount(line Line, code *entities.DiscountCode) decimal.Decimal {
	if !appliesToAnything(code) || !matches(line, code) {
		return decimal.Zero
	}
	value := amount(code.Value)
	switch code.Type {
	case entities.DiscountTypePercent:
		return amount(line.Base).Mul(value).Div(hundred)
	case entities.DiscountTypeAmount:
		return value
	default:
		return decimal.Zero
	}
}

// ComputeDiscount sums MatchAndDiscount over every pricing item and approved
// requested add-on. The caller clamps total = max(0, subtotal - discount).
func ComputeDiscount(code *entities.DiscountCode, items []entities.PricingItem, requested []entities.RequestedAddon) float64 {
	return toFloat(discount(code, items, requested))
}

func discount(code *entities.DiscountCode, items []entities.PricingItem, requested []entities.RequestedAddon) decimal.Decimal {
	if !appliesToAnything(code) {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, l := range Lines(items, requested) {
		sum = sum.Add(matchAndDiscount(l, code))
	}
	return sum
}

func appliesToAnything(code *entities.DiscountCode) bool {
	if code == nil || !code.Active {
		return false
	}
	return len(code.AppliesToServices) > 0 || len(code.AppliesToAddOns) > 0
}

func matches(line Line, code *entities.DiscountCode) bool {
	if line.ServiceID == "" {
		return false
	}
	switch line.Kind {
	case LineService:
		for _, id := range code.AppliesToServices {
			if strings.TrimSpace(id) == line.ServiceID {
				return true
			}
		}
	case LineAddon:
		name := strings.TrimSpace(line.AddonName)
		if name == "" {
			return false
		}
		for _, rule := range code.AppliesToAddOns {
			if strings.TrimSpace(rule.ServiceID) == line.ServiceID && strings.EqualFold(strings.TrimSpace(rule.AddonName), name) {
				return true
			}
		}
	}
	return false
}
