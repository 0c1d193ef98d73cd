package pricing

import (
	"inspection_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ComputeSubtotal sums the price of every pricing item, whatever its type, plus the
// fee of every approved requested add-on. Non-approved add-ons get no partial credit.
func ComputeSubtotal(items []entities.PricingItem, requested []entities.RequestedAddon) float64 {
	return toFloat(subtotal(items, requested))
}

func subtotal(items []entities.PricingItem, requested []entities.RequestedAddon) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(amount(it.Price))
	}
	for _, a := range requested {
		if a.Status != entities.RequestedAddonApproved {
			continue
		}
		sum = sum.Add(amount(a.AddFee))
	}
	return sum
}
