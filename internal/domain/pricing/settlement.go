package pricing

import (
	"inspection_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Input carries everything the settlement depends on.
type Input struct {
	Items           []entities.PricingItem
	RequestedAddons []entities.RequestedAddon
	DiscountCode    *entities.DiscountCode
	PaymentHistory  []entities.PaymentEntry
	// CachedAmountPaid is used only when PaymentHistory is empty (inspections
	// created before the ledger existed).
	CachedAmountPaid float64
}

// InputFromInspection builds the settlement input of an inspection.
func InputFromInspection(insp entities.Inspection, code *entities.DiscountCode) Input {
	in := Input{
		Items:           insp.Pricing.Items,
		RequestedAddons: insp.ApprovedRequestedAddons(),
		DiscountCode:    code,
		PaymentHistory:  insp.PaymentHistory,
	}
	if insp.PaymentInfo != nil {
		in.CachedAmountPaid = insp.PaymentInfo.AmountPaid
	}
	return in
}

// Calculate computes the settlement. Intermediate values are kept exact and only
// the returned figures are rounded to cents.
func Calculate(in Input) entities.Settlement {
	sub := subtotal(in.Items, in.RequestedAddons)
	disc := discount(in.DiscountCode, in.Items, in.RequestedAddons)

	total := sub.Sub(disc)
	if total.IsNegative() {
		total = decimal.Zero
	}
	total = total.Round(2)
	paid := amountPaid(in.PaymentHistory, in.CachedAmountPaid).Round(2)

	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	overpaid := paid.Sub(total)
	if overpaid.IsNegative() {
		overpaid = decimal.Zero
	}

	return entities.Settlement{
		Subtotal:         toFloat(sub),
		DiscountAmount:   toFloat(disc),
		Total:            toFloat(total),
		AmountPaid:       toFloat(paid),
		RemainingBalance: toFloat(remaining),
		IsPaid:           paid.GreaterThanOrEqual(total),
		OverpaidAmount:   toFloat(overpaid),
	}
}

// AmountPaid is the ledger sum, or the cached amount when the ledger is empty.
func AmountPaid(history []entities.PaymentEntry, cached float64) float64 {
	return toFloat(amountPaid(history, cached))
}

func amountPaid(history []entities.PaymentEntry, cached float64) decimal.Decimal {
	if len(history) == 0 {
		return amount(cached)
	}
	sum := decimal.Zero
	for _, p := range history {
		sum = sum.Add(amount(p.Amount))
	}
	return sum
}
