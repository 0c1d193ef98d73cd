package entities

// Settlement is the computed billing state of an inspection at a point in time.
//
// OverpaidAmount is non-zero only when the ledger sum exceeds the total, which can
// happen after a pricing or discount change lowers a total that was already paid.
type Settlement struct {
	Subtotal         float64 `json:"subtotal"`
	DiscountAmount   float64 `json:"discountAmount"`
	Total            float64 `json:"total"`
	AmountPaid       float64 `json:"amountPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
	IsPaid           bool    `json:"isPaid"`
	OverpaidAmount   float64 `json:"overpaidAmount"`
}
