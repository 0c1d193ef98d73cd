package entities

import "time"

// PaymentEntry is one append-only member of an inspection's payment history.
//
// ProcessorPaymentID correlates the entry 1:1 with a payment processor transaction
// and is the idempotency key of the confirmation path. Manual entries leave it empty.
type PaymentEntry struct {
	ID                 string    `json:"id"`
	Amount             float64   `json:"amount"`
	PaidAt             time.Time `json:"paidAt"`
	Currency           string    `json:"currency"`
	PaymentMethod      string    `json:"paymentMethod"`
	ProcessorPaymentID string    `json:"processorPaymentId,omitempty"`
}

// PaymentInfo is a denormalized snapshot of the last ledger mutation.
// It is a cache; the source of truth is always the ledger sum.
type PaymentInfo struct {
	AmountPaid         float64   `json:"amountPaid"`
	PaidAt             time.Time `json:"paidAt"`
	Currency           string    `json:"currency"`
	PaymentMethod      string    `json:"paymentMethod"`
	ProcessorPaymentID string    `json:"processorPaymentId,omitempty"`
}

const (
	DefaultCurrency      = "usd"
	DefaultPaymentMethod = "other"
)
