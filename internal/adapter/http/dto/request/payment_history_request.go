package request

import (
	"strings"
	"time"

	"inspection_billing/internal/usecase"
)

// AddPaymentRequest is the payload of a manual ledger entry.
type AddPaymentRequest struct {
	Amount        *float64   `json:"amount" binding:"required"`
	PaidAt        *time.Time `json:"paidAt"`
	Currency      string     `json:"currency" binding:"omitempty,max=8"`
	PaymentMethod string     `json:"paymentMethod" binding:"omitempty,max=64"`
}

func (r AddPaymentRequest) ToInput() usecase.PaymentInput {
	return toPaymentInput(r.Amount, r.PaidAt, r.Currency, r.PaymentMethod)
}

// EditPaymentRequest edits one ledger entry addressed by PaymentID.
type EditPaymentRequest struct {
	PaymentID     string     `json:"paymentId" binding:"required"`
	Amount        *float64   `json:"amount" binding:"required"`
	PaidAt        *time.Time `json:"paidAt"`
	Currency      string     `json:"currency" binding:"omitempty,max=8"`
	PaymentMethod string     `json:"paymentMethod" binding:"omitempty,max=64"`
}

func (r EditPaymentRequest) ToInput() usecase.PaymentInput {
	return toPaymentInput(r.Amount, r.PaidAt, r.Currency, r.PaymentMethod)
}

func toPaymentInput(amount *float64, paidAt *time.Time, currency, method string) usecase.PaymentInput {
	in := usecase.PaymentInput{
		Currency:      strings.TrimSpace(currency),
		PaymentMethod: strings.TrimSpace(method),
	}
	if amount != nil {
		in.Amount = *amount
	}
	if paidAt != nil {
		in.PaidAt = paidAt.UTC()
	}
	return in
}
