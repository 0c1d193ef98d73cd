package response

import (
	"time"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase"
)

type PaymentEntryResponse struct {
	ID                 string    `json:"id"`
	Amount             float64   `json:"amount"`
	PaidAt             time.Time `json:"paidAt"`
	Currency           string    `json:"currency"`
	PaymentMethod      string    `json:"paymentMethod"`
	ProcessorPaymentID string    `json:"processorPaymentId,omitempty"`
}

func FromPaymentEntry(e entities.PaymentEntry) PaymentEntryResponse {
	return PaymentEntryResponse{
		ID:                 e.ID,
		Amount:             e.Amount,
		PaidAt:             e.PaidAt,
		Currency:           e.Currency,
		PaymentMethod:      e.PaymentMethod,
		ProcessorPaymentID: e.ProcessorPaymentID,
	}
}

// LedgerResponse carries the whole ledger and a fresh settlement snapshot.
type LedgerResponse struct {
	Success        bool                   `json:"success"`
	Payment        *PaymentEntryResponse  `json:"payment,omitempty"`
	PaymentHistory []PaymentEntryResponse `json:"paymentHistory"`
	Settlement     SettlementResponse     `json:"settlement"`
}

func FromLedgerResult(r usecase.LedgerResult) LedgerResponse {
	out := LedgerResponse{
		Success:        true,
		PaymentHistory: make([]PaymentEntryResponse, 0, len(r.PaymentHistory)),
		Settlement:     FromSettlement(r.Settlement),
	}
	for _, e := range r.PaymentHistory {
		out.PaymentHistory = append(out.PaymentHistory, FromPaymentEntry(e))
	}
	if r.Entry != nil {
		p := FromPaymentEntry(*r.Entry)
		out.Payment = &p
	}
	return out
}
