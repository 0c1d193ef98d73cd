package response

import (
	"inspection_billing/internal/usecase"
)

const alreadyConfirmedMessage = "already confirmed"

type ConfirmPaymentResponse struct {
	Success    bool                `json:"success"`
	IsPaid     *bool               `json:"isPaid,omitempty"`
	Message    string              `json:"message,omitempty"`
	Settlement *SettlementResponse `json:"settlement,omitempty"`
}

// FromConfirmation renders {success, isPaid} for a new record and
// {success, message} when the payment had already been recorded.
func FromConfirmation(r usecase.ConfirmationResult) ConfirmPaymentResponse {
	if r.AlreadyRecorded {
		return ConfirmPaymentResponse{Success: true, Message: alreadyConfirmedMessage}
	}
	isPaid := r.Settlement.IsPaid
	s := FromSettlement(r.Settlement)
	return ConfirmPaymentResponse{Success: true, IsPaid: &isPaid, Settlement: &s}
}

type CheckoutResponse struct {
	PaymentID    string             `json:"paymentId"`
	Status       string             `json:"status"`
	StatusDetail string             `json:"statusDetail,omitempty"`
	Amount       float64            `json:"amount"`
	Currency     string             `json:"currency,omitempty"`
	Recorded     bool               `json:"recorded"`
	Settlement   SettlementResponse `json:"settlement"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	out := CheckoutResponse{
		PaymentID:    r.Payment.ID,
		Status:       r.Payment.Status,
		StatusDetail: r.Payment.StatusDetail,
		Amount:       r.Payment.Amount,
		Currency:     r.Payment.Currency,
		Settlement:   FromSettlement(r.Settlement),
	}
	if r.Confirmation != nil {
		out.Recorded = true
		out.Settlement = FromSettlement(r.Confirmation.Settlement)
	}
	return out
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Recorded bool   `json:"recorded"`
	Message  string `json:"message,omitempty"`
}
