package response

import (
	"time"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase"
)

type SettlementResponse struct {
	Subtotal         float64 `json:"subtotal"`
	DiscountAmount   float64 `json:"discountAmount"`
	Total            float64 `json:"total"`
	AmountPaid       float64 `json:"amountPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
	IsPaid           bool    `json:"isPaid"`
	OverpaidAmount   float64 `json:"overpaidAmount,omitempty"`
}

func FromSettlement(s entities.Settlement) SettlementResponse {
	return SettlementResponse{
		Subtotal:         s.Subtotal,
		DiscountAmount:   s.DiscountAmount,
		Total:            s.Total,
		AmountPaid:       s.AmountPaid,
		RemainingBalance: s.RemainingBalance,
		IsPaid:           s.IsPaid,
		OverpaidAmount:   s.OverpaidAmount,
	}
}

type PaymentInfoResponse struct {
	AmountPaid    float64   `json:"amountPaid"`
	PaidAt        time.Time `json:"paidAt"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"paymentMethod"`
}

func fromPaymentInfo(p *entities.PaymentInfo) *PaymentInfoResponse {
	if p == nil {
		return nil
	}
	return &PaymentInfoResponse{
		AmountPaid:    p.AmountPaid,
		PaidAt:        p.PaidAt,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
	}
}

// InspectionSettlementResponse is returned by the settlement and discount code routes.
type InspectionSettlementResponse struct {
	InspectionID string                `json:"inspectionId"`
	DiscountCode *DiscountCodeResponse `json:"discountCode,omitempty"`
	Settlement   SettlementResponse    `json:"settlement"`
	PaymentInfo  *PaymentInfoResponse  `json:"paymentInfo,omitempty"`
}

func FromInspectionState(state usecase.InspectionState) InspectionSettlementResponse {
	out := InspectionSettlementResponse{
		InspectionID: state.Inspection.ID,
		Settlement:   FromSettlement(state.Settlement),
		PaymentInfo:  fromPaymentInfo(state.Inspection.PaymentInfo),
	}
	if state.DiscountCode != nil {
		dc := FromDiscountCode(*state.DiscountCode)
		out.DiscountCode = &dc
	}
	return out
}

type PricingResponse struct {
	Message    string             `json:"message"`
	Pricing    entities.Pricing   `json:"pricing"`
	Settlement SettlementResponse `json:"settlement"`
}

func FromPricingResult(r usecase.PricingResult) PricingResponse {
	pricing := r.Inspection.Pricing
	if pricing.Items == nil {
		pricing.Items = []entities.PricingItem{}
	}
	return PricingResponse{
		Message:    "Pricing updated successfully",
		Pricing:    pricing,
		Settlement: FromSettlement(r.Settlement),
	}
}
