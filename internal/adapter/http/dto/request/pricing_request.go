package request

import "inspection_billing/internal/domain/entities"

// UpdatePricingRequest replaces the pricing items of an inspection wholesale.
// Item level rules (name, type, price, addon name, service id) are checked by the use case.
type UpdatePricingRequest struct {
	Items []entities.PricingItem `json:"items" binding:"required"`
}

// ApplyDiscountCodeRequest attaches a discount code by its public code.
// An empty code detaches the current one.
type ApplyDiscountCodeRequest struct {
	Code string `json:"code"`
}
