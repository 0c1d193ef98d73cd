package response

import (
	"time"

	"inspection_billing/internal/domain/entities"
)

type DiscountCodeResponse struct {
	ID                string               `json:"id"`
	Code              string               `json:"code"`
	Type              string               `json:"type"`
	Value             float64              `json:"value"`
	Active            bool                 `json:"active"`
	AppliesToServices []string             `json:"appliesToServices"`
	AppliesToAddOns   []entities.AddOnRule `json:"appliesToAddOns"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

func FromDiscountCode(d entities.DiscountCode) DiscountCodeResponse {
	services := d.AppliesToServices
	if services == nil {
		services = []string{}
	}
	addOns := d.AppliesToAddOns
	if addOns == nil {
		addOns = []entities.AddOnRule{}
	}
	return DiscountCodeResponse{
		ID:                d.ID,
		Code:              d.Code,
		Type:              string(d.Type),
		Value:             d.Value,
		Active:            d.Active,
		AppliesToServices: services,
		AppliesToAddOns:   addOns,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
