package request

import (
	"strings"

	"inspection_billing/internal/domain/entities"
)

type CreateDiscountCodeRequest struct {
	Code              string               `json:"code" binding:"required,max=64"`
	Type              string               `json:"type" binding:"required,oneof=percent amount"`
	Value             float64              `json:"value" binding:"gt=0"`
	Active            *bool                `json:"active"`
	AppliesToServices []string             `json:"appliesToServices" binding:"omitempty,dive,uuid"`
	AppliesToAddOns   []entities.AddOnRule `json:"appliesToAddOns"`
}

// ToEntity builds the discount code; Active defaults to true.
func (r CreateDiscountCodeRequest) ToEntity() entities.DiscountCode {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	services := make([]string, 0, len(r.AppliesToServices))
	for _, s := range r.AppliesToServices {
		services = append(services, strings.TrimSpace(s))
	}
	addOns := make([]entities.AddOnRule, 0, len(r.AppliesToAddOns))
	for _, a := range r.AppliesToAddOns {
		addOns = append(addOns, entities.AddOnRule{ServiceID: strings.TrimSpace(a.ServiceID), AddonName: strings.TrimSpace(a.AddonName)})
	}
	return entities.DiscountCode{
		Code:              r.Code,
		Type:              entities.DiscountType(strings.ToLower(strings.TrimSpace(r.Type))),
		Value:             r.Value,
		Active:            active,
		AppliesToServices: services,
		AppliesToAddOns:   addOns,
	}
}
