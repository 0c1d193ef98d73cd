package entities

import (
	"encoding/json"
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeAmount  DiscountType = "amount"
)

// AddOnRule names one add-on of one service a discount code applies to.
type AddOnRule struct {
	ServiceID string `json:"service"`
	AddonName string `json:"addOnName"`
}

// UnmarshalJSON accepts the add-on name as addOnName or the legacy addonName.
func (r *AddOnRule) UnmarshalJSON(data []byte) error {
	type plain AddOnRule
	var aux struct {
		plain
		LegacyAddonName string `json:"addonName"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = AddOnRule(aux.plain)
	if strings.TrimSpace(r.AddonName) == "" {
		r.AddonName = aux.LegacyAddonName
	}
	return nil
}

// DiscountCode is referenced (not owned) by inspections.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
//
// Empty AppliesToServices and AppliesToAddOns means the code discounts nothing.
type DiscountCode struct {
	ID                string       `json:"id"`
	Code              string       `json:"code"`
	Type              DiscountType `json:"type"`
	Value             float64      `json:"value"`
	Active            bool         `json:"active"`
	AppliesToServices []string     `json:"appliesToServices"`
	AppliesToAddOns   []AddOnRule  `json:"appliesToAddOns"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}
