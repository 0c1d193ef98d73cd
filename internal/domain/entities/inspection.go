package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PricingItemType tags a pricing line.
type PricingItemType string

const (
	PricingItemService    PricingItemType = "service"
	PricingItemAddon      PricingItemType = "addon"
	PricingItemAdditional PricingItemType = "additional"
)

// PricingItem is one line of an inspection's pricing.
//
// OriginalPrice is the pre-discount price; discounts are always computed from it
// so re-running settlement never compounds a discount already baked into Price.
type PricingItem struct {
	Type          PricingItemType `json:"type"`
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	ServiceID     string          `json:"serviceId,omitempty"`
	AddonName     string          `json:"addOnName,omitempty"`
	OriginalPrice *float64        `json:"originalPrice,omitempty"`
	Hours         *float64        `json:"hours,omitempty"`
}

// UnmarshalJSON accepts the add-on name as addOnName or the legacy addonName.
func (p *PricingItem) UnmarshalJSON(data []byte) error {
	type plain PricingItem
	var aux struct {
		plain
		LegacyAddonName string `json:"addonName"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = PricingItem(aux.plain)
	if strings.TrimSpace(p.AddonName) == "" {
		p.AddonName = aux.LegacyAddonName
	}
	return nil
}

type Pricing struct {
	Items []PricingItem `json:"items"`
}

type RequestedAddonStatus string

const (
	RequestedAddonPending  RequestedAddonStatus = "pending"
	RequestedAddonApproved RequestedAddonStatus = "approved"
	RequestedAddonDeclined RequestedAddonStatus = "declined"
)

// RequestedAddon is an add-on proposed through the secondary approval flow.
// Only approved ones count toward the subtotal.
type RequestedAddon struct {
	ServiceID string               `json:"serviceId,omitempty"`
	AddonName string               `json:"addonName"`
	AddFee    float64              `json:"addFee"`
	Status    RequestedAddonStatus `json:"status"`
}

// UnmarshalJSON accepts the add-on name as addonName or addOnName.
func (a *RequestedAddon) UnmarshalJSON(data []byte) error {
	type plain RequestedAddon
	var aux struct {
		plain
		CamelAddonName string `json:"addOnName"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = RequestedAddon(aux.plain)
	if strings.TrimSpace(a.AddonName) == "" {
		a.AddonName = aux.CamelAddonName
	}
	return nil
}

// Inspection is the aggregate root for pricing, discounts and the payment ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - processor_payment_ids: string set of every processor payment id ever recorded,
//     used as the guard of the confirmation write.
//   - version: incremented on every write; manual ledger and pricing writes are
//     conditioned on it.
type Inspection struct {
	ID                  string           `json:"id"`
	CompanyID           string           `json:"companyId"`
	ClientViewToken     string           `json:"-"`
	ConfirmedInspection bool             `json:"confirmedInspection"`
	Deleted             bool             `json:"-"`
	Pricing             Pricing          `json:"pricing"`
	RequestedAddons     []RequestedAddon `json:"requestedAddons,omitempty"`
	DiscountCodeID      string           `json:"discountCodeId,omitempty"`
	PaymentHistory      []PaymentEntry   `json:"paymentHistory"`
	PaymentInfo         *PaymentInfo     `json:"paymentInfo,omitempty"`
	IsPaid              bool             `json:"isPaid"`
	Version             int64            `json:"-"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// ApprovedRequestedAddons returns the requested add-ons that count toward the subtotal.
func (i Inspection) ApprovedRequestedAddons() []RequestedAddon {
	out := make([]RequestedAddon, 0, len(i.RequestedAddons))
	for _, a := range i.RequestedAddons {
		if a.Status == RequestedAddonApproved {
			out = append(out, a)
		}
	}
	return out
}

// FindPayment returns the index of the ledger entry with the given id, or -1.
func (i Inspection) FindPayment(paymentID string) int {
	for idx, p := range i.PaymentHistory {
		if p.ID == paymentID {
			return idx
		}
	}
	return -1
}

// HasProcessorPayment reports whether the ledger already carries the processor
// payment id. An empty ledger defers to the payment_info cache of older items.
func (i Inspection) HasProcessorPayment(processorPaymentID string) bool {
	if processorPaymentID == "" {
		return false
	}
	if len(i.PaymentHistory) == 0 && i.PaymentInfo != nil {
		return i.PaymentInfo.ProcessorPaymentID == processorPaymentID
	}
	for _, p := range i.PaymentHistory {
		if p.ProcessorPaymentID == processorPaymentID {
			return true
		}
	}
	return false
}
