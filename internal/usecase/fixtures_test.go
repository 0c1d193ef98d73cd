package usecase

import (
	"time"

	"inspection_billing/internal/domain/entities"
)

const (
	testInspectionID = "insp-1"
	testCompanyID    = "company-1"
	testToken        = "3f1c2a0e-7b1d-4f8e-9a55-0c6b0f5e2d11"
	testServiceID    = "9b2f7c1e-2d3a-4c5b-8e6f-7a8b9c0d1e2f"
)

func floatPtr(v float64) *float64 { return &v }

// sampleInspection is priced at 150 + an approved 75 add-on = 225.
func sampleInspection() entities.Inspection {
	return entities.Inspection{
		ID:              testInspectionID,
		CompanyID:       testCompanyID,
		ClientViewToken: testToken,
		Pricing: entities.Pricing{Items: []entities.PricingItem{
			{Type: entities.PricingItemService, Name: "Home inspection", Price: 150, OriginalPrice: floatPtr(150), ServiceID: testServiceID},
		}},
		RequestedAddons: []entities.RequestedAddon{
			{ServiceID: testServiceID, AddonName: "Radon", AddFee: 75, Status: entities.RequestedAddonApproved},
			{ServiceID: testServiceID, AddonName: "Mold", AddFee: 40, Status: entities.RequestedAddonPending},
		},
		Version:   3,
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func sampleDiscount() entities.DiscountCode {
	return entities.DiscountCode{
		ID:                "dc-1",
		Code:              "SPRING10",
		Type:              entities.DiscountTypePercent,
		Value:             10,
		Active:            true,
		AppliesToServices: []string{testServiceID},
	}
}

func withPayments(insp entities.Inspection, amounts ...float64) entities.Inspection {
	for i, a := range amounts {
		insp.PaymentHistory = append(insp.PaymentHistory, entities.PaymentEntry{
			ID:            "pay-" + string(rune('a'+i)),
			Amount:        a,
			PaidAt:        time.Date(2026, 1, 3+i, 9, 0, 0, 0, time.UTC),
			Currency:      entities.DefaultCurrency,
			PaymentMethod: "card",
		})
	}
	return insp
}
