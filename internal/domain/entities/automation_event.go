package entities

import "time"

type AutomationEventName string

const (
	EventFeeAddedAfterConfirmation   AutomationEventName = "FEE_ADDED_AFTER_CONFIRMATION"
	EventFeeRemovedAfterConfirmation AutomationEventName = "FEE_REMOVED_AFTER_CONFIRMATION"
	EventPaymentCompleted            AutomationEventName = "PAYMENT_COMPLETED"
)

// AutomationEvent is handed to the automation trigger dispatcher.
type AutomationEvent struct {
	ID           string              `json:"id"`
	Name         AutomationEventName `json:"name"`
	InspectionID string              `json:"inspection_id"`
	CompanyID    string              `json:"company_id"`
	Items        []string            `json:"items,omitempty"`
	Settlement   *Settlement         `json:"settlement,omitempty"`
	OccurredAt   time.Time           `json:"occurred_at"`
}
