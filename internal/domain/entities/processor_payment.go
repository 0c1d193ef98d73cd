package entities

import (
	"encoding/json"
	"time"
)

// ProcessorPaymentStatus values as reported by Mercado Pago.
const (
	ProcessorStatusApproved    = "approved"
	ProcessorStatusPending     = "pending"
	ProcessorStatusInProcess   = "in_process"
	ProcessorStatusAuthorized  = "authorized"
	ProcessorStatusInMediation = "in_mediation"
	ProcessorStatusRejected    = "rejected"
	ProcessorStatusCancelled   = "cancelled"
	ProcessorStatusRefunded    = "refunded"
	ProcessorStatusChargedBack = "charged_back"
	MetadataInspectionIDKey    = "inspection_id"
	MetadataClientViewTokenKey = "client_view_token"
)

// ProcessorPayment is the normalized view of a payment processor transaction.
//
// InspectionID and ClientViewToken come from the metadata attached at checkout;
// the confirmation path refuses to record a transaction whose metadata does not
// match the request.
type ProcessorPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	Amount            float64
	Currency          string
	PaymentMethod     string
	ExternalReference string
	InspectionID      string
	ClientViewToken   string
	ApprovedAt        time.Time
	Raw               json.RawMessage
}
