package request

import (
	"encoding/json"
	"errors"
	"strings"
)

// ConfirmPaymentRequest is posted by the client view once the processor reports
// the payment. paymentIntentId is the processor payment id; paymentId is accepted
// as an alias.
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	PaymentID       string `json:"paymentId"`
}

// ResolveProcessorPaymentID returns the processor payment id from either field.
func (r ConfirmPaymentRequest) ResolveProcessorPaymentID() string {
	if v := strings.TrimSpace(r.PaymentIntentID); v != "" {
		return v
	}
	return strings.TrimSpace(r.PaymentID)
}

// ParseCheckoutPayload extracts the Mercado Pago payment request from a checkout
// body. The body may be the raw request or wrap it under mp_payload. An empty body
// yields an empty object.
func ParseCheckoutPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

// MercadoPagoNotification is the webhook body Mercado Pago posts for payment events.
// Only payment notifications carry a payment id in data.id.
type MercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// PaymentID returns data.id whether it was sent as a string or a number.
func (n MercadoPagoNotification) PaymentID() string {
	raw := strings.TrimSpace(string(n.Data.ID))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(n.Data.ID, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var num json.Number
	if err := json.Unmarshal(n.Data.ID, &num); err == nil {
		return num.String()
	}
	return ""
}

// IsPaymentEvent reports whether the notification concerns a payment.
func (n MercadoPagoNotification) IsPaymentEvent() bool {
	if strings.EqualFold(n.Type, "payment") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(n.Action), "payment.")
}
