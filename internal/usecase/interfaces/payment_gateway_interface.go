package interfaces

import (
	"context"
	"encoding/json"
	"inspection_billing/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreatePayment submits a provider request payload. GetPayment retrieves a
// transaction by provider id; its status and metadata drive the confirmation path.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (entities.ProcessorPayment, error)
	GetPayment(ctx context.Context, providerPaymentID string) (entities.ProcessorPayment, error)
}
