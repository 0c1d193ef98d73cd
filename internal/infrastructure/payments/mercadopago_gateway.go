package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMockPaymentNotFound = errors.New(`{"message":"Payment not found","error":"not_found","status":404}`)

// paymentClient is the subset of the Mercado Pago payment client the gateway uses.
type paymentClient interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client   paymentClient
	mockMode bool
	mock     sync.Map
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode no Mercado Pago call is
// made: created payments are approved immediately and kept in memory so they
// can be retrieved by id.
func NewMercadoPagoGateway(accessToken string, mockMode bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if mockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		log.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (entities.ProcessorPayment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g == nil || g.client == nil {
		return entities.ProcessorPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return entities.ProcessorPayment{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create failed", zap.Error(err))
		return entities.ProcessorPayment{}, err
	}

	p, err := fromSDKResponse(resp)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	g.log.Info("[payment][gateway] create success",
		zap.String("provider_payment_id", p.ID), zap.String("provider_status", p.Status))
	return p, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (entities.ProcessorPayment, error) {
	if g != nil && g.mockMode {
		raw, ok := g.mock.Load(providerPaymentID)
		if !ok {
			return entities.ProcessorPayment{}, ErrMockPaymentNotFound
		}
		return decodePayment(raw.([]byte))
	}
	if g == nil || g.client == nil {
		return entities.ProcessorPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return entities.ProcessorPayment{}, fmt.Errorf("invalid mercado pago payment id %q: %w", providerPaymentID, err)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.log.Error("[payment][gateway] sdk get failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return entities.ProcessorPayment{}, err
	}
	return fromSDKResponse(resp)
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (entities.ProcessorPayment, error) {
	g.log.Info("[payment][gateway] mock create start", zap.Int("payload_len", len(requestPayload)))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"], _ = strconv.ParseInt(id, 10, 64)
	resp["status"] = entities.ProcessorStatusApproved
	resp["status_detail"] = "accredited"
	if _, ok := resp["currency_id"]; !ok {
		resp["currency_id"] = strings.ToUpper(entities.DefaultCurrency)
	}
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] mock response marshal failed", zap.Error(err))
		return entities.ProcessorPayment{}, err
	}
	g.mock.Store(id, b)

	g.log.Info("[payment][gateway] mock create success", zap.String("provider_payment_id", id))
	return decodePayment(b)
}

// mpPayment is the part of a Mercado Pago payment the service reads. Decoding
// from JSON keeps the gateway independent of the SDK's Go field types.
type mpPayment struct {
	ID                int64          `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	PaymentMethodID   string         `json:"payment_method_id"`
	ExternalReference string         `json:"external_reference"`
	Metadata          map[string]any `json:"metadata"`
	DateApproved      *time.Time     `json:"date_approved"`
}

func fromSDKResponse(resp *payment.Response) (entities.ProcessorPayment, error) {
	if resp == nil {
		return entities.ProcessorPayment{}, nil
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	return decodePayment(b)
}

func decodePayment(raw []byte) (entities.ProcessorPayment, error) {
	var mp mpPayment
	if err := json.Unmarshal(raw, &mp); err != nil {
		return entities.ProcessorPayment{}, err
	}
	p := entities.ProcessorPayment{
		Status:            strings.ToLower(mp.Status),
		StatusDetail:      mp.StatusDetail,
		Amount:            mp.TransactionAmount,
		Currency:          strings.ToLower(mp.CurrencyID),
		PaymentMethod:     mp.PaymentMethodID,
		ExternalReference: mp.ExternalReference,
		InspectionID:      metadataString(mp.Metadata, entities.MetadataInspectionIDKey),
		ClientViewToken:   metadataString(mp.Metadata, entities.MetadataClientViewTokenKey),
		Raw:               json.RawMessage(raw),
	}
	if mp.ID > 0 {
		p.ID = strconv.FormatInt(mp.ID, 10)
	}
	if mp.DateApproved != nil && !mp.DateApproved.IsZero() {
		p.ApprovedAt = mp.DateApproved.UTC()
	}
	return p, nil
}

func metadataString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
