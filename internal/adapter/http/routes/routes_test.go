package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inspection_billing/internal/adapter/http/handlers"
	"inspection_billing/internal/adapter/http/handlers/mocks"
	"inspection_billing/internal/adapter/http/middleware"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const routesSecret = "routes-secret"

type routeMocks struct {
	pricing      *mocks.MockIPricingUseCase
	settlement   *mocks.MockISettlementUseCase
	ledger       *mocks.MockIPaymentHistoryUseCase
	confirmation *mocks.MockIPaymentConfirmationUseCase
	discounts    *mocks.MockIDiscountCodeUseCase
}

func newTestEngine(t *testing.T) (routeMocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routeMocks{
		pricing:      mocks.NewMockIPricingUseCase(ctrl),
		settlement:   mocks.NewMockISettlementUseCase(ctrl),
		ledger:       mocks.NewMockIPaymentHistoryUseCase(ctrl),
		confirmation: mocks.NewMockIPaymentConfirmationUseCase(ctrl),
		discounts:    mocks.NewMockIDiscountCodeUseCase(ctrl),
	}
	log := zap.NewNop()
	h := Handlers{
		Pricing:        handlers.NewPricingHandler(m.pricing, m.settlement, log),
		PaymentHistory: handlers.NewPaymentHistoryHandler(m.ledger, log),
		ClientView:     handlers.NewClientViewHandler(m.confirmation, false, log),
		Webhook:        handlers.NewWebhookHandler(m.confirmation, "", log),
		DiscountCode:   handlers.NewDiscountCodeHandler(m.discounts, log),
	}
	return m, NewRouter(h, routesSecret, log)
}

func serve(r http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PrivateRoutesRequireToken(t *testing.T) {
	_, r := newTestEngine(t)

	paths := []struct{ method, path string }{
		{http.MethodPut, "/v1/inspections/insp-1/pricing"},
		{http.MethodGet, "/v1/inspections/insp-1/settlement"},
		{http.MethodPut, "/v1/inspections/insp-1/discount-code"},
		{http.MethodGet, "/v1/inspections/insp-1/payment-history"},
		{http.MethodPost, "/v1/inspections/insp-1/payment-history"},
		{http.MethodPut, "/v1/inspections/insp-1/payment-history"},
		{http.MethodDelete, "/v1/inspections/insp-1/payment-history"},
		{http.MethodPost, "/v1/discount-codes"},
		{http.MethodGet, "/v1/discount-codes/SPRING10"},
	}
	for _, p := range paths {
		w := serve(r, p.method, p.path, "{}", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRouter_CompanyScopeReachesUseCase(t *testing.T) {
	m, r := newTestEngine(t)
	token, err := middleware.GenerateToken([]byte(routesSecret), "company-1", "user-1", time.Hour)
	require.NoError(t, err)

	m.settlement.EXPECT().CalculateTotals(gomock.Any(), "company-1", "insp-1").Return(usecase.InspectionState{
		Inspection: entities.Inspection{ID: "insp-1"},
		Settlement: entities.Settlement{Total: 210, RemainingBalance: 210},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/inspections/insp-1/settlement", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	m, r := newTestEngine(t)

	w := serve(r, http.MethodGet, "/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	m.confirmation.EXPECT().ConfirmPayment(gomock.Any(), "insp-1", "tok", "1319071239").Return(usecase.ConfirmationResult{AlreadyRecorded: true}, nil)
	w = serve(r, http.MethodPost, "/v1/inspections/insp-1/client-view/confirm-payment?token=tok", `{"paymentIntentId":"1319071239"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"merchant_order"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
