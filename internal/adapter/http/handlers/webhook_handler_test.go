package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspection_billing/internal/adapter/http/handlers/mocks"
	"inspection_billing/internal/usecase"

	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec"

func newWebhookRouter(t *testing.T, secret string) (*mocks.MockIPaymentConfirmationUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentConfirmationUseCase(ctrl)
	h := NewWebhookHandler(uc, secret, nil)

	r := newTestRouter()
	r.POST("/v1/webhooks/mercadopago", h.MercadoPago)
	return uc, r
}

func sign(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("id:" + dataID + ";request-id:" + requestID + ";ts:" + ts + ";"))
	return "ts=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(r http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const paymentNotification = `{"action":"payment.updated","api_version":"v1","data":{"id":"1319071239"},"id":12345,"live_mode":false,"type":"payment"}`

func TestWebhookHandler_MercadoPago(t *testing.T) {
	t.Run("records payment", func(t *testing.T) {
		uc, r := newWebhookRouter(t, "")
		uc.EXPECT().HandleNotification(gomock.Any(), testProcessorPaymentID).Return(usecase.ConfirmationResult{InspectionID: testInspectionID}, nil)

		w := postWebhook(r, "/v1/webhooks/mercadopago", paymentNotification, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["received"] != true || body["recorded"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("already recorded", func(t *testing.T) {
		uc, r := newWebhookRouter(t, "")
		uc.EXPECT().HandleNotification(gomock.Any(), testProcessorPaymentID).Return(usecase.ConfirmationResult{AlreadyRecorded: true}, nil)

		w := postWebhook(r, "/v1/webhooks/mercadopago", paymentNotification, nil)
		body := decodeJSON(t, w)
		if w.Code != http.StatusOK || body["recorded"] != false || body["message"] != "already confirmed" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
	})

	t.Run("query string notification", func(t *testing.T) {
		uc, r := newWebhookRouter(t, "")
		uc.EXPECT().HandleNotification(gomock.Any(), testProcessorPaymentID).Return(usecase.ConfirmationResult{}, nil)

		w := postWebhook(r, "/v1/webhooks/mercadopago?type=payment&data.id=1319071239", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("non payment notification is ignored", func(t *testing.T) {
		_, r := newWebhookRouter(t, "")
		w := postWebhook(r, "/v1/webhooks/mercadopago", `{"type":"merchant_order","data":{"id":"77"}}`, nil)
		body := decodeJSON(t, w)
		if w.Code != http.StatusOK || body["message"] != "ignored" {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
	})

	t.Run("unrecordable payment is acknowledged", func(t *testing.T) {
		uc, r := newWebhookRouter(t, "")
		uc.EXPECT().HandleNotification(gomock.Any(), testProcessorPaymentID).Return(usecase.ConfirmationResult{}, usecase.ErrPaymentNotCompleted)

		w := postWebhook(r, "/v1/webhooks/mercadopago", paymentNotification, nil)
		body := decodeJSON(t, w)
		if w.Code != http.StatusOK || body["recorded"] != false {
			t.Fatalf("unexpected response %d %v", w.Code, body)
		}
	})

	t.Run("outage is retried", func(t *testing.T) {
		uc, r := newWebhookRouter(t, "")
		uc.EXPECT().HandleNotification(gomock.Any(), testProcessorPaymentID).Return(usecase.ConfirmationResult{}, errors.New("dynamodb unavailable"))

		w := postWebhook(r, "/v1/webhooks/mercadopago", paymentNotification, nil)
		expectError(t, w, http.StatusInternalServerError, "INTERNAL_ERROR")
	})

	t.Run("invalid body", func(t *testing.T) {
		_, r := newWebhookRouter(t, "")
		w := postWebhook(r, "/v1/webhooks/mercadopago", "{", nil)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})
}

func TestWebhookHandler_Signature(t *testing.T) {
	t.Run("valid signature", func(t *testing.T) {
		uc, r := newWebhookRouter(t, webhookSecret)
		uc.EXPECT().HandleNotification(gomock.Any(), testProcessorPaymentID).Return(usecase.ConfirmationResult{}, nil)

		w := postWebhook(r, "/v1/webhooks/mercadopago?data.id=1319071239&type=payment", paymentNotification, map[string]string{
			"x-signature":  sign(webhookSecret, testProcessorPaymentID, "req-1", "1742505638683"),
			"x-request-id": "req-1",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, r := newWebhookRouter(t, webhookSecret)
		w := postWebhook(r, "/v1/webhooks/mercadopago", paymentNotification, map[string]string{
			"x-signature":  sign("other", testProcessorPaymentID, "req-1", "1742505638683"),
			"x-request-id": "req-1",
		})
		expectError(t, w, http.StatusUnauthorized, "INVALID_SIGNATURE")
	})

	t.Run("missing header", func(t *testing.T) {
		_, r := newWebhookRouter(t, webhookSecret)
		w := postWebhook(r, "/v1/webhooks/mercadopago", paymentNotification, nil)
		expectError(t, w, http.StatusUnauthorized, "INVALID_SIGNATURE")
	})
}

func TestSignatureManifest(t *testing.T) {
	if got := signatureManifest("ABC123", "req-1", "17"); got != "id:abc123;request-id:req-1;ts:17;" {
		t.Fatalf("unexpected manifest %q", got)
	}
	if got := signatureManifest("", "", "17"); got != "ts:17;" {
		t.Fatalf("unexpected manifest %q", got)
	}
	if verifyMercadoPagoSignature(webhookSecret, "ts=17,v1=zz", "", "") {
		t.Fatalf("expected non-hex signature to be rejected")
	}
}
