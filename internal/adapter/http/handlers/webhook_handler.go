package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"inspection_billing/internal/adapter/http/dto/request"
	"inspection_billing/internal/adapter/http/dto/response"
	"inspection_billing/internal/usecase"
	"inspection_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)

// WebhookHandler receives Mercado Pago payment notifications.
//
// Notifications about payments that cannot be recorded (not approved, unknown,
// not ours) are acknowledged with 200 so Mercado Pago stops retrying them; only
// infrastructure failures answer 5xx.
type WebhookHandler struct {
	usecase usecase.IPaymentConfirmationUseCase
	secret  string
	log     *zap.Logger
}

func NewWebhookHandler(uc usecase.IPaymentConfirmationUseCase, secret string, log *zap.Logger) *WebhookHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookHandler{usecase: uc, secret: strings.TrimSpace(secret), log: log}
}

// MercadoPago godoc
// @Summary      Mercado Pago webhook
// @Description  Records approved payments notified by Mercado Pago. When a webhook secret is configured the x-signature header is verified.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string  false  "Mercado Pago signature"
// @Param        x-request-id  header    string  false  "Mercado Pago request id"
// @Success      200           {object}  response.WebhookResponse
// @Failure      401           {object}  pkg.HTTPError
// @Failure      500           {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var notification request.MercadoPagoNotification
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := json.Unmarshal(raw, &notification); err != nil {
			h.log.Info("[webhook][handler] invalid body", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
	}
	if notification.Type == "" {
		notification.Type = firstNonEmpty(c.Query("type"), c.Query("topic"))
	}

	paymentID := notification.PaymentID()
	if paymentID == "" {
		paymentID = strings.TrimSpace(firstNonEmpty(c.Query("data.id"), c.Query("id")))
	}

	if h.secret != "" && !verifyMercadoPagoSignature(h.secret, c.GetHeader("x-signature"), c.GetHeader("x-request-id"), firstNonEmpty(c.Query("data.id"), paymentID)) {
		h.log.Warn("[webhook][handler] signature rejected", zap.String("processor_payment_id", paymentID))
		writeError(c, errInvalidSignature)
		return
	}

	if !notification.IsPaymentEvent() || paymentID == "" {
		h.log.Info("[webhook][handler] ignored notification", zap.String("type", notification.Type), zap.String("action", notification.Action))
		c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Message: "ignored"})
		return
	}

	result, err := h.usecase.HandleNotification(c.Request.Context(), paymentID)
	if err != nil {
		if isAcknowledgedNotificationError(err) {
			h.log.Info("[webhook][handler] notification not recorded", zap.String("processor_payment_id", paymentID), zap.Error(err))
			c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Message: err.Error()})
			return
		}
		h.log.Error("[webhook][handler] notification failed", zap.String("processor_payment_id", paymentID), zap.Error(err))
		writeError(c, mapConfirmationError(err))
		return
	}

	msg := ""
	if result.AlreadyRecorded {
		msg = "already confirmed"
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Recorded: !result.AlreadyRecorded, Message: msg})
}

func isAcknowledgedNotificationError(err error) bool {
	for _, target := range []error{
		usecase.ErrInvalidProcessorPaymentID,
		usecase.ErrProcessorPaymentNotFound,
		usecase.ErrPaymentNotCompleted,
		usecase.ErrPaymentCanceled,
		usecase.ErrPaymentMismatch,
		usecase.ErrInspectionNotFound,
		usecase.ErrInvalidInspectionID,
		usecase.ErrInvalidPaymentAmount,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// verifyMercadoPagoSignature checks the x-signature header ("ts=...,v1=...")
// against HMAC-SHA256 of the manifest "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
// Parts whose value is missing are left out of the manifest.
func verifyMercadoPagoSignature(secret, header, requestID, dataID string) bool {
	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	if ts == "" || v1 == "" {
		return false
	}

	expected, err := hex.DecodeString(v1)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signatureManifest(dataID, requestID, ts)))
	return hmac.Equal(mac.Sum(nil), expected)
}

func signatureManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID = strings.TrimSpace(dataID); dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID = strings.TrimSpace(requestID); requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
