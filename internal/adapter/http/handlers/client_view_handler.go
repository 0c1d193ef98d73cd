package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"inspection_billing/internal/adapter/http/dto/request"
	"inspection_billing/internal/adapter/http/dto/response"
	"inspection_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientViewHandler serves the token-authenticated client view payment routes.
type ClientViewHandler struct {
	usecase  usecase.IPaymentConfirmationUseCase
	mockMode bool
	log      *zap.Logger
}

func NewClientViewHandler(uc usecase.IPaymentConfirmationUseCase, mockMode bool, log *zap.Logger) *ClientViewHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClientViewHandler{usecase: uc, mockMode: mockMode, log: log}
}

// ConfirmPayment godoc
// @Summary      Confirm a processor payment
// @Description  Records an approved processor payment in the inspection ledger. Confirming the same payment again is a success without a new entry.
// @Tags         client-view
// @Accept       json
// @Produce      json
// @Param        id     path      string                         true  "Inspection ID"
// @Param        token  query     string                         true  "Client view token"
// @Param        body   body      request.ConfirmPaymentRequest  true  "Processor payment"
// @Success      200    {object}  response.ConfirmPaymentResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /inspections/{id}/client-view/confirm-payment [post]
func (h *ClientViewHandler) ConfirmPayment(c *gin.Context) {
	inspectionID := c.Param("id")
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(request.FormatBindingError(err)))
		return
	}
	processorPaymentID := payload.ResolveProcessorPaymentID()
	if processorPaymentID == "" {
		writeError(c, invalidRequest("paymentIntentId is required"))
		return
	}
	h.log.Info("[client-view][handler] confirm start", zap.String("inspection_id", inspectionID), zap.String("processor_payment_id", processorPaymentID))

	result, err := h.usecase.ConfirmPayment(c.Request.Context(), inspectionID, strings.TrimSpace(c.Query("token")), processorPaymentID)
	if err != nil {
		h.log.Warn("[client-view][handler] confirm failed", zap.String("inspection_id", inspectionID), zap.String("processor_payment_id", processorPaymentID), zap.Error(err))
		writeError(c, mapConfirmationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConfirmation(result))
}

// CreateCheckout godoc
// @Summary      Pay the remaining balance
// @Description  Creates a Mercado Pago payment for the remaining balance. The body is a Mercado Pago payment request, optionally wrapped in mp_payload. Synchronously approved payments are recorded immediately.
// @Tags         client-view
// @Accept       json
// @Produce      json
// @Param        id     path      string  true  "Inspection ID"
// @Param        token  query     string  true  "Client view token"
// @Param        body   body      object  true  "Mercado Pago payment request"
// @Success      200    {object}  response.CheckoutResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /inspections/{id}/client-view/checkout [post]
func (h *ClientViewHandler) CreateCheckout(c *gin.Context) {
	inspectionID := c.Param("id")
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	mpPayload, err := request.ParseCheckoutPayload(raw)
	if err != nil {
		if !h.mockMode {
			h.log.Info("[client-view][handler] invalid checkout payload", zap.String("inspection_id", inspectionID), zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		h.log.Info("[client-view][handler] payload invalid in mock mode; using empty payload", zap.String("inspection_id", inspectionID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	result, err := h.usecase.CreateCheckout(c.Request.Context(), inspectionID, strings.TrimSpace(c.Query("token")), mpPayload)
	if err != nil {
		h.log.Warn("[client-view][handler] checkout failed", zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapConfirmationError(err))
		return
	}
	h.log.Info("[client-view][handler] checkout created",
		zap.String("inspection_id", inspectionID),
		zap.String("processor_payment_id", result.Payment.ID),
		zap.String("status", result.Payment.Status))
	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}
