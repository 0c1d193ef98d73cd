package handlers

import (
	"net/http"
	"strings"

	"inspection_billing/internal/adapter/http/dto/request"
	"inspection_billing/internal/adapter/http/dto/response"
	"inspection_billing/internal/adapter/http/middleware"
	"inspection_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHistoryHandler serves manual ledger CRUD.
type PaymentHistoryHandler struct {
	usecase usecase.IPaymentHistoryUseCase
	log     *zap.Logger
}

func NewPaymentHistoryHandler(uc usecase.IPaymentHistoryUseCase, log *zap.Logger) *PaymentHistoryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHistoryHandler{usecase: uc, log: log}
}

// AddPayment godoc
// @Summary      Record a manual payment
// @Description  Appends a payment to the inspection ledger. The amount must not exceed the remaining balance.
// @Tags         payment-history
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                     true  "Inspection ID"
// @Param        body  body      request.AddPaymentRequest  true  "Payment"
// @Success      200   {object}  response.LedgerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /inspections/{id}/payment-history [post]
func (h *PaymentHistoryHandler) AddPayment(c *gin.Context) {
	inspectionID := c.Param("id")
	var payload request.AddPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(request.FormatBindingError(err)))
		return
	}

	result, err := h.usecase.AddPayment(c.Request.Context(), middleware.CompanyID(c), inspectionID, payload.ToInput())
	if err != nil {
		h.log.Warn("[payment-history][handler] add failed", zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(result))
}

// EditPayment godoc
// @Summary      Edit a manual payment
// @Description  Changes one ledger entry. The new ledger sum must not exceed the total.
// @Tags         payment-history
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                      true  "Inspection ID"
// @Param        body  body      request.EditPaymentRequest  true  "Payment"
// @Success      200   {object}  response.LedgerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /inspections/{id}/payment-history [put]
func (h *PaymentHistoryHandler) EditPayment(c *gin.Context) {
	inspectionID := c.Param("id")
	var payload request.EditPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(request.FormatBindingError(err)))
		return
	}

	result, err := h.usecase.EditPayment(c.Request.Context(), middleware.CompanyID(c), inspectionID, strings.TrimSpace(payload.PaymentID), payload.ToInput())
	if err != nil {
		h.log.Warn("[payment-history][handler] edit failed", zap.String("inspection_id", inspectionID), zap.String("payment_id", payload.PaymentID), zap.Error(err))
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(result))
}

// DeletePayment godoc
// @Summary      Delete a manual payment
// @Tags         payment-history
// @Produce      json
// @Security     Bearer
// @Param        id         path      string  true  "Inspection ID"
// @Param        paymentId  query     string  true  "Payment ID"
// @Success      200        {object}  response.LedgerResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /inspections/{id}/payment-history [delete]
func (h *PaymentHistoryHandler) DeletePayment(c *gin.Context) {
	inspectionID := c.Param("id")
	paymentID := strings.TrimSpace(c.Query("paymentId"))
	if paymentID == "" {
		writeError(c, invalidRequest("paymentId is required"))
		return
	}

	result, err := h.usecase.DeletePayment(c.Request.Context(), middleware.CompanyID(c), inspectionID, paymentID)
	if err != nil {
		h.log.Warn("[payment-history][handler] delete failed", zap.String("inspection_id", inspectionID), zap.String("payment_id", paymentID), zap.Error(err))
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(result))
}

// ListPayments godoc
// @Summary      List the payment ledger
// @Tags         payment-history
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Inspection ID"
// @Success      200  {object}  response.LedgerResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /inspections/{id}/payment-history [get]
func (h *PaymentHistoryHandler) ListPayments(c *gin.Context) {
	inspectionID := c.Param("id")
	result, err := h.usecase.ListPayments(c.Request.Context(), middleware.CompanyID(c), inspectionID)
	if err != nil {
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(result))
}
