package handlers

import (
	"net/http"

	"inspection_billing/internal/adapter/http/dto/request"
	"inspection_billing/internal/adapter/http/dto/response"
	"inspection_billing/internal/adapter/http/middleware"
	"inspection_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves the company-scoped pricing, settlement and discount code routes.
type PricingHandler struct {
	pricing    usecase.IPricingUseCase
	settlement usecase.ISettlementUseCase
	log        *zap.Logger
}

func NewPricingHandler(pricing usecase.IPricingUseCase, settlement usecase.ISettlementUseCase, log *zap.Logger) *PricingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingHandler{pricing: pricing, settlement: settlement, log: log}
}

// UpdatePricing godoc
// @Summary      Replace inspection pricing
// @Description  Replaces the pricing items of an inspection wholesale and returns the recomputed settlement.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                        true  "Inspection ID"
// @Param        body  body      request.UpdatePricingRequest  true  "Pricing items"
// @Success      200   {object}  response.PricingResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /inspections/{id}/pricing [put]
func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	inspectionID := c.Param("id")
	var payload request.UpdatePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[pricing][handler] invalid payload", zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, invalidRequest(request.FormatBindingError(err)))
		return
	}

	result, err := h.pricing.UpdatePricing(c.Request.Context(), middleware.CompanyID(c), inspectionID, payload.Items)
	if err != nil {
		h.log.Warn("[pricing][handler] update failed", zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapPricingError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(result))
}

// GetSettlement godoc
// @Summary      Get inspection settlement
// @Description  Returns subtotal, discount, total, amount paid and remaining balance of an inspection.
// @Tags         pricing
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Inspection ID"
// @Success      200  {object}  response.InspectionSettlementResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /inspections/{id}/settlement [get]
func (h *PricingHandler) GetSettlement(c *gin.Context) {
	inspectionID := c.Param("id")
	state, err := h.settlement.CalculateTotals(c.Request.Context(), middleware.CompanyID(c), inspectionID)
	if err != nil {
		h.log.Warn("[settlement][handler] calculate failed", zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapInspectionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInspectionState(state))
}

// ApplyDiscountCode godoc
// @Summary      Attach or detach a discount code
// @Description  Attaches the discount code with the given public code; an empty code detaches the current one.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                            true  "Inspection ID"
// @Param        body  body      request.ApplyDiscountCodeRequest  true  "Discount code"
// @Success      200   {object}  response.InspectionSettlementResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /inspections/{id}/discount-code [put]
func (h *PricingHandler) ApplyDiscountCode(c *gin.Context) {
	inspectionID := c.Param("id")
	var payload request.ApplyDiscountCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(request.FormatBindingError(err)))
		return
	}

	state, err := h.settlement.ApplyDiscountCode(c.Request.Context(), middleware.CompanyID(c), inspectionID, payload.Code)
	if err != nil {
		h.log.Warn("[settlement][handler] apply discount code failed", zap.String("inspection_id", inspectionID), zap.Error(err))
		writeError(c, mapDiscountCodeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInspectionState(state))
}
