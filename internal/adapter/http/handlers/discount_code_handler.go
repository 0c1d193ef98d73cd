package handlers

import (
	"net/http"

	"inspection_billing/internal/adapter/http/dto/request"
	"inspection_billing/internal/adapter/http/dto/response"
	"inspection_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DiscountCodeHandler struct {
	usecase usecase.IDiscountCodeUseCase
	log     *zap.Logger
}

func NewDiscountCodeHandler(uc usecase.IDiscountCodeUseCase, log *zap.Logger) *DiscountCodeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DiscountCodeHandler{usecase: uc, log: log}
}

// CreateDiscountCode godoc
// @Summary      Create a discount code
// @Tags         discount-codes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateDiscountCodeRequest  true  "Discount code"
// @Success      201   {object}  response.DiscountCodeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /discount-codes [post]
func (h *DiscountCodeHandler) CreateDiscountCode(c *gin.Context) {
	var payload request.CreateDiscountCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(request.FormatBindingError(err)))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.log.Warn("[discount-code][handler] create failed", zap.String("code", payload.Code), zap.Error(err))
		writeError(c, mapDiscountCodeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDiscountCode(created))
}

// GetDiscountCode godoc
// @Summary      Get a discount code by its public code
// @Tags         discount-codes
// @Produce      json
// @Security     Bearer
// @Param        code  path      string  true  "Discount code"
// @Success      200   {object}  response.DiscountCodeResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /discount-codes/{code} [get]
func (h *DiscountCodeHandler) GetDiscountCode(c *gin.Context) {
	d, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, mapDiscountCodeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDiscountCode(d))
}
