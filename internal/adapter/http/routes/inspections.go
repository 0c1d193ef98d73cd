package routes

import (
	"inspection_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInspections   = "/inspections"
	PathDiscountCodes = "/discount-codes"
	PathWebhooks      = "/webhooks"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addInspectionRoutes(rg *gin.RouterGroup, pricing *handlers.PricingHandler, ledger *handlers.PaymentHistoryHandler) {
	inspections := rg.Group(PathInspections)
	{
		inspections.PUT("/:id/pricing", pricing.UpdatePricing)
		inspections.GET("/:id/settlement", pricing.GetSettlement)
		inspections.PUT("/:id/discount-code", pricing.ApplyDiscountCode)

		inspections.GET("/:id/payment-history", ledger.ListPayments)
		inspections.POST("/:id/payment-history", ledger.AddPayment)
		inspections.PUT("/:id/payment-history", ledger.EditPayment)
		inspections.DELETE("/:id/payment-history", ledger.DeletePayment)
	}
}

// addClientViewRoutes mounts the routes authenticated by the client view token.
func addClientViewRoutes(rg *gin.RouterGroup, h *handlers.ClientViewHandler) {
	clientView := rg.Group(PathInspections + "/:id/client-view")
	{
		clientView.POST("/confirm-payment", h.ConfirmPayment)
		clientView.POST("/checkout", h.CreateCheckout)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/mercadopago", h.MercadoPago)
}

func addDiscountCodeRoutes(rg *gin.RouterGroup, h *handlers.DiscountCodeHandler) {
	codes := rg.Group(PathDiscountCodes)
	{
		codes.POST("", h.CreateDiscountCode)
		codes.GET("/:code", h.GetDiscountCode)
	}
}
