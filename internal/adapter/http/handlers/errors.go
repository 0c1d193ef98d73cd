package handlers

import (
	"errors"
	"net/http"

	"inspection_billing/internal/usecase"
	"inspection_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func invalidRequest(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// exposed builds an AppError whose message is the use case error text.
// Only used for validation errors whose text is meant for callers.
func exposed(code string, err error, status int) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, status)
}

// mapInspectionError maps the errors every inspection route can return.
func mapInspectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInspectionID):
		return pkg.NewDomainErrorSimple("INVALID_INSPECTION_ID", "Invalid inspection id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInspectionNotFound):
		return pkg.NewDomainErrorSimple("INSPECTION_NOT_FOUND", "Inspection not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this inspection", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Inspection was modified by another request, please retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrLedgerBusy):
		return pkg.NewDomainErrorSimple("LEDGER_BUSY", "Another payment operation is in progress, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPricingError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidPricingItems) {
		return exposed("INVALID_PRICING_ITEMS", err, http.StatusBadRequest)
	}
	return mapInspectionError(err)
}

func mapDiscountCodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDiscountCode):
		return exposed("INVALID_DISCOUNT_CODE", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountCodeNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_NOT_FOUND", "Discount code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDiscountCodeInactive):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_INACTIVE", "Discount code is not active", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountCodeAlreadyExists):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_ALREADY_EXISTS", "Discount code already exists", http.StatusConflict)
	default:
		return mapInspectionError(err)
	}
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentExceedsBalance):
		return exposed("PAYMENT_EXCEEDS_BALANCE", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentExceedsTotal):
		return exposed("PAYMENT_EXCEEDS_TOTAL", err, http.StatusBadRequest)
	default:
		return mapInspectionError(err)
	}
}

func mapConfirmationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientToken):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_TOKEN", "Invalid client view token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProcessorPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INTENT_ID", "Invalid payment intent id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProcessorPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_INTENT_NOT_FOUND", "Payment intent not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Payment has not been completed yet", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentCanceled):
		return pkg.NewDomainErrorSimple("PAYMENT_CANCELED", "Payment was canceled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_MISMATCH", "Payment does not belong to this inspection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment has no valid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInspectionAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSPECTION_ALREADY_PAID", "Inspection is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Invalid client view token", http.StatusForbidden)
	default:
		return mapInspectionError(err)
	}
}
