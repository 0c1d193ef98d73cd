package usecase

import "errors"

var (
	ErrInspectionNotFound     = errors.New("inspection not found")
	ErrInvalidInspectionID    = errors.New("invalid inspection id")
	ErrForbidden              = errors.New("inspection belongs to another company")
	ErrInvalidClientToken     = errors.New("invalid client view token")
	ErrInvalidPricingItems    = errors.New("invalid pricing items")
	ErrInvalidPaymentAmount   = errors.New("amount must be a positive number")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrPaymentExceedsBalance  = errors.New("payment would exceed remaining balance")
	ErrPaymentExceedsTotal    = errors.New("payment would exceed total")
	ErrConcurrentModification = errors.New("inspection was modified concurrently")
	ErrLedgerBusy             = errors.New("another payment operation is in progress")
	ErrInspectionAlreadyPaid  = errors.New("inspection already paid")

	ErrDiscountCodeNotFound      = errors.New("discount code not found")
	ErrDiscountCodeInactive      = errors.New("discount code is not active")
	ErrDiscountCodeAlreadyExists = errors.New("discount code already exists")
	ErrInvalidDiscountCode       = errors.New("invalid discount code")

	ErrInvalidProcessorPaymentID      = errors.New("invalid payment intent id")
	ErrProcessorPaymentNotFound       = errors.New("payment intent not found")
	ErrPaymentNotCompleted            = errors.New("payment not completed yet")
	ErrPaymentCanceled                = errors.New("payment was canceled")
	ErrPaymentMismatch                = errors.New("payment does not belong to this inspection")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)
