package interfaces

import (
	"context"
	"inspection_billing/internal/domain/entities"
)

//go:generate mockgen -source=inspection_repository_interface.go -destination=mocks/mock_inspection_repository_interface.go -package=mock_interfaces

// IInspectionRepository abstracts DynamoDB persistence for Inspection.
//
// Read methods return a zero-value Inspection (empty ID) when the item does not
// exist or is soft-deleted. Versioned writes return ErrVersionConflict when the
// stored version differs from expectedVersion.
type IInspectionRepository interface {
	Create(ctx context.Context, i entities.Inspection) (entities.Inspection, error)
	GetByID(ctx context.Context, id string) (entities.Inspection, error)
	ReplacePricing(ctx context.Context, id string, expectedVersion int64, items []entities.PricingItem, isPaid bool) (entities.Inspection, error)
	ReplaceLedger(ctx context.Context, id string, expectedVersion int64, history []entities.PaymentEntry, info entities.PaymentInfo, isPaid bool) (entities.Inspection, error)
	SetDiscountCode(ctx context.Context, id string, expectedVersion int64, discountCodeID string, isPaid bool) (entities.Inspection, error)
	// AppendProcessorPayment appends seed followed by entry only if no entry with the
	// same processor payment id was ever recorded. appended is false when the guard
	// rejected the write. A non-empty seed also requires the ledger to still be
	// empty; when it is not, ErrVersionConflict is returned.
	AppendProcessorPayment(ctx context.Context, id string, seed []entities.PaymentEntry, entry entities.PaymentEntry) (appended bool, err error)
	// UpdatePaymentState refreshes the payment_info/is_paid caches when the item is
	// still at expectedVersion, and does nothing otherwise.
	UpdatePaymentState(ctx context.Context, id string, expectedVersion int64, info entities.PaymentInfo, isPaid bool) error
}
