package interfaces

import (
	"context"
	"inspection_billing/internal/domain/entities"
)

//go:generate mockgen -source=discount_code_repository_interface.go -destination=mocks/mock_discount_code_repository_interface.go -package=mock_interfaces

// IDiscountCodeRepository abstracts DynamoDB persistence for DiscountCode.
// Getters return a zero-value DiscountCode when nothing matches. Create returns
// ErrDuplicateKey when the code is already taken.
type IDiscountCodeRepository interface {
	Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	GetByID(ctx context.Context, id string) (entities.DiscountCode, error)
	GetByCode(ctx context.Context, code string) (entities.DiscountCode, error)
}
