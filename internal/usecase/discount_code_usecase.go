package usecase

import (
	"context"
	"errors"
	"fmt"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/domain/pricing"
	"inspection_billing/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=discount_code_usecase.go -destination=../adapter/http/handlers/mocks/mock_discount_code_usecase.go -package=mocks

// IDiscountCodeUseCase manages discount codes. Codes are matched case-insensitively
// and stored upper-cased.
type IDiscountCodeUseCase interface {
	Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	GetByCode(ctx context.Context, code string) (entities.DiscountCode, error)
}

type DiscountCodeUseCase struct {
	repo interfaces.IDiscountCodeRepository
	log  *zap.Logger
}

var _ IDiscountCodeUseCase = (*DiscountCodeUseCase)(nil)

func NewDiscountCodeUseCase(repo interfaces.IDiscountCodeRepository, log *zap.Logger) *DiscountCodeUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DiscountCodeUseCase{repo: repo, log: log}
}

func (u *DiscountCodeUseCase) Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	d.Code = NormalizeDiscountCode(d.Code)
	if err := validateDiscountCode(d); err != nil {
		return entities.DiscountCode{}, err
	}

	existing, err := u.repo.GetByCode(ctx, d.Code)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if existing.ID != "" {
		return entities.DiscountCode{}, ErrDiscountCodeAlreadyExists
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	for i, s := range d.AppliesToServices {
		d.AppliesToServices[i] = strings.TrimSpace(s)
	}
	for i, r := range d.AppliesToAddOns {
		d.AppliesToAddOns[i] = entities.AddOnRule{ServiceID: strings.TrimSpace(r.ServiceID), AddonName: strings.TrimSpace(r.AddonName)}
	}

	created, err := u.repo.Create(ctx, d)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		u.log.Info("[discount][usecase] code taken concurrently", zap.String("code", d.Code))
		return entities.DiscountCode{}, ErrDiscountCodeAlreadyExists
	}
	if err != nil {
		u.log.Error("[discount][usecase] create failed", zap.String("code", d.Code), zap.Error(err))
		return entities.DiscountCode{}, err
	}
	u.log.Info("[discount][usecase] created", zap.String("id", created.ID), zap.String("code", created.Code))
	return created, nil
}

func (u *DiscountCodeUseCase) GetByCode(ctx context.Context, code string) (entities.DiscountCode, error) {
	code = NormalizeDiscountCode(code)
	if code == "" {
		return entities.DiscountCode{}, ErrInvalidDiscountCode
	}
	d, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if d.ID == "" {
		return entities.DiscountCode{}, ErrDiscountCodeNotFound
	}
	return d, nil
}

// NormalizeDiscountCode trims and upper-cases a discount code.
func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateDiscountCode(d entities.DiscountCode) error {
	if d.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidDiscountCode)
	}
	if !pricing.IsValidAmount(d.Value) {
		return fmt.Errorf("%w: value must be positive", ErrInvalidDiscountCode)
	}
	switch d.Type {
	case entities.DiscountTypePercent:
		if d.Value > 100 {
			return fmt.Errorf("%w: percent value must not exceed 100", ErrInvalidDiscountCode)
		}
	case entities.DiscountTypeAmount:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDiscountCode, d.Type)
	}
	for _, s := range d.AppliesToServices {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: empty service id", ErrInvalidDiscountCode)
		}
	}
	for _, r := range d.AppliesToAddOns {
		if strings.TrimSpace(r.ServiceID) == "" || strings.TrimSpace(r.AddonName) == "" {
			return fmt.Errorf("%w: add-on rules need service and addOnName", ErrInvalidDiscountCode)
		}
	}
	return nil
}
