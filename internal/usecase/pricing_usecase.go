package usecase

import (
	"context"
	"errors"
	"fmt"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/domain/pricing"
	"inspection_billing/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=pricing_usecase.go -destination=../adapter/http/handlers/mocks/mock_pricing_usecase.go -package=mocks

// PricingResult is returned by a pricing replacement.
type PricingResult struct {
	Inspection entities.Inspection
	Settlement entities.Settlement
}

// IPricingUseCase replaces the pricing items of an inspection.
//
// Requested behavior:
//   - Items are replaced wholesale and the settlement is recomputed from them.
//   - Fee changes on a confirmed inspection are reported to the automation system.
type IPricingUseCase interface {
	UpdatePricing(ctx context.Context, companyID, inspectionID string, items []entities.PricingItem) (PricingResult, error)
}

type PricingUseCase struct {
	repo   interfaces.IInspectionRepository
	states *SettlementUseCase
	notify notifier
	log    *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IInspectionRepository, discounts interfaces.IDiscountCodeRepository, dispatcher interfaces.IAutomationDispatcher, log *zap.Logger) *PricingUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingUseCase{
		repo:   repo,
		states: NewSettlementUseCase(repo, discounts, log),
		notify: notifier{dispatcher: dispatcher, log: log},
		log:    log,
	}
}

func (u *PricingUseCase) UpdatePricing(ctx context.Context, companyID, inspectionID string, items []entities.PricingItem) (PricingResult, error) {
	u.log.Info("[pricing][usecase] update start", zap.String("inspection_id", inspectionID), zap.Int("items", len(items)))
	normalized, err := normalizePricingItems(items)
	if err != nil {
		u.log.Info("[pricing][usecase] invalid items", zap.String("inspection_id", inspectionID), zap.Error(err))
		return PricingResult{}, err
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		state, err := u.states.load(ctx, companyID, inspectionID)
		if err != nil {
			return PricingResult{}, err
		}

		in := pricing.InputFromInspection(state.Inspection, state.DiscountCode)
		in.Items = normalized
		next := pricing.Calculate(in)

		updated, err := u.repo.ReplacePricing(ctx, state.Inspection.ID, state.Inspection.Version, normalized, next.IsPaid)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.log.Info("[pricing][usecase] version conflict, retrying",
				zap.String("inspection_id", inspectionID), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			u.log.Error("[pricing][usecase] replace failed", zap.String("inspection_id", inspectionID), zap.Error(err))
			return PricingResult{}, err
		}
		if updated.ID == "" {
			return PricingResult{}, ErrInspectionNotFound
		}

		if next.OverpaidAmount > 0 {
			u.log.Warn("[pricing][usecase] total dropped below amount paid",
				zap.String("inspection_id", inspectionID),
				zap.Float64("total", next.Total),
				zap.Float64("overpaid", next.OverpaidAmount))
		}

		if state.Inspection.ConfirmedInspection {
			added, removed := pricing.DiffFees(state.Inspection.Pricing.Items, normalized)
			if len(added) > 0 {
				u.notify.fire(ctx, updated, entities.EventFeeAddedAfterConfirmation, added, &next)
			}
			if len(removed) > 0 {
				u.notify.fire(ctx, updated, entities.EventFeeRemovedAfterConfirmation, removed, &next)
			}
		}

		u.log.Info("[pricing][usecase] update success",
			zap.String("inspection_id", inspectionID),
			zap.Float64("subtotal", next.Subtotal),
			zap.Float64("discount", next.DiscountAmount),
			zap.Float64("total", next.Total))
		return PricingResult{Inspection: updated, Settlement: next}, nil
	}
	return PricingResult{}, ErrConcurrentModification
}

// normalizePricingItems validates the items and fills OriginalPrice from Price
// when it is missing, so later discounts keep a stable base.
func normalizePricingItems(items []entities.PricingItem) ([]entities.PricingItem, error) {
	out := make([]entities.PricingItem, 0, len(items))
	for i, it := range items {
		switch it.Type {
		case entities.PricingItemService, entities.PricingItemAddon, entities.PricingItemAdditional:
		default:
			return nil, fmt.Errorf("%w: item %d has unknown type %q", ErrInvalidPricingItems, i, it.Type)
		}
		it.Name = strings.TrimSpace(it.Name)
		it.AddonName = strings.TrimSpace(it.AddonName)
		it.ServiceID = strings.TrimSpace(it.ServiceID)
		if it.Name == "" && it.Type == entities.PricingItemAddon {
			it.Name = it.AddonName
		}
		if it.Name == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrInvalidPricingItems, i)
		}
		if it.Type == entities.PricingItemAddon && it.AddonName == "" {
			return nil, fmt.Errorf("%w: addon item %d requires addOnName", ErrInvalidPricingItems, i)
		}
		if it.ServiceID != "" {
			if _, err := uuid.Parse(it.ServiceID); err != nil {
				return nil, fmt.Errorf("%w: item %d has invalid serviceId", ErrInvalidPricingItems, i)
			}
		}
		if !pricing.IsValidPrice(it.Price) {
			return nil, fmt.Errorf("%w: item %d has invalid price", ErrInvalidPricingItems, i)
		}
		it.Price = pricing.Round2(it.Price)
		if it.OriginalPrice == nil {
			p := it.Price
			it.OriginalPrice = &p
		} else if !pricing.IsValidPrice(*it.OriginalPrice) {
			return nil, fmt.Errorf("%w: item %d has invalid originalPrice", ErrInvalidPricingItems, i)
		}
		if it.Hours != nil && !pricing.IsValidPrice(*it.Hours) {
			return nil, fmt.Errorf("%w: item %d has invalid hours", ErrInvalidPricingItems, i)
		}
		out = append(out, it)
	}
	return out, nil
}
