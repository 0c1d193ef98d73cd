package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/domain/pricing"
	"inspection_billing/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settlement_usecase.go -destination=../adapter/http/handlers/mocks/mock_settlement_usecase.go -package=mocks

// maxWriteAttempts bounds the optimistic read-modify-write retries of versioned writes.
const maxWriteAttempts = 3

// InspectionState is an inspection loaded together with its discount code and
// the settlement recomputed from both.
type InspectionState struct {
	Inspection   entities.Inspection
	DiscountCode *entities.DiscountCode
	Settlement   entities.Settlement
}

// ISettlementUseCase exposes the settlement calculator and discount attachment.
type ISettlementUseCase interface {
	CalculateTotals(ctx context.Context, companyID, inspectionID string) (InspectionState, error)
	ApplyDiscountCode(ctx context.Context, companyID, inspectionID, code string) (InspectionState, error)
}

type SettlementUseCase struct {
	repo      interfaces.IInspectionRepository
	discounts interfaces.IDiscountCodeRepository
	log       *zap.Logger
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(repo interfaces.IInspectionRepository, discounts interfaces.IDiscountCodeRepository, log *zap.Logger) *SettlementUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettlementUseCase{repo: repo, discounts: discounts, log: log}
}

// CalculateTotals loads the inspection and recomputes its settlement. It is the
// single source of truth for subtotal, discount, total, paid amount and balance;
// cached is_paid/payment_info values are never read back.
func (u *SettlementUseCase) CalculateTotals(ctx context.Context, companyID, inspectionID string) (InspectionState, error) {
	return u.load(ctx, companyID, inspectionID)
}

// ApplyDiscountCode attaches the discount code with the given code to the
// inspection. An empty code detaches the current one.
func (u *SettlementUseCase) ApplyDiscountCode(ctx context.Context, companyID, inspectionID, code string) (InspectionState, error) {
	code = NormalizeDiscountCode(code)
	var dc *entities.DiscountCode
	if code != "" {
		found, err := u.discounts.GetByCode(ctx, code)
		if err != nil {
			return InspectionState{}, err
		}
		if found.ID == "" {
			return InspectionState{}, ErrDiscountCodeNotFound
		}
		if !found.Active {
			return InspectionState{}, ErrDiscountCodeInactive
		}
		dc = &found
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		state, err := u.load(ctx, companyID, inspectionID)
		if err != nil {
			return InspectionState{}, err
		}

		discountCodeID := ""
		if dc != nil {
			discountCodeID = dc.ID
		}
		next := pricing.Calculate(pricing.InputFromInspection(state.Inspection, dc))

		updated, err := u.repo.SetDiscountCode(ctx, state.Inspection.ID, state.Inspection.Version, discountCodeID, next.IsPaid)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.log.Info("[discount][usecase] version conflict, retrying",
				zap.String("inspection_id", inspectionID), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return InspectionState{}, err
		}
		if updated.ID == "" {
			return InspectionState{}, ErrInspectionNotFound
		}
		u.log.Info("[discount][usecase] discount code applied",
			zap.String("inspection_id", inspectionID),
			zap.String("discount_code_id", discountCodeID),
			zap.Float64("total", next.Total))
		return InspectionState{Inspection: updated, DiscountCode: dc, Settlement: next}, nil
	}
	return InspectionState{}, ErrConcurrentModification
}

// load reads the inspection, checks company ownership when companyID is set and
// recomputes the settlement.
func (u *SettlementUseCase) load(ctx context.Context, companyID, inspectionID string) (InspectionState, error) {
	inspectionID = strings.TrimSpace(inspectionID)
	if inspectionID == "" {
		return InspectionState{}, ErrInvalidInspectionID
	}

	insp, err := u.repo.GetByID(ctx, inspectionID)
	if err != nil {
		u.log.Error("[settlement][usecase] failed loading inspection", zap.String("inspection_id", inspectionID), zap.Error(err))
		return InspectionState{}, err
	}
	if insp.ID == "" || insp.Deleted {
		return InspectionState{}, ErrInspectionNotFound
	}
	if companyID != "" && insp.CompanyID != companyID {
		u.log.Warn("[settlement][usecase] company mismatch",
			zap.String("inspection_id", inspectionID), zap.String("company_id", companyID))
		return InspectionState{}, ErrForbidden
	}

	dc, err := u.discountFor(ctx, insp)
	if err != nil {
		return InspectionState{}, err
	}

	s := pricing.Calculate(pricing.InputFromInspection(insp, dc))
	if s.OverpaidAmount > 0 {
		u.log.Warn("[settlement][usecase] ledger exceeds total",
			zap.String("inspection_id", insp.ID),
			zap.Float64("total", s.Total),
			zap.Float64("amount_paid", s.AmountPaid),
			zap.Float64("overpaid", s.OverpaidAmount))
	}
	return InspectionState{Inspection: insp, DiscountCode: dc, Settlement: s}, nil
}

func (u *SettlementUseCase) discountFor(ctx context.Context, insp entities.Inspection) (*entities.DiscountCode, error) {
	if insp.DiscountCodeID == "" || u.discounts == nil {
		return nil, nil
	}
	dc, err := u.discounts.GetByID(ctx, insp.DiscountCodeID)
	if err != nil {
		return nil, err
	}
	if dc.ID == "" {
		// A dangling reference discounts nothing rather than failing settlement.
		u.log.Warn("[settlement][usecase] discount code reference not found",
			zap.String("inspection_id", insp.ID), zap.String("discount_code_id", insp.DiscountCodeID))
		return nil, nil
	}
	return &dc, nil
}

// loadForClient loads an inspection for the client-view routes, which are
// authorized by the inspection's client view token instead of a company session.
func (u *SettlementUseCase) loadForClient(ctx context.Context, inspectionID, token string) (InspectionState, error) {
	token = strings.TrimSpace(token)
	if _, err := uuid.Parse(token); err != nil {
		return InspectionState{}, ErrInvalidClientToken
	}
	state, err := u.load(ctx, "", inspectionID)
	if err != nil {
		return InspectionState{}, err
	}
	stored := state.Inspection.ClientViewToken
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return InspectionState{}, ErrForbidden
	}
	return state, nil
}

// paymentInfoFrom rebuilds the payment_info cache from the ledger: the most
// recent entry plus the settled amount paid.
func paymentInfoFrom(history []entities.PaymentEntry, s entities.Settlement) entities.PaymentInfo {
	info := entities.PaymentInfo{AmountPaid: s.AmountPaid}
	var last *entities.PaymentEntry
	for i := range history {
		if last == nil || !history[i].PaidAt.Before(last.PaidAt) {
			last = &history[i]
		}
	}
	if last != nil {
		info.PaidAt = last.PaidAt
		info.Currency = last.Currency
		info.PaymentMethod = last.PaymentMethod
		info.ProcessorPaymentID = last.ProcessorPaymentID
	}
	return info
}

// notifier fires best-effort automation events. Dispatch failures are logged and
// never propagated to the caller.
type notifier struct {
	dispatcher interfaces.IAutomationDispatcher
	log        *zap.Logger
}

func (n notifier) fire(ctx context.Context, insp entities.Inspection, name entities.AutomationEventName, items []string, s *entities.Settlement) {
	if n.dispatcher == nil {
		return
	}
	event := entities.AutomationEvent{
		ID:           uuid.NewString(),
		Name:         name,
		InspectionID: insp.ID,
		CompanyID:    insp.CompanyID,
		Items:        items,
		Settlement:   s,
		OccurredAt:   time.Now().UTC(),
	}
	if err := n.dispatcher.Dispatch(ctx, event); err != nil {
		n.log.Error("[automation] dispatch failed",
			zap.String("event", string(name)),
			zap.String("inspection_id", insp.ID),
			zap.Error(err))
		return
	}
	n.log.Info("[automation] dispatched", zap.String("event", string(name)), zap.String("inspection_id", insp.ID))
}

// paidTransition fires PAYMENT_COMPLETED when an inspection with something to pay
// went from unpaid to paid.
func (n notifier) paidTransition(ctx context.Context, insp entities.Inspection, before, after entities.Settlement) {
	if before.IsPaid || !after.IsPaid || after.Total <= 0 {
		return
	}
	n.fire(ctx, insp, entities.EventPaymentCompleted, nil, &after)
}
