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

//go:generate mockgen -source=payment_history_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_history_usecase.go -package=mocks

// PaymentInput carries the caller-editable fields of a ledger entry.
// Zero PaidAt means now; empty Currency and PaymentMethod fall back to defaults.
type PaymentInput struct {
	Amount        float64
	PaidAt        time.Time
	Currency      string
	PaymentMethod string
}

// LedgerResult is returned by every ledger operation.
type LedgerResult struct {
	Entry          *entities.PaymentEntry
	PaymentHistory []entities.PaymentEntry
	Settlement     entities.Settlement
}

// IPaymentHistoryUseCase manages the manual payment ledger of an inspection.
type IPaymentHistoryUseCase interface {
	AddPayment(ctx context.Context, companyID, inspectionID string, in PaymentInput) (LedgerResult, error)
	EditPayment(ctx context.Context, companyID, inspectionID, paymentID string, in PaymentInput) (LedgerResult, error)
	DeletePayment(ctx context.Context, companyID, inspectionID, paymentID string) (LedgerResult, error)
	ListPayments(ctx context.Context, companyID, inspectionID string) (LedgerResult, error)
}

type PaymentHistoryUseCase struct {
	repo   interfaces.IInspectionRepository
	states *SettlementUseCase
	locker interfaces.ILedgerLocker
	notify notifier
	log    *zap.Logger
}

var _ IPaymentHistoryUseCase = (*PaymentHistoryUseCase)(nil)

func NewPaymentHistoryUseCase(repo interfaces.IInspectionRepository, discounts interfaces.IDiscountCodeRepository, locker interfaces.ILedgerLocker, dispatcher interfaces.IAutomationDispatcher, log *zap.Logger) *PaymentHistoryUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHistoryUseCase{
		repo:   repo,
		states: NewSettlementUseCase(repo, discounts, log),
		locker: locker,
		notify: notifier{dispatcher: dispatcher, log: log},
		log:    log,
	}
}

// ledgerChange computes the next ledger from the current state. A returned
// error aborts the operation without writing.
type ledgerChange func(state InspectionState, history []entities.PaymentEntry) (next []entities.PaymentEntry, entry *entities.PaymentEntry, err error)

func (u *PaymentHistoryUseCase) AddPayment(ctx context.Context, companyID, inspectionID string, in PaymentInput) (LedgerResult, error) {
	if !pricing.IsValidAmount(in.Amount) {
		return LedgerResult{}, ErrInvalidPaymentAmount
	}
	amount := pricing.Round2(in.Amount)
	if amount <= 0 {
		return LedgerResult{}, ErrInvalidPaymentAmount
	}

	return u.mutate(ctx, "add", companyID, inspectionID, func(state InspectionState, history []entities.PaymentEntry) ([]entities.PaymentEntry, *entities.PaymentEntry, error) {
		if amount > state.Settlement.RemainingBalance {
			return nil, nil, fmt.Errorf("%w: remaining balance is %.2f", ErrPaymentExceedsBalance, state.Settlement.RemainingBalance)
		}
		entry := newPaymentEntry(in, amount)
		return append(history, entry), &entry, nil
	})
}

func (u *PaymentHistoryUseCase) EditPayment(ctx context.Context, companyID, inspectionID, paymentID string, in PaymentInput) (LedgerResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return LedgerResult{}, ErrInvalidPaymentID
	}
	if !pricing.IsValidAmount(in.Amount) {
		return LedgerResult{}, ErrInvalidPaymentAmount
	}
	amount := pricing.Round2(in.Amount)
	if amount <= 0 {
		return LedgerResult{}, ErrInvalidPaymentAmount
	}

	return u.mutate(ctx, "edit", companyID, inspectionID, func(state InspectionState, history []entities.PaymentEntry) ([]entities.PaymentEntry, *entities.PaymentEntry, error) {
		idx := findEntry(history, paymentID)
		if idx < 0 {
			return nil, nil, ErrPaymentNotFound
		}
		old := history[idx]
		s := state.Settlement
		newPaid := pricing.Add(pricing.Sub(s.AmountPaid, old.Amount), amount)
		if newPaid > s.Total {
			// Equals remainingBalance + old amount unless the ledger is already overpaid.
			maxAllowed := pricing.Sub(s.Total, pricing.Sub(s.AmountPaid, old.Amount))
			if maxAllowed < 0 {
				maxAllowed = 0
			}
			return nil, nil, fmt.Errorf("%w: maximum allowed for this payment is %.2f", ErrPaymentExceedsTotal, maxAllowed)
		}

		edited := old
		edited.Amount = amount
		if !in.PaidAt.IsZero() {
			edited.PaidAt = in.PaidAt.UTC()
		}
		if c := normalizeCurrency(in.Currency); c != "" {
			edited.Currency = c
		}
		if m := strings.TrimSpace(in.PaymentMethod); m != "" {
			edited.PaymentMethod = m
		}
		next := append([]entities.PaymentEntry(nil), history...)
		next[idx] = edited
		return next, &edited, nil
	})
}

func (u *PaymentHistoryUseCase) DeletePayment(ctx context.Context, companyID, inspectionID, paymentID string) (LedgerResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return LedgerResult{}, ErrInvalidPaymentID
	}

	return u.mutate(ctx, "delete", companyID, inspectionID, func(_ InspectionState, history []entities.PaymentEntry) ([]entities.PaymentEntry, *entities.PaymentEntry, error) {
		idx := findEntry(history, paymentID)
		if idx < 0 {
			return nil, nil, ErrPaymentNotFound
		}
		removed := history[idx]
		next := make([]entities.PaymentEntry, 0, len(history)-1)
		next = append(next, history[:idx]...)
		next = append(next, history[idx+1:]...)
		return next, &removed, nil
	})
}

func (u *PaymentHistoryUseCase) ListPayments(ctx context.Context, companyID, inspectionID string) (LedgerResult, error) {
	state, err := u.states.load(ctx, companyID, inspectionID)
	if err != nil {
		return LedgerResult{}, err
	}
	history := state.Inspection.PaymentHistory
	if history == nil {
		history = []entities.PaymentEntry{}
	}
	return LedgerResult{PaymentHistory: history, Settlement: state.Settlement}, nil
}

// mutate runs a ledger change as an optimistic read-modify-write. The write is
// conditioned on the version that was read; on conflict the change is recomputed
// from a fresh read. When a locker is configured, writers of the same inspection
// are also serialized across instances.
func (u *PaymentHistoryUseCase) mutate(ctx context.Context, op, companyID, inspectionID string, change ledgerChange) (LedgerResult, error) {
	u.log.Info("[payment-history][usecase] "+op+" start", zap.String("inspection_id", inspectionID))

	if u.locker != nil {
		unlock, err := u.locker.Lock(ctx, inspectionID)
		if errors.Is(err, interfaces.ErrLockNotAcquired) {
			u.log.Warn("[payment-history][usecase] ledger busy", zap.String("inspection_id", inspectionID))
			return LedgerResult{}, ErrLedgerBusy
		}
		if err != nil {
			return LedgerResult{}, err
		}
		defer unlock(context.WithoutCancel(ctx))
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		state, err := u.states.load(ctx, companyID, inspectionID)
		if err != nil {
			return LedgerResult{}, err
		}

		history, entry, err := change(state, seedLedger(state.Inspection))
		if err != nil {
			u.log.Info("[payment-history][usecase] "+op+" rejected",
				zap.String("inspection_id", inspectionID), zap.Error(err))
			return LedgerResult{}, err
		}

		in := pricing.InputFromInspection(state.Inspection, state.DiscountCode)
		in.PaymentHistory = history
		in.CachedAmountPaid = 0
		next := pricing.Calculate(in)
		info := paymentInfoFrom(history, next)

		updated, err := u.repo.ReplaceLedger(ctx, state.Inspection.ID, state.Inspection.Version, history, info, next.IsPaid)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.log.Info("[payment-history][usecase] version conflict, retrying",
				zap.String("inspection_id", inspectionID), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			u.log.Error("[payment-history][usecase] "+op+" write failed", zap.String("inspection_id", inspectionID), zap.Error(err))
			return LedgerResult{}, err
		}
		if updated.ID == "" {
			return LedgerResult{}, ErrInspectionNotFound
		}

		u.notify.paidTransition(ctx, updated, state.Settlement, next)
		u.log.Info("[payment-history][usecase] "+op+" success",
			zap.String("inspection_id", inspectionID),
			zap.Float64("amount_paid", next.AmountPaid),
			zap.Float64("remaining", next.RemainingBalance),
			zap.Bool("is_paid", next.IsPaid))
		return LedgerResult{Entry: entry, PaymentHistory: history, Settlement: next}, nil
	}

	u.log.Warn("[payment-history][usecase] "+op+" gave up after conflicts", zap.String("inspection_id", inspectionID))
	return LedgerResult{}, ErrConcurrentModification
}

// seedLedger returns a copy of the ledger, seeded by legacyEntries when empty.
func seedLedger(insp entities.Inspection) []entities.PaymentEntry {
	if len(insp.PaymentHistory) > 0 {
		return append([]entities.PaymentEntry(nil), insp.PaymentHistory...)
	}
	return append([]entities.PaymentEntry{}, legacyEntries(insp)...)
}

// legacyEntries turns the payment_info cache of an inspection paid before the
// ledger existed into its first ledger entry, so later writes do not drop it.
// It returns nil when the ledger already has entries or the cache holds no amount.
func legacyEntries(insp entities.Inspection) []entities.PaymentEntry {
	info := insp.PaymentInfo
	if len(insp.PaymentHistory) > 0 || info == nil || !pricing.IsValidAmount(info.AmountPaid) {
		return nil
	}
	entry := entities.PaymentEntry{
		ID:                 uuid.NewString(),
		Amount:             pricing.Round2(info.AmountPaid),
		PaidAt:             info.PaidAt,
		Currency:           normalizeCurrency(info.Currency),
		PaymentMethod:      strings.TrimSpace(info.PaymentMethod),
		ProcessorPaymentID: info.ProcessorPaymentID,
	}
	if entry.PaidAt.IsZero() {
		entry.PaidAt = insp.UpdatedAt
	}
	if entry.Currency == "" {
		entry.Currency = entities.DefaultCurrency
	}
	if entry.PaymentMethod == "" {
		entry.PaymentMethod = entities.DefaultPaymentMethod
	}
	return []entities.PaymentEntry{entry}
}

func newPaymentEntry(in PaymentInput, amount float64) entities.PaymentEntry {
	e := entities.PaymentEntry{
		ID:            uuid.NewString(),
		Amount:        amount,
		PaidAt:        in.PaidAt.UTC(),
		Currency:      normalizeCurrency(in.Currency),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
	}
	if in.PaidAt.IsZero() {
		e.PaidAt = time.Now().UTC()
	}
	if e.Currency == "" {
		e.Currency = entities.DefaultCurrency
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = entities.DefaultPaymentMethod
	}
	return e
}

func findEntry(history []entities.PaymentEntry, paymentID string) int {
	for i, p := range history {
		if p.ID == paymentID {
			return i
		}
	}
	return -1
}

func normalizeCurrency(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
