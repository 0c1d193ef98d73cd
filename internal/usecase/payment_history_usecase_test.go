package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"
	mock_interfaces "inspection_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentHistoryUseCase_AddPayment(t *testing.T) {
	t.Run("invalid amounts", func(t *testing.T) {
		uc := NewPaymentHistoryUseCase(nil, nil, nil, nil, nil)
		for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1), 0.001} {
			_, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: amount})
			if !errors.Is(err, ErrInvalidPaymentAmount) {
				t.Fatalf("amount %v: expected ErrInvalidPaymentAmount, got %v", amount, err)
			}
		}
	})

	t.Run("rejects overpayment without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(withPayments(sampleInspection(), 200), nil)

		_, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 25.01})
		if !errors.Is(err, ErrPaymentExceedsBalance) {
			t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
		}
	})

	t.Run("completes the balance and fires payment completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIAutomationDispatcher(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, dispatcher, nil)

		insp := withPayments(sampleInspection(), 200)
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(insp, nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, _ string, _ int64, history []entities.PaymentEntry, info entities.PaymentInfo, _ bool) (entities.Inspection, error) {
				if len(history) != 2 || history[1].Amount != 25 || history[1].Currency != "usd" || history[1].PaymentMethod != "other" {
					t.Fatalf("unexpected history: %+v", history)
				}
				if info.AmountPaid != 225 {
					t.Fatalf("expected cached amount 225, got %v", info.AmountPaid)
				}
				insp.PaymentHistory = history
				return insp, nil
			})
		dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.AutomationEvent) error {
			if e.Name != entities.EventPaymentCompleted || e.InspectionID != testInspectionID {
				t.Fatalf("unexpected event: %+v", e)
			}
			return nil
		})

		res, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 25})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Settlement.IsPaid || res.Settlement.RemainingBalance != 0 || res.Entry == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("legacy cached amount is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		insp := sampleInspection()
		insp.PaymentInfo = &entities.PaymentInfo{AmountPaid: 50, PaymentMethod: "check"}
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(insp, nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, _ string, _ int64, history []entities.PaymentEntry, info entities.PaymentInfo, _ bool) (entities.Inspection, error) {
				if len(history) != 2 || history[0].Amount != 50 || history[0].PaymentMethod != "check" {
					t.Fatalf("expected seeded legacy entry, got %+v", history)
				}
				if info.AmountPaid != 75 {
					t.Fatalf("expected cached amount 75, got %v", info.AmountPaid)
				}
				return insp, nil
			})

		res, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 25})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Settlement.AmountPaid != 75 || res.Settlement.RemainingBalance != 150 {
			t.Fatalf("unexpected settlement: %+v", res.Settlement)
		}
	})

	t.Run("retries on version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		first := sampleInspection()
		second := withPayments(sampleInspection(), 100)
		second.Version = 4
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(first, nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Inspection{}, interfaces.ErrVersionConflict)
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(second, nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(4), gomock.Any(), gomock.Any(), gomock.Any()).Return(second, nil)

		res, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 50})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.PaymentHistory) != 2 || res.Settlement.AmountPaid != 150 {
			t.Fatalf("expected change recomputed on the fresh ledger, got %+v", res)
		}
	})

	t.Run("balance check uses the fresh read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		second := withPayments(sampleInspection(), 200)
		second.Version = 4
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(sampleInspection(), nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Inspection{}, interfaces.ErrVersionConflict)
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(second, nil)

		_, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 50})
		if !errors.Is(err, ErrPaymentExceedsBalance) {
			t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
		}
	})
}

func TestPaymentHistoryUseCase_Lock(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		locker := mock_interfaces.NewMockILedgerLocker(ctrl)
		uc := NewPaymentHistoryUseCase(nil, nil, locker, nil, nil)

		locker.EXPECT().Lock(gomock.Any(), testInspectionID).Return(nil, interfaces.ErrLockNotAcquired)

		_, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 10})
		if !errors.Is(err, ErrLedgerBusy) {
			t.Fatalf("expected ErrLedgerBusy, got %v", err)
		}
	})

	t.Run("released after the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		locker := mock_interfaces.NewMockILedgerLocker(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, locker, nil, nil)

		released := false
		locker.EXPECT().Lock(gomock.Any(), testInspectionID).Return(func(context.Context) { released = true }, nil)
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(sampleInspection(), nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Any(), gomock.Any(), false).Return(sampleInspection(), nil)

		if _, err := uc.AddPayment(context.Background(), testCompanyID, testInspectionID, PaymentInput{Amount: 10}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !released {
			t.Fatalf("expected lock to be released")
		}
	})
}

func TestPaymentHistoryUseCase_EditPayment(t *testing.T) {
	t.Run("missing entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(withPayments(sampleInspection(), 100), nil)

		_, err := uc.EditPayment(context.Background(), testCompanyID, testInspectionID, "pay-z", PaymentInput{Amount: 10})
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("exceeding total reports the maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(withPayments(sampleInspection(), 100, 50), nil)

		_, err := uc.EditPayment(context.Background(), testCompanyID, testInspectionID, "pay-b", PaymentInput{Amount: 130})
		if !errors.Is(err, ErrPaymentExceedsTotal) {
			t.Fatalf("expected ErrPaymentExceedsTotal, got %v", err)
		}
		if !strings.Contains(err.Error(), "125.00") {
			t.Fatalf("expected max allowed 125.00 in message, got %q", err.Error())
		}
	})

	t.Run("overpaid ledger reports what the other entries leave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		// 200 + 50 against a total of 225.
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(withPayments(sampleInspection(), 200, 50), nil)

		_, err := uc.EditPayment(context.Background(), testCompanyID, testInspectionID, "pay-b", PaymentInput{Amount: 40})
		if !errors.Is(err, ErrPaymentExceedsTotal) {
			t.Fatalf("expected ErrPaymentExceedsTotal, got %v", err)
		}
		if !strings.Contains(err.Error(), "25.00") {
			t.Fatalf("expected max allowed 25.00 in message, got %q", err.Error())
		}
	})

	t.Run("updates amount and keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		insp := withPayments(sampleInspection(), 100, 50)
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(insp, nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, _ string, _ int64, history []entities.PaymentEntry, _ entities.PaymentInfo, _ bool) (entities.Inspection, error) {
				if len(history) != 2 || history[1].ID != "pay-b" || history[1].Amount != 125 || history[1].PaymentMethod != "card" {
					t.Fatalf("unexpected history: %+v", history)
				}
				return insp, nil
			})

		res, err := uc.EditPayment(context.Background(), testCompanyID, testInspectionID, "pay-b", PaymentInput{Amount: 125})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Settlement.IsPaid {
			t.Fatalf("expected paid settlement, got %+v", res.Settlement)
		}
		if insp.PaymentHistory[1].Amount != 50 {
			t.Fatalf("loaded ledger must not be mutated in place")
		}
	})
}

func TestPaymentHistoryUseCase_DeletePayment(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentHistoryUseCase(nil, nil, nil, nil, nil)
		_, err := uc.DeletePayment(context.Background(), testCompanyID, testInspectionID, "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("last entry resets the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
		uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

		insp := withPayments(sampleInspection(), 225)
		insp.PaymentInfo = &entities.PaymentInfo{AmountPaid: 225}
		insp.IsPaid = true
		repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(insp, nil)
		repo.EXPECT().ReplaceLedger(gomock.Any(), testInspectionID, int64(3), gomock.Len(0), entities.PaymentInfo{}, false).Return(insp, nil)

		res, err := uc.DeletePayment(context.Background(), testCompanyID, testInspectionID, "pay-a")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Settlement.AmountPaid != 0 || res.Settlement.IsPaid || res.Settlement.RemainingBalance != 225 {
			t.Fatalf("unexpected settlement: %+v", res.Settlement)
		}
	})
}

func TestPaymentHistoryUseCase_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInspectionRepository(ctrl)
	uc := NewPaymentHistoryUseCase(repo, nil, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), testInspectionID).Return(sampleInspection(), nil)

	res, err := uc.ListPayments(context.Background(), testCompanyID, testInspectionID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PaymentHistory == nil || len(res.PaymentHistory) != 0 || res.Settlement.Total != 225 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
