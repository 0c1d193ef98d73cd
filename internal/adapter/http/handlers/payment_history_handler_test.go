package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"inspection_billing/internal/adapter/http/handlers/mocks"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase"

	"go.uber.org/mock/gomock"
)

func newPaymentHistoryRouter(t *testing.T) (*mocks.MockIPaymentHistoryUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentHistoryUseCase(ctrl)
	h := NewPaymentHistoryHandler(uc, nil)

	r := newTestRouter()
	g := r.Group("/v1", withCompany(testCompanyID))
	g.POST("/inspections/:id/payment-history", h.AddPayment)
	g.PUT("/inspections/:id/payment-history", h.EditPayment)
	g.DELETE("/inspections/:id/payment-history", h.DeletePayment)
	g.GET("/inspections/:id/payment-history", h.ListPayments)
	return uc, r
}

func ledgerWith(entries ...entities.PaymentEntry) usecase.LedgerResult {
	paid := 0.0
	for _, e := range entries {
		paid += e.Amount
	}
	res := usecase.LedgerResult{
		PaymentHistory: entries,
		Settlement:     entities.Settlement{Subtotal: 225, DiscountAmount: 15, Total: 210, AmountPaid: paid, RemainingBalance: 210 - paid},
	}
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		res.Entry = &last
	}
	return res
}

func TestPaymentHistoryHandler_AddPayment(t *testing.T) {
	t.Run("missing amount", func(t *testing.T) {
		_, r := newPaymentHistoryRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/inspections/insp-1/payment-history", `{"currency":"usd"}`)
		body := expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
		if body["error"] != "amount is required" {
			t.Fatalf("unexpected message %v", body["error"])
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().AddPayment(gomock.Any(), testCompanyID, testInspectionID, usecase.PaymentInput{Amount: 0}).Return(usecase.LedgerResult{}, usecase.ErrInvalidPaymentAmount)

		w := performRequest(r, http.MethodPost, "/v1/inspections/insp-1/payment-history", `{"amount":0}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_AMOUNT")
	})

	t.Run("exceeds remaining balance", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().AddPayment(gomock.Any(), testCompanyID, testInspectionID, gomock.Any()).
			Return(usecase.LedgerResult{}, fmt.Errorf("%w: remaining balance is %.2f", usecase.ErrPaymentExceedsBalance, 160.0))

		w := performRequest(r, http.MethodPost, "/v1/inspections/insp-1/payment-history", `{"amount":200}`)
		body := expectError(t, w, http.StatusBadRequest, "PAYMENT_EXCEEDS_BALANCE")
		if body["error"] != "payment would exceed remaining balance: remaining balance is 160.00" {
			t.Fatalf("unexpected message %v", body["error"])
		}
	})

	t.Run("ledger busy", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().AddPayment(gomock.Any(), testCompanyID, testInspectionID, gomock.Any()).Return(usecase.LedgerResult{}, usecase.ErrLedgerBusy)

		w := performRequest(r, http.MethodPost, "/v1/inspections/insp-1/payment-history", `{"amount":20}`)
		expectError(t, w, http.StatusConflict, "LEDGER_BUSY")
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		paidAt := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
		uc.EXPECT().AddPayment(gomock.Any(), testCompanyID, testInspectionID, usecase.PaymentInput{Amount: 50, PaidAt: paidAt, Currency: "usd", PaymentMethod: "cash"}).
			Return(ledgerWith(entities.PaymentEntry{ID: "pay-a", Amount: 50, PaidAt: paidAt, Currency: "usd", PaymentMethod: "cash"}), nil)

		w := performRequest(r, http.MethodPost, "/v1/inspections/insp-1/payment-history",
			`{"amount":50,"paidAt":"2026-03-01T10:00:00-03:00","currency":"usd","paymentMethod":"cash"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["success"] != true {
			t.Fatalf("expected success, got %v", body)
		}
		if len(body["paymentHistory"].([]any)) != 1 {
			t.Fatalf("unexpected ledger %v", body["paymentHistory"])
		}
		if body["settlement"].(map[string]any)["remainingBalance"] != 160.0 {
			t.Fatalf("unexpected settlement %v", body["settlement"])
		}
	})
}

func TestPaymentHistoryHandler_EditPayment(t *testing.T) {
	t.Run("missing payment id", func(t *testing.T) {
		_, r := newPaymentHistoryRouter(t)
		w := performRequest(r, http.MethodPut, "/v1/inspections/insp-1/payment-history", `{"amount":10}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("unknown payment", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().EditPayment(gomock.Any(), testCompanyID, testInspectionID, "pay-x", gomock.Any()).Return(usecase.LedgerResult{}, usecase.ErrPaymentNotFound)

		w := performRequest(r, http.MethodPut, "/v1/inspections/insp-1/payment-history", `{"paymentId":"pay-x","amount":10}`)
		expectError(t, w, http.StatusNotFound, "PAYMENT_NOT_FOUND")
	})

	t.Run("exceeds total states maximum", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().EditPayment(gomock.Any(), testCompanyID, testInspectionID, "pay-a", gomock.Any()).
			Return(usecase.LedgerResult{}, fmt.Errorf("%w: maximum allowed for this payment is %.2f", usecase.ErrPaymentExceedsTotal, 210.0))

		w := performRequest(r, http.MethodPut, "/v1/inspections/insp-1/payment-history", `{"paymentId":"pay-a","amount":500}`)
		body := expectError(t, w, http.StatusBadRequest, "PAYMENT_EXCEEDS_TOTAL")
		if body["error"] != "payment would exceed total: maximum allowed for this payment is 210.00" {
			t.Fatalf("unexpected message %v", body["error"])
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().EditPayment(gomock.Any(), testCompanyID, testInspectionID, "pay-a", usecase.PaymentInput{Amount: 70}).
			Return(ledgerWith(entities.PaymentEntry{ID: "pay-a", Amount: 70}), nil)

		w := performRequest(r, http.MethodPut, "/v1/inspections/insp-1/payment-history", `{"paymentId":" pay-a ","amount":70}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHistoryHandler_DeletePayment(t *testing.T) {
	t.Run("missing payment id", func(t *testing.T) {
		_, r := newPaymentHistoryRouter(t)
		w := performRequest(r, http.MethodDelete, "/v1/inspections/insp-1/payment-history", "")
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("unknown payment", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().DeletePayment(gomock.Any(), testCompanyID, testInspectionID, "pay-x").Return(usecase.LedgerResult{}, usecase.ErrPaymentNotFound)

		w := performRequest(r, http.MethodDelete, "/v1/inspections/insp-1/payment-history?paymentId=pay-x", "")
		expectError(t, w, http.StatusNotFound, "PAYMENT_NOT_FOUND")
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newPaymentHistoryRouter(t)
		uc.EXPECT().DeletePayment(gomock.Any(), testCompanyID, testInspectionID, "pay-a").Return(ledgerWith(), nil)

		w := performRequest(r, http.MethodDelete, "/v1/inspections/insp-1/payment-history?paymentId=pay-a", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeJSON(t, w)
		if len(body["paymentHistory"].([]any)) != 0 {
			t.Fatalf("expected empty ledger, got %v", body["paymentHistory"])
		}
		if _, ok := body["payment"]; ok {
			t.Fatalf("delete must not return a payment")
		}
	})
}

func TestPaymentHistoryHandler_ListPayments(t *testing.T) {
	uc, r := newPaymentHistoryRouter(t)
	res := ledgerWith(entities.PaymentEntry{ID: "pay-a", Amount: 50}, entities.PaymentEntry{ID: "pay-b", Amount: 60})
	res.Entry = nil
	uc.EXPECT().ListPayments(gomock.Any(), testCompanyID, testInspectionID).Return(res, nil)

	w := performRequest(r, http.MethodGet, "/v1/inspections/insp-1/payment-history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeJSON(t, w)
	if len(body["paymentHistory"].([]any)) != 2 {
		t.Fatalf("unexpected ledger %v", body["paymentHistory"])
	}
}
