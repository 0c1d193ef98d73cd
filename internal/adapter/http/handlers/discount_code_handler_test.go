package handlers

import (
	"net/http"
	"testing"

	"inspection_billing/internal/adapter/http/handlers/mocks"
	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase"

	"go.uber.org/mock/gomock"
)

func newDiscountCodeRouter(t *testing.T) (*mocks.MockIDiscountCodeUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDiscountCodeUseCase(ctrl)
	h := NewDiscountCodeHandler(uc, nil)

	r := newTestRouter()
	r.POST("/v1/discount-codes", h.CreateDiscountCode)
	r.GET("/v1/discount-codes/:code", h.GetDiscountCode)
	return uc, r
}

func TestDiscountCodeHandler_Create(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		_, r := newDiscountCodeRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/discount-codes", `{"code":"X","type":"bogus","value":5}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("duplicate", func(t *testing.T) {
		uc, r := newDiscountCodeRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DiscountCode{}, usecase.ErrDiscountCodeAlreadyExists)

		w := performRequest(r, http.MethodPost, "/v1/discount-codes", `{"code":"SPRING10","type":"percent","value":10}`)
		expectError(t, w, http.StatusConflict, "DISCOUNT_CODE_ALREADY_EXISTS")
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newDiscountCodeRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, d entities.DiscountCode) (entities.DiscountCode, error) {
			if !d.Active || d.Type != entities.DiscountTypePercent || len(d.AppliesToAddOns) != 1 || d.AppliesToAddOns[0].AddonName != "Radon" {
				t.Fatalf("unexpected discount code %+v", d)
			}
			d.ID = "dc-1"
			d.Code = "SPRING10"
			return d, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/discount-codes",
			`{"code":"spring10","type":"percent","value":10,"appliesToAddOns":[{"service":"s-1","addonName":"Radon"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["id"] != "dc-1" || body["code"] != "SPRING10" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestDiscountCodeHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, r := newDiscountCodeRouter(t)
		uc.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.DiscountCode{}, usecase.ErrDiscountCodeNotFound)

		w := performRequest(r, http.MethodGet, "/v1/discount-codes/NOPE", "")
		expectError(t, w, http.StatusNotFound, "DISCOUNT_CODE_NOT_FOUND")
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newDiscountCodeRouter(t)
		uc.EXPECT().GetByCode(gomock.Any(), "SPRING10").Return(entities.DiscountCode{ID: "dc-1", Code: "SPRING10", Type: entities.DiscountTypePercent, Value: 10, Active: true}, nil)

		w := performRequest(r, http.MethodGet, "/v1/discount-codes/SPRING10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	r := newTestRouter()
	r.GET("/v1/ping", Ping)
	w := performRequest(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || decodeJSON(t, w)["message"] != "pong" {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}
