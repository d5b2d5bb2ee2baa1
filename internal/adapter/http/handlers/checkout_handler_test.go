package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pazes_checkout/internal/adapter/http/handlers/mocks"
	"pazes_checkout/internal/domain/contract"
	"pazes_checkout/internal/domain/pricing"
	"pazes_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validCheckoutBody = `{
	"name": "Maria Silva",
	"email": "maria@example.com",
	"cpf": "12345678909",
	"phone": "11999990000",
	"modality": "Online",
	"paymentMethod": "BOLETO",
	"contract": true,
	"contractVersion": "v1.0",
	"contractHash": "88559760E4DAF2CEF94D9F5B7069CBCC9A5196106CD771227DB2500EFFBEDD0E"
}`

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.POST("/v1/checkout", h.Checkout)
	return r
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return("https://inv/1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(validCheckoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["paymentUrl"] != "https://inv/1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"name":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain failures map to 400", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
		}{
			{"contract rejected", contract.ErrContractVersionMismatch},
			{"unknown modality", pricing.ErrUnknownModality},
			{"unknown price entry", pricing.ErrUnknownPriceEntry},
			{"installment limit", pricing.ErrInstallmentLimitExceeded},
			{"invalid installment plan", usecase.ErrInvalidInstallmentPlan},
			{"missing fields", usecase.ErrMissingRequiredFields},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				r := newCheckoutRouter(NewCheckoutHandler(uc))

				uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return("", tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(validCheckoutBody))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
			})
		}
	})

	t.Run("gateway failure maps to 500 with generic message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return("", usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(validCheckoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("unavailable")) {
			t.Fatalf("gateway cause leaked to the client: %s", w.Body.String())
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})
}
