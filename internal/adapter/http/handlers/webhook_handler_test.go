package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pazes_checkout/internal/adapter/http/handlers/mocks"
	"pazes_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const webhookToken = "whk_secret_123"

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.POST("/v1/webhook", h.Receive)
	return r
}

func TestWebhookHandler_Receive_Authentication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepts the token under any header spelling", func(t *testing.T) {
		headerNames := []string{"Asaas-Access-Token", "asaas-access-token", "ASAAS_ACCESS_TOKEN"}

		for _, name := range headerNames {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIWebhookUseCase(ctrl)
				r := newWebhookRouter(NewWebhookHandler(uc, webhookToken, "asaas-access-token"))

				uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(usecase.ReconciliationOutcome{Processed: true})

				req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(`{}`))
				req.Header[name] = []string{webhookToken}
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusOK {
					t.Fatalf("expected 200 for header %q, got %d", name, w.Code)
				}
			})
		}
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, webhookToken, "asaas-access-token"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Asaas-Access-Token", "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, webhookToken, "asaas-access-token"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects everything when no token is configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, "", "asaas-access-token"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Asaas-Access-Token", "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_Receive_Acknowledgement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ignored outcome still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, webhookToken, "asaas-access-token"))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(usecase.ReconciliationOutcome{Ignored: true, Reason: usecase.ReasonSubsequentInstallment})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(`{"event":"PAYMENT_CONFIRMED"}`))
		req.Header.Set("Asaas-Access-Token", webhookToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["received"] != true || body["ignored"] != true || body["reason"] != usecase.ReasonSubsequentInstallment {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("swallowed failure still answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, webhookToken, "asaas-access-token"))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(usecase.ReconciliationOutcome{})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(`{"event":"PAYMENT_CONFIRMED"}`))
		req.Header.Set("Asaas-Access-Token", webhookToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"received":true`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, webhookToken, "asaas-access-token"))

		req := httptest.NewRequest(http.MethodGet, "/v1/webhook", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})
}
