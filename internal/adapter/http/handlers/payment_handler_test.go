package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"madinah_tours/internal/adapter/http/handlers/mocks"
	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_StartCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/payments/session", h.StartCheckoutSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/session", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing redirect urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/payments/session", h.StartCheckoutSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/session", bytes.NewBufferString(`{"booking_id":"bk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		checkout.EXPECT().StartCheckout(gomock.Any(), "bk-missing", "https://ok/s", "https://ok/c").
			Return(interfaces.CheckoutSession{}, usecase.ErrBookingNotFound)

		r := gin.New()
		r.POST("/v1/payments/session", h.StartCheckoutSession)

		body := `{"booking_id":"bk-missing","success_url":"https://ok/s","cancel_url":"https://ok/c"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("checkout already in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		checkout.EXPECT().StartCheckout(gomock.Any(), "bk-1", "https://ok/s", "https://ok/c").
			Return(interfaces.CheckoutSession{}, usecase.ErrCheckoutInProgress)

		r := gin.New()
		r.POST("/v1/payments/session", h.StartCheckoutSession)

		body := `{"booking_id":"bk-1","success_url":"https://ok/s","cancel_url":"https://ok/c"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		checkout.EXPECT().StartCheckout(gomock.Any(), "bk-1", "https://ok/s", "https://ok/c").
			Return(interfaces.CheckoutSession{SessionID: "sess-1", RedirectURL: "https://mp/redirect"}, nil)

		r := gin.New()
		r.POST("/v1/payments/session", h.StartCheckoutSession)

		body := `{"booking_id":"bk-1","success_url":"https://ok/s","cancel_url":"https://ok/c"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["session_id"] != "sess-1" || got["redirect_url"] != "https://mp/redirect" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}

func TestPaymentHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		reconcile.EXPECT().CheckStatus(gomock.Any(), "sess-ghost").
			Return(entities.TransactionStatus(""), entities.OutcomeNoOp, usecase.ErrTransactionNotFound)

		r := gin.New()
		r.GET("/v1/payments/status/:session_id", h.GetPaymentStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status/sess-ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		reconcile.EXPECT().CheckStatus(gomock.Any(), "sess-1").
			Return(entities.TransactionStatusPaid, entities.OutcomeConfirmed, nil)

		r := gin.New()
		r.GET("/v1/payments/status/:session_id", h.GetPaymentStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/status/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["status"] != "paid" || got["outcome"] != "confirmed" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}

func TestPaymentHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		reconcile.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), "ts=1,v1=bad").
			Return(entities.OutcomeNoOp, interfaces.ErrInvalidWebhookSignature)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"type":"payment"}`))
		req.Header.Set("x-signature", "ts=1,v1=bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown session is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		reconcile.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.OutcomeNoOp, usecase.ErrTransactionNotFound)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"type":"payment"}`))
		req.Header.Set("x-signature", "ts=1,v1=sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["received"] != true {
			t.Fatalf("expected acknowledgement, got %v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIPaymentReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		reconcile.EXPECT().HandleWebhook(gomock.Any(), []byte(`{"type":"payment"}`), "ts=1,v1=sig").
			Return(entities.OutcomeConfirmed, nil)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"type":"payment"}`))
		req.Header.Set("x-signature", "ts=1,v1=sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["outcome"] != "confirmed" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}
