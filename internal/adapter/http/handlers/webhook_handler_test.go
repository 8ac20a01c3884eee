package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/gbzindabb123-ops/mlb2/internal/adapter/http/handlers/mocks"
	"github.com/gbzindabb123-ops/mlb2/internal/usecase"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/mercadopago/webhook", h.Receive)
	return r
}

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("acknowledges with empty 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/mercadopago/webhook",
			bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("extracts query params and signature header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		want := usecase.Notification{
			Type:      "payment",
			DataID:    "123",
			Timestamp: "1704908010",
			Signature: "abcdef",
			RequestID: "req-1",
		}
		uc.EXPECT().Handle(gomock.Any(), want).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/mercadopago/webhook?type=payment&data.id=123", nil)
		req.Header.Set("x-signature", "ts=1704908010,v1=abcdef")
		req.Header.Set("x-request-id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body fields fill in missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), gomock.Cond(func(x any) bool {
			n, ok := x.(usecase.Notification)
			return ok && n.Type == "payment" && n.DataID == "456" && n.Action == "payment.updated"
		})).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/mercadopago/webhook",
			bytes.NewBufferString(`{"type":"payment","action":"payment.updated","data":{"id":"456"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("signature mismatch returns 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(usecase.ErrInvalidSignature)

		req := httptest.NewRequest(http.MethodPost, "/api/mercadopago/webhook?type=payment&data.id=123", nil)
		req.Header.Set("x-signature", "ts=1704908010,v1=wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non-signature handling errors still acknowledge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(assertableError{})

		req := httptest.NewRequest(http.MethodPost, "/api/mercadopago/webhook",
			bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

type assertableError struct{}

func (assertableError) Error() string { return "handling failed" }

func TestParseSignatureHeader(t *testing.T) {
	ts, v1 := parseSignatureHeader("ts=1704908010,v1=618c85345248dd820d5fd456117c2ab2ef8eda45a0282ff693eac24131a5e839")
	if ts != "1704908010" {
		t.Fatalf("unexpected ts %q", ts)
	}
	if v1 != "618c85345248dd820d5fd456117c2ab2ef8eda45a0282ff693eac24131a5e839" {
		t.Fatalf("unexpected v1 %q", v1)
	}

	ts, v1 = parseSignatureHeader("")
	if ts != "" || v1 != "" {
		t.Fatalf("expected empty parts, got %q %q", ts, v1)
	}

	ts, v1 = parseSignatureHeader(" ts=1 , v1=2 ")
	if ts != "1" || v1 != "2" {
		t.Fatalf("expected trimmed parts, got %q %q", ts, v1)
	}
}
