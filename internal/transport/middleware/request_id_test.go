package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/shmoon-kr/gqlauth/pkg/ctxutil"
)

func TestRequestID_Generated(t *testing.T) {
	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	})

	wrapped := RequestID()(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if gotID == "" {
		t.Fatal("expected request ID in context")
	}
	if _, err := uuid.Parse(gotID); err != nil {
		t.Errorf("expected generated ID to be a UUID, got %q", gotID)
	}
	if hdr := rec.Header().Get("X-Request-Id"); hdr != gotID {
		t.Errorf("expected X-Request-Id header %q, got %q", gotID, hdr)
	}
}

func TestRequestID_HonorsInbound(t *testing.T) {
	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	})

	wrapped := RequestID()(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "inbound-id-123")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if gotID != "inbound-id-123" {
		t.Errorf("expected inbound request ID to be kept, got %q", gotID)
	}
	if hdr := rec.Header().Get("X-Request-Id"); hdr != "inbound-id-123" {
		t.Errorf("expected X-Request-Id header echoed, got %q", hdr)
	}
}
