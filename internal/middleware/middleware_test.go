package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChain_AppliesInOrder(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("H"))
	})

	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("1"))
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("2"))
			next.ServeHTTP(w, r)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	Chain(handler, mw1, mw2).ServeHTTP(rr, req)

	if rr.Body.String() != "12H" {
		t.Errorf("expected '12H', got %q", rr.Body.String())
	}
}

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()

	var captured string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rr, req)

	if captured == "" {
		t.Error("expected a generated request ID in context")
	}
	if rr.Header().Get("X-Request-ID") != captured {
		t.Error("response header should carry the same request ID")
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	t.Parallel()

	var captured string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "incoming-id")
	rr := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rr, req)

	if captured != "incoming-id" {
		t.Errorf("expected incoming ID to be preserved, got %q", captured)
	}
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	Recovery(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	Logger(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status to pass through, got %d", rr.Code)
	}
}
