package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsServe(t *testing.T, m *CORSMiddleware, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/v1/members", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example.com"})

	rec := corsServe(t, m, http.MethodGet, "https://app.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("Allow-Origin = %q, want the configured origin", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("Vary = %q, want Origin", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example.com"})

	rec := corsServe(t, m, http.MethodGet, "https://evil.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Allow-Origin = %q, want it unset for an unknown origin", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, request itself should still be served", rec.Code)
	}
}

func TestCORSEmptyConfigAllowsAll(t *testing.T) {
	m := NewCORSMiddleware(nil)

	rec := corsServe(t, m, http.MethodGet, "https://anywhere.example.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Allow-Origin = %q, want *", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://app.example.com"})

	rec := corsServe(t, m, http.MethodOptions, "https://app.example.com")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("preflight response is missing Allow-Methods")
	}
}
