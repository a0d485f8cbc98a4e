package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/service"
)

func testServer() *Server {
	svc := service.New(nil, nil, nil, "correct-secret", "", hclog.NewNullLogger())
	return New(Config{AllowedOrigins: []string{"*"}}, svc, "0.1.0", hclog.NewNullLogger())
}

func TestVersionRouteNeedsNoAuth(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNamespaceRouteRejectsMissingAuth(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/namespaces", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNamespaceRouteRejectsWrongSecret(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/namespaces", nil)
	req.Header.Set("Authorization", "Bearer wrong-secret")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
