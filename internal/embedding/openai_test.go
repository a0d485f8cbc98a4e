package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doculens/doculens/internal/apperror"
)

func TestNewOpenAIRejectsUnknownModel(t *testing.T) {
	if _, err := NewOpenAI("key", "not-a-real-model"); err == nil {
		t.Fatal("NewOpenAI with unknown model, want error")
	} else if ae, ok := apperror.As(err); !ok || ae.Kind != apperror.BadRequest {
		t.Fatalf("error = %v, want BadRequest", err)
	}
}

func TestOpenAIDimensionTable(t *testing.T) {
	e, err := NewOpenAI("key", "text-embedding-3-large")
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}
	if e.Dimension() != 3072 {
		t.Errorf("Dimension() = %d, want 3072", e.Dimension())
	}
}

func TestGenerateHitsEndpointAndParsesResponse(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
		})
	}))
	defer srv.Close()

	e, err := NewOpenAI("testkey", "text-embedding-3-small")
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}
	e.client = srv.Client()
	e.endpoint = srv.URL

	vec, err := e.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("len(vec) = %d, want 3", len(vec))
	}
	if gotAuth != "Bearer testkey" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
}

func TestGenerateUpstreamUnavailableOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e, err := NewOpenAI("testkey", "text-embedding-3-small")
	if err != nil {
		t.Fatalf("NewOpenAI() error: %v", err)
	}
	e.client = srv.Client()
	e.endpoint = srv.URL

	_, err = e.Generate(context.Background(), "hello")
	if ae, ok := apperror.As(err); !ok || ae.Kind != apperror.UpstreamUnavailable {
		t.Fatalf("error = %v, want UpstreamUnavailable", err)
	}
}
