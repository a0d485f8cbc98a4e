package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSchemaSlugDeterministic(t *testing.T) {
	id := uuid.New()
	slug1 := SchemaSlug(id)
	slug2 := SchemaSlug(id)
	if slug1 != slug2 {
		t.Fatalf("SchemaSlug not deterministic: %s != %s", slug1, slug2)
	}

	want := "ns_" + strings.ReplaceAll(id.String(), "-", "")[:12]
	if slug1 != want {
		t.Fatalf("SchemaSlug() = %s, want %s", slug1, want)
	}
	if !ValidSchemaSlug(slug1) {
		t.Fatalf("SchemaSlug() produced an invalid slug: %s", slug1)
	}
}

func TestObjectKey(t *testing.T) {
	docID := uuid.New()
	key := ObjectKey("ns_abcdef012345", docID)
	want := "ns_abcdef012345/" + docID.String() + ".pdf"
	if key != want {
		t.Fatalf("ObjectKey() = %s, want %s", key, want)
	}
}

func TestEmbeddingDimension(t *testing.T) {
	cases := []struct {
		model string
		want  int
	}{
		{"text-embedding-ada-002", 1536},
		{"text-embedding-3-small", 1536},
		{"text-embedding-3-large", 3072},
		{"some-unknown-model", 1536},
	}
	for _, c := range cases {
		cfg := EmbeddingConfig{Provider: "OpenAI", Model: c.model}
		if got := cfg.Dimension(); got != c.want {
			t.Errorf("Dimension(%s) = %d, want %d", c.model, got, c.want)
		}
	}
}

func TestValidName(t *testing.T) {
	if !ValidName("ok_name") {
		t.Error("ValidName(ok_name) = false, want true")
	}
	if ValidName("BadName") {
		t.Error("ValidName(BadName) = true, want false")
	}
}

func TestDocumentStatusRoundTrip(t *testing.T) {
	for _, s := range []DocumentStatus{Pending, Processing, Completed, Failed} {
		parsed, err := ParseDocumentStatus(s.String())
		if err != nil {
			t.Fatalf("ParseDocumentStatus(%s) error: %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("ParseDocumentStatus(%s) = %v, want %v", s.String(), parsed, s)
		}
	}
}
