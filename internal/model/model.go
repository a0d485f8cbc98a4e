// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package model holds the core DocuLens entities and the pure functions
// that govern their derived identifiers: the per-namespace schema slug,
// the object-store key, and the embedding dimension table.
package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentStatus is the closed set of lifecycle states a Document can be
// in. It round-trips to the Postgres `doc_status` enum as its lowercase
// string and to the coordinator's numeric enum by ordinal.
type DocumentStatus int

const (
	Pending DocumentStatus = iota
	Processing
	Completed
	Failed
)

func (s DocumentStatus) String() string {
	switch s {
	case Processing:
		return "processing"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// ParseDocumentStatus parses the lowercase DB/wire representation.
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return Pending, nil
	case "processing":
		return Processing, nil
	case "completed":
		return Completed, nil
	case "failed":
		return Failed, nil
	default:
		return 0, fmt.Errorf("unknown document status %q", s)
	}
}

// IndexConfig holds the HNSW parameters used to build a namespace's dense
// index.
type IndexConfig struct {
	M              uint8  `json:"m"`
	EfConstruction uint16 `json:"ef_construction"`
}

// EmbeddingConfig names the provider/model pair a namespace embeds with.
type EmbeddingConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Dimension is a pure function of (provider, model): ada-002 and 3-small
// are 1536-wide, 3-large is 3072-wide, anything else falls back to 1536.
func (c EmbeddingConfig) Dimension() int {
	switch c.Model {
	case "text-embedding-3-large":
		return 3072
	case "text-embedding-3-small", "text-embedding-ada-002":
		return 1536
	default:
		return 1536
	}
}

// NamespaceConfig is the JSON document stored in namespaces.config.
type NamespaceConfig struct {
	Index     IndexConfig     `json:"index"`
	Embedding EmbeddingConfig `json:"embedding"`
}

// DefaultNamespaceConfig returns the spec's defaults: m=32,
// ef_construction=128, OpenAI text-embedding-3-small.
func DefaultNamespaceConfig() NamespaceConfig {
	return NamespaceConfig{
		Index: IndexConfig{M: 32, EfConstruction: 128},
		Embedding: EmbeddingConfig{
			Provider: "OpenAI",
			Model:    "text-embedding-3-small",
		},
	}
}

// Namespace is a tenant, isolated behind its own Postgres schema and
// object-store key prefix.
type Namespace struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Config    NamespaceConfig `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
}

var namePattern = regexp.MustCompile(`^[a-z_]+$`)

// ValidName reports whether a namespace name satisfies spec.md §3's
// naming rule.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// schemaSlugPattern is the shape validated before a slug is ever
// interpolated into raw SQL as an identifier.
var schemaSlugPattern = regexp.MustCompile(`^ns_[0-9a-f]{12}$`)

// Schema returns the namespace's deterministic schema slug: "ns_" followed
// by the first 12 hex characters of the namespace id's unpadded form.
func (n Namespace) Schema() string {
	return SchemaSlug(n.ID)
}

// SchemaSlug derives the schema slug from a namespace id.
func SchemaSlug(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "ns_" + hex[:12]
}

// ValidSchemaSlug reports whether s is safe to interpolate directly into a
// SQL statement as a schema identifier.
func ValidSchemaSlug(s string) bool {
	return schemaSlugPattern.MatchString(s)
}

// Document is a single uploaded PDF tracked through its extraction
// lifecycle.
type Document struct {
	ID        uuid.UUID       `json:"id"`
	Status    DocumentStatus  `json:"status"`
	Metadata  json.RawMessage `json:"metadata"`
	UpdatedAt time.Time       `json:"updated_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// ObjectKey returns the invariant object-store key for a document within
// its namespace: "{schema_slug}/{document_id}.pdf".
func ObjectKey(schema string, documentID uuid.UUID) string {
	return fmt.Sprintf("%s/%s.pdf", schema, documentID)
}

// Chunk is an extracted text segment of a document, indexed for both dense
// and lexical retrieval. The struct carries no vector columns (spec.md
// §4.6 excludes them from returned chunks); the semantic and text vectors
// exist only in the chunks table.
type Chunk struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Page       int32     `json:"page"`
	Content    string    `json:"content"`
}

// Worker is a registered extraction worker. It exists only in the
// in-memory registry, never persisted.
type Worker struct {
	ID      uuid.UUID
	Address string // host:port
}

// ExtractionTask is the JSON message published to the task queue.
type ExtractionTask struct {
	Namespace   string `json:"namespace"`
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}
