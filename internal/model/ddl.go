// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package model

import "fmt"

// ProvisionDDL returns the multi-statement script that provisions a
// namespace's isolated schema: the documents/chunks tables, their indexes,
// and the dense HNSW + lexical GIN indexes sized for the namespace's
// embedding dimension and index config. It is executed as a single Exec
// call, matching the teacher's initDatabase/ensureSchema idiom of running
// one semicolon-delimited block rather than splitting statements.
func ProvisionDDL(schema string, dim int, idx IndexConfig) string {
	return fmt.Sprintf(`
CREATE SCHEMA IF NOT EXISTS %[1]s;

CREATE TABLE IF NOT EXISTS %[1]s.documents (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	status doc_status NOT NULL DEFAULT 'pending',
	metadata jsonb NOT NULL DEFAULT '{}'::jsonb,
	updated_at timestamptz NOT NULL DEFAULT now(),
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS documents_status_idx
	ON %[1]s.documents (status);

CREATE TABLE IF NOT EXISTS %[1]s.chunks (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	document_id uuid NOT NULL REFERENCES %[1]s.documents (id) ON DELETE CASCADE,
	page int,
	content text NOT NULL,
	semantic_vector vector(%[2]d) NOT NULL,
	text_vector tsvector NOT NULL
);

CREATE INDEX IF NOT EXISTS chunks_semantic_vector_idx
	ON %[1]s.chunks USING hnsw (semantic_vector vector_cosine_ops)
	WITH (m = %[3]d, ef_construction = %[4]d);

CREATE INDEX IF NOT EXISTS chunks_text_vector_idx
	ON %[1]s.chunks USING gin (text_vector);
`, schema, dim, idx.M, idx.EfConstruction)
}

// TeardownDDL drops a namespace's schema and everything in it.
func TeardownDDL(schema string) string {
	return fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE;", schema)
}
