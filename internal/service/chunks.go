// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/doculens/doculens/internal/apperror"
	"github.com/doculens/doculens/internal/model"
)

// ChunkInput is a single chunk as reported by the gRPC coordinator's
// CreateChunk RPC, before embedding.
type ChunkInput struct {
	Page    int32
	Content string
}

// UpdateDocumentStatus is the gRPC UpdateDocument callback: it sets the
// document's status unconditionally, with no guard against overwriting a
// terminal state, per spec.md §9's resolved open question.
func (s *Service) UpdateDocumentStatus(ctx context.Context, ns *model.Namespace, documentID uuid.UUID, status model.DocumentStatus) error {
	schema := ns.Schema()
	if !model.ValidSchemaSlug(schema) {
		return apperror.NewInternal(nil, "invalid namespace schema slug")
	}

	query := fmt.Sprintf(
		`UPDATE %s.documents SET status = $2, updated_at = NOW() WHERE id = $1`, schema)
	tag, err := s.pool.Exec(ctx, query, documentID, status.String())
	if err != nil {
		return apperror.NewInternal(err, "failed to update document status")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("the specified document is not found")
	}
	return nil
}

// CreateChunks embeds each chunk (sequentially, preserving order), inserts
// them in a single transaction together with the document's transition to
// Completed, and commits. Any error rolls back the whole batch, per
// spec.md §4.7/§5.
func (s *Service) CreateChunks(ctx context.Context, ns *model.Namespace, documentID uuid.UUID, chunks []ChunkInput) error {
	schema := ns.Schema()
	if !model.ValidSchemaSlug(schema) {
		return apperror.NewInternal(nil, "invalid namespace schema slug")
	}

	embedder, err := s.embedderFor(ns.Config.Embedding)
	if err != nil {
		return err
	}

	vectors := make([][]float32, len(chunks))
	for i, chunk := range chunks {
		v, err := embedder.Generate(ctx, chunk.Content)
		if err != nil {
			return err
		}
		vectors[i] = v
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return apperror.NewInternal(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	insertChunk := fmt.Sprintf(
		`INSERT INTO %s.chunks (document_id, page, content, semantic_vector, text_vector)
		 VALUES ($1, $2, $3, $4, to_tsvector('english', $3))`, schema)
	for i, chunk := range chunks {
		if _, err := tx.Exec(ctx, insertChunk, documentID, chunk.Page, chunk.Content, pgvector.NewVector(vectors[i])); err != nil {
			return apperror.NewInternal(err, "failed to insert chunk")
		}
	}

	updateDoc := fmt.Sprintf(
		`UPDATE %s.documents SET status = $2, updated_at = NOW() WHERE id = $1`, schema)
	if _, err := tx.Exec(ctx, updateDoc, documentID, model.Completed.String()); err != nil {
		return apperror.NewInternal(err, "failed to mark document completed")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal(err, "failed to commit chunk ingestion")
	}
	return nil
}
