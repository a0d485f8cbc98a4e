// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/doculens/doculens/internal/apperror"
	"github.com/doculens/doculens/internal/model"
	"github.com/doculens/doculens/internal/rerank"
)

const rrfConstant = 60

// Query embeds text, runs the dense and lexical candidate searches in
// parallel, fuses them with RRF, and returns the top k chunks in fused
// order, excluding their vector columns.
func (s *Service) Query(ctx context.Context, ns *model.Namespace, text string, k int) ([]model.Chunk, error) {
	if k <= 0 {
		k = 10
	}
	schema := ns.Schema()
	if !model.ValidSchemaSlug(schema) {
		return nil, apperror.NewInternal(nil, "invalid namespace schema slug")
	}

	embedder, err := s.embedderFor(ns.Config.Embedding)
	if err != nil {
		return nil, err
	}
	vector, err := embedder.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	candidateK := k * 3

	var denseIDs, lexicalIDs []uuid.UUID
	var denseErr, lexicalErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		denseIDs, denseErr = s.denseSearch(ctx, schema, vector, candidateK)
	}()
	go func() {
		defer wg.Done()
		lexicalIDs, lexicalErr = s.lexicalSearch(ctx, schema, text, candidateK)
	}()
	wg.Wait()

	if denseErr != nil {
		return nil, denseErr
	}
	if lexicalErr != nil {
		return nil, lexicalErr
	}

	fused := rerank.Fuse([][]uuid.UUID{denseIDs, lexicalIDs}, rrfConstant, k)
	return s.fetchChunks(ctx, schema, fused)
}

func (s *Service) denseSearch(ctx context.Context, schema string, vector []float32, k int) ([]uuid.UUID, error) {
	query := fmt.Sprintf(
		`SELECT id FROM %s.chunks ORDER BY semantic_vector <=> $1 LIMIT $2`, schema)
	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(vector), k)
	if err != nil {
		return nil, apperror.NewInternal(err, "dense search failed")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewInternal(err, "dense search scan failed")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Service) lexicalSearch(ctx context.Context, schema string, text string, k int) ([]uuid.UUID, error) {
	query := fmt.Sprintf(
		`SELECT id FROM %s.chunks
		 WHERE text_vector @@ plainto_tsquery('english', $1)
		 ORDER BY ts_rank_cd(text_vector, plainto_tsquery('english', $1)) DESC
		 LIMIT $2`, schema)
	rows, err := s.pool.Query(ctx, query, text, k)
	if err != nil {
		return nil, apperror.NewInternal(err, "lexical search failed")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewInternal(err, "lexical search scan failed")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Service) fetchChunks(ctx context.Context, schema string, ids []uuid.UUID) ([]model.Chunk, error) {
	if len(ids) == 0 {
		return []model.Chunk{}, nil
	}

	query := fmt.Sprintf(
		`SELECT id, document_id, page, content FROM %s.chunks WHERE id = ANY($1)`, schema)
	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to fetch chunks")
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]model.Chunk, len(ids))
	for rows.Next() {
		var c model.Chunk
		var page *int32
		if err := rows.Scan(&c.ID, &c.DocumentID, &page, &c.Content); err != nil {
			return nil, apperror.NewInternal(err, "failed to scan chunk")
		}
		if page != nil {
			c.Page = *page
		}
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal(err, "failed to iterate chunks")
	}

	ordered := make([]model.Chunk, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}
