// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package service implements the core of the control plane: it owns the
// database pool, object store, task queue, and worker registry, and
// exposes the namespace/document/query/worker operations every transport
// (gRPC coordinator, HTTP interface, validator loop) calls into. Grounded
// on internal/server/hive_service.go's struct-holds-deps shape and
// internal/drone/watcher/manager.go's mutex-guarded registry idiom.
package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doculens/doculens/internal/apperror"
	"github.com/doculens/doculens/internal/embedding"
	"github.com/doculens/doculens/internal/model"
	"github.com/doculens/doculens/internal/objectstore"
	"github.com/doculens/doculens/internal/taskqueue"
)

// Service owns every piece of shared state the transports operate on.
type Service struct {
	pool      *pgxpool.Pool
	store     *objectstore.Store
	queue     *taskqueue.Queue
	secretKey string
	openAIKey string
	logger    hclog.Logger

	mu      sync.Mutex
	workers []model.Worker
}

// New wires a Service from its already-constructed dependencies.
func New(pool *pgxpool.Pool, store *objectstore.Store, queue *taskqueue.Queue, secretKey, openAIKey string, logger hclog.Logger) *Service {
	return &Service{
		pool:      pool,
		store:     store,
		queue:     queue,
		secretKey: secretKey,
		openAIKey: openAIKey,
		logger:    logger.Named("service"),
	}
}

// ValidateSecret constant-time-compares s to the configured secret.
func (s *Service) ValidateSecret(secret string) error {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.secretKey)) != 1 {
		return apperror.NewUnauthorized("please provide a valid secret key")
	}
	return nil
}

func (s *Service) embedderFor(cfg model.EmbeddingConfig) (embedding.Embedder, error) {
	return embedding.New(cfg, s.openAIKey)
}

// CreateNamespace inserts the namespace row then provisions its schema.
// Provisioning failure leaves the row behind; see DESIGN.md's Open
// Question decisions for why this is not wrapped in an outer transaction.
func (s *Service) CreateNamespace(ctx context.Context, name string, cfg model.NamespaceConfig) (*model.Namespace, error) {
	if !model.ValidName(name) {
		return nil, apperror.NewBadRequest("namespace name must match ^[a-z_]+$")
	}

	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to marshal namespace config")
	}

	var ns model.Namespace
	var rawConfig []byte
	row := s.pool.QueryRow(ctx,
		`INSERT INTO namespaces (name, config) VALUES ($1, $2)
		 RETURNING id, name, config, created_at`,
		name, configJSON)
	if err := row.Scan(&ns.ID, &ns.Name, &rawConfig, &ns.CreatedAt); err != nil {
		return nil, apperror.NewBadRequest("failed to create a new namespace")
	}
	if err := json.Unmarshal(rawConfig, &ns.Config); err != nil {
		return nil, apperror.NewInternal(err, "failed to unmarshal namespace config")
	}

	schema := ns.Schema()
	ddl := model.ProvisionDDL(schema, ns.Config.Embedding.Dimension(), ns.Config.Index)
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return nil, apperror.NewInternal(err, fmt.Sprintf("failed to provision schema for namespace %q, retry by removing and recreating it", name))
	}

	return &ns, nil
}

// RemoveNamespace deletes the namespace row and, if one existed, tears down
// its schema. A missing namespace is not an error: it returns (nil, nil).
func (s *Service) RemoveNamespace(ctx context.Context, name string) (*model.Namespace, error) {
	var ns model.Namespace
	var rawConfig []byte
	row := s.pool.QueryRow(ctx,
		`DELETE FROM namespaces WHERE name = $1 RETURNING id, name, config, created_at`, name)
	err := row.Scan(&ns.ID, &ns.Name, &rawConfig, &ns.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewBadRequest("failed to remove the namespace")
	}
	if err := json.Unmarshal(rawConfig, &ns.Config); err != nil {
		return nil, apperror.NewInternal(err, "failed to unmarshal namespace config")
	}

	if _, err := s.pool.Exec(ctx, model.TeardownDDL(ns.Schema())); err != nil {
		return nil, apperror.NewInternal(err, "failed to tear down namespace schema")
	}

	return &ns, nil
}

// GetNamespace returns a namespace by name or NotFound.
func (s *Service) GetNamespace(ctx context.Context, name string) (*model.Namespace, error) {
	var ns model.Namespace
	var rawConfig []byte
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, config, created_at FROM namespaces WHERE name = $1`, name)
	err := row.Scan(&ns.ID, &ns.Name, &rawConfig, &ns.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("the specified namespace is not found")
	}
	if err != nil {
		return nil, apperror.NewBadRequest("failed to retrieve the namespace")
	}
	if err := json.Unmarshal(rawConfig, &ns.Config); err != nil {
		return nil, apperror.NewInternal(err, "failed to unmarshal namespace config")
	}
	return &ns, nil
}

// CreateDocument inserts a pending document row into the namespace's
// schema.
func (s *Service) CreateDocument(ctx context.Context, ns *model.Namespace, metadata json.RawMessage) (*model.Document, error) {
	if len(metadata) == 0 {
		metadata = json.RawMessage("{}")
	}
	schema := ns.Schema()
	if !model.ValidSchemaSlug(schema) {
		return nil, apperror.NewInternal(nil, "invalid namespace schema slug")
	}

	query := fmt.Sprintf(
		`INSERT INTO %s.documents (metadata) VALUES ($1)
		 RETURNING id, status, metadata, updated_at, created_at`, schema)

	var doc model.Document
	var statusStr string
	row := s.pool.QueryRow(ctx, query, metadata)
	if err := row.Scan(&doc.ID, &statusStr, &doc.Metadata, &doc.UpdatedAt, &doc.CreatedAt); err != nil {
		return nil, apperror.NewInternal(err, "failed to create a new document")
	}
	status, err := model.ParseDocumentStatus(statusStr)
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to parse document status")
	}
	doc.Status = status
	return &doc, nil
}

// GetDocument returns a document by id within its namespace, or NotFound.
func (s *Service) GetDocument(ctx context.Context, ns *model.Namespace, id uuid.UUID) (*model.Document, error) {
	schema := ns.Schema()
	if !model.ValidSchemaSlug(schema) {
		return nil, apperror.NewInternal(nil, "invalid namespace schema slug")
	}

	query := fmt.Sprintf(
		`SELECT id, status, metadata, updated_at, created_at FROM %s.documents WHERE id = $1`, schema)

	var doc model.Document
	var statusStr string
	row := s.pool.QueryRow(ctx, query, id)
	err := row.Scan(&doc.ID, &statusStr, &doc.Metadata, &doc.UpdatedAt, &doc.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("the specified document is not found")
	}
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to retrieve the document")
	}
	status, err := model.ParseDocumentStatus(statusStr)
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to parse document status")
	}
	doc.Status = status
	return &doc, nil
}

// RemoveDocument deletes a document row and its blob; a missing document
// is not an error: it returns (nil, nil).
func (s *Service) RemoveDocument(ctx context.Context, ns *model.Namespace, id uuid.UUID) (*model.Document, error) {
	schema := ns.Schema()
	if !model.ValidSchemaSlug(schema) {
		return nil, apperror.NewInternal(nil, "invalid namespace schema slug")
	}

	query := fmt.Sprintf(
		`DELETE FROM %s.documents WHERE id = $1
		 RETURNING id, status, metadata, updated_at, created_at`, schema)

	var doc model.Document
	var statusStr string
	row := s.pool.QueryRow(ctx, query, id)
	err := row.Scan(&doc.ID, &statusStr, &doc.Metadata, &doc.UpdatedAt, &doc.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to remove the document")
	}
	status, err := model.ParseDocumentStatus(statusStr)
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to parse document status")
	}
	doc.Status = status

	if err := s.store.Remove(ctx, model.ObjectKey(schema, id)); err != nil {
		s.logger.Warn("failed to remove blob for deleted document", "document_id", id, "error", err)
	}

	return &doc, nil
}

// UploadAndDispatch puts the PDF bytes in object storage and publishes an
// ExtractionTask naming it, completing the happy-path fan-out from
// spec.md's data-flow diagram.
func (s *Service) UploadAndDispatch(ctx context.Context, ns *model.Namespace, doc *model.Document, data []byte) error {
	schema := ns.Schema()
	key := model.ObjectKey(schema, doc.ID)

	if err := s.store.Put(ctx, key, data); err != nil {
		return err
	}

	task := model.ExtractionTask{
		Namespace:   ns.Name,
		DocumentID:  doc.ID.String(),
		DocumentKey: key,
	}
	return s.queue.Publish(ctx, task)
}

// AddWorker registers a worker, idempotent by id.
func (s *Service) AddWorker(w model.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.workers {
		if existing.ID == w.ID {
			return
		}
	}
	s.workers = append(s.workers, w)
}

// RemoveWorkers evicts workers by id.
func (s *Service) RemoveWorkers(ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	evict := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		evict[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.workers[:0]
	for _, w := range s.workers {
		if !evict[w.ID] {
			kept = append(kept, w)
		}
	}
	s.workers = kept
}

// Workers returns a snapshot of the current registry.
func (s *Service) Workers() []model.Worker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}
