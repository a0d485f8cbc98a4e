// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package coordinator implements the gRPC Coordinator service: worker
// registration, document-status callbacks, and chunk ingestion. Grounded
// on internal/server/hive_service.go's struct-holds-deps shape, adapted
// to the rpc package's hand-rolled stubs instead of internal/proto.
package coordinator

import (
	"context"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doculens/doculens/internal/coordinator/rpc"
	"github.com/doculens/doculens/internal/model"
	"github.com/doculens/doculens/internal/service"
)

// Handler implements rpc.CoordinatorServer against a *service.Service.
type Handler struct {
	rpc.UnimplementedCoordinatorServer
	svc     *service.Service
	version string
	logger  hclog.Logger
}

// New wires a coordinator handler reporting the given build version.
func New(svc *service.Service, version string, logger hclog.Logger) *Handler {
	return &Handler{svc: svc, version: version, logger: logger.Named("coordinator")}
}

// Serve listens on addr and serves gRPC connections in a background
// goroutine, returning the server at once so the caller can stop it.
func Serve(addr string, h *Handler) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := grpc.NewServer()
	rpc.RegisterCoordinatorServer(srv, h)
	go func() {
		if err := srv.Serve(lis); err != nil {
			h.logger.Error("coordinator server stopped", "error", err)
		}
	}()
	return srv, nil
}

// Heartbeat reports the running binary's version.
func (h *Handler) Heartbeat(ctx context.Context, req *rpc.HeartbeatRequest) (*rpc.HeartbeatResponse, error) {
	return &rpc.HeartbeatResponse{Version: h.version}, nil
}

// RegisterWorker parses the worker's id and address and adds it to the
// registry, idempotent by id.
func (h *Handler) RegisterWorker(ctx context.Context, req *rpc.RegisterWorkerRequest) (*rpc.RegisterWorkerResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid worker id: %v", err)
	}
	if _, _, err := net.SplitHostPort(req.Address); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid worker address: %v", err)
	}

	h.svc.AddWorker(model.Worker{ID: id, Address: req.Address})
	h.logger.Info("registered worker", "worker_id", id, "address", req.Address)
	return &rpc.RegisterWorkerResponse{}, nil
}

// UpdateDocument advances a document's lifecycle status.
func (h *Handler) UpdateDocument(ctx context.Context, req *rpc.UpdateDocumentRequest) (*rpc.UpdateDocumentResponse, error) {
	ns, err := h.svc.GetNamespace(ctx, req.Namespace)
	if err != nil {
		return nil, toGRPCError(err)
	}
	documentID, err := uuid.Parse(req.DocumentId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid document id: %v", err)
	}
	docStatus, err := fromWireStatus(req.Status)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	if err := h.svc.UpdateDocumentStatus(ctx, ns, documentID, docStatus); err != nil {
		return nil, toGRPCError(err)
	}
	return &rpc.UpdateDocumentResponse{}, nil
}

// CreateChunk embeds and inserts a batch of chunks, advancing the
// document to Completed in the same transaction.
func (h *Handler) CreateChunk(ctx context.Context, req *rpc.CreateChunkRequest) (*rpc.CreateChunkResponse, error) {
	ns, err := h.svc.GetNamespace(ctx, req.Namespace)
	if err != nil {
		return nil, toGRPCError(err)
	}
	documentID, err := uuid.Parse(req.DocumentId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid document id: %v", err)
	}

	chunks := make([]service.ChunkInput, len(req.Chunks))
	for i, c := range req.Chunks {
		chunks[i] = service.ChunkInput{Page: c.Page, Content: c.Content}
	}

	if err := h.svc.CreateChunks(ctx, ns, documentID, chunks); err != nil {
		return nil, toGRPCError(err)
	}
	return &rpc.CreateChunkResponse{}, nil
}

func fromWireStatus(s rpc.DocumentStatus) (model.DocumentStatus, error) {
	switch s {
	case rpc.DocumentStatus_PENDING:
		return model.Pending, nil
	case rpc.DocumentStatus_PROCESSING:
		return model.Processing, nil
	case rpc.DocumentStatus_COMPLETED:
		return model.Completed, nil
	case rpc.DocumentStatus_FAILED:
		return model.Failed, nil
	default:
		return 0, fmt.Errorf("unknown document status %d", s)
	}
}
