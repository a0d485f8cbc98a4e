// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package rpc is the hand-rolled wire layer for the Coordinator gRPC
// service: messages, client stub, and server registration, in the shape
// protoc-gen-go would emit. Grounded on internal/proto/hive.pb.go.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DocumentStatus mirrors model.DocumentStatus as a wire enum.
type DocumentStatus int32

const (
	DocumentStatus_PENDING DocumentStatus = iota
	DocumentStatus_PROCESSING
	DocumentStatus_COMPLETED
	DocumentStatus_FAILED
)

// HeartbeatRequest carries no fields; present for symmetry with the
// handler signature.
type HeartbeatRequest struct{}

// HeartbeatResponse reports the running binary's version.
type HeartbeatResponse struct {
	Version string
}

// RegisterWorkerRequest registers a worker's callback address.
type RegisterWorkerRequest struct {
	Id      string
	Address string
}

// RegisterWorkerResponse carries no fields.
type RegisterWorkerResponse struct{}

// UpdateDocumentRequest advances a document's lifecycle status.
type UpdateDocumentRequest struct {
	Namespace  string
	DocumentId string
	Status     DocumentStatus
}

// UpdateDocumentResponse carries no fields.
type UpdateDocumentResponse struct{}

// ChunkPayload is a single extracted chunk awaiting embedding.
type ChunkPayload struct {
	Page    int32
	Content string
}

// CreateChunkRequest reports a batch of chunks for one document.
type CreateChunkRequest struct {
	Namespace  string
	DocumentId string
	Chunks     []*ChunkPayload
}

// CreateChunkResponse carries no fields.
type CreateChunkResponse struct{}

// CoordinatorClient is the client-side gRPC API.
type CoordinatorClient interface {
	Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (*HeartbeatResponse, error)
	RegisterWorker(ctx context.Context, in *RegisterWorkerRequest, opts ...grpc.CallOption) (*RegisterWorkerResponse, error)
	UpdateDocument(ctx context.Context, in *UpdateDocumentRequest, opts ...grpc.CallOption) (*UpdateDocumentResponse, error)
	CreateChunk(ctx context.Context, in *CreateChunkRequest, opts ...grpc.CallOption) (*CreateChunkResponse, error)
}

type coordinatorClient struct {
	cc grpc.ClientConnInterface
}

// NewCoordinatorClient constructs a new gRPC client.
func NewCoordinatorClient(cc grpc.ClientConnInterface) CoordinatorClient {
	return &coordinatorClient{cc: cc}
}

func (c *coordinatorClient) Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (*HeartbeatResponse, error) {
	out := new(HeartbeatResponse)
	if err := c.cc.Invoke(ctx, "/doculens.Coordinator/Heartbeat", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) RegisterWorker(ctx context.Context, in *RegisterWorkerRequest, opts ...grpc.CallOption) (*RegisterWorkerResponse, error) {
	out := new(RegisterWorkerResponse)
	if err := c.cc.Invoke(ctx, "/doculens.Coordinator/RegisterWorker", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) UpdateDocument(ctx context.Context, in *UpdateDocumentRequest, opts ...grpc.CallOption) (*UpdateDocumentResponse, error) {
	out := new(UpdateDocumentResponse)
	if err := c.cc.Invoke(ctx, "/doculens.Coordinator/UpdateDocument", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) CreateChunk(ctx context.Context, in *CreateChunkRequest, opts ...grpc.CallOption) (*CreateChunkResponse, error) {
	out := new(CreateChunkResponse)
	if err := c.cc.Invoke(ctx, "/doculens.Coordinator/CreateChunk", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CoordinatorServer is the server-side gRPC API.
type CoordinatorServer interface {
	Heartbeat(context.Context, *HeartbeatRequest) (*HeartbeatResponse, error)
	RegisterWorker(context.Context, *RegisterWorkerRequest) (*RegisterWorkerResponse, error)
	UpdateDocument(context.Context, *UpdateDocumentRequest) (*UpdateDocumentResponse, error)
	CreateChunk(context.Context, *CreateChunkRequest) (*CreateChunkResponse, error)
	mustEmbedUnimplementedCoordinatorServer()
}

// UnimplementedCoordinatorServer can be embedded to have forward
// compatible implementations.
type UnimplementedCoordinatorServer struct{}

func (UnimplementedCoordinatorServer) Heartbeat(context.Context, *HeartbeatRequest) (*HeartbeatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Heartbeat not implemented")
}

func (UnimplementedCoordinatorServer) RegisterWorker(context.Context, *RegisterWorkerRequest) (*RegisterWorkerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterWorker not implemented")
}

func (UnimplementedCoordinatorServer) UpdateDocument(context.Context, *UpdateDocumentRequest) (*UpdateDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateDocument not implemented")
}

func (UnimplementedCoordinatorServer) CreateChunk(context.Context, *CreateChunkRequest) (*CreateChunkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateChunk not implemented")
}

func (UnimplementedCoordinatorServer) mustEmbedUnimplementedCoordinatorServer() {}

// RegisterCoordinatorServer registers the Coordinator service with the
// provided gRPC server registrar.
func RegisterCoordinatorServer(s grpc.ServiceRegistrar, srv CoordinatorServer) {
	s.RegisterService(&Coordinator_ServiceDesc, srv)
}

// Coordinator_ServiceDesc describes the Coordinator service to gRPC.
var Coordinator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "doculens.Coordinator",
	HandlerType: (*CoordinatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Heartbeat", Handler: _Coordinator_Heartbeat_Handler},
		{MethodName: "RegisterWorker", Handler: _Coordinator_RegisterWorker_Handler},
		{MethodName: "UpdateDocument", Handler: _Coordinator_UpdateDocument_Handler},
		{MethodName: "CreateChunk", Handler: _Coordinator_CreateChunk_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/coordinator/rpc/coordinator.proto",
}

func _Coordinator_Heartbeat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HeartbeatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).Heartbeat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/doculens.Coordinator/Heartbeat"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServer).Heartbeat(ctx, req.(*HeartbeatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_RegisterWorker_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterWorkerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).RegisterWorker(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/doculens.Coordinator/RegisterWorker"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServer).RegisterWorker(ctx, req.(*RegisterWorkerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_UpdateDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).UpdateDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/doculens.Coordinator/UpdateDocument"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServer).UpdateDocument(ctx, req.(*UpdateDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_CreateChunk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateChunkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).CreateChunk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/doculens.Coordinator/CreateChunk"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServer).CreateChunk(ctx, req.(*CreateChunkRequest))
	}
	return interceptor(ctx, in, info, handler)
}
