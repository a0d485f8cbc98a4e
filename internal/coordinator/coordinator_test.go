package coordinator

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doculens/doculens/internal/coordinator/rpc"
	"github.com/doculens/doculens/internal/model"
)

func TestHeartbeatReturnsConfiguredVersion(t *testing.T) {
	h := &Handler{version: "1.2.3"}
	resp, err := h.Heartbeat(context.Background(), &rpc.HeartbeatRequest{})
	if err != nil {
		t.Fatalf("Heartbeat returned error: %v", err)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", resp.Version)
	}
}

func TestRegisterWorkerRejectsInvalidID(t *testing.T) {
	h := &Handler{}
	_, err := h.RegisterWorker(context.Background(), &rpc.RegisterWorkerRequest{Id: "not-a-uuid", Address: "localhost:9000"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestRegisterWorkerRejectsInvalidAddress(t *testing.T) {
	h := &Handler{}
	_, err := h.RegisterWorker(context.Background(), &rpc.RegisterWorkerRequest{Id: "f47ac10b-58cc-4372-a567-0e02b2c3d479", Address: "not-a-host-port"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestFromWireStatusCoversAllVariants(t *testing.T) {
	cases := map[rpc.DocumentStatus]model.DocumentStatus{
		rpc.DocumentStatus_PENDING:    model.Pending,
		rpc.DocumentStatus_PROCESSING: model.Processing,
		rpc.DocumentStatus_COMPLETED:  model.Completed,
		rpc.DocumentStatus_FAILED:     model.Failed,
	}
	for wire, want := range cases {
		got, err := fromWireStatus(wire)
		if err != nil {
			t.Fatalf("fromWireStatus(%v) returned error: %v", wire, err)
		}
		if got != want {
			t.Errorf("fromWireStatus(%v) = %v, want %v", wire, got, want)
		}
	}
}

func TestFromWireStatusRejectsUnknown(t *testing.T) {
	if _, err := fromWireStatus(rpc.DocumentStatus(99)); err == nil {
		t.Error("expected error for unknown status")
	}
}
