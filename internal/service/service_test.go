// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package service

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/model"
)

func newTestService(secret string) *Service {
	return New(nil, nil, nil, secret, "", hclog.NewNullLogger())
}

func TestValidateSecretAcceptsConfiguredValue(t *testing.T) {
	svc := newTestService("correct-secret")
	if err := svc.ValidateSecret("correct-secret"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateSecretRejectsWrongValue(t *testing.T) {
	svc := newTestService("correct-secret")
	if err := svc.ValidateSecret("wrong"); err == nil {
		t.Fatal("expected an error for a mismatched secret")
	}
}

func TestWorkerRegistryIsIdempotentByID(t *testing.T) {
	svc := newTestService("s")
	id := uuid.New()
	svc.AddWorker(model.Worker{ID: id, Address: "127.0.0.1:9000"})
	svc.AddWorker(model.Worker{ID: id, Address: "127.0.0.1:9000"})

	workers := svc.Workers()
	if len(workers) != 1 {
		t.Fatalf("expected 1 worker after duplicate AddWorker, got %d", len(workers))
	}
}

func TestRemoveWorkersEvictsOnlyNamedIDs(t *testing.T) {
	svc := newTestService("s")
	kept := uuid.New()
	evicted := uuid.New()
	svc.AddWorker(model.Worker{ID: kept, Address: "127.0.0.1:9000"})
	svc.AddWorker(model.Worker{ID: evicted, Address: "127.0.0.1:9001"})

	svc.RemoveWorkers([]uuid.UUID{evicted})

	workers := svc.Workers()
	if len(workers) != 1 || workers[0].ID != kept {
		t.Fatalf("expected only %s to remain, got %v", kept, workers)
	}
}

// TestNamespaceLifecycleAgainstLiveDatabase is grounded on the teacher's
// skip-if-unavailable pattern: it round-trips CreateNamespace/GetNamespace/
// RemoveNamespace against a real Postgres instance named by
// DL_TEST_DATABASE_URL and skips when that isn't set.
func TestNamespaceLifecycleAgainstLiveDatabase(t *testing.T) {
	url := os.Getenv("DL_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DL_TEST_DATABASE_URL not set, skipping live database test")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, url, 4)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	svc := New(pool, nil, nil, "secret", "", hclog.NewNullLogger())

	name := "service_test_ns"
	if _, err := svc.RemoveNamespace(ctx, name); err != nil {
		t.Fatalf("pre-test cleanup RemoveNamespace: %v", err)
	}

	ns, err := svc.CreateNamespace(ctx, name, model.DefaultNamespaceConfig())
	if err != nil {
		t.Fatalf("CreateNamespace: %v", err)
	}
	defer svc.RemoveNamespace(ctx, name)

	got, err := svc.GetNamespace(ctx, name)
	if err != nil {
		t.Fatalf("GetNamespace: %v", err)
	}
	if got.ID != ns.ID {
		t.Fatalf("GetNamespace returned a different id: %v vs %v", got.ID, ns.ID)
	}

	removed, err := svc.RemoveNamespace(ctx, name)
	if err != nil {
		t.Fatalf("RemoveNamespace: %v", err)
	}
	if removed == nil || removed.ID != ns.ID {
		t.Fatal("expected RemoveNamespace to return the removed namespace")
	}

	again, err := svc.RemoveNamespace(ctx, name)
	if err != nil {
		t.Fatalf("second RemoveNamespace: %v", err)
	}
	if again != nil {
		t.Fatal("expected second RemoveNamespace on an absent namespace to return nil, nil")
	}
}
