package validator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/model"
)

type fakeRegistry struct {
	workers []model.Worker
	removed []uuid.UUID
}

func (f *fakeRegistry) Workers() []model.Worker { return f.workers }
func (f *fakeRegistry) RemoveWorkers(ids []uuid.UUID) {
	f.removed = append(f.removed, ids...)
}

func TestValidateOnceEvictsOnlyUnreachableWorkers(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()

	upAddr := up.Listener.Addr().String()
	upID := uuid.New()
	downID := uuid.New()

	reg := &fakeRegistry{workers: []model.Worker{
		{ID: upID, Address: upAddr},
		{ID: downID, Address: "127.0.0.1:1"},
	}}

	l := New(reg, hclog.NewNullLogger())
	l.validateOnce(context.Background())

	if len(reg.removed) != 1 || reg.removed[0] != downID {
		t.Fatalf("expected only %v evicted, got %v", downID, reg.removed)
	}
}

func TestValidateOnceEvictsNothingWhenAllReachable(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()

	reg := &fakeRegistry{workers: []model.Worker{
		{ID: uuid.New(), Address: up.Listener.Addr().String()},
	}}

	l := New(reg, hclog.NewNullLogger())
	l.validateOnce(context.Background())

	if len(reg.removed) != 0 {
		t.Fatalf("expected no evictions, got %v", reg.removed)
	}
}
