// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package taskqueue

import (
	"context"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/model"
)

// TestPublishAndPurgeAgainstLiveBroker is grounded on the teacher's
// redis_queue_test.go skip-if-unavailable pattern: it exercises the real
// AMQP client against a broker named by DL_TEST_AMQP_URL and skips when
// that isn't set, rather than mocking the wire protocol.
func TestPublishAndPurgeAgainstLiveBroker(t *testing.T) {
	url := os.Getenv("DL_TEST_AMQP_URL")
	if url == "" {
		t.Skip("DL_TEST_AMQP_URL not set, skipping live broker test")
	}

	q, err := New(url, hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer q.Close()

	ctx := context.Background()
	task := model.ExtractionTask{
		Namespace:   "ns_test",
		DocumentID:  "00000000-0000-0000-0000-000000000001",
		DocumentKey: "ns_test/00000000-0000-0000-0000-000000000001",
	}
	if err := q.Publish(ctx, task); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := q.Purge(ctx); err != nil {
		t.Fatalf("Purge: %v", err)
	}
}
