package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"lynq/internal/amqp"
	"lynq/internal/storage"
)

type fakeRecorder struct {
	events []storage.InsightEvent
	err    error
}

func (f *fakeRecorder) RecordInsightEvent(ctx context.Context, ev storage.InsightEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func TestHandleInsightCompleted(t *testing.T) {
	rec := &fakeRecorder{}
	w := NewAuditWorker(rec)

	msg := &amqp.InsightCompletedMessage{
		Domain:    "budget",
		Success:   false,
		Detail:    "rate limited",
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := w.HandleInsightCompleted(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Domain != "budget" || ev.Success || ev.Detail != "rate limited" {
		t.Fatalf("event = %+v", ev)
	}
	if !ev.OccurredAt.Equal(msg.Timestamp) {
		t.Fatalf("occurred_at = %v", ev.OccurredAt)
	}
}

func TestHandleInsightCompletedRecorderError(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db closed")}
	w := NewAuditWorker(rec)

	msg := &amqp.InsightCompletedMessage{Domain: "savings", Success: true, Timestamp: time.Now()}
	if err := w.HandleInsightCompleted(context.Background(), msg); err == nil {
		t.Fatalf("expected error to propagate for requeue")
	}
}
