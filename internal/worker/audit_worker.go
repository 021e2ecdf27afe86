// Package worker holds the background consumer that turns insight
// completion events into a durable audit trail.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"lynq/internal/amqp"
	"lynq/internal/storage"
)

// EventRecorder persists one fetch outcome.
type EventRecorder interface {
	RecordInsightEvent(ctx context.Context, ev storage.InsightEvent) error
}

// AuditWorker records insight completion events published by the dashboard
// service. The events carry outcomes only, never insight text.
type AuditWorker struct {
	recorder EventRecorder
}

func NewAuditWorker(recorder EventRecorder) *AuditWorker {
	return &AuditWorker{recorder: recorder}
}

// HandleInsightCompleted processes a single completion event from AMQP.
func (w *AuditWorker) HandleInsightCompleted(ctx context.Context, msg *amqp.InsightCompletedMessage) error {
	ev := storage.InsightEvent{
		Domain:     msg.Domain,
		Success:    msg.Success,
		Detail:     msg.Detail,
		OccurredAt: msg.Timestamp,
	}

	if err := w.recorder.RecordInsightEvent(ctx, ev); err != nil {
		return fmt.Errorf("record insight event: %w", err)
	}

	slog.InfoContext(ctx, "Recorded insight event",
		"domain", msg.Domain,
		"success", msg.Success)
	return nil
}
