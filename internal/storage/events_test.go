package storage

import (
	"context"
	"testing"
	"time"
)

func TestRecordAndListInsightEvents(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	events := []InsightEvent{
		{Domain: "budget", Success: true, OccurredAt: base},
		{Domain: "savings", Success: false, Detail: "rate limited", OccurredAt: base.Add(time.Minute)},
	}
	for _, ev := range events {
		if err := repo.RecordInsightEvent(ctx, ev); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := repo.ListRecentInsightEvents(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	// Newest first.
	if got[0].Domain != "savings" || got[0].Success || got[0].Detail != "rate limited" {
		t.Fatalf("event[0] = %+v", got[0])
	}
	if got[1].Domain != "budget" || !got[1].Success {
		t.Fatalf("event[1] = %+v", got[1])
	}
}

func TestListRecentInsightEventsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ev := InsightEvent{Domain: "budget", Success: true, OccurredAt: time.Now().Add(time.Duration(i) * time.Second)}
		if err := repo.RecordInsightEvent(ctx, ev); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := repo.ListRecentInsightEvents(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
}

func TestListInsightEventsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.ListRecentInsightEvents(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}
