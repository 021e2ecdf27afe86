package storage

import (
	"context"
	"fmt"
	"time"
)

// InsightEvent is one recorded agent fetch outcome, kept as an audit trail
// of how often each domain refreshes and how often the agent fails.
type InsightEvent struct {
	ID         int64
	Domain     string
	Success    bool
	Detail     string
	OccurredAt time.Time
}

// RecordInsightEvent appends a fetch outcome to the audit trail.
func (r *SQLiteRepository) RecordInsightEvent(ctx context.Context, ev InsightEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO insight_events (domain, success, detail, occurred_at)
		VALUES (?, ?, ?, ?)`,
		ev.Domain, ev.Success, ev.Detail, ev.OccurredAt.UTC())
	if err != nil {
		return fmt.Errorf("record insight event: %w", err)
	}
	return nil
}

// ListRecentInsightEvents returns the newest events first, capped at limit.
func (r *SQLiteRepository) ListRecentInsightEvents(ctx context.Context, limit int) ([]InsightEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, domain, success, detail, occurred_at
		FROM insight_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list insight events: %w", err)
	}
	defer rows.Close()

	var events []InsightEvent
	for rows.Next() {
		var ev InsightEvent
		if err := rows.Scan(&ev.ID, &ev.Domain, &ev.Success, &ev.Detail, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan insight event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insight events: %w", err)
	}
	return events, nil
}
