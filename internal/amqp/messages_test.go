package amqp

import "testing"

func TestInsightCompletedMessageRoundTrip(t *testing.T) {
	msg := NewInsightCompletedMessage("budget", false, "rate limited")
	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := InsightCompletedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Domain != "budget" || got.Success || got.Detail != "rate limited" {
		t.Fatalf("message = %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

func TestInsightCompletedMessageFromJSONInvalid(t *testing.T) {
	if _, err := InsightCompletedMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
