package amqp

import (
	"encoding/json"
	"time"
)

// InsightCompletedMessage announces that an agent fetch for a domain
// finished. Consumers (audit trails, notification fan-out) get the outcome
// but never the insight text itself; they fetch that from the service.
type InsightCompletedMessage struct {
	Domain    string    `json:"domain"`
	Success   bool      `json:"success"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewInsightCompletedMessage(domain string, success bool, detail string) *InsightCompletedMessage {
	return &InsightCompletedMessage{
		Domain:    domain,
		Success:   success,
		Detail:    detail,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *InsightCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// InsightCompletedMessageFromJSON creates a message from JSON bytes.
func InsightCompletedMessageFromJSON(data []byte) (*InsightCompletedMessage, error) {
	var msg InsightCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
