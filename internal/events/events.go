package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventUserCreated  = "user.created"
	EventUserLoggedIn = "user.logged_in"
	EventStockToday   = "stock_today"
)

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Key          string          `json:"key,omitempty"`
	Payload      json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload as a version 1 event
func NewEnvelope(producer, eventType, key string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producer,
		Key:          key,
		Payload:      raw,
	}, nil
}

// Publisher delivers domain events. Implementations must not block the caller
// on slow consumers.
type Publisher interface {
	Publish(eventType, key string, payload any)
}

// Fanout publishes every event to each of its publishers in order
type Fanout []Publisher

func (f Fanout) Publish(eventType, key string, payload any) {
	for _, p := range f {
		if p != nil {
			p.Publish(eventType, key, payload)
		}
	}
}

type Nop struct{}

func (Nop) Publish(string, string, any) {}
