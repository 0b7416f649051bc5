// Package events describes the domain events emitted after successful writes
// and publishes them to a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types, also used as routing keys.
const (
	UserRegistered = "user.registered"
	PostCreated    = "post.created"
	PostUpdated    = "post.updated"
	PostDeleted    = "post.deleted"
	ProfileUpdated = "profile.updated"
	ProfileDeleted = "profile.deleted"
)

// Event is the envelope sent to the broker.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// New wraps data in an event of the given type.
func New(eventType string, data interface{}) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       raw,
	}, nil
}

// Decode parses a message body produced by a Publisher.
func Decode(body []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	if evt.Type == "" {
		return Event{}, fmt.Errorf("failed to decode event: missing type")
	}
	return evt, nil
}

// Publisher delivers events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Transport is the broker client used by BrokerPublisher.
// *rabbitmq.Client satisfies it.
type Transport interface {
	Publish(routingKey, messageID string, body []byte) error
}

// BrokerPublisher publishes events as JSON messages routed by event type.
type BrokerPublisher struct {
	transport Transport
}

// NewBrokerPublisher creates a publisher on top of transport.
func NewBrokerPublisher(transport Transport) *BrokerPublisher {
	return &BrokerPublisher{transport: transport}
}

// Publish implements Publisher.
func (p *BrokerPublisher) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", evt.ID, err)
	}
	return p.transport.Publish(evt.Type, evt.ID, body)
}
