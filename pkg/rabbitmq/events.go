package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InventoryQueue is the durable queue inventory events are published to.
const InventoryQueue = "inventory_events"

// EventType names what happened to an inventory record.
type EventType string

const (
	ProductCreated EventType = "product.created"
	ProductDeleted EventType = "product.deleted"
	BuyerCreated   EventType = "buyer.created"
	BuyerDeleted   EventType = "buyer.deleted"
)

// InventoryEvent is the message body published after a successful change.
type InventoryEvent struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	EntityID   int64           `json:"entity_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// NewInventoryEvent builds an event with a fresh id. payload may be nil.
func NewInventoryEvent(eventType EventType, entityID int64, payload interface{}) (InventoryEvent, error) {
	event := InventoryEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return InventoryEvent{}, fmt.Errorf("failed to marshal event payload: %w", err)
		}
		event.Payload = body
	}
	return event, nil
}

// DecodeInventoryEvent parses a message body produced by PublishInventoryEvent.
func DecodeInventoryEvent(body []byte) (InventoryEvent, error) {
	var event InventoryEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return InventoryEvent{}, fmt.Errorf("failed to decode inventory event: %w", err)
	}
	if event.Type == "" {
		return InventoryEvent{}, fmt.Errorf("inventory event %q has no type", event.ID)
	}
	return event, nil
}
