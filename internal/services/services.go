package services

import (
	"context"
	"fmt"
	"time"

	"inventory/internal/metrics"
	"inventory/internal/models"
	"inventory/pkg/logger"
	"inventory/pkg/rabbitmq"
)

// EventPublisher sends inventory events. *rabbitmq.Client implements it.
type EventPublisher interface {
	PublishInventoryEvent(ctx context.Context, event rabbitmq.InventoryEvent) error
}

// SchemaInitializer prepares storage before first use.
type SchemaInitializer interface {
	InitializeSchema(ctx context.Context) error
}

// Bootstrap initializes storage. It must run once during startup, before any
// service is used.
func Bootstrap(ctx context.Context, schema SchemaInitializer) error {
	if err := schema.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	return nil
}

// publish sends an event when a publisher is configured. Failures are logged
// and never reach the caller.
func publish(ctx context.Context, events EventPublisher, eventType rabbitmq.EventType, entityID int64, payload interface{}) {
	if events == nil {
		return
	}
	event, err := rabbitmq.NewInventoryEvent(eventType, entityID, payload)
	if err == nil {
		err = events.PublishInventoryEvent(ctx, event)
	}
	if err != nil {
		metrics.EventPublishFailed()
		logger.Warn().Err(err).Str("type", string(eventType)).Int64("entity_id", entityID).
			Msg("failed to publish inventory event")
	}
}

func resultOf(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	if _, ok := models.AsValidationError(err); ok {
		return metrics.ResultInvalid
	}
	return metrics.ResultError
}

func observe(entity, operation string, started time.Time, err error) {
	metrics.ObserveOperation(entity, operation, resultOf(err), started)
}

func observeDelete(entity string, started time.Time, removed bool, err error) {
	result := resultOf(err)
	if err == nil && !removed {
		result = metrics.ResultNotFound
	}
	metrics.ObserveOperation(entity, "delete", result, started)
}

func checkID(id int64) error {
	if id <= 0 {
		return &models.ValidationError{Field: "id", Kind: models.InvalidFormat}
	}
	return nil
}
