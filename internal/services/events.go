package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/metrics"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes domain events to Kafka. Publishing is best-effort:
// failures are logged and counted, never returned.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

// Publish sends an event of type eventType about subject.
func (p *EventPublisher) Publish(ctx context.Context, eventType, subject string, payload any) {
	if p == nil || p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "subject", subject)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		Subject:   subject,
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		metrics.EventPublished(eventType, false)
		return
	}

	msg := kafka.Message{
		Key:   []byte(subject),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		metrics.EventPublished(eventType, false)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "subject", subject)
	metrics.EventPublished(eventType, true)
}
