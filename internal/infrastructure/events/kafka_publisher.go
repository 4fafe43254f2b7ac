// Package events publica los cambios del ledger hacia sistemas externos.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/stock-ledger/internal/application/ports"
)

var (
	_ ports.MovementEventPublisher = (*KafkaPublisher)(nil)
	_ ports.MovementEventPublisher = NopPublisher{}
)

// MessageWriter abstrae kafka.Writer para poder sustituirlo en tests.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// movementMessage es el payload JSON de cada evento.
type movementMessage struct {
	Type         string    `json:"type"`
	MovementID   int64     `json:"movement_id"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"product_id"`
	FromLocation *string   `json:"from_location"`
	ToLocation   *string   `json:"to_location"`
	Qty          int64     `json:"qty"`
	MovementType string    `json:"movement_type"`
	Actor        string    `json:"actor,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// KafkaPublisher publica eventos de movimiento en un topic, con el movement_id como key.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher crea el writer contra los brokers y topic dados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	})
}

// NewKafkaPublisherWithWriter usa un writer ya construido.
func NewKafkaPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishMovement serializa el evento y lo escribe en Kafka.
func (p *KafkaPublisher) PublishMovement(ctx context.Context, event ports.MovementEvent) error {
	m := event.Movement
	payload, err := json.Marshal(movementMessage{
		Type:         event.Type,
		MovementID:   m.MovementID,
		Timestamp:    m.Timestamp,
		ProductID:    m.ProductID,
		FromLocation: optional(m.FromLocation),
		ToLocation:   optional(m.ToLocation),
		Qty:          m.Qty,
		MovementType: m.Type(),
		Actor:        event.Actor,
		OccurredAt:   event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(m.MovementID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publicar evento %s: %w", event.Type, err)
	}
	return nil
}

// Close libera el writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher descarta los eventos (Kafka no configurado).
type NopPublisher struct{}

// PublishMovement no hace nada.
func (NopPublisher) PublishMovement(context.Context, ports.MovementEvent) error { return nil }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
