package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishMovement(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisherWithWriter(w)
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	err := p.PublishMovement(context.Background(), ports.MovementEvent{
		Type:       ports.EventMovementRecorded,
		Movement:   entity.Movement{MovementID: 7, Timestamp: ts, ProductID: "P1", ToLocation: "L1", Qty: 50},
		Actor:      "ana@bodega",
		OccurredAt: ts,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "7", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, ports.EventMovementRecorded, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "P1", body["product_id"])
	assert.Nil(t, body["from_location"])
	assert.Equal(t, "L1", body["to_location"])
	assert.Equal(t, "IN", body["movement_type"])
	assert.Equal(t, "ana@bodega", body["actor"])
	assert.EqualValues(t, 50, body["qty"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := NewKafkaPublisherWithWriter(&fakeWriter{err: errors.New("broker caído")})
	err := p.PublishMovement(context.Background(), ports.MovementEvent{Type: ports.EventMovementDeleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker caído")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishMovement(context.Background(), ports.MovementEvent{}))
}
