package kafka

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"
	"hyperlocal/internal/pkg/logging"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func message(orderID kernel.UUID, eventType string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventType:   eventType,
		AggregateID: orderID,
		Payload:     []byte(`{"to":"accepted"}`),
		OccurredAt:  time.Now(),
	}
}

func TestPublisher_KeysByOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	msgs := []ports.OutboxMessage{message(orderID, "order.placed"), message(orderID, "order.accepted")}

	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.MatchedBy(func(out []kafka.Message) bool {
		if len(out) != 2 {
			return false
		}
		for i, m := range out {
			if string(m.Key) != orderID.String() || !bytes.Equal(m.Value, msgs[i].Payload) {
				return false
			}
		}
		return string(out[1].Headers[1].Value) == "order.accepted"
	})).Return(nil).Once()

	p := newPublisher(w, "order.changed", logging.Discard())
	require.NoError(t, p.Publish(context.Background(), msgs...))
	w.AssertExpectations(t)
}

func TestPublisher_WrapsWriteErrors(t *testing.T) {
	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	p := newPublisher(w, "order.changed", logging.Discard())
	err := p.Publish(context.Background(), message(kernel.NewUUID(), "order.placed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order.changed")
	assert.Contains(t, err.Error(), "broker down")
}

func TestPublisher_NothingToWrite(t *testing.T) {
	w := new(MockWriter)
	p := newPublisher(w, "order.changed", logging.Discard())

	require.NoError(t, p.Publish(context.Background()))
	w.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(logging.NewWithWriter(&buf, "info", "json"))

	require.NoError(t, p.Publish(context.Background(), message(kernel.NewUUID(), "order.delivered")))
	assert.Contains(t, buf.String(), `"event_type":"order.delivered"`)
}
