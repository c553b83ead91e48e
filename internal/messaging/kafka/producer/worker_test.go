package producer_test

import (
	"context"
	"errors"
	"testing"

	"am-hris/internal/events"
	"am-hris/internal/messaging/kafka"
	"am-hris/internal/messaging/kafka/mock"
	"am-hris/internal/messaging/kafka/producer"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type fakeWriter struct {
	messages []kafkago.Message
	failFor  string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failFor {
			return errors.New("broker unavailable")
		}
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func outboxEvent(aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New(),
		RequestID:     "req-1",
		AggregateType: "leave_request",
		AggregateID:   aggregateID,
		EventType:     events.EventTypeApprovalDecided,
		Topic:         events.ApprovalDecidedTopic,
		Payload:       datatypes.JSON(`{"decision":"APPROVED"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}
		event := outboxEvent("agg-1")

		repo.EXPECT().ListPending(ctx, producer.BatchSize).Return([]kafka.OutboxEvent{event}, nil)
		repo.EXPECT().MarkSent(ctx, event.ID).Return(nil)

		err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		require.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, events.ApprovalDecidedTopic, msg.Topic)
		assert.Equal(t, "agg-1", string(msg.Key))
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
	})

	t.Run("failed publish is rescheduled and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: "bad"}
		bad := outboxEvent("bad")
		good := outboxEvent("good")

		repo.EXPECT().ListPending(ctx, producer.BatchSize).Return([]kafka.OutboxEvent{bad, good}, nil)
		repo.EXPECT().MarkFailed(ctx, bad.ID, "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, good.ID).Return(nil)

		err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Len(t, writer.messages, 1)
	})

	t.Run("list failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, producer.BatchSize).Return(nil, assert.AnError)

		err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.ErrorIs(t, err, assert.AnError)
	})
}
