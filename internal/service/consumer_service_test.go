package service

import (
	"context"
	"errors"
	"testing"

	"financegpt-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestConsumer(users *fakeUserRepo) *consumerService {
	return &consumerService{
		topicName:  "QUERY_COMPLETED",
		uowFactory: &fakeUowFactory{users: users},
		logger:     noopLogger{},
	}
}

func completedEventMessage(t *testing.T, userId uuid.UUID) *message.Message {
	t.Helper()
	payload, err := events.Marshal(events.NewBaseEvent(QueryCompletedEventType, map[string]interface{}{
		"user_id":  userId.String(),
		"trace_id": uuid.NewString(),
	}))
	assert.NoError(t, err)
	return message.NewMessage(uuid.NewString(), payload)
}

func TestProcessMessageIncrementsQueryCount(t *testing.T) {
	users := &fakeUserRepo{}
	cs := newTestConsumer(users)
	userId := uuid.New()
	msg := completedEventMessage(t, userId)

	cs.processMessage(context.Background(), msg)

	assert.Equal(t, []uuid.UUID{userId}, users.incremented)
	select {
	case <-msg.Acked():
	default:
		t.Fatal("message should be acked")
	}
}

func TestProcessMessageIgnoresOtherEventTypes(t *testing.T) {
	users := &fakeUserRepo{}
	cs := newTestConsumer(users)
	payload, err := events.Marshal(events.NewBaseEvent("USER_REGISTERED", map[string]interface{}{
		"user_id": uuid.NewString(),
	}))
	assert.NoError(t, err)
	msg := message.NewMessage(uuid.NewString(), payload)

	cs.processMessage(context.Background(), msg)

	assert.Empty(t, users.incremented)
	select {
	case <-msg.Acked():
	default:
		t.Fatal("foreign event types are acked, not retried")
	}
}

func TestProcessMessageAcksGarbage(t *testing.T) {
	users := &fakeUserRepo{}
	cs := newTestConsumer(users)
	msg := message.NewMessage(uuid.NewString(), []byte("not json"))

	cs.processMessage(context.Background(), msg)

	assert.Empty(t, users.incremented)
	select {
	case <-msg.Acked():
	default:
		t.Fatal("invalid payloads are acked to prevent infinite retry")
	}
}

func TestProcessMessageNacksOnRepositoryError(t *testing.T) {
	users := &fakeUserRepo{incrementErr: errors.New("db down")}
	cs := newTestConsumer(users)
	msg := completedEventMessage(t, uuid.New())

	cs.processMessage(context.Background(), msg)

	select {
	case <-msg.Nacked():
	default:
		t.Fatal("repository failures should nack for redelivery")
	}
}
