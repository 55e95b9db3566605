package service

import (
	"context"
	"encoding/json"

	"financegpt-be/internal/pkg/logger"
	"financegpt-be/internal/repository/unitofwork"
	"financegpt-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// QueryCompletedEventType tags the event published after a query
// request reaches its Logging state.
const QueryCompletedEventType = "QUERY_COMPLETED"

// QueryCompletedMessage is the envelope payload for that event.
type QueryCompletedMessage struct {
	UserId  uuid.UUID `json:"user_id"`
	TraceId string    `json:"trace_id"`
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var env events.Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal event envelope", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}
	if env.EventType != QueryCompletedEventType {
		msg.Ack()
		return
	}

	var payload QueryCompletedMessage
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal query completed payload", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().IncrementQueryCount(ctx, payload.UserId); err != nil {
		cs.logger.Error("consumer", "failed to increment query count", map[string]interface{}{
			"error":    err.Error(),
			"user_id":  payload.UserId.String(),
			"trace_id": payload.TraceId,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
