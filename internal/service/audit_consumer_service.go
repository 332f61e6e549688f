package service

import (
	"context"
	"encoding/json"
	"time"

	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/pkg/logger"
	"contentcraft-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains content-mutation messages off the in-process
// bus and records them as system log rows. Failures here never surface to
// the request that produced the message.
type auditConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
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

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ContentEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("audit", "Failed to unmarshal content event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details, _ := json.Marshal(map[string]interface{}{
		"content_id": payload.ContentId,
		"user_id":    payload.UserId,
		"title":      payload.Title,
	})
	detailsStr := string(details)
	module := "content"

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.SystemLog{
		Id:        uuid.New(),
		Level:     "INFO",
		Module:    &module,
		Message:   payload.EventType,
		Details:   &detailsStr,
		CreatedAt: time.Now(),
	}

	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		cs.logger.Error("audit", "Failed to persist audit entry", map[string]interface{}{
			"error":      err.Error(),
			"event_type": payload.EventType,
		})
		msg.Nack() // Retriable
		return
	}

	msg.Ack()
}
