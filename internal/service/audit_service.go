package service

import (
	"context"
	"encoding/json"

	"ai-chatbox-be/internal/pkg/logger"
	"ai-chatbox-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditService interface {
	Consume(ctx context.Context) error
}

// auditService drains the in-process audit topic and writes each domain
// event to the structured log.
type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
	}
}

func (as *auditService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, as.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(msg)
		}
	}()

	return nil
}

func (as *auditService) processMessage(msg *message.Message) {
	var evt events.Event
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		as.logger.Error("AUDIT", "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	as.logger.Info("AUDIT", evt.Type, map[string]interface{}{
		"data":        evt.Data,
		"occurred_at": evt.OccurredAt,
	})
	msg.Ack()
}
