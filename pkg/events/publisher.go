package events

import (
	"encoding/json"
	"time"

	"ai-chatbox-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Publisher emits domain events on the in-process audit topic. Publishing is
// best-effort: a failed publish is logged and never fails the operation that
// triggered it.
type Publisher struct {
	pubSub *gochannel.GoChannel
	topic  string
	logger logger.ILogger
}

func NewPublisher(pubSub *gochannel.GoChannel, topic string, sysLogger logger.ILogger) *Publisher {
	return &Publisher{
		pubSub: pubSub,
		topic:  topic,
		logger: sysLogger,
	}
}

func (p *Publisher) Publish(eventType string, data map[string]interface{}) {
	if p == nil || p.pubSub == nil {
		return
	}

	evt := Event{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("EVENTS", "Failed to marshal event", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topic, msg); err != nil {
		p.logger.Error("EVENTS", "Failed to publish event", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}

func (p *Publisher) PublishFileUploaded(fileId, name, fileType string, size int64) {
	p.Publish(TypeFileUploaded, map[string]interface{}{
		"file_id":   fileId,
		"name":      name,
		"file_type": fileType,
		"size":      size,
	})
}

func (p *Publisher) PublishShareCreated(shareToken, sessionId string) {
	p.Publish(TypeShareCreated, map[string]interface{}{
		"share_token": shareToken,
		"session_id":  sessionId,
	})
}

func (p *Publisher) PublishShareAccessed(shareToken, ipAddress string, accessCount int) {
	p.Publish(TypeShareAccessed, map[string]interface{}{
		"share_token":  shareToken,
		"ip_address":   ipAddress,
		"access_count": accessCount,
	})
}

func (p *Publisher) PublishSessionDeleted(sessionId string) {
	p.Publish(TypeSessionDeleted, map[string]interface{}{
		"session_id": sessionId,
	})
}

func (p *Publisher) PublishSessionImported(sessionId string, messageCount, fileCount int) {
	p.Publish(TypeSessionImported, map[string]interface{}{
		"session_id":    sessionId,
		"message_count": messageCount,
		"file_count":    fileCount,
	})
}
