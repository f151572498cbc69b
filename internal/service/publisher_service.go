package service

import (
	"context"
	"encoding/json"
	"time"

	"hr-support-be/internal/dto"
	"hr-support-be/internal/pkg/logger"
	"hr-support-be/pkg/events"
	pktNats "hr-support-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, eventType string, data map[string]interface{}) error
}

// publisherService puts domain events on the in-process bus that feeds the
// webhook dispatcher, and mirrors them to NATS for external consumers. The
// NATS leg is best effort: a dead broker never blocks the request path.
type publisherService struct {
	pubSub  *gochannel.GoChannel
	topic   string
	natsPub *pktNats.Publisher
	logger  logger.ILogger
}

func NewPublisherService(topic string, pubSub *gochannel.GoChannel, natsPub *pktNats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:  pubSub,
		topic:   topic,
		natsPub: natsPub,
		logger:  log,
	}
}

func (s *publisherService) Publish(ctx context.Context, eventType string, data map[string]interface{}) error {
	envelope := dto.EventMessage{
		Event:      eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topic, msg); err != nil {
		return err
	}

	if s.natsPub != nil {
		event := events.BaseEvent{
			Type:       eventType,
			Data:       data,
			OccurredAt: envelope.OccurredAt,
		}
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("PublisherService", "Failed to mirror event to NATS", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}

	return nil
}
