package service

import (
	"context"
	"encoding/json"
	"time"

	"hr-support-be/internal/dto"
	"hr-support-be/internal/entity"
	"hr-support-be/internal/pkg/logger"
	"hr-support-be/internal/repository/contract"
	"hr-support-be/pkg/webhook"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Subscriber is the slice of the watermill pub/sub the dispatcher needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

type IDispatcherService interface {
	Consume(ctx context.Context) error
}

// dispatcherService fans domain events out to registered webhook endpoints.
// Each matching subscription gets its own goroutine, so one slow or broken
// endpoint never delays the others. Delivery outcomes land in the audit log
// and bump the per-subscription counters.
type dispatcherService struct {
	subscriber   Subscriber
	topic        string
	webhookRepo  contract.WebhookRepository
	deliveryRepo contract.WebhookDeliveryRepository
	deliverer    *webhook.Deliverer
	logger       logger.ILogger
}

func NewDispatcherService(
	subscriber Subscriber,
	topic string,
	webhookRepo contract.WebhookRepository,
	deliveryRepo contract.WebhookDeliveryRepository,
	deliverer *webhook.Deliverer,
	log logger.ILogger,
) IDispatcherService {
	return &dispatcherService{
		subscriber:   subscriber,
		topic:        topic,
		webhookRepo:  webhookRepo,
		deliveryRepo: deliveryRepo,
		deliverer:    deliverer,
		logger:       log,
	}
}

func (s *dispatcherService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *dispatcherService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope dto.EventMessage
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.logger.Error("DispatcherService", "Failed to unmarshal event message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads would fail forever, drop them
		return
	}

	subs, err := s.webhookRepo.FindActiveByEvent(ctx, envelope.Event)
	if err != nil {
		s.logger.Error("DispatcherService", "Failed to load subscriptions", map[string]interface{}{
			"event": envelope.Event,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	for _, sub := range subs {
		go s.dispatch(sub, envelope)
	}

	s.logger.Info("DispatcherService", "Event dispatched", map[string]interface{}{
		"event":         envelope.Event,
		"subscriptions": len(subs),
	})
	msg.Ack()
}

func (s *dispatcherService) dispatch(sub *entity.WebhookSubscription, envelope dto.EventMessage) {
	// Detached from the consumer loop: the delivery lifetime is bounded by
	// attempt timeouts and backoff, not by the incoming message context.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	payload := webhook.NewPayload(envelope.Event, sub.Id.String(), envelope.Data)

	result := s.deliverer.Deliver(ctx, webhook.Target{
		ID:     sub.Id.String(),
		URL:    sub.Url,
		Secret: sub.Secret,
	}, payload)

	if !result.Success {
		s.logger.Warn("DispatcherService", "Webhook delivery failed", map[string]interface{}{
			"webhook_id": sub.Id.String(),
			"event":      envelope.Event,
			"attempts":   result.Attempts,
			"error":      result.Error,
		})
	}

	if err := s.webhookRepo.RecordDelivery(ctx, sub.Id, result.Success, time.Now()); err != nil {
		s.logger.Warn("DispatcherService", "Failed to update delivery counters", map[string]interface{}{
			"webhook_id": sub.Id.String(),
			"error":      err.Error(),
		})
	}

	delivery := &entity.WebhookDelivery{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		EventType:      envelope.Event,
		Payload:        payload,
		Success:        result.Success,
		StatusCode:     result.StatusCode,
		Attempts:       result.Attempts,
		ResponseBody:   result.ResponseBody,
		Error:          result.Error,
		ResponseTimeMs: result.ResponseTime.Milliseconds(),
		CreatedAt:      time.Now(),
	}
	if err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		s.logger.Warn("DispatcherService", "Failed to write delivery log", map[string]interface{}{
			"webhook_id": sub.Id.String(),
			"error":      err.Error(),
		})
	}
}
