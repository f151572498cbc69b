package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"hr-support-be/internal/constant"
	"hr-support-be/internal/dto"
	"hr-support-be/internal/entity"
	"hr-support-be/internal/pkg/logger"
	"hr-support-be/internal/pkg/serverutils"
	"hr-support-be/internal/repository/specification"
	"hr-support-be/internal/repository/unitofwork"
	"hr-support-be/pkg/webhook"

	"github.com/google/uuid"
)

type IWebhookService interface {
	Register(ctx context.Context, req *dto.RegisterWebhookRequest) (*dto.RegisterWebhookResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.WebhookResponse, error)
	List(ctx context.Context, limit, offset int, isActive *bool) ([]*dto.WebhookResponse, int64, error)
	Update(ctx context.Context, req *dto.UpdateWebhookRequest) (*dto.WebhookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Test(ctx context.Context, id uuid.UUID) (*dto.TestWebhookResponse, error)
	ListDeliveries(ctx context.Context, id uuid.UUID, limit, offset int) ([]*dto.DeliveryLogResponse, int64, error)
}

type webhookService struct {
	uowFactory unitofwork.RepositoryFactory
	deliverer  *webhook.Deliverer
	logger     logger.ILogger
}

func NewWebhookService(uowFactory unitofwork.RepositoryFactory, deliverer *webhook.Deliverer, log logger.ILogger) IWebhookService {
	return &webhookService{
		uowFactory: uowFactory,
		deliverer:  deliverer,
		logger:     log,
	}
}

func (s *webhookService) Register(ctx context.Context, req *dto.RegisterWebhookRequest) (*dto.RegisterWebhookResponse, error) {
	if err := validateEventTypes(req.Events); err != nil {
		return nil, err
	}

	secret, err := generateSecret()
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to generate webhook secret", err)
	}

	sub := &entity.WebhookSubscription{
		Id:          uuid.New(),
		Url:         req.Url,
		Events:      req.Events,
		Secret:      secret,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WebhookRepository().Create(ctx, sub); err != nil {
		return nil, serverutils.NewInternalError("Failed to register webhook", err)
	}

	s.logger.Info("WebhookService", "Webhook registered", map[string]interface{}{
		"webhook_id": sub.Id.String(),
		"events":     req.Events,
	})

	return &dto.RegisterWebhookResponse{
		Id:     sub.Id,
		Secret: secret,
	}, nil
}

func (s *webhookService) Show(ctx context.Context, id uuid.UUID) (*dto.WebhookResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWebhookResponse(sub), nil
}

func (s *webhookService) List(ctx context.Context, limit, offset int, isActive *bool) ([]*dto.WebhookResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.WebhookRepository()

	var filter []specification.Specification
	if isActive != nil {
		filter = append(filter, specification.FilterBy{Field: "is_active", Value: *isActive})
	}

	total, err := repo.Count(ctx, filter...)
	if err != nil {
		return nil, 0, serverutils.NewInternalError("Failed to count webhooks", err)
	}

	subs, err := repo.FindAll(ctx, append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)...)
	if err != nil {
		return nil, 0, serverutils.NewInternalError("Failed to list webhooks", err)
	}

	responses := make([]*dto.WebhookResponse, len(subs))
	for i, sub := range subs {
		responses[i] = toWebhookResponse(sub)
	}
	return responses, total, nil
}

func (s *webhookService) Update(ctx context.Context, req *dto.UpdateWebhookRequest) (*dto.WebhookResponse, error) {
	sub, err := s.findSubscription(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Url != "" {
		sub.Url = req.Url
	}
	if len(req.Events) > 0 {
		if err := validateEventTypes(req.Events); err != nil {
			return nil, err
		}
		sub.Events = req.Events
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	// The secret is immutable: rotating it would silently break signature
	// verification on the receiver side.

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WebhookRepository().Update(ctx, sub); err != nil {
		return nil, serverutils.NewInternalError("Failed to update webhook", err)
	}
	return toWebhookResponse(sub), nil
}

func (s *webhookService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findSubscription(ctx, id); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WebhookRepository().Delete(ctx, id); err != nil {
		return serverutils.NewInternalError("Failed to delete webhook", err)
	}
	return nil
}

// Test fires a synthetic webhook.test event at the endpoint and reports the
// outcome without touching the subscription's registered event list.
func (s *webhookService) Test(ctx context.Context, id uuid.UUID) (*dto.TestWebhookResponse, error) {
	sub, err := s.findSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := webhook.NewPayload(constant.EventWebhookTest, sub.Id.String(), map[string]interface{}{
		"message": "This is a test delivery",
	})

	result := s.deliverer.Deliver(ctx, webhook.Target{
		ID:     sub.Id.String(),
		URL:    sub.Url,
		Secret: sub.Secret,
	}, payload)

	s.recordDelivery(ctx, sub.Id, constant.EventWebhookTest, payload, result)

	return &dto.TestWebhookResponse{
		Success:        result.Success,
		StatusCode:     result.StatusCode,
		Attempts:       result.Attempts,
		Error:          result.Error,
		ResponseTimeMs: result.ResponseTime.Milliseconds(),
	}, nil
}

func (s *webhookService) ListDeliveries(ctx context.Context, id uuid.UUID, limit, offset int) ([]*dto.DeliveryLogResponse, int64, error) {
	if _, err := s.findSubscription(ctx, id); err != nil {
		return nil, 0, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.WebhookDeliveryRepository()

	filter := []specification.Specification{specification.BySubscriptionId{SubscriptionId: id}}

	total, err := repo.Count(ctx, filter...)
	if err != nil {
		return nil, 0, serverutils.NewInternalError("Failed to count deliveries", err)
	}

	deliveries, err := repo.FindAll(ctx, append(filter,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)...)
	if err != nil {
		return nil, 0, serverutils.NewInternalError("Failed to list deliveries", err)
	}

	responses := make([]*dto.DeliveryLogResponse, len(deliveries))
	for i, d := range deliveries {
		responses[i] = &dto.DeliveryLogResponse{
			Id:             d.Id,
			EventType:      d.EventType,
			Payload:        d.Payload,
			Success:        d.Success,
			StatusCode:     d.StatusCode,
			Attempts:       d.Attempts,
			Error:          d.Error,
			ResponseTimeMs: d.ResponseTimeMs,
			CreatedAt:      d.CreatedAt,
		}
	}
	return responses, total, nil
}

func (s *webhookService) findSubscription(ctx context.Context, id uuid.UUID) (*entity.WebhookSubscription, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := uow.WebhookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternalError("Failed to load webhook", err)
	}
	if sub == nil {
		return nil, serverutils.NewNotFoundError("Webhook not found")
	}
	return sub, nil
}

func (s *webhookService) recordDelivery(ctx context.Context, subId uuid.UUID, eventType string, payload map[string]interface{}, result webhook.DeliveryResult) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.WebhookRepository().RecordDelivery(ctx, subId, result.Success, time.Now()); err != nil {
		s.logger.Warn("WebhookService", "Failed to update delivery counters", map[string]interface{}{"error": err.Error()})
	}

	delivery := &entity.WebhookDelivery{
		Id:             uuid.New(),
		SubscriptionId: subId,
		EventType:      eventType,
		Payload:        payload,
		Success:        result.Success,
		StatusCode:     result.StatusCode,
		Attempts:       result.Attempts,
		ResponseBody:   result.ResponseBody,
		Error:          result.Error,
		ResponseTimeMs: result.ResponseTime.Milliseconds(),
		CreatedAt:      time.Now(),
	}
	if err := uow.WebhookDeliveryRepository().Create(ctx, delivery); err != nil {
		s.logger.Warn("WebhookService", "Failed to write delivery log", map[string]interface{}{"error": err.Error()})
	}
}

// validateEventTypes rejects unknown events and the reserved webhook.test
// type, which can only be triggered through the test endpoint.
func validateEventTypes(events []string) error {
	for _, e := range events {
		if e == constant.EventWebhookTest {
			return serverutils.NewBadRequestError(fmt.Sprintf("Event type %q cannot be subscribed to directly", e))
		}
		if !constant.IsValidWebhookEvent(e) {
			return serverutils.NewBadRequestError(fmt.Sprintf("Unknown event type %q", e))
		}
	}
	return nil
}

func generateSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "whsec_" + hex.EncodeToString(buf), nil
}

func toWebhookResponse(sub *entity.WebhookSubscription) *dto.WebhookResponse {
	return &dto.WebhookResponse{
		Id:             sub.Id,
		Url:            sub.Url,
		Events:         sub.Events,
		Description:    sub.Description,
		IsActive:       sub.IsActive,
		SecretHint:     maskSecret(sub.Secret),
		DeliveryCount:  sub.DeliveryCount,
		FailureCount:   sub.FailureCount,
		LastDeliveryAt: sub.LastDeliveryAt,
		LastFailureAt:  sub.LastFailureAt,
		CreatedAt:      sub.CreatedAt,
	}
}

func maskSecret(secret string) string {
	if len(secret) <= 10 {
		return "****"
	}
	return secret[:10] + "****"
}
