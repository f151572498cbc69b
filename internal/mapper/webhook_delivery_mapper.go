package mapper

import (
	"encoding/json"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/model"

	"gorm.io/datatypes"
)

type WebhookDeliveryMapper struct{}

func NewWebhookDeliveryMapper() *WebhookDeliveryMapper {
	return &WebhookDeliveryMapper{}
}

func (m *WebhookDeliveryMapper) ToEntity(d *model.WebhookDelivery) *entity.WebhookDelivery {
	if d == nil {
		return nil
	}
	var payload map[string]interface{}
	if len(d.Payload) > 0 {
		_ = json.Unmarshal(d.Payload, &payload)
	}

	return &entity.WebhookDelivery{
		Id:             d.Id,
		SubscriptionId: d.SubscriptionId,
		EventType:      d.EventType,
		Payload:        payload,
		Success:        d.Success,
		StatusCode:     d.StatusCode,
		Attempts:       d.Attempts,
		ResponseBody:   d.ResponseBody,
		Error:          d.Error,
		ResponseTimeMs: d.ResponseTimeMs,
		CreatedAt:      d.CreatedAt,
	}
}

func (m *WebhookDeliveryMapper) ToModel(d *entity.WebhookDelivery) *model.WebhookDelivery {
	if d == nil {
		return nil
	}
	var payload datatypes.JSON
	if d.Payload != nil {
		if raw, err := json.Marshal(d.Payload); err == nil {
			payload = datatypes.JSON(raw)
		}
	}

	return &model.WebhookDelivery{
		Id:             d.Id,
		SubscriptionId: d.SubscriptionId,
		EventType:      d.EventType,
		Payload:        payload,
		Success:        d.Success,
		StatusCode:     d.StatusCode,
		Attempts:       d.Attempts,
		ResponseBody:   d.ResponseBody,
		Error:          d.Error,
		ResponseTimeMs: d.ResponseTimeMs,
		CreatedAt:      d.CreatedAt,
	}
}

func (m *WebhookDeliveryMapper) ToEntities(deliveries []*model.WebhookDelivery) []*entity.WebhookDelivery {
	entities := make([]*entity.WebhookDelivery, len(deliveries))
	for i, d := range deliveries {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
