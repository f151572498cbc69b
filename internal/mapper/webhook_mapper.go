package mapper

import (
	"encoding/json"
	"time"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookMapper struct{}

func NewWebhookMapper() *WebhookMapper {
	return &WebhookMapper{}
}

func (m *WebhookMapper) ToEntity(s *model.WebhookSubscription) *entity.WebhookSubscription {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var events []string
	if len(s.Events) > 0 {
		// Malformed rows yield an empty event list rather than an error; the
		// subscription then simply never matches.
		_ = json.Unmarshal(s.Events, &events)
	}

	return &entity.WebhookSubscription{
		Id:             s.Id,
		Url:            s.Url,
		Events:         events,
		Secret:         s.Secret,
		Description:    s.Description,
		IsActive:       s.IsActive,
		DeliveryCount:  s.DeliveryCount,
		FailureCount:   s.FailureCount,
		LastDeliveryAt: s.LastDeliveryAt,
		LastFailureAt:  s.LastFailureAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      s.DeletedAt.Valid,
	}
}

func (m *WebhookMapper) ToModel(s *entity.WebhookSubscription) *model.WebhookSubscription {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	eventsJSON, _ := json.Marshal(s.Events)

	return &model.WebhookSubscription{
		Id:             s.Id,
		Url:            s.Url,
		Events:         datatypes.JSON(eventsJSON),
		Secret:         s.Secret,
		Description:    s.Description,
		IsActive:       s.IsActive,
		DeliveryCount:  s.DeliveryCount,
		FailureCount:   s.FailureCount,
		LastDeliveryAt: s.LastDeliveryAt,
		LastFailureAt:  s.LastFailureAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *WebhookMapper) ToEntities(subs []*model.WebhookSubscription) []*entity.WebhookSubscription {
	entities := make([]*entity.WebhookSubscription, len(subs))
	for i, s := range subs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
