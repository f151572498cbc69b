package mapper

import (
	"time"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Conversation{
		Id:               c.Id,
		UserId:           c.UserId,
		Query:            c.Query,
		Category:         c.Category,
		Sentiment:        c.Sentiment,
		PriorityScore:    c.PriorityScore,
		Escalated:        c.Escalated,
		EscalationReason: c.EscalationReason,
		Response:         c.Response,
		Status:           c.Status,
		AttemptCount:     c.AttemptCount,
		ProcessingTimeMs: c.ProcessingTimeMs,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Conversation{
		Id:               c.Id,
		UserId:           c.UserId,
		Query:            c.Query,
		Category:         c.Category,
		Sentiment:        c.Sentiment,
		PriorityScore:    c.PriorityScore,
		Escalated:        c.Escalated,
		EscalationReason: c.EscalationReason,
		Response:         c.Response,
		Status:           c.Status,
		AttemptCount:     c.AttemptCount,
		ProcessingTimeMs: c.ProcessingTimeMs,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ConversationMapper) ToEntities(conversations []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(conversations))
	for i, c := range conversations {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
