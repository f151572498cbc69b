package mapper

import (
	"hr-support-be/internal/entity"
	"hr-support-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:             f.Id,
		ConversationId: f.ConversationId,
		UserId:         f.UserId,
		Rating:         f.Rating,
		Comment:        f.Comment,
		CreatedAt:      f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:             f.Id,
		ConversationId: f.ConversationId,
		UserId:         f.UserId,
		Rating:         f.Rating,
		Comment:        f.Comment,
		CreatedAt:      f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(feedbacks []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(feedbacks))
	for i, f := range feedbacks {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
