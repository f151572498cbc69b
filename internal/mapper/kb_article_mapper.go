package mapper

import (
	"time"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KBArticleMapper struct{}

func NewKBArticleMapper() *KBArticleMapper {
	return &KBArticleMapper{}
}

func (m *KBArticleMapper) ToEntity(a *model.KBArticle) *entity.KBArticle {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.KBArticle{
		Id:             a.Id,
		Title:          a.Title,
		Content:        a.Content,
		Category:       a.Category,
		EmbeddingValue: a.EmbeddingValue.Slice(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      a.DeletedAt.Valid,
	}
}

func (m *KBArticleMapper) ToModel(a *entity.KBArticle) *model.KBArticle {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.KBArticle{
		Id:             a.Id,
		Title:          a.Title,
		Content:        a.Content,
		Category:       a.Category,
		EmbeddingValue: pgvector.NewVector(a.EmbeddingValue),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *KBArticleMapper) ToEntities(articles []*model.KBArticle) []*entity.KBArticle {
	entities := make([]*entity.KBArticle, len(articles))
	for i, a := range articles {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *KBArticleMapper) ToModels(articles []*entity.KBArticle) []*model.KBArticle {
	models := make([]*model.KBArticle, len(articles))
	for i, a := range articles {
		models[i] = m.ToModel(a)
	}
	return models
}
