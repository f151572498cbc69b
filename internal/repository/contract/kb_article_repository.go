package contract

import (
	"context"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredKBArticle wraps KBArticle with its similarity score.
type ScoredKBArticle struct {
	Article    *entity.KBArticle
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type KBArticleRepository interface {
	Create(ctx context.Context, article *entity.KBArticle) error
	CreateBulk(ctx context.Context, articles []*entity.KBArticle) error
	Update(ctx context.Context, article *entity.KBArticle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KBArticle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KBArticle, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilarWithScore returns articles with cosine similarity scores,
	// filtered by threshold. Category is optional; empty matches all.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, category string, threshold float64) ([]*ScoredKBArticle, error)
}
