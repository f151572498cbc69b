package implementation

import (
	"context"
	"errors"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/mapper"
	"hr-support-be/internal/model"
	"hr-support-be/internal/repository/contract"
	"hr-support-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KBArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KBArticleMapper
}

func NewKBArticleRepository(db *gorm.DB) contract.KBArticleRepository {
	return &KBArticleRepositoryImpl{
		db:     db,
		mapper: mapper.NewKBArticleMapper(),
	}
}

func (r *KBArticleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KBArticleRepositoryImpl) Create(ctx context.Context, article *entity.KBArticle) error {
	m := r.mapper.ToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ToEntity(m)
	return nil
}

func (r *KBArticleRepositoryImpl) CreateBulk(ctx context.Context, articles []*entity.KBArticle) error {
	models := r.mapper.ToModels(articles)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*articles[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *KBArticleRepositoryImpl) Update(ctx context.Context, article *entity.KBArticle) error {
	m := r.mapper.ToModel(article)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ToEntity(m)
	return nil
}

func (r *KBArticleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KBArticle{}, id).Error
}

func (r *KBArticleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KBArticle, error) {
	var m model.KBArticle
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KBArticleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KBArticle, error) {
	var models []*model.KBArticle
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KBArticleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.KBArticle{}).Count(&count).Error
	return count, err
}

func (r *KBArticleRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, category string, threshold float64) ([]*contract.ScoredKBArticle, error) {
	if limit <= 0 {
		limit = 3
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding_value <=> query_vector) recovers the similarity.
	type result struct {
		model.KBArticle
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("kb_articles").
		Select("kb_articles.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold)

	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredKBArticle, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredKBArticle{
			Article:    r.mapper.ToEntity(&res.KBArticle),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
