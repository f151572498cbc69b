package implementation

import (
	"context"
	"errors"
	"time"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/mapper"
	"hr-support-be/internal/model"
	"hr-support-be/internal/repository/contract"
	"hr-support-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebhookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WebhookMapper
}

func NewWebhookRepository(db *gorm.DB) contract.WebhookRepository {
	return &WebhookRepositoryImpl{
		db:     db,
		mapper: mapper.NewWebhookMapper(),
	}
}

func (r *WebhookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WebhookRepositoryImpl) Create(ctx context.Context, sub *entity.WebhookSubscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *WebhookRepositoryImpl) Update(ctx context.Context, sub *entity.WebhookSubscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *WebhookRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WebhookSubscription{}, id).Error
}

func (r *WebhookRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WebhookSubscription, error) {
	var m model.WebhookSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WebhookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookSubscription, error) {
	var models []*model.WebhookSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WebhookRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.WebhookSubscription{}).Count(&count).Error
	return count, err
}

func (r *WebhookRepositoryImpl) FindActiveByEvent(ctx context.Context, eventType string) ([]*entity.WebhookSubscription, error) {
	var models []*model.WebhookSubscription
	// jsonb containment: events @> '["query.created"]'
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("events @> ?", `["`+eventType+`"]`).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WebhookRepositoryImpl) RecordDelivery(ctx context.Context, id uuid.UUID, success bool, at time.Time) error {
	updates := map[string]interface{}{
		"delivery_count":   gorm.Expr("delivery_count + 1"),
		"last_delivery_at": at,
	}
	if !success {
		updates["failure_count"] = gorm.Expr("failure_count + 1")
		updates["last_failure_at"] = at
	}
	return r.db.WithContext(ctx).
		Model(&model.WebhookSubscription{}).
		Where("id = ?", id).
		Updates(updates).Error
}
