package implementation

import (
	"context"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/mapper"
	"hr-support-be/internal/model"
	"hr-support-be/internal/repository/contract"
	"hr-support-be/internal/repository/specification"

	"gorm.io/gorm"
)

type WebhookDeliveryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WebhookDeliveryMapper
}

func NewWebhookDeliveryRepository(db *gorm.DB) contract.WebhookDeliveryRepository {
	return &WebhookDeliveryRepositoryImpl{
		db:     db,
		mapper: mapper.NewWebhookDeliveryMapper(),
	}
}

func (r *WebhookDeliveryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WebhookDeliveryRepositoryImpl) Create(ctx context.Context, delivery *entity.WebhookDelivery) error {
	m := r.mapper.ToModel(delivery)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*delivery = *r.mapper.ToEntity(m)
	return nil
}

func (r *WebhookDeliveryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookDelivery, error) {
	var models []*model.WebhookDelivery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WebhookDeliveryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.WebhookDelivery{}).Count(&count).Error
	return count, err
}
