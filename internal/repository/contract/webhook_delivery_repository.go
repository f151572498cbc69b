package contract

import (
	"context"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/repository/specification"
)

type WebhookDeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.WebhookDelivery) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookDelivery, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
