package contract

import (
	"context"
	"time"

	"hr-support-be/internal/entity"
	"hr-support-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WebhookRepository interface {
	Create(ctx context.Context, sub *entity.WebhookSubscription) error
	Update(ctx context.Context, sub *entity.WebhookSubscription) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WebhookSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WebhookSubscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindActiveByEvent returns active subscriptions whose event list contains
	// the given event type.
	FindActiveByEvent(ctx context.Context, eventType string) ([]*entity.WebhookSubscription, error)

	// RecordDelivery bumps the delivery counters in place so concurrent
	// dispatches never lose increments.
	RecordDelivery(ctx context.Context, id uuid.UUID, success bool, at time.Time) error
}
