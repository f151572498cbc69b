package unitofwork

import (
	"context"

	"hr-support-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	FeedbackRepository() contract.FeedbackRepository
	KBArticleRepository() contract.KBArticleRepository
	WebhookRepository() contract.WebhookRepository
	WebhookDeliveryRepository() contract.WebhookDeliveryRepository
}
