package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebhookSubscription registers an external endpoint for event notifications.
// The secret is generated at registration and never changes afterwards.
type WebhookSubscription struct {
	Id          uuid.UUID
	Url         string
	Events      []string
	Secret      string
	Description string
	IsActive    bool

	DeliveryCount  int64
	FailureCount   int64
	LastDeliveryAt *time.Time
	LastFailureAt  *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// Subscribed reports whether the subscription wants the given event type.
func (s *WebhookSubscription) Subscribed(eventType string) bool {
	for _, e := range s.Events {
		if e == eventType {
			return true
		}
	}
	return false
}
