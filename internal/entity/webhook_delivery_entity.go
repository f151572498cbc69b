package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebhookDelivery is the audit record of one delivery job, written after the
// final attempt regardless of outcome.
type WebhookDelivery struct {
	Id             uuid.UUID
	SubscriptionId uuid.UUID
	EventType      string
	Payload        map[string]interface{}
	Success        bool
	StatusCode     int
	Attempts       int
	ResponseBody   string
	Error          string
	ResponseTimeMs int64
	CreatedAt      time.Time
}
