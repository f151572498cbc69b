package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterWebhookRequest struct {
	Url         string   `json:"url" validate:"required,url"`
	Events      []string `json:"events" validate:"required,min=1"`
	Description string   `json:"description" validate:"max=500"`
}

// RegisterWebhookResponse is the only place the plaintext secret is ever
// returned. Subsequent reads expose a masked version.
type RegisterWebhookResponse struct {
	Id     uuid.UUID `json:"id"`
	Secret string    `json:"secret"`
}

type UpdateWebhookRequest struct {
	Id          uuid.UUID `json:"-"`
	Url         string    `json:"url" validate:"omitempty,url"`
	Events      []string  `json:"events" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool     `json:"is_active"`
}

type WebhookResponse struct {
	Id             uuid.UUID  `json:"id"`
	Url            string     `json:"url"`
	Events         []string   `json:"events"`
	Description    string     `json:"description,omitempty"`
	IsActive       bool       `json:"is_active"`
	SecretHint     string     `json:"secret_hint"`
	DeliveryCount  int64      `json:"delivery_count"`
	FailureCount   int64      `json:"failure_count"`
	LastDeliveryAt *time.Time `json:"last_delivery_at,omitempty"`
	LastFailureAt  *time.Time `json:"last_failure_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type TestWebhookResponse struct {
	Success        bool   `json:"success"`
	StatusCode     int    `json:"status_code"`
	Attempts       int    `json:"attempts"`
	Error          string `json:"error,omitempty"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

type DeliveryLogResponse struct {
	Id             uuid.UUID              `json:"id"`
	EventType      string                 `json:"event_type"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
	Success        bool                   `json:"success"`
	StatusCode     int                    `json:"status_code"`
	Attempts       int                    `json:"attempts"`
	Error          string                 `json:"error,omitempty"`
	ResponseTimeMs int64                  `json:"response_time_ms"`
	CreatedAt      time.Time              `json:"created_at"`
}
