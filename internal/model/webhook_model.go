package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookSubscription struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Url         string         `gorm:"type:text;not null"`
	Events      datatypes.JSON `gorm:"type:jsonb;not null"` // JSON array of event type strings
	Secret      string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	IsActive    bool           `gorm:"default:true;index"`

	DeliveryCount  int64 `gorm:"default:0"`
	FailureCount   int64 `gorm:"default:0"`
	LastDeliveryAt *time.Time
	LastFailureAt  *time.Time

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (WebhookSubscription) TableName() string {
	return "webhook_subscriptions"
}
