package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WebhookDelivery struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId uuid.UUID      `gorm:"type:uuid;not null;index:idx_webhook_deliveries_sub_created,priority:1"`
	EventType      string         `gorm:"type:varchar(50);not null;index"`
	Payload        datatypes.JSON `gorm:"type:jsonb"`
	Success        bool           `gorm:"default:false"`
	StatusCode     int            `gorm:"default:0"`
	Attempts       int            `gorm:"default:0"`
	ResponseBody   string         `gorm:"type:text"`
	Error          string         `gorm:"type:text"`
	ResponseTimeMs int64          `gorm:"default:0"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index:idx_webhook_deliveries_sub_created,priority:2"`
}

func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}
