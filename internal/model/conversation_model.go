package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           string    `gorm:"type:varchar(100);not null;index:idx_conversations_user_created,priority:1"`
	Query            string    `gorm:"type:text;not null"`
	Category         string    `gorm:"type:varchar(30);index"`
	Sentiment        string    `gorm:"type:varchar(20)"`
	PriorityScore    int       `gorm:"default:0"`
	Escalated        bool      `gorm:"default:false;index"`
	EscalationReason string    `gorm:"type:text"`
	Response         string    `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(20);not null"`
	AttemptCount     int       `gorm:"default:1"`
	ProcessingTimeMs int64     `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index:idx_conversations_user_created,priority:2"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
