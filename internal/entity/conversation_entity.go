package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the persisted outcome of one pipeline run.
type Conversation struct {
	Id               uuid.UUID
	UserId           string
	Query            string
	Category         string
	Sentiment        string
	PriorityScore    int
	Escalated        bool
	EscalationReason string
	Response         string
	Status           string
	AttemptCount     int
	ProcessingTimeMs int64
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
