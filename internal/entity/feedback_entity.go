package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	UserId         string
	Rating         int
	Comment        string
	CreatedAt      time.Time
}
