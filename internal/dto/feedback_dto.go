package dto

import (
	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
	UserId         string    `json:"user_id" validate:"required,max=100"`
	Rating         int       `json:"rating" validate:"required,min=1,max=5"`
	Comment        string    `json:"comment" validate:"max=2000"`
}

type SubmitFeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}
