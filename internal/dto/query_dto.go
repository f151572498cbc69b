package dto

import (
	"time"

	"github.com/google/uuid"
)

// HistoryTurn is one prior exchange supplied by the client for context.
type HistoryTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

type SubmitQueryRequest struct {
	Query          string        `json:"query" validate:"required,min=1,max=4000"`
	UserId         string        `json:"user_id" validate:"required,max=100"`
	ConversationId *uuid.UUID    `json:"conversation_id"`
	History        []HistoryTurn `json:"history" validate:"dive"`
	IsVIP          bool          `json:"is_vip"`
	IsRepeat       bool          `json:"is_repeat_contact"`
}

type KnowledgeSnippet struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

type SubmitQueryResponse struct {
	ConversationId   uuid.UUID          `json:"conversation_id"`
	Category         string             `json:"category"`
	Sentiment        string             `json:"sentiment"`
	PriorityScore    int                `json:"priority_score"`
	Escalated        bool               `json:"escalated"`
	EscalationReason string             `json:"escalation_reason,omitempty"`
	Response         string             `json:"response"`
	Knowledge        []KnowledgeSnippet `json:"knowledge,omitempty"`
	AttemptCount     int                `json:"attempt_count"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

type ShowConversationResponse struct {
	Id               uuid.UUID  `json:"id"`
	UserId           string     `json:"user_id"`
	Query            string     `json:"query"`
	Category         string     `json:"category"`
	Sentiment        string     `json:"sentiment"`
	PriorityScore    int        `json:"priority_score"`
	Escalated        bool       `json:"escalated"`
	EscalationReason string     `json:"escalation_reason,omitempty"`
	Response         string     `json:"response"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}
