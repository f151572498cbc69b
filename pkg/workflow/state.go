package workflow

import (
	"time"

	"hr-support-be/pkg/llm"
)

// Flags carries requester context that influences priority and escalation.
type Flags struct {
	IsVIP        bool
	IsRepeat     bool
	AttemptCount int
}

// Request is the immutable input to a single pipeline run.
type Request struct {
	Query          string
	UserID         string
	ConversationID string
	History        []llm.Message
	Flags          Flags
}

// Snippet is one knowledge-base hit attached to the state.
type Snippet struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// State is the accumulator threaded through the pipeline stages. It is owned
// by exactly one run; stages only write the fields they are responsible for.
type State struct {
	Request Request

	Category      string
	Sentiment     string
	PriorityScore int
	Knowledge     []Snippet

	ShouldEscalate   bool
	EscalationReason string

	Response   string
	NextAction string
}

// Result is the immutable snapshot extracted when the pipeline terminates.
type Result struct {
	ConversationID   string
	UserID           string
	Query            string
	Category         string
	Sentiment        string
	PriorityScore    int
	Escalated        bool
	EscalationReason string
	Response         string
	Knowledge        []Snippet
	ProcessingTime   time.Duration
}

func (s *State) snapshot(elapsed time.Duration) Result {
	return Result{
		ConversationID:   s.Request.ConversationID,
		UserID:           s.Request.UserID,
		Query:            s.Request.Query,
		Category:         s.Category,
		Sentiment:        s.Sentiment,
		PriorityScore:    s.PriorityScore,
		Escalated:        s.ShouldEscalate,
		EscalationReason: s.EscalationReason,
		Response:         s.Response,
		Knowledge:        s.Knowledge,
		ProcessingTime:   elapsed,
	}
}

// AddEscalationReason flags the state for escalation, appending to any reason
// already present so no trigger is lost.
func (s *State) AddEscalationReason(reason string) {
	s.ShouldEscalate = true
	if s.EscalationReason == "" {
		s.EscalationReason = reason
		return
	}
	s.EscalationReason += "; " + reason
}
