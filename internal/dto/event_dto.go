package dto

import "time"

// EventMessage is the envelope published on the internal event bus and
// consumed by the webhook dispatcher.
type EventMessage struct {
	Event      string                 `json:"event"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
