package webhook

import (
	"time"
)

// NewPayload wraps event data in the standard envelope delivered to every
// subscriber:
//
//	{"event": ..., "timestamp": RFC3339 UTC, "webhook_id": ..., "data": {...}}
func NewPayload(eventType, webhookID string, data map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"event":      eventType,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"webhook_id": webhookID,
		"data":       data,
	}
}
