package responder

import (
	"context"

	"hr-support-be/internal/constant"
	"hr-support-be/pkg/workflow"
)

type escalationResponder struct{}

// NewEscalation builds the human-handoff message. It is deterministic and
// never fails, so the escalation path has no degraded mode of its own.
func NewEscalation() workflow.Responder {
	return &escalationResponder{}
}

func (r *escalationResponder) Respond(_ context.Context, state *workflow.State) (string, error) {
	var message string
	switch state.Sentiment {
	case constant.SentimentAngry:
		message = "I sincerely apologize for the frustration you're experiencing. " +
			"Your concern is very important to us, and I'm connecting you with " +
			"a specialized support representative who can provide immediate assistance. " +
			"They will be with you shortly and have full context of your situation."
	case constant.SentimentNegative:
		message = "I understand your concern, and I want to ensure you receive the best possible assistance. " +
			"I'm connecting you with a senior support specialist who can help resolve this issue. " +
			"They'll have access to all the details we've discussed."
	default:
		message = "To ensure you receive the most accurate assistance for your inquiry, " +
			"I'm connecting you with a specialized support representative. " +
			"They'll be able to help you shortly."
	}

	caseRef := state.Request.ConversationID
	if caseRef == "" {
		caseRef = "N/A"
	}
	message += "\n\nCase Reference: " + caseRef
	message += "\n\nEstimated wait time: 2-5 minutes"

	state.NextAction = constant.ActionEscalate
	return message, nil
}

func (r *escalationResponder) Fallback() string {
	return "Your request has been forwarded to a human agent who will contact you shortly."
}
