package constant

// HR query categories. CategoryGeneral is the routing fallback for anything
// the classifier cannot place.
const (
	CategoryRecruitment     = "Recruitment"
	CategoryPayroll         = "Payroll"
	CategoryBenefits        = "Benefits"
	CategoryPolicy          = "Policy"
	CategoryLeaveManagement = "LeaveManagement"
	CategoryPerformance     = "Performance"
	CategoryGeneral         = "General"
)

// Sentiment labels as normalized from classifier output.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
	SentimentAngry    = "Angry"
)

// Terminal actions recorded on the workflow state.
const (
	ActionComplete = "complete"
	ActionEscalate = "escalate"
)

// Conversation status values.
const (
	ConversationStatusResolved  = "Resolved"
	ConversationStatusEscalated = "Escalated"
)

// Webhook event types. This set is closed: registration rejects anything else.
// EventWebhookTest is reserved for test deliveries and cannot be subscribed to.
const (
	EventQueryCreated     = "query.created"
	EventQueryResolved    = "query.resolved"
	EventQueryEscalated   = "query.escalated"
	EventFeedbackReceived = "feedback.received"
	EventWebhookTest      = "webhook.test"
)

// Categories lists all routable categories.
func Categories() []string {
	return []string{
		CategoryRecruitment,
		CategoryPayroll,
		CategoryBenefits,
		CategoryPolicy,
		CategoryLeaveManagement,
		CategoryPerformance,
		CategoryGeneral,
	}
}

// WebhookEvents lists all event types a subscription may register for.
func WebhookEvents() []string {
	return []string{
		EventQueryCreated,
		EventQueryResolved,
		EventQueryEscalated,
		EventFeedbackReceived,
	}
}

// IsValidWebhookEvent reports whether event is in the registrable set.
func IsValidWebhookEvent(event string) bool {
	for _, e := range WebhookEvents() {
		if e == event {
			return true
		}
	}
	return false
}
