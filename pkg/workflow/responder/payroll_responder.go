package responder

import (
	"context"
	"strings"

	"hr-support-be/internal/constant"
	"hr-support-be/pkg/llm"
	"hr-support-be/pkg/workflow"
)

// paymentErrorKeywords trigger an automatic escalation before the response is
// even generated: a wrong or missing paycheck is never left to the bot alone.
var paymentErrorKeywords = []string{
	"incorrect",
	"wrong",
	"missing",
	"error",
	"not paid",
	"didn't receive",
}

const paymentErrorReason = "Potential payroll error requiring immediate attention"

type payrollResponder struct {
	llmResponder
}

// NewPayroll handles compensation and tax queries. On top of the shared LLM
// flow it pre-checks the query for payment-error wording.
func NewPayroll(provider llm.LLMProvider) workflow.Responder {
	return &payrollResponder{
		llmResponder: llmResponder{
			provider: provider,
			prompt:   constant.PayrollPrompt,
			kbHeader: "Relevant HR knowledge base articles:",
			fallback: "I apologize, but I'm experiencing technical difficulties. For urgent payroll matters, please contact payroll@company.com or call ext. 2200 immediately.",
		},
	}
}

func (r *payrollResponder) Respond(ctx context.Context, state *workflow.State) (string, error) {
	queryLower := strings.ToLower(state.Request.Query)
	for _, keyword := range paymentErrorKeywords {
		if strings.Contains(queryLower, keyword) {
			state.AddEscalationReason(paymentErrorReason)
			break
		}
	}
	return r.llmResponder.Respond(ctx, state)
}
