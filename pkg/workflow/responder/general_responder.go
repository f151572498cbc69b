package responder

import (
	"hr-support-be/internal/constant"
	"hr-support-be/pkg/llm"
	"hr-support-be/pkg/workflow"
)

// NewGeneral handles anything that does not route to a specialist. It is also
// the router's fallback for unrecognized categories.
func NewGeneral(provider llm.LLMProvider) workflow.Responder {
	return &llmResponder{
		provider: provider,
		prompt:   constant.GeneralPrompt,
		kbHeader: "Relevant information:",
		fallback: "Thank you for contacting us. How can I assist you today?",
	}
}

func NewBenefits(provider llm.LLMProvider) workflow.Responder {
	return &llmResponder{
		provider: provider,
		prompt:   constant.BenefitsPrompt,
		kbHeader: "Benefits information:",
		fallback: "I can help you with benefits questions. Please contact benefits@company.com or call ext. 2300 for immediate assistance.",
	}
}

func NewPolicy(provider llm.LLMProvider) workflow.Responder {
	return &llmResponder{
		provider: provider,
		prompt:   constant.PolicyPrompt,
		kbHeader: "Policy information:",
		fallback: "I can help you with policy questions. Please refer to the employee handbook at handbook.company.com or contact hr@company.com.",
	}
}

func NewLeaveManagement(provider llm.LLMProvider) workflow.Responder {
	return &llmResponder{
		provider: provider,
		prompt:   constant.LeaveManagementPrompt,
		kbHeader: "Leave policy information:",
		fallback: "I can help you with leave requests. Please visit timeoff.company.com or contact leave@company.com for assistance.",
	}
}

func NewPerformance(provider llm.LLMProvider) workflow.Responder {
	return &llmResponder{
		provider: provider,
		prompt:   constant.PerformancePrompt,
		kbHeader: "Performance management resources:",
		fallback: "I can help you with performance and career development. Please contact your manager or visit performance.company.com.",
	}
}

func NewRecruitment(provider llm.LLMProvider) workflow.Responder {
	return &llmResponder{
		provider: provider,
		prompt:   constant.RecruitmentPrompt,
		kbHeader: "Recruitment information:",
		fallback: "I apologize, but I'm experiencing technical difficulties. Please contact recruiting@company.com or visit careers.company.com for assistance.",
	}
}
