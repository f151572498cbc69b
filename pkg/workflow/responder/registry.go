package responder

import (
	"hr-support-be/internal/constant"
	"hr-support-be/pkg/llm"
	"hr-support-be/pkg/workflow"
)

// NewDefaultRouter wires every specialist category to its responder, with the
// general responder doubling as the fallback for unrecognized categories.
func NewDefaultRouter(provider llm.LLMProvider) *workflow.Router {
	general := NewGeneral(provider)
	responders := map[string]workflow.Responder{
		constant.CategoryRecruitment:     NewRecruitment(provider),
		constant.CategoryPayroll:         NewPayroll(provider),
		constant.CategoryBenefits:        NewBenefits(provider),
		constant.CategoryPolicy:          NewPolicy(provider),
		constant.CategoryLeaveManagement: NewLeaveManagement(provider),
		constant.CategoryPerformance:     NewPerformance(provider),
		constant.CategoryGeneral:         general,
	}
	return workflow.NewRouter(responders, general, NewEscalation())
}
