package triage

import (
	"strings"

	"hr-support-be/internal/constant"
)

// ParseCategory normalizes a raw classifier reply to one of the known
// categories. Matching is substring based and first-match-wins, so
// multi-keyword replies resolve in the order below. That ordering is part of
// the observed behavior; do not reorder to "improve" accuracy.
func ParseCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(c, "recruit"), strings.Contains(c, "hiring"),
		strings.Contains(c, "job"), strings.Contains(c, "interview"):
		return constant.CategoryRecruitment
	case strings.Contains(c, "payroll"), strings.Contains(c, "salary"),
		strings.Contains(c, "pay"), strings.Contains(c, "w-2"), strings.Contains(c, "w2"):
		return constant.CategoryPayroll
	case strings.Contains(c, "benefit"), strings.Contains(c, "insurance"),
		strings.Contains(c, "401k"), strings.Contains(c, "retirement"):
		return constant.CategoryBenefits
	case strings.Contains(c, "policy"), strings.Contains(c, "handbook"),
		strings.Contains(c, "code of conduct"), strings.Contains(c, "dress code"):
		return constant.CategoryPolicy
	case strings.Contains(c, "leave"), strings.Contains(c, "vacation"),
		strings.Contains(c, "pto"), strings.Contains(c, "sick"), strings.Contains(c, "fmla"):
		return constant.CategoryLeaveManagement
	case strings.Contains(c, "performance"), strings.Contains(c, "review"),
		strings.Contains(c, "promotion"), strings.Contains(c, "goal"):
		return constant.CategoryPerformance
	default:
		return constant.CategoryGeneral
	}
}

// ParseSentiment normalizes a raw sentiment reply. "Angry" requires an
// intensifier or the word itself; plain negative wording maps to Negative.
func ParseSentiment(raw string) string {
	s := strings.ToLower(raw)

	switch {
	case strings.Contains(s, "negative"), strings.Contains(s, "angry"), strings.Contains(s, "frustrated"):
		if strings.Contains(s, "very") || strings.Contains(s, "extremely") || strings.Contains(s, "angry") {
			return constant.SentimentAngry
		}
		return constant.SentimentNegative
	case strings.Contains(s, "positive"), strings.Contains(s, "happy"), strings.Contains(s, "satisfied"):
		return constant.SentimentPositive
	default:
		return constant.SentimentNeutral
	}
}
