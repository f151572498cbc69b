package triage

import (
	"strings"

	"hr-support-be/internal/constant"
)

// EscalationKeywords is the fixed phrase list checked against the raw query.
// Matching is substring and case-insensitive; the first hit wins. Technical
// words like "crash" or "issue" are deliberately absent - they describe the
// problem, not the employee's temper.
var EscalationKeywords = []string{
	"lawsuit",
	"legal",
	"attorney",
	"lawyer",
	"sue",
	"refund immediately",
	"speak to a manager",
	"speak to manager",
	"talk to a manager",
	"talk to manager",
	"contact supervisor",
	"unacceptable",
	"ridiculous",
	"demand refund",
	"escalate this",
}

// Score computes the routing priority on a 1-10 scale.
//
//	1-3  low (normal queries)
//	4-6  medium (negative sentiment)
//	7-8  high (angry/urgent)
//	9-10 critical (angry + repeat/VIP)
func Score(sentiment, category string, isRepeat, isVIP bool) int {
	score := 3

	switch sentiment {
	case constant.SentimentNegative:
		score += 2
	case constant.SentimentAngry:
		score += 3
	}

	if isRepeat {
		score += 2
	}
	if isVIP {
		score += 2
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// Decide determines whether a query requires a human agent. The reason string
// accumulates every trigger joined with "; " so callers can see all of them.
// An empty reason means no escalation.
func Decide(priorityScore int, sentiment string, attemptCount int, query string) (bool, string) {
	var reasons []string

	if priorityScore >= 8 {
		reasons = append(reasons, "High priority score")
	}
	if sentiment == constant.SentimentAngry {
		reasons = append(reasons, "Angry sentiment detected")
	}
	if attemptCount >= 3 {
		reasons = append(reasons, "Multiple unsuccessful attempts")
	}

	queryLower := strings.ToLower(query)
	for _, keyword := range EscalationKeywords {
		if strings.Contains(queryLower, keyword) {
			reasons = append(reasons, "Escalation keyword detected: "+keyword)
			break
		}
	}

	if len(reasons) == 0 {
		return false, ""
	}
	return true, strings.Join(reasons, "; ")
}
