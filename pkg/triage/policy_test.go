package triage

import (
	"strings"
	"testing"

	"hr-support-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestScoreStaysInBounds(t *testing.T) {
	sentiments := []string{
		constant.SentimentPositive,
		constant.SentimentNeutral,
		constant.SentimentNegative,
		constant.SentimentAngry,
		"Unknown",
		"",
	}
	for _, sentiment := range sentiments {
		for _, repeat := range []bool{false, true} {
			for _, vip := range []bool{false, true} {
				for _, category := range constant.Categories() {
					score := Score(sentiment, category, repeat, vip)
					assert.GreaterOrEqual(t, score, 1, "sentiment=%s repeat=%v vip=%v", sentiment, repeat, vip)
					assert.LessOrEqual(t, score, 10, "sentiment=%s repeat=%v vip=%v", sentiment, repeat, vip)
				}
			}
		}
	}
}

func TestScoreValues(t *testing.T) {
	tests := []struct {
		name      string
		sentiment string
		repeat    bool
		vip       bool
		want      int
	}{
		{"neutral base", constant.SentimentNeutral, false, false, 3},
		{"positive gets no bonus", constant.SentimentPositive, false, false, 3},
		{"negative", constant.SentimentNegative, false, false, 5},
		{"angry", constant.SentimentAngry, false, false, 6},
		{"negative repeat", constant.SentimentNegative, true, false, 7},
		{"angry vip", constant.SentimentAngry, false, true, 8},
		{"angry repeat vip clamps", constant.SentimentAngry, true, true, 10},
		{"unknown sentiment ignored", "Confused", false, false, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.sentiment, constant.CategoryGeneral, tt.repeat, tt.vip))
		})
	}
}

func TestDecideHighPriorityAlwaysEscalates(t *testing.T) {
	for priority := 8; priority <= 10; priority++ {
		escalate, reason := Decide(priority, constant.SentimentPositive, 1, "everything is fine")
		assert.True(t, escalate, "priority %d", priority)
		assert.Contains(t, reason, "High priority score")
	}
}

func TestDecideReasonMatchesFlag(t *testing.T) {
	cases := []struct {
		priority  int
		sentiment string
		attempts  int
		query     string
	}{
		{3, constant.SentimentNeutral, 1, "When is payday?"},
		{7, constant.SentimentNegative, 2, "my paycheck seems low"},
		{8, constant.SentimentNeutral, 1, "quick question"},
		{3, constant.SentimentAngry, 1, "this is bad"},
		{3, constant.SentimentNeutral, 3, "still not solved"},
		{3, constant.SentimentNeutral, 1, "I will sue you"},
	}
	for _, c := range cases {
		escalate, reason := Decide(c.priority, c.sentiment, c.attempts, c.query)
		if escalate {
			assert.NotEmpty(t, reason)
		} else {
			assert.Empty(t, reason)
		}
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		escalate, reason := Decide(9, constant.SentimentAngry, 3, "this is unacceptable")
		assert.True(t, escalate)
		assert.Equal(t, "High priority score; Angry sentiment detected; Multiple unsuccessful attempts; Escalation keyword detected: unacceptable", reason)
	}
}

func TestDecideKeywords(t *testing.T) {
	escalate, reason := Decide(3, constant.SentimentNeutral, 1, "I'm going to file a LAWSUIT over this")
	assert.True(t, escalate)
	assert.Contains(t, reason, "Escalation keyword detected: lawsuit")

	// First match wins even when several keywords are present.
	escalate, reason = Decide(3, constant.SentimentNeutral, 1, "my attorney will sue")
	assert.True(t, escalate)
	assert.Contains(t, reason, "attorney")
	assert.Equal(t, 1, strings.Count(reason, "Escalation keyword"))

	escalate, _ = Decide(3, constant.SentimentNeutral, 1, "the app crashed with a problem")
	assert.False(t, escalate, "technical words alone must not escalate")

	// Substring matching is intentionally fuzzy: "issue" contains "sue", so a
	// purely technical report still trips the keyword check.
	escalate, reason = Decide(3, constant.SentimentNeutral, 1, "the app crashed with an issue")
	assert.True(t, escalate)
	assert.Contains(t, reason, "Escalation keyword detected: sue")
}

func TestDecideAttemptThreshold(t *testing.T) {
	escalate, _ := Decide(3, constant.SentimentNeutral, 2, "still waiting")
	assert.False(t, escalate)

	escalate, reason := Decide(3, constant.SentimentNeutral, 3, "still waiting")
	assert.True(t, escalate)
	assert.Contains(t, reason, "Multiple unsuccessful attempts")
}

func TestDecideNegativeAloneDoesNotEscalate(t *testing.T) {
	// Negative yields priority 5-7 at most without flags; only Angry counts.
	escalate, _ := Decide(7, constant.SentimentNegative, 1, "I'm disappointed with the delay")
	assert.False(t, escalate)
}
