package triage

import (
	"context"
	"fmt"
	"strings"

	"hr-support-be/internal/constant"
	"hr-support-be/pkg/llm"
)

// Classifier labels a query with an HR category using the LLM provider.
type Classifier struct {
	provider llm.LLMProvider
	retries  int
}

func NewClassifier(provider llm.LLMProvider) *Classifier {
	return &Classifier{provider: provider, retries: 3}
}

// Classify returns one of the constant.Category* values. The raw model reply
// is normalized through ParseCategory, so a rambling reply still resolves.
func (c *Classifier) Classify(ctx context.Context, query string, history []llm.Message) (string, error) {
	prompt := fmt.Sprintf(constant.CategorizationPrompt, query, formatHistory(history, 3))

	raw, err := llm.GenerateWithRetry(ctx, c.provider, prompt, c.retries)
	if err != nil {
		return "", err
	}
	return ParseCategory(raw), nil
}

// SentimentAnalyzer labels the emotional tone of a query.
type SentimentAnalyzer struct {
	provider llm.LLMProvider
	retries  int
}

func NewSentimentAnalyzer(provider llm.LLMProvider) *SentimentAnalyzer {
	return &SentimentAnalyzer{provider: provider, retries: 3}
}

func (a *SentimentAnalyzer) Analyze(ctx context.Context, query string, history []llm.Message) (string, error) {
	toneContext := ""
	if len(history) > 0 {
		var b strings.Builder
		b.WriteString("Conversation tone progression:\n")
		for _, turn := range lastTurns(history, 3) {
			if turn.Role == "user" {
				b.WriteString("User: " + truncate(turn.Content, 100) + "\n")
			}
		}
		toneContext = b.String()
	}
	prompt := fmt.Sprintf(constant.SentimentPrompt, query, toneContext)

	raw, err := llm.GenerateWithRetry(ctx, a.provider, prompt, a.retries)
	if err != nil {
		return "", err
	}
	return ParseSentiment(raw), nil
}

func formatHistory(history []llm.Message, n int) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Previous conversation context:\n")
	for _, turn := range lastTurns(history, n) {
		b.WriteString(turn.Role + ": " + truncate(turn.Content, 100) + "\n")
	}
	return b.String()
}

func lastTurns(history []llm.Message, n int) []llm.Message {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
