// Package responder holds the specialist responders routed to after the
// escalation check. Each wraps the shared LLM responder with its own prompt
// and canned fallback; the escalation responder is fully deterministic.
package responder

import (
	"context"
	"fmt"
	"strings"

	"hr-support-be/pkg/llm"
	"hr-support-be/pkg/workflow"
)

const llmRetries = 3

// llmResponder generates a response by filling a specialist prompt with the
// accumulated state and invoking the LLM provider.
type llmResponder struct {
	provider llm.LLMProvider
	prompt   string
	kbHeader string
	fallback string
}

func (r *llmResponder) Respond(ctx context.Context, state *workflow.State) (string, error) {
	prompt := fmt.Sprintf(
		r.prompt,
		state.Request.Query,
		state.Sentiment,
		state.PriorityScore,
		conversationContext(state.Request.History),
		knowledgeContext(state.Knowledge, r.kbHeader),
	)
	return llm.GenerateWithRetry(ctx, r.provider, prompt, llmRetries)
}

func (r *llmResponder) Fallback() string {
	return r.fallback
}

// conversationContext renders the last 5 turns for the prompt.
func conversationContext(history []llm.Message) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	var b strings.Builder
	b.WriteString("Previous conversation:\n")
	for _, turn := range history {
		b.WriteString(capitalize(turn.Role) + ": " + turn.Content + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// knowledgeContext renders the top 2 knowledge hits, content capped at 200
// characters each.
func knowledgeContext(snippets []workflow.Snippet, header string) string {
	if len(snippets) == 0 {
		return ""
	}
	if len(snippets) > 2 {
		snippets = snippets[:2]
	}
	var b strings.Builder
	b.WriteString(header + "\n")
	for i, s := range snippets {
		title := s.Title
		if title == "" {
			title = "N/A"
		}
		content := s.Content
		if len(content) > 200 {
			content = content[:200]
		}
		b.WriteString(fmt.Sprintf("%d. %s: %s...\n", i+1, title, content))
	}
	b.WriteString("\n")
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
