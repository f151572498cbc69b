package workflow

import (
	"context"

	"hr-support-be/pkg/llm"
)

// Classifier assigns an HR category to a query.
type Classifier interface {
	Classify(ctx context.Context, query string, history []llm.Message) (string, error)
}

// SentimentAnalyzer labels the emotional tone of a query.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, query string, history []llm.Message) (string, error)
}

// KnowledgeRetriever looks up reference snippets for a query, already ordered
// by descending score and filtered by minScore.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string, k int, category string, minScore float64) ([]Snippet, error)
}

// Responder produces the final response text for a routed query. Respond may
// flag escalation on the state (e.g. a payroll error pre-check) but must not
// clobber fields owned by earlier stages. Fallback is the canned message the
// engine substitutes when Respond fails.
type Responder interface {
	Respond(ctx context.Context, state *State) (string, error)
	Fallback() string
}
