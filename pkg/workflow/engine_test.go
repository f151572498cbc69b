package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hr-support-be/internal/constant"
	"hr-support-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	category string
	err      error
}

func (s stubClassifier) Classify(ctx context.Context, query string, history []llm.Message) (string, error) {
	return s.category, s.err
}

type stubSentiment struct {
	sentiment string
	err       error
}

func (s stubSentiment) Analyze(ctx context.Context, query string, history []llm.Message) (string, error) {
	return s.sentiment, s.err
}

type stubRetriever struct {
	snippets []Snippet
	err      error

	gotQuery    string
	gotK        int
	gotCategory string
	gotMinScore float64
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, k int, category string, minScore float64) ([]Snippet, error) {
	s.gotQuery = query
	s.gotK = k
	s.gotCategory = category
	s.gotMinScore = minScore
	return s.snippets, s.err
}

type stubResponder struct {
	text     string
	err      error
	fallback string
	action   string
	called   int
}

func (s *stubResponder) Respond(ctx context.Context, state *State) (string, error) {
	s.called++
	if s.action != "" {
		state.NextAction = s.action
	}
	return s.text, s.err
}

func (s *stubResponder) Fallback() string { return s.fallback }

func newTestEngine(classifier Classifier, sentiment SentimentAnalyzer, retriever KnowledgeRetriever, router *Router) *Engine {
	return NewEngine(classifier, sentiment, retriever, router, nil)
}

func singleResponderRouter(r Responder, escalation Responder) *Router {
	responders := map[string]Responder{}
	for _, category := range constant.Categories() {
		responders[category] = r
	}
	return NewRouter(responders, r, escalation)
}

func TestRunAngryThreatEscalates(t *testing.T) {
	specialist := &stubResponder{text: "specialist answer", fallback: "specialist fallback"}
	escalation := &stubResponder{text: "a human will be with you shortly", fallback: "escalation fallback", action: constant.ActionEscalate}

	engine := newTestEngine(
		stubClassifier{category: constant.CategoryPayroll},
		stubSentiment{sentiment: constant.SentimentAngry},
		&stubRetriever{},
		singleResponderRouter(specialist, escalation),
	)

	result := engine.Run(context.Background(), Request{
		Query:          "This is unacceptable, I will sue if my paycheck is wrong again!",
		UserID:         "u-1",
		ConversationID: "c-1",
		Flags:          Flags{AttemptCount: 1},
	})

	assert.Equal(t, constant.CategoryPayroll, result.Category)
	assert.Equal(t, constant.SentimentAngry, result.Sentiment)
	assert.GreaterOrEqual(t, result.PriorityScore, 6)
	assert.True(t, result.Escalated)
	assert.Contains(t, result.EscalationReason, "Angry sentiment detected")
	assert.Contains(t, result.EscalationReason, "Escalation keyword detected")
	assert.Equal(t, "a human will be with you shortly", result.Response)

	assert.Equal(t, 0, specialist.called, "escalated queries must not reach the specialist")
	assert.Equal(t, 1, escalation.called)
}

func TestRunRoutineQueryCompletesNormally(t *testing.T) {
	specialist := &stubResponder{text: "Payday is the 25th of each month.", fallback: "fb"}
	escalation := &stubResponder{text: "escalated", fallback: "fb"}

	retriever := &stubRetriever{snippets: []Snippet{
		{Title: "Payroll Schedule", Content: "Salaries are paid on the 25th.", Category: constant.CategoryPayroll, Score: 0.91},
	}}

	engine := newTestEngine(
		stubClassifier{category: constant.CategoryPayroll},
		stubSentiment{sentiment: constant.SentimentNeutral},
		retriever,
		singleResponderRouter(specialist, escalation),
	)

	result := engine.Run(context.Background(), Request{
		Query:          "When is payday this month?",
		UserID:         "u-2",
		ConversationID: "c-2",
		Flags:          Flags{AttemptCount: 1},
	})

	assert.Equal(t, 3, result.PriorityScore)
	assert.False(t, result.Escalated)
	assert.Empty(t, result.EscalationReason)
	assert.Equal(t, "Payday is the 25th of each month.", result.Response)
	require.Len(t, result.Knowledge, 1)
	assert.Equal(t, "Payroll Schedule", result.Knowledge[0].Title)
	assert.Equal(t, 0, escalation.called)

	assert.Equal(t, "When is payday this month?", retriever.gotQuery)
	assert.Equal(t, 3, retriever.gotK)
	assert.Equal(t, constant.CategoryPayroll, retriever.gotCategory)
	assert.InDelta(t, 0.3, retriever.gotMinScore, 1e-9)
}

func TestRunClassifierFailureFallsBackToGeneral(t *testing.T) {
	specialist := &stubResponder{text: "generic answer", fallback: "fb"}
	engine := newTestEngine(
		stubClassifier{err: errors.New("model unavailable")},
		stubSentiment{sentiment: constant.SentimentNeutral},
		&stubRetriever{},
		singleResponderRouter(specialist, &stubResponder{}),
	)

	result := engine.Run(context.Background(), Request{Query: "hello", Flags: Flags{AttemptCount: 1}})

	assert.Equal(t, constant.CategoryGeneral, result.Category)
	assert.Equal(t, "generic answer", result.Response)
	assert.False(t, result.Escalated)
}

func TestRunSentimentFailureUsesNeutralDefaults(t *testing.T) {
	engine := newTestEngine(
		stubClassifier{category: constant.CategoryBenefits},
		stubSentiment{err: errors.New("timeout")},
		&stubRetriever{},
		singleResponderRouter(&stubResponder{text: "ok", fallback: "fb"}, &stubResponder{}),
	)

	result := engine.Run(context.Background(), Request{Query: "what about dental?", Flags: Flags{AttemptCount: 1}})

	assert.Equal(t, constant.SentimentNeutral, result.Sentiment)
	assert.Equal(t, 5, result.PriorityScore)
	assert.False(t, result.Escalated)
}

func TestRunRetrievalFailureContinuesWithoutKnowledge(t *testing.T) {
	specialist := &stubResponder{text: "answer without sources", fallback: "fb"}
	engine := newTestEngine(
		stubClassifier{category: constant.CategoryPolicy},
		stubSentiment{sentiment: constant.SentimentNeutral},
		&stubRetriever{err: errors.New("vector store down")},
		singleResponderRouter(specialist, &stubResponder{}),
	)

	result := engine.Run(context.Background(), Request{Query: "dress code?", Flags: Flags{AttemptCount: 1}})

	assert.Nil(t, result.Knowledge)
	assert.Equal(t, "answer without sources", result.Response)
	assert.False(t, result.Escalated)
}

func TestRunResponderFailureDegradesToFallback(t *testing.T) {
	specialist := &stubResponder{err: errors.New("generation failed"), fallback: "I apologize, please contact HR directly."}
	engine := newTestEngine(
		stubClassifier{category: constant.CategoryGeneral},
		stubSentiment{sentiment: constant.SentimentNeutral},
		&stubRetriever{},
		singleResponderRouter(specialist, &stubResponder{}),
	)

	result := engine.Run(context.Background(), Request{Query: "help", Flags: Flags{AttemptCount: 1}})

	assert.Equal(t, "I apologize, please contact HR directly.", result.Response)
	assert.True(t, result.Escalated)
	assert.Equal(t, SystemErrorReason, result.EscalationReason)
}

func TestRunUnknownCategoryUsesFallbackResponder(t *testing.T) {
	fallback := &stubResponder{text: "fallback answer", fallback: "fb"}
	router := NewRouter(map[string]Responder{}, fallback, &stubResponder{})

	engine := newTestEngine(
		stubClassifier{category: "SomethingNew"},
		stubSentiment{sentiment: constant.SentimentNeutral},
		&stubRetriever{},
		router,
	)

	result := engine.Run(context.Background(), Request{Query: "???", Flags: Flags{AttemptCount: 1}})

	assert.Equal(t, "fallback answer", result.Response)
	assert.Equal(t, 1, fallback.called)
}

func TestRunZeroAttemptCountTreatedAsFirstAttempt(t *testing.T) {
	engine := newTestEngine(
		stubClassifier{category: constant.CategoryGeneral},
		stubSentiment{sentiment: constant.SentimentNeutral},
		&stubRetriever{},
		singleResponderRouter(&stubResponder{text: "ok", fallback: "fb"}, &stubResponder{}),
	)

	result := engine.Run(context.Background(), Request{Query: "hi"})
	assert.False(t, result.Escalated)
}

func TestAddEscalationReasonAppends(t *testing.T) {
	state := &State{}
	state.AddEscalationReason("first")
	state.AddEscalationReason("second")

	assert.True(t, state.ShouldEscalate)
	assert.Equal(t, "first; second", state.EscalationReason)
	assert.Len(t, strings.Split(state.EscalationReason, "; "), 2)
}
