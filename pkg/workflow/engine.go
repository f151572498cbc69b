package workflow

import (
	"context"
	"log"
	"time"

	"hr-support-be/internal/constant"
	"hr-support-be/pkg/triage"
)

// SystemErrorReason is recorded whenever response generation fails and the
// pipeline degrades to the responder's canned fallback.
const SystemErrorReason = "System error during response generation"

const (
	defaultKnowledgeK        = 3
	defaultKnowledgeMinScore = 0.3
)

// Engine drives the fixed support pipeline:
//
//	classify -> sentiment -> retrieve knowledge -> check escalation ->
//	{specialist responder | escalate to human} -> terminal
//
// One Engine serves many concurrent requests; each Run owns its State
// exclusively. All collaborators are injected, none are global.
type Engine struct {
	classifier Classifier
	sentiment  SentimentAnalyzer
	retriever  KnowledgeRetriever
	router     *Router

	knowledgeK        int
	knowledgeMinScore float64

	logger *log.Logger
}

func NewEngine(
	classifier Classifier,
	sentiment SentimentAnalyzer,
	retriever KnowledgeRetriever,
	router *Router,
	logger *log.Logger,
) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		classifier:        classifier,
		sentiment:         sentiment,
		retriever:         retriever,
		router:            router,
		knowledgeK:        defaultKnowledgeK,
		knowledgeMinScore: defaultKnowledgeMinScore,
		logger:            logger,
	}
}

// Run executes the pipeline for one request. It always reaches a terminal
// state and never returns an error: every port failure degrades the state to
// a safe default instead of aborting.
func (e *Engine) Run(ctx context.Context, req Request) Result {
	start := time.Now()
	state := &State{Request: req}

	e.classify(ctx, state)
	e.analyzeSentiment(ctx, state)
	e.retrieveKnowledge(ctx, state)
	e.checkEscalation(state)
	e.respond(ctx, state)

	return state.snapshot(time.Since(start))
}

func (e *Engine) classify(ctx context.Context, state *State) {
	category, err := e.classifier.Classify(ctx, state.Request.Query, state.Request.History)
	if err != nil {
		e.logger.Printf("[WARN] classification failed, falling back to General: %v", err)
		state.Category = constant.CategoryGeneral
		return
	}
	state.Category = category
}

func (e *Engine) analyzeSentiment(ctx context.Context, state *State) {
	sentiment, err := e.sentiment.Analyze(ctx, state.Request.Query, state.Request.History)
	if err != nil {
		e.logger.Printf("[WARN] sentiment analysis failed, falling back to Neutral: %v", err)
		state.Sentiment = constant.SentimentNeutral
		state.PriorityScore = 5
		return
	}
	state.Sentiment = sentiment
	state.PriorityScore = triage.Score(
		sentiment,
		state.Category,
		state.Request.Flags.IsRepeat,
		state.Request.Flags.IsVIP,
	)
}

func (e *Engine) retrieveKnowledge(ctx context.Context, state *State) {
	snippets, err := e.retriever.Retrieve(
		ctx,
		state.Request.Query,
		e.knowledgeK,
		state.Category,
		e.knowledgeMinScore,
	)
	if err != nil {
		e.logger.Printf("[WARN] knowledge retrieval failed, continuing without context: %v", err)
		state.Knowledge = nil
		return
	}
	state.Knowledge = snippets
}

func (e *Engine) checkEscalation(state *State) {
	attempts := state.Request.Flags.AttemptCount
	if attempts < 1 {
		attempts = 1
	}
	escalate, reason := triage.Decide(state.PriorityScore, state.Sentiment, attempts, state.Request.Query)
	if escalate {
		state.ShouldEscalate = true
		state.EscalationReason = reason
		e.logger.Printf("[WARN] query flagged for escalation: %s", reason)
	}
}

func (e *Engine) respond(ctx context.Context, state *State) {
	responder := e.router.Route(state)

	text, err := responder.Respond(ctx, state)
	if err != nil {
		e.logger.Printf("[ERROR] response generation failed: %v", err)
		state.Response = responder.Fallback()
		state.AddEscalationReason(SystemErrorReason)
		state.NextAction = constant.ActionComplete
		return
	}
	state.Response = text
	if state.NextAction == "" {
		state.NextAction = constant.ActionComplete
	}
}
