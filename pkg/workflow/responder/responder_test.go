package responder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hr-support-be/internal/constant"
	"hr-support-be/pkg/llm"
	"hr-support-be/pkg/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func TestPayrollPreCheckFlagsPaymentErrors(t *testing.T) {
	provider := &fakeProvider{response: "Let me look into that paycheck for you."}
	r := NewPayroll(provider)

	state := &workflow.State{
		Request: workflow.Request{Query: "My paycheck is wrong this month"},
	}
	text, err := r.Respond(context.Background(), state)

	require.NoError(t, err)
	assert.Equal(t, "Let me look into that paycheck for you.", text)
	assert.True(t, state.ShouldEscalate)
	assert.Equal(t, "Potential payroll error requiring immediate attention", state.EscalationReason)
}

func TestPayrollPreCheckIsCaseInsensitive(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	r := NewPayroll(provider)

	state := &workflow.State{Request: workflow.Request{Query: "I DIDN'T RECEIVE my salary"}}
	_, err := r.Respond(context.Background(), state)

	require.NoError(t, err)
	assert.True(t, state.ShouldEscalate)
}

func TestPayrollPreCheckAppendsToExistingReason(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	r := NewPayroll(provider)

	state := &workflow.State{Request: workflow.Request{Query: "payment missing"}}
	state.AddEscalationReason("Angry sentiment detected")
	_, err := r.Respond(context.Background(), state)

	require.NoError(t, err)
	assert.Equal(t, "Angry sentiment detected; Potential payroll error requiring immediate attention", state.EscalationReason)
}

func TestPayrollCleanQueryDoesNotEscalate(t *testing.T) {
	provider := &fakeProvider{response: "Payday is the 25th."}
	r := NewPayroll(provider)

	state := &workflow.State{Request: workflow.Request{Query: "When is payday?"}}
	_, err := r.Respond(context.Background(), state)

	require.NoError(t, err)
	assert.False(t, state.ShouldEscalate)
}

func TestLLMResponderPromptContainsState(t *testing.T) {
	provider := &fakeProvider{response: "answer"}
	r := NewBenefits(provider)

	state := &workflow.State{
		Request: workflow.Request{
			Query: "How do I enroll in the 401k?",
			History: []llm.Message{
				{Role: "user", Content: "hi"},
				{Role: "assistant", Content: "hello"},
			},
		},
		Sentiment:     constant.SentimentNeutral,
		PriorityScore: 3,
		Knowledge: []workflow.Snippet{
			{Title: "401k Guide", Content: strings.Repeat("x", 300), Score: 0.8},
			{Title: "Vesting", Content: "Vesting starts after one year.", Score: 0.7},
			{Title: "Third", Content: "never rendered", Score: 0.5},
		},
	}

	_, err := r.Respond(context.Background(), state)
	require.NoError(t, err)
	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]

	assert.Contains(t, prompt, "How do I enroll in the 401k?")
	assert.Contains(t, prompt, "User: hi")
	assert.Contains(t, prompt, "Assistant: hello")
	assert.Contains(t, prompt, "401k Guide")
	assert.Contains(t, prompt, "Vesting")
	assert.NotContains(t, prompt, "never rendered", "only the top 2 hits feed the prompt")
	assert.NotContains(t, prompt, strings.Repeat("x", 201), "snippet content is capped at 200 chars")
}

func TestLLMResponderPropagatesProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("backend down")}
	r := NewGeneral(provider)

	state := &workflow.State{Request: workflow.Request{Query: "hi"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Respond(ctx, state)
	assert.Error(t, err)
	assert.NotEmpty(t, r.Fallback())
}

func TestEscalationMessageVariants(t *testing.T) {
	r := NewEscalation()

	tests := []struct {
		sentiment string
		fragment  string
	}{
		{constant.SentimentAngry, "I sincerely apologize for the frustration"},
		{constant.SentimentNegative, "I understand your concern"},
		{constant.SentimentNeutral, "most accurate assistance"},
		{constant.SentimentPositive, "most accurate assistance"},
	}
	for _, tt := range tests {
		state := &workflow.State{
			Request:   workflow.Request{ConversationID: "conv-42"},
			Sentiment: tt.sentiment,
		}
		text, err := r.Respond(context.Background(), state)
		require.NoError(t, err)
		assert.Contains(t, text, tt.fragment, "sentiment=%s", tt.sentiment)
		assert.Contains(t, text, "Case Reference: conv-42")
		assert.Contains(t, text, "Estimated wait time: 2-5 minutes")
		assert.Equal(t, constant.ActionEscalate, state.NextAction)
	}
}

func TestEscalationWithoutConversationID(t *testing.T) {
	r := NewEscalation()
	state := &workflow.State{Sentiment: constant.SentimentNeutral}

	text, err := r.Respond(context.Background(), state)
	require.NoError(t, err)
	assert.Contains(t, text, "Case Reference: N/A")
}

func TestDefaultRouterCoversAllCategories(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	router := NewDefaultRouter(provider)

	for _, category := range constant.Categories() {
		state := &workflow.State{Category: category}
		assert.NotNil(t, router.Route(state), "category %s has no responder", category)
	}

	escalated := &workflow.State{Category: constant.CategoryPayroll, ShouldEscalate: true}
	text, err := router.Route(escalated).Respond(context.Background(), escalated)
	require.NoError(t, err)
	assert.Contains(t, text, "Case Reference")
}
