package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/pkg/ai/llm"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

type mockLLM struct {
	completeResult string
	completeErr    error
	jsonResult     string
	jsonErr        error
	lastPrompt     string
	lastSystem     string
}

func (m *mockLLM) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return &llm.ChatResponse{Message: m.completeResult}, m.completeErr
}

func (m *mockLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	m.lastPrompt = prompt
	if len(systemPrompt) > 0 {
		m.lastSystem = systemPrompt[0]
	}
	return m.completeResult, m.completeErr
}

func (m *mockLLM) CompleteJSON(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	m.lastPrompt = prompt
	m.lastSystem = systemPrompt
	return m.jsonResult, m.jsonErr
}

func (m *mockLLM) CountTokens(text string) int {
	return len(text) / 4
}

var _ llm.LLMClient = (*mockLLM)(nil)

func TestReplyOptionsParsesJSON(t *testing.T) {
	mock := &mockLLM{jsonResult: `{"options": ["Sounds good, see you then.", "Could you share the agenda first?", "I can't make it this week."]}`}
	assistant := NewAssistant(mock, nil)

	resp, err := assistant.ReplyOptions(context.Background(), models.ReplyOptionsRequest{
		EmailContent: "Can we meet Thursday at 3pm?",
		Subject:      "Meeting",
	})
	require.NoError(t, err)
	require.Len(t, resp.Options, 3)
	assert.Equal(t, "Sounds good, see you then.", resp.Options[0])
	assert.Contains(t, mock.lastPrompt, "Can we meet Thursday at 3pm?")
	assert.Contains(t, mock.lastPrompt, "Subject: Meeting")
}

func TestReplyOptionsRejectsMalformedJSON(t *testing.T) {
	mock := &mockLLM{jsonResult: `not json at all`}
	assistant := NewAssistant(mock, nil)

	_, err := assistant.ReplyOptions(context.Background(), models.ReplyOptionsRequest{EmailContent: "hi"})
	require.Error(t, err)
	assert.True(t, domain.IsExternalServiceError(err))
}

func TestReplyOptionsRejectsEmptyOptions(t *testing.T) {
	mock := &mockLLM{jsonResult: `{"options": []}`}
	assistant := NewAssistant(mock, nil)

	_, err := assistant.ReplyOptions(context.Background(), models.ReplyOptionsRequest{EmailContent: "hi"})
	require.Error(t, err)
}

func TestGenerateReplyTrimsResult(t *testing.T) {
	mock := &mockLLM{completeResult: "\n\nHappy to help with that.\n"}
	assistant := NewAssistant(mock, nil)

	resp, err := assistant.GenerateReply(context.Background(), models.GenerateReplyRequest{
		EmailContent: "Can you help?",
		Tone:         "friendly",
	})
	require.NoError(t, err)
	assert.Equal(t, "Happy to help with that.", resp.Result)
	assert.Contains(t, mock.lastPrompt, "Tone: friendly")
}

func TestComposeUsesDefaultTone(t *testing.T) {
	mock := &mockLLM{completeResult: "Subject: Intro\n\nHello there."}
	assistant := NewAssistant(mock, nil)

	resp, err := assistant.Compose(context.Background(), models.GenerateComposeRequest{
		Instruction: "Introduce myself to a new client",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Result, "Subject: Intro")
	assert.Contains(t, mock.lastPrompt, "professional tone")
}

func TestAnalyzeCategoryNormalizes(t *testing.T) {
	mock := &mockLLM{completeResult: " Newsletter \n"}
	assistant := NewAssistant(mock, nil)

	resp, err := assistant.AnalyzeCategory(context.Background(), models.AnalyzeCategoryRequest{EmailContent: "weekly digest"})
	require.NoError(t, err)
	assert.Equal(t, "newsletter", resp.Result)
}

func TestAnalyzeCategoryUnknownFallsBackToOther(t *testing.T) {
	mock := &mockLLM{completeResult: "definitely-not-a-category"}
	assistant := NewAssistant(mock, nil)

	resp, err := assistant.AnalyzeCategory(context.Background(), models.AnalyzeCategoryRequest{EmailContent: "???"})
	require.NoError(t, err)
	assert.Equal(t, "other", resp.Result)
}

func TestSummarizeSurfacesLLMError(t *testing.T) {
	mock := &mockLLM{completeErr: assert.AnError}
	assistant := NewAssistant(mock, nil)

	_, err := assistant.Summarize(context.Background(), models.SummarizeRequest{EmailContent: "long thread"})
	require.Error(t, err)
	assert.True(t, domain.IsExternalServiceError(err))
}
