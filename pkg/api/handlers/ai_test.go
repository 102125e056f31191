package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/ai"
	"github.com/replyflow/replyflow-api/pkg/ai/llm"
	"github.com/replyflow/replyflow-api/pkg/entitlement"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

type stubLLM struct {
	completeResult string
	completeErr    error
	jsonResult     string
	jsonErr        error
}

func (s *stubLLM) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return &llm.ChatResponse{Message: s.completeResult}, s.completeErr
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	return s.completeResult, s.completeErr
}

func (s *stubLLM) CompleteJSON(ctx context.Context, prompt string, systemPrompt string) (string, error) {
	return s.jsonResult, s.jsonErr
}

func (s *stubLLM) CountTokens(text string) int { return len(text) / 4 }

var _ llm.LLMClient = (*stubLLM)(nil)

func aiTestConfig() *config.Config {
	return &config.Config{
		DailyUsageLimit:    100,
		MonthlyUsageLimit:  3000,
		FreemiumDailyLimit: 2,
		FrontendURL:        "http://localhost:3000",
	}
}

func newAITestHandler(st *store.MemoryStore, client llm.LLMClient) *AIHandler {
	evaluator := entitlement.NewEvaluator(st, aiTestConfig())
	assistant := ai.NewAssistant(client, nil)
	return NewAIHandler(evaluator, assistant)
}

func seedFreemiumAccount(t *testing.T, st *store.MemoryStore) *models.Account {
	t.Helper()
	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "free@example.com",
		SubscriptionStatus: models.StatusNone,
	})
	require.NoError(t, err)
	return acct
}

func seedActiveAccount(t *testing.T, st *store.MemoryStore) *models.Account {
	t.Helper()
	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "active@example.com",
		SubscriptionStatus: models.StatusActive,
	})
	require.NoError(t, err)
	return acct
}

func TestSummarizeAllowedRecordsUsage(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "The sender wants the Q3 report by Friday."})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)

	rec := doJSON(t, e, h.Summarize, http.MethodPost, "/api/ai/summarize",
		`{"email_content":"Hi, can you send me the Q3 report by Friday?"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.TextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The sender wants the Q3 report by Friday.", resp.Result)

	used, err := st.CountUsageEntriesSince(context.Background(), acct.ID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, used)
}

func TestReplyOptionsReturnsParsedOptions(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{jsonResult: `{"options":["Sounds good!","Let me check and get back to you.","Can we push this to next week?"]}`})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)

	rec := doJSON(t, e, h.ReplyOptions, http.MethodPost, "/api/ai/reply-options",
		`{"email_content":"Are you free for a call tomorrow?","subject":"Quick sync"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReplyOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Options, 3)
}

func TestFreemiumLimitDenies(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "Never called."})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)
	now := time.Now().UTC()
	st.SeedEntry(acct.ID, models.ActionSummarize, now.Add(-time.Hour))
	st.SeedEntry(acct.ID, models.ActionGenerateReply, now.Add(-30*time.Minute))

	rec := doJSON(t, e, h.Summarize, http.MethodPost, "/api/ai/summarize",
		`{"email_content":"One more please"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp models.UsageDeniedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entitlement.ReasonDailyLimitReached, resp.Error)
	assert.Equal(t, entitlement.TypeFreemiumDailyLimit, resp.Type)
	assert.Equal(t, 2, resp.Used)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, 0, resp.Remaining)
	assert.Contains(t, resp.UpgradeURL, "/upgrade")

	// The denied action never reaches the ledger.
	used, err := st.CountUsageEntriesSince(context.Background(), acct.ID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, used)
}

func TestYesterdayEntriesDoNotCountToday(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "Summary."})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)
	yesterday := time.Now().UTC().Add(-26 * time.Hour)
	st.SeedEntry(acct.ID, models.ActionSummarize, yesterday)
	st.SeedEntry(acct.ID, models.ActionSummarize, yesterday)

	rec := doJSON(t, e, h.Summarize, http.MethodPost, "/api/ai/summarize",
		`{"email_content":"Fresh day, fresh quota"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFullAccessDailyLimitDenies(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "Never called."})
	e := echo.New()

	acct := seedActiveAccount(t, st)
	now := time.Now().UTC()
	acct.DailyUsage = 100
	acct.MonthlyUsage = 150
	acct.LastUsageDate = &now
	acct.LastResetDate = &now
	require.NoError(t, st.UpdateAccount(context.Background(), acct))

	rec := doJSON(t, e, h.GenerateReply, http.MethodPost, "/api/ai/generate-reply",
		`{"email_content":"Please reply to this"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp models.UsageDeniedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entitlement.TypeDailyLimit, resp.Type)
	assert.Equal(t, 100, resp.Used)
}

func TestFullAccessCommitIncrementsCounters(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "Here is a draft."})
	e := echo.New()

	acct := seedActiveAccount(t, st)

	rec := doJSON(t, e, h.GenerateCompose, http.MethodPost, "/api/ai/generate-compose",
		`{"instruction":"Ask marketing for the launch assets"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusOK, rec.Code)

	reloaded, err := st.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.DailyUsage)
	assert.Equal(t, 1, reloaded.MonthlyUsage)
}

func TestLLMFailureReturnsInternalErrorWithoutUsage(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeErr: assert.AnError})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)

	rec := doJSON(t, e, h.Summarize, http.MethodPost, "/api/ai/summarize",
		`{"email_content":"This call will fail"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	used, err := st.CountUsageEntriesSince(context.Background(), acct.ID, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, used)
}

func TestCommitFailureWithholdsResult(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "A perfectly good summary."})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)
	st.FailUpdates = true

	rec := doJSON(t, e, h.Summarize, http.MethodPost, "/api/ai/summarize",
		`{"email_content":"The record write will fail"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "A perfectly good summary.")
}

func TestMissingContentRejected(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAITestHandler(st, &stubLLM{completeResult: "unused"})
	e := echo.New()

	acct := seedFreemiumAccount(t, st)

	rec := doJSON(t, e, h.Summarize, http.MethodPost, "/api/ai/summarize",
		`{}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
