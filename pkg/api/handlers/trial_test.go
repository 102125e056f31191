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

	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
	"github.com/replyflow/replyflow-api/pkg/trial"
)

func newTrialTestHandler(st *store.MemoryStore) *TrialHandler {
	return NewTrialHandler(trial.NewService(st, nil, aiTestConfig()))
}

func TestTrialStatusForTrialingAccount(t *testing.T) {
	st := store.NewMemoryStore()
	h := newTrialTestHandler(st)
	e := echo.New()

	trialEnd := time.Now().UTC().Add(5 * 24 * time.Hour)
	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "trial@example.com",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
		TrialEndDate:       &trialEnd,
		DailyUsage:         7,
		MonthlyUsage:       42,
	})
	require.NoError(t, err)

	rec := doJSON(t, e, h.Status, http.MethodGet, "/api/trial/status", "", func(c echo.Context) {
		c.Set("account_id", acct.ID)
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.TrialStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.HasFullAccess)
	assert.True(t, resp.TrialActive)
	assert.Equal(t, 5, resp.DaysRemaining)
	assert.Equal(t, 7, resp.Usage.DailyUsed)
	assert.Equal(t, 100, resp.Usage.DailyLimit)
	assert.Equal(t, 42, resp.Usage.MonthlyUsed)
	assert.Equal(t, 3000, resp.Usage.MonthlyLimit)
}

func TestTrialStatusForFreemiumAccount(t *testing.T) {
	st := store.NewMemoryStore()
	h := newTrialTestHandler(st)
	e := echo.New()

	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "freemium@example.com",
		SubscriptionStatus: models.StatusFreemium,
	})
	require.NoError(t, err)
	st.SeedEntry(acct.ID, models.ActionSummarize, time.Now().UTC().Add(-time.Hour))

	rec := doJSON(t, e, h.Status, http.MethodGet, "/api/trial/status", "", func(c echo.Context) {
		c.Set("account_id", acct.ID)
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.TrialStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.HasFullAccess)
	assert.Equal(t, models.StatusFreemium, resp.SubscriptionStatus)
	assert.Equal(t, 1, resp.Usage.DailyUsed)
	assert.Equal(t, 2, resp.Usage.DailyLimit)
}

func TestTrialStatusUnknownAccount(t *testing.T) {
	st := store.NewMemoryStore()
	h := newTrialTestHandler(st)
	e := echo.New()

	rec := doJSON(t, e, h.Status, http.MethodGet, "/api/trial/status", "", func(c echo.Context) {
		c.Set("account_id", 999)
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
