package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
	"github.com/replyflow/replyflow-api/pkg/trial"
)

func newCronTestHandler(st *store.MemoryStore, secret string) *CronHandler {
	trialService := trial.NewService(st, nil, aiTestConfig())
	return NewCronHandler(trialService, secret)
}

func doCron(t *testing.T, h *CronHandler, secret string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/cron/check-trial-expiry", nil)
	if secret != "" {
		req.Header.Set("X-Cron-Secret", secret)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.CheckTrialExpiry(c))
	return rec
}

func TestCronRejectsWrongSecret(t *testing.T) {
	h := newCronTestHandler(store.NewMemoryStore(), "real-secret")

	rec := doCron(t, h, "wrong-secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCronRejectsMissingSecret(t *testing.T) {
	h := newCronTestHandler(store.NewMemoryStore(), "real-secret")

	rec := doCron(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCronRejectsWhenNoSecretConfigured(t *testing.T) {
	h := newCronTestHandler(store.NewMemoryStore(), "")

	rec := doCron(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCronSweepConvertsExpiredTrials(t *testing.T) {
	st := store.NewMemoryStore()
	h := newCronTestHandler(st, "real-secret")

	now := time.Now().UTC()
	expired := now.Add(-24 * time.Hour)
	future := now.Add(72 * time.Hour)

	_, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "expired@example.com",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
		TrialEndDate:       &expired,
	})
	require.NoError(t, err)

	active, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "still-trialing@example.com",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
		TrialEndDate:       &future,
	})
	require.NoError(t, err)

	rec := doCron(t, h, "real-secret")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Checked)
	assert.Equal(t, 1, resp.Converted)
	assert.Empty(t, resp.Errors)

	expiredAcct, err := st.GetAccountByEmail(context.Background(), "expired@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreemium, expiredAcct.SubscriptionStatus)
	assert.False(t, expiredAcct.TrialActive)

	stillTrialing, err := st.GetAccount(context.Background(), active.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTrialing, stillTrialing.SubscriptionStatus)
	assert.True(t, stillTrialing.TrialActive)
}

func TestCronSweepIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	h := newCronTestHandler(st, "real-secret")

	expired := time.Now().UTC().Add(-time.Hour)
	_, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "expired@example.com",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
		TrialEndDate:       &expired,
	})
	require.NoError(t, err)

	rec := doCron(t, h, "real-secret")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doCron(t, h, "real-secret")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Checked)
	assert.Equal(t, 0, resp.Converted)
}
