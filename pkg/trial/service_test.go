package trial

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	svc := NewService(s, nil, &config.Config{
		DailyUsageLimit:    100,
		MonthlyUsageLimit:  3000,
		FreemiumDailyLimit: 2,
	})
	return svc, s
}

func seedTrialAccount(t *testing.T, s *store.MemoryStore, email string, end time.Time, status string) *models.Account {
	t.Helper()
	start := end.AddDate(0, 0, -30)
	acct, err := s.CreateAccount(context.Background(), &models.Account{Email: email, Name: "T"})
	require.NoError(t, err)
	acct.SubscriptionStatus = status
	acct.IsPremium = status == models.StatusTrialing
	acct.TrialActive = true
	acct.TrialStartDate = &start
	acct.TrialEndDate = &end
	require.NoError(t, s.UpdateAccount(context.Background(), acct))
	return acct
}

func TestSweepConvertsExpiredTrial(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	acct := seedTrialAccount(t, s, "expired@example.com", end, models.StatusTrialing)

	result, err := svc.Sweep(ctx, end.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 1, result.Converted)
	assert.Empty(t, result.Errors)

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreemium, got.SubscriptionStatus)
	assert.False(t, got.TrialActive)
	assert.False(t, got.IsPremium)
}

func TestSweepBoundaryOneSecondBeforeExpiry(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	acct := seedTrialAccount(t, s, "edge@example.com", end, models.StatusTrialing)

	// One second before the end the trial is still running
	result, err := svc.Sweep(ctx, end.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Checked)
	assert.Equal(t, 0, result.Converted)

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTrialing, got.SubscriptionStatus)
	assert.True(t, got.TrialActive)

	// Exactly at the end it converts
	result, err = svc.Sweep(ctx, end)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted)
}

func TestSweepIsIdempotent(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	seedTrialAccount(t, s, "twice@example.com", end, models.StatusTrialing)

	now := end.Add(time.Hour)
	result, err := svc.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted)

	// Second run finds nothing to do
	result, err = svc.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Checked)
	assert.Equal(t, 0, result.Converted)
}

func TestSweepSkipsUpgradedAccounts(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	// Paid during the trial: status active, trial flag still set
	acct := seedTrialAccount(t, s, "paid@example.com", end, models.StatusActive)

	result, err := svc.Sweep(ctx, end.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Converted)

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
}

func TestSweepContinuesAfterAccountError(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	seedTrialAccount(t, s, "one@example.com", end, models.StatusTrialing)
	seedTrialAccount(t, s, "two@example.com", end, models.StatusTrialing)

	s.FailUpdates = true
	result, err := svc.Sweep(ctx, end.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 0, result.Converted)
	assert.Len(t, result.Errors, 2)
}

func TestStatusFreemiumUsesLedger(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	acct, err := s.CreateAccount(ctx, &models.Account{Email: "free@example.com", Name: "F"})
	require.NoError(t, err)
	acct.SubscriptionStatus = models.StatusFreemium
	require.NoError(t, s.UpdateAccount(ctx, acct))

	s.SeedEntry(acct.ID, models.ActionSummarize, now.Add(-time.Hour))

	resp, err := svc.Status(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.False(t, resp.HasFullAccess)
	assert.Equal(t, 1, resp.Usage.DailyUsed)
	assert.Equal(t, 2, resp.Usage.DailyLimit)
	assert.Zero(t, resp.Usage.MonthlyLimit)
}

func TestStatusTrialingReportsCountersAndDays(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	end := now.AddDate(0, 0, 10)
	acct := seedTrialAccount(t, s, "active@example.com", end, models.StatusTrialing)
	acct.DailyUsage = 7
	acct.MonthlyUsage = 42
	require.NoError(t, s.UpdateAccount(ctx, acct))

	resp, err := svc.Status(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, resp.HasFullAccess)
	assert.True(t, resp.TrialActive)
	assert.Equal(t, 7, resp.Usage.DailyUsed)
	assert.Equal(t, 100, resp.Usage.DailyLimit)
	assert.Equal(t, 42, resp.Usage.MonthlyUsed)
	assert.Equal(t, 3000, resp.Usage.MonthlyLimit)
	assert.Equal(t, 10, resp.DaysRemaining)
}
