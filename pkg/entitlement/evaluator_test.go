package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

func testConfig() *config.Config {
	return &config.Config{
		DailyUsageLimit:    100,
		MonthlyUsageLimit:  3000,
		FreemiumDailyLimit: 2,
		FrontendURL:        "https://app.replyflow.test",
	}
}

func setup(t *testing.T) (*Evaluator, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewEvaluator(s, testConfig()), s
}

func createAccount(t *testing.T, s *store.MemoryStore, acct *models.Account) *models.Account {
	t.Helper()
	created, err := s.CreateAccount(context.Background(), acct)
	require.NoError(t, err)
	if acct.SubscriptionStatus != "" || acct.IsPremium || acct.DailyUsage > 0 || acct.MonthlyUsage > 0 {
		created.SubscriptionStatus = acct.SubscriptionStatus
		created.IsPremium = acct.IsPremium
		created.DailyUsage = acct.DailyUsage
		created.MonthlyUsage = acct.MonthlyUsage
		created.LastUsageDate = acct.LastUsageDate
		created.LastResetDate = acct.LastResetDate
		require.NoError(t, s.UpdateAccount(context.Background(), created))
	}
	return created
}

func TestFreemiumTwoActionsThenDeny(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	acct := createAccount(t, s, &models.Account{Email: "a@example.com", Name: "A", SubscriptionStatus: models.StatusNone})

	// First action
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Used)
	assert.Equal(t, 1, d.Remaining)
	require.NoError(t, ev.Commit(ctx, acct.ID, models.ActionReplyOptions, now))

	// Second action reports zero remaining after it completes
	d, err = ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Used)
	assert.Equal(t, 0, d.Remaining)
	require.NoError(t, ev.Commit(ctx, acct.ID, models.ActionGenerateReply, now))

	// Third is denied
	d, err = ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonDailyLimitReached, d.Reason)
	assert.Equal(t, TypeFreemiumDailyLimit, d.Type)
	assert.Equal(t, 2, d.Used)
	assert.Equal(t, 2, d.Limit)
	assert.Equal(t, 0, d.Remaining)
	assert.NotEmpty(t, d.UpgradeURL)
}

func TestFreemiumLedgerResetsAtMidnightUTC(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()

	acct := createAccount(t, s, &models.Account{Email: "a@example.com", Name: "A", SubscriptionStatus: models.StatusFreemium})

	yesterday := time.Date(2025, 6, 9, 23, 50, 0, 0, time.UTC)
	s.SeedEntry(acct.ID, models.ActionSummarize, yesterday)
	s.SeedEntry(acct.ID, models.ActionSummarize, yesterday)

	// Entries before midnight do not count today
	now := time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Used)
}

func TestFullAccessDailyCap(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	acct := createAccount(t, s, &models.Account{
		Email:              "b@example.com",
		Name:               "B",
		SubscriptionStatus: models.StatusTrialing,
		DailyUsage:         99,
		MonthlyUsage:       500,
		LastUsageDate:      &now,
		LastResetDate:      &now,
	})

	// 99 used, one left
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 99, d.Used)
	assert.Equal(t, 0, d.Remaining)
	require.NoError(t, ev.Commit(ctx, acct.ID, models.ActionGenerateReply, now))

	updated, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.DailyUsage)
	assert.Equal(t, 501, updated.MonthlyUsage)

	// Next action is denied at the cap
	d, err = ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, TypeDailyLimit, d.Type)
	assert.Equal(t, 100, d.Used)
	assert.Equal(t, 100, d.Limit)
}

func TestFullAccessMonthlyCap(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	acct := createAccount(t, s, &models.Account{
		Email:              "c@example.com",
		Name:               "C",
		SubscriptionStatus: models.StatusActive,
		DailyUsage:         5,
		MonthlyUsage:       3000,
		LastUsageDate:      &now,
		LastResetDate:      &now,
	})

	// Daily headroom does not matter once the monthly cap is hit
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonMonthlyLimitReached, d.Reason)
	assert.Equal(t, TypeMonthlyLimit, d.Type)
	assert.Equal(t, 3000, d.Used)
	assert.Equal(t, 3000, d.Limit)
}

func TestRolloverResetsCountersAndPersists(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()

	yesterday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	acct := createAccount(t, s, &models.Account{
		Email:              "d@example.com",
		Name:               "D",
		SubscriptionStatus: models.StatusActive,
		DailyUsage:         100,
		MonthlyUsage:       200,
		LastUsageDate:      &yesterday,
		LastResetDate:      &yesterday,
	})

	// New day resets daily, same month keeps monthly
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Used)

	persisted, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, persisted.DailyUsage)
	assert.Equal(t, 200, persisted.MonthlyUsage)
	require.NotNil(t, persisted.LastUsageDate)
	assert.True(t, domain.SameUTCDay(*persisted.LastUsageDate, now))

	// Second evaluation in the same day changes nothing
	d2, err := ev.Evaluate(ctx, acct.ID, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, d.Used, d2.Used)
}

func TestRolloverPersistsEvenWhenDenied(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()

	yesterday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	acct := createAccount(t, s, &models.Account{
		Email:              "e@example.com",
		Name:               "E",
		SubscriptionStatus: models.StatusActive,
		DailyUsage:         100,
		MonthlyUsage:       3000,
		LastUsageDate:      &yesterday,
		LastResetDate:      &thisMonth,
	})

	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	// Day rolled but the monthly cap still denies
	assert.False(t, d.Allowed)
	assert.Equal(t, TypeMonthlyLimit, d.Type)

	// The daily reset was written despite the deny
	persisted, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, persisted.DailyUsage)
	assert.Equal(t, 3000, persisted.MonthlyUsage)
	require.NotNil(t, persisted.LastUsageDate)
	assert.True(t, domain.SameUTCDay(*persisted.LastUsageDate, now))
}

func TestMonthRolloverAcrossYearBoundary(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()

	december := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	acct := createAccount(t, s, &models.Account{
		Email:              "f@example.com",
		Name:               "F",
		SubscriptionStatus: models.StatusActive,
		DailyUsage:         10,
		MonthlyUsage:       2999,
		LastUsageDate:      &december,
		LastResetDate:      &december,
	})

	now := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Used)
}

func TestCommitFailureIsSurfaced(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	acct := createAccount(t, s, &models.Account{
		Email:              "g@example.com",
		Name:               "G",
		SubscriptionStatus: models.StatusActive,
		LastUsageDate:      &now,
		LastResetDate:      &now,
	})

	s.FailUpdates = true
	err := ev.Commit(ctx, acct.ID, models.ActionSummarize, now)
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
}

func TestEvaluateUnknownAccount(t *testing.T) {
	ev, _ := setup(t)

	_, err := ev.Evaluate(context.Background(), 9999, time.Now())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPremiumFlagAloneGrantsFullAccess(t *testing.T) {
	ev, s := setup(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	// Canceled subscription but premium flag still set
	acct := createAccount(t, s, &models.Account{
		Email:              "h@example.com",
		Name:               "H",
		SubscriptionStatus: models.StatusCanceled,
		IsPremium:          true,
		LastUsageDate:      &now,
		LastResetDate:      &now,
	})

	d, err := ev.Evaluate(ctx, acct.ID, now)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 100, d.Limit)
}
