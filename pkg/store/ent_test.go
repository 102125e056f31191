package store

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/ent"
	"github.com/replyflow/replyflow-api/ent/enttest"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

func setupEntStore(t *testing.T) (*EntStore, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewEntStore(client), client
}

func timePtr(v time.Time) *time.Time { return &v }

func TestEntStore_CreateAndGetAccount(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	trialStart := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	trialEnd := trialStart.AddDate(0, 0, 30)
	created, err := s.CreateAccount(ctx, &models.Account{
		Email:              "  MixedCase@Example.com ",
		Name:               "Mixed Case",
		PasswordHash:       "hashed",
		GoogleID:           "google-999",
		SubscriptionStatus: models.StatusTrialing,
		IsPremium:          true,
		TrialActive:        true,
		TrialStartDate:     &trialStart,
		TrialEndDate:       &trialEnd,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "mixedcase@example.com", created.Email)
	assert.Equal(t, "google-999", created.GoogleID)
	assert.True(t, created.TrialActive)
	require.NotNil(t, created.TrialEndDate)

	byEmail, err := s.GetAccountByEmail(ctx, "MIXEDCASE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := s.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTrialing, byID.SubscriptionStatus)
	assert.Equal(t, "hashed", byID.PasswordHash)
}

func TestEntStore_CreateAccountDuplicateEmail(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	_, err := s.CreateAccount(ctx, &models.Account{Email: "dup@example.com", Name: "First"})
	require.NoError(t, err)

	_, err = s.CreateAccount(ctx, &models.Account{Email: "dup@example.com", Name: "Second"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestEntStore_GetAccountNotFound(t *testing.T) {
	s, _ := setupEntStore(t)

	_, err := s.GetAccount(context.Background(), 9999)
	assert.True(t, domain.IsNotFound(err))

	_, err = s.GetAccountByEmail(context.Background(), "nobody@example.com")
	assert.True(t, domain.IsNotFound(err))
}

func TestEntStore_UpdateAccountRoundTripsEveryField(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	created, err := s.CreateAccount(ctx, &models.Account{
		Email: "roundtrip@example.com",
		Name:  "Before",
	})
	require.NoError(t, err)

	plan := models.PlanMonthly
	eventTime := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	want := &models.Account{
		ID:                    created.ID,
		Name:                  "After",
		PasswordHash:          "new-hash",
		GoogleID:              "google-123",
		SubscriptionStatus:    models.StatusActive,
		IsPremium:             true,
		PlanType:              &plan,
		TrialActive:           true,
		TrialStartDate:        timePtr(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		TrialEndDate:          timePtr(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)),
		DailyUsage:            7,
		MonthlyUsage:          42,
		LastUsageDate:         timePtr(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
		LastResetDate:         timePtr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		StripeCustomerID:      "cus_123",
		StripeSubscriptionID:  "sub_123",
		PendingReconciliation: true,
		SubscriptionEventTime: &eventTime,
	}
	require.NoError(t, s.UpdateAccount(ctx, want))

	got, err := s.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "new-hash", got.PasswordHash)
	assert.Equal(t, "google-123", got.GoogleID)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
	require.NotNil(t, got.PlanType)
	assert.Equal(t, models.PlanMonthly, *got.PlanType)
	assert.True(t, got.TrialActive)
	require.NotNil(t, got.TrialStartDate)
	assert.True(t, got.TrialStartDate.Equal(*want.TrialStartDate))
	require.NotNil(t, got.TrialEndDate)
	assert.True(t, got.TrialEndDate.Equal(*want.TrialEndDate))
	assert.Equal(t, 7, got.DailyUsage)
	assert.Equal(t, 42, got.MonthlyUsage)
	require.NotNil(t, got.LastUsageDate)
	assert.True(t, got.LastUsageDate.Equal(*want.LastUsageDate))
	require.NotNil(t, got.LastResetDate)
	assert.True(t, got.LastResetDate.Equal(*want.LastResetDate))
	assert.Equal(t, "cus_123", got.StripeCustomerID)
	assert.Equal(t, "sub_123", got.StripeSubscriptionID)
	assert.True(t, got.PendingReconciliation)
	require.NotNil(t, got.SubscriptionEventTime)
	assert.True(t, got.SubscriptionEventTime.Equal(eventTime))

	byCustomer, err := s.GetAccountByCustomerID(ctx, "cus_123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCustomer.ID)

	bySub, err := s.GetAccountBySubscriptionID(ctx, "sub_123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySub.ID)
}

func TestEntStore_UpdateAccountPersistsGoogleLink(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	// Account registered with email and password, later linked to Google
	created, err := s.CreateAccount(ctx, &models.Account{
		Email:        "link@example.com",
		Name:         "Linker",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)
	assert.Empty(t, created.GoogleID)

	created.GoogleID = "google-456"
	require.NoError(t, s.UpdateAccount(ctx, created))

	got, err := s.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "google-456", got.GoogleID)
}

func TestEntStore_UpdateAccountClearsSubscriptionID(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	created, err := s.CreateAccount(ctx, &models.Account{
		Email: "cancel@example.com",
		Name:  "Cancel",
	})
	require.NoError(t, err)

	created.SubscriptionStatus = models.StatusActive
	created.StripeCustomerID = "cus_c"
	created.StripeSubscriptionID = "sub_c"
	require.NoError(t, s.UpdateAccount(ctx, created))

	// Subscription deleted: the id is cleared, the customer link stays
	created.SubscriptionStatus = models.StatusCanceled
	created.StripeSubscriptionID = ""
	require.NoError(t, s.UpdateAccount(ctx, created))

	got, err := s.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, got.SubscriptionStatus)
	assert.Empty(t, got.StripeSubscriptionID)
	assert.Equal(t, "cus_c", got.StripeCustomerID)
}

func TestEntStore_IncrementUsageRollsOverAndCaps(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	created, err := s.CreateAccount(ctx, &models.Account{
		Email:              "counter@example.com",
		Name:               "Counter",
		SubscriptionStatus: models.StatusActive,
		IsPremium:          true,
	})
	require.NoError(t, err)

	yesterday := time.Date(2025, 6, 9, 23, 0, 0, 0, time.UTC)
	created.DailyUsage = 99
	created.MonthlyUsage = 500
	created.LastUsageDate = &yesterday
	created.LastResetDate = &yesterday
	require.NoError(t, s.UpdateAccount(ctx, created))

	// New UTC day: the daily counter resets before incrementing
	now := time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)
	got, err := s.IncrementUsage(ctx, created.ID, now, 100, 3000)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DailyUsage)
	assert.Equal(t, 501, got.MonthlyUsage)

	// At the cap the increment is refused and nothing is persisted
	got.DailyUsage = 100
	require.NoError(t, s.UpdateAccount(ctx, got))
	_, err = s.IncrementUsage(ctx, created.ID, now, 100, 3000)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	after, err := s.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, after.DailyUsage)
	assert.Equal(t, 501, after.MonthlyUsage)
}

func TestEntStore_UsageLedger(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	created, err := s.CreateAccount(ctx, &models.Account{
		Email: "ledger@example.com",
		Name:  "Ledger",
	})
	require.NoError(t, err)

	require.NoError(t, s.AppendUsageEntry(ctx, created.ID, models.ActionSummarize))
	require.NoError(t, s.AppendUsageEntry(ctx, created.ID, models.ActionReplyOptions))

	n, err := s.CountUsageEntriesSince(ctx, created.ID, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A window starting in the future matches nothing
	n, err = s.CountUsageEntriesSince(ctx, created.ID, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEntStore_FindAccountsForTrialSweep(t *testing.T) {
	s, _ := setupEntStore(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)

	expired, err := s.CreateAccount(ctx, &models.Account{
		Email:              "expired@example.com",
		Name:               "Expired",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
		TrialEndDate:       timePtr(now.Add(-time.Hour)),
	})
	require.NoError(t, err)

	_, err = s.CreateAccount(ctx, &models.Account{
		Email:              "running@example.com",
		Name:               "Running",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
		TrialEndDate:       timePtr(now.Add(time.Second)),
	})
	require.NoError(t, err)

	// Paid before the trial ran out: never swept
	_, err = s.CreateAccount(ctx, &models.Account{
		Email:              "paid@example.com",
		Name:               "Paid",
		SubscriptionStatus: models.StatusActive,
		TrialActive:        true,
		TrialEndDate:       timePtr(now.Add(-time.Hour)),
	})
	require.NoError(t, err)

	rows, err := s.FindAccountsForTrialSweep(ctx, now)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, expired.ID, rows[0].ID)
}
