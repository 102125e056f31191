package billing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

// mockEmailSender records sent emails
type mockEmailSender struct {
	sent []sentEmail
}

type sentEmail struct {
	to      string
	subject string
}

func (m *mockEmailSender) SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	m.sent = append(m.sent, sentEmail{to: toEmail, subject: subject})
	return nil
}

// mockSubscriptionFetcher serves canned subscriptions by id
type mockSubscriptionFetcher struct {
	subs map[string]*stripe.Subscription
}

func (m *mockSubscriptionFetcher) FetchSubscription(id string) (*stripe.Subscription, error) {
	if sub, ok := m.subs[id]; ok {
		return sub, nil
	}
	return nil, &stripe.Error{Code: stripe.ErrorCodeResourceMissing}
}

// Interface compliance
var _ EmailSender = &mockEmailSender{}
var _ SubscriptionFetcher = &mockSubscriptionFetcher{}

func newTestService(t *testing.T) (*Service, *store.MemoryStore, *mockEmailSender) {
	t.Helper()
	s := store.NewMemoryStore()
	svc := NewService(s, &StripeConfig{
		WebhookSecret:   "whsec_test",
		PriceMonthly:    "price_monthly",
		PriceYearly:     "price_yearly",
		TrialPeriodDays: 30,
		BaseURL:         "https://app.replyflow.test",
	})
	email := &mockEmailSender{}
	svc.SetEmailSender(email)
	return svc, s, email
}

func seedAccount(t *testing.T, s *store.MemoryStore, acct *models.Account) *models.Account {
	t.Helper()
	created, err := s.CreateAccount(context.Background(), acct)
	require.NoError(t, err)
	created.SubscriptionStatus = acct.SubscriptionStatus
	created.IsPremium = acct.IsPremium
	created.PlanType = acct.PlanType
	created.TrialActive = acct.TrialActive
	created.TrialStartDate = acct.TrialStartDate
	created.TrialEndDate = acct.TrialEndDate
	created.StripeCustomerID = acct.StripeCustomerID
	created.StripeSubscriptionID = acct.StripeSubscriptionID
	created.SubscriptionEventTime = acct.SubscriptionEventTime
	require.NoError(t, s.UpdateAccount(context.Background(), created))
	return created
}

func makeEvent(t *testing.T, eventType string, created time.Time, payload interface{}) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return stripe.Event{
		ID:      "evt_" + eventType,
		Type:    stripe.EventType(eventType),
		Created: created.Unix(),
		Data:    &stripe.EventData{Raw: raw},
	}
}

func subscriptionPayload(id, customerID string, status stripe.SubscriptionStatus) *stripe.Subscription {
	return &stripe.Subscription{
		ID:       id,
		Status:   status,
		Customer: &stripe.Customer{ID: customerID},
	}
}

func TestSubscriptionCreatedMapsTrialingState(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	acct := seedAccount(t, s, &models.Account{
		Email:              "trial@example.com",
		Name:               "Trial",
		SubscriptionStatus: models.StatusNone,
		StripeCustomerID:   "cus_1",
	})

	trialStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := trialStart.AddDate(0, 0, 30)
	sub := subscriptionPayload("sub_1", "cus_1", stripe.SubscriptionStatusTrialing)
	sub.TrialStart = trialStart.Unix()
	sub.TrialEnd = trialEnd.Unix()
	sub.Metadata = map[string]string{"plan_type": "monthly"}

	event := makeEvent(t, "customer.subscription.created", trialStart, sub)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTrialing, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
	assert.True(t, got.TrialActive)
	assert.Equal(t, "sub_1", got.StripeSubscriptionID)
	require.NotNil(t, got.TrialStartDate)
	assert.True(t, got.TrialStartDate.Equal(trialStart))
	require.NotNil(t, got.TrialEndDate)
	assert.True(t, got.TrialEndDate.Equal(trialEnd))
	require.NotNil(t, got.PlanType)
	assert.Equal(t, models.PlanMonthly, *got.PlanType)
}

func TestSubscriptionUpdatedKeepsKnownPlanType(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	plan := models.PlanYearly
	acct := seedAccount(t, s, &models.Account{
		Email:                "plan@example.com",
		Name:                 "Plan",
		SubscriptionStatus:   models.StatusTrialing,
		PlanType:             &plan,
		StripeCustomerID:     "cus_2",
		StripeSubscriptionID: "sub_2",
	})

	// Update event carries no plan metadata
	sub := subscriptionPayload("sub_2", "cus_2", stripe.SubscriptionStatusActive)
	event := makeEvent(t, "customer.subscription.updated", time.Now(), sub)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.False(t, got.TrialActive)
	require.NotNil(t, got.PlanType)
	assert.Equal(t, models.PlanYearly, *got.PlanType)
}

func TestPaymentFailedKeepsPremiumThenRecovers(t *testing.T) {
	svc, s, email := newTestService(t)
	ctx := context.Background()

	acct := seedAccount(t, s, &models.Account{
		Email:                "c@example.com",
		Name:                 "C",
		SubscriptionStatus:   models.StatusActive,
		IsPremium:            true,
		StripeCustomerID:     "cus_3",
		StripeSubscriptionID: "sub_3",
	})

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	invoice := &stripe.Invoice{
		ID:           "in_1",
		Customer:     &stripe.Customer{ID: "cus_3"},
		Subscription: &stripe.Subscription{ID: "sub_3"},
	}

	// Payment fails: past_due but premium access survives the grace period
	event := makeEvent(t, "invoice.payment_failed", now, invoice)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPastDue, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
	require.Len(t, email.sent, 1)
	assert.Contains(t, email.sent[0].subject, "payment failed")

	// Retry succeeds: back to active
	event = makeEvent(t, "invoice.payment_succeeded", now.Add(time.Hour), invoice)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err = s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
}

func TestOneOffInvoiceDoesNotGrantAccess(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	acct := seedAccount(t, s, &models.Account{
		Email:              "oneoff@example.com",
		Name:               "One Off",
		SubscriptionStatus: models.StatusFreemium,
		StripeCustomerID:   "cus_oneoff",
	})

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	// Standalone charge: the invoice carries no subscription link
	invoice := &stripe.Invoice{
		ID:       "in_oneoff",
		Customer: &stripe.Customer{ID: "cus_oneoff"},
	}

	event := makeEvent(t, "invoice.payment_succeeded", now, invoice)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreemium, got.SubscriptionStatus)
	assert.False(t, got.IsPremium)

	event = makeEvent(t, "invoice.payment_failed", now.Add(time.Hour), invoice)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err = s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFreemium, got.SubscriptionStatus)
}

func TestSubscriptionDeletedIsIdempotent(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	trialStart := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := trialStart.AddDate(0, 0, 30)
	acct := seedAccount(t, s, &models.Account{
		Email:                "gone@example.com",
		Name:                 "Gone",
		SubscriptionStatus:   models.StatusActive,
		IsPremium:            true,
		TrialStartDate:       &trialStart,
		TrialEndDate:         &trialEnd,
		StripeCustomerID:     "cus_4",
		StripeSubscriptionID: "sub_4",
	})

	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	sub := subscriptionPayload("sub_4", "cus_4", stripe.SubscriptionStatusCanceled)
	event := makeEvent(t, "customer.subscription.deleted", now, sub)

	require.NoError(t, svc.ProcessEvent(ctx, event))
	// Replaying the same event changes nothing
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, got.SubscriptionStatus)
	assert.False(t, got.IsPremium)
	assert.False(t, got.TrialActive)
	assert.Empty(t, got.StripeSubscriptionID)
	// Trial dates survive for trial eligibility checks
	require.NotNil(t, got.TrialStartDate)
	require.NotNil(t, got.TrialEndDate)
}

func TestStaleEventIsRejected(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	watermark := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	acct := seedAccount(t, s, &models.Account{
		Email:                 "stale@example.com",
		Name:                  "Stale",
		SubscriptionStatus:    models.StatusActive,
		IsPremium:             true,
		StripeCustomerID:      "cus_5",
		StripeSubscriptionID:  "sub_5",
		SubscriptionEventTime: &watermark,
	})

	// An event from before the watermark must not regress the account
	sub := subscriptionPayload("sub_5", "cus_5", stripe.SubscriptionStatusPastDue)
	event := makeEvent(t, "customer.subscription.updated", watermark.Add(-time.Hour), sub)
	err := svc.ProcessEvent(ctx, event)
	require.Error(t, err)
	assert.True(t, domain.IsStaleEvent(err))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
}

func TestCheckoutCompletedResolvesByMetadata(t *testing.T) {
	svc, s, email := newTestService(t)
	ctx := context.Background()

	acct := seedAccount(t, s, &models.Account{
		Email:              "buyer@example.com",
		Name:               "Buyer",
		SubscriptionStatus: models.StatusNone,
	})

	trialStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sub := subscriptionPayload("sub_6", "cus_6", stripe.SubscriptionStatusTrialing)
	sub.TrialStart = trialStart.Unix()
	sub.TrialEnd = trialStart.AddDate(0, 0, 30).Unix()
	svc.SetSubscriptionFetcher(&mockSubscriptionFetcher{subs: map[string]*stripe.Subscription{"sub_6": sub}})

	sess := &stripe.CheckoutSession{
		ID:           "cs_1",
		Customer:     &stripe.Customer{ID: "cus_6"},
		Subscription: &stripe.Subscription{ID: "sub_6"},
		Metadata:     map[string]string{"account_id": "1"},
	}
	event := makeEvent(t, "checkout.session.completed", trialStart, sess)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTrialing, got.SubscriptionStatus)
	assert.Equal(t, "cus_6", got.StripeCustomerID)
	assert.Equal(t, "sub_6", got.StripeSubscriptionID)
	assert.True(t, got.TrialActive)
	require.Len(t, email.sent, 1)
	assert.Contains(t, email.sent[0].subject, "trial")
}

func TestCheckoutCompletedFallsBackToEmail(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	acct := seedAccount(t, s, &models.Account{
		Email:              "fallback@example.com",
		Name:               "Fallback",
		SubscriptionStatus: models.StatusNone,
	})

	sub := subscriptionPayload("sub_7", "cus_7", stripe.SubscriptionStatusActive)
	svc.SetSubscriptionFetcher(&mockSubscriptionFetcher{subs: map[string]*stripe.Subscription{"sub_7": sub}})

	// No metadata, unknown customer id, only the billing email matches
	sess := &stripe.CheckoutSession{
		ID:            "cs_2",
		Customer:      &stripe.Customer{ID: "cus_7"},
		Subscription:  &stripe.Subscription{ID: "sub_7"},
		CustomerEmail: "fallback@example.com",
	}
	event := makeEvent(t, "checkout.session.completed", time.Now(), sess)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
}

func TestCheckoutCompletedUnresolvedFailsLoudly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	sess := &stripe.CheckoutSession{
		ID:            "cs_3",
		CustomerEmail: "nobody@example.com",
	}
	event := makeEvent(t, "checkout.session.completed", time.Now(), sess)
	err := svc.ProcessEvent(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to resolve account")
}

func TestPendingReconciliationClearedByRealSubscription(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	acct := seedAccount(t, s, &models.Account{
		Email:              "manual@example.com",
		Name:               "Manual",
		SubscriptionStatus: models.StatusActive,
		IsPremium:          true,
		StripeCustomerID:   "cus_8",
	})
	acct.PendingReconciliation = true
	require.NoError(t, s.UpdateAccount(ctx, acct))

	sub := subscriptionPayload("sub_8", "cus_8", stripe.SubscriptionStatusActive)
	event := makeEvent(t, "customer.subscription.created", time.Now(), sub)
	require.NoError(t, svc.ProcessEvent(ctx, event))

	got, err := s.GetAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.False(t, got.PendingReconciliation)
	assert.Equal(t, "sub_8", got.StripeSubscriptionID)
}

func TestMapStripeStatus(t *testing.T) {
	tests := []struct {
		in   stripe.SubscriptionStatus
		want string
	}{
		{stripe.SubscriptionStatusActive, models.StatusActive},
		{stripe.SubscriptionStatusTrialing, models.StatusTrialing},
		{stripe.SubscriptionStatusPastDue, models.StatusPastDue},
		{stripe.SubscriptionStatusUnpaid, models.StatusPastDue},
		{stripe.SubscriptionStatusCanceled, models.StatusCanceled},
		{stripe.SubscriptionStatusIncompleteExpired, models.StatusCanceled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapStripeStatus(tt.in), "status %s", tt.in)
	}
}

func TestGetPriceIDForPlan(t *testing.T) {
	svc, _, _ := newTestService(t)

	id, err := svc.getPriceIDForPlan(models.PlanMonthly)
	require.NoError(t, err)
	assert.Equal(t, "price_monthly", id)

	id, err = svc.getPriceIDForPlan(models.PlanYearly)
	require.NoError(t, err)
	assert.Equal(t, "price_yearly", id)

	_, err = svc.getPriceIDForPlan("weekly")
	assert.Error(t, err)
}

func TestBuildPaymentFailedEmail(t *testing.T) {
	subject, html, plain := buildPaymentFailedEmail("Jane", "https://app.replyflow.test")

	assert.Contains(t, subject, "payment failed")
	assert.Contains(t, html, "Jane")
	assert.Contains(t, plain, "Jane")
	assert.NotEmpty(t, subject)
}

func TestBuildTrialStartedEmail(t *testing.T) {
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	subject, html, plain := buildTrialStartedEmail("John", &end, "https://app.replyflow.test")

	assert.Contains(t, subject, "trial")
	assert.Contains(t, html, "John")
	assert.Contains(t, html, "July 1, 2025")
	assert.Contains(t, plain, "John")
}
