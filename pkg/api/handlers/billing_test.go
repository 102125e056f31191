package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/replyflow/replyflow-api/pkg/billing"
	"github.com/replyflow/replyflow-api/pkg/metrics"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

const webhookTestSecret = "whsec_handler_test"

func newBillingTestHandler(st *store.MemoryStore) *BillingHandler {
	svc := billing.NewService(st, &billing.StripeConfig{
		WebhookSecret:   webhookTestSecret,
		PriceMonthly:    "price_monthly",
		PriceYearly:     "price_yearly",
		TrialPeriodDays: 30,
		BaseURL:         "https://app.replyflow.test",
	})
	return NewBillingHandler(svc, "https://app.replyflow.test/settings")
}

// signPayload builds a Stripe-Signature header for payload using the
// t=timestamp,v1=hmac scheme.
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(t *testing.T, eventType string, created time.Time, object interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]interface{}{
		"id":      "evt_test",
		"type":    eventType,
		"created": created.Unix(),
		"data":    map[string]json.RawMessage{"object": raw},
	})
	require.NoError(t, err)
	return payload
}

func doWebhook(t *testing.T, h *BillingHandler, payload []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Webhook(c))
	return rec
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	h := newBillingTestHandler(store.NewMemoryStore())

	payload := eventPayload(t, "customer.subscription.updated", time.Now(), &stripe.Subscription{ID: "sub_1"})
	rec := doWebhook(t, h, payload, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_signature")
}

func TestWebhookRejectsWrongSecret(t *testing.T) {
	h := newBillingTestHandler(store.NewMemoryStore())

	payload := eventPayload(t, "customer.subscription.updated", time.Now(), &stripe.Subscription{ID: "sub_1"})
	rec := doWebhook(t, h, payload, signPayload(payload, "whsec_wrong", time.Now()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_signature")
}

func TestWebhookRejectsTamperedPayload(t *testing.T) {
	h := newBillingTestHandler(store.NewMemoryStore())

	payload := eventPayload(t, "customer.subscription.updated", time.Now(), &stripe.Subscription{ID: "sub_1"})
	signature := signPayload(payload, webhookTestSecret, time.Now())
	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = 'X'

	rec := doWebhook(t, h, tampered, signature)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookAppliesSubscriptionUpdate(t *testing.T) {
	st := store.NewMemoryStore()
	h := newBillingTestHandler(st)

	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email: "sub@example.com",
	})
	require.NoError(t, err)
	acct.StripeCustomerID = "cus_1"
	acct.StripeSubscriptionID = "sub_1"
	require.NoError(t, st.UpdateAccount(context.Background(), acct))

	now := time.Now()
	payload := eventPayload(t, "customer.subscription.updated", now, &stripe.Subscription{
		ID:       "sub_1",
		Status:   stripe.SubscriptionStatusActive,
		Customer: &stripe.Customer{ID: "cus_1"},
	})

	rec := doWebhook(t, h, payload, signPayload(payload, webhookTestSecret, now))
	assert.Equal(t, http.StatusOK, rec.Code)

	got, err := st.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
}

func TestWebhookAcknowledgesStaleEvent(t *testing.T) {
	st := store.NewMemoryStore()
	h := newBillingTestHandler(st)

	watermark := time.Now().UTC()
	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email: "stale@example.com",
	})
	require.NoError(t, err)
	acct.SubscriptionStatus = models.StatusActive
	acct.IsPremium = true
	acct.StripeCustomerID = "cus_2"
	acct.StripeSubscriptionID = "sub_2"
	acct.SubscriptionEventTime = &watermark
	require.NoError(t, st.UpdateAccount(context.Background(), acct))

	stale := watermark.Add(-time.Hour)
	payload := eventPayload(t, "customer.subscription.updated", stale, &stripe.Subscription{
		ID:       "sub_2",
		Status:   stripe.SubscriptionStatusCanceled,
		Customer: &stripe.Customer{ID: "cus_2"},
	})

	rec := doWebhook(t, h, payload, signPayload(payload, webhookTestSecret, time.Now()))

	// Stale events are acknowledged so Stripe stops retrying them
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stale")

	got, err := st.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.SubscriptionStatus)
	assert.True(t, got.IsPremium)
}

func TestWebhookRecordsEventMetrics(t *testing.T) {
	st := store.NewMemoryStore()
	h := newBillingTestHandler(st)
	m := metrics.New()
	h.SetMetrics(m)

	watermark := time.Now().UTC()
	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email: "metrics@example.com",
	})
	require.NoError(t, err)
	acct.StripeCustomerID = "cus_m"
	acct.StripeSubscriptionID = "sub_m"
	acct.SubscriptionEventTime = &watermark
	require.NoError(t, st.UpdateAccount(context.Background(), acct))

	fresh := watermark.Add(time.Hour)
	payload := eventPayload(t, "customer.subscription.updated", fresh, &stripe.Subscription{
		ID:       "sub_m",
		Status:   stripe.SubscriptionStatusActive,
		Customer: &stripe.Customer{ID: "cus_m"},
	})
	rec := doWebhook(t, h, payload, signPayload(payload, webhookTestSecret, time.Now()))
	assert.Equal(t, http.StatusOK, rec.Code)

	stale := watermark.Add(-time.Hour)
	payload = eventPayload(t, "customer.subscription.updated", stale, &stripe.Subscription{
		ID:       "sub_m",
		Status:   stripe.SubscriptionStatusCanceled,
		Customer: &stripe.Customer{ID: "cus_m"},
	})
	rec = doWebhook(t, h, payload, signPayload(payload, webhookTestSecret, time.Now()))
	assert.Equal(t, http.StatusOK, rec.Code)

	accepted := testutil.ToFloat64(m.WebhookEventsTotal.WithLabelValues("customer.subscription.updated", "accepted"))
	assert.Equal(t, 1.0, accepted)
	staleCount := testutil.ToFloat64(m.WebhookEventsTotal.WithLabelValues("customer.subscription.updated", "stale"))
	assert.Equal(t, 1.0, staleCount)
}

func TestCreateCheckoutRejectsUnknownPlan(t *testing.T) {
	st := store.NewMemoryStore()
	h := newBillingTestHandler(st)
	e := echo.New()

	acct, err := st.CreateAccount(context.Background(), &models.Account{Email: "plan@example.com"})
	require.NoError(t, err)

	rec := doJSON(t, e, h.CreateCheckout, http.MethodPost, "/api/billing/checkout",
		`{"plan":"weekly"}`, func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelWithoutSubscription(t *testing.T) {
	st := store.NewMemoryStore()
	h := newBillingTestHandler(st)
	e := echo.New()

	acct, err := st.CreateAccount(context.Background(), &models.Account{Email: "nosub@example.com"})
	require.NoError(t, err)

	rec := doJSON(t, e, h.CancelSubscription, http.MethodPost, "/api/billing/cancel",
		"", func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_subscription")
}

func TestGetSubscriptionForFreeAccount(t *testing.T) {
	st := store.NewMemoryStore()
	h := newBillingTestHandler(st)
	e := echo.New()

	acct, err := st.CreateAccount(context.Background(), &models.Account{Email: "free-sub@example.com"})
	require.NoError(t, err)

	rec := doJSON(t, e, h.GetSubscription, http.MethodGet, "/api/billing/subscription",
		"", func(c echo.Context) {
			c.Set("account_id", acct.ID)
		})

	assert.Equal(t, http.StatusOK, rec.Code)

	var info models.SubscriptionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.False(t, info.HasActiveSubscription)
	assert.False(t, info.IsPremium)
}
