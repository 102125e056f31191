package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	billingportalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	stripesubscription "github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// SubscriptionFetcher abstracts retrieving a full subscription object
// from Stripe. Checkout sessions only carry the subscription id.
type SubscriptionFetcher interface {
	FetchSubscription(id string) (*stripe.Subscription, error)
}

// Service handles Stripe billing operations and applies subscription
// lifecycle events to accounts.
type Service struct {
	store   domain.Store
	config  *StripeConfig
	email   EmailSender
	fetcher SubscriptionFetcher
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey       string
	WebhookSecret   string
	PriceMonthly    string
	PriceYearly     string
	TrialPeriodDays int
	SuccessURL      string
	CancelURL       string
	BaseURL         string
}

// NewService creates a new billing service
func NewService(store domain.Store, config *StripeConfig) *Service {
	// Set Stripe API key
	stripe.Key = config.SecretKey

	return &Service{
		store:   store,
		config:  config,
		fetcher: liveSubscriptionFetcher{},
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetSubscriptionFetcher overrides the Stripe subscription lookup.
func (s *Service) SetSubscriptionFetcher(f SubscriptionFetcher) {
	s.fetcher = f
}

type liveSubscriptionFetcher struct{}

func (liveSubscriptionFetcher) FetchSubscription(id string) (*stripe.Subscription, error) {
	return stripesubscription.Get(id, nil)
}

// CreateCheckoutSession creates a Stripe checkout session for the given
// plan. A trial is attached only when the account never had one before.
func (s *Service) CreateCheckoutSession(ctx context.Context, accountID int, plan string) (*models.CheckoutResponse, error) {
	priceID, err := s.getPriceIDForPlan(plan)
	if err != nil {
		return nil, err
	}

	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	customerID := acct.StripeCustomerID
	if customerID == "" {
		params := &stripe.CustomerParams{
			Email: stripe.String(acct.Email),
			Name:  stripe.String(acct.Name),
			Metadata: map[string]string{
				"account_id": strconv.Itoa(accountID),
			},
		}
		cust, err := customer.New(params)
		if err != nil {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		customerID = cust.ID

		acct.StripeCustomerID = customerID
		if err := s.store.UpdateAccount(ctx, acct); err != nil {
			return nil, err
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"account_id": strconv.Itoa(accountID),
			"plan_type":  plan,
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"account_id": strconv.Itoa(accountID),
				"plan_type":  plan,
			},
		},
	}

	// One trial per account, ever
	if !acct.HasUsedTrial() && s.config.TrialPeriodDays > 0 {
		params.SubscriptionData.TrialPeriodDays = stripe.Int64(int64(s.config.TrialPeriodDays))
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// CreateCustomerPortalSession creates a Stripe customer portal session
func (s *Service) CreateCustomerPortalSession(ctx context.Context, accountID int, returnURL string) (*models.CustomerPortalResponse, error) {
	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if acct.StripeCustomerID == "" {
		return nil, domain.NewBadRequestError("account has no billing profile")
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(acct.StripeCustomerID),
		ReturnURL: stripe.String(returnURL),
	}

	sess, err := billingportalsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &models.CustomerPortalResponse{
		URL: sess.URL,
	}, nil
}

// CancelSubscription schedules the account's subscription to cancel at
// the end of the current billing period.
func (s *Service) CancelSubscription(ctx context.Context, accountID int) error {
	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if acct.StripeSubscriptionID == "" {
		return domain.NewBadRequestError("no active subscription")
	}

	_, err = stripesubscription.Update(acct.StripeSubscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	log.Printf("✅ Subscription %s set to cancel at period end", acct.StripeSubscriptionID)
	return nil
}

// ReactivateSubscription removes a pending cancellation.
func (s *Service) ReactivateSubscription(ctx context.Context, accountID int) error {
	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if acct.StripeSubscriptionID == "" {
		return domain.NewBadRequestError("no subscription to reactivate")
	}

	_, err = stripesubscription.Update(acct.StripeSubscriptionID, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(false),
	})
	if err != nil {
		return fmt.Errorf("failed to reactivate subscription: %w", err)
	}

	log.Printf("✅ Subscription %s reactivated", acct.StripeSubscriptionID)
	return nil
}

// GetSubscriptionInfo returns the account's subscription state
func (s *Service) GetSubscriptionInfo(ctx context.Context, accountID int) (*models.SubscriptionInfo, error) {
	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	info := &models.SubscriptionInfo{
		Status:                acct.SubscriptionStatus,
		IsPremium:             acct.IsPremium,
		PlanType:              acct.PlanType,
		TrialActive:           acct.TrialActive,
		HasActiveSubscription: acct.StripeSubscriptionID != "",
	}
	if acct.TrialEndDate != nil {
		info.TrialEndDate = acct.TrialEndDate.UTC().Format(time.RFC3339)
	}

	if acct.StripeSubscriptionID != "" {
		sub, err := s.fetcher.FetchSubscription(acct.StripeSubscriptionID)
		if err != nil {
			log.Printf("⚠️  Failed to fetch subscription %s: %v", acct.StripeSubscriptionID, err)
		} else {
			info.CancelAtPeriodEnd = sub.CancelAtPeriodEnd
			if sub.CurrentPeriodEnd > 0 {
				info.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC().Format(time.RFC3339)
			}
		}
	}

	return info, nil
}

// HandleWebhook verifies and processes a Stripe webhook payload. It
// returns the event type so callers can record per-type outcomes.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (string, error) {
	// Verify webhook signature
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return "", &domain.DomainError{
			Code:    domain.ErrCodeUnauthorized,
			Message: "webhook signature verification failed",
			Err:     err,
		}
	}

	return string(event.Type), s.ProcessEvent(ctx, event)
}

// ProcessEvent dispatches a verified Stripe event to its handler
func (s *Service) ProcessEvent(ctx context.Context, event stripe.Event) error {
	log.Printf("📨 Stripe webhook received: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.created":
		return s.handleSubscriptionChange(ctx, event)
	case "customer.subscription.updated":
		return s.handleSubscriptionChange(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	case "invoice.payment_succeeded", "invoice.paid":
		return s.handleInvoicePaid(ctx, event)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleCheckoutCompleted handles checkout.session.completed event
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	acct, err := s.resolveCheckoutAccount(ctx, &sess)
	if err != nil {
		// An unresolved checkout means a paying customer without an
		// account link. Surface it instead of swallowing.
		return fmt.Errorf("unable to resolve account for checkout session %s: %w", sess.ID, err)
	}

	log.Printf("✅ Checkout completed: account_id=%d, session=%s", acct.ID, sess.ID)

	if sess.Customer != nil && sess.Customer.ID != "" {
		acct.StripeCustomerID = sess.Customer.ID
	}

	if sess.Subscription == nil || sess.Subscription.ID == "" {
		log.Printf("⚠️  Checkout session %s has no subscription", sess.ID)
		return s.store.UpdateAccount(ctx, acct)
	}

	// The session only embeds the subscription id; fetch the full object
	sub, err := s.fetcher.FetchSubscription(sess.Subscription.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription %s: %w", sess.Subscription.ID, err)
	}

	if err := applySubscriptionState(acct, sub, eventTime(event)); err != nil {
		return err
	}

	if wasTrialStarted(acct) && s.email != nil {
		subject, html, plain := buildTrialStartedEmail(acct.Name, acct.TrialEndDate, s.config.BaseURL)
		if err := s.email.SendEmail(acct.Email, acct.Name, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send trial started email to %s: %v", acct.Email, err)
		}
	}

	return s.store.UpdateAccount(ctx, acct)
}

// resolveCheckoutAccount finds the account a checkout session belongs
// to. Metadata carries the account id on the happy path; the customer
// reference and the billing email are fallbacks logged as degraded
// confidence.
func (s *Service) resolveCheckoutAccount(ctx context.Context, sess *stripe.CheckoutSession) (*models.Account, error) {
	if idStr, ok := sess.Metadata["account_id"]; ok && idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err == nil {
			acct, err := s.store.GetAccount(ctx, id)
			if err == nil {
				return acct, nil
			}
			log.Printf("⚠️  Checkout metadata account_id=%s does not match an account", idStr)
		}
	}

	if sess.Customer != nil && sess.Customer.ID != "" {
		acct, err := s.store.GetAccountByCustomerID(ctx, sess.Customer.ID)
		if err == nil {
			log.Printf("⚠️  Resolved checkout %s by customer id (degraded confidence)", sess.ID)
			return acct, nil
		}
	}

	email := sess.CustomerEmail
	if email == "" && sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}
	if email != "" {
		acct, err := s.store.GetAccountByEmail(ctx, email)
		if err == nil {
			log.Printf("⚠️  Resolved checkout %s by billing email (degraded confidence)", sess.ID)
			return acct, nil
		}
	}

	return nil, domain.NewNotFoundError("account")
}

// handleSubscriptionChange handles customer.subscription.created and
// customer.subscription.updated events
func (s *Service) handleSubscriptionChange(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	log.Printf("🔄 Subscription %s: %s, status=%s", event.Type, sub.ID, sub.Status)

	acct, err := s.resolveSubscriptionAccount(ctx, &sub)
	if err != nil {
		if domain.IsNotFound(err) {
			log.Printf("⚠️  No account for subscription %s", sub.ID)
			return nil
		}
		return err
	}

	if err := applySubscriptionState(acct, &sub, eventTime(event)); err != nil {
		return err
	}

	return s.store.UpdateAccount(ctx, acct)
}

// handleSubscriptionDeleted handles customer.subscription.deleted event
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	log.Printf("❌ Subscription deleted: %s", sub.ID)

	acct, err := s.resolveSubscriptionAccount(ctx, &sub)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}

	if stale(acct, eventTime(event)) {
		return domain.NewStaleEventError(event.ID)
	}

	// Trial dates are kept for trial eligibility checks
	acct.SubscriptionStatus = models.StatusCanceled
	acct.IsPremium = false
	acct.TrialActive = false
	acct.StripeSubscriptionID = ""
	setEventTime(acct, eventTime(event))

	if err := s.store.UpdateAccount(ctx, acct); err != nil {
		return err
	}

	if s.email != nil {
		subject, html, plain := buildSubscriptionCanceledEmail(acct.Name, s.config.BaseURL)
		if err := s.email.SendEmail(acct.Email, acct.Name, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send cancellation email to %s: %v", acct.Email, err)
		}
	}

	return nil
}

// handleInvoicePaid handles invoice.payment_succeeded events
func (s *Service) handleInvoicePaid(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("💰 Invoice paid: %s, amount=%d", invoice.ID, invoice.AmountPaid)

	acct, err := s.resolveInvoiceAccount(ctx, &invoice)
	if err != nil {
		if domain.IsNotFound(err) {
			log.Printf("⚠️  No account for paid invoice %s", invoice.ID)
			return nil
		}
		return err
	}

	if stale(acct, eventTime(event)) {
		return domain.NewStaleEventError(event.ID)
	}

	acct.SubscriptionStatus = models.StatusActive
	acct.IsPremium = true
	setEventTime(acct, eventTime(event))

	return s.store.UpdateAccount(ctx, acct)
}

// handleInvoicePaymentFailed handles invoice.payment_failed event
func (s *Service) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("⚠️  Invoice payment failed: %s", invoice.ID)

	acct, err := s.resolveInvoiceAccount(ctx, &invoice)
	if err != nil {
		if domain.IsNotFound(err) {
			log.Printf("⚠️  No account for failed invoice %s", invoice.ID)
			return nil
		}
		return err
	}

	if stale(acct, eventTime(event)) {
		return domain.NewStaleEventError(event.ID)
	}

	// Premium access survives the grace period, only the status flips.
	acct.SubscriptionStatus = models.StatusPastDue
	setEventTime(acct, eventTime(event))

	if err := s.store.UpdateAccount(ctx, acct); err != nil {
		return err
	}

	if s.email != nil {
		subject, html, plain := buildPaymentFailedEmail(acct.Name, s.config.BaseURL)
		if err := s.email.SendEmail(acct.Email, acct.Name, subject, html, plain); err != nil {
			log.Printf("⚠️  Failed to send payment failed email to %s: %v", acct.Email, err)
		}
	}

	return nil
}

func (s *Service) resolveSubscriptionAccount(ctx context.Context, sub *stripe.Subscription) (*models.Account, error) {
	acct, err := s.store.GetAccountBySubscriptionID(ctx, sub.ID)
	if err == nil {
		return acct, nil
	}
	if sub.Customer != nil && sub.Customer.ID != "" {
		if acct, err := s.store.GetAccountByCustomerID(ctx, sub.Customer.ID); err == nil {
			return acct, nil
		}
	}
	if idStr, ok := sub.Metadata["account_id"]; ok && idStr != "" {
		if id, convErr := strconv.Atoi(idStr); convErr == nil {
			return s.store.GetAccount(ctx, id)
		}
	}
	return nil, domain.NewNotFoundError("account")
}

// resolveInvoiceAccount locates the account for a subscription-linked
// invoice. One-off invoices carry no subscription and are ignored so a
// standalone charge cannot change entitlement.
func (s *Service) resolveInvoiceAccount(ctx context.Context, invoice *stripe.Invoice) (*models.Account, error) {
	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		log.Printf("⚠️  Invoice %s has no subscription, skipping", invoice.ID)
		return nil, domain.NewNotFoundError("account")
	}
	if acct, err := s.store.GetAccountBySubscriptionID(ctx, invoice.Subscription.ID); err == nil {
		return acct, nil
	}
	if invoice.Customer != nil && invoice.Customer.ID != "" {
		return s.store.GetAccountByCustomerID(ctx, invoice.Customer.ID)
	}
	return nil, domain.NewNotFoundError("account")
}

// applySubscriptionState maps a Stripe subscription onto the account.
// Field assignment is idempotent; replaying the same event leaves the
// account unchanged. Events older than the account's watermark are
// rejected.
func applySubscriptionState(acct *models.Account, sub *stripe.Subscription, at time.Time) error {
	if stale(acct, at) {
		return domain.NewStaleEventError(sub.ID)
	}

	status := mapStripeStatus(sub.Status)
	acct.SubscriptionStatus = status
	acct.IsPremium = status == models.StatusActive || status == models.StatusTrialing
	acct.TrialActive = status == models.StatusTrialing
	acct.StripeSubscriptionID = sub.ID
	// A real subscription id replaces any out-of-band activation marker
	acct.PendingReconciliation = false

	if sub.Customer != nil && sub.Customer.ID != "" {
		acct.StripeCustomerID = sub.Customer.ID
	}
	if sub.TrialStart > 0 {
		t := time.Unix(sub.TrialStart, 0).UTC()
		acct.TrialStartDate = &t
	}
	if sub.TrialEnd > 0 {
		t := time.Unix(sub.TrialEnd, 0).UTC()
		acct.TrialEndDate = &t
	}

	// Plan type is set when known and never cleared
	if plan, ok := sub.Metadata["plan_type"]; ok && (plan == models.PlanMonthly || plan == models.PlanYearly) {
		p := plan
		acct.PlanType = &p
	} else if plan := planFromItems(sub); plan != "" {
		p := plan
		acct.PlanType = &p
	}

	setEventTime(acct, at)
	return nil
}

// mapStripeStatus maps the Stripe subscription status onto the local
// lifecycle states.
func mapStripeStatus(status stripe.SubscriptionStatus) string {
	switch status {
	case stripe.SubscriptionStatusActive:
		return models.StatusActive
	case stripe.SubscriptionStatusTrialing:
		return models.StatusTrialing
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return models.StatusPastDue
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusIncompleteExpired:
		return models.StatusCanceled
	default:
		log.Printf("⚠️  Unmapped Stripe subscription status: %s", status)
		return models.StatusCanceled
	}
}

// planFromItems derives the plan type from the price recurring interval
func planFromItems(sub *stripe.Subscription) string {
	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return ""
	}
	price := sub.Items.Data[0].Price
	if price == nil || price.Recurring == nil {
		return ""
	}
	switch price.Recurring.Interval {
	case stripe.PriceRecurringIntervalMonth:
		return models.PlanMonthly
	case stripe.PriceRecurringIntervalYear:
		return models.PlanYearly
	}
	return ""
}

// stale reports whether an event at the given time predates the last
// applied subscription event for the account.
func stale(acct *models.Account, at time.Time) bool {
	return acct.SubscriptionEventTime != nil && at.Before(*acct.SubscriptionEventTime)
}

func setEventTime(acct *models.Account, at time.Time) {
	t := at
	acct.SubscriptionEventTime = &t
}

func eventTime(event stripe.Event) time.Time {
	return time.Unix(event.Created, 0).UTC()
}

func wasTrialStarted(acct *models.Account) bool {
	return acct.TrialActive && acct.SubscriptionStatus == models.StatusTrialing
}

// getPriceIDForPlan returns the Stripe price ID for a plan
func (s *Service) getPriceIDForPlan(plan string) (string, error) {
	switch plan {
	case models.PlanMonthly:
		return s.config.PriceMonthly, nil
	case models.PlanYearly:
		return s.config.PriceYearly, nil
	default:
		return "", domain.NewBadRequestError(fmt.Sprintf("invalid plan: %s", plan))
	}
}
