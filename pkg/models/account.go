package models

import "time"

// Subscription statuses mirror the Stripe subscription lifecycle plus the
// two local states an account can hold without a subscription.
const (
	StatusNone     = "none"
	StatusTrialing = "trialing"
	StatusActive   = "active"
	StatusPastDue  = "past_due"
	StatusCanceled = "canceled"
	StatusFreemium = "freemium"
)

// Plan types
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Usage entry actions
const (
	ActionReplyOptions    = "reply_options"
	ActionGenerateReply   = "generate_reply"
	ActionGenerateCompose = "generate_compose"
	ActionAnalyzeCategory = "analyze_category"
	ActionSummarize       = "summarize"
)

// Account represents a user account with its entitlement state
type Account struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	GoogleID     string `json:"-"`

	SubscriptionStatus string  `json:"subscription_status"`
	IsPremium          bool    `json:"is_premium"`
	PlanType           *string `json:"plan_type,omitempty"`

	TrialActive    bool       `json:"trial_active"`
	TrialStartDate *time.Time `json:"trial_start_date,omitempty"`
	TrialEndDate   *time.Time `json:"trial_end_date,omitempty"`

	DailyUsage    int        `json:"daily_usage"`
	MonthlyUsage  int        `json:"monthly_usage"`
	LastUsageDate *time.Time `json:"last_usage_date,omitempty"`
	LastResetDate *time.Time `json:"last_reset_date,omitempty"`

	StripeCustomerID     string `json:"-"`
	StripeSubscriptionID string `json:"-"`

	// PendingReconciliation marks accounts activated out of band that
	// still need their Stripe subscription id attached by a webhook.
	PendingReconciliation bool `json:"pending_reconciliation"`

	// SubscriptionEventTime is the Created timestamp of the newest
	// subscription event applied to this account. Older events are
	// rejected as stale.
	SubscriptionEventTime *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFullAccess reports whether the account is entitled to the full
// daily and monthly quotas rather than the freemium allowance.
func (a *Account) HasFullAccess() bool {
	return a.SubscriptionStatus == StatusTrialing ||
		a.SubscriptionStatus == StatusActive ||
		a.IsPremium
}

// StartTrial puts the account into its trial window starting at now.
// New registrations get full access immediately; the trial converts to
// freemium by the expiry sweep or to active by a completed checkout.
func (a *Account) StartTrial(now time.Time, days int) {
	end := now.AddDate(0, 0, days)
	a.SubscriptionStatus = StatusTrialing
	a.IsPremium = true
	a.TrialActive = true
	a.TrialStartDate = &now
	a.TrialEndDate = &end
}

// HasUsedTrial reports whether the account ever started a trial or held
// a paid subscription, which makes it ineligible for another trial.
func (a *Account) HasUsedTrial() bool {
	if a.TrialStartDate != nil {
		return true
	}
	switch a.SubscriptionStatus {
	case StatusActive, StatusTrialing, StatusPastDue, StatusCanceled:
		return true
	}
	return false
}

// UsageEntry is one append-only ledger record of a completed AI action.
type UsageEntry struct {
	ID        int       `json:"id"`
	AccountID int       `json:"account_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
