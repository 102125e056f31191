package models

// CheckoutRequest represents a request to create a checkout session
type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=monthly yearly"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// CustomerPortalResponse represents a customer portal session response
type CustomerPortalResponse struct {
	URL string `json:"url"`
}

// SubscriptionInfo represents the account's subscription state as
// returned to the client
type SubscriptionInfo struct {
	Status                string  `json:"status"`
	IsPremium             bool    `json:"is_premium"`
	PlanType              *string `json:"plan_type,omitempty"`
	TrialActive           bool    `json:"trial_active"`
	TrialEndDate          string  `json:"trial_end_date,omitempty"`
	CancelAtPeriodEnd     bool    `json:"cancel_at_period_end"`
	CurrentPeriodEnd      string  `json:"current_period_end,omitempty"`
	HasActiveSubscription bool    `json:"has_active_subscription"`
}
