package models

// TrialStatusResponse reports the account's access level and usage
type TrialStatusResponse struct {
	HasFullAccess      bool   `json:"has_full_access"`
	SubscriptionStatus string `json:"subscription_status"`
	IsPremium          bool   `json:"is_premium"`

	TrialActive   bool   `json:"trial_active"`
	TrialEndDate  string `json:"trial_end_date,omitempty"`
	DaysRemaining int    `json:"days_remaining"`

	Usage TrialUsage `json:"usage"`
}

// TrialUsage is the usage section of the trial status payload
type TrialUsage struct {
	DailyUsed    int `json:"daily_used"`
	DailyLimit   int `json:"daily_limit"`
	MonthlyUsed  int `json:"monthly_used,omitempty"`
	MonthlyLimit int `json:"monthly_limit,omitempty"`
}

// SweepResponse is returned by the trial expiry cron endpoint
type SweepResponse struct {
	Checked   int      `json:"checked"`
	Converted int      `json:"converted"`
	Errors    []string `json:"errors,omitempty"`
}
