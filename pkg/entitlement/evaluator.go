package entitlement

import (
	"context"
	"time"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// Deny reasons and types returned in the 429 payload
const (
	ReasonDailyLimitReached   = "daily_limit_reached"
	ReasonMonthlyLimitReached = "monthly_limit_reached"

	TypeFreemiumDailyLimit = "freemium_daily_limit"
	TypeDailyLimit         = "daily_limit"
	TypeMonthlyLimit       = "monthly_limit"
)

// Decision is the outcome of an entitlement check. A deny is a normal
// result, not an error.
type Decision struct {
	Allowed    bool
	Reason     string
	Type       string
	Used       int
	Limit      int
	Remaining  int
	UpgradeURL string
}

// Evaluator decides whether an account may perform an AI action and
// records completed actions.
//
// Accounts with full access (trialing, active or premium) consume the
// daily and monthly counters on the account row. Everyone else is on the
// freemium allowance, counted from the append-only usage ledger.
type Evaluator struct {
	store domain.Store

	dailyLimit    int
	monthlyLimit  int
	freemiumLimit int
	upgradeURL    string
}

// NewEvaluator creates an evaluator with the limits from config
func NewEvaluator(store domain.Store, cfg *config.Config) *Evaluator {
	return &Evaluator{
		store:         store,
		dailyLimit:    cfg.DailyUsageLimit,
		monthlyLimit:  cfg.MonthlyUsageLimit,
		freemiumLimit: cfg.FreemiumDailyLimit,
		upgradeURL:    cfg.FrontendURL + "/upgrade",
	}
}

// Evaluate checks whether the account may perform one more AI action at
// now. It never mutates usage counts; call Commit after the action
// succeeds. Counter rollovers are applied and persisted here even when
// the decision is a deny.
func (e *Evaluator) Evaluate(ctx context.Context, accountID int, now time.Time) (*Decision, error) {
	acct, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !acct.HasFullAccess() {
		return e.evaluateFreemium(ctx, acct, now)
	}
	return e.evaluateFull(ctx, acct, now)
}

func (e *Evaluator) evaluateFreemium(ctx context.Context, acct *models.Account, now time.Time) (*Decision, error) {
	used, err := e.store.CountUsageEntriesSince(ctx, acct.ID, domain.MidnightUTC(now))
	if err != nil {
		return nil, err
	}

	if used >= e.freemiumLimit {
		return &Decision{
			Allowed:    false,
			Reason:     ReasonDailyLimitReached,
			Type:       TypeFreemiumDailyLimit,
			Used:       used,
			Limit:      e.freemiumLimit,
			Remaining:  0,
			UpgradeURL: e.upgradeURL,
		}, nil
	}

	// Remaining reports what is left after this action completes.
	return &Decision{
		Allowed:   true,
		Used:      used,
		Limit:     e.freemiumLimit,
		Remaining: e.freemiumLimit - used - 1,
	}, nil
}

func (e *Evaluator) evaluateFull(ctx context.Context, acct *models.Account, now time.Time) (*Decision, error) {
	rolled := rollover(acct, now)
	if rolled {
		// Stale counters are reset on the account row no matter how the
		// decision comes out.
		if err := e.store.UpdateAccount(ctx, acct); err != nil {
			return nil, err
		}
	}

	if acct.DailyUsage >= e.dailyLimit {
		return &Decision{
			Allowed:    false,
			Reason:     ReasonDailyLimitReached,
			Type:       TypeDailyLimit,
			Used:       acct.DailyUsage,
			Limit:      e.dailyLimit,
			Remaining:  0,
			UpgradeURL: e.upgradeURL,
		}, nil
	}
	if acct.MonthlyUsage >= e.monthlyLimit {
		return &Decision{
			Allowed:    false,
			Reason:     ReasonMonthlyLimitReached,
			Type:       TypeMonthlyLimit,
			Used:       acct.MonthlyUsage,
			Limit:      e.monthlyLimit,
			Remaining:  0,
			UpgradeURL: e.upgradeURL,
		}, nil
	}

	return &Decision{
		Allowed:   true,
		Used:      acct.DailyUsage,
		Limit:     e.dailyLimit,
		Remaining: e.dailyLimit - acct.DailyUsage - 1,
	}, nil
}

// Commit records a completed action. For full-access accounts both
// counters are incremented atomically; freemium accounts get a ledger
// entry. A failed commit must be surfaced to the caller as a deny, the
// action result is never returned on a persistence failure.
func (e *Evaluator) Commit(ctx context.Context, accountID int, action string, now time.Time) error {
	acct, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if acct.HasFullAccess() {
		if _, err := e.store.IncrementUsage(ctx, accountID, now, e.dailyLimit, e.monthlyLimit); err != nil {
			return err
		}
		return nil
	}
	return e.store.AppendUsageEntry(ctx, accountID, action)
}

// rollover resets counters whose calendar window has passed. Returns
// true when anything changed. Running it twice in the same window is a
// no-op.
func rollover(acct *models.Account, now time.Time) bool {
	changed := false
	if acct.LastUsageDate == nil || !domain.SameUTCDay(*acct.LastUsageDate, now) {
		acct.DailyUsage = 0
		t := now
		acct.LastUsageDate = &t
		changed = true
	}
	if acct.LastResetDate == nil || !domain.SameUTCMonth(*acct.LastResetDate, now) {
		acct.MonthlyUsage = 0
		t := now
		acct.LastResetDate = &t
		changed = true
	}
	return changed
}
