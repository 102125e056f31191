package trial

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// sweepLockKey guards against the scheduled job and the cron endpoint
// running the sweep at the same time.
const (
	sweepLockKey = "lock:trial_sweep"
	sweepLockTTL = 10 * time.Minute
)

// SweepResult summarizes one expiry sweep run
type SweepResult struct {
	Checked   int
	Converted int
	Errors    []string
}

// Service converts expired trials to the freemium state and reports
// trial status.
type Service struct {
	store domain.Store
	cache domain.CacheRepository

	dailyLimit    int
	monthlyLimit  int
	freemiumLimit int
}

// NewService creates a trial service. cache may be nil, in which case
// sweeps run unlocked.
func NewService(store domain.Store, cache domain.CacheRepository, cfg *config.Config) *Service {
	return &Service{
		store:         store,
		cache:         cache,
		dailyLimit:    cfg.DailyUsageLimit,
		monthlyLimit:  cfg.MonthlyUsageLimit,
		freemiumLimit: cfg.FreemiumDailyLimit,
	}
}

// Sweep downgrades every account whose trial has expired at now.
// Accounts already active or freemium are never touched. One failing
// account does not stop the sweep; its error is collected and the run
// continues. Running the sweep twice is harmless.
func (s *Service) Sweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	if s.cache != nil {
		acquired, err := s.cache.SetNX(ctx, sweepLockKey, now.Unix(), sweepLockTTL)
		if err != nil {
			log.Printf("⚠️  Trial sweep lock check failed, continuing unlocked: %v", err)
		} else if !acquired {
			return nil, domain.NewConflictError("trial sweep already running")
		} else {
			defer func() {
				if err := s.cache.Delete(ctx, sweepLockKey); err != nil {
					log.Printf("⚠️  Failed to release trial sweep lock: %v", err)
				}
			}()
		}
	}

	accounts, err := s.store.FindAccountsForTrialSweep(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Checked: len(accounts)}
	for _, acct := range accounts {
		acct.TrialActive = false
		acct.IsPremium = false
		acct.SubscriptionStatus = models.StatusFreemium

		if err := s.store.UpdateAccount(ctx, acct); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("account %d: %v", acct.ID, err))
			continue
		}
		result.Converted++
		log.Printf("✅ Trial expired, account %d moved to freemium", acct.ID)
	}

	log.Printf("🧹 Trial sweep done: checked=%d converted=%d errors=%d",
		result.Checked, result.Converted, len(result.Errors))
	return result, nil
}

// Status reports the account's access level, trial window and usage.
func (s *Service) Status(ctx context.Context, accountID int, now time.Time) (*models.TrialStatusResponse, error) {
	acct, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resp := &models.TrialStatusResponse{
		HasFullAccess:      acct.HasFullAccess(),
		SubscriptionStatus: acct.SubscriptionStatus,
		IsPremium:          acct.IsPremium,
		TrialActive:        acct.TrialActive,
	}

	if acct.TrialEndDate != nil {
		resp.TrialEndDate = acct.TrialEndDate.UTC().Format(time.RFC3339)
		if remaining := acct.TrialEndDate.Sub(now); remaining > 0 {
			resp.DaysRemaining = int(math.Ceil(remaining.Hours() / 24))
		}
	}

	if resp.HasFullAccess {
		resp.Usage = models.TrialUsage{
			DailyUsed:    acct.DailyUsage,
			DailyLimit:   s.dailyLimit,
			MonthlyUsed:  acct.MonthlyUsage,
			MonthlyLimit: s.monthlyLimit,
		}
		return resp, nil
	}

	used, err := s.store.CountUsageEntriesSince(ctx, accountID, domain.MidnightUTC(now))
	if err != nil {
		return nil, err
	}
	resp.Usage = models.TrialUsage{
		DailyUsed:  used,
		DailyLimit: s.freemiumLimit,
	}
	return resp, nil
}
