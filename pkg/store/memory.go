package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

var errContrived = errors.New("forced store failure")

// MemoryStore is a mutex-guarded in-memory implementation of domain.Store.
// It backs unit tests and local development without Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   int
	accounts map[int]*models.Account
	entries  []models.UsageEntry
	entryID  int

	// FailUpdates forces UpdateAccount and the usage writers to fail,
	// used to test persistence failure handling.
	FailUpdates bool
}

var _ domain.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		accounts: make(map[int]*models.Account),
	}
}

func (s *MemoryStore) GetAccount(ctx context.Context, id int) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[id]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	cp := *acct
	return &cp, nil
}

func (s *MemoryStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, acct := range s.accounts {
		if acct.Email == needle {
			cp := *acct
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("account")
}

func (s *MemoryStore) GetAccountByCustomerID(ctx context.Context, customerID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.StripeCustomerID != "" && acct.StripeCustomerID == customerID {
			cp := *acct
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("account")
}

func (s *MemoryStore) GetAccountBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.StripeSubscriptionID != "" && acct.StripeSubscriptionID == subscriptionID {
			cp := *acct
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("account")
}

func (s *MemoryStore) CreateAccount(ctx context.Context, acct *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(acct.Email))
	for _, existing := range s.accounts {
		if existing.Email == email {
			return nil, domain.NewConflictError("email already registered")
		}
	}

	cp := *acct
	cp.ID = s.nextID
	cp.Email = email
	if cp.SubscriptionStatus == "" {
		cp.SubscriptionStatus = models.StatusNone
	}
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.nextID++
	s.accounts[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (s *MemoryStore) UpdateAccount(ctx context.Context, acct *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpdates {
		return domain.NewPersistenceError("UpdateAccount", errContrived)
	}
	if _, ok := s.accounts[acct.ID]; !ok {
		return domain.NewNotFoundError("account")
	}
	cp := *acct
	cp.Email = strings.ToLower(strings.TrimSpace(cp.Email))
	cp.UpdatedAt = time.Now().UTC()
	s.accounts[cp.ID] = &cp
	return nil
}

func (s *MemoryStore) IncrementUsage(ctx context.Context, accountID int, now time.Time, dailyLimit, monthlyLimit int) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpdates {
		return nil, domain.NewPersistenceError("IncrementUsage", errContrived)
	}
	acct, ok := s.accounts[accountID]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}

	applyRollovers(acct, now)

	if acct.DailyUsage >= dailyLimit {
		return nil, domain.NewConflictError("daily usage limit reached")
	}
	if acct.MonthlyUsage >= monthlyLimit {
		return nil, domain.NewConflictError("monthly usage limit reached")
	}

	acct.DailyUsage++
	acct.MonthlyUsage++
	acct.UpdatedAt = time.Now().UTC()

	cp := *acct
	return &cp, nil
}

func (s *MemoryStore) AppendUsageEntry(ctx context.Context, accountID int, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpdates {
		return domain.NewPersistenceError("AppendUsageEntry", errContrived)
	}
	if _, ok := s.accounts[accountID]; !ok {
		return domain.NewNotFoundError("account")
	}
	s.entryID++
	s.entries = append(s.entries, models.UsageEntry{
		ID:        s.entryID,
		AccountID: accountID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (s *MemoryStore) CountUsageEntriesSince(ctx context.Context, accountID int, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, e := range s.entries {
		if e.AccountID == accountID && !e.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) FindAccountsForTrialSweep(ctx context.Context, now time.Time) ([]*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Account
	for _, acct := range s.accounts {
		if !acct.TrialActive && acct.SubscriptionStatus != models.StatusTrialing {
			continue
		}
		if acct.TrialEndDate == nil || acct.TrialEndDate.After(now) {
			continue
		}
		if acct.SubscriptionStatus == models.StatusActive || acct.SubscriptionStatus == models.StatusFreemium {
			continue
		}
		cp := *acct
		out = append(out, &cp)
	}
	return out, nil
}

// SeedEntry inserts a ledger entry with an explicit timestamp. Test helper.
func (s *MemoryStore) SeedEntry(accountID int, action string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entryID++
	s.entries = append(s.entries, models.UsageEntry{
		ID:        s.entryID,
		AccountID: accountID,
		Action:    action,
		CreatedAt: at,
	})
}

// applyRollovers resets stale counters in place. Idempotent within a day
// and month.
func applyRollovers(acct *models.Account, now time.Time) {
	if acct.LastUsageDate == nil || !domain.SameUTCDay(*acct.LastUsageDate, now) {
		acct.DailyUsage = 0
		t := now
		acct.LastUsageDate = &t
	}
	if acct.LastResetDate == nil || !domain.SameUTCMonth(*acct.LastResetDate, now) {
		acct.MonthlyUsage = 0
		t := now
		acct.LastResetDate = &t
	}
}
