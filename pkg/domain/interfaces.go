package domain

import (
	"context"
	"time"

	"github.com/replyflow/replyflow-api/pkg/models"
)

// Store defines data access operations for accounts and the usage ledger.
// All entitlement, billing and trial logic goes through this interface so
// it can run against the in-memory store in tests and the ent store in
// production.
type Store interface {
	GetAccount(ctx context.Context, id int) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByCustomerID(ctx context.Context, customerID string) (*models.Account, error)
	GetAccountBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Account, error)
	CreateAccount(ctx context.Context, acct *models.Account) (*models.Account, error)
	UpdateAccount(ctx context.Context, acct *models.Account) error

	// IncrementUsage atomically increments both usage counters, applying
	// day and month rollovers first, and fails if either cap would be
	// exceeded. dailyLimit and monthlyLimit are the caps in force.
	IncrementUsage(ctx context.Context, accountID int, now time.Time, dailyLimit, monthlyLimit int) (*models.Account, error)

	AppendUsageEntry(ctx context.Context, accountID int, action string) error
	CountUsageEntriesSince(ctx context.Context, accountID int, since time.Time) (int, error)

	// FindAccountsForTrialSweep returns accounts whose trial has expired
	// at now and that have not already been converted or upgraded.
	FindAccountsForTrialSweep(ctx context.Context, now time.Time) ([]*models.Account, error)
}

// CacheRepository defines caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Close() error
}

// TokenBlacklist defines JWT token blacklist operations
type TokenBlacklist interface {
	Add(ctx context.Context, token string, expiration time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

// EmailSender defines outbound email operations used by the billing and
// trial services
type EmailSender interface {
	SendEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}
