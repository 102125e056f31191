package store

import (
	"context"
	"strings"
	"time"

	"github.com/replyflow/replyflow-api/ent"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/usageentry"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// EntStore implements domain.Store on top of the generated ent client.
type EntStore struct {
	db *ent.Client
}

var _ domain.Store = (*EntStore)(nil)

// NewEntStore creates a store backed by the given ent client
func NewEntStore(db *ent.Client) *EntStore {
	return &EntStore{db: db}
}

func (s *EntStore) GetAccount(ctx context.Context, id int) (*models.Account, error) {
	a, err := s.db.Account.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewPersistenceError("GetAccount", err)
	}
	return accountFromEnt(a), nil
}

func (s *EntStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	a, err := s.db.Account.Query().
		Where(account.Email(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewPersistenceError("GetAccountByEmail", err)
	}
	return accountFromEnt(a), nil
}

func (s *EntStore) GetAccountByCustomerID(ctx context.Context, customerID string) (*models.Account, error) {
	a, err := s.db.Account.Query().
		Where(account.StripeCustomerID(customerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewPersistenceError("GetAccountByCustomerID", err)
	}
	return accountFromEnt(a), nil
}

func (s *EntStore) GetAccountBySubscriptionID(ctx context.Context, subscriptionID string) (*models.Account, error) {
	a, err := s.db.Account.Query().
		Where(account.StripeSubscriptionID(subscriptionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewPersistenceError("GetAccountBySubscriptionID", err)
	}
	return accountFromEnt(a), nil
}

func (s *EntStore) CreateAccount(ctx context.Context, acct *models.Account) (*models.Account, error) {
	create := s.db.Account.Create().
		SetEmail(strings.ToLower(strings.TrimSpace(acct.Email))).
		SetName(acct.Name).
		SetSubscriptionStatus(account.SubscriptionStatus(statusOrNone(acct.SubscriptionStatus))).
		SetIsPremium(acct.IsPremium).
		SetTrialActive(acct.TrialActive)
	if acct.PasswordHash != "" {
		create.SetPasswordHash(acct.PasswordHash)
	}
	if acct.GoogleID != "" {
		create.SetGoogleID(acct.GoogleID)
	}
	if acct.TrialStartDate != nil {
		create.SetTrialStartDate(*acct.TrialStartDate)
	}
	if acct.TrialEndDate != nil {
		create.SetTrialEndDate(*acct.TrialEndDate)
	}

	a, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewConflictError("email already registered")
		}
		return nil, domain.NewPersistenceError("CreateAccount", err)
	}
	return accountFromEnt(a), nil
}

func (s *EntStore) UpdateAccount(ctx context.Context, acct *models.Account) error {
	update := s.db.Account.UpdateOneID(acct.ID).
		SetName(acct.Name).
		SetSubscriptionStatus(account.SubscriptionStatus(statusOrNone(acct.SubscriptionStatus))).
		SetIsPremium(acct.IsPremium).
		SetTrialActive(acct.TrialActive).
		SetDailyUsage(acct.DailyUsage).
		SetMonthlyUsage(acct.MonthlyUsage).
		SetPendingReconciliation(acct.PendingReconciliation)

	if acct.PasswordHash != "" {
		update.SetPasswordHash(acct.PasswordHash)
	}
	if acct.PlanType != nil {
		update.SetPlanType(account.PlanType(*acct.PlanType))
	}
	setNillableTime(acct.TrialStartDate, update.SetTrialStartDate, update.ClearTrialStartDate)
	setNillableTime(acct.TrialEndDate, update.SetTrialEndDate, update.ClearTrialEndDate)
	setNillableTime(acct.LastUsageDate, update.SetLastUsageDate, update.ClearLastUsageDate)
	setNillableTime(acct.LastResetDate, update.SetLastResetDate, update.ClearLastResetDate)
	setNillableTime(acct.SubscriptionEventTime, update.SetSubscriptionEventTime, update.ClearSubscriptionEventTime)
	setNillableString(acct.GoogleID, update.SetGoogleID, update.ClearGoogleID)
	setNillableString(acct.StripeCustomerID, update.SetStripeCustomerID, update.ClearStripeCustomerID)
	setNillableString(acct.StripeSubscriptionID, update.SetStripeSubscriptionID, update.ClearStripeSubscriptionID)

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("account")
		}
		return domain.NewPersistenceError("UpdateAccount", err)
	}
	return nil
}

// IncrementUsage runs the rollover and conditional increment inside one
// transaction so concurrent commits cannot push a counter past its cap.
func (s *EntStore) IncrementUsage(ctx context.Context, accountID int, now time.Time, dailyLimit, monthlyLimit int) (acct *models.Account, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("IncrementUsage", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	a, err := tx.Account.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewPersistenceError("IncrementUsage", err)
	}

	daily, monthly := a.DailyUsage, a.MonthlyUsage
	update := tx.Account.UpdateOneID(accountID)
	if a.LastUsageDate == nil || !domain.SameUTCDay(*a.LastUsageDate, now) {
		daily = 0
		update.SetLastUsageDate(now)
	}
	if a.LastResetDate == nil || !domain.SameUTCMonth(*a.LastResetDate, now) {
		monthly = 0
		update.SetLastResetDate(now)
	}

	if daily >= dailyLimit {
		err = domain.NewConflictError("daily usage limit reached")
		return nil, err
	}
	if monthly >= monthlyLimit {
		err = domain.NewConflictError("monthly usage limit reached")
		return nil, err
	}

	a, err = update.
		SetDailyUsage(daily + 1).
		SetMonthlyUsage(monthly + 1).
		Save(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("IncrementUsage", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, domain.NewPersistenceError("IncrementUsage", err)
	}
	return accountFromEnt(a), nil
}

func (s *EntStore) AppendUsageEntry(ctx context.Context, accountID int, action string) error {
	_, err := s.db.UsageEntry.Create().
		SetAccountID(accountID).
		SetAction(usageentry.Action(action)).
		Save(ctx)
	if err != nil {
		return domain.NewPersistenceError("AppendUsageEntry", err)
	}
	return nil
}

func (s *EntStore) CountUsageEntriesSince(ctx context.Context, accountID int, since time.Time) (int, error) {
	n, err := s.db.UsageEntry.Query().
		Where(
			usageentry.AccountID(accountID),
			usageentry.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, domain.NewPersistenceError("CountUsageEntriesSince", err)
	}
	return n, nil
}

func (s *EntStore) FindAccountsForTrialSweep(ctx context.Context, now time.Time) ([]*models.Account, error) {
	rows, err := s.db.Account.Query().
		Where(
			account.Or(
				account.TrialActive(true),
				account.SubscriptionStatusEQ(account.SubscriptionStatusTrialing),
			),
			account.TrialEndDateLTE(now),
			account.SubscriptionStatusNEQ(account.SubscriptionStatusActive),
			account.SubscriptionStatusNEQ(account.SubscriptionStatusFreemium),
		).
		All(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("FindAccountsForTrialSweep", err)
	}

	out := make([]*models.Account, 0, len(rows))
	for _, a := range rows {
		out = append(out, accountFromEnt(a))
	}
	return out, nil
}

func statusOrNone(status string) string {
	if status == "" {
		return models.StatusNone
	}
	return status
}

func setNillableTime(v *time.Time, set func(time.Time) *ent.AccountUpdateOne, clear func() *ent.AccountUpdateOne) {
	if v != nil {
		set(*v)
	} else {
		clear()
	}
}

func setNillableString(v string, set func(string) *ent.AccountUpdateOne, clear func() *ent.AccountUpdateOne) {
	if v != "" {
		set(v)
	} else {
		clear()
	}
}

func accountFromEnt(a *ent.Account) *models.Account {
	out := &models.Account{
		ID:                    a.ID,
		Email:                 a.Email,
		Name:                  a.Name,
		PasswordHash:          a.PasswordHash,
		SubscriptionStatus:    string(a.SubscriptionStatus),
		IsPremium:             a.IsPremium,
		TrialActive:           a.TrialActive,
		TrialStartDate:        a.TrialStartDate,
		TrialEndDate:          a.TrialEndDate,
		DailyUsage:            a.DailyUsage,
		MonthlyUsage:          a.MonthlyUsage,
		LastUsageDate:         a.LastUsageDate,
		LastResetDate:         a.LastResetDate,
		PendingReconciliation: a.PendingReconciliation,
		SubscriptionEventTime: a.SubscriptionEventTime,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
	if a.GoogleID != nil {
		out.GoogleID = *a.GoogleID
	}
	if a.PlanType != nil {
		plan := string(*a.PlanType)
		out.PlanType = &plan
	}
	if a.StripeCustomerID != nil {
		out.StripeCustomerID = *a.StripeCustomerID
	}
	if a.StripeSubscriptionID != nil {
		out.StripeSubscriptionID = *a.StripeSubscriptionID
	}
	return out
}
