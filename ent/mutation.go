// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/predicate"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount    = "Account"
	TypeUsageEntry = "UsageEntry"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	email                   *string
	password_hash           *string
	name                    *string
	google_id               *string
	subscription_status     *account.SubscriptionStatus
	is_premium              *bool
	plan_type               *account.PlanType
	trial_active            *bool
	trial_start_date        *time.Time
	trial_end_date          *time.Time
	daily_usage             *int
	adddaily_usage          *int
	monthly_usage           *int
	addmonthly_usage        *int
	last_usage_date         *time.Time
	last_reset_date         *time.Time
	stripe_customer_id      *string
	stripe_subscription_id  *string
	pending_reconciliation  *bool
	subscription_event_time *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	usage_entries           map[int]struct{}
	removedusage_entries    map[int]struct{}
	clearedusage_entries    bool
	done                    bool
	oldValue                func(context.Context) (*Account, error)
	predicates              []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AccountMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AccountMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *AccountMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[account.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *AccountMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[account.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AccountMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, account.FieldPasswordHash)
}

// SetName sets the "name" field.
func (m *AccountMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AccountMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AccountMutation) ResetName() {
	m.name = nil
}

// SetGoogleID sets the "google_id" field.
func (m *AccountMutation) SetGoogleID(s string) {
	m.google_id = &s
}

// GoogleID returns the value of the "google_id" field in the mutation.
func (m *AccountMutation) GoogleID() (r string, exists bool) {
	v := m.google_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoogleID returns the old "google_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldGoogleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoogleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoogleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoogleID: %w", err)
	}
	return oldValue.GoogleID, nil
}

// ClearGoogleID clears the value of the "google_id" field.
func (m *AccountMutation) ClearGoogleID() {
	m.google_id = nil
	m.clearedFields[account.FieldGoogleID] = struct{}{}
}

// GoogleIDCleared returns if the "google_id" field was cleared in this mutation.
func (m *AccountMutation) GoogleIDCleared() bool {
	_, ok := m.clearedFields[account.FieldGoogleID]
	return ok
}

// ResetGoogleID resets all changes to the "google_id" field.
func (m *AccountMutation) ResetGoogleID() {
	m.google_id = nil
	delete(m.clearedFields, account.FieldGoogleID)
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (m *AccountMutation) SetSubscriptionStatus(as account.SubscriptionStatus) {
	m.subscription_status = &as
}

// SubscriptionStatus returns the value of the "subscription_status" field in the mutation.
func (m *AccountMutation) SubscriptionStatus() (r account.SubscriptionStatus, exists bool) {
	v := m.subscription_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionStatus returns the old "subscription_status" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldSubscriptionStatus(ctx context.Context) (v account.SubscriptionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionStatus: %w", err)
	}
	return oldValue.SubscriptionStatus, nil
}

// ResetSubscriptionStatus resets all changes to the "subscription_status" field.
func (m *AccountMutation) ResetSubscriptionStatus() {
	m.subscription_status = nil
}

// SetIsPremium sets the "is_premium" field.
func (m *AccountMutation) SetIsPremium(b bool) {
	m.is_premium = &b
}

// IsPremium returns the value of the "is_premium" field in the mutation.
func (m *AccountMutation) IsPremium() (r bool, exists bool) {
	v := m.is_premium
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPremium returns the old "is_premium" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldIsPremium(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPremium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPremium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPremium: %w", err)
	}
	return oldValue.IsPremium, nil
}

// ResetIsPremium resets all changes to the "is_premium" field.
func (m *AccountMutation) ResetIsPremium() {
	m.is_premium = nil
}

// SetPlanType sets the "plan_type" field.
func (m *AccountMutation) SetPlanType(at account.PlanType) {
	m.plan_type = &at
}

// PlanType returns the value of the "plan_type" field in the mutation.
func (m *AccountMutation) PlanType() (r account.PlanType, exists bool) {
	v := m.plan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanType returns the old "plan_type" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPlanType(ctx context.Context) (v *account.PlanType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanType: %w", err)
	}
	return oldValue.PlanType, nil
}

// ClearPlanType clears the value of the "plan_type" field.
func (m *AccountMutation) ClearPlanType() {
	m.plan_type = nil
	m.clearedFields[account.FieldPlanType] = struct{}{}
}

// PlanTypeCleared returns if the "plan_type" field was cleared in this mutation.
func (m *AccountMutation) PlanTypeCleared() bool {
	_, ok := m.clearedFields[account.FieldPlanType]
	return ok
}

// ResetPlanType resets all changes to the "plan_type" field.
func (m *AccountMutation) ResetPlanType() {
	m.plan_type = nil
	delete(m.clearedFields, account.FieldPlanType)
}

// SetTrialActive sets the "trial_active" field.
func (m *AccountMutation) SetTrialActive(b bool) {
	m.trial_active = &b
}

// TrialActive returns the value of the "trial_active" field in the mutation.
func (m *AccountMutation) TrialActive() (r bool, exists bool) {
	v := m.trial_active
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialActive returns the old "trial_active" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTrialActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialActive: %w", err)
	}
	return oldValue.TrialActive, nil
}

// ResetTrialActive resets all changes to the "trial_active" field.
func (m *AccountMutation) ResetTrialActive() {
	m.trial_active = nil
}

// SetTrialStartDate sets the "trial_start_date" field.
func (m *AccountMutation) SetTrialStartDate(t time.Time) {
	m.trial_start_date = &t
}

// TrialStartDate returns the value of the "trial_start_date" field in the mutation.
func (m *AccountMutation) TrialStartDate() (r time.Time, exists bool) {
	v := m.trial_start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialStartDate returns the old "trial_start_date" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTrialStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialStartDate: %w", err)
	}
	return oldValue.TrialStartDate, nil
}

// ClearTrialStartDate clears the value of the "trial_start_date" field.
func (m *AccountMutation) ClearTrialStartDate() {
	m.trial_start_date = nil
	m.clearedFields[account.FieldTrialStartDate] = struct{}{}
}

// TrialStartDateCleared returns if the "trial_start_date" field was cleared in this mutation.
func (m *AccountMutation) TrialStartDateCleared() bool {
	_, ok := m.clearedFields[account.FieldTrialStartDate]
	return ok
}

// ResetTrialStartDate resets all changes to the "trial_start_date" field.
func (m *AccountMutation) ResetTrialStartDate() {
	m.trial_start_date = nil
	delete(m.clearedFields, account.FieldTrialStartDate)
}

// SetTrialEndDate sets the "trial_end_date" field.
func (m *AccountMutation) SetTrialEndDate(t time.Time) {
	m.trial_end_date = &t
}

// TrialEndDate returns the value of the "trial_end_date" field in the mutation.
func (m *AccountMutation) TrialEndDate() (r time.Time, exists bool) {
	v := m.trial_end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialEndDate returns the old "trial_end_date" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTrialEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialEndDate: %w", err)
	}
	return oldValue.TrialEndDate, nil
}

// ClearTrialEndDate clears the value of the "trial_end_date" field.
func (m *AccountMutation) ClearTrialEndDate() {
	m.trial_end_date = nil
	m.clearedFields[account.FieldTrialEndDate] = struct{}{}
}

// TrialEndDateCleared returns if the "trial_end_date" field was cleared in this mutation.
func (m *AccountMutation) TrialEndDateCleared() bool {
	_, ok := m.clearedFields[account.FieldTrialEndDate]
	return ok
}

// ResetTrialEndDate resets all changes to the "trial_end_date" field.
func (m *AccountMutation) ResetTrialEndDate() {
	m.trial_end_date = nil
	delete(m.clearedFields, account.FieldTrialEndDate)
}

// SetDailyUsage sets the "daily_usage" field.
func (m *AccountMutation) SetDailyUsage(i int) {
	m.daily_usage = &i
	m.adddaily_usage = nil
}

// DailyUsage returns the value of the "daily_usage" field in the mutation.
func (m *AccountMutation) DailyUsage() (r int, exists bool) {
	v := m.daily_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyUsage returns the old "daily_usage" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldDailyUsage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyUsage: %w", err)
	}
	return oldValue.DailyUsage, nil
}

// AddDailyUsage adds i to the "daily_usage" field.
func (m *AccountMutation) AddDailyUsage(i int) {
	if m.adddaily_usage != nil {
		*m.adddaily_usage += i
	} else {
		m.adddaily_usage = &i
	}
}

// AddedDailyUsage returns the value that was added to the "daily_usage" field in this mutation.
func (m *AccountMutation) AddedDailyUsage() (r int, exists bool) {
	v := m.adddaily_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyUsage resets all changes to the "daily_usage" field.
func (m *AccountMutation) ResetDailyUsage() {
	m.daily_usage = nil
	m.adddaily_usage = nil
}

// SetMonthlyUsage sets the "monthly_usage" field.
func (m *AccountMutation) SetMonthlyUsage(i int) {
	m.monthly_usage = &i
	m.addmonthly_usage = nil
}

// MonthlyUsage returns the value of the "monthly_usage" field in the mutation.
func (m *AccountMutation) MonthlyUsage() (r int, exists bool) {
	v := m.monthly_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyUsage returns the old "monthly_usage" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldMonthlyUsage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyUsage: %w", err)
	}
	return oldValue.MonthlyUsage, nil
}

// AddMonthlyUsage adds i to the "monthly_usage" field.
func (m *AccountMutation) AddMonthlyUsage(i int) {
	if m.addmonthly_usage != nil {
		*m.addmonthly_usage += i
	} else {
		m.addmonthly_usage = &i
	}
}

// AddedMonthlyUsage returns the value that was added to the "monthly_usage" field in this mutation.
func (m *AccountMutation) AddedMonthlyUsage() (r int, exists bool) {
	v := m.addmonthly_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyUsage resets all changes to the "monthly_usage" field.
func (m *AccountMutation) ResetMonthlyUsage() {
	m.monthly_usage = nil
	m.addmonthly_usage = nil
}

// SetLastUsageDate sets the "last_usage_date" field.
func (m *AccountMutation) SetLastUsageDate(t time.Time) {
	m.last_usage_date = &t
}

// LastUsageDate returns the value of the "last_usage_date" field in the mutation.
func (m *AccountMutation) LastUsageDate() (r time.Time, exists bool) {
	v := m.last_usage_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsageDate returns the old "last_usage_date" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastUsageDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsageDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsageDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsageDate: %w", err)
	}
	return oldValue.LastUsageDate, nil
}

// ClearLastUsageDate clears the value of the "last_usage_date" field.
func (m *AccountMutation) ClearLastUsageDate() {
	m.last_usage_date = nil
	m.clearedFields[account.FieldLastUsageDate] = struct{}{}
}

// LastUsageDateCleared returns if the "last_usage_date" field was cleared in this mutation.
func (m *AccountMutation) LastUsageDateCleared() bool {
	_, ok := m.clearedFields[account.FieldLastUsageDate]
	return ok
}

// ResetLastUsageDate resets all changes to the "last_usage_date" field.
func (m *AccountMutation) ResetLastUsageDate() {
	m.last_usage_date = nil
	delete(m.clearedFields, account.FieldLastUsageDate)
}

// SetLastResetDate sets the "last_reset_date" field.
func (m *AccountMutation) SetLastResetDate(t time.Time) {
	m.last_reset_date = &t
}

// LastResetDate returns the value of the "last_reset_date" field in the mutation.
func (m *AccountMutation) LastResetDate() (r time.Time, exists bool) {
	v := m.last_reset_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResetDate returns the old "last_reset_date" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastResetDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResetDate: %w", err)
	}
	return oldValue.LastResetDate, nil
}

// ClearLastResetDate clears the value of the "last_reset_date" field.
func (m *AccountMutation) ClearLastResetDate() {
	m.last_reset_date = nil
	m.clearedFields[account.FieldLastResetDate] = struct{}{}
}

// LastResetDateCleared returns if the "last_reset_date" field was cleared in this mutation.
func (m *AccountMutation) LastResetDateCleared() bool {
	_, ok := m.clearedFields[account.FieldLastResetDate]
	return ok
}

// ResetLastResetDate resets all changes to the "last_reset_date" field.
func (m *AccountMutation) ResetLastResetDate() {
	m.last_reset_date = nil
	delete(m.clearedFields, account.FieldLastResetDate)
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *AccountMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *AccountMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldStripeCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *AccountMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[account.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *AccountMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[account.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *AccountMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, account.FieldStripeCustomerID)
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (m *AccountMutation) SetStripeSubscriptionID(s string) {
	m.stripe_subscription_id = &s
}

// StripeSubscriptionID returns the value of the "stripe_subscription_id" field in the mutation.
func (m *AccountMutation) StripeSubscriptionID() (r string, exists bool) {
	v := m.stripe_subscription_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeSubscriptionID returns the old "stripe_subscription_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldStripeSubscriptionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeSubscriptionID: %w", err)
	}
	return oldValue.StripeSubscriptionID, nil
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (m *AccountMutation) ClearStripeSubscriptionID() {
	m.stripe_subscription_id = nil
	m.clearedFields[account.FieldStripeSubscriptionID] = struct{}{}
}

// StripeSubscriptionIDCleared returns if the "stripe_subscription_id" field was cleared in this mutation.
func (m *AccountMutation) StripeSubscriptionIDCleared() bool {
	_, ok := m.clearedFields[account.FieldStripeSubscriptionID]
	return ok
}

// ResetStripeSubscriptionID resets all changes to the "stripe_subscription_id" field.
func (m *AccountMutation) ResetStripeSubscriptionID() {
	m.stripe_subscription_id = nil
	delete(m.clearedFields, account.FieldStripeSubscriptionID)
}

// SetPendingReconciliation sets the "pending_reconciliation" field.
func (m *AccountMutation) SetPendingReconciliation(b bool) {
	m.pending_reconciliation = &b
}

// PendingReconciliation returns the value of the "pending_reconciliation" field in the mutation.
func (m *AccountMutation) PendingReconciliation() (r bool, exists bool) {
	v := m.pending_reconciliation
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingReconciliation returns the old "pending_reconciliation" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPendingReconciliation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingReconciliation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingReconciliation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingReconciliation: %w", err)
	}
	return oldValue.PendingReconciliation, nil
}

// ResetPendingReconciliation resets all changes to the "pending_reconciliation" field.
func (m *AccountMutation) ResetPendingReconciliation() {
	m.pending_reconciliation = nil
}

// SetSubscriptionEventTime sets the "subscription_event_time" field.
func (m *AccountMutation) SetSubscriptionEventTime(t time.Time) {
	m.subscription_event_time = &t
}

// SubscriptionEventTime returns the value of the "subscription_event_time" field in the mutation.
func (m *AccountMutation) SubscriptionEventTime() (r time.Time, exists bool) {
	v := m.subscription_event_time
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionEventTime returns the old "subscription_event_time" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldSubscriptionEventTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionEventTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionEventTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionEventTime: %w", err)
	}
	return oldValue.SubscriptionEventTime, nil
}

// ClearSubscriptionEventTime clears the value of the "subscription_event_time" field.
func (m *AccountMutation) ClearSubscriptionEventTime() {
	m.subscription_event_time = nil
	m.clearedFields[account.FieldSubscriptionEventTime] = struct{}{}
}

// SubscriptionEventTimeCleared returns if the "subscription_event_time" field was cleared in this mutation.
func (m *AccountMutation) SubscriptionEventTimeCleared() bool {
	_, ok := m.clearedFields[account.FieldSubscriptionEventTime]
	return ok
}

// ResetSubscriptionEventTime resets all changes to the "subscription_event_time" field.
func (m *AccountMutation) ResetSubscriptionEventTime() {
	m.subscription_event_time = nil
	delete(m.clearedFields, account.FieldSubscriptionEventTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUsageEntryIDs adds the "usage_entries" edge to the UsageEntry entity by ids.
func (m *AccountMutation) AddUsageEntryIDs(ids ...int) {
	if m.usage_entries == nil {
		m.usage_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.usage_entries[ids[i]] = struct{}{}
	}
}

// ClearUsageEntries clears the "usage_entries" edge to the UsageEntry entity.
func (m *AccountMutation) ClearUsageEntries() {
	m.clearedusage_entries = true
}

// UsageEntriesCleared reports if the "usage_entries" edge to the UsageEntry entity was cleared.
func (m *AccountMutation) UsageEntriesCleared() bool {
	return m.clearedusage_entries
}

// RemoveUsageEntryIDs removes the "usage_entries" edge to the UsageEntry entity by IDs.
func (m *AccountMutation) RemoveUsageEntryIDs(ids ...int) {
	if m.removedusage_entries == nil {
		m.removedusage_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.usage_entries, ids[i])
		m.removedusage_entries[ids[i]] = struct{}{}
	}
}

// RemovedUsageEntries returns the removed IDs of the "usage_entries" edge to the UsageEntry entity.
func (m *AccountMutation) RemovedUsageEntriesIDs() (ids []int) {
	for id := range m.removedusage_entries {
		ids = append(ids, id)
	}
	return
}

// UsageEntriesIDs returns the "usage_entries" edge IDs in the mutation.
func (m *AccountMutation) UsageEntriesIDs() (ids []int) {
	for id := range m.usage_entries {
		ids = append(ids, id)
	}
	return
}

// ResetUsageEntries resets all changes to the "usage_entries" edge.
func (m *AccountMutation) ResetUsageEntries() {
	m.usage_entries = nil
	m.clearedusage_entries = false
	m.removedusage_entries = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, account.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, account.FieldName)
	}
	if m.google_id != nil {
		fields = append(fields, account.FieldGoogleID)
	}
	if m.subscription_status != nil {
		fields = append(fields, account.FieldSubscriptionStatus)
	}
	if m.is_premium != nil {
		fields = append(fields, account.FieldIsPremium)
	}
	if m.plan_type != nil {
		fields = append(fields, account.FieldPlanType)
	}
	if m.trial_active != nil {
		fields = append(fields, account.FieldTrialActive)
	}
	if m.trial_start_date != nil {
		fields = append(fields, account.FieldTrialStartDate)
	}
	if m.trial_end_date != nil {
		fields = append(fields, account.FieldTrialEndDate)
	}
	if m.daily_usage != nil {
		fields = append(fields, account.FieldDailyUsage)
	}
	if m.monthly_usage != nil {
		fields = append(fields, account.FieldMonthlyUsage)
	}
	if m.last_usage_date != nil {
		fields = append(fields, account.FieldLastUsageDate)
	}
	if m.last_reset_date != nil {
		fields = append(fields, account.FieldLastResetDate)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, account.FieldStripeCustomerID)
	}
	if m.stripe_subscription_id != nil {
		fields = append(fields, account.FieldStripeSubscriptionID)
	}
	if m.pending_reconciliation != nil {
		fields = append(fields, account.FieldPendingReconciliation)
	}
	if m.subscription_event_time != nil {
		fields = append(fields, account.FieldSubscriptionEventTime)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldEmail:
		return m.Email()
	case account.FieldPasswordHash:
		return m.PasswordHash()
	case account.FieldName:
		return m.Name()
	case account.FieldGoogleID:
		return m.GoogleID()
	case account.FieldSubscriptionStatus:
		return m.SubscriptionStatus()
	case account.FieldIsPremium:
		return m.IsPremium()
	case account.FieldPlanType:
		return m.PlanType()
	case account.FieldTrialActive:
		return m.TrialActive()
	case account.FieldTrialStartDate:
		return m.TrialStartDate()
	case account.FieldTrialEndDate:
		return m.TrialEndDate()
	case account.FieldDailyUsage:
		return m.DailyUsage()
	case account.FieldMonthlyUsage:
		return m.MonthlyUsage()
	case account.FieldLastUsageDate:
		return m.LastUsageDate()
	case account.FieldLastResetDate:
		return m.LastResetDate()
	case account.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case account.FieldStripeSubscriptionID:
		return m.StripeSubscriptionID()
	case account.FieldPendingReconciliation:
		return m.PendingReconciliation()
	case account.FieldSubscriptionEventTime:
		return m.SubscriptionEventTime()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case account.FieldName:
		return m.OldName(ctx)
	case account.FieldGoogleID:
		return m.OldGoogleID(ctx)
	case account.FieldSubscriptionStatus:
		return m.OldSubscriptionStatus(ctx)
	case account.FieldIsPremium:
		return m.OldIsPremium(ctx)
	case account.FieldPlanType:
		return m.OldPlanType(ctx)
	case account.FieldTrialActive:
		return m.OldTrialActive(ctx)
	case account.FieldTrialStartDate:
		return m.OldTrialStartDate(ctx)
	case account.FieldTrialEndDate:
		return m.OldTrialEndDate(ctx)
	case account.FieldDailyUsage:
		return m.OldDailyUsage(ctx)
	case account.FieldMonthlyUsage:
		return m.OldMonthlyUsage(ctx)
	case account.FieldLastUsageDate:
		return m.OldLastUsageDate(ctx)
	case account.FieldLastResetDate:
		return m.OldLastResetDate(ctx)
	case account.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case account.FieldStripeSubscriptionID:
		return m.OldStripeSubscriptionID(ctx)
	case account.FieldPendingReconciliation:
		return m.OldPendingReconciliation(ctx)
	case account.FieldSubscriptionEventTime:
		return m.OldSubscriptionEventTime(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case account.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case account.FieldGoogleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoogleID(v)
		return nil
	case account.FieldSubscriptionStatus:
		v, ok := value.(account.SubscriptionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionStatus(v)
		return nil
	case account.FieldIsPremium:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPremium(v)
		return nil
	case account.FieldPlanType:
		v, ok := value.(account.PlanType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanType(v)
		return nil
	case account.FieldTrialActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialActive(v)
		return nil
	case account.FieldTrialStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialStartDate(v)
		return nil
	case account.FieldTrialEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialEndDate(v)
		return nil
	case account.FieldDailyUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyUsage(v)
		return nil
	case account.FieldMonthlyUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyUsage(v)
		return nil
	case account.FieldLastUsageDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsageDate(v)
		return nil
	case account.FieldLastResetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResetDate(v)
		return nil
	case account.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case account.FieldStripeSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeSubscriptionID(v)
		return nil
	case account.FieldPendingReconciliation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingReconciliation(v)
		return nil
	case account.FieldSubscriptionEventTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionEventTime(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.adddaily_usage != nil {
		fields = append(fields, account.FieldDailyUsage)
	}
	if m.addmonthly_usage != nil {
		fields = append(fields, account.FieldMonthlyUsage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldDailyUsage:
		return m.AddedDailyUsage()
	case account.FieldMonthlyUsage:
		return m.AddedMonthlyUsage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldDailyUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyUsage(v)
		return nil
	case account.FieldMonthlyUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyUsage(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldPasswordHash) {
		fields = append(fields, account.FieldPasswordHash)
	}
	if m.FieldCleared(account.FieldGoogleID) {
		fields = append(fields, account.FieldGoogleID)
	}
	if m.FieldCleared(account.FieldPlanType) {
		fields = append(fields, account.FieldPlanType)
	}
	if m.FieldCleared(account.FieldTrialStartDate) {
		fields = append(fields, account.FieldTrialStartDate)
	}
	if m.FieldCleared(account.FieldTrialEndDate) {
		fields = append(fields, account.FieldTrialEndDate)
	}
	if m.FieldCleared(account.FieldLastUsageDate) {
		fields = append(fields, account.FieldLastUsageDate)
	}
	if m.FieldCleared(account.FieldLastResetDate) {
		fields = append(fields, account.FieldLastResetDate)
	}
	if m.FieldCleared(account.FieldStripeCustomerID) {
		fields = append(fields, account.FieldStripeCustomerID)
	}
	if m.FieldCleared(account.FieldStripeSubscriptionID) {
		fields = append(fields, account.FieldStripeSubscriptionID)
	}
	if m.FieldCleared(account.FieldSubscriptionEventTime) {
		fields = append(fields, account.FieldSubscriptionEventTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case account.FieldGoogleID:
		m.ClearGoogleID()
		return nil
	case account.FieldPlanType:
		m.ClearPlanType()
		return nil
	case account.FieldTrialStartDate:
		m.ClearTrialStartDate()
		return nil
	case account.FieldTrialEndDate:
		m.ClearTrialEndDate()
		return nil
	case account.FieldLastUsageDate:
		m.ClearLastUsageDate()
		return nil
	case account.FieldLastResetDate:
		m.ClearLastResetDate()
		return nil
	case account.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	case account.FieldStripeSubscriptionID:
		m.ClearStripeSubscriptionID()
		return nil
	case account.FieldSubscriptionEventTime:
		m.ClearSubscriptionEventTime()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case account.FieldName:
		m.ResetName()
		return nil
	case account.FieldGoogleID:
		m.ResetGoogleID()
		return nil
	case account.FieldSubscriptionStatus:
		m.ResetSubscriptionStatus()
		return nil
	case account.FieldIsPremium:
		m.ResetIsPremium()
		return nil
	case account.FieldPlanType:
		m.ResetPlanType()
		return nil
	case account.FieldTrialActive:
		m.ResetTrialActive()
		return nil
	case account.FieldTrialStartDate:
		m.ResetTrialStartDate()
		return nil
	case account.FieldTrialEndDate:
		m.ResetTrialEndDate()
		return nil
	case account.FieldDailyUsage:
		m.ResetDailyUsage()
		return nil
	case account.FieldMonthlyUsage:
		m.ResetMonthlyUsage()
		return nil
	case account.FieldLastUsageDate:
		m.ResetLastUsageDate()
		return nil
	case account.FieldLastResetDate:
		m.ResetLastResetDate()
		return nil
	case account.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case account.FieldStripeSubscriptionID:
		m.ResetStripeSubscriptionID()
		return nil
	case account.FieldPendingReconciliation:
		m.ResetPendingReconciliation()
		return nil
	case account.FieldSubscriptionEventTime:
		m.ResetSubscriptionEventTime()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.usage_entries != nil {
		edges = append(edges, account.EdgeUsageEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeUsageEntries:
		ids := make([]ent.Value, 0, len(m.usage_entries))
		for id := range m.usage_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusage_entries != nil {
		edges = append(edges, account.EdgeUsageEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeUsageEntries:
		ids := make([]ent.Value, 0, len(m.removedusage_entries))
		for id := range m.removedusage_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusage_entries {
		edges = append(edges, account.EdgeUsageEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeUsageEntries:
		return m.clearedusage_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeUsageEntries:
		m.ResetUsageEntries()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// UsageEntryMutation represents an operation that mutates the UsageEntry nodes in the graph.
type UsageEntryMutation struct {
	config
	op             Op
	typ            string
	id             *int
	action         *usageentry.Action
	created_at     *time.Time
	clearedFields  map[string]struct{}
	account        *int
	clearedaccount bool
	done           bool
	oldValue       func(context.Context) (*UsageEntry, error)
	predicates     []predicate.UsageEntry
}

var _ ent.Mutation = (*UsageEntryMutation)(nil)

// usageentryOption allows management of the mutation configuration using functional options.
type usageentryOption func(*UsageEntryMutation)

// newUsageEntryMutation creates new mutation for the UsageEntry entity.
func newUsageEntryMutation(c config, op Op, opts ...usageentryOption) *UsageEntryMutation {
	m := &UsageEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageEntryID sets the ID field of the mutation.
func withUsageEntryID(id int) usageentryOption {
	return func(m *UsageEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageEntry
		)
		m.oldValue = func(ctx context.Context) (*UsageEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageEntry sets the old UsageEntry of the mutation.
func withUsageEntry(node *UsageEntry) usageentryOption {
	return func(m *UsageEntryMutation) {
		m.oldValue = func(context.Context) (*UsageEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *UsageEntryMutation) SetAccountID(i int) {
	m.account = &i
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *UsageEntryMutation) AccountID() (r int, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the UsageEntry entity.
// If the UsageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEntryMutation) OldAccountID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *UsageEntryMutation) ResetAccountID() {
	m.account = nil
}

// SetAction sets the "action" field.
func (m *UsageEntryMutation) SetAction(u usageentry.Action) {
	m.action = &u
}

// Action returns the value of the "action" field in the mutation.
func (m *UsageEntryMutation) Action() (r usageentry.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the UsageEntry entity.
// If the UsageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEntryMutation) OldAction(ctx context.Context) (v usageentry.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *UsageEntryMutation) ResetAction() {
	m.action = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageEntry entity.
// If the UsageEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *UsageEntryMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[usageentry.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *UsageEntryMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *UsageEntryMutation) AccountIDs() (ids []int) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *UsageEntryMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the UsageEntryMutation builder.
func (m *UsageEntryMutation) Where(ps ...predicate.UsageEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageEntry).
func (m *UsageEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageEntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.account != nil {
		fields = append(fields, usageentry.FieldAccountID)
	}
	if m.action != nil {
		fields = append(fields, usageentry.FieldAction)
	}
	if m.created_at != nil {
		fields = append(fields, usageentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usageentry.FieldAccountID:
		return m.AccountID()
	case usageentry.FieldAction:
		return m.Action()
	case usageentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usageentry.FieldAccountID:
		return m.OldAccountID(ctx)
	case usageentry.FieldAction:
		return m.OldAction(ctx)
	case usageentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usageentry.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case usageentry.FieldAction:
		v, ok := value.(usageentry.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case usageentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageEntryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UsageEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UsageEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageEntryMutation) ResetField(name string) error {
	switch name {
	case usageentry.FieldAccountID:
		m.ResetAccountID()
		return nil
	case usageentry.FieldAction:
		m.ResetAction()
		return nil
	case usageentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, usageentry.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usageentry.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, usageentry.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case usageentry.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageEntryMutation) ClearEdge(name string) error {
	switch name {
	case usageentry.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown UsageEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageEntryMutation) ResetEdge(name string) error {
	switch name {
	case usageentry.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown UsageEntry edge %s", name)
}
