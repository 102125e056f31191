// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/predicate"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (au *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetEmail sets the "email" field.
func (au *AccountUpdate) SetEmail(s string) *AccountUpdate {
	au.mutation.SetEmail(s)
	return au
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (au *AccountUpdate) SetNillableEmail(s *string) *AccountUpdate {
	if s != nil {
		au.SetEmail(*s)
	}
	return au
}

// SetPasswordHash sets the "password_hash" field.
func (au *AccountUpdate) SetPasswordHash(s string) *AccountUpdate {
	au.mutation.SetPasswordHash(s)
	return au
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (au *AccountUpdate) SetNillablePasswordHash(s *string) *AccountUpdate {
	if s != nil {
		au.SetPasswordHash(*s)
	}
	return au
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (au *AccountUpdate) ClearPasswordHash() *AccountUpdate {
	au.mutation.ClearPasswordHash()
	return au
}

// SetName sets the "name" field.
func (au *AccountUpdate) SetName(s string) *AccountUpdate {
	au.mutation.SetName(s)
	return au
}

// SetNillableName sets the "name" field if the given value is not nil.
func (au *AccountUpdate) SetNillableName(s *string) *AccountUpdate {
	if s != nil {
		au.SetName(*s)
	}
	return au
}

// SetGoogleID sets the "google_id" field.
func (au *AccountUpdate) SetGoogleID(s string) *AccountUpdate {
	au.mutation.SetGoogleID(s)
	return au
}

// SetNillableGoogleID sets the "google_id" field if the given value is not nil.
func (au *AccountUpdate) SetNillableGoogleID(s *string) *AccountUpdate {
	if s != nil {
		au.SetGoogleID(*s)
	}
	return au
}

// ClearGoogleID clears the value of the "google_id" field.
func (au *AccountUpdate) ClearGoogleID() *AccountUpdate {
	au.mutation.ClearGoogleID()
	return au
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (au *AccountUpdate) SetSubscriptionStatus(as account.SubscriptionStatus) *AccountUpdate {
	au.mutation.SetSubscriptionStatus(as)
	return au
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (au *AccountUpdate) SetNillableSubscriptionStatus(as *account.SubscriptionStatus) *AccountUpdate {
	if as != nil {
		au.SetSubscriptionStatus(*as)
	}
	return au
}

// SetIsPremium sets the "is_premium" field.
func (au *AccountUpdate) SetIsPremium(b bool) *AccountUpdate {
	au.mutation.SetIsPremium(b)
	return au
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (au *AccountUpdate) SetNillableIsPremium(b *bool) *AccountUpdate {
	if b != nil {
		au.SetIsPremium(*b)
	}
	return au
}

// SetPlanType sets the "plan_type" field.
func (au *AccountUpdate) SetPlanType(at account.PlanType) *AccountUpdate {
	au.mutation.SetPlanType(at)
	return au
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (au *AccountUpdate) SetNillablePlanType(at *account.PlanType) *AccountUpdate {
	if at != nil {
		au.SetPlanType(*at)
	}
	return au
}

// ClearPlanType clears the value of the "plan_type" field.
func (au *AccountUpdate) ClearPlanType() *AccountUpdate {
	au.mutation.ClearPlanType()
	return au
}

// SetTrialActive sets the "trial_active" field.
func (au *AccountUpdate) SetTrialActive(b bool) *AccountUpdate {
	au.mutation.SetTrialActive(b)
	return au
}

// SetNillableTrialActive sets the "trial_active" field if the given value is not nil.
func (au *AccountUpdate) SetNillableTrialActive(b *bool) *AccountUpdate {
	if b != nil {
		au.SetTrialActive(*b)
	}
	return au
}

// SetTrialStartDate sets the "trial_start_date" field.
func (au *AccountUpdate) SetTrialStartDate(t time.Time) *AccountUpdate {
	au.mutation.SetTrialStartDate(t)
	return au
}

// SetNillableTrialStartDate sets the "trial_start_date" field if the given value is not nil.
func (au *AccountUpdate) SetNillableTrialStartDate(t *time.Time) *AccountUpdate {
	if t != nil {
		au.SetTrialStartDate(*t)
	}
	return au
}

// ClearTrialStartDate clears the value of the "trial_start_date" field.
func (au *AccountUpdate) ClearTrialStartDate() *AccountUpdate {
	au.mutation.ClearTrialStartDate()
	return au
}

// SetTrialEndDate sets the "trial_end_date" field.
func (au *AccountUpdate) SetTrialEndDate(t time.Time) *AccountUpdate {
	au.mutation.SetTrialEndDate(t)
	return au
}

// SetNillableTrialEndDate sets the "trial_end_date" field if the given value is not nil.
func (au *AccountUpdate) SetNillableTrialEndDate(t *time.Time) *AccountUpdate {
	if t != nil {
		au.SetTrialEndDate(*t)
	}
	return au
}

// ClearTrialEndDate clears the value of the "trial_end_date" field.
func (au *AccountUpdate) ClearTrialEndDate() *AccountUpdate {
	au.mutation.ClearTrialEndDate()
	return au
}

// SetDailyUsage sets the "daily_usage" field.
func (au *AccountUpdate) SetDailyUsage(i int) *AccountUpdate {
	au.mutation.ResetDailyUsage()
	au.mutation.SetDailyUsage(i)
	return au
}

// SetNillableDailyUsage sets the "daily_usage" field if the given value is not nil.
func (au *AccountUpdate) SetNillableDailyUsage(i *int) *AccountUpdate {
	if i != nil {
		au.SetDailyUsage(*i)
	}
	return au
}

// AddDailyUsage adds i to the "daily_usage" field.
func (au *AccountUpdate) AddDailyUsage(i int) *AccountUpdate {
	au.mutation.AddDailyUsage(i)
	return au
}

// SetMonthlyUsage sets the "monthly_usage" field.
func (au *AccountUpdate) SetMonthlyUsage(i int) *AccountUpdate {
	au.mutation.ResetMonthlyUsage()
	au.mutation.SetMonthlyUsage(i)
	return au
}

// SetNillableMonthlyUsage sets the "monthly_usage" field if the given value is not nil.
func (au *AccountUpdate) SetNillableMonthlyUsage(i *int) *AccountUpdate {
	if i != nil {
		au.SetMonthlyUsage(*i)
	}
	return au
}

// AddMonthlyUsage adds i to the "monthly_usage" field.
func (au *AccountUpdate) AddMonthlyUsage(i int) *AccountUpdate {
	au.mutation.AddMonthlyUsage(i)
	return au
}

// SetLastUsageDate sets the "last_usage_date" field.
func (au *AccountUpdate) SetLastUsageDate(t time.Time) *AccountUpdate {
	au.mutation.SetLastUsageDate(t)
	return au
}

// SetNillableLastUsageDate sets the "last_usage_date" field if the given value is not nil.
func (au *AccountUpdate) SetNillableLastUsageDate(t *time.Time) *AccountUpdate {
	if t != nil {
		au.SetLastUsageDate(*t)
	}
	return au
}

// ClearLastUsageDate clears the value of the "last_usage_date" field.
func (au *AccountUpdate) ClearLastUsageDate() *AccountUpdate {
	au.mutation.ClearLastUsageDate()
	return au
}

// SetLastResetDate sets the "last_reset_date" field.
func (au *AccountUpdate) SetLastResetDate(t time.Time) *AccountUpdate {
	au.mutation.SetLastResetDate(t)
	return au
}

// SetNillableLastResetDate sets the "last_reset_date" field if the given value is not nil.
func (au *AccountUpdate) SetNillableLastResetDate(t *time.Time) *AccountUpdate {
	if t != nil {
		au.SetLastResetDate(*t)
	}
	return au
}

// ClearLastResetDate clears the value of the "last_reset_date" field.
func (au *AccountUpdate) ClearLastResetDate() *AccountUpdate {
	au.mutation.ClearLastResetDate()
	return au
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (au *AccountUpdate) SetStripeCustomerID(s string) *AccountUpdate {
	au.mutation.SetStripeCustomerID(s)
	return au
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (au *AccountUpdate) SetNillableStripeCustomerID(s *string) *AccountUpdate {
	if s != nil {
		au.SetStripeCustomerID(*s)
	}
	return au
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (au *AccountUpdate) ClearStripeCustomerID() *AccountUpdate {
	au.mutation.ClearStripeCustomerID()
	return au
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (au *AccountUpdate) SetStripeSubscriptionID(s string) *AccountUpdate {
	au.mutation.SetStripeSubscriptionID(s)
	return au
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (au *AccountUpdate) SetNillableStripeSubscriptionID(s *string) *AccountUpdate {
	if s != nil {
		au.SetStripeSubscriptionID(*s)
	}
	return au
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (au *AccountUpdate) ClearStripeSubscriptionID() *AccountUpdate {
	au.mutation.ClearStripeSubscriptionID()
	return au
}

// SetPendingReconciliation sets the "pending_reconciliation" field.
func (au *AccountUpdate) SetPendingReconciliation(b bool) *AccountUpdate {
	au.mutation.SetPendingReconciliation(b)
	return au
}

// SetNillablePendingReconciliation sets the "pending_reconciliation" field if the given value is not nil.
func (au *AccountUpdate) SetNillablePendingReconciliation(b *bool) *AccountUpdate {
	if b != nil {
		au.SetPendingReconciliation(*b)
	}
	return au
}

// SetSubscriptionEventTime sets the "subscription_event_time" field.
func (au *AccountUpdate) SetSubscriptionEventTime(t time.Time) *AccountUpdate {
	au.mutation.SetSubscriptionEventTime(t)
	return au
}

// SetNillableSubscriptionEventTime sets the "subscription_event_time" field if the given value is not nil.
func (au *AccountUpdate) SetNillableSubscriptionEventTime(t *time.Time) *AccountUpdate {
	if t != nil {
		au.SetSubscriptionEventTime(*t)
	}
	return au
}

// ClearSubscriptionEventTime clears the value of the "subscription_event_time" field.
func (au *AccountUpdate) ClearSubscriptionEventTime() *AccountUpdate {
	au.mutation.ClearSubscriptionEventTime()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AccountUpdate) SetUpdatedAt(t time.Time) *AccountUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// AddUsageEntryIDs adds the "usage_entries" edge to the UsageEntry entity by IDs.
func (au *AccountUpdate) AddUsageEntryIDs(ids ...int) *AccountUpdate {
	au.mutation.AddUsageEntryIDs(ids...)
	return au
}

// AddUsageEntries adds the "usage_entries" edges to the UsageEntry entity.
func (au *AccountUpdate) AddUsageEntries(u ...*UsageEntry) *AccountUpdate {
	ids := make([]int, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return au.AddUsageEntryIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (au *AccountUpdate) Mutation() *AccountMutation {
	return au.mutation
}

// ClearUsageEntries clears all "usage_entries" edges to the UsageEntry entity.
func (au *AccountUpdate) ClearUsageEntries() *AccountUpdate {
	au.mutation.ClearUsageEntries()
	return au
}

// RemoveUsageEntryIDs removes the "usage_entries" edge to UsageEntry entities by IDs.
func (au *AccountUpdate) RemoveUsageEntryIDs(ids ...int) *AccountUpdate {
	au.mutation.RemoveUsageEntryIDs(ids...)
	return au
}

// RemoveUsageEntries removes "usage_entries" edges to UsageEntry entities.
func (au *AccountUpdate) RemoveUsageEntries(u ...*UsageEntry) *AccountUpdate {
	ids := make([]int, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return au.RemoveUsageEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AccountUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AccountUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AccountUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AccountUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AccountUpdate) check() error {
	if v, ok := au.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := au.mutation.Name(); ok {
		if err := account.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Account.name": %w`, err)}
		}
	}
	if v, ok := au.mutation.SubscriptionStatus(); ok {
		if err := account.SubscriptionStatusValidator(v); err != nil {
			return &ValidationError{Name: "subscription_status", err: fmt.Errorf(`ent: validator failed for field "Account.subscription_status": %w`, err)}
		}
	}
	if v, ok := au.mutation.PlanType(); ok {
		if err := account.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "Account.plan_type": %w`, err)}
		}
	}
	if v, ok := au.mutation.DailyUsage(); ok {
		if err := account.DailyUsageValidator(v); err != nil {
			return &ValidationError{Name: "daily_usage", err: fmt.Errorf(`ent: validator failed for field "Account.daily_usage": %w`, err)}
		}
	}
	if v, ok := au.mutation.MonthlyUsage(); ok {
		if err := account.MonthlyUsageValidator(v); err != nil {
			return &ValidationError{Name: "monthly_usage", err: fmt.Errorf(`ent: validator failed for field "Account.monthly_usage": %w`, err)}
		}
	}
	return nil
}

func (au *AccountUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := au.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
	}
	if au.mutation.PasswordHashCleared() {
		_spec.ClearField(account.FieldPasswordHash, field.TypeString)
	}
	if value, ok := au.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
	}
	if value, ok := au.mutation.GoogleID(); ok {
		_spec.SetField(account.FieldGoogleID, field.TypeString, value)
	}
	if au.mutation.GoogleIDCleared() {
		_spec.ClearField(account.FieldGoogleID, field.TypeString)
	}
	if value, ok := au.mutation.SubscriptionStatus(); ok {
		_spec.SetField(account.FieldSubscriptionStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := au.mutation.PlanType(); ok {
		_spec.SetField(account.FieldPlanType, field.TypeEnum, value)
	}
	if au.mutation.PlanTypeCleared() {
		_spec.ClearField(account.FieldPlanType, field.TypeEnum)
	}
	if value, ok := au.mutation.TrialActive(); ok {
		_spec.SetField(account.FieldTrialActive, field.TypeBool, value)
	}
	if value, ok := au.mutation.TrialStartDate(); ok {
		_spec.SetField(account.FieldTrialStartDate, field.TypeTime, value)
	}
	if au.mutation.TrialStartDateCleared() {
		_spec.ClearField(account.FieldTrialStartDate, field.TypeTime)
	}
	if value, ok := au.mutation.TrialEndDate(); ok {
		_spec.SetField(account.FieldTrialEndDate, field.TypeTime, value)
	}
	if au.mutation.TrialEndDateCleared() {
		_spec.ClearField(account.FieldTrialEndDate, field.TypeTime)
	}
	if value, ok := au.mutation.DailyUsage(); ok {
		_spec.SetField(account.FieldDailyUsage, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedDailyUsage(); ok {
		_spec.AddField(account.FieldDailyUsage, field.TypeInt, value)
	}
	if value, ok := au.mutation.MonthlyUsage(); ok {
		_spec.SetField(account.FieldMonthlyUsage, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedMonthlyUsage(); ok {
		_spec.AddField(account.FieldMonthlyUsage, field.TypeInt, value)
	}
	if value, ok := au.mutation.LastUsageDate(); ok {
		_spec.SetField(account.FieldLastUsageDate, field.TypeTime, value)
	}
	if au.mutation.LastUsageDateCleared() {
		_spec.ClearField(account.FieldLastUsageDate, field.TypeTime)
	}
	if value, ok := au.mutation.LastResetDate(); ok {
		_spec.SetField(account.FieldLastResetDate, field.TypeTime, value)
	}
	if au.mutation.LastResetDateCleared() {
		_spec.ClearField(account.FieldLastResetDate, field.TypeTime)
	}
	if value, ok := au.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
	}
	if au.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(account.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := au.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(account.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if au.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(account.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := au.mutation.PendingReconciliation(); ok {
		_spec.SetField(account.FieldPendingReconciliation, field.TypeBool, value)
	}
	if value, ok := au.mutation.SubscriptionEventTime(); ok {
		_spec.SetField(account.FieldSubscriptionEventTime, field.TypeTime, value)
	}
	if au.mutation.SubscriptionEventTimeCleared() {
		_spec.ClearField(account.FieldSubscriptionEventTime, field.TypeTime)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if au.mutation.UsageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.UsageEntriesTable,
			Columns: []string{account.UsageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedUsageEntriesIDs(); len(nodes) > 0 && !au.mutation.UsageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.UsageEntriesTable,
			Columns: []string{account.UsageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.UsageEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.UsageEntriesTable,
			Columns: []string{account.UsageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetEmail sets the "email" field.
func (auo *AccountUpdateOne) SetEmail(s string) *AccountUpdateOne {
	auo.mutation.SetEmail(s)
	return auo
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableEmail(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetEmail(*s)
	}
	return auo
}

// SetPasswordHash sets the "password_hash" field.
func (auo *AccountUpdateOne) SetPasswordHash(s string) *AccountUpdateOne {
	auo.mutation.SetPasswordHash(s)
	return auo
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillablePasswordHash(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetPasswordHash(*s)
	}
	return auo
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (auo *AccountUpdateOne) ClearPasswordHash() *AccountUpdateOne {
	auo.mutation.ClearPasswordHash()
	return auo
}

// SetName sets the "name" field.
func (auo *AccountUpdateOne) SetName(s string) *AccountUpdateOne {
	auo.mutation.SetName(s)
	return auo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableName(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetName(*s)
	}
	return auo
}

// SetGoogleID sets the "google_id" field.
func (auo *AccountUpdateOne) SetGoogleID(s string) *AccountUpdateOne {
	auo.mutation.SetGoogleID(s)
	return auo
}

// SetNillableGoogleID sets the "google_id" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableGoogleID(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetGoogleID(*s)
	}
	return auo
}

// ClearGoogleID clears the value of the "google_id" field.
func (auo *AccountUpdateOne) ClearGoogleID() *AccountUpdateOne {
	auo.mutation.ClearGoogleID()
	return auo
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (auo *AccountUpdateOne) SetSubscriptionStatus(as account.SubscriptionStatus) *AccountUpdateOne {
	auo.mutation.SetSubscriptionStatus(as)
	return auo
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableSubscriptionStatus(as *account.SubscriptionStatus) *AccountUpdateOne {
	if as != nil {
		auo.SetSubscriptionStatus(*as)
	}
	return auo
}

// SetIsPremium sets the "is_premium" field.
func (auo *AccountUpdateOne) SetIsPremium(b bool) *AccountUpdateOne {
	auo.mutation.SetIsPremium(b)
	return auo
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableIsPremium(b *bool) *AccountUpdateOne {
	if b != nil {
		auo.SetIsPremium(*b)
	}
	return auo
}

// SetPlanType sets the "plan_type" field.
func (auo *AccountUpdateOne) SetPlanType(at account.PlanType) *AccountUpdateOne {
	auo.mutation.SetPlanType(at)
	return auo
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillablePlanType(at *account.PlanType) *AccountUpdateOne {
	if at != nil {
		auo.SetPlanType(*at)
	}
	return auo
}

// ClearPlanType clears the value of the "plan_type" field.
func (auo *AccountUpdateOne) ClearPlanType() *AccountUpdateOne {
	auo.mutation.ClearPlanType()
	return auo
}

// SetTrialActive sets the "trial_active" field.
func (auo *AccountUpdateOne) SetTrialActive(b bool) *AccountUpdateOne {
	auo.mutation.SetTrialActive(b)
	return auo
}

// SetNillableTrialActive sets the "trial_active" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableTrialActive(b *bool) *AccountUpdateOne {
	if b != nil {
		auo.SetTrialActive(*b)
	}
	return auo
}

// SetTrialStartDate sets the "trial_start_date" field.
func (auo *AccountUpdateOne) SetTrialStartDate(t time.Time) *AccountUpdateOne {
	auo.mutation.SetTrialStartDate(t)
	return auo
}

// SetNillableTrialStartDate sets the "trial_start_date" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableTrialStartDate(t *time.Time) *AccountUpdateOne {
	if t != nil {
		auo.SetTrialStartDate(*t)
	}
	return auo
}

// ClearTrialStartDate clears the value of the "trial_start_date" field.
func (auo *AccountUpdateOne) ClearTrialStartDate() *AccountUpdateOne {
	auo.mutation.ClearTrialStartDate()
	return auo
}

// SetTrialEndDate sets the "trial_end_date" field.
func (auo *AccountUpdateOne) SetTrialEndDate(t time.Time) *AccountUpdateOne {
	auo.mutation.SetTrialEndDate(t)
	return auo
}

// SetNillableTrialEndDate sets the "trial_end_date" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableTrialEndDate(t *time.Time) *AccountUpdateOne {
	if t != nil {
		auo.SetTrialEndDate(*t)
	}
	return auo
}

// ClearTrialEndDate clears the value of the "trial_end_date" field.
func (auo *AccountUpdateOne) ClearTrialEndDate() *AccountUpdateOne {
	auo.mutation.ClearTrialEndDate()
	return auo
}

// SetDailyUsage sets the "daily_usage" field.
func (auo *AccountUpdateOne) SetDailyUsage(i int) *AccountUpdateOne {
	auo.mutation.ResetDailyUsage()
	auo.mutation.SetDailyUsage(i)
	return auo
}

// SetNillableDailyUsage sets the "daily_usage" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableDailyUsage(i *int) *AccountUpdateOne {
	if i != nil {
		auo.SetDailyUsage(*i)
	}
	return auo
}

// AddDailyUsage adds i to the "daily_usage" field.
func (auo *AccountUpdateOne) AddDailyUsage(i int) *AccountUpdateOne {
	auo.mutation.AddDailyUsage(i)
	return auo
}

// SetMonthlyUsage sets the "monthly_usage" field.
func (auo *AccountUpdateOne) SetMonthlyUsage(i int) *AccountUpdateOne {
	auo.mutation.ResetMonthlyUsage()
	auo.mutation.SetMonthlyUsage(i)
	return auo
}

// SetNillableMonthlyUsage sets the "monthly_usage" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableMonthlyUsage(i *int) *AccountUpdateOne {
	if i != nil {
		auo.SetMonthlyUsage(*i)
	}
	return auo
}

// AddMonthlyUsage adds i to the "monthly_usage" field.
func (auo *AccountUpdateOne) AddMonthlyUsage(i int) *AccountUpdateOne {
	auo.mutation.AddMonthlyUsage(i)
	return auo
}

// SetLastUsageDate sets the "last_usage_date" field.
func (auo *AccountUpdateOne) SetLastUsageDate(t time.Time) *AccountUpdateOne {
	auo.mutation.SetLastUsageDate(t)
	return auo
}

// SetNillableLastUsageDate sets the "last_usage_date" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableLastUsageDate(t *time.Time) *AccountUpdateOne {
	if t != nil {
		auo.SetLastUsageDate(*t)
	}
	return auo
}

// ClearLastUsageDate clears the value of the "last_usage_date" field.
func (auo *AccountUpdateOne) ClearLastUsageDate() *AccountUpdateOne {
	auo.mutation.ClearLastUsageDate()
	return auo
}

// SetLastResetDate sets the "last_reset_date" field.
func (auo *AccountUpdateOne) SetLastResetDate(t time.Time) *AccountUpdateOne {
	auo.mutation.SetLastResetDate(t)
	return auo
}

// SetNillableLastResetDate sets the "last_reset_date" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableLastResetDate(t *time.Time) *AccountUpdateOne {
	if t != nil {
		auo.SetLastResetDate(*t)
	}
	return auo
}

// ClearLastResetDate clears the value of the "last_reset_date" field.
func (auo *AccountUpdateOne) ClearLastResetDate() *AccountUpdateOne {
	auo.mutation.ClearLastResetDate()
	return auo
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (auo *AccountUpdateOne) SetStripeCustomerID(s string) *AccountUpdateOne {
	auo.mutation.SetStripeCustomerID(s)
	return auo
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableStripeCustomerID(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetStripeCustomerID(*s)
	}
	return auo
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (auo *AccountUpdateOne) ClearStripeCustomerID() *AccountUpdateOne {
	auo.mutation.ClearStripeCustomerID()
	return auo
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (auo *AccountUpdateOne) SetStripeSubscriptionID(s string) *AccountUpdateOne {
	auo.mutation.SetStripeSubscriptionID(s)
	return auo
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableStripeSubscriptionID(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetStripeSubscriptionID(*s)
	}
	return auo
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (auo *AccountUpdateOne) ClearStripeSubscriptionID() *AccountUpdateOne {
	auo.mutation.ClearStripeSubscriptionID()
	return auo
}

// SetPendingReconciliation sets the "pending_reconciliation" field.
func (auo *AccountUpdateOne) SetPendingReconciliation(b bool) *AccountUpdateOne {
	auo.mutation.SetPendingReconciliation(b)
	return auo
}

// SetNillablePendingReconciliation sets the "pending_reconciliation" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillablePendingReconciliation(b *bool) *AccountUpdateOne {
	if b != nil {
		auo.SetPendingReconciliation(*b)
	}
	return auo
}

// SetSubscriptionEventTime sets the "subscription_event_time" field.
func (auo *AccountUpdateOne) SetSubscriptionEventTime(t time.Time) *AccountUpdateOne {
	auo.mutation.SetSubscriptionEventTime(t)
	return auo
}

// SetNillableSubscriptionEventTime sets the "subscription_event_time" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableSubscriptionEventTime(t *time.Time) *AccountUpdateOne {
	if t != nil {
		auo.SetSubscriptionEventTime(*t)
	}
	return auo
}

// ClearSubscriptionEventTime clears the value of the "subscription_event_time" field.
func (auo *AccountUpdateOne) ClearSubscriptionEventTime() *AccountUpdateOne {
	auo.mutation.ClearSubscriptionEventTime()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AccountUpdateOne) SetUpdatedAt(t time.Time) *AccountUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// AddUsageEntryIDs adds the "usage_entries" edge to the UsageEntry entity by IDs.
func (auo *AccountUpdateOne) AddUsageEntryIDs(ids ...int) *AccountUpdateOne {
	auo.mutation.AddUsageEntryIDs(ids...)
	return auo
}

// AddUsageEntries adds the "usage_entries" edges to the UsageEntry entity.
func (auo *AccountUpdateOne) AddUsageEntries(u ...*UsageEntry) *AccountUpdateOne {
	ids := make([]int, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return auo.AddUsageEntryIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (auo *AccountUpdateOne) Mutation() *AccountMutation {
	return auo.mutation
}

// ClearUsageEntries clears all "usage_entries" edges to the UsageEntry entity.
func (auo *AccountUpdateOne) ClearUsageEntries() *AccountUpdateOne {
	auo.mutation.ClearUsageEntries()
	return auo
}

// RemoveUsageEntryIDs removes the "usage_entries" edge to UsageEntry entities by IDs.
func (auo *AccountUpdateOne) RemoveUsageEntryIDs(ids ...int) *AccountUpdateOne {
	auo.mutation.RemoveUsageEntryIDs(ids...)
	return auo
}

// RemoveUsageEntries removes "usage_entries" edges to UsageEntry entities.
func (auo *AccountUpdateOne) RemoveUsageEntries(u ...*UsageEntry) *AccountUpdateOne {
	ids := make([]int, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return auo.RemoveUsageEntryIDs(ids...)
}

// Where appends a list predicates to the AccountUpdate builder.
func (auo *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Account entity.
func (auo *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AccountUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AccountUpdateOne) check() error {
	if v, ok := auo.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Name(); ok {
		if err := account.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Account.name": %w`, err)}
		}
	}
	if v, ok := auo.mutation.SubscriptionStatus(); ok {
		if err := account.SubscriptionStatusValidator(v); err != nil {
			return &ValidationError{Name: "subscription_status", err: fmt.Errorf(`ent: validator failed for field "Account.subscription_status": %w`, err)}
		}
	}
	if v, ok := auo.mutation.PlanType(); ok {
		if err := account.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "Account.plan_type": %w`, err)}
		}
	}
	if v, ok := auo.mutation.DailyUsage(); ok {
		if err := account.DailyUsageValidator(v); err != nil {
			return &ValidationError{Name: "daily_usage", err: fmt.Errorf(`ent: validator failed for field "Account.daily_usage": %w`, err)}
		}
	}
	if v, ok := auo.mutation.MonthlyUsage(); ok {
		if err := account.MonthlyUsageValidator(v); err != nil {
			return &ValidationError{Name: "monthly_usage", err: fmt.Errorf(`ent: validator failed for field "Account.monthly_usage": %w`, err)}
		}
	}
	return nil
}

func (auo *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := auo.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
	}
	if auo.mutation.PasswordHashCleared() {
		_spec.ClearField(account.FieldPasswordHash, field.TypeString)
	}
	if value, ok := auo.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
	}
	if value, ok := auo.mutation.GoogleID(); ok {
		_spec.SetField(account.FieldGoogleID, field.TypeString, value)
	}
	if auo.mutation.GoogleIDCleared() {
		_spec.ClearField(account.FieldGoogleID, field.TypeString)
	}
	if value, ok := auo.mutation.SubscriptionStatus(); ok {
		_spec.SetField(account.FieldSubscriptionStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := auo.mutation.PlanType(); ok {
		_spec.SetField(account.FieldPlanType, field.TypeEnum, value)
	}
	if auo.mutation.PlanTypeCleared() {
		_spec.ClearField(account.FieldPlanType, field.TypeEnum)
	}
	if value, ok := auo.mutation.TrialActive(); ok {
		_spec.SetField(account.FieldTrialActive, field.TypeBool, value)
	}
	if value, ok := auo.mutation.TrialStartDate(); ok {
		_spec.SetField(account.FieldTrialStartDate, field.TypeTime, value)
	}
	if auo.mutation.TrialStartDateCleared() {
		_spec.ClearField(account.FieldTrialStartDate, field.TypeTime)
	}
	if value, ok := auo.mutation.TrialEndDate(); ok {
		_spec.SetField(account.FieldTrialEndDate, field.TypeTime, value)
	}
	if auo.mutation.TrialEndDateCleared() {
		_spec.ClearField(account.FieldTrialEndDate, field.TypeTime)
	}
	if value, ok := auo.mutation.DailyUsage(); ok {
		_spec.SetField(account.FieldDailyUsage, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedDailyUsage(); ok {
		_spec.AddField(account.FieldDailyUsage, field.TypeInt, value)
	}
	if value, ok := auo.mutation.MonthlyUsage(); ok {
		_spec.SetField(account.FieldMonthlyUsage, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedMonthlyUsage(); ok {
		_spec.AddField(account.FieldMonthlyUsage, field.TypeInt, value)
	}
	if value, ok := auo.mutation.LastUsageDate(); ok {
		_spec.SetField(account.FieldLastUsageDate, field.TypeTime, value)
	}
	if auo.mutation.LastUsageDateCleared() {
		_spec.ClearField(account.FieldLastUsageDate, field.TypeTime)
	}
	if value, ok := auo.mutation.LastResetDate(); ok {
		_spec.SetField(account.FieldLastResetDate, field.TypeTime, value)
	}
	if auo.mutation.LastResetDateCleared() {
		_spec.ClearField(account.FieldLastResetDate, field.TypeTime)
	}
	if value, ok := auo.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
	}
	if auo.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(account.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := auo.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(account.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if auo.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(account.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := auo.mutation.PendingReconciliation(); ok {
		_spec.SetField(account.FieldPendingReconciliation, field.TypeBool, value)
	}
	if value, ok := auo.mutation.SubscriptionEventTime(); ok {
		_spec.SetField(account.FieldSubscriptionEventTime, field.TypeTime, value)
	}
	if auo.mutation.SubscriptionEventTimeCleared() {
		_spec.ClearField(account.FieldSubscriptionEventTime, field.TypeTime)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if auo.mutation.UsageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.UsageEntriesTable,
			Columns: []string{account.UsageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedUsageEntriesIDs(); len(nodes) > 0 && !auo.mutation.UsageEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.UsageEntriesTable,
			Columns: []string{account.UsageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.UsageEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.UsageEntriesTable,
			Columns: []string{account.UsageEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
