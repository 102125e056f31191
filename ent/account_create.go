// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (ac *AccountCreate) SetEmail(s string) *AccountCreate {
	ac.mutation.SetEmail(s)
	return ac
}

// SetPasswordHash sets the "password_hash" field.
func (ac *AccountCreate) SetPasswordHash(s string) *AccountCreate {
	ac.mutation.SetPasswordHash(s)
	return ac
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (ac *AccountCreate) SetNillablePasswordHash(s *string) *AccountCreate {
	if s != nil {
		ac.SetPasswordHash(*s)
	}
	return ac
}

// SetName sets the "name" field.
func (ac *AccountCreate) SetName(s string) *AccountCreate {
	ac.mutation.SetName(s)
	return ac
}

// SetGoogleID sets the "google_id" field.
func (ac *AccountCreate) SetGoogleID(s string) *AccountCreate {
	ac.mutation.SetGoogleID(s)
	return ac
}

// SetNillableGoogleID sets the "google_id" field if the given value is not nil.
func (ac *AccountCreate) SetNillableGoogleID(s *string) *AccountCreate {
	if s != nil {
		ac.SetGoogleID(*s)
	}
	return ac
}

// SetSubscriptionStatus sets the "subscription_status" field.
func (ac *AccountCreate) SetSubscriptionStatus(as account.SubscriptionStatus) *AccountCreate {
	ac.mutation.SetSubscriptionStatus(as)
	return ac
}

// SetNillableSubscriptionStatus sets the "subscription_status" field if the given value is not nil.
func (ac *AccountCreate) SetNillableSubscriptionStatus(as *account.SubscriptionStatus) *AccountCreate {
	if as != nil {
		ac.SetSubscriptionStatus(*as)
	}
	return ac
}

// SetIsPremium sets the "is_premium" field.
func (ac *AccountCreate) SetIsPremium(b bool) *AccountCreate {
	ac.mutation.SetIsPremium(b)
	return ac
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (ac *AccountCreate) SetNillableIsPremium(b *bool) *AccountCreate {
	if b != nil {
		ac.SetIsPremium(*b)
	}
	return ac
}

// SetPlanType sets the "plan_type" field.
func (ac *AccountCreate) SetPlanType(at account.PlanType) *AccountCreate {
	ac.mutation.SetPlanType(at)
	return ac
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (ac *AccountCreate) SetNillablePlanType(at *account.PlanType) *AccountCreate {
	if at != nil {
		ac.SetPlanType(*at)
	}
	return ac
}

// SetTrialActive sets the "trial_active" field.
func (ac *AccountCreate) SetTrialActive(b bool) *AccountCreate {
	ac.mutation.SetTrialActive(b)
	return ac
}

// SetNillableTrialActive sets the "trial_active" field if the given value is not nil.
func (ac *AccountCreate) SetNillableTrialActive(b *bool) *AccountCreate {
	if b != nil {
		ac.SetTrialActive(*b)
	}
	return ac
}

// SetTrialStartDate sets the "trial_start_date" field.
func (ac *AccountCreate) SetTrialStartDate(t time.Time) *AccountCreate {
	ac.mutation.SetTrialStartDate(t)
	return ac
}

// SetNillableTrialStartDate sets the "trial_start_date" field if the given value is not nil.
func (ac *AccountCreate) SetNillableTrialStartDate(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetTrialStartDate(*t)
	}
	return ac
}

// SetTrialEndDate sets the "trial_end_date" field.
func (ac *AccountCreate) SetTrialEndDate(t time.Time) *AccountCreate {
	ac.mutation.SetTrialEndDate(t)
	return ac
}

// SetNillableTrialEndDate sets the "trial_end_date" field if the given value is not nil.
func (ac *AccountCreate) SetNillableTrialEndDate(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetTrialEndDate(*t)
	}
	return ac
}

// SetDailyUsage sets the "daily_usage" field.
func (ac *AccountCreate) SetDailyUsage(i int) *AccountCreate {
	ac.mutation.SetDailyUsage(i)
	return ac
}

// SetNillableDailyUsage sets the "daily_usage" field if the given value is not nil.
func (ac *AccountCreate) SetNillableDailyUsage(i *int) *AccountCreate {
	if i != nil {
		ac.SetDailyUsage(*i)
	}
	return ac
}

// SetMonthlyUsage sets the "monthly_usage" field.
func (ac *AccountCreate) SetMonthlyUsage(i int) *AccountCreate {
	ac.mutation.SetMonthlyUsage(i)
	return ac
}

// SetNillableMonthlyUsage sets the "monthly_usage" field if the given value is not nil.
func (ac *AccountCreate) SetNillableMonthlyUsage(i *int) *AccountCreate {
	if i != nil {
		ac.SetMonthlyUsage(*i)
	}
	return ac
}

// SetLastUsageDate sets the "last_usage_date" field.
func (ac *AccountCreate) SetLastUsageDate(t time.Time) *AccountCreate {
	ac.mutation.SetLastUsageDate(t)
	return ac
}

// SetNillableLastUsageDate sets the "last_usage_date" field if the given value is not nil.
func (ac *AccountCreate) SetNillableLastUsageDate(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetLastUsageDate(*t)
	}
	return ac
}

// SetLastResetDate sets the "last_reset_date" field.
func (ac *AccountCreate) SetLastResetDate(t time.Time) *AccountCreate {
	ac.mutation.SetLastResetDate(t)
	return ac
}

// SetNillableLastResetDate sets the "last_reset_date" field if the given value is not nil.
func (ac *AccountCreate) SetNillableLastResetDate(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetLastResetDate(*t)
	}
	return ac
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (ac *AccountCreate) SetStripeCustomerID(s string) *AccountCreate {
	ac.mutation.SetStripeCustomerID(s)
	return ac
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (ac *AccountCreate) SetNillableStripeCustomerID(s *string) *AccountCreate {
	if s != nil {
		ac.SetStripeCustomerID(*s)
	}
	return ac
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (ac *AccountCreate) SetStripeSubscriptionID(s string) *AccountCreate {
	ac.mutation.SetStripeSubscriptionID(s)
	return ac
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (ac *AccountCreate) SetNillableStripeSubscriptionID(s *string) *AccountCreate {
	if s != nil {
		ac.SetStripeSubscriptionID(*s)
	}
	return ac
}

// SetPendingReconciliation sets the "pending_reconciliation" field.
func (ac *AccountCreate) SetPendingReconciliation(b bool) *AccountCreate {
	ac.mutation.SetPendingReconciliation(b)
	return ac
}

// SetNillablePendingReconciliation sets the "pending_reconciliation" field if the given value is not nil.
func (ac *AccountCreate) SetNillablePendingReconciliation(b *bool) *AccountCreate {
	if b != nil {
		ac.SetPendingReconciliation(*b)
	}
	return ac
}

// SetSubscriptionEventTime sets the "subscription_event_time" field.
func (ac *AccountCreate) SetSubscriptionEventTime(t time.Time) *AccountCreate {
	ac.mutation.SetSubscriptionEventTime(t)
	return ac
}

// SetNillableSubscriptionEventTime sets the "subscription_event_time" field if the given value is not nil.
func (ac *AccountCreate) SetNillableSubscriptionEventTime(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetSubscriptionEventTime(*t)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AccountCreate) SetCreatedAt(t time.Time) *AccountCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AccountCreate) SetNillableCreatedAt(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AccountCreate) SetUpdatedAt(t time.Time) *AccountCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AccountCreate) SetNillableUpdatedAt(t *time.Time) *AccountCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// AddUsageEntryIDs adds the "usage_entries" edge to the UsageEntry entity by IDs.
func (ac *AccountCreate) AddUsageEntryIDs(ids ...int) *AccountCreate {
	ac.mutation.AddUsageEntryIDs(ids...)
	return ac
}

// AddUsageEntries adds the "usage_entries" edges to the UsageEntry entity.
func (ac *AccountCreate) AddUsageEntries(u ...*UsageEntry) *AccountCreate {
	ids := make([]int, len(u))
	for i := range u {
		ids[i] = u[i].ID
	}
	return ac.AddUsageEntryIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (ac *AccountCreate) Mutation() *AccountMutation {
	return ac.mutation
}

// Save creates the Account in the database.
func (ac *AccountCreate) Save(ctx context.Context) (*Account, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AccountCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AccountCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AccountCreate) defaults() {
	if _, ok := ac.mutation.SubscriptionStatus(); !ok {
		v := account.DefaultSubscriptionStatus
		ac.mutation.SetSubscriptionStatus(v)
	}
	if _, ok := ac.mutation.IsPremium(); !ok {
		v := account.DefaultIsPremium
		ac.mutation.SetIsPremium(v)
	}
	if _, ok := ac.mutation.TrialActive(); !ok {
		v := account.DefaultTrialActive
		ac.mutation.SetTrialActive(v)
	}
	if _, ok := ac.mutation.DailyUsage(); !ok {
		v := account.DefaultDailyUsage
		ac.mutation.SetDailyUsage(v)
	}
	if _, ok := ac.mutation.MonthlyUsage(); !ok {
		v := account.DefaultMonthlyUsage
		ac.mutation.SetMonthlyUsage(v)
	}
	if _, ok := ac.mutation.PendingReconciliation(); !ok {
		v := account.DefaultPendingReconciliation
		ac.mutation.SetPendingReconciliation(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := account.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AccountCreate) check() error {
	if _, ok := ac.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Account.email"`)}
	}
	if v, ok := ac.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Account.name"`)}
	}
	if v, ok := ac.mutation.Name(); ok {
		if err := account.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Account.name": %w`, err)}
		}
	}
	if _, ok := ac.mutation.SubscriptionStatus(); !ok {
		return &ValidationError{Name: "subscription_status", err: errors.New(`ent: missing required field "Account.subscription_status"`)}
	}
	if v, ok := ac.mutation.SubscriptionStatus(); ok {
		if err := account.SubscriptionStatusValidator(v); err != nil {
			return &ValidationError{Name: "subscription_status", err: fmt.Errorf(`ent: validator failed for field "Account.subscription_status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.IsPremium(); !ok {
		return &ValidationError{Name: "is_premium", err: errors.New(`ent: missing required field "Account.is_premium"`)}
	}
	if v, ok := ac.mutation.PlanType(); ok {
		if err := account.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "Account.plan_type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.TrialActive(); !ok {
		return &ValidationError{Name: "trial_active", err: errors.New(`ent: missing required field "Account.trial_active"`)}
	}
	if _, ok := ac.mutation.DailyUsage(); !ok {
		return &ValidationError{Name: "daily_usage", err: errors.New(`ent: missing required field "Account.daily_usage"`)}
	}
	if v, ok := ac.mutation.DailyUsage(); ok {
		if err := account.DailyUsageValidator(v); err != nil {
			return &ValidationError{Name: "daily_usage", err: fmt.Errorf(`ent: validator failed for field "Account.daily_usage": %w`, err)}
		}
	}
	if _, ok := ac.mutation.MonthlyUsage(); !ok {
		return &ValidationError{Name: "monthly_usage", err: errors.New(`ent: missing required field "Account.monthly_usage"`)}
	}
	if v, ok := ac.mutation.MonthlyUsage(); ok {
		if err := account.MonthlyUsageValidator(v); err != nil {
			return &ValidationError{Name: "monthly_usage", err: fmt.Errorf(`ent: validator failed for field "Account.monthly_usage": %w`, err)}
		}
	}
	if _, ok := ac.mutation.PendingReconciliation(); !ok {
		return &ValidationError{Name: "pending_reconciliation", err: errors.New(`ent: missing required field "Account.pending_reconciliation"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Account.updated_at"`)}
	}
	return nil
}

func (ac *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	)
	if value, ok := ac.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := ac.mutation.PasswordHash(); ok {
		_spec.SetField(account.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := ac.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ac.mutation.GoogleID(); ok {
		_spec.SetField(account.FieldGoogleID, field.TypeString, value)
		_node.GoogleID = &value
	}
	if value, ok := ac.mutation.SubscriptionStatus(); ok {
		_spec.SetField(account.FieldSubscriptionStatus, field.TypeEnum, value)
		_node.SubscriptionStatus = value
	}
	if value, ok := ac.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
		_node.IsPremium = value
	}
	if value, ok := ac.mutation.PlanType(); ok {
		_spec.SetField(account.FieldPlanType, field.TypeEnum, value)
		_node.PlanType = &value
	}
	if value, ok := ac.mutation.TrialActive(); ok {
		_spec.SetField(account.FieldTrialActive, field.TypeBool, value)
		_node.TrialActive = value
	}
	if value, ok := ac.mutation.TrialStartDate(); ok {
		_spec.SetField(account.FieldTrialStartDate, field.TypeTime, value)
		_node.TrialStartDate = &value
	}
	if value, ok := ac.mutation.TrialEndDate(); ok {
		_spec.SetField(account.FieldTrialEndDate, field.TypeTime, value)
		_node.TrialEndDate = &value
	}
	if value, ok := ac.mutation.DailyUsage(); ok {
		_spec.SetField(account.FieldDailyUsage, field.TypeInt, value)
		_node.DailyUsage = value
	}
	if value, ok := ac.mutation.MonthlyUsage(); ok {
		_spec.SetField(account.FieldMonthlyUsage, field.TypeInt, value)
		_node.MonthlyUsage = value
	}
	if value, ok := ac.mutation.LastUsageDate(); ok {
		_spec.SetField(account.FieldLastUsageDate, field.TypeTime, value)
		_node.LastUsageDate = &value
	}
	if value, ok := ac.mutation.LastResetDate(); ok {
		_spec.SetField(account.FieldLastResetDate, field.TypeTime, value)
		_node.LastResetDate = &value
	}
	if value, ok := ac.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = &value
	}
	if value, ok := ac.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(account.FieldStripeSubscriptionID, field.TypeString, value)
		_node.StripeSubscriptionID = &value
	}
	if value, ok := ac.mutation.PendingReconciliation(); ok {
		_spec.SetField(account.FieldPendingReconciliation, field.TypeBool, value)
		_node.PendingReconciliation = value
	}
	if value, ok := ac.mutation.SubscriptionEventTime(); ok {
		_spec.SetField(account.FieldSubscriptionEventTime, field.TypeTime, value)
		_node.SubscriptionEventTime = &value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ac.mutation.UsageEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
}

// Save creates the Account entities in the database.
func (acb *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Account, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
