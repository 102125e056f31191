// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/replyflow/replyflow-api/ent/account"
	"github.com/replyflow/replyflow-api/ent/predicate"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// UsageEntryUpdate is the builder for updating UsageEntry entities.
type UsageEntryUpdate struct {
	config
	hooks    []Hook
	mutation *UsageEntryMutation
}

// Where appends a list predicates to the UsageEntryUpdate builder.
func (ueu *UsageEntryUpdate) Where(ps ...predicate.UsageEntry) *UsageEntryUpdate {
	ueu.mutation.Where(ps...)
	return ueu
}

// SetAccountID sets the "account_id" field.
func (ueu *UsageEntryUpdate) SetAccountID(i int) *UsageEntryUpdate {
	ueu.mutation.SetAccountID(i)
	return ueu
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (ueu *UsageEntryUpdate) SetNillableAccountID(i *int) *UsageEntryUpdate {
	if i != nil {
		ueu.SetAccountID(*i)
	}
	return ueu
}

// SetAction sets the "action" field.
func (ueu *UsageEntryUpdate) SetAction(u usageentry.Action) *UsageEntryUpdate {
	ueu.mutation.SetAction(u)
	return ueu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (ueu *UsageEntryUpdate) SetNillableAction(u *usageentry.Action) *UsageEntryUpdate {
	if u != nil {
		ueu.SetAction(*u)
	}
	return ueu
}

// SetAccount sets the "account" edge to the Account entity.
func (ueu *UsageEntryUpdate) SetAccount(a *Account) *UsageEntryUpdate {
	return ueu.SetAccountID(a.ID)
}

// Mutation returns the UsageEntryMutation object of the builder.
func (ueu *UsageEntryUpdate) Mutation() *UsageEntryMutation {
	return ueu.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (ueu *UsageEntryUpdate) ClearAccount() *UsageEntryUpdate {
	ueu.mutation.ClearAccount()
	return ueu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ueu *UsageEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ueu.sqlSave, ueu.mutation, ueu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ueu *UsageEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := ueu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ueu *UsageEntryUpdate) Exec(ctx context.Context) error {
	_, err := ueu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ueu *UsageEntryUpdate) ExecX(ctx context.Context) {
	if err := ueu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ueu *UsageEntryUpdate) check() error {
	if v, ok := ueu.mutation.Action(); ok {
		if err := usageentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "UsageEntry.action": %w`, err)}
		}
	}
	if ueu.mutation.AccountCleared() && len(ueu.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageEntry.account"`)
	}
	return nil
}

func (ueu *UsageEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ueu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageentry.Table, usageentry.Columns, sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt))
	if ps := ueu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ueu.mutation.Action(); ok {
		_spec.SetField(usageentry.FieldAction, field.TypeEnum, value)
	}
	if ueu.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageentry.AccountTable,
			Columns: []string{usageentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ueu.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageentry.AccountTable,
			Columns: []string{usageentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ueu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ueu.mutation.done = true
	return n, nil
}

// UsageEntryUpdateOne is the builder for updating a single UsageEntry entity.
type UsageEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageEntryMutation
}

// SetAccountID sets the "account_id" field.
func (ueuo *UsageEntryUpdateOne) SetAccountID(i int) *UsageEntryUpdateOne {
	ueuo.mutation.SetAccountID(i)
	return ueuo
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (ueuo *UsageEntryUpdateOne) SetNillableAccountID(i *int) *UsageEntryUpdateOne {
	if i != nil {
		ueuo.SetAccountID(*i)
	}
	return ueuo
}

// SetAction sets the "action" field.
func (ueuo *UsageEntryUpdateOne) SetAction(u usageentry.Action) *UsageEntryUpdateOne {
	ueuo.mutation.SetAction(u)
	return ueuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (ueuo *UsageEntryUpdateOne) SetNillableAction(u *usageentry.Action) *UsageEntryUpdateOne {
	if u != nil {
		ueuo.SetAction(*u)
	}
	return ueuo
}

// SetAccount sets the "account" edge to the Account entity.
func (ueuo *UsageEntryUpdateOne) SetAccount(a *Account) *UsageEntryUpdateOne {
	return ueuo.SetAccountID(a.ID)
}

// Mutation returns the UsageEntryMutation object of the builder.
func (ueuo *UsageEntryUpdateOne) Mutation() *UsageEntryMutation {
	return ueuo.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (ueuo *UsageEntryUpdateOne) ClearAccount() *UsageEntryUpdateOne {
	ueuo.mutation.ClearAccount()
	return ueuo
}

// Where appends a list predicates to the UsageEntryUpdate builder.
func (ueuo *UsageEntryUpdateOne) Where(ps ...predicate.UsageEntry) *UsageEntryUpdateOne {
	ueuo.mutation.Where(ps...)
	return ueuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ueuo *UsageEntryUpdateOne) Select(field string, fields ...string) *UsageEntryUpdateOne {
	ueuo.fields = append([]string{field}, fields...)
	return ueuo
}

// Save executes the query and returns the updated UsageEntry entity.
func (ueuo *UsageEntryUpdateOne) Save(ctx context.Context) (*UsageEntry, error) {
	return withHooks(ctx, ueuo.sqlSave, ueuo.mutation, ueuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ueuo *UsageEntryUpdateOne) SaveX(ctx context.Context) *UsageEntry {
	node, err := ueuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ueuo *UsageEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := ueuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ueuo *UsageEntryUpdateOne) ExecX(ctx context.Context) {
	if err := ueuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ueuo *UsageEntryUpdateOne) check() error {
	if v, ok := ueuo.mutation.Action(); ok {
		if err := usageentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "UsageEntry.action": %w`, err)}
		}
	}
	if ueuo.mutation.AccountCleared() && len(ueuo.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageEntry.account"`)
	}
	return nil
}

func (ueuo *UsageEntryUpdateOne) sqlSave(ctx context.Context) (_node *UsageEntry, err error) {
	if err := ueuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageentry.Table, usageentry.Columns, sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt))
	id, ok := ueuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ueuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageentry.FieldID)
		for _, f := range fields {
			if !usageentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ueuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ueuo.mutation.Action(); ok {
		_spec.SetField(usageentry.FieldAction, field.TypeEnum, value)
	}
	if ueuo.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageentry.AccountTable,
			Columns: []string{usageentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ueuo.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageentry.AccountTable,
			Columns: []string{usageentry.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UsageEntry{config: ueuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ueuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ueuo.mutation.done = true
	return _node, nil
}
