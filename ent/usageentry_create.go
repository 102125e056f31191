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

// UsageEntryCreate is the builder for creating a UsageEntry entity.
type UsageEntryCreate struct {
	config
	mutation *UsageEntryMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (uec *UsageEntryCreate) SetAccountID(i int) *UsageEntryCreate {
	uec.mutation.SetAccountID(i)
	return uec
}

// SetAction sets the "action" field.
func (uec *UsageEntryCreate) SetAction(u usageentry.Action) *UsageEntryCreate {
	uec.mutation.SetAction(u)
	return uec
}

// SetCreatedAt sets the "created_at" field.
func (uec *UsageEntryCreate) SetCreatedAt(t time.Time) *UsageEntryCreate {
	uec.mutation.SetCreatedAt(t)
	return uec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (uec *UsageEntryCreate) SetNillableCreatedAt(t *time.Time) *UsageEntryCreate {
	if t != nil {
		uec.SetCreatedAt(*t)
	}
	return uec
}

// SetAccount sets the "account" edge to the Account entity.
func (uec *UsageEntryCreate) SetAccount(a *Account) *UsageEntryCreate {
	return uec.SetAccountID(a.ID)
}

// Mutation returns the UsageEntryMutation object of the builder.
func (uec *UsageEntryCreate) Mutation() *UsageEntryMutation {
	return uec.mutation
}

// Save creates the UsageEntry in the database.
func (uec *UsageEntryCreate) Save(ctx context.Context) (*UsageEntry, error) {
	uec.defaults()
	return withHooks(ctx, uec.sqlSave, uec.mutation, uec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uec *UsageEntryCreate) SaveX(ctx context.Context) *UsageEntry {
	v, err := uec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uec *UsageEntryCreate) Exec(ctx context.Context) error {
	_, err := uec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uec *UsageEntryCreate) ExecX(ctx context.Context) {
	if err := uec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uec *UsageEntryCreate) defaults() {
	if _, ok := uec.mutation.CreatedAt(); !ok {
		v := usageentry.DefaultCreatedAt()
		uec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uec *UsageEntryCreate) check() error {
	if _, ok := uec.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "UsageEntry.account_id"`)}
	}
	if _, ok := uec.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "UsageEntry.action"`)}
	}
	if v, ok := uec.mutation.Action(); ok {
		if err := usageentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "UsageEntry.action": %w`, err)}
		}
	}
	if _, ok := uec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageEntry.created_at"`)}
	}
	if len(uec.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "UsageEntry.account"`)}
	}
	return nil
}

func (uec *UsageEntryCreate) sqlSave(ctx context.Context) (*UsageEntry, error) {
	if err := uec.check(); err != nil {
		return nil, err
	}
	_node, _spec := uec.createSpec()
	if err := sqlgraph.CreateNode(ctx, uec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	uec.mutation.id = &_node.ID
	uec.mutation.done = true
	return _node, nil
}

func (uec *UsageEntryCreate) createSpec() (*UsageEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageEntry{config: uec.config}
		_spec = sqlgraph.NewCreateSpec(usageentry.Table, sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt))
	)
	if value, ok := uec.mutation.Action(); ok {
		_spec.SetField(usageentry.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := uec.mutation.CreatedAt(); ok {
		_spec.SetField(usageentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := uec.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UsageEntryCreateBulk is the builder for creating many UsageEntry entities in bulk.
type UsageEntryCreateBulk struct {
	config
	err      error
	builders []*UsageEntryCreate
}

// Save creates the UsageEntry entities in the database.
func (uecb *UsageEntryCreateBulk) Save(ctx context.Context) ([]*UsageEntry, error) {
	if uecb.err != nil {
		return nil, uecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(uecb.builders))
	nodes := make([]*UsageEntry, len(uecb.builders))
	mutators := make([]Mutator, len(uecb.builders))
	for i := range uecb.builders {
		func(i int, root context.Context) {
			builder := uecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageEntryMutation)
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
					_, err = mutators[i+1].Mutate(root, uecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, uecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, uecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uecb *UsageEntryCreateBulk) SaveX(ctx context.Context) []*UsageEntry {
	v, err := uecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uecb *UsageEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := uecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uecb *UsageEntryCreateBulk) ExecX(ctx context.Context) {
	if err := uecb.Exec(ctx); err != nil {
		panic(err)
	}
}
