// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/replyflow/replyflow-api/ent/predicate"
	"github.com/replyflow/replyflow-api/ent/usageentry"
)

// UsageEntryDelete is the builder for deleting a UsageEntry entity.
type UsageEntryDelete struct {
	config
	hooks    []Hook
	mutation *UsageEntryMutation
}

// Where appends a list predicates to the UsageEntryDelete builder.
func (ued *UsageEntryDelete) Where(ps ...predicate.UsageEntry) *UsageEntryDelete {
	ued.mutation.Where(ps...)
	return ued
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ued *UsageEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ued.sqlExec, ued.mutation, ued.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ued *UsageEntryDelete) ExecX(ctx context.Context) int {
	n, err := ued.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ued *UsageEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(usageentry.Table, sqlgraph.NewFieldSpec(usageentry.FieldID, field.TypeInt))
	if ps := ued.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ued.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ued.mutation.done = true
	return affected, err
}

// UsageEntryDeleteOne is the builder for deleting a single UsageEntry entity.
type UsageEntryDeleteOne struct {
	ued *UsageEntryDelete
}

// Where appends a list predicates to the UsageEntryDelete builder.
func (uedo *UsageEntryDeleteOne) Where(ps ...predicate.UsageEntry) *UsageEntryDeleteOne {
	uedo.ued.mutation.Where(ps...)
	return uedo
}

// Exec executes the deletion query.
func (uedo *UsageEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := uedo.ued.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{usageentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (uedo *UsageEntryDeleteOne) ExecX(ctx context.Context) {
	if err := uedo.Exec(ctx); err != nil {
		panic(err)
	}
}
