// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// DiagnosticoCIE10Delete is the builder for deleting a DiagnosticoCIE10 entity.
type DiagnosticoCIE10Delete struct {
	config
	hooks    []Hook
	mutation *DiagnosticoCIE10Mutation
}

// Where appends a list predicates to the DiagnosticoCIE10Delete builder.
func (_d *DiagnosticoCIE10Delete) Where(ps ...predicate.DiagnosticoCIE10) *DiagnosticoCIE10Delete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiagnosticoCIE10Delete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticoCIE10Delete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiagnosticoCIE10Delete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(diagnosticocie10.Table, sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DiagnosticoCIE10DeleteOne is the builder for deleting a single DiagnosticoCIE10 entity.
type DiagnosticoCIE10DeleteOne struct {
	_d *DiagnosticoCIE10Delete
}

// Where appends a list predicates to the DiagnosticoCIE10Delete builder.
func (_d *DiagnosticoCIE10DeleteOne) Where(ps ...predicate.DiagnosticoCIE10) *DiagnosticoCIE10DeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiagnosticoCIE10DeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{diagnosticocie10.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticoCIE10DeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
