// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// DefuncionDelete is the builder for deleting a Defuncion entity.
type DefuncionDelete struct {
	config
	hooks    []Hook
	mutation *DefuncionMutation
}

// Where appends a list predicates to the DefuncionDelete builder.
func (_d *DefuncionDelete) Where(ps ...predicate.Defuncion) *DefuncionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DefuncionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DefuncionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DefuncionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(defuncion.Table, sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID))
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

// DefuncionDeleteOne is the builder for deleting a single Defuncion entity.
type DefuncionDeleteOne struct {
	_d *DefuncionDelete
}

// Where appends a list predicates to the DefuncionDelete builder.
func (_d *DefuncionDeleteOne) Where(ps ...predicate.Defuncion) *DefuncionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DefuncionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{defuncion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DefuncionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
