// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// PartoDiagnosticoDelete is the builder for deleting a PartoDiagnostico entity.
type PartoDiagnosticoDelete struct {
	config
	hooks    []Hook
	mutation *PartoDiagnosticoMutation
}

// Where appends a list predicates to the PartoDiagnosticoDelete builder.
func (_d *PartoDiagnosticoDelete) Where(ps ...predicate.PartoDiagnostico) *PartoDiagnosticoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PartoDiagnosticoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PartoDiagnosticoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PartoDiagnosticoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(partodiagnostico.Table, sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID))
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

// PartoDiagnosticoDeleteOne is the builder for deleting a single PartoDiagnostico entity.
type PartoDiagnosticoDeleteOne struct {
	_d *PartoDiagnosticoDelete
}

// Where appends a list predicates to the PartoDiagnosticoDelete builder.
func (_d *PartoDiagnosticoDeleteOne) Where(ps ...predicate.PartoDiagnostico) *PartoDiagnosticoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PartoDiagnosticoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{partodiagnostico.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PartoDiagnosticoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
