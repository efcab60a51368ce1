// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// LogAuditoriaDelete is the builder for deleting a LogAuditoria entity.
type LogAuditoriaDelete struct {
	config
	hooks    []Hook
	mutation *LogAuditoriaMutation
}

// Where appends a list predicates to the LogAuditoriaDelete builder.
func (_d *LogAuditoriaDelete) Where(ps ...predicate.LogAuditoria) *LogAuditoriaDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LogAuditoriaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LogAuditoriaDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LogAuditoriaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(logauditoria.Table, sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID))
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

// LogAuditoriaDeleteOne is the builder for deleting a single LogAuditoria entity.
type LogAuditoriaDeleteOne struct {
	_d *LogAuditoriaDelete
}

// Where appends a list predicates to the LogAuditoriaDelete builder.
func (_d *LogAuditoriaDeleteOne) Where(ps ...predicate.LogAuditoria) *LogAuditoriaDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LogAuditoriaDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{logauditoria.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LogAuditoriaDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
