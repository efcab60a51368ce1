// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// DocumentoReferenciaDelete is the builder for deleting a DocumentoReferencia entity.
type DocumentoReferenciaDelete struct {
	config
	hooks    []Hook
	mutation *DocumentoReferenciaMutation
}

// Where appends a list predicates to the DocumentoReferenciaDelete builder.
func (_d *DocumentoReferenciaDelete) Where(ps ...predicate.DocumentoReferencia) *DocumentoReferenciaDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocumentoReferenciaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentoReferenciaDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocumentoReferenciaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(documentoreferencia.Table, sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID))
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

// DocumentoReferenciaDeleteOne is the builder for deleting a single DocumentoReferencia entity.
type DocumentoReferenciaDeleteOne struct {
	_d *DocumentoReferenciaDelete
}

// Where appends a list predicates to the DocumentoReferenciaDelete builder.
func (_d *DocumentoReferenciaDeleteOne) Where(ps ...predicate.DocumentoReferencia) *DocumentoReferenciaDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocumentoReferenciaDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentoreferencia.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentoReferenciaDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
