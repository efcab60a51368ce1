// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// PartoDiagnosticoUpdate is the builder for updating PartoDiagnostico entities.
type PartoDiagnosticoUpdate struct {
	config
	hooks    []Hook
	mutation *PartoDiagnosticoMutation
}

// Where appends a list predicates to the PartoDiagnosticoUpdate builder.
func (_u *PartoDiagnosticoUpdate) Where(ps ...predicate.PartoDiagnostico) *PartoDiagnosticoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPartoID sets the "parto_id" field.
func (_u *PartoDiagnosticoUpdate) SetPartoID(v uuid.UUID) *PartoDiagnosticoUpdate {
	_u.mutation.SetPartoID(v)
	return _u
}

// SetNillablePartoID sets the "parto_id" field if the given value is not nil.
func (_u *PartoDiagnosticoUpdate) SetNillablePartoID(v *uuid.UUID) *PartoDiagnosticoUpdate {
	if v != nil {
		_u.SetPartoID(*v)
	}
	return _u
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (_u *PartoDiagnosticoUpdate) SetDiagnosticoID(v uuid.UUID) *PartoDiagnosticoUpdate {
	_u.mutation.SetDiagnosticoID(v)
	return _u
}

// SetNillableDiagnosticoID sets the "diagnostico_id" field if the given value is not nil.
func (_u *PartoDiagnosticoUpdate) SetNillableDiagnosticoID(v *uuid.UUID) *PartoDiagnosticoUpdate {
	if v != nil {
		_u.SetDiagnosticoID(*v)
	}
	return _u
}

// SetParto sets the "parto" edge to the Parto entity.
func (_u *PartoDiagnosticoUpdate) SetParto(v *Parto) *PartoDiagnosticoUpdate {
	return _u.SetPartoID(v.ID)
}

// SetDiagnostico sets the "diagnostico" edge to the DiagnosticoCIE10 entity.
func (_u *PartoDiagnosticoUpdate) SetDiagnostico(v *DiagnosticoCIE10) *PartoDiagnosticoUpdate {
	return _u.SetDiagnosticoID(v.ID)
}

// Mutation returns the PartoDiagnosticoMutation object of the builder.
func (_u *PartoDiagnosticoUpdate) Mutation() *PartoDiagnosticoMutation {
	return _u.mutation
}

// ClearParto clears the "parto" edge to the Parto entity.
func (_u *PartoDiagnosticoUpdate) ClearParto() *PartoDiagnosticoUpdate {
	_u.mutation.ClearParto()
	return _u
}

// ClearDiagnostico clears the "diagnostico" edge to the DiagnosticoCIE10 entity.
func (_u *PartoDiagnosticoUpdate) ClearDiagnostico() *PartoDiagnosticoUpdate {
	_u.mutation.ClearDiagnostico()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartoDiagnosticoUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartoDiagnosticoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartoDiagnosticoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartoDiagnosticoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartoDiagnosticoUpdate) check() error {
	if _u.mutation.PartoCleared() && len(_u.mutation.PartoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PartoDiagnostico.parto"`)
	}
	if _u.mutation.DiagnosticoCleared() && len(_u.mutation.DiagnosticoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PartoDiagnostico.diagnostico"`)
	}
	return nil
}

func (_u *PartoDiagnosticoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partodiagnostico.Table, partodiagnostico.Columns, sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PartoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.PartoTable,
			Columns: []string{partodiagnostico.PartoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.PartoTable,
			Columns: []string{partodiagnostico.PartoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiagnosticoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.DiagnosticoTable,
			Columns: []string{partodiagnostico.DiagnosticoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagnosticoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.DiagnosticoTable,
			Columns: []string{partodiagnostico.DiagnosticoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partodiagnostico.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartoDiagnosticoUpdateOne is the builder for updating a single PartoDiagnostico entity.
type PartoDiagnosticoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartoDiagnosticoMutation
}

// SetPartoID sets the "parto_id" field.
func (_u *PartoDiagnosticoUpdateOne) SetPartoID(v uuid.UUID) *PartoDiagnosticoUpdateOne {
	_u.mutation.SetPartoID(v)
	return _u
}

// SetNillablePartoID sets the "parto_id" field if the given value is not nil.
func (_u *PartoDiagnosticoUpdateOne) SetNillablePartoID(v *uuid.UUID) *PartoDiagnosticoUpdateOne {
	if v != nil {
		_u.SetPartoID(*v)
	}
	return _u
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (_u *PartoDiagnosticoUpdateOne) SetDiagnosticoID(v uuid.UUID) *PartoDiagnosticoUpdateOne {
	_u.mutation.SetDiagnosticoID(v)
	return _u
}

// SetNillableDiagnosticoID sets the "diagnostico_id" field if the given value is not nil.
func (_u *PartoDiagnosticoUpdateOne) SetNillableDiagnosticoID(v *uuid.UUID) *PartoDiagnosticoUpdateOne {
	if v != nil {
		_u.SetDiagnosticoID(*v)
	}
	return _u
}

// SetParto sets the "parto" edge to the Parto entity.
func (_u *PartoDiagnosticoUpdateOne) SetParto(v *Parto) *PartoDiagnosticoUpdateOne {
	return _u.SetPartoID(v.ID)
}

// SetDiagnostico sets the "diagnostico" edge to the DiagnosticoCIE10 entity.
func (_u *PartoDiagnosticoUpdateOne) SetDiagnostico(v *DiagnosticoCIE10) *PartoDiagnosticoUpdateOne {
	return _u.SetDiagnosticoID(v.ID)
}

// Mutation returns the PartoDiagnosticoMutation object of the builder.
func (_u *PartoDiagnosticoUpdateOne) Mutation() *PartoDiagnosticoMutation {
	return _u.mutation
}

// ClearParto clears the "parto" edge to the Parto entity.
func (_u *PartoDiagnosticoUpdateOne) ClearParto() *PartoDiagnosticoUpdateOne {
	_u.mutation.ClearParto()
	return _u
}

// ClearDiagnostico clears the "diagnostico" edge to the DiagnosticoCIE10 entity.
func (_u *PartoDiagnosticoUpdateOne) ClearDiagnostico() *PartoDiagnosticoUpdateOne {
	_u.mutation.ClearDiagnostico()
	return _u
}

// Where appends a list predicates to the PartoDiagnosticoUpdate builder.
func (_u *PartoDiagnosticoUpdateOne) Where(ps ...predicate.PartoDiagnostico) *PartoDiagnosticoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartoDiagnosticoUpdateOne) Select(field string, fields ...string) *PartoDiagnosticoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PartoDiagnostico entity.
func (_u *PartoDiagnosticoUpdateOne) Save(ctx context.Context) (*PartoDiagnostico, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartoDiagnosticoUpdateOne) SaveX(ctx context.Context) *PartoDiagnostico {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartoDiagnosticoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartoDiagnosticoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartoDiagnosticoUpdateOne) check() error {
	if _u.mutation.PartoCleared() && len(_u.mutation.PartoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PartoDiagnostico.parto"`)
	}
	if _u.mutation.DiagnosticoCleared() && len(_u.mutation.DiagnosticoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PartoDiagnostico.diagnostico"`)
	}
	return nil
}

func (_u *PartoDiagnosticoUpdateOne) sqlSave(ctx context.Context) (_node *PartoDiagnostico, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partodiagnostico.Table, partodiagnostico.Columns, sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PartoDiagnostico.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partodiagnostico.FieldID)
		for _, f := range fields {
			if !partodiagnostico.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != partodiagnostico.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PartoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.PartoTable,
			Columns: []string{partodiagnostico.PartoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.PartoTable,
			Columns: []string{partodiagnostico.PartoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DiagnosticoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.DiagnosticoTable,
			Columns: []string{partodiagnostico.DiagnosticoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagnosticoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   partodiagnostico.DiagnosticoTable,
			Columns: []string{partodiagnostico.DiagnosticoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PartoDiagnostico{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partodiagnostico.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
