// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// DiagnosticoCIE10Update is the builder for updating DiagnosticoCIE10 entities.
type DiagnosticoCIE10Update struct {
	config
	hooks    []Hook
	mutation *DiagnosticoCIE10Mutation
}

// Where appends a list predicates to the DiagnosticoCIE10Update builder.
func (_u *DiagnosticoCIE10Update) Where(ps ...predicate.DiagnosticoCIE10) *DiagnosticoCIE10Update {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiagnosticoCIE10Update) SetUpdatedAt(v time.Time) *DiagnosticoCIE10Update {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCodigo sets the "codigo" field.
func (_u *DiagnosticoCIE10Update) SetCodigo(v string) *DiagnosticoCIE10Update {
	_u.mutation.SetCodigo(v)
	return _u
}

// SetNillableCodigo sets the "codigo" field if the given value is not nil.
func (_u *DiagnosticoCIE10Update) SetNillableCodigo(v *string) *DiagnosticoCIE10Update {
	if v != nil {
		_u.SetCodigo(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *DiagnosticoCIE10Update) SetDescripcion(v string) *DiagnosticoCIE10Update {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *DiagnosticoCIE10Update) SetNillableDescripcion(v *string) *DiagnosticoCIE10Update {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (_u *DiagnosticoCIE10Update) AddPartoDiagnosticoIDs(ids ...uuid.UUID) *DiagnosticoCIE10Update {
	_u.mutation.AddPartoDiagnosticoIDs(ids...)
	return _u
}

// AddPartoDiagnosticos adds the "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *DiagnosticoCIE10Update) AddPartoDiagnosticos(v ...*PartoDiagnostico) *DiagnosticoCIE10Update {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartoDiagnosticoIDs(ids...)
}

// AddDefuncioneIDs adds the "defunciones" edge to the Defuncion entity by IDs.
func (_u *DiagnosticoCIE10Update) AddDefuncioneIDs(ids ...uuid.UUID) *DiagnosticoCIE10Update {
	_u.mutation.AddDefuncioneIDs(ids...)
	return _u
}

// AddDefunciones adds the "defunciones" edges to the Defuncion entity.
func (_u *DiagnosticoCIE10Update) AddDefunciones(v ...*Defuncion) *DiagnosticoCIE10Update {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDefuncioneIDs(ids...)
}

// Mutation returns the DiagnosticoCIE10Mutation object of the builder.
func (_u *DiagnosticoCIE10Update) Mutation() *DiagnosticoCIE10Mutation {
	return _u.mutation
}

// ClearPartoDiagnosticos clears all "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *DiagnosticoCIE10Update) ClearPartoDiagnosticos() *DiagnosticoCIE10Update {
	_u.mutation.ClearPartoDiagnosticos()
	return _u
}

// RemovePartoDiagnosticoIDs removes the "parto_diagnosticos" edge to PartoDiagnostico entities by IDs.
func (_u *DiagnosticoCIE10Update) RemovePartoDiagnosticoIDs(ids ...uuid.UUID) *DiagnosticoCIE10Update {
	_u.mutation.RemovePartoDiagnosticoIDs(ids...)
	return _u
}

// RemovePartoDiagnosticos removes "parto_diagnosticos" edges to PartoDiagnostico entities.
func (_u *DiagnosticoCIE10Update) RemovePartoDiagnosticos(v ...*PartoDiagnostico) *DiagnosticoCIE10Update {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartoDiagnosticoIDs(ids...)
}

// ClearDefunciones clears all "defunciones" edges to the Defuncion entity.
func (_u *DiagnosticoCIE10Update) ClearDefunciones() *DiagnosticoCIE10Update {
	_u.mutation.ClearDefunciones()
	return _u
}

// RemoveDefuncioneIDs removes the "defunciones" edge to Defuncion entities by IDs.
func (_u *DiagnosticoCIE10Update) RemoveDefuncioneIDs(ids ...uuid.UUID) *DiagnosticoCIE10Update {
	_u.mutation.RemoveDefuncioneIDs(ids...)
	return _u
}

// RemoveDefunciones removes "defunciones" edges to Defuncion entities.
func (_u *DiagnosticoCIE10Update) RemoveDefunciones(v ...*Defuncion) *DiagnosticoCIE10Update {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDefuncioneIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosticoCIE10Update) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticoCIE10Update) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosticoCIE10Update) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticoCIE10Update) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiagnosticoCIE10Update) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diagnosticocie10.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticoCIE10Update) check() error {
	if v, ok := _u.mutation.Codigo(); ok {
		if err := diagnosticocie10.CodigoValidator(v); err != nil {
			return &ValidationError{Name: "codigo", err: fmt.Errorf(`repo: validator failed for field "DiagnosticoCIE10.codigo": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosticoCIE10Update) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticocie10.Table, diagnosticocie10.Columns, sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diagnosticocie10.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Codigo(); ok {
		_spec.SetField(diagnosticocie10.FieldCodigo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(diagnosticocie10.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.PartoDiagnosticosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.PartoDiagnosticosTable,
			Columns: []string{diagnosticocie10.PartoDiagnosticosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartoDiagnosticosIDs(); len(nodes) > 0 && !_u.mutation.PartoDiagnosticosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.PartoDiagnosticosTable,
			Columns: []string{diagnosticocie10.PartoDiagnosticosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoDiagnosticosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.PartoDiagnosticosTable,
			Columns: []string{diagnosticocie10.PartoDiagnosticosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefuncionesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.DefuncionesTable,
			Columns: []string{diagnosticocie10.DefuncionesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDefuncionesIDs(); len(nodes) > 0 && !_u.mutation.DefuncionesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.DefuncionesTable,
			Columns: []string{diagnosticocie10.DefuncionesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.DefuncionesTable,
			Columns: []string{diagnosticocie10.DefuncionesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticocie10.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosticoCIE10UpdateOne is the builder for updating a single DiagnosticoCIE10 entity.
type DiagnosticoCIE10UpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosticoCIE10Mutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiagnosticoCIE10UpdateOne) SetUpdatedAt(v time.Time) *DiagnosticoCIE10UpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCodigo sets the "codigo" field.
func (_u *DiagnosticoCIE10UpdateOne) SetCodigo(v string) *DiagnosticoCIE10UpdateOne {
	_u.mutation.SetCodigo(v)
	return _u
}

// SetNillableCodigo sets the "codigo" field if the given value is not nil.
func (_u *DiagnosticoCIE10UpdateOne) SetNillableCodigo(v *string) *DiagnosticoCIE10UpdateOne {
	if v != nil {
		_u.SetCodigo(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *DiagnosticoCIE10UpdateOne) SetDescripcion(v string) *DiagnosticoCIE10UpdateOne {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *DiagnosticoCIE10UpdateOne) SetNillableDescripcion(v *string) *DiagnosticoCIE10UpdateOne {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (_u *DiagnosticoCIE10UpdateOne) AddPartoDiagnosticoIDs(ids ...uuid.UUID) *DiagnosticoCIE10UpdateOne {
	_u.mutation.AddPartoDiagnosticoIDs(ids...)
	return _u
}

// AddPartoDiagnosticos adds the "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *DiagnosticoCIE10UpdateOne) AddPartoDiagnosticos(v ...*PartoDiagnostico) *DiagnosticoCIE10UpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartoDiagnosticoIDs(ids...)
}

// AddDefuncioneIDs adds the "defunciones" edge to the Defuncion entity by IDs.
func (_u *DiagnosticoCIE10UpdateOne) AddDefuncioneIDs(ids ...uuid.UUID) *DiagnosticoCIE10UpdateOne {
	_u.mutation.AddDefuncioneIDs(ids...)
	return _u
}

// AddDefunciones adds the "defunciones" edges to the Defuncion entity.
func (_u *DiagnosticoCIE10UpdateOne) AddDefunciones(v ...*Defuncion) *DiagnosticoCIE10UpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDefuncioneIDs(ids...)
}

// Mutation returns the DiagnosticoCIE10Mutation object of the builder.
func (_u *DiagnosticoCIE10UpdateOne) Mutation() *DiagnosticoCIE10Mutation {
	return _u.mutation
}

// ClearPartoDiagnosticos clears all "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *DiagnosticoCIE10UpdateOne) ClearPartoDiagnosticos() *DiagnosticoCIE10UpdateOne {
	_u.mutation.ClearPartoDiagnosticos()
	return _u
}

// RemovePartoDiagnosticoIDs removes the "parto_diagnosticos" edge to PartoDiagnostico entities by IDs.
func (_u *DiagnosticoCIE10UpdateOne) RemovePartoDiagnosticoIDs(ids ...uuid.UUID) *DiagnosticoCIE10UpdateOne {
	_u.mutation.RemovePartoDiagnosticoIDs(ids...)
	return _u
}

// RemovePartoDiagnosticos removes "parto_diagnosticos" edges to PartoDiagnostico entities.
func (_u *DiagnosticoCIE10UpdateOne) RemovePartoDiagnosticos(v ...*PartoDiagnostico) *DiagnosticoCIE10UpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartoDiagnosticoIDs(ids...)
}

// ClearDefunciones clears all "defunciones" edges to the Defuncion entity.
func (_u *DiagnosticoCIE10UpdateOne) ClearDefunciones() *DiagnosticoCIE10UpdateOne {
	_u.mutation.ClearDefunciones()
	return _u
}

// RemoveDefuncioneIDs removes the "defunciones" edge to Defuncion entities by IDs.
func (_u *DiagnosticoCIE10UpdateOne) RemoveDefuncioneIDs(ids ...uuid.UUID) *DiagnosticoCIE10UpdateOne {
	_u.mutation.RemoveDefuncioneIDs(ids...)
	return _u
}

// RemoveDefunciones removes "defunciones" edges to Defuncion entities.
func (_u *DiagnosticoCIE10UpdateOne) RemoveDefunciones(v ...*Defuncion) *DiagnosticoCIE10UpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDefuncioneIDs(ids...)
}

// Where appends a list predicates to the DiagnosticoCIE10Update builder.
func (_u *DiagnosticoCIE10UpdateOne) Where(ps ...predicate.DiagnosticoCIE10) *DiagnosticoCIE10UpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosticoCIE10UpdateOne) Select(field string, fields ...string) *DiagnosticoCIE10UpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosticoCIE10 entity.
func (_u *DiagnosticoCIE10UpdateOne) Save(ctx context.Context) (*DiagnosticoCIE10, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticoCIE10UpdateOne) SaveX(ctx context.Context) *DiagnosticoCIE10 {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosticoCIE10UpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticoCIE10UpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiagnosticoCIE10UpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diagnosticocie10.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticoCIE10UpdateOne) check() error {
	if v, ok := _u.mutation.Codigo(); ok {
		if err := diagnosticocie10.CodigoValidator(v); err != nil {
			return &ValidationError{Name: "codigo", err: fmt.Errorf(`repo: validator failed for field "DiagnosticoCIE10.codigo": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosticoCIE10UpdateOne) sqlSave(ctx context.Context) (_node *DiagnosticoCIE10, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticocie10.Table, diagnosticocie10.Columns, sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DiagnosticoCIE10.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosticocie10.FieldID)
		for _, f := range fields {
			if !diagnosticocie10.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != diagnosticocie10.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diagnosticocie10.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Codigo(); ok {
		_spec.SetField(diagnosticocie10.FieldCodigo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(diagnosticocie10.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.PartoDiagnosticosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.PartoDiagnosticosTable,
			Columns: []string{diagnosticocie10.PartoDiagnosticosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartoDiagnosticosIDs(); len(nodes) > 0 && !_u.mutation.PartoDiagnosticosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.PartoDiagnosticosTable,
			Columns: []string{diagnosticocie10.PartoDiagnosticosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoDiagnosticosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.PartoDiagnosticosTable,
			Columns: []string{diagnosticocie10.PartoDiagnosticosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefuncionesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.DefuncionesTable,
			Columns: []string{diagnosticocie10.DefuncionesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDefuncionesIDs(); len(nodes) > 0 && !_u.mutation.DefuncionesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.DefuncionesTable,
			Columns: []string{diagnosticocie10.DefuncionesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   diagnosticocie10.DefuncionesTable,
			Columns: []string{diagnosticocie10.DefuncionesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DiagnosticoCIE10{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticocie10.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
