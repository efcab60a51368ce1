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
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DefuncionUpdate is the builder for updating Defuncion entities.
type DefuncionUpdate struct {
	config
	hooks    []Hook
	mutation *DefuncionMutation
}

// Where appends a list predicates to the DefuncionUpdate builder.
func (_u *DefuncionUpdate) Where(ps ...predicate.Defuncion) *DefuncionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DefuncionUpdate) SetUpdatedAt(v time.Time) *DefuncionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMadreID sets the "madre_id" field.
func (_u *DefuncionUpdate) SetMadreID(v uuid.UUID) *DefuncionUpdate {
	_u.mutation.SetMadreID(v)
	return _u
}

// SetNillableMadreID sets the "madre_id" field if the given value is not nil.
func (_u *DefuncionUpdate) SetNillableMadreID(v *uuid.UUID) *DefuncionUpdate {
	if v != nil {
		_u.SetMadreID(*v)
	}
	return _u
}

// ClearMadreID clears the value of the "madre_id" field.
func (_u *DefuncionUpdate) ClearMadreID() *DefuncionUpdate {
	_u.mutation.ClearMadreID()
	return _u
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (_u *DefuncionUpdate) SetRecienNacidoID(v uuid.UUID) *DefuncionUpdate {
	_u.mutation.SetRecienNacidoID(v)
	return _u
}

// SetNillableRecienNacidoID sets the "recien_nacido_id" field if the given value is not nil.
func (_u *DefuncionUpdate) SetNillableRecienNacidoID(v *uuid.UUID) *DefuncionUpdate {
	if v != nil {
		_u.SetRecienNacidoID(*v)
	}
	return _u
}

// ClearRecienNacidoID clears the value of the "recien_nacido_id" field.
func (_u *DefuncionUpdate) ClearRecienNacidoID() *DefuncionUpdate {
	_u.mutation.ClearRecienNacidoID()
	return _u
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (_u *DefuncionUpdate) SetFechaDefuncion(v time.Time) *DefuncionUpdate {
	_u.mutation.SetFechaDefuncion(v)
	return _u
}

// SetNillableFechaDefuncion sets the "fecha_defuncion" field if the given value is not nil.
func (_u *DefuncionUpdate) SetNillableFechaDefuncion(v *time.Time) *DefuncionUpdate {
	if v != nil {
		_u.SetFechaDefuncion(*v)
	}
	return _u
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (_u *DefuncionUpdate) SetCausaDefuncionID(v uuid.UUID) *DefuncionUpdate {
	_u.mutation.SetCausaDefuncionID(v)
	return _u
}

// SetNillableCausaDefuncionID sets the "causa_defuncion_id" field if the given value is not nil.
func (_u *DefuncionUpdate) SetNillableCausaDefuncionID(v *uuid.UUID) *DefuncionUpdate {
	if v != nil {
		_u.SetCausaDefuncionID(*v)
	}
	return _u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_u *DefuncionUpdate) SetUsuarioRegistroID(v uuid.UUID) *DefuncionUpdate {
	_u.mutation.SetUsuarioRegistroID(v)
	return _u
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_u *DefuncionUpdate) SetNillableUsuarioRegistroID(v *uuid.UUID) *DefuncionUpdate {
	if v != nil {
		_u.SetUsuarioRegistroID(*v)
	}
	return _u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (_u *DefuncionUpdate) ClearUsuarioRegistroID() *DefuncionUpdate {
	_u.mutation.ClearUsuarioRegistroID()
	return _u
}

// SetMadre sets the "madre" edge to the Madre entity.
func (_u *DefuncionUpdate) SetMadre(v *Madre) *DefuncionUpdate {
	return _u.SetMadreID(v.ID)
}

// SetRecienNacido sets the "recien_nacido" edge to the RecienNacido entity.
func (_u *DefuncionUpdate) SetRecienNacido(v *RecienNacido) *DefuncionUpdate {
	return _u.SetRecienNacidoID(v.ID)
}

// SetCausaDefuncion sets the "causa_defuncion" edge to the DiagnosticoCIE10 entity.
func (_u *DefuncionUpdate) SetCausaDefuncion(v *DiagnosticoCIE10) *DefuncionUpdate {
	return _u.SetCausaDefuncionID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_u *DefuncionUpdate) SetUsuarioRegistro(v *Usuario) *DefuncionUpdate {
	return _u.SetUsuarioRegistroID(v.ID)
}

// Mutation returns the DefuncionMutation object of the builder.
func (_u *DefuncionUpdate) Mutation() *DefuncionMutation {
	return _u.mutation
}

// ClearMadre clears the "madre" edge to the Madre entity.
func (_u *DefuncionUpdate) ClearMadre() *DefuncionUpdate {
	_u.mutation.ClearMadre()
	return _u
}

// ClearRecienNacido clears the "recien_nacido" edge to the RecienNacido entity.
func (_u *DefuncionUpdate) ClearRecienNacido() *DefuncionUpdate {
	_u.mutation.ClearRecienNacido()
	return _u
}

// ClearCausaDefuncion clears the "causa_defuncion" edge to the DiagnosticoCIE10 entity.
func (_u *DefuncionUpdate) ClearCausaDefuncion() *DefuncionUpdate {
	_u.mutation.ClearCausaDefuncion()
	return _u
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (_u *DefuncionUpdate) ClearUsuarioRegistro() *DefuncionUpdate {
	_u.mutation.ClearUsuarioRegistro()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DefuncionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DefuncionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DefuncionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DefuncionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DefuncionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := defuncion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DefuncionUpdate) check() error {
	if _u.mutation.CausaDefuncionCleared() && len(_u.mutation.CausaDefuncionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Defuncion.causa_defuncion"`)
	}
	return nil
}

func (_u *DefuncionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(defuncion.Table, defuncion.Columns, sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(defuncion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaDefuncion(); ok {
		_spec.SetField(defuncion.FieldFechaDefuncion, field.TypeTime, value)
	}
	if _u.mutation.MadreCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.MadreTable,
			Columns: []string{defuncion.MadreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MadreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.MadreTable,
			Columns: []string{defuncion.MadreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecienNacidoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.RecienNacidoTable,
			Columns: []string{defuncion.RecienNacidoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecienNacidoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.RecienNacidoTable,
			Columns: []string{defuncion.RecienNacidoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CausaDefuncionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.CausaDefuncionTable,
			Columns: []string{defuncion.CausaDefuncionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CausaDefuncionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.CausaDefuncionTable,
			Columns: []string{defuncion.CausaDefuncionColumn},
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
	if _u.mutation.UsuarioRegistroCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.UsuarioRegistroTable,
			Columns: []string{defuncion.UsuarioRegistroColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.UsuarioRegistroTable,
			Columns: []string{defuncion.UsuarioRegistroColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{defuncion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DefuncionUpdateOne is the builder for updating a single Defuncion entity.
type DefuncionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DefuncionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DefuncionUpdateOne) SetUpdatedAt(v time.Time) *DefuncionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMadreID sets the "madre_id" field.
func (_u *DefuncionUpdateOne) SetMadreID(v uuid.UUID) *DefuncionUpdateOne {
	_u.mutation.SetMadreID(v)
	return _u
}

// SetNillableMadreID sets the "madre_id" field if the given value is not nil.
func (_u *DefuncionUpdateOne) SetNillableMadreID(v *uuid.UUID) *DefuncionUpdateOne {
	if v != nil {
		_u.SetMadreID(*v)
	}
	return _u
}

// ClearMadreID clears the value of the "madre_id" field.
func (_u *DefuncionUpdateOne) ClearMadreID() *DefuncionUpdateOne {
	_u.mutation.ClearMadreID()
	return _u
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (_u *DefuncionUpdateOne) SetRecienNacidoID(v uuid.UUID) *DefuncionUpdateOne {
	_u.mutation.SetRecienNacidoID(v)
	return _u
}

// SetNillableRecienNacidoID sets the "recien_nacido_id" field if the given value is not nil.
func (_u *DefuncionUpdateOne) SetNillableRecienNacidoID(v *uuid.UUID) *DefuncionUpdateOne {
	if v != nil {
		_u.SetRecienNacidoID(*v)
	}
	return _u
}

// ClearRecienNacidoID clears the value of the "recien_nacido_id" field.
func (_u *DefuncionUpdateOne) ClearRecienNacidoID() *DefuncionUpdateOne {
	_u.mutation.ClearRecienNacidoID()
	return _u
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (_u *DefuncionUpdateOne) SetFechaDefuncion(v time.Time) *DefuncionUpdateOne {
	_u.mutation.SetFechaDefuncion(v)
	return _u
}

// SetNillableFechaDefuncion sets the "fecha_defuncion" field if the given value is not nil.
func (_u *DefuncionUpdateOne) SetNillableFechaDefuncion(v *time.Time) *DefuncionUpdateOne {
	if v != nil {
		_u.SetFechaDefuncion(*v)
	}
	return _u
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (_u *DefuncionUpdateOne) SetCausaDefuncionID(v uuid.UUID) *DefuncionUpdateOne {
	_u.mutation.SetCausaDefuncionID(v)
	return _u
}

// SetNillableCausaDefuncionID sets the "causa_defuncion_id" field if the given value is not nil.
func (_u *DefuncionUpdateOne) SetNillableCausaDefuncionID(v *uuid.UUID) *DefuncionUpdateOne {
	if v != nil {
		_u.SetCausaDefuncionID(*v)
	}
	return _u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_u *DefuncionUpdateOne) SetUsuarioRegistroID(v uuid.UUID) *DefuncionUpdateOne {
	_u.mutation.SetUsuarioRegistroID(v)
	return _u
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_u *DefuncionUpdateOne) SetNillableUsuarioRegistroID(v *uuid.UUID) *DefuncionUpdateOne {
	if v != nil {
		_u.SetUsuarioRegistroID(*v)
	}
	return _u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (_u *DefuncionUpdateOne) ClearUsuarioRegistroID() *DefuncionUpdateOne {
	_u.mutation.ClearUsuarioRegistroID()
	return _u
}

// SetMadre sets the "madre" edge to the Madre entity.
func (_u *DefuncionUpdateOne) SetMadre(v *Madre) *DefuncionUpdateOne {
	return _u.SetMadreID(v.ID)
}

// SetRecienNacido sets the "recien_nacido" edge to the RecienNacido entity.
func (_u *DefuncionUpdateOne) SetRecienNacido(v *RecienNacido) *DefuncionUpdateOne {
	return _u.SetRecienNacidoID(v.ID)
}

// SetCausaDefuncion sets the "causa_defuncion" edge to the DiagnosticoCIE10 entity.
func (_u *DefuncionUpdateOne) SetCausaDefuncion(v *DiagnosticoCIE10) *DefuncionUpdateOne {
	return _u.SetCausaDefuncionID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_u *DefuncionUpdateOne) SetUsuarioRegistro(v *Usuario) *DefuncionUpdateOne {
	return _u.SetUsuarioRegistroID(v.ID)
}

// Mutation returns the DefuncionMutation object of the builder.
func (_u *DefuncionUpdateOne) Mutation() *DefuncionMutation {
	return _u.mutation
}

// ClearMadre clears the "madre" edge to the Madre entity.
func (_u *DefuncionUpdateOne) ClearMadre() *DefuncionUpdateOne {
	_u.mutation.ClearMadre()
	return _u
}

// ClearRecienNacido clears the "recien_nacido" edge to the RecienNacido entity.
func (_u *DefuncionUpdateOne) ClearRecienNacido() *DefuncionUpdateOne {
	_u.mutation.ClearRecienNacido()
	return _u
}

// ClearCausaDefuncion clears the "causa_defuncion" edge to the DiagnosticoCIE10 entity.
func (_u *DefuncionUpdateOne) ClearCausaDefuncion() *DefuncionUpdateOne {
	_u.mutation.ClearCausaDefuncion()
	return _u
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (_u *DefuncionUpdateOne) ClearUsuarioRegistro() *DefuncionUpdateOne {
	_u.mutation.ClearUsuarioRegistro()
	return _u
}

// Where appends a list predicates to the DefuncionUpdate builder.
func (_u *DefuncionUpdateOne) Where(ps ...predicate.Defuncion) *DefuncionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DefuncionUpdateOne) Select(field string, fields ...string) *DefuncionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Defuncion entity.
func (_u *DefuncionUpdateOne) Save(ctx context.Context) (*Defuncion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DefuncionUpdateOne) SaveX(ctx context.Context) *Defuncion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DefuncionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DefuncionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DefuncionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := defuncion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DefuncionUpdateOne) check() error {
	if _u.mutation.CausaDefuncionCleared() && len(_u.mutation.CausaDefuncionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Defuncion.causa_defuncion"`)
	}
	return nil
}

func (_u *DefuncionUpdateOne) sqlSave(ctx context.Context) (_node *Defuncion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(defuncion.Table, defuncion.Columns, sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Defuncion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, defuncion.FieldID)
		for _, f := range fields {
			if !defuncion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != defuncion.FieldID {
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
		_spec.SetField(defuncion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaDefuncion(); ok {
		_spec.SetField(defuncion.FieldFechaDefuncion, field.TypeTime, value)
	}
	if _u.mutation.MadreCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.MadreTable,
			Columns: []string{defuncion.MadreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MadreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.MadreTable,
			Columns: []string{defuncion.MadreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecienNacidoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.RecienNacidoTable,
			Columns: []string{defuncion.RecienNacidoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecienNacidoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   defuncion.RecienNacidoTable,
			Columns: []string{defuncion.RecienNacidoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CausaDefuncionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.CausaDefuncionTable,
			Columns: []string{defuncion.CausaDefuncionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CausaDefuncionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.CausaDefuncionTable,
			Columns: []string{defuncion.CausaDefuncionColumn},
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
	if _u.mutation.UsuarioRegistroCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.UsuarioRegistroTable,
			Columns: []string{defuncion.UsuarioRegistroColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defuncion.UsuarioRegistroTable,
			Columns: []string{defuncion.UsuarioRegistroColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Defuncion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{defuncion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
