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
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// LogAuditoriaUpdate is the builder for updating LogAuditoria entities.
type LogAuditoriaUpdate struct {
	config
	hooks    []Hook
	mutation *LogAuditoriaMutation
}

// Where appends a list predicates to the LogAuditoriaUpdate builder.
func (_u *LogAuditoriaUpdate) Where(ps ...predicate.LogAuditoria) *LogAuditoriaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsuarioID sets the "usuario_id" field.
func (_u *LogAuditoriaUpdate) SetUsuarioID(v uuid.UUID) *LogAuditoriaUpdate {
	_u.mutation.SetUsuarioID(v)
	return _u
}

// SetNillableUsuarioID sets the "usuario_id" field if the given value is not nil.
func (_u *LogAuditoriaUpdate) SetNillableUsuarioID(v *uuid.UUID) *LogAuditoriaUpdate {
	if v != nil {
		_u.SetUsuarioID(*v)
	}
	return _u
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (_u *LogAuditoriaUpdate) ClearUsuarioID() *LogAuditoriaUpdate {
	_u.mutation.ClearUsuarioID()
	return _u
}

// SetAccion sets the "accion" field.
func (_u *LogAuditoriaUpdate) SetAccion(v string) *LogAuditoriaUpdate {
	_u.mutation.SetAccion(v)
	return _u
}

// SetNillableAccion sets the "accion" field if the given value is not nil.
func (_u *LogAuditoriaUpdate) SetNillableAccion(v *string) *LogAuditoriaUpdate {
	if v != nil {
		_u.SetAccion(*v)
	}
	return _u
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (_u *LogAuditoriaUpdate) SetTablaAfectada(v string) *LogAuditoriaUpdate {
	_u.mutation.SetTablaAfectada(v)
	return _u
}

// SetNillableTablaAfectada sets the "tabla_afectada" field if the given value is not nil.
func (_u *LogAuditoriaUpdate) SetNillableTablaAfectada(v *string) *LogAuditoriaUpdate {
	if v != nil {
		_u.SetTablaAfectada(*v)
	}
	return _u
}

// ClearTablaAfectada clears the value of the "tabla_afectada" field.
func (_u *LogAuditoriaUpdate) ClearTablaAfectada() *LogAuditoriaUpdate {
	_u.mutation.ClearTablaAfectada()
	return _u
}

// SetRegistroID sets the "registro_id" field.
func (_u *LogAuditoriaUpdate) SetRegistroID(v uuid.UUID) *LogAuditoriaUpdate {
	_u.mutation.SetRegistroID(v)
	return _u
}

// SetNillableRegistroID sets the "registro_id" field if the given value is not nil.
func (_u *LogAuditoriaUpdate) SetNillableRegistroID(v *uuid.UUID) *LogAuditoriaUpdate {
	if v != nil {
		_u.SetRegistroID(*v)
	}
	return _u
}

// ClearRegistroID clears the value of the "registro_id" field.
func (_u *LogAuditoriaUpdate) ClearRegistroID() *LogAuditoriaUpdate {
	_u.mutation.ClearRegistroID()
	return _u
}

// SetDetalles sets the "detalles" field.
func (_u *LogAuditoriaUpdate) SetDetalles(v map[string]interface{}) *LogAuditoriaUpdate {
	_u.mutation.SetDetalles(v)
	return _u
}

// ClearDetalles clears the value of the "detalles" field.
func (_u *LogAuditoriaUpdate) ClearDetalles() *LogAuditoriaUpdate {
	_u.mutation.ClearDetalles()
	return _u
}

// SetIPUsuario sets the "ip_usuario" field.
func (_u *LogAuditoriaUpdate) SetIPUsuario(v string) *LogAuditoriaUpdate {
	_u.mutation.SetIPUsuario(v)
	return _u
}

// SetNillableIPUsuario sets the "ip_usuario" field if the given value is not nil.
func (_u *LogAuditoriaUpdate) SetNillableIPUsuario(v *string) *LogAuditoriaUpdate {
	if v != nil {
		_u.SetIPUsuario(*v)
	}
	return _u
}

// ClearIPUsuario clears the value of the "ip_usuario" field.
func (_u *LogAuditoriaUpdate) ClearIPUsuario() *LogAuditoriaUpdate {
	_u.mutation.ClearIPUsuario()
	return _u
}

// SetUsuario sets the "usuario" edge to the Usuario entity.
func (_u *LogAuditoriaUpdate) SetUsuario(v *Usuario) *LogAuditoriaUpdate {
	return _u.SetUsuarioID(v.ID)
}

// Mutation returns the LogAuditoriaMutation object of the builder.
func (_u *LogAuditoriaUpdate) Mutation() *LogAuditoriaMutation {
	return _u.mutation
}

// ClearUsuario clears the "usuario" edge to the Usuario entity.
func (_u *LogAuditoriaUpdate) ClearUsuario() *LogAuditoriaUpdate {
	_u.mutation.ClearUsuario()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LogAuditoriaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogAuditoriaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LogAuditoriaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogAuditoriaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogAuditoriaUpdate) check() error {
	if v, ok := _u.mutation.Accion(); ok {
		if err := logauditoria.AccionValidator(v); err != nil {
			return &ValidationError{Name: "accion", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.accion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TablaAfectada(); ok {
		if err := logauditoria.TablaAfectadaValidator(v); err != nil {
			return &ValidationError{Name: "tabla_afectada", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.tabla_afectada": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPUsuario(); ok {
		if err := logauditoria.IPUsuarioValidator(v); err != nil {
			return &ValidationError{Name: "ip_usuario", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.ip_usuario": %w`, err)}
		}
	}
	return nil
}

func (_u *LogAuditoriaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logauditoria.Table, logauditoria.Columns, sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Accion(); ok {
		_spec.SetField(logauditoria.FieldAccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TablaAfectada(); ok {
		_spec.SetField(logauditoria.FieldTablaAfectada, field.TypeString, value)
	}
	if _u.mutation.TablaAfectadaCleared() {
		_spec.ClearField(logauditoria.FieldTablaAfectada, field.TypeString)
	}
	if value, ok := _u.mutation.RegistroID(); ok {
		_spec.SetField(logauditoria.FieldRegistroID, field.TypeUUID, value)
	}
	if _u.mutation.RegistroIDCleared() {
		_spec.ClearField(logauditoria.FieldRegistroID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Detalles(); ok {
		_spec.SetField(logauditoria.FieldDetalles, field.TypeJSON, value)
	}
	if _u.mutation.DetallesCleared() {
		_spec.ClearField(logauditoria.FieldDetalles, field.TypeJSON)
	}
	if value, ok := _u.mutation.IPUsuario(); ok {
		_spec.SetField(logauditoria.FieldIPUsuario, field.TypeString, value)
	}
	if _u.mutation.IPUsuarioCleared() {
		_spec.ClearField(logauditoria.FieldIPUsuario, field.TypeString)
	}
	if _u.mutation.UsuarioCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logauditoria.UsuarioTable,
			Columns: []string{logauditoria.UsuarioColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logauditoria.UsuarioTable,
			Columns: []string{logauditoria.UsuarioColumn},
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
			err = &NotFoundError{logauditoria.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LogAuditoriaUpdateOne is the builder for updating a single LogAuditoria entity.
type LogAuditoriaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LogAuditoriaMutation
}

// SetUsuarioID sets the "usuario_id" field.
func (_u *LogAuditoriaUpdateOne) SetUsuarioID(v uuid.UUID) *LogAuditoriaUpdateOne {
	_u.mutation.SetUsuarioID(v)
	return _u
}

// SetNillableUsuarioID sets the "usuario_id" field if the given value is not nil.
func (_u *LogAuditoriaUpdateOne) SetNillableUsuarioID(v *uuid.UUID) *LogAuditoriaUpdateOne {
	if v != nil {
		_u.SetUsuarioID(*v)
	}
	return _u
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (_u *LogAuditoriaUpdateOne) ClearUsuarioID() *LogAuditoriaUpdateOne {
	_u.mutation.ClearUsuarioID()
	return _u
}

// SetAccion sets the "accion" field.
func (_u *LogAuditoriaUpdateOne) SetAccion(v string) *LogAuditoriaUpdateOne {
	_u.mutation.SetAccion(v)
	return _u
}

// SetNillableAccion sets the "accion" field if the given value is not nil.
func (_u *LogAuditoriaUpdateOne) SetNillableAccion(v *string) *LogAuditoriaUpdateOne {
	if v != nil {
		_u.SetAccion(*v)
	}
	return _u
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (_u *LogAuditoriaUpdateOne) SetTablaAfectada(v string) *LogAuditoriaUpdateOne {
	_u.mutation.SetTablaAfectada(v)
	return _u
}

// SetNillableTablaAfectada sets the "tabla_afectada" field if the given value is not nil.
func (_u *LogAuditoriaUpdateOne) SetNillableTablaAfectada(v *string) *LogAuditoriaUpdateOne {
	if v != nil {
		_u.SetTablaAfectada(*v)
	}
	return _u
}

// ClearTablaAfectada clears the value of the "tabla_afectada" field.
func (_u *LogAuditoriaUpdateOne) ClearTablaAfectada() *LogAuditoriaUpdateOne {
	_u.mutation.ClearTablaAfectada()
	return _u
}

// SetRegistroID sets the "registro_id" field.
func (_u *LogAuditoriaUpdateOne) SetRegistroID(v uuid.UUID) *LogAuditoriaUpdateOne {
	_u.mutation.SetRegistroID(v)
	return _u
}

// SetNillableRegistroID sets the "registro_id" field if the given value is not nil.
func (_u *LogAuditoriaUpdateOne) SetNillableRegistroID(v *uuid.UUID) *LogAuditoriaUpdateOne {
	if v != nil {
		_u.SetRegistroID(*v)
	}
	return _u
}

// ClearRegistroID clears the value of the "registro_id" field.
func (_u *LogAuditoriaUpdateOne) ClearRegistroID() *LogAuditoriaUpdateOne {
	_u.mutation.ClearRegistroID()
	return _u
}

// SetDetalles sets the "detalles" field.
func (_u *LogAuditoriaUpdateOne) SetDetalles(v map[string]interface{}) *LogAuditoriaUpdateOne {
	_u.mutation.SetDetalles(v)
	return _u
}

// ClearDetalles clears the value of the "detalles" field.
func (_u *LogAuditoriaUpdateOne) ClearDetalles() *LogAuditoriaUpdateOne {
	_u.mutation.ClearDetalles()
	return _u
}

// SetIPUsuario sets the "ip_usuario" field.
func (_u *LogAuditoriaUpdateOne) SetIPUsuario(v string) *LogAuditoriaUpdateOne {
	_u.mutation.SetIPUsuario(v)
	return _u
}

// SetNillableIPUsuario sets the "ip_usuario" field if the given value is not nil.
func (_u *LogAuditoriaUpdateOne) SetNillableIPUsuario(v *string) *LogAuditoriaUpdateOne {
	if v != nil {
		_u.SetIPUsuario(*v)
	}
	return _u
}

// ClearIPUsuario clears the value of the "ip_usuario" field.
func (_u *LogAuditoriaUpdateOne) ClearIPUsuario() *LogAuditoriaUpdateOne {
	_u.mutation.ClearIPUsuario()
	return _u
}

// SetUsuario sets the "usuario" edge to the Usuario entity.
func (_u *LogAuditoriaUpdateOne) SetUsuario(v *Usuario) *LogAuditoriaUpdateOne {
	return _u.SetUsuarioID(v.ID)
}

// Mutation returns the LogAuditoriaMutation object of the builder.
func (_u *LogAuditoriaUpdateOne) Mutation() *LogAuditoriaMutation {
	return _u.mutation
}

// ClearUsuario clears the "usuario" edge to the Usuario entity.
func (_u *LogAuditoriaUpdateOne) ClearUsuario() *LogAuditoriaUpdateOne {
	_u.mutation.ClearUsuario()
	return _u
}

// Where appends a list predicates to the LogAuditoriaUpdate builder.
func (_u *LogAuditoriaUpdateOne) Where(ps ...predicate.LogAuditoria) *LogAuditoriaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LogAuditoriaUpdateOne) Select(field string, fields ...string) *LogAuditoriaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LogAuditoria entity.
func (_u *LogAuditoriaUpdateOne) Save(ctx context.Context) (*LogAuditoria, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogAuditoriaUpdateOne) SaveX(ctx context.Context) *LogAuditoria {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LogAuditoriaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogAuditoriaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogAuditoriaUpdateOne) check() error {
	if v, ok := _u.mutation.Accion(); ok {
		if err := logauditoria.AccionValidator(v); err != nil {
			return &ValidationError{Name: "accion", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.accion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TablaAfectada(); ok {
		if err := logauditoria.TablaAfectadaValidator(v); err != nil {
			return &ValidationError{Name: "tabla_afectada", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.tabla_afectada": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPUsuario(); ok {
		if err := logauditoria.IPUsuarioValidator(v); err != nil {
			return &ValidationError{Name: "ip_usuario", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.ip_usuario": %w`, err)}
		}
	}
	return nil
}

func (_u *LogAuditoriaUpdateOne) sqlSave(ctx context.Context) (_node *LogAuditoria, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logauditoria.Table, logauditoria.Columns, sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LogAuditoria.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logauditoria.FieldID)
		for _, f := range fields {
			if !logauditoria.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != logauditoria.FieldID {
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
	if value, ok := _u.mutation.Accion(); ok {
		_spec.SetField(logauditoria.FieldAccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TablaAfectada(); ok {
		_spec.SetField(logauditoria.FieldTablaAfectada, field.TypeString, value)
	}
	if _u.mutation.TablaAfectadaCleared() {
		_spec.ClearField(logauditoria.FieldTablaAfectada, field.TypeString)
	}
	if value, ok := _u.mutation.RegistroID(); ok {
		_spec.SetField(logauditoria.FieldRegistroID, field.TypeUUID, value)
	}
	if _u.mutation.RegistroIDCleared() {
		_spec.ClearField(logauditoria.FieldRegistroID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Detalles(); ok {
		_spec.SetField(logauditoria.FieldDetalles, field.TypeJSON, value)
	}
	if _u.mutation.DetallesCleared() {
		_spec.ClearField(logauditoria.FieldDetalles, field.TypeJSON)
	}
	if value, ok := _u.mutation.IPUsuario(); ok {
		_spec.SetField(logauditoria.FieldIPUsuario, field.TypeString, value)
	}
	if _u.mutation.IPUsuarioCleared() {
		_spec.ClearField(logauditoria.FieldIPUsuario, field.TypeString)
	}
	if _u.mutation.UsuarioCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logauditoria.UsuarioTable,
			Columns: []string{logauditoria.UsuarioColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logauditoria.UsuarioTable,
			Columns: []string{logauditoria.UsuarioColumn},
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
	_node = &LogAuditoria{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logauditoria.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
