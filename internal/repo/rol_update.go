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
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// RolUpdate is the builder for updating Rol entities.
type RolUpdate struct {
	config
	hooks    []Hook
	mutation *RolMutation
}

// Where appends a list predicates to the RolUpdate builder.
func (_u *RolUpdate) Where(ps ...predicate.Rol) *RolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RolUpdate) SetUpdatedAt(v time.Time) *RolUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *RolUpdate) SetNombre(v string) *RolUpdate {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *RolUpdate) SetNillableNombre(v *string) *RolUpdate {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *RolUpdate) SetDescripcion(v string) *RolUpdate {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *RolUpdate) SetNillableDescripcion(v *string) *RolUpdate {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *RolUpdate) ClearDescripcion() *RolUpdate {
	_u.mutation.ClearDescripcion()
	return _u
}

// AddUsuarioIDs adds the "usuarios" edge to the Usuario entity by IDs.
func (_u *RolUpdate) AddUsuarioIDs(ids ...uuid.UUID) *RolUpdate {
	_u.mutation.AddUsuarioIDs(ids...)
	return _u
}

// AddUsuarios adds the "usuarios" edges to the Usuario entity.
func (_u *RolUpdate) AddUsuarios(v ...*Usuario) *RolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsuarioIDs(ids...)
}

// Mutation returns the RolMutation object of the builder.
func (_u *RolUpdate) Mutation() *RolMutation {
	return _u.mutation
}

// ClearUsuarios clears all "usuarios" edges to the Usuario entity.
func (_u *RolUpdate) ClearUsuarios() *RolUpdate {
	_u.mutation.ClearUsuarios()
	return _u
}

// RemoveUsuarioIDs removes the "usuarios" edge to Usuario entities by IDs.
func (_u *RolUpdate) RemoveUsuarioIDs(ids ...uuid.UUID) *RolUpdate {
	_u.mutation.RemoveUsuarioIDs(ids...)
	return _u
}

// RemoveUsuarios removes "usuarios" edges to Usuario entities.
func (_u *RolUpdate) RemoveUsuarios(v ...*Usuario) *RolUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsuarioIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RolUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RolUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rol.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RolUpdate) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := rol.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Rol.nombre": %w`, err)}
		}
	}
	return nil
}

func (_u *RolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rol.Table, rol.Columns, sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rol.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(rol.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(rol.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(rol.FieldDescripcion, field.TypeString)
	}
	if _u.mutation.UsuariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rol.UsuariosTable,
			Columns: []string{rol.UsuariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsuariosIDs(); len(nodes) > 0 && !_u.mutation.UsuariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rol.UsuariosTable,
			Columns: []string{rol.UsuariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuariosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rol.UsuariosTable,
			Columns: []string{rol.UsuariosColumn},
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
			err = &NotFoundError{rol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RolUpdateOne is the builder for updating a single Rol entity.
type RolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RolMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RolUpdateOne) SetUpdatedAt(v time.Time) *RolUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *RolUpdateOne) SetNombre(v string) *RolUpdateOne {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *RolUpdateOne) SetNillableNombre(v *string) *RolUpdateOne {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *RolUpdateOne) SetDescripcion(v string) *RolUpdateOne {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *RolUpdateOne) SetNillableDescripcion(v *string) *RolUpdateOne {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *RolUpdateOne) ClearDescripcion() *RolUpdateOne {
	_u.mutation.ClearDescripcion()
	return _u
}

// AddUsuarioIDs adds the "usuarios" edge to the Usuario entity by IDs.
func (_u *RolUpdateOne) AddUsuarioIDs(ids ...uuid.UUID) *RolUpdateOne {
	_u.mutation.AddUsuarioIDs(ids...)
	return _u
}

// AddUsuarios adds the "usuarios" edges to the Usuario entity.
func (_u *RolUpdateOne) AddUsuarios(v ...*Usuario) *RolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUsuarioIDs(ids...)
}

// Mutation returns the RolMutation object of the builder.
func (_u *RolUpdateOne) Mutation() *RolMutation {
	return _u.mutation
}

// ClearUsuarios clears all "usuarios" edges to the Usuario entity.
func (_u *RolUpdateOne) ClearUsuarios() *RolUpdateOne {
	_u.mutation.ClearUsuarios()
	return _u
}

// RemoveUsuarioIDs removes the "usuarios" edge to Usuario entities by IDs.
func (_u *RolUpdateOne) RemoveUsuarioIDs(ids ...uuid.UUID) *RolUpdateOne {
	_u.mutation.RemoveUsuarioIDs(ids...)
	return _u
}

// RemoveUsuarios removes "usuarios" edges to Usuario entities.
func (_u *RolUpdateOne) RemoveUsuarios(v ...*Usuario) *RolUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUsuarioIDs(ids...)
}

// Where appends a list predicates to the RolUpdate builder.
func (_u *RolUpdateOne) Where(ps ...predicate.Rol) *RolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RolUpdateOne) Select(field string, fields ...string) *RolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rol entity.
func (_u *RolUpdateOne) Save(ctx context.Context) (*Rol, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RolUpdateOne) SaveX(ctx context.Context) *Rol {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RolUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rol.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RolUpdateOne) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := rol.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Rol.nombre": %w`, err)}
		}
	}
	return nil
}

func (_u *RolUpdateOne) sqlSave(ctx context.Context) (_node *Rol, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rol.Table, rol.Columns, sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Rol.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rol.FieldID)
		for _, f := range fields {
			if !rol.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != rol.FieldID {
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
		_spec.SetField(rol.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(rol.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(rol.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(rol.FieldDescripcion, field.TypeString)
	}
	if _u.mutation.UsuariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rol.UsuariosTable,
			Columns: []string{rol.UsuariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsuariosIDs(); len(nodes) > 0 && !_u.mutation.UsuariosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rol.UsuariosTable,
			Columns: []string{rol.UsuariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuariosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rol.UsuariosTable,
			Columns: []string{rol.UsuariosColumn},
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
	_node = &Rol{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rol.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
