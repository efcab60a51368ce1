// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// LogAuditoriaCreate is the builder for creating a LogAuditoria entity.
type LogAuditoriaCreate struct {
	config
	mutation *LogAuditoriaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUsuarioID sets the "usuario_id" field.
func (_c *LogAuditoriaCreate) SetUsuarioID(v uuid.UUID) *LogAuditoriaCreate {
	_c.mutation.SetUsuarioID(v)
	return _c
}

// SetNillableUsuarioID sets the "usuario_id" field if the given value is not nil.
func (_c *LogAuditoriaCreate) SetNillableUsuarioID(v *uuid.UUID) *LogAuditoriaCreate {
	if v != nil {
		_c.SetUsuarioID(*v)
	}
	return _c
}

// SetAccion sets the "accion" field.
func (_c *LogAuditoriaCreate) SetAccion(v string) *LogAuditoriaCreate {
	_c.mutation.SetAccion(v)
	return _c
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (_c *LogAuditoriaCreate) SetTablaAfectada(v string) *LogAuditoriaCreate {
	_c.mutation.SetTablaAfectada(v)
	return _c
}

// SetNillableTablaAfectada sets the "tabla_afectada" field if the given value is not nil.
func (_c *LogAuditoriaCreate) SetNillableTablaAfectada(v *string) *LogAuditoriaCreate {
	if v != nil {
		_c.SetTablaAfectada(*v)
	}
	return _c
}

// SetRegistroID sets the "registro_id" field.
func (_c *LogAuditoriaCreate) SetRegistroID(v uuid.UUID) *LogAuditoriaCreate {
	_c.mutation.SetRegistroID(v)
	return _c
}

// SetNillableRegistroID sets the "registro_id" field if the given value is not nil.
func (_c *LogAuditoriaCreate) SetNillableRegistroID(v *uuid.UUID) *LogAuditoriaCreate {
	if v != nil {
		_c.SetRegistroID(*v)
	}
	return _c
}

// SetDetalles sets the "detalles" field.
func (_c *LogAuditoriaCreate) SetDetalles(v map[string]interface{}) *LogAuditoriaCreate {
	_c.mutation.SetDetalles(v)
	return _c
}

// SetIPUsuario sets the "ip_usuario" field.
func (_c *LogAuditoriaCreate) SetIPUsuario(v string) *LogAuditoriaCreate {
	_c.mutation.SetIPUsuario(v)
	return _c
}

// SetNillableIPUsuario sets the "ip_usuario" field if the given value is not nil.
func (_c *LogAuditoriaCreate) SetNillableIPUsuario(v *string) *LogAuditoriaCreate {
	if v != nil {
		_c.SetIPUsuario(*v)
	}
	return _c
}

// SetFechaAccion sets the "fecha_accion" field.
func (_c *LogAuditoriaCreate) SetFechaAccion(v time.Time) *LogAuditoriaCreate {
	_c.mutation.SetFechaAccion(v)
	return _c
}

// SetNillableFechaAccion sets the "fecha_accion" field if the given value is not nil.
func (_c *LogAuditoriaCreate) SetNillableFechaAccion(v *time.Time) *LogAuditoriaCreate {
	if v != nil {
		_c.SetFechaAccion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LogAuditoriaCreate) SetID(v uuid.UUID) *LogAuditoriaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LogAuditoriaCreate) SetNillableID(v *uuid.UUID) *LogAuditoriaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUsuario sets the "usuario" edge to the Usuario entity.
func (_c *LogAuditoriaCreate) SetUsuario(v *Usuario) *LogAuditoriaCreate {
	return _c.SetUsuarioID(v.ID)
}

// Mutation returns the LogAuditoriaMutation object of the builder.
func (_c *LogAuditoriaCreate) Mutation() *LogAuditoriaMutation {
	return _c.mutation
}

// Save creates the LogAuditoria in the database.
func (_c *LogAuditoriaCreate) Save(ctx context.Context) (*LogAuditoria, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogAuditoriaCreate) SaveX(ctx context.Context) *LogAuditoria {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogAuditoriaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogAuditoriaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogAuditoriaCreate) defaults() {
	if _, ok := _c.mutation.FechaAccion(); !ok {
		v := logauditoria.DefaultFechaAccion()
		_c.mutation.SetFechaAccion(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := logauditoria.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogAuditoriaCreate) check() error {
	if _, ok := _c.mutation.Accion(); !ok {
		return &ValidationError{Name: "accion", err: errors.New(`repo: missing required field "LogAuditoria.accion"`)}
	}
	if v, ok := _c.mutation.Accion(); ok {
		if err := logauditoria.AccionValidator(v); err != nil {
			return &ValidationError{Name: "accion", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.accion": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TablaAfectada(); ok {
		if err := logauditoria.TablaAfectadaValidator(v); err != nil {
			return &ValidationError{Name: "tabla_afectada", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.tabla_afectada": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IPUsuario(); ok {
		if err := logauditoria.IPUsuarioValidator(v); err != nil {
			return &ValidationError{Name: "ip_usuario", err: fmt.Errorf(`repo: validator failed for field "LogAuditoria.ip_usuario": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FechaAccion(); !ok {
		return &ValidationError{Name: "fecha_accion", err: errors.New(`repo: missing required field "LogAuditoria.fecha_accion"`)}
	}
	return nil
}

func (_c *LogAuditoriaCreate) sqlSave(ctx context.Context) (*LogAuditoria, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LogAuditoriaCreate) createSpec() (*LogAuditoria, *sqlgraph.CreateSpec) {
	var (
		_node = &LogAuditoria{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logauditoria.Table, sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Accion(); ok {
		_spec.SetField(logauditoria.FieldAccion, field.TypeString, value)
		_node.Accion = value
	}
	if value, ok := _c.mutation.TablaAfectada(); ok {
		_spec.SetField(logauditoria.FieldTablaAfectada, field.TypeString, value)
		_node.TablaAfectada = value
	}
	if value, ok := _c.mutation.RegistroID(); ok {
		_spec.SetField(logauditoria.FieldRegistroID, field.TypeUUID, value)
		_node.RegistroID = &value
	}
	if value, ok := _c.mutation.Detalles(); ok {
		_spec.SetField(logauditoria.FieldDetalles, field.TypeJSON, value)
		_node.Detalles = value
	}
	if value, ok := _c.mutation.IPUsuario(); ok {
		_spec.SetField(logauditoria.FieldIPUsuario, field.TypeString, value)
		_node.IPUsuario = value
	}
	if value, ok := _c.mutation.FechaAccion(); ok {
		_spec.SetField(logauditoria.FieldFechaAccion, field.TypeTime, value)
		_node.FechaAccion = value
	}
	if nodes := _c.mutation.UsuarioIDs(); len(nodes) > 0 {
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
		_node.UsuarioID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LogAuditoria.Create().
//		SetUsuarioID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LogAuditoriaUpsert) {
//			SetUsuarioID(v+v).
//		}).
//		Exec(ctx)
func (_c *LogAuditoriaCreate) OnConflict(opts ...sql.ConflictOption) *LogAuditoriaUpsertOne {
	_c.conflict = opts
	return &LogAuditoriaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LogAuditoria.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LogAuditoriaCreate) OnConflictColumns(columns ...string) *LogAuditoriaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LogAuditoriaUpsertOne{
		create: _c,
	}
}

type (
	// LogAuditoriaUpsertOne is the builder for "upsert"-ing
	//  one LogAuditoria node.
	LogAuditoriaUpsertOne struct {
		create *LogAuditoriaCreate
	}

	// LogAuditoriaUpsert is the "OnConflict" setter.
	LogAuditoriaUpsert struct {
		*sql.UpdateSet
	}
)

// SetUsuarioID sets the "usuario_id" field.
func (u *LogAuditoriaUpsert) SetUsuarioID(v uuid.UUID) *LogAuditoriaUpsert {
	u.Set(logauditoria.FieldUsuarioID, v)
	return u
}

// UpdateUsuarioID sets the "usuario_id" field to the value that was provided on create.
func (u *LogAuditoriaUpsert) UpdateUsuarioID() *LogAuditoriaUpsert {
	u.SetExcluded(logauditoria.FieldUsuarioID)
	return u
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (u *LogAuditoriaUpsert) ClearUsuarioID() *LogAuditoriaUpsert {
	u.SetNull(logauditoria.FieldUsuarioID)
	return u
}

// SetAccion sets the "accion" field.
func (u *LogAuditoriaUpsert) SetAccion(v string) *LogAuditoriaUpsert {
	u.Set(logauditoria.FieldAccion, v)
	return u
}

// UpdateAccion sets the "accion" field to the value that was provided on create.
func (u *LogAuditoriaUpsert) UpdateAccion() *LogAuditoriaUpsert {
	u.SetExcluded(logauditoria.FieldAccion)
	return u
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (u *LogAuditoriaUpsert) SetTablaAfectada(v string) *LogAuditoriaUpsert {
	u.Set(logauditoria.FieldTablaAfectada, v)
	return u
}

// UpdateTablaAfectada sets the "tabla_afectada" field to the value that was provided on create.
func (u *LogAuditoriaUpsert) UpdateTablaAfectada() *LogAuditoriaUpsert {
	u.SetExcluded(logauditoria.FieldTablaAfectada)
	return u
}

// ClearTablaAfectada clears the value of the "tabla_afectada" field.
func (u *LogAuditoriaUpsert) ClearTablaAfectada() *LogAuditoriaUpsert {
	u.SetNull(logauditoria.FieldTablaAfectada)
	return u
}

// SetRegistroID sets the "registro_id" field.
func (u *LogAuditoriaUpsert) SetRegistroID(v uuid.UUID) *LogAuditoriaUpsert {
	u.Set(logauditoria.FieldRegistroID, v)
	return u
}

// UpdateRegistroID sets the "registro_id" field to the value that was provided on create.
func (u *LogAuditoriaUpsert) UpdateRegistroID() *LogAuditoriaUpsert {
	u.SetExcluded(logauditoria.FieldRegistroID)
	return u
}

// ClearRegistroID clears the value of the "registro_id" field.
func (u *LogAuditoriaUpsert) ClearRegistroID() *LogAuditoriaUpsert {
	u.SetNull(logauditoria.FieldRegistroID)
	return u
}

// SetDetalles sets the "detalles" field.
func (u *LogAuditoriaUpsert) SetDetalles(v map[string]interface{}) *LogAuditoriaUpsert {
	u.Set(logauditoria.FieldDetalles, v)
	return u
}

// UpdateDetalles sets the "detalles" field to the value that was provided on create.
func (u *LogAuditoriaUpsert) UpdateDetalles() *LogAuditoriaUpsert {
	u.SetExcluded(logauditoria.FieldDetalles)
	return u
}

// ClearDetalles clears the value of the "detalles" field.
func (u *LogAuditoriaUpsert) ClearDetalles() *LogAuditoriaUpsert {
	u.SetNull(logauditoria.FieldDetalles)
	return u
}

// SetIPUsuario sets the "ip_usuario" field.
func (u *LogAuditoriaUpsert) SetIPUsuario(v string) *LogAuditoriaUpsert {
	u.Set(logauditoria.FieldIPUsuario, v)
	return u
}

// UpdateIPUsuario sets the "ip_usuario" field to the value that was provided on create.
func (u *LogAuditoriaUpsert) UpdateIPUsuario() *LogAuditoriaUpsert {
	u.SetExcluded(logauditoria.FieldIPUsuario)
	return u
}

// ClearIPUsuario clears the value of the "ip_usuario" field.
func (u *LogAuditoriaUpsert) ClearIPUsuario() *LogAuditoriaUpsert {
	u.SetNull(logauditoria.FieldIPUsuario)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LogAuditoria.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(logauditoria.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LogAuditoriaUpsertOne) UpdateNewValues() *LogAuditoriaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(logauditoria.FieldID)
		}
		if _, exists := u.create.mutation.FechaAccion(); exists {
			s.SetIgnore(logauditoria.FieldFechaAccion)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LogAuditoria.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LogAuditoriaUpsertOne) Ignore() *LogAuditoriaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LogAuditoriaUpsertOne) DoNothing() *LogAuditoriaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LogAuditoriaCreate.OnConflict
// documentation for more info.
func (u *LogAuditoriaUpsertOne) Update(set func(*LogAuditoriaUpsert)) *LogAuditoriaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LogAuditoriaUpsert{UpdateSet: update})
	}))
	return u
}

// SetUsuarioID sets the "usuario_id" field.
func (u *LogAuditoriaUpsertOne) SetUsuarioID(v uuid.UUID) *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetUsuarioID(v)
	})
}

// UpdateUsuarioID sets the "usuario_id" field to the value that was provided on create.
func (u *LogAuditoriaUpsertOne) UpdateUsuarioID() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateUsuarioID()
	})
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (u *LogAuditoriaUpsertOne) ClearUsuarioID() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearUsuarioID()
	})
}

// SetAccion sets the "accion" field.
func (u *LogAuditoriaUpsertOne) SetAccion(v string) *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetAccion(v)
	})
}

// UpdateAccion sets the "accion" field to the value that was provided on create.
func (u *LogAuditoriaUpsertOne) UpdateAccion() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateAccion()
	})
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (u *LogAuditoriaUpsertOne) SetTablaAfectada(v string) *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetTablaAfectada(v)
	})
}

// UpdateTablaAfectada sets the "tabla_afectada" field to the value that was provided on create.
func (u *LogAuditoriaUpsertOne) UpdateTablaAfectada() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateTablaAfectada()
	})
}

// ClearTablaAfectada clears the value of the "tabla_afectada" field.
func (u *LogAuditoriaUpsertOne) ClearTablaAfectada() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearTablaAfectada()
	})
}

// SetRegistroID sets the "registro_id" field.
func (u *LogAuditoriaUpsertOne) SetRegistroID(v uuid.UUID) *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetRegistroID(v)
	})
}

// UpdateRegistroID sets the "registro_id" field to the value that was provided on create.
func (u *LogAuditoriaUpsertOne) UpdateRegistroID() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateRegistroID()
	})
}

// ClearRegistroID clears the value of the "registro_id" field.
func (u *LogAuditoriaUpsertOne) ClearRegistroID() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearRegistroID()
	})
}

// SetDetalles sets the "detalles" field.
func (u *LogAuditoriaUpsertOne) SetDetalles(v map[string]interface{}) *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetDetalles(v)
	})
}

// UpdateDetalles sets the "detalles" field to the value that was provided on create.
func (u *LogAuditoriaUpsertOne) UpdateDetalles() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateDetalles()
	})
}

// ClearDetalles clears the value of the "detalles" field.
func (u *LogAuditoriaUpsertOne) ClearDetalles() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearDetalles()
	})
}

// SetIPUsuario sets the "ip_usuario" field.
func (u *LogAuditoriaUpsertOne) SetIPUsuario(v string) *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetIPUsuario(v)
	})
}

// UpdateIPUsuario sets the "ip_usuario" field to the value that was provided on create.
func (u *LogAuditoriaUpsertOne) UpdateIPUsuario() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateIPUsuario()
	})
}

// ClearIPUsuario clears the value of the "ip_usuario" field.
func (u *LogAuditoriaUpsertOne) ClearIPUsuario() *LogAuditoriaUpsertOne {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearIPUsuario()
	})
}

// Exec executes the query.
func (u *LogAuditoriaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LogAuditoriaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LogAuditoriaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LogAuditoriaUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LogAuditoriaUpsertOne.ID is not supported by MySQL driver. Use LogAuditoriaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LogAuditoriaUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LogAuditoriaCreateBulk is the builder for creating many LogAuditoria entities in bulk.
type LogAuditoriaCreateBulk struct {
	config
	err      error
	builders []*LogAuditoriaCreate
	conflict []sql.ConflictOption
}

// Save creates the LogAuditoria entities in the database.
func (_c *LogAuditoriaCreateBulk) Save(ctx context.Context) ([]*LogAuditoria, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LogAuditoria, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogAuditoriaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LogAuditoriaCreateBulk) SaveX(ctx context.Context) []*LogAuditoria {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogAuditoriaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogAuditoriaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LogAuditoria.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LogAuditoriaUpsert) {
//			SetUsuarioID(v+v).
//		}).
//		Exec(ctx)
func (_c *LogAuditoriaCreateBulk) OnConflict(opts ...sql.ConflictOption) *LogAuditoriaUpsertBulk {
	_c.conflict = opts
	return &LogAuditoriaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LogAuditoria.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LogAuditoriaCreateBulk) OnConflictColumns(columns ...string) *LogAuditoriaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LogAuditoriaUpsertBulk{
		create: _c,
	}
}

// LogAuditoriaUpsertBulk is the builder for "upsert"-ing
// a bulk of LogAuditoria nodes.
type LogAuditoriaUpsertBulk struct {
	create *LogAuditoriaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LogAuditoria.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(logauditoria.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LogAuditoriaUpsertBulk) UpdateNewValues() *LogAuditoriaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(logauditoria.FieldID)
			}
			if _, exists := b.mutation.FechaAccion(); exists {
				s.SetIgnore(logauditoria.FieldFechaAccion)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LogAuditoria.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LogAuditoriaUpsertBulk) Ignore() *LogAuditoriaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LogAuditoriaUpsertBulk) DoNothing() *LogAuditoriaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LogAuditoriaCreateBulk.OnConflict
// documentation for more info.
func (u *LogAuditoriaUpsertBulk) Update(set func(*LogAuditoriaUpsert)) *LogAuditoriaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LogAuditoriaUpsert{UpdateSet: update})
	}))
	return u
}

// SetUsuarioID sets the "usuario_id" field.
func (u *LogAuditoriaUpsertBulk) SetUsuarioID(v uuid.UUID) *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetUsuarioID(v)
	})
}

// UpdateUsuarioID sets the "usuario_id" field to the value that was provided on create.
func (u *LogAuditoriaUpsertBulk) UpdateUsuarioID() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateUsuarioID()
	})
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (u *LogAuditoriaUpsertBulk) ClearUsuarioID() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearUsuarioID()
	})
}

// SetAccion sets the "accion" field.
func (u *LogAuditoriaUpsertBulk) SetAccion(v string) *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetAccion(v)
	})
}

// UpdateAccion sets the "accion" field to the value that was provided on create.
func (u *LogAuditoriaUpsertBulk) UpdateAccion() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateAccion()
	})
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (u *LogAuditoriaUpsertBulk) SetTablaAfectada(v string) *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetTablaAfectada(v)
	})
}

// UpdateTablaAfectada sets the "tabla_afectada" field to the value that was provided on create.
func (u *LogAuditoriaUpsertBulk) UpdateTablaAfectada() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateTablaAfectada()
	})
}

// ClearTablaAfectada clears the value of the "tabla_afectada" field.
func (u *LogAuditoriaUpsertBulk) ClearTablaAfectada() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearTablaAfectada()
	})
}

// SetRegistroID sets the "registro_id" field.
func (u *LogAuditoriaUpsertBulk) SetRegistroID(v uuid.UUID) *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetRegistroID(v)
	})
}

// UpdateRegistroID sets the "registro_id" field to the value that was provided on create.
func (u *LogAuditoriaUpsertBulk) UpdateRegistroID() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateRegistroID()
	})
}

// ClearRegistroID clears the value of the "registro_id" field.
func (u *LogAuditoriaUpsertBulk) ClearRegistroID() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearRegistroID()
	})
}

// SetDetalles sets the "detalles" field.
func (u *LogAuditoriaUpsertBulk) SetDetalles(v map[string]interface{}) *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetDetalles(v)
	})
}

// UpdateDetalles sets the "detalles" field to the value that was provided on create.
func (u *LogAuditoriaUpsertBulk) UpdateDetalles() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateDetalles()
	})
}

// ClearDetalles clears the value of the "detalles" field.
func (u *LogAuditoriaUpsertBulk) ClearDetalles() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearDetalles()
	})
}

// SetIPUsuario sets the "ip_usuario" field.
func (u *LogAuditoriaUpsertBulk) SetIPUsuario(v string) *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.SetIPUsuario(v)
	})
}

// UpdateIPUsuario sets the "ip_usuario" field to the value that was provided on create.
func (u *LogAuditoriaUpsertBulk) UpdateIPUsuario() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.UpdateIPUsuario()
	})
}

// ClearIPUsuario clears the value of the "ip_usuario" field.
func (u *LogAuditoriaUpsertBulk) ClearIPUsuario() *LogAuditoriaUpsertBulk {
	return u.Update(func(s *LogAuditoriaUpsert) {
		s.ClearIPUsuario()
	})
}

// Exec executes the query.
func (u *LogAuditoriaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LogAuditoriaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LogAuditoriaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LogAuditoriaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
