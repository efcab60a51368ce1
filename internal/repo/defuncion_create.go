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
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DefuncionCreate is the builder for creating a Defuncion entity.
type DefuncionCreate struct {
	config
	mutation *DefuncionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DefuncionCreate) SetCreatedAt(v time.Time) *DefuncionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DefuncionCreate) SetNillableCreatedAt(v *time.Time) *DefuncionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DefuncionCreate) SetUpdatedAt(v time.Time) *DefuncionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DefuncionCreate) SetNillableUpdatedAt(v *time.Time) *DefuncionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMadreID sets the "madre_id" field.
func (_c *DefuncionCreate) SetMadreID(v uuid.UUID) *DefuncionCreate {
	_c.mutation.SetMadreID(v)
	return _c
}

// SetNillableMadreID sets the "madre_id" field if the given value is not nil.
func (_c *DefuncionCreate) SetNillableMadreID(v *uuid.UUID) *DefuncionCreate {
	if v != nil {
		_c.SetMadreID(*v)
	}
	return _c
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (_c *DefuncionCreate) SetRecienNacidoID(v uuid.UUID) *DefuncionCreate {
	_c.mutation.SetRecienNacidoID(v)
	return _c
}

// SetNillableRecienNacidoID sets the "recien_nacido_id" field if the given value is not nil.
func (_c *DefuncionCreate) SetNillableRecienNacidoID(v *uuid.UUID) *DefuncionCreate {
	if v != nil {
		_c.SetRecienNacidoID(*v)
	}
	return _c
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (_c *DefuncionCreate) SetFechaDefuncion(v time.Time) *DefuncionCreate {
	_c.mutation.SetFechaDefuncion(v)
	return _c
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (_c *DefuncionCreate) SetCausaDefuncionID(v uuid.UUID) *DefuncionCreate {
	_c.mutation.SetCausaDefuncionID(v)
	return _c
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_c *DefuncionCreate) SetUsuarioRegistroID(v uuid.UUID) *DefuncionCreate {
	_c.mutation.SetUsuarioRegistroID(v)
	return _c
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_c *DefuncionCreate) SetNillableUsuarioRegistroID(v *uuid.UUID) *DefuncionCreate {
	if v != nil {
		_c.SetUsuarioRegistroID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DefuncionCreate) SetID(v uuid.UUID) *DefuncionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DefuncionCreate) SetNillableID(v *uuid.UUID) *DefuncionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMadre sets the "madre" edge to the Madre entity.
func (_c *DefuncionCreate) SetMadre(v *Madre) *DefuncionCreate {
	return _c.SetMadreID(v.ID)
}

// SetRecienNacido sets the "recien_nacido" edge to the RecienNacido entity.
func (_c *DefuncionCreate) SetRecienNacido(v *RecienNacido) *DefuncionCreate {
	return _c.SetRecienNacidoID(v.ID)
}

// SetCausaDefuncion sets the "causa_defuncion" edge to the DiagnosticoCIE10 entity.
func (_c *DefuncionCreate) SetCausaDefuncion(v *DiagnosticoCIE10) *DefuncionCreate {
	return _c.SetCausaDefuncionID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_c *DefuncionCreate) SetUsuarioRegistro(v *Usuario) *DefuncionCreate {
	return _c.SetUsuarioRegistroID(v.ID)
}

// Mutation returns the DefuncionMutation object of the builder.
func (_c *DefuncionCreate) Mutation() *DefuncionMutation {
	return _c.mutation
}

// Save creates the Defuncion in the database.
func (_c *DefuncionCreate) Save(ctx context.Context) (*Defuncion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DefuncionCreate) SaveX(ctx context.Context) *Defuncion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DefuncionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DefuncionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DefuncionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := defuncion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := defuncion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := defuncion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DefuncionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Defuncion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Defuncion.updated_at"`)}
	}
	if _, ok := _c.mutation.FechaDefuncion(); !ok {
		return &ValidationError{Name: "fecha_defuncion", err: errors.New(`repo: missing required field "Defuncion.fecha_defuncion"`)}
	}
	if _, ok := _c.mutation.CausaDefuncionID(); !ok {
		return &ValidationError{Name: "causa_defuncion_id", err: errors.New(`repo: missing required field "Defuncion.causa_defuncion_id"`)}
	}
	if len(_c.mutation.CausaDefuncionIDs()) == 0 {
		return &ValidationError{Name: "causa_defuncion", err: errors.New(`repo: missing required edge "Defuncion.causa_defuncion"`)}
	}
	return nil
}

func (_c *DefuncionCreate) sqlSave(ctx context.Context) (*Defuncion, error) {
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

func (_c *DefuncionCreate) createSpec() (*Defuncion, *sqlgraph.CreateSpec) {
	var (
		_node = &Defuncion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(defuncion.Table, sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(defuncion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(defuncion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FechaDefuncion(); ok {
		_spec.SetField(defuncion.FieldFechaDefuncion, field.TypeTime, value)
		_node.FechaDefuncion = value
	}
	if nodes := _c.mutation.MadreIDs(); len(nodes) > 0 {
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
		_node.MadreID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecienNacidoIDs(); len(nodes) > 0 {
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
		_node.RecienNacidoID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CausaDefuncionIDs(); len(nodes) > 0 {
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
		_node.CausaDefuncionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
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
		_node.UsuarioRegistroID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Defuncion.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DefuncionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DefuncionCreate) OnConflict(opts ...sql.ConflictOption) *DefuncionUpsertOne {
	_c.conflict = opts
	return &DefuncionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Defuncion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DefuncionCreate) OnConflictColumns(columns ...string) *DefuncionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DefuncionUpsertOne{
		create: _c,
	}
}

type (
	// DefuncionUpsertOne is the builder for "upsert"-ing
	//  one Defuncion node.
	DefuncionUpsertOne struct {
		create *DefuncionCreate
	}

	// DefuncionUpsert is the "OnConflict" setter.
	DefuncionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DefuncionUpsert) SetUpdatedAt(v time.Time) *DefuncionUpsert {
	u.Set(defuncion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DefuncionUpsert) UpdateUpdatedAt() *DefuncionUpsert {
	u.SetExcluded(defuncion.FieldUpdatedAt)
	return u
}

// SetMadreID sets the "madre_id" field.
func (u *DefuncionUpsert) SetMadreID(v uuid.UUID) *DefuncionUpsert {
	u.Set(defuncion.FieldMadreID, v)
	return u
}

// UpdateMadreID sets the "madre_id" field to the value that was provided on create.
func (u *DefuncionUpsert) UpdateMadreID() *DefuncionUpsert {
	u.SetExcluded(defuncion.FieldMadreID)
	return u
}

// ClearMadreID clears the value of the "madre_id" field.
func (u *DefuncionUpsert) ClearMadreID() *DefuncionUpsert {
	u.SetNull(defuncion.FieldMadreID)
	return u
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (u *DefuncionUpsert) SetRecienNacidoID(v uuid.UUID) *DefuncionUpsert {
	u.Set(defuncion.FieldRecienNacidoID, v)
	return u
}

// UpdateRecienNacidoID sets the "recien_nacido_id" field to the value that was provided on create.
func (u *DefuncionUpsert) UpdateRecienNacidoID() *DefuncionUpsert {
	u.SetExcluded(defuncion.FieldRecienNacidoID)
	return u
}

// ClearRecienNacidoID clears the value of the "recien_nacido_id" field.
func (u *DefuncionUpsert) ClearRecienNacidoID() *DefuncionUpsert {
	u.SetNull(defuncion.FieldRecienNacidoID)
	return u
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (u *DefuncionUpsert) SetFechaDefuncion(v time.Time) *DefuncionUpsert {
	u.Set(defuncion.FieldFechaDefuncion, v)
	return u
}

// UpdateFechaDefuncion sets the "fecha_defuncion" field to the value that was provided on create.
func (u *DefuncionUpsert) UpdateFechaDefuncion() *DefuncionUpsert {
	u.SetExcluded(defuncion.FieldFechaDefuncion)
	return u
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (u *DefuncionUpsert) SetCausaDefuncionID(v uuid.UUID) *DefuncionUpsert {
	u.Set(defuncion.FieldCausaDefuncionID, v)
	return u
}

// UpdateCausaDefuncionID sets the "causa_defuncion_id" field to the value that was provided on create.
func (u *DefuncionUpsert) UpdateCausaDefuncionID() *DefuncionUpsert {
	u.SetExcluded(defuncion.FieldCausaDefuncionID)
	return u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *DefuncionUpsert) SetUsuarioRegistroID(v uuid.UUID) *DefuncionUpsert {
	u.Set(defuncion.FieldUsuarioRegistroID, v)
	return u
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *DefuncionUpsert) UpdateUsuarioRegistroID() *DefuncionUpsert {
	u.SetExcluded(defuncion.FieldUsuarioRegistroID)
	return u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *DefuncionUpsert) ClearUsuarioRegistroID() *DefuncionUpsert {
	u.SetNull(defuncion.FieldUsuarioRegistroID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Defuncion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(defuncion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DefuncionUpsertOne) UpdateNewValues() *DefuncionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(defuncion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(defuncion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Defuncion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DefuncionUpsertOne) Ignore() *DefuncionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DefuncionUpsertOne) DoNothing() *DefuncionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DefuncionCreate.OnConflict
// documentation for more info.
func (u *DefuncionUpsertOne) Update(set func(*DefuncionUpsert)) *DefuncionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DefuncionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DefuncionUpsertOne) SetUpdatedAt(v time.Time) *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DefuncionUpsertOne) UpdateUpdatedAt() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMadreID sets the "madre_id" field.
func (u *DefuncionUpsertOne) SetMadreID(v uuid.UUID) *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetMadreID(v)
	})
}

// UpdateMadreID sets the "madre_id" field to the value that was provided on create.
func (u *DefuncionUpsertOne) UpdateMadreID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateMadreID()
	})
}

// ClearMadreID clears the value of the "madre_id" field.
func (u *DefuncionUpsertOne) ClearMadreID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.ClearMadreID()
	})
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (u *DefuncionUpsertOne) SetRecienNacidoID(v uuid.UUID) *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetRecienNacidoID(v)
	})
}

// UpdateRecienNacidoID sets the "recien_nacido_id" field to the value that was provided on create.
func (u *DefuncionUpsertOne) UpdateRecienNacidoID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateRecienNacidoID()
	})
}

// ClearRecienNacidoID clears the value of the "recien_nacido_id" field.
func (u *DefuncionUpsertOne) ClearRecienNacidoID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.ClearRecienNacidoID()
	})
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (u *DefuncionUpsertOne) SetFechaDefuncion(v time.Time) *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetFechaDefuncion(v)
	})
}

// UpdateFechaDefuncion sets the "fecha_defuncion" field to the value that was provided on create.
func (u *DefuncionUpsertOne) UpdateFechaDefuncion() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateFechaDefuncion()
	})
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (u *DefuncionUpsertOne) SetCausaDefuncionID(v uuid.UUID) *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetCausaDefuncionID(v)
	})
}

// UpdateCausaDefuncionID sets the "causa_defuncion_id" field to the value that was provided on create.
func (u *DefuncionUpsertOne) UpdateCausaDefuncionID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateCausaDefuncionID()
	})
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *DefuncionUpsertOne) SetUsuarioRegistroID(v uuid.UUID) *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetUsuarioRegistroID(v)
	})
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *DefuncionUpsertOne) UpdateUsuarioRegistroID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateUsuarioRegistroID()
	})
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *DefuncionUpsertOne) ClearUsuarioRegistroID() *DefuncionUpsertOne {
	return u.Update(func(s *DefuncionUpsert) {
		s.ClearUsuarioRegistroID()
	})
}

// Exec executes the query.
func (u *DefuncionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DefuncionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DefuncionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DefuncionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DefuncionUpsertOne.ID is not supported by MySQL driver. Use DefuncionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DefuncionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DefuncionCreateBulk is the builder for creating many Defuncion entities in bulk.
type DefuncionCreateBulk struct {
	config
	err      error
	builders []*DefuncionCreate
	conflict []sql.ConflictOption
}

// Save creates the Defuncion entities in the database.
func (_c *DefuncionCreateBulk) Save(ctx context.Context) ([]*Defuncion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Defuncion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DefuncionMutation)
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
func (_c *DefuncionCreateBulk) SaveX(ctx context.Context) []*Defuncion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DefuncionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DefuncionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Defuncion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DefuncionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DefuncionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DefuncionUpsertBulk {
	_c.conflict = opts
	return &DefuncionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Defuncion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DefuncionCreateBulk) OnConflictColumns(columns ...string) *DefuncionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DefuncionUpsertBulk{
		create: _c,
	}
}

// DefuncionUpsertBulk is the builder for "upsert"-ing
// a bulk of Defuncion nodes.
type DefuncionUpsertBulk struct {
	create *DefuncionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Defuncion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(defuncion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DefuncionUpsertBulk) UpdateNewValues() *DefuncionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(defuncion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(defuncion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Defuncion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DefuncionUpsertBulk) Ignore() *DefuncionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DefuncionUpsertBulk) DoNothing() *DefuncionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DefuncionCreateBulk.OnConflict
// documentation for more info.
func (u *DefuncionUpsertBulk) Update(set func(*DefuncionUpsert)) *DefuncionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DefuncionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DefuncionUpsertBulk) SetUpdatedAt(v time.Time) *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DefuncionUpsertBulk) UpdateUpdatedAt() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMadreID sets the "madre_id" field.
func (u *DefuncionUpsertBulk) SetMadreID(v uuid.UUID) *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetMadreID(v)
	})
}

// UpdateMadreID sets the "madre_id" field to the value that was provided on create.
func (u *DefuncionUpsertBulk) UpdateMadreID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateMadreID()
	})
}

// ClearMadreID clears the value of the "madre_id" field.
func (u *DefuncionUpsertBulk) ClearMadreID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.ClearMadreID()
	})
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (u *DefuncionUpsertBulk) SetRecienNacidoID(v uuid.UUID) *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetRecienNacidoID(v)
	})
}

// UpdateRecienNacidoID sets the "recien_nacido_id" field to the value that was provided on create.
func (u *DefuncionUpsertBulk) UpdateRecienNacidoID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateRecienNacidoID()
	})
}

// ClearRecienNacidoID clears the value of the "recien_nacido_id" field.
func (u *DefuncionUpsertBulk) ClearRecienNacidoID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.ClearRecienNacidoID()
	})
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (u *DefuncionUpsertBulk) SetFechaDefuncion(v time.Time) *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetFechaDefuncion(v)
	})
}

// UpdateFechaDefuncion sets the "fecha_defuncion" field to the value that was provided on create.
func (u *DefuncionUpsertBulk) UpdateFechaDefuncion() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateFechaDefuncion()
	})
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (u *DefuncionUpsertBulk) SetCausaDefuncionID(v uuid.UUID) *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetCausaDefuncionID(v)
	})
}

// UpdateCausaDefuncionID sets the "causa_defuncion_id" field to the value that was provided on create.
func (u *DefuncionUpsertBulk) UpdateCausaDefuncionID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateCausaDefuncionID()
	})
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *DefuncionUpsertBulk) SetUsuarioRegistroID(v uuid.UUID) *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.SetUsuarioRegistroID(v)
	})
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *DefuncionUpsertBulk) UpdateUsuarioRegistroID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.UpdateUsuarioRegistroID()
	})
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *DefuncionUpsertBulk) ClearUsuarioRegistroID() *DefuncionUpsertBulk {
	return u.Update(func(s *DefuncionUpsert) {
		s.ClearUsuarioRegistroID()
	})
}

// Exec executes the query.
func (u *DefuncionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DefuncionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DefuncionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DefuncionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
