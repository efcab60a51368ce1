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
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// RolCreate is the builder for creating a Rol entity.
type RolCreate struct {
	config
	mutation *RolMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RolCreate) SetCreatedAt(v time.Time) *RolCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RolCreate) SetNillableCreatedAt(v *time.Time) *RolCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RolCreate) SetUpdatedAt(v time.Time) *RolCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RolCreate) SetNillableUpdatedAt(v *time.Time) *RolCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNombre sets the "nombre" field.
func (_c *RolCreate) SetNombre(v string) *RolCreate {
	_c.mutation.SetNombre(v)
	return _c
}

// SetDescripcion sets the "descripcion" field.
func (_c *RolCreate) SetDescripcion(v string) *RolCreate {
	_c.mutation.SetDescripcion(v)
	return _c
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_c *RolCreate) SetNillableDescripcion(v *string) *RolCreate {
	if v != nil {
		_c.SetDescripcion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RolCreate) SetID(v uuid.UUID) *RolCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RolCreate) SetNillableID(v *uuid.UUID) *RolCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddUsuarioIDs adds the "usuarios" edge to the Usuario entity by IDs.
func (_c *RolCreate) AddUsuarioIDs(ids ...uuid.UUID) *RolCreate {
	_c.mutation.AddUsuarioIDs(ids...)
	return _c
}

// AddUsuarios adds the "usuarios" edges to the Usuario entity.
func (_c *RolCreate) AddUsuarios(v ...*Usuario) *RolCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUsuarioIDs(ids...)
}

// Mutation returns the RolMutation object of the builder.
func (_c *RolCreate) Mutation() *RolMutation {
	return _c.mutation
}

// Save creates the Rol in the database.
func (_c *RolCreate) Save(ctx context.Context) (*Rol, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RolCreate) SaveX(ctx context.Context) *Rol {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RolCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rol.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rol.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rol.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RolCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Rol.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Rol.updated_at"`)}
	}
	if _, ok := _c.mutation.Nombre(); !ok {
		return &ValidationError{Name: "nombre", err: errors.New(`repo: missing required field "Rol.nombre"`)}
	}
	if v, ok := _c.mutation.Nombre(); ok {
		if err := rol.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Rol.nombre": %w`, err)}
		}
	}
	return nil
}

func (_c *RolCreate) sqlSave(ctx context.Context) (*Rol, error) {
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

func (_c *RolCreate) createSpec() (*Rol, *sqlgraph.CreateSpec) {
	var (
		_node = &Rol{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rol.Table, sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rol.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rol.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Nombre(); ok {
		_spec.SetField(rol.FieldNombre, field.TypeString, value)
		_node.Nombre = value
	}
	if value, ok := _c.mutation.Descripcion(); ok {
		_spec.SetField(rol.FieldDescripcion, field.TypeString, value)
		_node.Descripcion = value
	}
	if nodes := _c.mutation.UsuariosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Rol.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RolUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RolCreate) OnConflict(opts ...sql.ConflictOption) *RolUpsertOne {
	_c.conflict = opts
	return &RolUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Rol.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RolCreate) OnConflictColumns(columns ...string) *RolUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RolUpsertOne{
		create: _c,
	}
}

type (
	// RolUpsertOne is the builder for "upsert"-ing
	//  one Rol node.
	RolUpsertOne struct {
		create *RolCreate
	}

	// RolUpsert is the "OnConflict" setter.
	RolUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RolUpsert) SetUpdatedAt(v time.Time) *RolUpsert {
	u.Set(rol.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RolUpsert) UpdateUpdatedAt() *RolUpsert {
	u.SetExcluded(rol.FieldUpdatedAt)
	return u
}

// SetNombre sets the "nombre" field.
func (u *RolUpsert) SetNombre(v string) *RolUpsert {
	u.Set(rol.FieldNombre, v)
	return u
}

// UpdateNombre sets the "nombre" field to the value that was provided on create.
func (u *RolUpsert) UpdateNombre() *RolUpsert {
	u.SetExcluded(rol.FieldNombre)
	return u
}

// SetDescripcion sets the "descripcion" field.
func (u *RolUpsert) SetDescripcion(v string) *RolUpsert {
	u.Set(rol.FieldDescripcion, v)
	return u
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *RolUpsert) UpdateDescripcion() *RolUpsert {
	u.SetExcluded(rol.FieldDescripcion)
	return u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *RolUpsert) ClearDescripcion() *RolUpsert {
	u.SetNull(rol.FieldDescripcion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Rol.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rol.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RolUpsertOne) UpdateNewValues() *RolUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rol.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rol.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Rol.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RolUpsertOne) Ignore() *RolUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RolUpsertOne) DoNothing() *RolUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RolCreate.OnConflict
// documentation for more info.
func (u *RolUpsertOne) Update(set func(*RolUpsert)) *RolUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RolUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RolUpsertOne) SetUpdatedAt(v time.Time) *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RolUpsertOne) UpdateUpdatedAt() *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetNombre sets the "nombre" field.
func (u *RolUpsertOne) SetNombre(v string) *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.SetNombre(v)
	})
}

// UpdateNombre sets the "nombre" field to the value that was provided on create.
func (u *RolUpsertOne) UpdateNombre() *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.UpdateNombre()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *RolUpsertOne) SetDescripcion(v string) *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *RolUpsertOne) UpdateDescripcion() *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.UpdateDescripcion()
	})
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *RolUpsertOne) ClearDescripcion() *RolUpsertOne {
	return u.Update(func(s *RolUpsert) {
		s.ClearDescripcion()
	})
}

// Exec executes the query.
func (u *RolUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RolCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RolUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RolUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RolUpsertOne.ID is not supported by MySQL driver. Use RolUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RolUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RolCreateBulk is the builder for creating many Rol entities in bulk.
type RolCreateBulk struct {
	config
	err      error
	builders []*RolCreate
	conflict []sql.ConflictOption
}

// Save creates the Rol entities in the database.
func (_c *RolCreateBulk) Save(ctx context.Context) ([]*Rol, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rol, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RolMutation)
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
func (_c *RolCreateBulk) SaveX(ctx context.Context) []*Rol {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Rol.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RolUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RolCreateBulk) OnConflict(opts ...sql.ConflictOption) *RolUpsertBulk {
	_c.conflict = opts
	return &RolUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Rol.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RolCreateBulk) OnConflictColumns(columns ...string) *RolUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RolUpsertBulk{
		create: _c,
	}
}

// RolUpsertBulk is the builder for "upsert"-ing
// a bulk of Rol nodes.
type RolUpsertBulk struct {
	create *RolCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Rol.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rol.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RolUpsertBulk) UpdateNewValues() *RolUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rol.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rol.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Rol.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RolUpsertBulk) Ignore() *RolUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RolUpsertBulk) DoNothing() *RolUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RolCreateBulk.OnConflict
// documentation for more info.
func (u *RolUpsertBulk) Update(set func(*RolUpsert)) *RolUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RolUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RolUpsertBulk) SetUpdatedAt(v time.Time) *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RolUpsertBulk) UpdateUpdatedAt() *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetNombre sets the "nombre" field.
func (u *RolUpsertBulk) SetNombre(v string) *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.SetNombre(v)
	})
}

// UpdateNombre sets the "nombre" field to the value that was provided on create.
func (u *RolUpsertBulk) UpdateNombre() *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.UpdateNombre()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *RolUpsertBulk) SetDescripcion(v string) *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *RolUpsertBulk) UpdateDescripcion() *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.UpdateDescripcion()
	})
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *RolUpsertBulk) ClearDescripcion() *RolUpsertBulk {
	return u.Update(func(s *RolUpsert) {
		s.ClearDescripcion()
	})
}

// Exec executes the query.
func (u *RolUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RolCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RolCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RolUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
