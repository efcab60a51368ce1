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
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
)

// DiagnosticoCIE10Create is the builder for creating a DiagnosticoCIE10 entity.
type DiagnosticoCIE10Create struct {
	config
	mutation *DiagnosticoCIE10Mutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiagnosticoCIE10Create) SetCreatedAt(v time.Time) *DiagnosticoCIE10Create {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiagnosticoCIE10Create) SetNillableCreatedAt(v *time.Time) *DiagnosticoCIE10Create {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiagnosticoCIE10Create) SetUpdatedAt(v time.Time) *DiagnosticoCIE10Create {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiagnosticoCIE10Create) SetNillableUpdatedAt(v *time.Time) *DiagnosticoCIE10Create {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCodigo sets the "codigo" field.
func (_c *DiagnosticoCIE10Create) SetCodigo(v string) *DiagnosticoCIE10Create {
	_c.mutation.SetCodigo(v)
	return _c
}

// SetDescripcion sets the "descripcion" field.
func (_c *DiagnosticoCIE10Create) SetDescripcion(v string) *DiagnosticoCIE10Create {
	_c.mutation.SetDescripcion(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosticoCIE10Create) SetID(v uuid.UUID) *DiagnosticoCIE10Create {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DiagnosticoCIE10Create) SetNillableID(v *uuid.UUID) *DiagnosticoCIE10Create {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (_c *DiagnosticoCIE10Create) AddPartoDiagnosticoIDs(ids ...uuid.UUID) *DiagnosticoCIE10Create {
	_c.mutation.AddPartoDiagnosticoIDs(ids...)
	return _c
}

// AddPartoDiagnosticos adds the "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_c *DiagnosticoCIE10Create) AddPartoDiagnosticos(v ...*PartoDiagnostico) *DiagnosticoCIE10Create {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPartoDiagnosticoIDs(ids...)
}

// AddDefuncioneIDs adds the "defunciones" edge to the Defuncion entity by IDs.
func (_c *DiagnosticoCIE10Create) AddDefuncioneIDs(ids ...uuid.UUID) *DiagnosticoCIE10Create {
	_c.mutation.AddDefuncioneIDs(ids...)
	return _c
}

// AddDefunciones adds the "defunciones" edges to the Defuncion entity.
func (_c *DiagnosticoCIE10Create) AddDefunciones(v ...*Defuncion) *DiagnosticoCIE10Create {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDefuncioneIDs(ids...)
}

// Mutation returns the DiagnosticoCIE10Mutation object of the builder.
func (_c *DiagnosticoCIE10Create) Mutation() *DiagnosticoCIE10Mutation {
	return _c.mutation
}

// Save creates the DiagnosticoCIE10 in the database.
func (_c *DiagnosticoCIE10Create) Save(ctx context.Context) (*DiagnosticoCIE10, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosticoCIE10Create) SaveX(ctx context.Context) *DiagnosticoCIE10 {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticoCIE10Create) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticoCIE10Create) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosticoCIE10Create) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diagnosticocie10.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := diagnosticocie10.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := diagnosticocie10.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosticoCIE10Create) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DiagnosticoCIE10.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DiagnosticoCIE10.updated_at"`)}
	}
	if _, ok := _c.mutation.Codigo(); !ok {
		return &ValidationError{Name: "codigo", err: errors.New(`repo: missing required field "DiagnosticoCIE10.codigo"`)}
	}
	if v, ok := _c.mutation.Codigo(); ok {
		if err := diagnosticocie10.CodigoValidator(v); err != nil {
			return &ValidationError{Name: "codigo", err: fmt.Errorf(`repo: validator failed for field "DiagnosticoCIE10.codigo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Descripcion(); !ok {
		return &ValidationError{Name: "descripcion", err: errors.New(`repo: missing required field "DiagnosticoCIE10.descripcion"`)}
	}
	return nil
}

func (_c *DiagnosticoCIE10Create) sqlSave(ctx context.Context) (*DiagnosticoCIE10, error) {
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

func (_c *DiagnosticoCIE10Create) createSpec() (*DiagnosticoCIE10, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosticoCIE10{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosticocie10.Table, sqlgraph.NewFieldSpec(diagnosticocie10.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diagnosticocie10.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(diagnosticocie10.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Codigo(); ok {
		_spec.SetField(diagnosticocie10.FieldCodigo, field.TypeString, value)
		_node.Codigo = value
	}
	if value, ok := _c.mutation.Descripcion(); ok {
		_spec.SetField(diagnosticocie10.FieldDescripcion, field.TypeString, value)
		_node.Descripcion = value
	}
	if nodes := _c.mutation.PartoDiagnosticosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DefuncionesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DiagnosticoCIE10.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosticoCIE10Upsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosticoCIE10Create) OnConflict(opts ...sql.ConflictOption) *DiagnosticoCIE10UpsertOne {
	_c.conflict = opts
	return &DiagnosticoCIE10UpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DiagnosticoCIE10.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosticoCIE10Create) OnConflictColumns(columns ...string) *DiagnosticoCIE10UpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosticoCIE10UpsertOne{
		create: _c,
	}
}

type (
	// DiagnosticoCIE10UpsertOne is the builder for "upsert"-ing
	//  one DiagnosticoCIE10 node.
	DiagnosticoCIE10UpsertOne struct {
		create *DiagnosticoCIE10Create
	}

	// DiagnosticoCIE10Upsert is the "OnConflict" setter.
	DiagnosticoCIE10Upsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DiagnosticoCIE10Upsert) SetUpdatedAt(v time.Time) *DiagnosticoCIE10Upsert {
	u.Set(diagnosticocie10.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiagnosticoCIE10Upsert) UpdateUpdatedAt() *DiagnosticoCIE10Upsert {
	u.SetExcluded(diagnosticocie10.FieldUpdatedAt)
	return u
}

// SetCodigo sets the "codigo" field.
func (u *DiagnosticoCIE10Upsert) SetCodigo(v string) *DiagnosticoCIE10Upsert {
	u.Set(diagnosticocie10.FieldCodigo, v)
	return u
}

// UpdateCodigo sets the "codigo" field to the value that was provided on create.
func (u *DiagnosticoCIE10Upsert) UpdateCodigo() *DiagnosticoCIE10Upsert {
	u.SetExcluded(diagnosticocie10.FieldCodigo)
	return u
}

// SetDescripcion sets the "descripcion" field.
func (u *DiagnosticoCIE10Upsert) SetDescripcion(v string) *DiagnosticoCIE10Upsert {
	u.Set(diagnosticocie10.FieldDescripcion, v)
	return u
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *DiagnosticoCIE10Upsert) UpdateDescripcion() *DiagnosticoCIE10Upsert {
	u.SetExcluded(diagnosticocie10.FieldDescripcion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DiagnosticoCIE10.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosticocie10.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosticoCIE10UpsertOne) UpdateNewValues() *DiagnosticoCIE10UpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(diagnosticocie10.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(diagnosticocie10.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DiagnosticoCIE10.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiagnosticoCIE10UpsertOne) Ignore() *DiagnosticoCIE10UpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosticoCIE10UpsertOne) DoNothing() *DiagnosticoCIE10UpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosticoCIE10Create.OnConflict
// documentation for more info.
func (u *DiagnosticoCIE10UpsertOne) Update(set func(*DiagnosticoCIE10Upsert)) *DiagnosticoCIE10UpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosticoCIE10Upsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiagnosticoCIE10UpsertOne) SetUpdatedAt(v time.Time) *DiagnosticoCIE10UpsertOne {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiagnosticoCIE10UpsertOne) UpdateUpdatedAt() *DiagnosticoCIE10UpsertOne {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCodigo sets the "codigo" field.
func (u *DiagnosticoCIE10UpsertOne) SetCodigo(v string) *DiagnosticoCIE10UpsertOne {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.SetCodigo(v)
	})
}

// UpdateCodigo sets the "codigo" field to the value that was provided on create.
func (u *DiagnosticoCIE10UpsertOne) UpdateCodigo() *DiagnosticoCIE10UpsertOne {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.UpdateCodigo()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *DiagnosticoCIE10UpsertOne) SetDescripcion(v string) *DiagnosticoCIE10UpsertOne {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *DiagnosticoCIE10UpsertOne) UpdateDescripcion() *DiagnosticoCIE10UpsertOne {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.UpdateDescripcion()
	})
}

// Exec executes the query.
func (u *DiagnosticoCIE10UpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiagnosticoCIE10Create.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosticoCIE10UpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiagnosticoCIE10UpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DiagnosticoCIE10UpsertOne.ID is not supported by MySQL driver. Use DiagnosticoCIE10UpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiagnosticoCIE10UpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiagnosticoCIE10CreateBulk is the builder for creating many DiagnosticoCIE10 entities in bulk.
type DiagnosticoCIE10CreateBulk struct {
	config
	err      error
	builders []*DiagnosticoCIE10Create
	conflict []sql.ConflictOption
}

// Save creates the DiagnosticoCIE10 entities in the database.
func (_c *DiagnosticoCIE10CreateBulk) Save(ctx context.Context) ([]*DiagnosticoCIE10, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosticoCIE10, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosticoCIE10Mutation)
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
func (_c *DiagnosticoCIE10CreateBulk) SaveX(ctx context.Context) []*DiagnosticoCIE10 {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticoCIE10CreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticoCIE10CreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DiagnosticoCIE10.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosticoCIE10Upsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosticoCIE10CreateBulk) OnConflict(opts ...sql.ConflictOption) *DiagnosticoCIE10UpsertBulk {
	_c.conflict = opts
	return &DiagnosticoCIE10UpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DiagnosticoCIE10.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosticoCIE10CreateBulk) OnConflictColumns(columns ...string) *DiagnosticoCIE10UpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosticoCIE10UpsertBulk{
		create: _c,
	}
}

// DiagnosticoCIE10UpsertBulk is the builder for "upsert"-ing
// a bulk of DiagnosticoCIE10 nodes.
type DiagnosticoCIE10UpsertBulk struct {
	create *DiagnosticoCIE10CreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DiagnosticoCIE10.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosticocie10.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosticoCIE10UpsertBulk) UpdateNewValues() *DiagnosticoCIE10UpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(diagnosticocie10.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(diagnosticocie10.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DiagnosticoCIE10.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiagnosticoCIE10UpsertBulk) Ignore() *DiagnosticoCIE10UpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosticoCIE10UpsertBulk) DoNothing() *DiagnosticoCIE10UpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosticoCIE10CreateBulk.OnConflict
// documentation for more info.
func (u *DiagnosticoCIE10UpsertBulk) Update(set func(*DiagnosticoCIE10Upsert)) *DiagnosticoCIE10UpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosticoCIE10Upsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiagnosticoCIE10UpsertBulk) SetUpdatedAt(v time.Time) *DiagnosticoCIE10UpsertBulk {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiagnosticoCIE10UpsertBulk) UpdateUpdatedAt() *DiagnosticoCIE10UpsertBulk {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCodigo sets the "codigo" field.
func (u *DiagnosticoCIE10UpsertBulk) SetCodigo(v string) *DiagnosticoCIE10UpsertBulk {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.SetCodigo(v)
	})
}

// UpdateCodigo sets the "codigo" field to the value that was provided on create.
func (u *DiagnosticoCIE10UpsertBulk) UpdateCodigo() *DiagnosticoCIE10UpsertBulk {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.UpdateCodigo()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *DiagnosticoCIE10UpsertBulk) SetDescripcion(v string) *DiagnosticoCIE10UpsertBulk {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *DiagnosticoCIE10UpsertBulk) UpdateDescripcion() *DiagnosticoCIE10UpsertBulk {
	return u.Update(func(s *DiagnosticoCIE10Upsert) {
		s.UpdateDescripcion()
	})
}

// Exec executes the query.
func (u *DiagnosticoCIE10UpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DiagnosticoCIE10CreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiagnosticoCIE10CreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosticoCIE10UpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
