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
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
)

// PartoDiagnosticoCreate is the builder for creating a PartoDiagnostico entity.
type PartoDiagnosticoCreate struct {
	config
	mutation *PartoDiagnosticoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PartoDiagnosticoCreate) SetCreatedAt(v time.Time) *PartoDiagnosticoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PartoDiagnosticoCreate) SetNillableCreatedAt(v *time.Time) *PartoDiagnosticoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPartoID sets the "parto_id" field.
func (_c *PartoDiagnosticoCreate) SetPartoID(v uuid.UUID) *PartoDiagnosticoCreate {
	_c.mutation.SetPartoID(v)
	return _c
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (_c *PartoDiagnosticoCreate) SetDiagnosticoID(v uuid.UUID) *PartoDiagnosticoCreate {
	_c.mutation.SetDiagnosticoID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PartoDiagnosticoCreate) SetID(v uuid.UUID) *PartoDiagnosticoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PartoDiagnosticoCreate) SetNillableID(v *uuid.UUID) *PartoDiagnosticoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParto sets the "parto" edge to the Parto entity.
func (_c *PartoDiagnosticoCreate) SetParto(v *Parto) *PartoDiagnosticoCreate {
	return _c.SetPartoID(v.ID)
}

// SetDiagnostico sets the "diagnostico" edge to the DiagnosticoCIE10 entity.
func (_c *PartoDiagnosticoCreate) SetDiagnostico(v *DiagnosticoCIE10) *PartoDiagnosticoCreate {
	return _c.SetDiagnosticoID(v.ID)
}

// Mutation returns the PartoDiagnosticoMutation object of the builder.
func (_c *PartoDiagnosticoCreate) Mutation() *PartoDiagnosticoMutation {
	return _c.mutation
}

// Save creates the PartoDiagnostico in the database.
func (_c *PartoDiagnosticoCreate) Save(ctx context.Context) (*PartoDiagnostico, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartoDiagnosticoCreate) SaveX(ctx context.Context) *PartoDiagnostico {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartoDiagnosticoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartoDiagnosticoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartoDiagnosticoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := partodiagnostico.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := partodiagnostico.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartoDiagnosticoCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PartoDiagnostico.created_at"`)}
	}
	if _, ok := _c.mutation.PartoID(); !ok {
		return &ValidationError{Name: "parto_id", err: errors.New(`repo: missing required field "PartoDiagnostico.parto_id"`)}
	}
	if _, ok := _c.mutation.DiagnosticoID(); !ok {
		return &ValidationError{Name: "diagnostico_id", err: errors.New(`repo: missing required field "PartoDiagnostico.diagnostico_id"`)}
	}
	if len(_c.mutation.PartoIDs()) == 0 {
		return &ValidationError{Name: "parto", err: errors.New(`repo: missing required edge "PartoDiagnostico.parto"`)}
	}
	if len(_c.mutation.DiagnosticoIDs()) == 0 {
		return &ValidationError{Name: "diagnostico", err: errors.New(`repo: missing required edge "PartoDiagnostico.diagnostico"`)}
	}
	return nil
}

func (_c *PartoDiagnosticoCreate) sqlSave(ctx context.Context) (*PartoDiagnostico, error) {
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

func (_c *PartoDiagnosticoCreate) createSpec() (*PartoDiagnostico, *sqlgraph.CreateSpec) {
	var (
		_node = &PartoDiagnostico{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(partodiagnostico.Table, sqlgraph.NewFieldSpec(partodiagnostico.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(partodiagnostico.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PartoIDs(); len(nodes) > 0 {
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
		_node.PartoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DiagnosticoIDs(); len(nodes) > 0 {
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
		_node.DiagnosticoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PartoDiagnostico.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartoDiagnosticoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartoDiagnosticoCreate) OnConflict(opts ...sql.ConflictOption) *PartoDiagnosticoUpsertOne {
	_c.conflict = opts
	return &PartoDiagnosticoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PartoDiagnostico.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartoDiagnosticoCreate) OnConflictColumns(columns ...string) *PartoDiagnosticoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartoDiagnosticoUpsertOne{
		create: _c,
	}
}

type (
	// PartoDiagnosticoUpsertOne is the builder for "upsert"-ing
	//  one PartoDiagnostico node.
	PartoDiagnosticoUpsertOne struct {
		create *PartoDiagnosticoCreate
	}

	// PartoDiagnosticoUpsert is the "OnConflict" setter.
	PartoDiagnosticoUpsert struct {
		*sql.UpdateSet
	}
)

// SetPartoID sets the "parto_id" field.
func (u *PartoDiagnosticoUpsert) SetPartoID(v uuid.UUID) *PartoDiagnosticoUpsert {
	u.Set(partodiagnostico.FieldPartoID, v)
	return u
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *PartoDiagnosticoUpsert) UpdatePartoID() *PartoDiagnosticoUpsert {
	u.SetExcluded(partodiagnostico.FieldPartoID)
	return u
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (u *PartoDiagnosticoUpsert) SetDiagnosticoID(v uuid.UUID) *PartoDiagnosticoUpsert {
	u.Set(partodiagnostico.FieldDiagnosticoID, v)
	return u
}

// UpdateDiagnosticoID sets the "diagnostico_id" field to the value that was provided on create.
func (u *PartoDiagnosticoUpsert) UpdateDiagnosticoID() *PartoDiagnosticoUpsert {
	u.SetExcluded(partodiagnostico.FieldDiagnosticoID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PartoDiagnostico.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partodiagnostico.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartoDiagnosticoUpsertOne) UpdateNewValues() *PartoDiagnosticoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(partodiagnostico.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(partodiagnostico.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PartoDiagnostico.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PartoDiagnosticoUpsertOne) Ignore() *PartoDiagnosticoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartoDiagnosticoUpsertOne) DoNothing() *PartoDiagnosticoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartoDiagnosticoCreate.OnConflict
// documentation for more info.
func (u *PartoDiagnosticoUpsertOne) Update(set func(*PartoDiagnosticoUpsert)) *PartoDiagnosticoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartoDiagnosticoUpsert{UpdateSet: update})
	}))
	return u
}

// SetPartoID sets the "parto_id" field.
func (u *PartoDiagnosticoUpsertOne) SetPartoID(v uuid.UUID) *PartoDiagnosticoUpsertOne {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.SetPartoID(v)
	})
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *PartoDiagnosticoUpsertOne) UpdatePartoID() *PartoDiagnosticoUpsertOne {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.UpdatePartoID()
	})
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (u *PartoDiagnosticoUpsertOne) SetDiagnosticoID(v uuid.UUID) *PartoDiagnosticoUpsertOne {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.SetDiagnosticoID(v)
	})
}

// UpdateDiagnosticoID sets the "diagnostico_id" field to the value that was provided on create.
func (u *PartoDiagnosticoUpsertOne) UpdateDiagnosticoID() *PartoDiagnosticoUpsertOne {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.UpdateDiagnosticoID()
	})
}

// Exec executes the query.
func (u *PartoDiagnosticoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartoDiagnosticoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartoDiagnosticoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PartoDiagnosticoUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PartoDiagnosticoUpsertOne.ID is not supported by MySQL driver. Use PartoDiagnosticoUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PartoDiagnosticoUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PartoDiagnosticoCreateBulk is the builder for creating many PartoDiagnostico entities in bulk.
type PartoDiagnosticoCreateBulk struct {
	config
	err      error
	builders []*PartoDiagnosticoCreate
	conflict []sql.ConflictOption
}

// Save creates the PartoDiagnostico entities in the database.
func (_c *PartoDiagnosticoCreateBulk) Save(ctx context.Context) ([]*PartoDiagnostico, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PartoDiagnostico, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartoDiagnosticoMutation)
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
func (_c *PartoDiagnosticoCreateBulk) SaveX(ctx context.Context) []*PartoDiagnostico {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartoDiagnosticoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartoDiagnosticoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PartoDiagnostico.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartoDiagnosticoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartoDiagnosticoCreateBulk) OnConflict(opts ...sql.ConflictOption) *PartoDiagnosticoUpsertBulk {
	_c.conflict = opts
	return &PartoDiagnosticoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PartoDiagnostico.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartoDiagnosticoCreateBulk) OnConflictColumns(columns ...string) *PartoDiagnosticoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartoDiagnosticoUpsertBulk{
		create: _c,
	}
}

// PartoDiagnosticoUpsertBulk is the builder for "upsert"-ing
// a bulk of PartoDiagnostico nodes.
type PartoDiagnosticoUpsertBulk struct {
	create *PartoDiagnosticoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PartoDiagnostico.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(partodiagnostico.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartoDiagnosticoUpsertBulk) UpdateNewValues() *PartoDiagnosticoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(partodiagnostico.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(partodiagnostico.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PartoDiagnostico.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PartoDiagnosticoUpsertBulk) Ignore() *PartoDiagnosticoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartoDiagnosticoUpsertBulk) DoNothing() *PartoDiagnosticoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartoDiagnosticoCreateBulk.OnConflict
// documentation for more info.
func (u *PartoDiagnosticoUpsertBulk) Update(set func(*PartoDiagnosticoUpsert)) *PartoDiagnosticoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartoDiagnosticoUpsert{UpdateSet: update})
	}))
	return u
}

// SetPartoID sets the "parto_id" field.
func (u *PartoDiagnosticoUpsertBulk) SetPartoID(v uuid.UUID) *PartoDiagnosticoUpsertBulk {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.SetPartoID(v)
	})
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *PartoDiagnosticoUpsertBulk) UpdatePartoID() *PartoDiagnosticoUpsertBulk {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.UpdatePartoID()
	})
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (u *PartoDiagnosticoUpsertBulk) SetDiagnosticoID(v uuid.UUID) *PartoDiagnosticoUpsertBulk {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.SetDiagnosticoID(v)
	})
}

// UpdateDiagnosticoID sets the "diagnostico_id" field to the value that was provided on create.
func (u *PartoDiagnosticoUpsertBulk) UpdateDiagnosticoID() *PartoDiagnosticoUpsertBulk {
	return u.Update(func(s *PartoDiagnosticoUpsert) {
		s.UpdateDiagnosticoID()
	})
}

// Exec executes the query.
func (u *PartoDiagnosticoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PartoDiagnosticoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartoDiagnosticoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartoDiagnosticoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
