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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DocumentoReferenciaCreate is the builder for creating a DocumentoReferencia entity.
type DocumentoReferenciaCreate struct {
	config
	mutation *DocumentoReferenciaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentoReferenciaCreate) SetCreatedAt(v time.Time) *DocumentoReferenciaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentoReferenciaCreate) SetNillableCreatedAt(v *time.Time) *DocumentoReferenciaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPartoID sets the "parto_id" field.
func (_c *DocumentoReferenciaCreate) SetPartoID(v uuid.UUID) *DocumentoReferenciaCreate {
	_c.mutation.SetPartoID(v)
	return _c
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (_c *DocumentoReferenciaCreate) SetMongodbObjectID(v string) *DocumentoReferenciaCreate {
	_c.mutation.SetMongodbObjectID(v)
	return _c
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_c *DocumentoReferenciaCreate) SetNombreArchivo(v string) *DocumentoReferenciaCreate {
	_c.mutation.SetNombreArchivo(v)
	return _c
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_c *DocumentoReferenciaCreate) SetTipoDocumento(v documentoreferencia.TipoDocumento) *DocumentoReferenciaCreate {
	_c.mutation.SetTipoDocumento(v)
	return _c
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_c *DocumentoReferenciaCreate) SetNillableTipoDocumento(v *documentoreferencia.TipoDocumento) *DocumentoReferenciaCreate {
	if v != nil {
		_c.SetTipoDocumento(*v)
	}
	return _c
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (_c *DocumentoReferenciaCreate) SetUsuarioGeneracionID(v uuid.UUID) *DocumentoReferenciaCreate {
	_c.mutation.SetUsuarioGeneracionID(v)
	return _c
}

// SetNillableUsuarioGeneracionID sets the "usuario_generacion_id" field if the given value is not nil.
func (_c *DocumentoReferenciaCreate) SetNillableUsuarioGeneracionID(v *uuid.UUID) *DocumentoReferenciaCreate {
	if v != nil {
		_c.SetUsuarioGeneracionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentoReferenciaCreate) SetID(v uuid.UUID) *DocumentoReferenciaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentoReferenciaCreate) SetNillableID(v *uuid.UUID) *DocumentoReferenciaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParto sets the "parto" edge to the Parto entity.
func (_c *DocumentoReferenciaCreate) SetParto(v *Parto) *DocumentoReferenciaCreate {
	return _c.SetPartoID(v.ID)
}

// SetUsuarioGeneracion sets the "usuario_generacion" edge to the Usuario entity.
func (_c *DocumentoReferenciaCreate) SetUsuarioGeneracion(v *Usuario) *DocumentoReferenciaCreate {
	return _c.SetUsuarioGeneracionID(v.ID)
}

// Mutation returns the DocumentoReferenciaMutation object of the builder.
func (_c *DocumentoReferenciaCreate) Mutation() *DocumentoReferenciaMutation {
	return _c.mutation
}

// Save creates the DocumentoReferencia in the database.
func (_c *DocumentoReferenciaCreate) Save(ctx context.Context) (*DocumentoReferencia, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentoReferenciaCreate) SaveX(ctx context.Context) *DocumentoReferencia {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentoReferenciaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentoReferenciaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentoReferenciaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentoreferencia.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TipoDocumento(); !ok {
		v := documentoreferencia.DefaultTipoDocumento
		_c.mutation.SetTipoDocumento(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentoreferencia.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentoReferenciaCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DocumentoReferencia.created_at"`)}
	}
	if _, ok := _c.mutation.PartoID(); !ok {
		return &ValidationError{Name: "parto_id", err: errors.New(`repo: missing required field "DocumentoReferencia.parto_id"`)}
	}
	if _, ok := _c.mutation.MongodbObjectID(); !ok {
		return &ValidationError{Name: "mongodb_object_id", err: errors.New(`repo: missing required field "DocumentoReferencia.mongodb_object_id"`)}
	}
	if v, ok := _c.mutation.MongodbObjectID(); ok {
		if err := documentoreferencia.MongodbObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "mongodb_object_id", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.mongodb_object_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NombreArchivo(); !ok {
		return &ValidationError{Name: "nombre_archivo", err: errors.New(`repo: missing required field "DocumentoReferencia.nombre_archivo"`)}
	}
	if v, ok := _c.mutation.NombreArchivo(); ok {
		if err := documentoreferencia.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.nombre_archivo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TipoDocumento(); !ok {
		return &ValidationError{Name: "tipo_documento", err: errors.New(`repo: missing required field "DocumentoReferencia.tipo_documento"`)}
	}
	if v, ok := _c.mutation.TipoDocumento(); ok {
		if err := documentoreferencia.TipoDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_documento", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.tipo_documento": %w`, err)}
		}
	}
	if len(_c.mutation.PartoIDs()) == 0 {
		return &ValidationError{Name: "parto", err: errors.New(`repo: missing required edge "DocumentoReferencia.parto"`)}
	}
	return nil
}

func (_c *DocumentoReferenciaCreate) sqlSave(ctx context.Context) (*DocumentoReferencia, error) {
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

func (_c *DocumentoReferenciaCreate) createSpec() (*DocumentoReferencia, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentoReferencia{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentoreferencia.Table, sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentoreferencia.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.MongodbObjectID(); ok {
		_spec.SetField(documentoreferencia.FieldMongodbObjectID, field.TypeString, value)
		_node.MongodbObjectID = value
	}
	if value, ok := _c.mutation.NombreArchivo(); ok {
		_spec.SetField(documentoreferencia.FieldNombreArchivo, field.TypeString, value)
		_node.NombreArchivo = value
	}
	if value, ok := _c.mutation.TipoDocumento(); ok {
		_spec.SetField(documentoreferencia.FieldTipoDocumento, field.TypeEnum, value)
		_node.TipoDocumento = value
	}
	if nodes := _c.mutation.PartoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentoreferencia.PartoTable,
			Columns: []string{documentoreferencia.PartoColumn},
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
	if nodes := _c.mutation.UsuarioGeneracionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentoreferencia.UsuarioGeneracionTable,
			Columns: []string{documentoreferencia.UsuarioGeneracionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UsuarioGeneracionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentoReferencia.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentoReferenciaUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentoReferenciaCreate) OnConflict(opts ...sql.ConflictOption) *DocumentoReferenciaUpsertOne {
	_c.conflict = opts
	return &DocumentoReferenciaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentoReferencia.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentoReferenciaCreate) OnConflictColumns(columns ...string) *DocumentoReferenciaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentoReferenciaUpsertOne{
		create: _c,
	}
}

type (
	// DocumentoReferenciaUpsertOne is the builder for "upsert"-ing
	//  one DocumentoReferencia node.
	DocumentoReferenciaUpsertOne struct {
		create *DocumentoReferenciaCreate
	}

	// DocumentoReferenciaUpsert is the "OnConflict" setter.
	DocumentoReferenciaUpsert struct {
		*sql.UpdateSet
	}
)

// SetPartoID sets the "parto_id" field.
func (u *DocumentoReferenciaUpsert) SetPartoID(v uuid.UUID) *DocumentoReferenciaUpsert {
	u.Set(documentoreferencia.FieldPartoID, v)
	return u
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsert) UpdatePartoID() *DocumentoReferenciaUpsert {
	u.SetExcluded(documentoreferencia.FieldPartoID)
	return u
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (u *DocumentoReferenciaUpsert) SetMongodbObjectID(v string) *DocumentoReferenciaUpsert {
	u.Set(documentoreferencia.FieldMongodbObjectID, v)
	return u
}

// UpdateMongodbObjectID sets the "mongodb_object_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsert) UpdateMongodbObjectID() *DocumentoReferenciaUpsert {
	u.SetExcluded(documentoreferencia.FieldMongodbObjectID)
	return u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (u *DocumentoReferenciaUpsert) SetNombreArchivo(v string) *DocumentoReferenciaUpsert {
	u.Set(documentoreferencia.FieldNombreArchivo, v)
	return u
}

// UpdateNombreArchivo sets the "nombre_archivo" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsert) UpdateNombreArchivo() *DocumentoReferenciaUpsert {
	u.SetExcluded(documentoreferencia.FieldNombreArchivo)
	return u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (u *DocumentoReferenciaUpsert) SetTipoDocumento(v documentoreferencia.TipoDocumento) *DocumentoReferenciaUpsert {
	u.Set(documentoreferencia.FieldTipoDocumento, v)
	return u
}

// UpdateTipoDocumento sets the "tipo_documento" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsert) UpdateTipoDocumento() *DocumentoReferenciaUpsert {
	u.SetExcluded(documentoreferencia.FieldTipoDocumento)
	return u
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (u *DocumentoReferenciaUpsert) SetUsuarioGeneracionID(v uuid.UUID) *DocumentoReferenciaUpsert {
	u.Set(documentoreferencia.FieldUsuarioGeneracionID, v)
	return u
}

// UpdateUsuarioGeneracionID sets the "usuario_generacion_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsert) UpdateUsuarioGeneracionID() *DocumentoReferenciaUpsert {
	u.SetExcluded(documentoreferencia.FieldUsuarioGeneracionID)
	return u
}

// ClearUsuarioGeneracionID clears the value of the "usuario_generacion_id" field.
func (u *DocumentoReferenciaUpsert) ClearUsuarioGeneracionID() *DocumentoReferenciaUpsert {
	u.SetNull(documentoreferencia.FieldUsuarioGeneracionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DocumentoReferencia.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(documentoreferencia.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentoReferenciaUpsertOne) UpdateNewValues() *DocumentoReferenciaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(documentoreferencia.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(documentoreferencia.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentoReferencia.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentoReferenciaUpsertOne) Ignore() *DocumentoReferenciaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentoReferenciaUpsertOne) DoNothing() *DocumentoReferenciaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentoReferenciaCreate.OnConflict
// documentation for more info.
func (u *DocumentoReferenciaUpsertOne) Update(set func(*DocumentoReferenciaUpsert)) *DocumentoReferenciaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentoReferenciaUpsert{UpdateSet: update})
	}))
	return u
}

// SetPartoID sets the "parto_id" field.
func (u *DocumentoReferenciaUpsertOne) SetPartoID(v uuid.UUID) *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetPartoID(v)
	})
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertOne) UpdatePartoID() *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdatePartoID()
	})
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (u *DocumentoReferenciaUpsertOne) SetMongodbObjectID(v string) *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetMongodbObjectID(v)
	})
}

// UpdateMongodbObjectID sets the "mongodb_object_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertOne) UpdateMongodbObjectID() *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateMongodbObjectID()
	})
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (u *DocumentoReferenciaUpsertOne) SetNombreArchivo(v string) *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetNombreArchivo(v)
	})
}

// UpdateNombreArchivo sets the "nombre_archivo" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertOne) UpdateNombreArchivo() *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateNombreArchivo()
	})
}

// SetTipoDocumento sets the "tipo_documento" field.
func (u *DocumentoReferenciaUpsertOne) SetTipoDocumento(v documentoreferencia.TipoDocumento) *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetTipoDocumento(v)
	})
}

// UpdateTipoDocumento sets the "tipo_documento" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertOne) UpdateTipoDocumento() *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateTipoDocumento()
	})
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (u *DocumentoReferenciaUpsertOne) SetUsuarioGeneracionID(v uuid.UUID) *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetUsuarioGeneracionID(v)
	})
}

// UpdateUsuarioGeneracionID sets the "usuario_generacion_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertOne) UpdateUsuarioGeneracionID() *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateUsuarioGeneracionID()
	})
}

// ClearUsuarioGeneracionID clears the value of the "usuario_generacion_id" field.
func (u *DocumentoReferenciaUpsertOne) ClearUsuarioGeneracionID() *DocumentoReferenciaUpsertOne {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.ClearUsuarioGeneracionID()
	})
}

// Exec executes the query.
func (u *DocumentoReferenciaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DocumentoReferenciaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentoReferenciaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentoReferenciaUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DocumentoReferenciaUpsertOne.ID is not supported by MySQL driver. Use DocumentoReferenciaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentoReferenciaUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentoReferenciaCreateBulk is the builder for creating many DocumentoReferencia entities in bulk.
type DocumentoReferenciaCreateBulk struct {
	config
	err      error
	builders []*DocumentoReferenciaCreate
	conflict []sql.ConflictOption
}

// Save creates the DocumentoReferencia entities in the database.
func (_c *DocumentoReferenciaCreateBulk) Save(ctx context.Context) ([]*DocumentoReferencia, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentoReferencia, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentoReferenciaMutation)
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
func (_c *DocumentoReferenciaCreateBulk) SaveX(ctx context.Context) []*DocumentoReferencia {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentoReferenciaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentoReferenciaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentoReferencia.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentoReferenciaUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentoReferenciaCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentoReferenciaUpsertBulk {
	_c.conflict = opts
	return &DocumentoReferenciaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentoReferencia.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentoReferenciaCreateBulk) OnConflictColumns(columns ...string) *DocumentoReferenciaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentoReferenciaUpsertBulk{
		create: _c,
	}
}

// DocumentoReferenciaUpsertBulk is the builder for "upsert"-ing
// a bulk of DocumentoReferencia nodes.
type DocumentoReferenciaUpsertBulk struct {
	create *DocumentoReferenciaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DocumentoReferencia.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(documentoreferencia.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentoReferenciaUpsertBulk) UpdateNewValues() *DocumentoReferenciaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(documentoreferencia.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(documentoreferencia.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentoReferencia.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentoReferenciaUpsertBulk) Ignore() *DocumentoReferenciaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentoReferenciaUpsertBulk) DoNothing() *DocumentoReferenciaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentoReferenciaCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentoReferenciaUpsertBulk) Update(set func(*DocumentoReferenciaUpsert)) *DocumentoReferenciaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentoReferenciaUpsert{UpdateSet: update})
	}))
	return u
}

// SetPartoID sets the "parto_id" field.
func (u *DocumentoReferenciaUpsertBulk) SetPartoID(v uuid.UUID) *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetPartoID(v)
	})
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertBulk) UpdatePartoID() *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdatePartoID()
	})
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (u *DocumentoReferenciaUpsertBulk) SetMongodbObjectID(v string) *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetMongodbObjectID(v)
	})
}

// UpdateMongodbObjectID sets the "mongodb_object_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertBulk) UpdateMongodbObjectID() *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateMongodbObjectID()
	})
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (u *DocumentoReferenciaUpsertBulk) SetNombreArchivo(v string) *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetNombreArchivo(v)
	})
}

// UpdateNombreArchivo sets the "nombre_archivo" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertBulk) UpdateNombreArchivo() *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateNombreArchivo()
	})
}

// SetTipoDocumento sets the "tipo_documento" field.
func (u *DocumentoReferenciaUpsertBulk) SetTipoDocumento(v documentoreferencia.TipoDocumento) *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetTipoDocumento(v)
	})
}

// UpdateTipoDocumento sets the "tipo_documento" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertBulk) UpdateTipoDocumento() *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateTipoDocumento()
	})
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (u *DocumentoReferenciaUpsertBulk) SetUsuarioGeneracionID(v uuid.UUID) *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.SetUsuarioGeneracionID(v)
	})
}

// UpdateUsuarioGeneracionID sets the "usuario_generacion_id" field to the value that was provided on create.
func (u *DocumentoReferenciaUpsertBulk) UpdateUsuarioGeneracionID() *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.UpdateUsuarioGeneracionID()
	})
}

// ClearUsuarioGeneracionID clears the value of the "usuario_generacion_id" field.
func (u *DocumentoReferenciaUpsertBulk) ClearUsuarioGeneracionID() *DocumentoReferenciaUpsertBulk {
	return u.Update(func(s *DocumentoReferenciaUpsert) {
		s.ClearUsuarioGeneracionID()
	})
}

// Exec executes the query.
func (u *DocumentoReferenciaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DocumentoReferenciaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DocumentoReferenciaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentoReferenciaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
