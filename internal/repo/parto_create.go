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
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// PartoCreate is the builder for creating a Parto entity.
type PartoCreate struct {
	config
	mutation *PartoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PartoCreate) SetCreatedAt(v time.Time) *PartoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PartoCreate) SetNillableCreatedAt(v *time.Time) *PartoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PartoCreate) SetUpdatedAt(v time.Time) *PartoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PartoCreate) SetNillableUpdatedAt(v *time.Time) *PartoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMadreID sets the "madre_id" field.
func (_c *PartoCreate) SetMadreID(v uuid.UUID) *PartoCreate {
	_c.mutation.SetMadreID(v)
	return _c
}

// SetFechaParto sets the "fecha_parto" field.
func (_c *PartoCreate) SetFechaParto(v time.Time) *PartoCreate {
	_c.mutation.SetFechaParto(v)
	return _c
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (_c *PartoCreate) SetEdadGestacional(v int) *PartoCreate {
	_c.mutation.SetEdadGestacional(v)
	return _c
}

// SetNillableEdadGestacional sets the "edad_gestacional" field if the given value is not nil.
func (_c *PartoCreate) SetNillableEdadGestacional(v *int) *PartoCreate {
	if v != nil {
		_c.SetEdadGestacional(*v)
	}
	return _c
}

// SetTipoParto sets the "tipo_parto" field.
func (_c *PartoCreate) SetTipoParto(v parto.TipoParto) *PartoCreate {
	_c.mutation.SetTipoParto(v)
	return _c
}

// SetAnestesia sets the "anestesia" field.
func (_c *PartoCreate) SetAnestesia(v parto.Anestesia) *PartoCreate {
	_c.mutation.SetAnestesia(v)
	return _c
}

// SetNillableAnestesia sets the "anestesia" field if the given value is not nil.
func (_c *PartoCreate) SetNillableAnestesia(v *parto.Anestesia) *PartoCreate {
	if v != nil {
		_c.SetAnestesia(*v)
	}
	return _c
}

// SetPartogramaData sets the "partograma_data" field.
func (_c *PartoCreate) SetPartogramaData(v map[string]interface{}) *PartoCreate {
	_c.mutation.SetPartogramaData(v)
	return _c
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (_c *PartoCreate) SetEpicrisisData(v map[string]interface{}) *PartoCreate {
	_c.mutation.SetEpicrisisData(v)
	return _c
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_c *PartoCreate) SetUsuarioRegistroID(v uuid.UUID) *PartoCreate {
	_c.mutation.SetUsuarioRegistroID(v)
	return _c
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_c *PartoCreate) SetNillableUsuarioRegistroID(v *uuid.UUID) *PartoCreate {
	if v != nil {
		_c.SetUsuarioRegistroID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PartoCreate) SetID(v uuid.UUID) *PartoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PartoCreate) SetNillableID(v *uuid.UUID) *PartoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMadre sets the "madre" edge to the Madre entity.
func (_c *PartoCreate) SetMadre(v *Madre) *PartoCreate {
	return _c.SetMadreID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_c *PartoCreate) SetUsuarioRegistro(v *Usuario) *PartoCreate {
	return _c.SetUsuarioRegistroID(v.ID)
}

// AddRecienNacidoIDs adds the "recien_nacidos" edge to the RecienNacido entity by IDs.
func (_c *PartoCreate) AddRecienNacidoIDs(ids ...uuid.UUID) *PartoCreate {
	_c.mutation.AddRecienNacidoIDs(ids...)
	return _c
}

// AddRecienNacidos adds the "recien_nacidos" edges to the RecienNacido entity.
func (_c *PartoCreate) AddRecienNacidos(v ...*RecienNacido) *PartoCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecienNacidoIDs(ids...)
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (_c *PartoCreate) AddPartoDiagnosticoIDs(ids ...uuid.UUID) *PartoCreate {
	_c.mutation.AddPartoDiagnosticoIDs(ids...)
	return _c
}

// AddPartoDiagnosticos adds the "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_c *PartoCreate) AddPartoDiagnosticos(v ...*PartoDiagnostico) *PartoCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPartoDiagnosticoIDs(ids...)
}

// AddDocumentoIDs adds the "documentos" edge to the DocumentoReferencia entity by IDs.
func (_c *PartoCreate) AddDocumentoIDs(ids ...uuid.UUID) *PartoCreate {
	_c.mutation.AddDocumentoIDs(ids...)
	return _c
}

// AddDocumentos adds the "documentos" edges to the DocumentoReferencia entity.
func (_c *PartoCreate) AddDocumentos(v ...*DocumentoReferencia) *PartoCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentoIDs(ids...)
}

// Mutation returns the PartoMutation object of the builder.
func (_c *PartoCreate) Mutation() *PartoMutation {
	return _c.mutation
}

// Save creates the Parto in the database.
func (_c *PartoCreate) Save(ctx context.Context) (*Parto, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PartoCreate) SaveX(ctx context.Context) *Parto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PartoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parto.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := parto.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Anestesia(); !ok {
		v := parto.DefaultAnestesia
		_c.mutation.SetAnestesia(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parto.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PartoCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Parto.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Parto.updated_at"`)}
	}
	if _, ok := _c.mutation.MadreID(); !ok {
		return &ValidationError{Name: "madre_id", err: errors.New(`repo: missing required field "Parto.madre_id"`)}
	}
	if _, ok := _c.mutation.FechaParto(); !ok {
		return &ValidationError{Name: "fecha_parto", err: errors.New(`repo: missing required field "Parto.fecha_parto"`)}
	}
	if v, ok := _c.mutation.EdadGestacional(); ok {
		if err := parto.EdadGestacionalValidator(v); err != nil {
			return &ValidationError{Name: "edad_gestacional", err: fmt.Errorf(`repo: validator failed for field "Parto.edad_gestacional": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TipoParto(); !ok {
		return &ValidationError{Name: "tipo_parto", err: errors.New(`repo: missing required field "Parto.tipo_parto"`)}
	}
	if v, ok := _c.mutation.TipoParto(); ok {
		if err := parto.TipoPartoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_parto", err: fmt.Errorf(`repo: validator failed for field "Parto.tipo_parto": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Anestesia(); !ok {
		return &ValidationError{Name: "anestesia", err: errors.New(`repo: missing required field "Parto.anestesia"`)}
	}
	if v, ok := _c.mutation.Anestesia(); ok {
		if err := parto.AnestesiaValidator(v); err != nil {
			return &ValidationError{Name: "anestesia", err: fmt.Errorf(`repo: validator failed for field "Parto.anestesia": %w`, err)}
		}
	}
	if len(_c.mutation.MadreIDs()) == 0 {
		return &ValidationError{Name: "madre", err: errors.New(`repo: missing required edge "Parto.madre"`)}
	}
	return nil
}

func (_c *PartoCreate) sqlSave(ctx context.Context) (*Parto, error) {
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

func (_c *PartoCreate) createSpec() (*Parto, *sqlgraph.CreateSpec) {
	var (
		_node = &Parto{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parto.Table, sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parto.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(parto.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FechaParto(); ok {
		_spec.SetField(parto.FieldFechaParto, field.TypeTime, value)
		_node.FechaParto = value
	}
	if value, ok := _c.mutation.EdadGestacional(); ok {
		_spec.SetField(parto.FieldEdadGestacional, field.TypeInt, value)
		_node.EdadGestacional = &value
	}
	if value, ok := _c.mutation.TipoParto(); ok {
		_spec.SetField(parto.FieldTipoParto, field.TypeEnum, value)
		_node.TipoParto = value
	}
	if value, ok := _c.mutation.Anestesia(); ok {
		_spec.SetField(parto.FieldAnestesia, field.TypeEnum, value)
		_node.Anestesia = value
	}
	if value, ok := _c.mutation.PartogramaData(); ok {
		_spec.SetField(parto.FieldPartogramaData, field.TypeJSON, value)
		_node.PartogramaData = value
	}
	if value, ok := _c.mutation.EpicrisisData(); ok {
		_spec.SetField(parto.FieldEpicrisisData, field.TypeJSON, value)
		_node.EpicrisisData = value
	}
	if nodes := _c.mutation.MadreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parto.MadreTable,
			Columns: []string{parto.MadreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MadreID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parto.UsuarioRegistroTable,
			Columns: []string{parto.UsuarioRegistroColumn},
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
	if nodes := _c.mutation.RecienNacidosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   parto.RecienNacidosTable,
			Columns: []string{parto.RecienNacidosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PartoDiagnosticosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   parto.PartoDiagnosticosTable,
			Columns: []string{parto.PartoDiagnosticosColumn},
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
	if nodes := _c.mutation.DocumentosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   parto.DocumentosTable,
			Columns: []string{parto.DocumentosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID),
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
//	client.Parto.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartoCreate) OnConflict(opts ...sql.ConflictOption) *PartoUpsertOne {
	_c.conflict = opts
	return &PartoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Parto.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartoCreate) OnConflictColumns(columns ...string) *PartoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartoUpsertOne{
		create: _c,
	}
}

type (
	// PartoUpsertOne is the builder for "upsert"-ing
	//  one Parto node.
	PartoUpsertOne struct {
		create *PartoCreate
	}

	// PartoUpsert is the "OnConflict" setter.
	PartoUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PartoUpsert) SetUpdatedAt(v time.Time) *PartoUpsert {
	u.Set(parto.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartoUpsert) UpdateUpdatedAt() *PartoUpsert {
	u.SetExcluded(parto.FieldUpdatedAt)
	return u
}

// SetMadreID sets the "madre_id" field.
func (u *PartoUpsert) SetMadreID(v uuid.UUID) *PartoUpsert {
	u.Set(parto.FieldMadreID, v)
	return u
}

// UpdateMadreID sets the "madre_id" field to the value that was provided on create.
func (u *PartoUpsert) UpdateMadreID() *PartoUpsert {
	u.SetExcluded(parto.FieldMadreID)
	return u
}

// SetFechaParto sets the "fecha_parto" field.
func (u *PartoUpsert) SetFechaParto(v time.Time) *PartoUpsert {
	u.Set(parto.FieldFechaParto, v)
	return u
}

// UpdateFechaParto sets the "fecha_parto" field to the value that was provided on create.
func (u *PartoUpsert) UpdateFechaParto() *PartoUpsert {
	u.SetExcluded(parto.FieldFechaParto)
	return u
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (u *PartoUpsert) SetEdadGestacional(v int) *PartoUpsert {
	u.Set(parto.FieldEdadGestacional, v)
	return u
}

// UpdateEdadGestacional sets the "edad_gestacional" field to the value that was provided on create.
func (u *PartoUpsert) UpdateEdadGestacional() *PartoUpsert {
	u.SetExcluded(parto.FieldEdadGestacional)
	return u
}

// AddEdadGestacional adds v to the "edad_gestacional" field.
func (u *PartoUpsert) AddEdadGestacional(v int) *PartoUpsert {
	u.Add(parto.FieldEdadGestacional, v)
	return u
}

// ClearEdadGestacional clears the value of the "edad_gestacional" field.
func (u *PartoUpsert) ClearEdadGestacional() *PartoUpsert {
	u.SetNull(parto.FieldEdadGestacional)
	return u
}

// SetTipoParto sets the "tipo_parto" field.
func (u *PartoUpsert) SetTipoParto(v parto.TipoParto) *PartoUpsert {
	u.Set(parto.FieldTipoParto, v)
	return u
}

// UpdateTipoParto sets the "tipo_parto" field to the value that was provided on create.
func (u *PartoUpsert) UpdateTipoParto() *PartoUpsert {
	u.SetExcluded(parto.FieldTipoParto)
	return u
}

// SetAnestesia sets the "anestesia" field.
func (u *PartoUpsert) SetAnestesia(v parto.Anestesia) *PartoUpsert {
	u.Set(parto.FieldAnestesia, v)
	return u
}

// UpdateAnestesia sets the "anestesia" field to the value that was provided on create.
func (u *PartoUpsert) UpdateAnestesia() *PartoUpsert {
	u.SetExcluded(parto.FieldAnestesia)
	return u
}

// SetPartogramaData sets the "partograma_data" field.
func (u *PartoUpsert) SetPartogramaData(v map[string]interface{}) *PartoUpsert {
	u.Set(parto.FieldPartogramaData, v)
	return u
}

// UpdatePartogramaData sets the "partograma_data" field to the value that was provided on create.
func (u *PartoUpsert) UpdatePartogramaData() *PartoUpsert {
	u.SetExcluded(parto.FieldPartogramaData)
	return u
}

// ClearPartogramaData clears the value of the "partograma_data" field.
func (u *PartoUpsert) ClearPartogramaData() *PartoUpsert {
	u.SetNull(parto.FieldPartogramaData)
	return u
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (u *PartoUpsert) SetEpicrisisData(v map[string]interface{}) *PartoUpsert {
	u.Set(parto.FieldEpicrisisData, v)
	return u
}

// UpdateEpicrisisData sets the "epicrisis_data" field to the value that was provided on create.
func (u *PartoUpsert) UpdateEpicrisisData() *PartoUpsert {
	u.SetExcluded(parto.FieldEpicrisisData)
	return u
}

// ClearEpicrisisData clears the value of the "epicrisis_data" field.
func (u *PartoUpsert) ClearEpicrisisData() *PartoUpsert {
	u.SetNull(parto.FieldEpicrisisData)
	return u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *PartoUpsert) SetUsuarioRegistroID(v uuid.UUID) *PartoUpsert {
	u.Set(parto.FieldUsuarioRegistroID, v)
	return u
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *PartoUpsert) UpdateUsuarioRegistroID() *PartoUpsert {
	u.SetExcluded(parto.FieldUsuarioRegistroID)
	return u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *PartoUpsert) ClearUsuarioRegistroID() *PartoUpsert {
	u.SetNull(parto.FieldUsuarioRegistroID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Parto.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(parto.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartoUpsertOne) UpdateNewValues() *PartoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(parto.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(parto.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Parto.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PartoUpsertOne) Ignore() *PartoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartoUpsertOne) DoNothing() *PartoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartoCreate.OnConflict
// documentation for more info.
func (u *PartoUpsertOne) Update(set func(*PartoUpsert)) *PartoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartoUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartoUpsertOne) SetUpdatedAt(v time.Time) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateUpdatedAt() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMadreID sets the "madre_id" field.
func (u *PartoUpsertOne) SetMadreID(v uuid.UUID) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetMadreID(v)
	})
}

// UpdateMadreID sets the "madre_id" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateMadreID() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateMadreID()
	})
}

// SetFechaParto sets the "fecha_parto" field.
func (u *PartoUpsertOne) SetFechaParto(v time.Time) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetFechaParto(v)
	})
}

// UpdateFechaParto sets the "fecha_parto" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateFechaParto() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateFechaParto()
	})
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (u *PartoUpsertOne) SetEdadGestacional(v int) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetEdadGestacional(v)
	})
}

// AddEdadGestacional adds v to the "edad_gestacional" field.
func (u *PartoUpsertOne) AddEdadGestacional(v int) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.AddEdadGestacional(v)
	})
}

// UpdateEdadGestacional sets the "edad_gestacional" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateEdadGestacional() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateEdadGestacional()
	})
}

// ClearEdadGestacional clears the value of the "edad_gestacional" field.
func (u *PartoUpsertOne) ClearEdadGestacional() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.ClearEdadGestacional()
	})
}

// SetTipoParto sets the "tipo_parto" field.
func (u *PartoUpsertOne) SetTipoParto(v parto.TipoParto) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetTipoParto(v)
	})
}

// UpdateTipoParto sets the "tipo_parto" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateTipoParto() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateTipoParto()
	})
}

// SetAnestesia sets the "anestesia" field.
func (u *PartoUpsertOne) SetAnestesia(v parto.Anestesia) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetAnestesia(v)
	})
}

// UpdateAnestesia sets the "anestesia" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateAnestesia() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateAnestesia()
	})
}

// SetPartogramaData sets the "partograma_data" field.
func (u *PartoUpsertOne) SetPartogramaData(v map[string]interface{}) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetPartogramaData(v)
	})
}

// UpdatePartogramaData sets the "partograma_data" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdatePartogramaData() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdatePartogramaData()
	})
}

// ClearPartogramaData clears the value of the "partograma_data" field.
func (u *PartoUpsertOne) ClearPartogramaData() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.ClearPartogramaData()
	})
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (u *PartoUpsertOne) SetEpicrisisData(v map[string]interface{}) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetEpicrisisData(v)
	})
}

// UpdateEpicrisisData sets the "epicrisis_data" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateEpicrisisData() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateEpicrisisData()
	})
}

// ClearEpicrisisData clears the value of the "epicrisis_data" field.
func (u *PartoUpsertOne) ClearEpicrisisData() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.ClearEpicrisisData()
	})
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *PartoUpsertOne) SetUsuarioRegistroID(v uuid.UUID) *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.SetUsuarioRegistroID(v)
	})
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *PartoUpsertOne) UpdateUsuarioRegistroID() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateUsuarioRegistroID()
	})
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *PartoUpsertOne) ClearUsuarioRegistroID() *PartoUpsertOne {
	return u.Update(func(s *PartoUpsert) {
		s.ClearUsuarioRegistroID()
	})
}

// Exec executes the query.
func (u *PartoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PartoUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PartoUpsertOne.ID is not supported by MySQL driver. Use PartoUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PartoUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PartoCreateBulk is the builder for creating many Parto entities in bulk.
type PartoCreateBulk struct {
	config
	err      error
	builders []*PartoCreate
	conflict []sql.ConflictOption
}

// Save creates the Parto entities in the database.
func (_c *PartoCreateBulk) Save(ctx context.Context) ([]*Parto, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Parto, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PartoMutation)
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
func (_c *PartoCreateBulk) SaveX(ctx context.Context) []*Parto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PartoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PartoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Parto.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PartoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PartoCreateBulk) OnConflict(opts ...sql.ConflictOption) *PartoUpsertBulk {
	_c.conflict = opts
	return &PartoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Parto.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PartoCreateBulk) OnConflictColumns(columns ...string) *PartoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PartoUpsertBulk{
		create: _c,
	}
}

// PartoUpsertBulk is the builder for "upsert"-ing
// a bulk of Parto nodes.
type PartoUpsertBulk struct {
	create *PartoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Parto.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(parto.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PartoUpsertBulk) UpdateNewValues() *PartoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(parto.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(parto.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Parto.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PartoUpsertBulk) Ignore() *PartoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PartoUpsertBulk) DoNothing() *PartoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PartoCreateBulk.OnConflict
// documentation for more info.
func (u *PartoUpsertBulk) Update(set func(*PartoUpsert)) *PartoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PartoUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PartoUpsertBulk) SetUpdatedAt(v time.Time) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateUpdatedAt() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMadreID sets the "madre_id" field.
func (u *PartoUpsertBulk) SetMadreID(v uuid.UUID) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetMadreID(v)
	})
}

// UpdateMadreID sets the "madre_id" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateMadreID() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateMadreID()
	})
}

// SetFechaParto sets the "fecha_parto" field.
func (u *PartoUpsertBulk) SetFechaParto(v time.Time) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetFechaParto(v)
	})
}

// UpdateFechaParto sets the "fecha_parto" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateFechaParto() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateFechaParto()
	})
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (u *PartoUpsertBulk) SetEdadGestacional(v int) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetEdadGestacional(v)
	})
}

// AddEdadGestacional adds v to the "edad_gestacional" field.
func (u *PartoUpsertBulk) AddEdadGestacional(v int) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.AddEdadGestacional(v)
	})
}

// UpdateEdadGestacional sets the "edad_gestacional" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateEdadGestacional() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateEdadGestacional()
	})
}

// ClearEdadGestacional clears the value of the "edad_gestacional" field.
func (u *PartoUpsertBulk) ClearEdadGestacional() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.ClearEdadGestacional()
	})
}

// SetTipoParto sets the "tipo_parto" field.
func (u *PartoUpsertBulk) SetTipoParto(v parto.TipoParto) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetTipoParto(v)
	})
}

// UpdateTipoParto sets the "tipo_parto" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateTipoParto() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateTipoParto()
	})
}

// SetAnestesia sets the "anestesia" field.
func (u *PartoUpsertBulk) SetAnestesia(v parto.Anestesia) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetAnestesia(v)
	})
}

// UpdateAnestesia sets the "anestesia" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateAnestesia() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateAnestesia()
	})
}

// SetPartogramaData sets the "partograma_data" field.
func (u *PartoUpsertBulk) SetPartogramaData(v map[string]interface{}) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetPartogramaData(v)
	})
}

// UpdatePartogramaData sets the "partograma_data" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdatePartogramaData() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdatePartogramaData()
	})
}

// ClearPartogramaData clears the value of the "partograma_data" field.
func (u *PartoUpsertBulk) ClearPartogramaData() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.ClearPartogramaData()
	})
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (u *PartoUpsertBulk) SetEpicrisisData(v map[string]interface{}) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetEpicrisisData(v)
	})
}

// UpdateEpicrisisData sets the "epicrisis_data" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateEpicrisisData() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateEpicrisisData()
	})
}

// ClearEpicrisisData clears the value of the "epicrisis_data" field.
func (u *PartoUpsertBulk) ClearEpicrisisData() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.ClearEpicrisisData()
	})
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *PartoUpsertBulk) SetUsuarioRegistroID(v uuid.UUID) *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.SetUsuarioRegistroID(v)
	})
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *PartoUpsertBulk) UpdateUsuarioRegistroID() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.UpdateUsuarioRegistroID()
	})
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *PartoUpsertBulk) ClearUsuarioRegistroID() *PartoUpsertBulk {
	return u.Update(func(s *PartoUpsert) {
		s.ClearUsuarioRegistroID()
	})
}

// Exec executes the query.
func (u *PartoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PartoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PartoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PartoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
