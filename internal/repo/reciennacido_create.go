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
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// RecienNacidoCreate is the builder for creating a RecienNacido entity.
type RecienNacidoCreate struct {
	config
	mutation *RecienNacidoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecienNacidoCreate) SetCreatedAt(v time.Time) *RecienNacidoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableCreatedAt(v *time.Time) *RecienNacidoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecienNacidoCreate) SetUpdatedAt(v time.Time) *RecienNacidoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableUpdatedAt(v *time.Time) *RecienNacidoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPartoID sets the "parto_id" field.
func (_c *RecienNacidoCreate) SetPartoID(v uuid.UUID) *RecienNacidoCreate {
	_c.mutation.SetPartoID(v)
	return _c
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (_c *RecienNacidoCreate) SetRutProvisorio(v string) *RecienNacidoCreate {
	_c.mutation.SetRutProvisorio(v)
	return _c
}

// SetNillableRutProvisorio sets the "rut_provisorio" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableRutProvisorio(v *string) *RecienNacidoCreate {
	if v != nil {
		_c.SetRutProvisorio(*v)
	}
	return _c
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (_c *RecienNacidoCreate) SetEstadoAlNacer(v reciennacido.EstadoAlNacer) *RecienNacidoCreate {
	_c.mutation.SetEstadoAlNacer(v)
	return _c
}

// SetSexo sets the "sexo" field.
func (_c *RecienNacidoCreate) SetSexo(v reciennacido.Sexo) *RecienNacidoCreate {
	_c.mutation.SetSexo(v)
	return _c
}

// SetNillableSexo sets the "sexo" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableSexo(v *reciennacido.Sexo) *RecienNacidoCreate {
	if v != nil {
		_c.SetSexo(*v)
	}
	return _c
}

// SetPesoGramos sets the "peso_gramos" field.
func (_c *RecienNacidoCreate) SetPesoGramos(v int) *RecienNacidoCreate {
	_c.mutation.SetPesoGramos(v)
	return _c
}

// SetNillablePesoGramos sets the "peso_gramos" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillablePesoGramos(v *int) *RecienNacidoCreate {
	if v != nil {
		_c.SetPesoGramos(*v)
	}
	return _c
}

// SetTallaCm sets the "talla_cm" field.
func (_c *RecienNacidoCreate) SetTallaCm(v float64) *RecienNacidoCreate {
	_c.mutation.SetTallaCm(v)
	return _c
}

// SetNillableTallaCm sets the "talla_cm" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableTallaCm(v *float64) *RecienNacidoCreate {
	if v != nil {
		_c.SetTallaCm(*v)
	}
	return _c
}

// SetApgar1Min sets the "apgar_1_min" field.
func (_c *RecienNacidoCreate) SetApgar1Min(v int) *RecienNacidoCreate {
	_c.mutation.SetApgar1Min(v)
	return _c
}

// SetNillableApgar1Min sets the "apgar_1_min" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableApgar1Min(v *int) *RecienNacidoCreate {
	if v != nil {
		_c.SetApgar1Min(*v)
	}
	return _c
}

// SetApgar5Min sets the "apgar_5_min" field.
func (_c *RecienNacidoCreate) SetApgar5Min(v int) *RecienNacidoCreate {
	_c.mutation.SetApgar5Min(v)
	return _c
}

// SetNillableApgar5Min sets the "apgar_5_min" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableApgar5Min(v *int) *RecienNacidoCreate {
	if v != nil {
		_c.SetApgar5Min(*v)
	}
	return _c
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (_c *RecienNacidoCreate) SetProfilaxisVitK(v bool) *RecienNacidoCreate {
	_c.mutation.SetProfilaxisVitK(v)
	return _c
}

// SetNillableProfilaxisVitK sets the "profilaxis_vit_k" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableProfilaxisVitK(v *bool) *RecienNacidoCreate {
	if v != nil {
		_c.SetProfilaxisVitK(*v)
	}
	return _c
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (_c *RecienNacidoCreate) SetProfilaxisOftalmica(v bool) *RecienNacidoCreate {
	_c.mutation.SetProfilaxisOftalmica(v)
	return _c
}

// SetNillableProfilaxisOftalmica sets the "profilaxis_oftalmica" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableProfilaxisOftalmica(v *bool) *RecienNacidoCreate {
	if v != nil {
		_c.SetProfilaxisOftalmica(*v)
	}
	return _c
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_c *RecienNacidoCreate) SetUsuarioRegistroID(v uuid.UUID) *RecienNacidoCreate {
	_c.mutation.SetUsuarioRegistroID(v)
	return _c
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableUsuarioRegistroID(v *uuid.UUID) *RecienNacidoCreate {
	if v != nil {
		_c.SetUsuarioRegistroID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecienNacidoCreate) SetID(v uuid.UUID) *RecienNacidoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableID(v *uuid.UUID) *RecienNacidoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParto sets the "parto" edge to the Parto entity.
func (_c *RecienNacidoCreate) SetParto(v *Parto) *RecienNacidoCreate {
	return _c.SetPartoID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_c *RecienNacidoCreate) SetUsuarioRegistro(v *Usuario) *RecienNacidoCreate {
	return _c.SetUsuarioRegistroID(v.ID)
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by ID.
func (_c *RecienNacidoCreate) SetDefuncionID(id uuid.UUID) *RecienNacidoCreate {
	_c.mutation.SetDefuncionID(id)
	return _c
}

// SetNillableDefuncionID sets the "defuncion" edge to the Defuncion entity by ID if the given value is not nil.
func (_c *RecienNacidoCreate) SetNillableDefuncionID(id *uuid.UUID) *RecienNacidoCreate {
	if id != nil {
		_c = _c.SetDefuncionID(*id)
	}
	return _c
}

// SetDefuncion sets the "defuncion" edge to the Defuncion entity.
func (_c *RecienNacidoCreate) SetDefuncion(v *Defuncion) *RecienNacidoCreate {
	return _c.SetDefuncionID(v.ID)
}

// Mutation returns the RecienNacidoMutation object of the builder.
func (_c *RecienNacidoCreate) Mutation() *RecienNacidoMutation {
	return _c.mutation
}

// Save creates the RecienNacido in the database.
func (_c *RecienNacidoCreate) Save(ctx context.Context) (*RecienNacido, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecienNacidoCreate) SaveX(ctx context.Context) *RecienNacido {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecienNacidoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecienNacidoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecienNacidoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reciennacido.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reciennacido.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ProfilaxisVitK(); !ok {
		v := reciennacido.DefaultProfilaxisVitK
		_c.mutation.SetProfilaxisVitK(v)
	}
	if _, ok := _c.mutation.ProfilaxisOftalmica(); !ok {
		v := reciennacido.DefaultProfilaxisOftalmica
		_c.mutation.SetProfilaxisOftalmica(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reciennacido.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecienNacidoCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RecienNacido.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RecienNacido.updated_at"`)}
	}
	if _, ok := _c.mutation.PartoID(); !ok {
		return &ValidationError{Name: "parto_id", err: errors.New(`repo: missing required field "RecienNacido.parto_id"`)}
	}
	if v, ok := _c.mutation.RutProvisorio(); ok {
		if err := reciennacido.RutProvisorioValidator(v); err != nil {
			return &ValidationError{Name: "rut_provisorio", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.rut_provisorio": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstadoAlNacer(); !ok {
		return &ValidationError{Name: "estado_al_nacer", err: errors.New(`repo: missing required field "RecienNacido.estado_al_nacer"`)}
	}
	if v, ok := _c.mutation.EstadoAlNacer(); ok {
		if err := reciennacido.EstadoAlNacerValidator(v); err != nil {
			return &ValidationError{Name: "estado_al_nacer", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.estado_al_nacer": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Sexo(); ok {
		if err := reciennacido.SexoValidator(v); err != nil {
			return &ValidationError{Name: "sexo", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.sexo": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PesoGramos(); ok {
		if err := reciennacido.PesoGramosValidator(v); err != nil {
			return &ValidationError{Name: "peso_gramos", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.peso_gramos": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TallaCm(); ok {
		if err := reciennacido.TallaCmValidator(v); err != nil {
			return &ValidationError{Name: "talla_cm", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.talla_cm": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Apgar1Min(); ok {
		if err := reciennacido.Apgar1MinValidator(v); err != nil {
			return &ValidationError{Name: "apgar_1_min", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.apgar_1_min": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Apgar5Min(); ok {
		if err := reciennacido.Apgar5MinValidator(v); err != nil {
			return &ValidationError{Name: "apgar_5_min", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.apgar_5_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProfilaxisVitK(); !ok {
		return &ValidationError{Name: "profilaxis_vit_k", err: errors.New(`repo: missing required field "RecienNacido.profilaxis_vit_k"`)}
	}
	if _, ok := _c.mutation.ProfilaxisOftalmica(); !ok {
		return &ValidationError{Name: "profilaxis_oftalmica", err: errors.New(`repo: missing required field "RecienNacido.profilaxis_oftalmica"`)}
	}
	if len(_c.mutation.PartoIDs()) == 0 {
		return &ValidationError{Name: "parto", err: errors.New(`repo: missing required edge "RecienNacido.parto"`)}
	}
	return nil
}

func (_c *RecienNacidoCreate) sqlSave(ctx context.Context) (*RecienNacido, error) {
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

func (_c *RecienNacidoCreate) createSpec() (*RecienNacido, *sqlgraph.CreateSpec) {
	var (
		_node = &RecienNacido{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reciennacido.Table, sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reciennacido.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reciennacido.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RutProvisorio(); ok {
		_spec.SetField(reciennacido.FieldRutProvisorio, field.TypeString, value)
		_node.RutProvisorio = value
	}
	if value, ok := _c.mutation.EstadoAlNacer(); ok {
		_spec.SetField(reciennacido.FieldEstadoAlNacer, field.TypeEnum, value)
		_node.EstadoAlNacer = value
	}
	if value, ok := _c.mutation.Sexo(); ok {
		_spec.SetField(reciennacido.FieldSexo, field.TypeEnum, value)
		_node.Sexo = value
	}
	if value, ok := _c.mutation.PesoGramos(); ok {
		_spec.SetField(reciennacido.FieldPesoGramos, field.TypeInt, value)
		_node.PesoGramos = &value
	}
	if value, ok := _c.mutation.TallaCm(); ok {
		_spec.SetField(reciennacido.FieldTallaCm, field.TypeFloat64, value)
		_node.TallaCm = &value
	}
	if value, ok := _c.mutation.Apgar1Min(); ok {
		_spec.SetField(reciennacido.FieldApgar1Min, field.TypeInt, value)
		_node.Apgar1Min = &value
	}
	if value, ok := _c.mutation.Apgar5Min(); ok {
		_spec.SetField(reciennacido.FieldApgar5Min, field.TypeInt, value)
		_node.Apgar5Min = &value
	}
	if value, ok := _c.mutation.ProfilaxisVitK(); ok {
		_spec.SetField(reciennacido.FieldProfilaxisVitK, field.TypeBool, value)
		_node.ProfilaxisVitK = value
	}
	if value, ok := _c.mutation.ProfilaxisOftalmica(); ok {
		_spec.SetField(reciennacido.FieldProfilaxisOftalmica, field.TypeBool, value)
		_node.ProfilaxisOftalmica = value
	}
	if nodes := _c.mutation.PartoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reciennacido.PartoTable,
			Columns: []string{reciennacido.PartoColumn},
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
	if nodes := _c.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reciennacido.UsuarioRegistroTable,
			Columns: []string{reciennacido.UsuarioRegistroColumn},
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
	if nodes := _c.mutation.DefuncionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   reciennacido.DefuncionTable,
			Columns: []string{reciennacido.DefuncionColumn},
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
//	client.RecienNacido.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecienNacidoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecienNacidoCreate) OnConflict(opts ...sql.ConflictOption) *RecienNacidoUpsertOne {
	_c.conflict = opts
	return &RecienNacidoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecienNacido.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecienNacidoCreate) OnConflictColumns(columns ...string) *RecienNacidoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecienNacidoUpsertOne{
		create: _c,
	}
}

type (
	// RecienNacidoUpsertOne is the builder for "upsert"-ing
	//  one RecienNacido node.
	RecienNacidoUpsertOne struct {
		create *RecienNacidoCreate
	}

	// RecienNacidoUpsert is the "OnConflict" setter.
	RecienNacidoUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RecienNacidoUpsert) SetUpdatedAt(v time.Time) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateUpdatedAt() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldUpdatedAt)
	return u
}

// SetPartoID sets the "parto_id" field.
func (u *RecienNacidoUpsert) SetPartoID(v uuid.UUID) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldPartoID, v)
	return u
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdatePartoID() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldPartoID)
	return u
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (u *RecienNacidoUpsert) SetRutProvisorio(v string) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldRutProvisorio, v)
	return u
}

// UpdateRutProvisorio sets the "rut_provisorio" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateRutProvisorio() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldRutProvisorio)
	return u
}

// ClearRutProvisorio clears the value of the "rut_provisorio" field.
func (u *RecienNacidoUpsert) ClearRutProvisorio() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldRutProvisorio)
	return u
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (u *RecienNacidoUpsert) SetEstadoAlNacer(v reciennacido.EstadoAlNacer) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldEstadoAlNacer, v)
	return u
}

// UpdateEstadoAlNacer sets the "estado_al_nacer" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateEstadoAlNacer() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldEstadoAlNacer)
	return u
}

// SetSexo sets the "sexo" field.
func (u *RecienNacidoUpsert) SetSexo(v reciennacido.Sexo) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldSexo, v)
	return u
}

// UpdateSexo sets the "sexo" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateSexo() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldSexo)
	return u
}

// ClearSexo clears the value of the "sexo" field.
func (u *RecienNacidoUpsert) ClearSexo() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldSexo)
	return u
}

// SetPesoGramos sets the "peso_gramos" field.
func (u *RecienNacidoUpsert) SetPesoGramos(v int) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldPesoGramos, v)
	return u
}

// UpdatePesoGramos sets the "peso_gramos" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdatePesoGramos() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldPesoGramos)
	return u
}

// AddPesoGramos adds v to the "peso_gramos" field.
func (u *RecienNacidoUpsert) AddPesoGramos(v int) *RecienNacidoUpsert {
	u.Add(reciennacido.FieldPesoGramos, v)
	return u
}

// ClearPesoGramos clears the value of the "peso_gramos" field.
func (u *RecienNacidoUpsert) ClearPesoGramos() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldPesoGramos)
	return u
}

// SetTallaCm sets the "talla_cm" field.
func (u *RecienNacidoUpsert) SetTallaCm(v float64) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldTallaCm, v)
	return u
}

// UpdateTallaCm sets the "talla_cm" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateTallaCm() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldTallaCm)
	return u
}

// AddTallaCm adds v to the "talla_cm" field.
func (u *RecienNacidoUpsert) AddTallaCm(v float64) *RecienNacidoUpsert {
	u.Add(reciennacido.FieldTallaCm, v)
	return u
}

// ClearTallaCm clears the value of the "talla_cm" field.
func (u *RecienNacidoUpsert) ClearTallaCm() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldTallaCm)
	return u
}

// SetApgar1Min sets the "apgar_1_min" field.
func (u *RecienNacidoUpsert) SetApgar1Min(v int) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldApgar1Min, v)
	return u
}

// UpdateApgar1Min sets the "apgar_1_min" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateApgar1Min() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldApgar1Min)
	return u
}

// AddApgar1Min adds v to the "apgar_1_min" field.
func (u *RecienNacidoUpsert) AddApgar1Min(v int) *RecienNacidoUpsert {
	u.Add(reciennacido.FieldApgar1Min, v)
	return u
}

// ClearApgar1Min clears the value of the "apgar_1_min" field.
func (u *RecienNacidoUpsert) ClearApgar1Min() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldApgar1Min)
	return u
}

// SetApgar5Min sets the "apgar_5_min" field.
func (u *RecienNacidoUpsert) SetApgar5Min(v int) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldApgar5Min, v)
	return u
}

// UpdateApgar5Min sets the "apgar_5_min" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateApgar5Min() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldApgar5Min)
	return u
}

// AddApgar5Min adds v to the "apgar_5_min" field.
func (u *RecienNacidoUpsert) AddApgar5Min(v int) *RecienNacidoUpsert {
	u.Add(reciennacido.FieldApgar5Min, v)
	return u
}

// ClearApgar5Min clears the value of the "apgar_5_min" field.
func (u *RecienNacidoUpsert) ClearApgar5Min() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldApgar5Min)
	return u
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (u *RecienNacidoUpsert) SetProfilaxisVitK(v bool) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldProfilaxisVitK, v)
	return u
}

// UpdateProfilaxisVitK sets the "profilaxis_vit_k" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateProfilaxisVitK() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldProfilaxisVitK)
	return u
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (u *RecienNacidoUpsert) SetProfilaxisOftalmica(v bool) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldProfilaxisOftalmica, v)
	return u
}

// UpdateProfilaxisOftalmica sets the "profilaxis_oftalmica" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateProfilaxisOftalmica() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldProfilaxisOftalmica)
	return u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *RecienNacidoUpsert) SetUsuarioRegistroID(v uuid.UUID) *RecienNacidoUpsert {
	u.Set(reciennacido.FieldUsuarioRegistroID, v)
	return u
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *RecienNacidoUpsert) UpdateUsuarioRegistroID() *RecienNacidoUpsert {
	u.SetExcluded(reciennacido.FieldUsuarioRegistroID)
	return u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *RecienNacidoUpsert) ClearUsuarioRegistroID() *RecienNacidoUpsert {
	u.SetNull(reciennacido.FieldUsuarioRegistroID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RecienNacido.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reciennacido.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecienNacidoUpsertOne) UpdateNewValues() *RecienNacidoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reciennacido.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(reciennacido.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecienNacido.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecienNacidoUpsertOne) Ignore() *RecienNacidoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecienNacidoUpsertOne) DoNothing() *RecienNacidoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecienNacidoCreate.OnConflict
// documentation for more info.
func (u *RecienNacidoUpsertOne) Update(set func(*RecienNacidoUpsert)) *RecienNacidoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecienNacidoUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecienNacidoUpsertOne) SetUpdatedAt(v time.Time) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateUpdatedAt() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPartoID sets the "parto_id" field.
func (u *RecienNacidoUpsertOne) SetPartoID(v uuid.UUID) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetPartoID(v)
	})
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdatePartoID() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdatePartoID()
	})
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (u *RecienNacidoUpsertOne) SetRutProvisorio(v string) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetRutProvisorio(v)
	})
}

// UpdateRutProvisorio sets the "rut_provisorio" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateRutProvisorio() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateRutProvisorio()
	})
}

// ClearRutProvisorio clears the value of the "rut_provisorio" field.
func (u *RecienNacidoUpsertOne) ClearRutProvisorio() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearRutProvisorio()
	})
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (u *RecienNacidoUpsertOne) SetEstadoAlNacer(v reciennacido.EstadoAlNacer) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetEstadoAlNacer(v)
	})
}

// UpdateEstadoAlNacer sets the "estado_al_nacer" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateEstadoAlNacer() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateEstadoAlNacer()
	})
}

// SetSexo sets the "sexo" field.
func (u *RecienNacidoUpsertOne) SetSexo(v reciennacido.Sexo) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetSexo(v)
	})
}

// UpdateSexo sets the "sexo" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateSexo() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateSexo()
	})
}

// ClearSexo clears the value of the "sexo" field.
func (u *RecienNacidoUpsertOne) ClearSexo() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearSexo()
	})
}

// SetPesoGramos sets the "peso_gramos" field.
func (u *RecienNacidoUpsertOne) SetPesoGramos(v int) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetPesoGramos(v)
	})
}

// AddPesoGramos adds v to the "peso_gramos" field.
func (u *RecienNacidoUpsertOne) AddPesoGramos(v int) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddPesoGramos(v)
	})
}

// UpdatePesoGramos sets the "peso_gramos" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdatePesoGramos() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdatePesoGramos()
	})
}

// ClearPesoGramos clears the value of the "peso_gramos" field.
func (u *RecienNacidoUpsertOne) ClearPesoGramos() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearPesoGramos()
	})
}

// SetTallaCm sets the "talla_cm" field.
func (u *RecienNacidoUpsertOne) SetTallaCm(v float64) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetTallaCm(v)
	})
}

// AddTallaCm adds v to the "talla_cm" field.
func (u *RecienNacidoUpsertOne) AddTallaCm(v float64) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddTallaCm(v)
	})
}

// UpdateTallaCm sets the "talla_cm" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateTallaCm() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateTallaCm()
	})
}

// ClearTallaCm clears the value of the "talla_cm" field.
func (u *RecienNacidoUpsertOne) ClearTallaCm() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearTallaCm()
	})
}

// SetApgar1Min sets the "apgar_1_min" field.
func (u *RecienNacidoUpsertOne) SetApgar1Min(v int) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetApgar1Min(v)
	})
}

// AddApgar1Min adds v to the "apgar_1_min" field.
func (u *RecienNacidoUpsertOne) AddApgar1Min(v int) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddApgar1Min(v)
	})
}

// UpdateApgar1Min sets the "apgar_1_min" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateApgar1Min() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateApgar1Min()
	})
}

// ClearApgar1Min clears the value of the "apgar_1_min" field.
func (u *RecienNacidoUpsertOne) ClearApgar1Min() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearApgar1Min()
	})
}

// SetApgar5Min sets the "apgar_5_min" field.
func (u *RecienNacidoUpsertOne) SetApgar5Min(v int) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetApgar5Min(v)
	})
}

// AddApgar5Min adds v to the "apgar_5_min" field.
func (u *RecienNacidoUpsertOne) AddApgar5Min(v int) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddApgar5Min(v)
	})
}

// UpdateApgar5Min sets the "apgar_5_min" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateApgar5Min() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateApgar5Min()
	})
}

// ClearApgar5Min clears the value of the "apgar_5_min" field.
func (u *RecienNacidoUpsertOne) ClearApgar5Min() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearApgar5Min()
	})
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (u *RecienNacidoUpsertOne) SetProfilaxisVitK(v bool) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetProfilaxisVitK(v)
	})
}

// UpdateProfilaxisVitK sets the "profilaxis_vit_k" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateProfilaxisVitK() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateProfilaxisVitK()
	})
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (u *RecienNacidoUpsertOne) SetProfilaxisOftalmica(v bool) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetProfilaxisOftalmica(v)
	})
}

// UpdateProfilaxisOftalmica sets the "profilaxis_oftalmica" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateProfilaxisOftalmica() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateProfilaxisOftalmica()
	})
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *RecienNacidoUpsertOne) SetUsuarioRegistroID(v uuid.UUID) *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetUsuarioRegistroID(v)
	})
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *RecienNacidoUpsertOne) UpdateUsuarioRegistroID() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateUsuarioRegistroID()
	})
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *RecienNacidoUpsertOne) ClearUsuarioRegistroID() *RecienNacidoUpsertOne {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearUsuarioRegistroID()
	})
}

// Exec executes the query.
func (u *RecienNacidoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RecienNacidoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecienNacidoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecienNacidoUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RecienNacidoUpsertOne.ID is not supported by MySQL driver. Use RecienNacidoUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecienNacidoUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecienNacidoCreateBulk is the builder for creating many RecienNacido entities in bulk.
type RecienNacidoCreateBulk struct {
	config
	err      error
	builders []*RecienNacidoCreate
	conflict []sql.ConflictOption
}

// Save creates the RecienNacido entities in the database.
func (_c *RecienNacidoCreateBulk) Save(ctx context.Context) ([]*RecienNacido, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecienNacido, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecienNacidoMutation)
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
func (_c *RecienNacidoCreateBulk) SaveX(ctx context.Context) []*RecienNacido {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecienNacidoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecienNacidoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecienNacido.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecienNacidoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecienNacidoCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecienNacidoUpsertBulk {
	_c.conflict = opts
	return &RecienNacidoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecienNacido.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecienNacidoCreateBulk) OnConflictColumns(columns ...string) *RecienNacidoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecienNacidoUpsertBulk{
		create: _c,
	}
}

// RecienNacidoUpsertBulk is the builder for "upsert"-ing
// a bulk of RecienNacido nodes.
type RecienNacidoUpsertBulk struct {
	create *RecienNacidoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RecienNacido.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reciennacido.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecienNacidoUpsertBulk) UpdateNewValues() *RecienNacidoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reciennacido.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(reciennacido.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecienNacido.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecienNacidoUpsertBulk) Ignore() *RecienNacidoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecienNacidoUpsertBulk) DoNothing() *RecienNacidoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecienNacidoCreateBulk.OnConflict
// documentation for more info.
func (u *RecienNacidoUpsertBulk) Update(set func(*RecienNacidoUpsert)) *RecienNacidoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecienNacidoUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecienNacidoUpsertBulk) SetUpdatedAt(v time.Time) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateUpdatedAt() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPartoID sets the "parto_id" field.
func (u *RecienNacidoUpsertBulk) SetPartoID(v uuid.UUID) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetPartoID(v)
	})
}

// UpdatePartoID sets the "parto_id" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdatePartoID() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdatePartoID()
	})
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (u *RecienNacidoUpsertBulk) SetRutProvisorio(v string) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetRutProvisorio(v)
	})
}

// UpdateRutProvisorio sets the "rut_provisorio" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateRutProvisorio() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateRutProvisorio()
	})
}

// ClearRutProvisorio clears the value of the "rut_provisorio" field.
func (u *RecienNacidoUpsertBulk) ClearRutProvisorio() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearRutProvisorio()
	})
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (u *RecienNacidoUpsertBulk) SetEstadoAlNacer(v reciennacido.EstadoAlNacer) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetEstadoAlNacer(v)
	})
}

// UpdateEstadoAlNacer sets the "estado_al_nacer" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateEstadoAlNacer() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateEstadoAlNacer()
	})
}

// SetSexo sets the "sexo" field.
func (u *RecienNacidoUpsertBulk) SetSexo(v reciennacido.Sexo) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetSexo(v)
	})
}

// UpdateSexo sets the "sexo" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateSexo() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateSexo()
	})
}

// ClearSexo clears the value of the "sexo" field.
func (u *RecienNacidoUpsertBulk) ClearSexo() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearSexo()
	})
}

// SetPesoGramos sets the "peso_gramos" field.
func (u *RecienNacidoUpsertBulk) SetPesoGramos(v int) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetPesoGramos(v)
	})
}

// AddPesoGramos adds v to the "peso_gramos" field.
func (u *RecienNacidoUpsertBulk) AddPesoGramos(v int) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddPesoGramos(v)
	})
}

// UpdatePesoGramos sets the "peso_gramos" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdatePesoGramos() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdatePesoGramos()
	})
}

// ClearPesoGramos clears the value of the "peso_gramos" field.
func (u *RecienNacidoUpsertBulk) ClearPesoGramos() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearPesoGramos()
	})
}

// SetTallaCm sets the "talla_cm" field.
func (u *RecienNacidoUpsertBulk) SetTallaCm(v float64) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetTallaCm(v)
	})
}

// AddTallaCm adds v to the "talla_cm" field.
func (u *RecienNacidoUpsertBulk) AddTallaCm(v float64) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddTallaCm(v)
	})
}

// UpdateTallaCm sets the "talla_cm" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateTallaCm() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateTallaCm()
	})
}

// ClearTallaCm clears the value of the "talla_cm" field.
func (u *RecienNacidoUpsertBulk) ClearTallaCm() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearTallaCm()
	})
}

// SetApgar1Min sets the "apgar_1_min" field.
func (u *RecienNacidoUpsertBulk) SetApgar1Min(v int) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetApgar1Min(v)
	})
}

// AddApgar1Min adds v to the "apgar_1_min" field.
func (u *RecienNacidoUpsertBulk) AddApgar1Min(v int) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddApgar1Min(v)
	})
}

// UpdateApgar1Min sets the "apgar_1_min" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateApgar1Min() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateApgar1Min()
	})
}

// ClearApgar1Min clears the value of the "apgar_1_min" field.
func (u *RecienNacidoUpsertBulk) ClearApgar1Min() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearApgar1Min()
	})
}

// SetApgar5Min sets the "apgar_5_min" field.
func (u *RecienNacidoUpsertBulk) SetApgar5Min(v int) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetApgar5Min(v)
	})
}

// AddApgar5Min adds v to the "apgar_5_min" field.
func (u *RecienNacidoUpsertBulk) AddApgar5Min(v int) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.AddApgar5Min(v)
	})
}

// UpdateApgar5Min sets the "apgar_5_min" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateApgar5Min() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateApgar5Min()
	})
}

// ClearApgar5Min clears the value of the "apgar_5_min" field.
func (u *RecienNacidoUpsertBulk) ClearApgar5Min() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearApgar5Min()
	})
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (u *RecienNacidoUpsertBulk) SetProfilaxisVitK(v bool) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetProfilaxisVitK(v)
	})
}

// UpdateProfilaxisVitK sets the "profilaxis_vit_k" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateProfilaxisVitK() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateProfilaxisVitK()
	})
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (u *RecienNacidoUpsertBulk) SetProfilaxisOftalmica(v bool) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetProfilaxisOftalmica(v)
	})
}

// UpdateProfilaxisOftalmica sets the "profilaxis_oftalmica" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateProfilaxisOftalmica() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateProfilaxisOftalmica()
	})
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (u *RecienNacidoUpsertBulk) SetUsuarioRegistroID(v uuid.UUID) *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.SetUsuarioRegistroID(v)
	})
}

// UpdateUsuarioRegistroID sets the "usuario_registro_id" field to the value that was provided on create.
func (u *RecienNacidoUpsertBulk) UpdateUsuarioRegistroID() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.UpdateUsuarioRegistroID()
	})
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (u *RecienNacidoUpsertBulk) ClearUsuarioRegistroID() *RecienNacidoUpsertBulk {
	return u.Update(func(s *RecienNacidoUpsert) {
		s.ClearUsuarioRegistroID()
	})
}

// Exec executes the query.
func (u *RecienNacidoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RecienNacidoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RecienNacidoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecienNacidoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
