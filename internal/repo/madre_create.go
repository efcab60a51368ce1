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
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
)

// MadreCreate is the builder for creating a Madre entity.
type MadreCreate struct {
	config
	mutation *MadreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MadreCreate) SetCreatedAt(v time.Time) *MadreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MadreCreate) SetNillableCreatedAt(v *time.Time) *MadreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MadreCreate) SetUpdatedAt(v time.Time) *MadreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MadreCreate) SetNillableUpdatedAt(v *time.Time) *MadreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (_c *MadreCreate) SetFichaClinicaID(v string) *MadreCreate {
	_c.mutation.SetFichaClinicaID(v)
	return _c
}

// SetNillableFichaClinicaID sets the "ficha_clinica_id" field if the given value is not nil.
func (_c *MadreCreate) SetNillableFichaClinicaID(v *string) *MadreCreate {
	if v != nil {
		_c.SetFichaClinicaID(*v)
	}
	return _c
}

// SetRutHash sets the "rut_hash" field.
func (_c *MadreCreate) SetRutHash(v string) *MadreCreate {
	_c.mutation.SetRutHash(v)
	return _c
}

// SetNillableRutHash sets the "rut_hash" field if the given value is not nil.
func (_c *MadreCreate) SetNillableRutHash(v *string) *MadreCreate {
	if v != nil {
		_c.SetRutHash(*v)
	}
	return _c
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (_c *MadreCreate) SetRutEncrypted(v string) *MadreCreate {
	_c.mutation.SetRutEncrypted(v)
	return _c
}

// SetNillableRutEncrypted sets the "rut_encrypted" field if the given value is not nil.
func (_c *MadreCreate) SetNillableRutEncrypted(v *string) *MadreCreate {
	if v != nil {
		_c.SetRutEncrypted(*v)
	}
	return _c
}

// SetNombreHash sets the "nombre_hash" field.
func (_c *MadreCreate) SetNombreHash(v string) *MadreCreate {
	_c.mutation.SetNombreHash(v)
	return _c
}

// SetNillableNombreHash sets the "nombre_hash" field if the given value is not nil.
func (_c *MadreCreate) SetNillableNombreHash(v *string) *MadreCreate {
	if v != nil {
		_c.SetNombreHash(*v)
	}
	return _c
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (_c *MadreCreate) SetNombreEncrypted(v string) *MadreCreate {
	_c.mutation.SetNombreEncrypted(v)
	return _c
}

// SetNillableNombreEncrypted sets the "nombre_encrypted" field if the given value is not nil.
func (_c *MadreCreate) SetNillableNombreEncrypted(v *string) *MadreCreate {
	if v != nil {
		_c.SetNombreEncrypted(*v)
	}
	return _c
}

// SetTelefonoHash sets the "telefono_hash" field.
func (_c *MadreCreate) SetTelefonoHash(v string) *MadreCreate {
	_c.mutation.SetTelefonoHash(v)
	return _c
}

// SetNillableTelefonoHash sets the "telefono_hash" field if the given value is not nil.
func (_c *MadreCreate) SetNillableTelefonoHash(v *string) *MadreCreate {
	if v != nil {
		_c.SetTelefonoHash(*v)
	}
	return _c
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (_c *MadreCreate) SetTelefonoEncrypted(v string) *MadreCreate {
	_c.mutation.SetTelefonoEncrypted(v)
	return _c
}

// SetNillableTelefonoEncrypted sets the "telefono_encrypted" field if the given value is not nil.
func (_c *MadreCreate) SetNillableTelefonoEncrypted(v *string) *MadreCreate {
	if v != nil {
		_c.SetTelefonoEncrypted(*v)
	}
	return _c
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_c *MadreCreate) SetFechaNacimiento(v time.Time) *MadreCreate {
	_c.mutation.SetFechaNacimiento(v)
	return _c
}

// SetNacionalidad sets the "nacionalidad" field.
func (_c *MadreCreate) SetNacionalidad(v string) *MadreCreate {
	_c.mutation.SetNacionalidad(v)
	return _c
}

// SetNillableNacionalidad sets the "nacionalidad" field if the given value is not nil.
func (_c *MadreCreate) SetNillableNacionalidad(v *string) *MadreCreate {
	if v != nil {
		_c.SetNacionalidad(*v)
	}
	return _c
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (_c *MadreCreate) SetPertenecePuebloOriginario(v bool) *MadreCreate {
	_c.mutation.SetPertenecePuebloOriginario(v)
	return _c
}

// SetNillablePertenecePuebloOriginario sets the "pertenece_pueblo_originario" field if the given value is not nil.
func (_c *MadreCreate) SetNillablePertenecePuebloOriginario(v *bool) *MadreCreate {
	if v != nil {
		_c.SetPertenecePuebloOriginario(*v)
	}
	return _c
}

// SetPrevision sets the "prevision" field.
func (_c *MadreCreate) SetPrevision(v madre.Prevision) *MadreCreate {
	_c.mutation.SetPrevision(v)
	return _c
}

// SetNillablePrevision sets the "prevision" field if the given value is not nil.
func (_c *MadreCreate) SetNillablePrevision(v *madre.Prevision) *MadreCreate {
	if v != nil {
		_c.SetPrevision(*v)
	}
	return _c
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (_c *MadreCreate) SetAntecedentesMedicos(v string) *MadreCreate {
	_c.mutation.SetAntecedentesMedicos(v)
	return _c
}

// SetNillableAntecedentesMedicos sets the "antecedentes_medicos" field if the given value is not nil.
func (_c *MadreCreate) SetNillableAntecedentesMedicos(v *string) *MadreCreate {
	if v != nil {
		_c.SetAntecedentesMedicos(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MadreCreate) SetID(v uuid.UUID) *MadreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MadreCreate) SetNillableID(v *uuid.UUID) *MadreCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPartoIDs adds the "partos" edge to the Parto entity by IDs.
func (_c *MadreCreate) AddPartoIDs(ids ...uuid.UUID) *MadreCreate {
	_c.mutation.AddPartoIDs(ids...)
	return _c
}

// AddPartos adds the "partos" edges to the Parto entity.
func (_c *MadreCreate) AddPartos(v ...*Parto) *MadreCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPartoIDs(ids...)
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by ID.
func (_c *MadreCreate) SetDefuncionID(id uuid.UUID) *MadreCreate {
	_c.mutation.SetDefuncionID(id)
	return _c
}

// SetNillableDefuncionID sets the "defuncion" edge to the Defuncion entity by ID if the given value is not nil.
func (_c *MadreCreate) SetNillableDefuncionID(id *uuid.UUID) *MadreCreate {
	if id != nil {
		_c = _c.SetDefuncionID(*id)
	}
	return _c
}

// SetDefuncion sets the "defuncion" edge to the Defuncion entity.
func (_c *MadreCreate) SetDefuncion(v *Defuncion) *MadreCreate {
	return _c.SetDefuncionID(v.ID)
}

// Mutation returns the MadreMutation object of the builder.
func (_c *MadreCreate) Mutation() *MadreMutation {
	return _c.mutation
}

// Save creates the Madre in the database.
func (_c *MadreCreate) Save(ctx context.Context) (*Madre, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MadreCreate) SaveX(ctx context.Context) *Madre {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MadreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MadreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MadreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := madre.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := madre.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Nacionalidad(); !ok {
		v := madre.DefaultNacionalidad
		_c.mutation.SetNacionalidad(v)
	}
	if _, ok := _c.mutation.PertenecePuebloOriginario(); !ok {
		v := madre.DefaultPertenecePuebloOriginario
		_c.mutation.SetPertenecePuebloOriginario(v)
	}
	if _, ok := _c.mutation.Prevision(); !ok {
		v := madre.DefaultPrevision
		_c.mutation.SetPrevision(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := madre.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MadreCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Madre.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Madre.updated_at"`)}
	}
	if v, ok := _c.mutation.FichaClinicaID(); ok {
		if err := madre.FichaClinicaIDValidator(v); err != nil {
			return &ValidationError{Name: "ficha_clinica_id", err: fmt.Errorf(`repo: validator failed for field "Madre.ficha_clinica_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RutHash(); ok {
		if err := madre.RutHashValidator(v); err != nil {
			return &ValidationError{Name: "rut_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.rut_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.NombreHash(); ok {
		if err := madre.NombreHashValidator(v); err != nil {
			return &ValidationError{Name: "nombre_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.nombre_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TelefonoHash(); ok {
		if err := madre.TelefonoHashValidator(v); err != nil {
			return &ValidationError{Name: "telefono_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.telefono_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FechaNacimiento(); !ok {
		return &ValidationError{Name: "fecha_nacimiento", err: errors.New(`repo: missing required field "Madre.fecha_nacimiento"`)}
	}
	if _, ok := _c.mutation.Nacionalidad(); !ok {
		return &ValidationError{Name: "nacionalidad", err: errors.New(`repo: missing required field "Madre.nacionalidad"`)}
	}
	if v, ok := _c.mutation.Nacionalidad(); ok {
		if err := madre.NacionalidadValidator(v); err != nil {
			return &ValidationError{Name: "nacionalidad", err: fmt.Errorf(`repo: validator failed for field "Madre.nacionalidad": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PertenecePuebloOriginario(); !ok {
		return &ValidationError{Name: "pertenece_pueblo_originario", err: errors.New(`repo: missing required field "Madre.pertenece_pueblo_originario"`)}
	}
	if _, ok := _c.mutation.Prevision(); !ok {
		return &ValidationError{Name: "prevision", err: errors.New(`repo: missing required field "Madre.prevision"`)}
	}
	if v, ok := _c.mutation.Prevision(); ok {
		if err := madre.PrevisionValidator(v); err != nil {
			return &ValidationError{Name: "prevision", err: fmt.Errorf(`repo: validator failed for field "Madre.prevision": %w`, err)}
		}
	}
	return nil
}

func (_c *MadreCreate) sqlSave(ctx context.Context) (*Madre, error) {
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

func (_c *MadreCreate) createSpec() (*Madre, *sqlgraph.CreateSpec) {
	var (
		_node = &Madre{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(madre.Table, sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(madre.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(madre.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FichaClinicaID(); ok {
		_spec.SetField(madre.FieldFichaClinicaID, field.TypeString, value)
		_node.FichaClinicaID = value
	}
	if value, ok := _c.mutation.RutHash(); ok {
		_spec.SetField(madre.FieldRutHash, field.TypeString, value)
		_node.RutHash = value
	}
	if value, ok := _c.mutation.RutEncrypted(); ok {
		_spec.SetField(madre.FieldRutEncrypted, field.TypeString, value)
		_node.RutEncrypted = value
	}
	if value, ok := _c.mutation.NombreHash(); ok {
		_spec.SetField(madre.FieldNombreHash, field.TypeString, value)
		_node.NombreHash = value
	}
	if value, ok := _c.mutation.NombreEncrypted(); ok {
		_spec.SetField(madre.FieldNombreEncrypted, field.TypeString, value)
		_node.NombreEncrypted = value
	}
	if value, ok := _c.mutation.TelefonoHash(); ok {
		_spec.SetField(madre.FieldTelefonoHash, field.TypeString, value)
		_node.TelefonoHash = value
	}
	if value, ok := _c.mutation.TelefonoEncrypted(); ok {
		_spec.SetField(madre.FieldTelefonoEncrypted, field.TypeString, value)
		_node.TelefonoEncrypted = value
	}
	if value, ok := _c.mutation.FechaNacimiento(); ok {
		_spec.SetField(madre.FieldFechaNacimiento, field.TypeTime, value)
		_node.FechaNacimiento = value
	}
	if value, ok := _c.mutation.Nacionalidad(); ok {
		_spec.SetField(madre.FieldNacionalidad, field.TypeString, value)
		_node.Nacionalidad = value
	}
	if value, ok := _c.mutation.PertenecePuebloOriginario(); ok {
		_spec.SetField(madre.FieldPertenecePuebloOriginario, field.TypeBool, value)
		_node.PertenecePuebloOriginario = value
	}
	if value, ok := _c.mutation.Prevision(); ok {
		_spec.SetField(madre.FieldPrevision, field.TypeEnum, value)
		_node.Prevision = value
	}
	if value, ok := _c.mutation.AntecedentesMedicos(); ok {
		_spec.SetField(madre.FieldAntecedentesMedicos, field.TypeString, value)
		_node.AntecedentesMedicos = value
	}
	if nodes := _c.mutation.PartosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   madre.PartosTable,
			Columns: []string{madre.PartosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DefuncionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   madre.DefuncionTable,
			Columns: []string{madre.DefuncionColumn},
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
//	client.Madre.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MadreUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MadreCreate) OnConflict(opts ...sql.ConflictOption) *MadreUpsertOne {
	_c.conflict = opts
	return &MadreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Madre.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MadreCreate) OnConflictColumns(columns ...string) *MadreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MadreUpsertOne{
		create: _c,
	}
}

type (
	// MadreUpsertOne is the builder for "upsert"-ing
	//  one Madre node.
	MadreUpsertOne struct {
		create *MadreCreate
	}

	// MadreUpsert is the "OnConflict" setter.
	MadreUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MadreUpsert) SetUpdatedAt(v time.Time) *MadreUpsert {
	u.Set(madre.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MadreUpsert) UpdateUpdatedAt() *MadreUpsert {
	u.SetExcluded(madre.FieldUpdatedAt)
	return u
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (u *MadreUpsert) SetFichaClinicaID(v string) *MadreUpsert {
	u.Set(madre.FieldFichaClinicaID, v)
	return u
}

// UpdateFichaClinicaID sets the "ficha_clinica_id" field to the value that was provided on create.
func (u *MadreUpsert) UpdateFichaClinicaID() *MadreUpsert {
	u.SetExcluded(madre.FieldFichaClinicaID)
	return u
}

// ClearFichaClinicaID clears the value of the "ficha_clinica_id" field.
func (u *MadreUpsert) ClearFichaClinicaID() *MadreUpsert {
	u.SetNull(madre.FieldFichaClinicaID)
	return u
}

// SetRutHash sets the "rut_hash" field.
func (u *MadreUpsert) SetRutHash(v string) *MadreUpsert {
	u.Set(madre.FieldRutHash, v)
	return u
}

// UpdateRutHash sets the "rut_hash" field to the value that was provided on create.
func (u *MadreUpsert) UpdateRutHash() *MadreUpsert {
	u.SetExcluded(madre.FieldRutHash)
	return u
}

// ClearRutHash clears the value of the "rut_hash" field.
func (u *MadreUpsert) ClearRutHash() *MadreUpsert {
	u.SetNull(madre.FieldRutHash)
	return u
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (u *MadreUpsert) SetRutEncrypted(v string) *MadreUpsert {
	u.Set(madre.FieldRutEncrypted, v)
	return u
}

// UpdateRutEncrypted sets the "rut_encrypted" field to the value that was provided on create.
func (u *MadreUpsert) UpdateRutEncrypted() *MadreUpsert {
	u.SetExcluded(madre.FieldRutEncrypted)
	return u
}

// ClearRutEncrypted clears the value of the "rut_encrypted" field.
func (u *MadreUpsert) ClearRutEncrypted() *MadreUpsert {
	u.SetNull(madre.FieldRutEncrypted)
	return u
}

// SetNombreHash sets the "nombre_hash" field.
func (u *MadreUpsert) SetNombreHash(v string) *MadreUpsert {
	u.Set(madre.FieldNombreHash, v)
	return u
}

// UpdateNombreHash sets the "nombre_hash" field to the value that was provided on create.
func (u *MadreUpsert) UpdateNombreHash() *MadreUpsert {
	u.SetExcluded(madre.FieldNombreHash)
	return u
}

// ClearNombreHash clears the value of the "nombre_hash" field.
func (u *MadreUpsert) ClearNombreHash() *MadreUpsert {
	u.SetNull(madre.FieldNombreHash)
	return u
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (u *MadreUpsert) SetNombreEncrypted(v string) *MadreUpsert {
	u.Set(madre.FieldNombreEncrypted, v)
	return u
}

// UpdateNombreEncrypted sets the "nombre_encrypted" field to the value that was provided on create.
func (u *MadreUpsert) UpdateNombreEncrypted() *MadreUpsert {
	u.SetExcluded(madre.FieldNombreEncrypted)
	return u
}

// ClearNombreEncrypted clears the value of the "nombre_encrypted" field.
func (u *MadreUpsert) ClearNombreEncrypted() *MadreUpsert {
	u.SetNull(madre.FieldNombreEncrypted)
	return u
}

// SetTelefonoHash sets the "telefono_hash" field.
func (u *MadreUpsert) SetTelefonoHash(v string) *MadreUpsert {
	u.Set(madre.FieldTelefonoHash, v)
	return u
}

// UpdateTelefonoHash sets the "telefono_hash" field to the value that was provided on create.
func (u *MadreUpsert) UpdateTelefonoHash() *MadreUpsert {
	u.SetExcluded(madre.FieldTelefonoHash)
	return u
}

// ClearTelefonoHash clears the value of the "telefono_hash" field.
func (u *MadreUpsert) ClearTelefonoHash() *MadreUpsert {
	u.SetNull(madre.FieldTelefonoHash)
	return u
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (u *MadreUpsert) SetTelefonoEncrypted(v string) *MadreUpsert {
	u.Set(madre.FieldTelefonoEncrypted, v)
	return u
}

// UpdateTelefonoEncrypted sets the "telefono_encrypted" field to the value that was provided on create.
func (u *MadreUpsert) UpdateTelefonoEncrypted() *MadreUpsert {
	u.SetExcluded(madre.FieldTelefonoEncrypted)
	return u
}

// ClearTelefonoEncrypted clears the value of the "telefono_encrypted" field.
func (u *MadreUpsert) ClearTelefonoEncrypted() *MadreUpsert {
	u.SetNull(madre.FieldTelefonoEncrypted)
	return u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (u *MadreUpsert) SetFechaNacimiento(v time.Time) *MadreUpsert {
	u.Set(madre.FieldFechaNacimiento, v)
	return u
}

// UpdateFechaNacimiento sets the "fecha_nacimiento" field to the value that was provided on create.
func (u *MadreUpsert) UpdateFechaNacimiento() *MadreUpsert {
	u.SetExcluded(madre.FieldFechaNacimiento)
	return u
}

// SetNacionalidad sets the "nacionalidad" field.
func (u *MadreUpsert) SetNacionalidad(v string) *MadreUpsert {
	u.Set(madre.FieldNacionalidad, v)
	return u
}

// UpdateNacionalidad sets the "nacionalidad" field to the value that was provided on create.
func (u *MadreUpsert) UpdateNacionalidad() *MadreUpsert {
	u.SetExcluded(madre.FieldNacionalidad)
	return u
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (u *MadreUpsert) SetPertenecePuebloOriginario(v bool) *MadreUpsert {
	u.Set(madre.FieldPertenecePuebloOriginario, v)
	return u
}

// UpdatePertenecePuebloOriginario sets the "pertenece_pueblo_originario" field to the value that was provided on create.
func (u *MadreUpsert) UpdatePertenecePuebloOriginario() *MadreUpsert {
	u.SetExcluded(madre.FieldPertenecePuebloOriginario)
	return u
}

// SetPrevision sets the "prevision" field.
func (u *MadreUpsert) SetPrevision(v madre.Prevision) *MadreUpsert {
	u.Set(madre.FieldPrevision, v)
	return u
}

// UpdatePrevision sets the "prevision" field to the value that was provided on create.
func (u *MadreUpsert) UpdatePrevision() *MadreUpsert {
	u.SetExcluded(madre.FieldPrevision)
	return u
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (u *MadreUpsert) SetAntecedentesMedicos(v string) *MadreUpsert {
	u.Set(madre.FieldAntecedentesMedicos, v)
	return u
}

// UpdateAntecedentesMedicos sets the "antecedentes_medicos" field to the value that was provided on create.
func (u *MadreUpsert) UpdateAntecedentesMedicos() *MadreUpsert {
	u.SetExcluded(madre.FieldAntecedentesMedicos)
	return u
}

// ClearAntecedentesMedicos clears the value of the "antecedentes_medicos" field.
func (u *MadreUpsert) ClearAntecedentesMedicos() *MadreUpsert {
	u.SetNull(madre.FieldAntecedentesMedicos)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Madre.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(madre.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MadreUpsertOne) UpdateNewValues() *MadreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(madre.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(madre.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Madre.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MadreUpsertOne) Ignore() *MadreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MadreUpsertOne) DoNothing() *MadreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MadreCreate.OnConflict
// documentation for more info.
func (u *MadreUpsertOne) Update(set func(*MadreUpsert)) *MadreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MadreUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MadreUpsertOne) SetUpdatedAt(v time.Time) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateUpdatedAt() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (u *MadreUpsertOne) SetFichaClinicaID(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetFichaClinicaID(v)
	})
}

// UpdateFichaClinicaID sets the "ficha_clinica_id" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateFichaClinicaID() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateFichaClinicaID()
	})
}

// ClearFichaClinicaID clears the value of the "ficha_clinica_id" field.
func (u *MadreUpsertOne) ClearFichaClinicaID() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearFichaClinicaID()
	})
}

// SetRutHash sets the "rut_hash" field.
func (u *MadreUpsertOne) SetRutHash(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetRutHash(v)
	})
}

// UpdateRutHash sets the "rut_hash" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateRutHash() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateRutHash()
	})
}

// ClearRutHash clears the value of the "rut_hash" field.
func (u *MadreUpsertOne) ClearRutHash() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearRutHash()
	})
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (u *MadreUpsertOne) SetRutEncrypted(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetRutEncrypted(v)
	})
}

// UpdateRutEncrypted sets the "rut_encrypted" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateRutEncrypted() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateRutEncrypted()
	})
}

// ClearRutEncrypted clears the value of the "rut_encrypted" field.
func (u *MadreUpsertOne) ClearRutEncrypted() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearRutEncrypted()
	})
}

// SetNombreHash sets the "nombre_hash" field.
func (u *MadreUpsertOne) SetNombreHash(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetNombreHash(v)
	})
}

// UpdateNombreHash sets the "nombre_hash" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateNombreHash() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateNombreHash()
	})
}

// ClearNombreHash clears the value of the "nombre_hash" field.
func (u *MadreUpsertOne) ClearNombreHash() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearNombreHash()
	})
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (u *MadreUpsertOne) SetNombreEncrypted(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetNombreEncrypted(v)
	})
}

// UpdateNombreEncrypted sets the "nombre_encrypted" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateNombreEncrypted() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateNombreEncrypted()
	})
}

// ClearNombreEncrypted clears the value of the "nombre_encrypted" field.
func (u *MadreUpsertOne) ClearNombreEncrypted() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearNombreEncrypted()
	})
}

// SetTelefonoHash sets the "telefono_hash" field.
func (u *MadreUpsertOne) SetTelefonoHash(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetTelefonoHash(v)
	})
}

// UpdateTelefonoHash sets the "telefono_hash" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateTelefonoHash() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateTelefonoHash()
	})
}

// ClearTelefonoHash clears the value of the "telefono_hash" field.
func (u *MadreUpsertOne) ClearTelefonoHash() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearTelefonoHash()
	})
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (u *MadreUpsertOne) SetTelefonoEncrypted(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetTelefonoEncrypted(v)
	})
}

// UpdateTelefonoEncrypted sets the "telefono_encrypted" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateTelefonoEncrypted() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateTelefonoEncrypted()
	})
}

// ClearTelefonoEncrypted clears the value of the "telefono_encrypted" field.
func (u *MadreUpsertOne) ClearTelefonoEncrypted() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearTelefonoEncrypted()
	})
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (u *MadreUpsertOne) SetFechaNacimiento(v time.Time) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetFechaNacimiento(v)
	})
}

// UpdateFechaNacimiento sets the "fecha_nacimiento" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateFechaNacimiento() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateFechaNacimiento()
	})
}

// SetNacionalidad sets the "nacionalidad" field.
func (u *MadreUpsertOne) SetNacionalidad(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetNacionalidad(v)
	})
}

// UpdateNacionalidad sets the "nacionalidad" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateNacionalidad() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateNacionalidad()
	})
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (u *MadreUpsertOne) SetPertenecePuebloOriginario(v bool) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetPertenecePuebloOriginario(v)
	})
}

// UpdatePertenecePuebloOriginario sets the "pertenece_pueblo_originario" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdatePertenecePuebloOriginario() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdatePertenecePuebloOriginario()
	})
}

// SetPrevision sets the "prevision" field.
func (u *MadreUpsertOne) SetPrevision(v madre.Prevision) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetPrevision(v)
	})
}

// UpdatePrevision sets the "prevision" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdatePrevision() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdatePrevision()
	})
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (u *MadreUpsertOne) SetAntecedentesMedicos(v string) *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.SetAntecedentesMedicos(v)
	})
}

// UpdateAntecedentesMedicos sets the "antecedentes_medicos" field to the value that was provided on create.
func (u *MadreUpsertOne) UpdateAntecedentesMedicos() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateAntecedentesMedicos()
	})
}

// ClearAntecedentesMedicos clears the value of the "antecedentes_medicos" field.
func (u *MadreUpsertOne) ClearAntecedentesMedicos() *MadreUpsertOne {
	return u.Update(func(s *MadreUpsert) {
		s.ClearAntecedentesMedicos()
	})
}

// Exec executes the query.
func (u *MadreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MadreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MadreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MadreUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MadreUpsertOne.ID is not supported by MySQL driver. Use MadreUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MadreUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MadreCreateBulk is the builder for creating many Madre entities in bulk.
type MadreCreateBulk struct {
	config
	err      error
	builders []*MadreCreate
	conflict []sql.ConflictOption
}

// Save creates the Madre entities in the database.
func (_c *MadreCreateBulk) Save(ctx context.Context) ([]*Madre, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Madre, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MadreMutation)
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
func (_c *MadreCreateBulk) SaveX(ctx context.Context) []*Madre {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MadreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MadreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Madre.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MadreUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MadreCreateBulk) OnConflict(opts ...sql.ConflictOption) *MadreUpsertBulk {
	_c.conflict = opts
	return &MadreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Madre.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MadreCreateBulk) OnConflictColumns(columns ...string) *MadreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MadreUpsertBulk{
		create: _c,
	}
}

// MadreUpsertBulk is the builder for "upsert"-ing
// a bulk of Madre nodes.
type MadreUpsertBulk struct {
	create *MadreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Madre.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(madre.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MadreUpsertBulk) UpdateNewValues() *MadreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(madre.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(madre.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Madre.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MadreUpsertBulk) Ignore() *MadreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MadreUpsertBulk) DoNothing() *MadreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MadreCreateBulk.OnConflict
// documentation for more info.
func (u *MadreUpsertBulk) Update(set func(*MadreUpsert)) *MadreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MadreUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MadreUpsertBulk) SetUpdatedAt(v time.Time) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateUpdatedAt() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (u *MadreUpsertBulk) SetFichaClinicaID(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetFichaClinicaID(v)
	})
}

// UpdateFichaClinicaID sets the "ficha_clinica_id" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateFichaClinicaID() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateFichaClinicaID()
	})
}

// ClearFichaClinicaID clears the value of the "ficha_clinica_id" field.
func (u *MadreUpsertBulk) ClearFichaClinicaID() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearFichaClinicaID()
	})
}

// SetRutHash sets the "rut_hash" field.
func (u *MadreUpsertBulk) SetRutHash(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetRutHash(v)
	})
}

// UpdateRutHash sets the "rut_hash" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateRutHash() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateRutHash()
	})
}

// ClearRutHash clears the value of the "rut_hash" field.
func (u *MadreUpsertBulk) ClearRutHash() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearRutHash()
	})
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (u *MadreUpsertBulk) SetRutEncrypted(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetRutEncrypted(v)
	})
}

// UpdateRutEncrypted sets the "rut_encrypted" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateRutEncrypted() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateRutEncrypted()
	})
}

// ClearRutEncrypted clears the value of the "rut_encrypted" field.
func (u *MadreUpsertBulk) ClearRutEncrypted() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearRutEncrypted()
	})
}

// SetNombreHash sets the "nombre_hash" field.
func (u *MadreUpsertBulk) SetNombreHash(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetNombreHash(v)
	})
}

// UpdateNombreHash sets the "nombre_hash" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateNombreHash() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateNombreHash()
	})
}

// ClearNombreHash clears the value of the "nombre_hash" field.
func (u *MadreUpsertBulk) ClearNombreHash() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearNombreHash()
	})
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (u *MadreUpsertBulk) SetNombreEncrypted(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetNombreEncrypted(v)
	})
}

// UpdateNombreEncrypted sets the "nombre_encrypted" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateNombreEncrypted() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateNombreEncrypted()
	})
}

// ClearNombreEncrypted clears the value of the "nombre_encrypted" field.
func (u *MadreUpsertBulk) ClearNombreEncrypted() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearNombreEncrypted()
	})
}

// SetTelefonoHash sets the "telefono_hash" field.
func (u *MadreUpsertBulk) SetTelefonoHash(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetTelefonoHash(v)
	})
}

// UpdateTelefonoHash sets the "telefono_hash" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateTelefonoHash() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateTelefonoHash()
	})
}

// ClearTelefonoHash clears the value of the "telefono_hash" field.
func (u *MadreUpsertBulk) ClearTelefonoHash() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearTelefonoHash()
	})
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (u *MadreUpsertBulk) SetTelefonoEncrypted(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetTelefonoEncrypted(v)
	})
}

// UpdateTelefonoEncrypted sets the "telefono_encrypted" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateTelefonoEncrypted() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateTelefonoEncrypted()
	})
}

// ClearTelefonoEncrypted clears the value of the "telefono_encrypted" field.
func (u *MadreUpsertBulk) ClearTelefonoEncrypted() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearTelefonoEncrypted()
	})
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (u *MadreUpsertBulk) SetFechaNacimiento(v time.Time) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetFechaNacimiento(v)
	})
}

// UpdateFechaNacimiento sets the "fecha_nacimiento" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateFechaNacimiento() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateFechaNacimiento()
	})
}

// SetNacionalidad sets the "nacionalidad" field.
func (u *MadreUpsertBulk) SetNacionalidad(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetNacionalidad(v)
	})
}

// UpdateNacionalidad sets the "nacionalidad" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateNacionalidad() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateNacionalidad()
	})
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (u *MadreUpsertBulk) SetPertenecePuebloOriginario(v bool) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetPertenecePuebloOriginario(v)
	})
}

// UpdatePertenecePuebloOriginario sets the "pertenece_pueblo_originario" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdatePertenecePuebloOriginario() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdatePertenecePuebloOriginario()
	})
}

// SetPrevision sets the "prevision" field.
func (u *MadreUpsertBulk) SetPrevision(v madre.Prevision) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetPrevision(v)
	})
}

// UpdatePrevision sets the "prevision" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdatePrevision() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdatePrevision()
	})
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (u *MadreUpsertBulk) SetAntecedentesMedicos(v string) *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.SetAntecedentesMedicos(v)
	})
}

// UpdateAntecedentesMedicos sets the "antecedentes_medicos" field to the value that was provided on create.
func (u *MadreUpsertBulk) UpdateAntecedentesMedicos() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.UpdateAntecedentesMedicos()
	})
}

// ClearAntecedentesMedicos clears the value of the "antecedentes_medicos" field.
func (u *MadreUpsertBulk) ClearAntecedentesMedicos() *MadreUpsertBulk {
	return u.Update(func(s *MadreUpsert) {
		s.ClearAntecedentesMedicos()
	})
}

// Exec executes the query.
func (u *MadreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MadreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MadreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MadreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
