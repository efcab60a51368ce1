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
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// MadreUpdate is the builder for updating Madre entities.
type MadreUpdate struct {
	config
	hooks    []Hook
	mutation *MadreMutation
}

// Where appends a list predicates to the MadreUpdate builder.
func (_u *MadreUpdate) Where(ps ...predicate.Madre) *MadreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MadreUpdate) SetUpdatedAt(v time.Time) *MadreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (_u *MadreUpdate) SetFichaClinicaID(v string) *MadreUpdate {
	_u.mutation.SetFichaClinicaID(v)
	return _u
}

// SetNillableFichaClinicaID sets the "ficha_clinica_id" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableFichaClinicaID(v *string) *MadreUpdate {
	if v != nil {
		_u.SetFichaClinicaID(*v)
	}
	return _u
}

// ClearFichaClinicaID clears the value of the "ficha_clinica_id" field.
func (_u *MadreUpdate) ClearFichaClinicaID() *MadreUpdate {
	_u.mutation.ClearFichaClinicaID()
	return _u
}

// SetRutHash sets the "rut_hash" field.
func (_u *MadreUpdate) SetRutHash(v string) *MadreUpdate {
	_u.mutation.SetRutHash(v)
	return _u
}

// SetNillableRutHash sets the "rut_hash" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableRutHash(v *string) *MadreUpdate {
	if v != nil {
		_u.SetRutHash(*v)
	}
	return _u
}

// ClearRutHash clears the value of the "rut_hash" field.
func (_u *MadreUpdate) ClearRutHash() *MadreUpdate {
	_u.mutation.ClearRutHash()
	return _u
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (_u *MadreUpdate) SetRutEncrypted(v string) *MadreUpdate {
	_u.mutation.SetRutEncrypted(v)
	return _u
}

// SetNillableRutEncrypted sets the "rut_encrypted" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableRutEncrypted(v *string) *MadreUpdate {
	if v != nil {
		_u.SetRutEncrypted(*v)
	}
	return _u
}

// ClearRutEncrypted clears the value of the "rut_encrypted" field.
func (_u *MadreUpdate) ClearRutEncrypted() *MadreUpdate {
	_u.mutation.ClearRutEncrypted()
	return _u
}

// SetNombreHash sets the "nombre_hash" field.
func (_u *MadreUpdate) SetNombreHash(v string) *MadreUpdate {
	_u.mutation.SetNombreHash(v)
	return _u
}

// SetNillableNombreHash sets the "nombre_hash" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableNombreHash(v *string) *MadreUpdate {
	if v != nil {
		_u.SetNombreHash(*v)
	}
	return _u
}

// ClearNombreHash clears the value of the "nombre_hash" field.
func (_u *MadreUpdate) ClearNombreHash() *MadreUpdate {
	_u.mutation.ClearNombreHash()
	return _u
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (_u *MadreUpdate) SetNombreEncrypted(v string) *MadreUpdate {
	_u.mutation.SetNombreEncrypted(v)
	return _u
}

// SetNillableNombreEncrypted sets the "nombre_encrypted" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableNombreEncrypted(v *string) *MadreUpdate {
	if v != nil {
		_u.SetNombreEncrypted(*v)
	}
	return _u
}

// ClearNombreEncrypted clears the value of the "nombre_encrypted" field.
func (_u *MadreUpdate) ClearNombreEncrypted() *MadreUpdate {
	_u.mutation.ClearNombreEncrypted()
	return _u
}

// SetTelefonoHash sets the "telefono_hash" field.
func (_u *MadreUpdate) SetTelefonoHash(v string) *MadreUpdate {
	_u.mutation.SetTelefonoHash(v)
	return _u
}

// SetNillableTelefonoHash sets the "telefono_hash" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableTelefonoHash(v *string) *MadreUpdate {
	if v != nil {
		_u.SetTelefonoHash(*v)
	}
	return _u
}

// ClearTelefonoHash clears the value of the "telefono_hash" field.
func (_u *MadreUpdate) ClearTelefonoHash() *MadreUpdate {
	_u.mutation.ClearTelefonoHash()
	return _u
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (_u *MadreUpdate) SetTelefonoEncrypted(v string) *MadreUpdate {
	_u.mutation.SetTelefonoEncrypted(v)
	return _u
}

// SetNillableTelefonoEncrypted sets the "telefono_encrypted" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableTelefonoEncrypted(v *string) *MadreUpdate {
	if v != nil {
		_u.SetTelefonoEncrypted(*v)
	}
	return _u
}

// ClearTelefonoEncrypted clears the value of the "telefono_encrypted" field.
func (_u *MadreUpdate) ClearTelefonoEncrypted() *MadreUpdate {
	_u.mutation.ClearTelefonoEncrypted()
	return _u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_u *MadreUpdate) SetFechaNacimiento(v time.Time) *MadreUpdate {
	_u.mutation.SetFechaNacimiento(v)
	return _u
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableFechaNacimiento(v *time.Time) *MadreUpdate {
	if v != nil {
		_u.SetFechaNacimiento(*v)
	}
	return _u
}

// SetNacionalidad sets the "nacionalidad" field.
func (_u *MadreUpdate) SetNacionalidad(v string) *MadreUpdate {
	_u.mutation.SetNacionalidad(v)
	return _u
}

// SetNillableNacionalidad sets the "nacionalidad" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableNacionalidad(v *string) *MadreUpdate {
	if v != nil {
		_u.SetNacionalidad(*v)
	}
	return _u
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (_u *MadreUpdate) SetPertenecePuebloOriginario(v bool) *MadreUpdate {
	_u.mutation.SetPertenecePuebloOriginario(v)
	return _u
}

// SetNillablePertenecePuebloOriginario sets the "pertenece_pueblo_originario" field if the given value is not nil.
func (_u *MadreUpdate) SetNillablePertenecePuebloOriginario(v *bool) *MadreUpdate {
	if v != nil {
		_u.SetPertenecePuebloOriginario(*v)
	}
	return _u
}

// SetPrevision sets the "prevision" field.
func (_u *MadreUpdate) SetPrevision(v madre.Prevision) *MadreUpdate {
	_u.mutation.SetPrevision(v)
	return _u
}

// SetNillablePrevision sets the "prevision" field if the given value is not nil.
func (_u *MadreUpdate) SetNillablePrevision(v *madre.Prevision) *MadreUpdate {
	if v != nil {
		_u.SetPrevision(*v)
	}
	return _u
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (_u *MadreUpdate) SetAntecedentesMedicos(v string) *MadreUpdate {
	_u.mutation.SetAntecedentesMedicos(v)
	return _u
}

// SetNillableAntecedentesMedicos sets the "antecedentes_medicos" field if the given value is not nil.
func (_u *MadreUpdate) SetNillableAntecedentesMedicos(v *string) *MadreUpdate {
	if v != nil {
		_u.SetAntecedentesMedicos(*v)
	}
	return _u
}

// ClearAntecedentesMedicos clears the value of the "antecedentes_medicos" field.
func (_u *MadreUpdate) ClearAntecedentesMedicos() *MadreUpdate {
	_u.mutation.ClearAntecedentesMedicos()
	return _u
}

// AddPartoIDs adds the "partos" edge to the Parto entity by IDs.
func (_u *MadreUpdate) AddPartoIDs(ids ...uuid.UUID) *MadreUpdate {
	_u.mutation.AddPartoIDs(ids...)
	return _u
}

// AddPartos adds the "partos" edges to the Parto entity.
func (_u *MadreUpdate) AddPartos(v ...*Parto) *MadreUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartoIDs(ids...)
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by ID.
func (_u *MadreUpdate) SetDefuncionID(id uuid.UUID) *MadreUpdate {
	_u.mutation.SetDefuncionID(id)
	return _u
}

// SetNillableDefuncionID sets the "defuncion" edge to the Defuncion entity by ID if the given value is not nil.
func (_u *MadreUpdate) SetNillableDefuncionID(id *uuid.UUID) *MadreUpdate {
	if id != nil {
		_u = _u.SetDefuncionID(*id)
	}
	return _u
}

// SetDefuncion sets the "defuncion" edge to the Defuncion entity.
func (_u *MadreUpdate) SetDefuncion(v *Defuncion) *MadreUpdate {
	return _u.SetDefuncionID(v.ID)
}

// Mutation returns the MadreMutation object of the builder.
func (_u *MadreUpdate) Mutation() *MadreMutation {
	return _u.mutation
}

// ClearPartos clears all "partos" edges to the Parto entity.
func (_u *MadreUpdate) ClearPartos() *MadreUpdate {
	_u.mutation.ClearPartos()
	return _u
}

// RemovePartoIDs removes the "partos" edge to Parto entities by IDs.
func (_u *MadreUpdate) RemovePartoIDs(ids ...uuid.UUID) *MadreUpdate {
	_u.mutation.RemovePartoIDs(ids...)
	return _u
}

// RemovePartos removes "partos" edges to Parto entities.
func (_u *MadreUpdate) RemovePartos(v ...*Parto) *MadreUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartoIDs(ids...)
}

// ClearDefuncion clears the "defuncion" edge to the Defuncion entity.
func (_u *MadreUpdate) ClearDefuncion() *MadreUpdate {
	_u.mutation.ClearDefuncion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MadreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MadreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MadreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MadreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MadreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := madre.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MadreUpdate) check() error {
	if v, ok := _u.mutation.FichaClinicaID(); ok {
		if err := madre.FichaClinicaIDValidator(v); err != nil {
			return &ValidationError{Name: "ficha_clinica_id", err: fmt.Errorf(`repo: validator failed for field "Madre.ficha_clinica_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RutHash(); ok {
		if err := madre.RutHashValidator(v); err != nil {
			return &ValidationError{Name: "rut_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.rut_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NombreHash(); ok {
		if err := madre.NombreHashValidator(v); err != nil {
			return &ValidationError{Name: "nombre_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.nombre_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TelefonoHash(); ok {
		if err := madre.TelefonoHashValidator(v); err != nil {
			return &ValidationError{Name: "telefono_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.telefono_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nacionalidad(); ok {
		if err := madre.NacionalidadValidator(v); err != nil {
			return &ValidationError{Name: "nacionalidad", err: fmt.Errorf(`repo: validator failed for field "Madre.nacionalidad": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prevision(); ok {
		if err := madre.PrevisionValidator(v); err != nil {
			return &ValidationError{Name: "prevision", err: fmt.Errorf(`repo: validator failed for field "Madre.prevision": %w`, err)}
		}
	}
	return nil
}

func (_u *MadreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(madre.Table, madre.Columns, sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(madre.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FichaClinicaID(); ok {
		_spec.SetField(madre.FieldFichaClinicaID, field.TypeString, value)
	}
	if _u.mutation.FichaClinicaIDCleared() {
		_spec.ClearField(madre.FieldFichaClinicaID, field.TypeString)
	}
	if value, ok := _u.mutation.RutHash(); ok {
		_spec.SetField(madre.FieldRutHash, field.TypeString, value)
	}
	if _u.mutation.RutHashCleared() {
		_spec.ClearField(madre.FieldRutHash, field.TypeString)
	}
	if value, ok := _u.mutation.RutEncrypted(); ok {
		_spec.SetField(madre.FieldRutEncrypted, field.TypeString, value)
	}
	if _u.mutation.RutEncryptedCleared() {
		_spec.ClearField(madre.FieldRutEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.NombreHash(); ok {
		_spec.SetField(madre.FieldNombreHash, field.TypeString, value)
	}
	if _u.mutation.NombreHashCleared() {
		_spec.ClearField(madre.FieldNombreHash, field.TypeString)
	}
	if value, ok := _u.mutation.NombreEncrypted(); ok {
		_spec.SetField(madre.FieldNombreEncrypted, field.TypeString, value)
	}
	if _u.mutation.NombreEncryptedCleared() {
		_spec.ClearField(madre.FieldNombreEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoHash(); ok {
		_spec.SetField(madre.FieldTelefonoHash, field.TypeString, value)
	}
	if _u.mutation.TelefonoHashCleared() {
		_spec.ClearField(madre.FieldTelefonoHash, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoEncrypted(); ok {
		_spec.SetField(madre.FieldTelefonoEncrypted, field.TypeString, value)
	}
	if _u.mutation.TelefonoEncryptedCleared() {
		_spec.ClearField(madre.FieldTelefonoEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.FechaNacimiento(); ok {
		_spec.SetField(madre.FieldFechaNacimiento, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nacionalidad(); ok {
		_spec.SetField(madre.FieldNacionalidad, field.TypeString, value)
	}
	if value, ok := _u.mutation.PertenecePuebloOriginario(); ok {
		_spec.SetField(madre.FieldPertenecePuebloOriginario, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Prevision(); ok {
		_spec.SetField(madre.FieldPrevision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AntecedentesMedicos(); ok {
		_spec.SetField(madre.FieldAntecedentesMedicos, field.TypeString, value)
	}
	if _u.mutation.AntecedentesMedicosCleared() {
		_spec.ClearField(madre.FieldAntecedentesMedicos, field.TypeString)
	}
	if _u.mutation.PartosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartosIDs(); len(nodes) > 0 && !_u.mutation.PartosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefuncionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{madre.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MadreUpdateOne is the builder for updating a single Madre entity.
type MadreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MadreMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MadreUpdateOne) SetUpdatedAt(v time.Time) *MadreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (_u *MadreUpdateOne) SetFichaClinicaID(v string) *MadreUpdateOne {
	_u.mutation.SetFichaClinicaID(v)
	return _u
}

// SetNillableFichaClinicaID sets the "ficha_clinica_id" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableFichaClinicaID(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetFichaClinicaID(*v)
	}
	return _u
}

// ClearFichaClinicaID clears the value of the "ficha_clinica_id" field.
func (_u *MadreUpdateOne) ClearFichaClinicaID() *MadreUpdateOne {
	_u.mutation.ClearFichaClinicaID()
	return _u
}

// SetRutHash sets the "rut_hash" field.
func (_u *MadreUpdateOne) SetRutHash(v string) *MadreUpdateOne {
	_u.mutation.SetRutHash(v)
	return _u
}

// SetNillableRutHash sets the "rut_hash" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableRutHash(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetRutHash(*v)
	}
	return _u
}

// ClearRutHash clears the value of the "rut_hash" field.
func (_u *MadreUpdateOne) ClearRutHash() *MadreUpdateOne {
	_u.mutation.ClearRutHash()
	return _u
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (_u *MadreUpdateOne) SetRutEncrypted(v string) *MadreUpdateOne {
	_u.mutation.SetRutEncrypted(v)
	return _u
}

// SetNillableRutEncrypted sets the "rut_encrypted" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableRutEncrypted(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetRutEncrypted(*v)
	}
	return _u
}

// ClearRutEncrypted clears the value of the "rut_encrypted" field.
func (_u *MadreUpdateOne) ClearRutEncrypted() *MadreUpdateOne {
	_u.mutation.ClearRutEncrypted()
	return _u
}

// SetNombreHash sets the "nombre_hash" field.
func (_u *MadreUpdateOne) SetNombreHash(v string) *MadreUpdateOne {
	_u.mutation.SetNombreHash(v)
	return _u
}

// SetNillableNombreHash sets the "nombre_hash" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableNombreHash(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetNombreHash(*v)
	}
	return _u
}

// ClearNombreHash clears the value of the "nombre_hash" field.
func (_u *MadreUpdateOne) ClearNombreHash() *MadreUpdateOne {
	_u.mutation.ClearNombreHash()
	return _u
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (_u *MadreUpdateOne) SetNombreEncrypted(v string) *MadreUpdateOne {
	_u.mutation.SetNombreEncrypted(v)
	return _u
}

// SetNillableNombreEncrypted sets the "nombre_encrypted" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableNombreEncrypted(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetNombreEncrypted(*v)
	}
	return _u
}

// ClearNombreEncrypted clears the value of the "nombre_encrypted" field.
func (_u *MadreUpdateOne) ClearNombreEncrypted() *MadreUpdateOne {
	_u.mutation.ClearNombreEncrypted()
	return _u
}

// SetTelefonoHash sets the "telefono_hash" field.
func (_u *MadreUpdateOne) SetTelefonoHash(v string) *MadreUpdateOne {
	_u.mutation.SetTelefonoHash(v)
	return _u
}

// SetNillableTelefonoHash sets the "telefono_hash" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableTelefonoHash(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetTelefonoHash(*v)
	}
	return _u
}

// ClearTelefonoHash clears the value of the "telefono_hash" field.
func (_u *MadreUpdateOne) ClearTelefonoHash() *MadreUpdateOne {
	_u.mutation.ClearTelefonoHash()
	return _u
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (_u *MadreUpdateOne) SetTelefonoEncrypted(v string) *MadreUpdateOne {
	_u.mutation.SetTelefonoEncrypted(v)
	return _u
}

// SetNillableTelefonoEncrypted sets the "telefono_encrypted" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableTelefonoEncrypted(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetTelefonoEncrypted(*v)
	}
	return _u
}

// ClearTelefonoEncrypted clears the value of the "telefono_encrypted" field.
func (_u *MadreUpdateOne) ClearTelefonoEncrypted() *MadreUpdateOne {
	_u.mutation.ClearTelefonoEncrypted()
	return _u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_u *MadreUpdateOne) SetFechaNacimiento(v time.Time) *MadreUpdateOne {
	_u.mutation.SetFechaNacimiento(v)
	return _u
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableFechaNacimiento(v *time.Time) *MadreUpdateOne {
	if v != nil {
		_u.SetFechaNacimiento(*v)
	}
	return _u
}

// SetNacionalidad sets the "nacionalidad" field.
func (_u *MadreUpdateOne) SetNacionalidad(v string) *MadreUpdateOne {
	_u.mutation.SetNacionalidad(v)
	return _u
}

// SetNillableNacionalidad sets the "nacionalidad" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableNacionalidad(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetNacionalidad(*v)
	}
	return _u
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (_u *MadreUpdateOne) SetPertenecePuebloOriginario(v bool) *MadreUpdateOne {
	_u.mutation.SetPertenecePuebloOriginario(v)
	return _u
}

// SetNillablePertenecePuebloOriginario sets the "pertenece_pueblo_originario" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillablePertenecePuebloOriginario(v *bool) *MadreUpdateOne {
	if v != nil {
		_u.SetPertenecePuebloOriginario(*v)
	}
	return _u
}

// SetPrevision sets the "prevision" field.
func (_u *MadreUpdateOne) SetPrevision(v madre.Prevision) *MadreUpdateOne {
	_u.mutation.SetPrevision(v)
	return _u
}

// SetNillablePrevision sets the "prevision" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillablePrevision(v *madre.Prevision) *MadreUpdateOne {
	if v != nil {
		_u.SetPrevision(*v)
	}
	return _u
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (_u *MadreUpdateOne) SetAntecedentesMedicos(v string) *MadreUpdateOne {
	_u.mutation.SetAntecedentesMedicos(v)
	return _u
}

// SetNillableAntecedentesMedicos sets the "antecedentes_medicos" field if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableAntecedentesMedicos(v *string) *MadreUpdateOne {
	if v != nil {
		_u.SetAntecedentesMedicos(*v)
	}
	return _u
}

// ClearAntecedentesMedicos clears the value of the "antecedentes_medicos" field.
func (_u *MadreUpdateOne) ClearAntecedentesMedicos() *MadreUpdateOne {
	_u.mutation.ClearAntecedentesMedicos()
	return _u
}

// AddPartoIDs adds the "partos" edge to the Parto entity by IDs.
func (_u *MadreUpdateOne) AddPartoIDs(ids ...uuid.UUID) *MadreUpdateOne {
	_u.mutation.AddPartoIDs(ids...)
	return _u
}

// AddPartos adds the "partos" edges to the Parto entity.
func (_u *MadreUpdateOne) AddPartos(v ...*Parto) *MadreUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartoIDs(ids...)
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by ID.
func (_u *MadreUpdateOne) SetDefuncionID(id uuid.UUID) *MadreUpdateOne {
	_u.mutation.SetDefuncionID(id)
	return _u
}

// SetNillableDefuncionID sets the "defuncion" edge to the Defuncion entity by ID if the given value is not nil.
func (_u *MadreUpdateOne) SetNillableDefuncionID(id *uuid.UUID) *MadreUpdateOne {
	if id != nil {
		_u = _u.SetDefuncionID(*id)
	}
	return _u
}

// SetDefuncion sets the "defuncion" edge to the Defuncion entity.
func (_u *MadreUpdateOne) SetDefuncion(v *Defuncion) *MadreUpdateOne {
	return _u.SetDefuncionID(v.ID)
}

// Mutation returns the MadreMutation object of the builder.
func (_u *MadreUpdateOne) Mutation() *MadreMutation {
	return _u.mutation
}

// ClearPartos clears all "partos" edges to the Parto entity.
func (_u *MadreUpdateOne) ClearPartos() *MadreUpdateOne {
	_u.mutation.ClearPartos()
	return _u
}

// RemovePartoIDs removes the "partos" edge to Parto entities by IDs.
func (_u *MadreUpdateOne) RemovePartoIDs(ids ...uuid.UUID) *MadreUpdateOne {
	_u.mutation.RemovePartoIDs(ids...)
	return _u
}

// RemovePartos removes "partos" edges to Parto entities.
func (_u *MadreUpdateOne) RemovePartos(v ...*Parto) *MadreUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartoIDs(ids...)
}

// ClearDefuncion clears the "defuncion" edge to the Defuncion entity.
func (_u *MadreUpdateOne) ClearDefuncion() *MadreUpdateOne {
	_u.mutation.ClearDefuncion()
	return _u
}

// Where appends a list predicates to the MadreUpdate builder.
func (_u *MadreUpdateOne) Where(ps ...predicate.Madre) *MadreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MadreUpdateOne) Select(field string, fields ...string) *MadreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Madre entity.
func (_u *MadreUpdateOne) Save(ctx context.Context) (*Madre, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MadreUpdateOne) SaveX(ctx context.Context) *Madre {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MadreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MadreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MadreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := madre.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MadreUpdateOne) check() error {
	if v, ok := _u.mutation.FichaClinicaID(); ok {
		if err := madre.FichaClinicaIDValidator(v); err != nil {
			return &ValidationError{Name: "ficha_clinica_id", err: fmt.Errorf(`repo: validator failed for field "Madre.ficha_clinica_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RutHash(); ok {
		if err := madre.RutHashValidator(v); err != nil {
			return &ValidationError{Name: "rut_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.rut_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NombreHash(); ok {
		if err := madre.NombreHashValidator(v); err != nil {
			return &ValidationError{Name: "nombre_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.nombre_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TelefonoHash(); ok {
		if err := madre.TelefonoHashValidator(v); err != nil {
			return &ValidationError{Name: "telefono_hash", err: fmt.Errorf(`repo: validator failed for field "Madre.telefono_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nacionalidad(); ok {
		if err := madre.NacionalidadValidator(v); err != nil {
			return &ValidationError{Name: "nacionalidad", err: fmt.Errorf(`repo: validator failed for field "Madre.nacionalidad": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prevision(); ok {
		if err := madre.PrevisionValidator(v); err != nil {
			return &ValidationError{Name: "prevision", err: fmt.Errorf(`repo: validator failed for field "Madre.prevision": %w`, err)}
		}
	}
	return nil
}

func (_u *MadreUpdateOne) sqlSave(ctx context.Context) (_node *Madre, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(madre.Table, madre.Columns, sqlgraph.NewFieldSpec(madre.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Madre.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, madre.FieldID)
		for _, f := range fields {
			if !madre.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != madre.FieldID {
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
		_spec.SetField(madre.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FichaClinicaID(); ok {
		_spec.SetField(madre.FieldFichaClinicaID, field.TypeString, value)
	}
	if _u.mutation.FichaClinicaIDCleared() {
		_spec.ClearField(madre.FieldFichaClinicaID, field.TypeString)
	}
	if value, ok := _u.mutation.RutHash(); ok {
		_spec.SetField(madre.FieldRutHash, field.TypeString, value)
	}
	if _u.mutation.RutHashCleared() {
		_spec.ClearField(madre.FieldRutHash, field.TypeString)
	}
	if value, ok := _u.mutation.RutEncrypted(); ok {
		_spec.SetField(madre.FieldRutEncrypted, field.TypeString, value)
	}
	if _u.mutation.RutEncryptedCleared() {
		_spec.ClearField(madre.FieldRutEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.NombreHash(); ok {
		_spec.SetField(madre.FieldNombreHash, field.TypeString, value)
	}
	if _u.mutation.NombreHashCleared() {
		_spec.ClearField(madre.FieldNombreHash, field.TypeString)
	}
	if value, ok := _u.mutation.NombreEncrypted(); ok {
		_spec.SetField(madre.FieldNombreEncrypted, field.TypeString, value)
	}
	if _u.mutation.NombreEncryptedCleared() {
		_spec.ClearField(madre.FieldNombreEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoHash(); ok {
		_spec.SetField(madre.FieldTelefonoHash, field.TypeString, value)
	}
	if _u.mutation.TelefonoHashCleared() {
		_spec.ClearField(madre.FieldTelefonoHash, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoEncrypted(); ok {
		_spec.SetField(madre.FieldTelefonoEncrypted, field.TypeString, value)
	}
	if _u.mutation.TelefonoEncryptedCleared() {
		_spec.ClearField(madre.FieldTelefonoEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.FechaNacimiento(); ok {
		_spec.SetField(madre.FieldFechaNacimiento, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nacionalidad(); ok {
		_spec.SetField(madre.FieldNacionalidad, field.TypeString, value)
	}
	if value, ok := _u.mutation.PertenecePuebloOriginario(); ok {
		_spec.SetField(madre.FieldPertenecePuebloOriginario, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Prevision(); ok {
		_spec.SetField(madre.FieldPrevision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AntecedentesMedicos(); ok {
		_spec.SetField(madre.FieldAntecedentesMedicos, field.TypeString, value)
	}
	if _u.mutation.AntecedentesMedicosCleared() {
		_spec.ClearField(madre.FieldAntecedentesMedicos, field.TypeString)
	}
	if _u.mutation.PartosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartosIDs(); len(nodes) > 0 && !_u.mutation.PartosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefuncionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Madre{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{madre.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
