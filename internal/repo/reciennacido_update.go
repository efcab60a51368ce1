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
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// RecienNacidoUpdate is the builder for updating RecienNacido entities.
type RecienNacidoUpdate struct {
	config
	hooks    []Hook
	mutation *RecienNacidoMutation
}

// Where appends a list predicates to the RecienNacidoUpdate builder.
func (_u *RecienNacidoUpdate) Where(ps ...predicate.RecienNacido) *RecienNacidoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecienNacidoUpdate) SetUpdatedAt(v time.Time) *RecienNacidoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPartoID sets the "parto_id" field.
func (_u *RecienNacidoUpdate) SetPartoID(v uuid.UUID) *RecienNacidoUpdate {
	_u.mutation.SetPartoID(v)
	return _u
}

// SetNillablePartoID sets the "parto_id" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillablePartoID(v *uuid.UUID) *RecienNacidoUpdate {
	if v != nil {
		_u.SetPartoID(*v)
	}
	return _u
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (_u *RecienNacidoUpdate) SetRutProvisorio(v string) *RecienNacidoUpdate {
	_u.mutation.SetRutProvisorio(v)
	return _u
}

// SetNillableRutProvisorio sets the "rut_provisorio" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableRutProvisorio(v *string) *RecienNacidoUpdate {
	if v != nil {
		_u.SetRutProvisorio(*v)
	}
	return _u
}

// ClearRutProvisorio clears the value of the "rut_provisorio" field.
func (_u *RecienNacidoUpdate) ClearRutProvisorio() *RecienNacidoUpdate {
	_u.mutation.ClearRutProvisorio()
	return _u
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (_u *RecienNacidoUpdate) SetEstadoAlNacer(v reciennacido.EstadoAlNacer) *RecienNacidoUpdate {
	_u.mutation.SetEstadoAlNacer(v)
	return _u
}

// SetNillableEstadoAlNacer sets the "estado_al_nacer" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableEstadoAlNacer(v *reciennacido.EstadoAlNacer) *RecienNacidoUpdate {
	if v != nil {
		_u.SetEstadoAlNacer(*v)
	}
	return _u
}

// SetSexo sets the "sexo" field.
func (_u *RecienNacidoUpdate) SetSexo(v reciennacido.Sexo) *RecienNacidoUpdate {
	_u.mutation.SetSexo(v)
	return _u
}

// SetNillableSexo sets the "sexo" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableSexo(v *reciennacido.Sexo) *RecienNacidoUpdate {
	if v != nil {
		_u.SetSexo(*v)
	}
	return _u
}

// ClearSexo clears the value of the "sexo" field.
func (_u *RecienNacidoUpdate) ClearSexo() *RecienNacidoUpdate {
	_u.mutation.ClearSexo()
	return _u
}

// SetPesoGramos sets the "peso_gramos" field.
func (_u *RecienNacidoUpdate) SetPesoGramos(v int) *RecienNacidoUpdate {
	_u.mutation.ResetPesoGramos()
	_u.mutation.SetPesoGramos(v)
	return _u
}

// SetNillablePesoGramos sets the "peso_gramos" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillablePesoGramos(v *int) *RecienNacidoUpdate {
	if v != nil {
		_u.SetPesoGramos(*v)
	}
	return _u
}

// AddPesoGramos adds value to the "peso_gramos" field.
func (_u *RecienNacidoUpdate) AddPesoGramos(v int) *RecienNacidoUpdate {
	_u.mutation.AddPesoGramos(v)
	return _u
}

// ClearPesoGramos clears the value of the "peso_gramos" field.
func (_u *RecienNacidoUpdate) ClearPesoGramos() *RecienNacidoUpdate {
	_u.mutation.ClearPesoGramos()
	return _u
}

// SetTallaCm sets the "talla_cm" field.
func (_u *RecienNacidoUpdate) SetTallaCm(v float64) *RecienNacidoUpdate {
	_u.mutation.ResetTallaCm()
	_u.mutation.SetTallaCm(v)
	return _u
}

// SetNillableTallaCm sets the "talla_cm" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableTallaCm(v *float64) *RecienNacidoUpdate {
	if v != nil {
		_u.SetTallaCm(*v)
	}
	return _u
}

// AddTallaCm adds value to the "talla_cm" field.
func (_u *RecienNacidoUpdate) AddTallaCm(v float64) *RecienNacidoUpdate {
	_u.mutation.AddTallaCm(v)
	return _u
}

// ClearTallaCm clears the value of the "talla_cm" field.
func (_u *RecienNacidoUpdate) ClearTallaCm() *RecienNacidoUpdate {
	_u.mutation.ClearTallaCm()
	return _u
}

// SetApgar1Min sets the "apgar_1_min" field.
func (_u *RecienNacidoUpdate) SetApgar1Min(v int) *RecienNacidoUpdate {
	_u.mutation.ResetApgar1Min()
	_u.mutation.SetApgar1Min(v)
	return _u
}

// SetNillableApgar1Min sets the "apgar_1_min" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableApgar1Min(v *int) *RecienNacidoUpdate {
	if v != nil {
		_u.SetApgar1Min(*v)
	}
	return _u
}

// AddApgar1Min adds value to the "apgar_1_min" field.
func (_u *RecienNacidoUpdate) AddApgar1Min(v int) *RecienNacidoUpdate {
	_u.mutation.AddApgar1Min(v)
	return _u
}

// ClearApgar1Min clears the value of the "apgar_1_min" field.
func (_u *RecienNacidoUpdate) ClearApgar1Min() *RecienNacidoUpdate {
	_u.mutation.ClearApgar1Min()
	return _u
}

// SetApgar5Min sets the "apgar_5_min" field.
func (_u *RecienNacidoUpdate) SetApgar5Min(v int) *RecienNacidoUpdate {
	_u.mutation.ResetApgar5Min()
	_u.mutation.SetApgar5Min(v)
	return _u
}

// SetNillableApgar5Min sets the "apgar_5_min" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableApgar5Min(v *int) *RecienNacidoUpdate {
	if v != nil {
		_u.SetApgar5Min(*v)
	}
	return _u
}

// AddApgar5Min adds value to the "apgar_5_min" field.
func (_u *RecienNacidoUpdate) AddApgar5Min(v int) *RecienNacidoUpdate {
	_u.mutation.AddApgar5Min(v)
	return _u
}

// ClearApgar5Min clears the value of the "apgar_5_min" field.
func (_u *RecienNacidoUpdate) ClearApgar5Min() *RecienNacidoUpdate {
	_u.mutation.ClearApgar5Min()
	return _u
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (_u *RecienNacidoUpdate) SetProfilaxisVitK(v bool) *RecienNacidoUpdate {
	_u.mutation.SetProfilaxisVitK(v)
	return _u
}

// SetNillableProfilaxisVitK sets the "profilaxis_vit_k" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableProfilaxisVitK(v *bool) *RecienNacidoUpdate {
	if v != nil {
		_u.SetProfilaxisVitK(*v)
	}
	return _u
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (_u *RecienNacidoUpdate) SetProfilaxisOftalmica(v bool) *RecienNacidoUpdate {
	_u.mutation.SetProfilaxisOftalmica(v)
	return _u
}

// SetNillableProfilaxisOftalmica sets the "profilaxis_oftalmica" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableProfilaxisOftalmica(v *bool) *RecienNacidoUpdate {
	if v != nil {
		_u.SetProfilaxisOftalmica(*v)
	}
	return _u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_u *RecienNacidoUpdate) SetUsuarioRegistroID(v uuid.UUID) *RecienNacidoUpdate {
	_u.mutation.SetUsuarioRegistroID(v)
	return _u
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableUsuarioRegistroID(v *uuid.UUID) *RecienNacidoUpdate {
	if v != nil {
		_u.SetUsuarioRegistroID(*v)
	}
	return _u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (_u *RecienNacidoUpdate) ClearUsuarioRegistroID() *RecienNacidoUpdate {
	_u.mutation.ClearUsuarioRegistroID()
	return _u
}

// SetParto sets the "parto" edge to the Parto entity.
func (_u *RecienNacidoUpdate) SetParto(v *Parto) *RecienNacidoUpdate {
	return _u.SetPartoID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_u *RecienNacidoUpdate) SetUsuarioRegistro(v *Usuario) *RecienNacidoUpdate {
	return _u.SetUsuarioRegistroID(v.ID)
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by ID.
func (_u *RecienNacidoUpdate) SetDefuncionID(id uuid.UUID) *RecienNacidoUpdate {
	_u.mutation.SetDefuncionID(id)
	return _u
}

// SetNillableDefuncionID sets the "defuncion" edge to the Defuncion entity by ID if the given value is not nil.
func (_u *RecienNacidoUpdate) SetNillableDefuncionID(id *uuid.UUID) *RecienNacidoUpdate {
	if id != nil {
		_u = _u.SetDefuncionID(*id)
	}
	return _u
}

// SetDefuncion sets the "defuncion" edge to the Defuncion entity.
func (_u *RecienNacidoUpdate) SetDefuncion(v *Defuncion) *RecienNacidoUpdate {
	return _u.SetDefuncionID(v.ID)
}

// Mutation returns the RecienNacidoMutation object of the builder.
func (_u *RecienNacidoUpdate) Mutation() *RecienNacidoMutation {
	return _u.mutation
}

// ClearParto clears the "parto" edge to the Parto entity.
func (_u *RecienNacidoUpdate) ClearParto() *RecienNacidoUpdate {
	_u.mutation.ClearParto()
	return _u
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (_u *RecienNacidoUpdate) ClearUsuarioRegistro() *RecienNacidoUpdate {
	_u.mutation.ClearUsuarioRegistro()
	return _u
}

// ClearDefuncion clears the "defuncion" edge to the Defuncion entity.
func (_u *RecienNacidoUpdate) ClearDefuncion() *RecienNacidoUpdate {
	_u.mutation.ClearDefuncion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecienNacidoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecienNacidoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecienNacidoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecienNacidoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecienNacidoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reciennacido.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecienNacidoUpdate) check() error {
	if v, ok := _u.mutation.RutProvisorio(); ok {
		if err := reciennacido.RutProvisorioValidator(v); err != nil {
			return &ValidationError{Name: "rut_provisorio", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.rut_provisorio": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstadoAlNacer(); ok {
		if err := reciennacido.EstadoAlNacerValidator(v); err != nil {
			return &ValidationError{Name: "estado_al_nacer", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.estado_al_nacer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sexo(); ok {
		if err := reciennacido.SexoValidator(v); err != nil {
			return &ValidationError{Name: "sexo", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.sexo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PesoGramos(); ok {
		if err := reciennacido.PesoGramosValidator(v); err != nil {
			return &ValidationError{Name: "peso_gramos", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.peso_gramos": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TallaCm(); ok {
		if err := reciennacido.TallaCmValidator(v); err != nil {
			return &ValidationError{Name: "talla_cm", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.talla_cm": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Apgar1Min(); ok {
		if err := reciennacido.Apgar1MinValidator(v); err != nil {
			return &ValidationError{Name: "apgar_1_min", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.apgar_1_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Apgar5Min(); ok {
		if err := reciennacido.Apgar5MinValidator(v); err != nil {
			return &ValidationError{Name: "apgar_5_min", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.apgar_5_min": %w`, err)}
		}
	}
	if _u.mutation.PartoCleared() && len(_u.mutation.PartoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RecienNacido.parto"`)
	}
	return nil
}

func (_u *RecienNacidoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reciennacido.Table, reciennacido.Columns, sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reciennacido.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RutProvisorio(); ok {
		_spec.SetField(reciennacido.FieldRutProvisorio, field.TypeString, value)
	}
	if _u.mutation.RutProvisorioCleared() {
		_spec.ClearField(reciennacido.FieldRutProvisorio, field.TypeString)
	}
	if value, ok := _u.mutation.EstadoAlNacer(); ok {
		_spec.SetField(reciennacido.FieldEstadoAlNacer, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sexo(); ok {
		_spec.SetField(reciennacido.FieldSexo, field.TypeEnum, value)
	}
	if _u.mutation.SexoCleared() {
		_spec.ClearField(reciennacido.FieldSexo, field.TypeEnum)
	}
	if value, ok := _u.mutation.PesoGramos(); ok {
		_spec.SetField(reciennacido.FieldPesoGramos, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPesoGramos(); ok {
		_spec.AddField(reciennacido.FieldPesoGramos, field.TypeInt, value)
	}
	if _u.mutation.PesoGramosCleared() {
		_spec.ClearField(reciennacido.FieldPesoGramos, field.TypeInt)
	}
	if value, ok := _u.mutation.TallaCm(); ok {
		_spec.SetField(reciennacido.FieldTallaCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTallaCm(); ok {
		_spec.AddField(reciennacido.FieldTallaCm, field.TypeFloat64, value)
	}
	if _u.mutation.TallaCmCleared() {
		_spec.ClearField(reciennacido.FieldTallaCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Apgar1Min(); ok {
		_spec.SetField(reciennacido.FieldApgar1Min, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApgar1Min(); ok {
		_spec.AddField(reciennacido.FieldApgar1Min, field.TypeInt, value)
	}
	if _u.mutation.Apgar1MinCleared() {
		_spec.ClearField(reciennacido.FieldApgar1Min, field.TypeInt)
	}
	if value, ok := _u.mutation.Apgar5Min(); ok {
		_spec.SetField(reciennacido.FieldApgar5Min, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApgar5Min(); ok {
		_spec.AddField(reciennacido.FieldApgar5Min, field.TypeInt, value)
	}
	if _u.mutation.Apgar5MinCleared() {
		_spec.ClearField(reciennacido.FieldApgar5Min, field.TypeInt)
	}
	if value, ok := _u.mutation.ProfilaxisVitK(); ok {
		_spec.SetField(reciennacido.FieldProfilaxisVitK, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfilaxisOftalmica(); ok {
		_spec.SetField(reciennacido.FieldProfilaxisOftalmica, field.TypeBool, value)
	}
	if _u.mutation.PartoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsuarioRegistroCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefuncionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reciennacido.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecienNacidoUpdateOne is the builder for updating a single RecienNacido entity.
type RecienNacidoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecienNacidoMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecienNacidoUpdateOne) SetUpdatedAt(v time.Time) *RecienNacidoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPartoID sets the "parto_id" field.
func (_u *RecienNacidoUpdateOne) SetPartoID(v uuid.UUID) *RecienNacidoUpdateOne {
	_u.mutation.SetPartoID(v)
	return _u
}

// SetNillablePartoID sets the "parto_id" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillablePartoID(v *uuid.UUID) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetPartoID(*v)
	}
	return _u
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (_u *RecienNacidoUpdateOne) SetRutProvisorio(v string) *RecienNacidoUpdateOne {
	_u.mutation.SetRutProvisorio(v)
	return _u
}

// SetNillableRutProvisorio sets the "rut_provisorio" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableRutProvisorio(v *string) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetRutProvisorio(*v)
	}
	return _u
}

// ClearRutProvisorio clears the value of the "rut_provisorio" field.
func (_u *RecienNacidoUpdateOne) ClearRutProvisorio() *RecienNacidoUpdateOne {
	_u.mutation.ClearRutProvisorio()
	return _u
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (_u *RecienNacidoUpdateOne) SetEstadoAlNacer(v reciennacido.EstadoAlNacer) *RecienNacidoUpdateOne {
	_u.mutation.SetEstadoAlNacer(v)
	return _u
}

// SetNillableEstadoAlNacer sets the "estado_al_nacer" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableEstadoAlNacer(v *reciennacido.EstadoAlNacer) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetEstadoAlNacer(*v)
	}
	return _u
}

// SetSexo sets the "sexo" field.
func (_u *RecienNacidoUpdateOne) SetSexo(v reciennacido.Sexo) *RecienNacidoUpdateOne {
	_u.mutation.SetSexo(v)
	return _u
}

// SetNillableSexo sets the "sexo" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableSexo(v *reciennacido.Sexo) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetSexo(*v)
	}
	return _u
}

// ClearSexo clears the value of the "sexo" field.
func (_u *RecienNacidoUpdateOne) ClearSexo() *RecienNacidoUpdateOne {
	_u.mutation.ClearSexo()
	return _u
}

// SetPesoGramos sets the "peso_gramos" field.
func (_u *RecienNacidoUpdateOne) SetPesoGramos(v int) *RecienNacidoUpdateOne {
	_u.mutation.ResetPesoGramos()
	_u.mutation.SetPesoGramos(v)
	return _u
}

// SetNillablePesoGramos sets the "peso_gramos" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillablePesoGramos(v *int) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetPesoGramos(*v)
	}
	return _u
}

// AddPesoGramos adds value to the "peso_gramos" field.
func (_u *RecienNacidoUpdateOne) AddPesoGramos(v int) *RecienNacidoUpdateOne {
	_u.mutation.AddPesoGramos(v)
	return _u
}

// ClearPesoGramos clears the value of the "peso_gramos" field.
func (_u *RecienNacidoUpdateOne) ClearPesoGramos() *RecienNacidoUpdateOne {
	_u.mutation.ClearPesoGramos()
	return _u
}

// SetTallaCm sets the "talla_cm" field.
func (_u *RecienNacidoUpdateOne) SetTallaCm(v float64) *RecienNacidoUpdateOne {
	_u.mutation.ResetTallaCm()
	_u.mutation.SetTallaCm(v)
	return _u
}

// SetNillableTallaCm sets the "talla_cm" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableTallaCm(v *float64) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetTallaCm(*v)
	}
	return _u
}

// AddTallaCm adds value to the "talla_cm" field.
func (_u *RecienNacidoUpdateOne) AddTallaCm(v float64) *RecienNacidoUpdateOne {
	_u.mutation.AddTallaCm(v)
	return _u
}

// ClearTallaCm clears the value of the "talla_cm" field.
func (_u *RecienNacidoUpdateOne) ClearTallaCm() *RecienNacidoUpdateOne {
	_u.mutation.ClearTallaCm()
	return _u
}

// SetApgar1Min sets the "apgar_1_min" field.
func (_u *RecienNacidoUpdateOne) SetApgar1Min(v int) *RecienNacidoUpdateOne {
	_u.mutation.ResetApgar1Min()
	_u.mutation.SetApgar1Min(v)
	return _u
}

// SetNillableApgar1Min sets the "apgar_1_min" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableApgar1Min(v *int) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetApgar1Min(*v)
	}
	return _u
}

// AddApgar1Min adds value to the "apgar_1_min" field.
func (_u *RecienNacidoUpdateOne) AddApgar1Min(v int) *RecienNacidoUpdateOne {
	_u.mutation.AddApgar1Min(v)
	return _u
}

// ClearApgar1Min clears the value of the "apgar_1_min" field.
func (_u *RecienNacidoUpdateOne) ClearApgar1Min() *RecienNacidoUpdateOne {
	_u.mutation.ClearApgar1Min()
	return _u
}

// SetApgar5Min sets the "apgar_5_min" field.
func (_u *RecienNacidoUpdateOne) SetApgar5Min(v int) *RecienNacidoUpdateOne {
	_u.mutation.ResetApgar5Min()
	_u.mutation.SetApgar5Min(v)
	return _u
}

// SetNillableApgar5Min sets the "apgar_5_min" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableApgar5Min(v *int) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetApgar5Min(*v)
	}
	return _u
}

// AddApgar5Min adds value to the "apgar_5_min" field.
func (_u *RecienNacidoUpdateOne) AddApgar5Min(v int) *RecienNacidoUpdateOne {
	_u.mutation.AddApgar5Min(v)
	return _u
}

// ClearApgar5Min clears the value of the "apgar_5_min" field.
func (_u *RecienNacidoUpdateOne) ClearApgar5Min() *RecienNacidoUpdateOne {
	_u.mutation.ClearApgar5Min()
	return _u
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (_u *RecienNacidoUpdateOne) SetProfilaxisVitK(v bool) *RecienNacidoUpdateOne {
	_u.mutation.SetProfilaxisVitK(v)
	return _u
}

// SetNillableProfilaxisVitK sets the "profilaxis_vit_k" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableProfilaxisVitK(v *bool) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetProfilaxisVitK(*v)
	}
	return _u
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (_u *RecienNacidoUpdateOne) SetProfilaxisOftalmica(v bool) *RecienNacidoUpdateOne {
	_u.mutation.SetProfilaxisOftalmica(v)
	return _u
}

// SetNillableProfilaxisOftalmica sets the "profilaxis_oftalmica" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableProfilaxisOftalmica(v *bool) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetProfilaxisOftalmica(*v)
	}
	return _u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_u *RecienNacidoUpdateOne) SetUsuarioRegistroID(v uuid.UUID) *RecienNacidoUpdateOne {
	_u.mutation.SetUsuarioRegistroID(v)
	return _u
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableUsuarioRegistroID(v *uuid.UUID) *RecienNacidoUpdateOne {
	if v != nil {
		_u.SetUsuarioRegistroID(*v)
	}
	return _u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (_u *RecienNacidoUpdateOne) ClearUsuarioRegistroID() *RecienNacidoUpdateOne {
	_u.mutation.ClearUsuarioRegistroID()
	return _u
}

// SetParto sets the "parto" edge to the Parto entity.
func (_u *RecienNacidoUpdateOne) SetParto(v *Parto) *RecienNacidoUpdateOne {
	return _u.SetPartoID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_u *RecienNacidoUpdateOne) SetUsuarioRegistro(v *Usuario) *RecienNacidoUpdateOne {
	return _u.SetUsuarioRegistroID(v.ID)
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by ID.
func (_u *RecienNacidoUpdateOne) SetDefuncionID(id uuid.UUID) *RecienNacidoUpdateOne {
	_u.mutation.SetDefuncionID(id)
	return _u
}

// SetNillableDefuncionID sets the "defuncion" edge to the Defuncion entity by ID if the given value is not nil.
func (_u *RecienNacidoUpdateOne) SetNillableDefuncionID(id *uuid.UUID) *RecienNacidoUpdateOne {
	if id != nil {
		_u = _u.SetDefuncionID(*id)
	}
	return _u
}

// SetDefuncion sets the "defuncion" edge to the Defuncion entity.
func (_u *RecienNacidoUpdateOne) SetDefuncion(v *Defuncion) *RecienNacidoUpdateOne {
	return _u.SetDefuncionID(v.ID)
}

// Mutation returns the RecienNacidoMutation object of the builder.
func (_u *RecienNacidoUpdateOne) Mutation() *RecienNacidoMutation {
	return _u.mutation
}

// ClearParto clears the "parto" edge to the Parto entity.
func (_u *RecienNacidoUpdateOne) ClearParto() *RecienNacidoUpdateOne {
	_u.mutation.ClearParto()
	return _u
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (_u *RecienNacidoUpdateOne) ClearUsuarioRegistro() *RecienNacidoUpdateOne {
	_u.mutation.ClearUsuarioRegistro()
	return _u
}

// ClearDefuncion clears the "defuncion" edge to the Defuncion entity.
func (_u *RecienNacidoUpdateOne) ClearDefuncion() *RecienNacidoUpdateOne {
	_u.mutation.ClearDefuncion()
	return _u
}

// Where appends a list predicates to the RecienNacidoUpdate builder.
func (_u *RecienNacidoUpdateOne) Where(ps ...predicate.RecienNacido) *RecienNacidoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecienNacidoUpdateOne) Select(field string, fields ...string) *RecienNacidoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecienNacido entity.
func (_u *RecienNacidoUpdateOne) Save(ctx context.Context) (*RecienNacido, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecienNacidoUpdateOne) SaveX(ctx context.Context) *RecienNacido {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecienNacidoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecienNacidoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecienNacidoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reciennacido.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecienNacidoUpdateOne) check() error {
	if v, ok := _u.mutation.RutProvisorio(); ok {
		if err := reciennacido.RutProvisorioValidator(v); err != nil {
			return &ValidationError{Name: "rut_provisorio", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.rut_provisorio": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstadoAlNacer(); ok {
		if err := reciennacido.EstadoAlNacerValidator(v); err != nil {
			return &ValidationError{Name: "estado_al_nacer", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.estado_al_nacer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sexo(); ok {
		if err := reciennacido.SexoValidator(v); err != nil {
			return &ValidationError{Name: "sexo", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.sexo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PesoGramos(); ok {
		if err := reciennacido.PesoGramosValidator(v); err != nil {
			return &ValidationError{Name: "peso_gramos", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.peso_gramos": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TallaCm(); ok {
		if err := reciennacido.TallaCmValidator(v); err != nil {
			return &ValidationError{Name: "talla_cm", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.talla_cm": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Apgar1Min(); ok {
		if err := reciennacido.Apgar1MinValidator(v); err != nil {
			return &ValidationError{Name: "apgar_1_min", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.apgar_1_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Apgar5Min(); ok {
		if err := reciennacido.Apgar5MinValidator(v); err != nil {
			return &ValidationError{Name: "apgar_5_min", err: fmt.Errorf(`repo: validator failed for field "RecienNacido.apgar_5_min": %w`, err)}
		}
	}
	if _u.mutation.PartoCleared() && len(_u.mutation.PartoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RecienNacido.parto"`)
	}
	return nil
}

func (_u *RecienNacidoUpdateOne) sqlSave(ctx context.Context) (_node *RecienNacido, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reciennacido.Table, reciennacido.Columns, sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RecienNacido.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reciennacido.FieldID)
		for _, f := range fields {
			if !reciennacido.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reciennacido.FieldID {
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
		_spec.SetField(reciennacido.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RutProvisorio(); ok {
		_spec.SetField(reciennacido.FieldRutProvisorio, field.TypeString, value)
	}
	if _u.mutation.RutProvisorioCleared() {
		_spec.ClearField(reciennacido.FieldRutProvisorio, field.TypeString)
	}
	if value, ok := _u.mutation.EstadoAlNacer(); ok {
		_spec.SetField(reciennacido.FieldEstadoAlNacer, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sexo(); ok {
		_spec.SetField(reciennacido.FieldSexo, field.TypeEnum, value)
	}
	if _u.mutation.SexoCleared() {
		_spec.ClearField(reciennacido.FieldSexo, field.TypeEnum)
	}
	if value, ok := _u.mutation.PesoGramos(); ok {
		_spec.SetField(reciennacido.FieldPesoGramos, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPesoGramos(); ok {
		_spec.AddField(reciennacido.FieldPesoGramos, field.TypeInt, value)
	}
	if _u.mutation.PesoGramosCleared() {
		_spec.ClearField(reciennacido.FieldPesoGramos, field.TypeInt)
	}
	if value, ok := _u.mutation.TallaCm(); ok {
		_spec.SetField(reciennacido.FieldTallaCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTallaCm(); ok {
		_spec.AddField(reciennacido.FieldTallaCm, field.TypeFloat64, value)
	}
	if _u.mutation.TallaCmCleared() {
		_spec.ClearField(reciennacido.FieldTallaCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Apgar1Min(); ok {
		_spec.SetField(reciennacido.FieldApgar1Min, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApgar1Min(); ok {
		_spec.AddField(reciennacido.FieldApgar1Min, field.TypeInt, value)
	}
	if _u.mutation.Apgar1MinCleared() {
		_spec.ClearField(reciennacido.FieldApgar1Min, field.TypeInt)
	}
	if value, ok := _u.mutation.Apgar5Min(); ok {
		_spec.SetField(reciennacido.FieldApgar5Min, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApgar5Min(); ok {
		_spec.AddField(reciennacido.FieldApgar5Min, field.TypeInt, value)
	}
	if _u.mutation.Apgar5MinCleared() {
		_spec.ClearField(reciennacido.FieldApgar5Min, field.TypeInt)
	}
	if value, ok := _u.mutation.ProfilaxisVitK(); ok {
		_spec.SetField(reciennacido.FieldProfilaxisVitK, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfilaxisOftalmica(); ok {
		_spec.SetField(reciennacido.FieldProfilaxisOftalmica, field.TypeBool, value)
	}
	if _u.mutation.PartoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsuarioRegistroCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefuncionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecienNacido{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reciennacido.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
