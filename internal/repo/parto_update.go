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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// PartoUpdate is the builder for updating Parto entities.
type PartoUpdate struct {
	config
	hooks    []Hook
	mutation *PartoMutation
}

// Where appends a list predicates to the PartoUpdate builder.
func (_u *PartoUpdate) Where(ps ...predicate.Parto) *PartoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartoUpdate) SetUpdatedAt(v time.Time) *PartoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMadreID sets the "madre_id" field.
func (_u *PartoUpdate) SetMadreID(v uuid.UUID) *PartoUpdate {
	_u.mutation.SetMadreID(v)
	return _u
}

// SetNillableMadreID sets the "madre_id" field if the given value is not nil.
func (_u *PartoUpdate) SetNillableMadreID(v *uuid.UUID) *PartoUpdate {
	if v != nil {
		_u.SetMadreID(*v)
	}
	return _u
}

// SetFechaParto sets the "fecha_parto" field.
func (_u *PartoUpdate) SetFechaParto(v time.Time) *PartoUpdate {
	_u.mutation.SetFechaParto(v)
	return _u
}

// SetNillableFechaParto sets the "fecha_parto" field if the given value is not nil.
func (_u *PartoUpdate) SetNillableFechaParto(v *time.Time) *PartoUpdate {
	if v != nil {
		_u.SetFechaParto(*v)
	}
	return _u
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (_u *PartoUpdate) SetEdadGestacional(v int) *PartoUpdate {
	_u.mutation.ResetEdadGestacional()
	_u.mutation.SetEdadGestacional(v)
	return _u
}

// SetNillableEdadGestacional sets the "edad_gestacional" field if the given value is not nil.
func (_u *PartoUpdate) SetNillableEdadGestacional(v *int) *PartoUpdate {
	if v != nil {
		_u.SetEdadGestacional(*v)
	}
	return _u
}

// AddEdadGestacional adds value to the "edad_gestacional" field.
func (_u *PartoUpdate) AddEdadGestacional(v int) *PartoUpdate {
	_u.mutation.AddEdadGestacional(v)
	return _u
}

// ClearEdadGestacional clears the value of the "edad_gestacional" field.
func (_u *PartoUpdate) ClearEdadGestacional() *PartoUpdate {
	_u.mutation.ClearEdadGestacional()
	return _u
}

// SetTipoParto sets the "tipo_parto" field.
func (_u *PartoUpdate) SetTipoParto(v parto.TipoParto) *PartoUpdate {
	_u.mutation.SetTipoParto(v)
	return _u
}

// SetNillableTipoParto sets the "tipo_parto" field if the given value is not nil.
func (_u *PartoUpdate) SetNillableTipoParto(v *parto.TipoParto) *PartoUpdate {
	if v != nil {
		_u.SetTipoParto(*v)
	}
	return _u
}

// SetAnestesia sets the "anestesia" field.
func (_u *PartoUpdate) SetAnestesia(v parto.Anestesia) *PartoUpdate {
	_u.mutation.SetAnestesia(v)
	return _u
}

// SetNillableAnestesia sets the "anestesia" field if the given value is not nil.
func (_u *PartoUpdate) SetNillableAnestesia(v *parto.Anestesia) *PartoUpdate {
	if v != nil {
		_u.SetAnestesia(*v)
	}
	return _u
}

// SetPartogramaData sets the "partograma_data" field.
func (_u *PartoUpdate) SetPartogramaData(v map[string]interface{}) *PartoUpdate {
	_u.mutation.SetPartogramaData(v)
	return _u
}

// ClearPartogramaData clears the value of the "partograma_data" field.
func (_u *PartoUpdate) ClearPartogramaData() *PartoUpdate {
	_u.mutation.ClearPartogramaData()
	return _u
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (_u *PartoUpdate) SetEpicrisisData(v map[string]interface{}) *PartoUpdate {
	_u.mutation.SetEpicrisisData(v)
	return _u
}

// ClearEpicrisisData clears the value of the "epicrisis_data" field.
func (_u *PartoUpdate) ClearEpicrisisData() *PartoUpdate {
	_u.mutation.ClearEpicrisisData()
	return _u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_u *PartoUpdate) SetUsuarioRegistroID(v uuid.UUID) *PartoUpdate {
	_u.mutation.SetUsuarioRegistroID(v)
	return _u
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_u *PartoUpdate) SetNillableUsuarioRegistroID(v *uuid.UUID) *PartoUpdate {
	if v != nil {
		_u.SetUsuarioRegistroID(*v)
	}
	return _u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (_u *PartoUpdate) ClearUsuarioRegistroID() *PartoUpdate {
	_u.mutation.ClearUsuarioRegistroID()
	return _u
}

// SetMadre sets the "madre" edge to the Madre entity.
func (_u *PartoUpdate) SetMadre(v *Madre) *PartoUpdate {
	return _u.SetMadreID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_u *PartoUpdate) SetUsuarioRegistro(v *Usuario) *PartoUpdate {
	return _u.SetUsuarioRegistroID(v.ID)
}

// AddRecienNacidoIDs adds the "recien_nacidos" edge to the RecienNacido entity by IDs.
func (_u *PartoUpdate) AddRecienNacidoIDs(ids ...uuid.UUID) *PartoUpdate {
	_u.mutation.AddRecienNacidoIDs(ids...)
	return _u
}

// AddRecienNacidos adds the "recien_nacidos" edges to the RecienNacido entity.
func (_u *PartoUpdate) AddRecienNacidos(v ...*RecienNacido) *PartoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecienNacidoIDs(ids...)
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (_u *PartoUpdate) AddPartoDiagnosticoIDs(ids ...uuid.UUID) *PartoUpdate {
	_u.mutation.AddPartoDiagnosticoIDs(ids...)
	return _u
}

// AddPartoDiagnosticos adds the "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *PartoUpdate) AddPartoDiagnosticos(v ...*PartoDiagnostico) *PartoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartoDiagnosticoIDs(ids...)
}

// AddDocumentoIDs adds the "documentos" edge to the DocumentoReferencia entity by IDs.
func (_u *PartoUpdate) AddDocumentoIDs(ids ...uuid.UUID) *PartoUpdate {
	_u.mutation.AddDocumentoIDs(ids...)
	return _u
}

// AddDocumentos adds the "documentos" edges to the DocumentoReferencia entity.
func (_u *PartoUpdate) AddDocumentos(v ...*DocumentoReferencia) *PartoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentoIDs(ids...)
}

// Mutation returns the PartoMutation object of the builder.
func (_u *PartoUpdate) Mutation() *PartoMutation {
	return _u.mutation
}

// ClearMadre clears the "madre" edge to the Madre entity.
func (_u *PartoUpdate) ClearMadre() *PartoUpdate {
	_u.mutation.ClearMadre()
	return _u
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (_u *PartoUpdate) ClearUsuarioRegistro() *PartoUpdate {
	_u.mutation.ClearUsuarioRegistro()
	return _u
}

// ClearRecienNacidos clears all "recien_nacidos" edges to the RecienNacido entity.
func (_u *PartoUpdate) ClearRecienNacidos() *PartoUpdate {
	_u.mutation.ClearRecienNacidos()
	return _u
}

// RemoveRecienNacidoIDs removes the "recien_nacidos" edge to RecienNacido entities by IDs.
func (_u *PartoUpdate) RemoveRecienNacidoIDs(ids ...uuid.UUID) *PartoUpdate {
	_u.mutation.RemoveRecienNacidoIDs(ids...)
	return _u
}

// RemoveRecienNacidos removes "recien_nacidos" edges to RecienNacido entities.
func (_u *PartoUpdate) RemoveRecienNacidos(v ...*RecienNacido) *PartoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecienNacidoIDs(ids...)
}

// ClearPartoDiagnosticos clears all "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *PartoUpdate) ClearPartoDiagnosticos() *PartoUpdate {
	_u.mutation.ClearPartoDiagnosticos()
	return _u
}

// RemovePartoDiagnosticoIDs removes the "parto_diagnosticos" edge to PartoDiagnostico entities by IDs.
func (_u *PartoUpdate) RemovePartoDiagnosticoIDs(ids ...uuid.UUID) *PartoUpdate {
	_u.mutation.RemovePartoDiagnosticoIDs(ids...)
	return _u
}

// RemovePartoDiagnosticos removes "parto_diagnosticos" edges to PartoDiagnostico entities.
func (_u *PartoUpdate) RemovePartoDiagnosticos(v ...*PartoDiagnostico) *PartoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartoDiagnosticoIDs(ids...)
}

// ClearDocumentos clears all "documentos" edges to the DocumentoReferencia entity.
func (_u *PartoUpdate) ClearDocumentos() *PartoUpdate {
	_u.mutation.ClearDocumentos()
	return _u
}

// RemoveDocumentoIDs removes the "documentos" edge to DocumentoReferencia entities by IDs.
func (_u *PartoUpdate) RemoveDocumentoIDs(ids ...uuid.UUID) *PartoUpdate {
	_u.mutation.RemoveDocumentoIDs(ids...)
	return _u
}

// RemoveDocumentos removes "documentos" edges to DocumentoReferencia entities.
func (_u *PartoUpdate) RemoveDocumentos(v ...*DocumentoReferencia) *PartoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentoIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := parto.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartoUpdate) check() error {
	if v, ok := _u.mutation.EdadGestacional(); ok {
		if err := parto.EdadGestacionalValidator(v); err != nil {
			return &ValidationError{Name: "edad_gestacional", err: fmt.Errorf(`repo: validator failed for field "Parto.edad_gestacional": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoParto(); ok {
		if err := parto.TipoPartoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_parto", err: fmt.Errorf(`repo: validator failed for field "Parto.tipo_parto": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Anestesia(); ok {
		if err := parto.AnestesiaValidator(v); err != nil {
			return &ValidationError{Name: "anestesia", err: fmt.Errorf(`repo: validator failed for field "Parto.anestesia": %w`, err)}
		}
	}
	if _u.mutation.MadreCleared() && len(_u.mutation.MadreIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Parto.madre"`)
	}
	return nil
}

func (_u *PartoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parto.Table, parto.Columns, sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(parto.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaParto(); ok {
		_spec.SetField(parto.FieldFechaParto, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EdadGestacional(); ok {
		_spec.SetField(parto.FieldEdadGestacional, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdadGestacional(); ok {
		_spec.AddField(parto.FieldEdadGestacional, field.TypeInt, value)
	}
	if _u.mutation.EdadGestacionalCleared() {
		_spec.ClearField(parto.FieldEdadGestacional, field.TypeInt)
	}
	if value, ok := _u.mutation.TipoParto(); ok {
		_spec.SetField(parto.FieldTipoParto, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Anestesia(); ok {
		_spec.SetField(parto.FieldAnestesia, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PartogramaData(); ok {
		_spec.SetField(parto.FieldPartogramaData, field.TypeJSON, value)
	}
	if _u.mutation.PartogramaDataCleared() {
		_spec.ClearField(parto.FieldPartogramaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.EpicrisisData(); ok {
		_spec.SetField(parto.FieldEpicrisisData, field.TypeJSON, value)
	}
	if _u.mutation.EpicrisisDataCleared() {
		_spec.ClearField(parto.FieldEpicrisisData, field.TypeJSON)
	}
	if _u.mutation.MadreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MadreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsuarioRegistroCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecienNacidosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecienNacidosIDs(); len(nodes) > 0 && !_u.mutation.RecienNacidosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecienNacidosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PartoDiagnosticosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartoDiagnosticosIDs(); len(nodes) > 0 && !_u.mutation.PartoDiagnosticosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoDiagnosticosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentosIDs(); len(nodes) > 0 && !_u.mutation.DocumentosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartoUpdateOne is the builder for updating a single Parto entity.
type PartoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartoMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartoUpdateOne) SetUpdatedAt(v time.Time) *PartoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMadreID sets the "madre_id" field.
func (_u *PartoUpdateOne) SetMadreID(v uuid.UUID) *PartoUpdateOne {
	_u.mutation.SetMadreID(v)
	return _u
}

// SetNillableMadreID sets the "madre_id" field if the given value is not nil.
func (_u *PartoUpdateOne) SetNillableMadreID(v *uuid.UUID) *PartoUpdateOne {
	if v != nil {
		_u.SetMadreID(*v)
	}
	return _u
}

// SetFechaParto sets the "fecha_parto" field.
func (_u *PartoUpdateOne) SetFechaParto(v time.Time) *PartoUpdateOne {
	_u.mutation.SetFechaParto(v)
	return _u
}

// SetNillableFechaParto sets the "fecha_parto" field if the given value is not nil.
func (_u *PartoUpdateOne) SetNillableFechaParto(v *time.Time) *PartoUpdateOne {
	if v != nil {
		_u.SetFechaParto(*v)
	}
	return _u
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (_u *PartoUpdateOne) SetEdadGestacional(v int) *PartoUpdateOne {
	_u.mutation.ResetEdadGestacional()
	_u.mutation.SetEdadGestacional(v)
	return _u
}

// SetNillableEdadGestacional sets the "edad_gestacional" field if the given value is not nil.
func (_u *PartoUpdateOne) SetNillableEdadGestacional(v *int) *PartoUpdateOne {
	if v != nil {
		_u.SetEdadGestacional(*v)
	}
	return _u
}

// AddEdadGestacional adds value to the "edad_gestacional" field.
func (_u *PartoUpdateOne) AddEdadGestacional(v int) *PartoUpdateOne {
	_u.mutation.AddEdadGestacional(v)
	return _u
}

// ClearEdadGestacional clears the value of the "edad_gestacional" field.
func (_u *PartoUpdateOne) ClearEdadGestacional() *PartoUpdateOne {
	_u.mutation.ClearEdadGestacional()
	return _u
}

// SetTipoParto sets the "tipo_parto" field.
func (_u *PartoUpdateOne) SetTipoParto(v parto.TipoParto) *PartoUpdateOne {
	_u.mutation.SetTipoParto(v)
	return _u
}

// SetNillableTipoParto sets the "tipo_parto" field if the given value is not nil.
func (_u *PartoUpdateOne) SetNillableTipoParto(v *parto.TipoParto) *PartoUpdateOne {
	if v != nil {
		_u.SetTipoParto(*v)
	}
	return _u
}

// SetAnestesia sets the "anestesia" field.
func (_u *PartoUpdateOne) SetAnestesia(v parto.Anestesia) *PartoUpdateOne {
	_u.mutation.SetAnestesia(v)
	return _u
}

// SetNillableAnestesia sets the "anestesia" field if the given value is not nil.
func (_u *PartoUpdateOne) SetNillableAnestesia(v *parto.Anestesia) *PartoUpdateOne {
	if v != nil {
		_u.SetAnestesia(*v)
	}
	return _u
}

// SetPartogramaData sets the "partograma_data" field.
func (_u *PartoUpdateOne) SetPartogramaData(v map[string]interface{}) *PartoUpdateOne {
	_u.mutation.SetPartogramaData(v)
	return _u
}

// ClearPartogramaData clears the value of the "partograma_data" field.
func (_u *PartoUpdateOne) ClearPartogramaData() *PartoUpdateOne {
	_u.mutation.ClearPartogramaData()
	return _u
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (_u *PartoUpdateOne) SetEpicrisisData(v map[string]interface{}) *PartoUpdateOne {
	_u.mutation.SetEpicrisisData(v)
	return _u
}

// ClearEpicrisisData clears the value of the "epicrisis_data" field.
func (_u *PartoUpdateOne) ClearEpicrisisData() *PartoUpdateOne {
	_u.mutation.ClearEpicrisisData()
	return _u
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (_u *PartoUpdateOne) SetUsuarioRegistroID(v uuid.UUID) *PartoUpdateOne {
	_u.mutation.SetUsuarioRegistroID(v)
	return _u
}

// SetNillableUsuarioRegistroID sets the "usuario_registro_id" field if the given value is not nil.
func (_u *PartoUpdateOne) SetNillableUsuarioRegistroID(v *uuid.UUID) *PartoUpdateOne {
	if v != nil {
		_u.SetUsuarioRegistroID(*v)
	}
	return _u
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (_u *PartoUpdateOne) ClearUsuarioRegistroID() *PartoUpdateOne {
	_u.mutation.ClearUsuarioRegistroID()
	return _u
}

// SetMadre sets the "madre" edge to the Madre entity.
func (_u *PartoUpdateOne) SetMadre(v *Madre) *PartoUpdateOne {
	return _u.SetMadreID(v.ID)
}

// SetUsuarioRegistro sets the "usuario_registro" edge to the Usuario entity.
func (_u *PartoUpdateOne) SetUsuarioRegistro(v *Usuario) *PartoUpdateOne {
	return _u.SetUsuarioRegistroID(v.ID)
}

// AddRecienNacidoIDs adds the "recien_nacidos" edge to the RecienNacido entity by IDs.
func (_u *PartoUpdateOne) AddRecienNacidoIDs(ids ...uuid.UUID) *PartoUpdateOne {
	_u.mutation.AddRecienNacidoIDs(ids...)
	return _u
}

// AddRecienNacidos adds the "recien_nacidos" edges to the RecienNacido entity.
func (_u *PartoUpdateOne) AddRecienNacidos(v ...*RecienNacido) *PartoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecienNacidoIDs(ids...)
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (_u *PartoUpdateOne) AddPartoDiagnosticoIDs(ids ...uuid.UUID) *PartoUpdateOne {
	_u.mutation.AddPartoDiagnosticoIDs(ids...)
	return _u
}

// AddPartoDiagnosticos adds the "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *PartoUpdateOne) AddPartoDiagnosticos(v ...*PartoDiagnostico) *PartoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartoDiagnosticoIDs(ids...)
}

// AddDocumentoIDs adds the "documentos" edge to the DocumentoReferencia entity by IDs.
func (_u *PartoUpdateOne) AddDocumentoIDs(ids ...uuid.UUID) *PartoUpdateOne {
	_u.mutation.AddDocumentoIDs(ids...)
	return _u
}

// AddDocumentos adds the "documentos" edges to the DocumentoReferencia entity.
func (_u *PartoUpdateOne) AddDocumentos(v ...*DocumentoReferencia) *PartoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentoIDs(ids...)
}

// Mutation returns the PartoMutation object of the builder.
func (_u *PartoUpdateOne) Mutation() *PartoMutation {
	return _u.mutation
}

// ClearMadre clears the "madre" edge to the Madre entity.
func (_u *PartoUpdateOne) ClearMadre() *PartoUpdateOne {
	_u.mutation.ClearMadre()
	return _u
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (_u *PartoUpdateOne) ClearUsuarioRegistro() *PartoUpdateOne {
	_u.mutation.ClearUsuarioRegistro()
	return _u
}

// ClearRecienNacidos clears all "recien_nacidos" edges to the RecienNacido entity.
func (_u *PartoUpdateOne) ClearRecienNacidos() *PartoUpdateOne {
	_u.mutation.ClearRecienNacidos()
	return _u
}

// RemoveRecienNacidoIDs removes the "recien_nacidos" edge to RecienNacido entities by IDs.
func (_u *PartoUpdateOne) RemoveRecienNacidoIDs(ids ...uuid.UUID) *PartoUpdateOne {
	_u.mutation.RemoveRecienNacidoIDs(ids...)
	return _u
}

// RemoveRecienNacidos removes "recien_nacidos" edges to RecienNacido entities.
func (_u *PartoUpdateOne) RemoveRecienNacidos(v ...*RecienNacido) *PartoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecienNacidoIDs(ids...)
}

// ClearPartoDiagnosticos clears all "parto_diagnosticos" edges to the PartoDiagnostico entity.
func (_u *PartoUpdateOne) ClearPartoDiagnosticos() *PartoUpdateOne {
	_u.mutation.ClearPartoDiagnosticos()
	return _u
}

// RemovePartoDiagnosticoIDs removes the "parto_diagnosticos" edge to PartoDiagnostico entities by IDs.
func (_u *PartoUpdateOne) RemovePartoDiagnosticoIDs(ids ...uuid.UUID) *PartoUpdateOne {
	_u.mutation.RemovePartoDiagnosticoIDs(ids...)
	return _u
}

// RemovePartoDiagnosticos removes "parto_diagnosticos" edges to PartoDiagnostico entities.
func (_u *PartoUpdateOne) RemovePartoDiagnosticos(v ...*PartoDiagnostico) *PartoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartoDiagnosticoIDs(ids...)
}

// ClearDocumentos clears all "documentos" edges to the DocumentoReferencia entity.
func (_u *PartoUpdateOne) ClearDocumentos() *PartoUpdateOne {
	_u.mutation.ClearDocumentos()
	return _u
}

// RemoveDocumentoIDs removes the "documentos" edge to DocumentoReferencia entities by IDs.
func (_u *PartoUpdateOne) RemoveDocumentoIDs(ids ...uuid.UUID) *PartoUpdateOne {
	_u.mutation.RemoveDocumentoIDs(ids...)
	return _u
}

// RemoveDocumentos removes "documentos" edges to DocumentoReferencia entities.
func (_u *PartoUpdateOne) RemoveDocumentos(v ...*DocumentoReferencia) *PartoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentoIDs(ids...)
}

// Where appends a list predicates to the PartoUpdate builder.
func (_u *PartoUpdateOne) Where(ps ...predicate.Parto) *PartoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartoUpdateOne) Select(field string, fields ...string) *PartoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Parto entity.
func (_u *PartoUpdateOne) Save(ctx context.Context) (*Parto, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartoUpdateOne) SaveX(ctx context.Context) *Parto {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := parto.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartoUpdateOne) check() error {
	if v, ok := _u.mutation.EdadGestacional(); ok {
		if err := parto.EdadGestacionalValidator(v); err != nil {
			return &ValidationError{Name: "edad_gestacional", err: fmt.Errorf(`repo: validator failed for field "Parto.edad_gestacional": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoParto(); ok {
		if err := parto.TipoPartoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_parto", err: fmt.Errorf(`repo: validator failed for field "Parto.tipo_parto": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Anestesia(); ok {
		if err := parto.AnestesiaValidator(v); err != nil {
			return &ValidationError{Name: "anestesia", err: fmt.Errorf(`repo: validator failed for field "Parto.anestesia": %w`, err)}
		}
	}
	if _u.mutation.MadreCleared() && len(_u.mutation.MadreIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Parto.madre"`)
	}
	return nil
}

func (_u *PartoUpdateOne) sqlSave(ctx context.Context) (_node *Parto, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parto.Table, parto.Columns, sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Parto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parto.FieldID)
		for _, f := range fields {
			if !parto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != parto.FieldID {
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
		_spec.SetField(parto.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaParto(); ok {
		_spec.SetField(parto.FieldFechaParto, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EdadGestacional(); ok {
		_spec.SetField(parto.FieldEdadGestacional, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEdadGestacional(); ok {
		_spec.AddField(parto.FieldEdadGestacional, field.TypeInt, value)
	}
	if _u.mutation.EdadGestacionalCleared() {
		_spec.ClearField(parto.FieldEdadGestacional, field.TypeInt)
	}
	if value, ok := _u.mutation.TipoParto(); ok {
		_spec.SetField(parto.FieldTipoParto, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Anestesia(); ok {
		_spec.SetField(parto.FieldAnestesia, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PartogramaData(); ok {
		_spec.SetField(parto.FieldPartogramaData, field.TypeJSON, value)
	}
	if _u.mutation.PartogramaDataCleared() {
		_spec.ClearField(parto.FieldPartogramaData, field.TypeJSON)
	}
	if value, ok := _u.mutation.EpicrisisData(); ok {
		_spec.SetField(parto.FieldEpicrisisData, field.TypeJSON, value)
	}
	if _u.mutation.EpicrisisDataCleared() {
		_spec.ClearField(parto.FieldEpicrisisData, field.TypeJSON)
	}
	if _u.mutation.MadreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MadreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsuarioRegistroCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioRegistroIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecienNacidosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecienNacidosIDs(); len(nodes) > 0 && !_u.mutation.RecienNacidosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecienNacidosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PartoDiagnosticosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartoDiagnosticosIDs(); len(nodes) > 0 && !_u.mutation.PartoDiagnosticosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoDiagnosticosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentosIDs(); len(nodes) > 0 && !_u.mutation.DocumentosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Parto{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
