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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// UsuarioUpdate is the builder for updating Usuario entities.
type UsuarioUpdate struct {
	config
	hooks    []Hook
	mutation *UsuarioMutation
}

// Where appends a list predicates to the UsuarioUpdate builder.
func (_u *UsuarioUpdate) Where(ps ...predicate.Usuario) *UsuarioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsuarioUpdate) SetUpdatedAt(v time.Time) *UsuarioUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRut sets the "rut" field.
func (_u *UsuarioUpdate) SetRut(v string) *UsuarioUpdate {
	_u.mutation.SetRut(v)
	return _u
}

// SetNillableRut sets the "rut" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableRut(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetRut(*v)
	}
	return _u
}

// SetNombreCompleto sets the "nombre_completo" field.
func (_u *UsuarioUpdate) SetNombreCompleto(v string) *UsuarioUpdate {
	_u.mutation.SetNombreCompleto(v)
	return _u
}

// SetNillableNombreCompleto sets the "nombre_completo" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableNombreCompleto(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetNombreCompleto(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UsuarioUpdate) SetEmail(v string) *UsuarioUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableEmail(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *UsuarioUpdate) SetUsername(v string) *UsuarioUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableUsername(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UsuarioUpdate) SetPasswordHash(v string) *UsuarioUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillablePasswordHash(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRolID sets the "rol_id" field.
func (_u *UsuarioUpdate) SetRolID(v uuid.UUID) *UsuarioUpdate {
	_u.mutation.SetRolID(v)
	return _u
}

// SetNillableRolID sets the "rol_id" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableRolID(v *uuid.UUID) *UsuarioUpdate {
	if v != nil {
		_u.SetRolID(*v)
	}
	return _u
}

// SetActivo sets the "activo" field.
func (_u *UsuarioUpdate) SetActivo(v bool) *UsuarioUpdate {
	_u.mutation.SetActivo(v)
	return _u
}

// SetNillableActivo sets the "activo" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableActivo(v *bool) *UsuarioUpdate {
	if v != nil {
		_u.SetActivo(*v)
	}
	return _u
}

// SetRol sets the "rol" edge to the Rol entity.
func (_u *UsuarioUpdate) SetRol(v *Rol) *UsuarioUpdate {
	return _u.SetRolID(v.ID)
}

// AddRegistrosAuditoriumIDs adds the "registros_auditoria" edge to the LogAuditoria entity by IDs.
func (_u *UsuarioUpdate) AddRegistrosAuditoriumIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.AddRegistrosAuditoriumIDs(ids...)
	return _u
}

// AddRegistrosAuditoria adds the "registros_auditoria" edges to the LogAuditoria entity.
func (_u *UsuarioUpdate) AddRegistrosAuditoria(v ...*LogAuditoria) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegistrosAuditoriumIDs(ids...)
}

// AddPartosRegistradoIDs adds the "partos_registrados" edge to the Parto entity by IDs.
func (_u *UsuarioUpdate) AddPartosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.AddPartosRegistradoIDs(ids...)
	return _u
}

// AddPartosRegistrados adds the "partos_registrados" edges to the Parto entity.
func (_u *UsuarioUpdate) AddPartosRegistrados(v ...*Parto) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartosRegistradoIDs(ids...)
}

// AddRecienNacidosRegistradoIDs adds the "recien_nacidos_registrados" edge to the RecienNacido entity by IDs.
func (_u *UsuarioUpdate) AddRecienNacidosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.AddRecienNacidosRegistradoIDs(ids...)
	return _u
}

// AddRecienNacidosRegistrados adds the "recien_nacidos_registrados" edges to the RecienNacido entity.
func (_u *UsuarioUpdate) AddRecienNacidosRegistrados(v ...*RecienNacido) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecienNacidosRegistradoIDs(ids...)
}

// AddDefuncionesRegistradaIDs adds the "defunciones_registradas" edge to the Defuncion entity by IDs.
func (_u *UsuarioUpdate) AddDefuncionesRegistradaIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.AddDefuncionesRegistradaIDs(ids...)
	return _u
}

// AddDefuncionesRegistradas adds the "defunciones_registradas" edges to the Defuncion entity.
func (_u *UsuarioUpdate) AddDefuncionesRegistradas(v ...*Defuncion) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDefuncionesRegistradaIDs(ids...)
}

// AddDocumentosGeneradoIDs adds the "documentos_generados" edge to the DocumentoReferencia entity by IDs.
func (_u *UsuarioUpdate) AddDocumentosGeneradoIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.AddDocumentosGeneradoIDs(ids...)
	return _u
}

// AddDocumentosGenerados adds the "documentos_generados" edges to the DocumentoReferencia entity.
func (_u *UsuarioUpdate) AddDocumentosGenerados(v ...*DocumentoReferencia) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentosGeneradoIDs(ids...)
}

// Mutation returns the UsuarioMutation object of the builder.
func (_u *UsuarioUpdate) Mutation() *UsuarioMutation {
	return _u.mutation
}

// ClearRol clears the "rol" edge to the Rol entity.
func (_u *UsuarioUpdate) ClearRol() *UsuarioUpdate {
	_u.mutation.ClearRol()
	return _u
}

// ClearRegistrosAuditoria clears all "registros_auditoria" edges to the LogAuditoria entity.
func (_u *UsuarioUpdate) ClearRegistrosAuditoria() *UsuarioUpdate {
	_u.mutation.ClearRegistrosAuditoria()
	return _u
}

// RemoveRegistrosAuditoriumIDs removes the "registros_auditoria" edge to LogAuditoria entities by IDs.
func (_u *UsuarioUpdate) RemoveRegistrosAuditoriumIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.RemoveRegistrosAuditoriumIDs(ids...)
	return _u
}

// RemoveRegistrosAuditoria removes "registros_auditoria" edges to LogAuditoria entities.
func (_u *UsuarioUpdate) RemoveRegistrosAuditoria(v ...*LogAuditoria) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegistrosAuditoriumIDs(ids...)
}

// ClearPartosRegistrados clears all "partos_registrados" edges to the Parto entity.
func (_u *UsuarioUpdate) ClearPartosRegistrados() *UsuarioUpdate {
	_u.mutation.ClearPartosRegistrados()
	return _u
}

// RemovePartosRegistradoIDs removes the "partos_registrados" edge to Parto entities by IDs.
func (_u *UsuarioUpdate) RemovePartosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.RemovePartosRegistradoIDs(ids...)
	return _u
}

// RemovePartosRegistrados removes "partos_registrados" edges to Parto entities.
func (_u *UsuarioUpdate) RemovePartosRegistrados(v ...*Parto) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartosRegistradoIDs(ids...)
}

// ClearRecienNacidosRegistrados clears all "recien_nacidos_registrados" edges to the RecienNacido entity.
func (_u *UsuarioUpdate) ClearRecienNacidosRegistrados() *UsuarioUpdate {
	_u.mutation.ClearRecienNacidosRegistrados()
	return _u
}

// RemoveRecienNacidosRegistradoIDs removes the "recien_nacidos_registrados" edge to RecienNacido entities by IDs.
func (_u *UsuarioUpdate) RemoveRecienNacidosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.RemoveRecienNacidosRegistradoIDs(ids...)
	return _u
}

// RemoveRecienNacidosRegistrados removes "recien_nacidos_registrados" edges to RecienNacido entities.
func (_u *UsuarioUpdate) RemoveRecienNacidosRegistrados(v ...*RecienNacido) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecienNacidosRegistradoIDs(ids...)
}

// ClearDefuncionesRegistradas clears all "defunciones_registradas" edges to the Defuncion entity.
func (_u *UsuarioUpdate) ClearDefuncionesRegistradas() *UsuarioUpdate {
	_u.mutation.ClearDefuncionesRegistradas()
	return _u
}

// RemoveDefuncionesRegistradaIDs removes the "defunciones_registradas" edge to Defuncion entities by IDs.
func (_u *UsuarioUpdate) RemoveDefuncionesRegistradaIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.RemoveDefuncionesRegistradaIDs(ids...)
	return _u
}

// RemoveDefuncionesRegistradas removes "defunciones_registradas" edges to Defuncion entities.
func (_u *UsuarioUpdate) RemoveDefuncionesRegistradas(v ...*Defuncion) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDefuncionesRegistradaIDs(ids...)
}

// ClearDocumentosGenerados clears all "documentos_generados" edges to the DocumentoReferencia entity.
func (_u *UsuarioUpdate) ClearDocumentosGenerados() *UsuarioUpdate {
	_u.mutation.ClearDocumentosGenerados()
	return _u
}

// RemoveDocumentosGeneradoIDs removes the "documentos_generados" edge to DocumentoReferencia entities by IDs.
func (_u *UsuarioUpdate) RemoveDocumentosGeneradoIDs(ids ...uuid.UUID) *UsuarioUpdate {
	_u.mutation.RemoveDocumentosGeneradoIDs(ids...)
	return _u
}

// RemoveDocumentosGenerados removes "documentos_generados" edges to DocumentoReferencia entities.
func (_u *UsuarioUpdate) RemoveDocumentosGenerados(v ...*DocumentoReferencia) *UsuarioUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentosGeneradoIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsuarioUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsuarioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsuarioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsuarioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsuarioUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usuario.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsuarioUpdate) check() error {
	if v, ok := _u.mutation.Rut(); ok {
		if err := usuario.RutValidator(v); err != nil {
			return &ValidationError{Name: "rut", err: fmt.Errorf(`repo: validator failed for field "Usuario.rut": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NombreCompleto(); ok {
		if err := usuario.NombreCompletoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_completo", err: fmt.Errorf(`repo: validator failed for field "Usuario.nombre_completo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := usuario.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Usuario.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := usuario.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`repo: validator failed for field "Usuario.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := usuario.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`repo: validator failed for field "Usuario.password_hash": %w`, err)}
		}
	}
	if _u.mutation.RolCleared() && len(_u.mutation.RolIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Usuario.rol"`)
	}
	return nil
}

func (_u *UsuarioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usuario.Table, usuario.Columns, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usuario.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Rut(); ok {
		_spec.SetField(usuario.FieldRut, field.TypeString, value)
	}
	if value, ok := _u.mutation.NombreCompleto(); ok {
		_spec.SetField(usuario.FieldNombreCompleto, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(usuario.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(usuario.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(usuario.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activo(); ok {
		_spec.SetField(usuario.FieldActivo, field.TypeBool, value)
	}
	if _u.mutation.RolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usuario.RolTable,
			Columns: []string{usuario.RolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usuario.RolTable,
			Columns: []string{usuario.RolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RegistrosAuditoriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RegistrosAuditoriaTable,
			Columns: []string{usuario.RegistrosAuditoriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRegistrosAuditoriaIDs(); len(nodes) > 0 && !_u.mutation.RegistrosAuditoriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RegistrosAuditoriaTable,
			Columns: []string{usuario.RegistrosAuditoriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RegistrosAuditoriaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RegistrosAuditoriaTable,
			Columns: []string{usuario.RegistrosAuditoriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PartosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.PartosRegistradosTable,
			Columns: []string{usuario.PartosRegistradosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartosRegistradosIDs(); len(nodes) > 0 && !_u.mutation.PartosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.PartosRegistradosTable,
			Columns: []string{usuario.PartosRegistradosColumn},
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
	if nodes := _u.mutation.PartosRegistradosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.PartosRegistradosTable,
			Columns: []string{usuario.PartosRegistradosColumn},
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
	if _u.mutation.RecienNacidosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RecienNacidosRegistradosTable,
			Columns: []string{usuario.RecienNacidosRegistradosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecienNacidosRegistradosIDs(); len(nodes) > 0 && !_u.mutation.RecienNacidosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RecienNacidosRegistradosTable,
			Columns: []string{usuario.RecienNacidosRegistradosColumn},
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
	if nodes := _u.mutation.RecienNacidosRegistradosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RecienNacidosRegistradosTable,
			Columns: []string{usuario.RecienNacidosRegistradosColumn},
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
	if _u.mutation.DefuncionesRegistradasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DefuncionesRegistradasTable,
			Columns: []string{usuario.DefuncionesRegistradasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDefuncionesRegistradasIDs(); len(nodes) > 0 && !_u.mutation.DefuncionesRegistradasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DefuncionesRegistradasTable,
			Columns: []string{usuario.DefuncionesRegistradasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionesRegistradasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DefuncionesRegistradasTable,
			Columns: []string{usuario.DefuncionesRegistradasColumn},
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
	if _u.mutation.DocumentosGeneradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DocumentosGeneradosTable,
			Columns: []string{usuario.DocumentosGeneradosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentosGeneradosIDs(); len(nodes) > 0 && !_u.mutation.DocumentosGeneradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DocumentosGeneradosTable,
			Columns: []string{usuario.DocumentosGeneradosColumn},
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
	if nodes := _u.mutation.DocumentosGeneradosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DocumentosGeneradosTable,
			Columns: []string{usuario.DocumentosGeneradosColumn},
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
			err = &NotFoundError{usuario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsuarioUpdateOne is the builder for updating a single Usuario entity.
type UsuarioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsuarioMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsuarioUpdateOne) SetUpdatedAt(v time.Time) *UsuarioUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRut sets the "rut" field.
func (_u *UsuarioUpdateOne) SetRut(v string) *UsuarioUpdateOne {
	_u.mutation.SetRut(v)
	return _u
}

// SetNillableRut sets the "rut" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableRut(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetRut(*v)
	}
	return _u
}

// SetNombreCompleto sets the "nombre_completo" field.
func (_u *UsuarioUpdateOne) SetNombreCompleto(v string) *UsuarioUpdateOne {
	_u.mutation.SetNombreCompleto(v)
	return _u
}

// SetNillableNombreCompleto sets the "nombre_completo" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableNombreCompleto(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetNombreCompleto(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UsuarioUpdateOne) SetEmail(v string) *UsuarioUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableEmail(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *UsuarioUpdateOne) SetUsername(v string) *UsuarioUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableUsername(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UsuarioUpdateOne) SetPasswordHash(v string) *UsuarioUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillablePasswordHash(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetRolID sets the "rol_id" field.
func (_u *UsuarioUpdateOne) SetRolID(v uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.SetRolID(v)
	return _u
}

// SetNillableRolID sets the "rol_id" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableRolID(v *uuid.UUID) *UsuarioUpdateOne {
	if v != nil {
		_u.SetRolID(*v)
	}
	return _u
}

// SetActivo sets the "activo" field.
func (_u *UsuarioUpdateOne) SetActivo(v bool) *UsuarioUpdateOne {
	_u.mutation.SetActivo(v)
	return _u
}

// SetNillableActivo sets the "activo" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableActivo(v *bool) *UsuarioUpdateOne {
	if v != nil {
		_u.SetActivo(*v)
	}
	return _u
}

// SetRol sets the "rol" edge to the Rol entity.
func (_u *UsuarioUpdateOne) SetRol(v *Rol) *UsuarioUpdateOne {
	return _u.SetRolID(v.ID)
}

// AddRegistrosAuditoriumIDs adds the "registros_auditoria" edge to the LogAuditoria entity by IDs.
func (_u *UsuarioUpdateOne) AddRegistrosAuditoriumIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.AddRegistrosAuditoriumIDs(ids...)
	return _u
}

// AddRegistrosAuditoria adds the "registros_auditoria" edges to the LogAuditoria entity.
func (_u *UsuarioUpdateOne) AddRegistrosAuditoria(v ...*LogAuditoria) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRegistrosAuditoriumIDs(ids...)
}

// AddPartosRegistradoIDs adds the "partos_registrados" edge to the Parto entity by IDs.
func (_u *UsuarioUpdateOne) AddPartosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.AddPartosRegistradoIDs(ids...)
	return _u
}

// AddPartosRegistrados adds the "partos_registrados" edges to the Parto entity.
func (_u *UsuarioUpdateOne) AddPartosRegistrados(v ...*Parto) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPartosRegistradoIDs(ids...)
}

// AddRecienNacidosRegistradoIDs adds the "recien_nacidos_registrados" edge to the RecienNacido entity by IDs.
func (_u *UsuarioUpdateOne) AddRecienNacidosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.AddRecienNacidosRegistradoIDs(ids...)
	return _u
}

// AddRecienNacidosRegistrados adds the "recien_nacidos_registrados" edges to the RecienNacido entity.
func (_u *UsuarioUpdateOne) AddRecienNacidosRegistrados(v ...*RecienNacido) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecienNacidosRegistradoIDs(ids...)
}

// AddDefuncionesRegistradaIDs adds the "defunciones_registradas" edge to the Defuncion entity by IDs.
func (_u *UsuarioUpdateOne) AddDefuncionesRegistradaIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.AddDefuncionesRegistradaIDs(ids...)
	return _u
}

// AddDefuncionesRegistradas adds the "defunciones_registradas" edges to the Defuncion entity.
func (_u *UsuarioUpdateOne) AddDefuncionesRegistradas(v ...*Defuncion) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDefuncionesRegistradaIDs(ids...)
}

// AddDocumentosGeneradoIDs adds the "documentos_generados" edge to the DocumentoReferencia entity by IDs.
func (_u *UsuarioUpdateOne) AddDocumentosGeneradoIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.AddDocumentosGeneradoIDs(ids...)
	return _u
}

// AddDocumentosGenerados adds the "documentos_generados" edges to the DocumentoReferencia entity.
func (_u *UsuarioUpdateOne) AddDocumentosGenerados(v ...*DocumentoReferencia) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentosGeneradoIDs(ids...)
}

// Mutation returns the UsuarioMutation object of the builder.
func (_u *UsuarioUpdateOne) Mutation() *UsuarioMutation {
	return _u.mutation
}

// ClearRol clears the "rol" edge to the Rol entity.
func (_u *UsuarioUpdateOne) ClearRol() *UsuarioUpdateOne {
	_u.mutation.ClearRol()
	return _u
}

// ClearRegistrosAuditoria clears all "registros_auditoria" edges to the LogAuditoria entity.
func (_u *UsuarioUpdateOne) ClearRegistrosAuditoria() *UsuarioUpdateOne {
	_u.mutation.ClearRegistrosAuditoria()
	return _u
}

// RemoveRegistrosAuditoriumIDs removes the "registros_auditoria" edge to LogAuditoria entities by IDs.
func (_u *UsuarioUpdateOne) RemoveRegistrosAuditoriumIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.RemoveRegistrosAuditoriumIDs(ids...)
	return _u
}

// RemoveRegistrosAuditoria removes "registros_auditoria" edges to LogAuditoria entities.
func (_u *UsuarioUpdateOne) RemoveRegistrosAuditoria(v ...*LogAuditoria) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRegistrosAuditoriumIDs(ids...)
}

// ClearPartosRegistrados clears all "partos_registrados" edges to the Parto entity.
func (_u *UsuarioUpdateOne) ClearPartosRegistrados() *UsuarioUpdateOne {
	_u.mutation.ClearPartosRegistrados()
	return _u
}

// RemovePartosRegistradoIDs removes the "partos_registrados" edge to Parto entities by IDs.
func (_u *UsuarioUpdateOne) RemovePartosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.RemovePartosRegistradoIDs(ids...)
	return _u
}

// RemovePartosRegistrados removes "partos_registrados" edges to Parto entities.
func (_u *UsuarioUpdateOne) RemovePartosRegistrados(v ...*Parto) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePartosRegistradoIDs(ids...)
}

// ClearRecienNacidosRegistrados clears all "recien_nacidos_registrados" edges to the RecienNacido entity.
func (_u *UsuarioUpdateOne) ClearRecienNacidosRegistrados() *UsuarioUpdateOne {
	_u.mutation.ClearRecienNacidosRegistrados()
	return _u
}

// RemoveRecienNacidosRegistradoIDs removes the "recien_nacidos_registrados" edge to RecienNacido entities by IDs.
func (_u *UsuarioUpdateOne) RemoveRecienNacidosRegistradoIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.RemoveRecienNacidosRegistradoIDs(ids...)
	return _u
}

// RemoveRecienNacidosRegistrados removes "recien_nacidos_registrados" edges to RecienNacido entities.
func (_u *UsuarioUpdateOne) RemoveRecienNacidosRegistrados(v ...*RecienNacido) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecienNacidosRegistradoIDs(ids...)
}

// ClearDefuncionesRegistradas clears all "defunciones_registradas" edges to the Defuncion entity.
func (_u *UsuarioUpdateOne) ClearDefuncionesRegistradas() *UsuarioUpdateOne {
	_u.mutation.ClearDefuncionesRegistradas()
	return _u
}

// RemoveDefuncionesRegistradaIDs removes the "defunciones_registradas" edge to Defuncion entities by IDs.
func (_u *UsuarioUpdateOne) RemoveDefuncionesRegistradaIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.RemoveDefuncionesRegistradaIDs(ids...)
	return _u
}

// RemoveDefuncionesRegistradas removes "defunciones_registradas" edges to Defuncion entities.
func (_u *UsuarioUpdateOne) RemoveDefuncionesRegistradas(v ...*Defuncion) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDefuncionesRegistradaIDs(ids...)
}

// ClearDocumentosGenerados clears all "documentos_generados" edges to the DocumentoReferencia entity.
func (_u *UsuarioUpdateOne) ClearDocumentosGenerados() *UsuarioUpdateOne {
	_u.mutation.ClearDocumentosGenerados()
	return _u
}

// RemoveDocumentosGeneradoIDs removes the "documentos_generados" edge to DocumentoReferencia entities by IDs.
func (_u *UsuarioUpdateOne) RemoveDocumentosGeneradoIDs(ids ...uuid.UUID) *UsuarioUpdateOne {
	_u.mutation.RemoveDocumentosGeneradoIDs(ids...)
	return _u
}

// RemoveDocumentosGenerados removes "documentos_generados" edges to DocumentoReferencia entities.
func (_u *UsuarioUpdateOne) RemoveDocumentosGenerados(v ...*DocumentoReferencia) *UsuarioUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentosGeneradoIDs(ids...)
}

// Where appends a list predicates to the UsuarioUpdate builder.
func (_u *UsuarioUpdateOne) Where(ps ...predicate.Usuario) *UsuarioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsuarioUpdateOne) Select(field string, fields ...string) *UsuarioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Usuario entity.
func (_u *UsuarioUpdateOne) Save(ctx context.Context) (*Usuario, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsuarioUpdateOne) SaveX(ctx context.Context) *Usuario {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsuarioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsuarioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsuarioUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usuario.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsuarioUpdateOne) check() error {
	if v, ok := _u.mutation.Rut(); ok {
		if err := usuario.RutValidator(v); err != nil {
			return &ValidationError{Name: "rut", err: fmt.Errorf(`repo: validator failed for field "Usuario.rut": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NombreCompleto(); ok {
		if err := usuario.NombreCompletoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_completo", err: fmt.Errorf(`repo: validator failed for field "Usuario.nombre_completo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := usuario.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Usuario.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := usuario.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`repo: validator failed for field "Usuario.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := usuario.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`repo: validator failed for field "Usuario.password_hash": %w`, err)}
		}
	}
	if _u.mutation.RolCleared() && len(_u.mutation.RolIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Usuario.rol"`)
	}
	return nil
}

func (_u *UsuarioUpdateOne) sqlSave(ctx context.Context) (_node *Usuario, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usuario.Table, usuario.Columns, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Usuario.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usuario.FieldID)
		for _, f := range fields {
			if !usuario.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != usuario.FieldID {
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
		_spec.SetField(usuario.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Rut(); ok {
		_spec.SetField(usuario.FieldRut, field.TypeString, value)
	}
	if value, ok := _u.mutation.NombreCompleto(); ok {
		_spec.SetField(usuario.FieldNombreCompleto, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(usuario.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(usuario.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(usuario.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activo(); ok {
		_spec.SetField(usuario.FieldActivo, field.TypeBool, value)
	}
	if _u.mutation.RolCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usuario.RolTable,
			Columns: []string{usuario.RolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RolIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usuario.RolTable,
			Columns: []string{usuario.RolColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rol.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RegistrosAuditoriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RegistrosAuditoriaTable,
			Columns: []string{usuario.RegistrosAuditoriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRegistrosAuditoriaIDs(); len(nodes) > 0 && !_u.mutation.RegistrosAuditoriaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RegistrosAuditoriaTable,
			Columns: []string{usuario.RegistrosAuditoriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RegistrosAuditoriaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RegistrosAuditoriaTable,
			Columns: []string{usuario.RegistrosAuditoriaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logauditoria.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PartosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.PartosRegistradosTable,
			Columns: []string{usuario.PartosRegistradosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPartosRegistradosIDs(); len(nodes) > 0 && !_u.mutation.PartosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.PartosRegistradosTable,
			Columns: []string{usuario.PartosRegistradosColumn},
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
	if nodes := _u.mutation.PartosRegistradosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.PartosRegistradosTable,
			Columns: []string{usuario.PartosRegistradosColumn},
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
	if _u.mutation.RecienNacidosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RecienNacidosRegistradosTable,
			Columns: []string{usuario.RecienNacidosRegistradosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reciennacido.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecienNacidosRegistradosIDs(); len(nodes) > 0 && !_u.mutation.RecienNacidosRegistradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RecienNacidosRegistradosTable,
			Columns: []string{usuario.RecienNacidosRegistradosColumn},
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
	if nodes := _u.mutation.RecienNacidosRegistradosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.RecienNacidosRegistradosTable,
			Columns: []string{usuario.RecienNacidosRegistradosColumn},
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
	if _u.mutation.DefuncionesRegistradasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DefuncionesRegistradasTable,
			Columns: []string{usuario.DefuncionesRegistradasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDefuncionesRegistradasIDs(); len(nodes) > 0 && !_u.mutation.DefuncionesRegistradasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DefuncionesRegistradasTable,
			Columns: []string{usuario.DefuncionesRegistradasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defuncion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefuncionesRegistradasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DefuncionesRegistradasTable,
			Columns: []string{usuario.DefuncionesRegistradasColumn},
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
	if _u.mutation.DocumentosGeneradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DocumentosGeneradosTable,
			Columns: []string{usuario.DocumentosGeneradosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentosGeneradosIDs(); len(nodes) > 0 && !_u.mutation.DocumentosGeneradosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DocumentosGeneradosTable,
			Columns: []string{usuario.DocumentosGeneradosColumn},
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
	if nodes := _u.mutation.DocumentosGeneradosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   usuario.DocumentosGeneradosTable,
			Columns: []string{usuario.DocumentosGeneradosColumn},
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
	_node = &Usuario{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usuario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
