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
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// UsuarioCreate is the builder for creating a Usuario entity.
type UsuarioCreate struct {
	config
	mutation *UsuarioMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsuarioCreate) SetCreatedAt(v time.Time) *UsuarioCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableCreatedAt(v *time.Time) *UsuarioCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsuarioCreate) SetUpdatedAt(v time.Time) *UsuarioCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableUpdatedAt(v *time.Time) *UsuarioCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRut sets the "rut" field.
func (_c *UsuarioCreate) SetRut(v string) *UsuarioCreate {
	_c.mutation.SetRut(v)
	return _c
}

// SetNombreCompleto sets the "nombre_completo" field.
func (_c *UsuarioCreate) SetNombreCompleto(v string) *UsuarioCreate {
	_c.mutation.SetNombreCompleto(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UsuarioCreate) SetEmail(v string) *UsuarioCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *UsuarioCreate) SetUsername(v string) *UsuarioCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UsuarioCreate) SetPasswordHash(v string) *UsuarioCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetRolID sets the "rol_id" field.
func (_c *UsuarioCreate) SetRolID(v uuid.UUID) *UsuarioCreate {
	_c.mutation.SetRolID(v)
	return _c
}

// SetActivo sets the "activo" field.
func (_c *UsuarioCreate) SetActivo(v bool) *UsuarioCreate {
	_c.mutation.SetActivo(v)
	return _c
}

// SetNillableActivo sets the "activo" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableActivo(v *bool) *UsuarioCreate {
	if v != nil {
		_c.SetActivo(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsuarioCreate) SetID(v uuid.UUID) *UsuarioCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableID(v *uuid.UUID) *UsuarioCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRol sets the "rol" edge to the Rol entity.
func (_c *UsuarioCreate) SetRol(v *Rol) *UsuarioCreate {
	return _c.SetRolID(v.ID)
}

// AddRegistrosAuditoriumIDs adds the "registros_auditoria" edge to the LogAuditoria entity by IDs.
func (_c *UsuarioCreate) AddRegistrosAuditoriumIDs(ids ...uuid.UUID) *UsuarioCreate {
	_c.mutation.AddRegistrosAuditoriumIDs(ids...)
	return _c
}

// AddRegistrosAuditoria adds the "registros_auditoria" edges to the LogAuditoria entity.
func (_c *UsuarioCreate) AddRegistrosAuditoria(v ...*LogAuditoria) *UsuarioCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRegistrosAuditoriumIDs(ids...)
}

// AddPartosRegistradoIDs adds the "partos_registrados" edge to the Parto entity by IDs.
func (_c *UsuarioCreate) AddPartosRegistradoIDs(ids ...uuid.UUID) *UsuarioCreate {
	_c.mutation.AddPartosRegistradoIDs(ids...)
	return _c
}

// AddPartosRegistrados adds the "partos_registrados" edges to the Parto entity.
func (_c *UsuarioCreate) AddPartosRegistrados(v ...*Parto) *UsuarioCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPartosRegistradoIDs(ids...)
}

// AddRecienNacidosRegistradoIDs adds the "recien_nacidos_registrados" edge to the RecienNacido entity by IDs.
func (_c *UsuarioCreate) AddRecienNacidosRegistradoIDs(ids ...uuid.UUID) *UsuarioCreate {
	_c.mutation.AddRecienNacidosRegistradoIDs(ids...)
	return _c
}

// AddRecienNacidosRegistrados adds the "recien_nacidos_registrados" edges to the RecienNacido entity.
func (_c *UsuarioCreate) AddRecienNacidosRegistrados(v ...*RecienNacido) *UsuarioCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecienNacidosRegistradoIDs(ids...)
}

// AddDefuncionesRegistradaIDs adds the "defunciones_registradas" edge to the Defuncion entity by IDs.
func (_c *UsuarioCreate) AddDefuncionesRegistradaIDs(ids ...uuid.UUID) *UsuarioCreate {
	_c.mutation.AddDefuncionesRegistradaIDs(ids...)
	return _c
}

// AddDefuncionesRegistradas adds the "defunciones_registradas" edges to the Defuncion entity.
func (_c *UsuarioCreate) AddDefuncionesRegistradas(v ...*Defuncion) *UsuarioCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDefuncionesRegistradaIDs(ids...)
}

// AddDocumentosGeneradoIDs adds the "documentos_generados" edge to the DocumentoReferencia entity by IDs.
func (_c *UsuarioCreate) AddDocumentosGeneradoIDs(ids ...uuid.UUID) *UsuarioCreate {
	_c.mutation.AddDocumentosGeneradoIDs(ids...)
	return _c
}

// AddDocumentosGenerados adds the "documentos_generados" edges to the DocumentoReferencia entity.
func (_c *UsuarioCreate) AddDocumentosGenerados(v ...*DocumentoReferencia) *UsuarioCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentosGeneradoIDs(ids...)
}

// Mutation returns the UsuarioMutation object of the builder.
func (_c *UsuarioCreate) Mutation() *UsuarioMutation {
	return _c.mutation
}

// Save creates the Usuario in the database.
func (_c *UsuarioCreate) Save(ctx context.Context) (*Usuario, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsuarioCreate) SaveX(ctx context.Context) *Usuario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsuarioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsuarioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsuarioCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usuario.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usuario.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Activo(); !ok {
		v := usuario.DefaultActivo
		_c.mutation.SetActivo(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usuario.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsuarioCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Usuario.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Usuario.updated_at"`)}
	}
	if _, ok := _c.mutation.Rut(); !ok {
		return &ValidationError{Name: "rut", err: errors.New(`repo: missing required field "Usuario.rut"`)}
	}
	if v, ok := _c.mutation.Rut(); ok {
		if err := usuario.RutValidator(v); err != nil {
			return &ValidationError{Name: "rut", err: fmt.Errorf(`repo: validator failed for field "Usuario.rut": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NombreCompleto(); !ok {
		return &ValidationError{Name: "nombre_completo", err: errors.New(`repo: missing required field "Usuario.nombre_completo"`)}
	}
	if v, ok := _c.mutation.NombreCompleto(); ok {
		if err := usuario.NombreCompletoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_completo", err: fmt.Errorf(`repo: validator failed for field "Usuario.nombre_completo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Usuario.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := usuario.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Usuario.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`repo: missing required field "Usuario.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := usuario.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`repo: validator failed for field "Usuario.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`repo: missing required field "Usuario.password_hash"`)}
	}
	if v, ok := _c.mutation.PasswordHash(); ok {
		if err := usuario.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`repo: validator failed for field "Usuario.password_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RolID(); !ok {
		return &ValidationError{Name: "rol_id", err: errors.New(`repo: missing required field "Usuario.rol_id"`)}
	}
	if _, ok := _c.mutation.Activo(); !ok {
		return &ValidationError{Name: "activo", err: errors.New(`repo: missing required field "Usuario.activo"`)}
	}
	if len(_c.mutation.RolIDs()) == 0 {
		return &ValidationError{Name: "rol", err: errors.New(`repo: missing required edge "Usuario.rol"`)}
	}
	return nil
}

func (_c *UsuarioCreate) sqlSave(ctx context.Context) (*Usuario, error) {
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

func (_c *UsuarioCreate) createSpec() (*Usuario, *sqlgraph.CreateSpec) {
	var (
		_node = &Usuario{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usuario.Table, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usuario.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usuario.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Rut(); ok {
		_spec.SetField(usuario.FieldRut, field.TypeString, value)
		_node.Rut = value
	}
	if value, ok := _c.mutation.NombreCompleto(); ok {
		_spec.SetField(usuario.FieldNombreCompleto, field.TypeString, value)
		_node.NombreCompleto = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(usuario.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(usuario.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(usuario.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Activo(); ok {
		_spec.SetField(usuario.FieldActivo, field.TypeBool, value)
		_node.Activo = value
	}
	if nodes := _c.mutation.RolIDs(); len(nodes) > 0 {
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
		_node.RolID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RegistrosAuditoriaIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PartosRegistradosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecienNacidosRegistradosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DefuncionesRegistradasIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentosGeneradosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Usuario.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsuarioUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UsuarioCreate) OnConflict(opts ...sql.ConflictOption) *UsuarioUpsertOne {
	_c.conflict = opts
	return &UsuarioUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Usuario.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsuarioCreate) OnConflictColumns(columns ...string) *UsuarioUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsuarioUpsertOne{
		create: _c,
	}
}

type (
	// UsuarioUpsertOne is the builder for "upsert"-ing
	//  one Usuario node.
	UsuarioUpsertOne struct {
		create *UsuarioCreate
	}

	// UsuarioUpsert is the "OnConflict" setter.
	UsuarioUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UsuarioUpsert) SetUpdatedAt(v time.Time) *UsuarioUpsert {
	u.Set(usuario.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateUpdatedAt() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldUpdatedAt)
	return u
}

// SetRut sets the "rut" field.
func (u *UsuarioUpsert) SetRut(v string) *UsuarioUpsert {
	u.Set(usuario.FieldRut, v)
	return u
}

// UpdateRut sets the "rut" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateRut() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldRut)
	return u
}

// SetNombreCompleto sets the "nombre_completo" field.
func (u *UsuarioUpsert) SetNombreCompleto(v string) *UsuarioUpsert {
	u.Set(usuario.FieldNombreCompleto, v)
	return u
}

// UpdateNombreCompleto sets the "nombre_completo" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateNombreCompleto() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldNombreCompleto)
	return u
}

// SetEmail sets the "email" field.
func (u *UsuarioUpsert) SetEmail(v string) *UsuarioUpsert {
	u.Set(usuario.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateEmail() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldEmail)
	return u
}

// SetUsername sets the "username" field.
func (u *UsuarioUpsert) SetUsername(v string) *UsuarioUpsert {
	u.Set(usuario.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateUsername() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldUsername)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *UsuarioUpsert) SetPasswordHash(v string) *UsuarioUpsert {
	u.Set(usuario.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdatePasswordHash() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldPasswordHash)
	return u
}

// SetRolID sets the "rol_id" field.
func (u *UsuarioUpsert) SetRolID(v uuid.UUID) *UsuarioUpsert {
	u.Set(usuario.FieldRolID, v)
	return u
}

// UpdateRolID sets the "rol_id" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateRolID() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldRolID)
	return u
}

// SetActivo sets the "activo" field.
func (u *UsuarioUpsert) SetActivo(v bool) *UsuarioUpsert {
	u.Set(usuario.FieldActivo, v)
	return u
}

// UpdateActivo sets the "activo" field to the value that was provided on create.
func (u *UsuarioUpsert) UpdateActivo() *UsuarioUpsert {
	u.SetExcluded(usuario.FieldActivo)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Usuario.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usuario.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UsuarioUpsertOne) UpdateNewValues() *UsuarioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(usuario.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(usuario.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Usuario.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsuarioUpsertOne) Ignore() *UsuarioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsuarioUpsertOne) DoNothing() *UsuarioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsuarioCreate.OnConflict
// documentation for more info.
func (u *UsuarioUpsertOne) Update(set func(*UsuarioUpsert)) *UsuarioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsuarioUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsuarioUpsertOne) SetUpdatedAt(v time.Time) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateUpdatedAt() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRut sets the "rut" field.
func (u *UsuarioUpsertOne) SetRut(v string) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetRut(v)
	})
}

// UpdateRut sets the "rut" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateRut() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateRut()
	})
}

// SetNombreCompleto sets the "nombre_completo" field.
func (u *UsuarioUpsertOne) SetNombreCompleto(v string) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetNombreCompleto(v)
	})
}

// UpdateNombreCompleto sets the "nombre_completo" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateNombreCompleto() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateNombreCompleto()
	})
}

// SetEmail sets the "email" field.
func (u *UsuarioUpsertOne) SetEmail(v string) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateEmail() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateEmail()
	})
}

// SetUsername sets the "username" field.
func (u *UsuarioUpsertOne) SetUsername(v string) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateUsername() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateUsername()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UsuarioUpsertOne) SetPasswordHash(v string) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdatePasswordHash() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetRolID sets the "rol_id" field.
func (u *UsuarioUpsertOne) SetRolID(v uuid.UUID) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetRolID(v)
	})
}

// UpdateRolID sets the "rol_id" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateRolID() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateRolID()
	})
}

// SetActivo sets the "activo" field.
func (u *UsuarioUpsertOne) SetActivo(v bool) *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetActivo(v)
	})
}

// UpdateActivo sets the "activo" field to the value that was provided on create.
func (u *UsuarioUpsertOne) UpdateActivo() *UsuarioUpsertOne {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateActivo()
	})
}

// Exec executes the query.
func (u *UsuarioUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UsuarioCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsuarioUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsuarioUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: UsuarioUpsertOne.ID is not supported by MySQL driver. Use UsuarioUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsuarioUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsuarioCreateBulk is the builder for creating many Usuario entities in bulk.
type UsuarioCreateBulk struct {
	config
	err      error
	builders []*UsuarioCreate
	conflict []sql.ConflictOption
}

// Save creates the Usuario entities in the database.
func (_c *UsuarioCreateBulk) Save(ctx context.Context) ([]*Usuario, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Usuario, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsuarioMutation)
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
func (_c *UsuarioCreateBulk) SaveX(ctx context.Context) []*Usuario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsuarioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsuarioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Usuario.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsuarioUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UsuarioCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsuarioUpsertBulk {
	_c.conflict = opts
	return &UsuarioUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Usuario.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsuarioCreateBulk) OnConflictColumns(columns ...string) *UsuarioUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsuarioUpsertBulk{
		create: _c,
	}
}

// UsuarioUpsertBulk is the builder for "upsert"-ing
// a bulk of Usuario nodes.
type UsuarioUpsertBulk struct {
	create *UsuarioCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Usuario.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usuario.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UsuarioUpsertBulk) UpdateNewValues() *UsuarioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(usuario.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(usuario.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Usuario.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsuarioUpsertBulk) Ignore() *UsuarioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsuarioUpsertBulk) DoNothing() *UsuarioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsuarioCreateBulk.OnConflict
// documentation for more info.
func (u *UsuarioUpsertBulk) Update(set func(*UsuarioUpsert)) *UsuarioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsuarioUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsuarioUpsertBulk) SetUpdatedAt(v time.Time) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateUpdatedAt() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRut sets the "rut" field.
func (u *UsuarioUpsertBulk) SetRut(v string) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetRut(v)
	})
}

// UpdateRut sets the "rut" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateRut() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateRut()
	})
}

// SetNombreCompleto sets the "nombre_completo" field.
func (u *UsuarioUpsertBulk) SetNombreCompleto(v string) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetNombreCompleto(v)
	})
}

// UpdateNombreCompleto sets the "nombre_completo" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateNombreCompleto() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateNombreCompleto()
	})
}

// SetEmail sets the "email" field.
func (u *UsuarioUpsertBulk) SetEmail(v string) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateEmail() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateEmail()
	})
}

// SetUsername sets the "username" field.
func (u *UsuarioUpsertBulk) SetUsername(v string) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateUsername() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateUsername()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UsuarioUpsertBulk) SetPasswordHash(v string) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdatePasswordHash() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdatePasswordHash()
	})
}

// SetRolID sets the "rol_id" field.
func (u *UsuarioUpsertBulk) SetRolID(v uuid.UUID) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetRolID(v)
	})
}

// UpdateRolID sets the "rol_id" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateRolID() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateRolID()
	})
}

// SetActivo sets the "activo" field.
func (u *UsuarioUpsertBulk) SetActivo(v bool) *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.SetActivo(v)
	})
}

// UpdateActivo sets the "activo" field to the value that was provided on create.
func (u *UsuarioUpsertBulk) UpdateActivo() *UsuarioUpsertBulk {
	return u.Update(func(s *UsuarioUpsert) {
		s.UpdateActivo()
	})
}

// Exec executes the query.
func (u *UsuarioUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the UsuarioCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UsuarioCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsuarioUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
