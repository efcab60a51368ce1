// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDefuncion           = "Defuncion"
	TypeDiagnosticoCIE10    = "DiagnosticoCIE10"
	TypeDocumentoReferencia = "DocumentoReferencia"
	TypeLogAuditoria        = "LogAuditoria"
	TypeMadre               = "Madre"
	TypeParto               = "Parto"
	TypePartoDiagnostico    = "PartoDiagnostico"
	TypeRecienNacido        = "RecienNacido"
	TypeRol                 = "Rol"
	TypeUsuario             = "Usuario"
)

// DefuncionMutation represents an operation that mutates the Defuncion nodes in the graph.
type DefuncionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	fecha_defuncion         *time.Time
	clearedFields           map[string]struct{}
	madre                   *uuid.UUID
	clearedmadre            bool
	recien_nacido           *uuid.UUID
	clearedrecien_nacido    bool
	causa_defuncion         *uuid.UUID
	clearedcausa_defuncion  bool
	usuario_registro        *uuid.UUID
	clearedusuario_registro bool
	done                    bool
	oldValue                func(context.Context) (*Defuncion, error)
	predicates              []predicate.Defuncion
}

var _ ent.Mutation = (*DefuncionMutation)(nil)

// defuncionOption allows management of the mutation configuration using functional options.
type defuncionOption func(*DefuncionMutation)

// newDefuncionMutation creates new mutation for the Defuncion entity.
func newDefuncionMutation(c config, op Op, opts ...defuncionOption) *DefuncionMutation {
	m := &DefuncionMutation{
		config:        c,
		op:            op,
		typ:           TypeDefuncion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDefuncionID sets the ID field of the mutation.
func withDefuncionID(id uuid.UUID) defuncionOption {
	return func(m *DefuncionMutation) {
		var (
			err   error
			once  sync.Once
			value *Defuncion
		)
		m.oldValue = func(ctx context.Context) (*Defuncion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Defuncion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDefuncion sets the old Defuncion of the mutation.
func withDefuncion(node *Defuncion) defuncionOption {
	return func(m *DefuncionMutation) {
		m.oldValue = func(context.Context) (*Defuncion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DefuncionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DefuncionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Defuncion entities.
func (m *DefuncionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DefuncionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DefuncionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Defuncion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DefuncionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DefuncionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DefuncionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DefuncionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DefuncionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DefuncionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMadreID sets the "madre_id" field.
func (m *DefuncionMutation) SetMadreID(u uuid.UUID) {
	m.madre = &u
}

// MadreID returns the value of the "madre_id" field in the mutation.
func (m *DefuncionMutation) MadreID() (r uuid.UUID, exists bool) {
	v := m.madre
	if v == nil {
		return
	}
	return *v, true
}

// OldMadreID returns the old "madre_id" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldMadreID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMadreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMadreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMadreID: %w", err)
	}
	return oldValue.MadreID, nil
}

// ClearMadreID clears the value of the "madre_id" field.
func (m *DefuncionMutation) ClearMadreID() {
	m.madre = nil
	m.clearedFields[defuncion.FieldMadreID] = struct{}{}
}

// MadreIDCleared returns if the "madre_id" field was cleared in this mutation.
func (m *DefuncionMutation) MadreIDCleared() bool {
	_, ok := m.clearedFields[defuncion.FieldMadreID]
	return ok
}

// ResetMadreID resets all changes to the "madre_id" field.
func (m *DefuncionMutation) ResetMadreID() {
	m.madre = nil
	delete(m.clearedFields, defuncion.FieldMadreID)
}

// SetRecienNacidoID sets the "recien_nacido_id" field.
func (m *DefuncionMutation) SetRecienNacidoID(u uuid.UUID) {
	m.recien_nacido = &u
}

// RecienNacidoID returns the value of the "recien_nacido_id" field in the mutation.
func (m *DefuncionMutation) RecienNacidoID() (r uuid.UUID, exists bool) {
	v := m.recien_nacido
	if v == nil {
		return
	}
	return *v, true
}

// OldRecienNacidoID returns the old "recien_nacido_id" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldRecienNacidoID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecienNacidoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecienNacidoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecienNacidoID: %w", err)
	}
	return oldValue.RecienNacidoID, nil
}

// ClearRecienNacidoID clears the value of the "recien_nacido_id" field.
func (m *DefuncionMutation) ClearRecienNacidoID() {
	m.recien_nacido = nil
	m.clearedFields[defuncion.FieldRecienNacidoID] = struct{}{}
}

// RecienNacidoIDCleared returns if the "recien_nacido_id" field was cleared in this mutation.
func (m *DefuncionMutation) RecienNacidoIDCleared() bool {
	_, ok := m.clearedFields[defuncion.FieldRecienNacidoID]
	return ok
}

// ResetRecienNacidoID resets all changes to the "recien_nacido_id" field.
func (m *DefuncionMutation) ResetRecienNacidoID() {
	m.recien_nacido = nil
	delete(m.clearedFields, defuncion.FieldRecienNacidoID)
}

// SetFechaDefuncion sets the "fecha_defuncion" field.
func (m *DefuncionMutation) SetFechaDefuncion(t time.Time) {
	m.fecha_defuncion = &t
}

// FechaDefuncion returns the value of the "fecha_defuncion" field in the mutation.
func (m *DefuncionMutation) FechaDefuncion() (r time.Time, exists bool) {
	v := m.fecha_defuncion
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaDefuncion returns the old "fecha_defuncion" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldFechaDefuncion(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaDefuncion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaDefuncion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaDefuncion: %w", err)
	}
	return oldValue.FechaDefuncion, nil
}

// ResetFechaDefuncion resets all changes to the "fecha_defuncion" field.
func (m *DefuncionMutation) ResetFechaDefuncion() {
	m.fecha_defuncion = nil
}

// SetCausaDefuncionID sets the "causa_defuncion_id" field.
func (m *DefuncionMutation) SetCausaDefuncionID(u uuid.UUID) {
	m.causa_defuncion = &u
}

// CausaDefuncionID returns the value of the "causa_defuncion_id" field in the mutation.
func (m *DefuncionMutation) CausaDefuncionID() (r uuid.UUID, exists bool) {
	v := m.causa_defuncion
	if v == nil {
		return
	}
	return *v, true
}

// OldCausaDefuncionID returns the old "causa_defuncion_id" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldCausaDefuncionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausaDefuncionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausaDefuncionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausaDefuncionID: %w", err)
	}
	return oldValue.CausaDefuncionID, nil
}

// ResetCausaDefuncionID resets all changes to the "causa_defuncion_id" field.
func (m *DefuncionMutation) ResetCausaDefuncionID() {
	m.causa_defuncion = nil
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (m *DefuncionMutation) SetUsuarioRegistroID(u uuid.UUID) {
	m.usuario_registro = &u
}

// UsuarioRegistroID returns the value of the "usuario_registro_id" field in the mutation.
func (m *DefuncionMutation) UsuarioRegistroID() (r uuid.UUID, exists bool) {
	v := m.usuario_registro
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioRegistroID returns the old "usuario_registro_id" field's value of the Defuncion entity.
// If the Defuncion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DefuncionMutation) OldUsuarioRegistroID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioRegistroID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioRegistroID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioRegistroID: %w", err)
	}
	return oldValue.UsuarioRegistroID, nil
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (m *DefuncionMutation) ClearUsuarioRegistroID() {
	m.usuario_registro = nil
	m.clearedFields[defuncion.FieldUsuarioRegistroID] = struct{}{}
}

// UsuarioRegistroIDCleared returns if the "usuario_registro_id" field was cleared in this mutation.
func (m *DefuncionMutation) UsuarioRegistroIDCleared() bool {
	_, ok := m.clearedFields[defuncion.FieldUsuarioRegistroID]
	return ok
}

// ResetUsuarioRegistroID resets all changes to the "usuario_registro_id" field.
func (m *DefuncionMutation) ResetUsuarioRegistroID() {
	m.usuario_registro = nil
	delete(m.clearedFields, defuncion.FieldUsuarioRegistroID)
}

// ClearMadre clears the "madre" edge to the Madre entity.
func (m *DefuncionMutation) ClearMadre() {
	m.clearedmadre = true
	m.clearedFields[defuncion.FieldMadreID] = struct{}{}
}

// MadreCleared reports if the "madre" edge to the Madre entity was cleared.
func (m *DefuncionMutation) MadreCleared() bool {
	return m.MadreIDCleared() || m.clearedmadre
}

// MadreIDs returns the "madre" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MadreID instead. It exists only for internal usage by the builders.
func (m *DefuncionMutation) MadreIDs() (ids []uuid.UUID) {
	if id := m.madre; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMadre resets all changes to the "madre" edge.
func (m *DefuncionMutation) ResetMadre() {
	m.madre = nil
	m.clearedmadre = false
}

// ClearRecienNacido clears the "recien_nacido" edge to the RecienNacido entity.
func (m *DefuncionMutation) ClearRecienNacido() {
	m.clearedrecien_nacido = true
	m.clearedFields[defuncion.FieldRecienNacidoID] = struct{}{}
}

// RecienNacidoCleared reports if the "recien_nacido" edge to the RecienNacido entity was cleared.
func (m *DefuncionMutation) RecienNacidoCleared() bool {
	return m.RecienNacidoIDCleared() || m.clearedrecien_nacido
}

// RecienNacidoIDs returns the "recien_nacido" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecienNacidoID instead. It exists only for internal usage by the builders.
func (m *DefuncionMutation) RecienNacidoIDs() (ids []uuid.UUID) {
	if id := m.recien_nacido; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecienNacido resets all changes to the "recien_nacido" edge.
func (m *DefuncionMutation) ResetRecienNacido() {
	m.recien_nacido = nil
	m.clearedrecien_nacido = false
}

// ClearCausaDefuncion clears the "causa_defuncion" edge to the DiagnosticoCIE10 entity.
func (m *DefuncionMutation) ClearCausaDefuncion() {
	m.clearedcausa_defuncion = true
	m.clearedFields[defuncion.FieldCausaDefuncionID] = struct{}{}
}

// CausaDefuncionCleared reports if the "causa_defuncion" edge to the DiagnosticoCIE10 entity was cleared.
func (m *DefuncionMutation) CausaDefuncionCleared() bool {
	return m.clearedcausa_defuncion
}

// CausaDefuncionIDs returns the "causa_defuncion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CausaDefuncionID instead. It exists only for internal usage by the builders.
func (m *DefuncionMutation) CausaDefuncionIDs() (ids []uuid.UUID) {
	if id := m.causa_defuncion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCausaDefuncion resets all changes to the "causa_defuncion" edge.
func (m *DefuncionMutation) ResetCausaDefuncion() {
	m.causa_defuncion = nil
	m.clearedcausa_defuncion = false
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (m *DefuncionMutation) ClearUsuarioRegistro() {
	m.clearedusuario_registro = true
	m.clearedFields[defuncion.FieldUsuarioRegistroID] = struct{}{}
}

// UsuarioRegistroCleared reports if the "usuario_registro" edge to the Usuario entity was cleared.
func (m *DefuncionMutation) UsuarioRegistroCleared() bool {
	return m.UsuarioRegistroIDCleared() || m.clearedusuario_registro
}

// UsuarioRegistroIDs returns the "usuario_registro" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UsuarioRegistroID instead. It exists only for internal usage by the builders.
func (m *DefuncionMutation) UsuarioRegistroIDs() (ids []uuid.UUID) {
	if id := m.usuario_registro; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUsuarioRegistro resets all changes to the "usuario_registro" edge.
func (m *DefuncionMutation) ResetUsuarioRegistro() {
	m.usuario_registro = nil
	m.clearedusuario_registro = false
}

// Where appends a list predicates to the DefuncionMutation builder.
func (m *DefuncionMutation) Where(ps ...predicate.Defuncion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DefuncionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DefuncionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Defuncion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DefuncionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DefuncionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Defuncion).
func (m *DefuncionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DefuncionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, defuncion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, defuncion.FieldUpdatedAt)
	}
	if m.madre != nil {
		fields = append(fields, defuncion.FieldMadreID)
	}
	if m.recien_nacido != nil {
		fields = append(fields, defuncion.FieldRecienNacidoID)
	}
	if m.fecha_defuncion != nil {
		fields = append(fields, defuncion.FieldFechaDefuncion)
	}
	if m.causa_defuncion != nil {
		fields = append(fields, defuncion.FieldCausaDefuncionID)
	}
	if m.usuario_registro != nil {
		fields = append(fields, defuncion.FieldUsuarioRegistroID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DefuncionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case defuncion.FieldCreatedAt:
		return m.CreatedAt()
	case defuncion.FieldUpdatedAt:
		return m.UpdatedAt()
	case defuncion.FieldMadreID:
		return m.MadreID()
	case defuncion.FieldRecienNacidoID:
		return m.RecienNacidoID()
	case defuncion.FieldFechaDefuncion:
		return m.FechaDefuncion()
	case defuncion.FieldCausaDefuncionID:
		return m.CausaDefuncionID()
	case defuncion.FieldUsuarioRegistroID:
		return m.UsuarioRegistroID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DefuncionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case defuncion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case defuncion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case defuncion.FieldMadreID:
		return m.OldMadreID(ctx)
	case defuncion.FieldRecienNacidoID:
		return m.OldRecienNacidoID(ctx)
	case defuncion.FieldFechaDefuncion:
		return m.OldFechaDefuncion(ctx)
	case defuncion.FieldCausaDefuncionID:
		return m.OldCausaDefuncionID(ctx)
	case defuncion.FieldUsuarioRegistroID:
		return m.OldUsuarioRegistroID(ctx)
	}
	return nil, fmt.Errorf("unknown Defuncion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DefuncionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case defuncion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case defuncion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case defuncion.FieldMadreID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMadreID(v)
		return nil
	case defuncion.FieldRecienNacidoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecienNacidoID(v)
		return nil
	case defuncion.FieldFechaDefuncion:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaDefuncion(v)
		return nil
	case defuncion.FieldCausaDefuncionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausaDefuncionID(v)
		return nil
	case defuncion.FieldUsuarioRegistroID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioRegistroID(v)
		return nil
	}
	return fmt.Errorf("unknown Defuncion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DefuncionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DefuncionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DefuncionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Defuncion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DefuncionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(defuncion.FieldMadreID) {
		fields = append(fields, defuncion.FieldMadreID)
	}
	if m.FieldCleared(defuncion.FieldRecienNacidoID) {
		fields = append(fields, defuncion.FieldRecienNacidoID)
	}
	if m.FieldCleared(defuncion.FieldUsuarioRegistroID) {
		fields = append(fields, defuncion.FieldUsuarioRegistroID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DefuncionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DefuncionMutation) ClearField(name string) error {
	switch name {
	case defuncion.FieldMadreID:
		m.ClearMadreID()
		return nil
	case defuncion.FieldRecienNacidoID:
		m.ClearRecienNacidoID()
		return nil
	case defuncion.FieldUsuarioRegistroID:
		m.ClearUsuarioRegistroID()
		return nil
	}
	return fmt.Errorf("unknown Defuncion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DefuncionMutation) ResetField(name string) error {
	switch name {
	case defuncion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case defuncion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case defuncion.FieldMadreID:
		m.ResetMadreID()
		return nil
	case defuncion.FieldRecienNacidoID:
		m.ResetRecienNacidoID()
		return nil
	case defuncion.FieldFechaDefuncion:
		m.ResetFechaDefuncion()
		return nil
	case defuncion.FieldCausaDefuncionID:
		m.ResetCausaDefuncionID()
		return nil
	case defuncion.FieldUsuarioRegistroID:
		m.ResetUsuarioRegistroID()
		return nil
	}
	return fmt.Errorf("unknown Defuncion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DefuncionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.madre != nil {
		edges = append(edges, defuncion.EdgeMadre)
	}
	if m.recien_nacido != nil {
		edges = append(edges, defuncion.EdgeRecienNacido)
	}
	if m.causa_defuncion != nil {
		edges = append(edges, defuncion.EdgeCausaDefuncion)
	}
	if m.usuario_registro != nil {
		edges = append(edges, defuncion.EdgeUsuarioRegistro)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DefuncionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case defuncion.EdgeMadre:
		if id := m.madre; id != nil {
			return []ent.Value{*id}
		}
	case defuncion.EdgeRecienNacido:
		if id := m.recien_nacido; id != nil {
			return []ent.Value{*id}
		}
	case defuncion.EdgeCausaDefuncion:
		if id := m.causa_defuncion; id != nil {
			return []ent.Value{*id}
		}
	case defuncion.EdgeUsuarioRegistro:
		if id := m.usuario_registro; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DefuncionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DefuncionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DefuncionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmadre {
		edges = append(edges, defuncion.EdgeMadre)
	}
	if m.clearedrecien_nacido {
		edges = append(edges, defuncion.EdgeRecienNacido)
	}
	if m.clearedcausa_defuncion {
		edges = append(edges, defuncion.EdgeCausaDefuncion)
	}
	if m.clearedusuario_registro {
		edges = append(edges, defuncion.EdgeUsuarioRegistro)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DefuncionMutation) EdgeCleared(name string) bool {
	switch name {
	case defuncion.EdgeMadre:
		return m.clearedmadre
	case defuncion.EdgeRecienNacido:
		return m.clearedrecien_nacido
	case defuncion.EdgeCausaDefuncion:
		return m.clearedcausa_defuncion
	case defuncion.EdgeUsuarioRegistro:
		return m.clearedusuario_registro
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DefuncionMutation) ClearEdge(name string) error {
	switch name {
	case defuncion.EdgeMadre:
		m.ClearMadre()
		return nil
	case defuncion.EdgeRecienNacido:
		m.ClearRecienNacido()
		return nil
	case defuncion.EdgeCausaDefuncion:
		m.ClearCausaDefuncion()
		return nil
	case defuncion.EdgeUsuarioRegistro:
		m.ClearUsuarioRegistro()
		return nil
	}
	return fmt.Errorf("unknown Defuncion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DefuncionMutation) ResetEdge(name string) error {
	switch name {
	case defuncion.EdgeMadre:
		m.ResetMadre()
		return nil
	case defuncion.EdgeRecienNacido:
		m.ResetRecienNacido()
		return nil
	case defuncion.EdgeCausaDefuncion:
		m.ResetCausaDefuncion()
		return nil
	case defuncion.EdgeUsuarioRegistro:
		m.ResetUsuarioRegistro()
		return nil
	}
	return fmt.Errorf("unknown Defuncion edge %s", name)
}

// DiagnosticoCIE10Mutation represents an operation that mutates the DiagnosticoCIE10 nodes in the graph.
type DiagnosticoCIE10Mutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	updated_at                *time.Time
	codigo                    *string
	descripcion               *string
	clearedFields             map[string]struct{}
	parto_diagnosticos        map[uuid.UUID]struct{}
	removedparto_diagnosticos map[uuid.UUID]struct{}
	clearedparto_diagnosticos bool
	defunciones               map[uuid.UUID]struct{}
	removeddefunciones        map[uuid.UUID]struct{}
	cleareddefunciones        bool
	done                      bool
	oldValue                  func(context.Context) (*DiagnosticoCIE10, error)
	predicates                []predicate.DiagnosticoCIE10
}

var _ ent.Mutation = (*DiagnosticoCIE10Mutation)(nil)

// diagnosticocie10Option allows management of the mutation configuration using functional options.
type diagnosticocie10Option func(*DiagnosticoCIE10Mutation)

// newDiagnosticoCIE10Mutation creates new mutation for the DiagnosticoCIE10 entity.
func newDiagnosticoCIE10Mutation(c config, op Op, opts ...diagnosticocie10Option) *DiagnosticoCIE10Mutation {
	m := &DiagnosticoCIE10Mutation{
		config:        c,
		op:            op,
		typ:           TypeDiagnosticoCIE10,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiagnosticoCIE10ID sets the ID field of the mutation.
func withDiagnosticoCIE10ID(id uuid.UUID) diagnosticocie10Option {
	return func(m *DiagnosticoCIE10Mutation) {
		var (
			err   error
			once  sync.Once
			value *DiagnosticoCIE10
		)
		m.oldValue = func(ctx context.Context) (*DiagnosticoCIE10, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiagnosticoCIE10.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiagnosticoCIE10 sets the old DiagnosticoCIE10 of the mutation.
func withDiagnosticoCIE10(node *DiagnosticoCIE10) diagnosticocie10Option {
	return func(m *DiagnosticoCIE10Mutation) {
		m.oldValue = func(context.Context) (*DiagnosticoCIE10, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiagnosticoCIE10Mutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiagnosticoCIE10Mutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiagnosticoCIE10 entities.
func (m *DiagnosticoCIE10Mutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiagnosticoCIE10Mutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiagnosticoCIE10Mutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiagnosticoCIE10.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DiagnosticoCIE10Mutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DiagnosticoCIE10Mutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DiagnosticoCIE10 entity.
// If the DiagnosticoCIE10 object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticoCIE10Mutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DiagnosticoCIE10Mutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DiagnosticoCIE10Mutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DiagnosticoCIE10Mutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DiagnosticoCIE10 entity.
// If the DiagnosticoCIE10 object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticoCIE10Mutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DiagnosticoCIE10Mutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCodigo sets the "codigo" field.
func (m *DiagnosticoCIE10Mutation) SetCodigo(s string) {
	m.codigo = &s
}

// Codigo returns the value of the "codigo" field in the mutation.
func (m *DiagnosticoCIE10Mutation) Codigo() (r string, exists bool) {
	v := m.codigo
	if v == nil {
		return
	}
	return *v, true
}

// OldCodigo returns the old "codigo" field's value of the DiagnosticoCIE10 entity.
// If the DiagnosticoCIE10 object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticoCIE10Mutation) OldCodigo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodigo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodigo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodigo: %w", err)
	}
	return oldValue.Codigo, nil
}

// ResetCodigo resets all changes to the "codigo" field.
func (m *DiagnosticoCIE10Mutation) ResetCodigo() {
	m.codigo = nil
}

// SetDescripcion sets the "descripcion" field.
func (m *DiagnosticoCIE10Mutation) SetDescripcion(s string) {
	m.descripcion = &s
}

// Descripcion returns the value of the "descripcion" field in the mutation.
func (m *DiagnosticoCIE10Mutation) Descripcion() (r string, exists bool) {
	v := m.descripcion
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcion returns the old "descripcion" field's value of the DiagnosticoCIE10 entity.
// If the DiagnosticoCIE10 object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosticoCIE10Mutation) OldDescripcion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcion: %w", err)
	}
	return oldValue.Descripcion, nil
}

// ResetDescripcion resets all changes to the "descripcion" field.
func (m *DiagnosticoCIE10Mutation) ResetDescripcion() {
	m.descripcion = nil
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by ids.
func (m *DiagnosticoCIE10Mutation) AddPartoDiagnosticoIDs(ids ...uuid.UUID) {
	if m.parto_diagnosticos == nil {
		m.parto_diagnosticos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.parto_diagnosticos[ids[i]] = struct{}{}
	}
}

// ClearPartoDiagnosticos clears the "parto_diagnosticos" edge to the PartoDiagnostico entity.
func (m *DiagnosticoCIE10Mutation) ClearPartoDiagnosticos() {
	m.clearedparto_diagnosticos = true
}

// PartoDiagnosticosCleared reports if the "parto_diagnosticos" edge to the PartoDiagnostico entity was cleared.
func (m *DiagnosticoCIE10Mutation) PartoDiagnosticosCleared() bool {
	return m.clearedparto_diagnosticos
}

// RemovePartoDiagnosticoIDs removes the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (m *DiagnosticoCIE10Mutation) RemovePartoDiagnosticoIDs(ids ...uuid.UUID) {
	if m.removedparto_diagnosticos == nil {
		m.removedparto_diagnosticos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.parto_diagnosticos, ids[i])
		m.removedparto_diagnosticos[ids[i]] = struct{}{}
	}
}

// RemovedPartoDiagnosticos returns the removed IDs of the "parto_diagnosticos" edge to the PartoDiagnostico entity.
func (m *DiagnosticoCIE10Mutation) RemovedPartoDiagnosticosIDs() (ids []uuid.UUID) {
	for id := range m.removedparto_diagnosticos {
		ids = append(ids, id)
	}
	return
}

// PartoDiagnosticosIDs returns the "parto_diagnosticos" edge IDs in the mutation.
func (m *DiagnosticoCIE10Mutation) PartoDiagnosticosIDs() (ids []uuid.UUID) {
	for id := range m.parto_diagnosticos {
		ids = append(ids, id)
	}
	return
}

// ResetPartoDiagnosticos resets all changes to the "parto_diagnosticos" edge.
func (m *DiagnosticoCIE10Mutation) ResetPartoDiagnosticos() {
	m.parto_diagnosticos = nil
	m.clearedparto_diagnosticos = false
	m.removedparto_diagnosticos = nil
}

// AddDefuncioneIDs adds the "defunciones" edge to the Defuncion entity by ids.
func (m *DiagnosticoCIE10Mutation) AddDefuncioneIDs(ids ...uuid.UUID) {
	if m.defunciones == nil {
		m.defunciones = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.defunciones[ids[i]] = struct{}{}
	}
}

// ClearDefunciones clears the "defunciones" edge to the Defuncion entity.
func (m *DiagnosticoCIE10Mutation) ClearDefunciones() {
	m.cleareddefunciones = true
}

// DefuncionesCleared reports if the "defunciones" edge to the Defuncion entity was cleared.
func (m *DiagnosticoCIE10Mutation) DefuncionesCleared() bool {
	return m.cleareddefunciones
}

// RemoveDefuncioneIDs removes the "defunciones" edge to the Defuncion entity by IDs.
func (m *DiagnosticoCIE10Mutation) RemoveDefuncioneIDs(ids ...uuid.UUID) {
	if m.removeddefunciones == nil {
		m.removeddefunciones = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.defunciones, ids[i])
		m.removeddefunciones[ids[i]] = struct{}{}
	}
}

// RemovedDefunciones returns the removed IDs of the "defunciones" edge to the Defuncion entity.
func (m *DiagnosticoCIE10Mutation) RemovedDefuncionesIDs() (ids []uuid.UUID) {
	for id := range m.removeddefunciones {
		ids = append(ids, id)
	}
	return
}

// DefuncionesIDs returns the "defunciones" edge IDs in the mutation.
func (m *DiagnosticoCIE10Mutation) DefuncionesIDs() (ids []uuid.UUID) {
	for id := range m.defunciones {
		ids = append(ids, id)
	}
	return
}

// ResetDefunciones resets all changes to the "defunciones" edge.
func (m *DiagnosticoCIE10Mutation) ResetDefunciones() {
	m.defunciones = nil
	m.cleareddefunciones = false
	m.removeddefunciones = nil
}

// Where appends a list predicates to the DiagnosticoCIE10Mutation builder.
func (m *DiagnosticoCIE10Mutation) Where(ps ...predicate.DiagnosticoCIE10) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiagnosticoCIE10Mutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiagnosticoCIE10Mutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiagnosticoCIE10, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiagnosticoCIE10Mutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiagnosticoCIE10Mutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiagnosticoCIE10).
func (m *DiagnosticoCIE10Mutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiagnosticoCIE10Mutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, diagnosticocie10.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, diagnosticocie10.FieldUpdatedAt)
	}
	if m.codigo != nil {
		fields = append(fields, diagnosticocie10.FieldCodigo)
	}
	if m.descripcion != nil {
		fields = append(fields, diagnosticocie10.FieldDescripcion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiagnosticoCIE10Mutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diagnosticocie10.FieldCreatedAt:
		return m.CreatedAt()
	case diagnosticocie10.FieldUpdatedAt:
		return m.UpdatedAt()
	case diagnosticocie10.FieldCodigo:
		return m.Codigo()
	case diagnosticocie10.FieldDescripcion:
		return m.Descripcion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiagnosticoCIE10Mutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diagnosticocie10.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case diagnosticocie10.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case diagnosticocie10.FieldCodigo:
		return m.OldCodigo(ctx)
	case diagnosticocie10.FieldDescripcion:
		return m.OldDescripcion(ctx)
	}
	return nil, fmt.Errorf("unknown DiagnosticoCIE10 field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosticoCIE10Mutation) SetField(name string, value ent.Value) error {
	switch name {
	case diagnosticocie10.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case diagnosticocie10.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case diagnosticocie10.FieldCodigo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodigo(v)
		return nil
	case diagnosticocie10.FieldDescripcion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcion(v)
		return nil
	}
	return fmt.Errorf("unknown DiagnosticoCIE10 field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiagnosticoCIE10Mutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiagnosticoCIE10Mutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosticoCIE10Mutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DiagnosticoCIE10 numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiagnosticoCIE10Mutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiagnosticoCIE10Mutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiagnosticoCIE10Mutation) ClearField(name string) error {
	return fmt.Errorf("unknown DiagnosticoCIE10 nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiagnosticoCIE10Mutation) ResetField(name string) error {
	switch name {
	case diagnosticocie10.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case diagnosticocie10.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case diagnosticocie10.FieldCodigo:
		m.ResetCodigo()
		return nil
	case diagnosticocie10.FieldDescripcion:
		m.ResetDescripcion()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticoCIE10 field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiagnosticoCIE10Mutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.parto_diagnosticos != nil {
		edges = append(edges, diagnosticocie10.EdgePartoDiagnosticos)
	}
	if m.defunciones != nil {
		edges = append(edges, diagnosticocie10.EdgeDefunciones)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiagnosticoCIE10Mutation) AddedIDs(name string) []ent.Value {
	switch name {
	case diagnosticocie10.EdgePartoDiagnosticos:
		ids := make([]ent.Value, 0, len(m.parto_diagnosticos))
		for id := range m.parto_diagnosticos {
			ids = append(ids, id)
		}
		return ids
	case diagnosticocie10.EdgeDefunciones:
		ids := make([]ent.Value, 0, len(m.defunciones))
		for id := range m.defunciones {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiagnosticoCIE10Mutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparto_diagnosticos != nil {
		edges = append(edges, diagnosticocie10.EdgePartoDiagnosticos)
	}
	if m.removeddefunciones != nil {
		edges = append(edges, diagnosticocie10.EdgeDefunciones)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiagnosticoCIE10Mutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case diagnosticocie10.EdgePartoDiagnosticos:
		ids := make([]ent.Value, 0, len(m.removedparto_diagnosticos))
		for id := range m.removedparto_diagnosticos {
			ids = append(ids, id)
		}
		return ids
	case diagnosticocie10.EdgeDefunciones:
		ids := make([]ent.Value, 0, len(m.removeddefunciones))
		for id := range m.removeddefunciones {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiagnosticoCIE10Mutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparto_diagnosticos {
		edges = append(edges, diagnosticocie10.EdgePartoDiagnosticos)
	}
	if m.cleareddefunciones {
		edges = append(edges, diagnosticocie10.EdgeDefunciones)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiagnosticoCIE10Mutation) EdgeCleared(name string) bool {
	switch name {
	case diagnosticocie10.EdgePartoDiagnosticos:
		return m.clearedparto_diagnosticos
	case diagnosticocie10.EdgeDefunciones:
		return m.cleareddefunciones
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiagnosticoCIE10Mutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DiagnosticoCIE10 unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiagnosticoCIE10Mutation) ResetEdge(name string) error {
	switch name {
	case diagnosticocie10.EdgePartoDiagnosticos:
		m.ResetPartoDiagnosticos()
		return nil
	case diagnosticocie10.EdgeDefunciones:
		m.ResetDefunciones()
		return nil
	}
	return fmt.Errorf("unknown DiagnosticoCIE10 edge %s", name)
}

// DocumentoReferenciaMutation represents an operation that mutates the DocumentoReferencia nodes in the graph.
type DocumentoReferenciaMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	mongodb_object_id         *string
	nombre_archivo            *string
	tipo_documento            *documentoreferencia.TipoDocumento
	clearedFields             map[string]struct{}
	parto                     *uuid.UUID
	clearedparto              bool
	usuario_generacion        *uuid.UUID
	clearedusuario_generacion bool
	done                      bool
	oldValue                  func(context.Context) (*DocumentoReferencia, error)
	predicates                []predicate.DocumentoReferencia
}

var _ ent.Mutation = (*DocumentoReferenciaMutation)(nil)

// documentoreferenciaOption allows management of the mutation configuration using functional options.
type documentoreferenciaOption func(*DocumentoReferenciaMutation)

// newDocumentoReferenciaMutation creates new mutation for the DocumentoReferencia entity.
func newDocumentoReferenciaMutation(c config, op Op, opts ...documentoreferenciaOption) *DocumentoReferenciaMutation {
	m := &DocumentoReferenciaMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentoReferencia,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentoReferenciaID sets the ID field of the mutation.
func withDocumentoReferenciaID(id uuid.UUID) documentoreferenciaOption {
	return func(m *DocumentoReferenciaMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentoReferencia
		)
		m.oldValue = func(ctx context.Context) (*DocumentoReferencia, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentoReferencia.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentoReferencia sets the old DocumentoReferencia of the mutation.
func withDocumentoReferencia(node *DocumentoReferencia) documentoreferenciaOption {
	return func(m *DocumentoReferenciaMutation) {
		m.oldValue = func(context.Context) (*DocumentoReferencia, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentoReferenciaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentoReferenciaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentoReferencia entities.
func (m *DocumentoReferenciaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentoReferenciaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentoReferenciaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentoReferencia.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentoReferenciaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentoReferenciaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentoReferencia entity.
// If the DocumentoReferencia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentoReferenciaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentoReferenciaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPartoID sets the "parto_id" field.
func (m *DocumentoReferenciaMutation) SetPartoID(u uuid.UUID) {
	m.parto = &u
}

// PartoID returns the value of the "parto_id" field in the mutation.
func (m *DocumentoReferenciaMutation) PartoID() (r uuid.UUID, exists bool) {
	v := m.parto
	if v == nil {
		return
	}
	return *v, true
}

// OldPartoID returns the old "parto_id" field's value of the DocumentoReferencia entity.
// If the DocumentoReferencia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentoReferenciaMutation) OldPartoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartoID: %w", err)
	}
	return oldValue.PartoID, nil
}

// ResetPartoID resets all changes to the "parto_id" field.
func (m *DocumentoReferenciaMutation) ResetPartoID() {
	m.parto = nil
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (m *DocumentoReferenciaMutation) SetMongodbObjectID(s string) {
	m.mongodb_object_id = &s
}

// MongodbObjectID returns the value of the "mongodb_object_id" field in the mutation.
func (m *DocumentoReferenciaMutation) MongodbObjectID() (r string, exists bool) {
	v := m.mongodb_object_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMongodbObjectID returns the old "mongodb_object_id" field's value of the DocumentoReferencia entity.
// If the DocumentoReferencia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentoReferenciaMutation) OldMongodbObjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMongodbObjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMongodbObjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMongodbObjectID: %w", err)
	}
	return oldValue.MongodbObjectID, nil
}

// ResetMongodbObjectID resets all changes to the "mongodb_object_id" field.
func (m *DocumentoReferenciaMutation) ResetMongodbObjectID() {
	m.mongodb_object_id = nil
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (m *DocumentoReferenciaMutation) SetNombreArchivo(s string) {
	m.nombre_archivo = &s
}

// NombreArchivo returns the value of the "nombre_archivo" field in the mutation.
func (m *DocumentoReferenciaMutation) NombreArchivo() (r string, exists bool) {
	v := m.nombre_archivo
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreArchivo returns the old "nombre_archivo" field's value of the DocumentoReferencia entity.
// If the DocumentoReferencia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentoReferenciaMutation) OldNombreArchivo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreArchivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreArchivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreArchivo: %w", err)
	}
	return oldValue.NombreArchivo, nil
}

// ResetNombreArchivo resets all changes to the "nombre_archivo" field.
func (m *DocumentoReferenciaMutation) ResetNombreArchivo() {
	m.nombre_archivo = nil
}

// SetTipoDocumento sets the "tipo_documento" field.
func (m *DocumentoReferenciaMutation) SetTipoDocumento(dd documentoreferencia.TipoDocumento) {
	m.tipo_documento = &dd
}

// TipoDocumento returns the value of the "tipo_documento" field in the mutation.
func (m *DocumentoReferenciaMutation) TipoDocumento() (r documentoreferencia.TipoDocumento, exists bool) {
	v := m.tipo_documento
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoDocumento returns the old "tipo_documento" field's value of the DocumentoReferencia entity.
// If the DocumentoReferencia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentoReferenciaMutation) OldTipoDocumento(ctx context.Context) (v documentoreferencia.TipoDocumento, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoDocumento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoDocumento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoDocumento: %w", err)
	}
	return oldValue.TipoDocumento, nil
}

// ResetTipoDocumento resets all changes to the "tipo_documento" field.
func (m *DocumentoReferenciaMutation) ResetTipoDocumento() {
	m.tipo_documento = nil
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (m *DocumentoReferenciaMutation) SetUsuarioGeneracionID(u uuid.UUID) {
	m.usuario_generacion = &u
}

// UsuarioGeneracionID returns the value of the "usuario_generacion_id" field in the mutation.
func (m *DocumentoReferenciaMutation) UsuarioGeneracionID() (r uuid.UUID, exists bool) {
	v := m.usuario_generacion
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioGeneracionID returns the old "usuario_generacion_id" field's value of the DocumentoReferencia entity.
// If the DocumentoReferencia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentoReferenciaMutation) OldUsuarioGeneracionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioGeneracionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioGeneracionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioGeneracionID: %w", err)
	}
	return oldValue.UsuarioGeneracionID, nil
}

// ClearUsuarioGeneracionID clears the value of the "usuario_generacion_id" field.
func (m *DocumentoReferenciaMutation) ClearUsuarioGeneracionID() {
	m.usuario_generacion = nil
	m.clearedFields[documentoreferencia.FieldUsuarioGeneracionID] = struct{}{}
}

// UsuarioGeneracionIDCleared returns if the "usuario_generacion_id" field was cleared in this mutation.
func (m *DocumentoReferenciaMutation) UsuarioGeneracionIDCleared() bool {
	_, ok := m.clearedFields[documentoreferencia.FieldUsuarioGeneracionID]
	return ok
}

// ResetUsuarioGeneracionID resets all changes to the "usuario_generacion_id" field.
func (m *DocumentoReferenciaMutation) ResetUsuarioGeneracionID() {
	m.usuario_generacion = nil
	delete(m.clearedFields, documentoreferencia.FieldUsuarioGeneracionID)
}

// ClearParto clears the "parto" edge to the Parto entity.
func (m *DocumentoReferenciaMutation) ClearParto() {
	m.clearedparto = true
	m.clearedFields[documentoreferencia.FieldPartoID] = struct{}{}
}

// PartoCleared reports if the "parto" edge to the Parto entity was cleared.
func (m *DocumentoReferenciaMutation) PartoCleared() bool {
	return m.clearedparto
}

// PartoIDs returns the "parto" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PartoID instead. It exists only for internal usage by the builders.
func (m *DocumentoReferenciaMutation) PartoIDs() (ids []uuid.UUID) {
	if id := m.parto; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParto resets all changes to the "parto" edge.
func (m *DocumentoReferenciaMutation) ResetParto() {
	m.parto = nil
	m.clearedparto = false
}

// ClearUsuarioGeneracion clears the "usuario_generacion" edge to the Usuario entity.
func (m *DocumentoReferenciaMutation) ClearUsuarioGeneracion() {
	m.clearedusuario_generacion = true
	m.clearedFields[documentoreferencia.FieldUsuarioGeneracionID] = struct{}{}
}

// UsuarioGeneracionCleared reports if the "usuario_generacion" edge to the Usuario entity was cleared.
func (m *DocumentoReferenciaMutation) UsuarioGeneracionCleared() bool {
	return m.UsuarioGeneracionIDCleared() || m.clearedusuario_generacion
}

// UsuarioGeneracionIDs returns the "usuario_generacion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UsuarioGeneracionID instead. It exists only for internal usage by the builders.
func (m *DocumentoReferenciaMutation) UsuarioGeneracionIDs() (ids []uuid.UUID) {
	if id := m.usuario_generacion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUsuarioGeneracion resets all changes to the "usuario_generacion" edge.
func (m *DocumentoReferenciaMutation) ResetUsuarioGeneracion() {
	m.usuario_generacion = nil
	m.clearedusuario_generacion = false
}

// Where appends a list predicates to the DocumentoReferenciaMutation builder.
func (m *DocumentoReferenciaMutation) Where(ps ...predicate.DocumentoReferencia) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentoReferenciaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentoReferenciaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentoReferencia, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentoReferenciaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentoReferenciaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentoReferencia).
func (m *DocumentoReferenciaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentoReferenciaMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, documentoreferencia.FieldCreatedAt)
	}
	if m.parto != nil {
		fields = append(fields, documentoreferencia.FieldPartoID)
	}
	if m.mongodb_object_id != nil {
		fields = append(fields, documentoreferencia.FieldMongodbObjectID)
	}
	if m.nombre_archivo != nil {
		fields = append(fields, documentoreferencia.FieldNombreArchivo)
	}
	if m.tipo_documento != nil {
		fields = append(fields, documentoreferencia.FieldTipoDocumento)
	}
	if m.usuario_generacion != nil {
		fields = append(fields, documentoreferencia.FieldUsuarioGeneracionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentoReferenciaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentoreferencia.FieldCreatedAt:
		return m.CreatedAt()
	case documentoreferencia.FieldPartoID:
		return m.PartoID()
	case documentoreferencia.FieldMongodbObjectID:
		return m.MongodbObjectID()
	case documentoreferencia.FieldNombreArchivo:
		return m.NombreArchivo()
	case documentoreferencia.FieldTipoDocumento:
		return m.TipoDocumento()
	case documentoreferencia.FieldUsuarioGeneracionID:
		return m.UsuarioGeneracionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentoReferenciaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentoreferencia.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documentoreferencia.FieldPartoID:
		return m.OldPartoID(ctx)
	case documentoreferencia.FieldMongodbObjectID:
		return m.OldMongodbObjectID(ctx)
	case documentoreferencia.FieldNombreArchivo:
		return m.OldNombreArchivo(ctx)
	case documentoreferencia.FieldTipoDocumento:
		return m.OldTipoDocumento(ctx)
	case documentoreferencia.FieldUsuarioGeneracionID:
		return m.OldUsuarioGeneracionID(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentoReferencia field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentoReferenciaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentoreferencia.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documentoreferencia.FieldPartoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartoID(v)
		return nil
	case documentoreferencia.FieldMongodbObjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMongodbObjectID(v)
		return nil
	case documentoreferencia.FieldNombreArchivo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreArchivo(v)
		return nil
	case documentoreferencia.FieldTipoDocumento:
		v, ok := value.(documentoreferencia.TipoDocumento)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoDocumento(v)
		return nil
	case documentoreferencia.FieldUsuarioGeneracionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioGeneracionID(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentoReferencia field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentoReferenciaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentoReferenciaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentoReferenciaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentoReferencia numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentoReferenciaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentoreferencia.FieldUsuarioGeneracionID) {
		fields = append(fields, documentoreferencia.FieldUsuarioGeneracionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentoReferenciaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentoReferenciaMutation) ClearField(name string) error {
	switch name {
	case documentoreferencia.FieldUsuarioGeneracionID:
		m.ClearUsuarioGeneracionID()
		return nil
	}
	return fmt.Errorf("unknown DocumentoReferencia nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentoReferenciaMutation) ResetField(name string) error {
	switch name {
	case documentoreferencia.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documentoreferencia.FieldPartoID:
		m.ResetPartoID()
		return nil
	case documentoreferencia.FieldMongodbObjectID:
		m.ResetMongodbObjectID()
		return nil
	case documentoreferencia.FieldNombreArchivo:
		m.ResetNombreArchivo()
		return nil
	case documentoreferencia.FieldTipoDocumento:
		m.ResetTipoDocumento()
		return nil
	case documentoreferencia.FieldUsuarioGeneracionID:
		m.ResetUsuarioGeneracionID()
		return nil
	}
	return fmt.Errorf("unknown DocumentoReferencia field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentoReferenciaMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.parto != nil {
		edges = append(edges, documentoreferencia.EdgeParto)
	}
	if m.usuario_generacion != nil {
		edges = append(edges, documentoreferencia.EdgeUsuarioGeneracion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentoReferenciaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentoreferencia.EdgeParto:
		if id := m.parto; id != nil {
			return []ent.Value{*id}
		}
	case documentoreferencia.EdgeUsuarioGeneracion:
		if id := m.usuario_generacion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentoReferenciaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentoReferenciaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentoReferenciaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparto {
		edges = append(edges, documentoreferencia.EdgeParto)
	}
	if m.clearedusuario_generacion {
		edges = append(edges, documentoreferencia.EdgeUsuarioGeneracion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentoReferenciaMutation) EdgeCleared(name string) bool {
	switch name {
	case documentoreferencia.EdgeParto:
		return m.clearedparto
	case documentoreferencia.EdgeUsuarioGeneracion:
		return m.clearedusuario_generacion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentoReferenciaMutation) ClearEdge(name string) error {
	switch name {
	case documentoreferencia.EdgeParto:
		m.ClearParto()
		return nil
	case documentoreferencia.EdgeUsuarioGeneracion:
		m.ClearUsuarioGeneracion()
		return nil
	}
	return fmt.Errorf("unknown DocumentoReferencia unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentoReferenciaMutation) ResetEdge(name string) error {
	switch name {
	case documentoreferencia.EdgeParto:
		m.ResetParto()
		return nil
	case documentoreferencia.EdgeUsuarioGeneracion:
		m.ResetUsuarioGeneracion()
		return nil
	}
	return fmt.Errorf("unknown DocumentoReferencia edge %s", name)
}

// LogAuditoriaMutation represents an operation that mutates the LogAuditoria nodes in the graph.
type LogAuditoriaMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	accion         *string
	tabla_afectada *string
	registro_id    *uuid.UUID
	detalles       *map[string]interface{}
	ip_usuario     *string
	fecha_accion   *time.Time
	clearedFields  map[string]struct{}
	usuario        *uuid.UUID
	clearedusuario bool
	done           bool
	oldValue       func(context.Context) (*LogAuditoria, error)
	predicates     []predicate.LogAuditoria
}

var _ ent.Mutation = (*LogAuditoriaMutation)(nil)

// logauditoriaOption allows management of the mutation configuration using functional options.
type logauditoriaOption func(*LogAuditoriaMutation)

// newLogAuditoriaMutation creates new mutation for the LogAuditoria entity.
func newLogAuditoriaMutation(c config, op Op, opts ...logauditoriaOption) *LogAuditoriaMutation {
	m := &LogAuditoriaMutation{
		config:        c,
		op:            op,
		typ:           TypeLogAuditoria,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogAuditoriaID sets the ID field of the mutation.
func withLogAuditoriaID(id uuid.UUID) logauditoriaOption {
	return func(m *LogAuditoriaMutation) {
		var (
			err   error
			once  sync.Once
			value *LogAuditoria
		)
		m.oldValue = func(ctx context.Context) (*LogAuditoria, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogAuditoria.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogAuditoria sets the old LogAuditoria of the mutation.
func withLogAuditoria(node *LogAuditoria) logauditoriaOption {
	return func(m *LogAuditoriaMutation) {
		m.oldValue = func(context.Context) (*LogAuditoria, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogAuditoriaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogAuditoriaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LogAuditoria entities.
func (m *LogAuditoriaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogAuditoriaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogAuditoriaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogAuditoria.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsuarioID sets the "usuario_id" field.
func (m *LogAuditoriaMutation) SetUsuarioID(u uuid.UUID) {
	m.usuario = &u
}

// UsuarioID returns the value of the "usuario_id" field in the mutation.
func (m *LogAuditoriaMutation) UsuarioID() (r uuid.UUID, exists bool) {
	v := m.usuario
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioID returns the old "usuario_id" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldUsuarioID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioID: %w", err)
	}
	return oldValue.UsuarioID, nil
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (m *LogAuditoriaMutation) ClearUsuarioID() {
	m.usuario = nil
	m.clearedFields[logauditoria.FieldUsuarioID] = struct{}{}
}

// UsuarioIDCleared returns if the "usuario_id" field was cleared in this mutation.
func (m *LogAuditoriaMutation) UsuarioIDCleared() bool {
	_, ok := m.clearedFields[logauditoria.FieldUsuarioID]
	return ok
}

// ResetUsuarioID resets all changes to the "usuario_id" field.
func (m *LogAuditoriaMutation) ResetUsuarioID() {
	m.usuario = nil
	delete(m.clearedFields, logauditoria.FieldUsuarioID)
}

// SetAccion sets the "accion" field.
func (m *LogAuditoriaMutation) SetAccion(s string) {
	m.accion = &s
}

// Accion returns the value of the "accion" field in the mutation.
func (m *LogAuditoriaMutation) Accion() (r string, exists bool) {
	v := m.accion
	if v == nil {
		return
	}
	return *v, true
}

// OldAccion returns the old "accion" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldAccion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccion: %w", err)
	}
	return oldValue.Accion, nil
}

// ResetAccion resets all changes to the "accion" field.
func (m *LogAuditoriaMutation) ResetAccion() {
	m.accion = nil
}

// SetTablaAfectada sets the "tabla_afectada" field.
func (m *LogAuditoriaMutation) SetTablaAfectada(s string) {
	m.tabla_afectada = &s
}

// TablaAfectada returns the value of the "tabla_afectada" field in the mutation.
func (m *LogAuditoriaMutation) TablaAfectada() (r string, exists bool) {
	v := m.tabla_afectada
	if v == nil {
		return
	}
	return *v, true
}

// OldTablaAfectada returns the old "tabla_afectada" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldTablaAfectada(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTablaAfectada is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTablaAfectada requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTablaAfectada: %w", err)
	}
	return oldValue.TablaAfectada, nil
}

// ClearTablaAfectada clears the value of the "tabla_afectada" field.
func (m *LogAuditoriaMutation) ClearTablaAfectada() {
	m.tabla_afectada = nil
	m.clearedFields[logauditoria.FieldTablaAfectada] = struct{}{}
}

// TablaAfectadaCleared returns if the "tabla_afectada" field was cleared in this mutation.
func (m *LogAuditoriaMutation) TablaAfectadaCleared() bool {
	_, ok := m.clearedFields[logauditoria.FieldTablaAfectada]
	return ok
}

// ResetTablaAfectada resets all changes to the "tabla_afectada" field.
func (m *LogAuditoriaMutation) ResetTablaAfectada() {
	m.tabla_afectada = nil
	delete(m.clearedFields, logauditoria.FieldTablaAfectada)
}

// SetRegistroID sets the "registro_id" field.
func (m *LogAuditoriaMutation) SetRegistroID(u uuid.UUID) {
	m.registro_id = &u
}

// RegistroID returns the value of the "registro_id" field in the mutation.
func (m *LogAuditoriaMutation) RegistroID() (r uuid.UUID, exists bool) {
	v := m.registro_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistroID returns the old "registro_id" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldRegistroID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistroID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistroID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistroID: %w", err)
	}
	return oldValue.RegistroID, nil
}

// ClearRegistroID clears the value of the "registro_id" field.
func (m *LogAuditoriaMutation) ClearRegistroID() {
	m.registro_id = nil
	m.clearedFields[logauditoria.FieldRegistroID] = struct{}{}
}

// RegistroIDCleared returns if the "registro_id" field was cleared in this mutation.
func (m *LogAuditoriaMutation) RegistroIDCleared() bool {
	_, ok := m.clearedFields[logauditoria.FieldRegistroID]
	return ok
}

// ResetRegistroID resets all changes to the "registro_id" field.
func (m *LogAuditoriaMutation) ResetRegistroID() {
	m.registro_id = nil
	delete(m.clearedFields, logauditoria.FieldRegistroID)
}

// SetDetalles sets the "detalles" field.
func (m *LogAuditoriaMutation) SetDetalles(value map[string]interface{}) {
	m.detalles = &value
}

// Detalles returns the value of the "detalles" field in the mutation.
func (m *LogAuditoriaMutation) Detalles() (r map[string]interface{}, exists bool) {
	v := m.detalles
	if v == nil {
		return
	}
	return *v, true
}

// OldDetalles returns the old "detalles" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldDetalles(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetalles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetalles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetalles: %w", err)
	}
	return oldValue.Detalles, nil
}

// ClearDetalles clears the value of the "detalles" field.
func (m *LogAuditoriaMutation) ClearDetalles() {
	m.detalles = nil
	m.clearedFields[logauditoria.FieldDetalles] = struct{}{}
}

// DetallesCleared returns if the "detalles" field was cleared in this mutation.
func (m *LogAuditoriaMutation) DetallesCleared() bool {
	_, ok := m.clearedFields[logauditoria.FieldDetalles]
	return ok
}

// ResetDetalles resets all changes to the "detalles" field.
func (m *LogAuditoriaMutation) ResetDetalles() {
	m.detalles = nil
	delete(m.clearedFields, logauditoria.FieldDetalles)
}

// SetIPUsuario sets the "ip_usuario" field.
func (m *LogAuditoriaMutation) SetIPUsuario(s string) {
	m.ip_usuario = &s
}

// IPUsuario returns the value of the "ip_usuario" field in the mutation.
func (m *LogAuditoriaMutation) IPUsuario() (r string, exists bool) {
	v := m.ip_usuario
	if v == nil {
		return
	}
	return *v, true
}

// OldIPUsuario returns the old "ip_usuario" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldIPUsuario(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPUsuario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPUsuario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPUsuario: %w", err)
	}
	return oldValue.IPUsuario, nil
}

// ClearIPUsuario clears the value of the "ip_usuario" field.
func (m *LogAuditoriaMutation) ClearIPUsuario() {
	m.ip_usuario = nil
	m.clearedFields[logauditoria.FieldIPUsuario] = struct{}{}
}

// IPUsuarioCleared returns if the "ip_usuario" field was cleared in this mutation.
func (m *LogAuditoriaMutation) IPUsuarioCleared() bool {
	_, ok := m.clearedFields[logauditoria.FieldIPUsuario]
	return ok
}

// ResetIPUsuario resets all changes to the "ip_usuario" field.
func (m *LogAuditoriaMutation) ResetIPUsuario() {
	m.ip_usuario = nil
	delete(m.clearedFields, logauditoria.FieldIPUsuario)
}

// SetFechaAccion sets the "fecha_accion" field.
func (m *LogAuditoriaMutation) SetFechaAccion(t time.Time) {
	m.fecha_accion = &t
}

// FechaAccion returns the value of the "fecha_accion" field in the mutation.
func (m *LogAuditoriaMutation) FechaAccion() (r time.Time, exists bool) {
	v := m.fecha_accion
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaAccion returns the old "fecha_accion" field's value of the LogAuditoria entity.
// If the LogAuditoria object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogAuditoriaMutation) OldFechaAccion(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaAccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaAccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaAccion: %w", err)
	}
	return oldValue.FechaAccion, nil
}

// ResetFechaAccion resets all changes to the "fecha_accion" field.
func (m *LogAuditoriaMutation) ResetFechaAccion() {
	m.fecha_accion = nil
}

// ClearUsuario clears the "usuario" edge to the Usuario entity.
func (m *LogAuditoriaMutation) ClearUsuario() {
	m.clearedusuario = true
	m.clearedFields[logauditoria.FieldUsuarioID] = struct{}{}
}

// UsuarioCleared reports if the "usuario" edge to the Usuario entity was cleared.
func (m *LogAuditoriaMutation) UsuarioCleared() bool {
	return m.UsuarioIDCleared() || m.clearedusuario
}

// UsuarioIDs returns the "usuario" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UsuarioID instead. It exists only for internal usage by the builders.
func (m *LogAuditoriaMutation) UsuarioIDs() (ids []uuid.UUID) {
	if id := m.usuario; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUsuario resets all changes to the "usuario" edge.
func (m *LogAuditoriaMutation) ResetUsuario() {
	m.usuario = nil
	m.clearedusuario = false
}

// Where appends a list predicates to the LogAuditoriaMutation builder.
func (m *LogAuditoriaMutation) Where(ps ...predicate.LogAuditoria) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogAuditoriaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogAuditoriaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogAuditoria, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogAuditoriaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogAuditoriaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogAuditoria).
func (m *LogAuditoriaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogAuditoriaMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.usuario != nil {
		fields = append(fields, logauditoria.FieldUsuarioID)
	}
	if m.accion != nil {
		fields = append(fields, logauditoria.FieldAccion)
	}
	if m.tabla_afectada != nil {
		fields = append(fields, logauditoria.FieldTablaAfectada)
	}
	if m.registro_id != nil {
		fields = append(fields, logauditoria.FieldRegistroID)
	}
	if m.detalles != nil {
		fields = append(fields, logauditoria.FieldDetalles)
	}
	if m.ip_usuario != nil {
		fields = append(fields, logauditoria.FieldIPUsuario)
	}
	if m.fecha_accion != nil {
		fields = append(fields, logauditoria.FieldFechaAccion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogAuditoriaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logauditoria.FieldUsuarioID:
		return m.UsuarioID()
	case logauditoria.FieldAccion:
		return m.Accion()
	case logauditoria.FieldTablaAfectada:
		return m.TablaAfectada()
	case logauditoria.FieldRegistroID:
		return m.RegistroID()
	case logauditoria.FieldDetalles:
		return m.Detalles()
	case logauditoria.FieldIPUsuario:
		return m.IPUsuario()
	case logauditoria.FieldFechaAccion:
		return m.FechaAccion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogAuditoriaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logauditoria.FieldUsuarioID:
		return m.OldUsuarioID(ctx)
	case logauditoria.FieldAccion:
		return m.OldAccion(ctx)
	case logauditoria.FieldTablaAfectada:
		return m.OldTablaAfectada(ctx)
	case logauditoria.FieldRegistroID:
		return m.OldRegistroID(ctx)
	case logauditoria.FieldDetalles:
		return m.OldDetalles(ctx)
	case logauditoria.FieldIPUsuario:
		return m.OldIPUsuario(ctx)
	case logauditoria.FieldFechaAccion:
		return m.OldFechaAccion(ctx)
	}
	return nil, fmt.Errorf("unknown LogAuditoria field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogAuditoriaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logauditoria.FieldUsuarioID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioID(v)
		return nil
	case logauditoria.FieldAccion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccion(v)
		return nil
	case logauditoria.FieldTablaAfectada:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTablaAfectada(v)
		return nil
	case logauditoria.FieldRegistroID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistroID(v)
		return nil
	case logauditoria.FieldDetalles:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetalles(v)
		return nil
	case logauditoria.FieldIPUsuario:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPUsuario(v)
		return nil
	case logauditoria.FieldFechaAccion:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaAccion(v)
		return nil
	}
	return fmt.Errorf("unknown LogAuditoria field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogAuditoriaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogAuditoriaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogAuditoriaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LogAuditoria numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogAuditoriaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logauditoria.FieldUsuarioID) {
		fields = append(fields, logauditoria.FieldUsuarioID)
	}
	if m.FieldCleared(logauditoria.FieldTablaAfectada) {
		fields = append(fields, logauditoria.FieldTablaAfectada)
	}
	if m.FieldCleared(logauditoria.FieldRegistroID) {
		fields = append(fields, logauditoria.FieldRegistroID)
	}
	if m.FieldCleared(logauditoria.FieldDetalles) {
		fields = append(fields, logauditoria.FieldDetalles)
	}
	if m.FieldCleared(logauditoria.FieldIPUsuario) {
		fields = append(fields, logauditoria.FieldIPUsuario)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogAuditoriaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogAuditoriaMutation) ClearField(name string) error {
	switch name {
	case logauditoria.FieldUsuarioID:
		m.ClearUsuarioID()
		return nil
	case logauditoria.FieldTablaAfectada:
		m.ClearTablaAfectada()
		return nil
	case logauditoria.FieldRegistroID:
		m.ClearRegistroID()
		return nil
	case logauditoria.FieldDetalles:
		m.ClearDetalles()
		return nil
	case logauditoria.FieldIPUsuario:
		m.ClearIPUsuario()
		return nil
	}
	return fmt.Errorf("unknown LogAuditoria nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogAuditoriaMutation) ResetField(name string) error {
	switch name {
	case logauditoria.FieldUsuarioID:
		m.ResetUsuarioID()
		return nil
	case logauditoria.FieldAccion:
		m.ResetAccion()
		return nil
	case logauditoria.FieldTablaAfectada:
		m.ResetTablaAfectada()
		return nil
	case logauditoria.FieldRegistroID:
		m.ResetRegistroID()
		return nil
	case logauditoria.FieldDetalles:
		m.ResetDetalles()
		return nil
	case logauditoria.FieldIPUsuario:
		m.ResetIPUsuario()
		return nil
	case logauditoria.FieldFechaAccion:
		m.ResetFechaAccion()
		return nil
	}
	return fmt.Errorf("unknown LogAuditoria field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogAuditoriaMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.usuario != nil {
		edges = append(edges, logauditoria.EdgeUsuario)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogAuditoriaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logauditoria.EdgeUsuario:
		if id := m.usuario; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogAuditoriaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogAuditoriaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogAuditoriaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusuario {
		edges = append(edges, logauditoria.EdgeUsuario)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogAuditoriaMutation) EdgeCleared(name string) bool {
	switch name {
	case logauditoria.EdgeUsuario:
		return m.clearedusuario
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogAuditoriaMutation) ClearEdge(name string) error {
	switch name {
	case logauditoria.EdgeUsuario:
		m.ClearUsuario()
		return nil
	}
	return fmt.Errorf("unknown LogAuditoria unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogAuditoriaMutation) ResetEdge(name string) error {
	switch name {
	case logauditoria.EdgeUsuario:
		m.ResetUsuario()
		return nil
	}
	return fmt.Errorf("unknown LogAuditoria edge %s", name)
}

// MadreMutation represents an operation that mutates the Madre nodes in the graph.
type MadreMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	ficha_clinica_id            *string
	rut_hash                    *string
	rut_encrypted               *string
	nombre_hash                 *string
	nombre_encrypted            *string
	telefono_hash               *string
	telefono_encrypted          *string
	fecha_nacimiento            *time.Time
	nacionalidad                *string
	pertenece_pueblo_originario *bool
	prevision                   *madre.Prevision
	antecedentes_medicos        *string
	clearedFields               map[string]struct{}
	partos                      map[uuid.UUID]struct{}
	removedpartos               map[uuid.UUID]struct{}
	clearedpartos               bool
	defuncion                   *uuid.UUID
	cleareddefuncion            bool
	done                        bool
	oldValue                    func(context.Context) (*Madre, error)
	predicates                  []predicate.Madre
}

var _ ent.Mutation = (*MadreMutation)(nil)

// madreOption allows management of the mutation configuration using functional options.
type madreOption func(*MadreMutation)

// newMadreMutation creates new mutation for the Madre entity.
func newMadreMutation(c config, op Op, opts ...madreOption) *MadreMutation {
	m := &MadreMutation{
		config:        c,
		op:            op,
		typ:           TypeMadre,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMadreID sets the ID field of the mutation.
func withMadreID(id uuid.UUID) madreOption {
	return func(m *MadreMutation) {
		var (
			err   error
			once  sync.Once
			value *Madre
		)
		m.oldValue = func(ctx context.Context) (*Madre, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Madre.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMadre sets the old Madre of the mutation.
func withMadre(node *Madre) madreOption {
	return func(m *MadreMutation) {
		m.oldValue = func(context.Context) (*Madre, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MadreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MadreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Madre entities.
func (m *MadreMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MadreMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MadreMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Madre.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MadreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MadreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MadreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MadreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MadreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MadreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFichaClinicaID sets the "ficha_clinica_id" field.
func (m *MadreMutation) SetFichaClinicaID(s string) {
	m.ficha_clinica_id = &s
}

// FichaClinicaID returns the value of the "ficha_clinica_id" field in the mutation.
func (m *MadreMutation) FichaClinicaID() (r string, exists bool) {
	v := m.ficha_clinica_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFichaClinicaID returns the old "ficha_clinica_id" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldFichaClinicaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFichaClinicaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFichaClinicaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFichaClinicaID: %w", err)
	}
	return oldValue.FichaClinicaID, nil
}

// ClearFichaClinicaID clears the value of the "ficha_clinica_id" field.
func (m *MadreMutation) ClearFichaClinicaID() {
	m.ficha_clinica_id = nil
	m.clearedFields[madre.FieldFichaClinicaID] = struct{}{}
}

// FichaClinicaIDCleared returns if the "ficha_clinica_id" field was cleared in this mutation.
func (m *MadreMutation) FichaClinicaIDCleared() bool {
	_, ok := m.clearedFields[madre.FieldFichaClinicaID]
	return ok
}

// ResetFichaClinicaID resets all changes to the "ficha_clinica_id" field.
func (m *MadreMutation) ResetFichaClinicaID() {
	m.ficha_clinica_id = nil
	delete(m.clearedFields, madre.FieldFichaClinicaID)
}

// SetRutHash sets the "rut_hash" field.
func (m *MadreMutation) SetRutHash(s string) {
	m.rut_hash = &s
}

// RutHash returns the value of the "rut_hash" field in the mutation.
func (m *MadreMutation) RutHash() (r string, exists bool) {
	v := m.rut_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRutHash returns the old "rut_hash" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldRutHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRutHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRutHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRutHash: %w", err)
	}
	return oldValue.RutHash, nil
}

// ClearRutHash clears the value of the "rut_hash" field.
func (m *MadreMutation) ClearRutHash() {
	m.rut_hash = nil
	m.clearedFields[madre.FieldRutHash] = struct{}{}
}

// RutHashCleared returns if the "rut_hash" field was cleared in this mutation.
func (m *MadreMutation) RutHashCleared() bool {
	_, ok := m.clearedFields[madre.FieldRutHash]
	return ok
}

// ResetRutHash resets all changes to the "rut_hash" field.
func (m *MadreMutation) ResetRutHash() {
	m.rut_hash = nil
	delete(m.clearedFields, madre.FieldRutHash)
}

// SetRutEncrypted sets the "rut_encrypted" field.
func (m *MadreMutation) SetRutEncrypted(s string) {
	m.rut_encrypted = &s
}

// RutEncrypted returns the value of the "rut_encrypted" field in the mutation.
func (m *MadreMutation) RutEncrypted() (r string, exists bool) {
	v := m.rut_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldRutEncrypted returns the old "rut_encrypted" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldRutEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRutEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRutEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRutEncrypted: %w", err)
	}
	return oldValue.RutEncrypted, nil
}

// ClearRutEncrypted clears the value of the "rut_encrypted" field.
func (m *MadreMutation) ClearRutEncrypted() {
	m.rut_encrypted = nil
	m.clearedFields[madre.FieldRutEncrypted] = struct{}{}
}

// RutEncryptedCleared returns if the "rut_encrypted" field was cleared in this mutation.
func (m *MadreMutation) RutEncryptedCleared() bool {
	_, ok := m.clearedFields[madre.FieldRutEncrypted]
	return ok
}

// ResetRutEncrypted resets all changes to the "rut_encrypted" field.
func (m *MadreMutation) ResetRutEncrypted() {
	m.rut_encrypted = nil
	delete(m.clearedFields, madre.FieldRutEncrypted)
}

// SetNombreHash sets the "nombre_hash" field.
func (m *MadreMutation) SetNombreHash(s string) {
	m.nombre_hash = &s
}

// NombreHash returns the value of the "nombre_hash" field in the mutation.
func (m *MadreMutation) NombreHash() (r string, exists bool) {
	v := m.nombre_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreHash returns the old "nombre_hash" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldNombreHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreHash: %w", err)
	}
	return oldValue.NombreHash, nil
}

// ClearNombreHash clears the value of the "nombre_hash" field.
func (m *MadreMutation) ClearNombreHash() {
	m.nombre_hash = nil
	m.clearedFields[madre.FieldNombreHash] = struct{}{}
}

// NombreHashCleared returns if the "nombre_hash" field was cleared in this mutation.
func (m *MadreMutation) NombreHashCleared() bool {
	_, ok := m.clearedFields[madre.FieldNombreHash]
	return ok
}

// ResetNombreHash resets all changes to the "nombre_hash" field.
func (m *MadreMutation) ResetNombreHash() {
	m.nombre_hash = nil
	delete(m.clearedFields, madre.FieldNombreHash)
}

// SetNombreEncrypted sets the "nombre_encrypted" field.
func (m *MadreMutation) SetNombreEncrypted(s string) {
	m.nombre_encrypted = &s
}

// NombreEncrypted returns the value of the "nombre_encrypted" field in the mutation.
func (m *MadreMutation) NombreEncrypted() (r string, exists bool) {
	v := m.nombre_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreEncrypted returns the old "nombre_encrypted" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldNombreEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreEncrypted: %w", err)
	}
	return oldValue.NombreEncrypted, nil
}

// ClearNombreEncrypted clears the value of the "nombre_encrypted" field.
func (m *MadreMutation) ClearNombreEncrypted() {
	m.nombre_encrypted = nil
	m.clearedFields[madre.FieldNombreEncrypted] = struct{}{}
}

// NombreEncryptedCleared returns if the "nombre_encrypted" field was cleared in this mutation.
func (m *MadreMutation) NombreEncryptedCleared() bool {
	_, ok := m.clearedFields[madre.FieldNombreEncrypted]
	return ok
}

// ResetNombreEncrypted resets all changes to the "nombre_encrypted" field.
func (m *MadreMutation) ResetNombreEncrypted() {
	m.nombre_encrypted = nil
	delete(m.clearedFields, madre.FieldNombreEncrypted)
}

// SetTelefonoHash sets the "telefono_hash" field.
func (m *MadreMutation) SetTelefonoHash(s string) {
	m.telefono_hash = &s
}

// TelefonoHash returns the value of the "telefono_hash" field in the mutation.
func (m *MadreMutation) TelefonoHash() (r string, exists bool) {
	v := m.telefono_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefonoHash returns the old "telefono_hash" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldTelefonoHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefonoHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefonoHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefonoHash: %w", err)
	}
	return oldValue.TelefonoHash, nil
}

// ClearTelefonoHash clears the value of the "telefono_hash" field.
func (m *MadreMutation) ClearTelefonoHash() {
	m.telefono_hash = nil
	m.clearedFields[madre.FieldTelefonoHash] = struct{}{}
}

// TelefonoHashCleared returns if the "telefono_hash" field was cleared in this mutation.
func (m *MadreMutation) TelefonoHashCleared() bool {
	_, ok := m.clearedFields[madre.FieldTelefonoHash]
	return ok
}

// ResetTelefonoHash resets all changes to the "telefono_hash" field.
func (m *MadreMutation) ResetTelefonoHash() {
	m.telefono_hash = nil
	delete(m.clearedFields, madre.FieldTelefonoHash)
}

// SetTelefonoEncrypted sets the "telefono_encrypted" field.
func (m *MadreMutation) SetTelefonoEncrypted(s string) {
	m.telefono_encrypted = &s
}

// TelefonoEncrypted returns the value of the "telefono_encrypted" field in the mutation.
func (m *MadreMutation) TelefonoEncrypted() (r string, exists bool) {
	v := m.telefono_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefonoEncrypted returns the old "telefono_encrypted" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldTelefonoEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefonoEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefonoEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefonoEncrypted: %w", err)
	}
	return oldValue.TelefonoEncrypted, nil
}

// ClearTelefonoEncrypted clears the value of the "telefono_encrypted" field.
func (m *MadreMutation) ClearTelefonoEncrypted() {
	m.telefono_encrypted = nil
	m.clearedFields[madre.FieldTelefonoEncrypted] = struct{}{}
}

// TelefonoEncryptedCleared returns if the "telefono_encrypted" field was cleared in this mutation.
func (m *MadreMutation) TelefonoEncryptedCleared() bool {
	_, ok := m.clearedFields[madre.FieldTelefonoEncrypted]
	return ok
}

// ResetTelefonoEncrypted resets all changes to the "telefono_encrypted" field.
func (m *MadreMutation) ResetTelefonoEncrypted() {
	m.telefono_encrypted = nil
	delete(m.clearedFields, madre.FieldTelefonoEncrypted)
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (m *MadreMutation) SetFechaNacimiento(t time.Time) {
	m.fecha_nacimiento = &t
}

// FechaNacimiento returns the value of the "fecha_nacimiento" field in the mutation.
func (m *MadreMutation) FechaNacimiento() (r time.Time, exists bool) {
	v := m.fecha_nacimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaNacimiento returns the old "fecha_nacimiento" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldFechaNacimiento(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaNacimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaNacimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaNacimiento: %w", err)
	}
	return oldValue.FechaNacimiento, nil
}

// ResetFechaNacimiento resets all changes to the "fecha_nacimiento" field.
func (m *MadreMutation) ResetFechaNacimiento() {
	m.fecha_nacimiento = nil
}

// SetNacionalidad sets the "nacionalidad" field.
func (m *MadreMutation) SetNacionalidad(s string) {
	m.nacionalidad = &s
}

// Nacionalidad returns the value of the "nacionalidad" field in the mutation.
func (m *MadreMutation) Nacionalidad() (r string, exists bool) {
	v := m.nacionalidad
	if v == nil {
		return
	}
	return *v, true
}

// OldNacionalidad returns the old "nacionalidad" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldNacionalidad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNacionalidad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNacionalidad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNacionalidad: %w", err)
	}
	return oldValue.Nacionalidad, nil
}

// ResetNacionalidad resets all changes to the "nacionalidad" field.
func (m *MadreMutation) ResetNacionalidad() {
	m.nacionalidad = nil
}

// SetPertenecePuebloOriginario sets the "pertenece_pueblo_originario" field.
func (m *MadreMutation) SetPertenecePuebloOriginario(b bool) {
	m.pertenece_pueblo_originario = &b
}

// PertenecePuebloOriginario returns the value of the "pertenece_pueblo_originario" field in the mutation.
func (m *MadreMutation) PertenecePuebloOriginario() (r bool, exists bool) {
	v := m.pertenece_pueblo_originario
	if v == nil {
		return
	}
	return *v, true
}

// OldPertenecePuebloOriginario returns the old "pertenece_pueblo_originario" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldPertenecePuebloOriginario(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPertenecePuebloOriginario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPertenecePuebloOriginario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPertenecePuebloOriginario: %w", err)
	}
	return oldValue.PertenecePuebloOriginario, nil
}

// ResetPertenecePuebloOriginario resets all changes to the "pertenece_pueblo_originario" field.
func (m *MadreMutation) ResetPertenecePuebloOriginario() {
	m.pertenece_pueblo_originario = nil
}

// SetPrevision sets the "prevision" field.
func (m *MadreMutation) SetPrevision(value madre.Prevision) {
	m.prevision = &value
}

// Prevision returns the value of the "prevision" field in the mutation.
func (m *MadreMutation) Prevision() (r madre.Prevision, exists bool) {
	v := m.prevision
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevision returns the old "prevision" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldPrevision(ctx context.Context) (v madre.Prevision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevision: %w", err)
	}
	return oldValue.Prevision, nil
}

// ResetPrevision resets all changes to the "prevision" field.
func (m *MadreMutation) ResetPrevision() {
	m.prevision = nil
}

// SetAntecedentesMedicos sets the "antecedentes_medicos" field.
func (m *MadreMutation) SetAntecedentesMedicos(s string) {
	m.antecedentes_medicos = &s
}

// AntecedentesMedicos returns the value of the "antecedentes_medicos" field in the mutation.
func (m *MadreMutation) AntecedentesMedicos() (r string, exists bool) {
	v := m.antecedentes_medicos
	if v == nil {
		return
	}
	return *v, true
}

// OldAntecedentesMedicos returns the old "antecedentes_medicos" field's value of the Madre entity.
// If the Madre object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MadreMutation) OldAntecedentesMedicos(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAntecedentesMedicos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAntecedentesMedicos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAntecedentesMedicos: %w", err)
	}
	return oldValue.AntecedentesMedicos, nil
}

// ClearAntecedentesMedicos clears the value of the "antecedentes_medicos" field.
func (m *MadreMutation) ClearAntecedentesMedicos() {
	m.antecedentes_medicos = nil
	m.clearedFields[madre.FieldAntecedentesMedicos] = struct{}{}
}

// AntecedentesMedicosCleared returns if the "antecedentes_medicos" field was cleared in this mutation.
func (m *MadreMutation) AntecedentesMedicosCleared() bool {
	_, ok := m.clearedFields[madre.FieldAntecedentesMedicos]
	return ok
}

// ResetAntecedentesMedicos resets all changes to the "antecedentes_medicos" field.
func (m *MadreMutation) ResetAntecedentesMedicos() {
	m.antecedentes_medicos = nil
	delete(m.clearedFields, madre.FieldAntecedentesMedicos)
}

// AddPartoIDs adds the "partos" edge to the Parto entity by ids.
func (m *MadreMutation) AddPartoIDs(ids ...uuid.UUID) {
	if m.partos == nil {
		m.partos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.partos[ids[i]] = struct{}{}
	}
}

// ClearPartos clears the "partos" edge to the Parto entity.
func (m *MadreMutation) ClearPartos() {
	m.clearedpartos = true
}

// PartosCleared reports if the "partos" edge to the Parto entity was cleared.
func (m *MadreMutation) PartosCleared() bool {
	return m.clearedpartos
}

// RemovePartoIDs removes the "partos" edge to the Parto entity by IDs.
func (m *MadreMutation) RemovePartoIDs(ids ...uuid.UUID) {
	if m.removedpartos == nil {
		m.removedpartos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.partos, ids[i])
		m.removedpartos[ids[i]] = struct{}{}
	}
}

// RemovedPartos returns the removed IDs of the "partos" edge to the Parto entity.
func (m *MadreMutation) RemovedPartosIDs() (ids []uuid.UUID) {
	for id := range m.removedpartos {
		ids = append(ids, id)
	}
	return
}

// PartosIDs returns the "partos" edge IDs in the mutation.
func (m *MadreMutation) PartosIDs() (ids []uuid.UUID) {
	for id := range m.partos {
		ids = append(ids, id)
	}
	return
}

// ResetPartos resets all changes to the "partos" edge.
func (m *MadreMutation) ResetPartos() {
	m.partos = nil
	m.clearedpartos = false
	m.removedpartos = nil
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by id.
func (m *MadreMutation) SetDefuncionID(id uuid.UUID) {
	m.defuncion = &id
}

// ClearDefuncion clears the "defuncion" edge to the Defuncion entity.
func (m *MadreMutation) ClearDefuncion() {
	m.cleareddefuncion = true
}

// DefuncionCleared reports if the "defuncion" edge to the Defuncion entity was cleared.
func (m *MadreMutation) DefuncionCleared() bool {
	return m.cleareddefuncion
}

// DefuncionID returns the "defuncion" edge ID in the mutation.
func (m *MadreMutation) DefuncionID() (id uuid.UUID, exists bool) {
	if m.defuncion != nil {
		return *m.defuncion, true
	}
	return
}

// DefuncionIDs returns the "defuncion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefuncionID instead. It exists only for internal usage by the builders.
func (m *MadreMutation) DefuncionIDs() (ids []uuid.UUID) {
	if id := m.defuncion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefuncion resets all changes to the "defuncion" edge.
func (m *MadreMutation) ResetDefuncion() {
	m.defuncion = nil
	m.cleareddefuncion = false
}

// Where appends a list predicates to the MadreMutation builder.
func (m *MadreMutation) Where(ps ...predicate.Madre) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MadreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MadreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Madre, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MadreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MadreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Madre).
func (m *MadreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MadreMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, madre.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, madre.FieldUpdatedAt)
	}
	if m.ficha_clinica_id != nil {
		fields = append(fields, madre.FieldFichaClinicaID)
	}
	if m.rut_hash != nil {
		fields = append(fields, madre.FieldRutHash)
	}
	if m.rut_encrypted != nil {
		fields = append(fields, madre.FieldRutEncrypted)
	}
	if m.nombre_hash != nil {
		fields = append(fields, madre.FieldNombreHash)
	}
	if m.nombre_encrypted != nil {
		fields = append(fields, madre.FieldNombreEncrypted)
	}
	if m.telefono_hash != nil {
		fields = append(fields, madre.FieldTelefonoHash)
	}
	if m.telefono_encrypted != nil {
		fields = append(fields, madre.FieldTelefonoEncrypted)
	}
	if m.fecha_nacimiento != nil {
		fields = append(fields, madre.FieldFechaNacimiento)
	}
	if m.nacionalidad != nil {
		fields = append(fields, madre.FieldNacionalidad)
	}
	if m.pertenece_pueblo_originario != nil {
		fields = append(fields, madre.FieldPertenecePuebloOriginario)
	}
	if m.prevision != nil {
		fields = append(fields, madre.FieldPrevision)
	}
	if m.antecedentes_medicos != nil {
		fields = append(fields, madre.FieldAntecedentesMedicos)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MadreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case madre.FieldCreatedAt:
		return m.CreatedAt()
	case madre.FieldUpdatedAt:
		return m.UpdatedAt()
	case madre.FieldFichaClinicaID:
		return m.FichaClinicaID()
	case madre.FieldRutHash:
		return m.RutHash()
	case madre.FieldRutEncrypted:
		return m.RutEncrypted()
	case madre.FieldNombreHash:
		return m.NombreHash()
	case madre.FieldNombreEncrypted:
		return m.NombreEncrypted()
	case madre.FieldTelefonoHash:
		return m.TelefonoHash()
	case madre.FieldTelefonoEncrypted:
		return m.TelefonoEncrypted()
	case madre.FieldFechaNacimiento:
		return m.FechaNacimiento()
	case madre.FieldNacionalidad:
		return m.Nacionalidad()
	case madre.FieldPertenecePuebloOriginario:
		return m.PertenecePuebloOriginario()
	case madre.FieldPrevision:
		return m.Prevision()
	case madre.FieldAntecedentesMedicos:
		return m.AntecedentesMedicos()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MadreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case madre.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case madre.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case madre.FieldFichaClinicaID:
		return m.OldFichaClinicaID(ctx)
	case madre.FieldRutHash:
		return m.OldRutHash(ctx)
	case madre.FieldRutEncrypted:
		return m.OldRutEncrypted(ctx)
	case madre.FieldNombreHash:
		return m.OldNombreHash(ctx)
	case madre.FieldNombreEncrypted:
		return m.OldNombreEncrypted(ctx)
	case madre.FieldTelefonoHash:
		return m.OldTelefonoHash(ctx)
	case madre.FieldTelefonoEncrypted:
		return m.OldTelefonoEncrypted(ctx)
	case madre.FieldFechaNacimiento:
		return m.OldFechaNacimiento(ctx)
	case madre.FieldNacionalidad:
		return m.OldNacionalidad(ctx)
	case madre.FieldPertenecePuebloOriginario:
		return m.OldPertenecePuebloOriginario(ctx)
	case madre.FieldPrevision:
		return m.OldPrevision(ctx)
	case madre.FieldAntecedentesMedicos:
		return m.OldAntecedentesMedicos(ctx)
	}
	return nil, fmt.Errorf("unknown Madre field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MadreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case madre.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case madre.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case madre.FieldFichaClinicaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFichaClinicaID(v)
		return nil
	case madre.FieldRutHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRutHash(v)
		return nil
	case madre.FieldRutEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRutEncrypted(v)
		return nil
	case madre.FieldNombreHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreHash(v)
		return nil
	case madre.FieldNombreEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreEncrypted(v)
		return nil
	case madre.FieldTelefonoHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefonoHash(v)
		return nil
	case madre.FieldTelefonoEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefonoEncrypted(v)
		return nil
	case madre.FieldFechaNacimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaNacimiento(v)
		return nil
	case madre.FieldNacionalidad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNacionalidad(v)
		return nil
	case madre.FieldPertenecePuebloOriginario:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPertenecePuebloOriginario(v)
		return nil
	case madre.FieldPrevision:
		v, ok := value.(madre.Prevision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevision(v)
		return nil
	case madre.FieldAntecedentesMedicos:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAntecedentesMedicos(v)
		return nil
	}
	return fmt.Errorf("unknown Madre field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MadreMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MadreMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MadreMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Madre numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MadreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(madre.FieldFichaClinicaID) {
		fields = append(fields, madre.FieldFichaClinicaID)
	}
	if m.FieldCleared(madre.FieldRutHash) {
		fields = append(fields, madre.FieldRutHash)
	}
	if m.FieldCleared(madre.FieldRutEncrypted) {
		fields = append(fields, madre.FieldRutEncrypted)
	}
	if m.FieldCleared(madre.FieldNombreHash) {
		fields = append(fields, madre.FieldNombreHash)
	}
	if m.FieldCleared(madre.FieldNombreEncrypted) {
		fields = append(fields, madre.FieldNombreEncrypted)
	}
	if m.FieldCleared(madre.FieldTelefonoHash) {
		fields = append(fields, madre.FieldTelefonoHash)
	}
	if m.FieldCleared(madre.FieldTelefonoEncrypted) {
		fields = append(fields, madre.FieldTelefonoEncrypted)
	}
	if m.FieldCleared(madre.FieldAntecedentesMedicos) {
		fields = append(fields, madre.FieldAntecedentesMedicos)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MadreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MadreMutation) ClearField(name string) error {
	switch name {
	case madre.FieldFichaClinicaID:
		m.ClearFichaClinicaID()
		return nil
	case madre.FieldRutHash:
		m.ClearRutHash()
		return nil
	case madre.FieldRutEncrypted:
		m.ClearRutEncrypted()
		return nil
	case madre.FieldNombreHash:
		m.ClearNombreHash()
		return nil
	case madre.FieldNombreEncrypted:
		m.ClearNombreEncrypted()
		return nil
	case madre.FieldTelefonoHash:
		m.ClearTelefonoHash()
		return nil
	case madre.FieldTelefonoEncrypted:
		m.ClearTelefonoEncrypted()
		return nil
	case madre.FieldAntecedentesMedicos:
		m.ClearAntecedentesMedicos()
		return nil
	}
	return fmt.Errorf("unknown Madre nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MadreMutation) ResetField(name string) error {
	switch name {
	case madre.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case madre.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case madre.FieldFichaClinicaID:
		m.ResetFichaClinicaID()
		return nil
	case madre.FieldRutHash:
		m.ResetRutHash()
		return nil
	case madre.FieldRutEncrypted:
		m.ResetRutEncrypted()
		return nil
	case madre.FieldNombreHash:
		m.ResetNombreHash()
		return nil
	case madre.FieldNombreEncrypted:
		m.ResetNombreEncrypted()
		return nil
	case madre.FieldTelefonoHash:
		m.ResetTelefonoHash()
		return nil
	case madre.FieldTelefonoEncrypted:
		m.ResetTelefonoEncrypted()
		return nil
	case madre.FieldFechaNacimiento:
		m.ResetFechaNacimiento()
		return nil
	case madre.FieldNacionalidad:
		m.ResetNacionalidad()
		return nil
	case madre.FieldPertenecePuebloOriginario:
		m.ResetPertenecePuebloOriginario()
		return nil
	case madre.FieldPrevision:
		m.ResetPrevision()
		return nil
	case madre.FieldAntecedentesMedicos:
		m.ResetAntecedentesMedicos()
		return nil
	}
	return fmt.Errorf("unknown Madre field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MadreMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.partos != nil {
		edges = append(edges, madre.EdgePartos)
	}
	if m.defuncion != nil {
		edges = append(edges, madre.EdgeDefuncion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MadreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case madre.EdgePartos:
		ids := make([]ent.Value, 0, len(m.partos))
		for id := range m.partos {
			ids = append(ids, id)
		}
		return ids
	case madre.EdgeDefuncion:
		if id := m.defuncion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MadreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpartos != nil {
		edges = append(edges, madre.EdgePartos)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MadreMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case madre.EdgePartos:
		ids := make([]ent.Value, 0, len(m.removedpartos))
		for id := range m.removedpartos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MadreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpartos {
		edges = append(edges, madre.EdgePartos)
	}
	if m.cleareddefuncion {
		edges = append(edges, madre.EdgeDefuncion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MadreMutation) EdgeCleared(name string) bool {
	switch name {
	case madre.EdgePartos:
		return m.clearedpartos
	case madre.EdgeDefuncion:
		return m.cleareddefuncion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MadreMutation) ClearEdge(name string) error {
	switch name {
	case madre.EdgeDefuncion:
		m.ClearDefuncion()
		return nil
	}
	return fmt.Errorf("unknown Madre unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MadreMutation) ResetEdge(name string) error {
	switch name {
	case madre.EdgePartos:
		m.ResetPartos()
		return nil
	case madre.EdgeDefuncion:
		m.ResetDefuncion()
		return nil
	}
	return fmt.Errorf("unknown Madre edge %s", name)
}

// PartoMutation represents an operation that mutates the Parto nodes in the graph.
type PartoMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	updated_at                *time.Time
	fecha_parto               *time.Time
	edad_gestacional          *int
	addedad_gestacional       *int
	tipo_parto                *parto.TipoParto
	anestesia                 *parto.Anestesia
	partograma_data           *map[string]interface{}
	epicrisis_data            *map[string]interface{}
	clearedFields             map[string]struct{}
	madre                     *uuid.UUID
	clearedmadre              bool
	usuario_registro          *uuid.UUID
	clearedusuario_registro   bool
	recien_nacidos            map[uuid.UUID]struct{}
	removedrecien_nacidos     map[uuid.UUID]struct{}
	clearedrecien_nacidos     bool
	parto_diagnosticos        map[uuid.UUID]struct{}
	removedparto_diagnosticos map[uuid.UUID]struct{}
	clearedparto_diagnosticos bool
	documentos                map[uuid.UUID]struct{}
	removeddocumentos         map[uuid.UUID]struct{}
	cleareddocumentos         bool
	done                      bool
	oldValue                  func(context.Context) (*Parto, error)
	predicates                []predicate.Parto
}

var _ ent.Mutation = (*PartoMutation)(nil)

// partoOption allows management of the mutation configuration using functional options.
type partoOption func(*PartoMutation)

// newPartoMutation creates new mutation for the Parto entity.
func newPartoMutation(c config, op Op, opts ...partoOption) *PartoMutation {
	m := &PartoMutation{
		config:        c,
		op:            op,
		typ:           TypeParto,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPartoID sets the ID field of the mutation.
func withPartoID(id uuid.UUID) partoOption {
	return func(m *PartoMutation) {
		var (
			err   error
			once  sync.Once
			value *Parto
		)
		m.oldValue = func(ctx context.Context) (*Parto, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Parto.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParto sets the old Parto of the mutation.
func withParto(node *Parto) partoOption {
	return func(m *PartoMutation) {
		m.oldValue = func(context.Context) (*Parto, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PartoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PartoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Parto entities.
func (m *PartoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PartoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PartoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Parto.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PartoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PartoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PartoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PartoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PartoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PartoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetMadreID sets the "madre_id" field.
func (m *PartoMutation) SetMadreID(u uuid.UUID) {
	m.madre = &u
}

// MadreID returns the value of the "madre_id" field in the mutation.
func (m *PartoMutation) MadreID() (r uuid.UUID, exists bool) {
	v := m.madre
	if v == nil {
		return
	}
	return *v, true
}

// OldMadreID returns the old "madre_id" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldMadreID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMadreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMadreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMadreID: %w", err)
	}
	return oldValue.MadreID, nil
}

// ResetMadreID resets all changes to the "madre_id" field.
func (m *PartoMutation) ResetMadreID() {
	m.madre = nil
}

// SetFechaParto sets the "fecha_parto" field.
func (m *PartoMutation) SetFechaParto(t time.Time) {
	m.fecha_parto = &t
}

// FechaParto returns the value of the "fecha_parto" field in the mutation.
func (m *PartoMutation) FechaParto() (r time.Time, exists bool) {
	v := m.fecha_parto
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaParto returns the old "fecha_parto" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldFechaParto(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaParto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaParto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaParto: %w", err)
	}
	return oldValue.FechaParto, nil
}

// ResetFechaParto resets all changes to the "fecha_parto" field.
func (m *PartoMutation) ResetFechaParto() {
	m.fecha_parto = nil
}

// SetEdadGestacional sets the "edad_gestacional" field.
func (m *PartoMutation) SetEdadGestacional(i int) {
	m.edad_gestacional = &i
	m.addedad_gestacional = nil
}

// EdadGestacional returns the value of the "edad_gestacional" field in the mutation.
func (m *PartoMutation) EdadGestacional() (r int, exists bool) {
	v := m.edad_gestacional
	if v == nil {
		return
	}
	return *v, true
}

// OldEdadGestacional returns the old "edad_gestacional" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldEdadGestacional(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdadGestacional is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdadGestacional requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdadGestacional: %w", err)
	}
	return oldValue.EdadGestacional, nil
}

// AddEdadGestacional adds i to the "edad_gestacional" field.
func (m *PartoMutation) AddEdadGestacional(i int) {
	if m.addedad_gestacional != nil {
		*m.addedad_gestacional += i
	} else {
		m.addedad_gestacional = &i
	}
}

// AddedEdadGestacional returns the value that was added to the "edad_gestacional" field in this mutation.
func (m *PartoMutation) AddedEdadGestacional() (r int, exists bool) {
	v := m.addedad_gestacional
	if v == nil {
		return
	}
	return *v, true
}

// ClearEdadGestacional clears the value of the "edad_gestacional" field.
func (m *PartoMutation) ClearEdadGestacional() {
	m.edad_gestacional = nil
	m.addedad_gestacional = nil
	m.clearedFields[parto.FieldEdadGestacional] = struct{}{}
}

// EdadGestacionalCleared returns if the "edad_gestacional" field was cleared in this mutation.
func (m *PartoMutation) EdadGestacionalCleared() bool {
	_, ok := m.clearedFields[parto.FieldEdadGestacional]
	return ok
}

// ResetEdadGestacional resets all changes to the "edad_gestacional" field.
func (m *PartoMutation) ResetEdadGestacional() {
	m.edad_gestacional = nil
	m.addedad_gestacional = nil
	delete(m.clearedFields, parto.FieldEdadGestacional)
}

// SetTipoParto sets the "tipo_parto" field.
func (m *PartoMutation) SetTipoParto(pp parto.TipoParto) {
	m.tipo_parto = &pp
}

// TipoParto returns the value of the "tipo_parto" field in the mutation.
func (m *PartoMutation) TipoParto() (r parto.TipoParto, exists bool) {
	v := m.tipo_parto
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoParto returns the old "tipo_parto" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldTipoParto(ctx context.Context) (v parto.TipoParto, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoParto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoParto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoParto: %w", err)
	}
	return oldValue.TipoParto, nil
}

// ResetTipoParto resets all changes to the "tipo_parto" field.
func (m *PartoMutation) ResetTipoParto() {
	m.tipo_parto = nil
}

// SetAnestesia sets the "anestesia" field.
func (m *PartoMutation) SetAnestesia(pa parto.Anestesia) {
	m.anestesia = &pa
}

// Anestesia returns the value of the "anestesia" field in the mutation.
func (m *PartoMutation) Anestesia() (r parto.Anestesia, exists bool) {
	v := m.anestesia
	if v == nil {
		return
	}
	return *v, true
}

// OldAnestesia returns the old "anestesia" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldAnestesia(ctx context.Context) (v parto.Anestesia, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnestesia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnestesia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnestesia: %w", err)
	}
	return oldValue.Anestesia, nil
}

// ResetAnestesia resets all changes to the "anestesia" field.
func (m *PartoMutation) ResetAnestesia() {
	m.anestesia = nil
}

// SetPartogramaData sets the "partograma_data" field.
func (m *PartoMutation) SetPartogramaData(value map[string]interface{}) {
	m.partograma_data = &value
}

// PartogramaData returns the value of the "partograma_data" field in the mutation.
func (m *PartoMutation) PartogramaData() (r map[string]interface{}, exists bool) {
	v := m.partograma_data
	if v == nil {
		return
	}
	return *v, true
}

// OldPartogramaData returns the old "partograma_data" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldPartogramaData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartogramaData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartogramaData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartogramaData: %w", err)
	}
	return oldValue.PartogramaData, nil
}

// ClearPartogramaData clears the value of the "partograma_data" field.
func (m *PartoMutation) ClearPartogramaData() {
	m.partograma_data = nil
	m.clearedFields[parto.FieldPartogramaData] = struct{}{}
}

// PartogramaDataCleared returns if the "partograma_data" field was cleared in this mutation.
func (m *PartoMutation) PartogramaDataCleared() bool {
	_, ok := m.clearedFields[parto.FieldPartogramaData]
	return ok
}

// ResetPartogramaData resets all changes to the "partograma_data" field.
func (m *PartoMutation) ResetPartogramaData() {
	m.partograma_data = nil
	delete(m.clearedFields, parto.FieldPartogramaData)
}

// SetEpicrisisData sets the "epicrisis_data" field.
func (m *PartoMutation) SetEpicrisisData(value map[string]interface{}) {
	m.epicrisis_data = &value
}

// EpicrisisData returns the value of the "epicrisis_data" field in the mutation.
func (m *PartoMutation) EpicrisisData() (r map[string]interface{}, exists bool) {
	v := m.epicrisis_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEpicrisisData returns the old "epicrisis_data" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldEpicrisisData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpicrisisData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpicrisisData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpicrisisData: %w", err)
	}
	return oldValue.EpicrisisData, nil
}

// ClearEpicrisisData clears the value of the "epicrisis_data" field.
func (m *PartoMutation) ClearEpicrisisData() {
	m.epicrisis_data = nil
	m.clearedFields[parto.FieldEpicrisisData] = struct{}{}
}

// EpicrisisDataCleared returns if the "epicrisis_data" field was cleared in this mutation.
func (m *PartoMutation) EpicrisisDataCleared() bool {
	_, ok := m.clearedFields[parto.FieldEpicrisisData]
	return ok
}

// ResetEpicrisisData resets all changes to the "epicrisis_data" field.
func (m *PartoMutation) ResetEpicrisisData() {
	m.epicrisis_data = nil
	delete(m.clearedFields, parto.FieldEpicrisisData)
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (m *PartoMutation) SetUsuarioRegistroID(u uuid.UUID) {
	m.usuario_registro = &u
}

// UsuarioRegistroID returns the value of the "usuario_registro_id" field in the mutation.
func (m *PartoMutation) UsuarioRegistroID() (r uuid.UUID, exists bool) {
	v := m.usuario_registro
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioRegistroID returns the old "usuario_registro_id" field's value of the Parto entity.
// If the Parto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoMutation) OldUsuarioRegistroID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioRegistroID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioRegistroID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioRegistroID: %w", err)
	}
	return oldValue.UsuarioRegistroID, nil
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (m *PartoMutation) ClearUsuarioRegistroID() {
	m.usuario_registro = nil
	m.clearedFields[parto.FieldUsuarioRegistroID] = struct{}{}
}

// UsuarioRegistroIDCleared returns if the "usuario_registro_id" field was cleared in this mutation.
func (m *PartoMutation) UsuarioRegistroIDCleared() bool {
	_, ok := m.clearedFields[parto.FieldUsuarioRegistroID]
	return ok
}

// ResetUsuarioRegistroID resets all changes to the "usuario_registro_id" field.
func (m *PartoMutation) ResetUsuarioRegistroID() {
	m.usuario_registro = nil
	delete(m.clearedFields, parto.FieldUsuarioRegistroID)
}

// ClearMadre clears the "madre" edge to the Madre entity.
func (m *PartoMutation) ClearMadre() {
	m.clearedmadre = true
	m.clearedFields[parto.FieldMadreID] = struct{}{}
}

// MadreCleared reports if the "madre" edge to the Madre entity was cleared.
func (m *PartoMutation) MadreCleared() bool {
	return m.clearedmadre
}

// MadreIDs returns the "madre" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MadreID instead. It exists only for internal usage by the builders.
func (m *PartoMutation) MadreIDs() (ids []uuid.UUID) {
	if id := m.madre; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMadre resets all changes to the "madre" edge.
func (m *PartoMutation) ResetMadre() {
	m.madre = nil
	m.clearedmadre = false
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (m *PartoMutation) ClearUsuarioRegistro() {
	m.clearedusuario_registro = true
	m.clearedFields[parto.FieldUsuarioRegistroID] = struct{}{}
}

// UsuarioRegistroCleared reports if the "usuario_registro" edge to the Usuario entity was cleared.
func (m *PartoMutation) UsuarioRegistroCleared() bool {
	return m.UsuarioRegistroIDCleared() || m.clearedusuario_registro
}

// UsuarioRegistroIDs returns the "usuario_registro" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UsuarioRegistroID instead. It exists only for internal usage by the builders.
func (m *PartoMutation) UsuarioRegistroIDs() (ids []uuid.UUID) {
	if id := m.usuario_registro; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUsuarioRegistro resets all changes to the "usuario_registro" edge.
func (m *PartoMutation) ResetUsuarioRegistro() {
	m.usuario_registro = nil
	m.clearedusuario_registro = false
}

// AddRecienNacidoIDs adds the "recien_nacidos" edge to the RecienNacido entity by ids.
func (m *PartoMutation) AddRecienNacidoIDs(ids ...uuid.UUID) {
	if m.recien_nacidos == nil {
		m.recien_nacidos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.recien_nacidos[ids[i]] = struct{}{}
	}
}

// ClearRecienNacidos clears the "recien_nacidos" edge to the RecienNacido entity.
func (m *PartoMutation) ClearRecienNacidos() {
	m.clearedrecien_nacidos = true
}

// RecienNacidosCleared reports if the "recien_nacidos" edge to the RecienNacido entity was cleared.
func (m *PartoMutation) RecienNacidosCleared() bool {
	return m.clearedrecien_nacidos
}

// RemoveRecienNacidoIDs removes the "recien_nacidos" edge to the RecienNacido entity by IDs.
func (m *PartoMutation) RemoveRecienNacidoIDs(ids ...uuid.UUID) {
	if m.removedrecien_nacidos == nil {
		m.removedrecien_nacidos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.recien_nacidos, ids[i])
		m.removedrecien_nacidos[ids[i]] = struct{}{}
	}
}

// RemovedRecienNacidos returns the removed IDs of the "recien_nacidos" edge to the RecienNacido entity.
func (m *PartoMutation) RemovedRecienNacidosIDs() (ids []uuid.UUID) {
	for id := range m.removedrecien_nacidos {
		ids = append(ids, id)
	}
	return
}

// RecienNacidosIDs returns the "recien_nacidos" edge IDs in the mutation.
func (m *PartoMutation) RecienNacidosIDs() (ids []uuid.UUID) {
	for id := range m.recien_nacidos {
		ids = append(ids, id)
	}
	return
}

// ResetRecienNacidos resets all changes to the "recien_nacidos" edge.
func (m *PartoMutation) ResetRecienNacidos() {
	m.recien_nacidos = nil
	m.clearedrecien_nacidos = false
	m.removedrecien_nacidos = nil
}

// AddPartoDiagnosticoIDs adds the "parto_diagnosticos" edge to the PartoDiagnostico entity by ids.
func (m *PartoMutation) AddPartoDiagnosticoIDs(ids ...uuid.UUID) {
	if m.parto_diagnosticos == nil {
		m.parto_diagnosticos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.parto_diagnosticos[ids[i]] = struct{}{}
	}
}

// ClearPartoDiagnosticos clears the "parto_diagnosticos" edge to the PartoDiagnostico entity.
func (m *PartoMutation) ClearPartoDiagnosticos() {
	m.clearedparto_diagnosticos = true
}

// PartoDiagnosticosCleared reports if the "parto_diagnosticos" edge to the PartoDiagnostico entity was cleared.
func (m *PartoMutation) PartoDiagnosticosCleared() bool {
	return m.clearedparto_diagnosticos
}

// RemovePartoDiagnosticoIDs removes the "parto_diagnosticos" edge to the PartoDiagnostico entity by IDs.
func (m *PartoMutation) RemovePartoDiagnosticoIDs(ids ...uuid.UUID) {
	if m.removedparto_diagnosticos == nil {
		m.removedparto_diagnosticos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.parto_diagnosticos, ids[i])
		m.removedparto_diagnosticos[ids[i]] = struct{}{}
	}
}

// RemovedPartoDiagnosticos returns the removed IDs of the "parto_diagnosticos" edge to the PartoDiagnostico entity.
func (m *PartoMutation) RemovedPartoDiagnosticosIDs() (ids []uuid.UUID) {
	for id := range m.removedparto_diagnosticos {
		ids = append(ids, id)
	}
	return
}

// PartoDiagnosticosIDs returns the "parto_diagnosticos" edge IDs in the mutation.
func (m *PartoMutation) PartoDiagnosticosIDs() (ids []uuid.UUID) {
	for id := range m.parto_diagnosticos {
		ids = append(ids, id)
	}
	return
}

// ResetPartoDiagnosticos resets all changes to the "parto_diagnosticos" edge.
func (m *PartoMutation) ResetPartoDiagnosticos() {
	m.parto_diagnosticos = nil
	m.clearedparto_diagnosticos = false
	m.removedparto_diagnosticos = nil
}

// AddDocumentoIDs adds the "documentos" edge to the DocumentoReferencia entity by ids.
func (m *PartoMutation) AddDocumentoIDs(ids ...uuid.UUID) {
	if m.documentos == nil {
		m.documentos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documentos[ids[i]] = struct{}{}
	}
}

// ClearDocumentos clears the "documentos" edge to the DocumentoReferencia entity.
func (m *PartoMutation) ClearDocumentos() {
	m.cleareddocumentos = true
}

// DocumentosCleared reports if the "documentos" edge to the DocumentoReferencia entity was cleared.
func (m *PartoMutation) DocumentosCleared() bool {
	return m.cleareddocumentos
}

// RemoveDocumentoIDs removes the "documentos" edge to the DocumentoReferencia entity by IDs.
func (m *PartoMutation) RemoveDocumentoIDs(ids ...uuid.UUID) {
	if m.removeddocumentos == nil {
		m.removeddocumentos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documentos, ids[i])
		m.removeddocumentos[ids[i]] = struct{}{}
	}
}

// RemovedDocumentos returns the removed IDs of the "documentos" edge to the DocumentoReferencia entity.
func (m *PartoMutation) RemovedDocumentosIDs() (ids []uuid.UUID) {
	for id := range m.removeddocumentos {
		ids = append(ids, id)
	}
	return
}

// DocumentosIDs returns the "documentos" edge IDs in the mutation.
func (m *PartoMutation) DocumentosIDs() (ids []uuid.UUID) {
	for id := range m.documentos {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentos resets all changes to the "documentos" edge.
func (m *PartoMutation) ResetDocumentos() {
	m.documentos = nil
	m.cleareddocumentos = false
	m.removeddocumentos = nil
}

// Where appends a list predicates to the PartoMutation builder.
func (m *PartoMutation) Where(ps ...predicate.Parto) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PartoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PartoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Parto, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PartoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PartoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Parto).
func (m *PartoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PartoMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, parto.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, parto.FieldUpdatedAt)
	}
	if m.madre != nil {
		fields = append(fields, parto.FieldMadreID)
	}
	if m.fecha_parto != nil {
		fields = append(fields, parto.FieldFechaParto)
	}
	if m.edad_gestacional != nil {
		fields = append(fields, parto.FieldEdadGestacional)
	}
	if m.tipo_parto != nil {
		fields = append(fields, parto.FieldTipoParto)
	}
	if m.anestesia != nil {
		fields = append(fields, parto.FieldAnestesia)
	}
	if m.partograma_data != nil {
		fields = append(fields, parto.FieldPartogramaData)
	}
	if m.epicrisis_data != nil {
		fields = append(fields, parto.FieldEpicrisisData)
	}
	if m.usuario_registro != nil {
		fields = append(fields, parto.FieldUsuarioRegistroID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PartoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parto.FieldCreatedAt:
		return m.CreatedAt()
	case parto.FieldUpdatedAt:
		return m.UpdatedAt()
	case parto.FieldMadreID:
		return m.MadreID()
	case parto.FieldFechaParto:
		return m.FechaParto()
	case parto.FieldEdadGestacional:
		return m.EdadGestacional()
	case parto.FieldTipoParto:
		return m.TipoParto()
	case parto.FieldAnestesia:
		return m.Anestesia()
	case parto.FieldPartogramaData:
		return m.PartogramaData()
	case parto.FieldEpicrisisData:
		return m.EpicrisisData()
	case parto.FieldUsuarioRegistroID:
		return m.UsuarioRegistroID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PartoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parto.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case parto.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case parto.FieldMadreID:
		return m.OldMadreID(ctx)
	case parto.FieldFechaParto:
		return m.OldFechaParto(ctx)
	case parto.FieldEdadGestacional:
		return m.OldEdadGestacional(ctx)
	case parto.FieldTipoParto:
		return m.OldTipoParto(ctx)
	case parto.FieldAnestesia:
		return m.OldAnestesia(ctx)
	case parto.FieldPartogramaData:
		return m.OldPartogramaData(ctx)
	case parto.FieldEpicrisisData:
		return m.OldEpicrisisData(ctx)
	case parto.FieldUsuarioRegistroID:
		return m.OldUsuarioRegistroID(ctx)
	}
	return nil, fmt.Errorf("unknown Parto field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parto.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case parto.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case parto.FieldMadreID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMadreID(v)
		return nil
	case parto.FieldFechaParto:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaParto(v)
		return nil
	case parto.FieldEdadGestacional:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdadGestacional(v)
		return nil
	case parto.FieldTipoParto:
		v, ok := value.(parto.TipoParto)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoParto(v)
		return nil
	case parto.FieldAnestesia:
		v, ok := value.(parto.Anestesia)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnestesia(v)
		return nil
	case parto.FieldPartogramaData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartogramaData(v)
		return nil
	case parto.FieldEpicrisisData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpicrisisData(v)
		return nil
	case parto.FieldUsuarioRegistroID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioRegistroID(v)
		return nil
	}
	return fmt.Errorf("unknown Parto field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PartoMutation) AddedFields() []string {
	var fields []string
	if m.addedad_gestacional != nil {
		fields = append(fields, parto.FieldEdadGestacional)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PartoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parto.FieldEdadGestacional:
		return m.AddedEdadGestacional()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parto.FieldEdadGestacional:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEdadGestacional(v)
		return nil
	}
	return fmt.Errorf("unknown Parto numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PartoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parto.FieldEdadGestacional) {
		fields = append(fields, parto.FieldEdadGestacional)
	}
	if m.FieldCleared(parto.FieldPartogramaData) {
		fields = append(fields, parto.FieldPartogramaData)
	}
	if m.FieldCleared(parto.FieldEpicrisisData) {
		fields = append(fields, parto.FieldEpicrisisData)
	}
	if m.FieldCleared(parto.FieldUsuarioRegistroID) {
		fields = append(fields, parto.FieldUsuarioRegistroID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PartoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PartoMutation) ClearField(name string) error {
	switch name {
	case parto.FieldEdadGestacional:
		m.ClearEdadGestacional()
		return nil
	case parto.FieldPartogramaData:
		m.ClearPartogramaData()
		return nil
	case parto.FieldEpicrisisData:
		m.ClearEpicrisisData()
		return nil
	case parto.FieldUsuarioRegistroID:
		m.ClearUsuarioRegistroID()
		return nil
	}
	return fmt.Errorf("unknown Parto nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PartoMutation) ResetField(name string) error {
	switch name {
	case parto.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case parto.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case parto.FieldMadreID:
		m.ResetMadreID()
		return nil
	case parto.FieldFechaParto:
		m.ResetFechaParto()
		return nil
	case parto.FieldEdadGestacional:
		m.ResetEdadGestacional()
		return nil
	case parto.FieldTipoParto:
		m.ResetTipoParto()
		return nil
	case parto.FieldAnestesia:
		m.ResetAnestesia()
		return nil
	case parto.FieldPartogramaData:
		m.ResetPartogramaData()
		return nil
	case parto.FieldEpicrisisData:
		m.ResetEpicrisisData()
		return nil
	case parto.FieldUsuarioRegistroID:
		m.ResetUsuarioRegistroID()
		return nil
	}
	return fmt.Errorf("unknown Parto field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PartoMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.madre != nil {
		edges = append(edges, parto.EdgeMadre)
	}
	if m.usuario_registro != nil {
		edges = append(edges, parto.EdgeUsuarioRegistro)
	}
	if m.recien_nacidos != nil {
		edges = append(edges, parto.EdgeRecienNacidos)
	}
	if m.parto_diagnosticos != nil {
		edges = append(edges, parto.EdgePartoDiagnosticos)
	}
	if m.documentos != nil {
		edges = append(edges, parto.EdgeDocumentos)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PartoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parto.EdgeMadre:
		if id := m.madre; id != nil {
			return []ent.Value{*id}
		}
	case parto.EdgeUsuarioRegistro:
		if id := m.usuario_registro; id != nil {
			return []ent.Value{*id}
		}
	case parto.EdgeRecienNacidos:
		ids := make([]ent.Value, 0, len(m.recien_nacidos))
		for id := range m.recien_nacidos {
			ids = append(ids, id)
		}
		return ids
	case parto.EdgePartoDiagnosticos:
		ids := make([]ent.Value, 0, len(m.parto_diagnosticos))
		for id := range m.parto_diagnosticos {
			ids = append(ids, id)
		}
		return ids
	case parto.EdgeDocumentos:
		ids := make([]ent.Value, 0, len(m.documentos))
		for id := range m.documentos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PartoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedrecien_nacidos != nil {
		edges = append(edges, parto.EdgeRecienNacidos)
	}
	if m.removedparto_diagnosticos != nil {
		edges = append(edges, parto.EdgePartoDiagnosticos)
	}
	if m.removeddocumentos != nil {
		edges = append(edges, parto.EdgeDocumentos)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PartoMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case parto.EdgeRecienNacidos:
		ids := make([]ent.Value, 0, len(m.removedrecien_nacidos))
		for id := range m.removedrecien_nacidos {
			ids = append(ids, id)
		}
		return ids
	case parto.EdgePartoDiagnosticos:
		ids := make([]ent.Value, 0, len(m.removedparto_diagnosticos))
		for id := range m.removedparto_diagnosticos {
			ids = append(ids, id)
		}
		return ids
	case parto.EdgeDocumentos:
		ids := make([]ent.Value, 0, len(m.removeddocumentos))
		for id := range m.removeddocumentos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PartoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedmadre {
		edges = append(edges, parto.EdgeMadre)
	}
	if m.clearedusuario_registro {
		edges = append(edges, parto.EdgeUsuarioRegistro)
	}
	if m.clearedrecien_nacidos {
		edges = append(edges, parto.EdgeRecienNacidos)
	}
	if m.clearedparto_diagnosticos {
		edges = append(edges, parto.EdgePartoDiagnosticos)
	}
	if m.cleareddocumentos {
		edges = append(edges, parto.EdgeDocumentos)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PartoMutation) EdgeCleared(name string) bool {
	switch name {
	case parto.EdgeMadre:
		return m.clearedmadre
	case parto.EdgeUsuarioRegistro:
		return m.clearedusuario_registro
	case parto.EdgeRecienNacidos:
		return m.clearedrecien_nacidos
	case parto.EdgePartoDiagnosticos:
		return m.clearedparto_diagnosticos
	case parto.EdgeDocumentos:
		return m.cleareddocumentos
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PartoMutation) ClearEdge(name string) error {
	switch name {
	case parto.EdgeMadre:
		m.ClearMadre()
		return nil
	case parto.EdgeUsuarioRegistro:
		m.ClearUsuarioRegistro()
		return nil
	}
	return fmt.Errorf("unknown Parto unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PartoMutation) ResetEdge(name string) error {
	switch name {
	case parto.EdgeMadre:
		m.ResetMadre()
		return nil
	case parto.EdgeUsuarioRegistro:
		m.ResetUsuarioRegistro()
		return nil
	case parto.EdgeRecienNacidos:
		m.ResetRecienNacidos()
		return nil
	case parto.EdgePartoDiagnosticos:
		m.ResetPartoDiagnosticos()
		return nil
	case parto.EdgeDocumentos:
		m.ResetDocumentos()
		return nil
	}
	return fmt.Errorf("unknown Parto edge %s", name)
}

// PartoDiagnosticoMutation represents an operation that mutates the PartoDiagnostico nodes in the graph.
type PartoDiagnosticoMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	clearedFields      map[string]struct{}
	parto              *uuid.UUID
	clearedparto       bool
	diagnostico        *uuid.UUID
	cleareddiagnostico bool
	done               bool
	oldValue           func(context.Context) (*PartoDiagnostico, error)
	predicates         []predicate.PartoDiagnostico
}

var _ ent.Mutation = (*PartoDiagnosticoMutation)(nil)

// partodiagnosticoOption allows management of the mutation configuration using functional options.
type partodiagnosticoOption func(*PartoDiagnosticoMutation)

// newPartoDiagnosticoMutation creates new mutation for the PartoDiagnostico entity.
func newPartoDiagnosticoMutation(c config, op Op, opts ...partodiagnosticoOption) *PartoDiagnosticoMutation {
	m := &PartoDiagnosticoMutation{
		config:        c,
		op:            op,
		typ:           TypePartoDiagnostico,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPartoDiagnosticoID sets the ID field of the mutation.
func withPartoDiagnosticoID(id uuid.UUID) partodiagnosticoOption {
	return func(m *PartoDiagnosticoMutation) {
		var (
			err   error
			once  sync.Once
			value *PartoDiagnostico
		)
		m.oldValue = func(ctx context.Context) (*PartoDiagnostico, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PartoDiagnostico.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPartoDiagnostico sets the old PartoDiagnostico of the mutation.
func withPartoDiagnostico(node *PartoDiagnostico) partodiagnosticoOption {
	return func(m *PartoDiagnosticoMutation) {
		m.oldValue = func(context.Context) (*PartoDiagnostico, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PartoDiagnosticoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PartoDiagnosticoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PartoDiagnostico entities.
func (m *PartoDiagnosticoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PartoDiagnosticoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PartoDiagnosticoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PartoDiagnostico.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PartoDiagnosticoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PartoDiagnosticoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PartoDiagnostico entity.
// If the PartoDiagnostico object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoDiagnosticoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PartoDiagnosticoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPartoID sets the "parto_id" field.
func (m *PartoDiagnosticoMutation) SetPartoID(u uuid.UUID) {
	m.parto = &u
}

// PartoID returns the value of the "parto_id" field in the mutation.
func (m *PartoDiagnosticoMutation) PartoID() (r uuid.UUID, exists bool) {
	v := m.parto
	if v == nil {
		return
	}
	return *v, true
}

// OldPartoID returns the old "parto_id" field's value of the PartoDiagnostico entity.
// If the PartoDiagnostico object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoDiagnosticoMutation) OldPartoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartoID: %w", err)
	}
	return oldValue.PartoID, nil
}

// ResetPartoID resets all changes to the "parto_id" field.
func (m *PartoDiagnosticoMutation) ResetPartoID() {
	m.parto = nil
}

// SetDiagnosticoID sets the "diagnostico_id" field.
func (m *PartoDiagnosticoMutation) SetDiagnosticoID(u uuid.UUID) {
	m.diagnostico = &u
}

// DiagnosticoID returns the value of the "diagnostico_id" field in the mutation.
func (m *PartoDiagnosticoMutation) DiagnosticoID() (r uuid.UUID, exists bool) {
	v := m.diagnostico
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosticoID returns the old "diagnostico_id" field's value of the PartoDiagnostico entity.
// If the PartoDiagnostico object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartoDiagnosticoMutation) OldDiagnosticoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosticoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosticoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosticoID: %w", err)
	}
	return oldValue.DiagnosticoID, nil
}

// ResetDiagnosticoID resets all changes to the "diagnostico_id" field.
func (m *PartoDiagnosticoMutation) ResetDiagnosticoID() {
	m.diagnostico = nil
}

// ClearParto clears the "parto" edge to the Parto entity.
func (m *PartoDiagnosticoMutation) ClearParto() {
	m.clearedparto = true
	m.clearedFields[partodiagnostico.FieldPartoID] = struct{}{}
}

// PartoCleared reports if the "parto" edge to the Parto entity was cleared.
func (m *PartoDiagnosticoMutation) PartoCleared() bool {
	return m.clearedparto
}

// PartoIDs returns the "parto" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PartoID instead. It exists only for internal usage by the builders.
func (m *PartoDiagnosticoMutation) PartoIDs() (ids []uuid.UUID) {
	if id := m.parto; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParto resets all changes to the "parto" edge.
func (m *PartoDiagnosticoMutation) ResetParto() {
	m.parto = nil
	m.clearedparto = false
}

// ClearDiagnostico clears the "diagnostico" edge to the DiagnosticoCIE10 entity.
func (m *PartoDiagnosticoMutation) ClearDiagnostico() {
	m.cleareddiagnostico = true
	m.clearedFields[partodiagnostico.FieldDiagnosticoID] = struct{}{}
}

// DiagnosticoCleared reports if the "diagnostico" edge to the DiagnosticoCIE10 entity was cleared.
func (m *PartoDiagnosticoMutation) DiagnosticoCleared() bool {
	return m.cleareddiagnostico
}

// DiagnosticoIDs returns the "diagnostico" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DiagnosticoID instead. It exists only for internal usage by the builders.
func (m *PartoDiagnosticoMutation) DiagnosticoIDs() (ids []uuid.UUID) {
	if id := m.diagnostico; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDiagnostico resets all changes to the "diagnostico" edge.
func (m *PartoDiagnosticoMutation) ResetDiagnostico() {
	m.diagnostico = nil
	m.cleareddiagnostico = false
}

// Where appends a list predicates to the PartoDiagnosticoMutation builder.
func (m *PartoDiagnosticoMutation) Where(ps ...predicate.PartoDiagnostico) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PartoDiagnosticoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PartoDiagnosticoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PartoDiagnostico, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PartoDiagnosticoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PartoDiagnosticoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PartoDiagnostico).
func (m *PartoDiagnosticoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PartoDiagnosticoMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, partodiagnostico.FieldCreatedAt)
	}
	if m.parto != nil {
		fields = append(fields, partodiagnostico.FieldPartoID)
	}
	if m.diagnostico != nil {
		fields = append(fields, partodiagnostico.FieldDiagnosticoID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PartoDiagnosticoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case partodiagnostico.FieldCreatedAt:
		return m.CreatedAt()
	case partodiagnostico.FieldPartoID:
		return m.PartoID()
	case partodiagnostico.FieldDiagnosticoID:
		return m.DiagnosticoID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PartoDiagnosticoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case partodiagnostico.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case partodiagnostico.FieldPartoID:
		return m.OldPartoID(ctx)
	case partodiagnostico.FieldDiagnosticoID:
		return m.OldDiagnosticoID(ctx)
	}
	return nil, fmt.Errorf("unknown PartoDiagnostico field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartoDiagnosticoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case partodiagnostico.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case partodiagnostico.FieldPartoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartoID(v)
		return nil
	case partodiagnostico.FieldDiagnosticoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosticoID(v)
		return nil
	}
	return fmt.Errorf("unknown PartoDiagnostico field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PartoDiagnosticoMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PartoDiagnosticoMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartoDiagnosticoMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PartoDiagnostico numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PartoDiagnosticoMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PartoDiagnosticoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PartoDiagnosticoMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PartoDiagnostico nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PartoDiagnosticoMutation) ResetField(name string) error {
	switch name {
	case partodiagnostico.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case partodiagnostico.FieldPartoID:
		m.ResetPartoID()
		return nil
	case partodiagnostico.FieldDiagnosticoID:
		m.ResetDiagnosticoID()
		return nil
	}
	return fmt.Errorf("unknown PartoDiagnostico field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PartoDiagnosticoMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.parto != nil {
		edges = append(edges, partodiagnostico.EdgeParto)
	}
	if m.diagnostico != nil {
		edges = append(edges, partodiagnostico.EdgeDiagnostico)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PartoDiagnosticoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case partodiagnostico.EdgeParto:
		if id := m.parto; id != nil {
			return []ent.Value{*id}
		}
	case partodiagnostico.EdgeDiagnostico:
		if id := m.diagnostico; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PartoDiagnosticoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PartoDiagnosticoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PartoDiagnosticoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparto {
		edges = append(edges, partodiagnostico.EdgeParto)
	}
	if m.cleareddiagnostico {
		edges = append(edges, partodiagnostico.EdgeDiagnostico)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PartoDiagnosticoMutation) EdgeCleared(name string) bool {
	switch name {
	case partodiagnostico.EdgeParto:
		return m.clearedparto
	case partodiagnostico.EdgeDiagnostico:
		return m.cleareddiagnostico
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PartoDiagnosticoMutation) ClearEdge(name string) error {
	switch name {
	case partodiagnostico.EdgeParto:
		m.ClearParto()
		return nil
	case partodiagnostico.EdgeDiagnostico:
		m.ClearDiagnostico()
		return nil
	}
	return fmt.Errorf("unknown PartoDiagnostico unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PartoDiagnosticoMutation) ResetEdge(name string) error {
	switch name {
	case partodiagnostico.EdgeParto:
		m.ResetParto()
		return nil
	case partodiagnostico.EdgeDiagnostico:
		m.ResetDiagnostico()
		return nil
	}
	return fmt.Errorf("unknown PartoDiagnostico edge %s", name)
}

// RecienNacidoMutation represents an operation that mutates the RecienNacido nodes in the graph.
type RecienNacidoMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	rut_provisorio          *string
	estado_al_nacer         *reciennacido.EstadoAlNacer
	sexo                    *reciennacido.Sexo
	peso_gramos             *int
	addpeso_gramos          *int
	talla_cm                *float64
	addtalla_cm             *float64
	apgar_1_min             *int
	addapgar_1_min          *int
	apgar_5_min             *int
	addapgar_5_min          *int
	profilaxis_vit_k        *bool
	profilaxis_oftalmica    *bool
	clearedFields           map[string]struct{}
	parto                   *uuid.UUID
	clearedparto            bool
	usuario_registro        *uuid.UUID
	clearedusuario_registro bool
	defuncion               *uuid.UUID
	cleareddefuncion        bool
	done                    bool
	oldValue                func(context.Context) (*RecienNacido, error)
	predicates              []predicate.RecienNacido
}

var _ ent.Mutation = (*RecienNacidoMutation)(nil)

// reciennacidoOption allows management of the mutation configuration using functional options.
type reciennacidoOption func(*RecienNacidoMutation)

// newRecienNacidoMutation creates new mutation for the RecienNacido entity.
func newRecienNacidoMutation(c config, op Op, opts ...reciennacidoOption) *RecienNacidoMutation {
	m := &RecienNacidoMutation{
		config:        c,
		op:            op,
		typ:           TypeRecienNacido,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecienNacidoID sets the ID field of the mutation.
func withRecienNacidoID(id uuid.UUID) reciennacidoOption {
	return func(m *RecienNacidoMutation) {
		var (
			err   error
			once  sync.Once
			value *RecienNacido
		)
		m.oldValue = func(ctx context.Context) (*RecienNacido, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecienNacido.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecienNacido sets the old RecienNacido of the mutation.
func withRecienNacido(node *RecienNacido) reciennacidoOption {
	return func(m *RecienNacidoMutation) {
		m.oldValue = func(context.Context) (*RecienNacido, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecienNacidoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecienNacidoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecienNacido entities.
func (m *RecienNacidoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecienNacidoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecienNacidoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecienNacido.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RecienNacidoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecienNacidoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecienNacidoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecienNacidoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecienNacidoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecienNacidoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPartoID sets the "parto_id" field.
func (m *RecienNacidoMutation) SetPartoID(u uuid.UUID) {
	m.parto = &u
}

// PartoID returns the value of the "parto_id" field in the mutation.
func (m *RecienNacidoMutation) PartoID() (r uuid.UUID, exists bool) {
	v := m.parto
	if v == nil {
		return
	}
	return *v, true
}

// OldPartoID returns the old "parto_id" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldPartoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartoID: %w", err)
	}
	return oldValue.PartoID, nil
}

// ResetPartoID resets all changes to the "parto_id" field.
func (m *RecienNacidoMutation) ResetPartoID() {
	m.parto = nil
}

// SetRutProvisorio sets the "rut_provisorio" field.
func (m *RecienNacidoMutation) SetRutProvisorio(s string) {
	m.rut_provisorio = &s
}

// RutProvisorio returns the value of the "rut_provisorio" field in the mutation.
func (m *RecienNacidoMutation) RutProvisorio() (r string, exists bool) {
	v := m.rut_provisorio
	if v == nil {
		return
	}
	return *v, true
}

// OldRutProvisorio returns the old "rut_provisorio" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldRutProvisorio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRutProvisorio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRutProvisorio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRutProvisorio: %w", err)
	}
	return oldValue.RutProvisorio, nil
}

// ClearRutProvisorio clears the value of the "rut_provisorio" field.
func (m *RecienNacidoMutation) ClearRutProvisorio() {
	m.rut_provisorio = nil
	m.clearedFields[reciennacido.FieldRutProvisorio] = struct{}{}
}

// RutProvisorioCleared returns if the "rut_provisorio" field was cleared in this mutation.
func (m *RecienNacidoMutation) RutProvisorioCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldRutProvisorio]
	return ok
}

// ResetRutProvisorio resets all changes to the "rut_provisorio" field.
func (m *RecienNacidoMutation) ResetRutProvisorio() {
	m.rut_provisorio = nil
	delete(m.clearedFields, reciennacido.FieldRutProvisorio)
}

// SetEstadoAlNacer sets the "estado_al_nacer" field.
func (m *RecienNacidoMutation) SetEstadoAlNacer(ran reciennacido.EstadoAlNacer) {
	m.estado_al_nacer = &ran
}

// EstadoAlNacer returns the value of the "estado_al_nacer" field in the mutation.
func (m *RecienNacidoMutation) EstadoAlNacer() (r reciennacido.EstadoAlNacer, exists bool) {
	v := m.estado_al_nacer
	if v == nil {
		return
	}
	return *v, true
}

// OldEstadoAlNacer returns the old "estado_al_nacer" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldEstadoAlNacer(ctx context.Context) (v reciennacido.EstadoAlNacer, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstadoAlNacer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstadoAlNacer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstadoAlNacer: %w", err)
	}
	return oldValue.EstadoAlNacer, nil
}

// ResetEstadoAlNacer resets all changes to the "estado_al_nacer" field.
func (m *RecienNacidoMutation) ResetEstadoAlNacer() {
	m.estado_al_nacer = nil
}

// SetSexo sets the "sexo" field.
func (m *RecienNacidoMutation) SetSexo(r reciennacido.Sexo) {
	m.sexo = &r
}

// Sexo returns the value of the "sexo" field in the mutation.
func (m *RecienNacidoMutation) Sexo() (r reciennacido.Sexo, exists bool) {
	v := m.sexo
	if v == nil {
		return
	}
	return *v, true
}

// OldSexo returns the old "sexo" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldSexo(ctx context.Context) (v reciennacido.Sexo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSexo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSexo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSexo: %w", err)
	}
	return oldValue.Sexo, nil
}

// ClearSexo clears the value of the "sexo" field.
func (m *RecienNacidoMutation) ClearSexo() {
	m.sexo = nil
	m.clearedFields[reciennacido.FieldSexo] = struct{}{}
}

// SexoCleared returns if the "sexo" field was cleared in this mutation.
func (m *RecienNacidoMutation) SexoCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldSexo]
	return ok
}

// ResetSexo resets all changes to the "sexo" field.
func (m *RecienNacidoMutation) ResetSexo() {
	m.sexo = nil
	delete(m.clearedFields, reciennacido.FieldSexo)
}

// SetPesoGramos sets the "peso_gramos" field.
func (m *RecienNacidoMutation) SetPesoGramos(i int) {
	m.peso_gramos = &i
	m.addpeso_gramos = nil
}

// PesoGramos returns the value of the "peso_gramos" field in the mutation.
func (m *RecienNacidoMutation) PesoGramos() (r int, exists bool) {
	v := m.peso_gramos
	if v == nil {
		return
	}
	return *v, true
}

// OldPesoGramos returns the old "peso_gramos" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldPesoGramos(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPesoGramos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPesoGramos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPesoGramos: %w", err)
	}
	return oldValue.PesoGramos, nil
}

// AddPesoGramos adds i to the "peso_gramos" field.
func (m *RecienNacidoMutation) AddPesoGramos(i int) {
	if m.addpeso_gramos != nil {
		*m.addpeso_gramos += i
	} else {
		m.addpeso_gramos = &i
	}
}

// AddedPesoGramos returns the value that was added to the "peso_gramos" field in this mutation.
func (m *RecienNacidoMutation) AddedPesoGramos() (r int, exists bool) {
	v := m.addpeso_gramos
	if v == nil {
		return
	}
	return *v, true
}

// ClearPesoGramos clears the value of the "peso_gramos" field.
func (m *RecienNacidoMutation) ClearPesoGramos() {
	m.peso_gramos = nil
	m.addpeso_gramos = nil
	m.clearedFields[reciennacido.FieldPesoGramos] = struct{}{}
}

// PesoGramosCleared returns if the "peso_gramos" field was cleared in this mutation.
func (m *RecienNacidoMutation) PesoGramosCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldPesoGramos]
	return ok
}

// ResetPesoGramos resets all changes to the "peso_gramos" field.
func (m *RecienNacidoMutation) ResetPesoGramos() {
	m.peso_gramos = nil
	m.addpeso_gramos = nil
	delete(m.clearedFields, reciennacido.FieldPesoGramos)
}

// SetTallaCm sets the "talla_cm" field.
func (m *RecienNacidoMutation) SetTallaCm(f float64) {
	m.talla_cm = &f
	m.addtalla_cm = nil
}

// TallaCm returns the value of the "talla_cm" field in the mutation.
func (m *RecienNacidoMutation) TallaCm() (r float64, exists bool) {
	v := m.talla_cm
	if v == nil {
		return
	}
	return *v, true
}

// OldTallaCm returns the old "talla_cm" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldTallaCm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTallaCm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTallaCm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTallaCm: %w", err)
	}
	return oldValue.TallaCm, nil
}

// AddTallaCm adds f to the "talla_cm" field.
func (m *RecienNacidoMutation) AddTallaCm(f float64) {
	if m.addtalla_cm != nil {
		*m.addtalla_cm += f
	} else {
		m.addtalla_cm = &f
	}
}

// AddedTallaCm returns the value that was added to the "talla_cm" field in this mutation.
func (m *RecienNacidoMutation) AddedTallaCm() (r float64, exists bool) {
	v := m.addtalla_cm
	if v == nil {
		return
	}
	return *v, true
}

// ClearTallaCm clears the value of the "talla_cm" field.
func (m *RecienNacidoMutation) ClearTallaCm() {
	m.talla_cm = nil
	m.addtalla_cm = nil
	m.clearedFields[reciennacido.FieldTallaCm] = struct{}{}
}

// TallaCmCleared returns if the "talla_cm" field was cleared in this mutation.
func (m *RecienNacidoMutation) TallaCmCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldTallaCm]
	return ok
}

// ResetTallaCm resets all changes to the "talla_cm" field.
func (m *RecienNacidoMutation) ResetTallaCm() {
	m.talla_cm = nil
	m.addtalla_cm = nil
	delete(m.clearedFields, reciennacido.FieldTallaCm)
}

// SetApgar1Min sets the "apgar_1_min" field.
func (m *RecienNacidoMutation) SetApgar1Min(i int) {
	m.apgar_1_min = &i
	m.addapgar_1_min = nil
}

// Apgar1Min returns the value of the "apgar_1_min" field in the mutation.
func (m *RecienNacidoMutation) Apgar1Min() (r int, exists bool) {
	v := m.apgar_1_min
	if v == nil {
		return
	}
	return *v, true
}

// OldApgar1Min returns the old "apgar_1_min" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldApgar1Min(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApgar1Min is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApgar1Min requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApgar1Min: %w", err)
	}
	return oldValue.Apgar1Min, nil
}

// AddApgar1Min adds i to the "apgar_1_min" field.
func (m *RecienNacidoMutation) AddApgar1Min(i int) {
	if m.addapgar_1_min != nil {
		*m.addapgar_1_min += i
	} else {
		m.addapgar_1_min = &i
	}
}

// AddedApgar1Min returns the value that was added to the "apgar_1_min" field in this mutation.
func (m *RecienNacidoMutation) AddedApgar1Min() (r int, exists bool) {
	v := m.addapgar_1_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearApgar1Min clears the value of the "apgar_1_min" field.
func (m *RecienNacidoMutation) ClearApgar1Min() {
	m.apgar_1_min = nil
	m.addapgar_1_min = nil
	m.clearedFields[reciennacido.FieldApgar1Min] = struct{}{}
}

// Apgar1MinCleared returns if the "apgar_1_min" field was cleared in this mutation.
func (m *RecienNacidoMutation) Apgar1MinCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldApgar1Min]
	return ok
}

// ResetApgar1Min resets all changes to the "apgar_1_min" field.
func (m *RecienNacidoMutation) ResetApgar1Min() {
	m.apgar_1_min = nil
	m.addapgar_1_min = nil
	delete(m.clearedFields, reciennacido.FieldApgar1Min)
}

// SetApgar5Min sets the "apgar_5_min" field.
func (m *RecienNacidoMutation) SetApgar5Min(i int) {
	m.apgar_5_min = &i
	m.addapgar_5_min = nil
}

// Apgar5Min returns the value of the "apgar_5_min" field in the mutation.
func (m *RecienNacidoMutation) Apgar5Min() (r int, exists bool) {
	v := m.apgar_5_min
	if v == nil {
		return
	}
	return *v, true
}

// OldApgar5Min returns the old "apgar_5_min" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldApgar5Min(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApgar5Min is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApgar5Min requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApgar5Min: %w", err)
	}
	return oldValue.Apgar5Min, nil
}

// AddApgar5Min adds i to the "apgar_5_min" field.
func (m *RecienNacidoMutation) AddApgar5Min(i int) {
	if m.addapgar_5_min != nil {
		*m.addapgar_5_min += i
	} else {
		m.addapgar_5_min = &i
	}
}

// AddedApgar5Min returns the value that was added to the "apgar_5_min" field in this mutation.
func (m *RecienNacidoMutation) AddedApgar5Min() (r int, exists bool) {
	v := m.addapgar_5_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearApgar5Min clears the value of the "apgar_5_min" field.
func (m *RecienNacidoMutation) ClearApgar5Min() {
	m.apgar_5_min = nil
	m.addapgar_5_min = nil
	m.clearedFields[reciennacido.FieldApgar5Min] = struct{}{}
}

// Apgar5MinCleared returns if the "apgar_5_min" field was cleared in this mutation.
func (m *RecienNacidoMutation) Apgar5MinCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldApgar5Min]
	return ok
}

// ResetApgar5Min resets all changes to the "apgar_5_min" field.
func (m *RecienNacidoMutation) ResetApgar5Min() {
	m.apgar_5_min = nil
	m.addapgar_5_min = nil
	delete(m.clearedFields, reciennacido.FieldApgar5Min)
}

// SetProfilaxisVitK sets the "profilaxis_vit_k" field.
func (m *RecienNacidoMutation) SetProfilaxisVitK(b bool) {
	m.profilaxis_vit_k = &b
}

// ProfilaxisVitK returns the value of the "profilaxis_vit_k" field in the mutation.
func (m *RecienNacidoMutation) ProfilaxisVitK() (r bool, exists bool) {
	v := m.profilaxis_vit_k
	if v == nil {
		return
	}
	return *v, true
}

// OldProfilaxisVitK returns the old "profilaxis_vit_k" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldProfilaxisVitK(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfilaxisVitK is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfilaxisVitK requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfilaxisVitK: %w", err)
	}
	return oldValue.ProfilaxisVitK, nil
}

// ResetProfilaxisVitK resets all changes to the "profilaxis_vit_k" field.
func (m *RecienNacidoMutation) ResetProfilaxisVitK() {
	m.profilaxis_vit_k = nil
}

// SetProfilaxisOftalmica sets the "profilaxis_oftalmica" field.
func (m *RecienNacidoMutation) SetProfilaxisOftalmica(b bool) {
	m.profilaxis_oftalmica = &b
}

// ProfilaxisOftalmica returns the value of the "profilaxis_oftalmica" field in the mutation.
func (m *RecienNacidoMutation) ProfilaxisOftalmica() (r bool, exists bool) {
	v := m.profilaxis_oftalmica
	if v == nil {
		return
	}
	return *v, true
}

// OldProfilaxisOftalmica returns the old "profilaxis_oftalmica" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldProfilaxisOftalmica(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfilaxisOftalmica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfilaxisOftalmica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfilaxisOftalmica: %w", err)
	}
	return oldValue.ProfilaxisOftalmica, nil
}

// ResetProfilaxisOftalmica resets all changes to the "profilaxis_oftalmica" field.
func (m *RecienNacidoMutation) ResetProfilaxisOftalmica() {
	m.profilaxis_oftalmica = nil
}

// SetUsuarioRegistroID sets the "usuario_registro_id" field.
func (m *RecienNacidoMutation) SetUsuarioRegistroID(u uuid.UUID) {
	m.usuario_registro = &u
}

// UsuarioRegistroID returns the value of the "usuario_registro_id" field in the mutation.
func (m *RecienNacidoMutation) UsuarioRegistroID() (r uuid.UUID, exists bool) {
	v := m.usuario_registro
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioRegistroID returns the old "usuario_registro_id" field's value of the RecienNacido entity.
// If the RecienNacido object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecienNacidoMutation) OldUsuarioRegistroID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioRegistroID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioRegistroID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioRegistroID: %w", err)
	}
	return oldValue.UsuarioRegistroID, nil
}

// ClearUsuarioRegistroID clears the value of the "usuario_registro_id" field.
func (m *RecienNacidoMutation) ClearUsuarioRegistroID() {
	m.usuario_registro = nil
	m.clearedFields[reciennacido.FieldUsuarioRegistroID] = struct{}{}
}

// UsuarioRegistroIDCleared returns if the "usuario_registro_id" field was cleared in this mutation.
func (m *RecienNacidoMutation) UsuarioRegistroIDCleared() bool {
	_, ok := m.clearedFields[reciennacido.FieldUsuarioRegistroID]
	return ok
}

// ResetUsuarioRegistroID resets all changes to the "usuario_registro_id" field.
func (m *RecienNacidoMutation) ResetUsuarioRegistroID() {
	m.usuario_registro = nil
	delete(m.clearedFields, reciennacido.FieldUsuarioRegistroID)
}

// ClearParto clears the "parto" edge to the Parto entity.
func (m *RecienNacidoMutation) ClearParto() {
	m.clearedparto = true
	m.clearedFields[reciennacido.FieldPartoID] = struct{}{}
}

// PartoCleared reports if the "parto" edge to the Parto entity was cleared.
func (m *RecienNacidoMutation) PartoCleared() bool {
	return m.clearedparto
}

// PartoIDs returns the "parto" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PartoID instead. It exists only for internal usage by the builders.
func (m *RecienNacidoMutation) PartoIDs() (ids []uuid.UUID) {
	if id := m.parto; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParto resets all changes to the "parto" edge.
func (m *RecienNacidoMutation) ResetParto() {
	m.parto = nil
	m.clearedparto = false
}

// ClearUsuarioRegistro clears the "usuario_registro" edge to the Usuario entity.
func (m *RecienNacidoMutation) ClearUsuarioRegistro() {
	m.clearedusuario_registro = true
	m.clearedFields[reciennacido.FieldUsuarioRegistroID] = struct{}{}
}

// UsuarioRegistroCleared reports if the "usuario_registro" edge to the Usuario entity was cleared.
func (m *RecienNacidoMutation) UsuarioRegistroCleared() bool {
	return m.UsuarioRegistroIDCleared() || m.clearedusuario_registro
}

// UsuarioRegistroIDs returns the "usuario_registro" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UsuarioRegistroID instead. It exists only for internal usage by the builders.
func (m *RecienNacidoMutation) UsuarioRegistroIDs() (ids []uuid.UUID) {
	if id := m.usuario_registro; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUsuarioRegistro resets all changes to the "usuario_registro" edge.
func (m *RecienNacidoMutation) ResetUsuarioRegistro() {
	m.usuario_registro = nil
	m.clearedusuario_registro = false
}

// SetDefuncionID sets the "defuncion" edge to the Defuncion entity by id.
func (m *RecienNacidoMutation) SetDefuncionID(id uuid.UUID) {
	m.defuncion = &id
}

// ClearDefuncion clears the "defuncion" edge to the Defuncion entity.
func (m *RecienNacidoMutation) ClearDefuncion() {
	m.cleareddefuncion = true
}

// DefuncionCleared reports if the "defuncion" edge to the Defuncion entity was cleared.
func (m *RecienNacidoMutation) DefuncionCleared() bool {
	return m.cleareddefuncion
}

// DefuncionID returns the "defuncion" edge ID in the mutation.
func (m *RecienNacidoMutation) DefuncionID() (id uuid.UUID, exists bool) {
	if m.defuncion != nil {
		return *m.defuncion, true
	}
	return
}

// DefuncionIDs returns the "defuncion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefuncionID instead. It exists only for internal usage by the builders.
func (m *RecienNacidoMutation) DefuncionIDs() (ids []uuid.UUID) {
	if id := m.defuncion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefuncion resets all changes to the "defuncion" edge.
func (m *RecienNacidoMutation) ResetDefuncion() {
	m.defuncion = nil
	m.cleareddefuncion = false
}

// Where appends a list predicates to the RecienNacidoMutation builder.
func (m *RecienNacidoMutation) Where(ps ...predicate.RecienNacido) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecienNacidoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecienNacidoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecienNacido, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecienNacidoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecienNacidoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecienNacido).
func (m *RecienNacidoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecienNacidoMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, reciennacido.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reciennacido.FieldUpdatedAt)
	}
	if m.parto != nil {
		fields = append(fields, reciennacido.FieldPartoID)
	}
	if m.rut_provisorio != nil {
		fields = append(fields, reciennacido.FieldRutProvisorio)
	}
	if m.estado_al_nacer != nil {
		fields = append(fields, reciennacido.FieldEstadoAlNacer)
	}
	if m.sexo != nil {
		fields = append(fields, reciennacido.FieldSexo)
	}
	if m.peso_gramos != nil {
		fields = append(fields, reciennacido.FieldPesoGramos)
	}
	if m.talla_cm != nil {
		fields = append(fields, reciennacido.FieldTallaCm)
	}
	if m.apgar_1_min != nil {
		fields = append(fields, reciennacido.FieldApgar1Min)
	}
	if m.apgar_5_min != nil {
		fields = append(fields, reciennacido.FieldApgar5Min)
	}
	if m.profilaxis_vit_k != nil {
		fields = append(fields, reciennacido.FieldProfilaxisVitK)
	}
	if m.profilaxis_oftalmica != nil {
		fields = append(fields, reciennacido.FieldProfilaxisOftalmica)
	}
	if m.usuario_registro != nil {
		fields = append(fields, reciennacido.FieldUsuarioRegistroID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecienNacidoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reciennacido.FieldCreatedAt:
		return m.CreatedAt()
	case reciennacido.FieldUpdatedAt:
		return m.UpdatedAt()
	case reciennacido.FieldPartoID:
		return m.PartoID()
	case reciennacido.FieldRutProvisorio:
		return m.RutProvisorio()
	case reciennacido.FieldEstadoAlNacer:
		return m.EstadoAlNacer()
	case reciennacido.FieldSexo:
		return m.Sexo()
	case reciennacido.FieldPesoGramos:
		return m.PesoGramos()
	case reciennacido.FieldTallaCm:
		return m.TallaCm()
	case reciennacido.FieldApgar1Min:
		return m.Apgar1Min()
	case reciennacido.FieldApgar5Min:
		return m.Apgar5Min()
	case reciennacido.FieldProfilaxisVitK:
		return m.ProfilaxisVitK()
	case reciennacido.FieldProfilaxisOftalmica:
		return m.ProfilaxisOftalmica()
	case reciennacido.FieldUsuarioRegistroID:
		return m.UsuarioRegistroID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecienNacidoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reciennacido.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reciennacido.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reciennacido.FieldPartoID:
		return m.OldPartoID(ctx)
	case reciennacido.FieldRutProvisorio:
		return m.OldRutProvisorio(ctx)
	case reciennacido.FieldEstadoAlNacer:
		return m.OldEstadoAlNacer(ctx)
	case reciennacido.FieldSexo:
		return m.OldSexo(ctx)
	case reciennacido.FieldPesoGramos:
		return m.OldPesoGramos(ctx)
	case reciennacido.FieldTallaCm:
		return m.OldTallaCm(ctx)
	case reciennacido.FieldApgar1Min:
		return m.OldApgar1Min(ctx)
	case reciennacido.FieldApgar5Min:
		return m.OldApgar5Min(ctx)
	case reciennacido.FieldProfilaxisVitK:
		return m.OldProfilaxisVitK(ctx)
	case reciennacido.FieldProfilaxisOftalmica:
		return m.OldProfilaxisOftalmica(ctx)
	case reciennacido.FieldUsuarioRegistroID:
		return m.OldUsuarioRegistroID(ctx)
	}
	return nil, fmt.Errorf("unknown RecienNacido field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecienNacidoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reciennacido.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reciennacido.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reciennacido.FieldPartoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartoID(v)
		return nil
	case reciennacido.FieldRutProvisorio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRutProvisorio(v)
		return nil
	case reciennacido.FieldEstadoAlNacer:
		v, ok := value.(reciennacido.EstadoAlNacer)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstadoAlNacer(v)
		return nil
	case reciennacido.FieldSexo:
		v, ok := value.(reciennacido.Sexo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSexo(v)
		return nil
	case reciennacido.FieldPesoGramos:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPesoGramos(v)
		return nil
	case reciennacido.FieldTallaCm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTallaCm(v)
		return nil
	case reciennacido.FieldApgar1Min:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApgar1Min(v)
		return nil
	case reciennacido.FieldApgar5Min:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApgar5Min(v)
		return nil
	case reciennacido.FieldProfilaxisVitK:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfilaxisVitK(v)
		return nil
	case reciennacido.FieldProfilaxisOftalmica:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfilaxisOftalmica(v)
		return nil
	case reciennacido.FieldUsuarioRegistroID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioRegistroID(v)
		return nil
	}
	return fmt.Errorf("unknown RecienNacido field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecienNacidoMutation) AddedFields() []string {
	var fields []string
	if m.addpeso_gramos != nil {
		fields = append(fields, reciennacido.FieldPesoGramos)
	}
	if m.addtalla_cm != nil {
		fields = append(fields, reciennacido.FieldTallaCm)
	}
	if m.addapgar_1_min != nil {
		fields = append(fields, reciennacido.FieldApgar1Min)
	}
	if m.addapgar_5_min != nil {
		fields = append(fields, reciennacido.FieldApgar5Min)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecienNacidoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reciennacido.FieldPesoGramos:
		return m.AddedPesoGramos()
	case reciennacido.FieldTallaCm:
		return m.AddedTallaCm()
	case reciennacido.FieldApgar1Min:
		return m.AddedApgar1Min()
	case reciennacido.FieldApgar5Min:
		return m.AddedApgar5Min()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecienNacidoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reciennacido.FieldPesoGramos:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPesoGramos(v)
		return nil
	case reciennacido.FieldTallaCm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTallaCm(v)
		return nil
	case reciennacido.FieldApgar1Min:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApgar1Min(v)
		return nil
	case reciennacido.FieldApgar5Min:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddApgar5Min(v)
		return nil
	}
	return fmt.Errorf("unknown RecienNacido numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecienNacidoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reciennacido.FieldRutProvisorio) {
		fields = append(fields, reciennacido.FieldRutProvisorio)
	}
	if m.FieldCleared(reciennacido.FieldSexo) {
		fields = append(fields, reciennacido.FieldSexo)
	}
	if m.FieldCleared(reciennacido.FieldPesoGramos) {
		fields = append(fields, reciennacido.FieldPesoGramos)
	}
	if m.FieldCleared(reciennacido.FieldTallaCm) {
		fields = append(fields, reciennacido.FieldTallaCm)
	}
	if m.FieldCleared(reciennacido.FieldApgar1Min) {
		fields = append(fields, reciennacido.FieldApgar1Min)
	}
	if m.FieldCleared(reciennacido.FieldApgar5Min) {
		fields = append(fields, reciennacido.FieldApgar5Min)
	}
	if m.FieldCleared(reciennacido.FieldUsuarioRegistroID) {
		fields = append(fields, reciennacido.FieldUsuarioRegistroID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecienNacidoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecienNacidoMutation) ClearField(name string) error {
	switch name {
	case reciennacido.FieldRutProvisorio:
		m.ClearRutProvisorio()
		return nil
	case reciennacido.FieldSexo:
		m.ClearSexo()
		return nil
	case reciennacido.FieldPesoGramos:
		m.ClearPesoGramos()
		return nil
	case reciennacido.FieldTallaCm:
		m.ClearTallaCm()
		return nil
	case reciennacido.FieldApgar1Min:
		m.ClearApgar1Min()
		return nil
	case reciennacido.FieldApgar5Min:
		m.ClearApgar5Min()
		return nil
	case reciennacido.FieldUsuarioRegistroID:
		m.ClearUsuarioRegistroID()
		return nil
	}
	return fmt.Errorf("unknown RecienNacido nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecienNacidoMutation) ResetField(name string) error {
	switch name {
	case reciennacido.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reciennacido.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reciennacido.FieldPartoID:
		m.ResetPartoID()
		return nil
	case reciennacido.FieldRutProvisorio:
		m.ResetRutProvisorio()
		return nil
	case reciennacido.FieldEstadoAlNacer:
		m.ResetEstadoAlNacer()
		return nil
	case reciennacido.FieldSexo:
		m.ResetSexo()
		return nil
	case reciennacido.FieldPesoGramos:
		m.ResetPesoGramos()
		return nil
	case reciennacido.FieldTallaCm:
		m.ResetTallaCm()
		return nil
	case reciennacido.FieldApgar1Min:
		m.ResetApgar1Min()
		return nil
	case reciennacido.FieldApgar5Min:
		m.ResetApgar5Min()
		return nil
	case reciennacido.FieldProfilaxisVitK:
		m.ResetProfilaxisVitK()
		return nil
	case reciennacido.FieldProfilaxisOftalmica:
		m.ResetProfilaxisOftalmica()
		return nil
	case reciennacido.FieldUsuarioRegistroID:
		m.ResetUsuarioRegistroID()
		return nil
	}
	return fmt.Errorf("unknown RecienNacido field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecienNacidoMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.parto != nil {
		edges = append(edges, reciennacido.EdgeParto)
	}
	if m.usuario_registro != nil {
		edges = append(edges, reciennacido.EdgeUsuarioRegistro)
	}
	if m.defuncion != nil {
		edges = append(edges, reciennacido.EdgeDefuncion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecienNacidoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reciennacido.EdgeParto:
		if id := m.parto; id != nil {
			return []ent.Value{*id}
		}
	case reciennacido.EdgeUsuarioRegistro:
		if id := m.usuario_registro; id != nil {
			return []ent.Value{*id}
		}
	case reciennacido.EdgeDefuncion:
		if id := m.defuncion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecienNacidoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecienNacidoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecienNacidoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparto {
		edges = append(edges, reciennacido.EdgeParto)
	}
	if m.clearedusuario_registro {
		edges = append(edges, reciennacido.EdgeUsuarioRegistro)
	}
	if m.cleareddefuncion {
		edges = append(edges, reciennacido.EdgeDefuncion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecienNacidoMutation) EdgeCleared(name string) bool {
	switch name {
	case reciennacido.EdgeParto:
		return m.clearedparto
	case reciennacido.EdgeUsuarioRegistro:
		return m.clearedusuario_registro
	case reciennacido.EdgeDefuncion:
		return m.cleareddefuncion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecienNacidoMutation) ClearEdge(name string) error {
	switch name {
	case reciennacido.EdgeParto:
		m.ClearParto()
		return nil
	case reciennacido.EdgeUsuarioRegistro:
		m.ClearUsuarioRegistro()
		return nil
	case reciennacido.EdgeDefuncion:
		m.ClearDefuncion()
		return nil
	}
	return fmt.Errorf("unknown RecienNacido unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecienNacidoMutation) ResetEdge(name string) error {
	switch name {
	case reciennacido.EdgeParto:
		m.ResetParto()
		return nil
	case reciennacido.EdgeUsuarioRegistro:
		m.ResetUsuarioRegistro()
		return nil
	case reciennacido.EdgeDefuncion:
		m.ResetDefuncion()
		return nil
	}
	return fmt.Errorf("unknown RecienNacido edge %s", name)
}

// RolMutation represents an operation that mutates the Rol nodes in the graph.
type RolMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	nombre          *string
	descripcion     *string
	clearedFields   map[string]struct{}
	usuarios        map[uuid.UUID]struct{}
	removedusuarios map[uuid.UUID]struct{}
	clearedusuarios bool
	done            bool
	oldValue        func(context.Context) (*Rol, error)
	predicates      []predicate.Rol
}

var _ ent.Mutation = (*RolMutation)(nil)

// rolOption allows management of the mutation configuration using functional options.
type rolOption func(*RolMutation)

// newRolMutation creates new mutation for the Rol entity.
func newRolMutation(c config, op Op, opts ...rolOption) *RolMutation {
	m := &RolMutation{
		config:        c,
		op:            op,
		typ:           TypeRol,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRolID sets the ID field of the mutation.
func withRolID(id uuid.UUID) rolOption {
	return func(m *RolMutation) {
		var (
			err   error
			once  sync.Once
			value *Rol
		)
		m.oldValue = func(ctx context.Context) (*Rol, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rol.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRol sets the old Rol of the mutation.
func withRol(node *Rol) rolOption {
	return func(m *RolMutation) {
		m.oldValue = func(context.Context) (*Rol, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rol entities.
func (m *RolMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RolMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RolMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rol.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rol entity.
// If the Rol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RolMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RolMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Rol entity.
// If the Rol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RolMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RolMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNombre sets the "nombre" field.
func (m *RolMutation) SetNombre(s string) {
	m.nombre = &s
}

// Nombre returns the value of the "nombre" field in the mutation.
func (m *RolMutation) Nombre() (r string, exists bool) {
	v := m.nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldNombre returns the old "nombre" field's value of the Rol entity.
// If the Rol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RolMutation) OldNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombre: %w", err)
	}
	return oldValue.Nombre, nil
}

// ResetNombre resets all changes to the "nombre" field.
func (m *RolMutation) ResetNombre() {
	m.nombre = nil
}

// SetDescripcion sets the "descripcion" field.
func (m *RolMutation) SetDescripcion(s string) {
	m.descripcion = &s
}

// Descripcion returns the value of the "descripcion" field in the mutation.
func (m *RolMutation) Descripcion() (r string, exists bool) {
	v := m.descripcion
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcion returns the old "descripcion" field's value of the Rol entity.
// If the Rol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RolMutation) OldDescripcion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcion: %w", err)
	}
	return oldValue.Descripcion, nil
}

// ClearDescripcion clears the value of the "descripcion" field.
func (m *RolMutation) ClearDescripcion() {
	m.descripcion = nil
	m.clearedFields[rol.FieldDescripcion] = struct{}{}
}

// DescripcionCleared returns if the "descripcion" field was cleared in this mutation.
func (m *RolMutation) DescripcionCleared() bool {
	_, ok := m.clearedFields[rol.FieldDescripcion]
	return ok
}

// ResetDescripcion resets all changes to the "descripcion" field.
func (m *RolMutation) ResetDescripcion() {
	m.descripcion = nil
	delete(m.clearedFields, rol.FieldDescripcion)
}

// AddUsuarioIDs adds the "usuarios" edge to the Usuario entity by ids.
func (m *RolMutation) AddUsuarioIDs(ids ...uuid.UUID) {
	if m.usuarios == nil {
		m.usuarios = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.usuarios[ids[i]] = struct{}{}
	}
}

// ClearUsuarios clears the "usuarios" edge to the Usuario entity.
func (m *RolMutation) ClearUsuarios() {
	m.clearedusuarios = true
}

// UsuariosCleared reports if the "usuarios" edge to the Usuario entity was cleared.
func (m *RolMutation) UsuariosCleared() bool {
	return m.clearedusuarios
}

// RemoveUsuarioIDs removes the "usuarios" edge to the Usuario entity by IDs.
func (m *RolMutation) RemoveUsuarioIDs(ids ...uuid.UUID) {
	if m.removedusuarios == nil {
		m.removedusuarios = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.usuarios, ids[i])
		m.removedusuarios[ids[i]] = struct{}{}
	}
}

// RemovedUsuarios returns the removed IDs of the "usuarios" edge to the Usuario entity.
func (m *RolMutation) RemovedUsuariosIDs() (ids []uuid.UUID) {
	for id := range m.removedusuarios {
		ids = append(ids, id)
	}
	return
}

// UsuariosIDs returns the "usuarios" edge IDs in the mutation.
func (m *RolMutation) UsuariosIDs() (ids []uuid.UUID) {
	for id := range m.usuarios {
		ids = append(ids, id)
	}
	return
}

// ResetUsuarios resets all changes to the "usuarios" edge.
func (m *RolMutation) ResetUsuarios() {
	m.usuarios = nil
	m.clearedusuarios = false
	m.removedusuarios = nil
}

// Where appends a list predicates to the RolMutation builder.
func (m *RolMutation) Where(ps ...predicate.Rol) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rol, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rol).
func (m *RolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RolMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, rol.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rol.FieldUpdatedAt)
	}
	if m.nombre != nil {
		fields = append(fields, rol.FieldNombre)
	}
	if m.descripcion != nil {
		fields = append(fields, rol.FieldDescripcion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rol.FieldCreatedAt:
		return m.CreatedAt()
	case rol.FieldUpdatedAt:
		return m.UpdatedAt()
	case rol.FieldNombre:
		return m.Nombre()
	case rol.FieldDescripcion:
		return m.Descripcion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rol.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rol.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case rol.FieldNombre:
		return m.OldNombre(ctx)
	case rol.FieldDescripcion:
		return m.OldDescripcion(ctx)
	}
	return nil, fmt.Errorf("unknown Rol field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rol.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rol.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case rol.FieldNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombre(v)
		return nil
	case rol.FieldDescripcion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcion(v)
		return nil
	}
	return fmt.Errorf("unknown Rol field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Rol numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rol.FieldDescripcion) {
		fields = append(fields, rol.FieldDescripcion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RolMutation) ClearField(name string) error {
	switch name {
	case rol.FieldDescripcion:
		m.ClearDescripcion()
		return nil
	}
	return fmt.Errorf("unknown Rol nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RolMutation) ResetField(name string) error {
	switch name {
	case rol.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rol.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case rol.FieldNombre:
		m.ResetNombre()
		return nil
	case rol.FieldDescripcion:
		m.ResetDescripcion()
		return nil
	}
	return fmt.Errorf("unknown Rol field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RolMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.usuarios != nil {
		edges = append(edges, rol.EdgeUsuarios)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rol.EdgeUsuarios:
		ids := make([]ent.Value, 0, len(m.usuarios))
		for id := range m.usuarios {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusuarios != nil {
		edges = append(edges, rol.EdgeUsuarios)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RolMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rol.EdgeUsuarios:
		ids := make([]ent.Value, 0, len(m.removedusuarios))
		for id := range m.removedusuarios {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusuarios {
		edges = append(edges, rol.EdgeUsuarios)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RolMutation) EdgeCleared(name string) bool {
	switch name {
	case rol.EdgeUsuarios:
		return m.clearedusuarios
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RolMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Rol unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RolMutation) ResetEdge(name string) error {
	switch name {
	case rol.EdgeUsuarios:
		m.ResetUsuarios()
		return nil
	}
	return fmt.Errorf("unknown Rol edge %s", name)
}

// UsuarioMutation represents an operation that mutates the Usuario nodes in the graph.
type UsuarioMutation struct {
	config
	op                                Op
	typ                               string
	id                                *uuid.UUID
	created_at                        *time.Time
	updated_at                        *time.Time
	rut                               *string
	nombre_completo                   *string
	email                             *string
	username                          *string
	password_hash                     *string
	activo                            *bool
	clearedFields                     map[string]struct{}
	rol                               *uuid.UUID
	clearedrol                        bool
	registros_auditoria               map[uuid.UUID]struct{}
	removedregistros_auditoria        map[uuid.UUID]struct{}
	clearedregistros_auditoria        bool
	partos_registrados                map[uuid.UUID]struct{}
	removedpartos_registrados         map[uuid.UUID]struct{}
	clearedpartos_registrados         bool
	recien_nacidos_registrados        map[uuid.UUID]struct{}
	removedrecien_nacidos_registrados map[uuid.UUID]struct{}
	clearedrecien_nacidos_registrados bool
	defunciones_registradas           map[uuid.UUID]struct{}
	removeddefunciones_registradas    map[uuid.UUID]struct{}
	cleareddefunciones_registradas    bool
	documentos_generados              map[uuid.UUID]struct{}
	removeddocumentos_generados       map[uuid.UUID]struct{}
	cleareddocumentos_generados       bool
	done                              bool
	oldValue                          func(context.Context) (*Usuario, error)
	predicates                        []predicate.Usuario
}

var _ ent.Mutation = (*UsuarioMutation)(nil)

// usuarioOption allows management of the mutation configuration using functional options.
type usuarioOption func(*UsuarioMutation)

// newUsuarioMutation creates new mutation for the Usuario entity.
func newUsuarioMutation(c config, op Op, opts ...usuarioOption) *UsuarioMutation {
	m := &UsuarioMutation{
		config:        c,
		op:            op,
		typ:           TypeUsuario,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsuarioID sets the ID field of the mutation.
func withUsuarioID(id uuid.UUID) usuarioOption {
	return func(m *UsuarioMutation) {
		var (
			err   error
			once  sync.Once
			value *Usuario
		)
		m.oldValue = func(ctx context.Context) (*Usuario, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Usuario.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsuario sets the old Usuario of the mutation.
func withUsuario(node *Usuario) usuarioOption {
	return func(m *UsuarioMutation) {
		m.oldValue = func(context.Context) (*Usuario, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsuarioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsuarioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Usuario entities.
func (m *UsuarioMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsuarioMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsuarioMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Usuario.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UsuarioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsuarioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsuarioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsuarioMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsuarioMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsuarioMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRut sets the "rut" field.
func (m *UsuarioMutation) SetRut(s string) {
	m.rut = &s
}

// Rut returns the value of the "rut" field in the mutation.
func (m *UsuarioMutation) Rut() (r string, exists bool) {
	v := m.rut
	if v == nil {
		return
	}
	return *v, true
}

// OldRut returns the old "rut" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldRut(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRut: %w", err)
	}
	return oldValue.Rut, nil
}

// ResetRut resets all changes to the "rut" field.
func (m *UsuarioMutation) ResetRut() {
	m.rut = nil
}

// SetNombreCompleto sets the "nombre_completo" field.
func (m *UsuarioMutation) SetNombreCompleto(s string) {
	m.nombre_completo = &s
}

// NombreCompleto returns the value of the "nombre_completo" field in the mutation.
func (m *UsuarioMutation) NombreCompleto() (r string, exists bool) {
	v := m.nombre_completo
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreCompleto returns the old "nombre_completo" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldNombreCompleto(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreCompleto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreCompleto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreCompleto: %w", err)
	}
	return oldValue.NombreCompleto, nil
}

// ResetNombreCompleto resets all changes to the "nombre_completo" field.
func (m *UsuarioMutation) ResetNombreCompleto() {
	m.nombre_completo = nil
}

// SetEmail sets the "email" field.
func (m *UsuarioMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UsuarioMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UsuarioMutation) ResetEmail() {
	m.email = nil
}

// SetUsername sets the "username" field.
func (m *UsuarioMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UsuarioMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UsuarioMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UsuarioMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UsuarioMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UsuarioMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRolID sets the "rol_id" field.
func (m *UsuarioMutation) SetRolID(u uuid.UUID) {
	m.rol = &u
}

// RolID returns the value of the "rol_id" field in the mutation.
func (m *UsuarioMutation) RolID() (r uuid.UUID, exists bool) {
	v := m.rol
	if v == nil {
		return
	}
	return *v, true
}

// OldRolID returns the old "rol_id" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldRolID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRolID: %w", err)
	}
	return oldValue.RolID, nil
}

// ResetRolID resets all changes to the "rol_id" field.
func (m *UsuarioMutation) ResetRolID() {
	m.rol = nil
}

// SetActivo sets the "activo" field.
func (m *UsuarioMutation) SetActivo(b bool) {
	m.activo = &b
}

// Activo returns the value of the "activo" field in the mutation.
func (m *UsuarioMutation) Activo() (r bool, exists bool) {
	v := m.activo
	if v == nil {
		return
	}
	return *v, true
}

// OldActivo returns the old "activo" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldActivo(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivo: %w", err)
	}
	return oldValue.Activo, nil
}

// ResetActivo resets all changes to the "activo" field.
func (m *UsuarioMutation) ResetActivo() {
	m.activo = nil
}

// ClearRol clears the "rol" edge to the Rol entity.
func (m *UsuarioMutation) ClearRol() {
	m.clearedrol = true
	m.clearedFields[usuario.FieldRolID] = struct{}{}
}

// RolCleared reports if the "rol" edge to the Rol entity was cleared.
func (m *UsuarioMutation) RolCleared() bool {
	return m.clearedrol
}

// RolIDs returns the "rol" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RolID instead. It exists only for internal usage by the builders.
func (m *UsuarioMutation) RolIDs() (ids []uuid.UUID) {
	if id := m.rol; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRol resets all changes to the "rol" edge.
func (m *UsuarioMutation) ResetRol() {
	m.rol = nil
	m.clearedrol = false
}

// AddRegistrosAuditoriumIDs adds the "registros_auditoria" edge to the LogAuditoria entity by ids.
func (m *UsuarioMutation) AddRegistrosAuditoriumIDs(ids ...uuid.UUID) {
	if m.registros_auditoria == nil {
		m.registros_auditoria = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.registros_auditoria[ids[i]] = struct{}{}
	}
}

// ClearRegistrosAuditoria clears the "registros_auditoria" edge to the LogAuditoria entity.
func (m *UsuarioMutation) ClearRegistrosAuditoria() {
	m.clearedregistros_auditoria = true
}

// RegistrosAuditoriaCleared reports if the "registros_auditoria" edge to the LogAuditoria entity was cleared.
func (m *UsuarioMutation) RegistrosAuditoriaCleared() bool {
	return m.clearedregistros_auditoria
}

// RemoveRegistrosAuditoriumIDs removes the "registros_auditoria" edge to the LogAuditoria entity by IDs.
func (m *UsuarioMutation) RemoveRegistrosAuditoriumIDs(ids ...uuid.UUID) {
	if m.removedregistros_auditoria == nil {
		m.removedregistros_auditoria = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.registros_auditoria, ids[i])
		m.removedregistros_auditoria[ids[i]] = struct{}{}
	}
}

// RemovedRegistrosAuditoria returns the removed IDs of the "registros_auditoria" edge to the LogAuditoria entity.
func (m *UsuarioMutation) RemovedRegistrosAuditoriaIDs() (ids []uuid.UUID) {
	for id := range m.removedregistros_auditoria {
		ids = append(ids, id)
	}
	return
}

// RegistrosAuditoriaIDs returns the "registros_auditoria" edge IDs in the mutation.
func (m *UsuarioMutation) RegistrosAuditoriaIDs() (ids []uuid.UUID) {
	for id := range m.registros_auditoria {
		ids = append(ids, id)
	}
	return
}

// ResetRegistrosAuditoria resets all changes to the "registros_auditoria" edge.
func (m *UsuarioMutation) ResetRegistrosAuditoria() {
	m.registros_auditoria = nil
	m.clearedregistros_auditoria = false
	m.removedregistros_auditoria = nil
}

// AddPartosRegistradoIDs adds the "partos_registrados" edge to the Parto entity by ids.
func (m *UsuarioMutation) AddPartosRegistradoIDs(ids ...uuid.UUID) {
	if m.partos_registrados == nil {
		m.partos_registrados = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.partos_registrados[ids[i]] = struct{}{}
	}
}

// ClearPartosRegistrados clears the "partos_registrados" edge to the Parto entity.
func (m *UsuarioMutation) ClearPartosRegistrados() {
	m.clearedpartos_registrados = true
}

// PartosRegistradosCleared reports if the "partos_registrados" edge to the Parto entity was cleared.
func (m *UsuarioMutation) PartosRegistradosCleared() bool {
	return m.clearedpartos_registrados
}

// RemovePartosRegistradoIDs removes the "partos_registrados" edge to the Parto entity by IDs.
func (m *UsuarioMutation) RemovePartosRegistradoIDs(ids ...uuid.UUID) {
	if m.removedpartos_registrados == nil {
		m.removedpartos_registrados = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.partos_registrados, ids[i])
		m.removedpartos_registrados[ids[i]] = struct{}{}
	}
}

// RemovedPartosRegistrados returns the removed IDs of the "partos_registrados" edge to the Parto entity.
func (m *UsuarioMutation) RemovedPartosRegistradosIDs() (ids []uuid.UUID) {
	for id := range m.removedpartos_registrados {
		ids = append(ids, id)
	}
	return
}

// PartosRegistradosIDs returns the "partos_registrados" edge IDs in the mutation.
func (m *UsuarioMutation) PartosRegistradosIDs() (ids []uuid.UUID) {
	for id := range m.partos_registrados {
		ids = append(ids, id)
	}
	return
}

// ResetPartosRegistrados resets all changes to the "partos_registrados" edge.
func (m *UsuarioMutation) ResetPartosRegistrados() {
	m.partos_registrados = nil
	m.clearedpartos_registrados = false
	m.removedpartos_registrados = nil
}

// AddRecienNacidosRegistradoIDs adds the "recien_nacidos_registrados" edge to the RecienNacido entity by ids.
func (m *UsuarioMutation) AddRecienNacidosRegistradoIDs(ids ...uuid.UUID) {
	if m.recien_nacidos_registrados == nil {
		m.recien_nacidos_registrados = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.recien_nacidos_registrados[ids[i]] = struct{}{}
	}
}

// ClearRecienNacidosRegistrados clears the "recien_nacidos_registrados" edge to the RecienNacido entity.
func (m *UsuarioMutation) ClearRecienNacidosRegistrados() {
	m.clearedrecien_nacidos_registrados = true
}

// RecienNacidosRegistradosCleared reports if the "recien_nacidos_registrados" edge to the RecienNacido entity was cleared.
func (m *UsuarioMutation) RecienNacidosRegistradosCleared() bool {
	return m.clearedrecien_nacidos_registrados
}

// RemoveRecienNacidosRegistradoIDs removes the "recien_nacidos_registrados" edge to the RecienNacido entity by IDs.
func (m *UsuarioMutation) RemoveRecienNacidosRegistradoIDs(ids ...uuid.UUID) {
	if m.removedrecien_nacidos_registrados == nil {
		m.removedrecien_nacidos_registrados = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.recien_nacidos_registrados, ids[i])
		m.removedrecien_nacidos_registrados[ids[i]] = struct{}{}
	}
}

// RemovedRecienNacidosRegistrados returns the removed IDs of the "recien_nacidos_registrados" edge to the RecienNacido entity.
func (m *UsuarioMutation) RemovedRecienNacidosRegistradosIDs() (ids []uuid.UUID) {
	for id := range m.removedrecien_nacidos_registrados {
		ids = append(ids, id)
	}
	return
}

// RecienNacidosRegistradosIDs returns the "recien_nacidos_registrados" edge IDs in the mutation.
func (m *UsuarioMutation) RecienNacidosRegistradosIDs() (ids []uuid.UUID) {
	for id := range m.recien_nacidos_registrados {
		ids = append(ids, id)
	}
	return
}

// ResetRecienNacidosRegistrados resets all changes to the "recien_nacidos_registrados" edge.
func (m *UsuarioMutation) ResetRecienNacidosRegistrados() {
	m.recien_nacidos_registrados = nil
	m.clearedrecien_nacidos_registrados = false
	m.removedrecien_nacidos_registrados = nil
}

// AddDefuncionesRegistradaIDs adds the "defunciones_registradas" edge to the Defuncion entity by ids.
func (m *UsuarioMutation) AddDefuncionesRegistradaIDs(ids ...uuid.UUID) {
	if m.defunciones_registradas == nil {
		m.defunciones_registradas = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.defunciones_registradas[ids[i]] = struct{}{}
	}
}

// ClearDefuncionesRegistradas clears the "defunciones_registradas" edge to the Defuncion entity.
func (m *UsuarioMutation) ClearDefuncionesRegistradas() {
	m.cleareddefunciones_registradas = true
}

// DefuncionesRegistradasCleared reports if the "defunciones_registradas" edge to the Defuncion entity was cleared.
func (m *UsuarioMutation) DefuncionesRegistradasCleared() bool {
	return m.cleareddefunciones_registradas
}

// RemoveDefuncionesRegistradaIDs removes the "defunciones_registradas" edge to the Defuncion entity by IDs.
func (m *UsuarioMutation) RemoveDefuncionesRegistradaIDs(ids ...uuid.UUID) {
	if m.removeddefunciones_registradas == nil {
		m.removeddefunciones_registradas = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.defunciones_registradas, ids[i])
		m.removeddefunciones_registradas[ids[i]] = struct{}{}
	}
}

// RemovedDefuncionesRegistradas returns the removed IDs of the "defunciones_registradas" edge to the Defuncion entity.
func (m *UsuarioMutation) RemovedDefuncionesRegistradasIDs() (ids []uuid.UUID) {
	for id := range m.removeddefunciones_registradas {
		ids = append(ids, id)
	}
	return
}

// DefuncionesRegistradasIDs returns the "defunciones_registradas" edge IDs in the mutation.
func (m *UsuarioMutation) DefuncionesRegistradasIDs() (ids []uuid.UUID) {
	for id := range m.defunciones_registradas {
		ids = append(ids, id)
	}
	return
}

// ResetDefuncionesRegistradas resets all changes to the "defunciones_registradas" edge.
func (m *UsuarioMutation) ResetDefuncionesRegistradas() {
	m.defunciones_registradas = nil
	m.cleareddefunciones_registradas = false
	m.removeddefunciones_registradas = nil
}

// AddDocumentosGeneradoIDs adds the "documentos_generados" edge to the DocumentoReferencia entity by ids.
func (m *UsuarioMutation) AddDocumentosGeneradoIDs(ids ...uuid.UUID) {
	if m.documentos_generados == nil {
		m.documentos_generados = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documentos_generados[ids[i]] = struct{}{}
	}
}

// ClearDocumentosGenerados clears the "documentos_generados" edge to the DocumentoReferencia entity.
func (m *UsuarioMutation) ClearDocumentosGenerados() {
	m.cleareddocumentos_generados = true
}

// DocumentosGeneradosCleared reports if the "documentos_generados" edge to the DocumentoReferencia entity was cleared.
func (m *UsuarioMutation) DocumentosGeneradosCleared() bool {
	return m.cleareddocumentos_generados
}

// RemoveDocumentosGeneradoIDs removes the "documentos_generados" edge to the DocumentoReferencia entity by IDs.
func (m *UsuarioMutation) RemoveDocumentosGeneradoIDs(ids ...uuid.UUID) {
	if m.removeddocumentos_generados == nil {
		m.removeddocumentos_generados = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documentos_generados, ids[i])
		m.removeddocumentos_generados[ids[i]] = struct{}{}
	}
}

// RemovedDocumentosGenerados returns the removed IDs of the "documentos_generados" edge to the DocumentoReferencia entity.
func (m *UsuarioMutation) RemovedDocumentosGeneradosIDs() (ids []uuid.UUID) {
	for id := range m.removeddocumentos_generados {
		ids = append(ids, id)
	}
	return
}

// DocumentosGeneradosIDs returns the "documentos_generados" edge IDs in the mutation.
func (m *UsuarioMutation) DocumentosGeneradosIDs() (ids []uuid.UUID) {
	for id := range m.documentos_generados {
		ids = append(ids, id)
	}
	return
}

// ResetDocumentosGenerados resets all changes to the "documentos_generados" edge.
func (m *UsuarioMutation) ResetDocumentosGenerados() {
	m.documentos_generados = nil
	m.cleareddocumentos_generados = false
	m.removeddocumentos_generados = nil
}

// Where appends a list predicates to the UsuarioMutation builder.
func (m *UsuarioMutation) Where(ps ...predicate.Usuario) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsuarioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsuarioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Usuario, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsuarioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsuarioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Usuario).
func (m *UsuarioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsuarioMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, usuario.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usuario.FieldUpdatedAt)
	}
	if m.rut != nil {
		fields = append(fields, usuario.FieldRut)
	}
	if m.nombre_completo != nil {
		fields = append(fields, usuario.FieldNombreCompleto)
	}
	if m.email != nil {
		fields = append(fields, usuario.FieldEmail)
	}
	if m.username != nil {
		fields = append(fields, usuario.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, usuario.FieldPasswordHash)
	}
	if m.rol != nil {
		fields = append(fields, usuario.FieldRolID)
	}
	if m.activo != nil {
		fields = append(fields, usuario.FieldActivo)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsuarioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usuario.FieldCreatedAt:
		return m.CreatedAt()
	case usuario.FieldUpdatedAt:
		return m.UpdatedAt()
	case usuario.FieldRut:
		return m.Rut()
	case usuario.FieldNombreCompleto:
		return m.NombreCompleto()
	case usuario.FieldEmail:
		return m.Email()
	case usuario.FieldUsername:
		return m.Username()
	case usuario.FieldPasswordHash:
		return m.PasswordHash()
	case usuario.FieldRolID:
		return m.RolID()
	case usuario.FieldActivo:
		return m.Activo()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsuarioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usuario.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usuario.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usuario.FieldRut:
		return m.OldRut(ctx)
	case usuario.FieldNombreCompleto:
		return m.OldNombreCompleto(ctx)
	case usuario.FieldEmail:
		return m.OldEmail(ctx)
	case usuario.FieldUsername:
		return m.OldUsername(ctx)
	case usuario.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case usuario.FieldRolID:
		return m.OldRolID(ctx)
	case usuario.FieldActivo:
		return m.OldActivo(ctx)
	}
	return nil, fmt.Errorf("unknown Usuario field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsuarioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usuario.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usuario.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usuario.FieldRut:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRut(v)
		return nil
	case usuario.FieldNombreCompleto:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreCompleto(v)
		return nil
	case usuario.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case usuario.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case usuario.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case usuario.FieldRolID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRolID(v)
		return nil
	case usuario.FieldActivo:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivo(v)
		return nil
	}
	return fmt.Errorf("unknown Usuario field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsuarioMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsuarioMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsuarioMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Usuario numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsuarioMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsuarioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsuarioMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Usuario nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsuarioMutation) ResetField(name string) error {
	switch name {
	case usuario.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usuario.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usuario.FieldRut:
		m.ResetRut()
		return nil
	case usuario.FieldNombreCompleto:
		m.ResetNombreCompleto()
		return nil
	case usuario.FieldEmail:
		m.ResetEmail()
		return nil
	case usuario.FieldUsername:
		m.ResetUsername()
		return nil
	case usuario.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case usuario.FieldRolID:
		m.ResetRolID()
		return nil
	case usuario.FieldActivo:
		m.ResetActivo()
		return nil
	}
	return fmt.Errorf("unknown Usuario field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsuarioMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.rol != nil {
		edges = append(edges, usuario.EdgeRol)
	}
	if m.registros_auditoria != nil {
		edges = append(edges, usuario.EdgeRegistrosAuditoria)
	}
	if m.partos_registrados != nil {
		edges = append(edges, usuario.EdgePartosRegistrados)
	}
	if m.recien_nacidos_registrados != nil {
		edges = append(edges, usuario.EdgeRecienNacidosRegistrados)
	}
	if m.defunciones_registradas != nil {
		edges = append(edges, usuario.EdgeDefuncionesRegistradas)
	}
	if m.documentos_generados != nil {
		edges = append(edges, usuario.EdgeDocumentosGenerados)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsuarioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usuario.EdgeRol:
		if id := m.rol; id != nil {
			return []ent.Value{*id}
		}
	case usuario.EdgeRegistrosAuditoria:
		ids := make([]ent.Value, 0, len(m.registros_auditoria))
		for id := range m.registros_auditoria {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgePartosRegistrados:
		ids := make([]ent.Value, 0, len(m.partos_registrados))
		for id := range m.partos_registrados {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgeRecienNacidosRegistrados:
		ids := make([]ent.Value, 0, len(m.recien_nacidos_registrados))
		for id := range m.recien_nacidos_registrados {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgeDefuncionesRegistradas:
		ids := make([]ent.Value, 0, len(m.defunciones_registradas))
		for id := range m.defunciones_registradas {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgeDocumentosGenerados:
		ids := make([]ent.Value, 0, len(m.documentos_generados))
		for id := range m.documentos_generados {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsuarioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedregistros_auditoria != nil {
		edges = append(edges, usuario.EdgeRegistrosAuditoria)
	}
	if m.removedpartos_registrados != nil {
		edges = append(edges, usuario.EdgePartosRegistrados)
	}
	if m.removedrecien_nacidos_registrados != nil {
		edges = append(edges, usuario.EdgeRecienNacidosRegistrados)
	}
	if m.removeddefunciones_registradas != nil {
		edges = append(edges, usuario.EdgeDefuncionesRegistradas)
	}
	if m.removeddocumentos_generados != nil {
		edges = append(edges, usuario.EdgeDocumentosGenerados)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsuarioMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case usuario.EdgeRegistrosAuditoria:
		ids := make([]ent.Value, 0, len(m.removedregistros_auditoria))
		for id := range m.removedregistros_auditoria {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgePartosRegistrados:
		ids := make([]ent.Value, 0, len(m.removedpartos_registrados))
		for id := range m.removedpartos_registrados {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgeRecienNacidosRegistrados:
		ids := make([]ent.Value, 0, len(m.removedrecien_nacidos_registrados))
		for id := range m.removedrecien_nacidos_registrados {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgeDefuncionesRegistradas:
		ids := make([]ent.Value, 0, len(m.removeddefunciones_registradas))
		for id := range m.removeddefunciones_registradas {
			ids = append(ids, id)
		}
		return ids
	case usuario.EdgeDocumentosGenerados:
		ids := make([]ent.Value, 0, len(m.removeddocumentos_generados))
		for id := range m.removeddocumentos_generados {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsuarioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedrol {
		edges = append(edges, usuario.EdgeRol)
	}
	if m.clearedregistros_auditoria {
		edges = append(edges, usuario.EdgeRegistrosAuditoria)
	}
	if m.clearedpartos_registrados {
		edges = append(edges, usuario.EdgePartosRegistrados)
	}
	if m.clearedrecien_nacidos_registrados {
		edges = append(edges, usuario.EdgeRecienNacidosRegistrados)
	}
	if m.cleareddefunciones_registradas {
		edges = append(edges, usuario.EdgeDefuncionesRegistradas)
	}
	if m.cleareddocumentos_generados {
		edges = append(edges, usuario.EdgeDocumentosGenerados)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsuarioMutation) EdgeCleared(name string) bool {
	switch name {
	case usuario.EdgeRol:
		return m.clearedrol
	case usuario.EdgeRegistrosAuditoria:
		return m.clearedregistros_auditoria
	case usuario.EdgePartosRegistrados:
		return m.clearedpartos_registrados
	case usuario.EdgeRecienNacidosRegistrados:
		return m.clearedrecien_nacidos_registrados
	case usuario.EdgeDefuncionesRegistradas:
		return m.cleareddefunciones_registradas
	case usuario.EdgeDocumentosGenerados:
		return m.cleareddocumentos_generados
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsuarioMutation) ClearEdge(name string) error {
	switch name {
	case usuario.EdgeRol:
		m.ClearRol()
		return nil
	}
	return fmt.Errorf("unknown Usuario unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsuarioMutation) ResetEdge(name string) error {
	switch name {
	case usuario.EdgeRol:
		m.ResetRol()
		return nil
	case usuario.EdgeRegistrosAuditoria:
		m.ResetRegistrosAuditoria()
		return nil
	case usuario.EdgePartosRegistrados:
		m.ResetPartosRegistrados()
		return nil
	case usuario.EdgeRecienNacidosRegistrados:
		m.ResetRecienNacidosRegistrados()
		return nil
	case usuario.EdgeDefuncionesRegistradas:
		m.ResetDefuncionesRegistradas()
		return nil
	case usuario.EdgeDocumentosGenerados:
		m.ResetDocumentosGenerados()
		return nil
	}
	return fmt.Errorf("unknown Usuario edge %s", name)
}
