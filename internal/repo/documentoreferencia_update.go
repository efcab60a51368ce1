// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DocumentoReferenciaUpdate is the builder for updating DocumentoReferencia entities.
type DocumentoReferenciaUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentoReferenciaMutation
}

// Where appends a list predicates to the DocumentoReferenciaUpdate builder.
func (_u *DocumentoReferenciaUpdate) Where(ps ...predicate.DocumentoReferencia) *DocumentoReferenciaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPartoID sets the "parto_id" field.
func (_u *DocumentoReferenciaUpdate) SetPartoID(v uuid.UUID) *DocumentoReferenciaUpdate {
	_u.mutation.SetPartoID(v)
	return _u
}

// SetNillablePartoID sets the "parto_id" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdate) SetNillablePartoID(v *uuid.UUID) *DocumentoReferenciaUpdate {
	if v != nil {
		_u.SetPartoID(*v)
	}
	return _u
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (_u *DocumentoReferenciaUpdate) SetMongodbObjectID(v string) *DocumentoReferenciaUpdate {
	_u.mutation.SetMongodbObjectID(v)
	return _u
}

// SetNillableMongodbObjectID sets the "mongodb_object_id" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdate) SetNillableMongodbObjectID(v *string) *DocumentoReferenciaUpdate {
	if v != nil {
		_u.SetMongodbObjectID(*v)
	}
	return _u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_u *DocumentoReferenciaUpdate) SetNombreArchivo(v string) *DocumentoReferenciaUpdate {
	_u.mutation.SetNombreArchivo(v)
	return _u
}

// SetNillableNombreArchivo sets the "nombre_archivo" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdate) SetNillableNombreArchivo(v *string) *DocumentoReferenciaUpdate {
	if v != nil {
		_u.SetNombreArchivo(*v)
	}
	return _u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_u *DocumentoReferenciaUpdate) SetTipoDocumento(v documentoreferencia.TipoDocumento) *DocumentoReferenciaUpdate {
	_u.mutation.SetTipoDocumento(v)
	return _u
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdate) SetNillableTipoDocumento(v *documentoreferencia.TipoDocumento) *DocumentoReferenciaUpdate {
	if v != nil {
		_u.SetTipoDocumento(*v)
	}
	return _u
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (_u *DocumentoReferenciaUpdate) SetUsuarioGeneracionID(v uuid.UUID) *DocumentoReferenciaUpdate {
	_u.mutation.SetUsuarioGeneracionID(v)
	return _u
}

// SetNillableUsuarioGeneracionID sets the "usuario_generacion_id" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdate) SetNillableUsuarioGeneracionID(v *uuid.UUID) *DocumentoReferenciaUpdate {
	if v != nil {
		_u.SetUsuarioGeneracionID(*v)
	}
	return _u
}

// ClearUsuarioGeneracionID clears the value of the "usuario_generacion_id" field.
func (_u *DocumentoReferenciaUpdate) ClearUsuarioGeneracionID() *DocumentoReferenciaUpdate {
	_u.mutation.ClearUsuarioGeneracionID()
	return _u
}

// SetParto sets the "parto" edge to the Parto entity.
func (_u *DocumentoReferenciaUpdate) SetParto(v *Parto) *DocumentoReferenciaUpdate {
	return _u.SetPartoID(v.ID)
}

// SetUsuarioGeneracion sets the "usuario_generacion" edge to the Usuario entity.
func (_u *DocumentoReferenciaUpdate) SetUsuarioGeneracion(v *Usuario) *DocumentoReferenciaUpdate {
	return _u.SetUsuarioGeneracionID(v.ID)
}

// Mutation returns the DocumentoReferenciaMutation object of the builder.
func (_u *DocumentoReferenciaUpdate) Mutation() *DocumentoReferenciaMutation {
	return _u.mutation
}

// ClearParto clears the "parto" edge to the Parto entity.
func (_u *DocumentoReferenciaUpdate) ClearParto() *DocumentoReferenciaUpdate {
	_u.mutation.ClearParto()
	return _u
}

// ClearUsuarioGeneracion clears the "usuario_generacion" edge to the Usuario entity.
func (_u *DocumentoReferenciaUpdate) ClearUsuarioGeneracion() *DocumentoReferenciaUpdate {
	_u.mutation.ClearUsuarioGeneracion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentoReferenciaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentoReferenciaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentoReferenciaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentoReferenciaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentoReferenciaUpdate) check() error {
	if v, ok := _u.mutation.MongodbObjectID(); ok {
		if err := documentoreferencia.MongodbObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "mongodb_object_id", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.mongodb_object_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NombreArchivo(); ok {
		if err := documentoreferencia.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.nombre_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoDocumento(); ok {
		if err := documentoreferencia.TipoDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_documento", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.tipo_documento": %w`, err)}
		}
	}
	if _u.mutation.PartoCleared() && len(_u.mutation.PartoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DocumentoReferencia.parto"`)
	}
	return nil
}

func (_u *DocumentoReferenciaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentoreferencia.Table, documentoreferencia.Columns, sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MongodbObjectID(); ok {
		_spec.SetField(documentoreferencia.FieldMongodbObjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NombreArchivo(); ok {
		_spec.SetField(documentoreferencia.FieldNombreArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoDocumento(); ok {
		_spec.SetField(documentoreferencia.FieldTipoDocumento, field.TypeEnum, value)
	}
	if _u.mutation.PartoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsuarioGeneracionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioGeneracionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentoreferencia.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentoReferenciaUpdateOne is the builder for updating a single DocumentoReferencia entity.
type DocumentoReferenciaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentoReferenciaMutation
}

// SetPartoID sets the "parto_id" field.
func (_u *DocumentoReferenciaUpdateOne) SetPartoID(v uuid.UUID) *DocumentoReferenciaUpdateOne {
	_u.mutation.SetPartoID(v)
	return _u
}

// SetNillablePartoID sets the "parto_id" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdateOne) SetNillablePartoID(v *uuid.UUID) *DocumentoReferenciaUpdateOne {
	if v != nil {
		_u.SetPartoID(*v)
	}
	return _u
}

// SetMongodbObjectID sets the "mongodb_object_id" field.
func (_u *DocumentoReferenciaUpdateOne) SetMongodbObjectID(v string) *DocumentoReferenciaUpdateOne {
	_u.mutation.SetMongodbObjectID(v)
	return _u
}

// SetNillableMongodbObjectID sets the "mongodb_object_id" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdateOne) SetNillableMongodbObjectID(v *string) *DocumentoReferenciaUpdateOne {
	if v != nil {
		_u.SetMongodbObjectID(*v)
	}
	return _u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_u *DocumentoReferenciaUpdateOne) SetNombreArchivo(v string) *DocumentoReferenciaUpdateOne {
	_u.mutation.SetNombreArchivo(v)
	return _u
}

// SetNillableNombreArchivo sets the "nombre_archivo" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdateOne) SetNillableNombreArchivo(v *string) *DocumentoReferenciaUpdateOne {
	if v != nil {
		_u.SetNombreArchivo(*v)
	}
	return _u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_u *DocumentoReferenciaUpdateOne) SetTipoDocumento(v documentoreferencia.TipoDocumento) *DocumentoReferenciaUpdateOne {
	_u.mutation.SetTipoDocumento(v)
	return _u
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdateOne) SetNillableTipoDocumento(v *documentoreferencia.TipoDocumento) *DocumentoReferenciaUpdateOne {
	if v != nil {
		_u.SetTipoDocumento(*v)
	}
	return _u
}

// SetUsuarioGeneracionID sets the "usuario_generacion_id" field.
func (_u *DocumentoReferenciaUpdateOne) SetUsuarioGeneracionID(v uuid.UUID) *DocumentoReferenciaUpdateOne {
	_u.mutation.SetUsuarioGeneracionID(v)
	return _u
}

// SetNillableUsuarioGeneracionID sets the "usuario_generacion_id" field if the given value is not nil.
func (_u *DocumentoReferenciaUpdateOne) SetNillableUsuarioGeneracionID(v *uuid.UUID) *DocumentoReferenciaUpdateOne {
	if v != nil {
		_u.SetUsuarioGeneracionID(*v)
	}
	return _u
}

// ClearUsuarioGeneracionID clears the value of the "usuario_generacion_id" field.
func (_u *DocumentoReferenciaUpdateOne) ClearUsuarioGeneracionID() *DocumentoReferenciaUpdateOne {
	_u.mutation.ClearUsuarioGeneracionID()
	return _u
}

// SetParto sets the "parto" edge to the Parto entity.
func (_u *DocumentoReferenciaUpdateOne) SetParto(v *Parto) *DocumentoReferenciaUpdateOne {
	return _u.SetPartoID(v.ID)
}

// SetUsuarioGeneracion sets the "usuario_generacion" edge to the Usuario entity.
func (_u *DocumentoReferenciaUpdateOne) SetUsuarioGeneracion(v *Usuario) *DocumentoReferenciaUpdateOne {
	return _u.SetUsuarioGeneracionID(v.ID)
}

// Mutation returns the DocumentoReferenciaMutation object of the builder.
func (_u *DocumentoReferenciaUpdateOne) Mutation() *DocumentoReferenciaMutation {
	return _u.mutation
}

// ClearParto clears the "parto" edge to the Parto entity.
func (_u *DocumentoReferenciaUpdateOne) ClearParto() *DocumentoReferenciaUpdateOne {
	_u.mutation.ClearParto()
	return _u
}

// ClearUsuarioGeneracion clears the "usuario_generacion" edge to the Usuario entity.
func (_u *DocumentoReferenciaUpdateOne) ClearUsuarioGeneracion() *DocumentoReferenciaUpdateOne {
	_u.mutation.ClearUsuarioGeneracion()
	return _u
}

// Where appends a list predicates to the DocumentoReferenciaUpdate builder.
func (_u *DocumentoReferenciaUpdateOne) Where(ps ...predicate.DocumentoReferencia) *DocumentoReferenciaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentoReferenciaUpdateOne) Select(field string, fields ...string) *DocumentoReferenciaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentoReferencia entity.
func (_u *DocumentoReferenciaUpdateOne) Save(ctx context.Context) (*DocumentoReferencia, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentoReferenciaUpdateOne) SaveX(ctx context.Context) *DocumentoReferencia {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentoReferenciaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentoReferenciaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentoReferenciaUpdateOne) check() error {
	if v, ok := _u.mutation.MongodbObjectID(); ok {
		if err := documentoreferencia.MongodbObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "mongodb_object_id", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.mongodb_object_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NombreArchivo(); ok {
		if err := documentoreferencia.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.nombre_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoDocumento(); ok {
		if err := documentoreferencia.TipoDocumentoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_documento", err: fmt.Errorf(`repo: validator failed for field "DocumentoReferencia.tipo_documento": %w`, err)}
		}
	}
	if _u.mutation.PartoCleared() && len(_u.mutation.PartoIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DocumentoReferencia.parto"`)
	}
	return nil
}

func (_u *DocumentoReferenciaUpdateOne) sqlSave(ctx context.Context) (_node *DocumentoReferencia, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentoreferencia.Table, documentoreferencia.Columns, sqlgraph.NewFieldSpec(documentoreferencia.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DocumentoReferencia.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentoreferencia.FieldID)
		for _, f := range fields {
			if !documentoreferencia.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != documentoreferencia.FieldID {
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
	if value, ok := _u.mutation.MongodbObjectID(); ok {
		_spec.SetField(documentoreferencia.FieldMongodbObjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NombreArchivo(); ok {
		_spec.SetField(documentoreferencia.FieldNombreArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoDocumento(); ok {
		_spec.SetField(documentoreferencia.FieldTipoDocumento, field.TypeEnum, value)
	}
	if _u.mutation.PartoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsuarioGeneracionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsuarioGeneracionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentoReferencia{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentoreferencia.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
