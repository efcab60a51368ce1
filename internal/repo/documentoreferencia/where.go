// Code generated by ent, DO NOT EDIT.

package documentoreferencia

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldCreatedAt, v))
}

// PartoID applies equality check predicate on the "parto_id" field. It's identical to PartoIDEQ.
func PartoID(v uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldPartoID, v))
}

// MongodbObjectID applies equality check predicate on the "mongodb_object_id" field. It's identical to MongodbObjectIDEQ.
func MongodbObjectID(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldMongodbObjectID, v))
}

// NombreArchivo applies equality check predicate on the "nombre_archivo" field. It's identical to NombreArchivoEQ.
func NombreArchivo(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldNombreArchivo, v))
}

// UsuarioGeneracionID applies equality check predicate on the "usuario_generacion_id" field. It's identical to UsuarioGeneracionIDEQ.
func UsuarioGeneracionID(v uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldUsuarioGeneracionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLTE(FieldCreatedAt, v))
}

// PartoIDEQ applies the EQ predicate on the "parto_id" field.
func PartoIDEQ(v uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldPartoID, v))
}

// PartoIDNEQ applies the NEQ predicate on the "parto_id" field.
func PartoIDNEQ(v uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldPartoID, v))
}

// PartoIDIn applies the In predicate on the "parto_id" field.
func PartoIDIn(vs ...uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldPartoID, vs...))
}

// PartoIDNotIn applies the NotIn predicate on the "parto_id" field.
func PartoIDNotIn(vs ...uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldPartoID, vs...))
}

// MongodbObjectIDEQ applies the EQ predicate on the "mongodb_object_id" field.
func MongodbObjectIDEQ(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldMongodbObjectID, v))
}

// MongodbObjectIDNEQ applies the NEQ predicate on the "mongodb_object_id" field.
func MongodbObjectIDNEQ(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldMongodbObjectID, v))
}

// MongodbObjectIDIn applies the In predicate on the "mongodb_object_id" field.
func MongodbObjectIDIn(vs ...string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldMongodbObjectID, vs...))
}

// MongodbObjectIDNotIn applies the NotIn predicate on the "mongodb_object_id" field.
func MongodbObjectIDNotIn(vs ...string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldMongodbObjectID, vs...))
}

// MongodbObjectIDGT applies the GT predicate on the "mongodb_object_id" field.
func MongodbObjectIDGT(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGT(FieldMongodbObjectID, v))
}

// MongodbObjectIDGTE applies the GTE predicate on the "mongodb_object_id" field.
func MongodbObjectIDGTE(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGTE(FieldMongodbObjectID, v))
}

// MongodbObjectIDLT applies the LT predicate on the "mongodb_object_id" field.
func MongodbObjectIDLT(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLT(FieldMongodbObjectID, v))
}

// MongodbObjectIDLTE applies the LTE predicate on the "mongodb_object_id" field.
func MongodbObjectIDLTE(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLTE(FieldMongodbObjectID, v))
}

// MongodbObjectIDContains applies the Contains predicate on the "mongodb_object_id" field.
func MongodbObjectIDContains(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldContains(FieldMongodbObjectID, v))
}

// MongodbObjectIDHasPrefix applies the HasPrefix predicate on the "mongodb_object_id" field.
func MongodbObjectIDHasPrefix(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldHasPrefix(FieldMongodbObjectID, v))
}

// MongodbObjectIDHasSuffix applies the HasSuffix predicate on the "mongodb_object_id" field.
func MongodbObjectIDHasSuffix(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldHasSuffix(FieldMongodbObjectID, v))
}

// MongodbObjectIDEqualFold applies the EqualFold predicate on the "mongodb_object_id" field.
func MongodbObjectIDEqualFold(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEqualFold(FieldMongodbObjectID, v))
}

// MongodbObjectIDContainsFold applies the ContainsFold predicate on the "mongodb_object_id" field.
func MongodbObjectIDContainsFold(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldContainsFold(FieldMongodbObjectID, v))
}

// NombreArchivoEQ applies the EQ predicate on the "nombre_archivo" field.
func NombreArchivoEQ(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldNombreArchivo, v))
}

// NombreArchivoNEQ applies the NEQ predicate on the "nombre_archivo" field.
func NombreArchivoNEQ(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldNombreArchivo, v))
}

// NombreArchivoIn applies the In predicate on the "nombre_archivo" field.
func NombreArchivoIn(vs ...string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldNombreArchivo, vs...))
}

// NombreArchivoNotIn applies the NotIn predicate on the "nombre_archivo" field.
func NombreArchivoNotIn(vs ...string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldNombreArchivo, vs...))
}

// NombreArchivoGT applies the GT predicate on the "nombre_archivo" field.
func NombreArchivoGT(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGT(FieldNombreArchivo, v))
}

// NombreArchivoGTE applies the GTE predicate on the "nombre_archivo" field.
func NombreArchivoGTE(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldGTE(FieldNombreArchivo, v))
}

// NombreArchivoLT applies the LT predicate on the "nombre_archivo" field.
func NombreArchivoLT(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLT(FieldNombreArchivo, v))
}

// NombreArchivoLTE applies the LTE predicate on the "nombre_archivo" field.
func NombreArchivoLTE(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldLTE(FieldNombreArchivo, v))
}

// NombreArchivoContains applies the Contains predicate on the "nombre_archivo" field.
func NombreArchivoContains(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldContains(FieldNombreArchivo, v))
}

// NombreArchivoHasPrefix applies the HasPrefix predicate on the "nombre_archivo" field.
func NombreArchivoHasPrefix(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldHasPrefix(FieldNombreArchivo, v))
}

// NombreArchivoHasSuffix applies the HasSuffix predicate on the "nombre_archivo" field.
func NombreArchivoHasSuffix(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldHasSuffix(FieldNombreArchivo, v))
}

// NombreArchivoEqualFold applies the EqualFold predicate on the "nombre_archivo" field.
func NombreArchivoEqualFold(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEqualFold(FieldNombreArchivo, v))
}

// NombreArchivoContainsFold applies the ContainsFold predicate on the "nombre_archivo" field.
func NombreArchivoContainsFold(v string) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldContainsFold(FieldNombreArchivo, v))
}

// TipoDocumentoEQ applies the EQ predicate on the "tipo_documento" field.
func TipoDocumentoEQ(v TipoDocumento) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldTipoDocumento, v))
}

// TipoDocumentoNEQ applies the NEQ predicate on the "tipo_documento" field.
func TipoDocumentoNEQ(v TipoDocumento) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldTipoDocumento, v))
}

// TipoDocumentoIn applies the In predicate on the "tipo_documento" field.
func TipoDocumentoIn(vs ...TipoDocumento) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldTipoDocumento, vs...))
}

// TipoDocumentoNotIn applies the NotIn predicate on the "tipo_documento" field.
func TipoDocumentoNotIn(vs ...TipoDocumento) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldTipoDocumento, vs...))
}

// UsuarioGeneracionIDEQ applies the EQ predicate on the "usuario_generacion_id" field.
func UsuarioGeneracionIDEQ(v uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldEQ(FieldUsuarioGeneracionID, v))
}

// UsuarioGeneracionIDNEQ applies the NEQ predicate on the "usuario_generacion_id" field.
func UsuarioGeneracionIDNEQ(v uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNEQ(FieldUsuarioGeneracionID, v))
}

// UsuarioGeneracionIDIn applies the In predicate on the "usuario_generacion_id" field.
func UsuarioGeneracionIDIn(vs ...uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIn(FieldUsuarioGeneracionID, vs...))
}

// UsuarioGeneracionIDNotIn applies the NotIn predicate on the "usuario_generacion_id" field.
func UsuarioGeneracionIDNotIn(vs ...uuid.UUID) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotIn(FieldUsuarioGeneracionID, vs...))
}

// UsuarioGeneracionIDIsNil applies the IsNil predicate on the "usuario_generacion_id" field.
func UsuarioGeneracionIDIsNil() predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldIsNull(FieldUsuarioGeneracionID))
}

// UsuarioGeneracionIDNotNil applies the NotNil predicate on the "usuario_generacion_id" field.
func UsuarioGeneracionIDNotNil() predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.FieldNotNull(FieldUsuarioGeneracionID))
}

// HasParto applies the HasEdge predicate on the "parto" edge.
func HasParto() predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PartoTable, PartoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartoWith applies the HasEdge predicate on the "parto" edge with a given conditions (other predicates).
func HasPartoWith(preds ...predicate.Parto) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(func(s *sql.Selector) {
		step := newPartoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsuarioGeneracion applies the HasEdge predicate on the "usuario_generacion" edge.
func HasUsuarioGeneracion() predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UsuarioGeneracionTable, UsuarioGeneracionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsuarioGeneracionWith applies the HasEdge predicate on the "usuario_generacion" edge with a given conditions (other predicates).
func HasUsuarioGeneracionWith(preds ...predicate.Usuario) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(func(s *sql.Selector) {
		step := newUsuarioGeneracionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentoReferencia) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentoReferencia) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentoReferencia) predicate.DocumentoReferencia {
	return predicate.DocumentoReferencia(sql.NotPredicates(p))
}
