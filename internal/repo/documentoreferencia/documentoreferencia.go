// Code generated by ent, DO NOT EDIT.

package documentoreferencia

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the documentoreferencia type in the database.
	Label = "documento_referencia"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPartoID holds the string denoting the parto_id field in the database.
	FieldPartoID = "parto_id"
	// FieldMongodbObjectID holds the string denoting the mongodb_object_id field in the database.
	FieldMongodbObjectID = "mongodb_object_id"
	// FieldNombreArchivo holds the string denoting the nombre_archivo field in the database.
	FieldNombreArchivo = "nombre_archivo"
	// FieldTipoDocumento holds the string denoting the tipo_documento field in the database.
	FieldTipoDocumento = "tipo_documento"
	// FieldUsuarioGeneracionID holds the string denoting the usuario_generacion_id field in the database.
	FieldUsuarioGeneracionID = "usuario_generacion_id"
	// EdgeParto holds the string denoting the parto edge name in mutations.
	EdgeParto = "parto"
	// EdgeUsuarioGeneracion holds the string denoting the usuario_generacion edge name in mutations.
	EdgeUsuarioGeneracion = "usuario_generacion"
	// Table holds the table name of the documentoreferencia in the database.
	Table = "documento_referencia"
	// PartoTable is the table that holds the parto relation/edge.
	PartoTable = "documento_referencia"
	// PartoInverseTable is the table name for the Parto entity.
	// It exists in this package in order to avoid circular dependency with the "parto" package.
	PartoInverseTable = "partos"
	// PartoColumn is the table column denoting the parto relation/edge.
	PartoColumn = "parto_id"
	// UsuarioGeneracionTable is the table that holds the usuario_generacion relation/edge.
	UsuarioGeneracionTable = "documento_referencia"
	// UsuarioGeneracionInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	UsuarioGeneracionInverseTable = "usuarios"
	// UsuarioGeneracionColumn is the table column denoting the usuario_generacion relation/edge.
	UsuarioGeneracionColumn = "usuario_generacion_id"
)

// Columns holds all SQL columns for documentoreferencia fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPartoID,
	FieldMongodbObjectID,
	FieldNombreArchivo,
	FieldTipoDocumento,
	FieldUsuarioGeneracionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// MongodbObjectIDValidator is a validator for the "mongodb_object_id" field. It is called by the builders before save.
	MongodbObjectIDValidator func(string) error
	// NombreArchivoValidator is a validator for the "nombre_archivo" field. It is called by the builders before save.
	NombreArchivoValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// TipoDocumento defines the type for the "tipo_documento" enum field.
type TipoDocumento string

// TipoDocumentoOTRO is the default value of the TipoDocumento enum.
const DefaultTipoDocumento = TipoDocumentoOTRO

// TipoDocumento values.
const (
	TipoDocumentoEPICRISIS_PDF TipoDocumento = "EPICRISIS_PDF"
	TipoDocumentoREPORTE_EXCEL TipoDocumento = "REPORTE_EXCEL"
	TipoDocumentoOTRO          TipoDocumento = "OTRO"
)

func (td TipoDocumento) String() string {
	return string(td)
}

// TipoDocumentoValidator is a validator for the "tipo_documento" field enum values. It is called by the builders before save.
func TipoDocumentoValidator(td TipoDocumento) error {
	switch td {
	case TipoDocumentoEPICRISIS_PDF, TipoDocumentoREPORTE_EXCEL, TipoDocumentoOTRO:
		return nil
	default:
		return fmt.Errorf("documentoreferencia: invalid enum value for tipo_documento field: %q", td)
	}
}

// OrderOption defines the ordering options for the DocumentoReferencia queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPartoID orders the results by the parto_id field.
func ByPartoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartoID, opts...).ToFunc()
}

// ByMongodbObjectID orders the results by the mongodb_object_id field.
func ByMongodbObjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMongodbObjectID, opts...).ToFunc()
}

// ByNombreArchivo orders the results by the nombre_archivo field.
func ByNombreArchivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreArchivo, opts...).ToFunc()
}

// ByTipoDocumento orders the results by the tipo_documento field.
func ByTipoDocumento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoDocumento, opts...).ToFunc()
}

// ByUsuarioGeneracionID orders the results by the usuario_generacion_id field.
func ByUsuarioGeneracionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsuarioGeneracionID, opts...).ToFunc()
}

// ByPartoField orders the results by parto field.
func ByPartoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartoStep(), sql.OrderByField(field, opts...))
	}
}

// ByUsuarioGeneracionField orders the results by usuario_generacion field.
func ByUsuarioGeneracionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsuarioGeneracionStep(), sql.OrderByField(field, opts...))
	}
}
func newPartoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PartoTable, PartoColumn),
	)
}
func newUsuarioGeneracionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsuarioGeneracionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UsuarioGeneracionTable, UsuarioGeneracionColumn),
	)
}
