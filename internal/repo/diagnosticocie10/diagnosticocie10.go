// Code generated by ent, DO NOT EDIT.

package diagnosticocie10

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the diagnosticocie10 type in the database.
	Label = "diagnostico_cie10"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCodigo holds the string denoting the codigo field in the database.
	FieldCodigo = "codigo"
	// FieldDescripcion holds the string denoting the descripcion field in the database.
	FieldDescripcion = "descripcion"
	// EdgePartoDiagnosticos holds the string denoting the parto_diagnosticos edge name in mutations.
	EdgePartoDiagnosticos = "parto_diagnosticos"
	// EdgeDefunciones holds the string denoting the defunciones edge name in mutations.
	EdgeDefunciones = "defunciones"
	// Table holds the table name of the diagnosticocie10 in the database.
	Table = "diagnostico_cie10s"
	// PartoDiagnosticosTable is the table that holds the parto_diagnosticos relation/edge.
	PartoDiagnosticosTable = "parto_diagnosticos"
	// PartoDiagnosticosInverseTable is the table name for the PartoDiagnostico entity.
	// It exists in this package in order to avoid circular dependency with the "partodiagnostico" package.
	PartoDiagnosticosInverseTable = "parto_diagnosticos"
	// PartoDiagnosticosColumn is the table column denoting the parto_diagnosticos relation/edge.
	PartoDiagnosticosColumn = "diagnostico_id"
	// DefuncionesTable is the table that holds the defunciones relation/edge.
	DefuncionesTable = "defuncions"
	// DefuncionesInverseTable is the table name for the Defuncion entity.
	// It exists in this package in order to avoid circular dependency with the "defuncion" package.
	DefuncionesInverseTable = "defuncions"
	// DefuncionesColumn is the table column denoting the defunciones relation/edge.
	DefuncionesColumn = "causa_defuncion_id"
)

// Columns holds all SQL columns for diagnosticocie10 fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCodigo,
	FieldDescripcion,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CodigoValidator is a validator for the "codigo" field. It is called by the builders before save.
	CodigoValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DiagnosticoCIE10 queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCodigo orders the results by the codigo field.
func ByCodigo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodigo, opts...).ToFunc()
}

// ByDescripcion orders the results by the descripcion field.
func ByDescripcion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcion, opts...).ToFunc()
}

// ByPartoDiagnosticosCount orders the results by parto_diagnosticos count.
func ByPartoDiagnosticosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPartoDiagnosticosStep(), opts...)
	}
}

// ByPartoDiagnosticos orders the results by parto_diagnosticos terms.
func ByPartoDiagnosticos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartoDiagnosticosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDefuncionesCount orders the results by defunciones count.
func ByDefuncionesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDefuncionesStep(), opts...)
	}
}

// ByDefunciones orders the results by defunciones terms.
func ByDefunciones(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefuncionesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPartoDiagnosticosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartoDiagnosticosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PartoDiagnosticosTable, PartoDiagnosticosColumn),
	)
}
func newDefuncionesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefuncionesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DefuncionesTable, DefuncionesColumn),
	)
}
