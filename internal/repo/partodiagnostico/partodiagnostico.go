// Code generated by ent, DO NOT EDIT.

package partodiagnostico

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the partodiagnostico type in the database.
	Label = "parto_diagnostico"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPartoID holds the string denoting the parto_id field in the database.
	FieldPartoID = "parto_id"
	// FieldDiagnosticoID holds the string denoting the diagnostico_id field in the database.
	FieldDiagnosticoID = "diagnostico_id"
	// EdgeParto holds the string denoting the parto edge name in mutations.
	EdgeParto = "parto"
	// EdgeDiagnostico holds the string denoting the diagnostico edge name in mutations.
	EdgeDiagnostico = "diagnostico"
	// Table holds the table name of the partodiagnostico in the database.
	Table = "parto_diagnosticos"
	// PartoTable is the table that holds the parto relation/edge.
	PartoTable = "parto_diagnosticos"
	// PartoInverseTable is the table name for the Parto entity.
	// It exists in this package in order to avoid circular dependency with the "parto" package.
	PartoInverseTable = "partos"
	// PartoColumn is the table column denoting the parto relation/edge.
	PartoColumn = "parto_id"
	// DiagnosticoTable is the table that holds the diagnostico relation/edge.
	DiagnosticoTable = "parto_diagnosticos"
	// DiagnosticoInverseTable is the table name for the DiagnosticoCIE10 entity.
	// It exists in this package in order to avoid circular dependency with the "diagnosticocie10" package.
	DiagnosticoInverseTable = "diagnostico_cie10s"
	// DiagnosticoColumn is the table column denoting the diagnostico relation/edge.
	DiagnosticoColumn = "diagnostico_id"
)

// Columns holds all SQL columns for partodiagnostico fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPartoID,
	FieldDiagnosticoID,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PartoDiagnostico queries.
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

// ByDiagnosticoID orders the results by the diagnostico_id field.
func ByDiagnosticoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosticoID, opts...).ToFunc()
}

// ByPartoField orders the results by parto field.
func ByPartoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartoStep(), sql.OrderByField(field, opts...))
	}
}

// ByDiagnosticoField orders the results by diagnostico field.
func ByDiagnosticoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDiagnosticoStep(), sql.OrderByField(field, opts...))
	}
}
func newPartoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PartoTable, PartoColumn),
	)
}
func newDiagnosticoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DiagnosticoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DiagnosticoTable, DiagnosticoColumn),
	)
}
