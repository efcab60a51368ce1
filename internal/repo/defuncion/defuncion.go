// Code generated by ent, DO NOT EDIT.

package defuncion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the defuncion type in the database.
	Label = "defuncion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMadreID holds the string denoting the madre_id field in the database.
	FieldMadreID = "madre_id"
	// FieldRecienNacidoID holds the string denoting the recien_nacido_id field in the database.
	FieldRecienNacidoID = "recien_nacido_id"
	// FieldFechaDefuncion holds the string denoting the fecha_defuncion field in the database.
	FieldFechaDefuncion = "fecha_defuncion"
	// FieldCausaDefuncionID holds the string denoting the causa_defuncion_id field in the database.
	FieldCausaDefuncionID = "causa_defuncion_id"
	// FieldUsuarioRegistroID holds the string denoting the usuario_registro_id field in the database.
	FieldUsuarioRegistroID = "usuario_registro_id"
	// EdgeMadre holds the string denoting the madre edge name in mutations.
	EdgeMadre = "madre"
	// EdgeRecienNacido holds the string denoting the recien_nacido edge name in mutations.
	EdgeRecienNacido = "recien_nacido"
	// EdgeCausaDefuncion holds the string denoting the causa_defuncion edge name in mutations.
	EdgeCausaDefuncion = "causa_defuncion"
	// EdgeUsuarioRegistro holds the string denoting the usuario_registro edge name in mutations.
	EdgeUsuarioRegistro = "usuario_registro"
	// Table holds the table name of the defuncion in the database.
	Table = "defuncions"
	// MadreTable is the table that holds the madre relation/edge.
	MadreTable = "defuncions"
	// MadreInverseTable is the table name for the Madre entity.
	// It exists in this package in order to avoid circular dependency with the "madre" package.
	MadreInverseTable = "madres"
	// MadreColumn is the table column denoting the madre relation/edge.
	MadreColumn = "madre_id"
	// RecienNacidoTable is the table that holds the recien_nacido relation/edge.
	RecienNacidoTable = "defuncions"
	// RecienNacidoInverseTable is the table name for the RecienNacido entity.
	// It exists in this package in order to avoid circular dependency with the "reciennacido" package.
	RecienNacidoInverseTable = "recien_nacidos"
	// RecienNacidoColumn is the table column denoting the recien_nacido relation/edge.
	RecienNacidoColumn = "recien_nacido_id"
	// CausaDefuncionTable is the table that holds the causa_defuncion relation/edge.
	CausaDefuncionTable = "defuncions"
	// CausaDefuncionInverseTable is the table name for the DiagnosticoCIE10 entity.
	// It exists in this package in order to avoid circular dependency with the "diagnosticocie10" package.
	CausaDefuncionInverseTable = "diagnostico_cie10s"
	// CausaDefuncionColumn is the table column denoting the causa_defuncion relation/edge.
	CausaDefuncionColumn = "causa_defuncion_id"
	// UsuarioRegistroTable is the table that holds the usuario_registro relation/edge.
	UsuarioRegistroTable = "defuncions"
	// UsuarioRegistroInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	UsuarioRegistroInverseTable = "usuarios"
	// UsuarioRegistroColumn is the table column denoting the usuario_registro relation/edge.
	UsuarioRegistroColumn = "usuario_registro_id"
)

// Columns holds all SQL columns for defuncion fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMadreID,
	FieldRecienNacidoID,
	FieldFechaDefuncion,
	FieldCausaDefuncionID,
	FieldUsuarioRegistroID,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Defuncion queries.
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

// ByMadreID orders the results by the madre_id field.
func ByMadreID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMadreID, opts...).ToFunc()
}

// ByRecienNacidoID orders the results by the recien_nacido_id field.
func ByRecienNacidoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecienNacidoID, opts...).ToFunc()
}

// ByFechaDefuncion orders the results by the fecha_defuncion field.
func ByFechaDefuncion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaDefuncion, opts...).ToFunc()
}

// ByCausaDefuncionID orders the results by the causa_defuncion_id field.
func ByCausaDefuncionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCausaDefuncionID, opts...).ToFunc()
}

// ByUsuarioRegistroID orders the results by the usuario_registro_id field.
func ByUsuarioRegistroID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsuarioRegistroID, opts...).ToFunc()
}

// ByMadreField orders the results by madre field.
func ByMadreField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMadreStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecienNacidoField orders the results by recien_nacido field.
func ByRecienNacidoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecienNacidoStep(), sql.OrderByField(field, opts...))
	}
}

// ByCausaDefuncionField orders the results by causa_defuncion field.
func ByCausaDefuncionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCausaDefuncionStep(), sql.OrderByField(field, opts...))
	}
}

// ByUsuarioRegistroField orders the results by usuario_registro field.
func ByUsuarioRegistroField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsuarioRegistroStep(), sql.OrderByField(field, opts...))
	}
}
func newMadreStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MadreInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MadreTable, MadreColumn),
	)
}
func newRecienNacidoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecienNacidoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RecienNacidoTable, RecienNacidoColumn),
	)
}
func newCausaDefuncionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CausaDefuncionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CausaDefuncionTable, CausaDefuncionColumn),
	)
}
func newUsuarioRegistroStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsuarioRegistroInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UsuarioRegistroTable, UsuarioRegistroColumn),
	)
}
