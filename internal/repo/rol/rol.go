// Code generated by ent, DO NOT EDIT.

package rol

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the rol type in the database.
	Label = "rol"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNombre holds the string denoting the nombre field in the database.
	FieldNombre = "nombre"
	// FieldDescripcion holds the string denoting the descripcion field in the database.
	FieldDescripcion = "descripcion"
	// EdgeUsuarios holds the string denoting the usuarios edge name in mutations.
	EdgeUsuarios = "usuarios"
	// Table holds the table name of the rol in the database.
	Table = "rols"
	// UsuariosTable is the table that holds the usuarios relation/edge.
	UsuariosTable = "usuarios"
	// UsuariosInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	UsuariosInverseTable = "usuarios"
	// UsuariosColumn is the table column denoting the usuarios relation/edge.
	UsuariosColumn = "rol_id"
)

// Columns holds all SQL columns for rol fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNombre,
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
	// NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	NombreValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Rol queries.
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

// ByNombre orders the results by the nombre field.
func ByNombre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombre, opts...).ToFunc()
}

// ByDescripcion orders the results by the descripcion field.
func ByDescripcion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcion, opts...).ToFunc()
}

// ByUsuariosCount orders the results by usuarios count.
func ByUsuariosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsuariosStep(), opts...)
	}
}

// ByUsuarios orders the results by usuarios terms.
func ByUsuarios(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsuariosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsuariosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsuariosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsuariosTable, UsuariosColumn),
	)
}
