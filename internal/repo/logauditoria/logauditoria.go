// Code generated by ent, DO NOT EDIT.

package logauditoria

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the logauditoria type in the database.
	Label = "log_auditoria"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUsuarioID holds the string denoting the usuario_id field in the database.
	FieldUsuarioID = "usuario_id"
	// FieldAccion holds the string denoting the accion field in the database.
	FieldAccion = "accion"
	// FieldTablaAfectada holds the string denoting the tabla_afectada field in the database.
	FieldTablaAfectada = "tabla_afectada"
	// FieldRegistroID holds the string denoting the registro_id field in the database.
	FieldRegistroID = "registro_id"
	// FieldDetalles holds the string denoting the detalles field in the database.
	FieldDetalles = "detalles"
	// FieldIPUsuario holds the string denoting the ip_usuario field in the database.
	FieldIPUsuario = "ip_usuario"
	// FieldFechaAccion holds the string denoting the fecha_accion field in the database.
	FieldFechaAccion = "fecha_accion"
	// EdgeUsuario holds the string denoting the usuario edge name in mutations.
	EdgeUsuario = "usuario"
	// Table holds the table name of the logauditoria in the database.
	Table = "log_auditoria"
	// UsuarioTable is the table that holds the usuario relation/edge.
	UsuarioTable = "log_auditoria"
	// UsuarioInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	UsuarioInverseTable = "usuarios"
	// UsuarioColumn is the table column denoting the usuario relation/edge.
	UsuarioColumn = "usuario_id"
)

// Columns holds all SQL columns for logauditoria fields.
var Columns = []string{
	FieldID,
	FieldUsuarioID,
	FieldAccion,
	FieldTablaAfectada,
	FieldRegistroID,
	FieldDetalles,
	FieldIPUsuario,
	FieldFechaAccion,
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
	// AccionValidator is a validator for the "accion" field. It is called by the builders before save.
	AccionValidator func(string) error
	// TablaAfectadaValidator is a validator for the "tabla_afectada" field. It is called by the builders before save.
	TablaAfectadaValidator func(string) error
	// IPUsuarioValidator is a validator for the "ip_usuario" field. It is called by the builders before save.
	IPUsuarioValidator func(string) error
	// DefaultFechaAccion holds the default value on creation for the "fecha_accion" field.
	DefaultFechaAccion func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LogAuditoria queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsuarioID orders the results by the usuario_id field.
func ByUsuarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsuarioID, opts...).ToFunc()
}

// ByAccion orders the results by the accion field.
func ByAccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccion, opts...).ToFunc()
}

// ByTablaAfectada orders the results by the tabla_afectada field.
func ByTablaAfectada(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTablaAfectada, opts...).ToFunc()
}

// ByRegistroID orders the results by the registro_id field.
func ByRegistroID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegistroID, opts...).ToFunc()
}

// ByIPUsuario orders the results by the ip_usuario field.
func ByIPUsuario(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPUsuario, opts...).ToFunc()
}

// ByFechaAccion orders the results by the fecha_accion field.
func ByFechaAccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaAccion, opts...).ToFunc()
}

// ByUsuarioField orders the results by usuario field.
func ByUsuarioField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsuarioStep(), sql.OrderByField(field, opts...))
	}
}
func newUsuarioStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsuarioInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UsuarioTable, UsuarioColumn),
	)
}
