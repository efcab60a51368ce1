// Code generated by ent, DO NOT EDIT.

package usuario

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the usuario type in the database.
	Label = "usuario"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRut holds the string denoting the rut field in the database.
	FieldRut = "rut"
	// FieldNombreCompleto holds the string denoting the nombre_completo field in the database.
	FieldNombreCompleto = "nombre_completo"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldRolID holds the string denoting the rol_id field in the database.
	FieldRolID = "rol_id"
	// FieldActivo holds the string denoting the activo field in the database.
	FieldActivo = "activo"
	// EdgeRol holds the string denoting the rol edge name in mutations.
	EdgeRol = "rol"
	// EdgeRegistrosAuditoria holds the string denoting the registros_auditoria edge name in mutations.
	EdgeRegistrosAuditoria = "registros_auditoria"
	// EdgePartosRegistrados holds the string denoting the partos_registrados edge name in mutations.
	EdgePartosRegistrados = "partos_registrados"
	// EdgeRecienNacidosRegistrados holds the string denoting the recien_nacidos_registrados edge name in mutations.
	EdgeRecienNacidosRegistrados = "recien_nacidos_registrados"
	// EdgeDefuncionesRegistradas holds the string denoting the defunciones_registradas edge name in mutations.
	EdgeDefuncionesRegistradas = "defunciones_registradas"
	// EdgeDocumentosGenerados holds the string denoting the documentos_generados edge name in mutations.
	EdgeDocumentosGenerados = "documentos_generados"
	// Table holds the table name of the usuario in the database.
	Table = "usuarios"
	// RolTable is the table that holds the rol relation/edge.
	RolTable = "usuarios"
	// RolInverseTable is the table name for the Rol entity.
	// It exists in this package in order to avoid circular dependency with the "rol" package.
	RolInverseTable = "rols"
	// RolColumn is the table column denoting the rol relation/edge.
	RolColumn = "rol_id"
	// RegistrosAuditoriaTable is the table that holds the registros_auditoria relation/edge.
	RegistrosAuditoriaTable = "log_auditoria"
	// RegistrosAuditoriaInverseTable is the table name for the LogAuditoria entity.
	// It exists in this package in order to avoid circular dependency with the "logauditoria" package.
	RegistrosAuditoriaInverseTable = "log_auditoria"
	// RegistrosAuditoriaColumn is the table column denoting the registros_auditoria relation/edge.
	RegistrosAuditoriaColumn = "usuario_id"
	// PartosRegistradosTable is the table that holds the partos_registrados relation/edge.
	PartosRegistradosTable = "partos"
	// PartosRegistradosInverseTable is the table name for the Parto entity.
	// It exists in this package in order to avoid circular dependency with the "parto" package.
	PartosRegistradosInverseTable = "partos"
	// PartosRegistradosColumn is the table column denoting the partos_registrados relation/edge.
	PartosRegistradosColumn = "usuario_registro_id"
	// RecienNacidosRegistradosTable is the table that holds the recien_nacidos_registrados relation/edge.
	RecienNacidosRegistradosTable = "recien_nacidos"
	// RecienNacidosRegistradosInverseTable is the table name for the RecienNacido entity.
	// It exists in this package in order to avoid circular dependency with the "reciennacido" package.
	RecienNacidosRegistradosInverseTable = "recien_nacidos"
	// RecienNacidosRegistradosColumn is the table column denoting the recien_nacidos_registrados relation/edge.
	RecienNacidosRegistradosColumn = "usuario_registro_id"
	// DefuncionesRegistradasTable is the table that holds the defunciones_registradas relation/edge.
	DefuncionesRegistradasTable = "defuncions"
	// DefuncionesRegistradasInverseTable is the table name for the Defuncion entity.
	// It exists in this package in order to avoid circular dependency with the "defuncion" package.
	DefuncionesRegistradasInverseTable = "defuncions"
	// DefuncionesRegistradasColumn is the table column denoting the defunciones_registradas relation/edge.
	DefuncionesRegistradasColumn = "usuario_registro_id"
	// DocumentosGeneradosTable is the table that holds the documentos_generados relation/edge.
	DocumentosGeneradosTable = "documento_referencia"
	// DocumentosGeneradosInverseTable is the table name for the DocumentoReferencia entity.
	// It exists in this package in order to avoid circular dependency with the "documentoreferencia" package.
	DocumentosGeneradosInverseTable = "documento_referencia"
	// DocumentosGeneradosColumn is the table column denoting the documentos_generados relation/edge.
	DocumentosGeneradosColumn = "usuario_generacion_id"
)

// Columns holds all SQL columns for usuario fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRut,
	FieldNombreCompleto,
	FieldEmail,
	FieldUsername,
	FieldPasswordHash,
	FieldRolID,
	FieldActivo,
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
	// RutValidator is a validator for the "rut" field. It is called by the builders before save.
	RutValidator func(string) error
	// NombreCompletoValidator is a validator for the "nombre_completo" field. It is called by the builders before save.
	NombreCompletoValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// DefaultActivo holds the default value on creation for the "activo" field.
	DefaultActivo bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Usuario queries.
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

// ByRut orders the results by the rut field.
func ByRut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRut, opts...).ToFunc()
}

// ByNombreCompleto orders the results by the nombre_completo field.
func ByNombreCompleto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreCompleto, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByRolID orders the results by the rol_id field.
func ByRolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRolID, opts...).ToFunc()
}

// ByActivo orders the results by the activo field.
func ByActivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivo, opts...).ToFunc()
}

// ByRolField orders the results by rol field.
func ByRolField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRolStep(), sql.OrderByField(field, opts...))
	}
}

// ByRegistrosAuditoriaCount orders the results by registros_auditoria count.
func ByRegistrosAuditoriaCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRegistrosAuditoriaStep(), opts...)
	}
}

// ByRegistrosAuditoria orders the results by registros_auditoria terms.
func ByRegistrosAuditoria(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRegistrosAuditoriaStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPartosRegistradosCount orders the results by partos_registrados count.
func ByPartosRegistradosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPartosRegistradosStep(), opts...)
	}
}

// ByPartosRegistrados orders the results by partos_registrados terms.
func ByPartosRegistrados(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartosRegistradosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecienNacidosRegistradosCount orders the results by recien_nacidos_registrados count.
func ByRecienNacidosRegistradosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecienNacidosRegistradosStep(), opts...)
	}
}

// ByRecienNacidosRegistrados orders the results by recien_nacidos_registrados terms.
func ByRecienNacidosRegistrados(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecienNacidosRegistradosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDefuncionesRegistradasCount orders the results by defunciones_registradas count.
func ByDefuncionesRegistradasCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDefuncionesRegistradasStep(), opts...)
	}
}

// ByDefuncionesRegistradas orders the results by defunciones_registradas terms.
func ByDefuncionesRegistradas(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefuncionesRegistradasStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentosGeneradosCount orders the results by documentos_generados count.
func ByDocumentosGeneradosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentosGeneradosStep(), opts...)
	}
}

// ByDocumentosGenerados orders the results by documentos_generados terms.
func ByDocumentosGenerados(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentosGeneradosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRolStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RolInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RolTable, RolColumn),
	)
}
func newRegistrosAuditoriaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RegistrosAuditoriaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RegistrosAuditoriaTable, RegistrosAuditoriaColumn),
	)
}
func newPartosRegistradosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartosRegistradosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PartosRegistradosTable, PartosRegistradosColumn),
	)
}
func newRecienNacidosRegistradosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecienNacidosRegistradosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecienNacidosRegistradosTable, RecienNacidosRegistradosColumn),
	)
}
func newDefuncionesRegistradasStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefuncionesRegistradasInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DefuncionesRegistradasTable, DefuncionesRegistradasColumn),
	)
}
func newDocumentosGeneradosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentosGeneradosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentosGeneradosTable, DocumentosGeneradosColumn),
	)
}
