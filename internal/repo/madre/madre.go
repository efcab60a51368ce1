// Code generated by ent, DO NOT EDIT.

package madre

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the madre type in the database.
	Label = "madre"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFichaClinicaID holds the string denoting the ficha_clinica_id field in the database.
	FieldFichaClinicaID = "ficha_clinica_id"
	// FieldRutHash holds the string denoting the rut_hash field in the database.
	FieldRutHash = "rut_hash"
	// FieldRutEncrypted holds the string denoting the rut_encrypted field in the database.
	FieldRutEncrypted = "rut_encrypted"
	// FieldNombreHash holds the string denoting the nombre_hash field in the database.
	FieldNombreHash = "nombre_hash"
	// FieldNombreEncrypted holds the string denoting the nombre_encrypted field in the database.
	FieldNombreEncrypted = "nombre_encrypted"
	// FieldTelefonoHash holds the string denoting the telefono_hash field in the database.
	FieldTelefonoHash = "telefono_hash"
	// FieldTelefonoEncrypted holds the string denoting the telefono_encrypted field in the database.
	FieldTelefonoEncrypted = "telefono_encrypted"
	// FieldFechaNacimiento holds the string denoting the fecha_nacimiento field in the database.
	FieldFechaNacimiento = "fecha_nacimiento"
	// FieldNacionalidad holds the string denoting the nacionalidad field in the database.
	FieldNacionalidad = "nacionalidad"
	// FieldPertenecePuebloOriginario holds the string denoting the pertenece_pueblo_originario field in the database.
	FieldPertenecePuebloOriginario = "pertenece_pueblo_originario"
	// FieldPrevision holds the string denoting the prevision field in the database.
	FieldPrevision = "prevision"
	// FieldAntecedentesMedicos holds the string denoting the antecedentes_medicos field in the database.
	FieldAntecedentesMedicos = "antecedentes_medicos"
	// EdgePartos holds the string denoting the partos edge name in mutations.
	EdgePartos = "partos"
	// EdgeDefuncion holds the string denoting the defuncion edge name in mutations.
	EdgeDefuncion = "defuncion"
	// Table holds the table name of the madre in the database.
	Table = "madres"
	// PartosTable is the table that holds the partos relation/edge.
	PartosTable = "partos"
	// PartosInverseTable is the table name for the Parto entity.
	// It exists in this package in order to avoid circular dependency with the "parto" package.
	PartosInverseTable = "partos"
	// PartosColumn is the table column denoting the partos relation/edge.
	PartosColumn = "madre_id"
	// DefuncionTable is the table that holds the defuncion relation/edge.
	DefuncionTable = "defuncions"
	// DefuncionInverseTable is the table name for the Defuncion entity.
	// It exists in this package in order to avoid circular dependency with the "defuncion" package.
	DefuncionInverseTable = "defuncions"
	// DefuncionColumn is the table column denoting the defuncion relation/edge.
	DefuncionColumn = "madre_id"
)

// Columns holds all SQL columns for madre fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFichaClinicaID,
	FieldRutHash,
	FieldRutEncrypted,
	FieldNombreHash,
	FieldNombreEncrypted,
	FieldTelefonoHash,
	FieldTelefonoEncrypted,
	FieldFechaNacimiento,
	FieldNacionalidad,
	FieldPertenecePuebloOriginario,
	FieldPrevision,
	FieldAntecedentesMedicos,
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
	// FichaClinicaIDValidator is a validator for the "ficha_clinica_id" field. It is called by the builders before save.
	FichaClinicaIDValidator func(string) error
	// RutHashValidator is a validator for the "rut_hash" field. It is called by the builders before save.
	RutHashValidator func(string) error
	// NombreHashValidator is a validator for the "nombre_hash" field. It is called by the builders before save.
	NombreHashValidator func(string) error
	// TelefonoHashValidator is a validator for the "telefono_hash" field. It is called by the builders before save.
	TelefonoHashValidator func(string) error
	// DefaultNacionalidad holds the default value on creation for the "nacionalidad" field.
	DefaultNacionalidad string
	// NacionalidadValidator is a validator for the "nacionalidad" field. It is called by the builders before save.
	NacionalidadValidator func(string) error
	// DefaultPertenecePuebloOriginario holds the default value on creation for the "pertenece_pueblo_originario" field.
	DefaultPertenecePuebloOriginario bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Prevision defines the type for the "prevision" enum field.
type Prevision string

// PrevisionFONASA is the default value of the Prevision enum.
const DefaultPrevision = PrevisionFONASA

// Prevision values.
const (
	PrevisionFONASA     Prevision = "FONASA"
	PrevisionISAPRE     Prevision = "ISAPRE"
	PrevisionPARTICULAR Prevision = "PARTICULAR"
	PrevisionNINGUNA    Prevision = "NINGUNA"
)

func (pr Prevision) String() string {
	return string(pr)
}

// PrevisionValidator is a validator for the "prevision" field enum values. It is called by the builders before save.
func PrevisionValidator(pr Prevision) error {
	switch pr {
	case PrevisionFONASA, PrevisionISAPRE, PrevisionPARTICULAR, PrevisionNINGUNA:
		return nil
	default:
		return fmt.Errorf("madre: invalid enum value for prevision field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Madre queries.
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

// ByFichaClinicaID orders the results by the ficha_clinica_id field.
func ByFichaClinicaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFichaClinicaID, opts...).ToFunc()
}

// ByRutHash orders the results by the rut_hash field.
func ByRutHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRutHash, opts...).ToFunc()
}

// ByRutEncrypted orders the results by the rut_encrypted field.
func ByRutEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRutEncrypted, opts...).ToFunc()
}

// ByNombreHash orders the results by the nombre_hash field.
func ByNombreHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreHash, opts...).ToFunc()
}

// ByNombreEncrypted orders the results by the nombre_encrypted field.
func ByNombreEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreEncrypted, opts...).ToFunc()
}

// ByTelefonoHash orders the results by the telefono_hash field.
func ByTelefonoHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefonoHash, opts...).ToFunc()
}

// ByTelefonoEncrypted orders the results by the telefono_encrypted field.
func ByTelefonoEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefonoEncrypted, opts...).ToFunc()
}

// ByFechaNacimiento orders the results by the fecha_nacimiento field.
func ByFechaNacimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaNacimiento, opts...).ToFunc()
}

// ByNacionalidad orders the results by the nacionalidad field.
func ByNacionalidad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNacionalidad, opts...).ToFunc()
}

// ByPertenecePuebloOriginario orders the results by the pertenece_pueblo_originario field.
func ByPertenecePuebloOriginario(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPertenecePuebloOriginario, opts...).ToFunc()
}

// ByPrevision orders the results by the prevision field.
func ByPrevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevision, opts...).ToFunc()
}

// ByAntecedentesMedicos orders the results by the antecedentes_medicos field.
func ByAntecedentesMedicos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAntecedentesMedicos, opts...).ToFunc()
}

// ByPartosCount orders the results by partos count.
func ByPartosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPartosStep(), opts...)
	}
}

// ByPartos orders the results by partos terms.
func ByPartos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDefuncionField orders the results by defuncion field.
func ByDefuncionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefuncionStep(), sql.OrderByField(field, opts...))
	}
}
func newPartosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PartosTable, PartosColumn),
	)
}
func newDefuncionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefuncionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DefuncionTable, DefuncionColumn),
	)
}
