// Code generated by ent, DO NOT EDIT.

package reciennacido

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reciennacido type in the database.
	Label = "recien_nacido"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPartoID holds the string denoting the parto_id field in the database.
	FieldPartoID = "parto_id"
	// FieldRutProvisorio holds the string denoting the rut_provisorio field in the database.
	FieldRutProvisorio = "rut_provisorio"
	// FieldEstadoAlNacer holds the string denoting the estado_al_nacer field in the database.
	FieldEstadoAlNacer = "estado_al_nacer"
	// FieldSexo holds the string denoting the sexo field in the database.
	FieldSexo = "sexo"
	// FieldPesoGramos holds the string denoting the peso_gramos field in the database.
	FieldPesoGramos = "peso_gramos"
	// FieldTallaCm holds the string denoting the talla_cm field in the database.
	FieldTallaCm = "talla_cm"
	// FieldApgar1Min holds the string denoting the apgar_1_min field in the database.
	FieldApgar1Min = "apgar_1_min"
	// FieldApgar5Min holds the string denoting the apgar_5_min field in the database.
	FieldApgar5Min = "apgar_5_min"
	// FieldProfilaxisVitK holds the string denoting the profilaxis_vit_k field in the database.
	FieldProfilaxisVitK = "profilaxis_vit_k"
	// FieldProfilaxisOftalmica holds the string denoting the profilaxis_oftalmica field in the database.
	FieldProfilaxisOftalmica = "profilaxis_oftalmica"
	// FieldUsuarioRegistroID holds the string denoting the usuario_registro_id field in the database.
	FieldUsuarioRegistroID = "usuario_registro_id"
	// EdgeParto holds the string denoting the parto edge name in mutations.
	EdgeParto = "parto"
	// EdgeUsuarioRegistro holds the string denoting the usuario_registro edge name in mutations.
	EdgeUsuarioRegistro = "usuario_registro"
	// EdgeDefuncion holds the string denoting the defuncion edge name in mutations.
	EdgeDefuncion = "defuncion"
	// Table holds the table name of the reciennacido in the database.
	Table = "recien_nacidos"
	// PartoTable is the table that holds the parto relation/edge.
	PartoTable = "recien_nacidos"
	// PartoInverseTable is the table name for the Parto entity.
	// It exists in this package in order to avoid circular dependency with the "parto" package.
	PartoInverseTable = "partos"
	// PartoColumn is the table column denoting the parto relation/edge.
	PartoColumn = "parto_id"
	// UsuarioRegistroTable is the table that holds the usuario_registro relation/edge.
	UsuarioRegistroTable = "recien_nacidos"
	// UsuarioRegistroInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	UsuarioRegistroInverseTable = "usuarios"
	// UsuarioRegistroColumn is the table column denoting the usuario_registro relation/edge.
	UsuarioRegistroColumn = "usuario_registro_id"
	// DefuncionTable is the table that holds the defuncion relation/edge.
	DefuncionTable = "defuncions"
	// DefuncionInverseTable is the table name for the Defuncion entity.
	// It exists in this package in order to avoid circular dependency with the "defuncion" package.
	DefuncionInverseTable = "defuncions"
	// DefuncionColumn is the table column denoting the defuncion relation/edge.
	DefuncionColumn = "recien_nacido_id"
)

// Columns holds all SQL columns for reciennacido fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPartoID,
	FieldRutProvisorio,
	FieldEstadoAlNacer,
	FieldSexo,
	FieldPesoGramos,
	FieldTallaCm,
	FieldApgar1Min,
	FieldApgar5Min,
	FieldProfilaxisVitK,
	FieldProfilaxisOftalmica,
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
	// RutProvisorioValidator is a validator for the "rut_provisorio" field. It is called by the builders before save.
	RutProvisorioValidator func(string) error
	// PesoGramosValidator is a validator for the "peso_gramos" field. It is called by the builders before save.
	PesoGramosValidator func(int) error
	// TallaCmValidator is a validator for the "talla_cm" field. It is called by the builders before save.
	TallaCmValidator func(float64) error
	// Apgar1MinValidator is a validator for the "apgar_1_min" field. It is called by the builders before save.
	Apgar1MinValidator func(int) error
	// Apgar5MinValidator is a validator for the "apgar_5_min" field. It is called by the builders before save.
	Apgar5MinValidator func(int) error
	// DefaultProfilaxisVitK holds the default value on creation for the "profilaxis_vit_k" field.
	DefaultProfilaxisVitK bool
	// DefaultProfilaxisOftalmica holds the default value on creation for the "profilaxis_oftalmica" field.
	DefaultProfilaxisOftalmica bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// EstadoAlNacer defines the type for the "estado_al_nacer" enum field.
type EstadoAlNacer string

// EstadoAlNacer values.
const (
	EstadoAlNacerVivo         EstadoAlNacer = "Vivo"
	EstadoAlNacerNacidoMuerto EstadoAlNacer = "Nacido Muerto"
)

func (ean EstadoAlNacer) String() string {
	return string(ean)
}

// EstadoAlNacerValidator is a validator for the "estado_al_nacer" field enum values. It is called by the builders before save.
func EstadoAlNacerValidator(ean EstadoAlNacer) error {
	switch ean {
	case EstadoAlNacerVivo, EstadoAlNacerNacidoMuerto:
		return nil
	default:
		return fmt.Errorf("reciennacido: invalid enum value for estado_al_nacer field: %q", ean)
	}
}

// Sexo defines the type for the "sexo" enum field.
type Sexo string

// Sexo values.
const (
	SexoMasculino     Sexo = "Masculino"
	SexoFemenino      Sexo = "Femenino"
	SexoIndeterminado Sexo = "Indeterminado"
)

func (s Sexo) String() string {
	return string(s)
}

// SexoValidator is a validator for the "sexo" field enum values. It is called by the builders before save.
func SexoValidator(s Sexo) error {
	switch s {
	case SexoMasculino, SexoFemenino, SexoIndeterminado:
		return nil
	default:
		return fmt.Errorf("reciennacido: invalid enum value for sexo field: %q", s)
	}
}

// OrderOption defines the ordering options for the RecienNacido queries.
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

// ByPartoID orders the results by the parto_id field.
func ByPartoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartoID, opts...).ToFunc()
}

// ByRutProvisorio orders the results by the rut_provisorio field.
func ByRutProvisorio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRutProvisorio, opts...).ToFunc()
}

// ByEstadoAlNacer orders the results by the estado_al_nacer field.
func ByEstadoAlNacer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstadoAlNacer, opts...).ToFunc()
}

// BySexo orders the results by the sexo field.
func BySexo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSexo, opts...).ToFunc()
}

// ByPesoGramos orders the results by the peso_gramos field.
func ByPesoGramos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPesoGramos, opts...).ToFunc()
}

// ByTallaCm orders the results by the talla_cm field.
func ByTallaCm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTallaCm, opts...).ToFunc()
}

// ByApgar1Min orders the results by the apgar_1_min field.
func ByApgar1Min(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApgar1Min, opts...).ToFunc()
}

// ByApgar5Min orders the results by the apgar_5_min field.
func ByApgar5Min(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApgar5Min, opts...).ToFunc()
}

// ByProfilaxisVitK orders the results by the profilaxis_vit_k field.
func ByProfilaxisVitK(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfilaxisVitK, opts...).ToFunc()
}

// ByProfilaxisOftalmica orders the results by the profilaxis_oftalmica field.
func ByProfilaxisOftalmica(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfilaxisOftalmica, opts...).ToFunc()
}

// ByUsuarioRegistroID orders the results by the usuario_registro_id field.
func ByUsuarioRegistroID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsuarioRegistroID, opts...).ToFunc()
}

// ByPartoField orders the results by parto field.
func ByPartoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPartoStep(), sql.OrderByField(field, opts...))
	}
}

// ByUsuarioRegistroField orders the results by usuario_registro field.
func ByUsuarioRegistroField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsuarioRegistroStep(), sql.OrderByField(field, opts...))
	}
}

// ByDefuncionField orders the results by defuncion field.
func ByDefuncionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefuncionStep(), sql.OrderByField(field, opts...))
	}
}
func newPartoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PartoTable, PartoColumn),
	)
}
func newUsuarioRegistroStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsuarioRegistroInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UsuarioRegistroTable, UsuarioRegistroColumn),
	)
}
func newDefuncionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefuncionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DefuncionTable, DefuncionColumn),
	)
}
