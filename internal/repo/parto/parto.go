// Code generated by ent, DO NOT EDIT.

package parto

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the parto type in the database.
	Label = "parto"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldMadreID holds the string denoting the madre_id field in the database.
	FieldMadreID = "madre_id"
	// FieldFechaParto holds the string denoting the fecha_parto field in the database.
	FieldFechaParto = "fecha_parto"
	// FieldEdadGestacional holds the string denoting the edad_gestacional field in the database.
	FieldEdadGestacional = "edad_gestacional"
	// FieldTipoParto holds the string denoting the tipo_parto field in the database.
	FieldTipoParto = "tipo_parto"
	// FieldAnestesia holds the string denoting the anestesia field in the database.
	FieldAnestesia = "anestesia"
	// FieldPartogramaData holds the string denoting the partograma_data field in the database.
	FieldPartogramaData = "partograma_data"
	// FieldEpicrisisData holds the string denoting the epicrisis_data field in the database.
	FieldEpicrisisData = "epicrisis_data"
	// FieldUsuarioRegistroID holds the string denoting the usuario_registro_id field in the database.
	FieldUsuarioRegistroID = "usuario_registro_id"
	// EdgeMadre holds the string denoting the madre edge name in mutations.
	EdgeMadre = "madre"
	// EdgeUsuarioRegistro holds the string denoting the usuario_registro edge name in mutations.
	EdgeUsuarioRegistro = "usuario_registro"
	// EdgeRecienNacidos holds the string denoting the recien_nacidos edge name in mutations.
	EdgeRecienNacidos = "recien_nacidos"
	// EdgePartoDiagnosticos holds the string denoting the parto_diagnosticos edge name in mutations.
	EdgePartoDiagnosticos = "parto_diagnosticos"
	// EdgeDocumentos holds the string denoting the documentos edge name in mutations.
	EdgeDocumentos = "documentos"
	// Table holds the table name of the parto in the database.
	Table = "partos"
	// MadreTable is the table that holds the madre relation/edge.
	MadreTable = "partos"
	// MadreInverseTable is the table name for the Madre entity.
	// It exists in this package in order to avoid circular dependency with the "madre" package.
	MadreInverseTable = "madres"
	// MadreColumn is the table column denoting the madre relation/edge.
	MadreColumn = "madre_id"
	// UsuarioRegistroTable is the table that holds the usuario_registro relation/edge.
	UsuarioRegistroTable = "partos"
	// UsuarioRegistroInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	UsuarioRegistroInverseTable = "usuarios"
	// UsuarioRegistroColumn is the table column denoting the usuario_registro relation/edge.
	UsuarioRegistroColumn = "usuario_registro_id"
	// RecienNacidosTable is the table that holds the recien_nacidos relation/edge.
	RecienNacidosTable = "recien_nacidos"
	// RecienNacidosInverseTable is the table name for the RecienNacido entity.
	// It exists in this package in order to avoid circular dependency with the "reciennacido" package.
	RecienNacidosInverseTable = "recien_nacidos"
	// RecienNacidosColumn is the table column denoting the recien_nacidos relation/edge.
	RecienNacidosColumn = "parto_id"
	// PartoDiagnosticosTable is the table that holds the parto_diagnosticos relation/edge.
	PartoDiagnosticosTable = "parto_diagnosticos"
	// PartoDiagnosticosInverseTable is the table name for the PartoDiagnostico entity.
	// It exists in this package in order to avoid circular dependency with the "partodiagnostico" package.
	PartoDiagnosticosInverseTable = "parto_diagnosticos"
	// PartoDiagnosticosColumn is the table column denoting the parto_diagnosticos relation/edge.
	PartoDiagnosticosColumn = "parto_id"
	// DocumentosTable is the table that holds the documentos relation/edge.
	DocumentosTable = "documento_referencia"
	// DocumentosInverseTable is the table name for the DocumentoReferencia entity.
	// It exists in this package in order to avoid circular dependency with the "documentoreferencia" package.
	DocumentosInverseTable = "documento_referencia"
	// DocumentosColumn is the table column denoting the documentos relation/edge.
	DocumentosColumn = "parto_id"
)

// Columns holds all SQL columns for parto fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldMadreID,
	FieldFechaParto,
	FieldEdadGestacional,
	FieldTipoParto,
	FieldAnestesia,
	FieldPartogramaData,
	FieldEpicrisisData,
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
	// EdadGestacionalValidator is a validator for the "edad_gestacional" field. It is called by the builders before save.
	EdadGestacionalValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// TipoParto defines the type for the "tipo_parto" enum field.
type TipoParto string

// TipoParto values.
const (
	TipoPartoEutocico        TipoParto = "Eutócico"
	TipoPartoCesareaElectiva TipoParto = "Cesárea Electiva"
	TipoPartoCesareaUrgencia TipoParto = "Cesárea Urgencia"
	TipoPartoForceps         TipoParto = "Fórceps"
	TipoPartoVacuum          TipoParto = "Vacuum"
)

func (tp TipoParto) String() string {
	return string(tp)
}

// TipoPartoValidator is a validator for the "tipo_parto" field enum values. It is called by the builders before save.
func TipoPartoValidator(tp TipoParto) error {
	switch tp {
	case TipoPartoEutocico, TipoPartoCesareaElectiva, TipoPartoCesareaUrgencia, TipoPartoForceps, TipoPartoVacuum:
		return nil
	default:
		return fmt.Errorf("parto: invalid enum value for tipo_parto field: %q", tp)
	}
}

// Anestesia defines the type for the "anestesia" enum field.
type Anestesia string

// AnestesiaNinguna is the default value of the Anestesia enum.
const DefaultAnestesia = AnestesiaNinguna

// Anestesia values.
const (
	AnestesiaEpidural Anestesia = "Epidural"
	AnestesiaRaquidea Anestesia = "Raquídea"
	AnestesiaGeneral  Anestesia = "General"
	AnestesiaOtra     Anestesia = "Otra"
	AnestesiaNinguna  Anestesia = "Ninguna"
)

func (a Anestesia) String() string {
	return string(a)
}

// AnestesiaValidator is a validator for the "anestesia" field enum values. It is called by the builders before save.
func AnestesiaValidator(a Anestesia) error {
	switch a {
	case AnestesiaEpidural, AnestesiaRaquidea, AnestesiaGeneral, AnestesiaOtra, AnestesiaNinguna:
		return nil
	default:
		return fmt.Errorf("parto: invalid enum value for anestesia field: %q", a)
	}
}

// OrderOption defines the ordering options for the Parto queries.
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

// ByFechaParto orders the results by the fecha_parto field.
func ByFechaParto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaParto, opts...).ToFunc()
}

// ByEdadGestacional orders the results by the edad_gestacional field.
func ByEdadGestacional(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdadGestacional, opts...).ToFunc()
}

// ByTipoParto orders the results by the tipo_parto field.
func ByTipoParto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoParto, opts...).ToFunc()
}

// ByAnestesia orders the results by the anestesia field.
func ByAnestesia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnestesia, opts...).ToFunc()
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

// ByUsuarioRegistroField orders the results by usuario_registro field.
func ByUsuarioRegistroField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsuarioRegistroStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecienNacidosCount orders the results by recien_nacidos count.
func ByRecienNacidosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecienNacidosStep(), opts...)
	}
}

// ByRecienNacidos orders the results by recien_nacidos terms.
func ByRecienNacidos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecienNacidosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
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

// ByDocumentosCount orders the results by documentos count.
func ByDocumentosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentosStep(), opts...)
	}
}

// ByDocumentos orders the results by documentos terms.
func ByDocumentos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMadreStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MadreInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MadreTable, MadreColumn),
	)
}
func newUsuarioRegistroStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsuarioRegistroInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UsuarioRegistroTable, UsuarioRegistroColumn),
	)
}
func newRecienNacidosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecienNacidosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecienNacidosTable, RecienNacidosColumn),
	)
}
func newPartoDiagnosticosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PartoDiagnosticosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PartoDiagnosticosTable, PartoDiagnosticosColumn),
	)
}
func newDocumentosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentosTable, DocumentosColumn),
	)
}
