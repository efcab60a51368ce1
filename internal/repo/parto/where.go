// Code generated by ent, DO NOT EDIT.

package parto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldUpdatedAt, v))
}

// MadreID applies equality check predicate on the "madre_id" field. It's identical to MadreIDEQ.
func MadreID(v uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldMadreID, v))
}

// FechaParto applies equality check predicate on the "fecha_parto" field. It's identical to FechaPartoEQ.
func FechaParto(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldFechaParto, v))
}

// EdadGestacional applies equality check predicate on the "edad_gestacional" field. It's identical to EdadGestacionalEQ.
func EdadGestacional(v int) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldEdadGestacional, v))
}

// UsuarioRegistroID applies equality check predicate on the "usuario_registro_id" field. It's identical to UsuarioRegistroIDEQ.
func UsuarioRegistroID(v uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldUsuarioRegistroID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldLTE(FieldUpdatedAt, v))
}

// MadreIDEQ applies the EQ predicate on the "madre_id" field.
func MadreIDEQ(v uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldMadreID, v))
}

// MadreIDNEQ applies the NEQ predicate on the "madre_id" field.
func MadreIDNEQ(v uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldMadreID, v))
}

// MadreIDIn applies the In predicate on the "madre_id" field.
func MadreIDIn(vs ...uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldMadreID, vs...))
}

// MadreIDNotIn applies the NotIn predicate on the "madre_id" field.
func MadreIDNotIn(vs ...uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldMadreID, vs...))
}

// FechaPartoEQ applies the EQ predicate on the "fecha_parto" field.
func FechaPartoEQ(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldFechaParto, v))
}

// FechaPartoNEQ applies the NEQ predicate on the "fecha_parto" field.
func FechaPartoNEQ(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldFechaParto, v))
}

// FechaPartoIn applies the In predicate on the "fecha_parto" field.
func FechaPartoIn(vs ...time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldFechaParto, vs...))
}

// FechaPartoNotIn applies the NotIn predicate on the "fecha_parto" field.
func FechaPartoNotIn(vs ...time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldFechaParto, vs...))
}

// FechaPartoGT applies the GT predicate on the "fecha_parto" field.
func FechaPartoGT(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldGT(FieldFechaParto, v))
}

// FechaPartoGTE applies the GTE predicate on the "fecha_parto" field.
func FechaPartoGTE(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldGTE(FieldFechaParto, v))
}

// FechaPartoLT applies the LT predicate on the "fecha_parto" field.
func FechaPartoLT(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldLT(FieldFechaParto, v))
}

// FechaPartoLTE applies the LTE predicate on the "fecha_parto" field.
func FechaPartoLTE(v time.Time) predicate.Parto {
	return predicate.Parto(sql.FieldLTE(FieldFechaParto, v))
}

// EdadGestacionalEQ applies the EQ predicate on the "edad_gestacional" field.
func EdadGestacionalEQ(v int) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldEdadGestacional, v))
}

// EdadGestacionalNEQ applies the NEQ predicate on the "edad_gestacional" field.
func EdadGestacionalNEQ(v int) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldEdadGestacional, v))
}

// EdadGestacionalIn applies the In predicate on the "edad_gestacional" field.
func EdadGestacionalIn(vs ...int) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldEdadGestacional, vs...))
}

// EdadGestacionalNotIn applies the NotIn predicate on the "edad_gestacional" field.
func EdadGestacionalNotIn(vs ...int) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldEdadGestacional, vs...))
}

// EdadGestacionalGT applies the GT predicate on the "edad_gestacional" field.
func EdadGestacionalGT(v int) predicate.Parto {
	return predicate.Parto(sql.FieldGT(FieldEdadGestacional, v))
}

// EdadGestacionalGTE applies the GTE predicate on the "edad_gestacional" field.
func EdadGestacionalGTE(v int) predicate.Parto {
	return predicate.Parto(sql.FieldGTE(FieldEdadGestacional, v))
}

// EdadGestacionalLT applies the LT predicate on the "edad_gestacional" field.
func EdadGestacionalLT(v int) predicate.Parto {
	return predicate.Parto(sql.FieldLT(FieldEdadGestacional, v))
}

// EdadGestacionalLTE applies the LTE predicate on the "edad_gestacional" field.
func EdadGestacionalLTE(v int) predicate.Parto {
	return predicate.Parto(sql.FieldLTE(FieldEdadGestacional, v))
}

// EdadGestacionalIsNil applies the IsNil predicate on the "edad_gestacional" field.
func EdadGestacionalIsNil() predicate.Parto {
	return predicate.Parto(sql.FieldIsNull(FieldEdadGestacional))
}

// EdadGestacionalNotNil applies the NotNil predicate on the "edad_gestacional" field.
func EdadGestacionalNotNil() predicate.Parto {
	return predicate.Parto(sql.FieldNotNull(FieldEdadGestacional))
}

// TipoPartoEQ applies the EQ predicate on the "tipo_parto" field.
func TipoPartoEQ(v TipoParto) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldTipoParto, v))
}

// TipoPartoNEQ applies the NEQ predicate on the "tipo_parto" field.
func TipoPartoNEQ(v TipoParto) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldTipoParto, v))
}

// TipoPartoIn applies the In predicate on the "tipo_parto" field.
func TipoPartoIn(vs ...TipoParto) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldTipoParto, vs...))
}

// TipoPartoNotIn applies the NotIn predicate on the "tipo_parto" field.
func TipoPartoNotIn(vs ...TipoParto) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldTipoParto, vs...))
}

// AnestesiaEQ applies the EQ predicate on the "anestesia" field.
func AnestesiaEQ(v Anestesia) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldAnestesia, v))
}

// AnestesiaNEQ applies the NEQ predicate on the "anestesia" field.
func AnestesiaNEQ(v Anestesia) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldAnestesia, v))
}

// AnestesiaIn applies the In predicate on the "anestesia" field.
func AnestesiaIn(vs ...Anestesia) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldAnestesia, vs...))
}

// AnestesiaNotIn applies the NotIn predicate on the "anestesia" field.
func AnestesiaNotIn(vs ...Anestesia) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldAnestesia, vs...))
}

// PartogramaDataIsNil applies the IsNil predicate on the "partograma_data" field.
func PartogramaDataIsNil() predicate.Parto {
	return predicate.Parto(sql.FieldIsNull(FieldPartogramaData))
}

// PartogramaDataNotNil applies the NotNil predicate on the "partograma_data" field.
func PartogramaDataNotNil() predicate.Parto {
	return predicate.Parto(sql.FieldNotNull(FieldPartogramaData))
}

// EpicrisisDataIsNil applies the IsNil predicate on the "epicrisis_data" field.
func EpicrisisDataIsNil() predicate.Parto {
	return predicate.Parto(sql.FieldIsNull(FieldEpicrisisData))
}

// EpicrisisDataNotNil applies the NotNil predicate on the "epicrisis_data" field.
func EpicrisisDataNotNil() predicate.Parto {
	return predicate.Parto(sql.FieldNotNull(FieldEpicrisisData))
}

// UsuarioRegistroIDEQ applies the EQ predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDEQ(v uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldEQ(FieldUsuarioRegistroID, v))
}

// UsuarioRegistroIDNEQ applies the NEQ predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNEQ(v uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldNEQ(FieldUsuarioRegistroID, v))
}

// UsuarioRegistroIDIn applies the In predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDIn(vs ...uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldIn(FieldUsuarioRegistroID, vs...))
}

// UsuarioRegistroIDNotIn applies the NotIn predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNotIn(vs ...uuid.UUID) predicate.Parto {
	return predicate.Parto(sql.FieldNotIn(FieldUsuarioRegistroID, vs...))
}

// UsuarioRegistroIDIsNil applies the IsNil predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDIsNil() predicate.Parto {
	return predicate.Parto(sql.FieldIsNull(FieldUsuarioRegistroID))
}

// UsuarioRegistroIDNotNil applies the NotNil predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNotNil() predicate.Parto {
	return predicate.Parto(sql.FieldNotNull(FieldUsuarioRegistroID))
}

// HasMadre applies the HasEdge predicate on the "madre" edge.
func HasMadre() predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MadreTable, MadreColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMadreWith applies the HasEdge predicate on the "madre" edge with a given conditions (other predicates).
func HasMadreWith(preds ...predicate.Madre) predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := newMadreStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsuarioRegistro applies the HasEdge predicate on the "usuario_registro" edge.
func HasUsuarioRegistro() predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UsuarioRegistroTable, UsuarioRegistroColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsuarioRegistroWith applies the HasEdge predicate on the "usuario_registro" edge with a given conditions (other predicates).
func HasUsuarioRegistroWith(preds ...predicate.Usuario) predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := newUsuarioRegistroStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecienNacidos applies the HasEdge predicate on the "recien_nacidos" edge.
func HasRecienNacidos() predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecienNacidosTable, RecienNacidosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecienNacidosWith applies the HasEdge predicate on the "recien_nacidos" edge with a given conditions (other predicates).
func HasRecienNacidosWith(preds ...predicate.RecienNacido) predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := newRecienNacidosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPartoDiagnosticos applies the HasEdge predicate on the "parto_diagnosticos" edge.
func HasPartoDiagnosticos() predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PartoDiagnosticosTable, PartoDiagnosticosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartoDiagnosticosWith applies the HasEdge predicate on the "parto_diagnosticos" edge with a given conditions (other predicates).
func HasPartoDiagnosticosWith(preds ...predicate.PartoDiagnostico) predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := newPartoDiagnosticosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocumentos applies the HasEdge predicate on the "documentos" edge.
func HasDocumentos() predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentosTable, DocumentosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentosWith applies the HasEdge predicate on the "documentos" edge with a given conditions (other predicates).
func HasDocumentosWith(preds ...predicate.DocumentoReferencia) predicate.Parto {
	return predicate.Parto(func(s *sql.Selector) {
		step := newDocumentosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Parto) predicate.Parto {
	return predicate.Parto(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Parto) predicate.Parto {
	return predicate.Parto(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Parto) predicate.Parto {
	return predicate.Parto(sql.NotPredicates(p))
}
