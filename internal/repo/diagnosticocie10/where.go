// Code generated by ent, DO NOT EDIT.

package diagnosticocie10

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldUpdatedAt, v))
}

// Codigo applies equality check predicate on the "codigo" field. It's identical to CodigoEQ.
func Codigo(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldCodigo, v))
}

// Descripcion applies equality check predicate on the "descripcion" field. It's identical to DescripcionEQ.
func Descripcion(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldDescripcion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLTE(FieldUpdatedAt, v))
}

// CodigoEQ applies the EQ predicate on the "codigo" field.
func CodigoEQ(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldCodigo, v))
}

// CodigoNEQ applies the NEQ predicate on the "codigo" field.
func CodigoNEQ(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNEQ(FieldCodigo, v))
}

// CodigoIn applies the In predicate on the "codigo" field.
func CodigoIn(vs ...string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldIn(FieldCodigo, vs...))
}

// CodigoNotIn applies the NotIn predicate on the "codigo" field.
func CodigoNotIn(vs ...string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNotIn(FieldCodigo, vs...))
}

// CodigoGT applies the GT predicate on the "codigo" field.
func CodigoGT(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGT(FieldCodigo, v))
}

// CodigoGTE applies the GTE predicate on the "codigo" field.
func CodigoGTE(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGTE(FieldCodigo, v))
}

// CodigoLT applies the LT predicate on the "codigo" field.
func CodigoLT(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLT(FieldCodigo, v))
}

// CodigoLTE applies the LTE predicate on the "codigo" field.
func CodigoLTE(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLTE(FieldCodigo, v))
}

// CodigoContains applies the Contains predicate on the "codigo" field.
func CodigoContains(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldContains(FieldCodigo, v))
}

// CodigoHasPrefix applies the HasPrefix predicate on the "codigo" field.
func CodigoHasPrefix(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldHasPrefix(FieldCodigo, v))
}

// CodigoHasSuffix applies the HasSuffix predicate on the "codigo" field.
func CodigoHasSuffix(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldHasSuffix(FieldCodigo, v))
}

// CodigoEqualFold applies the EqualFold predicate on the "codigo" field.
func CodigoEqualFold(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEqualFold(FieldCodigo, v))
}

// CodigoContainsFold applies the ContainsFold predicate on the "codigo" field.
func CodigoContainsFold(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldContainsFold(FieldCodigo, v))
}

// DescripcionEQ applies the EQ predicate on the "descripcion" field.
func DescripcionEQ(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEQ(FieldDescripcion, v))
}

// DescripcionNEQ applies the NEQ predicate on the "descripcion" field.
func DescripcionNEQ(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNEQ(FieldDescripcion, v))
}

// DescripcionIn applies the In predicate on the "descripcion" field.
func DescripcionIn(vs ...string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldIn(FieldDescripcion, vs...))
}

// DescripcionNotIn applies the NotIn predicate on the "descripcion" field.
func DescripcionNotIn(vs ...string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldNotIn(FieldDescripcion, vs...))
}

// DescripcionGT applies the GT predicate on the "descripcion" field.
func DescripcionGT(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGT(FieldDescripcion, v))
}

// DescripcionGTE applies the GTE predicate on the "descripcion" field.
func DescripcionGTE(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldGTE(FieldDescripcion, v))
}

// DescripcionLT applies the LT predicate on the "descripcion" field.
func DescripcionLT(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLT(FieldDescripcion, v))
}

// DescripcionLTE applies the LTE predicate on the "descripcion" field.
func DescripcionLTE(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldLTE(FieldDescripcion, v))
}

// DescripcionContains applies the Contains predicate on the "descripcion" field.
func DescripcionContains(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldContains(FieldDescripcion, v))
}

// DescripcionHasPrefix applies the HasPrefix predicate on the "descripcion" field.
func DescripcionHasPrefix(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldHasPrefix(FieldDescripcion, v))
}

// DescripcionHasSuffix applies the HasSuffix predicate on the "descripcion" field.
func DescripcionHasSuffix(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldHasSuffix(FieldDescripcion, v))
}

// DescripcionEqualFold applies the EqualFold predicate on the "descripcion" field.
func DescripcionEqualFold(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldEqualFold(FieldDescripcion, v))
}

// DescripcionContainsFold applies the ContainsFold predicate on the "descripcion" field.
func DescripcionContainsFold(v string) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.FieldContainsFold(FieldDescripcion, v))
}

// HasPartoDiagnosticos applies the HasEdge predicate on the "parto_diagnosticos" edge.
func HasPartoDiagnosticos() predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PartoDiagnosticosTable, PartoDiagnosticosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartoDiagnosticosWith applies the HasEdge predicate on the "parto_diagnosticos" edge with a given conditions (other predicates).
func HasPartoDiagnosticosWith(preds ...predicate.PartoDiagnostico) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(func(s *sql.Selector) {
		step := newPartoDiagnosticosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDefunciones applies the HasEdge predicate on the "defunciones" edge.
func HasDefunciones() predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DefuncionesTable, DefuncionesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefuncionesWith applies the HasEdge predicate on the "defunciones" edge with a given conditions (other predicates).
func HasDefuncionesWith(preds ...predicate.Defuncion) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(func(s *sql.Selector) {
		step := newDefuncionesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosticoCIE10) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosticoCIE10) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosticoCIE10) predicate.DiagnosticoCIE10 {
	return predicate.DiagnosticoCIE10(sql.NotPredicates(p))
}
