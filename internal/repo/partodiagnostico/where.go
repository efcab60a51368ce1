// Code generated by ent, DO NOT EDIT.

package partodiagnostico

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldCreatedAt, v))
}

// PartoID applies equality check predicate on the "parto_id" field. It's identical to PartoIDEQ.
func PartoID(v uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldPartoID, v))
}

// DiagnosticoID applies equality check predicate on the "diagnostico_id" field. It's identical to DiagnosticoIDEQ.
func DiagnosticoID(v uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldDiagnosticoID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldLTE(FieldCreatedAt, v))
}

// PartoIDEQ applies the EQ predicate on the "parto_id" field.
func PartoIDEQ(v uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldPartoID, v))
}

// PartoIDNEQ applies the NEQ predicate on the "parto_id" field.
func PartoIDNEQ(v uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNEQ(FieldPartoID, v))
}

// PartoIDIn applies the In predicate on the "parto_id" field.
func PartoIDIn(vs ...uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldIn(FieldPartoID, vs...))
}

// PartoIDNotIn applies the NotIn predicate on the "parto_id" field.
func PartoIDNotIn(vs ...uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNotIn(FieldPartoID, vs...))
}

// DiagnosticoIDEQ applies the EQ predicate on the "diagnostico_id" field.
func DiagnosticoIDEQ(v uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldEQ(FieldDiagnosticoID, v))
}

// DiagnosticoIDNEQ applies the NEQ predicate on the "diagnostico_id" field.
func DiagnosticoIDNEQ(v uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNEQ(FieldDiagnosticoID, v))
}

// DiagnosticoIDIn applies the In predicate on the "diagnostico_id" field.
func DiagnosticoIDIn(vs ...uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldIn(FieldDiagnosticoID, vs...))
}

// DiagnosticoIDNotIn applies the NotIn predicate on the "diagnostico_id" field.
func DiagnosticoIDNotIn(vs ...uuid.UUID) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.FieldNotIn(FieldDiagnosticoID, vs...))
}

// HasParto applies the HasEdge predicate on the "parto" edge.
func HasParto() predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PartoTable, PartoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartoWith applies the HasEdge predicate on the "parto" edge with a given conditions (other predicates).
func HasPartoWith(preds ...predicate.Parto) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(func(s *sql.Selector) {
		step := newPartoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDiagnostico applies the HasEdge predicate on the "diagnostico" edge.
func HasDiagnostico() predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DiagnosticoTable, DiagnosticoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDiagnosticoWith applies the HasEdge predicate on the "diagnostico" edge with a given conditions (other predicates).
func HasDiagnosticoWith(preds ...predicate.DiagnosticoCIE10) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(func(s *sql.Selector) {
		step := newDiagnosticoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PartoDiagnostico) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PartoDiagnostico) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PartoDiagnostico) predicate.PartoDiagnostico {
	return predicate.PartoDiagnostico(sql.NotPredicates(p))
}
