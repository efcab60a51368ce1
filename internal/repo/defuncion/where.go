// Code generated by ent, DO NOT EDIT.

package defuncion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldUpdatedAt, v))
}

// MadreID applies equality check predicate on the "madre_id" field. It's identical to MadreIDEQ.
func MadreID(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldMadreID, v))
}

// RecienNacidoID applies equality check predicate on the "recien_nacido_id" field. It's identical to RecienNacidoIDEQ.
func RecienNacidoID(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldRecienNacidoID, v))
}

// FechaDefuncion applies equality check predicate on the "fecha_defuncion" field. It's identical to FechaDefuncionEQ.
func FechaDefuncion(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldFechaDefuncion, v))
}

// CausaDefuncionID applies equality check predicate on the "causa_defuncion_id" field. It's identical to CausaDefuncionIDEQ.
func CausaDefuncionID(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldCausaDefuncionID, v))
}

// UsuarioRegistroID applies equality check predicate on the "usuario_registro_id" field. It's identical to UsuarioRegistroIDEQ.
func UsuarioRegistroID(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldUsuarioRegistroID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLTE(FieldUpdatedAt, v))
}

// MadreIDEQ applies the EQ predicate on the "madre_id" field.
func MadreIDEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldMadreID, v))
}

// MadreIDNEQ applies the NEQ predicate on the "madre_id" field.
func MadreIDNEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldMadreID, v))
}

// MadreIDIn applies the In predicate on the "madre_id" field.
func MadreIDIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldMadreID, vs...))
}

// MadreIDNotIn applies the NotIn predicate on the "madre_id" field.
func MadreIDNotIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldMadreID, vs...))
}

// MadreIDIsNil applies the IsNil predicate on the "madre_id" field.
func MadreIDIsNil() predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIsNull(FieldMadreID))
}

// MadreIDNotNil applies the NotNil predicate on the "madre_id" field.
func MadreIDNotNil() predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotNull(FieldMadreID))
}

// RecienNacidoIDEQ applies the EQ predicate on the "recien_nacido_id" field.
func RecienNacidoIDEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldRecienNacidoID, v))
}

// RecienNacidoIDNEQ applies the NEQ predicate on the "recien_nacido_id" field.
func RecienNacidoIDNEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldRecienNacidoID, v))
}

// RecienNacidoIDIn applies the In predicate on the "recien_nacido_id" field.
func RecienNacidoIDIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldRecienNacidoID, vs...))
}

// RecienNacidoIDNotIn applies the NotIn predicate on the "recien_nacido_id" field.
func RecienNacidoIDNotIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldRecienNacidoID, vs...))
}

// RecienNacidoIDIsNil applies the IsNil predicate on the "recien_nacido_id" field.
func RecienNacidoIDIsNil() predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIsNull(FieldRecienNacidoID))
}

// RecienNacidoIDNotNil applies the NotNil predicate on the "recien_nacido_id" field.
func RecienNacidoIDNotNil() predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotNull(FieldRecienNacidoID))
}

// FechaDefuncionEQ applies the EQ predicate on the "fecha_defuncion" field.
func FechaDefuncionEQ(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldFechaDefuncion, v))
}

// FechaDefuncionNEQ applies the NEQ predicate on the "fecha_defuncion" field.
func FechaDefuncionNEQ(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldFechaDefuncion, v))
}

// FechaDefuncionIn applies the In predicate on the "fecha_defuncion" field.
func FechaDefuncionIn(vs ...time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldFechaDefuncion, vs...))
}

// FechaDefuncionNotIn applies the NotIn predicate on the "fecha_defuncion" field.
func FechaDefuncionNotIn(vs ...time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldFechaDefuncion, vs...))
}

// FechaDefuncionGT applies the GT predicate on the "fecha_defuncion" field.
func FechaDefuncionGT(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGT(FieldFechaDefuncion, v))
}

// FechaDefuncionGTE applies the GTE predicate on the "fecha_defuncion" field.
func FechaDefuncionGTE(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldGTE(FieldFechaDefuncion, v))
}

// FechaDefuncionLT applies the LT predicate on the "fecha_defuncion" field.
func FechaDefuncionLT(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLT(FieldFechaDefuncion, v))
}

// FechaDefuncionLTE applies the LTE predicate on the "fecha_defuncion" field.
func FechaDefuncionLTE(v time.Time) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldLTE(FieldFechaDefuncion, v))
}

// CausaDefuncionIDEQ applies the EQ predicate on the "causa_defuncion_id" field.
func CausaDefuncionIDEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldCausaDefuncionID, v))
}

// CausaDefuncionIDNEQ applies the NEQ predicate on the "causa_defuncion_id" field.
func CausaDefuncionIDNEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldCausaDefuncionID, v))
}

// CausaDefuncionIDIn applies the In predicate on the "causa_defuncion_id" field.
func CausaDefuncionIDIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldCausaDefuncionID, vs...))
}

// CausaDefuncionIDNotIn applies the NotIn predicate on the "causa_defuncion_id" field.
func CausaDefuncionIDNotIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldCausaDefuncionID, vs...))
}

// UsuarioRegistroIDEQ applies the EQ predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldEQ(FieldUsuarioRegistroID, v))
}

// UsuarioRegistroIDNEQ applies the NEQ predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNEQ(v uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNEQ(FieldUsuarioRegistroID, v))
}

// UsuarioRegistroIDIn applies the In predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIn(FieldUsuarioRegistroID, vs...))
}

// UsuarioRegistroIDNotIn applies the NotIn predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNotIn(vs ...uuid.UUID) predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotIn(FieldUsuarioRegistroID, vs...))
}

// UsuarioRegistroIDIsNil applies the IsNil predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDIsNil() predicate.Defuncion {
	return predicate.Defuncion(sql.FieldIsNull(FieldUsuarioRegistroID))
}

// UsuarioRegistroIDNotNil applies the NotNil predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNotNil() predicate.Defuncion {
	return predicate.Defuncion(sql.FieldNotNull(FieldUsuarioRegistroID))
}

// HasMadre applies the HasEdge predicate on the "madre" edge.
func HasMadre() predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MadreTable, MadreColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMadreWith applies the HasEdge predicate on the "madre" edge with a given conditions (other predicates).
func HasMadreWith(preds ...predicate.Madre) predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := newMadreStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecienNacido applies the HasEdge predicate on the "recien_nacido" edge.
func HasRecienNacido() predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RecienNacidoTable, RecienNacidoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecienNacidoWith applies the HasEdge predicate on the "recien_nacido" edge with a given conditions (other predicates).
func HasRecienNacidoWith(preds ...predicate.RecienNacido) predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := newRecienNacidoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCausaDefuncion applies the HasEdge predicate on the "causa_defuncion" edge.
func HasCausaDefuncion() predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CausaDefuncionTable, CausaDefuncionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCausaDefuncionWith applies the HasEdge predicate on the "causa_defuncion" edge with a given conditions (other predicates).
func HasCausaDefuncionWith(preds ...predicate.DiagnosticoCIE10) predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := newCausaDefuncionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsuarioRegistro applies the HasEdge predicate on the "usuario_registro" edge.
func HasUsuarioRegistro() predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UsuarioRegistroTable, UsuarioRegistroColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsuarioRegistroWith applies the HasEdge predicate on the "usuario_registro" edge with a given conditions (other predicates).
func HasUsuarioRegistroWith(preds ...predicate.Usuario) predicate.Defuncion {
	return predicate.Defuncion(func(s *sql.Selector) {
		step := newUsuarioRegistroStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Defuncion) predicate.Defuncion {
	return predicate.Defuncion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Defuncion) predicate.Defuncion {
	return predicate.Defuncion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Defuncion) predicate.Defuncion {
	return predicate.Defuncion(sql.NotPredicates(p))
}
