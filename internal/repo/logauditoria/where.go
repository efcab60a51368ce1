// Code generated by ent, DO NOT EDIT.

package logauditoria

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLTE(FieldID, id))
}

// UsuarioID applies equality check predicate on the "usuario_id" field. It's identical to UsuarioIDEQ.
func UsuarioID(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldUsuarioID, v))
}

// Accion applies equality check predicate on the "accion" field. It's identical to AccionEQ.
func Accion(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldAccion, v))
}

// TablaAfectada applies equality check predicate on the "tabla_afectada" field. It's identical to TablaAfectadaEQ.
func TablaAfectada(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldTablaAfectada, v))
}

// RegistroID applies equality check predicate on the "registro_id" field. It's identical to RegistroIDEQ.
func RegistroID(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldRegistroID, v))
}

// IPUsuario applies equality check predicate on the "ip_usuario" field. It's identical to IPUsuarioEQ.
func IPUsuario(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldIPUsuario, v))
}

// FechaAccion applies equality check predicate on the "fecha_accion" field. It's identical to FechaAccionEQ.
func FechaAccion(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldFechaAccion, v))
}

// UsuarioIDEQ applies the EQ predicate on the "usuario_id" field.
func UsuarioIDEQ(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldUsuarioID, v))
}

// UsuarioIDNEQ applies the NEQ predicate on the "usuario_id" field.
func UsuarioIDNEQ(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldUsuarioID, v))
}

// UsuarioIDIn applies the In predicate on the "usuario_id" field.
func UsuarioIDIn(vs ...uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldUsuarioID, vs...))
}

// UsuarioIDNotIn applies the NotIn predicate on the "usuario_id" field.
func UsuarioIDNotIn(vs ...uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldUsuarioID, vs...))
}

// UsuarioIDIsNil applies the IsNil predicate on the "usuario_id" field.
func UsuarioIDIsNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIsNull(FieldUsuarioID))
}

// UsuarioIDNotNil applies the NotNil predicate on the "usuario_id" field.
func UsuarioIDNotNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotNull(FieldUsuarioID))
}

// AccionEQ applies the EQ predicate on the "accion" field.
func AccionEQ(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldAccion, v))
}

// AccionNEQ applies the NEQ predicate on the "accion" field.
func AccionNEQ(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldAccion, v))
}

// AccionIn applies the In predicate on the "accion" field.
func AccionIn(vs ...string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldAccion, vs...))
}

// AccionNotIn applies the NotIn predicate on the "accion" field.
func AccionNotIn(vs ...string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldAccion, vs...))
}

// AccionGT applies the GT predicate on the "accion" field.
func AccionGT(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGT(FieldAccion, v))
}

// AccionGTE applies the GTE predicate on the "accion" field.
func AccionGTE(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGTE(FieldAccion, v))
}

// AccionLT applies the LT predicate on the "accion" field.
func AccionLT(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLT(FieldAccion, v))
}

// AccionLTE applies the LTE predicate on the "accion" field.
func AccionLTE(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLTE(FieldAccion, v))
}

// AccionContains applies the Contains predicate on the "accion" field.
func AccionContains(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldContains(FieldAccion, v))
}

// AccionHasPrefix applies the HasPrefix predicate on the "accion" field.
func AccionHasPrefix(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldHasPrefix(FieldAccion, v))
}

// AccionHasSuffix applies the HasSuffix predicate on the "accion" field.
func AccionHasSuffix(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldHasSuffix(FieldAccion, v))
}

// AccionEqualFold applies the EqualFold predicate on the "accion" field.
func AccionEqualFold(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEqualFold(FieldAccion, v))
}

// AccionContainsFold applies the ContainsFold predicate on the "accion" field.
func AccionContainsFold(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldContainsFold(FieldAccion, v))
}

// TablaAfectadaEQ applies the EQ predicate on the "tabla_afectada" field.
func TablaAfectadaEQ(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldTablaAfectada, v))
}

// TablaAfectadaNEQ applies the NEQ predicate on the "tabla_afectada" field.
func TablaAfectadaNEQ(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldTablaAfectada, v))
}

// TablaAfectadaIn applies the In predicate on the "tabla_afectada" field.
func TablaAfectadaIn(vs ...string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldTablaAfectada, vs...))
}

// TablaAfectadaNotIn applies the NotIn predicate on the "tabla_afectada" field.
func TablaAfectadaNotIn(vs ...string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldTablaAfectada, vs...))
}

// TablaAfectadaGT applies the GT predicate on the "tabla_afectada" field.
func TablaAfectadaGT(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGT(FieldTablaAfectada, v))
}

// TablaAfectadaGTE applies the GTE predicate on the "tabla_afectada" field.
func TablaAfectadaGTE(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGTE(FieldTablaAfectada, v))
}

// TablaAfectadaLT applies the LT predicate on the "tabla_afectada" field.
func TablaAfectadaLT(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLT(FieldTablaAfectada, v))
}

// TablaAfectadaLTE applies the LTE predicate on the "tabla_afectada" field.
func TablaAfectadaLTE(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLTE(FieldTablaAfectada, v))
}

// TablaAfectadaContains applies the Contains predicate on the "tabla_afectada" field.
func TablaAfectadaContains(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldContains(FieldTablaAfectada, v))
}

// TablaAfectadaHasPrefix applies the HasPrefix predicate on the "tabla_afectada" field.
func TablaAfectadaHasPrefix(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldHasPrefix(FieldTablaAfectada, v))
}

// TablaAfectadaHasSuffix applies the HasSuffix predicate on the "tabla_afectada" field.
func TablaAfectadaHasSuffix(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldHasSuffix(FieldTablaAfectada, v))
}

// TablaAfectadaIsNil applies the IsNil predicate on the "tabla_afectada" field.
func TablaAfectadaIsNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIsNull(FieldTablaAfectada))
}

// TablaAfectadaNotNil applies the NotNil predicate on the "tabla_afectada" field.
func TablaAfectadaNotNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotNull(FieldTablaAfectada))
}

// TablaAfectadaEqualFold applies the EqualFold predicate on the "tabla_afectada" field.
func TablaAfectadaEqualFold(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEqualFold(FieldTablaAfectada, v))
}

// TablaAfectadaContainsFold applies the ContainsFold predicate on the "tabla_afectada" field.
func TablaAfectadaContainsFold(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldContainsFold(FieldTablaAfectada, v))
}

// RegistroIDEQ applies the EQ predicate on the "registro_id" field.
func RegistroIDEQ(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldRegistroID, v))
}

// RegistroIDNEQ applies the NEQ predicate on the "registro_id" field.
func RegistroIDNEQ(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldRegistroID, v))
}

// RegistroIDIn applies the In predicate on the "registro_id" field.
func RegistroIDIn(vs ...uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldRegistroID, vs...))
}

// RegistroIDNotIn applies the NotIn predicate on the "registro_id" field.
func RegistroIDNotIn(vs ...uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldRegistroID, vs...))
}

// RegistroIDGT applies the GT predicate on the "registro_id" field.
func RegistroIDGT(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGT(FieldRegistroID, v))
}

// RegistroIDGTE applies the GTE predicate on the "registro_id" field.
func RegistroIDGTE(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGTE(FieldRegistroID, v))
}

// RegistroIDLT applies the LT predicate on the "registro_id" field.
func RegistroIDLT(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLT(FieldRegistroID, v))
}

// RegistroIDLTE applies the LTE predicate on the "registro_id" field.
func RegistroIDLTE(v uuid.UUID) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLTE(FieldRegistroID, v))
}

// RegistroIDIsNil applies the IsNil predicate on the "registro_id" field.
func RegistroIDIsNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIsNull(FieldRegistroID))
}

// RegistroIDNotNil applies the NotNil predicate on the "registro_id" field.
func RegistroIDNotNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotNull(FieldRegistroID))
}

// DetallesIsNil applies the IsNil predicate on the "detalles" field.
func DetallesIsNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIsNull(FieldDetalles))
}

// DetallesNotNil applies the NotNil predicate on the "detalles" field.
func DetallesNotNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotNull(FieldDetalles))
}

// IPUsuarioEQ applies the EQ predicate on the "ip_usuario" field.
func IPUsuarioEQ(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldIPUsuario, v))
}

// IPUsuarioNEQ applies the NEQ predicate on the "ip_usuario" field.
func IPUsuarioNEQ(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldIPUsuario, v))
}

// IPUsuarioIn applies the In predicate on the "ip_usuario" field.
func IPUsuarioIn(vs ...string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldIPUsuario, vs...))
}

// IPUsuarioNotIn applies the NotIn predicate on the "ip_usuario" field.
func IPUsuarioNotIn(vs ...string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldIPUsuario, vs...))
}

// IPUsuarioGT applies the GT predicate on the "ip_usuario" field.
func IPUsuarioGT(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGT(FieldIPUsuario, v))
}

// IPUsuarioGTE applies the GTE predicate on the "ip_usuario" field.
func IPUsuarioGTE(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGTE(FieldIPUsuario, v))
}

// IPUsuarioLT applies the LT predicate on the "ip_usuario" field.
func IPUsuarioLT(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLT(FieldIPUsuario, v))
}

// IPUsuarioLTE applies the LTE predicate on the "ip_usuario" field.
func IPUsuarioLTE(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLTE(FieldIPUsuario, v))
}

// IPUsuarioContains applies the Contains predicate on the "ip_usuario" field.
func IPUsuarioContains(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldContains(FieldIPUsuario, v))
}

// IPUsuarioHasPrefix applies the HasPrefix predicate on the "ip_usuario" field.
func IPUsuarioHasPrefix(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldHasPrefix(FieldIPUsuario, v))
}

// IPUsuarioHasSuffix applies the HasSuffix predicate on the "ip_usuario" field.
func IPUsuarioHasSuffix(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldHasSuffix(FieldIPUsuario, v))
}

// IPUsuarioIsNil applies the IsNil predicate on the "ip_usuario" field.
func IPUsuarioIsNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIsNull(FieldIPUsuario))
}

// IPUsuarioNotNil applies the NotNil predicate on the "ip_usuario" field.
func IPUsuarioNotNil() predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotNull(FieldIPUsuario))
}

// IPUsuarioEqualFold applies the EqualFold predicate on the "ip_usuario" field.
func IPUsuarioEqualFold(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEqualFold(FieldIPUsuario, v))
}

// IPUsuarioContainsFold applies the ContainsFold predicate on the "ip_usuario" field.
func IPUsuarioContainsFold(v string) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldContainsFold(FieldIPUsuario, v))
}

// FechaAccionEQ applies the EQ predicate on the "fecha_accion" field.
func FechaAccionEQ(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldEQ(FieldFechaAccion, v))
}

// FechaAccionNEQ applies the NEQ predicate on the "fecha_accion" field.
func FechaAccionNEQ(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNEQ(FieldFechaAccion, v))
}

// FechaAccionIn applies the In predicate on the "fecha_accion" field.
func FechaAccionIn(vs ...time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldIn(FieldFechaAccion, vs...))
}

// FechaAccionNotIn applies the NotIn predicate on the "fecha_accion" field.
func FechaAccionNotIn(vs ...time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldNotIn(FieldFechaAccion, vs...))
}

// FechaAccionGT applies the GT predicate on the "fecha_accion" field.
func FechaAccionGT(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGT(FieldFechaAccion, v))
}

// FechaAccionGTE applies the GTE predicate on the "fecha_accion" field.
func FechaAccionGTE(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldGTE(FieldFechaAccion, v))
}

// FechaAccionLT applies the LT predicate on the "fecha_accion" field.
func FechaAccionLT(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLT(FieldFechaAccion, v))
}

// FechaAccionLTE applies the LTE predicate on the "fecha_accion" field.
func FechaAccionLTE(v time.Time) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.FieldLTE(FieldFechaAccion, v))
}

// HasUsuario applies the HasEdge predicate on the "usuario" edge.
func HasUsuario() predicate.LogAuditoria {
	return predicate.LogAuditoria(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UsuarioTable, UsuarioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsuarioWith applies the HasEdge predicate on the "usuario" edge with a given conditions (other predicates).
func HasUsuarioWith(preds ...predicate.Usuario) predicate.LogAuditoria {
	return predicate.LogAuditoria(func(s *sql.Selector) {
		step := newUsuarioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LogAuditoria) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LogAuditoria) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LogAuditoria) predicate.LogAuditoria {
	return predicate.LogAuditoria(sql.NotPredicates(p))
}
