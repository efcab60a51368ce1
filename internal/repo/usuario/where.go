// Code generated by ent, DO NOT EDIT.

package usuario

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldUpdatedAt, v))
}

// Rut applies equality check predicate on the "rut" field. It's identical to RutEQ.
func Rut(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldRut, v))
}

// NombreCompleto applies equality check predicate on the "nombre_completo" field. It's identical to NombreCompletoEQ.
func NombreCompleto(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldNombreCompleto, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldEmail, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldUsername, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldPasswordHash, v))
}

// RolID applies equality check predicate on the "rol_id" field. It's identical to RolIDEQ.
func RolID(v uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldRolID, v))
}

// Activo applies equality check predicate on the "activo" field. It's identical to ActivoEQ.
func Activo(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldActivo, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldUpdatedAt, v))
}

// RutEQ applies the EQ predicate on the "rut" field.
func RutEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldRut, v))
}

// RutNEQ applies the NEQ predicate on the "rut" field.
func RutNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldRut, v))
}

// RutIn applies the In predicate on the "rut" field.
func RutIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldRut, vs...))
}

// RutNotIn applies the NotIn predicate on the "rut" field.
func RutNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldRut, vs...))
}

// RutGT applies the GT predicate on the "rut" field.
func RutGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldRut, v))
}

// RutGTE applies the GTE predicate on the "rut" field.
func RutGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldRut, v))
}

// RutLT applies the LT predicate on the "rut" field.
func RutLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldRut, v))
}

// RutLTE applies the LTE predicate on the "rut" field.
func RutLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldRut, v))
}

// RutContains applies the Contains predicate on the "rut" field.
func RutContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldRut, v))
}

// RutHasPrefix applies the HasPrefix predicate on the "rut" field.
func RutHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldRut, v))
}

// RutHasSuffix applies the HasSuffix predicate on the "rut" field.
func RutHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldRut, v))
}

// RutEqualFold applies the EqualFold predicate on the "rut" field.
func RutEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldRut, v))
}

// RutContainsFold applies the ContainsFold predicate on the "rut" field.
func RutContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldRut, v))
}

// NombreCompletoEQ applies the EQ predicate on the "nombre_completo" field.
func NombreCompletoEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldNombreCompleto, v))
}

// NombreCompletoNEQ applies the NEQ predicate on the "nombre_completo" field.
func NombreCompletoNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldNombreCompleto, v))
}

// NombreCompletoIn applies the In predicate on the "nombre_completo" field.
func NombreCompletoIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldNombreCompleto, vs...))
}

// NombreCompletoNotIn applies the NotIn predicate on the "nombre_completo" field.
func NombreCompletoNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldNombreCompleto, vs...))
}

// NombreCompletoGT applies the GT predicate on the "nombre_completo" field.
func NombreCompletoGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldNombreCompleto, v))
}

// NombreCompletoGTE applies the GTE predicate on the "nombre_completo" field.
func NombreCompletoGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldNombreCompleto, v))
}

// NombreCompletoLT applies the LT predicate on the "nombre_completo" field.
func NombreCompletoLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldNombreCompleto, v))
}

// NombreCompletoLTE applies the LTE predicate on the "nombre_completo" field.
func NombreCompletoLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldNombreCompleto, v))
}

// NombreCompletoContains applies the Contains predicate on the "nombre_completo" field.
func NombreCompletoContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldNombreCompleto, v))
}

// NombreCompletoHasPrefix applies the HasPrefix predicate on the "nombre_completo" field.
func NombreCompletoHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldNombreCompleto, v))
}

// NombreCompletoHasSuffix applies the HasSuffix predicate on the "nombre_completo" field.
func NombreCompletoHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldNombreCompleto, v))
}

// NombreCompletoEqualFold applies the EqualFold predicate on the "nombre_completo" field.
func NombreCompletoEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldNombreCompleto, v))
}

// NombreCompletoContainsFold applies the ContainsFold predicate on the "nombre_completo" field.
func NombreCompletoContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldNombreCompleto, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldEmail, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldUsername, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldPasswordHash, v))
}

// RolIDEQ applies the EQ predicate on the "rol_id" field.
func RolIDEQ(v uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldRolID, v))
}

// RolIDNEQ applies the NEQ predicate on the "rol_id" field.
func RolIDNEQ(v uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldRolID, v))
}

// RolIDIn applies the In predicate on the "rol_id" field.
func RolIDIn(vs ...uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldRolID, vs...))
}

// RolIDNotIn applies the NotIn predicate on the "rol_id" field.
func RolIDNotIn(vs ...uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldRolID, vs...))
}

// ActivoEQ applies the EQ predicate on the "activo" field.
func ActivoEQ(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldActivo, v))
}

// ActivoNEQ applies the NEQ predicate on the "activo" field.
func ActivoNEQ(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldActivo, v))
}

// HasRol applies the HasEdge predicate on the "rol" edge.
func HasRol() predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RolTable, RolColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRolWith applies the HasEdge predicate on the "rol" edge with a given conditions (other predicates).
func HasRolWith(preds ...predicate.Rol) predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := newRolStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRegistrosAuditoria applies the HasEdge predicate on the "registros_auditoria" edge.
func HasRegistrosAuditoria() predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RegistrosAuditoriaTable, RegistrosAuditoriaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRegistrosAuditoriaWith applies the HasEdge predicate on the "registros_auditoria" edge with a given conditions (other predicates).
func HasRegistrosAuditoriaWith(preds ...predicate.LogAuditoria) predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := newRegistrosAuditoriaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPartosRegistrados applies the HasEdge predicate on the "partos_registrados" edge.
func HasPartosRegistrados() predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PartosRegistradosTable, PartosRegistradosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartosRegistradosWith applies the HasEdge predicate on the "partos_registrados" edge with a given conditions (other predicates).
func HasPartosRegistradosWith(preds ...predicate.Parto) predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := newPartosRegistradosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecienNacidosRegistrados applies the HasEdge predicate on the "recien_nacidos_registrados" edge.
func HasRecienNacidosRegistrados() predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecienNacidosRegistradosTable, RecienNacidosRegistradosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecienNacidosRegistradosWith applies the HasEdge predicate on the "recien_nacidos_registrados" edge with a given conditions (other predicates).
func HasRecienNacidosRegistradosWith(preds ...predicate.RecienNacido) predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := newRecienNacidosRegistradosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDefuncionesRegistradas applies the HasEdge predicate on the "defunciones_registradas" edge.
func HasDefuncionesRegistradas() predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DefuncionesRegistradasTable, DefuncionesRegistradasColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefuncionesRegistradasWith applies the HasEdge predicate on the "defunciones_registradas" edge with a given conditions (other predicates).
func HasDefuncionesRegistradasWith(preds ...predicate.Defuncion) predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := newDefuncionesRegistradasStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocumentosGenerados applies the HasEdge predicate on the "documentos_generados" edge.
func HasDocumentosGenerados() predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentosGeneradosTable, DocumentosGeneradosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentosGeneradosWith applies the HasEdge predicate on the "documentos_generados" edge with a given conditions (other predicates).
func HasDocumentosGeneradosWith(preds ...predicate.DocumentoReferencia) predicate.Usuario {
	return predicate.Usuario(func(s *sql.Selector) {
		step := newDocumentosGeneradosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Usuario) predicate.Usuario {
	return predicate.Usuario(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Usuario) predicate.Usuario {
	return predicate.Usuario(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Usuario) predicate.Usuario {
	return predicate.Usuario(sql.NotPredicates(p))
}
