// Code generated by ent, DO NOT EDIT.

package reciennacido

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldUpdatedAt, v))
}

// PartoID applies equality check predicate on the "parto_id" field. It's identical to PartoIDEQ.
func PartoID(v uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldPartoID, v))
}

// RutProvisorio applies equality check predicate on the "rut_provisorio" field. It's identical to RutProvisorioEQ.
func RutProvisorio(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldRutProvisorio, v))
}

// PesoGramos applies equality check predicate on the "peso_gramos" field. It's identical to PesoGramosEQ.
func PesoGramos(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldPesoGramos, v))
}

// TallaCm applies equality check predicate on the "talla_cm" field. It's identical to TallaCmEQ.
func TallaCm(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldTallaCm, v))
}

// Apgar1Min applies equality check predicate on the "apgar_1_min" field. It's identical to Apgar1MinEQ.
func Apgar1Min(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldApgar1Min, v))
}

// Apgar5Min applies equality check predicate on the "apgar_5_min" field. It's identical to Apgar5MinEQ.
func Apgar5Min(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldApgar5Min, v))
}

// ProfilaxisVitK applies equality check predicate on the "profilaxis_vit_k" field. It's identical to ProfilaxisVitKEQ.
func ProfilaxisVitK(v bool) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldProfilaxisVitK, v))
}

// ProfilaxisOftalmica applies equality check predicate on the "profilaxis_oftalmica" field. It's identical to ProfilaxisOftalmicaEQ.
func ProfilaxisOftalmica(v bool) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldProfilaxisOftalmica, v))
}

// UsuarioRegistroID applies equality check predicate on the "usuario_registro_id" field. It's identical to UsuarioRegistroIDEQ.
func UsuarioRegistroID(v uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldUsuarioRegistroID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldUpdatedAt, v))
}

// PartoIDEQ applies the EQ predicate on the "parto_id" field.
func PartoIDEQ(v uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldPartoID, v))
}

// PartoIDNEQ applies the NEQ predicate on the "parto_id" field.
func PartoIDNEQ(v uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldPartoID, v))
}

// PartoIDIn applies the In predicate on the "parto_id" field.
func PartoIDIn(vs ...uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldPartoID, vs...))
}

// PartoIDNotIn applies the NotIn predicate on the "parto_id" field.
func PartoIDNotIn(vs ...uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldPartoID, vs...))
}

// RutProvisorioEQ applies the EQ predicate on the "rut_provisorio" field.
func RutProvisorioEQ(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldRutProvisorio, v))
}

// RutProvisorioNEQ applies the NEQ predicate on the "rut_provisorio" field.
func RutProvisorioNEQ(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldRutProvisorio, v))
}

// RutProvisorioIn applies the In predicate on the "rut_provisorio" field.
func RutProvisorioIn(vs ...string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldRutProvisorio, vs...))
}

// RutProvisorioNotIn applies the NotIn predicate on the "rut_provisorio" field.
func RutProvisorioNotIn(vs ...string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldRutProvisorio, vs...))
}

// RutProvisorioGT applies the GT predicate on the "rut_provisorio" field.
func RutProvisorioGT(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldRutProvisorio, v))
}

// RutProvisorioGTE applies the GTE predicate on the "rut_provisorio" field.
func RutProvisorioGTE(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldRutProvisorio, v))
}

// RutProvisorioLT applies the LT predicate on the "rut_provisorio" field.
func RutProvisorioLT(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldRutProvisorio, v))
}

// RutProvisorioLTE applies the LTE predicate on the "rut_provisorio" field.
func RutProvisorioLTE(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldRutProvisorio, v))
}

// RutProvisorioContains applies the Contains predicate on the "rut_provisorio" field.
func RutProvisorioContains(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldContains(FieldRutProvisorio, v))
}

// RutProvisorioHasPrefix applies the HasPrefix predicate on the "rut_provisorio" field.
func RutProvisorioHasPrefix(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldHasPrefix(FieldRutProvisorio, v))
}

// RutProvisorioHasSuffix applies the HasSuffix predicate on the "rut_provisorio" field.
func RutProvisorioHasSuffix(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldHasSuffix(FieldRutProvisorio, v))
}

// RutProvisorioIsNil applies the IsNil predicate on the "rut_provisorio" field.
func RutProvisorioIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldRutProvisorio))
}

// RutProvisorioNotNil applies the NotNil predicate on the "rut_provisorio" field.
func RutProvisorioNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldRutProvisorio))
}

// RutProvisorioEqualFold applies the EqualFold predicate on the "rut_provisorio" field.
func RutProvisorioEqualFold(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEqualFold(FieldRutProvisorio, v))
}

// RutProvisorioContainsFold applies the ContainsFold predicate on the "rut_provisorio" field.
func RutProvisorioContainsFold(v string) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldContainsFold(FieldRutProvisorio, v))
}

// EstadoAlNacerEQ applies the EQ predicate on the "estado_al_nacer" field.
func EstadoAlNacerEQ(v EstadoAlNacer) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldEstadoAlNacer, v))
}

// EstadoAlNacerNEQ applies the NEQ predicate on the "estado_al_nacer" field.
func EstadoAlNacerNEQ(v EstadoAlNacer) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldEstadoAlNacer, v))
}

// EstadoAlNacerIn applies the In predicate on the "estado_al_nacer" field.
func EstadoAlNacerIn(vs ...EstadoAlNacer) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldEstadoAlNacer, vs...))
}

// EstadoAlNacerNotIn applies the NotIn predicate on the "estado_al_nacer" field.
func EstadoAlNacerNotIn(vs ...EstadoAlNacer) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldEstadoAlNacer, vs...))
}

// SexoEQ applies the EQ predicate on the "sexo" field.
func SexoEQ(v Sexo) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldSexo, v))
}

// SexoNEQ applies the NEQ predicate on the "sexo" field.
func SexoNEQ(v Sexo) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldSexo, v))
}

// SexoIn applies the In predicate on the "sexo" field.
func SexoIn(vs ...Sexo) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldSexo, vs...))
}

// SexoNotIn applies the NotIn predicate on the "sexo" field.
func SexoNotIn(vs ...Sexo) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldSexo, vs...))
}

// SexoIsNil applies the IsNil predicate on the "sexo" field.
func SexoIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldSexo))
}

// SexoNotNil applies the NotNil predicate on the "sexo" field.
func SexoNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldSexo))
}

// PesoGramosEQ applies the EQ predicate on the "peso_gramos" field.
func PesoGramosEQ(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldPesoGramos, v))
}

// PesoGramosNEQ applies the NEQ predicate on the "peso_gramos" field.
func PesoGramosNEQ(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldPesoGramos, v))
}

// PesoGramosIn applies the In predicate on the "peso_gramos" field.
func PesoGramosIn(vs ...int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldPesoGramos, vs...))
}

// PesoGramosNotIn applies the NotIn predicate on the "peso_gramos" field.
func PesoGramosNotIn(vs ...int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldPesoGramos, vs...))
}

// PesoGramosGT applies the GT predicate on the "peso_gramos" field.
func PesoGramosGT(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldPesoGramos, v))
}

// PesoGramosGTE applies the GTE predicate on the "peso_gramos" field.
func PesoGramosGTE(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldPesoGramos, v))
}

// PesoGramosLT applies the LT predicate on the "peso_gramos" field.
func PesoGramosLT(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldPesoGramos, v))
}

// PesoGramosLTE applies the LTE predicate on the "peso_gramos" field.
func PesoGramosLTE(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldPesoGramos, v))
}

// PesoGramosIsNil applies the IsNil predicate on the "peso_gramos" field.
func PesoGramosIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldPesoGramos))
}

// PesoGramosNotNil applies the NotNil predicate on the "peso_gramos" field.
func PesoGramosNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldPesoGramos))
}

// TallaCmEQ applies the EQ predicate on the "talla_cm" field.
func TallaCmEQ(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldTallaCm, v))
}

// TallaCmNEQ applies the NEQ predicate on the "talla_cm" field.
func TallaCmNEQ(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldTallaCm, v))
}

// TallaCmIn applies the In predicate on the "talla_cm" field.
func TallaCmIn(vs ...float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldTallaCm, vs...))
}

// TallaCmNotIn applies the NotIn predicate on the "talla_cm" field.
func TallaCmNotIn(vs ...float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldTallaCm, vs...))
}

// TallaCmGT applies the GT predicate on the "talla_cm" field.
func TallaCmGT(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldTallaCm, v))
}

// TallaCmGTE applies the GTE predicate on the "talla_cm" field.
func TallaCmGTE(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldTallaCm, v))
}

// TallaCmLT applies the LT predicate on the "talla_cm" field.
func TallaCmLT(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldTallaCm, v))
}

// TallaCmLTE applies the LTE predicate on the "talla_cm" field.
func TallaCmLTE(v float64) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldTallaCm, v))
}

// TallaCmIsNil applies the IsNil predicate on the "talla_cm" field.
func TallaCmIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldTallaCm))
}

// TallaCmNotNil applies the NotNil predicate on the "talla_cm" field.
func TallaCmNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldTallaCm))
}

// Apgar1MinEQ applies the EQ predicate on the "apgar_1_min" field.
func Apgar1MinEQ(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldApgar1Min, v))
}

// Apgar1MinNEQ applies the NEQ predicate on the "apgar_1_min" field.
func Apgar1MinNEQ(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldApgar1Min, v))
}

// Apgar1MinIn applies the In predicate on the "apgar_1_min" field.
func Apgar1MinIn(vs ...int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldApgar1Min, vs...))
}

// Apgar1MinNotIn applies the NotIn predicate on the "apgar_1_min" field.
func Apgar1MinNotIn(vs ...int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldApgar1Min, vs...))
}

// Apgar1MinGT applies the GT predicate on the "apgar_1_min" field.
func Apgar1MinGT(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldApgar1Min, v))
}

// Apgar1MinGTE applies the GTE predicate on the "apgar_1_min" field.
func Apgar1MinGTE(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldApgar1Min, v))
}

// Apgar1MinLT applies the LT predicate on the "apgar_1_min" field.
func Apgar1MinLT(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldApgar1Min, v))
}

// Apgar1MinLTE applies the LTE predicate on the "apgar_1_min" field.
func Apgar1MinLTE(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldApgar1Min, v))
}

// Apgar1MinIsNil applies the IsNil predicate on the "apgar_1_min" field.
func Apgar1MinIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldApgar1Min))
}

// Apgar1MinNotNil applies the NotNil predicate on the "apgar_1_min" field.
func Apgar1MinNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldApgar1Min))
}

// Apgar5MinEQ applies the EQ predicate on the "apgar_5_min" field.
func Apgar5MinEQ(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldApgar5Min, v))
}

// Apgar5MinNEQ applies the NEQ predicate on the "apgar_5_min" field.
func Apgar5MinNEQ(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldApgar5Min, v))
}

// Apgar5MinIn applies the In predicate on the "apgar_5_min" field.
func Apgar5MinIn(vs ...int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldApgar5Min, vs...))
}

// Apgar5MinNotIn applies the NotIn predicate on the "apgar_5_min" field.
func Apgar5MinNotIn(vs ...int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldApgar5Min, vs...))
}

// Apgar5MinGT applies the GT predicate on the "apgar_5_min" field.
func Apgar5MinGT(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGT(FieldApgar5Min, v))
}

// Apgar5MinGTE applies the GTE predicate on the "apgar_5_min" field.
func Apgar5MinGTE(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldGTE(FieldApgar5Min, v))
}

// Apgar5MinLT applies the LT predicate on the "apgar_5_min" field.
func Apgar5MinLT(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLT(FieldApgar5Min, v))
}

// Apgar5MinLTE applies the LTE predicate on the "apgar_5_min" field.
func Apgar5MinLTE(v int) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldLTE(FieldApgar5Min, v))
}

// Apgar5MinIsNil applies the IsNil predicate on the "apgar_5_min" field.
func Apgar5MinIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldApgar5Min))
}

// Apgar5MinNotNil applies the NotNil predicate on the "apgar_5_min" field.
func Apgar5MinNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldApgar5Min))
}

// ProfilaxisVitKEQ applies the EQ predicate on the "profilaxis_vit_k" field.
func ProfilaxisVitKEQ(v bool) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldProfilaxisVitK, v))
}

// ProfilaxisVitKNEQ applies the NEQ predicate on the "profilaxis_vit_k" field.
func ProfilaxisVitKNEQ(v bool) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldProfilaxisVitK, v))
}

// ProfilaxisOftalmicaEQ applies the EQ predicate on the "profilaxis_oftalmica" field.
func ProfilaxisOftalmicaEQ(v bool) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldProfilaxisOftalmica, v))
}

// ProfilaxisOftalmicaNEQ applies the NEQ predicate on the "profilaxis_oftalmica" field.
func ProfilaxisOftalmicaNEQ(v bool) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldProfilaxisOftalmica, v))
}

// UsuarioRegistroIDEQ applies the EQ predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDEQ(v uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldEQ(FieldUsuarioRegistroID, v))
}

// UsuarioRegistroIDNEQ applies the NEQ predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNEQ(v uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNEQ(FieldUsuarioRegistroID, v))
}

// UsuarioRegistroIDIn applies the In predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDIn(vs ...uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIn(FieldUsuarioRegistroID, vs...))
}

// UsuarioRegistroIDNotIn applies the NotIn predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNotIn(vs ...uuid.UUID) predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotIn(FieldUsuarioRegistroID, vs...))
}

// UsuarioRegistroIDIsNil applies the IsNil predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDIsNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldIsNull(FieldUsuarioRegistroID))
}

// UsuarioRegistroIDNotNil applies the NotNil predicate on the "usuario_registro_id" field.
func UsuarioRegistroIDNotNil() predicate.RecienNacido {
	return predicate.RecienNacido(sql.FieldNotNull(FieldUsuarioRegistroID))
}

// HasParto applies the HasEdge predicate on the "parto" edge.
func HasParto() predicate.RecienNacido {
	return predicate.RecienNacido(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PartoTable, PartoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartoWith applies the HasEdge predicate on the "parto" edge with a given conditions (other predicates).
func HasPartoWith(preds ...predicate.Parto) predicate.RecienNacido {
	return predicate.RecienNacido(func(s *sql.Selector) {
		step := newPartoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsuarioRegistro applies the HasEdge predicate on the "usuario_registro" edge.
func HasUsuarioRegistro() predicate.RecienNacido {
	return predicate.RecienNacido(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UsuarioRegistroTable, UsuarioRegistroColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsuarioRegistroWith applies the HasEdge predicate on the "usuario_registro" edge with a given conditions (other predicates).
func HasUsuarioRegistroWith(preds ...predicate.Usuario) predicate.RecienNacido {
	return predicate.RecienNacido(func(s *sql.Selector) {
		step := newUsuarioRegistroStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDefuncion applies the HasEdge predicate on the "defuncion" edge.
func HasDefuncion() predicate.RecienNacido {
	return predicate.RecienNacido(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DefuncionTable, DefuncionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefuncionWith applies the HasEdge predicate on the "defuncion" edge with a given conditions (other predicates).
func HasDefuncionWith(preds ...predicate.Defuncion) predicate.RecienNacido {
	return predicate.RecienNacido(func(s *sql.Selector) {
		step := newDefuncionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecienNacido) predicate.RecienNacido {
	return predicate.RecienNacido(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecienNacido) predicate.RecienNacido {
	return predicate.RecienNacido(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecienNacido) predicate.RecienNacido {
	return predicate.RecienNacido(sql.NotPredicates(p))
}
