// Code generated by ent, DO NOT EDIT.

package madre

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldUpdatedAt, v))
}

// FichaClinicaID applies equality check predicate on the "ficha_clinica_id" field. It's identical to FichaClinicaIDEQ.
func FichaClinicaID(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldFichaClinicaID, v))
}

// RutHash applies equality check predicate on the "rut_hash" field. It's identical to RutHashEQ.
func RutHash(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldRutHash, v))
}

// RutEncrypted applies equality check predicate on the "rut_encrypted" field. It's identical to RutEncryptedEQ.
func RutEncrypted(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldRutEncrypted, v))
}

// NombreHash applies equality check predicate on the "nombre_hash" field. It's identical to NombreHashEQ.
func NombreHash(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldNombreHash, v))
}

// NombreEncrypted applies equality check predicate on the "nombre_encrypted" field. It's identical to NombreEncryptedEQ.
func NombreEncrypted(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldNombreEncrypted, v))
}

// TelefonoHash applies equality check predicate on the "telefono_hash" field. It's identical to TelefonoHashEQ.
func TelefonoHash(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldTelefonoHash, v))
}

// TelefonoEncrypted applies equality check predicate on the "telefono_encrypted" field. It's identical to TelefonoEncryptedEQ.
func TelefonoEncrypted(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldTelefonoEncrypted, v))
}

// FechaNacimiento applies equality check predicate on the "fecha_nacimiento" field. It's identical to FechaNacimientoEQ.
func FechaNacimiento(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldFechaNacimiento, v))
}

// Nacionalidad applies equality check predicate on the "nacionalidad" field. It's identical to NacionalidadEQ.
func Nacionalidad(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldNacionalidad, v))
}

// PertenecePuebloOriginario applies equality check predicate on the "pertenece_pueblo_originario" field. It's identical to PertenecePuebloOriginarioEQ.
func PertenecePuebloOriginario(v bool) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldPertenecePuebloOriginario, v))
}

// AntecedentesMedicos applies equality check predicate on the "antecedentes_medicos" field. It's identical to AntecedentesMedicosEQ.
func AntecedentesMedicos(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldAntecedentesMedicos, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldUpdatedAt, v))
}

// FichaClinicaIDEQ applies the EQ predicate on the "ficha_clinica_id" field.
func FichaClinicaIDEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldFichaClinicaID, v))
}

// FichaClinicaIDNEQ applies the NEQ predicate on the "ficha_clinica_id" field.
func FichaClinicaIDNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldFichaClinicaID, v))
}

// FichaClinicaIDIn applies the In predicate on the "ficha_clinica_id" field.
func FichaClinicaIDIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldFichaClinicaID, vs...))
}

// FichaClinicaIDNotIn applies the NotIn predicate on the "ficha_clinica_id" field.
func FichaClinicaIDNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldFichaClinicaID, vs...))
}

// FichaClinicaIDGT applies the GT predicate on the "ficha_clinica_id" field.
func FichaClinicaIDGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldFichaClinicaID, v))
}

// FichaClinicaIDGTE applies the GTE predicate on the "ficha_clinica_id" field.
func FichaClinicaIDGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldFichaClinicaID, v))
}

// FichaClinicaIDLT applies the LT predicate on the "ficha_clinica_id" field.
func FichaClinicaIDLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldFichaClinicaID, v))
}

// FichaClinicaIDLTE applies the LTE predicate on the "ficha_clinica_id" field.
func FichaClinicaIDLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldFichaClinicaID, v))
}

// FichaClinicaIDContains applies the Contains predicate on the "ficha_clinica_id" field.
func FichaClinicaIDContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldFichaClinicaID, v))
}

// FichaClinicaIDHasPrefix applies the HasPrefix predicate on the "ficha_clinica_id" field.
func FichaClinicaIDHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldFichaClinicaID, v))
}

// FichaClinicaIDHasSuffix applies the HasSuffix predicate on the "ficha_clinica_id" field.
func FichaClinicaIDHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldFichaClinicaID, v))
}

// FichaClinicaIDIsNil applies the IsNil predicate on the "ficha_clinica_id" field.
func FichaClinicaIDIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldFichaClinicaID))
}

// FichaClinicaIDNotNil applies the NotNil predicate on the "ficha_clinica_id" field.
func FichaClinicaIDNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldFichaClinicaID))
}

// FichaClinicaIDEqualFold applies the EqualFold predicate on the "ficha_clinica_id" field.
func FichaClinicaIDEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldFichaClinicaID, v))
}

// FichaClinicaIDContainsFold applies the ContainsFold predicate on the "ficha_clinica_id" field.
func FichaClinicaIDContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldFichaClinicaID, v))
}

// RutHashEQ applies the EQ predicate on the "rut_hash" field.
func RutHashEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldRutHash, v))
}

// RutHashNEQ applies the NEQ predicate on the "rut_hash" field.
func RutHashNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldRutHash, v))
}

// RutHashIn applies the In predicate on the "rut_hash" field.
func RutHashIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldRutHash, vs...))
}

// RutHashNotIn applies the NotIn predicate on the "rut_hash" field.
func RutHashNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldRutHash, vs...))
}

// RutHashGT applies the GT predicate on the "rut_hash" field.
func RutHashGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldRutHash, v))
}

// RutHashGTE applies the GTE predicate on the "rut_hash" field.
func RutHashGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldRutHash, v))
}

// RutHashLT applies the LT predicate on the "rut_hash" field.
func RutHashLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldRutHash, v))
}

// RutHashLTE applies the LTE predicate on the "rut_hash" field.
func RutHashLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldRutHash, v))
}

// RutHashContains applies the Contains predicate on the "rut_hash" field.
func RutHashContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldRutHash, v))
}

// RutHashHasPrefix applies the HasPrefix predicate on the "rut_hash" field.
func RutHashHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldRutHash, v))
}

// RutHashHasSuffix applies the HasSuffix predicate on the "rut_hash" field.
func RutHashHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldRutHash, v))
}

// RutHashIsNil applies the IsNil predicate on the "rut_hash" field.
func RutHashIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldRutHash))
}

// RutHashNotNil applies the NotNil predicate on the "rut_hash" field.
func RutHashNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldRutHash))
}

// RutHashEqualFold applies the EqualFold predicate on the "rut_hash" field.
func RutHashEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldRutHash, v))
}

// RutHashContainsFold applies the ContainsFold predicate on the "rut_hash" field.
func RutHashContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldRutHash, v))
}

// RutEncryptedEQ applies the EQ predicate on the "rut_encrypted" field.
func RutEncryptedEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldRutEncrypted, v))
}

// RutEncryptedNEQ applies the NEQ predicate on the "rut_encrypted" field.
func RutEncryptedNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldRutEncrypted, v))
}

// RutEncryptedIn applies the In predicate on the "rut_encrypted" field.
func RutEncryptedIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldRutEncrypted, vs...))
}

// RutEncryptedNotIn applies the NotIn predicate on the "rut_encrypted" field.
func RutEncryptedNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldRutEncrypted, vs...))
}

// RutEncryptedGT applies the GT predicate on the "rut_encrypted" field.
func RutEncryptedGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldRutEncrypted, v))
}

// RutEncryptedGTE applies the GTE predicate on the "rut_encrypted" field.
func RutEncryptedGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldRutEncrypted, v))
}

// RutEncryptedLT applies the LT predicate on the "rut_encrypted" field.
func RutEncryptedLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldRutEncrypted, v))
}

// RutEncryptedLTE applies the LTE predicate on the "rut_encrypted" field.
func RutEncryptedLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldRutEncrypted, v))
}

// RutEncryptedContains applies the Contains predicate on the "rut_encrypted" field.
func RutEncryptedContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldRutEncrypted, v))
}

// RutEncryptedHasPrefix applies the HasPrefix predicate on the "rut_encrypted" field.
func RutEncryptedHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldRutEncrypted, v))
}

// RutEncryptedHasSuffix applies the HasSuffix predicate on the "rut_encrypted" field.
func RutEncryptedHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldRutEncrypted, v))
}

// RutEncryptedIsNil applies the IsNil predicate on the "rut_encrypted" field.
func RutEncryptedIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldRutEncrypted))
}

// RutEncryptedNotNil applies the NotNil predicate on the "rut_encrypted" field.
func RutEncryptedNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldRutEncrypted))
}

// RutEncryptedEqualFold applies the EqualFold predicate on the "rut_encrypted" field.
func RutEncryptedEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldRutEncrypted, v))
}

// RutEncryptedContainsFold applies the ContainsFold predicate on the "rut_encrypted" field.
func RutEncryptedContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldRutEncrypted, v))
}

// NombreHashEQ applies the EQ predicate on the "nombre_hash" field.
func NombreHashEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldNombreHash, v))
}

// NombreHashNEQ applies the NEQ predicate on the "nombre_hash" field.
func NombreHashNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldNombreHash, v))
}

// NombreHashIn applies the In predicate on the "nombre_hash" field.
func NombreHashIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldNombreHash, vs...))
}

// NombreHashNotIn applies the NotIn predicate on the "nombre_hash" field.
func NombreHashNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldNombreHash, vs...))
}

// NombreHashGT applies the GT predicate on the "nombre_hash" field.
func NombreHashGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldNombreHash, v))
}

// NombreHashGTE applies the GTE predicate on the "nombre_hash" field.
func NombreHashGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldNombreHash, v))
}

// NombreHashLT applies the LT predicate on the "nombre_hash" field.
func NombreHashLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldNombreHash, v))
}

// NombreHashLTE applies the LTE predicate on the "nombre_hash" field.
func NombreHashLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldNombreHash, v))
}

// NombreHashContains applies the Contains predicate on the "nombre_hash" field.
func NombreHashContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldNombreHash, v))
}

// NombreHashHasPrefix applies the HasPrefix predicate on the "nombre_hash" field.
func NombreHashHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldNombreHash, v))
}

// NombreHashHasSuffix applies the HasSuffix predicate on the "nombre_hash" field.
func NombreHashHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldNombreHash, v))
}

// NombreHashIsNil applies the IsNil predicate on the "nombre_hash" field.
func NombreHashIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldNombreHash))
}

// NombreHashNotNil applies the NotNil predicate on the "nombre_hash" field.
func NombreHashNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldNombreHash))
}

// NombreHashEqualFold applies the EqualFold predicate on the "nombre_hash" field.
func NombreHashEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldNombreHash, v))
}

// NombreHashContainsFold applies the ContainsFold predicate on the "nombre_hash" field.
func NombreHashContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldNombreHash, v))
}

// NombreEncryptedEQ applies the EQ predicate on the "nombre_encrypted" field.
func NombreEncryptedEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldNombreEncrypted, v))
}

// NombreEncryptedNEQ applies the NEQ predicate on the "nombre_encrypted" field.
func NombreEncryptedNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldNombreEncrypted, v))
}

// NombreEncryptedIn applies the In predicate on the "nombre_encrypted" field.
func NombreEncryptedIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldNombreEncrypted, vs...))
}

// NombreEncryptedNotIn applies the NotIn predicate on the "nombre_encrypted" field.
func NombreEncryptedNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldNombreEncrypted, vs...))
}

// NombreEncryptedGT applies the GT predicate on the "nombre_encrypted" field.
func NombreEncryptedGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldNombreEncrypted, v))
}

// NombreEncryptedGTE applies the GTE predicate on the "nombre_encrypted" field.
func NombreEncryptedGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldNombreEncrypted, v))
}

// NombreEncryptedLT applies the LT predicate on the "nombre_encrypted" field.
func NombreEncryptedLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldNombreEncrypted, v))
}

// NombreEncryptedLTE applies the LTE predicate on the "nombre_encrypted" field.
func NombreEncryptedLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldNombreEncrypted, v))
}

// NombreEncryptedContains applies the Contains predicate on the "nombre_encrypted" field.
func NombreEncryptedContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldNombreEncrypted, v))
}

// NombreEncryptedHasPrefix applies the HasPrefix predicate on the "nombre_encrypted" field.
func NombreEncryptedHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldNombreEncrypted, v))
}

// NombreEncryptedHasSuffix applies the HasSuffix predicate on the "nombre_encrypted" field.
func NombreEncryptedHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldNombreEncrypted, v))
}

// NombreEncryptedIsNil applies the IsNil predicate on the "nombre_encrypted" field.
func NombreEncryptedIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldNombreEncrypted))
}

// NombreEncryptedNotNil applies the NotNil predicate on the "nombre_encrypted" field.
func NombreEncryptedNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldNombreEncrypted))
}

// NombreEncryptedEqualFold applies the EqualFold predicate on the "nombre_encrypted" field.
func NombreEncryptedEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldNombreEncrypted, v))
}

// NombreEncryptedContainsFold applies the ContainsFold predicate on the "nombre_encrypted" field.
func NombreEncryptedContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldNombreEncrypted, v))
}

// TelefonoHashEQ applies the EQ predicate on the "telefono_hash" field.
func TelefonoHashEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldTelefonoHash, v))
}

// TelefonoHashNEQ applies the NEQ predicate on the "telefono_hash" field.
func TelefonoHashNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldTelefonoHash, v))
}

// TelefonoHashIn applies the In predicate on the "telefono_hash" field.
func TelefonoHashIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldTelefonoHash, vs...))
}

// TelefonoHashNotIn applies the NotIn predicate on the "telefono_hash" field.
func TelefonoHashNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldTelefonoHash, vs...))
}

// TelefonoHashGT applies the GT predicate on the "telefono_hash" field.
func TelefonoHashGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldTelefonoHash, v))
}

// TelefonoHashGTE applies the GTE predicate on the "telefono_hash" field.
func TelefonoHashGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldTelefonoHash, v))
}

// TelefonoHashLT applies the LT predicate on the "telefono_hash" field.
func TelefonoHashLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldTelefonoHash, v))
}

// TelefonoHashLTE applies the LTE predicate on the "telefono_hash" field.
func TelefonoHashLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldTelefonoHash, v))
}

// TelefonoHashContains applies the Contains predicate on the "telefono_hash" field.
func TelefonoHashContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldTelefonoHash, v))
}

// TelefonoHashHasPrefix applies the HasPrefix predicate on the "telefono_hash" field.
func TelefonoHashHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldTelefonoHash, v))
}

// TelefonoHashHasSuffix applies the HasSuffix predicate on the "telefono_hash" field.
func TelefonoHashHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldTelefonoHash, v))
}

// TelefonoHashIsNil applies the IsNil predicate on the "telefono_hash" field.
func TelefonoHashIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldTelefonoHash))
}

// TelefonoHashNotNil applies the NotNil predicate on the "telefono_hash" field.
func TelefonoHashNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldTelefonoHash))
}

// TelefonoHashEqualFold applies the EqualFold predicate on the "telefono_hash" field.
func TelefonoHashEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldTelefonoHash, v))
}

// TelefonoHashContainsFold applies the ContainsFold predicate on the "telefono_hash" field.
func TelefonoHashContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldTelefonoHash, v))
}

// TelefonoEncryptedEQ applies the EQ predicate on the "telefono_encrypted" field.
func TelefonoEncryptedEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedNEQ applies the NEQ predicate on the "telefono_encrypted" field.
func TelefonoEncryptedNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedIn applies the In predicate on the "telefono_encrypted" field.
func TelefonoEncryptedIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldTelefonoEncrypted, vs...))
}

// TelefonoEncryptedNotIn applies the NotIn predicate on the "telefono_encrypted" field.
func TelefonoEncryptedNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldTelefonoEncrypted, vs...))
}

// TelefonoEncryptedGT applies the GT predicate on the "telefono_encrypted" field.
func TelefonoEncryptedGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedGTE applies the GTE predicate on the "telefono_encrypted" field.
func TelefonoEncryptedGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedLT applies the LT predicate on the "telefono_encrypted" field.
func TelefonoEncryptedLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedLTE applies the LTE predicate on the "telefono_encrypted" field.
func TelefonoEncryptedLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedContains applies the Contains predicate on the "telefono_encrypted" field.
func TelefonoEncryptedContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedHasPrefix applies the HasPrefix predicate on the "telefono_encrypted" field.
func TelefonoEncryptedHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedHasSuffix applies the HasSuffix predicate on the "telefono_encrypted" field.
func TelefonoEncryptedHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedIsNil applies the IsNil predicate on the "telefono_encrypted" field.
func TelefonoEncryptedIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldTelefonoEncrypted))
}

// TelefonoEncryptedNotNil applies the NotNil predicate on the "telefono_encrypted" field.
func TelefonoEncryptedNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldTelefonoEncrypted))
}

// TelefonoEncryptedEqualFold applies the EqualFold predicate on the "telefono_encrypted" field.
func TelefonoEncryptedEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldTelefonoEncrypted, v))
}

// TelefonoEncryptedContainsFold applies the ContainsFold predicate on the "telefono_encrypted" field.
func TelefonoEncryptedContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldTelefonoEncrypted, v))
}

// FechaNacimientoEQ applies the EQ predicate on the "fecha_nacimiento" field.
func FechaNacimientoEQ(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldFechaNacimiento, v))
}

// FechaNacimientoNEQ applies the NEQ predicate on the "fecha_nacimiento" field.
func FechaNacimientoNEQ(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldFechaNacimiento, v))
}

// FechaNacimientoIn applies the In predicate on the "fecha_nacimiento" field.
func FechaNacimientoIn(vs ...time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldFechaNacimiento, vs...))
}

// FechaNacimientoNotIn applies the NotIn predicate on the "fecha_nacimiento" field.
func FechaNacimientoNotIn(vs ...time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldFechaNacimiento, vs...))
}

// FechaNacimientoGT applies the GT predicate on the "fecha_nacimiento" field.
func FechaNacimientoGT(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldFechaNacimiento, v))
}

// FechaNacimientoGTE applies the GTE predicate on the "fecha_nacimiento" field.
func FechaNacimientoGTE(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldFechaNacimiento, v))
}

// FechaNacimientoLT applies the LT predicate on the "fecha_nacimiento" field.
func FechaNacimientoLT(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldFechaNacimiento, v))
}

// FechaNacimientoLTE applies the LTE predicate on the "fecha_nacimiento" field.
func FechaNacimientoLTE(v time.Time) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldFechaNacimiento, v))
}

// NacionalidadEQ applies the EQ predicate on the "nacionalidad" field.
func NacionalidadEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldNacionalidad, v))
}

// NacionalidadNEQ applies the NEQ predicate on the "nacionalidad" field.
func NacionalidadNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldNacionalidad, v))
}

// NacionalidadIn applies the In predicate on the "nacionalidad" field.
func NacionalidadIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldNacionalidad, vs...))
}

// NacionalidadNotIn applies the NotIn predicate on the "nacionalidad" field.
func NacionalidadNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldNacionalidad, vs...))
}

// NacionalidadGT applies the GT predicate on the "nacionalidad" field.
func NacionalidadGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldNacionalidad, v))
}

// NacionalidadGTE applies the GTE predicate on the "nacionalidad" field.
func NacionalidadGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldNacionalidad, v))
}

// NacionalidadLT applies the LT predicate on the "nacionalidad" field.
func NacionalidadLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldNacionalidad, v))
}

// NacionalidadLTE applies the LTE predicate on the "nacionalidad" field.
func NacionalidadLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldNacionalidad, v))
}

// NacionalidadContains applies the Contains predicate on the "nacionalidad" field.
func NacionalidadContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldNacionalidad, v))
}

// NacionalidadHasPrefix applies the HasPrefix predicate on the "nacionalidad" field.
func NacionalidadHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldNacionalidad, v))
}

// NacionalidadHasSuffix applies the HasSuffix predicate on the "nacionalidad" field.
func NacionalidadHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldNacionalidad, v))
}

// NacionalidadEqualFold applies the EqualFold predicate on the "nacionalidad" field.
func NacionalidadEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldNacionalidad, v))
}

// NacionalidadContainsFold applies the ContainsFold predicate on the "nacionalidad" field.
func NacionalidadContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldNacionalidad, v))
}

// PertenecePuebloOriginarioEQ applies the EQ predicate on the "pertenece_pueblo_originario" field.
func PertenecePuebloOriginarioEQ(v bool) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldPertenecePuebloOriginario, v))
}

// PertenecePuebloOriginarioNEQ applies the NEQ predicate on the "pertenece_pueblo_originario" field.
func PertenecePuebloOriginarioNEQ(v bool) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldPertenecePuebloOriginario, v))
}

// PrevisionEQ applies the EQ predicate on the "prevision" field.
func PrevisionEQ(v Prevision) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldPrevision, v))
}

// PrevisionNEQ applies the NEQ predicate on the "prevision" field.
func PrevisionNEQ(v Prevision) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldPrevision, v))
}

// PrevisionIn applies the In predicate on the "prevision" field.
func PrevisionIn(vs ...Prevision) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldPrevision, vs...))
}

// PrevisionNotIn applies the NotIn predicate on the "prevision" field.
func PrevisionNotIn(vs ...Prevision) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldPrevision, vs...))
}

// AntecedentesMedicosEQ applies the EQ predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEQ(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosNEQ applies the NEQ predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosNEQ(v string) predicate.Madre {
	return predicate.Madre(sql.FieldNEQ(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosIn applies the In predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldIn(FieldAntecedentesMedicos, vs...))
}

// AntecedentesMedicosNotIn applies the NotIn predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosNotIn(vs ...string) predicate.Madre {
	return predicate.Madre(sql.FieldNotIn(FieldAntecedentesMedicos, vs...))
}

// AntecedentesMedicosGT applies the GT predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosGT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGT(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosGTE applies the GTE predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosGTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldGTE(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosLT applies the LT predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosLT(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLT(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosLTE applies the LTE predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosLTE(v string) predicate.Madre {
	return predicate.Madre(sql.FieldLTE(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosContains applies the Contains predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosContains(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContains(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosHasPrefix applies the HasPrefix predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosHasPrefix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasPrefix(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosHasSuffix applies the HasSuffix predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosHasSuffix(v string) predicate.Madre {
	return predicate.Madre(sql.FieldHasSuffix(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosIsNil applies the IsNil predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosIsNil() predicate.Madre {
	return predicate.Madre(sql.FieldIsNull(FieldAntecedentesMedicos))
}

// AntecedentesMedicosNotNil applies the NotNil predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosNotNil() predicate.Madre {
	return predicate.Madre(sql.FieldNotNull(FieldAntecedentesMedicos))
}

// AntecedentesMedicosEqualFold applies the EqualFold predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosEqualFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldEqualFold(FieldAntecedentesMedicos, v))
}

// AntecedentesMedicosContainsFold applies the ContainsFold predicate on the "antecedentes_medicos" field.
func AntecedentesMedicosContainsFold(v string) predicate.Madre {
	return predicate.Madre(sql.FieldContainsFold(FieldAntecedentesMedicos, v))
}

// HasPartos applies the HasEdge predicate on the "partos" edge.
func HasPartos() predicate.Madre {
	return predicate.Madre(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PartosTable, PartosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartosWith applies the HasEdge predicate on the "partos" edge with a given conditions (other predicates).
func HasPartosWith(preds ...predicate.Parto) predicate.Madre {
	return predicate.Madre(func(s *sql.Selector) {
		step := newPartosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDefuncion applies the HasEdge predicate on the "defuncion" edge.
func HasDefuncion() predicate.Madre {
	return predicate.Madre(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DefuncionTable, DefuncionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDefuncionWith applies the HasEdge predicate on the "defuncion" edge with a given conditions (other predicates).
func HasDefuncionWith(preds ...predicate.Defuncion) predicate.Madre {
	return predicate.Madre(func(s *sql.Selector) {
		step := newDefuncionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Madre) predicate.Madre {
	return predicate.Madre(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Madre) predicate.Madre {
	return predicate.Madre(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Madre) predicate.Madre {
	return predicate.Madre(sql.NotPredicates(p))
}
