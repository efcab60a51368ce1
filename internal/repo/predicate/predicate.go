// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Defuncion is the predicate function for defuncion builders.
type Defuncion func(*sql.Selector)

// DiagnosticoCIE10 is the predicate function for diagnosticocie10 builders.
type DiagnosticoCIE10 func(*sql.Selector)

// DocumentoReferencia is the predicate function for documentoreferencia builders.
type DocumentoReferencia func(*sql.Selector)

// LogAuditoria is the predicate function for logauditoria builders.
type LogAuditoria func(*sql.Selector)

// Madre is the predicate function for madre builders.
type Madre func(*sql.Selector)

// Parto is the predicate function for parto builders.
type Parto func(*sql.Selector)

// PartoDiagnostico is the predicate function for partodiagnostico builders.
type PartoDiagnostico func(*sql.Selector)

// RecienNacido is the predicate function for reciennacido builders.
type RecienNacido func(*sql.Selector)

// Rol is the predicate function for rol builders.
type Rol func(*sql.Selector)

// Usuario is the predicate function for usuario builders.
type Usuario func(*sql.Selector)
