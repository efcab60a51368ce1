// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// Defuncion is the model entity for the Defuncion schema.
type Defuncion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// MadreID holds the value of the "madre_id" field.
	MadreID *uuid.UUID `json:"madre_id,omitempty"`
	// RecienNacidoID holds the value of the "recien_nacido_id" field.
	RecienNacidoID *uuid.UUID `json:"recien_nacido_id,omitempty"`
	// FechaDefuncion holds the value of the "fecha_defuncion" field.
	FechaDefuncion time.Time `json:"fecha_defuncion,omitempty"`
	// CausaDefuncionID holds the value of the "causa_defuncion_id" field.
	CausaDefuncionID uuid.UUID `json:"causa_defuncion_id,omitempty"`
	// UsuarioRegistroID holds the value of the "usuario_registro_id" field.
	UsuarioRegistroID *uuid.UUID `json:"usuario_registro_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DefuncionQuery when eager-loading is set.
	Edges        DefuncionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DefuncionEdges holds the relations/edges for other nodes in the graph.
type DefuncionEdges struct {
	// Madre holds the value of the madre edge.
	Madre *Madre `json:"madre,omitempty"`
	// RecienNacido holds the value of the recien_nacido edge.
	RecienNacido *RecienNacido `json:"recien_nacido,omitempty"`
	// CausaDefuncion holds the value of the causa_defuncion edge.
	CausaDefuncion *DiagnosticoCIE10 `json:"causa_defuncion,omitempty"`
	// UsuarioRegistro holds the value of the usuario_registro edge.
	UsuarioRegistro *Usuario `json:"usuario_registro,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MadreOrErr returns the Madre value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DefuncionEdges) MadreOrErr() (*Madre, error) {
	if e.Madre != nil {
		return e.Madre, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: madre.Label}
	}
	return nil, &NotLoadedError{edge: "madre"}
}

// RecienNacidoOrErr returns the RecienNacido value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DefuncionEdges) RecienNacidoOrErr() (*RecienNacido, error) {
	if e.RecienNacido != nil {
		return e.RecienNacido, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: reciennacido.Label}
	}
	return nil, &NotLoadedError{edge: "recien_nacido"}
}

// CausaDefuncionOrErr returns the CausaDefuncion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DefuncionEdges) CausaDefuncionOrErr() (*DiagnosticoCIE10, error) {
	if e.CausaDefuncion != nil {
		return e.CausaDefuncion, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: diagnosticocie10.Label}
	}
	return nil, &NotLoadedError{edge: "causa_defuncion"}
}

// UsuarioRegistroOrErr returns the UsuarioRegistro value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DefuncionEdges) UsuarioRegistroOrErr() (*Usuario, error) {
	if e.UsuarioRegistro != nil {
		return e.UsuarioRegistro, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: usuario.Label}
	}
	return nil, &NotLoadedError{edge: "usuario_registro"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Defuncion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case defuncion.FieldMadreID, defuncion.FieldRecienNacidoID, defuncion.FieldUsuarioRegistroID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case defuncion.FieldCreatedAt, defuncion.FieldUpdatedAt, defuncion.FieldFechaDefuncion:
			values[i] = new(sql.NullTime)
		case defuncion.FieldID, defuncion.FieldCausaDefuncionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Defuncion fields.
func (_m *Defuncion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case defuncion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case defuncion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case defuncion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case defuncion.FieldMadreID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field madre_id", values[i])
			} else if value.Valid {
				_m.MadreID = new(uuid.UUID)
				*_m.MadreID = *value.S.(*uuid.UUID)
			}
		case defuncion.FieldRecienNacidoID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field recien_nacido_id", values[i])
			} else if value.Valid {
				_m.RecienNacidoID = new(uuid.UUID)
				*_m.RecienNacidoID = *value.S.(*uuid.UUID)
			}
		case defuncion.FieldFechaDefuncion:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_defuncion", values[i])
			} else if value.Valid {
				_m.FechaDefuncion = value.Time
			}
		case defuncion.FieldCausaDefuncionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field causa_defuncion_id", values[i])
			} else if value != nil {
				_m.CausaDefuncionID = *value
			}
		case defuncion.FieldUsuarioRegistroID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field usuario_registro_id", values[i])
			} else if value.Valid {
				_m.UsuarioRegistroID = new(uuid.UUID)
				*_m.UsuarioRegistroID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Defuncion.
// This includes values selected through modifiers, order, etc.
func (_m *Defuncion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMadre queries the "madre" edge of the Defuncion entity.
func (_m *Defuncion) QueryMadre() *MadreQuery {
	return NewDefuncionClient(_m.config).QueryMadre(_m)
}

// QueryRecienNacido queries the "recien_nacido" edge of the Defuncion entity.
func (_m *Defuncion) QueryRecienNacido() *RecienNacidoQuery {
	return NewDefuncionClient(_m.config).QueryRecienNacido(_m)
}

// QueryCausaDefuncion queries the "causa_defuncion" edge of the Defuncion entity.
func (_m *Defuncion) QueryCausaDefuncion() *DiagnosticoCIE10Query {
	return NewDefuncionClient(_m.config).QueryCausaDefuncion(_m)
}

// QueryUsuarioRegistro queries the "usuario_registro" edge of the Defuncion entity.
func (_m *Defuncion) QueryUsuarioRegistro() *UsuarioQuery {
	return NewDefuncionClient(_m.config).QueryUsuarioRegistro(_m)
}

// Update returns a builder for updating this Defuncion.
// Note that you need to call Defuncion.Unwrap() before calling this method if this Defuncion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Defuncion) Update() *DefuncionUpdateOne {
	return NewDefuncionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Defuncion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Defuncion) Unwrap() *Defuncion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Defuncion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Defuncion) String() string {
	var builder strings.Builder
	builder.WriteString("Defuncion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.MadreID; v != nil {
		builder.WriteString("madre_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RecienNacidoID; v != nil {
		builder.WriteString("recien_nacido_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("fecha_defuncion=")
	builder.WriteString(_m.FechaDefuncion.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("causa_defuncion_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CausaDefuncionID))
	builder.WriteString(", ")
	if v := _m.UsuarioRegistroID; v != nil {
		builder.WriteString("usuario_registro_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Defuncions is a parsable slice of Defuncion.
type Defuncions []*Defuncion
