// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
)

// DiagnosticoCIE10 is the model entity for the DiagnosticoCIE10 schema.
type DiagnosticoCIE10 struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ICD-10 code, e.g. O82
	Codigo string `json:"codigo,omitempty"`
	// Descripcion holds the value of the "descripcion" field.
	Descripcion string `json:"descripcion,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiagnosticoCIE10Query when eager-loading is set.
	Edges        DiagnosticoCIE10Edges `json:"edges"`
	selectValues sql.SelectValues
}

// DiagnosticoCIE10Edges holds the relations/edges for other nodes in the graph.
type DiagnosticoCIE10Edges struct {
	// PartoDiagnosticos holds the value of the parto_diagnosticos edge.
	PartoDiagnosticos []*PartoDiagnostico `json:"parto_diagnosticos,omitempty"`
	// Defunciones holds the value of the defunciones edge.
	Defunciones []*Defuncion `json:"defunciones,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PartoDiagnosticosOrErr returns the PartoDiagnosticos value or an error if the edge
// was not loaded in eager-loading.
func (e DiagnosticoCIE10Edges) PartoDiagnosticosOrErr() ([]*PartoDiagnostico, error) {
	if e.loadedTypes[0] {
		return e.PartoDiagnosticos, nil
	}
	return nil, &NotLoadedError{edge: "parto_diagnosticos"}
}

// DefuncionesOrErr returns the Defunciones value or an error if the edge
// was not loaded in eager-loading.
func (e DiagnosticoCIE10Edges) DefuncionesOrErr() ([]*Defuncion, error) {
	if e.loadedTypes[1] {
		return e.Defunciones, nil
	}
	return nil, &NotLoadedError{edge: "defunciones"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosticoCIE10) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosticocie10.FieldCodigo, diagnosticocie10.FieldDescripcion:
			values[i] = new(sql.NullString)
		case diagnosticocie10.FieldCreatedAt, diagnosticocie10.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case diagnosticocie10.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosticoCIE10 fields.
func (_m *DiagnosticoCIE10) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosticocie10.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case diagnosticocie10.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case diagnosticocie10.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case diagnosticocie10.FieldCodigo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field codigo", values[i])
			} else if value.Valid {
				_m.Codigo = value.String
			}
		case diagnosticocie10.FieldDescripcion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descripcion", values[i])
			} else if value.Valid {
				_m.Descripcion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosticoCIE10.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosticoCIE10) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPartoDiagnosticos queries the "parto_diagnosticos" edge of the DiagnosticoCIE10 entity.
func (_m *DiagnosticoCIE10) QueryPartoDiagnosticos() *PartoDiagnosticoQuery {
	return NewDiagnosticoCIE10Client(_m.config).QueryPartoDiagnosticos(_m)
}

// QueryDefunciones queries the "defunciones" edge of the DiagnosticoCIE10 entity.
func (_m *DiagnosticoCIE10) QueryDefunciones() *DefuncionQuery {
	return NewDiagnosticoCIE10Client(_m.config).QueryDefunciones(_m)
}

// Update returns a builder for updating this DiagnosticoCIE10.
// Note that you need to call DiagnosticoCIE10.Unwrap() before calling this method if this DiagnosticoCIE10
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosticoCIE10) Update() *DiagnosticoCIE10UpdateOne {
	return NewDiagnosticoCIE10Client(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosticoCIE10 entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosticoCIE10) Unwrap() *DiagnosticoCIE10 {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DiagnosticoCIE10 is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosticoCIE10) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosticoCIE10(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("codigo=")
	builder.WriteString(_m.Codigo)
	builder.WriteString(", ")
	builder.WriteString("descripcion=")
	builder.WriteString(_m.Descripcion)
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosticoCIE10s is a parsable slice of DiagnosticoCIE10.
type DiagnosticoCIE10s []*DiagnosticoCIE10
