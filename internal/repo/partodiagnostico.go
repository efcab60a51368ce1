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
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
)

// PartoDiagnostico is the model entity for the PartoDiagnostico schema.
type PartoDiagnostico struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PartoID holds the value of the "parto_id" field.
	PartoID uuid.UUID `json:"parto_id,omitempty"`
	// DiagnosticoID holds the value of the "diagnostico_id" field.
	DiagnosticoID uuid.UUID `json:"diagnostico_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PartoDiagnosticoQuery when eager-loading is set.
	Edges        PartoDiagnosticoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PartoDiagnosticoEdges holds the relations/edges for other nodes in the graph.
type PartoDiagnosticoEdges struct {
	// Parto holds the value of the parto edge.
	Parto *Parto `json:"parto,omitempty"`
	// Diagnostico holds the value of the diagnostico edge.
	Diagnostico *DiagnosticoCIE10 `json:"diagnostico,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PartoOrErr returns the Parto value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PartoDiagnosticoEdges) PartoOrErr() (*Parto, error) {
	if e.Parto != nil {
		return e.Parto, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: parto.Label}
	}
	return nil, &NotLoadedError{edge: "parto"}
}

// DiagnosticoOrErr returns the Diagnostico value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PartoDiagnosticoEdges) DiagnosticoOrErr() (*DiagnosticoCIE10, error) {
	if e.Diagnostico != nil {
		return e.Diagnostico, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: diagnosticocie10.Label}
	}
	return nil, &NotLoadedError{edge: "diagnostico"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PartoDiagnostico) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case partodiagnostico.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case partodiagnostico.FieldID, partodiagnostico.FieldPartoID, partodiagnostico.FieldDiagnosticoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PartoDiagnostico fields.
func (_m *PartoDiagnostico) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case partodiagnostico.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case partodiagnostico.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case partodiagnostico.FieldPartoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field parto_id", values[i])
			} else if value != nil {
				_m.PartoID = *value
			}
		case partodiagnostico.FieldDiagnosticoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostico_id", values[i])
			} else if value != nil {
				_m.DiagnosticoID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PartoDiagnostico.
// This includes values selected through modifiers, order, etc.
func (_m *PartoDiagnostico) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParto queries the "parto" edge of the PartoDiagnostico entity.
func (_m *PartoDiagnostico) QueryParto() *PartoQuery {
	return NewPartoDiagnosticoClient(_m.config).QueryParto(_m)
}

// QueryDiagnostico queries the "diagnostico" edge of the PartoDiagnostico entity.
func (_m *PartoDiagnostico) QueryDiagnostico() *DiagnosticoCIE10Query {
	return NewPartoDiagnosticoClient(_m.config).QueryDiagnostico(_m)
}

// Update returns a builder for updating this PartoDiagnostico.
// Note that you need to call PartoDiagnostico.Unwrap() before calling this method if this PartoDiagnostico
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PartoDiagnostico) Update() *PartoDiagnosticoUpdateOne {
	return NewPartoDiagnosticoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PartoDiagnostico entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PartoDiagnostico) Unwrap() *PartoDiagnostico {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PartoDiagnostico is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PartoDiagnostico) String() string {
	var builder strings.Builder
	builder.WriteString("PartoDiagnostico(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("parto_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartoID))
	builder.WriteString(", ")
	builder.WriteString("diagnostico_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiagnosticoID))
	builder.WriteByte(')')
	return builder.String()
}

// PartoDiagnosticos is a parsable slice of PartoDiagnostico.
type PartoDiagnosticos []*PartoDiagnostico
