// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
)

// Rol is the model entity for the Rol schema.
type Rol struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// e.g. Matrona, Médico, Administrativo, Administrador TI
	Nombre string `json:"nombre,omitempty"`
	// Descripcion holds the value of the "descripcion" field.
	Descripcion string `json:"descripcion,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RolQuery when eager-loading is set.
	Edges        RolEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RolEdges holds the relations/edges for other nodes in the graph.
type RolEdges struct {
	// Usuarios holds the value of the usuarios edge.
	Usuarios []*Usuario `json:"usuarios,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UsuariosOrErr returns the Usuarios value or an error if the edge
// was not loaded in eager-loading.
func (e RolEdges) UsuariosOrErr() ([]*Usuario, error) {
	if e.loadedTypes[0] {
		return e.Usuarios, nil
	}
	return nil, &NotLoadedError{edge: "usuarios"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Rol) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rol.FieldNombre, rol.FieldDescripcion:
			values[i] = new(sql.NullString)
		case rol.FieldCreatedAt, rol.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case rol.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Rol fields.
func (_m *Rol) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rol.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case rol.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case rol.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case rol.FieldNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre", values[i])
			} else if value.Valid {
				_m.Nombre = value.String
			}
		case rol.FieldDescripcion:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Rol.
// This includes values selected through modifiers, order, etc.
func (_m *Rol) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsuarios queries the "usuarios" edge of the Rol entity.
func (_m *Rol) QueryUsuarios() *UsuarioQuery {
	return NewRolClient(_m.config).QueryUsuarios(_m)
}

// Update returns a builder for updating this Rol.
// Note that you need to call Rol.Unwrap() before calling this method if this Rol
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Rol) Update() *RolUpdateOne {
	return NewRolClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Rol entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Rol) Unwrap() *Rol {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Rol is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Rol) String() string {
	var builder strings.Builder
	builder.WriteString("Rol(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nombre=")
	builder.WriteString(_m.Nombre)
	builder.WriteString(", ")
	builder.WriteString("descripcion=")
	builder.WriteString(_m.Descripcion)
	builder.WriteByte(')')
	return builder.String()
}

// Rols is a parsable slice of Rol.
type Rols []*Rol
