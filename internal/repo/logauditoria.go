// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// LogAuditoria is the model entity for the LogAuditoria schema.
type LogAuditoria struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UsuarioID holds the value of the "usuario_id" field.
	UsuarioID *uuid.UUID `json:"usuario_id,omitempty"`
	// e.g. CREAR_PARTO, LOGIN_FALLIDO
	Accion string `json:"accion,omitempty"`
	// TablaAfectada holds the value of the "tabla_afectada" field.
	TablaAfectada string `json:"tabla_afectada,omitempty"`
	// RegistroID holds the value of the "registro_id" field.
	RegistroID *uuid.UUID `json:"registro_id,omitempty"`
	// Detalles holds the value of the "detalles" field.
	Detalles map[string]interface{} `json:"detalles,omitempty"`
	// IPv4 or IPv6 of the caller
	IPUsuario string `json:"ip_usuario,omitempty"`
	// FechaAccion holds the value of the "fecha_accion" field.
	FechaAccion time.Time `json:"fecha_accion,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LogAuditoriaQuery when eager-loading is set.
	Edges        LogAuditoriaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LogAuditoriaEdges holds the relations/edges for other nodes in the graph.
type LogAuditoriaEdges struct {
	// Usuario holds the value of the usuario edge.
	Usuario *Usuario `json:"usuario,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UsuarioOrErr returns the Usuario value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogAuditoriaEdges) UsuarioOrErr() (*Usuario, error) {
	if e.Usuario != nil {
		return e.Usuario, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: usuario.Label}
	}
	return nil, &NotLoadedError{edge: "usuario"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LogAuditoria) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case logauditoria.FieldUsuarioID, logauditoria.FieldRegistroID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case logauditoria.FieldDetalles:
			values[i] = new([]byte)
		case logauditoria.FieldAccion, logauditoria.FieldTablaAfectada, logauditoria.FieldIPUsuario:
			values[i] = new(sql.NullString)
		case logauditoria.FieldFechaAccion:
			values[i] = new(sql.NullTime)
		case logauditoria.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LogAuditoria fields.
func (_m *LogAuditoria) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case logauditoria.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case logauditoria.FieldUsuarioID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field usuario_id", values[i])
			} else if value.Valid {
				_m.UsuarioID = new(uuid.UUID)
				*_m.UsuarioID = *value.S.(*uuid.UUID)
			}
		case logauditoria.FieldAccion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field accion", values[i])
			} else if value.Valid {
				_m.Accion = value.String
			}
		case logauditoria.FieldTablaAfectada:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tabla_afectada", values[i])
			} else if value.Valid {
				_m.TablaAfectada = value.String
			}
		case logauditoria.FieldRegistroID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field registro_id", values[i])
			} else if value.Valid {
				_m.RegistroID = new(uuid.UUID)
				*_m.RegistroID = *value.S.(*uuid.UUID)
			}
		case logauditoria.FieldDetalles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detalles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Detalles); err != nil {
					return fmt.Errorf("unmarshal field detalles: %w", err)
				}
			}
		case logauditoria.FieldIPUsuario:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_usuario", values[i])
			} else if value.Valid {
				_m.IPUsuario = value.String
			}
		case logauditoria.FieldFechaAccion:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_accion", values[i])
			} else if value.Valid {
				_m.FechaAccion = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LogAuditoria.
// This includes values selected through modifiers, order, etc.
func (_m *LogAuditoria) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsuario queries the "usuario" edge of the LogAuditoria entity.
func (_m *LogAuditoria) QueryUsuario() *UsuarioQuery {
	return NewLogAuditoriaClient(_m.config).QueryUsuario(_m)
}

// Update returns a builder for updating this LogAuditoria.
// Note that you need to call LogAuditoria.Unwrap() before calling this method if this LogAuditoria
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LogAuditoria) Update() *LogAuditoriaUpdateOne {
	return NewLogAuditoriaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LogAuditoria entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LogAuditoria) Unwrap() *LogAuditoria {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LogAuditoria is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LogAuditoria) String() string {
	var builder strings.Builder
	builder.WriteString("LogAuditoria(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.UsuarioID; v != nil {
		builder.WriteString("usuario_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("accion=")
	builder.WriteString(_m.Accion)
	builder.WriteString(", ")
	builder.WriteString("tabla_afectada=")
	builder.WriteString(_m.TablaAfectada)
	builder.WriteString(", ")
	if v := _m.RegistroID; v != nil {
		builder.WriteString("registro_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("detalles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Detalles))
	builder.WriteString(", ")
	builder.WriteString("ip_usuario=")
	builder.WriteString(_m.IPUsuario)
	builder.WriteString(", ")
	builder.WriteString("fecha_accion=")
	builder.WriteString(_m.FechaAccion.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LogAuditoriaSlice is a parsable slice of LogAuditoria.
type LogAuditoriaSlice []*LogAuditoria
