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
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// Usuario is the model entity for the Usuario schema.
type Usuario struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Chilean national ID, formatted 12345678-9
	Rut string `json:"rut,omitempty"`
	// NombreCompleto holds the value of the "nombre_completo" field.
	NombreCompleto string `json:"nombre_completo,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash string `json:"-"`
	// RolID holds the value of the "rol_id" field.
	RolID uuid.UUID `json:"rol_id,omitempty"`
	// Activo holds the value of the "activo" field.
	Activo bool `json:"activo,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UsuarioQuery when eager-loading is set.
	Edges        UsuarioEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UsuarioEdges holds the relations/edges for other nodes in the graph.
type UsuarioEdges struct {
	// Rol holds the value of the rol edge.
	Rol *Rol `json:"rol,omitempty"`
	// RegistrosAuditoria holds the value of the registros_auditoria edge.
	RegistrosAuditoria []*LogAuditoria `json:"registros_auditoria,omitempty"`
	// PartosRegistrados holds the value of the partos_registrados edge.
	PartosRegistrados []*Parto `json:"partos_registrados,omitempty"`
	// RecienNacidosRegistrados holds the value of the recien_nacidos_registrados edge.
	RecienNacidosRegistrados []*RecienNacido `json:"recien_nacidos_registrados,omitempty"`
	// DefuncionesRegistradas holds the value of the defunciones_registradas edge.
	DefuncionesRegistradas []*Defuncion `json:"defunciones_registradas,omitempty"`
	// DocumentosGenerados holds the value of the documentos_generados edge.
	DocumentosGenerados []*DocumentoReferencia `json:"documentos_generados,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// RolOrErr returns the Rol value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UsuarioEdges) RolOrErr() (*Rol, error) {
	if e.Rol != nil {
		return e.Rol, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rol.Label}
	}
	return nil, &NotLoadedError{edge: "rol"}
}

// RegistrosAuditoriaOrErr returns the RegistrosAuditoria value or an error if the edge
// was not loaded in eager-loading.
func (e UsuarioEdges) RegistrosAuditoriaOrErr() ([]*LogAuditoria, error) {
	if e.loadedTypes[1] {
		return e.RegistrosAuditoria, nil
	}
	return nil, &NotLoadedError{edge: "registros_auditoria"}
}

// PartosRegistradosOrErr returns the PartosRegistrados value or an error if the edge
// was not loaded in eager-loading.
func (e UsuarioEdges) PartosRegistradosOrErr() ([]*Parto, error) {
	if e.loadedTypes[2] {
		return e.PartosRegistrados, nil
	}
	return nil, &NotLoadedError{edge: "partos_registrados"}
}

// RecienNacidosRegistradosOrErr returns the RecienNacidosRegistrados value or an error if the edge
// was not loaded in eager-loading.
func (e UsuarioEdges) RecienNacidosRegistradosOrErr() ([]*RecienNacido, error) {
	if e.loadedTypes[3] {
		return e.RecienNacidosRegistrados, nil
	}
	return nil, &NotLoadedError{edge: "recien_nacidos_registrados"}
}

// DefuncionesRegistradasOrErr returns the DefuncionesRegistradas value or an error if the edge
// was not loaded in eager-loading.
func (e UsuarioEdges) DefuncionesRegistradasOrErr() ([]*Defuncion, error) {
	if e.loadedTypes[4] {
		return e.DefuncionesRegistradas, nil
	}
	return nil, &NotLoadedError{edge: "defunciones_registradas"}
}

// DocumentosGeneradosOrErr returns the DocumentosGenerados value or an error if the edge
// was not loaded in eager-loading.
func (e UsuarioEdges) DocumentosGeneradosOrErr() ([]*DocumentoReferencia, error) {
	if e.loadedTypes[5] {
		return e.DocumentosGenerados, nil
	}
	return nil, &NotLoadedError{edge: "documentos_generados"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Usuario) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usuario.FieldActivo:
			values[i] = new(sql.NullBool)
		case usuario.FieldRut, usuario.FieldNombreCompleto, usuario.FieldEmail, usuario.FieldUsername, usuario.FieldPasswordHash:
			values[i] = new(sql.NullString)
		case usuario.FieldCreatedAt, usuario.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case usuario.FieldID, usuario.FieldRolID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Usuario fields.
func (_m *Usuario) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usuario.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case usuario.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usuario.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case usuario.FieldRut:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rut", values[i])
			} else if value.Valid {
				_m.Rut = value.String
			}
		case usuario.FieldNombreCompleto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_completo", values[i])
			} else if value.Valid {
				_m.NombreCompleto = value.String
			}
		case usuario.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case usuario.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case usuario.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case usuario.FieldRolID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field rol_id", values[i])
			} else if value != nil {
				_m.RolID = *value
			}
		case usuario.FieldActivo:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field activo", values[i])
			} else if value.Valid {
				_m.Activo = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Usuario.
// This includes values selected through modifiers, order, etc.
func (_m *Usuario) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRol queries the "rol" edge of the Usuario entity.
func (_m *Usuario) QueryRol() *RolQuery {
	return NewUsuarioClient(_m.config).QueryRol(_m)
}

// QueryRegistrosAuditoria queries the "registros_auditoria" edge of the Usuario entity.
func (_m *Usuario) QueryRegistrosAuditoria() *LogAuditoriaQuery {
	return NewUsuarioClient(_m.config).QueryRegistrosAuditoria(_m)
}

// QueryPartosRegistrados queries the "partos_registrados" edge of the Usuario entity.
func (_m *Usuario) QueryPartosRegistrados() *PartoQuery {
	return NewUsuarioClient(_m.config).QueryPartosRegistrados(_m)
}

// QueryRecienNacidosRegistrados queries the "recien_nacidos_registrados" edge of the Usuario entity.
func (_m *Usuario) QueryRecienNacidosRegistrados() *RecienNacidoQuery {
	return NewUsuarioClient(_m.config).QueryRecienNacidosRegistrados(_m)
}

// QueryDefuncionesRegistradas queries the "defunciones_registradas" edge of the Usuario entity.
func (_m *Usuario) QueryDefuncionesRegistradas() *DefuncionQuery {
	return NewUsuarioClient(_m.config).QueryDefuncionesRegistradas(_m)
}

// QueryDocumentosGenerados queries the "documentos_generados" edge of the Usuario entity.
func (_m *Usuario) QueryDocumentosGenerados() *DocumentoReferenciaQuery {
	return NewUsuarioClient(_m.config).QueryDocumentosGenerados(_m)
}

// Update returns a builder for updating this Usuario.
// Note that you need to call Usuario.Unwrap() before calling this method if this Usuario
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Usuario) Update() *UsuarioUpdateOne {
	return NewUsuarioClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Usuario entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Usuario) Unwrap() *Usuario {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Usuario is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Usuario) String() string {
	var builder strings.Builder
	builder.WriteString("Usuario(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("rut=")
	builder.WriteString(_m.Rut)
	builder.WriteString(", ")
	builder.WriteString("nombre_completo=")
	builder.WriteString(_m.NombreCompleto)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("rol_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RolID))
	builder.WriteString(", ")
	builder.WriteString("activo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activo))
	builder.WriteByte(')')
	return builder.String()
}

// Usuarios is a parsable slice of Usuario.
type Usuarios []*Usuario
