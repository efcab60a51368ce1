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
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
)

// Madre is the model entity for the Madre schema.
type Madre struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Hospital-assigned clinical file number
	FichaClinicaID string `json:"ficha_clinica_id,omitempty"`
	// RutHash holds the value of the "rut_hash" field.
	RutHash string `json:"rut_hash,omitempty"`
	// RutEncrypted holds the value of the "rut_encrypted" field.
	RutEncrypted string `json:"-"`
	// NombreHash holds the value of the "nombre_hash" field.
	NombreHash string `json:"nombre_hash,omitempty"`
	// NombreEncrypted holds the value of the "nombre_encrypted" field.
	NombreEncrypted string `json:"-"`
	// TelefonoHash holds the value of the "telefono_hash" field.
	TelefonoHash string `json:"telefono_hash,omitempty"`
	// TelefonoEncrypted holds the value of the "telefono_encrypted" field.
	TelefonoEncrypted string `json:"-"`
	// FechaNacimiento holds the value of the "fecha_nacimiento" field.
	FechaNacimiento time.Time `json:"fecha_nacimiento,omitempty"`
	// Nacionalidad holds the value of the "nacionalidad" field.
	Nacionalidad string `json:"nacionalidad,omitempty"`
	// PertenecePuebloOriginario holds the value of the "pertenece_pueblo_originario" field.
	PertenecePuebloOriginario bool `json:"pertenece_pueblo_originario,omitempty"`
	// Prevision holds the value of the "prevision" field.
	Prevision madre.Prevision `json:"prevision,omitempty"`
	// AntecedentesMedicos holds the value of the "antecedentes_medicos" field.
	AntecedentesMedicos string `json:"antecedentes_medicos,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MadreQuery when eager-loading is set.
	Edges        MadreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MadreEdges holds the relations/edges for other nodes in the graph.
type MadreEdges struct {
	// Partos holds the value of the partos edge.
	Partos []*Parto `json:"partos,omitempty"`
	// Defuncion holds the value of the defuncion edge.
	Defuncion *Defuncion `json:"defuncion,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PartosOrErr returns the Partos value or an error if the edge
// was not loaded in eager-loading.
func (e MadreEdges) PartosOrErr() ([]*Parto, error) {
	if e.loadedTypes[0] {
		return e.Partos, nil
	}
	return nil, &NotLoadedError{edge: "partos"}
}

// DefuncionOrErr returns the Defuncion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MadreEdges) DefuncionOrErr() (*Defuncion, error) {
	if e.Defuncion != nil {
		return e.Defuncion, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: defuncion.Label}
	}
	return nil, &NotLoadedError{edge: "defuncion"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Madre) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case madre.FieldPertenecePuebloOriginario:
			values[i] = new(sql.NullBool)
		case madre.FieldFichaClinicaID, madre.FieldRutHash, madre.FieldRutEncrypted, madre.FieldNombreHash, madre.FieldNombreEncrypted, madre.FieldTelefonoHash, madre.FieldTelefonoEncrypted, madre.FieldNacionalidad, madre.FieldPrevision, madre.FieldAntecedentesMedicos:
			values[i] = new(sql.NullString)
		case madre.FieldCreatedAt, madre.FieldUpdatedAt, madre.FieldFechaNacimiento:
			values[i] = new(sql.NullTime)
		case madre.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Madre fields.
func (_m *Madre) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case madre.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case madre.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case madre.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case madre.FieldFichaClinicaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ficha_clinica_id", values[i])
			} else if value.Valid {
				_m.FichaClinicaID = value.String
			}
		case madre.FieldRutHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rut_hash", values[i])
			} else if value.Valid {
				_m.RutHash = value.String
			}
		case madre.FieldRutEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rut_encrypted", values[i])
			} else if value.Valid {
				_m.RutEncrypted = value.String
			}
		case madre.FieldNombreHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_hash", values[i])
			} else if value.Valid {
				_m.NombreHash = value.String
			}
		case madre.FieldNombreEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_encrypted", values[i])
			} else if value.Valid {
				_m.NombreEncrypted = value.String
			}
		case madre.FieldTelefonoHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono_hash", values[i])
			} else if value.Valid {
				_m.TelefonoHash = value.String
			}
		case madre.FieldTelefonoEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono_encrypted", values[i])
			} else if value.Valid {
				_m.TelefonoEncrypted = value.String
			}
		case madre.FieldFechaNacimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_nacimiento", values[i])
			} else if value.Valid {
				_m.FechaNacimiento = value.Time
			}
		case madre.FieldNacionalidad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nacionalidad", values[i])
			} else if value.Valid {
				_m.Nacionalidad = value.String
			}
		case madre.FieldPertenecePuebloOriginario:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pertenece_pueblo_originario", values[i])
			} else if value.Valid {
				_m.PertenecePuebloOriginario = value.Bool
			}
		case madre.FieldPrevision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prevision", values[i])
			} else if value.Valid {
				_m.Prevision = madre.Prevision(value.String)
			}
		case madre.FieldAntecedentesMedicos:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field antecedentes_medicos", values[i])
			} else if value.Valid {
				_m.AntecedentesMedicos = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Madre.
// This includes values selected through modifiers, order, etc.
func (_m *Madre) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPartos queries the "partos" edge of the Madre entity.
func (_m *Madre) QueryPartos() *PartoQuery {
	return NewMadreClient(_m.config).QueryPartos(_m)
}

// QueryDefuncion queries the "defuncion" edge of the Madre entity.
func (_m *Madre) QueryDefuncion() *DefuncionQuery {
	return NewMadreClient(_m.config).QueryDefuncion(_m)
}

// Update returns a builder for updating this Madre.
// Note that you need to call Madre.Unwrap() before calling this method if this Madre
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Madre) Update() *MadreUpdateOne {
	return NewMadreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Madre entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Madre) Unwrap() *Madre {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Madre is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Madre) String() string {
	var builder strings.Builder
	builder.WriteString("Madre(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ficha_clinica_id=")
	builder.WriteString(_m.FichaClinicaID)
	builder.WriteString(", ")
	builder.WriteString("rut_hash=")
	builder.WriteString(_m.RutHash)
	builder.WriteString(", ")
	builder.WriteString("rut_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("nombre_hash=")
	builder.WriteString(_m.NombreHash)
	builder.WriteString(", ")
	builder.WriteString("nombre_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("telefono_hash=")
	builder.WriteString(_m.TelefonoHash)
	builder.WriteString(", ")
	builder.WriteString("telefono_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("fecha_nacimiento=")
	builder.WriteString(_m.FechaNacimiento.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nacionalidad=")
	builder.WriteString(_m.Nacionalidad)
	builder.WriteString(", ")
	builder.WriteString("pertenece_pueblo_originario=")
	builder.WriteString(fmt.Sprintf("%v", _m.PertenecePuebloOriginario))
	builder.WriteString(", ")
	builder.WriteString("prevision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prevision))
	builder.WriteString(", ")
	builder.WriteString("antecedentes_medicos=")
	builder.WriteString(_m.AntecedentesMedicos)
	builder.WriteByte(')')
	return builder.String()
}

// Madres is a parsable slice of Madre.
type Madres []*Madre
