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
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// RecienNacido is the model entity for the RecienNacido schema.
type RecienNacido struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PartoID holds the value of the "parto_id" field.
	PartoID uuid.UUID `json:"parto_id,omitempty"`
	// Provisional ID until civil registration
	RutProvisorio string `json:"rut_provisorio,omitempty"`
	// EstadoAlNacer holds the value of the "estado_al_nacer" field.
	EstadoAlNacer reciennacido.EstadoAlNacer `json:"estado_al_nacer,omitempty"`
	// Sexo holds the value of the "sexo" field.
	Sexo reciennacido.Sexo `json:"sexo,omitempty"`
	// PesoGramos holds the value of the "peso_gramos" field.
	PesoGramos *int `json:"peso_gramos,omitempty"`
	// TallaCm holds the value of the "talla_cm" field.
	TallaCm *float64 `json:"talla_cm,omitempty"`
	// Apgar1Min holds the value of the "apgar_1_min" field.
	Apgar1Min *int `json:"apgar_1_min,omitempty"`
	// Apgar5Min holds the value of the "apgar_5_min" field.
	Apgar5Min *int `json:"apgar_5_min,omitempty"`
	// ProfilaxisVitK holds the value of the "profilaxis_vit_k" field.
	ProfilaxisVitK bool `json:"profilaxis_vit_k,omitempty"`
	// ProfilaxisOftalmica holds the value of the "profilaxis_oftalmica" field.
	ProfilaxisOftalmica bool `json:"profilaxis_oftalmica,omitempty"`
	// UsuarioRegistroID holds the value of the "usuario_registro_id" field.
	UsuarioRegistroID *uuid.UUID `json:"usuario_registro_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecienNacidoQuery when eager-loading is set.
	Edges        RecienNacidoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecienNacidoEdges holds the relations/edges for other nodes in the graph.
type RecienNacidoEdges struct {
	// Parto holds the value of the parto edge.
	Parto *Parto `json:"parto,omitempty"`
	// UsuarioRegistro holds the value of the usuario_registro edge.
	UsuarioRegistro *Usuario `json:"usuario_registro,omitempty"`
	// Defuncion holds the value of the defuncion edge.
	Defuncion *Defuncion `json:"defuncion,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PartoOrErr returns the Parto value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecienNacidoEdges) PartoOrErr() (*Parto, error) {
	if e.Parto != nil {
		return e.Parto, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: parto.Label}
	}
	return nil, &NotLoadedError{edge: "parto"}
}

// UsuarioRegistroOrErr returns the UsuarioRegistro value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecienNacidoEdges) UsuarioRegistroOrErr() (*Usuario, error) {
	if e.UsuarioRegistro != nil {
		return e.UsuarioRegistro, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: usuario.Label}
	}
	return nil, &NotLoadedError{edge: "usuario_registro"}
}

// DefuncionOrErr returns the Defuncion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecienNacidoEdges) DefuncionOrErr() (*Defuncion, error) {
	if e.Defuncion != nil {
		return e.Defuncion, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: defuncion.Label}
	}
	return nil, &NotLoadedError{edge: "defuncion"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecienNacido) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reciennacido.FieldUsuarioRegistroID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case reciennacido.FieldProfilaxisVitK, reciennacido.FieldProfilaxisOftalmica:
			values[i] = new(sql.NullBool)
		case reciennacido.FieldTallaCm:
			values[i] = new(sql.NullFloat64)
		case reciennacido.FieldPesoGramos, reciennacido.FieldApgar1Min, reciennacido.FieldApgar5Min:
			values[i] = new(sql.NullInt64)
		case reciennacido.FieldRutProvisorio, reciennacido.FieldEstadoAlNacer, reciennacido.FieldSexo:
			values[i] = new(sql.NullString)
		case reciennacido.FieldCreatedAt, reciennacido.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case reciennacido.FieldID, reciennacido.FieldPartoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecienNacido fields.
func (_m *RecienNacido) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reciennacido.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reciennacido.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reciennacido.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reciennacido.FieldPartoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field parto_id", values[i])
			} else if value != nil {
				_m.PartoID = *value
			}
		case reciennacido.FieldRutProvisorio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rut_provisorio", values[i])
			} else if value.Valid {
				_m.RutProvisorio = value.String
			}
		case reciennacido.FieldEstadoAlNacer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado_al_nacer", values[i])
			} else if value.Valid {
				_m.EstadoAlNacer = reciennacido.EstadoAlNacer(value.String)
			}
		case reciennacido.FieldSexo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sexo", values[i])
			} else if value.Valid {
				_m.Sexo = reciennacido.Sexo(value.String)
			}
		case reciennacido.FieldPesoGramos:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field peso_gramos", values[i])
			} else if value.Valid {
				_m.PesoGramos = new(int)
				*_m.PesoGramos = int(value.Int64)
			}
		case reciennacido.FieldTallaCm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field talla_cm", values[i])
			} else if value.Valid {
				_m.TallaCm = new(float64)
				*_m.TallaCm = value.Float64
			}
		case reciennacido.FieldApgar1Min:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field apgar_1_min", values[i])
			} else if value.Valid {
				_m.Apgar1Min = new(int)
				*_m.Apgar1Min = int(value.Int64)
			}
		case reciennacido.FieldApgar5Min:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field apgar_5_min", values[i])
			} else if value.Valid {
				_m.Apgar5Min = new(int)
				*_m.Apgar5Min = int(value.Int64)
			}
		case reciennacido.FieldProfilaxisVitK:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field profilaxis_vit_k", values[i])
			} else if value.Valid {
				_m.ProfilaxisVitK = value.Bool
			}
		case reciennacido.FieldProfilaxisOftalmica:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field profilaxis_oftalmica", values[i])
			} else if value.Valid {
				_m.ProfilaxisOftalmica = value.Bool
			}
		case reciennacido.FieldUsuarioRegistroID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RecienNacido.
// This includes values selected through modifiers, order, etc.
func (_m *RecienNacido) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParto queries the "parto" edge of the RecienNacido entity.
func (_m *RecienNacido) QueryParto() *PartoQuery {
	return NewRecienNacidoClient(_m.config).QueryParto(_m)
}

// QueryUsuarioRegistro queries the "usuario_registro" edge of the RecienNacido entity.
func (_m *RecienNacido) QueryUsuarioRegistro() *UsuarioQuery {
	return NewRecienNacidoClient(_m.config).QueryUsuarioRegistro(_m)
}

// QueryDefuncion queries the "defuncion" edge of the RecienNacido entity.
func (_m *RecienNacido) QueryDefuncion() *DefuncionQuery {
	return NewRecienNacidoClient(_m.config).QueryDefuncion(_m)
}

// Update returns a builder for updating this RecienNacido.
// Note that you need to call RecienNacido.Unwrap() before calling this method if this RecienNacido
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecienNacido) Update() *RecienNacidoUpdateOne {
	return NewRecienNacidoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecienNacido entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecienNacido) Unwrap() *RecienNacido {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: RecienNacido is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecienNacido) String() string {
	var builder strings.Builder
	builder.WriteString("RecienNacido(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("parto_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartoID))
	builder.WriteString(", ")
	builder.WriteString("rut_provisorio=")
	builder.WriteString(_m.RutProvisorio)
	builder.WriteString(", ")
	builder.WriteString("estado_al_nacer=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstadoAlNacer))
	builder.WriteString(", ")
	builder.WriteString("sexo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sexo))
	builder.WriteString(", ")
	if v := _m.PesoGramos; v != nil {
		builder.WriteString("peso_gramos=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TallaCm; v != nil {
		builder.WriteString("talla_cm=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Apgar1Min; v != nil {
		builder.WriteString("apgar_1_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Apgar5Min; v != nil {
		builder.WriteString("apgar_5_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("profilaxis_vit_k=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfilaxisVitK))
	builder.WriteString(", ")
	builder.WriteString("profilaxis_oftalmica=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfilaxisOftalmica))
	builder.WriteString(", ")
	if v := _m.UsuarioRegistroID; v != nil {
		builder.WriteString("usuario_registro_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RecienNacidos is a parsable slice of RecienNacido.
type RecienNacidos []*RecienNacido
