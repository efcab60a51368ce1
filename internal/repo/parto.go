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
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// Parto is the model entity for the Parto schema.
type Parto struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// MadreID holds the value of the "madre_id" field.
	MadreID uuid.UUID `json:"madre_id,omitempty"`
	// FechaParto holds the value of the "fecha_parto" field.
	FechaParto time.Time `json:"fecha_parto,omitempty"`
	// Gestational age in weeks
	EdadGestacional *int `json:"edad_gestacional,omitempty"`
	// TipoParto holds the value of the "tipo_parto" field.
	TipoParto parto.TipoParto `json:"tipo_parto,omitempty"`
	// Anestesia holds the value of the "anestesia" field.
	Anestesia parto.Anestesia `json:"anestesia,omitempty"`
	// Structured partograph measurements
	PartogramaData map[string]interface{} `json:"partograma_data,omitempty"`
	// Discharge summary payload
	EpicrisisData map[string]interface{} `json:"epicrisis_data,omitempty"`
	// UsuarioRegistroID holds the value of the "usuario_registro_id" field.
	UsuarioRegistroID *uuid.UUID `json:"usuario_registro_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PartoQuery when eager-loading is set.
	Edges        PartoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PartoEdges holds the relations/edges for other nodes in the graph.
type PartoEdges struct {
	// Madre holds the value of the madre edge.
	Madre *Madre `json:"madre,omitempty"`
	// UsuarioRegistro holds the value of the usuario_registro edge.
	UsuarioRegistro *Usuario `json:"usuario_registro,omitempty"`
	// RecienNacidos holds the value of the recien_nacidos edge.
	RecienNacidos []*RecienNacido `json:"recien_nacidos,omitempty"`
	// PartoDiagnosticos holds the value of the parto_diagnosticos edge.
	PartoDiagnosticos []*PartoDiagnostico `json:"parto_diagnosticos,omitempty"`
	// Documentos holds the value of the documentos edge.
	Documentos []*DocumentoReferencia `json:"documentos,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// MadreOrErr returns the Madre value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PartoEdges) MadreOrErr() (*Madre, error) {
	if e.Madre != nil {
		return e.Madre, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: madre.Label}
	}
	return nil, &NotLoadedError{edge: "madre"}
}

// UsuarioRegistroOrErr returns the UsuarioRegistro value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PartoEdges) UsuarioRegistroOrErr() (*Usuario, error) {
	if e.UsuarioRegistro != nil {
		return e.UsuarioRegistro, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: usuario.Label}
	}
	return nil, &NotLoadedError{edge: "usuario_registro"}
}

// RecienNacidosOrErr returns the RecienNacidos value or an error if the edge
// was not loaded in eager-loading.
func (e PartoEdges) RecienNacidosOrErr() ([]*RecienNacido, error) {
	if e.loadedTypes[2] {
		return e.RecienNacidos, nil
	}
	return nil, &NotLoadedError{edge: "recien_nacidos"}
}

// PartoDiagnosticosOrErr returns the PartoDiagnosticos value or an error if the edge
// was not loaded in eager-loading.
func (e PartoEdges) PartoDiagnosticosOrErr() ([]*PartoDiagnostico, error) {
	if e.loadedTypes[3] {
		return e.PartoDiagnosticos, nil
	}
	return nil, &NotLoadedError{edge: "parto_diagnosticos"}
}

// DocumentosOrErr returns the Documentos value or an error if the edge
// was not loaded in eager-loading.
func (e PartoEdges) DocumentosOrErr() ([]*DocumentoReferencia, error) {
	if e.loadedTypes[4] {
		return e.Documentos, nil
	}
	return nil, &NotLoadedError{edge: "documentos"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Parto) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parto.FieldUsuarioRegistroID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case parto.FieldPartogramaData, parto.FieldEpicrisisData:
			values[i] = new([]byte)
		case parto.FieldEdadGestacional:
			values[i] = new(sql.NullInt64)
		case parto.FieldTipoParto, parto.FieldAnestesia:
			values[i] = new(sql.NullString)
		case parto.FieldCreatedAt, parto.FieldUpdatedAt, parto.FieldFechaParto:
			values[i] = new(sql.NullTime)
		case parto.FieldID, parto.FieldMadreID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Parto fields.
func (_m *Parto) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parto.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parto.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case parto.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case parto.FieldMadreID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field madre_id", values[i])
			} else if value != nil {
				_m.MadreID = *value
			}
		case parto.FieldFechaParto:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_parto", values[i])
			} else if value.Valid {
				_m.FechaParto = value.Time
			}
		case parto.FieldEdadGestacional:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field edad_gestacional", values[i])
			} else if value.Valid {
				_m.EdadGestacional = new(int)
				*_m.EdadGestacional = int(value.Int64)
			}
		case parto.FieldTipoParto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_parto", values[i])
			} else if value.Valid {
				_m.TipoParto = parto.TipoParto(value.String)
			}
		case parto.FieldAnestesia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anestesia", values[i])
			} else if value.Valid {
				_m.Anestesia = parto.Anestesia(value.String)
			}
		case parto.FieldPartogramaData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field partograma_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PartogramaData); err != nil {
					return fmt.Errorf("unmarshal field partograma_data: %w", err)
				}
			}
		case parto.FieldEpicrisisData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field epicrisis_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EpicrisisData); err != nil {
					return fmt.Errorf("unmarshal field epicrisis_data: %w", err)
				}
			}
		case parto.FieldUsuarioRegistroID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Parto.
// This includes values selected through modifiers, order, etc.
func (_m *Parto) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMadre queries the "madre" edge of the Parto entity.
func (_m *Parto) QueryMadre() *MadreQuery {
	return NewPartoClient(_m.config).QueryMadre(_m)
}

// QueryUsuarioRegistro queries the "usuario_registro" edge of the Parto entity.
func (_m *Parto) QueryUsuarioRegistro() *UsuarioQuery {
	return NewPartoClient(_m.config).QueryUsuarioRegistro(_m)
}

// QueryRecienNacidos queries the "recien_nacidos" edge of the Parto entity.
func (_m *Parto) QueryRecienNacidos() *RecienNacidoQuery {
	return NewPartoClient(_m.config).QueryRecienNacidos(_m)
}

// QueryPartoDiagnosticos queries the "parto_diagnosticos" edge of the Parto entity.
func (_m *Parto) QueryPartoDiagnosticos() *PartoDiagnosticoQuery {
	return NewPartoClient(_m.config).QueryPartoDiagnosticos(_m)
}

// QueryDocumentos queries the "documentos" edge of the Parto entity.
func (_m *Parto) QueryDocumentos() *DocumentoReferenciaQuery {
	return NewPartoClient(_m.config).QueryDocumentos(_m)
}

// Update returns a builder for updating this Parto.
// Note that you need to call Parto.Unwrap() before calling this method if this Parto
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Parto) Update() *PartoUpdateOne {
	return NewPartoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Parto entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Parto) Unwrap() *Parto {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Parto is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Parto) String() string {
	var builder strings.Builder
	builder.WriteString("Parto(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("madre_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MadreID))
	builder.WriteString(", ")
	builder.WriteString("fecha_parto=")
	builder.WriteString(_m.FechaParto.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EdadGestacional; v != nil {
		builder.WriteString("edad_gestacional=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tipo_parto=")
	builder.WriteString(fmt.Sprintf("%v", _m.TipoParto))
	builder.WriteString(", ")
	builder.WriteString("anestesia=")
	builder.WriteString(fmt.Sprintf("%v", _m.Anestesia))
	builder.WriteString(", ")
	builder.WriteString("partograma_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartogramaData))
	builder.WriteString(", ")
	builder.WriteString("epicrisis_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.EpicrisisData))
	builder.WriteString(", ")
	if v := _m.UsuarioRegistroID; v != nil {
		builder.WriteString("usuario_registro_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Partos is a parsable slice of Parto.
type Partos []*Parto
