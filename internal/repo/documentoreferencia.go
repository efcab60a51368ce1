// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
)

// DocumentoReferencia is the model entity for the DocumentoReferencia schema.
type DocumentoReferencia struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PartoID holds the value of the "parto_id" field.
	PartoID uuid.UUID `json:"parto_id,omitempty"`
	// ObjectId of the stored document
	MongodbObjectID string `json:"mongodb_object_id,omitempty"`
	// NombreArchivo holds the value of the "nombre_archivo" field.
	NombreArchivo string `json:"nombre_archivo,omitempty"`
	// TipoDocumento holds the value of the "tipo_documento" field.
	TipoDocumento documentoreferencia.TipoDocumento `json:"tipo_documento,omitempty"`
	// UsuarioGeneracionID holds the value of the "usuario_generacion_id" field.
	UsuarioGeneracionID *uuid.UUID `json:"usuario_generacion_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentoReferenciaQuery when eager-loading is set.
	Edges        DocumentoReferenciaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentoReferenciaEdges holds the relations/edges for other nodes in the graph.
type DocumentoReferenciaEdges struct {
	// Parto holds the value of the parto edge.
	Parto *Parto `json:"parto,omitempty"`
	// UsuarioGeneracion holds the value of the usuario_generacion edge.
	UsuarioGeneracion *Usuario `json:"usuario_generacion,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PartoOrErr returns the Parto value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentoReferenciaEdges) PartoOrErr() (*Parto, error) {
	if e.Parto != nil {
		return e.Parto, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: parto.Label}
	}
	return nil, &NotLoadedError{edge: "parto"}
}

// UsuarioGeneracionOrErr returns the UsuarioGeneracion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentoReferenciaEdges) UsuarioGeneracionOrErr() (*Usuario, error) {
	if e.UsuarioGeneracion != nil {
		return e.UsuarioGeneracion, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: usuario.Label}
	}
	return nil, &NotLoadedError{edge: "usuario_generacion"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentoReferencia) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentoreferencia.FieldUsuarioGeneracionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case documentoreferencia.FieldMongodbObjectID, documentoreferencia.FieldNombreArchivo, documentoreferencia.FieldTipoDocumento:
			values[i] = new(sql.NullString)
		case documentoreferencia.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case documentoreferencia.FieldID, documentoreferencia.FieldPartoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentoReferencia fields.
func (_m *DocumentoReferencia) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentoreferencia.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentoreferencia.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documentoreferencia.FieldPartoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field parto_id", values[i])
			} else if value != nil {
				_m.PartoID = *value
			}
		case documentoreferencia.FieldMongodbObjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mongodb_object_id", values[i])
			} else if value.Valid {
				_m.MongodbObjectID = value.String
			}
		case documentoreferencia.FieldNombreArchivo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_archivo", values[i])
			} else if value.Valid {
				_m.NombreArchivo = value.String
			}
		case documentoreferencia.FieldTipoDocumento:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_documento", values[i])
			} else if value.Valid {
				_m.TipoDocumento = documentoreferencia.TipoDocumento(value.String)
			}
		case documentoreferencia.FieldUsuarioGeneracionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field usuario_generacion_id", values[i])
			} else if value.Valid {
				_m.UsuarioGeneracionID = new(uuid.UUID)
				*_m.UsuarioGeneracionID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentoReferencia.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentoReferencia) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParto queries the "parto" edge of the DocumentoReferencia entity.
func (_m *DocumentoReferencia) QueryParto() *PartoQuery {
	return NewDocumentoReferenciaClient(_m.config).QueryParto(_m)
}

// QueryUsuarioGeneracion queries the "usuario_generacion" edge of the DocumentoReferencia entity.
func (_m *DocumentoReferencia) QueryUsuarioGeneracion() *UsuarioQuery {
	return NewDocumentoReferenciaClient(_m.config).QueryUsuarioGeneracion(_m)
}

// Update returns a builder for updating this DocumentoReferencia.
// Note that you need to call DocumentoReferencia.Unwrap() before calling this method if this DocumentoReferencia
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentoReferencia) Update() *DocumentoReferenciaUpdateOne {
	return NewDocumentoReferenciaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentoReferencia entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentoReferencia) Unwrap() *DocumentoReferencia {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DocumentoReferencia is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentoReferencia) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentoReferencia(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("parto_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartoID))
	builder.WriteString(", ")
	builder.WriteString("mongodb_object_id=")
	builder.WriteString(_m.MongodbObjectID)
	builder.WriteString(", ")
	builder.WriteString("nombre_archivo=")
	builder.WriteString(_m.NombreArchivo)
	builder.WriteString(", ")
	builder.WriteString("tipo_documento=")
	builder.WriteString(fmt.Sprintf("%v", _m.TipoDocumento))
	builder.WriteString(", ")
	if v := _m.UsuarioGeneracionID; v != nil {
		builder.WriteString("usuario_generacion_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DocumentoReferenciaSlice is a parsable slice of DocumentoReferencia.
type DocumentoReferenciaSlice []*DocumentoReferencia
