package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DocumentoReferencia points at a generated document stored in the
// external document store. Bytes never touch this database.
type DocumentoReferencia struct {
	ent.Schema
}

func (DocumentoReferencia) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		CreatedAtMixin{},
	}
}

func (DocumentoReferencia) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("parto_id", uuid.UUID{}),

		field.String("mongodb_object_id").
			MaxLen(24).
			Unique().
			Comment("ObjectId of the stored document"),

		field.String("nombre_archivo").
			MaxLen(255),

		field.Enum("tipo_documento").
			Values("EPICRISIS_PDF", "REPORTE_EXCEL", "OTRO").
			Default("OTRO"),

		field.UUID("usuario_generacion_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (DocumentoReferencia) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parto", Parto.Type).
			Ref("documentos").
			Unique().
			Required().
			Field("parto_id"),
		edge.From("usuario_generacion", Usuario.Type).
			Ref("documentos_generados").
			Unique().
			Field("usuario_generacion_id"),
	}
}

func (DocumentoReferencia) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parto_id"),
	}
}
