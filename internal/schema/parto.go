package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Parto is a single birth event of a mother.
type Parto struct {
	ent.Schema
}

func (Parto) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Parto) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("madre_id", uuid.UUID{}),

		field.Time("fecha_parto"),

		field.Int("edad_gestacional").
			Optional().
			Nillable().
			Min(20).
			Max(45).
			Comment("Gestational age in weeks"),

		field.Enum("tipo_parto").
			NamedValues(
				"Eutocico", "Eutócico",
				"CesareaElectiva", "Cesárea Electiva",
				"CesareaUrgencia", "Cesárea Urgencia",
				"Forceps", "Fórceps",
				"Vacuum", "Vacuum",
			),

		field.Enum("anestesia").
			NamedValues(
				"Epidural", "Epidural",
				"Raquidea", "Raquídea",
				"General", "General",
				"Otra", "Otra",
				"Ninguna", "Ninguna",
			).
			Default("Ninguna"),

		field.JSON("partograma_data", map[string]any{}).
			Optional().
			Comment("Structured partograph measurements"),

		field.JSON("epicrisis_data", map[string]any{}).
			Optional().
			Comment("Discharge summary payload"),

		field.UUID("usuario_registro_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (Parto) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("madre", Madre.Type).
			Ref("partos").
			Unique().
			Required().
			Field("madre_id"),
		edge.From("usuario_registro", Usuario.Type).
			Ref("partos_registrados").
			Unique().
			Field("usuario_registro_id"),
		edge.To("recien_nacidos", RecienNacido.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("parto_diagnosticos", PartoDiagnostico.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("documentos", DocumentoReferencia.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Parto) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("madre_id"),
		index.Fields("fecha_parto"),
	}
}
