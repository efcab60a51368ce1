package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Defuncion records a death. The subject is exactly one of madre or
// recien_nacido; the CHECK constraint mirrors the service-layer rule.
type Defuncion struct {
	ent.Schema
}

func (Defuncion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Defuncion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("madre_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("recien_nacido_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("fecha_defuncion"),

		field.UUID("causa_defuncion_id", uuid.UUID{}),

		field.UUID("usuario_registro_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (Defuncion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("madre", Madre.Type).
			Ref("defuncion").
			Unique().
			Field("madre_id"),
		edge.From("recien_nacido", RecienNacido.Type).
			Ref("defuncion").
			Unique().
			Field("recien_nacido_id"),
		edge.From("causa_defuncion", DiagnosticoCIE10.Type).
			Ref("defunciones").
			Unique().
			Required().
			Field("causa_defuncion_id"),
		edge.From("usuario_registro", Usuario.Type).
			Ref("defunciones_registradas").
			Unique().
			Field("usuario_registro_id"),
	}
}

func (Defuncion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("madre_id").Unique(),
		index.Fields("recien_nacido_id").Unique(),
	}
}

func (Defuncion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Checks: map[string]string{
				"defuncion_sujeto_xor": "((madre_id IS NULL) != (recien_nacido_id IS NULL))",
			},
		},
	}
}
