package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// RecienNacido is a newborn tied to a birth event. Multiple rows per
// parto cover multiple gestation.
type RecienNacido struct {
	ent.Schema
}

func (RecienNacido) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (RecienNacido) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("parto_id", uuid.UUID{}),

		field.String("rut_provisorio").
			MaxLen(12).
			Optional().
			Comment("Provisional ID until civil registration"),

		field.Enum("estado_al_nacer").
			NamedValues(
				"Vivo", "Vivo",
				"NacidoMuerto", "Nacido Muerto",
			),

		field.Enum("sexo").
			Values("Masculino", "Femenino", "Indeterminado").
			Optional(),

		// Vitals may be recorded after the birth itself, so they start out
		// null and are filled in as the newborn is assessed.
		field.Int("peso_gramos").
			Positive().
			Optional().
			Nillable(),

		field.Float("talla_cm").
			Positive().
			Optional().
			Nillable(),

		field.Int("apgar_1_min").
			Min(0).
			Max(10).
			Optional().
			Nillable(),

		field.Int("apgar_5_min").
			Min(0).
			Max(10).
			Optional().
			Nillable(),

		field.Bool("profilaxis_vit_k").
			Default(false),

		field.Bool("profilaxis_oftalmica").
			Default(false),

		field.UUID("usuario_registro_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (RecienNacido) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parto", Parto.Type).
			Ref("recien_nacidos").
			Unique().
			Required().
			Field("parto_id"),
		edge.From("usuario_registro", Usuario.Type).
			Ref("recien_nacidos_registrados").
			Unique().
			Field("usuario_registro_id"),
		edge.To("defuncion", Defuncion.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (RecienNacido) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parto_id"),
	}
}
