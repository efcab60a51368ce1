package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Madre is the maternal clinical record. Personally identifying fields are
// stored as hash/ciphertext pairs: the SHA-256 hash supports equality
// lookups without decryption, the AES-GCM ciphertext holds the value.
type Madre struct {
	ent.Schema
}

func (Madre) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Madre) Fields() []ent.Field {
	return []ent.Field{
		// Identity columns are nullable at the data layer: historical records
		// migrated without a RUT or ficha must still load. Registration via
		// the service always fills them in.
		field.String("ficha_clinica_id").
			MaxLen(20).
			Unique().
			Optional().
			Comment("Hospital-assigned clinical file number"),

		field.String("rut_hash").
			MaxLen(64).
			Unique().
			Optional(),

		field.Text("rut_encrypted").
			Optional().
			Sensitive(),

		field.String("nombre_hash").
			MaxLen(64).
			Optional(),

		field.Text("nombre_encrypted").
			Optional().
			Sensitive(),

		field.String("telefono_hash").
			MaxLen(64).
			Optional(),

		field.Text("telefono_encrypted").
			Optional().
			Sensitive(),

		field.Time("fecha_nacimiento"),

		field.String("nacionalidad").
			MaxLen(100).
			Default("Chilena"),

		field.Bool("pertenece_pueblo_originario").
			Default(false),

		field.Enum("prevision").
			Values("FONASA", "ISAPRE", "PARTICULAR", "NINGUNA").
			Default("FONASA"),

		field.Text("antecedentes_medicos").
			Optional(),
	}
}

func (Madre) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("partos", Parto.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("defuncion", Defuncion.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Madre) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("nombre_hash"),
		index.Fields("telefono_hash"),
	}
}
