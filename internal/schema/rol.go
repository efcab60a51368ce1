package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Rol is a named staff role. Permission sets live in the authorization
// layer; this table only carries identity and description.
type Rol struct {
	ent.Schema
}

func (Rol) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Rol) Fields() []ent.Field {
	return []ent.Field{
		field.String("nombre").
			MaxLen(50).
			Unique().
			Comment("e.g. Matrona, Médico, Administrativo, Administrador TI"),

		field.Text("descripcion").
			Optional(),
	}
}

func (Rol) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("usuarios", Usuario.Type),
	}
}
