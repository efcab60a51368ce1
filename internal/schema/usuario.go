package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Usuario is a staff account. Patients never get accounts; all identities
// here belong to hospital personnel.
type Usuario struct {
	ent.Schema
}

func (Usuario) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (Usuario) Fields() []ent.Field {
	return []ent.Field{
		field.String("rut").
			MaxLen(12).
			Unique().
			Comment("Chilean national ID, formatted 12345678-9"),

		field.String("nombre_completo").
			MaxLen(255),

		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("username").
			MaxLen(50).
			Unique(),

		field.String("password_hash").
			MaxLen(255).
			Sensitive(),

		field.UUID("rol_id", uuid.UUID{}),

		field.Bool("activo").
			Default(true),
	}
}

func (Usuario) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("rol", Rol.Type).
			Ref("usuarios").
			Unique().
			Required().
			Field("rol_id"),
		edge.To("registros_auditoria", LogAuditoria.Type),
		edge.To("partos_registrados", Parto.Type),
		edge.To("recien_nacidos_registrados", RecienNacido.Type),
		edge.To("defunciones_registradas", Defuncion.Type),
		edge.To("documentos_generados", DocumentoReferencia.Type),
	}
}

func (Usuario) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rol_id"),
		index.Fields("activo"),
	}
}
