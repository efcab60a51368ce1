package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LogAuditoria is the append-only audit trail. Rows survive the deletion
// of the account that produced them.
type LogAuditoria struct {
	ent.Schema
}

func (LogAuditoria) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
	}
}

func (LogAuditoria) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("usuario_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("accion").
			MaxLen(100).
			Comment("e.g. CREAR_PARTO, LOGIN_FALLIDO"),

		field.String("tabla_afectada").
			MaxLen(100).
			Optional(),

		field.UUID("registro_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.JSON("detalles", map[string]any{}).
			Optional(),

		field.String("ip_usuario").
			MaxLen(45).
			Optional().
			Comment("IPv4 or IPv6 of the caller"),

		field.Time("fecha_accion").
			Default(time.Now).
			Immutable(),
	}
}

func (LogAuditoria) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("usuario", Usuario.Type).
			Ref("registros_auditoria").
			Unique().
			Field("usuario_id"),
	}
}

func (LogAuditoria) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("usuario_id"),
		index.Fields("tabla_afectada"),
		index.Fields("fecha_accion"),
	}
}
