package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PartoDiagnostico links a birth event to an ICD-10 diagnosis. The pair
// is unique, so linking twice is a no-op at the service layer.
type PartoDiagnostico struct {
	ent.Schema
}

func (PartoDiagnostico) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		CreatedAtMixin{},
	}
}

func (PartoDiagnostico) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("parto_id", uuid.UUID{}),
		field.UUID("diagnostico_id", uuid.UUID{}),
	}
}

func (PartoDiagnostico) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parto", Parto.Type).
			Ref("parto_diagnosticos").
			Unique().
			Required().
			Field("parto_id"),
		edge.From("diagnostico", DiagnosticoCIE10.Type).
			Ref("parto_diagnosticos").
			Unique().
			Required().
			Field("diagnostico_id"),
	}
}

func (PartoDiagnostico) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parto_id", "diagnostico_id").Unique(),
		index.Fields("diagnostico_id"),
	}
}
