package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// DiagnosticoCIE10 is one row of the ICD-10 catalogue.
type DiagnosticoCIE10 struct {
	ent.Schema
}

func (DiagnosticoCIE10) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDMixin{},
		TimeStampedMixin{},
	}
}

func (DiagnosticoCIE10) Fields() []ent.Field {
	return []ent.Field{
		field.String("codigo").
			MaxLen(10).
			Unique().
			Comment("ICD-10 code, e.g. O82"),

		field.Text("descripcion"),
	}
}

func (DiagnosticoCIE10) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("parto_diagnosticos", PartoDiagnostico.Type),
		edge.To("defunciones", Defuncion.Type),
	}
}
