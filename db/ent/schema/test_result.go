package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TestResult stores one component of a lab report. All components
// extracted from the same document share a generated test_id.
type TestResult struct{ ent.Schema }

func (TestResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "test_results"},
	}
}

func (TestResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("test_id", uuid.UUID{}),
		field.UUID("patient_id", uuid.UUID{}),
		field.Time("test_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("component_name").NotEmpty(),
		// Exactly one of value_num / value_text is set, decided by the
		// runtime type of the extracted value.
		field.Float("value_num").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.String("value_text").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		field.Float("normal_min").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.Float("normal_max").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,4)"}),
		field.String("normal_text").Optional().Nillable(),
		field.String("source_url").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (TestResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("patient_id", "test_date"),
		index.Fields("patient_id", "component_name"),
	}
}
