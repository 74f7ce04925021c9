package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription stores one medicine of a prescription document. Medicines
// issued on the same visit share a generated group_id.
type Prescription struct{ ent.Schema }

func (Prescription) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prescriptions"},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("group_id", uuid.UUID{}),
		field.UUID("patient_id", uuid.UUID{}),
		field.String("medicine_name").NotEmpty(),
		field.String("food_instruction").Optional(),
		field.Time("start_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("end_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("notes").Optional(),
		field.Bool("morning").Default(false),
		field.Bool("afternoon").Default(false),
		field.Bool("evening").Default(false),
		field.Bool("night").Default(false),
		field.String("doctor_name").Optional(),
		field.Time("prescribed_on").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("source_url").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Prescription) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE prescription -> MANY adherence entries
		edge.To("adherence_entries", AdherenceEntry.Type),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
		index.Fields("patient_id", "start_date", "end_date"),
	}
}
