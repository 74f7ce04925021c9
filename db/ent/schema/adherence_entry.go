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

// AdherenceEntry is one streak row: whether a medicine was taken on a
// calendar date, per timing slot. A nil slot means "not yet recorded",
// distinct from an explicit false ("marked not taken"). At most one row
// exists per (prescription_id, entry_date).
type AdherenceEntry struct{ ent.Schema }

func (AdherenceEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "adherence_entries"},
	}
}

func (AdherenceEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("prescription_id", uuid.UUID{}),
		field.String("medicine_name").NotEmpty(),
		field.Time("entry_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("morning").Optional().Nillable(),
		field.Bool("afternoon").Optional().Nillable(),
		field.Bool("evening").Optional().Nillable(),
		field.Bool("night").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (AdherenceEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entries -> ONE prescription (FK: adherence_entries.prescription_id)
		edge.From("prescription", Prescription.Type).
			Ref("adherence_entries").
			Field("prescription_id").
			Required().
			Unique(),
	}
}

func (AdherenceEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prescription_id", "entry_date").Unique(),
	}
}
