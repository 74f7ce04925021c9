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

// ImagingResult stores one scan/x-ray/ultrasound report.
type ImagingResult struct{ ent.Schema }

func (ImagingResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "imaging_results"},
	}
}

func (ImagingResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("patient_id", uuid.UUID{}),
		field.Time("test_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("title").NotEmpty(),
		field.Text("observations").Optional(),
		field.String("doctor_name").Optional(),
		field.String("source_url").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ImagingResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "test_date"),
	}
}
