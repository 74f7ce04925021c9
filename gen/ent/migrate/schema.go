// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdherenceEntriesColumns holds the columns for the "adherence_entries" table.
	AdherenceEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "medicine_name", Type: field.TypeString},
		{Name: "entry_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "morning", Type: field.TypeBool, Nullable: true},
		{Name: "afternoon", Type: field.TypeBool, Nullable: true},
		{Name: "evening", Type: field.TypeBool, Nullable: true},
		{Name: "night", Type: field.TypeBool, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "prescription_id", Type: field.TypeUUID},
	}
	// AdherenceEntriesTable holds the schema information for the "adherence_entries" table.
	AdherenceEntriesTable = &schema.Table{
		Name:       "adherence_entries",
		Columns:    AdherenceEntriesColumns,
		PrimaryKey: []*schema.Column{AdherenceEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "adherence_entries_prescriptions_adherence_entries",
				Columns:    []*schema.Column{AdherenceEntriesColumns[9]},
				RefColumns: []*schema.Column{PrescriptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "adherenceentry_prescription_id_entry_date",
				Unique:  true,
				Columns: []*schema.Column{AdherenceEntriesColumns[9], AdherenceEntriesColumns[2]},
			},
		},
	}
	// ImagingResultsColumns holds the columns for the "imaging_results" table.
	ImagingResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "test_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "title", Type: field.TypeString},
		{Name: "observations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "doctor_name", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ImagingResultsTable holds the schema information for the "imaging_results" table.
	ImagingResultsTable = &schema.Table{
		Name:       "imaging_results",
		Columns:    ImagingResultsColumns,
		PrimaryKey: []*schema.Column{ImagingResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "imagingresult_patient_id_test_date",
				Unique:  false,
				Columns: []*schema.Column{ImagingResultsColumns[1], ImagingResultsColumns[2]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "group_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "medicine_name", Type: field.TypeString},
		{Name: "food_instruction", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "end_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "morning", Type: field.TypeBool, Default: false},
		{Name: "afternoon", Type: field.TypeBool, Default: false},
		{Name: "evening", Type: field.TypeBool, Default: false},
		{Name: "night", Type: field.TypeBool, Default: false},
		{Name: "doctor_name", Type: field.TypeString, Nullable: true},
		{Name: "prescribed_on", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "source_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_group_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[1]},
			},
			{
				Name:    "prescription_patient_id_start_date_end_date",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[2], PrescriptionsColumns[5], PrescriptionsColumns[6]},
			},
		},
	}
	// TestResultsColumns holds the columns for the "test_results" table.
	TestResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "test_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "test_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "component_name", Type: field.TypeString},
		{Name: "value_num", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "value_text", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "normal_min", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "normal_max", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "normal_text", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestResultsTable holds the schema information for the "test_results" table.
	TestResultsTable = &schema.Table{
		Name:       "test_results",
		Columns:    TestResultsColumns,
		PrimaryKey: []*schema.Column{TestResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testresult_test_id",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[1]},
			},
			{
				Name:    "testresult_patient_id_test_date",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[2], TestResultsColumns[3]},
			},
			{
				Name:    "testresult_patient_id_component_name",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[2], TestResultsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdherenceEntriesTable,
		ImagingResultsTable,
		PrescriptionsTable,
		TestResultsTable,
	}
)

func init() {
	AdherenceEntriesTable.ForeignKeys[0].RefTable = PrescriptionsTable
	AdherenceEntriesTable.Annotation = &entsql.Annotation{
		Table: "adherence_entries",
	}
	ImagingResultsTable.Annotation = &entsql.Annotation{
		Table: "imaging_results",
	}
	PrescriptionsTable.Annotation = &entsql.Annotation{
		Table: "prescriptions",
	}
	TestResultsTable.Annotation = &entsql.Annotation{
		Table: "test_results",
	}
}
