// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the prescription type in the database.
	Label = "prescription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldMedicineName holds the string denoting the medicine_name field in the database.
	FieldMedicineName = "medicine_name"
	// FieldFoodInstruction holds the string denoting the food_instruction field in the database.
	FieldFoodInstruction = "food_instruction"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldMorning holds the string denoting the morning field in the database.
	FieldMorning = "morning"
	// FieldAfternoon holds the string denoting the afternoon field in the database.
	FieldAfternoon = "afternoon"
	// FieldEvening holds the string denoting the evening field in the database.
	FieldEvening = "evening"
	// FieldNight holds the string denoting the night field in the database.
	FieldNight = "night"
	// FieldDoctorName holds the string denoting the doctor_name field in the database.
	FieldDoctorName = "doctor_name"
	// FieldPrescribedOn holds the string denoting the prescribed_on field in the database.
	FieldPrescribedOn = "prescribed_on"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAdherenceEntries holds the string denoting the adherence_entries edge name in mutations.
	EdgeAdherenceEntries = "adherence_entries"
	// Table holds the table name of the prescription in the database.
	Table = "prescriptions"
	// AdherenceEntriesTable is the table that holds the adherence_entries relation/edge.
	AdherenceEntriesTable = "adherence_entries"
	// AdherenceEntriesInverseTable is the table name for the AdherenceEntry entity.
	// It exists in this package in order to avoid circular dependency with the "adherenceentry" package.
	AdherenceEntriesInverseTable = "adherence_entries"
	// AdherenceEntriesColumn is the table column denoting the adherence_entries relation/edge.
	AdherenceEntriesColumn = "prescription_id"
)

// Columns holds all SQL columns for prescription fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldPatientID,
	FieldMedicineName,
	FieldFoodInstruction,
	FieldStartDate,
	FieldEndDate,
	FieldNotes,
	FieldMorning,
	FieldAfternoon,
	FieldEvening,
	FieldNight,
	FieldDoctorName,
	FieldPrescribedOn,
	FieldSourceURL,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// MedicineNameValidator is a validator for the "medicine_name" field. It is called by the builders before save.
	MedicineNameValidator func(string) error
	// DefaultMorning holds the default value on creation for the "morning" field.
	DefaultMorning bool
	// DefaultAfternoon holds the default value on creation for the "afternoon" field.
	DefaultAfternoon bool
	// DefaultEvening holds the default value on creation for the "evening" field.
	DefaultEvening bool
	// DefaultNight holds the default value on creation for the "night" field.
	DefaultNight bool
	// SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	SourceURLValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Prescription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByMedicineName orders the results by the medicine_name field.
func ByMedicineName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicineName, opts...).ToFunc()
}

// ByFoodInstruction orders the results by the food_instruction field.
func ByFoodInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFoodInstruction, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByMorning orders the results by the morning field.
func ByMorning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMorning, opts...).ToFunc()
}

// ByAfternoon orders the results by the afternoon field.
func ByAfternoon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfternoon, opts...).ToFunc()
}

// ByEvening orders the results by the evening field.
func ByEvening(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvening, opts...).ToFunc()
}

// ByNight orders the results by the night field.
func ByNight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNight, opts...).ToFunc()
}

// ByDoctorName orders the results by the doctor_name field.
func ByDoctorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorName, opts...).ToFunc()
}

// ByPrescribedOn orders the results by the prescribed_on field.
func ByPrescribedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrescribedOn, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAdherenceEntriesCount orders the results by adherence_entries count.
func ByAdherenceEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAdherenceEntriesStep(), opts...)
	}
}

// ByAdherenceEntries orders the results by adherence_entries terms.
func ByAdherenceEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAdherenceEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAdherenceEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AdherenceEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AdherenceEntriesTable, AdherenceEntriesColumn),
	)
}
