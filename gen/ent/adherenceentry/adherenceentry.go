// Code generated by ent, DO NOT EDIT.

package adherenceentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the adherenceentry type in the database.
	Label = "adherence_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPrescriptionID holds the string denoting the prescription_id field in the database.
	FieldPrescriptionID = "prescription_id"
	// FieldMedicineName holds the string denoting the medicine_name field in the database.
	FieldMedicineName = "medicine_name"
	// FieldEntryDate holds the string denoting the entry_date field in the database.
	FieldEntryDate = "entry_date"
	// FieldMorning holds the string denoting the morning field in the database.
	FieldMorning = "morning"
	// FieldAfternoon holds the string denoting the afternoon field in the database.
	FieldAfternoon = "afternoon"
	// FieldEvening holds the string denoting the evening field in the database.
	FieldEvening = "evening"
	// FieldNight holds the string denoting the night field in the database.
	FieldNight = "night"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePrescription holds the string denoting the prescription edge name in mutations.
	EdgePrescription = "prescription"
	// Table holds the table name of the adherenceentry in the database.
	Table = "adherence_entries"
	// PrescriptionTable is the table that holds the prescription relation/edge.
	PrescriptionTable = "adherence_entries"
	// PrescriptionInverseTable is the table name for the Prescription entity.
	// It exists in this package in order to avoid circular dependency with the "prescription" package.
	PrescriptionInverseTable = "prescriptions"
	// PrescriptionColumn is the table column denoting the prescription relation/edge.
	PrescriptionColumn = "prescription_id"
)

// Columns holds all SQL columns for adherenceentry fields.
var Columns = []string{
	FieldID,
	FieldPrescriptionID,
	FieldMedicineName,
	FieldEntryDate,
	FieldMorning,
	FieldAfternoon,
	FieldEvening,
	FieldNight,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AdherenceEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPrescriptionID orders the results by the prescription_id field.
func ByPrescriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrescriptionID, opts...).ToFunc()
}

// ByMedicineName orders the results by the medicine_name field.
func ByMedicineName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicineName, opts...).ToFunc()
}

// ByEntryDate orders the results by the entry_date field.
func ByEntryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryDate, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPrescriptionField orders the results by prescription field.
func ByPrescriptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPrescriptionStep(), sql.OrderByField(field, opts...))
	}
}
func newPrescriptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PrescriptionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PrescriptionTable, PrescriptionColumn),
	)
}
