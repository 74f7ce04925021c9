// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the testresult type in the database.
	Label = "test_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldTestDate holds the string denoting the test_date field in the database.
	FieldTestDate = "test_date"
	// FieldComponentName holds the string denoting the component_name field in the database.
	FieldComponentName = "component_name"
	// FieldValueNum holds the string denoting the value_num field in the database.
	FieldValueNum = "value_num"
	// FieldValueText holds the string denoting the value_text field in the database.
	FieldValueText = "value_text"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldNormalMin holds the string denoting the normal_min field in the database.
	FieldNormalMin = "normal_min"
	// FieldNormalMax holds the string denoting the normal_max field in the database.
	FieldNormalMax = "normal_max"
	// FieldNormalText holds the string denoting the normal_text field in the database.
	FieldNormalText = "normal_text"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the testresult in the database.
	Table = "test_results"
)

// Columns holds all SQL columns for testresult fields.
var Columns = []string{
	FieldID,
	FieldTestID,
	FieldPatientID,
	FieldTestDate,
	FieldComponentName,
	FieldValueNum,
	FieldValueText,
	FieldUnit,
	FieldNormalMin,
	FieldNormalMax,
	FieldNormalText,
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
	// ComponentNameValidator is a validator for the "component_name" field. It is called by the builders before save.
	ComponentNameValidator func(string) error
	// SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	SourceURLValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TestResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByTestDate orders the results by the test_date field.
func ByTestDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestDate, opts...).ToFunc()
}

// ByComponentName orders the results by the component_name field.
func ByComponentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponentName, opts...).ToFunc()
}

// ByValueNum orders the results by the value_num field.
func ByValueNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueNum, opts...).ToFunc()
}

// ByValueText orders the results by the value_text field.
func ByValueText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueText, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByNormalMin orders the results by the normal_min field.
func ByNormalMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalMin, opts...).ToFunc()
}

// ByNormalMax orders the results by the normal_max field.
func ByNormalMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalMax, opts...).ToFunc()
}

// ByNormalText orders the results by the normal_text field.
func ByNormalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalText, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
