// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/testresult"
)

// TestResult is the model entity for the TestResult schema.
type TestResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TestID holds the value of the "test_id" field.
	TestID uuid.UUID `json:"test_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// TestDate holds the value of the "test_date" field.
	TestDate time.Time `json:"test_date,omitempty"`
	// ComponentName holds the value of the "component_name" field.
	ComponentName string `json:"component_name,omitempty"`
	// ValueNum holds the value of the "value_num" field.
	ValueNum *float64 `json:"value_num,omitempty"`
	// ValueText holds the value of the "value_text" field.
	ValueText *string `json:"value_text,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// NormalMin holds the value of the "normal_min" field.
	NormalMin *float64 `json:"normal_min,omitempty"`
	// NormalMax holds the value of the "normal_max" field.
	NormalMax *float64 `json:"normal_max,omitempty"`
	// NormalText holds the value of the "normal_text" field.
	NormalText *string `json:"normal_text,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testresult.FieldValueNum, testresult.FieldNormalMin, testresult.FieldNormalMax:
			values[i] = new(sql.NullFloat64)
		case testresult.FieldComponentName, testresult.FieldValueText, testresult.FieldUnit, testresult.FieldNormalText, testresult.FieldSourceURL:
			values[i] = new(sql.NullString)
		case testresult.FieldTestDate, testresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case testresult.FieldID, testresult.FieldTestID, testresult.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestResult fields.
func (_m *TestResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case testresult.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case testresult.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case testresult.FieldTestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field test_date", values[i])
			} else if value.Valid {
				_m.TestDate = value.Time
			}
		case testresult.FieldComponentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field component_name", values[i])
			} else if value.Valid {
				_m.ComponentName = value.String
			}
		case testresult.FieldValueNum:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value_num", values[i])
			} else if value.Valid {
				_m.ValueNum = new(float64)
				*_m.ValueNum = value.Float64
			}
		case testresult.FieldValueText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_text", values[i])
			} else if value.Valid {
				_m.ValueText = new(string)
				*_m.ValueText = value.String
			}
		case testresult.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case testresult.FieldNormalMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field normal_min", values[i])
			} else if value.Valid {
				_m.NormalMin = new(float64)
				*_m.NormalMin = value.Float64
			}
		case testresult.FieldNormalMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field normal_max", values[i])
			} else if value.Valid {
				_m.NormalMax = new(float64)
				*_m.NormalMax = value.Float64
			}
		case testresult.FieldNormalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normal_text", values[i])
			} else if value.Valid {
				_m.NormalText = new(string)
				*_m.NormalText = value.String
			}
		case testresult.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case testresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestResult.
// This includes values selected through modifiers, order, etc.
func (_m *TestResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestResult.
// Note that you need to call TestResult.Unwrap() before calling this method if this TestResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestResult) Update() *TestResultUpdateOne {
	return NewTestResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestResult) Unwrap() *TestResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestResult) String() string {
	var builder strings.Builder
	builder.WriteString("TestResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("test_date=")
	builder.WriteString(_m.TestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("component_name=")
	builder.WriteString(_m.ComponentName)
	builder.WriteString(", ")
	if v := _m.ValueNum; v != nil {
		builder.WriteString("value_num=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValueText; v != nil {
		builder.WriteString("value_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NormalMin; v != nil {
		builder.WriteString("normal_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NormalMax; v != nil {
		builder.WriteString("normal_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NormalText; v != nil {
		builder.WriteString("normal_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestResults is a parsable slice of TestResult.
type TestResults []*TestResult
