// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
)

// ImagingResult is the model entity for the ImagingResult schema.
type ImagingResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// TestDate holds the value of the "test_date" field.
	TestDate time.Time `json:"test_date,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Observations holds the value of the "observations" field.
	Observations string `json:"observations,omitempty"`
	// DoctorName holds the value of the "doctor_name" field.
	DoctorName string `json:"doctor_name,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImagingResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case imagingresult.FieldTitle, imagingresult.FieldObservations, imagingresult.FieldDoctorName, imagingresult.FieldSourceURL:
			values[i] = new(sql.NullString)
		case imagingresult.FieldTestDate, imagingresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case imagingresult.FieldID, imagingresult.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImagingResult fields.
func (_m *ImagingResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case imagingresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case imagingresult.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case imagingresult.FieldTestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field test_date", values[i])
			} else if value.Valid {
				_m.TestDate = value.Time
			}
		case imagingresult.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case imagingresult.FieldObservations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				_m.Observations = value.String
			}
		case imagingresult.FieldDoctorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_name", values[i])
			} else if value.Valid {
				_m.DoctorName = value.String
			}
		case imagingresult.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case imagingresult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ImagingResult.
// This includes values selected through modifiers, order, etc.
func (_m *ImagingResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImagingResult.
// Note that you need to call ImagingResult.Unwrap() before calling this method if this ImagingResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImagingResult) Update() *ImagingResultUpdateOne {
	return NewImagingResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImagingResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImagingResult) Unwrap() *ImagingResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImagingResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImagingResult) String() string {
	var builder strings.Builder
	builder.WriteString("ImagingResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("test_date=")
	builder.WriteString(_m.TestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("observations=")
	builder.WriteString(_m.Observations)
	builder.WriteString(", ")
	builder.WriteString("doctor_name=")
	builder.WriteString(_m.DoctorName)
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImagingResults is a parsable slice of ImagingResult.
type ImagingResults []*ImagingResult
