// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
)

// Prescription is the model entity for the Prescription schema.
type Prescription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID uuid.UUID `json:"group_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// MedicineName holds the value of the "medicine_name" field.
	MedicineName string `json:"medicine_name,omitempty"`
	// FoodInstruction holds the value of the "food_instruction" field.
	FoodInstruction string `json:"food_instruction,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate time.Time `json:"end_date,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Morning holds the value of the "morning" field.
	Morning bool `json:"morning,omitempty"`
	// Afternoon holds the value of the "afternoon" field.
	Afternoon bool `json:"afternoon,omitempty"`
	// Evening holds the value of the "evening" field.
	Evening bool `json:"evening,omitempty"`
	// Night holds the value of the "night" field.
	Night bool `json:"night,omitempty"`
	// DoctorName holds the value of the "doctor_name" field.
	DoctorName string `json:"doctor_name,omitempty"`
	// PrescribedOn holds the value of the "prescribed_on" field.
	PrescribedOn *time.Time `json:"prescribed_on,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PrescriptionQuery when eager-loading is set.
	Edges        PrescriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PrescriptionEdges holds the relations/edges for other nodes in the graph.
type PrescriptionEdges struct {
	// AdherenceEntries holds the value of the adherence_entries edge.
	AdherenceEntries []*AdherenceEntry `json:"adherence_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AdherenceEntriesOrErr returns the AdherenceEntries value or an error if the edge
// was not loaded in eager-loading.
func (e PrescriptionEdges) AdherenceEntriesOrErr() ([]*AdherenceEntry, error) {
	if e.loadedTypes[0] {
		return e.AdherenceEntries, nil
	}
	return nil, &NotLoadedError{edge: "adherence_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prescription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prescription.FieldMorning, prescription.FieldAfternoon, prescription.FieldEvening, prescription.FieldNight:
			values[i] = new(sql.NullBool)
		case prescription.FieldMedicineName, prescription.FieldFoodInstruction, prescription.FieldNotes, prescription.FieldDoctorName, prescription.FieldSourceURL:
			values[i] = new(sql.NullString)
		case prescription.FieldStartDate, prescription.FieldEndDate, prescription.FieldPrescribedOn, prescription.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case prescription.FieldID, prescription.FieldGroupID, prescription.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prescription fields.
func (_m *Prescription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prescription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case prescription.FieldGroupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value != nil {
				_m.GroupID = *value
			}
		case prescription.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case prescription.FieldMedicineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medicine_name", values[i])
			} else if value.Valid {
				_m.MedicineName = value.String
			}
		case prescription.FieldFoodInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field food_instruction", values[i])
			} else if value.Valid {
				_m.FoodInstruction = value.String
			}
		case prescription.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case prescription.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.Time
			}
		case prescription.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case prescription.FieldMorning:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field morning", values[i])
			} else if value.Valid {
				_m.Morning = value.Bool
			}
		case prescription.FieldAfternoon:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field afternoon", values[i])
			} else if value.Valid {
				_m.Afternoon = value.Bool
			}
		case prescription.FieldEvening:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field evening", values[i])
			} else if value.Valid {
				_m.Evening = value.Bool
			}
		case prescription.FieldNight:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field night", values[i])
			} else if value.Valid {
				_m.Night = value.Bool
			}
		case prescription.FieldDoctorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_name", values[i])
			} else if value.Valid {
				_m.DoctorName = value.String
			}
		case prescription.FieldPrescribedOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field prescribed_on", values[i])
			} else if value.Valid {
				_m.PrescribedOn = new(time.Time)
				*_m.PrescribedOn = value.Time
			}
		case prescription.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case prescription.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Prescription.
// This includes values selected through modifiers, order, etc.
func (_m *Prescription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAdherenceEntries queries the "adherence_entries" edge of the Prescription entity.
func (_m *Prescription) QueryAdherenceEntries() *AdherenceEntryQuery {
	return NewPrescriptionClient(_m.config).QueryAdherenceEntries(_m)
}

// Update returns a builder for updating this Prescription.
// Note that you need to call Prescription.Unwrap() before calling this method if this Prescription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prescription) Update() *PrescriptionUpdateOne {
	return NewPrescriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prescription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prescription) Unwrap() *Prescription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prescription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prescription) String() string {
	var builder strings.Builder
	builder.WriteString("Prescription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("medicine_name=")
	builder.WriteString(_m.MedicineName)
	builder.WriteString(", ")
	builder.WriteString("food_instruction=")
	builder.WriteString(_m.FoodInstruction)
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("morning=")
	builder.WriteString(fmt.Sprintf("%v", _m.Morning))
	builder.WriteString(", ")
	builder.WriteString("afternoon=")
	builder.WriteString(fmt.Sprintf("%v", _m.Afternoon))
	builder.WriteString(", ")
	builder.WriteString("evening=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evening))
	builder.WriteString(", ")
	builder.WriteString("night=")
	builder.WriteString(fmt.Sprintf("%v", _m.Night))
	builder.WriteString(", ")
	builder.WriteString("doctor_name=")
	builder.WriteString(_m.DoctorName)
	builder.WriteString(", ")
	if v := _m.PrescribedOn; v != nil {
		builder.WriteString("prescribed_on=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Prescriptions is a parsable slice of Prescription.
type Prescriptions []*Prescription
