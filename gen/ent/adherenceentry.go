// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
)

// AdherenceEntry is the model entity for the AdherenceEntry schema.
type AdherenceEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PrescriptionID holds the value of the "prescription_id" field.
	PrescriptionID uuid.UUID `json:"prescription_id,omitempty"`
	// MedicineName holds the value of the "medicine_name" field.
	MedicineName string `json:"medicine_name,omitempty"`
	// EntryDate holds the value of the "entry_date" field.
	EntryDate time.Time `json:"entry_date,omitempty"`
	// Morning holds the value of the "morning" field.
	Morning *bool `json:"morning,omitempty"`
	// Afternoon holds the value of the "afternoon" field.
	Afternoon *bool `json:"afternoon,omitempty"`
	// Evening holds the value of the "evening" field.
	Evening *bool `json:"evening,omitempty"`
	// Night holds the value of the "night" field.
	Night *bool `json:"night,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AdherenceEntryQuery when eager-loading is set.
	Edges        AdherenceEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AdherenceEntryEdges holds the relations/edges for other nodes in the graph.
type AdherenceEntryEdges struct {
	// Prescription holds the value of the prescription edge.
	Prescription *Prescription `json:"prescription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PrescriptionOrErr returns the Prescription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AdherenceEntryEdges) PrescriptionOrErr() (*Prescription, error) {
	if e.Prescription != nil {
		return e.Prescription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prescription.Label}
	}
	return nil, &NotLoadedError{edge: "prescription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdherenceEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adherenceentry.FieldMorning, adherenceentry.FieldAfternoon, adherenceentry.FieldEvening, adherenceentry.FieldNight:
			values[i] = new(sql.NullBool)
		case adherenceentry.FieldMedicineName:
			values[i] = new(sql.NullString)
		case adherenceentry.FieldEntryDate, adherenceentry.FieldCreatedAt, adherenceentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case adherenceentry.FieldID, adherenceentry.FieldPrescriptionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdherenceEntry fields.
func (_m *AdherenceEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adherenceentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case adherenceentry.FieldPrescriptionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field prescription_id", values[i])
			} else if value != nil {
				_m.PrescriptionID = *value
			}
		case adherenceentry.FieldMedicineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medicine_name", values[i])
			} else if value.Valid {
				_m.MedicineName = value.String
			}
		case adherenceentry.FieldEntryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field entry_date", values[i])
			} else if value.Valid {
				_m.EntryDate = value.Time
			}
		case adherenceentry.FieldMorning:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field morning", values[i])
			} else if value.Valid {
				_m.Morning = new(bool)
				*_m.Morning = value.Bool
			}
		case adherenceentry.FieldAfternoon:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field afternoon", values[i])
			} else if value.Valid {
				_m.Afternoon = new(bool)
				*_m.Afternoon = value.Bool
			}
		case adherenceentry.FieldEvening:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field evening", values[i])
			} else if value.Valid {
				_m.Evening = new(bool)
				*_m.Evening = value.Bool
			}
		case adherenceentry.FieldNight:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field night", values[i])
			} else if value.Valid {
				_m.Night = new(bool)
				*_m.Night = value.Bool
			}
		case adherenceentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case adherenceentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdherenceEntry.
// This includes values selected through modifiers, order, etc.
func (_m *AdherenceEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPrescription queries the "prescription" edge of the AdherenceEntry entity.
func (_m *AdherenceEntry) QueryPrescription() *PrescriptionQuery {
	return NewAdherenceEntryClient(_m.config).QueryPrescription(_m)
}

// Update returns a builder for updating this AdherenceEntry.
// Note that you need to call AdherenceEntry.Unwrap() before calling this method if this AdherenceEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdherenceEntry) Update() *AdherenceEntryUpdateOne {
	return NewAdherenceEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdherenceEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdherenceEntry) Unwrap() *AdherenceEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdherenceEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdherenceEntry) String() string {
	var builder strings.Builder
	builder.WriteString("AdherenceEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prescription_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrescriptionID))
	builder.WriteString(", ")
	builder.WriteString("medicine_name=")
	builder.WriteString(_m.MedicineName)
	builder.WriteString(", ")
	builder.WriteString("entry_date=")
	builder.WriteString(_m.EntryDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Morning; v != nil {
		builder.WriteString("morning=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Afternoon; v != nil {
		builder.WriteString("afternoon=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Evening; v != nil {
		builder.WriteString("evening=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Night; v != nil {
		builder.WriteString("night=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdherenceEntries is a parsable slice of AdherenceEntry.
type AdherenceEntries []*AdherenceEntry
