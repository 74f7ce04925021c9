// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/healthtrack-labs/healthtrack/db/ent/schema"
	"github.com/healthtrack-labs/healthtrack/gen/ent/adherenceentry"
	"github.com/healthtrack-labs/healthtrack/gen/ent/imagingresult"
	"github.com/healthtrack-labs/healthtrack/gen/ent/prescription"
	"github.com/healthtrack-labs/healthtrack/gen/ent/testresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adherenceentryFields := schema.AdherenceEntry{}.Fields()
	_ = adherenceentryFields
	// adherenceentryDescMedicineName is the schema descriptor for medicine_name field.
	adherenceentryDescMedicineName := adherenceentryFields[2].Descriptor()
	// adherenceentry.MedicineNameValidator is a validator for the "medicine_name" field. It is called by the builders before save.
	adherenceentry.MedicineNameValidator = adherenceentryDescMedicineName.Validators[0].(func(string) error)
	// adherenceentryDescCreatedAt is the schema descriptor for created_at field.
	adherenceentryDescCreatedAt := adherenceentryFields[8].Descriptor()
	// adherenceentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	adherenceentry.DefaultCreatedAt = adherenceentryDescCreatedAt.Default.(func() time.Time)
	// adherenceentryDescUpdatedAt is the schema descriptor for updated_at field.
	adherenceentryDescUpdatedAt := adherenceentryFields[9].Descriptor()
	// adherenceentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adherenceentry.DefaultUpdatedAt = adherenceentryDescUpdatedAt.Default.(func() time.Time)
	// adherenceentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adherenceentry.UpdateDefaultUpdatedAt = adherenceentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// adherenceentryDescID is the schema descriptor for id field.
	adherenceentryDescID := adherenceentryFields[0].Descriptor()
	// adherenceentry.DefaultID holds the default value on creation for the id field.
	adherenceentry.DefaultID = adherenceentryDescID.Default.(func() uuid.UUID)
	imagingresultFields := schema.ImagingResult{}.Fields()
	_ = imagingresultFields
	// imagingresultDescTitle is the schema descriptor for title field.
	imagingresultDescTitle := imagingresultFields[3].Descriptor()
	// imagingresult.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	imagingresult.TitleValidator = imagingresultDescTitle.Validators[0].(func(string) error)
	// imagingresultDescSourceURL is the schema descriptor for source_url field.
	imagingresultDescSourceURL := imagingresultFields[6].Descriptor()
	// imagingresult.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	imagingresult.SourceURLValidator = imagingresultDescSourceURL.Validators[0].(func(string) error)
	// imagingresultDescCreatedAt is the schema descriptor for created_at field.
	imagingresultDescCreatedAt := imagingresultFields[7].Descriptor()
	// imagingresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	imagingresult.DefaultCreatedAt = imagingresultDescCreatedAt.Default.(func() time.Time)
	// imagingresultDescID is the schema descriptor for id field.
	imagingresultDescID := imagingresultFields[0].Descriptor()
	// imagingresult.DefaultID holds the default value on creation for the id field.
	imagingresult.DefaultID = imagingresultDescID.Default.(func() uuid.UUID)
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescMedicineName is the schema descriptor for medicine_name field.
	prescriptionDescMedicineName := prescriptionFields[3].Descriptor()
	// prescription.MedicineNameValidator is a validator for the "medicine_name" field. It is called by the builders before save.
	prescription.MedicineNameValidator = prescriptionDescMedicineName.Validators[0].(func(string) error)
	// prescriptionDescMorning is the schema descriptor for morning field.
	prescriptionDescMorning := prescriptionFields[8].Descriptor()
	// prescription.DefaultMorning holds the default value on creation for the morning field.
	prescription.DefaultMorning = prescriptionDescMorning.Default.(bool)
	// prescriptionDescAfternoon is the schema descriptor for afternoon field.
	prescriptionDescAfternoon := prescriptionFields[9].Descriptor()
	// prescription.DefaultAfternoon holds the default value on creation for the afternoon field.
	prescription.DefaultAfternoon = prescriptionDescAfternoon.Default.(bool)
	// prescriptionDescEvening is the schema descriptor for evening field.
	prescriptionDescEvening := prescriptionFields[10].Descriptor()
	// prescription.DefaultEvening holds the default value on creation for the evening field.
	prescription.DefaultEvening = prescriptionDescEvening.Default.(bool)
	// prescriptionDescNight is the schema descriptor for night field.
	prescriptionDescNight := prescriptionFields[11].Descriptor()
	// prescription.DefaultNight holds the default value on creation for the night field.
	prescription.DefaultNight = prescriptionDescNight.Default.(bool)
	// prescriptionDescSourceURL is the schema descriptor for source_url field.
	prescriptionDescSourceURL := prescriptionFields[14].Descriptor()
	// prescription.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	prescription.SourceURLValidator = prescriptionDescSourceURL.Validators[0].(func(string) error)
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionFields[15].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionFields[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	testresultFields := schema.TestResult{}.Fields()
	_ = testresultFields
	// testresultDescComponentName is the schema descriptor for component_name field.
	testresultDescComponentName := testresultFields[4].Descriptor()
	// testresult.ComponentNameValidator is a validator for the "component_name" field. It is called by the builders before save.
	testresult.ComponentNameValidator = testresultDescComponentName.Validators[0].(func(string) error)
	// testresultDescSourceURL is the schema descriptor for source_url field.
	testresultDescSourceURL := testresultFields[11].Descriptor()
	// testresult.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	testresult.SourceURLValidator = testresultDescSourceURL.Validators[0].(func(string) error)
	// testresultDescCreatedAt is the schema descriptor for created_at field.
	testresultDescCreatedAt := testresultFields[12].Descriptor()
	// testresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	testresult.DefaultCreatedAt = testresultDescCreatedAt.Default.(func() time.Time)
	// testresultDescID is the schema descriptor for id field.
	testresultDescID := testresultFields[0].Descriptor()
	// testresult.DefaultID holds the default value on creation for the id field.
	testresult.DefaultID = testresultDescID.Default.(func() uuid.UUID)
}
