// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdherenceEntry is the predicate function for adherenceentry builders.
type AdherenceEntry func(*sql.Selector)

// ImagingResult is the predicate function for imagingresult builders.
type ImagingResult func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// TestResult is the predicate function for testresult builders.
type TestResult func(*sql.Selector)
