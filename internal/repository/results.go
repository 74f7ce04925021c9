package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack-labs/healthtrack/gen/ent"
	"github.com/healthtrack-labs/healthtrack/gen/ent/testresult"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/llm"
)

// ComponentGroup is one test component's history, newest first, for the
// trends dashboard.
type ComponentGroup struct {
	ComponentName string            `json:"component_name"`
	Entries       []*ent.TestResult `json:"entries"`
}

type TestResultRepository interface {
	// InsertResult flattens one extracted lab report into component rows
	// that all share a freshly generated test id. The insert is
	// all-or-nothing: any row failure rolls back the whole call.
	InsertResult(ctx context.Context, patientID uuid.UUID, fields llm.HealthRecordFields, sourceURL string) (uuid.UUID, []*ent.TestResult, error)

	// ListByComponent groups a patient's stored rows by component name.
	ListByComponent(ctx context.Context, patientID uuid.UUID) ([]ComponentGroup, error)

	// ListRows returns all rows for a patient ordered by test date.
	ListRows(ctx context.Context, patientID uuid.UUID, from, to *time.Time) ([]*ent.TestResult, error)
}

type testResultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTestResultRepository(client *ent.Client, logger *slog.Logger) TestResultRepository {
	return &testResultRepository{client: client, logger: logger}
}

func (r *testResultRepository) InsertResult(ctx context.Context, patientID uuid.UUID, fields llm.HealthRecordFields, sourceURL string) (uuid.UUID, []*ent.TestResult, error) {
	testDate, err := time.Parse("2006-01-02", fields.TestDate)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("parse test date %q: %v: %w", fields.TestDate, err, common.ErrValidation)
	}

	testID := uuid.New()
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("begin tx: %v: %w", err, common.ErrStorageFailed)
	}

	builders := make([]*ent.TestResultCreate, 0, len(fields.Components))
	for _, comp := range fields.Components {
		b := tx.TestResult.Create().
			SetTestID(testID).
			SetPatientID(patientID).
			SetTestDate(testDate).
			SetComponentName(comp.Name).
			SetSourceURL(sourceURL)

		// Numeric and textual measurements land in different columns,
		// decided by the value's runtime type. The matching normal-range
		// form follows the same split.
		if comp.Value.IsNumeric() {
			b.SetNillableValueNum(comp.Value.Num).
				SetNillableNormalMin(comp.NormalMin).
				SetNillableNormalMax(comp.NormalMax)
		} else {
			b.SetNillableValueText(comp.Value.Text)
			if comp.NormalText != "" {
				b.SetNillableNormalText(&comp.NormalText)
			}
		}
		if comp.Unit != "" {
			b.SetNillableUnit(&comp.Unit)
		}
		builders = append(builders, b)
	}

	rows, err := tx.TestResult.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Warn("test result rollback failed", "error", rbErr)
		}
		r.logger.Error("failed to insert test result", "patient_id", patientID, "error", err)
		return uuid.Nil, nil, fmt.Errorf("insert components: %v: %w", err, common.ErrStorageFailed)
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, nil, fmt.Errorf("commit: %v: %w", err, common.ErrStorageFailed)
	}

	r.logger.Info("stored test result", "test_id", testID, "components", len(rows))
	return testID, rows, nil
}

func (r *testResultRepository) ListRows(ctx context.Context, patientID uuid.UUID, from, to *time.Time) ([]*ent.TestResult, error) {
	q := r.client.TestResult.Query().Where(testresult.PatientID(patientID))
	if from != nil {
		q = q.Where(testresult.TestDateGTE(*from))
	}
	if to != nil {
		q = q.Where(testresult.TestDateLTE(*to))
	}
	rows, err := q.Order(testresult.ByTestDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list test results", "patient_id", patientID, "error", err)
		return nil, fmt.Errorf("list test results: %v: %w", err, common.ErrStorageFailed)
	}
	return rows, nil
}

func (r *testResultRepository) ListByComponent(ctx context.Context, patientID uuid.UUID) ([]ComponentGroup, error) {
	rows, err := r.client.TestResult.Query().
		Where(testresult.PatientID(patientID)).
		Order(testresult.ByComponentName(), testresult.ByTestDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to group test results", "patient_id", patientID, "error", err)
		return nil, fmt.Errorf("group test results: %v: %w", err, common.ErrStorageFailed)
	}

	var groups []ComponentGroup
	idx := map[string]int{}
	for _, row := range rows {
		i, ok := idx[row.ComponentName]
		if !ok {
			i = len(groups)
			idx[row.ComponentName] = i
			groups = append(groups, ComponentGroup{ComponentName: row.ComponentName})
		}
		groups[i].Entries = append(groups[i].Entries, row)
	}
	return groups, nil
}
