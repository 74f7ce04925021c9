package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "single object becomes one-element array", raw: `{"test_date":"2024-06-01"}`, want: 1},
		{name: "array passes through", raw: `[{"a":1},{"a":2},{"a":3}]`, want: 3},
		{name: "empty array", raw: `[]`, want: 0},
		{name: "leading whitespace", raw: "\n  [{\"a\":1}]", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := NormalizeRecords([]byte(tt.raw))
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestNormalizeRecordsRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "[{]", "not json"} {
		_, err := NormalizeRecords([]byte(raw))
		assert.Error(t, err, "raw %q", raw)
	}
}
