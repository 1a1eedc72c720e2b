package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMessage(t *testing.T) {
	for _, status := range KnownStatuses() {
		t.Run(string(status), func(t *testing.T) {
			msg, err := ExtractMessage(map[string]any{"homework_name": "hw1", "status": string(status)})
			require.NoError(t, err)
			verdict, ok := Verdict(status)
			require.True(t, ok)
			assert.Contains(t, msg, `"hw1"`)
			assert.Contains(t, msg, verdict)
		})
	}

	t.Run("MissingName", func(t *testing.T) {
		_, err := ExtractMessage(map[string]any{"status": "approved"})
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, FieldName, missing.Field)
	})

	t.Run("MissingStatus", func(t *testing.T) {
		_, err := ExtractMessage(map[string]any{"homework_name": "hw1"})
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, FieldStatus, missing.Field)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := ExtractMessage(map[string]any{"homework_name": "hw1", "status": "lost"})
		var unknown *UnknownStatusError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "lost", unknown.Status)
	})

	t.Run("RecordNotAnObject", func(t *testing.T) {
		_, err := ExtractMessage([]any{"hw1", "approved"})
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
	})
}

func TestVerdict(t *testing.T) {
	_, ok := Verdict("unknown")
	assert.False(t, ok)
	assert.Len(t, KnownStatuses(), 3)
}
