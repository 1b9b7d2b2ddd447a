package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	PreferredTime string `json:"preferred_time"`
	EarliestHour  int    `json:"earliest_hour"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"preferred_time":"morning","earliest_hour":7}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "morning", result.PreferredTime)
	assert.Equal(t, 7, result.EarliestHour)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"preferred_time\":\"evening\",\"earliest_hour\":18}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "evening", result.PreferredTime)
	assert.Equal(t, 18, result.EarliestHour)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is my analysis:\n{\"preferred_time\":\"anytime\",\"earliest_hour\":9}\nHope that helps!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "anytime", result.PreferredTime)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		PreferredTime string            `json:"preferred_time"`
		Extra         map[string]string `json:"extra"`
	}
	raw := `{"preferred_time":"morning","extra":{"note":"quiet {house}"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "morning", result.PreferredTime)
	assert.Equal(t, "quiet {house}", result.Extra["note"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I cannot determine a good time for this task."
	_, err := ExtractJSON[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"preferred_time":"morning", broken}`
	_, err := ExtractJSON[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"preferred_time":"morning","earliest_hour":30}`
	validator := func(p testPayload) error {
		if p.EarliestHour < 0 || p.EarliestHour > 23 {
			return fmt.Errorf("earliest_hour must be in [0,23], got %d", p.EarliestHour)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}
