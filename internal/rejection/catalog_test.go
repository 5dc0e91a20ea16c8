// internal/rejection/catalog_test.go
package rejection

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_DeclarationOrder(t *testing.T) {
	expected := []string{
		"not_ai_safety",
		"early_stage_no_team",
		"no_tech_cofounder",
		"too_conceptual",
		"safety_angle_unclear",
		"not_for_profit",
		"general_not_aligned",
	}

	for round := 0; round < 3; round++ {
		entries := Entries()
		require.Len(t, entries, len(expected))
		for i, e := range entries {
			assert.Equal(t, expected[i], e.Tag)
			assert.Equal(t, Reason(i), e.Reason)
			assert.NotEmpty(t, e.Summary)
		}
	}
	assert.Equal(t, len(expected), Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	entries := Entries()
	entries[0].Summary = "changed"

	tmpl, ok := Lookup("not_ai_safety")
	require.True(t, ok)
	assert.Equal(t, "Product is not focused on AI safety", tmpl.Summary)
}

func TestParseReason(t *testing.T) {
	r, ok := ParseReason("safety_angle_unclear")
	require.True(t, ok)
	assert.Equal(t, ReasonSafetyAngleUnclear, r)
	assert.Equal(t, "safety_angle_unclear", r.String())

	_, ok = ParseReason("nonexistent_tag")
	assert.False(t, ok)

	_, ok = ParseReason("")
	assert.False(t, ok)
}

func TestReason_OutOfRange(t *testing.T) {
	_, ok := Reason(-1).Template()
	assert.False(t, ok)
	_, ok = reasonCount.Template()
	assert.False(t, ok)
	assert.Empty(t, reasonCount.Tag())
}

func TestReasonAt(t *testing.T) {
	tests := []struct {
		index    int
		expected Reason
		ok       bool
	}{
		{index: 1, expected: ReasonNotAISafety, ok: true},
		{index: 7, expected: ReasonGeneralNotAligned, ok: true},
		{index: 0, ok: false},
		{index: 8, ok: false},
		{index: -3, ok: false},
	}

	for _, tt := range tests {
		r, ok := ReasonAt(tt.index)
		assert.Equal(t, tt.ok, ok, "index %d", tt.index)
		if tt.ok {
			assert.Equal(t, tt.expected, r)
		}
	}
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCatalog(&buf))
	assert.Contains(t, buf.String(), "  1. not_ai_safety: Product is not focused on AI safety\n")
	assert.Contains(t, buf.String(), "  7. general_not_aligned: General non-alignment with SAIF focus\n")
}
