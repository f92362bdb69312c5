package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	d.AddWarning("to_name_unresolved", "target not found", "sentiment", "txt", "text")
	d.AddInfo("note", "just saying", "", "")

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())
	assert.Equal(t, 2, d.Len())
	require.Len(t, d.ByCode("to_name_unresolved"), 1)

	d.AddError("broken", "bad thing", "x", "")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	assert.Equal(t, "broken", d.All()[0].Code)
	assert.EqualError(t, d.Error(), "[x]: [broken] bad thing")
}

func TestDiagnostic_String(t *testing.T) {
	diag := Diagnostic{
		Code:        "to_name_unresolved",
		Message:     "target not found",
		Tag:         "sentiment",
		Attr:        "txt",
		Suggestions: []string{"text"},
	}

	assert.Equal(t, "[sentiment] txt: [to_name_unresolved] target not found (did you mean text?)", diag.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnostics_ResetAndClone(t *testing.T) {
	var d Diagnostics

	d.AddWarning("a", "first", "", "", "x")
	d.AddWarning("b", "second", "", "")
	d.AddInfo("a", "third", "", "")

	c := d.Clone()
	d.Reset("a")

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "b", d.Warnings[0].Code)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"x"}, c.Warnings[0].Suggestions)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
