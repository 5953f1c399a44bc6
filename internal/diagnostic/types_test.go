package diagnostic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/mapping"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:        "unknown_field",
		Message:     "no field Emial",
		Source:      "store",
		FieldPath:   "Customer.Emial",
		Suggestions: []string{"Email"},
	}
	assert.Equal(t, "[store] Customer.Emial: [unknown_field] no field Emial (did you mean Email?)", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestAddProblems(t *testing.T) {
	var diags Diagnostics
	diags.AddProblems([]mapping.Problem{
		{Code: "ignored_attribute", Message: "len has no effect"},
		{Code: "invalid_range", Message: "min is greater than max", Fatal: true},
	}, "store", "Order.Total")

	require.Len(t, diags.Errors, 1)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "invalid_range", diags.Errors[0].Code)
	assert.Equal(t, DiagnosticWarning, diags.Warnings[0].Severity)
	assert.True(t, diags.HasErrors())
	assert.EqualError(t, diags.Error(), "[store] Order.Total: [invalid_range] min is greater than max")
}

func TestPrintOrdersBySeverityAndPath(t *testing.T) {
	var diags Diagnostics
	diags.AddInfo("checked", "2 types", "", "")
	diags.AddWarning("w", "second", "b", "B.X")
	diags.AddWarning("w", "first", "a", "A.X")
	diags.AddError("e", "broken", "b", "B.Y")

	var other Diagnostics
	other.AddError("e", "also broken", "a", "A.Y")
	diags.Merge(other)

	assert.Equal(t, 5, diags.Len())

	var buf bytes.Buffer
	require.NoError(t, diags.Print(&buf))
	assert.Equal(t, `error: [a] A.Y: [e] also broken
error: [b] B.Y: [e] broken
warning: [a] A.X: [w] first
warning: [b] B.X: [w] second
info: [checked] 2 types
`, buf.String())
}

func TestValidDiagnostics(t *testing.T) {
	var diags Diagnostics
	assert.True(t, diags.IsValid())
	assert.NoError(t, diags.Error())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
