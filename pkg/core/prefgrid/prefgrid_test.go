package prefgrid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

func testWeek() allocator.Week {
	return allocator.Week{Days: []string{"Mon", "Tue"}, ShiftTypes: []string{"Day", "Night"}}
}

func testRoster() []allocator.Employee {
	return []allocator.Employee{
		{ID: "id-dana", Name: "Dana"},
		{ID: "id-omer", Name: "Omer"},
	}
}

func TestParseCSV_Valid(t *testing.T) {
	input := "Employee,Mon_Day,Mon_Night,Tue_Day,Tue_Night\n" +
		"dana, 1,0,,\n" +
		"Omer,,,1,\n"

	result, err := ParseCSV(strings.NewReader(input), testRoster(), testWeek())
	require.NoError(t, err)

	assert.Equal(t, allocator.RawPreferences{
		"id-dana": {"Mon_Day": "1", "Mon_Night": "0", "Tue_Day": "", "Tue_Night": ""},
		"id-omer": {"Mon_Day": "", "Mon_Night": "", "Tue_Day": "1", "Tue_Night": ""},
	}, result.Preferences)
	assert.Equal(t, 3, result.Applied)
	assert.Empty(t, result.Warnings)
}

func TestParseCSV_WithBOM(t *testing.T) {
	input := "\ufeffEmployee,Mon_Day\nDana,1\n"

	result, err := ParseCSV(strings.NewReader(input), testRoster(), testWeek())
	require.NoError(t, err)

	assert.Equal(t, "1", result.Preferences["id-dana"]["Mon_Day"])
}

func TestParseCSV_Warnings(t *testing.T) {
	input := "Employee,Mon_Day,Wed_Day,Tue_Night\n" +
		"Dana,1,1,maybe\n" +
		"Nobody,1,,\n" +
		"Omer,1\n"

	result, err := ParseCSV(strings.NewReader(input), testRoster(), testWeek())
	require.NoError(t, err)

	require.Len(t, result.Warnings, 4)
	assert.Contains(t, result.Warnings[0], "Wed_Day")
	assert.Contains(t, result.Warnings[1], "maybe")
	assert.Contains(t, result.Warnings[2], "Nobody")
	assert.Contains(t, result.Warnings[3], "Row 4")

	// Unmapped columns and invalid values leave the slot empty
	assert.Equal(t, map[string]string{"Mon_Day": "1", "Mon_Night": "", "Tue_Day": "", "Tue_Night": ""}, result.Preferences["id-dana"])
	assert.NotContains(t, result.Preferences, "id-omer")
	assert.Equal(t, 1, result.Applied)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "", expected: ErrTooFewRows},
		{name: "header only", input: "Employee,Mon_Day\n\n", expected: ErrTooFewRows},
		{name: "wrong header", input: "Name,Mon_Day\nDana,1\n", expected: ErrHeaderMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCSV(strings.NewReader(tt.input), testRoster(), testWeek())
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseCSV_HeaderCaseInsensitive(t *testing.T) {
	input := "employee,Mon_Day\nOMER,0\n"

	result, err := ParseCSV(strings.NewReader(input), testRoster(), testWeek())
	require.NoError(t, err)

	assert.Equal(t, "0", result.Preferences["id-omer"]["Mon_Day"])
}

func TestParseSheetValues_PadsShortRows(t *testing.T) {
	values := [][]interface{}{
		{"Employee", "Mon_Day", "Mon_Night", "Tue_Day", "Tue_Night"},
		{"Dana", "1"},
		{},
		{"Omer", "", "0", "", float64(1)},
	}

	result, err := ParseSheetValues(values, testRoster(), testWeek())
	require.NoError(t, err)

	assert.Empty(t, result.Warnings)
	assert.Equal(t, "1", result.Preferences["id-dana"]["Mon_Day"])
	assert.Equal(t, "", result.Preferences["id-dana"]["Tue_Night"])
	assert.Equal(t, "0", result.Preferences["id-omer"]["Mon_Night"])
	assert.Equal(t, "1", result.Preferences["id-omer"]["Tue_Night"])
}

func TestParseSheetValues_TooFewRows(t *testing.T) {
	_, err := ParseSheetValues([][]interface{}{{"Employee", "Mon_Day"}}, testRoster(), testWeek())
	assert.ErrorIs(t, err, ErrTooFewRows)
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer

	err := WriteTemplate(&buf, testRoster(), testWeek())
	require.NoError(t, err)

	expected := "\ufeffEmployee,Mon_Day,Mon_Night,Tue_Day,Tue_Night\n" +
		"Dana,,,,\n" +
		"Omer,,,,\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTemplate_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf, testRoster(), testWeek()))

	result, err := ParseCSV(&buf, testRoster(), testWeek())
	require.NoError(t, err)

	assert.Len(t, result.Preferences, 2)
	assert.Zero(t, result.Applied)
	assert.Empty(t, result.Warnings)
}
