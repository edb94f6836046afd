package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	_ "time/tzdata"

	"support-kit/core/jsondecode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with fresh flag values and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATE_TIMEZONE", "UTC")

	timezoneFlag, queryFlag, fileFlag, pathFlag, tableFlag = "", "", "", "", ""
	pageFlag, perPageFlag = 1, 0

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

func TestDateShift(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"NextMonthClamps", []string{"20130131120000", "next-month"}, "20130228120000"},
		{"PreviousHalfYearRestoresDay", []string{"20130831120000", "prev-half-year"}, "20130231120000"},
		{"Chained", []string{"20240305140709", "begin-of-day", "next-week", "prev-second"}, "20240311235959"},
		{"EndOfDay", []string{"20240305140709", "end-of-day"}, "20240305235959"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", append([]string{"date", "shift"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestDateShift_Timezone(t *testing.T) {
	out, err := run(t, "", "date", "shift", "--timezone", "Europe/Berlin", "20141026000000", "next-day")
	require.NoError(t, err)
	assert.Equal(t, "20141027000000\n", out)
}

func TestDateShift_UnknownOperation(t *testing.T) {
	_, err := run(t, "", "date", "shift", "20240305140709", "sideways")
	assert.ErrorContains(t, err, `unknown shift operation "sideways"`)
}

func TestDateShow(t *testing.T) {
	out, err := run(t, "", "date", "show", "20240305140709")
	require.NoError(t, err)

	assert.Contains(t, out, "Timestamp: 20240305140709")
	assert.Contains(t, out, "Date: 2024-03-05")
	assert.Contains(t, out, "Time: 14:07:09")
	assert.Contains(t, out, "Weekday: Tuesday")
	assert.Contains(t, out, "ISO Week: 10")
	assert.Contains(t, out, "RFC3339: 2024-03-05T14:07:09+00:00")
	assert.Contains(t, out, "Unix: 1709647629")
}

func TestDateShow_Epoch(t *testing.T) {
	out, err := run(t, "", "date", "show", "12345678")
	require.NoError(t, err)
	assert.Contains(t, out, "Timestamp: 19700523212118")
}

func TestDateShow_Garbage(t *testing.T) {
	_, err := run(t, "", "date", "show", "tomorrow")
	assert.ErrorContains(t, err, "neither a timestamp nor epoch seconds")
}

func TestDateFormat(t *testing.T) {
	out, err := run(t, "", "date", "format", "20240305140709", `Y-m-d H:i:s \a\t D`)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05 14:07:09 at Tue\n", out)
}

func TestDateValid(t *testing.T) {
	out, err := run(t, "", "date", "valid", "20240305140709")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "", "date", "valid", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestDateAddAndDiff(t *testing.T) {
	out, err := run(t, "", "date", "add", "20240305140709", "2 days 3 hours")
	require.NoError(t, err)
	assert.Equal(t, "20240307170709\n", out)

	out, err = run(t, "", "date", "diff", "20240101000000", "20240305000000")
	require.NoError(t, err)
	assert.Equal(t, "2 months 4 days (64 days)\n", out)
}

func TestSearch(t *testing.T) {
	out, err := run(t, "", "search", "--query", "Foo", "Foo", "Bar", "Baz")
	require.NoError(t, err)
	assert.Equal(t, "16100\n", out)

	out, err = run(t, "", "search", "-q", "")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestSearch_RankLines(t *testing.T) {
	stdin := "Alice Smith\nBobby Tables\nBob Jones\nCarol White\n"

	out, err := run(t, stdin, "search", "-q", "bob", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "Bob Jones\nBobby Tables\n", out)
}

func TestJSON(t *testing.T) {
	out, err := run(t, `{"name":"Foo","roles":["admin"]}`, "json", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"Foo\",\n  \"roles\": [\"admin\"]\n}\n", out)

	out, err = run(t, `{"name":"Foo","roles":["admin"]}`, "json", "--path", "roles.0", "-")
	require.NoError(t, err)
	assert.Equal(t, "\"admin\"\n", out)

	_, err = run(t, `{"name":"Foo"}`, "json", "--path", "missing", "-")
	assert.ErrorContains(t, err, `path "missing" not found`)
}

func TestJSON_Invalid(t *testing.T) {
	_, err := run(t, `{"bar:"baz}`, "json", "-")
	assert.ErrorIs(t, err, jsondecode.ErrInvalidJSONFormat)
}

func TestJSON_MissingFile(t *testing.T) {
	_, err := run(t, "", "json", "does-not-exist.json")
	assert.ErrorContains(t, err, "failed to read does-not-exist.json")
}

func TestPage(t *testing.T) {
	out, err := run(t, `[1,2,3,4,5]`, "page", "--page", "2", "--per-page", "2", "-")
	require.NoError(t, err)

	var section struct {
		LastPage int   `json:"lastPage"`
		HasPrev  bool  `json:"hasPrev"`
		HasNext  bool  `json:"hasNext"`
		Page     int   `json:"page"`
		Entries  []int `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &section))
	assert.Equal(t, 3, section.LastPage)
	assert.Equal(t, 2, section.Page)
	assert.True(t, section.HasPrev)
	assert.True(t, section.HasNext)
	assert.Equal(t, []int{3, 4}, section.Entries)
}

func TestPage_NotAnArray(t *testing.T) {
	_, err := run(t, `{"a":1}`, "page", "-")
	assert.ErrorIs(t, err, jsondecode.ErrInvalidJSONFormat)
}
