package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/tlogic/internal/types"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, andReport()))

	expected := "a,b,RESULT\n0,0,0\n1,0,0\n0,1,0\n1,1,1\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSVNoVariables(t *testing.T) {
	t.Parallel()

	report := tt.Report{
		Expression: "true",
		Rows:       []tt.Row{{Values: []int{}, Result: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report))
	assert.Equal(t, "RESULT\n1\n", buf.String())
}

func TestWriteCSVRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := WriteCSV(&buf, tt.Report{Expression: "(", Error: "parse error"})
	assert.EqualError(t, err, "parse error")
	assert.Empty(t, buf.String())

	err = WriteCSV(&buf, tt.Report{Expression: "a"})
	assert.ErrorIs(t, err, errNoTable)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	reports := []tt.Report{andReport()}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, reports, false))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a and b", decoded[0]["expression"])
	assert.Equal(t, "Contingent", decoded[0]["classification"])
	assert.Equal(t, "a and b", decoded[0]["minimized"])
	assert.NotContains(t, decoded[0], "rows")
	assert.NotContains(t, decoded[0], "error")

	// the caller's reports are left untouched
	assert.Len(t, reports[0].Rows, 4)

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, reports, true))
	var withRows []tt.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &withRows))
	assert.Equal(t, reports, withRows)
}
