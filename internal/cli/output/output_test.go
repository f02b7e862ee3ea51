package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"TABLE", FormatTable, false},
		{" json ", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPrintTable(t *testing.T) {
	table := NewTable("Type", "Count")
	table.AddRow("Comment", "2")
	table.AddRow("Entity State", "10")
	assert.Equal(t, 2, table.Len())

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatTable, table))
	out := buf.String()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "COUNT")
	assert.Contains(t, out, "Entity State")
}

func TestPrintFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintFields(&buf, [][2]string{{"Session", "abc"}, {"PDUs", "3"}}))
	assert.Contains(t, buf.String(), "Session")
	assert.Contains(t, buf.String(), "abc")
}

func TestPrintEncodings(t *testing.T) {
	data := map[string]int{"pdus": 3}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatJSON, data))
	assert.Equal(t, "{\n  \"pdus\": 3\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, FormatYAML, data))
	assert.Equal(t, "pdus: 3\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintJSONLine(&buf, data))
	assert.Equal(t, "{\"pdus\":3}\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, FormatTable, data))
	assert.Contains(t, buf.String(), "\"pdus\": 3")
}
