package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name string
		line string
		want time.Time
	}{
		{
			name: "text handler",
			line: "[2024-01-15 10:30:45] [INFO] Gateway is running mode=udp",
			want: time.Date(2024, 1, 15, 10, 30, 45, 0, time.Local),
		},
		{
			name: "json handler",
			line: `{"time":"2024-01-15T10:30:45.123Z","level":"INFO","msg":"PDU received"}`,
			want: time.Date(2024, 1, 15, 10, 30, 45, 123000000, time.UTC),
		},
		{
			name: "rfc3339 prefix",
			line: "2024-01-15T10:30:45Z something happened",
			want: time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{name: "no timestamp", line: "panic: runtime error"},
		{name: "empty", line: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTimestamp(tt.line)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestTailLines(t *testing.T) {
	input := strings.Join([]string{
		`{"time":"2024-01-15T10:00:00Z","msg":"a"}`,
		`{"time":"2024-01-15T11:00:00Z","msg":"b"}`,
		"goroutine dump",
		`{"time":"2024-01-15T12:00:00Z","msg":"c"}`,
	}, "\n")

	lines, err := tailLines(strings.NewReader(input), 2, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{"goroutine dump", `{"time":"2024-01-15T12:00:00Z","msg":"c"}`}, lines)

	since := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	lines, err = tailLines(strings.NewReader(input), 10, since)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"msg":"b"`)

	lines, err = tailLines(strings.NewReader(input), 0, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}
