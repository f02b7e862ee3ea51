package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects logger output to a buffer with colors disabled.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)

	mu.Lock()
	prevOutput, prevColor := output, useColor
	output, useColor = buf, false
	mu.Unlock()
	prevLevel := currentLevel.Load()
	prevFormat, _ := currentFormat.Load().(string)
	reconfigure()

	t.Cleanup(func() {
		mu.Lock()
		output, useColor = prevOutput, prevColor
		mu.Unlock()
		currentLevel.Store(prevLevel)
		currentFormat.Store(prevFormat)
		reconfigure()
	})
	return buf
}

func decodeJSONLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry), buf.String())
	return entry
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{"DEBUG", []string{"DEBUG", "INFO", "WARN", "ERROR"}, nil},
		{"INFO", []string{"INFO", "WARN", "ERROR"}, []string{"DEBUG"}},
		{"WARN", []string{"WARN", "ERROR"}, []string{"DEBUG", "INFO"}},
		{"ERROR", []string{"ERROR"}, []string{"DEBUG", "INFO", "WARN"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := captureOutput(t)
			SetLevel(tt.level)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			out := buf.String()
			for _, l := range tt.visible {
				assert.Contains(t, out, "["+l+"]")
			}
			for _, l := range tt.hidden {
				assert.NotContains(t, out, "["+l+"]")
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("DeBuG")
		Debug("visible")
		assert.Contains(t, buf.String(), "visible")
		assert.Equal(t, LevelDebug, GetLevel())
	})

	t.Run("invalid ignored", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("INFO")
		SetLevel("LOUD")
		Debug("hidden")
		Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("warning alias", func(t *testing.T) {
		l, ok := ParseLevel("warning")
		assert.True(t, ok)
		assert.Equal(t, LevelWarn, l)
	})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestTextFormat(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")
	SetFormat("text")

	Info("pdu received", KeyPDUType, "Entity State", KeyExercise, 3, "raw", []byte{0x07, 0x03})

	out := buf.String()
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] pdu received`, out)
	assert.Contains(t, out, "pdu_type=Entity State")
	assert.Contains(t, out, "exercise=3")
	assert.Contains(t, out, "raw=0703")
}

func TestTextHandlerGroupsAndAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	h := NewColorTextHandler(buf, nil, false)
	l := slog.New(h).With(KeyPeer, "10.0.0.1:3000").WithGroup("pdu")

	l.Info("decoded", "type", "Fire", slog.Group("header", "length", 96))

	out := buf.String()
	assert.Contains(t, out, "peer=10.0.0.1:3000")
	assert.Contains(t, out, "pdu.type=Fire")
	assert.Contains(t, out, "pdu.header.length=96")
}

func TestTextHandlerDefaultLevel(t *testing.T) {
	h := NewColorTextHandler(io.Discard, nil, false)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestColorOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	slog.New(NewColorTextHandler(buf, nil, true)).Warn("careful", "k", "v")
	assert.Contains(t, buf.String(), colorYellow+"WARN"+colorReset)
	assert.Contains(t, buf.String(), colorCyan+"k"+colorReset+"=v")
}

func TestJSONFormat(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")
	SetFormat("json")

	Info("pdu sent", KeyLength, 144, KeyPeer, "255.255.255.255:3000")

	entry := decodeJSONLine(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "pdu sent", entry["msg"])
	assert.Equal(t, float64(144), entry["length"])
	assert.Equal(t, "255.255.255.255:3000", entry["peer"])
	assert.Contains(t, entry, "time")
}

func TestFormatSwitching(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")

	SetFormat("text")
	Info("text message")
	assert.Contains(t, buf.String(), "[INFO]")
	buf.Reset()

	SetFormat("xml")
	Info("still text")
	assert.Contains(t, buf.String(), "[INFO]")
	buf.Reset()

	SetFormat("JSON")
	Info("json message")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestContextLogging(t *testing.T) {
	t.Run("fields are injected", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("INFO")
		SetFormat("json")

		lc := NewLogContext("192.168.1.10:3000").
			WithPDU(7, "Fire", "Warfare").
			WithSession("s-1").
			WithTrace("abc123", "xyz789")
		InfoCtx(WithContext(context.Background(), lc), "handled", "extra", "value")

		entry := decodeJSONLine(t, buf)
		assert.Equal(t, "abc123", entry[KeyTraceID])
		assert.Equal(t, "xyz789", entry[KeySpanID])
		assert.Equal(t, "192.168.1.10:3000", entry[KeyPeer])
		assert.Equal(t, "Fire", entry[KeyPDUType])
		assert.Equal(t, float64(7), entry[KeyExercise])
		assert.Equal(t, "Warfare", entry[KeyFamily])
		assert.Equal(t, "s-1", entry[KeySession])
		assert.Equal(t, "value", entry["extra"])
	})

	t.Run("missing context", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("INFO")
		require.NotPanics(t, func() {
			//nolint:staticcheck // nil context is tolerated
			InfoCtx(nil, "nil ctx")
			WarnCtx(context.Background(), "bare ctx")
		})
		assert.Contains(t, buf.String(), "nil ctx")
		assert.Contains(t, buf.String(), "bare ctx")
	})

	t.Run("debug ctx filtered", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("INFO")
		DebugCtx(context.Background(), "hidden")
		ErrorCtx(context.Background(), "shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestLogContext(t *testing.T) {
	lc := NewLogContext("10.1.1.1:3000")
	assert.Equal(t, "10.1.1.1:3000", lc.Peer)
	assert.False(t, lc.StartTime.IsZero())
	assert.GreaterOrEqual(t, lc.DurationMs(), 0.0)

	withPDU := lc.WithPDU(1, "Entity State", "Entity Information/Interaction")
	assert.Equal(t, "Entity State", withPDU.PDUType)
	assert.Empty(t, lc.PDUType)

	var nilCtx *LogContext
	assert.Nil(t, nilCtx.Clone())
	assert.Nil(t, nilCtx.WithSession("x"))
	assert.Zero(t, nilCtx.DurationMs())
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, "1:2:3", EntityID(1, 2, 3).Value.String())
	assert.Equal(t, KeyPDUType, PDUType("Signal").Key)
	assert.Equal(t, int64(3), Exercise(3).Value.Int64())
	assert.Equal(t, uint64(9), Seq(9).Value.Uint64())

	assert.Equal(t, "", Err(nil).Key)
	e := Err(errors.New("short read"))
	assert.Equal(t, KeyError, e.Key)
	assert.Equal(t, "short read", e.Value.String())
}

func TestPrintfStyleLogging(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("DEBUG")

	Debugf("entity %d", 42)
	Infof("count: %d", 100)
	Warnf("warning: %s", "late")
	Errorf("error: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "entity 42")
	assert.Contains(t, out, "count: 100")
	assert.Contains(t, out, "warning: late")
	assert.Contains(t, out, "error: boom")
}

func TestConcurrentLogging(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")

	const goroutines, perGoroutine = 10, 100
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range perGoroutine {
				Info("datagram", "worker", i, "n", j)
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, goroutines*perGoroutine)
}

func TestInit(t *testing.T) {
	t.Cleanup(func() {
		mu.Lock()
		if closer != nil {
			_ = closer.Close()
		}
		output, closer = os.Stdout, nil
		mu.Unlock()
		SetLevel("INFO")
		SetFormat("text")
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "opendis.log")
		require.NoError(t, Init(Config{Level: "DEBUG", Format: "text", Output: path}))
		Debug("to file")

		mu.Lock()
		_ = closer.Close()
		output, closer = io.Discard, nil
		mu.Unlock()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})

	t.Run("bad path", func(t *testing.T) {
		err := Init(Config{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
		assert.Error(t, err)
	})

	t.Run("empty config", func(t *testing.T) {
		assert.NoError(t, Init(Config{}))
	})

	t.Run("with writer", func(t *testing.T) {
		buf := new(bytes.Buffer)
		InitWithWriter(buf, "DEBUG", "text", false)
		Debug("captured")
		assert.Contains(t, buf.String(), "captured")
	})
}

func BenchmarkLogDisabled(b *testing.B) {
	InitWithWriter(io.Discard, "ERROR", "text", false)
	for b.Loop() {
		Debug("pdu", KeyPDUType, "Entity State")
	}
}

func BenchmarkLogJSON(b *testing.B) {
	InitWithWriter(io.Discard, "DEBUG", "json", false)
	ctx := WithContext(context.Background(), NewLogContext("10.0.0.1:3000").WithPDU(1, "Entity State", "Entity Information/Interaction"))
	for b.Loop() {
		InfoCtx(ctx, "pdu", KeyLength, 144)
	}
}
