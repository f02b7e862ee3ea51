package recorder

import (
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/internal/telemetry"
)

// badgerLogger routes badger's own messages through the process logger.
// Badger's info chatter is demoted to debug.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any) {
	logger.Errorf("badger: "+strings.TrimRight(format, "\n"), args...)
}

func (badgerLogger) Warningf(format string, args ...any) {
	logger.Warnf("badger: "+strings.TrimRight(format, "\n"), args...)
}

func (badgerLogger) Infof(format string, args ...any) {
	logger.Debugf("badger: "+strings.TrimRight(format, "\n"), args...)
}

func (badgerLogger) Debugf(format string, args ...any) {
	logger.Debugf("badger: "+strings.TrimRight(format, "\n"), args...)
}

func telemetryAttrs(id string) []trace.SpanStartOption {
	return []trace.SpanStartOption{trace.WithAttributes(telemetry.Session(id))}
}
