package recorder

import (
	"context"
	"slices"
	"time"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/internal/telemetry"
)

// RawWriter transmits encoded PDUs. transport.Sender implements it.
type RawWriter interface {
	WriteRaw(ctx context.Context, b []byte) error
}

// Replay re-sends a session through w, keeping the recorded gaps between
// PDUs divided by speed. A speed of zero or less sends as fast as
// possible. The PDU bytes are sent exactly as recorded. It returns the
// number of PDUs sent.
func (s *Store) Replay(ctx context.Context, id string, w RawWriter, speed float64) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanReplay, telemetryAttrs(id)...)
	defer span.End()

	info, err := s.Session(ctx, id)
	if err != nil {
		return 0, err
	}
	logger.Info("Replaying session", logger.Session(id), logger.Count(int(info.PDUs)), "speed", speed)

	var (
		sent  int
		prev  time.Time
		timer *time.Timer
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	err = s.Iterate(ctx, id, func(rec Record) error {
		if speed > 0 && !prev.IsZero() {
			if gap := time.Duration(float64(rec.At.Sub(prev)) / speed); gap > 0 {
				if timer == nil {
					timer = time.NewTimer(gap)
				} else {
					timer.Reset(gap)
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-timer.C:
				}
			}
		}
		prev = rec.At

		if err := w.WriteRaw(ctx, slices.Clone(rec.Raw)); err != nil {
			return err
		}
		sent++
		return nil
	})

	if s.metrics != nil {
		s.metrics.RecordReplayed(sent)
	}
	if err != nil {
		telemetry.RecordError(ctx, err)
		return sent, err
	}
	logger.Info("Replay complete", logger.Session(id), logger.Count(sent))
	return sent, nil
}
