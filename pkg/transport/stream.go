package transport

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/marmos91/opendis/pkg/dis/header"
	"github.com/marmos91/opendis/pkg/dis/pdu"
)

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

// ReadPDU reads one PDU from a byte stream using the header length field.
//
// A frame longer than max is read and discarded so the stream stays in
// step, and a *pdu.SizeError is returned; the caller may keep reading. A
// header declaring fewer than header.Size bytes cannot be skipped and
// yields a *pdu.FramingError. When ctx has a deadline and r supports read
// deadlines, the deadline applies to the whole frame.
func ReadPDU(ctx context.Context, r io.Reader, max int) ([]byte, error) {
	if max <= 0 || max > pdu.MaxPDUSizeOctets {
		max = pdu.MaxPDUSizeOctets
	}
	if dl, ok := ctx.Deadline(); ok {
		if rd, ok := r.(readDeadliner); ok {
			_ = rd.SetReadDeadline(dl)
		}
	}

	var hdr [header.Size]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	n := int(binary.BigEndian.Uint16(hdr[8:10]))
	if n < header.Size {
		return nil, &pdu.FramingError{Declared: n, Available: header.Size}
	}
	if n > max {
		if _, err := io.CopyN(io.Discard, r, int64(n-header.Size)); err != nil {
			return nil, fmt.Errorf("skip oversized PDU: %w", err)
		}
		return nil, &pdu.SizeError{Size: n, Max: max}
	}

	frame := make([]byte, n)
	copy(frame, hdr[:])
	if _, err := io.ReadFull(r, frame[header.Size:]); err != nil {
		return nil, fmt.Errorf("read PDU body: %w", err)
	}
	return frame, nil
}

// WriteFrame writes an encoded PDU to w in full.
func WriteFrame(w io.Writer, frame []byte) error {
	for len(frame) > 0 {
		n, err := w.Write(frame)
		if err != nil {
			return err
		}
		frame = frame[n:]
	}
	return nil
}
