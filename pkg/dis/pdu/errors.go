package pdu

import (
	"errors"
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
)

var (
	// ErrTruncated means the input ended before a field could be read.
	ErrTruncated = disenc.ErrShortRead

	// ErrFramingMismatch means the header length disagrees with the bytes
	// available or consumed.
	ErrFramingMismatch = errors.New("pdu: framing mismatch")

	// ErrSizeExceeded means an encoded PDU would exceed MaxPDUSizeOctets.
	ErrSizeExceeded = errors.New("pdu: size exceeded")

	// ErrTypeMismatch means a typed decode was given a different PDU type.
	ErrTypeMismatch = errors.New("pdu: type mismatch")

	// ErrInvalidField means an in-memory value cannot be represented on the
	// wire, such as a collection longer than its count field allows.
	ErrInvalidField = errors.New("pdu: invalid field")
)

// FramingError describes a header length that disagrees with the data.
type FramingError struct {
	// Declared is the header length field.
	Declared int
	// Available is the number of bytes handed to the decoder.
	Available int
	// Consumed is how far the decoder got.
	Consumed int
	// Err is the underlying decode error, if any.
	Err error
}

func (e *FramingError) Error() string {
	msg := fmt.Sprintf("pdu: framing mismatch: declared %d bytes, available %d, consumed %d",
		e.Declared, e.Available, e.Consumed)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrFramingMismatch and the body error, if any.
func (e *FramingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFramingMismatch}
	}
	return []error{ErrFramingMismatch, e.Err}
}

// SizeError reports a PDU that is too large to encode.
type SizeError struct {
	Size int
	Max  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("pdu: size exceeded: %d bytes, max %d", e.Size, e.Max)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *SizeError) Unwrap() error { return ErrSizeExceeded }

func invalidField(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidField, fmt.Sprintf(format, args...))
}

// readParameterCount reads a u8 variable parameter count and fails r when it
// is above MaxArticulationParams.
func readParameterCount(r *disenc.Reader, body string) (int, error) {
	n := int(r.ReadUint8())
	if n > MaxArticulationParams {
		r.Fail(invalidField("%s: %d variable parameters, max %d", body, n, MaxArticulationParams))
	}
	return n, r.Err()
}
