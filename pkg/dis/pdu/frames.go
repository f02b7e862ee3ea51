package pdu

import "github.com/marmos91/opendis/pkg/dis/header"

// Frames splits b into consecutive PDUs using each header's length field.
// It returns the frames found before the first malformed header together
// with a *FramingError describing it.
func Frames(b []byte) ([][]byte, error) {
	var frames [][]byte
	for off := 0; off < len(b); {
		info, err := header.Peek(b[off:])
		if err != nil {
			return frames, &FramingError{Declared: 0, Available: len(b) - off, Err: err}
		}
		n := int(info.Length)
		if n < HeaderSize || n > len(b)-off {
			return frames, &FramingError{Declared: n, Available: len(b) - off}
		}
		frames = append(frames, b[off:off+n:off+n])
		off += n
	}
	return frames, nil
}
