package recorder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"
)

// timeLen is the size of the receive-time prefix of a stored PDU.
const timeLen = 8

func sessionKey(id string) []byte { return []byte(prefixSession + id) }

func pduPrefix(id string) []byte { return []byte(prefixPDU + id + ":") }

func pduKey(id string, seq uint64) []byte {
	return fmt.Appendf(nil, "%s%s:%016x", prefixPDU, id, seq)
}

func parseSeq(key, prefix []byte) (uint64, error) {
	rest, ok := bytes.CutPrefix(key, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: key %q", ErrCorruptRecord, key)
	}
	seq, err := strconv.ParseUint(string(rest), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q: %w", ErrCorruptRecord, key, err)
	}
	return seq, nil
}

func encodeValue(at time.Time, raw []byte) []byte {
	v := make([]byte, timeLen+len(raw))
	binary.BigEndian.PutUint64(v, uint64(at.UnixNano()))
	copy(v[timeLen:], raw)
	return v
}

// decodeValue returns a view into v; copy raw to keep it past the
// badger value callback.
func decodeValue(v []byte) (time.Time, []byte, error) {
	if len(v) < timeLen {
		return time.Time{}, nil, ErrCorruptRecord
	}
	at := time.Unix(0, int64(binary.BigEndian.Uint64(v))).UTC()
	return at, v[timeLen:], nil
}
