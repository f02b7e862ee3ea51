package record

import "errors"

// ErrInvalidLength is returned when a record's own length field cannot
// describe a well-formed record.
var ErrInvalidLength = errors.New("record: invalid length field")
