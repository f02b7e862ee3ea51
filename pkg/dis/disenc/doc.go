// Package disenc provides the byte cursor used by every DIS record and PDU
// codec.
//
// Reads and writes follow an error-accumulation pattern: callers perform a
// sequence of operations and check the first error once at the end.
//
// Reader wraps a byte slice with a position cursor. After the first short read
// every later read is a no-op returning the zero value, so a record decoder
// can be written as a flat list of field reads:
//
//	r := disenc.NewReader(data)
//	site := r.ReadUint16()
//	app := r.ReadUint16()
//	entity := r.ReadUint16()
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// Writer appends to a growable buffer with pre-allocated capacity:
//
//	w := disenc.NewWriter(12)
//	w.WriteUint8(version)
//	w.WriteUint32(timestamp)
//	w.WriteZeros(2)
//	return w.Bytes()
//
// All multi-byte values use big-endian (network) byte order as required by
// IEEE 1278.1. Floating point values are IEEE-754 single or double precision.
package disenc
