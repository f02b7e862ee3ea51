// Package appearance decodes and encodes the bit-packed appearance and
// capability words of the Entity State PDU.
//
// Each word type has a static bit table built with field.NewLayout. Sub-field
// values outside their enumeration decode to the enumeration's default.
package appearance
