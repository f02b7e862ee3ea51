package field

import "fmt"

// Bits describes one sub-field of a flag word.
type Bits struct {
	Name  string
	Width uint
}

// Layout is the static bit table of a flag word. Sub-fields are packed
// MSB-first in declaration order; any bits left at the bottom of the word
// are reserved and written as zero.
type Layout struct {
	total  uint
	fields []Bits
	shift  []uint
}

// NewLayout builds a layout and panics if the widths overflow totalBits.
// Layouts are package-level tables, so a bad one fails at init.
func NewLayout(totalBits uint, fields ...Bits) Layout {
	if totalBits == 0 || totalBits > 64 {
		panic(fmt.Sprintf("field: invalid flag word width %d", totalBits))
	}
	l := Layout{total: totalBits, fields: fields, shift: make([]uint, len(fields))}
	pos := totalBits
	for i, f := range fields {
		if f.Width == 0 || f.Width > pos {
			panic(fmt.Sprintf("field: sub-field %q (%d bits) does not fit in %d-bit word", f.Name, f.Width, totalBits))
		}
		pos -= f.Width
		l.shift[i] = pos
	}
	return l
}

// Width returns the total bit width of the word.
func (l Layout) Width() uint { return l.total }

// Len returns the number of declared sub-fields.
func (l Layout) Len() int { return len(l.fields) }

// Shift returns the right shift of sub-field i.
func (l Layout) Shift(i int) uint { return l.shift[i] }

// Mask returns the unshifted mask of sub-field i.
func (l Layout) Mask(i int) uint64 { return 1<<l.fields[i].Width - 1 }

// Get extracts sub-field i from word.
func (l Layout) Get(word uint64, i int) uint64 {
	return (word >> l.shift[i]) & l.Mask(i)
}

// Pack combines sub-field values into a word. Values wider than their
// sub-field are masked.
func (l Layout) Pack(values ...uint64) uint64 {
	var word uint64
	for i := range l.fields {
		if i >= len(values) {
			break
		}
		word |= (values[i] & l.Mask(i)) << l.shift[i]
	}
	return word
}

// Unpack splits a word into its sub-field values in declaration order.
func (l Layout) Unpack(word uint64) []uint64 {
	out := make([]uint64, len(l.fields))
	for i := range l.fields {
		out[i] = l.Get(word, i)
	}
	return out
}
