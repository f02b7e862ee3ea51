// Package enums holds the subset of the SISO-REF-010 enumeration catalog the
// codec consumes.
//
// Every enumeration follows one contract: DecodeX maps a raw wire integer to
// a value of X and never fails, returning the enumeration's fallback value
// for integers the catalog does not list. Encoding is a plain integer
// conversion. String returns the catalog name, and MarshalText makes names
// appear in JSON and YAML output.
package enums

import "strconv"

type wireInt interface {
	~uint8 | ~uint16 | ~uint32
}

// catalog is the single value/name/fallback table behind an enumeration.
type catalog[T wireInt] struct {
	kind     string
	names    map[T]string
	fallback T
}

func newCatalog[T wireInt](kind string, fallback T, names map[T]string) catalog[T] {
	if _, ok := names[fallback]; !ok {
		panic("enums: fallback of " + kind + " is not in its catalog")
	}
	return catalog[T]{kind: kind, names: names, fallback: fallback}
}

func (c catalog[T]) decode(raw T) T {
	if _, ok := c.names[raw]; ok {
		return raw
	}
	return c.fallback
}

func (c catalog[T]) known(v T) bool {
	_, ok := c.names[v]
	return ok
}

func (c catalog[T]) name(v T) string {
	if n, ok := c.names[v]; ok {
		return n
	}
	return c.kind + "(" + strconv.FormatUint(uint64(v), 10) + ")"
}
