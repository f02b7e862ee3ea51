package appearance

import "strconv"

// choice maps a raw sub-field value onto a contiguous enumeration 0..n-1,
// returning fallback for anything else.
func choice[T ~uint8](raw uint64, n int, fallback T) T {
	if raw < uint64(n) {
		return T(raw)
	}
	return fallback
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func nameOf(names []string, v uint8, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return kind + "(" + strconv.Itoa(int(v)) + ")"
}
