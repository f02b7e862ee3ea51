package field

import "github.com/marmos91/opendis/pkg/dis/disenc"

// SerializeSlice writes each element of s in order. The element count is
// written by the caller, immediately before the call.
func SerializeSlice[T Serializer](w *disenc.Writer, s []T) {
	for i := range s {
		s[i].Serialize(w)
	}
}

// SliceLength sums the byte lengths of every element.
func SliceLength[T Sizer](s []T) int {
	n := 0
	for i := range s {
		n += s[i].ByteLength()
	}
	return n
}

// DeserializeSlice reads exactly count elements.
//
// A zero count yields a nil slice. Pre-allocation is bounded by the bytes
// left in r so a hostile count cannot force a large allocation.
func DeserializeSlice[T any, P interface {
	*T
	Deserializer
}](r *disenc.Reader, count int) ([]T, error) {
	if count <= 0 {
		return nil, r.Err()
	}
	out := make([]T, 0, min(count, r.Remaining()))
	for range count {
		var v T
		if err := P(&v).Deserialize(r); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// DeserializeRest reads elements until r is exhausted. It is used for
// trailing collections whose extent is the enclosing record's length.
func DeserializeRest[T any, P interface {
	*T
	Deserializer
}](r *disenc.Reader) ([]T, error) {
	var out []T
	for r.Err() == nil && r.Remaining() > 0 {
		var v T
		if err := P(&v).Deserialize(r); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, r.Err()
}

// DeserializeOptional decodes a record whose length is carried externally.
// A zero length yields nil without consuming any bytes.
func DeserializeOptional[T any, P interface {
	*T
	LengthDeserializer
}](r *disenc.Reader, length int) (*T, error) {
	if length == 0 {
		return nil, r.Err()
	}
	v := new(T)
	if err := P(v).DeserializeWithLength(r, length); err != nil {
		return nil, err
	}
	return v, nil
}

// OptionalLength returns the byte length of an optional record, 0 when absent.
func OptionalLength[T Sizer](v *T) int {
	if v == nil {
		return 0
	}
	return (*v).ByteLength()
}

// PaddingTo returns how many zero bytes follow n bytes of payload to reach
// the next multiple of align.
func PaddingTo(n, align int) int {
	if align <= 0 {
		return 0
	}
	return (align - n%align) % align
}
