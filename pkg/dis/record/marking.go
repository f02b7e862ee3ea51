package record

import (
	"bytes"
	"encoding/json"

	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
)

// EntityMarkingChars is the number of marking characters on the wire.
const EntityMarkingChars = 11

// EntityMarkingLength is the wire size of EntityMarking.
const EntityMarkingLength = 1 + EntityMarkingChars

// EntityMarking is the short text label displayed for an entity.
type EntityMarking struct {
	CharacterSet enums.EntityMarkingCharacterSet
	Characters   [EntityMarkingChars]byte
}

// NewEntityMarking builds an ASCII marking, truncating s to 11 bytes.
func NewEntityMarking(s string) EntityMarking {
	m := EntityMarking{CharacterSet: enums.MarkingASCII}
	copy(m.Characters[:], s)
	return m
}

// String returns the characters up to the first NUL.
func (m EntityMarking) String() string {
	if i := bytes.IndexByte(m.Characters[:], 0); i >= 0 {
		return string(m.Characters[:i])
	}
	return string(m.Characters[:])
}

// Serialize writes the entity marking.
func (m EntityMarking) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(m.CharacterSet))
	w.WriteBytes(m.Characters[:])
}

// Deserialize reads an entity marking.
func (m *EntityMarking) Deserialize(r *disenc.Reader) error {
	m.CharacterSet = enums.DecodeEntityMarkingCharacterSet(r.ReadUint8())
	r.ReadInto(m.Characters[:])
	return r.Err()
}

// ByteLength returns the wire size of the entity marking.
func (EntityMarking) ByteLength() int { return EntityMarkingLength }

// MarshalJSON renders the marking as its character set and text.
func (m EntityMarking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CharacterSet enums.EntityMarkingCharacterSet `json:"character_set"`
		Text         string                          `json:"text"`
	}{m.CharacterSet, m.String()})
}
