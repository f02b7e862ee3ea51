package appearance

import (
	"fmt"

	"github.com/marmos91/opendis/pkg/dis/disenc"
)

// Word is the 32-bit entity appearance field. The general appearance lives in
// the upper half and the kind-specific appearance in the lower half. The raw
// value is kept so that bits with no defined meaning survive a relay.
type Word uint32

// WordLength is the wire size of Word.
const WordLength = 4

// Compose joins a general and a specific appearance half.
func Compose(general, specific uint16) Word {
	return Word(uint32(general)<<16 | uint32(specific))
}

// Specifics is implemented by every kind-specific appearance view.
type Specifics interface {
	Word() uint16
}

// New builds an appearance word from typed halves.
func New(general GeneralAppearance, specific Specifics) Word {
	var s uint16
	if specific != nil {
		s = specific.Word()
	}
	return Compose(general.Word(), s)
}

func (a Word) GeneralWord() uint16  { return uint16(a >> 16) }
func (a Word) SpecificWord() uint16 { return uint16(a) }

func (a Word) General() GeneralAppearance { return DecodeGeneral(a.GeneralWord()) }

func (a Word) Land() LandAppearance         { return DecodeLand(a.SpecificWord()) }
func (a Word) Air() AirAppearance           { return DecodeAir(a.SpecificWord()) }
func (a Word) Platform() PlatformAppearance { return DecodePlatform(a.SpecificWord()) }
func (a Word) LifeForm() LifeFormAppearance { return DecodeLifeForm(a.SpecificWord()) }

func (a Word) GuidedMunition() GuidedMunitionAppearance {
	return DecodeGuidedMunition(a.SpecificWord())
}

func (a Word) Environmental() EnvironmentalAppearance {
	return DecodeEnvironmental(a.SpecificWord())
}

func (a Word) Serialize(w *disenc.Writer) { w.WriteUint32(uint32(a)) }

func (a *Word) Deserialize(r *disenc.Reader) error {
	*a = Word(r.ReadUint32())
	return r.Err()
}

func (Word) ByteLength() int { return WordLength }

func (a Word) String() string { return fmt.Sprintf("0x%08x", uint32(a)) }
