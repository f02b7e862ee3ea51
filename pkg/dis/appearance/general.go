package appearance

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/field"
)

// PaintScheme is the paint of an entity.
type PaintScheme uint8

const (
	PaintUniformColor PaintScheme = iota
	PaintCamouflage
)

var paintSchemeNames = []string{"Uniform color", "Camouflage"}

func (p PaintScheme) String() string { return nameOf(paintSchemeNames, uint8(p), "PaintScheme") }

// Damage is the visible damage state.
type Damage uint8

const (
	DamageNone Damage = iota
	DamageSlight
	DamageModerate
	DamageDestroyed
)

var damageNames = []string{"No damage", "Slight damage", "Moderate damage", "Destroyed"}

func (d Damage) String() string { return nameOf(damageNames, uint8(d), "Damage") }

// Smoke is the smoke emitted by an entity.
type Smoke uint8

const (
	SmokeNone Smoke = iota
	SmokePlumeRising
	SmokeEngine
	SmokeEngineAndPlume
)

var smokeNames = []string{"Not smoking", "Smoke plume rising", "Engine smoke", "Engine smoke and smoke plume rising"}

func (s Smoke) String() string { return nameOf(smokeNames, uint8(s), "Smoke") }

// TrailingEffect is the size of dust or wake trails.
type TrailingEffect uint8

const (
	TrailingNone TrailingEffect = iota
	TrailingSmall
	TrailingMedium
	TrailingLarge
)

var trailingNames = []string{"None", "Small", "Medium", "Large"}

func (t TrailingEffect) String() string { return nameOf(trailingNames, uint8(t), "TrailingEffect") }

// HatchState is the state of the primary hatch.
type HatchState uint8

const (
	HatchNotApplicable HatchState = iota
	HatchClosed
	HatchPopped
	HatchPoppedPersonVisible
	HatchOpen
	HatchOpenPersonVisible
)

var hatchNames = []string{
	"Not applicable",
	"Primary hatch is closed",
	"Primary hatch is popped",
	"Primary hatch is popped and a person is visible under hatch",
	"Primary hatch is open",
	"Primary hatch is open and person is visible",
}

func (h HatchState) String() string { return nameOf(hatchNames, uint8(h), "HatchState") }

// Lights is the external lighting state.
type Lights uint8

const (
	LightsNone Lights = iota
	LightsRunning
	LightsNavigation
	LightsFormation
)

var lightsNames = []string{"None", "Running lights are on", "Navigation lights are on", "Formation lights are on"}

func (l Lights) String() string { return nameOf(lightsNames, uint8(l), "Lights") }

// generalLayout is the 16-bit general appearance table, MSB first.
var generalLayout = field.NewLayout(16,
	field.Bits{Name: "paint_scheme", Width: 1},
	field.Bits{Name: "mobility_kill", Width: 1},
	field.Bits{Name: "fire_power_kill", Width: 1},
	field.Bits{Name: "damage", Width: 2},
	field.Bits{Name: "smoke", Width: 2},
	field.Bits{Name: "trailing_effect", Width: 2},
	field.Bits{Name: "hatch", Width: 3},
	field.Bits{Name: "lights", Width: 3},
	field.Bits{Name: "flaming", Width: 1},
)

// GeneralAppearance is the half of the appearance word common to all entity
// kinds.
type GeneralAppearance struct {
	PaintScheme    PaintScheme    `json:"paint_scheme"`
	MobilityKill   bool           `json:"mobility_kill"`
	FirePowerKill  bool           `json:"fire_power_kill"`
	Damage         Damage         `json:"damage"`
	Smoke          Smoke          `json:"smoke"`
	TrailingEffect TrailingEffect `json:"trailing_effect"`
	Hatch          HatchState     `json:"hatch"`
	Lights         Lights         `json:"lights"`
	Flaming        bool           `json:"flaming"`
}

// GeneralAppearanceLength is the wire size of GeneralAppearance.
const GeneralAppearanceLength = 2

// DecodeGeneral splits a 16-bit general appearance word.
func DecodeGeneral(word uint16) GeneralAppearance {
	v := generalLayout.Unpack(uint64(word))
	return GeneralAppearance{
		PaintScheme:    PaintScheme(v[0]),
		MobilityKill:   v[1] == 1,
		FirePowerKill:  v[2] == 1,
		Damage:         Damage(v[3]),
		Smoke:          Smoke(v[4]),
		TrailingEffect: TrailingEffect(v[5]),
		Hatch:          choice(v[6], len(hatchNames), HatchNotApplicable),
		Lights:         choice(v[7], len(lightsNames), LightsNone),
		Flaming:        v[8] == 1,
	}
}

// Word packs g into its 16-bit wire form.
func (g GeneralAppearance) Word() uint16 {
	return uint16(generalLayout.Pack(
		uint64(g.PaintScheme),
		boolBit(g.MobilityKill),
		boolBit(g.FirePowerKill),
		uint64(g.Damage),
		uint64(g.Smoke),
		uint64(g.TrailingEffect),
		uint64(g.Hatch),
		uint64(g.Lights),
		boolBit(g.Flaming),
	))
}

func (g GeneralAppearance) Serialize(w *disenc.Writer) { w.WriteUint16(g.Word()) }

func (g *GeneralAppearance) Deserialize(r *disenc.Reader) error {
	*g = DecodeGeneral(r.ReadUint16())
	return r.Err()
}

func (GeneralAppearance) ByteLength() int { return GeneralAppearanceLength }
