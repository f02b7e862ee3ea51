package appearance

import "github.com/marmos91/opendis/pkg/dis/field"

// Camouflage is the camouflage pattern of a land platform.
type Camouflage uint8

const (
	CamouflageDesert Camouflage = iota
	CamouflageWinter
	CamouflageForest
	CamouflageOther
)

var camouflageNames = []string{"Desert camouflage", "Winter camouflage", "Forest camouflage", "Other"}

func (c Camouflage) String() string { return nameOf(camouflageNames, uint8(c), "Camouflage") }

// LifeFormState is the posture of a life form.
type LifeFormState uint8

const (
	LifeFormNull LifeFormState = iota
	LifeFormUprightStandingStill
	LifeFormUprightWalking
	LifeFormUprightRunning
	LifeFormKneeling
	LifeFormProne
	LifeFormCrawling
	LifeFormSwimming
	LifeFormParachuting
	LifeFormJumping
)

var lifeFormStateNames = []string{
	"Null",
	"Upright, standing still",
	"Upright, walking",
	"Upright, running",
	"Kneeling",
	"Prone",
	"Crawling",
	"Swimming",
	"Parachuting",
	"Jumping",
}

func (s LifeFormState) String() string { return nameOf(lifeFormStateNames, uint8(s), "LifeFormState") }

// Weapon is the carriage state of a life form weapon.
type Weapon uint8

const (
	WeaponNotPresent Weapon = iota
	WeaponStowed
	WeaponDeployed
	WeaponFiringPosition
)

var weaponNames = []string{"No weapon present", "Weapon is stowed", "Weapon is deployed", "Weapon is in firing position"}

func (w Weapon) String() string { return nameOf(weaponNames, uint8(w), "Weapon") }

// Density is the density of an environmental entity.
type Density uint8

const (
	DensityClear Density = iota
	DensityHazy
	DensityDense
	DensityVeryDense
	DensityOpaque
)

var densityNames = []string{"Clear", "Hazy", "Dense", "Very dense", "Opaque"}

func (d Density) String() string { return nameOf(densityNames, uint8(d), "Density") }

var (
	landLayout = field.NewLayout(16,
		field.Bits{Name: "launcher", Width: 1},
		field.Bits{Name: "camouflage", Width: 2},
		field.Bits{Name: "concealed", Width: 1},
		field.Bits{Name: "unused", Width: 1},
		field.Bits{Name: "frozen", Width: 1},
		field.Bits{Name: "power_plant", Width: 1},
		field.Bits{Name: "state", Width: 1},
		field.Bits{Name: "tent", Width: 1},
		field.Bits{Name: "ramp", Width: 1},
		field.Bits{Name: "specific", Width: 6},
	)
	airLayout = field.NewLayout(16,
		field.Bits{Name: "afterburner", Width: 1},
		field.Bits{Name: "unused", Width: 4},
		field.Bits{Name: "frozen", Width: 1},
		field.Bits{Name: "power_plant", Width: 1},
		field.Bits{Name: "state", Width: 1},
		field.Bits{Name: "specific", Width: 8},
	)
	platformLayout = field.NewLayout(16,
		field.Bits{Name: "unused", Width: 5},
		field.Bits{Name: "frozen", Width: 1},
		field.Bits{Name: "power_plant", Width: 1},
		field.Bits{Name: "state", Width: 1},
		field.Bits{Name: "specific", Width: 8},
	)
	munitionLayout = field.NewLayout(16,
		field.Bits{Name: "launch_flash", Width: 1},
		field.Bits{Name: "unused", Width: 4},
		field.Bits{Name: "frozen", Width: 1},
		field.Bits{Name: "unused", Width: 1},
		field.Bits{Name: "state", Width: 1},
		field.Bits{Name: "specific", Width: 8},
	)
	lifeFormLayout = field.NewLayout(16,
		field.Bits{Name: "state", Width: 4},
		field.Bits{Name: "unused", Width: 1},
		field.Bits{Name: "frozen", Width: 1},
		field.Bits{Name: "unused", Width: 1},
		field.Bits{Name: "activity", Width: 1},
		field.Bits{Name: "weapon1", Width: 2},
		field.Bits{Name: "weapon2", Width: 2},
		field.Bits{Name: "specific", Width: 4},
	)
	environmentalLayout = field.NewLayout(16,
		field.Bits{Name: "density", Width: 4},
		field.Bits{Name: "unused", Width: 4},
		field.Bits{Name: "specific", Width: 8},
	)
)

// LandAppearance is the specific appearance of a land platform. Deactivated
// reports the entity state bit (0 active, 1 deactivated).
type LandAppearance struct {
	LauncherRaised bool       `json:"launcher_raised"`
	Camouflage     Camouflage `json:"camouflage"`
	Concealed      bool       `json:"concealed"`
	Frozen         bool       `json:"frozen"`
	PowerPlantOn   bool       `json:"power_plant_on"`
	Deactivated    bool       `json:"deactivated"`
	TentExtended   bool       `json:"tent_extended"`
	RampDown       bool       `json:"ramp_down"`
	Specific       uint8      `json:"specific"`
}

func DecodeLand(word uint16) LandAppearance {
	v := landLayout.Unpack(uint64(word))
	return LandAppearance{
		LauncherRaised: v[0] == 1,
		Camouflage:     Camouflage(v[1]),
		Concealed:      v[2] == 1,
		Frozen:         v[4] == 1,
		PowerPlantOn:   v[5] == 1,
		Deactivated:    v[6] == 1,
		TentExtended:   v[7] == 1,
		RampDown:       v[8] == 1,
		Specific:       uint8(v[9]),
	}
}

func (a LandAppearance) Word() uint16 {
	return uint16(landLayout.Pack(
		boolBit(a.LauncherRaised),
		uint64(a.Camouflage),
		boolBit(a.Concealed),
		0,
		boolBit(a.Frozen),
		boolBit(a.PowerPlantOn),
		boolBit(a.Deactivated),
		boolBit(a.TentExtended),
		boolBit(a.RampDown),
		uint64(a.Specific),
	))
}

// AirAppearance is the specific appearance of an air platform.
type AirAppearance struct {
	AfterburnerOn bool  `json:"afterburner_on"`
	Frozen        bool  `json:"frozen"`
	PowerPlantOn  bool  `json:"power_plant_on"`
	Deactivated   bool  `json:"deactivated"`
	Specific      uint8 `json:"specific"`
}

func DecodeAir(word uint16) AirAppearance {
	v := airLayout.Unpack(uint64(word))
	return AirAppearance{
		AfterburnerOn: v[0] == 1,
		Frozen:        v[2] == 1,
		PowerPlantOn:  v[3] == 1,
		Deactivated:   v[4] == 1,
		Specific:      uint8(v[5]),
	}
}

func (a AirAppearance) Word() uint16 {
	return uint16(airLayout.Pack(
		boolBit(a.AfterburnerOn),
		0,
		boolBit(a.Frozen),
		boolBit(a.PowerPlantOn),
		boolBit(a.Deactivated),
		uint64(a.Specific),
	))
}

// PlatformAppearance is the specific appearance shared by surface,
// subsurface and space platforms.
type PlatformAppearance struct {
	Frozen       bool  `json:"frozen"`
	PowerPlantOn bool  `json:"power_plant_on"`
	Deactivated  bool  `json:"deactivated"`
	Specific     uint8 `json:"specific"`
}

func DecodePlatform(word uint16) PlatformAppearance {
	v := platformLayout.Unpack(uint64(word))
	return PlatformAppearance{
		Frozen:       v[1] == 1,
		PowerPlantOn: v[2] == 1,
		Deactivated:  v[3] == 1,
		Specific:     uint8(v[4]),
	}
}

func (a PlatformAppearance) Word() uint16 {
	return uint16(platformLayout.Pack(
		0,
		boolBit(a.Frozen),
		boolBit(a.PowerPlantOn),
		boolBit(a.Deactivated),
		uint64(a.Specific),
	))
}

// GuidedMunitionAppearance is the specific appearance of a guided munition.
type GuidedMunitionAppearance struct {
	LaunchFlash bool  `json:"launch_flash"`
	Frozen      bool  `json:"frozen"`
	Deactivated bool  `json:"deactivated"`
	Specific    uint8 `json:"specific"`
}

func DecodeGuidedMunition(word uint16) GuidedMunitionAppearance {
	v := munitionLayout.Unpack(uint64(word))
	return GuidedMunitionAppearance{
		LaunchFlash: v[0] == 1,
		Frozen:      v[2] == 1,
		Deactivated: v[4] == 1,
		Specific:    uint8(v[5]),
	}
}

func (a GuidedMunitionAppearance) Word() uint16 {
	return uint16(munitionLayout.Pack(
		boolBit(a.LaunchFlash),
		0,
		boolBit(a.Frozen),
		0,
		boolBit(a.Deactivated),
		uint64(a.Specific),
	))
}

// LifeFormAppearance is the specific appearance of a life form.
type LifeFormAppearance struct {
	State       LifeFormState `json:"state"`
	Frozen      bool          `json:"frozen"`
	Deactivated bool          `json:"deactivated"`
	Weapon1     Weapon        `json:"weapon1"`
	Weapon2     Weapon        `json:"weapon2"`
	Specific    uint8         `json:"specific"`
}

func DecodeLifeForm(word uint16) LifeFormAppearance {
	v := lifeFormLayout.Unpack(uint64(word))
	return LifeFormAppearance{
		State:       choice(v[0], len(lifeFormStateNames), LifeFormNull),
		Frozen:      v[2] == 1,
		Deactivated: v[4] == 1,
		Weapon1:     Weapon(v[5]),
		Weapon2:     Weapon(v[6]),
		Specific:    uint8(v[7]),
	}
}

func (a LifeFormAppearance) Word() uint16 {
	return uint16(lifeFormLayout.Pack(
		uint64(a.State),
		0,
		boolBit(a.Frozen),
		0,
		boolBit(a.Deactivated),
		uint64(a.Weapon1),
		uint64(a.Weapon2),
		uint64(a.Specific),
	))
}

// EnvironmentalAppearance is the specific appearance of an environmental
// entity.
type EnvironmentalAppearance struct {
	Density  Density `json:"density"`
	Specific uint8   `json:"specific"`
}

func DecodeEnvironmental(word uint16) EnvironmentalAppearance {
	v := environmentalLayout.Unpack(uint64(word))
	return EnvironmentalAppearance{
		Density:  choice(v[0], len(densityNames), DensityClear),
		Specific: uint8(v[2]),
	}
}

func (a EnvironmentalAppearance) Word() uint16 {
	return uint16(environmentalLayout.Pack(uint64(a.Density), 0, uint64(a.Specific)))
}
