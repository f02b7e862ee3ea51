package appearance

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/field"
)

var capabilitiesLayout = field.NewLayout(32,
	field.Bits{Name: "ammunition_supply", Width: 1},
	field.Bits{Name: "fuel_supply", Width: 1},
	field.Bits{Name: "recovery", Width: 1},
	field.Bits{Name: "repair", Width: 1},
	field.Bits{Name: "reserved", Width: 28},
)

// Capabilities is the 32-bit entity capabilities record.
type Capabilities struct {
	AmmunitionSupply bool `json:"ammunition_supply"`
	FuelSupply       bool `json:"fuel_supply"`
	Recovery         bool `json:"recovery"`
	Repair           bool `json:"repair"`
}

// CapabilitiesLength is the wire size of Capabilities.
const CapabilitiesLength = 4

// DecodeCapabilities reads the capability flags; reserved bits are dropped.
func DecodeCapabilities(word uint32) Capabilities {
	v := capabilitiesLayout.Unpack(uint64(word))
	return Capabilities{
		AmmunitionSupply: v[0] == 1,
		FuelSupply:       v[1] == 1,
		Recovery:         v[2] == 1,
		Repair:           v[3] == 1,
	}
}

func (c Capabilities) Word() uint32 {
	return uint32(capabilitiesLayout.Pack(
		boolBit(c.AmmunitionSupply),
		boolBit(c.FuelSupply),
		boolBit(c.Recovery),
		boolBit(c.Repair),
		0,
	))
}

func (c Capabilities) Serialize(w *disenc.Writer) { w.WriteUint32(c.Word()) }

func (c *Capabilities) Deserialize(r *disenc.Reader) error {
	*c = DecodeCapabilities(r.ReadUint32())
	return r.Err()
}

func (Capabilities) ByteLength() int { return CapabilitiesLength }
