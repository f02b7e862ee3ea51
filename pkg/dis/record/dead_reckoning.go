package record

import (
	"github.com/marmos91/opendis/pkg/dis/disenc"
	"github.com/marmos91/opendis/pkg/dis/enums"
)

// DeadReckoningOtherParametersLength is the size of the algorithm-specific block.
const DeadReckoningOtherParametersLength = 15

// DeadReckoningParametersLength is the wire size of DeadReckoningParameters.
const DeadReckoningParametersLength = 1 + DeadReckoningOtherParametersLength + 2*Vector3FloatLength

// DeadReckoningParameters tells receivers how to extrapolate an entity's
// motion between updates.
type DeadReckoningParameters struct {
	Algorithm          enums.DeadReckoningAlgorithm             `json:"algorithm"`
	OtherParameters    [DeadReckoningOtherParametersLength]byte `json:"other_parameters"`
	LinearAcceleration LinearAcceleration                       `json:"linear_acceleration"`
	AngularVelocity    AngularVelocity                          `json:"angular_velocity"`
}

// Serialize writes the dead reckoning parameters.
func (d DeadReckoningParameters) Serialize(w *disenc.Writer) {
	w.WriteUint8(uint8(d.Algorithm))
	w.WriteBytes(d.OtherParameters[:])
	d.LinearAcceleration.Serialize(w)
	d.AngularVelocity.Serialize(w)
}

// Deserialize reads the dead reckoning parameters.
func (d *DeadReckoningParameters) Deserialize(r *disenc.Reader) error {
	d.Algorithm = enums.DecodeDeadReckoningAlgorithm(r.ReadUint8())
	r.ReadInto(d.OtherParameters[:])
	if err := d.LinearAcceleration.Deserialize(r); err != nil {
		return err
	}
	return d.AngularVelocity.Deserialize(r)
}

// ByteLength returns the wire size of the dead reckoning parameters.
func (DeadReckoningParameters) ByteLength() int { return DeadReckoningParametersLength }
