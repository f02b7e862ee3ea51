package record

import "github.com/marmos91/opendis/pkg/dis/disenc"

// Vector3Float is three single precision components in x, y, z order.
type Vector3Float struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vector3FloatLength is the wire size of Vector3Float.
const Vector3FloatLength = 12

// Serialize writes the vector3 float.
func (v Vector3Float) Serialize(w *disenc.Writer) {
	w.WriteFloat32(v.X)
	w.WriteFloat32(v.Y)
	w.WriteFloat32(v.Z)
}

// Deserialize reads a vector3 float.
func (v *Vector3Float) Deserialize(r *disenc.Reader) error {
	v.X = r.ReadFloat32()
	v.Y = r.ReadFloat32()
	v.Z = r.ReadFloat32()
	return r.Err()
}

// ByteLength returns the wire size of the vector3 float.
func (Vector3Float) ByteLength() int { return Vector3FloatLength }

// Vector quantities that share the Vector3Float layout.
type (
	// LinearVelocity is in meters per second.
	LinearVelocity = Vector3Float
	// LinearAcceleration is in meters per second squared.
	LinearAcceleration = Vector3Float
	// AngularVelocity is in radians per second about the body axes.
	AngularVelocity = Vector3Float
	// EntityCoordinateVector is a location relative to an entity, in meters.
	EntityCoordinateVector = Vector3Float
)

// Vector3Double is three double precision components in x, y, z order.
type Vector3Double struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector3DoubleLength is the wire size of Vector3Double.
const Vector3DoubleLength = 24

// Serialize writes the vector3 double.
func (v Vector3Double) Serialize(w *disenc.Writer) {
	w.WriteFloat64(v.X)
	w.WriteFloat64(v.Y)
	w.WriteFloat64(v.Z)
}

// Deserialize reads a vector3 double.
func (v *Vector3Double) Deserialize(r *disenc.Reader) error {
	v.X = r.ReadFloat64()
	v.Y = r.ReadFloat64()
	v.Z = r.ReadFloat64()
	return r.Err()
}

// ByteLength returns the wire size of the vector3 double.
func (Vector3Double) ByteLength() int { return Vector3DoubleLength }

// WorldCoordinate is a geocentric location in meters.
type WorldCoordinate = Vector3Double

// EulerAngles is an orientation in radians.
type EulerAngles struct {
	Psi   float32 `json:"psi"`
	Theta float32 `json:"theta"`
	Phi   float32 `json:"phi"`
}

// EulerAnglesLength is the wire size of EulerAngles.
const EulerAnglesLength = 12

// Serialize writes the Euler angles.
func (e EulerAngles) Serialize(w *disenc.Writer) {
	w.WriteFloat32(e.Psi)
	w.WriteFloat32(e.Theta)
	w.WriteFloat32(e.Phi)
}

// Deserialize reads the Euler angles.
func (e *EulerAngles) Deserialize(r *disenc.Reader) error {
	e.Psi = r.ReadFloat32()
	e.Theta = r.ReadFloat32()
	e.Phi = r.ReadFloat32()
	return r.Err()
}

// ByteLength returns the wire size of the Euler angles.
func (EulerAngles) ByteLength() int { return EulerAnglesLength }
