package facewire

import "math"

// Matrix3 represents a 3x3 linear transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| G  H  I |
//
// It is used for the camera rotation applied to model-space points before
// projection. There is no translation component; the face model is centered
// at the origin and translation happens in pixel space.
type Matrix3 struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

// Identity3 returns the identity transformation matrix.
func Identity3() Matrix3 {
	return Matrix3{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// RotateZ creates a rotation about the Z (vertical) axis. Positive angles
// turn the face toward the viewer's right. Angle in radians.
func RotateZ(angle float64) Matrix3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// RotateX creates a rotation about the X (horizontal) axis. Positive angles
// tilt the face downward. Angle in radians.
func RotateX(angle float64) Matrix3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3{
		A: 1, B: 0, C: 0,
		D: 0, E: cos, F: -sin,
		G: 0, H: sin, I: cos,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	return Matrix3{
		A: m.A*other.A + m.B*other.D + m.C*other.G,
		B: m.A*other.B + m.B*other.E + m.C*other.H,
		C: m.A*other.C + m.B*other.F + m.C*other.I,
		D: m.D*other.A + m.E*other.D + m.F*other.G,
		E: m.D*other.B + m.E*other.E + m.F*other.H,
		F: m.D*other.C + m.E*other.F + m.F*other.I,
		G: m.G*other.A + m.H*other.D + m.I*other.G,
		H: m.G*other.B + m.H*other.E + m.I*other.H,
		I: m.G*other.C + m.H*other.F + m.I*other.I,
	}
}

// Transform applies the transformation to a vector.
func (m Matrix3) Transform(v Vec3) Vec3 {
	return Vec3{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z,
		Y: m.D*v.X + m.E*v.Y + m.F*v.Z,
		Z: m.G*v.X + m.H*v.Y + m.I*v.Z,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0 &&
		m.G == 0 && m.H == 0 && m.I == 1
}

// YawPitch composes the camera rotation: yaw about the vertical (Z) axis
// first, then pitch about the horizontal (X) axis. Angles in degrees.
func YawPitch(yawDeg, pitchDeg float64) Matrix3 {
	yaw := yawDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180
	return RotateX(pitch).Multiply(RotateZ(yaw))
}
