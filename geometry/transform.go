package geometry

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid 3D transformation: a translation in millimeters and
// an XYZ euler rotation in degrees. The zero value is the identity.
//
// Composition follows the world-frame convention of the controller: Then
// applies the receiver first and the argument second.
type Transform struct {
	X, Y, Z    float64 // millimeters
	RX, RY, RZ float64 // degrees
}

// Identity is the do-nothing transform.
func Identity() Transform { return Transform{} }

// New builds a transform from a translation in millimeters and an XYZ euler
// rotation in degrees.
func New(x, y, z, rx, ry, rz float64) Transform {
	return Transform{X: x, Y: y, Z: z, RX: rx, RY: ry, RZ: rz}
}

func FromX(mm float64) Transform { return Transform{X: mm} }
func FromY(mm float64) Transform { return Transform{Y: mm} }
func FromZ(mm float64) Transform { return Transform{Z: mm} }

func FromRX(degree float64) Transform { return Transform{RX: degree} }
func FromRY(degree float64) Transform { return Transform{RY: degree} }
func FromRZ(degree float64) Transform { return Transform{RZ: degree} }

// FromVector builds a pure translation.
func FromVector(mm [3]float64) Transform {
	return Transform{X: mm[0], Y: mm[1], Z: mm[2]}
}

// FromEuler builds a pure rotation.
func FromEuler(degree [3]float64) Transform {
	return Transform{RX: degree[0], RY: degree[1], RZ: degree[2]}
}

func (t Transform) Kind() PoseKind { return PoseCartesian }

func (t Transform) Components() [6]float64 {
	return [6]float64{t.X, t.Y, t.Z, t.RX, t.RY, t.RZ}
}

// Negate satisfies Pose; it is Inverse under another name.
func (t Transform) Negate() Pose { return t.Inverse() }

// Vector reports the translation part in millimeters.
func (t Transform) Vector() [3]float64 { return [3]float64{t.X, t.Y, t.Z} }

// Euler reports the rotation part in degrees.
func (t Transform) Euler() [3]float64 { return [3]float64{t.RX, t.RY, t.RZ} }

// VectorOnly keeps the translation and drops the rotation.
func (t Transform) VectorOnly() Transform { return Transform{X: t.X, Y: t.Y, Z: t.Z} }

// EulerOnly keeps the rotation and drops the translation.
func (t Transform) EulerOnly() Transform { return Transform{RX: t.RX, RY: t.RY, RZ: t.RZ} }

// Then composes next onto t: the result applies t first, then next.
func (t Transform) Then(next Transform) Transform { return compose(next, t) }

func (t Transform) ThenX(mm float64) Transform { return t.Then(Transform{X: mm}) }
func (t Transform) ThenY(mm float64) Transform { return t.Then(Transform{Y: mm}) }
func (t Transform) ThenZ(mm float64) Transform { return t.Then(Transform{Z: mm}) }

func (t Transform) ThenRX(degree float64) Transform { return t.Then(Transform{RX: degree}) }
func (t Transform) ThenRY(degree float64) Transform { return t.Then(Transform{RY: degree}) }
func (t Transform) ThenRZ(degree float64) Transform { return t.Then(Transform{RZ: degree}) }

// ThenVector appends a translation.
func (t Transform) ThenVector(mm [3]float64) Transform {
	return t.Then(Transform{X: mm[0], Y: mm[1], Z: mm[2]})
}

// ThenEuler appends a rotation.
func (t Transform) ThenEuler(degree [3]float64) Transform {
	return t.Then(Transform{RX: degree[0], RY: degree[1], RZ: degree[2]})
}

// ThenRelativeTo applies next in the frame of reference instead of the world
// frame: the receiver is rebased into reference, transformed, and based back.
func (t Transform) ThenRelativeTo(reference, next Transform) Transform {
	local := compose(reference.Inverse(), t)
	local = compose(next, local)
	return compose(reference, local)
}

// ThenRelative applies next relative to the receiver's own translation, so a
// tool offset moves along the current position rather than the world axes.
func (t Transform) ThenRelative(next Transform) Transform {
	return t.ThenRelativeTo(t.VectorOnly(), next)
}

// Inverse is the transform that undoes t.
func (t Transform) Inverse() Transform {
	q, v := t.parts()
	qi := quat.Conj(q)
	vi := rotate(qi, v)
	return fromParts(qi, [3]float64{-vi[0], -vi[1], -vi[2]})
}

// Interpolate blends two transforms: linear on translation, shortest-arc
// spherical on rotation. s runs from 0 (t) to 1 (other).
func (t Transform) Interpolate(other Transform, s float64) Transform {
	qa, va := t.parts()
	qb, vb := other.parts()
	v := [3]float64{
		va[0] + (vb[0]-va[0])*s,
		va[1] + (vb[1]-va[1])*s,
		va[2] + (vb[2]-va[2])*s,
	}
	return fromParts(slerp(qa, qb, s), v)
}

// parts splits the transform into a unit quaternion and translation vector.
func (t Transform) parts() (quat.Number, [3]float64) {
	return eulerQuat(t.RX, t.RY, t.RZ), t.Vector()
}

// compose returns a after b: the isometry product a*b.
func compose(a, b Transform) Transform {
	qa, va := a.parts()
	qb, vb := b.parts()
	q := quat.Mul(qa, qb)
	r := rotate(qa, vb)
	return fromParts(q, [3]float64{va[0] + r[0], va[1] + r[1], va[2] + r[2]})
}

func fromParts(q quat.Number, v [3]float64) Transform {
	rx, ry, rz := quatEuler(q)
	return Transform{X: v[0], Y: v[1], Z: v[2], RX: rx, RY: ry, RZ: rz}
}

// eulerQuat builds the rotation Rz*Ry*Rx from XYZ euler angles in degrees.
func eulerQuat(rx, ry, rz float64) quat.Number {
	hx, hy, hz := DegToRad(rx)/2, DegToRad(ry)/2, DegToRad(rz)/2
	qx := quat.Number{Real: math.Cos(hx), Imag: math.Sin(hx)}
	qy := quat.Number{Real: math.Cos(hy), Jmag: math.Sin(hy)}
	qz := quat.Number{Real: math.Cos(hz), Kmag: math.Sin(hz)}
	return quat.Mul(quat.Mul(qz, qy), qx)
}

// quatEuler extracts XYZ euler angles in degrees from a unit quaternion.
func quatEuler(q quat.Number) (rx, ry, rz float64) {
	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	roll := math.Atan2(2*(q.Real*q.Imag+q.Jmag*q.Kmag), 1-2*(q.Imag*q.Imag+q.Jmag*q.Jmag))
	pitch := math.Asin(sinp)
	yaw := math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
	return RadToDeg(roll), RadToDeg(pitch), RadToDeg(yaw)
}

// rotate applies a unit quaternion rotation to a vector.
func rotate(q quat.Number, v [3]float64) [3]float64 {
	p := quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return [3]float64{r.Imag, r.Jmag, r.Kmag}
}

// slerp interpolates rotations along the shortest arc. Near-parallel inputs
// fall back to normalized linear interpolation.
func slerp(a, b quat.Number, s float64) quat.Number {
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = quat.Scale(-1, b)
		dot = -dot
	}
	if dot > 0.9995 {
		q := quat.Add(quat.Scale(1-s, a), quat.Scale(s, b))
		return quat.Scale(1/quat.Abs(q), q)
	}
	theta := math.Acos(dot)
	sin := math.Sin(theta)
	return quat.Add(
		quat.Scale(math.Sin((1-s)*theta)/sin, a),
		quat.Scale(math.Sin(s*theta)/sin, b),
	)
}
