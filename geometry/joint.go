package geometry

// JointCoord is a six-axis joint coordinate in degrees. The zero value is
// the all-zero home position.
type JointCoord struct {
	J1, J2, J3, J4, J5, J6 float64
}

func FromJ1(degree float64) JointCoord { return JointCoord{J1: degree} }
func FromJ2(degree float64) JointCoord { return JointCoord{J2: degree} }
func FromJ3(degree float64) JointCoord { return JointCoord{J3: degree} }
func FromJ4(degree float64) JointCoord { return JointCoord{J4: degree} }
func FromJ5(degree float64) JointCoord { return JointCoord{J5: degree} }
func FromJ6(degree float64) JointCoord { return JointCoord{J6: degree} }

func (j JointCoord) Kind() PoseKind { return PoseJoint }

func (j JointCoord) Components() [6]float64 {
	return [6]float64{j.J1, j.J2, j.J3, j.J4, j.J5, j.J6}
}

// Negate satisfies Pose; it is Neg under another name.
func (j JointCoord) Negate() Pose { return j.Neg() }

// Neg flips the sign of every joint angle.
func (j JointCoord) Neg() JointCoord {
	return JointCoord{-j.J1, -j.J2, -j.J3, -j.J4, -j.J5, -j.J6}
}

// Add sums two joint coordinates axis by axis.
func (j JointCoord) Add(other JointCoord) JointCoord {
	return JointCoord{
		j.J1 + other.J1, j.J2 + other.J2, j.J3 + other.J3,
		j.J4 + other.J4, j.J5 + other.J5, j.J6 + other.J6,
	}
}

// Sub subtracts other axis by axis.
func (j JointCoord) Sub(other JointCoord) JointCoord {
	return j.Add(other.Neg())
}

func (j JointCoord) ThenJ1(degree float64) JointCoord { return j.Add(JointCoord{J1: degree}) }
func (j JointCoord) ThenJ2(degree float64) JointCoord { return j.Add(JointCoord{J2: degree}) }
func (j JointCoord) ThenJ3(degree float64) JointCoord { return j.Add(JointCoord{J3: degree}) }
func (j JointCoord) ThenJ4(degree float64) JointCoord { return j.Add(JointCoord{J4: degree}) }
func (j JointCoord) ThenJ5(degree float64) JointCoord { return j.Add(JointCoord{J5: degree}) }
func (j JointCoord) ThenJ6(degree float64) JointCoord { return j.Add(JointCoord{J6: degree}) }

// Interpolate blends two joint coordinates linearly. s runs from 0 (j) to
// 1 (other).
func (j JointCoord) Interpolate(other JointCoord, s float64) JointCoord {
	scale := func(c JointCoord, f float64) JointCoord {
		return JointCoord{c.J1 * f, c.J2 * f, c.J3 * f, c.J4 * f, c.J5 * f, c.J6 * f}
	}
	return scale(j, 1-s).Add(scale(other, s))
}

// JointsFromSlice builds a JointCoord from six values in j1..j6 order.
func JointsFromSlice(q []float64) (JointCoord, bool) {
	if len(q) != 6 {
		return JointCoord{}, false
	}
	return JointCoord{q[0], q[1], q[2], q[3], q[4], q[5]}, true
}
