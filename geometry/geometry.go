package geometry

import "math"

// PoseKind discriminates the two pose representations a robot reports.
type PoseKind int

const (
	PoseCartesian PoseKind = iota
	PoseJoint
)

func (k PoseKind) String() string {
	switch k {
	case PoseCartesian:
		return "cartesian"
	case PoseJoint:
		return "joint"
	default:
		return "unknown"
	}
}

// Pose is a target a robot can move to, either a cartesian Transform or a
// JointCoord. Components reports the six scalar components in wire order
// (x,y,z,rx,ry,rz or j1..j6), Negate the pose that undoes this one.
type Pose interface {
	Kind() PoseKind
	Components() [6]float64
	Negate() Pose
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg / 180.0 * math.Pi
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
