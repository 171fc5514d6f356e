package geometry

import (
	"math"
	"testing"
)

func TestJointAddSubNeg(t *testing.T) {
	a := JointCoord{J1: 10, J3: -20, J6: 45}
	b := JointCoord{J1: 5, J3: 20, J5: 1}
	sum := a.Add(b)
	if sum != (JointCoord{J1: 15, J5: 1, J6: 45}) {
		t.Fatalf("add: got %+v", sum)
	}
	if got := sum.Sub(b); got != a {
		t.Fatalf("sub: got %+v want %+v", got, a)
	}
	if got := a.Neg().Neg(); got != a {
		t.Fatalf("double neg: got %+v", got)
	}
}

func TestJointAxisHelpers(t *testing.T) {
	got := FromJ1(10).ThenJ4(-5).ThenJ1(20)
	if got != (JointCoord{J1: 30, J4: -5}) {
		t.Fatalf("axis chain: got %+v", got)
	}
	if FromJ6(90) != (JointCoord{J6: 90}) {
		t.Fatalf("from j6: got %+v", FromJ6(90))
	}
}

func TestJointInterpolateMidpoint(t *testing.T) {
	a := JointCoord{J1: 0, J2: -90}
	b := JointCoord{J1: 90, J2: -30}
	mid := a.Interpolate(b, 0.5)
	want := JointCoord{J1: 45, J2: -60}
	if math.Abs(mid.J1-want.J1) > 1e-9 || math.Abs(mid.J2-want.J2) > 1e-9 {
		t.Fatalf("midpoint: got %+v want %+v", mid, want)
	}
}

func TestJointPoseContract(t *testing.T) {
	j := JointCoord{J1: 1, J2: 2, J3: 3, J4: 4, J5: 5, J6: 6}
	if j.Kind() != PoseJoint {
		t.Fatalf("kind: got %v", j.Kind())
	}
	if got := j.Components(); got != [6]float64{1, 2, 3, 4, 5, 6} {
		t.Fatalf("components: got %v", got)
	}
	neg, ok := j.Negate().(JointCoord)
	if !ok || neg != j.Neg() {
		t.Fatalf("negate: got %+v", neg)
	}
}

func TestJointsFromSlice(t *testing.T) {
	j, ok := JointsFromSlice([]float64{1, 2, 3, 4, 5, 6})
	if !ok || j != (JointCoord{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("from slice: got %+v ok=%v", j, ok)
	}
	if _, ok := JointsFromSlice([]float64{1, 2}); ok {
		t.Fatalf("short slice accepted")
	}
}
