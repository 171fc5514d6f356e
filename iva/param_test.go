package iva

import (
	"testing"

	"github.com/dizzyi/inovo-go/geometry"
)

func TestParamClampsToMinimum(t *testing.T) {
	p := MotionParam{}.WithSpeed(0).WithAccel(-10).WithBlendLinear(0).WithBlendAngular(0.5)
	if got := p.Speed(); got != MinPercent/100.0 {
		t.Fatalf("speed: got %v want %v", got, MinPercent/100.0)
	}
	if got := p.Accel(); got != MinPercent/100.0 {
		t.Fatalf("accel: got %v want %v", got, MinPercent/100.0)
	}
	if got := p.BlendLinear(); got != MinLengthMM/1000.0 {
		t.Fatalf("blend linear: got %v want %v", got, MinLengthMM/1000.0)
	}
	if got := p.BlendAngular(); got != geometry.DegToRad(MinAngleDeg) {
		t.Fatalf("blend angular: got %v", got)
	}
}

func TestParamClampsToMaximum(t *testing.T) {
	p := MotionParam{}.WithSpeed(250).WithTCPSpeedLinear(99999).WithTCPSpeedAngular(5000)
	if got := p.Speed(); got != 1.0 {
		t.Fatalf("speed: got %v", got)
	}
	if got := p.TCPSpeedLinear(); got != 1.0 {
		t.Fatalf("tcp linear: got %v", got)
	}
	if got := p.TCPSpeedAngular(); got != geometry.DegToRad(MaxAngleDeg) {
		t.Fatalf("tcp angular: got %v", got)
	}
}

func TestParamConvertsToControllerUnits(t *testing.T) {
	p := MotionParam{}.WithSpeed(40).WithBlendLinear(250).WithBlendAngular(90)
	if got := p.Speed(); got != 0.4 {
		t.Fatalf("speed fraction: got %v", got)
	}
	if got := p.BlendLinear(); got != 0.25 {
		t.Fatalf("blend meters: got %v", got)
	}
	if got := p.BlendAngular(); got != geometry.DegToRad(90) {
		t.Fatalf("blend radians: got %v", got)
	}
}

func TestDefaultParamIsInRange(t *testing.T) {
	p := DefaultParam()
	if p.Speed() != 1.0 || p.Accel() != 1.0 {
		t.Fatalf("speed/accel: %v/%v", p.Speed(), p.Accel())
	}
	if p.BlendLinear() != MinLengthMM/1000.0 {
		t.Fatalf("blend linear: %v", p.BlendLinear())
	}
	if p.BlendAngular() != geometry.DegToRad(MinAngleDeg) {
		t.Fatalf("blend angular: %v", p.BlendAngular())
	}
}

func TestParamBuilderDoesNotMutateReceiver(t *testing.T) {
	base := DefaultParam()
	_ = base.WithSpeed(10)
	if base.Speed() != 1.0 {
		t.Fatalf("receiver mutated: %v", base.Speed())
	}
}
