package iva

import "github.com/dizzyi/inovo-go/geometry"

// Clamp ranges for motion parameter setters. Inputs outside a range are
// pulled to the nearest bound before unit conversion.
const (
	MinPercent  = 1.0
	MaxPercent  = 100.0
	MinLengthMM = 1.0
	MaxLengthMM = 1000.0
	MinAngleDeg = 1.0
	MaxAngleDeg = 720.0
)

// MotionParam is the motion tuning set the controller applies to queued
// moves. Values are held in controller units (fractions, meters, radians);
// setters take operator units and clamp before converting.
type MotionParam struct {
	speed           float64 // fraction of full speed
	accel           float64 // fraction of full acceleration
	blendLinear     float64 // meters
	blendAngular    float64 // radians
	tcpSpeedLinear  float64 // meters per second
	tcpSpeedAngular float64 // radians per second
}

// DefaultParam is full speed with minimum blending: the tuning the
// controller boots with.
func DefaultParam() MotionParam {
	return MotionParam{}.
		WithSpeed(MaxPercent).
		WithAccel(MaxPercent).
		WithBlendLinear(MinLengthMM).
		WithBlendAngular(MinAngleDeg).
		WithTCPSpeedLinear(MaxLengthMM).
		WithTCPSpeedAngular(MaxAngleDeg)
}

// WithSpeed sets the speed as a percentage of full scale.
func (p MotionParam) WithSpeed(percent float64) MotionParam {
	p.speed = clamp(percent, MinPercent, MaxPercent) / 100.0
	return p
}

// WithAccel sets the acceleration as a percentage of full scale.
func (p MotionParam) WithAccel(percent float64) MotionParam {
	p.accel = clamp(percent, MinPercent, MaxPercent) / 100.0
	return p
}

// WithBlendLinear sets the linear blend radius in millimeters.
func (p MotionParam) WithBlendLinear(mm float64) MotionParam {
	p.blendLinear = clamp(mm, MinLengthMM, MaxLengthMM) / 1000.0
	return p
}

// WithBlendAngular sets the angular blend radius in degrees.
func (p MotionParam) WithBlendAngular(deg float64) MotionParam {
	p.blendAngular = geometry.DegToRad(clamp(deg, MinAngleDeg, MaxAngleDeg))
	return p
}

// WithTCPSpeedLinear caps the tool-point linear speed in mm per second.
func (p MotionParam) WithTCPSpeedLinear(mmPerSec float64) MotionParam {
	p.tcpSpeedLinear = clamp(mmPerSec, MinLengthMM, MaxLengthMM) / 1000.0
	return p
}

// WithTCPSpeedAngular caps the tool-point angular speed in degrees per second.
func (p MotionParam) WithTCPSpeedAngular(degPerSec float64) MotionParam {
	p.tcpSpeedAngular = geometry.DegToRad(clamp(degPerSec, MinAngleDeg, MaxAngleDeg))
	return p
}

// Speed reports the stored speed fraction.
func (p MotionParam) Speed() float64 { return p.speed }

// Accel reports the stored acceleration fraction.
func (p MotionParam) Accel() float64 { return p.accel }

// BlendLinear reports the stored linear blend radius in meters.
func (p MotionParam) BlendLinear() float64 { return p.blendLinear }

// BlendAngular reports the stored angular blend radius in radians.
func (p MotionParam) BlendAngular() float64 { return p.blendAngular }

// TCPSpeedLinear reports the stored tool-point speed cap in meters per second.
func (p MotionParam) TCPSpeedLinear() float64 { return p.tcpSpeedLinear }

// TCPSpeedAngular reports the stored tool-point speed cap in radians per second.
func (p MotionParam) TCPSpeedAngular() float64 { return p.tcpSpeedAngular }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
