// Package iva owns the instruction model and wire codec for the robot
// controller's IVA runtime sequence.
//
// Ownership boundary:
// - instruction and robot command construction
// - deterministic line encoding
// - scalar and pose reply decoding
package iva
