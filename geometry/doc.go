// Package geometry owns spatial coordinate and robot pose primitives.
//
// Ownership boundary:
// - cartesian transforms (millimeters, euler degrees)
// - six-axis joint coordinates (degrees)
// - composition, inversion and interpolation algebra
package geometry
