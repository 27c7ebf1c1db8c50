// Package core provides fundamental types and utilities for the arcade loop.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Point is a position in logical surface coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the Euclidean distance between two points.
func Dist(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IntRand returns an integer uniformly chosen from the inclusive range
// [start, end]. Callers must ensure start <= end.
// A nil rng falls back to the package-level source.
func IntRand(rng *rand.Rand, start, end int) int {
	if rng == nil {
		return start + rand.Intn(end-start+1)
	}
	return start + rng.Intn(end-start+1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
