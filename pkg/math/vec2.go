// Package math provides the small vector and matrix types shared by the
// terrain pipeline, the camera and the renderer.
package math

import "math"

// Vec2 is a 2D vector. Terrain texture coordinates use X as U and Y as V.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Array returns the components as a fixed-size array for GPU packing.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
