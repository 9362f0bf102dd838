// Package lighting provides the directional light applied to the terrain.
package lighting

import (
	"math"

	bmath "github.com/Faultbox/bumpterrain/pkg/math"
)

// Directional is a light with a colour and a direction of travel.
type Directional struct {
	Diffuse   [4]float32 // RGBA colour (0-1 range)
	Direction [3]float32 // Direction the light travels, not the way to the light
}

// Default returns the terrain's fixed light: light grey shining straight down.
func Default() Directional {
	return Directional{
		Diffuse:   [4]float32{0.82, 0.82, 0.82, 1},
		Direction: [3]float32{0, -1, 0},
	}
}

// ToLight returns the unit vector pointing from a surface toward the light,
// as used by N.L shading. A zero direction stays zero.
func (d Directional) ToLight() [3]float32 {
	v := bmath.Vec3{X: -d.Direction[0], Y: -d.Direction[1], Z: -d.Direction[2]}
	return v.Normalize().Array()
}

// Intensity returns the diffuse factor for a surface normal, clamped to
// [0, 1]. The normal is expected to be unit length.
func (d Directional) Intensity(normal [3]float32) float32 {
	l := d.ToLight()
	dot := normal[0]*l[0] + normal[1]*l[1] + normal[2]*l[2]
	return float32(math.Max(0, math.Min(1, float64(dot))))
}
