// Package camera provides the free-fly camera used to view the terrain.
package camera

import (
	gomath "math"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

// Camera defaults.
const (
	DefaultFOV  = 0.4 * gomath.Pi // Vertical field of view, radians
	DefaultNear = 1.0
	DefaultFar  = 100000.0

	// MaxPitch keeps the view from flipping over the vertical.
	MaxPitch = 0.49 * gomath.Pi
)

// Basis vectors of the unrotated camera. The camera looks down +Z with +Y
// up, so in a right-handed world its right-hand side is -X.
var (
	DefaultForward = math.Vec3{X: 0, Y: 0, Z: 1}
	DefaultRight   = math.Vec3{X: -1, Y: 0, Z: 0}
	DefaultUp      = math.Vec3{X: 0, Y: 1, Z: 0}
)

// FPSCamera is a first-person camera driven by accumulated per-frame
// movement and yaw/pitch/roll angles. Call Update once per frame to apply
// pending movement and rebuild the view matrix.
type FPSCamera struct {
	Position math.Vec3

	// Orientation (radians)
	Pitch float32 // Positive looks down
	Yaw   float32 // Positive turns +Z toward +X
	Roll  float32

	// Projection
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	// Movement queued since the last Update
	moveRight   float32
	moveForward float32

	forward math.Vec3
	right   math.Vec3
	up      math.Vec3
	view    math.Mat4
}

// NewFPSCamera creates a camera for a viewport of the given size.
func NewFPSCamera(width, height int) *FPSCamera {
	c := &FPSCamera{
		Position: math.Vec3{X: 0, Y: 0, Z: 1},
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
	c.SetViewport(width, height)
	c.Update()
	return c
}

// SetViewport updates the projection aspect ratio.
func (c *FPSCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// SetPosition places the camera in world space.
func (c *FPSCamera) SetPosition(x, y, z float32) {
	c.Position = math.Vec3{X: x, Y: y, Z: z}
}

// SetRotation sets the orientation from angles in degrees.
func (c *FPSCamera) SetRotation(pitchDeg, yawDeg, rollDeg float32) {
	c.Pitch = clampPitch(pitchDeg * degToRad)
	c.Yaw = yawDeg * degToRad
	c.Roll = rollDeg * degToRad
}

// Move queues movement along the camera's right and forward axes.
func (c *FPSCamera) Move(right, forward float32) {
	c.moveRight += right
	c.moveForward += forward
}

// Turn adds to yaw and pitch (radians). Pitch is clamped to MaxPitch.
func (c *FPSCamera) Turn(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch = clampPitch(c.Pitch + pitch)
}

// Update applies queued movement along the current orientation, clears it,
// and rebuilds the view matrix.
func (c *FPSCamera) Update() {
	rotation := math.RollPitchYaw(c.Pitch, c.Yaw, c.Roll)

	c.forward = rotation.TransformDirection(DefaultForward).Normalize()
	c.right = rotation.TransformDirection(DefaultRight).Normalize()
	c.up = rotation.TransformDirection(DefaultUp).Normalize()

	c.Position = c.Position.
		Add(c.right.Scale(c.moveRight)).
		Add(c.forward.Scale(c.moveForward))
	c.moveRight = 0
	c.moveForward = 0

	c.view = math.LookAt(c.Position, c.Position.Add(c.forward), c.up)
}

// Forward returns the view direction as of the last Update.
func (c *FPSCamera) Forward() math.Vec3 { return c.forward }

// Right returns the right-hand axis as of the last Update.
func (c *FPSCamera) Right() math.Vec3 { return c.right }

// Up returns the up axis as of the last Update.
func (c *FPSCamera) Up() math.Vec3 { return c.up }

// World returns the world transform of the terrain, which is identity.
func (c *FPSCamera) World() math.Mat4 {
	return math.Identity()
}

// View returns the view matrix as of the last Update.
func (c *FPSCamera) View() math.Mat4 {
	return c.view
}

// Projection returns the perspective projection matrix.
func (c *FPSCamera) Projection() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

const degToRad = gomath.Pi / 180

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < -MaxPitch {
		return -MaxPitch
	}
	return p
}
