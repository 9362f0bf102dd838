package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

const epsilon = 1e-3

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) <= epsilon
}

func approxVec(a, b math.Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestNewFPSCamera(t *testing.T) {
	c := NewFPSCamera(1920, 1080)

	if !approx(c.Aspect, 1920.0/1080.0) {
		t.Errorf("expected aspect 16:9, got %v", c.Aspect)
	}
	if !approx(c.FOV, 0.4*gomath.Pi) {
		t.Errorf("expected fov 0.4pi, got %v", c.FOV)
	}
	if c.Near != 1 || c.Far != 100000 {
		t.Errorf("unexpected clip range %v..%v", c.Near, c.Far)
	}
	if !approxVec(c.Forward(), DefaultForward) {
		t.Errorf("expected default forward, got %v", c.Forward())
	}
	if c.World() != math.Identity() {
		t.Error("expected identity world matrix")
	}
}

func TestSetRotation_Degrees(t *testing.T) {
	c := NewFPSCamera(800, 600)
	c.SetRotation(20, 30, 0)

	if !approx(c.Pitch, 20*gomath.Pi/180) {
		t.Errorf("expected pitch 20deg in radians, got %v", c.Pitch)
	}
	if !approx(c.Yaw, 30*gomath.Pi/180) {
		t.Errorf("expected yaw 30deg in radians, got %v", c.Yaw)
	}
	if c.Roll != 0 {
		t.Errorf("expected zero roll, got %v", c.Roll)
	}
}

func TestUpdate_Orientation(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float32 // degrees
		forward    math.Vec3
	}{
		{"default", 0, 0, math.Vec3{Z: 1}},
		{"yaw 90", 0, 90, math.Vec3{X: 1}},
		{"yaw -90", 0, -90, math.Vec3{X: -1}},
		{"pitch down", 45, 0, math.Vec3{Y: -gomath.Sqrt2 / 2, Z: gomath.Sqrt2 / 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFPSCamera(800, 600)
			c.SetRotation(tt.pitch, tt.yaw, 0)
			c.Update()

			if !approxVec(c.Forward(), tt.forward) {
				t.Errorf("expected forward %v, got %v", tt.forward, c.Forward())
			}
			// Basis stays orthonormal
			if !approx(c.Forward().Dot(c.Right()), 0) || !approx(c.Forward().Dot(c.Up()), 0) {
				t.Errorf("basis not orthogonal: f=%v r=%v u=%v", c.Forward(), c.Right(), c.Up())
			}
			// Screen right matches the view matrix's right axis
			if !approxVec(c.Right(), c.Forward().Cross(c.Up())) {
				t.Errorf("right %v is not forward x up", c.Right())
			}
		})
	}
}

func TestUpdate_ConsumesMovement(t *testing.T) {
	c := NewFPSCamera(800, 600)
	c.SetPosition(500, 75, 400)
	c.Move(0, 10)
	c.Update()

	want := math.Vec3{X: 500, Y: 75, Z: 410}
	if !approxVec(c.Position, want) {
		t.Fatalf("expected %v, got %v", want, c.Position)
	}

	// Movement is cleared after Update
	c.Update()
	if !approxVec(c.Position, want) {
		t.Errorf("expected movement to be consumed, got %v", c.Position)
	}

	c.Move(2, 0)
	c.Update()
	if !approxVec(c.Position, math.Vec3{X: 498, Y: 75, Z: 410}) {
		t.Errorf("expected strafe right along -X, got %v", c.Position)
	}
}

func TestView_CentersTarget(t *testing.T) {
	c := NewFPSCamera(800, 600)
	c.SetPosition(500, 75, 400)
	c.SetRotation(20, 30, 0)
	c.Update()

	// A point ahead of the camera lands on the view-space -Z axis
	ahead := c.Position.Add(c.Forward().Scale(100))
	p := c.View().TransformPoint(ahead)
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, -100) {
		t.Errorf("expected (0,0,-100) in view space, got %v", p)
	}
}

func TestTurn_ClampsPitch(t *testing.T) {
	c := NewFPSCamera(800, 600)
	c.Turn(0.5, 10)
	if c.Pitch != MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", float32(MaxPitch), c.Pitch)
	}
	c.Turn(0, -20)
	if c.Pitch != -MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", float32(-MaxPitch), c.Pitch)
	}
	if !approx(c.Yaw, 0.5) {
		t.Errorf("expected yaw 0.5, got %v", c.Yaw)
	}
}

func TestSetViewport_IgnoresEmpty(t *testing.T) {
	c := NewFPSCamera(800, 400)
	c.SetViewport(0, 0)
	if c.Aspect != 2 {
		t.Errorf("expected aspect to stay 2, got %v", c.Aspect)
	}
}
