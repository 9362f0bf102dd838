package camera

// Fly control defaults.
const (
	DefaultMoveSpeed        = 1.5
	DefaultBoostFactor      = 5.0
	DefaultMouseSensitivity = 0.001 // radians per mouse count
)

// FlyInput is one frame of keyboard and relative mouse state.
type FlyInput struct {
	Left, Right   bool
	Forward, Back bool

	// Boost adds BoostFactor x speed to forward/back movement only.
	Boost bool

	// Relative mouse motion since the last frame
	MouseDX float32
	MouseDY float32
}

// Ground reports the terrain height under a world XZ position.
type Ground interface {
	HeightAt(x, z float32) float32
}

// FlyControls turns FlyInput into camera movement.
type FlyControls struct {
	MoveSpeed        float32
	BoostFactor      float32
	MouseSensitivity float32

	// Ground, when set, keeps the camera at least EyeHeight above it.
	Ground    Ground
	EyeHeight float32
}

// NewFlyControls returns controls with the default speeds and no ground clamp.
func NewFlyControls() *FlyControls {
	return &FlyControls{
		MoveSpeed:        DefaultMoveSpeed,
		BoostFactor:      DefaultBoostFactor,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// Apply queues movement and rotation from in onto cam. It does not call
// cam.Update.
func (f *FlyControls) Apply(cam *FPSCamera, in FlyInput) {
	var right, forward float32

	if in.Left {
		right -= f.MoveSpeed
	}
	if in.Right {
		right += f.MoveSpeed
	}
	if in.Forward {
		forward += f.MoveSpeed
		if in.Boost {
			forward += f.MoveSpeed * f.BoostFactor
		}
	}
	if in.Back {
		forward -= f.MoveSpeed
		if in.Boost {
			forward -= f.MoveSpeed * f.BoostFactor
		}
	}
	cam.Move(right, forward)

	// Mouse right turns the view right, which is negative yaw here.
	cam.Turn(-in.MouseDX*f.MouseSensitivity, in.MouseDY*f.MouseSensitivity)
}

// Step applies in, updates the camera and clamps it above the ground.
func (f *FlyControls) Step(cam *FPSCamera, in FlyInput) {
	f.Apply(cam, in)
	cam.Update()
	f.ClampToGround(cam)
}

// ClampToGround lifts cam to EyeHeight above the ground when it is below.
// It reports whether the camera moved.
func (f *FlyControls) ClampToGround(cam *FPSCamera) bool {
	if f.Ground == nil {
		return false
	}
	floor := f.Ground.HeightAt(cam.Position.X, cam.Position.Z) + f.EyeHeight
	if cam.Position.Y >= floor {
		return false
	}
	cam.Position.Y = floor
	cam.Update()
	return true
}
