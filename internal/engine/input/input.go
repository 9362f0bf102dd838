// Package input handles SDL2 input events and maps them to fly controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bumpterrain/internal/engine/camera"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input polls SDL once per frame and keeps the frame's events, key state
// and accumulated relative mouse motion.
type Input struct {
	events []Event
	keys   []uint8
	mouseX int32
	mouseY int32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. It returns true when the demo should quit,
// either from a window close or the Escape key.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.mouseX, i.mouseY = 0, 0
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			switch e.Type {
			case sdl.KEYDOWN:
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			case sdl.KEYUP:
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.mouseX += e.XRel
			i.mouseY += e.YRel
		}
	}

	i.keys = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyDown reports whether a key is held as of the last Update.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	return int(scancode) < len(i.keys) && i.keys[scancode] != 0
}

// MouseDelta returns the relative mouse motion accumulated in the last Update.
func (i *Input) MouseDelta() (dx, dy int32) {
	return i.mouseX, i.mouseY
}

// Fly returns the frame's fly-camera input.
func (i *Input) Fly() camera.FlyInput {
	dx, dy := i.MouseDelta()
	return FlyInput(i.IsKeyDown, dx, dy)
}

// FlyInput maps WASD, left shift and relative mouse motion to camera input.
func FlyInput(down func(sdl.Scancode) bool, dx, dy int32) camera.FlyInput {
	return camera.FlyInput{
		Left:    down(sdl.SCANCODE_A),
		Right:   down(sdl.SCANCODE_D),
		Forward: down(sdl.SCANCODE_W),
		Back:    down(sdl.SCANCODE_S),
		Boost:   down(sdl.SCANCODE_LSHIFT),
		MouseDX: float32(dx),
		MouseDY: float32(dy),
	}
}
