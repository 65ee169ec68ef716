// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "github.com/go-gl/mathgl/mgl32"

// Key is a physical keyboard key. The values are the same as
// those of glfw.Key.
type Key int

// The keys used by the example game and its debug controls.
const (
	KeyUnknown    Key = -1
	KeySpace      Key = 32
	Key0          Key = 48
	Key1          Key = 49
	Key2          Key = 50
	Key3          Key = 51
	KeyA          Key = 65
	KeyC          Key = 67
	KeyD          Key = 68
	KeyE          Key = 69
	KeyF          Key = 70
	KeyQ          Key = 81
	KeyR          Key = 82
	KeyS          Key = 83
	KeyW          Key = 87
	KeyEscape     Key = 256
	KeyEnter      Key = 257
	KeyTab        Key = 258
	KeyRight      Key = 262
	KeyLeft       Key = 263
	KeyDown       Key = 264
	KeyUp         Key = 265
	KeyF1         Key = 290
	KeyF5         Key = 294
	KeyLeftShift  Key = 340
	KeyLeftCtrl   Key = 341
	KeyLeftAlt    Key = 342
	KeyRightShift Key = 344
)

// Input is the keyboard and mouse state of a window, updated by
// window events and advanced once per frame with [Input.EndFrame].
// A key is "pressed" in the frame it went down, "held" while it is
// down, and "released" in the frame it went up.
type Input struct {
	down map[Key]bool
	prev map[Key]bool

	mouse      mgl32.Vec2
	mouseDelta mgl32.Vec2
	hasMouse   bool
}

// NewInput returns a new Input with no keys down.
func NewInput() *Input {
	return &Input{down: map[Key]bool{}, prev: map[Key]bool{}}
}

// KeyEvent records a key going down or up.
func (in *Input) KeyEvent(k Key, down bool) {
	if k == KeyUnknown {
		return
	}
	in.down[k] = down
}

// MouseMoveEvent records the cursor moving to x, y in window
// coordinates. The first event only sets the position, so that
// the initial jump to the cursor position is not seen as motion.
func (in *Input) MouseMoveEvent(x, y float32) {
	pos := mgl32.Vec2{x, y}
	if in.hasMouse {
		in.mouseDelta = in.mouseDelta.Add(pos.Sub(in.mouse))
	}
	in.mouse = pos
	in.hasMouse = true
}

// EndFrame starts a new frame: keys that went down or up become
// held or idle, and the mouse motion is reset.
func (in *Input) EndFrame() {
	clear(in.prev)
	for k, d := range in.down {
		if d {
			in.prev[k] = true
		}
	}
	in.mouseDelta = mgl32.Vec2{}
}

// KeyPressed returns whether the key went down in this frame.
func (in *Input) KeyPressed(k Key) bool {
	return in.down[k] && !in.prev[k]
}

// KeyHeld returns whether the key is down.
func (in *Input) KeyHeld(k Key) bool {
	return in.down[k]
}

// KeyReleased returns whether the key went up in this frame.
func (in *Input) KeyReleased(k Key) bool {
	return !in.down[k] && in.prev[k]
}

// MousePos returns the last cursor position in window coordinates.
func (in *Input) MousePos() mgl32.Vec2 {
	return in.mouse
}

// MouseDelta returns the cursor motion in this frame.
func (in *Input) MouseDelta() mgl32.Vec2 {
	return in.mouseDelta
}
