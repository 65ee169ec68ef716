// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestInputKeys(t *testing.T) {
	in := NewInput()
	assert.False(t, in.KeyHeld(KeyW))

	in.KeyEvent(KeyW, true)
	assert.True(t, in.KeyPressed(KeyW))
	assert.True(t, in.KeyHeld(KeyW))
	assert.False(t, in.KeyReleased(KeyW))

	in.EndFrame()
	assert.False(t, in.KeyPressed(KeyW))
	assert.True(t, in.KeyHeld(KeyW))

	in.KeyEvent(KeyW, false)
	assert.True(t, in.KeyReleased(KeyW))
	assert.False(t, in.KeyHeld(KeyW))

	in.EndFrame()
	assert.False(t, in.KeyReleased(KeyW))

	in.KeyEvent(KeyUnknown, true)
	assert.False(t, in.KeyHeld(KeyUnknown))
}

func TestInputMouse(t *testing.T) {
	in := NewInput()
	in.MouseMoveEvent(100, 50)
	assert.Equal(t, mgl32.Vec2{100, 50}, in.MousePos())
	assert.Equal(t, mgl32.Vec2{}, in.MouseDelta())

	in.MouseMoveEvent(110, 45)
	in.MouseMoveEvent(115, 40)
	assert.Equal(t, mgl32.Vec2{15, -10}, in.MouseDelta())

	in.EndFrame()
	assert.Equal(t, mgl32.Vec2{}, in.MouseDelta())
	assert.Equal(t, mgl32.Vec2{115, 40}, in.MousePos())
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTimer(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	tm := &Timer{Now: clk.Now}
	tm.Reset()
	assert.Equal(t, 0.0, tm.FPS())

	clk.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, tm.Tick())
	clk.Advance(34 * time.Millisecond)
	tm.Tick()
	assert.Equal(t, 34*time.Millisecond, tm.Delta())
	assert.InDelta(t, 0.034, tm.DeltaSeconds(), 1e-6)
	assert.Equal(t, 50*time.Millisecond, tm.Elapsed())
	assert.Equal(t, 2, tm.Frames())
	assert.InDelta(t, 40.0, tm.FPS(), 1e-9)

	tm.Reset()
	assert.Equal(t, 0, tm.Frames())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}

type fakeSource struct {
	in     *Input
	events []func(in *Input)
	polls  int
	close  bool
}

func (s *fakeSource) PollEvents() {
	if s.polls < len(s.events) {
		s.events[s.polls](s.in)
	}
	s.polls++
}

func (s *fakeSource) ShouldClose() bool { return s.close }

func TestController(t *testing.T) {
	in := NewInput()
	src := &fakeSource{in: in}
	src.events = []func(in *Input){
		func(in *Input) { in.KeyEvent(KeySpace, true) },
		func(in *Input) {},
		func(in *Input) { in.KeyEvent(KeySpace, false) },
	}
	ctl := NewController(src, in)

	assert.True(t, ctl.NextFrame())
	assert.True(t, in.KeyPressed(KeySpace))
	assert.True(t, ctl.NextFrame())
	assert.False(t, in.KeyPressed(KeySpace))
	assert.True(t, in.KeyHeld(KeySpace))
	assert.True(t, ctl.NextFrame())
	assert.True(t, in.KeyReleased(KeySpace))
	assert.Equal(t, 3, ctl.Timer.Frames())

	src.close = true
	assert.False(t, ctl.NextFrame())
}
