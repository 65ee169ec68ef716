// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the window, input and frame timing layer
// around the gpu package. Windows use glfw and are only available
// on desktop platforms; [Input], [Timer] and [Controller] are
// platform independent.
package system

// EventSource is a source of window events, such as a [Window].
type EventSource interface {
	// PollEvents processes pending events, updating the input state.
	PollEvents()

	// ShouldClose returns whether the window has been asked to close.
	ShouldClose() bool
}

// Controller drives the frame loop of one window: each call of
// [Controller.NextFrame] advances the input state, processes
// events, and ticks the timer.
type Controller struct {
	Source EventSource
	Input  *Input
	Timer  *Timer
}

// NewController returns a new Controller over the given event
// source and input state, with a new timer.
func NewController(src EventSource, in *Input) *Controller {
	return &Controller{Source: src, Input: in, Timer: NewTimer()}
}

// NextFrame starts a new frame and returns false once the window
// should close. The usual loop is:
//
//	for ctl.NextFrame() {
//		update(ctl.Timer.DeltaSeconds())
//		draw()
//	}
func (c *Controller) NextFrame() bool {
	c.Input.EndFrame()
	c.Source.PollEvents()
	c.Timer.Tick()
	return !c.Source.ShouldClose()
}
