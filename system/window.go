// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package system

import (
	"image"
	"log/slog"

	"cogentcore.org/glengine/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes glfw. It must be called before creating
// any windows. IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw, destroying any remaining windows.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// WindowOptions are the options for [NewWindow].
type WindowOptions struct {
	Title string

	// Size is the window size in screen coordinates.
	Size image.Point

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool

	Resizable bool

	// CaptureMouse hides the cursor and gives unlimited mouse motion,
	// as used for first person camera control.
	CaptureMouse bool
}

// Window is a glfw window with an OpenGL 4.1 core context.
// It implements gpu.Surface and [EventSource].
type Window struct {
	// Glw is the glfw window.
	Glw *glfw.Window

	// Input is updated by the window's key and cursor events.
	Input *Input

	// OnResize, if set, is called with the new framebuffer size
	// in pixels when it changes.
	OnResize func(size image.Point)

	size image.Point
}

// NewWindow opens a new window with the given options. Its context is
// current on the calling thread when it returns.
func NewWindow(opts WindowOptions) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	resizable := glfw.False
	if opts.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	w := &Window{Glw: glw, Input: NewInput()}
	glw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if opts.CaptureMouse {
		glw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			glw.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	}
	w.size = image.Pt(glw.GetFramebufferSize())
	glw.SetKeyCallback(w.keyEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	glw.SetFramebufferSizeCallback(w.framebufferSizeEvent)
	slog.Info("system.NewWindow", "Title", opts.Title, "Size", opts.Size, "Framebuffer", w.size)
	return w, nil
}

func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.Input.KeyEvent(Key(ky), true)
	case glfw.Release:
		w.Input.KeyEvent(Key(ky), false)
	}
}

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	w.Input.MouseMoveEvent(float32(x), float32(y))
}

func (w *Window) framebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.size = image.Pt(width, height)
	if w.OnResize != nil {
		w.OnResize(w.size)
	}
}

// MakeCurrent makes the window's context current on the calling thread.
func (w *Window) MakeCurrent() {
	w.Glw.MakeContextCurrent()
}

// DetachCurrent detaches the current context from the calling thread.
func (w *Window) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() image.Point {
	return w.size
}

// SwapBuffers shows the frame that has been rendered.
func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

// PollEvents processes pending events of all windows.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

// SetShouldClose sets whether the window should close.
func (w *Window) SetShouldClose(value bool) {
	w.Glw.SetShouldClose(value)
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	w.Glw.Destroy()
}
