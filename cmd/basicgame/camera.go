// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/glengine/gpu"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch is the largest pitch magnitude in degrees, short of
// straight up or down where the view matrix degenerates.
const maxPitch = 89.9

// up is the world up direction.
var up = mgl32.Vec3{0, 1, 0}

// Camera is a first person camera.
type Camera struct {
	Pos mgl32.Vec3

	// Yaw and Pitch are in degrees. Zero yaw looks along +X.
	Yaw, Pitch float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width over the height of the viewport.
	Aspect float32

	Near, Far float32
}

// NewCamera returns a camera from the given config.
func NewCamera(cfg *CameraConfig, aspect float32) *Camera {
	c := &Camera{
		Pos:    mgl32.Vec3(cfg.Position),
		Yaw:    cfg.Yaw,
		FOV:    cfg.FOV,
		Aspect: aspect,
		Near:   0.1,
		Far:    100,
	}
	c.SetPitch(cfg.Pitch)
	return c
}

// SetPitch sets the pitch, clamped to [-maxPitch, maxPitch].
func (c *Camera) SetPitch(pitch float32) {
	c.Pitch = mgl32.Clamp(pitch, -maxPitch, maxPitch)
}

// Look rotates the camera by the given mouse motion in pixels,
// scaled by sensitivity in degrees per pixel. Moving the mouse
// up looks up.
func (c *Camera) Look(delta mgl32.Vec2, sensitivity float32) {
	c.Yaw += delta.X() * sensitivity
	c.SetPitch(c.Pitch - delta.Y()*sensitivity)
}

// Dir returns the unit view direction.
func (c *Camera) Dir() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	cp := math32.Cos(pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * cp,
		math32.Sin(pitch),
		math32.Sin(yaw) * cp,
	}
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Dir()), up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Movement is the direction keys held in a frame.
type Movement struct {
	Forward, Back, Left, Right, Up, Down bool
}

// Move moves the camera by the given distance in the held directions.
// Horizontal movement follows the view direction projected onto the
// ground, normalized so that diagonal movement is not faster.
// Vertical movement is added on top.
func (c *Camera) Move(m Movement, dist float32) {
	dir := c.Dir()
	forward := flatten(dir)
	right := flatten(dir.Cross(up))

	var h mgl32.Vec3
	if m.Forward {
		h = h.Add(forward)
	}
	if m.Back {
		h = h.Sub(forward)
	}
	if m.Right {
		h = h.Add(right)
	}
	if m.Left {
		h = h.Sub(right)
	}
	if h.Len() > 0 {
		h = h.Normalize()
	}
	if m.Up {
		h = h.Add(up)
	}
	if m.Down {
		h = h.Sub(up)
	}
	c.Pos = c.Pos.Add(h.Mul(dist))
}

// flatten returns v projected onto the ground and normalized,
// or zero if v is vertical.
func flatten(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	if v.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// cameraUniforms are the uniforms set by [Camera.Apply].
type cameraUniforms interface {
	gpu.Mat4Setter
	gpu.Vec3Setter
}

// Apply sets the camera uniforms of a shader.
func (c *Camera) Apply(u cameraUniforms) {
	u.SetMat4("view", c.View())
	u.SetMat4("projection", c.Projection())
	u.SetVec3("viewPos", c.Pos)
}
