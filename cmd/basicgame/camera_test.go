// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"cogentcore.org/glengine/gpu"
	"cogentcore.org/glengine/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3, msg ...string) {
	t.Helper()
	for i := range 3 {
		assert.InDeltaf(t, want[i], got[i], 1e-4, "want %v, got %v %v", want, got, msg)
	}
}

func TestCameraDir(t *testing.T) {
	c := &Camera{}
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Dir())
	c.Yaw = 90
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Dir())
	c.Yaw, c.Pitch = 0, 45
	assertVec3(t, mgl32.Vec3{0.70710677, 0.70710677, 0}, c.Dir())
	assert.InDelta(t, 1, c.Dir().Len(), 1e-6)
}

func TestCameraLook(t *testing.T) {
	c := &Camera{}
	c.Look(mgl32.Vec2{100, 0}, 0.1)
	assert.InDelta(t, 10, c.Yaw, 1e-5)
	c.Look(mgl32.Vec2{0, -200}, 0.1)
	assert.InDelta(t, 20, c.Pitch, 1e-5, "moving the mouse up looks up")
	c.Look(mgl32.Vec2{0, -10000}, 0.1)
	assert.Equal(t, float32(maxPitch), c.Pitch)
	c.SetPitch(-1000)
	assert.Equal(t, float32(-maxPitch), c.Pitch)
}

func TestCameraMove(t *testing.T) {
	c := &Camera{Pitch: 30}
	c.Move(Movement{Forward: true}, 2)
	assertVec3(t, mgl32.Vec3{2, 0, 0}, c.Pos, "forward stays on the ground")

	c.Pos = mgl32.Vec3{}
	c.Move(Movement{Forward: true, Right: true}, 1)
	assert.InDelta(t, 1, c.Pos.Len(), 1e-5, "diagonal is not faster")
	assert.Greater(t, c.Pos.Z(), float32(0), "right of +X is +Z")

	c.Pos = mgl32.Vec3{}
	c.Move(Movement{Forward: true, Back: true, Up: true}, 3)
	assertVec3(t, mgl32.Vec3{0, 3, 0}, c.Pos)

	c.Pos = mgl32.Vec3{}
	c.Move(Movement{Left: true, Down: true}, 1)
	assertVec3(t, mgl32.Vec3{0, -1, -1}, c.Pos)
}

func TestNewCamera(t *testing.T) {
	cfg := &CameraConfig{Position: [3]float32{1, 2, 3}, Pitch: -90, FOV: 45}
	c := NewCamera(cfg, 2)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Pos)
	assert.Equal(t, float32(-maxPitch), c.Pitch)
	assert.Less(t, c.Dir().Y(), float32(-0.99))

	forward := Movement{Forward: true}
	before := c.Pos
	c.Move(forward, 1)
	assert.InDelta(t, 1, c.Pos.Sub(before).Len(), 1e-4, "looking down still moves along the ground")
}

func TestCameraApply(t *testing.T) {
	ctx, b, _ := gputest.NewContext()
	sh, err := gpu.NewShader[Vertex](ctx, "void main() {}", "void main() {}", gpu.MustInputsOf[Vertex](), blockCaps)
	require.NoError(t, err)
	defer sh.Release()

	c := &Camera{Pos: mgl32.Vec3{1, 2, 3}, FOV: 45, Aspect: 1, Near: 0.1, Far: 100}
	c.Apply(sh.Uniforms())
	vals := b.Uniforms[sh.Program()]
	assert.Equal(t, [3]float32{1, 2, 3}, vals["viewPos"])
	assert.Equal(t, [16]float32(c.View()), vals["view"])
	assert.Equal(t, [16]float32(c.Projection()), vals["projection"])

	p := c.Projection().Mul4x1(c.View().Mul4x1(c.Pos.Add(c.Dir()).Vec4(1)))
	assert.InDelta(t, 0, p.X()/p.W(), 1e-5, "the view direction is the center of the screen")
	assert.InDelta(t, 0, p.Y()/p.W(), 1e-5)
}
