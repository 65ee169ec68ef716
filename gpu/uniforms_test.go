// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"fmt"
	"testing"

	"cogentcore.org/glengine/gpu"
	"cogentcore.org/glengine/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// These only compile when the target set is a subset of the source set.
var (
	_ mvpCaps            = texturedCaps(nil)
	_ gpu.NoCapabilities = mvpCaps(nil)
	_ texturedCaps       = gpu.AllSetters(nil)
)

var (
	_ = gpu.NarrowCapabilities(texturedUniforms, func(c texturedCaps) mvpCaps { return c })
	_ = gpu.NarrowCapabilities(gpu.AllUniforms, func(c gpu.AllSetters) texturedCaps { return c })
)

func TestIsSubset(t *testing.T) {
	assert.True(t, gpu.IsSubset[mvpCaps, texturedCaps]())
	assert.True(t, gpu.IsSubset[texturedCaps, texturedCaps]())
	assert.True(t, gpu.IsSubset[gpu.NoCapabilities, mvpCaps]())
	assert.True(t, gpu.IsSubset[texturedCaps, gpu.AllSetters]())

	assert.False(t, gpu.IsSubset[texturedCaps, mvpCaps]())
	assert.False(t, gpu.IsSubset[gpu.BoolSetter, texturedCaps]())
	assert.False(t, gpu.IsSubset[gpu.AllSetters, texturedCaps]())
	assert.False(t, gpu.IsSubset[int, texturedCaps]())
}

func TestUniformSetters(t *testing.T) {
	ctx, b, _ := gputest.NewContext()
	sh, err := gpu.NewShader[vertex](ctx, vertexSrc, fragmentSrc, nil, gpu.AllUniforms)
	assert.NoError(t, err)
	defer sh.Release()
	p := sh.Program()

	u := sh.Uniforms()
	u.SetBool("flag", true)
	u.SetInt("tex", 2)
	u.SetFloat("time", 1.5)
	u.SetVec3("tint", mgl32.Vec3{1, 0.5, 0})
	m := mgl32.Translate3D(1, 2, 3)
	u.SetMat4("mvp", m)

	vals := b.Uniforms[p]
	assert.Equal(t, int32(1), vals["flag"])
	assert.Equal(t, int32(2), vals["tex"])
	assert.Equal(t, float32(1.5), vals["time"])
	assert.Equal(t, [3]float32{1, 0.5, 0}, vals["tint"])
	assert.Equal(t, [16]float32(m), vals["mvp"])

	assert.Equal(t, gpu.ProgramID(0), b.Program)
	assert.Equal(t, 5, b.Count("UseProgram "+fmt.Sprint(p)))
	assert.Equal(t, 5, b.Count("UseProgram 0"))
}

func TestUniformsRestricted(t *testing.T) {
	ctx, b, _ := gputest.NewContext()
	sh := newTestShader(t, ctx)
	defer sh.Release()

	var u texturedCaps = sh.Uniforms()
	u.SetMat4("mvp", mgl32.Ident4())
	_, isBool := u.(gpu.BoolSetter)
	assert.True(t, isBool, "the dynamic type still has every setter")

	mvp := gpu.Narrow(sh, func(c texturedCaps) mvpCaps { return c })
	defer mvp.Release()
	mvp.Uniforms().SetMat4("mvp", mgl32.Scale3D(2, 2, 2))
	assert.Equal(t, [16]float32(mgl32.Scale3D(2, 2, 2)), b.Uniforms[mvp.Program()]["mvp"])
}

func TestUniformMissing(t *testing.T) {
	ctx, b, _ := gputest.NewContext()
	b.MissingUniforms = []string{"tint"}
	sh := newTestShader(t, ctx)
	defer sh.Release()

	sh.Uniforms().SetVec3("tint", mgl32.Vec3{1, 1, 1})
	assert.NotContains(t, b.Uniforms[sh.Program()], "tint")
	assert.Contains(t, b.Calls, "Uniform3f -1 [1 1 1]")
}

func TestUniformsWhileLockedPanics(t *testing.T) {
	ctx, _, _ := gputest.NewContext()
	sh := newTestShader(t, ctx)
	defer sh.Release()

	lk := sh.MakeActiveLock()
	defer lk.Unlock()
	assert.Panics(t, func() { sh.Uniforms().SetInt("tex", 0) })
}

// cameraSetter is a composite capability, setting every camera
// uniform in one call.
type cameraSetter interface {
	SetCamera(view, projection mgl32.Mat4, pos mgl32.Vec3)
}

// litCaps mixes the composite capability with a plain setter.
type litCaps interface {
	cameraSetter
	gpu.FloatSetter
}

// cameraUniforms implements cameraSetter with the plain setters.
type cameraUniforms struct {
	u interface {
		gpu.Mat4Setter
		gpu.Vec3Setter
	}
}

func (c cameraUniforms) SetCamera(view, projection mgl32.Mat4, pos mgl32.Vec3) {
	c.u.SetMat4("view", view)
	c.u.SetMat4("projection", projection)
	c.u.SetVec3("viewPos", pos)
}

type litUniforms struct {
	cameraUniforms
	gpu.FloatSetter
}

var litCapabilities = gpu.NewCapabilities(func(u *gpu.Uniforms) litCaps {
	return litUniforms{cameraUniforms{u}, u}
})

var _ = gpu.NarrowCapabilities(litCapabilities, func(c litCaps) cameraSetter { return c })

func TestCompositeCapabilities(t *testing.T) {
	assert.True(t, gpu.IsSubset[cameraSetter, litCaps]())
	assert.True(t, gpu.IsSubset[gpu.FloatSetter, litCaps]())
	assert.False(t, gpu.IsSubset[cameraSetter, gpu.AllSetters](), "plain setters do not provide the composite")
	assert.False(t, gpu.IsSubset[litCaps, cameraSetter]())

	ctx, b, _ := gputest.NewContext()
	sh, err := gpu.NewShader[vertex](ctx, vertexSrc, fragmentSrc, nil, litCapabilities)
	assert.NoError(t, err)

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	sh.Uniforms().SetCamera(view, proj, mgl32.Vec3{0, 0, 5})
	sh.Uniforms().SetFloat("shininess", 32)

	vals := b.Uniforms[sh.Program()]
	assert.Equal(t, [16]float32(view), vals["view"])
	assert.Equal(t, [16]float32(proj), vals["projection"])
	assert.Equal(t, [3]float32{0, 0, 5}, vals["viewPos"])
	assert.Equal(t, float32(32), vals["shininess"])
	assert.Equal(t, gpu.ProgramID(0), b.Program, "each setter releases the program slot")

	cam := gpu.Narrow(sh, func(c litCaps) cameraSetter { return c })
	defer cam.Release()
	assert.False(t, sh.Valid(), "narrowing moves the program")
	cam.Uniforms().SetCamera(mgl32.Ident4(), proj, mgl32.Vec3{1, 2, 3})
	assert.Equal(t, [16]float32(mgl32.Ident4()), vals["view"])
	assert.Equal(t, [3]float32{1, 2, 3}, vals["viewPos"])
}
