// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms sets uniform values of one program by name. It has a
// setter for every supported value type; shaders expose it only
// through a capability set (see [Capabilities]) so that callers can
// only set the kinds of values the shader declares.
//
// Every setter makes the program current for the duration of the
// call and looks the location up by name. Setting a name that is
// not an active uniform of the program is silently ignored.
type Uniforms struct {
	ctx     *Context
	program ProgramID
}

// NewUniforms returns a Uniforms for program p in ctx.
func NewUniforms(ctx *Context, p ProgramID) *Uniforms {
	return &Uniforms{ctx: ctx, program: p}
}

// Program returns the program whose uniforms are set.
func (u *Uniforms) Program() ProgramID {
	return u.program
}

func (u *Uniforms) set(name string, fn func(b Backend, loc UniformLocation)) {
	lk := u.ctx.LockProgram(u.program)
	defer lk.Unlock()
	b := u.ctx.Backend
	fn(b, b.GetUniformLocation(u.program, name))
}

// SetBool sets a bool uniform, stored as an int.
func (u *Uniforms) SetBool(name string, v bool) {
	var iv int32
	if v {
		iv = 1
	}
	u.set(name, func(b Backend, loc UniformLocation) { b.Uniform1i(loc, iv) })
}

// SetInt sets an int uniform, or a sampler's texture unit.
func (u *Uniforms) SetInt(name string, v int32) {
	u.set(name, func(b Backend, loc UniformLocation) { b.Uniform1i(loc, v) })
}

// SetFloat sets a float uniform.
func (u *Uniforms) SetFloat(name string, v float32) {
	u.set(name, func(b Backend, loc UniformLocation) { b.Uniform1f(loc, v) })
}

// SetVec3 sets a vec3 uniform.
func (u *Uniforms) SetVec3(name string, v mgl32.Vec3) {
	u.set(name, func(b Backend, loc UniformLocation) { b.Uniform3f(loc, v[0], v[1], v[2]) })
}

// SetMat4 sets a column-major mat4 uniform.
func (u *Uniforms) SetMat4(name string, m mgl32.Mat4) {
	u.set(name, func(b Backend, loc UniformLocation) { b.UniformMatrix4fv(loc, (*[16]float32)(&m)) })
}

// The capabilities: each is the setter for one kind of uniform value.
// Capability sets are interfaces embedding any combination of them;
// set A is a subset of set B when B's method set includes A's.
type (
	BoolSetter interface {
		SetBool(name string, v bool)
	}

	IntSetter interface {
		SetInt(name string, v int32)
	}

	FloatSetter interface {
		SetFloat(name string, v float32)
	}

	Vec3Setter interface {
		SetVec3(name string, v mgl32.Vec3)
	}

	Mat4Setter interface {
		SetMat4(name string, m mgl32.Mat4)
	}
)

// NoCapabilities is the empty capability set.
type NoCapabilities interface{}

// AllSetters is the capability set with every setter.
type AllSetters interface {
	BoolSetter
	IntSetter
	FloatSetter
	Vec3Setter
	Mat4Setter
}

var _ AllSetters = (*Uniforms)(nil)

// Capabilities binds the full [Uniforms] writer of a shader to the
// capability set C. Constructing one with [NewCapabilities] only
// compiles when *Uniforms implements C, i.e. when every capability
// in C is supported.
type Capabilities[C any] struct {
	bind func(u *Uniforms) C
}

// NewCapabilities returns the capability set whose values are
// produced by bind, which is normally the identity conversion:
//
//	gpu.NewCapabilities(func(u *gpu.Uniforms) MyCaps { return u })
func NewCapabilities[C any](bind func(u *Uniforms) C) Capabilities[C] {
	return Capabilities[C]{bind: bind}
}

// Bind returns u restricted to the capability set.
func (c Capabilities[C]) Bind(u *Uniforms) C {
	return c.bind(u)
}

// NarrowCapabilities returns the capability set A for a shader
// declaring set B. as converts a B to an A; written as the identity
// function it only compiles when A's capabilities are a subset of B's:
//
//	gpu.NarrowCapabilities(caps, func(b Full) Partial { return b })
func NarrowCapabilities[A, B any](c Capabilities[B], as func(b B) A) Capabilities[A] {
	return Capabilities[A]{bind: func(u *Uniforms) A { return as(c.Bind(u)) }}
}

// The predefined capability sets.
var (
	NoUniforms = NewCapabilities(func(u *Uniforms) NoCapabilities { return u })

	AllUniforms = NewCapabilities(func(u *Uniforms) AllSetters { return u })
)

// IsSubset returns whether capability set A is a subset of
// capability set B, that is whether every B implements A.
// Both must be interface types.
func IsSubset[A, B any]() bool {
	a, b := reflect.TypeFor[A](), reflect.TypeFor[B]()
	if a.Kind() != reflect.Interface || b.Kind() != reflect.Interface {
		return false
	}
	return b.Implements(a)
}
