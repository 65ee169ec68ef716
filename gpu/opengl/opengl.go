// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package opengl

import (
	"log/slog"
	"strings"
	"unsafe"

	"cogentcore.org/glengine/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend is the OpenGL [gpu.Backend]. All of its methods must be
// called with the OpenGL context current on the calling thread.
type Backend struct {
	// Version is the GL_VERSION string of the context.
	Version string

	// Renderer is the GL_RENDERER string of the context.
	Renderer string
}

var _ gpu.Backend = (*Backend)(nil)

// New loads the OpenGL function pointers, which requires a
// current context, and returns the backend.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	b := &Backend{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	slog.Info("opengl.New", "Version", b.Version, "Renderer", b.Renderer)
	if err := CheckVersion(b.Version); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) CreateProgram() gpu.ProgramID {
	return gpu.ProgramID(gl.CreateProgram())
}

func (b *Backend) DeleteProgram(p gpu.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (b *Backend) AttachShader(p gpu.ProgramID, s gpu.StageID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (b *Backend) LinkProgram(p gpu.ProgramID) (bool, string) {
	gl.LinkProgram(uint32(p))
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(msg))
	return false, strings.TrimRight(msg, "\x00")
}

func (b *Backend) UseProgram(p gpu.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (b *Backend) CreateShader(stage gpu.Stages) gpu.StageID {
	return gpu.StageID(gl.CreateShader(uint32(stage)))
}

func (b *Backend) DeleteShader(s gpu.StageID) {
	gl.DeleteShader(uint32(s))
}

func (b *Backend) CompileShader(s gpu.StageID, src string) (bool, string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
	gl.CompileShader(uint32(s))

	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(msg))
	return false, strings.TrimRight(msg, "\x00")
}

func (b *Backend) GetUniformLocation(p gpu.ProgramID, name string) gpu.UniformLocation {
	return gpu.UniformLocation(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (b *Backend) Uniform1i(loc gpu.UniformLocation, v int32) {
	gl.Uniform1i(int32(loc), v)
}

func (b *Backend) Uniform1f(loc gpu.UniformLocation, v float32) {
	gl.Uniform1f(int32(loc), v)
}

func (b *Backend) Uniform3f(loc gpu.UniformLocation, x, y, z float32) {
	gl.Uniform3f(int32(loc), x, y, z)
}

func (b *Backend) UniformMatrix4fv(loc gpu.UniformLocation, m *[16]float32) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (b *Backend) GenBuffer() gpu.BufferID {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return gpu.BufferID(buf)
}

func (b *Backend) DeleteBuffer(buf gpu.BufferID) {
	h := uint32(buf)
	gl.DeleteBuffers(1, &h)
}

func (b *Backend) BindBuffer(target gpu.BufferTargets, buf gpu.BufferID) {
	gl.BindBuffer(uint32(target), uint32(buf))
}

func (b *Backend) BufferData(target gpu.BufferTargets, data []byte, usage gpu.Usages) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

func (b *Backend) GenVertexArray() gpu.VertexArrayID {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return gpu.VertexArrayID(a)
}

func (b *Backend) DeleteVertexArray(a gpu.VertexArrayID) {
	h := uint32(a)
	gl.DeleteVertexArrays(1, &h)
}

func (b *Backend) BindVertexArray(a gpu.VertexArrayID) {
	gl.BindVertexArray(uint32(a))
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, typ gpu.ComponentTypes, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, offset)
}

func (b *Backend) VertexAttribIPointer(index uint32, size int32, typ gpu.ComponentTypes, stride int32, offset uintptr) {
	gl.VertexAttribIPointerWithOffset(index, size, uint32(typ), stride, offset)
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (b *Backend) DrawArrays(mode gpu.DrawModes, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (b *Backend) GenTexture() gpu.TextureID {
	var t uint32
	gl.GenTextures(1, &t)
	return gpu.TextureID(t)
}

func (b *Backend) DeleteTexture(t gpu.TextureID) {
	h := uint32(t)
	gl.DeleteTextures(1, &h)
}

func (b *Backend) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (b *Backend) BindTexture(t gpu.TextureID) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (b *Backend) TexImage2D(width, height int, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
}

func (b *Backend) TexParameteri(param gpu.TextureParams, value int32) {
	gl.TexParameteri(gl.TEXTURE_2D, uint32(param), value)
}

func (b *Backend) GenerateMipmap() {
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *Backend) Clear(mask gpu.ClearBits) {
	gl.Clear(uint32(mask))
}

func (b *Backend) Enable(feature gpu.Features) {
	gl.Enable(uint32(feature))
}

func (b *Backend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}
