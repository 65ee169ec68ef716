// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a recording [gpu.Backend] for testing
// GPU code without a graphics context.
package gputest

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/glengine/gpu"
)

// Resource kind names used as keys of [Backend.Created],
// [Backend.Deleted] and [Backend.FailCreate].
const (
	Programs     = "program"
	Shaders      = "shader"
	Buffers      = "buffer"
	VertexArrays = "vertex array"
	Textures     = "texture"
)

// Attrib is the recorded state of one vertex attribute of a vertex array.
type Attrib struct {
	Size       int32
	Type       gpu.ComponentTypes
	Integer    bool
	Normalized bool
	Stride     int32
	Offset     uintptr

	// Buffer is the array buffer bound when the pointer was configured.
	Buffer gpu.BufferID

	// Configured counts the VertexAttribPointer / VertexAttribIPointer calls.
	Configured int

	// Enables counts the EnableVertexAttribArray calls.
	Enables int
}

// Upload is one recorded BufferData call.
type Upload struct {
	Buffer gpu.BufferID
	Data   []byte
	Usage  gpu.Usages
}

// Draw is one recorded DrawArrays call with the bindings in effect.
type Draw struct {
	Program     gpu.ProgramID
	VertexArray gpu.VertexArrayID
	Buffer      gpu.BufferID
	Mode        gpu.DrawModes
	First       int32
	Count       int32
}

// Image is one recorded TexImage2D call.
type Image struct {
	Texture gpu.TextureID
	Width   int
	Height  int
	Pixels  []byte
}

type stage struct {
	kind     gpu.Stages
	compiled bool
}

type uniformKey struct {
	program gpu.ProgramID
	name    string
}

// Backend is a [gpu.Backend] that records every call and models the
// binding state of an OpenGL context. Handles are allocated from a
// single increasing counter, so they are unique across kinds.
// Compilation fails for sources containing "#error".
type Backend struct {
	// Calls is the log of every call, formatted as the method name
	// followed by its arguments.
	Calls []string

	// Created and Deleted count non-sentinel handles per resource kind.
	Created map[string]int
	Deleted map[string]int

	// FailCreate makes creation of the named kinds return the sentinel.
	FailCreate map[string]bool

	// LinkFailure, if set, makes every link fail with this info log.
	LinkFailure string

	// MissingUniforms are names for which GetUniformLocation returns -1.
	MissingUniforms []string

	// Current bindings.
	Program     gpu.ProgramID
	ArrayBuffer gpu.BufferID
	VertexArray gpu.VertexArrayID
	ActiveUnit  int
	Units       [gpu.MaxTextureUnits]gpu.TextureID

	// Attribs is the attribute state per vertex array, by attribute index.
	Attribs map[gpu.VertexArrayID]map[uint32]*Attrib

	Uploads []Upload
	Draws   []Draw
	Images  []Image

	// TexParams are the texture parameters per texture.
	TexParams map[gpu.TextureID]map[gpu.TextureParams]int32

	// Mipmaps counts GenerateMipmap calls per texture.
	Mipmaps map[gpu.TextureID]int

	// Uniforms are the last values set per program and uniform name.
	Uniforms map[gpu.ProgramID]map[string]any

	ClearValue   [4]float32
	Cleared      []gpu.ClearBits
	Enabled      map[gpu.Features]bool
	ViewportRect [4]int32

	next      uint32
	live      map[uint32]string
	stages    map[gpu.StageID]*stage
	attached  map[gpu.ProgramID][]gpu.StageID
	linked    map[gpu.ProgramID]bool
	locations map[uniformKey]gpu.UniformLocation
	locNames  map[gpu.UniformLocation]string
}

var _ gpu.Backend = (*Backend)(nil)

// New returns a new recording backend.
func New() *Backend {
	return &Backend{
		Created:    map[string]int{},
		Deleted:    map[string]int{},
		FailCreate: map[string]bool{},
		Attribs:    map[gpu.VertexArrayID]map[uint32]*Attrib{},
		TexParams:  map[gpu.TextureID]map[gpu.TextureParams]int32{},
		Mipmaps:    map[gpu.TextureID]int{},
		Uniforms:   map[gpu.ProgramID]map[string]any{},
		Enabled:    map[gpu.Features]bool{},
		live:       map[uint32]string{},
		stages:     map[gpu.StageID]*stage{},
		attached:   map[gpu.ProgramID][]gpu.StageID{},
		linked:     map[gpu.ProgramID]bool{},
		locations:  map[uniformKey]gpu.UniformLocation{},
		locNames:   map[gpu.UniformLocation]string{},
	}
}

// Live returns the number of created handles of the given kind
// that have not been deleted. An empty kind counts all kinds.
func (b *Backend) Live(kind string) int {
	n := 0
	for _, k := range b.live {
		if kind == "" || k == kind {
			n++
		}
	}
	return n
}

// IsLive returns whether the handle was created and not yet deleted.
func (b *Backend) IsLive(h uint32) bool {
	_, ok := b.live[h]
	return ok
}

// Count returns the number of recorded calls to the named method.
func (b *Backend) Count(method string) int {
	n := 0
	for _, c := range b.Calls {
		if c == method || strings.HasPrefix(c, method+" ") {
			n++
		}
	}
	return n
}

// Reset clears the call log and recorded uploads, draws and images,
// keeping all resource and binding state.
func (b *Backend) Reset() {
	b.Calls = nil
	b.Uploads = nil
	b.Draws = nil
	b.Images = nil
}

func (b *Backend) record(method string, args ...any) {
	if len(args) == 0 {
		b.Calls = append(b.Calls, method)
		return
	}
	b.Calls = append(b.Calls, method+" "+strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (b *Backend) create(kind string) uint32 {
	if b.FailCreate[kind] {
		return 0
	}
	b.next++
	b.live[b.next] = kind
	b.Created[kind]++
	return b.next
}

func (b *Backend) delete(kind string, h uint32) {
	if h == 0 {
		return
	}
	if b.live[h] != kind {
		panic(fmt.Sprintf("gputest: delete of %s %d which is not a live %s", kind, h, kind))
	}
	delete(b.live, h)
	b.Deleted[kind]++
}

func (b *Backend) CreateProgram() gpu.ProgramID {
	p := gpu.ProgramID(b.create(Programs))
	b.record("CreateProgram", p)
	return p
}

func (b *Backend) DeleteProgram(p gpu.ProgramID) {
	b.record("DeleteProgram", p)
	b.delete(Programs, uint32(p))
	delete(b.attached, p)
	delete(b.linked, p)
}

func (b *Backend) AttachShader(p gpu.ProgramID, s gpu.StageID) {
	b.record("AttachShader", p, s)
	b.attached[p] = append(b.attached[p], s)
}

func (b *Backend) LinkProgram(p gpu.ProgramID) (bool, string) {
	b.record("LinkProgram", p)
	if b.LinkFailure != "" {
		return false, b.LinkFailure
	}
	var kinds []gpu.Stages
	for _, s := range b.attached[p] {
		st := b.stages[s]
		if st == nil || !st.compiled {
			return false, fmt.Sprintf("error: shader %d is not compiled", s)
		}
		kinds = append(kinds, st.kind)
	}
	if !slices.Contains(kinds, gpu.VertexStage) || !slices.Contains(kinds, gpu.FragmentStage) {
		return false, "error: program needs both a vertex and a fragment shader"
	}
	b.linked[p] = true
	return true, ""
}

func (b *Backend) UseProgram(p gpu.ProgramID) {
	b.record("UseProgram", p)
	b.Program = p
}

func (b *Backend) CreateShader(kind gpu.Stages) gpu.StageID {
	s := gpu.StageID(b.create(Shaders))
	b.record("CreateShader", kind, s)
	if s != 0 {
		b.stages[s] = &stage{kind: kind}
	}
	return s
}

func (b *Backend) DeleteShader(s gpu.StageID) {
	b.record("DeleteShader", s)
	b.delete(Shaders, uint32(s))
	delete(b.stages, s)
}

func (b *Backend) CompileShader(s gpu.StageID, src string) (bool, string) {
	b.record("CompileShader", s)
	st := b.stages[s]
	if st == nil {
		return false, fmt.Sprintf("error: invalid shader %d", s)
	}
	if strings.Contains(src, "#error") {
		return false, fmt.Sprintf("ERROR: 0:1: '#error' : %s shader failed", st.kind)
	}
	st.compiled = true
	return true, ""
}

func (b *Backend) GetUniformLocation(p gpu.ProgramID, name string) gpu.UniformLocation {
	b.record("GetUniformLocation", p, name)
	if !b.linked[p] || slices.Contains(b.MissingUniforms, name) {
		return -1
	}
	key := uniformKey{p, name}
	if loc, ok := b.locations[key]; ok {
		return loc
	}
	loc := gpu.UniformLocation(len(b.locations))
	b.locations[key] = loc
	b.locNames[loc] = name
	return loc
}

func (b *Backend) setUniform(method string, loc gpu.UniformLocation, v any) {
	b.record(method, loc, v)
	if !loc.Valid() {
		return
	}
	vals := b.Uniforms[b.Program]
	if vals == nil {
		vals = map[string]any{}
		b.Uniforms[b.Program] = vals
	}
	vals[b.locNames[loc]] = v
}

func (b *Backend) Uniform1i(loc gpu.UniformLocation, v int32) {
	b.setUniform("Uniform1i", loc, v)
}

func (b *Backend) Uniform1f(loc gpu.UniformLocation, v float32) {
	b.setUniform("Uniform1f", loc, v)
}

func (b *Backend) Uniform3f(loc gpu.UniformLocation, x, y, z float32) {
	b.setUniform("Uniform3f", loc, [3]float32{x, y, z})
}

func (b *Backend) UniformMatrix4fv(loc gpu.UniformLocation, m *[16]float32) {
	b.setUniform("UniformMatrix4fv", loc, *m)
}

func (b *Backend) GenBuffer() gpu.BufferID {
	buf := gpu.BufferID(b.create(Buffers))
	b.record("GenBuffer", buf)
	return buf
}

func (b *Backend) DeleteBuffer(buf gpu.BufferID) {
	b.record("DeleteBuffer", buf)
	b.delete(Buffers, uint32(buf))
}

func (b *Backend) BindBuffer(target gpu.BufferTargets, buf gpu.BufferID) {
	b.record("BindBuffer", buf)
	b.ArrayBuffer = buf
}

func (b *Backend) BufferData(target gpu.BufferTargets, data []byte, usage gpu.Usages) {
	b.record("BufferData", len(data), usage)
	b.Uploads = append(b.Uploads, Upload{Buffer: b.ArrayBuffer, Data: slices.Clone(data), Usage: usage})
}

func (b *Backend) GenVertexArray() gpu.VertexArrayID {
	a := gpu.VertexArrayID(b.create(VertexArrays))
	b.record("GenVertexArray", a)
	return a
}

func (b *Backend) DeleteVertexArray(a gpu.VertexArrayID) {
	b.record("DeleteVertexArray", a)
	b.delete(VertexArrays, uint32(a))
	delete(b.Attribs, a)
}

func (b *Backend) BindVertexArray(a gpu.VertexArrayID) {
	b.record("BindVertexArray", a)
	b.VertexArray = a
}

func (b *Backend) attrib(index uint32) *Attrib {
	attrs := b.Attribs[b.VertexArray]
	if attrs == nil {
		attrs = map[uint32]*Attrib{}
		b.Attribs[b.VertexArray] = attrs
	}
	at := attrs[index]
	if at == nil {
		at = &Attrib{}
		attrs[index] = at
	}
	return at
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, typ gpu.ComponentTypes, normalized bool, stride int32, offset uintptr) {
	b.record("VertexAttribPointer", index, size, stride, offset)
	at := b.attrib(index)
	at.Size, at.Type, at.Integer, at.Normalized = size, typ, false, normalized
	at.Stride, at.Offset, at.Buffer = stride, offset, b.ArrayBuffer
	at.Configured++
}

func (b *Backend) VertexAttribIPointer(index uint32, size int32, typ gpu.ComponentTypes, stride int32, offset uintptr) {
	b.record("VertexAttribIPointer", index, size, stride, offset)
	at := b.attrib(index)
	at.Size, at.Type, at.Integer, at.Normalized = size, typ, true, false
	at.Stride, at.Offset, at.Buffer = stride, offset, b.ArrayBuffer
	at.Configured++
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	b.record("EnableVertexAttribArray", index)
	b.attrib(index).Enables++
}

func (b *Backend) DrawArrays(mode gpu.DrawModes, first, count int32) {
	b.record("DrawArrays", mode, first, count)
	b.Draws = append(b.Draws, Draw{
		Program:     b.Program,
		VertexArray: b.VertexArray,
		Buffer:      b.ArrayBuffer,
		Mode:        mode,
		First:       first,
		Count:       count,
	})
}

func (b *Backend) GenTexture() gpu.TextureID {
	t := gpu.TextureID(b.create(Textures))
	b.record("GenTexture", t)
	return t
}

func (b *Backend) DeleteTexture(t gpu.TextureID) {
	b.record("DeleteTexture", t)
	b.delete(Textures, uint32(t))
	delete(b.TexParams, t)
	delete(b.Mipmaps, t)
}

func (b *Backend) ActiveTexture(unit int) {
	b.record("ActiveTexture", unit)
	b.ActiveUnit = unit
}

func (b *Backend) BindTexture(t gpu.TextureID) {
	b.record("BindTexture", t)
	b.Units[b.ActiveUnit] = t
}

func (b *Backend) TexImage2D(width, height int, pixels []byte) {
	b.record("TexImage2D", width, height)
	b.Images = append(b.Images, Image{Texture: b.Units[b.ActiveUnit], Width: width, Height: height, Pixels: slices.Clone(pixels)})
}

func (b *Backend) TexParameteri(param gpu.TextureParams, value int32) {
	b.record("TexParameteri", param, value)
	t := b.Units[b.ActiveUnit]
	params := b.TexParams[t]
	if params == nil {
		params = map[gpu.TextureParams]int32{}
		b.TexParams[t] = params
	}
	params[param] = value
}

func (b *Backend) GenerateMipmap() {
	b.record("GenerateMipmap")
	b.Mipmaps[b.Units[b.ActiveUnit]]++
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.record("ClearColor", r, g, bl, a)
	b.ClearValue = [4]float32{r, g, bl, a}
}

func (b *Backend) Clear(mask gpu.ClearBits) {
	b.record("Clear", mask)
	b.Cleared = append(b.Cleared, mask)
}

func (b *Backend) Enable(feature gpu.Features) {
	b.record("Enable", feature)
	b.Enabled[feature] = true
}

func (b *Backend) Viewport(x, y, width, height int32) {
	b.record("Viewport", x, y, width, height)
	b.ViewportRect = [4]int32{x, y, width, height}
}
