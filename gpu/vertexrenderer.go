// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"slices"
	"unsafe"

	"cogentcore.org/glengine/base/errors"
)

// VertexRenderer draws slices of vertex records of type V as
// triangles with the program of a [ShaderView]. It owns a vertex
// array recording the attribute layout, a vertex buffer that is
// re-uploaded on every draw, and its own ownership of the program,
// which therefore stays alive as long as the renderer does.
// A VertexRenderer must be handled through a pointer.
type VertexRenderer[V any] struct {
	noCopy noCopy

	ctx    *Context
	vao    *Unique[VertexArrayID]
	buffer *Unique[BufferID]
	block  *Shared[*programBlock]
	inputs []Input
}

// NewVertexRenderer returns a renderer drawing with the program of
// view. It configures one attribute pointer per input of the view,
// once; draws only upload vertex data. view stays valid and may be
// released independently.
func NewVertexRenderer[V, C any](view *ShaderView[V, C]) (*VertexRenderer[V], error) {
	if !view.Valid() {
		return nil, errors.Log(errors.New("gpu.NewVertexRenderer: shader view has been released"))
	}
	ctx := view.ctx
	b := ctx.Backend
	vao := NewUnique(b, &VertexArrayKind)
	if !vao.Valid() {
		return nil, errors.Log(&CreateError{Kind: VertexArrayKind.Name})
	}
	buffer := NewUnique(b, &BufferKind)
	if !buffer.Valid() {
		vao.Release()
		return nil, errors.Log(&CreateError{Kind: BufferKind.Name})
	}
	vr := &VertexRenderer[V]{
		ctx:    ctx,
		vao:    vao,
		buffer: buffer,
		block:  view.block.Clone(),
		inputs: view.Inputs(),
	}
	defer func() {
		if r := recover(); r != nil {
			vr.Release()
			panic(r)
		}
	}()
	vr.configureInputs()
	return vr, nil
}

func (vr *VertexRenderer[V]) configureInputs() {
	b := vr.ctx.Backend
	vaLk := vr.ctx.LockVertexArray(vr.vao.Handle())
	defer vaLk.Unlock()
	bufLk := vr.ctx.LockArrayBuffer(vr.buffer.Handle())
	defer bufLk.Unlock()
	for i := range vr.inputs {
		in := &vr.inputs[i]
		switch in.Base {
		case Integral:
			b.VertexAttribIPointer(in.Index, in.Count, in.ComponentType(), in.Stride, in.Offset)
		default:
			b.VertexAttribPointer(in.Index, in.Count, in.ComponentType(), false, in.Stride, in.Offset)
		}
		b.EnableVertexAttribArray(in.Index)
	}
	slog.Debug("gpu.VertexRenderer configured", "VertexArray", vr.vao.Handle(), "Inputs", len(vr.inputs))
}

// Context returns the context the renderer draws in.
func (vr *VertexRenderer[V]) Context() *Context {
	return vr.ctx
}

// Program returns the program the renderer draws with.
func (vr *VertexRenderer[V]) Program() ProgramID {
	if vr.block.Empty() {
		return 0
	}
	return vr.block.Get().program.Get()
}

// Inputs returns a copy of the vertex input descriptors.
func (vr *VertexRenderer[V]) Inputs() []Input {
	return slices.Clone(vr.inputs)
}

// Draw uploads vertices and draws them as triangles, holding the
// renderer's bindings only for the duration of the call. Drawing
// an empty slice does nothing.
func (vr *VertexRenderer[V]) Draw(vertices []V) {
	if len(vertices) == 0 {
		return
	}
	lk := vr.MakeActiveLock()
	defer lk.Unlock()
	lk.Draw(vertices)
}

// MakeActiveLock binds the renderer's vertex array, vertex buffer
// and program, in that order, until the lock is released.
// Use it to draw several batches with one binding; uniforms must be
// set before acquiring it, as setting them locks the program slot.
// If a slot is already locked it panics, leaving none of the three
// bindings held.
func (vr *VertexRenderer[V]) MakeActiveLock() *RendererLock[V] {
	lk := &RendererLock[V]{vr: vr}
	defer func() {
		if r := recover(); r != nil {
			lk.Unlock()
			panic(r)
		}
	}()
	lk.vertexArray = vr.ctx.LockVertexArray(vr.vao.Handle())
	lk.buffer = vr.ctx.LockArrayBuffer(vr.buffer.Handle())
	lk.program = vr.ctx.LockProgram(vr.Program())
	return lk
}

// Release deletes the vertex array and buffer, and drops the
// renderer's ownership of the program.
func (vr *VertexRenderer[V]) Release() {
	vr.buffer.Release()
	vr.vao.Release()
	vr.block.Release()
}

// RendererLock holds the bindings of a [VertexRenderer].
// [RendererLock.Unlock] releases them in the reverse order of
// acquisition: program, buffer, vertex array.
type RendererLock[V any] struct {
	noCopy noCopy

	vr          *VertexRenderer[V]
	vertexArray *Lock[VertexArrayID]
	buffer      *Lock[BufferID]
	program     *Lock[ProgramID]
}

// Draw uploads vertices into the bound buffer and draws them as
// triangles. Drawing an empty slice does nothing.
func (lk *RendererLock[V]) Draw(vertices []V) {
	if len(vertices) == 0 || !lk.program.Held() {
		return
	}
	b := lk.vr.ctx.Backend
	b.BufferData(ArrayBuffer, vertexBytes(vertices), DynamicDraw)
	b.DrawArrays(Triangles, 0, int32(len(vertices)))
}

// Unlock releases the bindings. Calling it more than once is a no-op.
func (lk *RendererLock[V]) Unlock() {
	lk.program.Unlock()
	lk.buffer.Unlock()
	lk.vertexArray.Unlock()
}

// vertexBytes returns the memory of vertices as bytes, without copying.
func vertexBytes[V any](vertices []V) []byte {
	if len(vertices) == 0 {
		return nil
	}
	var v V
	size := len(vertices) * int(unsafe.Sizeof(v))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vertices))), size)
}
