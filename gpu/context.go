// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is a rendering surface with its own graphics context,
// such as a window. It is implemented by system.Window.
type Surface interface {
	// MakeCurrent makes the surface's context current on the calling thread.
	MakeCurrent()

	// DetachCurrent detaches any context from the calling thread.
	DetachCurrent()
}

// Context is one graphics context: the [Backend] that issues
// its native calls, the [Surface] it renders to, and its binding
// slots. Binding state is only changed through the Lock methods,
// which return guards that must be released before the same slot
// is locked again. A Context must only be used from the thread
// its surface is current on.
type Context struct {
	// Backend issues the native graphics calls.
	Backend Backend

	// Surface is the surface made current by [Context.MakeActiveLock].
	// It may be nil for a context that is always current, such as
	// an offscreen or test context.
	Surface Surface

	program     *slot[ProgramID]
	arrayBuffer *slot[BufferID]
	vertexArray *slot[VertexArrayID]
	textures    [MaxTextureUnits]*slot[TextureID]
	current     *slot[surfaceID]
}

// NewContext returns a new Context issuing calls through b
// and rendering to s, which may be nil.
func NewContext(b Backend, s Surface) *Context {
	ctx := &Context{Backend: b, Surface: s}
	ctx.program = newSlot("program", b.UseProgram)
	ctx.arrayBuffer = newSlot("array buffer", func(h BufferID) {
		b.BindBuffer(ArrayBuffer, h)
	})
	ctx.vertexArray = newSlot("vertex array", b.BindVertexArray)
	for i := range ctx.textures {
		unit := i
		ctx.textures[i] = newSlot(fmt.Sprintf("texture unit %d", unit), func(h TextureID) {
			b.ActiveTexture(unit)
			b.BindTexture(h)
		})
	}
	ctx.current = newSlot("context current", func(h surfaceID) {
		if ctx.Surface == nil {
			return
		}
		if h != 0 {
			ctx.Surface.MakeCurrent()
		} else {
			ctx.Surface.DetachCurrent()
		}
	})
	return ctx
}

// LockProgram makes p the current program until the lock is released.
func (ctx *Context) LockProgram(p ProgramID) *Lock[ProgramID] {
	return ctx.program.lock(p)
}

// LockArrayBuffer binds buf as the array buffer until the lock is released.
func (ctx *Context) LockArrayBuffer(buf BufferID) *Lock[BufferID] {
	return ctx.arrayBuffer.lock(buf)
}

// LockVertexArray binds a as the vertex array until the lock is released.
func (ctx *Context) LockVertexArray(a VertexArrayID) *Lock[VertexArrayID] {
	return ctx.vertexArray.lock(a)
}

// LockTexture binds t to the given texture unit, in [0, MaxTextureUnits),
// until the lock is released.
func (ctx *Context) LockTexture(unit int, t TextureID) *Lock[TextureID] {
	if unit < 0 || unit >= MaxTextureUnits {
		panic(fmt.Sprintf("gpu: texture unit %d out of range [0, %d)", unit, MaxTextureUnits))
	}
	return ctx.textures[unit].lock(t)
}

// MakeActiveLock makes the surface current on the calling thread
// until the lock is released, at which point it is detached.
func (ctx *Context) MakeActiveLock() *ContextLock {
	return ctx.current.lock(1)
}

// Render calls work with the surface current.
func (ctx *Context) Render(work func()) {
	lk := ctx.MakeActiveLock()
	defer lk.Unlock()
	work()
}

// SetClearColor sets the color used by [Context.Clear].
func (ctx *Context) SetClearColor(c mgl32.Vec4) {
	ctx.Backend.ClearColor(c[0], c[1], c[2], c[3])
}

// Clear clears the color and depth buffers.
func (ctx *Context) Clear() {
	ctx.Backend.Clear(ClearColor | ClearDepth)
}

// EnableDepthTest turns on depth testing.
func (ctx *Context) EnableDepthTest() {
	ctx.Backend.Enable(DepthTest)
}

// SetViewport sets the viewport to the given framebuffer size in pixels.
func (ctx *Context) SetViewport(width, height int) {
	ctx.Backend.Viewport(0, 0, int32(width), int32(height))
}
