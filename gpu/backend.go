// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Handle is the constraint satisfied by all native resource handle
// types. The zero value of every Handle is the sentinel meaning
// "no resource".
type Handle interface {
	~uint32
}

// ProgramID is the native handle of a linked shader program.
type ProgramID uint32

// StageID is the native handle of a single compiled shader stage
// (vertex or fragment shader object).
type StageID uint32

// BufferID is the native handle of a buffer object.
type BufferID uint32

// VertexArrayID is the native handle of a vertex array object,
// which records the vertex attribute layout.
type VertexArrayID uint32

// TextureID is the native handle of a texture object.
type TextureID uint32

// UniformLocation is the location of a uniform variable in a program.
// -1 means the program has no active uniform of that name, and
// values set there are silently ignored by the backend.
type UniformLocation int32

// Valid returns whether the location refers to an active uniform.
func (l UniformLocation) Valid() bool { return l >= 0 }

// Stages are the shader stages that make up a [Shader] program.
type Stages uint32

const (
	VertexStage   Stages = 0x8b31
	FragmentStage Stages = 0x8b30
)

func (st Stages) String() string {
	switch st {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// BufferTargets are the buffer binding points.
type BufferTargets uint32

const (
	ArrayBuffer BufferTargets = 0x8892
)

// Usages are hints about how a buffer's contents will be updated.
type Usages uint32

const (
	StreamDraw  Usages = 0x88e0
	StaticDraw  Usages = 0x88e4
	DynamicDraw Usages = 0x88e8
)

// DrawModes are the primitive topologies for draw calls.
type DrawModes uint32

const (
	Points        DrawModes = 0x0
	Lines         DrawModes = 0x1
	Triangles     DrawModes = 0x4
	TriangleStrip DrawModes = 0x5
)

// ComponentTypes are the storage types of vertex attribute components.
type ComponentTypes uint32

const (
	Int8Component    ComponentTypes = 0x1400
	Uint8Component   ComponentTypes = 0x1401
	Int16Component   ComponentTypes = 0x1402
	Uint16Component  ComponentTypes = 0x1403
	Int32Component   ComponentTypes = 0x1404
	Uint32Component  ComponentTypes = 0x1405
	Float32Component ComponentTypes = 0x1406
)

// Size returns the number of bytes of one component of this type.
func (ct ComponentTypes) Size() int {
	switch ct {
	case Int8Component, Uint8Component:
		return 1
	case Int16Component, Uint16Component:
		return 2
	}
	return 4
}

// TextureParams are texture parameter names for [Backend.TexParameteri].
type TextureParams uint32

const (
	TextureMagFilter TextureParams = 0x2800
	TextureMinFilter TextureParams = 0x2801
	TextureWrapS     TextureParams = 0x2802
	TextureWrapT     TextureParams = 0x2803
)

// Texture parameter values.
const (
	Nearest            int32 = 0x2600
	Linear             int32 = 0x2601
	LinearMipmapLinear int32 = 0x2703
	Repeat             int32 = 0x2901
	ClampToEdge        int32 = 0x812f
)

// MaxTextureUnits is the number of texture unit slots tracked by a [Context].
const MaxTextureUnits = 16

// ClearBits select the buffers cleared by [Backend.Clear].
type ClearBits uint32

const (
	ClearDepth   ClearBits = 0x100
	ClearStencil ClearBits = 0x400
	ClearColor   ClearBits = 0x4000
)

// Features are server-side capabilities toggled with [Backend.Enable].
type Features uint32

const (
	DepthTest Features = 0xb71
	Blend     Features = 0xbe2
	CullFace  Features = 0xb44
)

// Backend is the set of native graphics functions the core needs,
// over opaque integer handles. All calls require the owning
// graphics context to be current on the calling thread, and
// none of them fail: creation failures return the zero sentinel.
// The gpu/opengl package implements it for OpenGL 4.1 core, and
// gpu/gputest provides a recording implementation for tests.
type Backend interface {
	CreateProgram() ProgramID
	DeleteProgram(p ProgramID)
	AttachShader(p ProgramID, s StageID)
	// LinkProgram links the program and returns whether it succeeded,
	// along with the program info log.
	LinkProgram(p ProgramID) (bool, string)
	UseProgram(p ProgramID)

	CreateShader(stage Stages) StageID
	DeleteShader(s StageID)
	// CompileShader sets the source of the shader object, compiles it,
	// and returns whether it succeeded, along with the shader info log.
	CompileShader(s StageID, src string) (bool, string)

	GetUniformLocation(p ProgramID, name string) UniformLocation
	Uniform1i(loc UniformLocation, v int32)
	Uniform1f(loc UniformLocation, v float32)
	Uniform3f(loc UniformLocation, x, y, z float32)
	UniformMatrix4fv(loc UniformLocation, m *[16]float32)

	GenBuffer() BufferID
	DeleteBuffer(b BufferID)
	BindBuffer(target BufferTargets, b BufferID)
	BufferData(target BufferTargets, data []byte, usage Usages)

	GenVertexArray() VertexArrayID
	DeleteVertexArray(a VertexArrayID)
	BindVertexArray(a VertexArrayID)
	VertexAttribPointer(index uint32, size int32, typ ComponentTypes, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, typ ComponentTypes, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode DrawModes, first, count int32)

	GenTexture() TextureID
	DeleteTexture(t TextureID)
	// ActiveTexture selects the texture unit, counting from 0.
	ActiveTexture(unit int)
	BindTexture(t TextureID)
	// TexImage2D uploads tightly packed RGBA8 pixels to the bound texture.
	TexImage2D(width, height int, pixels []byte)
	TexParameteri(param TextureParams, value int32)
	GenerateMipmap()

	ClearColor(r, g, b, a float32)
	Clear(mask ClearBits)
	Enable(feature Features)
	Viewport(x, y, width, height int32)
}
