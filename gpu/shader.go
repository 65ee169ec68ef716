// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/glengine/base/errors"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stages

	// Log is the backend's info log for the stage.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %s shader failed to compile: %s", e.Stage, e.Log)
}

// LinkError is returned when a shader program fails to link.
type LinkError struct {
	// Log is the backend's info log for the program.
	Log string
}

func (e *LinkError) Error() string {
	return "gpu: shader program failed to link: " + e.Log
}

// CreateError is returned when the backend fails to create a resource.
type CreateError struct {
	// Kind is the [Kind.Name] of the resource.
	Kind string
}

func (e *CreateError) Error() string {
	return "gpu: could not create " + e.Kind
}

// programBlock is shared by a shader and all of its views: one
// owner of the linked program, the vertex input descriptors, and
// the sources the program was built from.
type programBlock struct {
	program     *Shared[ProgramID]
	inputs      []Input
	vertexSrc   string
	fragmentSrc string
}

func shareBlock(blk *programBlock) *Shared[*programBlock] {
	return Adopt(blk, func(blk *programBlock) { blk.program.Release() })
}

// programOwner is the part common to [Shader] and [ShaderView]:
// one owner of a program block, for vertex record type V with
// uniform capability set C.
type programOwner[V, C any] struct {
	noCopy noCopy

	ctx   *Context
	block *Shared[*programBlock]
	caps  Capabilities[C]
}

// Context returns the context the program was built in.
func (po *programOwner[V, C]) Context() *Context {
	return po.ctx
}

// Valid returns whether this still owns a program, i.e. it has not
// been released or narrowed.
func (po *programOwner[V, C]) Valid() bool {
	return !po.block.Empty()
}

// Program returns the program handle, or the sentinel if this no
// longer owns one.
func (po *programOwner[V, C]) Program() ProgramID {
	if po.block.Empty() {
		return 0
	}
	return po.block.Get().program.Get()
}

// Inputs returns a copy of the vertex input descriptors.
func (po *programOwner[V, C]) Inputs() []Input {
	if po.block.Empty() {
		return nil
	}
	return slices.Clone(po.block.Get().inputs)
}

// Uniforms returns the uniform setters of the program, restricted
// to capability set C.
func (po *programOwner[V, C]) Uniforms() C {
	return po.caps.Bind(NewUniforms(po.ctx, po.Program()))
}

// MakeActiveLock makes the program current until the lock is released.
func (po *programOwner[V, C]) MakeActiveLock() *Lock[ProgramID] {
	return po.ctx.LockProgram(po.Program())
}

// View returns a new [ShaderView] owning the same program.
// The program stays alive until every shader and view owning it
// has been released.
func (po *programOwner[V, C]) View() *ShaderView[V, C] {
	return &ShaderView[V, C]{programOwner[V, C]{ctx: po.ctx, block: po.block.Clone(), caps: po.caps}}
}

// Release drops this ownership of the program, deleting it if this
// was the last owner. Releasing more than once is a no-op.
func (po *programOwner[V, C]) Release() {
	po.block.Release()
}

// Shader is a linked program for vertex records of type V whose
// settable uniforms are the capability set C. It is built once by
// [NewShader] and never changes afterwards; [Shader.Clone] builds an
// independent copy. A Shader must be handled through a pointer.
type Shader[V, C any] struct {
	programOwner[V, C]
}

// ShaderView is an additional owner of the program of a [Shader],
// as used by a [VertexRenderer]. It has the same accessors as the Shader.
type ShaderView[V, C any] struct {
	programOwner[V, C]
}

// NewShader compiles the vertex and fragment sources, links them into
// a program, and returns the Shader owning it. inputs describe how
// vertex records of type V are read (see [InputsOf]); caps selects
// the settable uniforms (see [NewCapabilities]).
//
// On failure, the returned error is a [*CompileError], [*LinkError]
// or [*CreateError], and every resource created along the way has
// been deleted.
func NewShader[V, C any](ctx *Context, vertexSrc, fragmentSrc string, inputs []Input, caps Capabilities[C]) (*Shader[V, C], error) {
	prog, err := buildProgram(ctx.Backend, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, errors.Log(err)
	}
	blk := &programBlock{
		program:     prog.Share(),
		inputs:      slices.Clone(inputs),
		vertexSrc:   vertexSrc,
		fragmentSrc: fragmentSrc,
	}
	slog.Debug("gpu.NewShader", "Program", blk.program.Get(), "Inputs", len(inputs))
	return &Shader[V, C]{programOwner[V, C]{ctx: ctx, block: shareBlock(blk), caps: caps}}, nil
}

// Sources returns the vertex and fragment sources the program was built from.
func (sh *Shader[V, C]) Sources() (vertexSrc, fragmentSrc string) {
	if sh.block.Empty() {
		return "", ""
	}
	blk := sh.block.Get()
	return blk.vertexSrc, blk.fragmentSrc
}

// Clone compiles and links a new, independent program from the same
// sources, returning a Shader with the same inputs and capabilities.
func (sh *Shader[V, C]) Clone() (*Shader[V, C], error) {
	vs, fs := sh.Sources()
	return NewShader[V](sh.ctx, vs, fs, sh.Inputs(), sh.caps)
}

// Narrow moves the program of sh into a new Shader with the smaller
// capability set A, leaving sh released. as converts a C to an A;
// written as the identity function it only compiles when A is a
// subset of C:
//
//	phong := gpu.Narrow(full, func(c gpu.AllSetters) Phong { return c })
func Narrow[A, V, C any](sh *Shader[V, C], as func(c C) A) *Shader[V, A] {
	return &Shader[V, A]{programOwner[V, A]{ctx: sh.ctx, block: sh.block.Move(), caps: NarrowCapabilities(sh.caps, as)}}
}

// NarrowView returns a new view of the program of v with the smaller
// capability set A. v stays valid. See [Narrow] for as.
func NarrowView[A, V, C any](v *ShaderView[V, C], as func(c C) A) *ShaderView[V, A] {
	return &ShaderView[V, A]{programOwner[V, A]{ctx: v.ctx, block: v.block.Clone(), caps: NarrowCapabilities(v.caps, as)}}
}

// Reinterpret returns a new view sharing the program of v that reads
// vertex records of type NV with the given inputs. The program stays
// alive while either view owns it.
func Reinterpret[NV, V, C any](v *ShaderView[V, C], inputs []Input) *ShaderView[NV, C] {
	var blk *programBlock
	if v.block.Empty() {
		blk = &programBlock{program: Adopt[ProgramID](0, nil)}
	} else {
		old := v.block.Get()
		blk = &programBlock{
			program:     old.program.Clone(),
			inputs:      slices.Clone(inputs),
			vertexSrc:   old.vertexSrc,
			fragmentSrc: old.fragmentSrc,
		}
	}
	return &ShaderView[NV, C]{programOwner[NV, C]{ctx: v.ctx, block: shareBlock(blk), caps: v.caps}}
}

// buildProgram compiles both stages and links them, deleting the
// stage objects afterwards. Nothing is left allocated on failure.
func buildProgram(b Backend, vertexSrc, fragmentSrc string) (*Unique[ProgramID], error) {
	vs, err := compileStage(b, &VertexStageKind, VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer vs.Release()
	fs, err := compileStage(b, &FragmentStageKind, FragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer fs.Release()

	prog := NewUnique(b, &ProgramKind)
	if !prog.Valid() {
		return nil, &CreateError{Kind: ProgramKind.Name}
	}
	b.AttachShader(prog.Handle(), vs.Handle())
	b.AttachShader(prog.Handle(), fs.Handle())
	if ok, log := b.LinkProgram(prog.Handle()); !ok {
		prog.Release()
		return nil, &LinkError{Log: log}
	}
	return prog, nil
}

func compileStage(b Backend, kind *Kind[StageID], stage Stages, src string) (*Unique[StageID], error) {
	st := NewUnique(b, kind)
	if !st.Valid() {
		return nil, &CreateError{Kind: kind.Name}
	}
	if ok, log := b.CompileShader(st.Handle(), src); !ok {
		st.Release()
		return nil, &CompileError{Stage: stage, Log: log}
	}
	return st, nil
}
