// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Kind describes how to create and destroy one kind of native resource.
type Kind[H Handle] struct {
	// Name is used in log and error messages.
	Name string

	// Create returns a new handle, or the zero sentinel on failure.
	Create func(b Backend) H

	// Destroy deletes a handle returned by Create.
	Destroy func(b Backend, h H)
}

// The predefined resource kinds.
var (
	ProgramKind = Kind[ProgramID]{
		Name:    "program",
		Create:  Backend.CreateProgram,
		Destroy: Backend.DeleteProgram,
	}

	VertexStageKind = Kind[StageID]{
		Name:    "vertex shader",
		Create:  func(b Backend) StageID { return b.CreateShader(VertexStage) },
		Destroy: Backend.DeleteShader,
	}

	FragmentStageKind = Kind[StageID]{
		Name:    "fragment shader",
		Create:  func(b Backend) StageID { return b.CreateShader(FragmentStage) },
		Destroy: Backend.DeleteShader,
	}

	BufferKind = Kind[BufferID]{
		Name:    "buffer",
		Create:  Backend.GenBuffer,
		Destroy: Backend.DeleteBuffer,
	}

	VertexArrayKind = Kind[VertexArrayID]{
		Name:    "vertex array",
		Create:  Backend.GenVertexArray,
		Destroy: Backend.DeleteVertexArray,
	}

	TextureKind = Kind[TextureID]{
		Name:    "texture",
		Create:  Backend.GenTexture,
		Destroy: Backend.DeleteTexture,
	}
)

// noCopy may be embedded into structs which must not be copied
// after first use. It is detected by the copylocks check of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique is the single owner of a native handle. The handle is
// destroyed by [Unique.Release], unless it is the sentinel.
// Ownership is transferred with [Unique.Move]; a Unique must always
// be handled through a pointer and never copied.
type Unique[H Handle] struct {
	noCopy noCopy

	backend Backend
	kind    *Kind[H]
	handle  H
}

// NewUnique creates a new resource of the given kind and returns its owner.
// If creation fails, the owner holds the sentinel; check [Unique.Valid].
func NewUnique[H Handle](b Backend, kind *Kind[H]) *Unique[H] {
	return &Unique[H]{backend: b, kind: kind, handle: kind.Create(b)}
}

// Handle returns the owned handle, which is the sentinel (0)
// if creation failed or ownership has been moved or released.
func (u *Unique[H]) Handle() H {
	return u.handle
}

// Valid returns whether the owner holds a real resource.
func (u *Unique[H]) Valid() bool {
	return u.handle != 0
}

// Move transfers ownership to a new Unique, leaving u holding the sentinel.
func (u *Unique[H]) Move() *Unique[H] {
	nu := &Unique[H]{backend: u.backend, kind: u.kind, handle: u.handle}
	u.handle = 0
	return nu
}

// Release destroys the owned resource. It is safe to call more than once,
// and never destroys the sentinel.
func (u *Unique[H]) Release() {
	if u.handle == 0 {
		return
	}
	h := u.handle
	u.handle = 0
	u.kind.Destroy(u.backend, h)
}

// Share moves ownership of the handle into a new [Shared] owner
// with a count of one, leaving u holding the sentinel.
func (u *Unique[H]) Share() *Shared[H] {
	h := u.handle
	u.handle = 0
	if h == 0 {
		return Adopt(h, nil)
	}
	b, kind := u.backend, u.kind
	return Adopt(h, func(h H) { kind.Destroy(b, h) })
}

// control is the block shared by all owners of one [Shared] value.
type control[T any] struct {
	value   T
	count   int
	release func(T)
}

// Shared is one of possibly many owners of a value. The value's
// release function runs exactly once, when the last owner is released.
// Each owner is added with [Shared.Clone] and dropped with
// [Shared.Release]; a Shared must always be handled through a pointer.
type Shared[T any] struct {
	noCopy noCopy

	ctl *control[T]
}

// Adopt returns the first owner of v. release is called with v when
// the last owner is released; it may be nil if v needs no cleanup.
func Adopt[T any](v T, release func(T)) *Shared[T] {
	return &Shared[T]{ctl: &control[T]{value: v, count: 1, release: release}}
}

// NewShared creates a new resource of the given kind and returns its
// first shared owner. If creation fails the owner holds the sentinel,
// which is never destroyed.
func NewShared[H Handle](b Backend, kind *Kind[H]) *Shared[H] {
	return NewUnique(b, kind).Share()
}

// Get returns the shared value, or the zero value if s is empty.
func (s *Shared[T]) Get() T {
	if s.ctl == nil {
		var zero T
		return zero
	}
	return s.ctl.value
}

// Empty returns whether s no longer owns anything, because it
// was moved from or released.
func (s *Shared[T]) Empty() bool {
	return s.ctl == nil
}

// Count returns the number of live owners of the value, or 0 if s is empty.
func (s *Shared[T]) Count() int {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.count
}

// Clone returns a new owner of the same value, incrementing the count.
// Cloning an empty owner returns another empty owner.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.ctl == nil {
		return &Shared[T]{}
	}
	s.ctl.count++
	return &Shared[T]{ctl: s.ctl}
}

// Move transfers this ownership to a new Shared without changing
// the count, leaving s empty.
func (s *Shared[T]) Move() *Shared[T] {
	ns := &Shared[T]{ctl: s.ctl}
	s.ctl = nil
	return ns
}

// Release drops this ownership, leaving s empty. The release function
// runs when the count reaches zero. Releasing an empty owner is a no-op.
func (s *Shared[T]) Release() {
	ctl := s.ctl
	if ctl == nil {
		return
	}
	s.ctl = nil
	ctl.count--
	if ctl.count > 0 {
		return
	}
	if ctl.release != nil {
		ctl.release(ctl.value)
	}
	var zero T
	ctl.value = zero
}
