// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// slot is one named binding point of a [Context], such as the
// current program or the array buffer. A slot holds at most one
// live [Lock] at a time.
type slot[H Handle] struct {
	name   string
	bind   func(h H)
	locked bool
}

func newSlot[H Handle](name string, bind func(h H)) *slot[H] {
	return &slot[H]{name: name, bind: bind}
}

// lock binds h into the slot and returns the guard that unbinds it.
// It panics if the slot is already locked.
func (s *slot[H]) lock(h H) *Lock[H] {
	if s.locked {
		panic(fmt.Sprintf("gpu: %s slot is already locked", s.name))
	}
	s.locked = true
	s.bind(h)
	return &Lock[H]{slot: s, handle: h}
}

// Lock is a scoped guard for one binding slot, returned by the
// Lock methods of [Context]. While it is held its handle is bound
// into the slot; [Lock.Unlock] binds the slot's sentinel. The idiom is:
//
//	lk := ctx.LockProgram(p)
//	defer lk.Unlock()
//
// Releasing does not restore whatever was bound before the lock
// was acquired, so locks on the same slot cannot be nested.
type Lock[H Handle] struct {
	noCopy noCopy

	slot   *slot[H]
	handle H
}

// Handle returns the handle bound by this lock.
func (lk *Lock[H]) Handle() H {
	return lk.handle
}

// Held returns whether the lock has not been released yet.
func (lk *Lock[H]) Held() bool {
	return lk != nil && lk.slot != nil
}

// Unlock binds the sentinel into the slot. Calling it more than
// once, or on a nil lock, is a no-op.
func (lk *Lock[H]) Unlock() {
	if lk == nil || lk.slot == nil {
		return
	}
	s := lk.slot
	lk.slot = nil
	s.bind(0)
	s.locked = false
}

// surfaceID is the pseudo-handle of the context-current slot:
// 1 means the surface is current, 0 means it is detached.
type surfaceID uint32

// ContextLock keeps the rendering surface of a [Context] current
// on the calling thread while it is held.
type ContextLock = Lock[surfaceID]
