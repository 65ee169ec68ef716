// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import "cogentcore.org/glengine/gpu"

// Surface is a [gpu.Surface] that records whether it is current.
type Surface struct {
	Current bool

	// MakeCurrentCalls and DetachCalls count the calls of each method.
	MakeCurrentCalls int
	DetachCalls      int
}

var _ gpu.Surface = (*Surface)(nil)

func (s *Surface) MakeCurrent() {
	s.Current = true
	s.MakeCurrentCalls++
}

func (s *Surface) DetachCurrent() {
	s.Current = false
	s.DetachCalls++
}

// NewContext returns a new context over a new recording backend and surface.
func NewContext() (*gpu.Context, *Backend, *Surface) {
	b := New()
	s := &Surface{}
	return gpu.NewContext(b, s), b, s
}
