// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"cogentcore.org/glengine/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockVertex struct {
	Position mgl32.Vec3 `attrib:"0"`
	Normal   mgl32.Vec3 `attrib:"2"`
	Padding  float32
	Block    uint32   `attrib:"1"`
	Light    [2]int32 `attrib:"3"`
}

func TestInputsOf(t *testing.T) {
	inputs, err := gpu.InputsOf[blockVertex]()
	require.NoError(t, err)
	want := []gpu.Input{
		{Index: 0, Base: gpu.Float, Count: 3, Type: gpu.Float32Component, Stride: 40, Offset: 0},
		{Index: 2, Base: gpu.Float, Count: 3, Type: gpu.Float32Component, Stride: 40, Offset: 12},
		{Index: 1, Base: gpu.Integral, Count: 1, Type: gpu.Uint32Component, Stride: 40, Offset: 28},
		{Index: 3, Base: gpu.Integral, Count: 2, Type: gpu.Int32Component, Stride: 40, Offset: 32},
	}
	assert.Equal(t, want, inputs)
}

func TestInputsOfErrors(t *testing.T) {
	_, err := gpu.InputsOf[int]()
	assert.ErrorContains(t, err, "not a struct")

	type badIndex struct {
		A float32 `attrib:"x"`
	}
	_, err = gpu.InputsOf[badIndex]()
	assert.ErrorContains(t, err, "invalid attrib index")

	type badType struct {
		A float64 `attrib:"0"`
	}
	_, err = gpu.InputsOf[badType]()
	assert.ErrorContains(t, err, "unsupported component type")

	type tooLong struct {
		A [5]float32 `attrib:"0"`
	}
	_, err = gpu.InputsOf[tooLong]()
	assert.ErrorContains(t, err, "not in [1, 4]")

	type duplicate struct {
		A float32 `attrib:"0"`
		B float32 `attrib:"0"`
	}
	_, err = gpu.InputsOf[duplicate]()
	assert.ErrorContains(t, err, "duplicate attrib index 0")

	assert.Panics(t, func() { gpu.MustInputsOf[badType]() })
}

func TestInputComponentType(t *testing.T) {
	in := gpu.Input{Base: gpu.Float}
	assert.Equal(t, gpu.Float32Component, in.ComponentType())
	in = gpu.Input{Base: gpu.Integral}
	assert.Equal(t, gpu.Int32Component, in.ComponentType())
	in.Type = gpu.Uint8Component
	assert.Equal(t, gpu.Uint8Component, in.ComponentType())
	assert.Equal(t, 1, in.Type.Size())
}
