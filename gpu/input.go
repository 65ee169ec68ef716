// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"

	"cogentcore.org/glengine/base/errors"
)

// BaseTypes are the shader-side base types of vertex attributes,
// which select how the attribute pointer is configured.
type BaseTypes int32

const (
	// Float attributes are read as floating point in the shader.
	Float BaseTypes = iota

	// Integral attributes are read as integers in the shader.
	Integral
)

func (bt BaseTypes) String() string {
	if bt == Integral {
		return "integral"
	}
	return "float"
}

// Input describes how one vertex attribute is read from a buffer
// of vertex records.
type Input struct {
	// Index is the attribute location in the vertex shader.
	Index uint32

	// Base is the base type the shader reads the attribute as.
	Base BaseTypes

	// Count is the number of components, in [1, 4].
	Count int32

	// Type is the storage type of each component in the buffer.
	// If zero, it defaults to 32-bit float for [Float] and 32-bit
	// signed int for [Integral].
	Type ComponentTypes

	// Stride is the size in bytes of one vertex record.
	Stride int32

	// Offset is the byte offset of the attribute within the record.
	Offset uintptr
}

// ComponentType returns the storage type, applying the default for Base.
func (in *Input) ComponentType() ComponentTypes {
	if in.Type != 0 {
		return in.Type
	}
	if in.Base == Integral {
		return Int32Component
	}
	return Float32Component
}

func (in Input) String() string {
	return fmt.Sprintf("attrib %d: %d x %s at %d/%d", in.Index, in.Count, in.Base, in.Offset, in.Stride)
}

// InputsOf returns the input descriptors of vertex record type V,
// which must be a struct. Every field with an `attrib:"N"` tag is an
// attribute at location N. Supported field types are float32, int32
// and uint32 scalars and arrays of 1 to 4 of them, including named
// array types such as mgl32.Vec3.
func InputsOf[V any]() ([]Input, error) {
	typ := reflect.TypeFor[V]()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gpu.InputsOf: vertex type %v is not a struct", typ)
	}
	stride := int32(typ.Size())
	var inputs []Input
	for i := range typ.NumField() {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("attrib")
		if !ok {
			continue
		}
		idx, err := strconv.ParseUint(tag, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("gpu.InputsOf: field %s of %v: invalid attrib index %q", f.Name, typ, tag)
		}
		in, err := fieldInput(f.Type)
		if err != nil {
			return nil, fmt.Errorf("gpu.InputsOf: field %s of %v: %w", f.Name, typ, err)
		}
		in.Index = uint32(idx)
		in.Stride = stride
		in.Offset = f.Offset
		if slices.ContainsFunc(inputs, func(o Input) bool { return o.Index == in.Index }) {
			return nil, fmt.Errorf("gpu.InputsOf: field %s of %v: duplicate attrib index %d", f.Name, typ, idx)
		}
		inputs = append(inputs, in)
	}
	slog.Debug("gpu.InputsOf", "Type", typ, "Inputs", len(inputs), "Stride", stride)
	return inputs, nil
}

// MustInputsOf is [InputsOf] for vertex types known to be valid;
// it panics on error.
func MustInputsOf[V any]() []Input {
	return errors.Must1(InputsOf[V]())
}

func fieldInput(t reflect.Type) (Input, error) {
	count := int32(1)
	if t.Kind() == reflect.Array {
		count = int32(t.Len())
		t = t.Elem()
	}
	if count < 1 || count > 4 {
		return Input{}, fmt.Errorf("array length %d not in [1, 4]", count)
	}
	switch t.Kind() {
	case reflect.Float32:
		return Input{Base: Float, Count: count, Type: Float32Component}, nil
	case reflect.Int32:
		return Input{Base: Integral, Count: count, Type: Int32Component}, nil
	case reflect.Uint32:
		return Input{Base: Integral, Count: count, Type: Uint32Component}, nil
	}
	return Input{}, fmt.Errorf("unsupported component type %v", t)
}
