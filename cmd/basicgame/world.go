// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// reach is how many blocks away from the camera blocks can be
// placed and removed.
const reach = 4

// Block is the integer position of the center of a unit block.
type Block [3]int

// BlockAt returns the block containing the given position.
func BlockAt(pos mgl32.Vec3) Block {
	return Block{round(pos[0]), round(pos[1]), round(pos[2])}
}

func round(x float32) int {
	return int(math32.Floor(x + 0.5))
}

// Center returns the center of the block.
func (b Block) Center() mgl32.Vec3 {
	return mgl32.Vec3{float32(b[0]), float32(b[1]), float32(b[2])}
}

// World is the set of blocks placed in the game.
type World struct {
	blocks []Block
}

// Len returns the number of blocks.
func (w *World) Len() int {
	return len(w.blocks)
}

// Blocks returns the blocks in the order they were added.
func (w *World) Blocks() []Block {
	return w.blocks
}

// Has returns whether there is a block at the given position.
func (w *World) Has(pos mgl32.Vec3) bool {
	return slices.Contains(w.blocks, BlockAt(pos))
}

// Add adds a block at the given position if there is none,
// and returns whether it was added.
func (w *World) Add(pos mgl32.Vec3) bool {
	b := BlockAt(pos)
	if slices.Contains(w.blocks, b) {
		return false
	}
	w.blocks = append(w.blocks, b)
	return true
}

// Remove removes the block at the given position, and returns
// whether there was one.
func (w *World) Remove(pos mgl32.Vec3) bool {
	n := len(w.blocks)
	w.blocks = slices.DeleteFunc(w.blocks, func(b Block) bool { return b == BlockAt(pos) })
	return len(w.blocks) < n
}

// Clear removes all blocks.
func (w *World) Clear() {
	w.blocks = w.blocks[:0]
}

// Floor adds a size by size floor of blocks at height zero.
func (w *World) Floor(size int) {
	for x := range size {
		for z := range size {
			w.Add(mgl32.Vec3{float32(x), 0, float32(z)})
		}
	}
}

// Place adds a block in front of every block within reach along
// the view ray from pos in dir, on the side facing the camera.
// It returns the number of blocks added.
func (w *World) Place(pos, dir mgl32.Vec3) int {
	dir = dir.Normalize()
	n := 0
	for i := 1; i <= reach; i++ {
		p := pos.Add(dir.Mul(float32(i)))
		if w.Has(p) && w.Add(p.Sub(dir)) {
			n++
		}
	}
	return n
}

// Dig removes the first block within reach along the view ray
// from pos in dir, and returns whether there was one.
func (w *World) Dig(pos, dir mgl32.Vec3) bool {
	dir = dir.Normalize()
	for i := 0; i <= reach; i++ {
		if w.Remove(pos.Add(dir.Mul(float32(i)))) {
			return true
		}
	}
	return false
}

// AppendVertices appends the vertices of all blocks to vs, farthest
// from eye first, and returns the extended list.
func (w *World) AppendVertices(vs Vertices, eye mgl32.Vec3) Vertices {
	slices.SortStableFunc(w.blocks, func(a, b Block) int {
		da := distSqr(a.Center(), eye)
		db := distSqr(b.Center(), eye)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	for _, b := range w.blocks {
		vs = vs.AppendCube(b.Center(), 1)
	}
	return vs
}

func distSqr(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}
