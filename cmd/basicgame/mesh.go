// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the vertex type of the block shader.
type Vertex struct {
	Position mgl32.Vec3 `attrib:"0"`
	TexCoord mgl32.Vec2 `attrib:"1"`
	Normal   mgl32.Vec3 `attrib:"2"`
}

// Vertices is a list of vertices drawn as triangles.
type Vertices []Vertex

// cubeFace is one face of a cube: its outward normal, and the right
// and up axes of the face seen from outside, with right × up = normal.
type cubeFace struct {
	normal, right, up mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// quadCorners are the corners of a face in right, up units,
// counter-clockwise from the bottom left.
var quadCorners = [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// quadTriangles are the corner indexes of the two triangles of a face.
var quadTriangles = [6]int{0, 1, 2, 0, 2, 3}

// VerticesPerCube is the number of vertices of a cube.
const VerticesPerCube = 6 * len(quadTriangles)

// AppendCube appends the triangles of an axis aligned cube with the
// given center and side length to vs, with counter-clockwise winding
// seen from outside, and returns the extended list.
func (vs Vertices) AppendCube(center mgl32.Vec3, size float32) Vertices {
	h := size / 2
	for _, f := range cubeFaces {
		mid := center.Add(f.normal.Mul(h))
		for _, i := range quadTriangles {
			c := quadCorners[i]
			pos := mid.Add(f.right.Mul(c.X() * h)).Add(f.up.Mul(c.Y() * h))
			uv := mgl32.Vec2{(c.X() + 1) / 2, (c.Y() + 1) / 2}
			vs = append(vs, Vertex{Position: pos, TexCoord: uv, Normal: f.normal})
		}
	}
	return vs
}

// AppendPolygon appends a regular polygon with the given number of
// sides to vs, as a triangle fan around center. The polygon is
// vertical, with the given radius, and rotated about the vertical
// axis by angle radians.
func (vs Vertices) AppendPolygon(center mgl32.Vec3, sides int, radius, angle float32) Vertices {
	if sides < 3 {
		return vs
	}
	rot := mgl32.HomogRotate3DY(angle)
	normal := rot.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	corner := func(i int) Vertex {
		a := 2 * math32.Pi * float32(i) / float32(sides)
		x, y := math32.Cos(a), math32.Sin(a)
		p := rot.Mul4x1(mgl32.Vec4{x * radius, y * radius, 0, 1}).Vec3()
		return Vertex{Position: center.Add(p), TexCoord: mgl32.Vec2{(x + 1) / 2, (y + 1) / 2}, Normal: normal}
	}
	mid := Vertex{Position: center, TexCoord: mgl32.Vec2{0.5, 0.5}, Normal: normal}
	for i := range sides {
		vs = append(vs, mid, corner(i), corner(i+1))
	}
	return vs
}
