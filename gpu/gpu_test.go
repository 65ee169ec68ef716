// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"cogentcore.org/glengine/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

const vertexSrc = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texCoord;
uniform mat4 mvp;
out vec2 uv;
void main() {
	gl_Position = mvp * vec4(position, 1.0);
	uv = texCoord;
}
`

const fragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D tex;
uniform vec3 tint;
out vec4 color;
void main() {
	color = texture(tex, uv) * vec4(tint, 1.0);
}
`

// vertex is a position and texture coordinate.
type vertex struct {
	Position mgl32.Vec3 `attrib:"0"`
	TexCoord mgl32.Vec2 `attrib:"1"`
}

// texturedCaps are the uniforms of the test shader.
type texturedCaps interface {
	gpu.Mat4Setter
	gpu.Vec3Setter
	gpu.IntSetter
}

// mvpCaps is a subset of texturedCaps.
type mvpCaps interface {
	gpu.Mat4Setter
}

var texturedUniforms = gpu.NewCapabilities(func(u *gpu.Uniforms) texturedCaps { return u })

func newTestShader(t *testing.T, ctx *gpu.Context) *gpu.Shader[vertex, texturedCaps] {
	t.Helper()
	sh, err := gpu.NewShader[vertex](ctx, vertexSrc, fragmentSrc, gpu.MustInputsOf[vertex](), texturedUniforms)
	require.NoError(t, err)
	return sh
}
