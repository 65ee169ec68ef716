// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/glengine/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// numLights is the number of lights in the block shader.
const numLights = 3

// Light is a colored point light with distance attenuation.
type Light struct {
	Position mgl32.Vec3

	Ambient, Diffuse, Specular mgl32.Vec3

	// Constant, Linear and Quadratic are the attenuation
	// coefficients of the distance from the light.
	Constant, Linear, Quadratic float32
}

// coloredLight returns a light of a single color with the
// attenuation of a range of about 50 blocks.
func coloredLight(pos, clr mgl32.Vec3) Light {
	return Light{
		Position:  pos,
		Ambient:   clr,
		Diffuse:   clr,
		Specular:  clr,
		Constant:  1,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

// DefaultLights are a red, a green and a blue light above the floor.
var DefaultLights = [numLights]Light{
	coloredLight(mgl32.Vec3{8, 5, 8}, mgl32.Vec3{1, 0, 0}),
	coloredLight(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{0, 1, 0}),
	coloredLight(mgl32.Vec3{2, 5, 2}, mgl32.Vec3{0, 0, 1}),
}

// lightUniforms are the uniforms set by [ApplyLights].
type lightUniforms interface {
	gpu.Vec3Setter
	gpu.FloatSetter
}

// ApplyLights sets the lights and the material shininess of a shader.
func ApplyLights(u lightUniforms, lights *[numLights]Light, shininess float32) {
	for i, l := range lights {
		name := fmt.Sprintf("lights[%d].", i)
		u.SetVec3(name+"position", l.Position)
		u.SetVec3(name+"ambient", l.Ambient)
		u.SetVec3(name+"diffuse", l.Diffuse)
		u.SetVec3(name+"specular", l.Specular)
		u.SetFloat(name+"constant", l.Constant)
		u.SetFloat(name+"linear", l.Linear)
		u.SetFloat(name+"quadratic", l.Quadratic)
	}
	u.SetFloat("shininess", shininess)
}
