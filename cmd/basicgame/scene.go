// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"embed"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/glengine/base/errors"
	"cogentcore.org/glengine/base/fsx"
	"cogentcore.org/glengine/gpu"
	"cogentcore.org/glengine/gpu/shaderwatch"
	"cogentcore.org/glengine/system"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders
var embedded embed.FS

// blockUniforms are the uniforms of the block shader.
type blockUniforms interface {
	gpu.BoolSetter
	gpu.IntSetter
	gpu.FloatSetter
	gpu.Vec3Setter
	gpu.Mat4Setter
}

var blockCaps = gpu.NewCapabilities(func(u *gpu.Uniforms) blockUniforms { return u })

type blockShader = gpu.Shader[Vertex, blockUniforms]

const (
	// shininess is the specular exponent of the block material.
	shininess = 32

	// actionInterval is the time in seconds between repeated block
	// placing or digging while the key is held.
	actionInterval = 0.1
)

// spinner is the spinning polygon above the floor.
var spinner = struct {
	center mgl32.Vec3
	sides  int
	radius float32
}{mgl32.Vec3{0, 5, 0}, 4, 1}

// Scene is the state of the game and the GPU resources drawing it.
type Scene struct {
	Config *Config
	Camera *Camera
	World  World
	Lights [numLights]Light

	// Lit is whether lighting is applied; otherwise the texture
	// colors are drawn unchanged.
	Lit bool

	ctx       *gpu.Context
	fsys      fs.FS
	shader    *blockShader
	renderer  *gpu.VertexRenderer[Vertex]
	texture   *gpu.Texture
	watcher   *shaderwatch.Watcher
	vertices  Vertices
	time      float32
	actionDue float32
}

// NewScene builds the shader, renderer and texture of the scene in ctx,
// which must be current.
func NewScene(ctx *gpu.Context, cfg *Config, aspect float32) (*Scene, error) {
	s := &Scene{
		Config: cfg,
		Camera: NewCamera(&cfg.Camera, aspect),
		Lights: DefaultLights,
		Lit:    true,
		ctx:    ctx,
		fsys:   shaderFS(&cfg.Shaders),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	tex, err := loadTexture(ctx, cfg.Texture)
	if err != nil {
		s.Release()
		return nil, err
	}
	s.texture = tex
	if cfg.Shaders.HotReload {
		s.watcher, err = shaderwatch.New(shaderFiles(cfg.Shaders.Dir)...)
		if err != nil {
			s.Release()
			return nil, errors.Log(err)
		}
	}
	if cfg.Benchmark > 0 {
		s.World.Floor(cfg.FloorSize)
	}
	return s, nil
}

// shaderFS returns the file system the shaders are read from.
func shaderFS(cfg *ShaderConfig) fs.FS {
	if cfg.Dir == "" {
		return fsx.Sub(embedded, "shaders")
	}
	return os.DirFS(cfg.Dir)
}

// shaderFiles returns the files in dir, including those only
// used through #include.
func shaderFiles(dir string) []string {
	ents, err := os.ReadDir(dir)
	if errors.Log(err) != nil {
		return nil
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}

// buildShader loads and builds the block shader.
func buildShader(ctx *gpu.Context, fsys fs.FS, cfg *ShaderConfig) (*blockShader, error) {
	vsrc, fsrc, err := gpu.LoadSources(fsys, cfg.Vertex, cfg.Fragment)
	if err != nil {
		return nil, errors.Log(err)
	}
	return gpu.NewShader[Vertex](ctx, vsrc, fsrc, gpu.MustInputsOf[Vertex](), blockCaps)
}

// loadTexture opens the given image file as a texture, or generates
// a checkerboard if file is empty.
func loadTexture(ctx *gpu.Context, file string) (*gpu.Texture, error) {
	if file == "" {
		return gpu.NewTexture(ctx, checkerboard(64, 8))
	}
	fsys, name, err := fsx.DirFS(fsx.ExpandHome(file))
	if err != nil {
		return nil, errors.Log(err)
	}
	return gpu.OpenTexture(ctx, fsys, name)
}

// checkerboard returns a size by size image of cells by cells
// alternating white and gray squares.
func checkerboard(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/cells, 1)
	for y := range size {
		for x := range size {
			clr := color.RGBA{255, 255, 255, 255}
			if (x/cell+y/cell)%2 == 1 {
				clr = color.RGBA{160, 160, 160, 255}
			}
			img.SetRGBA(x, y, clr)
		}
	}
	return img
}

// Reload rebuilds the shader and renderer from the shader files.
// On failure the current ones are kept and the error is returned.
func (s *Scene) Reload() error {
	sh, err := buildShader(s.ctx, s.fsys, &s.Config.Shaders)
	if err != nil {
		return err
	}
	view := sh.View()
	defer view.Release()
	vr, err := gpu.NewVertexRenderer(view)
	if err != nil {
		sh.Release()
		return err
	}
	s.releaseShader()
	s.shader, s.renderer = sh, vr
	u := sh.Uniforms()
	ApplyLights(u, &s.Lights, shininess)
	u.SetInt("tex", 0)
	return nil
}

// CheckReload reloads the shader if hot reload is on and one of its
// files has changed. It returns whether a reload succeeded.
func (s *Scene) CheckReload() bool {
	if s.watcher == nil {
		return false
	}
	name, ok := s.watcher.Changed()
	if !ok {
		return false
	}
	if err := s.Reload(); err != nil {
		slog.Error("basicgame: shader reload failed, keeping the previous shader", "File", name, "err", err)
		return false
	}
	slog.Info("basicgame: reloaded shader", "File", name)
	return true
}

// Program returns the current program of the scene.
func (s *Scene) Program() gpu.ProgramID {
	return s.shader.Program()
}

// movement returns the movement keys held in in.
func movement(in *system.Input) Movement {
	return Movement{
		Forward: in.KeyHeld(system.KeyW),
		Back:    in.KeyHeld(system.KeyS),
		Left:    in.KeyHeld(system.KeyA),
		Right:   in.KeyHeld(system.KeyD),
		Up:      in.KeyHeld(system.KeySpace),
		Down:    in.KeyHeld(system.KeyLeftShift),
	}
}

// Update advances the game by dt seconds with the given input.
// It returns false when the game should quit.
func (s *Scene) Update(in *system.Input, dt float32) bool {
	if in.KeyHeld(system.KeyEscape) {
		return false
	}
	s.time += dt
	s.Camera.Look(in.MouseDelta(), s.Config.Camera.Sensitivity)
	s.Camera.Move(movement(in), s.Config.Camera.Speed*dt)
	if in.KeyPressed(system.KeyR) {
		s.World.Clear()
	}
	if in.KeyPressed(system.KeyF) {
		s.Lit = !s.Lit
	}
	if s.time >= s.actionDue {
		switch {
		case in.KeyHeld(system.KeyE):
			s.World.Place(s.Camera.Pos, s.Camera.Dir())
			s.actionDue = s.time + actionInterval
		case in.KeyHeld(system.KeyQ):
			s.World.Dig(s.Camera.Pos, s.Camera.Dir())
			s.actionDue = s.time + actionInterval
		}
	}
	return true
}

// Draw clears the frame and draws the blocks and the spinner.
func (s *Scene) Draw() {
	s.ctx.Clear()
	u := s.shader.Uniforms()
	s.Camera.Apply(u)
	u.SetBool("lit", s.Lit)

	s.vertices = s.World.AppendVertices(s.vertices[:0], s.Camera.Pos)
	s.vertices = s.vertices.AppendPolygon(spinner.center, spinner.sides, spinner.radius, s.time)

	tlk := s.texture.MakeActiveLock(0)
	defer tlk.Unlock()
	s.renderer.Draw(s.vertices)
}

func (s *Scene) releaseShader() {
	if s.renderer != nil {
		s.renderer.Release()
	}
	if s.shader != nil {
		s.shader.Release()
	}
}

// Release deletes the GPU resources of the scene and stops
// watching the shader files.
func (s *Scene) Release() {
	if s.watcher != nil {
		errors.Log(s.watcher.Close())
	}
	if s.texture != nil {
		s.texture.Release()
	}
	s.releaseShader()
}
