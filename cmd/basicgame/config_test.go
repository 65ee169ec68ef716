// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/glengine/cli"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultConfig returns the config with only its defaults set.
func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return cfg
}

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig(t)
	assert.Equal(t, "Twurtle Engine", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Size().X)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, mgl32.Vec4{0.6, 0.6, 0.9, 1}, cfg.ClearColor())
	assert.Equal(t, "block.vert", cfg.Shaders.Vertex)
	assert.Equal(t, "block.frag", cfg.Shaders.Fragment)
	assert.Equal(t, [3]float32{4.5, 15, 4.5}, cfg.Camera.Position)
	assert.Equal(t, float32(-90), cfg.Camera.Pitch)
	assert.Equal(t, 10, cfg.FloorSize)
	assert.Zero(t, cfg.Benchmark)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigTOML(t *testing.T) {
	fn := writeConfig(t, "game.toml", `
benchmark = "30s"
texture = "~/textures/wall.png"

[window]
title = "Blocks"
width = 1280
height = 720
clear-color = [0.0, 0.0, 0.0, 1.0]

[shaders]
dir = "shaders"
hot-reload = true

[camera]
speed = 5.0
`)
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, Duration(30*time.Second), cfg.Benchmark)
	assert.Equal(t, "Blocks", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, cfg.ClearColor())
	assert.True(t, cfg.Shaders.HotReload)
	assert.Equal(t, "block.vert", cfg.Shaders.Vertex, "defaults are kept")
	assert.Equal(t, float32(5), cfg.Camera.Speed)
	assert.Equal(t, float32(0.1), cfg.Camera.Sensitivity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigYAML(t *testing.T) {
	fn := writeConfig(t, "game.yaml", `
benchmark: 1m
window:
  vsync: false
floor-size: 20
`)
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, Duration(time.Minute), cfg.Benchmark)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, 20, cfg.FloorSize)
	assert.Equal(t, 800, cfg.Window.Height)
}

func TestLoadConfigIncludes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.toml"), []byte("floor-size = 4\n[window]\ntitle = \"Base\"\n"), 0666))
	fn := filepath.Join(dir, "game.toml")
	require.NoError(t, os.WriteFile(fn, []byte("includes = [\""+filepath.ToSlash(filepath.Join(dir, "base.toml"))+"\"]\n[window]\ntitle = \"Game\"\n"), 0666))

	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "Game", cfg.Window.Title)
	assert.Equal(t, 4, cfg.FloorSize)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "bad.toml", `benchmark = "soon"`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "game.ini", "title=x"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Window.Width = 0
	assert.ErrorContains(t, cfg.Validate(), "window size")

	cfg = defaultConfig(t)
	cfg.Camera.FOV = 180
	assert.ErrorContains(t, cfg.Validate(), "fov")

	cfg = defaultConfig(t)
	cfg.Shaders.HotReload = true
	assert.ErrorContains(t, cfg.Validate(), "shader dir")
	cfg.Shaders.Dir = "shaders"
	assert.NoError(t, cfg.Validate())

	cfg.FloorSize = -1
	assert.Error(t, cfg.Validate())
}

func TestDurationText(t *testing.T) {
	d := Duration(90 * time.Second)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	var got Duration
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, d, got)
	assert.Error(t, got.UnmarshalText([]byte("later")))
}
