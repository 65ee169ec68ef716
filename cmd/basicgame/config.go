// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/glengine/cli"
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the configuration of the game, loaded from basicgame.toml
// or the file given with --config, with flags applied on top.
type Config struct {

	// Includes are config files opened before this one.
	Includes []string `toml:"includes" yaml:"includes"`

	Window WindowConfig `toml:"window" yaml:"window"`

	Shaders ShaderConfig `toml:"shaders" yaml:"shaders"`

	Camera CameraConfig `toml:"camera" yaml:"camera"`

	// Texture is the image file used for the blocks. A generated
	// checkerboard is used if it is empty.
	Texture string `toml:"texture" yaml:"texture"`

	// Benchmark, if positive, fills the floor with blocks and exits
	// after running for this long.
	Benchmark Duration `toml:"benchmark" yaml:"benchmark"`

	// FloorSize is the number of blocks along each side of the
	// benchmark floor.
	FloorSize int `default:"10" toml:"floor-size" yaml:"floor-size"`
}

// Duration is a [time.Duration] written as a string such as "30s"
// in config files.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// IncludesPtr implements [cli.Includer].
func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// WindowConfig is the configuration of the game window.
type WindowConfig struct {
	Title string `default:"Twurtle Engine" toml:"title" yaml:"title"`

	Width  int `default:"800" toml:"width" yaml:"width"`
	Height int `default:"800" toml:"height" yaml:"height"`

	VSync bool `default:"true" toml:"vsync" yaml:"vsync"`

	// ClearColor is the background color, as RGBA in [0, 1].
	ClearColor [4]float32 `default:"0.6 0.6 0.9 1" toml:"clear-color" yaml:"clear-color"`
}

// Size returns the window size.
func (w *WindowConfig) Size() image.Point {
	return image.Pt(w.Width, w.Height)
}

// ShaderConfig is the configuration of the block shader.
type ShaderConfig struct {

	// Dir is the directory the shader files are read from. The
	// embedded shaders are used if it is empty.
	Dir string `toml:"dir" yaml:"dir"`

	Vertex   string `default:"block.vert" toml:"vertex" yaml:"vertex"`
	Fragment string `default:"block.frag" toml:"fragment" yaml:"fragment"`

	// HotReload rebuilds the shader when its files in Dir change.
	HotReload bool `toml:"hot-reload" yaml:"hot-reload"`
}

// CameraConfig is the initial state and tuning of the camera.
type CameraConfig struct {
	Position [3]float32 `default:"4.5 15 4.5" toml:"position" yaml:"position"`

	// Yaw and Pitch are in degrees.
	Yaw   float32 `default:"0" toml:"yaw" yaml:"yaw"`
	Pitch float32 `default:"-90" toml:"pitch" yaml:"pitch"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"45" toml:"fov" yaml:"fov"`

	// Speed is the movement speed in blocks per second.
	Speed float32 `default:"10" toml:"speed" yaml:"speed"`

	// Sensitivity is the rotation in degrees per pixel of mouse motion.
	Sensitivity float32 `default:"0.1" toml:"sensitivity" yaml:"sensitivity"`
}

// LoadConfig returns the config with its defaults, overridden by the
// given config file, or by the first default config file found if
// file is empty. It is not validated, so that flags can be applied
// first; see [Config.Validate].
func LoadConfig(file string) (*Config, error) {
	cfg := &Config{}
	if err := cli.Load(cli.DefaultOptions("basicgame"), cfg, file); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the config can not be used.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %g not in (0, 180)", c.Camera.FOV)
	}
	if c.Shaders.HotReload && c.Shaders.Dir == "" {
		return fmt.Errorf("shader hot reload requires a shader dir")
	}
	if c.FloorSize < 0 {
		return fmt.Errorf("negative floor size %d", c.FloorSize)
	}
	return nil
}

// ClearColor returns the window clear color.
func (c *Config) ClearColor() mgl32.Vec4 {
	return mgl32.Vec4(c.Window.ClearColor)
}
