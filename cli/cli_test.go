// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWindow struct {
	Title string     `default:"Game" toml:"title" yaml:"title"`
	Size  [2]int     `default:"800 600" toml:"size" yaml:"size"`
	Clear [4]float32 `default:"0.1 0.2 0.3 1" toml:"clear" yaml:"clear"`
}

type testConfig struct {
	Includes  []string      `toml:"includes" yaml:"includes"`
	Window    testWindow    `toml:"window" yaml:"window"`
	VSync     bool          `default:"true" toml:"vsync" yaml:"vsync"`
	Speed     float64       `default:"2.5" toml:"speed" yaml:"speed"`
	Frames    uint32        `default:"60" toml:"frames" yaml:"frames"`
	Benchmark time.Duration `default:"5s" toml:"benchmark" yaml:"benchmark"`
	Shaders   []string      `default:"a.vert a.frag" toml:"shaders" yaml:"shaders"`
	Name      string        `toml:"name" yaml:"name"`
}

func (c *testConfig) IncludesPtr() *[]string { return &c.Includes }

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0666))
}

func TestSetFromDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, SetFromDefaults(&cfg))
	assert.Equal(t, "Game", cfg.Window.Title)
	assert.Equal(t, [2]int{800, 600}, cfg.Window.Size)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Window.Clear)
	assert.True(t, cfg.VSync)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, uint32(60), cfg.Frames)
	assert.Equal(t, 5*time.Second, cfg.Benchmark)
	assert.Equal(t, []string{"a.vert", "a.frag"}, cfg.Shaders)
	assert.Empty(t, cfg.Name)
}

func TestSetFromDefaultsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaults(testConfig{}))

	type bad struct {
		Size [2]int `default:"1 2 3"`
		On   bool   `default:"maybe"`
	}
	err := SetFromDefaults(&bad{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "field Size")
	assert.ErrorContains(t, err, "field On")
}

func TestOpenByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.toml", "name = \"toml\"\n")
	writeFile(t, dir, "a.yml", "name: yaml\n")
	writeFile(t, dir, "a.json", "{}")

	var cfg testConfig
	require.NoError(t, Open(&cfg, filepath.Join(dir, "a.toml")))
	assert.Equal(t, "toml", cfg.Name)
	require.NoError(t, Open(&cfg, filepath.Join(dir, "a.yml")))
	assert.Equal(t, "yaml", cfg.Name)
	assert.ErrorContains(t, Open(&cfg, filepath.Join(dir, "a.json")), "unsupported")
}

func TestSaveOpen(t *testing.T) {
	var cfg testConfig
	require.NoError(t, SetFromDefaults(&cfg))
	cfg.Name = "saved"
	cfg.Includes = []string{"base.toml"}
	for _, name := range []string{"c.toml", "c.yaml"} {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(&cfg, fn))
		var got testConfig
		require.NoError(t, Open(&got, fn))
		assert.Equal(t, cfg, got, name)
	}
}

func TestOpenWithIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "game.toml", `
includes = ["base.toml"]
name = "game"
`)
	writeFile(t, dir, "base.toml", `
includes = ["common.yaml", "game.toml"]
name = "base"
speed = 4.0
`)
	writeFile(t, dir, "common.yaml", "vsync: false\nspeed: 1.0\nframes: 30\n")

	opts := &Options{IncludePaths: []string{dir}}
	var cfg testConfig
	require.NoError(t, SetFromDefaults(&cfg))
	require.NoError(t, OpenWithIncludes(opts, &cfg, "game.toml"))
	assert.Equal(t, "game", cfg.Name)
	assert.Equal(t, 4.0, cfg.Speed)
	assert.Equal(t, uint32(30), cfg.Frames)
	assert.False(t, cfg.VSync)
	assert.Equal(t, []string{"base.toml", "common.yaml"}, cfg.Includes)

	err := OpenWithIncludes(opts, &cfg, "missing.toml")
	assert.ErrorContains(t, err, "no files found")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{AppName: "game", IncludePaths: []string{dir}, DefaultFiles: []string{"game.toml", "game.yaml"}}

	var cfg testConfig
	require.NoError(t, Load(opts, &cfg, ""))
	assert.Equal(t, 2.5, cfg.Speed)

	writeFile(t, dir, "game.yaml", "speed: 7\n")
	cfg = testConfig{}
	require.NoError(t, Load(opts, &cfg, ""))
	assert.Equal(t, 7.0, cfg.Speed)
	assert.Equal(t, "Game", cfg.Window.Title)

	writeFile(t, dir, "other.toml", "speed = 9.0\n")
	cfg = testConfig{}
	require.NoError(t, Load(opts, &cfg, "other.toml"))
	assert.Equal(t, 9.0, cfg.Speed)

	assert.Error(t, Load(opts, &cfg, "nope.toml"))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("basicgame")
	assert.Equal(t, []string{".", filepath.Join("~", ".config", "basicgame")}, opts.IncludePaths)
	assert.Equal(t, []string{"basicgame.toml", "basicgame.yaml"}, opts.DefaultFiles)
}
