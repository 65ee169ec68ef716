// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command basicgame is a small block building game showing the use of
// the gpu package: fly with WASD, space and shift, look with the mouse,
// place blocks with E, dig with Q, clear with R, toggle lighting with F,
// and quit with escape.
package main

import (
	"os"
	"runtime"
	"time"

	"cogentcore.org/glengine/base/errors"
	"cogentcore.org/glengine/base/logx"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// argsEnv is the environment variable holding extra arguments,
// which are parsed like a shell command line and come before
// the actual arguments.
const argsEnv = "BASICGAME_ARGS"

func init() {
	// the OpenGL context and glfw must only be used from the main thread
	runtime.LockOSThread()
}

func main() {
	cmd := newRootCmd(run)
	args, err := envArgs(os.Getenv(argsEnv))
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	cmd.SetArgs(append(args, os.Args[1:]...))
	if errors.Log(cmd.Execute()) != nil {
		os.Exit(1)
	}
}

// envArgs splits the value of [argsEnv] into arguments.
func envArgs(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}
	args, err := shellwords.Parse(value)
	if err != nil {
		return nil, errors.Errorf("invalid %s: %w", argsEnv, err)
	}
	return args, nil
}

// flags are the command line flags, which override the config file.
type flags struct {
	config    string
	vv, v, q  bool
	benchmark time.Duration
	hotReload bool
	shaderDir string
	texture   string
	title     string
	noVSync   bool
}

// apply sets the config fields of the flags that were given.
func (f *flags) apply(cmd *cobra.Command, cfg *Config) {
	fl := cmd.Flags()
	if fl.Changed("benchmark") {
		cfg.Benchmark = Duration(f.benchmark)
	}
	if fl.Changed("hot-reload") {
		cfg.Shaders.HotReload = f.hotReload
	}
	if fl.Changed("shaders") {
		cfg.Shaders.Dir = f.shaderDir
	}
	if fl.Changed("texture") {
		cfg.Texture = f.texture
	}
	if fl.Changed("title") {
		cfg.Window.Title = f.title
	}
	if f.noVSync {
		cfg.Window.VSync = false
	}
}

// newRootCmd returns the root command, which loads the config
// and passes it to run.
func newRootCmd(run func(cfg *Config) error) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "basicgame",
		Short:         "A small block building game",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(f.vv, f.v, f.q)
			logx.SetDefaultLogger()
			cfg, err := LoadConfig(f.config)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "config file, TOML or YAML; basicgame.toml is used by default")
	fl.BoolVar(&f.vv, "vv", false, "show debug messages")
	fl.BoolVarP(&f.v, "verbose", "v", false, "show info messages, including frame statistics")
	fl.BoolVarP(&f.q, "quiet", "q", false, "only show errors")
	fl.DurationVar(&f.benchmark, "benchmark", 0, "fill the floor with blocks and exit after this long")
	fl.BoolVar(&f.hotReload, "hot-reload", false, "rebuild the shader when its files change")
	fl.StringVar(&f.shaderDir, "shaders", "", "directory to read the shaders from instead of the embedded ones")
	fl.StringVar(&f.texture, "texture", "", "image file for the blocks")
	fl.StringVar(&f.title, "title", "", "window title")
	fl.BoolVar(&f.noVSync, "no-vsync", false, "do not synchronize with the display refresh")
	return cmd
}
