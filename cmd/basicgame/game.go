// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"image"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/glengine/base/errors"
	"cogentcore.org/glengine/base/logx"
	"cogentcore.org/glengine/gpu"
	"cogentcore.org/glengine/gpu/opengl"
	"cogentcore.org/glengine/system"
)

// run opens the game window and runs the frame loop until the
// window is closed, escape is pressed, or the benchmark ends.
func run(cfg *Config) error {
	if err := system.Init(); err != nil {
		return err
	}
	defer system.Terminate()

	win, err := system.NewWindow(system.WindowOptions{
		Title:        cfg.Window.Title,
		Size:         cfg.Window.Size(),
		VSync:        cfg.Window.VSync,
		Resizable:    true,
		CaptureMouse: true,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	backend, err := opengl.New()
	if err != nil {
		return errors.Log(err)
	}
	ctx := gpu.NewContext(backend, win)

	var scene *Scene
	ctx.Render(func() {
		size := win.FramebufferSize()
		ctx.SetViewport(size.X, size.Y)
		ctx.SetClearColor(cfg.ClearColor())
		ctx.EnableDepthTest()
		scene, err = NewScene(ctx, cfg, aspect(size))
	})
	if err != nil {
		return err
	}
	defer ctx.Render(scene.Release)

	win.OnResize = func(size image.Point) {
		if size.X == 0 || size.Y == 0 {
			return
		}
		scene.Camera.Aspect = aspect(size)
		ctx.Render(func() { ctx.SetViewport(size.X, size.Y) })
	}

	ctl := system.NewController(win, win.Input)
	benchmark := time.Duration(cfg.Benchmark)
	lastStats := time.Duration(0)
	for ctl.NextFrame() {
		if !scene.Update(ctl.Input, ctl.Timer.DeltaSeconds()) {
			break
		}
		ctx.Render(func() {
			scene.CheckReload()
			scene.Draw()
			win.SwapBuffers()
		})

		elapsed := ctl.Timer.Elapsed()
		if elapsed-lastStats >= time.Second {
			lastStats = elapsed
			logx.Fprintf(os.Stdout, slog.LevelInfo, "FPS: %.1f  Blocks: %d\n", ctl.Timer.FPS(), scene.World.Len())
		}
		if benchmark > 0 && elapsed >= benchmark {
			break
		}
	}
	if benchmark > 0 {
		logx.Fprintf(os.Stdout, slog.LevelWarn, "benchmark: %d frames in %v, %.1f FPS, %d blocks\n",
			ctl.Timer.Frames(), ctl.Timer.Elapsed().Round(time.Millisecond), ctl.Timer.FPS(), scene.World.Len())
	}
	return nil
}

func aspect(size image.Point) float32 {
	return float32(size.X) / float32(max(size.Y, 1))
}
