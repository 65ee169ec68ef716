// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages and printing,
// when the output is a terminal that supports it. It is on by default.
var UseColor = true

// The colors used for each level.
var (
	DebugColor = color.RGBA{128, 128, 128, 255}
	InfoColor  = color.RGBA{64, 160, 255, 255}
	WarnColor  = color.RGBA{230, 180, 0, 255}
	ErrorColor = color.RGBA{230, 60, 60, 255}
)

// LevelColor returns the color associated with the given level.
func LevelColor(level slog.Level) color.Color {
	switch {
	case level >= slog.LevelError:
		return ErrorColor
	case level >= slog.LevelWarn:
		return WarnColor
	case level >= slog.LevelInfo:
		return InfoColor
	}
	return DebugColor
}

// ApplyColor returns str in the given color for output to w. It returns
// str unchanged if [UseColor] is off or w is not a color terminal.
func ApplyColor(w io.Writer, clr color.Color, str string) string {
	if !UseColor {
		return str
	}
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return str
	}
	return out.String(str).Foreground(out.FromColor(clr)).String()
}

// colorLevels returns a [slog.HandlerOptions.ReplaceAttr] function
// that colors the level of each record for output to w, or nil if
// w does not support color.
func colorLevels(w io.Writer) func(groups []string, a slog.Attr) slog.Attr {
	if !UseColor || termenv.NewOutput(w).Profile == termenv.Ascii {
		return nil
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key != slog.LevelKey || len(groups) > 0 {
			return a
		}
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		a.Value = slog.StringValue(ApplyColor(w, LevelColor(level), level.String()))
		return a
	}
}

// Fprintln prints the given values to w, followed by a newline,
// if level is at or above [UserLevel], in the color of the level.
func Fprintln(w io.Writer, level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprintln(w, ApplyColor(w, LevelColor(level), fmt.Sprint(a...)))
}

// Fprintf is like [Fprintln] with a format string, without a newline.
func Fprintf(w io.Writer, level slog.Level, format string, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprint(w, ApplyColor(w, LevelColor(level), fmt.Sprintf(format, a...)))
}
