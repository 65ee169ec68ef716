// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
)

// IncludeFS processes #include "file" statements in the given
// shader source, using the given file system and the directory dir
// to locate the included files. Included files may themselves
// include other files. Each #include line is kept as a comment.
func IncludeFS(fsys fs.FS, dir, code string) string {
	return includeFS(fsys, dir, code, nil)
}

func includeFS(fsys fs.FS, dir, code string, stack []string) string {
	fl := splitLines(code)
	for li := len(fl) - 1; li >= 0; li-- {
		ln := fl[li]
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[len(`#include "`):]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			slog.Error("gpu.IncludeFS: malformed #include: no final quote", "Line", li+1)
			continue
		}
		fname := fn[:qi]
		fpath := path.Join(dir, fname)
		b, err := fs.ReadFile(fsys, fpath)
		if err != nil {
			fpath = fname
			b, err = fs.ReadFile(fsys, fpath)
			if err != nil {
				slog.Error("gpu.IncludeFS: could not find include", "File", fname, "Dir", dir)
				continue
			}
		}
		if slices.Contains(stack, fpath) {
			slog.Error("gpu.IncludeFS: recursive include", "File", fpath)
			continue
		}
		inc := includeFS(fsys, path.Dir(fpath), string(b), append(stack, fpath))
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, splitLines(inc)...)
	}
	return strings.Join(fl, "\n")
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// LoadSources reads the vertex and fragment shader sources at the
// given paths in fsys, expanding #include statements relative to
// each file's directory.
func LoadSources(fsys fs.FS, vertex, fragment string) (vertexSrc, fragmentSrc string, err error) {
	vb, err := fs.ReadFile(fsys, vertex)
	if err != nil {
		return "", "", fmt.Errorf("gpu.LoadSources: vertex shader: %w", err)
	}
	fb, err := fs.ReadFile(fsys, fragment)
	if err != nil {
		return "", "", fmt.Errorf("gpu.LoadSources: fragment shader: %w", err)
	}
	vertexSrc = IncludeFS(fsys, path.Dir(vertex), string(vb))
	fragmentSrc = IncludeFS(fsys, path.Dir(fragment), string(fb))
	return
}
