// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/glengine/base/errors"
	"cogentcore.org/glengine/base/fsx"
	"cogentcore.org/glengine/base/iox/tomlx"
	"cogentcore.org/glengine/base/iox/yamlx"
)

// Includer is implemented by config structs that support including
// other config files, which are opened before the includer so that
// its own settings take precedence.
type Includer interface {
	// IncludesPtr returns a pointer to the list of files to include.
	IncludesPtr() *[]string
}

// Open reads the config struct from the given file, using TOML or
// YAML encoding based on its extension.
func Open(cfg any, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, file)
	}
	return fmt.Errorf("cli.Open: unsupported config file type %q", file)
}

// Save writes the config struct to the given file, using TOML or
// YAML encoding based on its extension.
func Save(cfg any, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return tomlx.Save(cfg, file)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, file)
	}
	return fmt.Errorf("cli.Save: unsupported config file type %q", file)
}

func openFiles(cfg any, files ...string) error {
	var errs []error
	for _, file := range files {
		if err := Open(cfg, file); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// If cfg is an [Includer], it opens any Includes specified in the file in
// the natural include order so that includers overwrite included settings.
// It is equivalent to [Open] if there are no Includes. It returns an error
// if the file cannot be found on [Options.IncludePaths].
func OpenWithIncludes(opts *Options, cfg any, file string) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("cli.OpenWithIncludes: no files found for %q", file)
	}
	if err := openFiles(cfg, files...); err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(opts, incfg, file)
	if len(incs) == 0 {
		return err
	}
	for _, inc := range slices.Backward(incs) {
		errors.Log(openFiles(cfg, fsx.FindFilesOnPaths(opts.IncludePaths, inc)...))
	}
	// reopen original so that it overrides everything it includes
	if err := openFiles(cfg, files...); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return err
}

// includeStack returns the transitive list of files included by cfg,
// in breadth-first order. Each file is listed once and the root file
// is never listed, so include cycles terminate. cfg is overwritten
// in the process.
func includeStack(opts *Options, cfg Includer, root string) ([]string, error) {
	var stack []string
	var errs []error
	seen := map[string]bool{root: true}
	pending := slices.Clone(*cfg.IncludesPtr())
	for len(pending) > 0 {
		inc := pending[0]
		pending = pending[1:]
		if seen[inc] {
			continue
		}
		seen[inc] = true
		stack = append(stack, inc)
		files := fsx.FindFilesOnPaths(opts.IncludePaths, inc)
		if len(files) == 0 {
			errs = append(errs, fmt.Errorf("cli.OpenWithIncludes: no files found for include %q", inc))
			continue
		}
		*cfg.IncludesPtr() = nil
		if err := openFiles(cfg, files...); err != nil {
			errs = append(errs, err)
			continue
		}
		pending = append(pending, *cfg.IncludesPtr()...)
	}
	return stack, errors.Join(errs...)
}
