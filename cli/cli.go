// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli loads app configuration from `default:` struct tags
// and TOML or YAML config files, with support for included files.
// Command-line flags are handled by the app itself, typically with cobra.
package cli

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/glengine/base/fsx"
)

// Options are the options for loading a config.
type Options struct {

	// AppName is the name of the app, used in the default paths.
	AppName string

	// IncludePaths are the paths searched for config files and
	// their includes, in order. A leading ~ is expanded to the
	// home directory.
	IncludePaths []string

	// DefaultFiles are the config files opened when no file is
	// given explicitly. The first one found on IncludePaths is used.
	DefaultFiles []string
}

// DefaultOptions returns the default options for the given app, which
// search the current directory and then ~/.config/<appName> for
// <appName>.toml or <appName>.yaml.
func DefaultOptions(appName string) *Options {
	return &Options{
		AppName:      appName,
		IncludePaths: []string{".", filepath.Join("~", ".config", appName)},
		DefaultFiles: []string{appName + ".toml", appName + ".yaml"},
	}
}

// Load sets cfg from its `default:` struct tags and then opens the
// given config file with its includes. If file is empty, the first of
// [Options.DefaultFiles] found on [Options.IncludePaths] is opened,
// and it is not an error for none of them to exist.
func Load(opts *Options, cfg any, file string) error {
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	if file != "" {
		return OpenWithIncludes(opts, cfg, file)
	}
	for _, def := range opts.DefaultFiles {
		if len(fsx.FindFilesOnPaths(opts.IncludePaths, def)) == 0 {
			continue
		}
		slog.Info("cli.Load: opening default config", "File", def)
		return OpenWithIncludes(opts, cfg, def)
	}
	return nil
}
