// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import "cogentcore.org/glengine/base/errors"

func run(cfg *Config) error {
	return errors.New("basicgame: windows are not supported on this platform")
}
