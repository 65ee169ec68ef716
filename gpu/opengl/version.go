// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opengl implements [gpu.Backend] on the OpenGL 4.1 core profile.
package opengl

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersion is the lowest OpenGL version the backend supports.
var MinVersion = semver.MustParse("4.1")

// ParseVersion parses the version number at the start of a GL_VERSION
// string, such as "4.1 Metal - 83.1" or "4.6.0 NVIDIA 535.183.01".
func ParseVersion(glVersion string) (*semver.Version, error) {
	fields := strings.Fields(glVersion)
	if len(fields) == 0 {
		return nil, fmt.Errorf("opengl: empty version string")
	}
	v, err := semver.NewVersion(fields[0])
	if err != nil {
		return nil, fmt.Errorf("opengl: invalid version %q: %w", glVersion, err)
	}
	return v, nil
}

// CheckVersion returns an error if the GL_VERSION string is
// below [MinVersion].
func CheckVersion(glVersion string) error {
	v, err := ParseVersion(glVersion)
	if err != nil {
		return err
	}
	if v.LessThan(MinVersion) {
		return fmt.Errorf("opengl: version %s is below the required %s", v, MinVersion)
	}
	return nil
}
