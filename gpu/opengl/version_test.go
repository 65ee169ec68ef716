// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("4.6.0 NVIDIA 535.183.01")
	require.NoError(t, err)
	assert.Equal(t, "4.6.0", v.String())

	v, err = ParseVersion("4.1 Metal - 83.1")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v.Major())
	assert.Equal(t, uint64(1), v.Minor())

	_, err = ParseVersion("")
	assert.Error(t, err)
	_, err = ParseVersion("OpenGL ES")
	assert.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, CheckVersion("4.1 INTEL-20.6.4"))
	assert.NoError(t, CheckVersion("4.6 (Core Profile) Mesa 24.0.5"))
	assert.ErrorContains(t, CheckVersion("3.3.0 Mesa"), "below the required 4.1.0")
}
