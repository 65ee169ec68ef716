// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaderwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "basic.vert")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(vert, []byte("void main() {}\n"), 0666))

	w, err := New(vert)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []string{vert}, w.Files)

	_, changed := w.Changed()
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(other, []byte("unrelated"), 0666))
	time.Sleep(100 * time.Millisecond)
	_, changed = w.Changed()
	assert.False(t, changed, "files that are not watched are ignored")

	require.NoError(t, os.WriteFile(vert, []byte("void main() { }\n"), 0666))
	var name string
	require.Eventually(t, func() bool {
		var ok bool
		name, ok = w.Changed()
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, vert, name)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "basic.vert"))
	assert.Error(t, err)
}
