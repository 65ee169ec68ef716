// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex decodes image files and prepares them for upload
// as GPU textures.
package imagex

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// formats maps the file extensions that can be decoded to the
// format names registered with package image.
var formats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".tif":  "tiff",
	".tiff": "tiff",
	".bmp":  "bmp",
	".webp": "webp",
}

// Format returns the image format of the given file name,
// based on its extension, or "" if it is not a supported format.
func Format(filename string) string {
	return formats[strings.ToLower(path.Ext(filename))]
}

// OpenFS decodes the image file at the given path in fsys, returning
// the image and its format name. The extension must name a supported
// format (png, jpeg, gif, tiff, bmp or webp) matching the contents.
func OpenFS(fsys fs.FS, filename string) (image.Image, string, error) {
	want := Format(filename)
	if want == "" {
		return nil, "", fmt.Errorf("imagex.OpenFS %q: unsupported image type %q", filename, path.Ext(filename))
	}
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, got, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("imagex.OpenFS %q: %w", filename, err)
	}
	if got != want {
		return nil, got, fmt.Errorf("imagex.OpenFS %q: contains %s data, not %s", filename, got, want)
	}
	return img, got, nil
}
