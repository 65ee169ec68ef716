// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// AsRGBA returns the image as an RGBA: if it already is one
// with a tightly packed origin-based layout, then it returns that
// image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	return clone.AsRGBA(src)
}

// FlipY returns a copy of the image flipped vertically, so that
// the first row of pixels is the bottom row of the source, which is
// the row order OpenGL expects for texture uploads.
func FlipY(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	return transform.FlipV(AsRGBA(src))
}

// Fit returns src scaled down with the Catmull-Rom kernel, keeping its
// aspect ratio, so that neither side exceeds maxSize. An image that
// already fits, or a maxSize <= 0, returns src unchanged.
func Fit(src image.Image, maxSize int) image.Image {
	sz := src.Bounds().Size()
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return src
	}
	if sz.X >= sz.Y {
		sz = image.Pt(maxSize, max(1, sz.Y*maxSize/sz.X))
	} else {
		sz = image.Pt(max(1, sz.X*maxSize/sz.Y), maxSize)
	}
	dst := image.NewRGBA(image.Rectangle{Max: sz})
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
