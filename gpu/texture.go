// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"io/fs"
	"log/slog"

	"cogentcore.org/glengine/base/errors"
	"cogentcore.org/glengine/base/iox/imagex"
)

// Texture is a 2D RGBA texture with mipmaps, sampled with linear
// filtering and repeat wrapping. A Texture must be handled through
// a pointer.
type Texture struct {
	noCopy noCopy

	// Name of the texture, for debugging. It is set to the
	// file name by [OpenTexture].
	Name string

	ctx     *Context
	texture *Unique[TextureID]
	size    image.Point
}

// MaxTextureSize is the largest width or height of an uploaded
// texture; larger images are scaled down to fit by [NewTexture].
// It must not exceed GL_MAX_TEXTURE_SIZE, which is at least 16384
// for OpenGL 4.1.
var MaxTextureSize = 8192

// NewTexture uploads img into a new texture. The image rows are
// flipped, so that texture coordinate (0, 0) is the bottom-left
// corner of the image, and images larger than [MaxTextureSize]
// are scaled down. Texture unit 0 is used for the upload.
func NewTexture(ctx *Context, img image.Image) (*Texture, error) {
	if img == nil {
		return nil, errors.Log(errors.New("gpu.NewTexture: nil image"))
	}
	tex := NewUnique(ctx.Backend, &TextureKind)
	if !tex.Valid() {
		return nil, errors.Log(&CreateError{Kind: TextureKind.Name})
	}
	rgba := imagex.FlipY(imagex.Fit(img, MaxTextureSize))
	size := rgba.Rect.Size()
	b := ctx.Backend
	defer func() {
		if r := recover(); r != nil {
			tex.Release()
			panic(r)
		}
	}()
	lk := ctx.LockTexture(0, tex.Handle())
	defer lk.Unlock()
	b.TexImage2D(size.X, size.Y, rgba.Pix)
	b.TexParameteri(TextureWrapS, Repeat)
	b.TexParameteri(TextureWrapT, Repeat)
	b.TexParameteri(TextureMinFilter, LinearMipmapLinear)
	b.TexParameteri(TextureMagFilter, Linear)
	b.GenerateMipmap()
	slog.Debug("gpu.NewTexture", "Texture", tex.Handle(), "Size", size)
	return &Texture{ctx: ctx, texture: tex, size: size}, nil
}

// OpenTexture loads the image file at the given path in fsys
// into a new texture.
func OpenTexture(ctx *Context, fsys fs.FS, filename string) (*Texture, error) {
	img, _, err := imagex.OpenFS(fsys, filename)
	if err != nil {
		return nil, err
	}
	tx, err := NewTexture(ctx, img)
	if err != nil {
		return nil, err
	}
	tx.Name = filename
	return tx, nil
}

// Handle returns the texture handle, or the sentinel once released.
func (tx *Texture) Handle() TextureID {
	return tx.texture.Handle()
}

// Size returns the size of the texture in pixels.
func (tx *Texture) Size() image.Point {
	return tx.size
}

// MakeActiveLock binds the texture to the given unit until the
// lock is released. Set the sampler uniform to the same unit.
func (tx *Texture) MakeActiveLock(unit int) *Lock[TextureID] {
	return tx.ctx.LockTexture(unit, tx.texture.Handle())
}

// Release deletes the texture.
func (tx *Texture) Release() {
	tx.texture.Release()
}
