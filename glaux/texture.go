//go:build !tinygo && cgo

package glaux

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// TextureOptions configures a 2D texture. Zero values select REPEAT wrapping
// and LINEAR filtering.
type TextureOptions struct {
	FlipY     bool
	Wrap      int32
	MinFilter int32
	MagFilter int32
}

// LoadTexture2D creates a 2D texture from the image file at path and generates
// its mipmaps. If the image cannot be read the failure is logged and the
// texture is returned allocated but blank.
func LoadTexture2D(log *zap.Logger, path string, opts TextureOptions) uint32 {
	if opts.Wrap == 0 {
		opts.Wrap = gl.REPEAT
	}
	if opts.MinFilter == 0 {
		opts.MinFilter = gl.LINEAR
	}
	if opts.MagFilter == 0 {
		opts.MagFilter = gl.LINEAR
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	img, err := ReadImage(path, opts.FlipY)
	if err != nil {
		log.Error("failed to load texture", zap.String("path", path), zap.Error(err))
		return tex
	}
	bb := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(bb.Dx()), int32(bb.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	log.Debug("loaded texture", zap.String("path", path), zap.Int("width", bb.Dx()), zap.Int("height", bb.Dy()))
	return tex
}

// BindTextures binds 2D textures to consecutive texture units starting at unit 0.
func BindTextures(textures ...uint32) {
	for i, tex := range textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}
}

// DeleteTextures releases the given textures.
func DeleteTextures(textures ...uint32) {
	if len(textures) > 0 {
		gl.DeleteTextures(int32(len(textures)), &textures[0])
	}
}
