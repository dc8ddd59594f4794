package glaux

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// rowImage returns an opaque image whose rows are each a distinct flat colour.
func rowImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{R: uint8(40 * y), G: uint8(255 - 40*y), B: 7, A: 255}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeImageLossless(t *testing.T) {
	src := rowImage(3, 4)
	encoders := map[string]func(io.Writer, image.Image) error{
		"png":  png.Encode,
		"bmp":  bmp.Encode,
		"tiff": func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf, src))
			got, err := DecodeImage(bytes.NewReader(buf.Bytes()), false)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), got.Bounds())
			assert.Equal(t, src.Pix, got.Pix)
		})
	}
}

func TestDecodeImageFlip(t *testing.T) {
	src := rowImage(2, 5)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	got, err := DecodeImage(&buf, true)
	require.NoError(t, err)
	h := src.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, src.NRGBAAt(x, h-1-y), got.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestDecodeImageJPEG(t *testing.T) {
	src := rowImage(16, 8)
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, &jpeg.Options{Quality: 100}))
	got, err := DecodeImage(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), got.Bounds())
	// JPEG has no alpha channel.
	for i := 3; i < len(got.Pix); i += 4 {
		require.Equal(t, uint8(255), got.Pix[i])
	}
}

func TestDecodeImageOffsetBounds(t *testing.T) {
	// Sub images keep their parent's coordinates; decoded output starts at the origin.
	src := rowImage(6, 6).SubImage(image.Rect(2, 3, 5, 6))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	got, err := DecodeImage(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 3), got.Bounds())
}

func TestDecodeImageInvalid(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("definitely not an image"), true)
	assert.Error(t, err)
}

func TestReadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "face.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, rowImage(4, 2)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := ReadImage(path, true)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	_, err = ReadImage(filepath.Join(dir, "missing.jpg"), true)
	assert.Error(t, err)
}
