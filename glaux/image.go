package glaux

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes a JPEG, PNG, BMP, TIFF or WebP image into
// non-premultiplied RGBA with its origin at (0,0). If flipY is set the rows
// are reversed so the first row in memory is the bottom of the image, which is
// where GL expects texture coordinate t=0.
func DecodeImage(r io.Reader, flipY bool) (*image.NRGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	bb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bb.Min, draw.Src)
	if flipY {
		flipVertical(dst)
	}
	return dst, nil
}

// ReadImage opens the file at path and decodes it with [DecodeImage].
func ReadImage(path string, flipY bool) (*image.NRGBA, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening image")
	}
	defer fp.Close()
	img, err := DecodeImage(fp, flipY)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return img, nil
}

func flipVertical(img *image.NRGBA) {
	h := img.Bounds().Dy()
	rowLen := 4 * img.Bounds().Dx()
	tmp := make([]byte, rowLen)
	for top, bot := 0, h-1; top < bot; top, bot = top+1, bot-1 {
		a := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		b := img.Pix[bot*img.Stride : bot*img.Stride+rowLen]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
