// Package decode turns image files into renderable bitmaps. All pixel work
// is delegated to the registered codecs and the svg rasterizer.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
)

// DefaultVectorUpscale enlarges rasterized svg relative to its intrinsic
// size so it lines up with raster images of the same drawing.
const DefaultVectorUpscale = 1.333

var (
	ErrEmpty    = errors.New("decode: empty image")
	ErrNotImage = errors.New("decode: not an image")
)

type Decoder struct {
	VectorUpscale float64
}

func New() *Decoder {
	return &Decoder{VectorUpscale: DefaultVectorUpscale}
}

// Decode reads path and returns its pixels. Files ending in .svg (any case)
// are rasterized; everything else goes through the raster codecs.
func (d *Decoder) Decode(path string) (image.Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return d.decodeVector(data)
	}
	return DecodeRaster(data)
}

func DecodeRaster(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", format, ErrEmpty)
	}
	return img, nil
}

func (d *Decoder) decodeVector(data []byte) (image.Image, error) {
	icon, err := ParseSVG(data)
	if err != nil {
		return nil, err
	}
	upscale := d.VectorUpscale
	if upscale <= 0 {
		upscale = DefaultVectorUpscale
	}
	w, h := IntrinsicSize(icon)
	dst := image.NewRGBA(image.Rect(0, 0, int(w*upscale+0.5), int(h*upscale+0.5)))
	if dst.Bounds().Empty() {
		return nil, ErrEmpty
	}
	Blank(dst)
	RenderSVG(icon, dst, 0, 0, w*upscale, h*upscale)
	return dst, nil
}
