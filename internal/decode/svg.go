package decode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ParseSVG parses an svg document. Unknown elements are skipped.
func ParseSVG(data []byte) (*oksvg.SvgIcon, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}
	if w, h := IntrinsicSize(icon); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg: %w", ErrEmpty)
	}
	return icon, nil
}

// IntrinsicSize is the view box size in page units.
func IntrinsicSize(icon *oksvg.SvgIcon) (float64, float64) {
	return icon.ViewBox.W, icon.ViewBox.H
}

// RenderSVG draws icon into dst with its view box mapped onto the target
// rectangle (x, y, w, h), which may extend past dst.
func RenderSVG(icon *oksvg.SvgIcon, dst *image.RGBA, x, y, w, h float64) {
	b := dst.Bounds()
	icon.SetTarget(x, y, w, h)
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	raster := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	icon.Draw(raster, 1.0)
}

// Blank fills dst with the page background.
func Blank(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
}
