package render

import (
	"image"
	"image/color"
)

// FrameBuffer is the CPU-side canvas the window chrome is painted into
// before it is uploaded as one texture.
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

// Fits reports whether the buffer already has the given size.
func (fb *FrameBuffer) Fits(w, h int) bool {
	return fb != nil && fb.W == w && fb.H == h
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	fb.FillRect(0, 0, fb.W, fb.H, c)
}

func (fb *FrameBuffer) clip(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, fb.W, fb.H))
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	r := fb.clip(x, y, w, h)
	for row := r.Min.Y; row < r.Max.Y; row++ {
		off := (row*fb.W + r.Min.X) * 4
		for col := r.Min.X; col < r.Max.X; col++ {
			fb.Pixels[off+0] = c.R
			fb.Pixels[off+1] = c.G
			fb.Pixels[off+2] = c.B
			fb.Pixels[off+3] = c.A
			off += 4
		}
	}
}

// BlendRect composites a translucent color over the existing pixels.
func (fb *FrameBuffer) BlendRect(x, y, w, h int, c color.RGBA) {
	if c.A == 0xFF {
		fb.FillRect(x, y, w, h, c)
		return
	}
	r := fb.clip(x, y, w, h)
	a := uint32(c.A)
	inv := 255 - a
	for row := r.Min.Y; row < r.Max.Y; row++ {
		off := (row*fb.W + r.Min.X) * 4
		for col := r.Min.X; col < r.Max.X; col++ {
			fb.Pixels[off+0] = uint8((uint32(c.R)*a + uint32(fb.Pixels[off+0])*inv) / 255)
			fb.Pixels[off+1] = uint8((uint32(c.G)*a + uint32(fb.Pixels[off+1])*inv) / 255)
			fb.Pixels[off+2] = uint8((uint32(c.B)*a + uint32(fb.Pixels[off+2])*inv) / 255)
			fb.Pixels[off+3] = 0xFF
			off += 4
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// Cross draws an X inside the square at (x, y) with side size, used for
// tab close boxes.
func (fb *FrameBuffer) Cross(x, y, size int, c color.RGBA) {
	for i := 0; i < size; i++ {
		fb.FillRect(x+i, y+i, 1, 1, c)
		fb.FillRect(x+size-1-i, y+i, 1, 1, c)
	}
}

func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[i], G: fb.Pixels[i+1], B: fb.Pixels[i+2], A: fb.Pixels[i+3]}
}
