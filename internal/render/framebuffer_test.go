package render

import (
	"image/color"
	"testing"
)

func TestFillRectClipsToBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	fb.FillRect(-2, 1, 4, 10, red)

	if got := fb.At(0, 1); got != red {
		t.Fatalf("expected red at (0,1), got %+v", got)
	}
	if got := fb.At(1, 2); got != red {
		t.Fatalf("expected red at (1,2), got %+v", got)
	}
	if got := fb.At(2, 1); got != (color.RGBA{}) {
		t.Fatalf("expected untouched pixel at (2,1), got %+v", got)
	}
	if got := fb.At(0, 0); got != (color.RGBA{}) {
		t.Fatalf("expected untouched pixel at (0,0), got %+v", got)
	}
}

func TestBlendRectMixesColors(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Clear(color.RGBA{A: 0xFF})
	fb.BlendRect(0, 0, 1, 1, color.RGBA{R: 0xFF, A: 0x80})

	got := fb.At(0, 0)
	if got.R != 0x80 || got.G != 0 || got.A != 0xFF {
		t.Fatalf("unexpected blend: %+v", got)
	}
	if fb.At(1, 1).R != 0 {
		t.Fatal("blend leaked outside its rect")
	}
}

func TestNewFrameBufferMinimumSize(t *testing.T) {
	fb := NewFrameBuffer(0, -5)
	if fb.W != 1 || fb.H != 1 || len(fb.Pixels) != 4 {
		t.Fatalf("unexpected buffer: %dx%d (%d)", fb.W, fb.H, len(fb.Pixels))
	}
	if !fb.Fits(1, 1) || fb.Fits(2, 1) {
		t.Fatal("Fits disagrees with the buffer size")
	}
}
