package decode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" width="100" height="50">
<rect x="0" y="0" width="100" height="50" fill="#ff0000"/>
</svg>`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	path := writeFile(t, "a.png", encodePNG(t, 7, 3))
	img, err := New().Decode(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 7, Y: 3}) {
		t.Fatalf("unexpected size: %v", got)
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 5))); err != nil {
		t.Fatal(err)
	}
	img, err := New().Decode(writeFile(t, "b.BMP", buf.Bytes()))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := img.Bounds().Dy(); got != 5 {
		t.Fatalf("unexpected height: %d", got)
	}
}

func TestDecodeZeroByteFile(t *testing.T) {
	_, err := New().Decode(writeFile(t, "empty.png", nil))
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestDecodeRejectsNonImage(t *testing.T) {
	_, err := New().Decode(writeFile(t, "notes.png", []byte("just some text, not pixels")))
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := New().Decode(filepath.Join(t.TempDir(), "gone.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDecodeSVGUpscales(t *testing.T) {
	img, err := New().Decode(writeFile(t, "g.svg", []byte(sampleSVG)))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 133, Y: 67}) {
		t.Fatalf("unexpected size: %v", got)
	}
	r, g, _, _ := img.At(60, 30).RGBA()
	if r>>8 != 0xFF || g>>8 != 0 {
		t.Fatalf("expected red fill in the middle, got r=%d g=%d", r>>8, g>>8)
	}
}

func TestDecodeSVGUpperCaseExtension(t *testing.T) {
	d := &Decoder{VectorUpscale: 2}
	img, err := d.Decode(writeFile(t, "G.SVG", []byte(sampleSVG)))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := img.Bounds().Dx(); got != 200 {
		t.Fatalf("unexpected width: %d", got)
	}
}

func TestParseSVGEmpty(t *testing.T) {
	if _, err := ParseSVG([]byte("  \n")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
