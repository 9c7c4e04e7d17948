package app

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceCache struct {
	regular *opentype.Font
	faces   map[int]font.Face
}

func newFaceCache() *faceCache {
	c := &faceCache{faces: map[int]font.Face{}}
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		c.regular = f
	}
	return c
}

// face returns the UI face for a point size, falling back to the fixed
// bitmap face when the outline font is unusable.
func (c *faceCache) face(size int) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	if c.regular == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(c.regular, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	c.faces[size] = f
	return f
}

func measure(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	return max(0, (int(font.MeasureString(face, s))+32)>>6)
}

// ellipsize shortens s so it fits into width pixels.
func ellipsize(face font.Face, s string, width int) string {
	if measure(face, s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && measure(face, string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	if len(r) == 0 {
		return ""
	}
	return string(r) + "..."
}
