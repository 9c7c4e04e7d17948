package document

import (
	"errors"
	"path/filepath"
	"strings"
)

type Kind int

const (
	KindRaster Kind = iota
	KindVector
)

func (k Kind) String() string {
	if k == KindVector {
		return "vector"
	}
	return "raster"
}

var (
	ErrUnsupportedFormat = errors.New("document: unsupported format")
	ErrDecode            = errors.New("document: cannot decode image")
)

var extensions = map[string]Kind{
	".png":  KindRaster,
	".jpg":  KindRaster,
	".jpeg": KindRaster,
	".gif":  KindRaster,
	".bmp":  KindRaster,
	".svg":  KindVector,
}

// Classify picks the view kind from the file extension. Matching ignores
// case for every format.
func Classify(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := extensions[ext]
	if !ok {
		return 0, ErrUnsupportedFormat
	}
	return kind, nil
}

// Extensions lists the supported extensions without the leading dot, for
// file dialogs.
func Extensions() []string {
	return []string{"png", "jpg", "jpeg", "gif", "bmp", "svg"}
}
