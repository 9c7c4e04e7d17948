package app

import (
	"io/fs"
	"path/filepath"

	"gvview/internal/platform"
)

type action int

const (
	actNone action = iota
	actOpen
	actNewTab
	actCloseTab
	actNextTab
	actPrevTab
	actCopyPath
	actCopyImage
	actReset
	actZoomIn
	actZoomOut
)

// shortcut maps a key name as reported by ebiten to an action. Every
// shortcut needs Ctrl (Cmd on macOS).
func shortcut(key string, mods platform.Modifier) action {
	if mods&platform.ModCtrl == 0 {
		return actNone
	}
	shift := mods&platform.ModShift != 0
	switch key {
	case "O":
		return actOpen
	case "T":
		return actNewTab
	case "W":
		return actCloseTab
	case "Tab":
		if shift {
			return actPrevTab
		}
		return actNextTab
	case "C":
		if shift {
			return actCopyImage
		}
		return actCopyPath
	case "Digit0", "Numpad0":
		return actReset
	case "Equal", "NumpadAdd":
		return actZoomIn
	case "Minus", "NumpadSubtract":
		return actZoomOut
	}
	return actNone
}

// droppedPaths resolves the entries of a drop to file system paths. Files
// that do not expose a real path and directories are skipped.
func droppedPaths(fsys fs.FS) []string {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		f, err := fsys.Open(e.Name())
		if err != nil {
			continue
		}
		if named, ok := f.(interface{ Name() string }); ok && filepath.IsAbs(named.Name()) {
			paths = append(paths, named.Name())
		}
		_ = f.Close()
	}
	return paths
}
