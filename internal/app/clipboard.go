package app

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/atotto/clipboard"
	xclip "golang.design/x/clipboard"
)

var errNothingToCopy = errors.New("app: nothing to copy")

func (a *App) initClipboard() {
	if err := xclip.Init(); err != nil {
		a.log.WithError(err).Warn("image clipboard unavailable")
		return
	}
	a.imageClipboard = true
}

func (a *App) copyPath() error {
	d := docOf(a.tabs.CurrentTab())
	if d == nil || !d.Loaded() {
		return errNothingToCopy
	}
	if err := clipboard.WriteAll(d.host.Path()); err != nil {
		return err
	}
	a.status = "Copied path"
	return nil
}

// copyImage puts what the current tab shows on the clipboard as PNG.
func (a *App) copyImage() error {
	if !a.imageClipboard {
		return errors.New("app: image clipboard unavailable")
	}
	d := docOf(a.tabs.CurrentTab())
	if d == nil || d.host.View() == nil {
		return errNothingToCopy
	}
	img := d.host.View().Snapshot()
	if img == nil {
		return errNothingToCopy
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	xclip.Write(xclip.FmtImage, buf.Bytes())
	a.status = "Copied image"
	return nil
}
