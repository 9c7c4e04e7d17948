package app

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
	"github.com/sqweek/dialog"

	"gvview/internal/config"
	"gvview/internal/decode"
	"gvview/internal/document"
	"gvview/internal/platform"
	"gvview/internal/platform/desktop"
	"gvview/internal/render"
	"gvview/internal/ui"
	"gvview/internal/viewport"
	"gvview/internal/workspace"
)

// Alert shows a modal message to the user.
type Alert func(title, message string)

func dialogAlert(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

type App struct {
	cfg     config.Config
	log     *logrus.Entry
	theme   ui.Theme
	tabs    *workspace.State
	input   platform.Source
	factory document.Factory
	fonts   *faceCache
	alert   Alert

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image
	layout      ui.Layout

	// capture holds the buttons pressed inside the content area; their
	// drags and releases go to the document even outside it.
	capture platform.Button
	status  string
	title   string
	closing bool

	imageClipboard bool

	screenW int
	screenH int
}

func New(cfg config.Config, log *logrus.Entry) *App {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	dec := decode.New()
	dec.VectorUpscale = cfg.Vector.Upscale
	return &App{
		cfg:   cfg,
		log:   log.WithField("component", "app"),
		theme: ui.DefaultTheme(),
		tabs:  workspace.NewState(),
		input: desktop.New(),
		factory: document.Factory{
			Decoder:    dec,
			VectorMode: document.VectorMode(cfg.Vector.Mode),
			Options:    document.Options{ZoomStep: cfg.Zoom.Step, DoubleClick: cfg.DoubleClick()},
		},
		fonts:  newFaceCache(),
		alert:  dialogAlert,
		status: "Ready",
	}
}

// Run opens files, one tab each, and blocks until the window is closed.
func (a *App) Run(files []string) error {
	a.initClipboard()

	mw, mh := monitorSize()
	win := windowConfig(a.cfg.Window, mw, mh)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.WidthPx, win.HeightPx)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(win.MinWidthPx, win.MinHeightPx, -1, -1)
	ebiten.SetWindowClosingHandled(true)
	a.screenW, a.screenH = win.WidthPx, win.HeightPx
	a.log.WithFields(logrus.Fields{"input": a.input.Name(), "width": win.WidthPx, "height": win.HeightPx}).Info("starting")

	a.OpenFiles(files)
	defer func() {
		if err := a.Close(); err != nil {
			a.log.WithError(err).Warn("close tabs")
		}
	}()
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

// OpenFiles opens each path in its own tab. The workspace always ends with
// at least one tab to drop files on.
func (a *App) OpenFiles(paths []string) {
	for _, p := range paths {
		a.openPath(p)
	}
	if a.tabs.Len() == 0 {
		a.newTab()
	}
}

func (a *App) Close() error {
	return a.tabs.CloseAll()
}

func (a *App) Update() error {
	a.relayout()

	for _, t := range a.tabs.Tabs() {
		if d := docOf(t); d != nil && d.refresh() > 0 {
			a.status = "Reloaded " + d.Title()
		}
	}
	if files := ebiten.DroppedFiles(); files != nil {
		a.drop(droppedPaths(files))
	}
	for _, ev := range a.input.PollEvents() {
		a.handleEvent(ev)
	}
	if a.closing {
		return ebiten.Termination
	}

	title := a.cfg.Window.Title
	if d := docOf(a.tabs.CurrentTab()); d != nil && d.Loaded() {
		title = d.Title() + " - " + title
	}
	if title != a.title {
		a.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (a *App) handleEvent(ev platform.Event) {
	switch ev.Type {
	case platform.EventResize:
		a.relayout()
	case platform.EventClose:
		a.dropCapture()
		a.closing = true
	case platform.EventKeyDown:
		a.runAction(shortcut(ev.Key, ev.Modifiers))
	case platform.EventMouseDown, platform.EventMouseUp, platform.EventMouseMove, platform.EventMouseWheel:
		a.handlePointer(ev)
	}
}

func (a *App) handlePointer(ev platform.Event) {
	x, y := int(ev.X), int(ev.Y)
	switch ev.Type {
	case platform.EventMouseDown:
		hit := a.layout.HitTest(x, y)
		switch hit.Kind {
		case ui.HitContent:
			a.capture |= ev.Button
			a.forward(ev)
		case ui.HitNewTab:
			a.newTab()
		case ui.HitTab:
			a.selectTab(hit.Index)
		case ui.HitTabClose:
			a.closeTab(hit.Index)
		}
	case platform.EventMouseUp:
		if a.capture&ev.Button != 0 {
			a.capture &^= ev.Button
			a.forward(ev)
		}
	case platform.EventMouseMove:
		if a.capture != 0 || a.layout.Content.Contains(x, y) {
			a.forward(ev)
		}
	case platform.EventMouseWheel:
		if a.layout.Content.Contains(x, y) {
			a.forward(ev)
		}
	}
}

// forward hands a pointer event to the current document in content
// coordinates.
func (a *App) forward(ev platform.Event) {
	d := docOf(a.tabs.CurrentTab())
	if d == nil {
		return
	}
	c := a.layout.Content
	d.host.HandleInput(ev.Translate(float64(c.X), float64(c.Y)))
}

func (a *App) runAction(act action) {
	var err error
	switch act {
	case actNone:
		return
	case actOpen:
		a.openDialog()
	case actNewTab:
		a.newTab()
	case actCloseTab:
		a.closeTab(a.tabs.Current)
	case actNextTab:
		a.dropCapture()
		a.tabs.Next()
	case actPrevTab:
		a.dropCapture()
		a.tabs.Prev()
	case actCopyPath:
		err = a.copyPath()
	case actCopyImage:
		err = a.copyImage()
	case actReset, actZoomIn, actZoomOut:
		d := docOf(a.tabs.CurrentTab())
		if d == nil {
			return
		}
		step := 1 + a.cfg.Zoom.Step
		switch act {
		case actReset:
			d.host.Reset()
		case actZoomIn:
			d.host.Zoom(step)
		default:
			d.host.Zoom(1 / step)
		}
	}
	if err != nil {
		a.log.WithError(err).Debug("action failed")
		a.status = err.Error()
	}
}

// dropCapture forgets the buttons held over the content area. Their
// releases will not reach the current document, so its gesture ends here.
func (a *App) dropCapture() {
	if a.capture == 0 {
		return
	}
	a.capture = 0
	if d := docOf(a.tabs.CurrentTab()); d != nil {
		d.host.Cancel()
	}
}

func (a *App) newTab() *workspace.Tab {
	a.dropCapture()
	t := a.tabs.NewTab(newTabDoc(a.factory, a.log))
	a.relayout()
	return t
}

func (a *App) selectTab(i int) {
	if i != a.tabs.Current {
		a.dropCapture()
	}
	a.tabs.Select(i)
}

func (a *App) closeTab(i int) {
	a.dropCapture()
	if err := a.tabs.Close(i); err != nil {
		a.log.WithError(err).Warn("close tab")
	}
	if a.tabs.Len() == 0 {
		a.newTab()
	}
	a.relayout()
}

// openPath loads path into the current tab while it is empty, otherwise
// into a new one.
func (a *App) openPath(path string) {
	t := a.tabs.CurrentTab()
	if d := docOf(t); d == nil || d.Loaded() {
		t = a.newTab()
	}
	if err := docOf(t).host.Open(path); err != nil {
		a.report(err)
		return
	}
	a.status = "Opened " + filepath.Base(path)
}

// drop loads the first dropped file into the current tab.
func (a *App) drop(paths []string) {
	if len(paths) == 0 {
		return
	}
	d := docOf(a.tabs.CurrentTab())
	if d == nil {
		d = docOf(a.newTab())
	}
	if err := d.host.Drop(paths); err != nil {
		a.report(err)
		return
	}
	a.status = "Opened " + d.Title()
}

func (a *App) openDialog() {
	path, err := dialog.File().Filter("Images", document.Extensions()...).Title("Open image").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		a.report(err)
		return
	}
	a.openPath(path)
}

func (a *App) report(err error) {
	a.log.WithError(err).Warn("cannot open")
	msg := alertText(err)
	a.status = strings.SplitN(msg, "\n", 2)[0]
	a.alert(a.cfg.Window.Title, msg)
}

func alertText(err error) string {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return "Doesn't support this format"
	case errors.Is(err, document.ErrDecode):
		return "Cannot display this file\n" + err.Error()
	default:
		return err.Error()
	}
}

func (a *App) relayout() {
	w, h := a.viewportSize()
	a.layout = ui.ComputeLayout(w, h, a.theme, 1, a.tabs.Len())
	for _, t := range a.tabs.Tabs() {
		if d := docOf(t); d != nil {
			d.resize(a.layout.Content.W, a.layout.Content.H)
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if !a.frameBuffer.Fits(w, h) {
		a.frameBuffer = render.NewFrameBuffer(w, h)
		if a.canvas != nil {
			a.canvas.Deallocate()
		}
		a.canvas = ebiten.NewImage(w, h)
	}
	a.layout = ui.ComputeLayout(w, h, a.theme, 1, a.tabs.Len())
	ui.DrawShell(a.frameBuffer, a.layout, a.theme, a.tabs.Current)
	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	a.drawDocument(screen)
	a.drawLabels(screen)
}

func (a *App) drawDocument(screen *ebiten.Image) {
	c := a.layout.Content
	if c.W <= 0 || c.H <= 0 {
		return
	}
	dst := screen.SubImage(image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)).(*ebiten.Image)
	d := docOf(a.tabs.CurrentTab())
	if d == nil || !d.Loaded() {
		face := a.fonts.face(13)
		hint := "Drop an image here or press Ctrl+O"
		text.Draw(dst, hint, face, c.X+(c.W-measure(face, hint))/2, c.Y+c.H/2, a.theme.TabActive)
		return
	}

	switch v := d.host.View().(type) {
	case *document.ImageView:
		img, gen := v.Image()
		if img == nil {
			return
		}
		t := v.Transform()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(t.Scale, t.Scale)
		op.GeoM.Translate(t.OffsetX+float64(c.X), t.OffsetY+float64(c.Y))
		if t.Scale < 1 {
			op.Filter = ebiten.FilterLinear
		}
		dst.DrawImage(d.texture(img, v, gen), op)
		if sel, ok := v.Selection(); ok {
			a.drawRubberBand(dst, sel)
		}
	case *document.PageView:
		frame, gen := v.Page().Frame()
		if frame == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.X), float64(c.Y))
		dst.DrawImage(d.texture(frame, v, gen), op)
	}
}

func (a *App) drawRubberBand(dst *ebiten.Image, sel viewport.Rect) {
	r := sel.Canon()
	x := r.Min.X + float64(a.layout.Content.X)
	y := r.Min.Y + float64(a.layout.Content.Y)
	w, h := r.Dx(), r.Dy()
	ebitenutil.DrawRect(dst, x, y, w, h, a.theme.RubberFill)
	ebitenutil.DrawLine(dst, x, y, x+w, y, a.theme.RubberBand)
	ebitenutil.DrawLine(dst, x, y+h, x+w, y+h, a.theme.RubberBand)
	ebitenutil.DrawLine(dst, x, y, x, y+h, a.theme.RubberBand)
	ebitenutil.DrawLine(dst, x+w, y, x+w, y+h, a.theme.RubberBand)
}

func (a *App) drawLabels(screen *ebiten.Image) {
	face := a.fonts.face(11)
	l := a.layout

	label := "New Tab"
	text.Draw(screen, label, face, l.NewTab.X+(l.NewTab.W-measure(face, label))/2, l.NewTab.Y+l.NewTab.H/2+4, a.theme.Text)

	titles := a.tabs.Titles()
	for i, t := range l.Tabs {
		title := ellipsize(face, titles[i], t.Close.X-t.X-12)
		text.Draw(screen, title, face, t.X+8, t.Y+t.H/2+4, a.theme.Text)
	}

	statusFace := a.fonts.face(10)
	baseline := l.Status.Y + l.Status.H/2 + 4
	left := "No image"
	if d := docOf(a.tabs.CurrentTab()); d != nil && d.Loaded() {
		left = fmt.Sprintf("[ Zoom %.0f%% ] [ %s ]", d.host.ZoomLevel()*100, d.host.Path())
	}
	right := "[ " + a.status + " ]"
	rightX := l.Status.W - measure(statusFace, right) - 12
	left = ellipsize(statusFace, left, rightX-24)
	text.Draw(screen, left, statusFace, 12, baseline, a.theme.Text)
	text.Draw(screen, right, statusFace, rightX, baseline, a.theme.Text)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.screenW = outsideWidth
	a.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

func (a *App) viewportSize() (int, int) {
	if a.screenW > 0 && a.screenH > 0 {
		return a.screenW, a.screenH
	}
	return ebiten.WindowSize()
}

func monitorSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	return 1280, 1024
}

// windowConfig resolves the initial window. Unset dimensions take 3/5 of
// the monitor width and 4/5 of its height.
func windowConfig(cfg config.Window, monitorW, monitorH int) platform.WindowConfig {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = monitorW * 3 / 5
	}
	if h <= 0 {
		h = monitorH * 4 / 5
	}
	return platform.WindowConfig{
		Title:       cfg.Title,
		WidthPx:     max(w, cfg.MinWidth),
		HeightPx:    max(h, cfg.MinHeight),
		MinWidthPx:  cfg.MinWidth,
		MinHeightPx: cfg.MinHeight,
	}
}
