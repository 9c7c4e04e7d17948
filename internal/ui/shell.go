package ui

import (
	"gvview/internal/render"
)

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

type TabRect struct {
	Rect
	Close Rect
}

type Layout struct {
	TopBar  Rect
	NewTab  Rect
	Strip   Rect
	Tabs    []TabRect
	Content Rect
	Status  Rect
}

type HitKind int

const (
	HitNone HitKind = iota
	HitNewTab
	HitTab
	HitTabClose
	HitContent
)

type Hit struct {
	Kind  HitKind
	Index int
}

func ComputeLayout(w, h int, theme Theme, scale float32, tabCount int) Layout {
	if scale <= 0 {
		scale = 1
	}
	dp := func(v int) int { return int(float32(v) * scale) }

	topH := dp(theme.TopBarHeightDp)
	tabH := dp(theme.TabHeightDp)
	statusH := dp(theme.StatusHeightDp)
	pad := dp(4)

	l := Layout{
		TopBar: Rect{X: 0, Y: 0, W: w, H: topH},
		NewTab: Rect{X: pad * 2, Y: pad, W: dp(theme.ButtonWidthDp), H: topH - pad*2},
		Strip:  Rect{X: 0, Y: topH, W: w, H: tabH},
		Status: Rect{X: 0, Y: h - statusH, W: w, H: statusH},
	}
	contentY := topH + tabH
	l.Content = Rect{X: 0, Y: contentY, W: w, H: max(0, h-contentY-statusH)}

	if tabCount <= 0 {
		return l
	}
	tabW := dp(theme.TabWidthDp)
	if tabW*tabCount > w {
		tabW = max(dp(theme.MinTabWidthDp), w/tabCount)
	}
	closeSize := dp(theme.CloseSizeDp)
	l.Tabs = make([]TabRect, tabCount)
	for i := range l.Tabs {
		r := Rect{X: i * tabW, Y: topH, W: tabW - 1, H: tabH}
		l.Tabs[i] = TabRect{
			Rect:  r,
			Close: Rect{X: r.X + r.W - closeSize - pad*2, Y: r.Y + (r.H-closeSize)/2, W: closeSize, H: closeSize},
		}
	}
	return l
}

func (l Layout) HitTest(x, y int) Hit {
	if l.NewTab.Contains(x, y) {
		return Hit{Kind: HitNewTab}
	}
	for i, t := range l.Tabs {
		// the close box is padded so it is easy to hit.
		c := Rect{X: t.Close.X - 3, Y: t.Close.Y - 3, W: t.Close.W + 6, H: t.Close.H + 6}
		if c.Contains(x, y) {
			return Hit{Kind: HitTabClose, Index: i}
		}
		if t.Contains(x, y) {
			return Hit{Kind: HitTab, Index: i}
		}
	}
	if l.Content.Contains(x, y) {
		return Hit{Kind: HitContent}
	}
	return Hit{Kind: HitNone, Index: -1}
}

// DrawShell paints the chrome around the content area: top bar with the
// "New Tab" button, the tab strip and the status bar.
func DrawShell(fb *render.FrameBuffer, l Layout, theme Theme, current int) {
	fb.Clear(theme.AppBackground)

	fb.FillRect(l.TopBar.X, l.TopBar.Y, l.TopBar.W, l.TopBar.H, theme.TopBar)
	fb.FillRect(l.NewTab.X, l.NewTab.Y, l.NewTab.W, l.NewTab.H, theme.Button)
	fb.StrokeRect(l.NewTab.X, l.NewTab.Y, l.NewTab.W, l.NewTab.H, 1, theme.Border)

	fb.FillRect(l.Strip.X, l.Strip.Y, l.Strip.W, l.Strip.H, theme.TabStrip)
	for i, t := range l.Tabs {
		bg := theme.Tab
		if i == current {
			bg = theme.TabActive
		}
		fb.FillRect(t.X, t.Y, t.W, t.H, bg)
		fb.StrokeRect(t.X, t.Y, t.W, t.H, 1, theme.Border)
		if i == current {
			fb.FillRect(t.X, t.Y, t.W, 2, theme.Accent)
		}
		fb.Cross(t.Close.X, t.Close.Y, t.Close.W, theme.Text)
	}

	fb.FillRect(l.Content.X, l.Content.Y, l.Content.W, l.Content.H, theme.Canvas)

	fb.FillRect(l.Status.X, l.Status.Y, l.Status.W, l.Status.H, theme.StatusBar)
	fb.StrokeRect(l.Status.X, l.Status.Y, l.Status.W, l.Status.H, 1, theme.Border)
}
