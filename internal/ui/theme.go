package ui

import "image/color"

type Theme struct {
	AppBackground color.RGBA
	TopBar        color.RGBA
	Button        color.RGBA
	TabStrip      color.RGBA
	Tab           color.RGBA
	TabActive     color.RGBA
	Canvas        color.RGBA
	Border        color.RGBA
	StatusBar     color.RGBA
	Accent        color.RGBA
	Text          color.RGBA
	RubberBand    color.RGBA
	RubberFill    color.RGBA

	TopBarHeightDp int
	TabHeightDp    int
	TabWidthDp     int
	MinTabWidthDp  int
	CloseSizeDp    int
	ButtonWidthDp  int
	StatusHeightDp int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground: color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		TopBar:        color.RGBA{0xF7, 0xF9, 0xFC, 0xFF},
		Button:        color.RGBA{0xE2, 0xE7, 0xEF, 0xFF},
		TabStrip:      color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		Tab:           color.RGBA{0xDC, 0xE3, 0xEC, 0xFF},
		TabActive:     color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Canvas:        color.RGBA{0x80, 0x80, 0x80, 0xFF},
		Border:        color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		StatusBar:     color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		Accent:        color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Text:          color.RGBA{0x2A, 0x38, 0x50, 0xFF},
		RubberBand:    color.RGBA{0x30, 0x78, 0xD8, 0xFF},
		RubberFill:    color.RGBA{0x30, 0x78, 0xD8, 0x40},

		TopBarHeightDp: 36,
		TabHeightDp:    30,
		TabWidthDp:     180,
		MinTabWidthDp:  72,
		CloseSizeDp:    10,
		ButtonWidthDp:  96,
		StatusHeightDp: 24,
	}
}
