package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var surfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}

var sampleColor = secondaryColor
var zeroLineColor = color.NRGBA{R: 255, G: 255, B: 255, A: 32}
var gridColor = color.NRGBA{R: 255, G: 255, B: 255, A: 8}
var selectionColor = color.NRGBA{R: 100, G: 140, B: 255, A: 48}
var selectionHoverColor = color.NRGBA{R: 100, G: 140, B: 255, A: 72}
var floatingColor = color.NRGBA{R: 252, G: 186, B: 3, A: 48}
var edgeColor = color.NRGBA{R: 252, G: 186, B: 3, A: 255}
var curveControlColor = primaryColor

var infoColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}

var statusTextSize = unit.Sp(14)

// NewTheme returns the material theme of the editor: dark, with the Go fonts.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Bg = backgroundColor
	th.Palette.Fg = highEmphasisTextColor
	th.Palette.ContrastBg = primaryColor
	th.Palette.ContrastFg = black
	return th
}
