package gioui

import (
	"fmt"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wavedraw/wavedraw/waveedit"
)

var titleCaser = cases.Title(language.English)

func toolTitle(t waveedit.Tool) string {
	return titleCaser.String(t.String()) + " tool"
}

// statusText describes the editing state in one line.
func statusText(m *waveedit.Model) string {
	var parts []string
	parts = append(parts, toolTitle(m.Tool()))
	switch m.Tool() {
	case waveedit.ToolCurve:
		if m.CurveStep() == waveedit.CurveSecond {
			parts = append(parts, "Click to bend the curve")
		}
	case waveedit.ToolSelection:
		mode := "extending"
		if m.StretchMode().Value() {
			mode = "stretching"
		}
		parts = append(parts, titleCaser.String(mode))
		if r := m.Selection(); !r.Empty() {
			s := fmt.Sprintf("Selected %d..%d", r.Start, r.End-1)
			if m.HasFloating() {
				s += " (floating)"
			}
			parts = append(parts, s)
		}
	}
	parts = append(parts, "Generator: "+titleCaser.String(m.GeneratorPolicy().Name()))
	h := m.History()
	parts = append(parts, fmt.Sprintf("History %d/%d", h.Len()-h.Cursor(), h.Len()))
	return strings.Join(parts, "  |  ")
}

func layoutStatus(gtx C, th *material.Theme, m *waveedit.Model) D {
	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
		l := material.Label(th, statusTextSize, statusText(m))
		l.Color = mediumEmphasisTextColor
		l.MaxLines = 1
		return l.Layout(gtx)
	})
}
