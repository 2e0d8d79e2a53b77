package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/wavedraw/wavedraw/waveedit"
)

type (
	// AlertsState holds the alerts currently shown, each with the time it
	// disappears.
	AlertsState struct {
		alerts []timedAlert
	}

	timedAlert struct {
		waveedit.Alert
		until time.Time
	}
)

const alertDuration = 5 * time.Second

func (a *AlertsState) Add(alert waveedit.Alert, now time.Time) {
	for i := range a.alerts {
		if a.alerts[i].Alert == alert {
			a.alerts[i].until = now.Add(alertDuration)
			return
		}
	}
	a.alerts = append(a.alerts, timedAlert{Alert: alert, until: now.Add(alertDuration)})
}

func (a *AlertsState) Layout(gtx C, th *material.Theme) D {
	now := gtx.Now
	kept := a.alerts[:0]
	for _, t := range a.alerts {
		if t.until.After(now) {
			kept = append(kept, t)
		}
	}
	a.alerts = kept
	if len(a.alerts) == 0 {
		return D{}
	}
	next := a.alerts[0].until
	for _, t := range a.alerts {
		if t.until.Before(next) {
			next = t.until
		}
	}
	gtx.Execute(op.InvalidateCmd{At: next})
	var children []layout.FlexChild
	for _, t := range a.alerts {
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
				return layoutAlert(gtx, th, t.Alert)
			})
		}))
	}
	return layout.S.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func layoutAlert(gtx C, th *material.Theme, alert waveedit.Alert) D {
	bg, fg := infoColor, highEmphasisTextColor
	switch alert.Priority {
	case waveedit.Warning:
		bg, fg = warningColor, black
	case waveedit.Error:
		bg, fg = errorColor, black
	}
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		l := material.Body2(th, alert.Message)
		l.Color = fg
		return l.Layout(gtx)
	})
	call := macro.Stop()
	fillRounded(gtx, bg, dims.Size, gtx.Dp(4))
	call.Add(gtx.Ops)
	return dims
}

func fillRounded(gtx C, col color.NRGBA, size image.Point, radius int) {
	paint.FillShape(gtx.Ops, col, clip.UniformRRect(image.Rectangle{Max: size}, radius).Op(gtx.Ops))
}
