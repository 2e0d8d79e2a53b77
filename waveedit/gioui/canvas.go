package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/wavedraw/wavedraw"
	"github.com/wavedraw/wavedraw/waveedit"
)

type (
	// Canvas draws the wave and feeds the pointer events of its area to the
	// model. It is the render target of the model: it only keeps what the
	// model last pushed to it.
	Canvas struct {
		model      *waveedit.Model
		heights    wavedraw.Wave
		overlay    waveedit.Overlay
		size       image.Point
		EdgeMargin unit.Dp
	}
)

const lockModifier = key.ModShift

func NewCanvas(model *waveedit.Model) *Canvas {
	c := &Canvas{model: model, EdgeMargin: 6}
	model.SetSurface(c)
	return c
}

func (c *Canvas) SetSampleHeight(index, value int) {
	if index >= 0 && index < wavedraw.WaveLength {
		c.heights[index] = value
	}
}

func (c *Canvas) DrawOverlay(o waveedit.Overlay) { c.overlay = o }

func (c *Canvas) Layout(gtx C) D {
	c.size = gtx.Constraints.Max
	if c.size.X <= 1 || c.size.Y <= 1 {
		return D{}
	}
	c.model.SetSurfaceSize(float64(c.size.X), float64(c.size.Y))
	c.model.SetEdgeMargin(float64(gtx.Dp(c.EdgeMargin)))
	c.update(gtx)

	defer clip.Rect(image.Rectangle{Max: c.size}).Push(gtx.Ops).Pop()
	c.cursor().Add(gtx.Ops)
	event.Op(gtx.Ops, c)
	paint.Fill(gtx.Ops, surfaceColor)

	// grid: one line for every 8 samples and the zero line
	for i := 8; i < wavedraw.WaveLength; i += 8 {
		x := c.screenX(i)
		paint.FillShape(gtx.Ops, gridColor, clip.Rect{Min: image.Pt(x, 0), Max: image.Pt(x+1, c.size.Y)}.Op())
	}
	zero := c.screenY(0)
	paint.FillShape(gtx.Ops, zeroLineColor, clip.Rect{Min: image.Pt(0, zero), Max: image.Pt(c.size.X, zero+1)}.Op())

	c.layoutSelection(gtx)

	paint.ColorOp{Color: sampleColor}.Add(gtx.Ops)
	for i, v := range c.heights {
		x1, x2 := c.screenX(i), c.screenX(i+1)
		y := c.screenY(v)
		fillRect(gtx, clip.Rect{Min: image.Pt(x1, min(y, zero)), Max: image.Pt(max(x2-1, x1+1), max(y, zero)+1)})
		fillRect(gtx, clip.Rect{Min: image.Pt(x1, y-1), Max: image.Pt(max(x2-1, x1+1), y+2)})
	}

	if c.overlay.CurvePending {
		x := int(float64(c.size.X) * (c.overlay.CurveControl[0] + 0.5) / wavedraw.WaveLength)
		y := c.screenY(int(c.overlay.CurveControl[1]))
		r := gtx.Dp(4)
		paint.FillShape(gtx.Ops, curveControlColor, clip.Ellipse{Min: image.Pt(x-r, y-r), Max: image.Pt(x+r, y+r)}.Op(gtx.Ops))
	}
	return D{Size: c.size}
}

func (c *Canvas) layoutSelection(gtx C) {
	o := c.overlay
	if o.Selection.Empty() {
		return
	}
	x1, x2 := c.screenX(o.Selection.Start), c.screenX(o.Selection.End)
	var col color.NRGBA
	switch {
	case o.Floating:
		col = floatingColor
	case o.Highlight == waveedit.HighlightBody:
		col = selectionHoverColor
	default:
		col = selectionColor
	}
	paint.FillShape(gtx.Ops, col, clip.Rect{Min: image.Pt(x1, 0), Max: image.Pt(x2, c.size.Y)}.Op())
	w := max(gtx.Dp(1), 1)
	switch o.Highlight {
	case waveedit.HighlightStartEdge:
		w = gtx.Dp(3)
		paint.FillShape(gtx.Ops, edgeColor, clip.Rect{Min: image.Pt(x1-w/2, 0), Max: image.Pt(x1-w/2+w, c.size.Y)}.Op())
	case waveedit.HighlightEndEdge:
		w = gtx.Dp(3)
		paint.FillShape(gtx.Ops, edgeColor, clip.Rect{Min: image.Pt(x2-w/2, 0), Max: image.Pt(x2-w/2+w, c.size.Y)}.Op())
	default:
		paint.FillShape(gtx.Ops, mediumEmphasisTextColor, clip.Rect{Min: image.Pt(x1, 0), Max: image.Pt(x1+w, c.size.Y)}.Op())
		paint.FillShape(gtx.Ops, mediumEmphasisTextColor, clip.Rect{Min: image.Pt(x2-w, 0), Max: image.Pt(x2, c.size.Y)}.Op())
	}
}

func (c *Canvas) cursor() pointer.Cursor {
	switch {
	case c.overlay.Tool != waveedit.ToolSelection:
		return pointer.CursorCrosshair
	case c.overlay.Highlight == waveedit.HighlightStartEdge || c.overlay.Highlight == waveedit.HighlightEndEdge:
		return pointer.CursorColResize
	case c.overlay.Highlight == waveedit.HighlightBody:
		return pointer.CursorGrab
	}
	return pointer.CursorDefault
}

func (c *Canvas) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		// the model has amplitude growing upwards
		x, y := float64(e.Position.X), float64(c.size.Y)-float64(e.Position.Y)
		switch e.Kind {
		case pointer.Press:
			if !e.Buttons.Contain(pointer.ButtonPrimary) {
				continue
			}
			c.model.HandleEvent(waveedit.Event{Kind: waveedit.PointerDown, X: x, Y: y, Modifier: e.Modifiers.Contain(lockModifier)})
		case pointer.Drag, pointer.Move:
			c.model.HandleEvent(waveedit.Event{Kind: waveedit.PointerMove, X: x, Y: y})
		case pointer.Release, pointer.Cancel:
			c.model.HandleEvent(waveedit.Event{Kind: waveedit.PointerUp})
		}
	}
}

// screenX returns the left edge of sample i.
func (c *Canvas) screenX(i int) int {
	return c.size.X * i / wavedraw.WaveLength
}

// screenY returns the center of the level of sample value v.
func (c *Canvas) screenY(v int) int {
	level := v - wavedraw.MinSample
	return c.size.Y - 1 - (2*level+1)*c.size.Y/(2*wavedraw.NumLevels)
}

func fillRect(gtx C, rect clip.Rect) {
	stack := rect.Push(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	stack.Pop()
}
