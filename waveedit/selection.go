package waveedit

import (
	"math"

	"github.com/wavedraw/wavedraw"
)

type (
	// selectionState is one of the states of the selection tool below. The
	// states that manipulate a floating selection carry it, so a floating
	// selection cannot exist without a selection.
	selectionState interface {
		kind() SelectionState
		bounds() wavedraw.Range
	}

	noSelection struct{}

	makingSelection struct {
		anchor, cursor int
	}

	hasSelection struct {
		rng      wavedraw.Range
		floating *floatingSelection // nil until the selection is touched
	}

	// resizingSelection moves one boundary without touching the samples.
	resizingSelection struct {
		edge          edge
		orig          wavedraw.Range
		pressBoundary int
		tentative     wavedraw.Range
	}

	movingFloating struct {
		floating                *floatingSelection
		pressIndex, pressSample int
		lockAmplitude           bool
		dest                    wavedraw.Range
		offset                  int
	}

	stretchingFloating struct {
		floating      *floatingSelection
		edge          edge
		pressBoundary int
		dest          wavedraw.Range
	}

	edge int

	// SelectionState is the exported name of the selection tool state.
	SelectionState int

	// Highlight tells which part of the selection the pointer hovers.
	Highlight int

	// Overlay describes the selection and curve state to draw on top of the
	// samples.
	Overlay struct {
		Tool         Tool
		Selection    wavedraw.Range // empty if nothing is selected
		Floating     bool
		Highlight    Highlight
		CurvePending bool
		// CurveControl is the control point of a pending curve, in (index,
		// sample) units.
		CurveControl [2]float64
	}
)

const (
	startEdge edge = iota
	endEdge
)

const (
	NoSelection SelectionState = iota
	MakingSelection
	HasSelection
	MovingSelectionStart
	MovingSelectionEnd
	MovingFloatingSelection
	StretchingFromStart
	StretchingFromEnd
)

const (
	HighlightNone Highlight = iota
	HighlightBody
	HighlightStartEdge
	HighlightEndEdge
)

func (noSelection) kind() SelectionState         { return NoSelection }
func (noSelection) bounds() wavedraw.Range       { return wavedraw.Range{} }
func (s makingSelection) kind() SelectionState   { return MakingSelection }
func (s makingSelection) bounds() wavedraw.Range { return wavedraw.MakeRange(s.anchor, s.cursor) }
func (s hasSelection) kind() SelectionState      { return HasSelection }
func (s hasSelection) bounds() wavedraw.Range    { return s.rng }
func (s resizingSelection) kind() SelectionState {
	if s.edge == startEdge {
		return MovingSelectionStart
	}
	return MovingSelectionEnd
}
func (s resizingSelection) bounds() wavedraw.Range { return s.tentative }
func (s movingFloating) kind() SelectionState      { return MovingFloatingSelection }
func (s movingFloating) bounds() wavedraw.Range    { return s.dest.Clamp() }
func (s stretchingFloating) kind() SelectionState {
	if s.edge == startEdge {
		return StretchingFromStart
	}
	return StretchingFromEnd
}
func (s stretchingFloating) bounds() wavedraw.Range { return s.dest.Clamp() }

// SelectionState returns the state of the selection tool.
func (m *Model) SelectionState() SelectionState { return m.sel.kind() }

// Selection returns the selected (or tentatively selected) range.
func (m *Model) Selection() wavedraw.Range { return m.sel.bounds() }

// HasFloating reports whether a floating selection exists.
func (m *Model) HasFloating() bool { return m.floating() != nil }

func (m *Model) floating() *floatingSelection {
	switch s := m.sel.(type) {
	case hasSelection:
		return s.floating
	case movingFloating:
		return s.floating
	case stretchingFloating:
		return s.floating
	}
	return nil
}

// Selections are made and resized in sample boundaries, so a click without a
// drag selects nothing. Floating selections move in whole samples.
func (m *Model) selectionPress(p point, x float64, modifier bool) {
	b := m.toBoundary(x)
	switch s := m.sel.(type) {
	case noSelection:
		m.sel = makingSelection{anchor: b, cursor: b}
	case hasSelection:
		h := m.hitTest(s.rng, x)
		switch h {
		case HighlightBody:
			f := s.ensureFloating(m.wave)
			m.sel = movingFloating{
				floating:      f,
				pressIndex:    p.index,
				pressSample:   p.sample,
				lockAmplitude: modifier,
				dest:          f.dest,
				offset:        f.offset,
			}
		case HighlightStartEdge, HighlightEndEdge:
			e := startEdge
			if h == HighlightEndEdge {
				e = endEdge
			}
			if m.stretching {
				f := s.ensureFloating(m.wave)
				m.sel = stretchingFloating{floating: f, edge: e, pressBoundary: b, dest: f.dest}
				return
			}
			m.commitFloating()
			m.sel = resizingSelection{edge: e, orig: s.rng, pressBoundary: b, tentative: s.rng}
		default:
			m.commitFloating()
			m.sel = makingSelection{anchor: b, cursor: b}
		}
	default:
		m.pressed = false
		invariant("press in selection state %d", s.kind())
	}
}

func (m *Model) selectionMove(p point, x float64) {
	b := m.toBoundary(x)
	switch s := m.sel.(type) {
	case makingSelection:
		s.cursor = b
		m.sel = s
	case resizingSelection:
		t := s.orig
		if s.edge == startEdge {
			t.Start += b - s.pressBoundary
		} else {
			t.End += b - s.pressBoundary
		}
		s.tentative = t.Clamp()
		m.sel = s
	case movingFloating:
		s.dest = s.floating.dest.Shift(p.index - s.pressIndex)
		if !s.lockAmplitude {
			s.offset = s.floating.offset + p.sample - s.pressSample
		}
		m.sel = s
		m.wave = s.floating.composite(s.dest, s.offset)
		m.publish()
	case stretchingFloating:
		d := s.floating.dest
		if s.edge == startEdge {
			d.Start += b - s.pressBoundary
		} else {
			d.End += b - s.pressBoundary
		}
		s.dest = d
		m.sel = s
		m.wave = s.floating.composite(s.dest, s.floating.offset)
		m.publish()
	}
}

func (m *Model) selectionRelease() {
	switch s := m.sel.(type) {
	case makingSelection:
		m.sel = selectionOrNone(s.bounds())
	case resizingSelection:
		m.sel = selectionOrNone(s.tentative)
	case movingFloating:
		f := s.floating
		if s.dest == f.dest && s.offset == f.offset {
			m.sel = hasSelection{rng: f.dest.Clamp(), floating: f}
			return
		}
		if s.dest.Clamp().Empty() {
			m.ClearSelection()
			return
		}
		f.dest, f.offset = s.dest, s.offset
		m.sel = hasSelection{rng: f.dest.Clamp(), floating: f}
	case stretchingFloating:
		if s.dest.Empty() || s.dest.Clamp().Empty() {
			m.ClearSelection()
			return
		}
		s.floating.dest = s.dest
		m.sel = hasSelection{rng: s.dest.Clamp(), floating: s.floating}
	}
}

func selectionOrNone(r wavedraw.Range) selectionState {
	if r.Empty() {
		return noSelection{}
	}
	return hasSelection{rng: r}
}

func (s *hasSelection) ensureFloating(w wavedraw.Wave) *floatingSelection {
	if s.floating == nil {
		s.floating = newFloating(w, s.rng)
	}
	return s.floating
}

// hitTest tells which part of the selection r the surface x coordinate is
// on. Edges win over the body; the closer edge wins if both are in reach.
// The edge margin shrinks to a third of the selection width so that narrow
// selections keep a body to grab.
func (m *Model) hitTest(r wavedraw.Range, x float64) Highlight {
	if r.Empty() {
		return HighlightNone
	}
	sx, ex := m.edgeX(r.Start), m.edgeX(r.End)
	margin := min(m.edgeMargin, (ex-sx)/3)
	ds, de := math.Abs(x-sx), math.Abs(x-ex)
	switch {
	case ds <= margin && ds <= de:
		return HighlightStartEdge
	case de <= margin:
		return HighlightEndEdge
	case x > sx && x < ex:
		return HighlightBody
	}
	return HighlightNone
}

func (m *Model) updateHover(x float64) {
	h := HighlightNone
	if s, ok := m.sel.(hasSelection); ok && m.tool == ToolSelection {
		h = m.hitTest(s.rng, x)
	}
	if h != m.hover {
		m.hover = h
		m.render()
	}
}

// commitFloating stamps the floating selection at its destination, stores a
// checkpoint and drops the floating selection, keeping the selected range.
func (m *Model) commitFloating() {
	s, ok := m.sel.(hasSelection)
	if !ok || s.floating == nil {
		return
	}
	m.wave = s.floating.composite(s.floating.dest, s.floating.offset)
	m.publish()
	m.checkpoint()
	m.sel = hasSelection{rng: s.rng}
}

// ClearSelection cancels the selection. Edits made to a floating selection
// are discarded by restoring the pre-edit snapshot.
func (m *Model) ClearSelection() {
	if f := m.floating(); f != nil {
		m.wave = f.base
		m.publish()
	}
	m.sel = noSelection{}
	m.hover = HighlightNone
	m.render()
}

// SelectAll returns an Action that selects the whole wave in the selection
// tool.
func (m *Model) SelectAll() Action { return MakeAction((*selectAll)(m)) }

type selectAll Model

func (m *selectAll) Enabled() bool { return m.tool == ToolSelection && !m.pressed }
func (m *selectAll) Do() {
	(*Model)(m).commitFloating()
	m.sel = hasSelection{rng: wavedraw.FullRange}
	(*Model)(m).render()
}

func (m *Model) overlay() Overlay {
	o := Overlay{Tool: m.tool, Selection: m.sel.bounds(), Floating: m.floating() != nil}
	if !m.pressed {
		o.Highlight = m.hover
	}
	if m.tool == ToolCurve && m.curve.step == CurveSecond {
		o.CurvePending = true
		o.CurveControl = [2]float64{m.curve.control.x, m.curve.control.y}
	}
	return o
}
