package waveedit

import (
	"math"

	"github.com/wavedraw/wavedraw"
)

type (
	curveGesture struct {
		step       CurveStep
		start, end point
		control    vec
	}

	// CurveStep tells which press of the two step curve gesture comes next.
	CurveStep int

	vec struct{ x, y float64 }
)

const (
	// CurveFirst: the next press sets the start point and the drag sets the
	// end point.
	CurveFirst CurveStep = iota
	// CurveSecond: the curve is pending; the next press places the control
	// point and the release commits the curve.
	CurveSecond
)

const curveSteps = 200

// CurveStep returns the step of the curve gesture.
func (m *Model) CurveStep() CurveStep { return m.curve.step }

func (m *Model) curvePress(p point) {
	switch m.curve.step {
	case CurveFirst:
		m.scratch = m.wave
		m.curve.start = p
		m.curve.end = p
		m.curve.control = midpoint(p, p)
	case CurveSecond:
		m.curve.control = p.vec()
	}
	m.bakeCurve()
}

func (m *Model) curveMove(p point) {
	switch m.curve.step {
	case CurveFirst:
		m.curve.end = p
		m.curve.control = midpoint(m.curve.start, p)
	case CurveSecond:
		m.curve.control = p.vec()
	}
	m.bakeCurve()
}

func (m *Model) curveRelease() {
	switch m.curve.step {
	case CurveFirst:
		m.curve.step = CurveSecond
	case CurveSecond:
		m.checkpoint()
		m.curve.step = CurveFirst
	}
}

// cancelCurve abandons a pending curve, restoring the pre-edit snapshot.
func (m *Model) cancelCurve() {
	if m.curve.step != CurveSecond && !(m.pressed && m.tool == ToolCurve) {
		return
	}
	m.wave = m.scratch
	m.curve.step = CurveFirst
	m.pressed = false
	m.publish()
	m.render()
}

func (m *Model) bakeCurve() {
	m.wave = m.scratch
	drawCurve(&m.wave, m.curve.start, m.curve.control, m.curve.end)
	m.publish()
}

// drawCurve draws a quadratic Bézier from start to end, bent so that it
// passes close to the user's control point b.
func drawCurve(w *wavedraw.Wave, start point, b vec, end point) {
	if start.index == end.index {
		w.Set(end.index, end.sample)
		return
	}
	p0, p2 := start.vec(), end.vec()
	c := trueControl(p0, b, p2)
	for s := 0; s <= curveSteps; s++ {
		t := float64(s) / curveSteps
		p := p0.lerp(c, t).lerp(c.lerp(p2, t), t)
		w.Set(roundHalfUp(p.x), roundHalfUp(p.y))
	}
}

// trueControl moves b horizontally along the sum of the unit vectors from
// both end points towards b, by half the geometric mean of the distances.
// The height of b is kept.
func trueControl(p0, b, p2 vec) vec {
	d0, d2 := b.sub(p0), b.sub(p2)
	dir := d0.unit().add(d2.unit())
	k := 0.5 * math.Sqrt(d0.len()*d2.len())
	return vec{b.x + k*dir.x, b.y}
}

func midpoint(a, b point) vec {
	return vec{float64(a.index+b.index) / 2, float64(a.sample+b.sample) / 2}
}

func (p point) vec() vec { return vec{float64(p.index), float64(p.sample)} }

func (a vec) add(b vec) vec { return vec{a.x + b.x, a.y + b.y} }
func (a vec) sub(b vec) vec { return vec{a.x - b.x, a.y - b.y} }
func (a vec) len() float64  { return math.Hypot(a.x, a.y) }
func (a vec) lerp(b vec, t float64) vec {
	return vec{a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t}
}

func (a vec) unit() vec {
	l := a.len()
	if l == 0 {
		return vec{}
	}
	return vec{a.x / l, a.y / l}
}
