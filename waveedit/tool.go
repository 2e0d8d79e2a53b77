package waveedit

import "github.com/wavedraw/wavedraw"

// Tool is the active drawing mode.
type Tool int

const (
	ToolStandard Tool = iota
	ToolLine
	ToolCurve
	ToolSelection
	NumTools
)

var toolNames = [...]string{"standard", "line", "curve", "selection"}

func (t Tool) String() string {
	if t < 0 || t >= NumTools {
		return "unknown"
	}
	return toolNames[t]
}

// Tool returns the active tool.
func (m *Model) Tool() Tool { return m.tool }

// SetTool switches the active tool. Leaving the selection tool commits the
// floating selection; leaving a pending curve cancels it. The tool cannot be
// changed in the middle of a gesture.
func (m *Model) SetTool(t Tool) {
	if t < 0 || t >= NumTools || t == m.tool || m.pressed {
		return
	}
	switch m.tool {
	case ToolSelection:
		m.commitFloating()
		m.sel = noSelection{}
	case ToolCurve:
		m.cancelCurve()
	}
	m.tool = t
	m.hover = HighlightNone
	m.render()
}

// SetToolAction returns an Action that switches to tool t.
func (m *Model) SetToolAction(t Tool) Action {
	return MakeAction(&setTool{model: m, tool: t})
}

type setTool struct {
	model *Model
	tool  Tool
}

func (s *setTool) Enabled() bool { return !s.model.pressed }
func (s *setTool) Do()           { s.model.SetTool(s.tool) }

// Freehand drawing writes straight into the wave and only checkpoints when
// the stroke ends.

func (m *Model) freehandPress(p point) {
	m.last = p
	m.wave.Set(p.index, p.sample)
	m.publish()
}

func (m *Model) freehandMove(p point) {
	drawSegment(&m.wave, m.last, p)
	m.last = p
	m.publish()
}

// Lines are redrawn from the pre-edit snapshot on every move.

func (m *Model) linePress(p point) {
	m.scratch = m.wave
	m.line = p
	m.lineMove(p)
}

func (m *Model) lineMove(p point) {
	m.wave = m.scratch
	drawSegment(&m.wave, m.line, p)
	m.publish()
}

// drawSegment interpolates linearly between a and b, writing every index in
// between so that fast drags leave no gaps.
func drawSegment(w *wavedraw.Wave, a, b point) {
	if a.index == b.index {
		w.Set(b.index, b.sample)
		return
	}
	if a.index > b.index {
		a, b = b, a
	}
	span := float64(b.index - a.index)
	for i := a.index; i <= b.index; i++ {
		t := float64(i-a.index) / span
		w.Set(i, roundHalfUp(float64(a.sample)+float64(b.sample-a.sample)*t))
	}
}
