package waveedit

import (
	"math"

	"github.com/wavedraw/wavedraw"
)

type (
	// Event is a normalized input event. X and Y are surface coordinates;
	// Y grows upwards, so Y = 0 is the lowest sample value.
	Event struct {
		Kind EventKind
		X, Y float64
		// Modifier is the state of the modifier key at a PointerDown. When
		// moving a floating selection, it freezes the amplitude offset.
		Modifier bool
		Key      Key
	}

	EventKind int

	// Key is a key press the model reacts to. Key bindings are up to the GUI.
	Key int

	// point is a position in wave space.
	point struct {
		index, sample int
	}
)

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	KeyPress
)

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySelectAll
	KeyUndo
	KeyRedo
	KeyCopy
	KeyPaste
)

// HandleEvent dispatches an input event to the current tool.
func (m *Model) HandleEvent(e Event) {
	switch e.Kind {
	case PointerDown:
		m.PointerDown(e.X, e.Y, e.Modifier)
	case PointerMove:
		m.PointerMove(e.X, e.Y)
	case PointerUp:
		m.PointerUp()
	case KeyPress:
		m.KeyPress(e.Key)
	}
}

// PointerDown starts a gesture at surface coordinates (x, y).
func (m *Model) PointerDown(x, y float64, modifier bool) {
	x, y = finite(x), finite(y)
	p := m.toPoint(x, y)
	m.hover = HighlightNone
	switch m.tool {
	case ToolStandard:
		m.pressed = true
		m.freehandPress(p)
	case ToolLine:
		m.pressed = true
		m.linePress(p)
	case ToolCurve:
		m.pressed = true
		m.curvePress(p)
	case ToolSelection:
		if m.pressed {
			invariant("press while a selection gesture is in progress")
			return
		}
		m.pressed = true
		m.selectionPress(p, x, modifier)
	}
	m.render()
}

// PointerMove updates the current gesture, or the hover highlight if no
// gesture is in progress.
func (m *Model) PointerMove(x, y float64) {
	x, y = finite(x), finite(y)
	p := m.toPoint(x, y)
	if !m.pressed {
		m.updateHover(x)
		return
	}
	switch m.tool {
	case ToolStandard:
		m.freehandMove(p)
	case ToolLine:
		m.lineMove(p)
	case ToolCurve:
		m.curveMove(p)
	case ToolSelection:
		m.selectionMove(p, x)
	}
	m.render()
}

// PointerUp ends the current gesture. It is a no-op if nothing is pressed.
func (m *Model) PointerUp() {
	if !m.pressed {
		return
	}
	m.pressed = false
	switch m.tool {
	case ToolStandard, ToolLine:
		m.checkpoint()
	case ToolCurve:
		m.curveRelease()
	case ToolSelection:
		m.selectionRelease()
	}
	m.render()
}

// KeyPress handles the keys that affect the editing state.
func (m *Model) KeyPress(k Key) {
	switch k {
	case KeyEscape:
		if m.tool == ToolCurve {
			m.cancelCurve()
		}
		m.ClearSelection()
	case KeyEnter:
		if !m.pressed {
			m.commitFloating()
			m.render()
		}
	case KeySelectAll:
		m.SelectAll().Do()
	case KeyUndo:
		m.History().Undo().Do()
	case KeyRedo:
		m.History().Redo().Do()
	case KeyCopy:
		m.Copy().Do()
	case KeyPaste:
		m.Paste().Do()
	}
}

// toPoint maps surface coordinates to wave space, clamping to the wave.
func (m *Model) toPoint(x, y float64) point {
	fi := math.Floor(x * wavedraw.WaveLength / m.width)
	fa := math.Floor(y * wavedraw.NumLevels / m.height)
	index := int(max(min(fi, wavedraw.WaveLength-1), 0))
	amplitude := int(max(min(fa, wavedraw.NumLevels-1), 0))
	return point{index: index, sample: amplitude + wavedraw.MinSample}
}

// toBoundary maps a surface x coordinate to the nearest boundary between
// samples, in [0, WaveLength].
func (m *Model) toBoundary(x float64) int {
	b := math.Floor(x*wavedraw.WaveLength/m.width + 0.5)
	return int(max(min(b, wavedraw.WaveLength), 0))
}

// edgeX returns the surface x coordinate of the boundary before index i.
func (m *Model) edgeX(i int) float64 {
	return float64(i) * m.width / wavedraw.WaveLength
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// roundHalfUp rounds to the nearest integer, halves towards positive
// infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
