package waveedit

import (
	"math"
	"testing"

	"github.com/wavedraw/wavedraw"
)

func TestPointMapping(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	tests := []struct {
		name string
		x, y float64
		want point
	}{
		{"origin", 0, 0, point{0, -24}},
		{"center of a cell", px(12), py(3), point{12, 3}},
		{"far corner", 640, 490, point{63, 24}},
		{"outside", -100, 1e12, point{0, 24}},
		{"nan", math.NaN(), math.NaN(), point{0, -24}},
		{"inf", math.Inf(1), math.Inf(-1), point{0, -24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.toPoint(finite(tt.x), finite(tt.y)); got != tt.want {
				t.Errorf("toPoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFreehandFillsSkippedIndices(t *testing.T) {
	m, doc := newTestModel(t, wavedraw.Wave{})
	m.PointerDown(px(0), py(0), false)
	m.PointerMove(px(4), py(8))
	want := []int{0, 2, 4, 6, 8}
	for i, v := range want {
		if m.Wave()[i] != v {
			t.Errorf("wave[%d] = %d, want %d", i, m.Wave()[i], v)
		}
	}
	if len(doc.committed) != 0 {
		t.Error("freehand drawing committed before release")
	}
	if len(doc.published) != 2 {
		t.Errorf("published %d times, want 2", len(doc.published))
	}
	m.PointerUp()
	if len(doc.committed) != 1 || m.History().Len() != 2 {
		t.Errorf("release should store exactly one checkpoint, got %d commits and %d entries", len(doc.committed), m.History().Len())
	}
}

func TestFreehandInterpolatesRightToLeft(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	m.PointerDown(px(10), py(-10), false)
	m.PointerMove(px(5), py(0))
	m.PointerUp()
	want := []int{0, -2, -4, -6, -8, -10}
	for i, v := range want {
		if got := m.Wave()[5+i]; got != v {
			t.Errorf("wave[%d] = %d, want %d", 5+i, got, v)
		}
	}
}

func TestLineRedrawsFromSnapshot(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	m.SetTool(ToolLine)
	m.PointerDown(px(0), py(0), false)
	m.PointerMove(px(10), py(10))
	if w := m.Wave(); w[10] != 10 || w[5] != 5 {
		t.Fatalf("line not drawn: %v", w[:11])
	}
	m.PointerMove(px(5), py(-5))
	for i := 6; i <= 10; i++ {
		if m.Wave()[i] != 0 {
			t.Errorf("wave[%d] = %d, want 0 after the line got shorter", i, m.Wave()[i])
		}
	}
	if m.Wave()[5] != -5 {
		t.Errorf("wave[5] = %d, want -5", m.Wave()[5])
	}
	m.PointerUp()
	if m.History().Len() != 2 {
		t.Errorf("history length = %d, want 2", m.History().Len())
	}
}

func TestLineOfZeroWidth(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	m.SetTool(ToolLine)
	drag(m, px(7), py(3), px(7), py(9))
	want := wavedraw.Wave{}
	want[7] = 9
	if m.Wave() != want {
		t.Errorf("zero width line wrote more than one sample: %v", m.Wave())
	}
}

func TestCurveIsCommittedOnSecondRelease(t *testing.T) {
	m, doc := newTestModel(t, wavedraw.Wave{})
	m.SetTool(ToolCurve)
	drag(m, px(0), py(-20), px(40), py(-20))
	if m.CurveStep() != CurveSecond {
		t.Fatalf("curve step = %v, want CurveSecond", m.CurveStep())
	}
	if len(doc.committed) != 0 {
		t.Fatal("curve committed after the first release")
	}
	m.PointerDown(px(20), py(20), false)
	m.PointerUp()
	if m.CurveStep() != CurveFirst {
		t.Errorf("curve step = %v, want CurveFirst", m.CurveStep())
	}
	if len(doc.committed) != 1 {
		t.Errorf("got %d commits, want 1", len(doc.committed))
	}
	w := m.Wave()
	if w[40] != -20 {
		t.Errorf("curve end point = %d, want -20", w[40])
	}
	if w[20] <= -20 {
		t.Errorf("curve does not bend towards the control point: wave[20] = %d", w[20])
	}
	checkClamped(t, w)
}

func TestCurveWithSameStartAndEndIndex(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	m.SetTool(ToolCurve)
	drag(m, px(5), py(0), px(5), py(7))
	m.PointerDown(px(30), py(-24), false)
	m.PointerUp()
	want := wavedraw.Wave{}
	want[5] = 7
	if m.Wave() != want {
		t.Errorf("degenerate curve wrote more than one sample: %v", m.Wave())
	}
}

func TestEscapeCancelsPendingCurve(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	m.SetTool(ToolCurve)
	drag(m, px(0), py(10), px(30), py(10))
	if m.Wave() == (wavedraw.Wave{}) {
		t.Fatal("pending curve not previewed")
	}
	m.KeyPress(KeyEscape)
	if m.Wave() != (wavedraw.Wave{}) {
		t.Error("cancelled curve left samples behind")
	}
	if m.CurveStep() != CurveFirst || m.History().Len() != 1 {
		t.Error("cancelled curve changed the history or stayed pending")
	}
}

func TestActionsWaitForPendingCurve(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	click(m, px(40), py(10))
	click(m, px(50), py(-10))
	m.History().Undo().Do()
	m.Copy().Do()
	m.SetTool(ToolCurve)
	drag(m, px(5), py(0), px(20), py(10))
	preview, historyLen := m.Wave(), m.History().Len()
	actions := map[string]Action{
		"FlipHorizontally": m.FlipHorizontally(),
		"FlipVertically":   m.FlipVertically(true),
		"ShiftUp":          m.ShiftUp(),
		"ShiftDown":        m.ShiftDown(),
		"Randomize":        m.Randomize(),
		"Undo":             m.History().Undo(),
		"Redo":             m.History().Redo(),
		"Copy":             m.Copy(),
		"Paste":            m.Paste(),
	}
	for name, a := range actions {
		t.Run(name, func(t *testing.T) {
			if a.Enabled() {
				t.Errorf("%s enabled while a curve is pending", name)
			}
			if a.Do() {
				t.Errorf("%s ran while a curve is pending", name)
			}
			if m.Wave() != preview || m.History().Len() != historyLen {
				t.Errorf("%s changed the wave or the history while a curve is pending", name)
			}
		})
	}
	click(m, px(12), py(5))
	w := m.Wave()
	if w[40] != 10 || w[50] != 0 {
		t.Errorf("curve commit brought back a stale wave: wave[40] = %d, wave[50] = %d", w[40], w[50])
	}
	if !m.History().Undo().Do() {
		t.Fatal("undo disabled after the curve was committed")
	}
	if got := m.Wave(); got[40] != 10 || got[5] != 0 || got[20] != 0 {
		t.Errorf("undo did not return to the wave before the curve: %v", got)
	}
}

func TestTrueControlOfSymmetricCurve(t *testing.T) {
	c := trueControl(vec{0, 0}, vec{10, 10}, vec{20, 0})
	if math.Abs(c.x-10) > 1e-9 || c.y != 10 {
		t.Errorf("trueControl = %v, want {10 10}", c)
	}
	c = trueControl(vec{0, 0}, vec{0, 0}, vec{20, 0})
	if math.IsNaN(c.x) || math.IsNaN(c.y) {
		t.Errorf("trueControl with coincident points = %v", c)
	}
}

func TestToolCannotChangeMidGesture(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	m.PointerDown(px(1), py(1), false)
	m.SetTool(ToolLine)
	if m.Tool() != ToolStandard {
		t.Error("tool changed during a gesture")
	}
	m.PointerUp()
	m.SetToolAction(ToolLine).Do()
	if m.Tool() != ToolLine {
		t.Error("tool did not change after the gesture")
	}
}

func TestBoundaryMapping(t *testing.T) {
	m, _ := newTestModel(t, wavedraw.Wave{})
	tests := []struct {
		x    float64
		want int
	}{
		{-50, 0}, {0, 0}, {4.9, 0}, {5, 1}, {100, 10}, {636, 64}, {640, 64}, {1e9, 64},
	}
	for _, tt := range tests {
		if got := m.toBoundary(tt.x); got != tt.want {
			t.Errorf("toBoundary(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
