package waveedit

import (
	"testing"

	"github.com/wavedraw/wavedraw"
)

type recordingDocument struct {
	published, committed []wavedraw.Wave
}

func (d *recordingDocument) PublishWave(w wavedraw.Wave) { d.published = append(d.published, w) }
func (d *recordingDocument) CommitWave(w wavedraw.Wave)  { d.committed = append(d.committed, w) }

type recordingSurface struct {
	heights  wavedraw.Wave
	updates  int
	overlays []Overlay
}

func (s *recordingSurface) SetSampleHeight(index, value int) {
	s.heights[index] = value
	s.updates++
}

func (s *recordingSurface) DrawOverlay(o Overlay) { s.overlays = append(s.overlays, o) }

// on the default surface every sample is 10 pixels wide and every level 10
// pixels high
func px(index int) float64  { return float64(index*10 + 5) }
func py(sample int) float64 { return float64((sample-wavedraw.MinSample)*10 + 5) }

// boundaryX returns the x coordinate of the boundary before index i.
func boundaryX(i int) float64 { return float64(i * 10) }

func ramp() wavedraw.Wave {
	var w wavedraw.Wave
	for i := range w {
		w[i] = i%49 - 24
	}
	return w
}

func newTestModel(t *testing.T, initial wavedraw.Wave) (*Model, *recordingDocument) {
	t.Helper()
	doc := &recordingDocument{}
	m := NewModel(initial, doc, nil)
	m.SetSeed(1)
	return m, doc
}

func drag(m *Model, x0, y0, x1, y1 float64) {
	m.PointerDown(x0, y0, false)
	m.PointerMove(x1, y1)
	m.PointerUp()
}

func click(m *Model, x, y float64) {
	m.PointerDown(x, y, false)
	m.PointerUp()
}

func selectRange(t *testing.T, m *Model, r wavedraw.Range) {
	t.Helper()
	m.SetTool(ToolSelection)
	drag(m, boundaryX(r.Start), py(0), boundaryX(r.End), py(0))
	if got := m.Selection(); got != r {
		t.Fatalf("selection = %v, want %v", got, r)
	}
}

func checkClamped(t *testing.T, w wavedraw.Wave) {
	t.Helper()
	for i, v := range w {
		if v < wavedraw.MinSample || v > wavedraw.MaxSample {
			t.Fatalf("sample %d out of range: %d", i, v)
		}
	}
}
