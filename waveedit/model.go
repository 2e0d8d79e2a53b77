package waveedit

import (
	"math/rand/v2"

	"github.com/wavedraw/wavedraw"
)

type (
	// Model is the editing engine of a single waveform. It owns the wave, the
	// history and all transient gesture state. It is not safe for concurrent
	// use; all methods are expected to be called from the goroutine handling
	// the input events.
	Model struct {
		wave    wavedraw.Wave
		history history

		tool       Tool
		stretching bool
		generator  int
		generators []Generator
		rand       *rand.Rand

		width, height float64
		edgeMargin    float64

		pressed bool
		last    point          // previous point of a freehand stroke
		scratch wavedraw.Wave  // pre-edit snapshot of a line or curve gesture
		line    point          // start point of a line
		curve   curveGesture   // state of the two step curve gesture
		sel     selectionState // never nil
		hover   Highlight

		document  Document
		surface   Surface
		clipboard ClipboardStore
		alerts    []Alert

		rendered      wavedraw.Wave
		renderedValid bool
	}

	// Document is the host that records the edited wave. PublishWave is
	// called on every intermediate change, CommitWave when a checkpoint is
	// stored or the history is traversed.
	Document interface {
		PublishWave(wave wavedraw.Wave)
		CommitWave(wave wavedraw.Wave)
	}

	// Surface is the render target of the model.
	Surface interface {
		SetSampleHeight(index, value int)
		DrawOverlay(overlay Overlay)
	}

	nullDocument struct{}
)

const (
	// default surface matches a canvas of 10x10 pixels per sample and level
	defaultWidth      = wavedraw.WaveLength * 10
	defaultHeight     = wavedraw.NumLevels * 10
	defaultEdgeMargin = 6
)

func (nullDocument) PublishWave(wavedraw.Wave) {}
func (nullDocument) CommitWave(wavedraw.Wave)  {}

// NewModel returns a model editing initial. The document and clipboard may be
// nil, in which case changes are not forwarded and an in-memory clipboard is
// used.
func NewModel(initial wavedraw.Wave, document Document, clipboard ClipboardStore) *Model {
	if document == nil {
		document = nullDocument{}
	}
	if clipboard == nil {
		clipboard = NewMemoryStore()
	}
	initial = initial.Clamped()
	return &Model{
		wave:       initial,
		history:    newHistory(initial),
		generator:  RandomGenerator,
		generators: DefaultGenerators(),
		rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		width:      defaultWidth,
		height:     defaultHeight,
		edgeMargin: defaultEdgeMargin,
		sel:        noSelection{},
		document:   document,
		clipboard:  clipboard,
	}
}

// Wave returns the currently visible wave, including the composited floating
// selection if there is one.
func (m *Model) Wave() wavedraw.Wave { return m.wave }

// SetSurface sets the render target and pushes the whole state to it.
func (m *Model) SetSurface(s Surface) {
	m.surface = s
	m.renderedValid = false
	m.render()
}

// SetSurfaceSize sets the size of the surface, in the same units as the
// pointer coordinates. Non-positive sizes are ignored.
func (m *Model) SetSurfaceSize(width, height float64) {
	if width > 0 && height > 0 {
		m.width, m.height = width, height
	}
}

// SetEdgeMargin sets how close to a selection edge, in surface units, a press
// has to land to grab the edge.
func (m *Model) SetEdgeMargin(margin float64) {
	m.edgeMargin = max(margin, 0)
}

// SetSeed reseeds the random source used by the generators.
func (m *Model) SetSeed(seed uint64) {
	m.rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pressed reports whether a gesture is in progress.
func (m *Model) Pressed() bool { return m.pressed }

// busy reports whether the wave holds an uncommitted preview: either a
// gesture is in progress or a curve waits for its control point. Actions
// that read or change the wave are disabled meanwhile.
func (m *Model) busy() bool { return m.pressed || m.curve.step == CurveSecond }

func (m *Model) publish() {
	m.document.PublishWave(m.wave)
}

func (m *Model) checkpoint() {
	if m.history.store(m.wave) {
		m.document.CommitWave(m.wave)
	}
}

func (m *Model) render() {
	if m.surface == nil {
		return
	}
	for i, v := range m.wave {
		if !m.renderedValid || m.rendered[i] != v {
			m.surface.SetSampleHeight(i, v)
		}
	}
	m.rendered = m.wave
	m.renderedValid = true
	m.surface.DrawOverlay(m.overlay())
}
