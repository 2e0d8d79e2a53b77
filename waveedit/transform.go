package waveedit

import (
	"slices"

	"github.com/wavedraw/wavedraw"
)

// The transforms act on the floating selection if something is selected
// (detaching it first if needed) and on the whole wave otherwise. Either way
// the result is checkpointed.

type (
	flipHorizontally Model
	flipVertically   struct {
		*Model
		aroundZero bool
	}
	shift struct {
		*Model
		delta int
	}
	randomize Model
)

// FlipHorizontally returns an Action that reverses the samples.
func (m *Model) FlipHorizontally() Action { return MakeAction((*flipHorizontally)(m)) }

func (m *flipHorizontally) Enabled() bool { return !(*Model)(m).busy() }
func (m *flipHorizontally) Do()           { (*Model)(m).transform(slices.Reverse[[]int]) }

// FlipVertically returns an Action that mirrors the samples vertically,
// either around zero or around the middle of their range.
func (m *Model) FlipVertically(aroundZero bool) Action {
	return MakeAction(flipVertically{Model: m, aroundZero: aroundZero})
}

func (m flipVertically) Enabled() bool { return !m.busy() }
func (m flipVertically) Do() {
	m.transform(func(samples []int) {
		if len(samples) == 0 {
			return
		}
		axis := 0
		if !m.aroundZero {
			axis = slices.Min(samples) + slices.Max(samples)
		}
		for i, v := range samples {
			samples[i] = axis - v
		}
	})
}

// ShiftUp returns an Action that raises every sample by one.
func (m *Model) ShiftUp() Action { return MakeAction(shift{Model: m, delta: 1}) }

// ShiftDown returns an Action that lowers every sample by one.
func (m *Model) ShiftDown() Action { return MakeAction(shift{Model: m, delta: -1}) }

func (m shift) Enabled() bool { return !m.busy() }
func (m shift) Do() {
	m.transform(func(samples []int) {
		for i := range samples {
			samples[i] += m.delta
		}
	})
}

// Randomize returns an Action that replaces the samples with the output of a
// generator, chosen by the generator policy.
func (m *Model) Randomize() Action { return MakeAction((*randomize)(m)) }

func (m *randomize) Enabled() bool { return !(*Model)(m).busy() && len(m.generators) > 0 }
func (m *randomize) Do() {
	g, ok := (*Model)(m).pickGenerator()
	if !ok {
		return
	}
	(*Model)(m).transform(func(samples []int) {
		g.Generate(samples, 0, len(samples), m.rand)
	})
}

func (m *Model) transform(f func(samples []int)) {
	if m.busy() {
		return
	}
	if s, ok := m.sel.(hasSelection); ok && m.tool == ToolSelection {
		fl := s.ensureFloating(m.wave)
		m.sel = s
		f(fl.data)
		clampSamples(fl.data)
		m.wave = fl.composite(fl.dest, fl.offset)
	} else {
		f(m.wave[:])
		clampSamples(m.wave[:])
	}
	m.publish()
	m.checkpoint()
	m.render()
}

func clampSamples(samples []int) {
	for i, v := range samples {
		samples[i] = wavedraw.ClampSample(v)
	}
}
