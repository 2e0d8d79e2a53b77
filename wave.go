package wavedraw

import "slices"

const (
	// WaveLength is the number of samples in one period of a drawn waveform.
	WaveLength = 64
	// MinSample and MaxSample bound every stored sample value.
	MinSample = -24
	MaxSample = 24
	// NumLevels is the number of distinct sample values.
	NumLevels = MaxSample - MinSample + 1
)

// Wave is one period of a hand drawn waveform. Every sample is kept within
// [MinSample, MaxSample]; all the mutating methods clamp the written values.
type Wave [WaveLength]int

// ClampSample limits a sample value to [MinSample, MaxSample].
func ClampSample(v int) int {
	return max(min(v, MaxSample), MinSample)
}

// ClampIndex limits an index to [0, WaveLength-1].
func ClampIndex(i int) int {
	return max(min(i, WaveLength-1), 0)
}

// Get returns the sample at index, or 0 if the index is out of range.
func (w *Wave) Get(index int) int {
	if index < 0 || index >= WaveLength {
		return 0
	}
	return w[index]
}

// Set writes the clamped value to index. Out of range indices are ignored and
// reported by returning false.
func (w *Wave) Set(index, value int) bool {
	if index < 0 || index >= WaveLength {
		return false
	}
	w[index] = ClampSample(value)
	return true
}

// Samples returns a copy of the samples in r, limited to the wave.
func (w *Wave) Samples(r Range) []int {
	r = r.Intersect(FullRange)
	return slices.Clone(w[r.Start:r.End])
}

// Clamped returns a copy of w where every sample is within bounds. Waves read
// from files or built by hand may violate the bounds.
func (w Wave) Clamped() Wave {
	for i := range w {
		w[i] = ClampSample(w[i])
	}
	return w
}

// MakeWave builds a wave from a slice. Missing samples are zero, extra samples
// are ignored and values are clamped.
func MakeWave(samples []int) Wave {
	var w Wave
	for i := 0; i < len(samples) && i < WaveLength; i++ {
		w[i] = ClampSample(samples[i])
	}
	return w
}
