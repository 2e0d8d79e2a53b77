package waveedit

import "github.com/wavedraw/wavedraw"

// floatingSelection is a detached copy of samples, shown on top of the
// pre-edit snapshot base at dest, shifted vertically by offset. The length of
// data is independent of the width of dest; stamping resamples.
type floatingSelection struct {
	data   []int
	dest   wavedraw.Range
	offset int
	base   wavedraw.Wave
}

func newFloating(w wavedraw.Wave, bounds wavedraw.Range) *floatingSelection {
	return &floatingSelection{
		data: w.Samples(bounds),
		dest: bounds,
		base: w,
	}
}

// composite returns the base with the data stamped at dest and offset.
func (f *floatingSelection) composite(dest wavedraw.Range, offset int) wavedraw.Wave {
	w := f.base
	stamp(&w, f.data, dest, offset)
	return w
}

// stamp writes data resampled with nearest neighbour over dest into w. Only
// the part of dest inside the wave is written.
func stamp(w *wavedraw.Wave, data []int, dest wavedraw.Range, offset int) {
	n := len(data)
	width := dest.End - dest.Start
	if n == 0 || width <= 0 {
		return
	}
	visible := dest.Intersect(wavedraw.FullRange)
	for i := visible.Start; i < visible.End; i++ {
		src := max(min(n*(i-dest.Start)/width, n-1), 0)
		w.Set(i, data[src]+offset)
	}
}
