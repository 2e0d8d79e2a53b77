package wavedraw

type (
	// Range is a half-open range [Start, End) of sample indices. A Range may
	// extend past either end of a Wave; such ranges are used for the
	// destination of a floating selection that has been dragged partially off
	// the wave.
	Range struct {
		Start, End int
	}
)

// FullRange covers the whole wave.
var FullRange = Range{0, WaveLength}

// MakeRange returns the range between two boundaries given in any order.
func MakeRange(a, b int) Range {
	return Range{min(a, b), max(a, b)}
}

// Len returns the number of indices in the range, zero if it is inverted.
func (r Range) Len() int { return max(r.End-r.Start, 0) }

// Empty reports whether the range contains no indices.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether index i is within the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Shift moves both ends of the range by delta.
func (r Range) Shift(delta int) Range { return Range{r.Start + delta, r.End + delta} }

// Intersect returns the overlap of the two ranges. If the ranges do not
// overlap, the returned range is empty (Start == End).
func (r Range) Intersect(s Range) Range {
	ret := Range{max(r.Start, s.Start), min(r.End, s.End)}
	if ret.End < ret.Start {
		ret.End = ret.Start
	}
	return ret
}

// Clamp limits both boundaries to [0, WaveLength]. An inverted range collapses
// to an empty range at its start.
func (r Range) Clamp() Range {
	ret := Range{max(min(r.Start, WaveLength), 0), max(min(r.End, WaveLength), 0)}
	if ret.End < ret.Start {
		ret.End = ret.Start
	}
	return ret
}
