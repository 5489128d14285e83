// Package lazykit provides the windowing runtime for lazy-loaded scrollable lists.
//
// The core is WindowTracker, which turns a stream of scroll observations into the
// range of items worth keeping materialized. WindowedItems holds exactly that range,
// WindowedList ties the two together for a rendering collaborator, and TermList is a
// reference collaborator for terminal programs.
package lazykit

import "fmt"

// Range is a half-open interval [Begin, End) of item indices.
type Range struct {
	Begin int
	End   int
}

// NewRange returns the range [begin, end), normalizing inverted bounds to empty.
func NewRange(begin, end int) Range {
	if end < begin {
		end = begin
	}
	return Range{Begin: begin, End: end}
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.End <= r.Begin {
		return 0
	}
	return r.End - r.Begin
}

// IsEmpty returns true if the range contains no indices.
func (r Range) IsEmpty() bool {
	return r.End <= r.Begin
}

// Contains returns true if index i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Begin && i < r.End
}

// ContainsRange returns true if other lies entirely inside the range.
// An empty range is contained everywhere.
func (r Range) ContainsRange(other Range) bool {
	if other.IsEmpty() {
		return true
	}
	return other.Begin >= r.Begin && other.End <= r.End
}

// Intersect returns the overlap of two ranges, empty if they are disjoint.
func (r Range) Intersect(other Range) Range {
	begin := max(r.Begin, other.Begin)
	end := min(r.End, other.End)
	if end < begin {
		return Range{Begin: begin, End: begin}
	}
	return Range{Begin: begin, End: end}
}

// Clamp restricts the range to [0, limit].
func (r Range) Clamp(limit int) Range {
	begin := max(r.Begin, 0)
	end := r.End
	if end > limit {
		end = limit
	}
	if end < 0 {
		end = 0
	}
	if begin > end {
		begin = end
	}
	return Range{Begin: begin, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Begin, r.End)
}
