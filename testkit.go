package lazykit

import "fmt"

// RecordingView is a ListView double that records every call it receives, in
// order. Consumers use it to assert how a runtime drove their view without
// standing up a real renderer.
type RecordingView struct {
	Windows []Range      // ApplyWindow arguments
	Scrolls []ScrollCall // ScrollTo arguments
	Trace   []string     // human-readable call sequence across both methods
}

// ScrollCall is one ScrollTo invocation observed by a RecordingView.
type ScrollCall struct {
	Index    int
	Animated bool
}

// ApplyWindow implements ListView.
func (v *RecordingView) ApplyWindow(r Range) {
	v.Windows = append(v.Windows, r)
	v.Trace = append(v.Trace, fmt.Sprintf("apply %s", r))
}

// ScrollTo implements ListView.
func (v *RecordingView) ScrollTo(index int, animated bool) {
	v.Scrolls = append(v.Scrolls, ScrollCall{Index: index, Animated: animated})
	v.Trace = append(v.Trace, fmt.Sprintf("scroll %d animated=%v", index, animated))
}

// SliceLoader adapts a fully known slice into a Loader and records the ranges it
// serves, so tests and demos can assert exactly what got fetched.
type SliceLoader[T any] struct {
	items  []T
	Served []Range
}

// NewSliceLoader wraps items for use as a Loader via the Load method.
func NewSliceLoader[T any](items []T) *SliceLoader[T] {
	return &SliceLoader[T]{items: items}
}

// Load implements Loader.
func (s *SliceLoader[T]) Load(r Range) []T {
	s.Served = append(s.Served, r)
	r = r.Clamp(len(s.items))
	return s.items[r.Begin:r.End]
}
