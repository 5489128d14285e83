package lazykit

// Loader fetches items for a range of indices. It is called synchronously as the
// materialized window moves. Returning fewer items than requested is allowed; the
// missing indices stay unmaterialized and are requested again on a later pass.
type Loader[T any] func(r Range) []T

// WindowedItems holds the materialized portion of a larger collection. Only items
// inside the current window are kept. Moving the window copies the overlap and
// fetches just the gaps, so a slowly moving window loads each item once.
type WindowedItems[T any] struct {
	loader      Loader[T]
	placeholder func(index int) T

	length  int
	window  Range
	items   []T
	present []bool
}

// NewWindowedItems creates an empty store. A nil loader leaves every index a
// placeholder.
func NewWindowedItems[T any](loader Loader[T]) *WindowedItems[T] {
	return &WindowedItems[T]{loader: loader}
}

// Placeholder sets the value surfaced for indices that are not materialized.
func (w *WindowedItems[T]) Placeholder(fn func(index int) T) *WindowedItems[T] {
	w.placeholder = fn
	return w
}

// Len returns the total logical collection size.
func (w *WindowedItems[T]) Len() int {
	return w.length
}

// Window returns the currently materialized range.
func (w *WindowedItems[T]) Window() Range {
	return w.window
}

// Materialized returns how many items inside the window are actually loaded.
func (w *WindowedItems[T]) Materialized() int {
	n := 0
	for _, ok := range w.present {
		if ok {
			n++
		}
	}
	return n
}

// SetLen records a new total collection size, clamping the window if it shrank.
func (w *WindowedItems[T]) SetLen(n int) {
	w.length = max(n, 0)
	if w.window.End > w.length {
		w.move(w.window.Clamp(w.length))
	}
}

// Apply moves the materialized window to r, clamped to the collection bounds.
// Indices the loader skipped on an earlier pass are requested again.
func (w *WindowedItems[T]) Apply(r Range) {
	r = r.Clamp(w.length)
	if r == w.window {
		w.fillHoles()
		return
	}
	w.move(r)
}

// At returns the item at index i and whether it is materialized. Anything outside
// the materialized window yields the placeholder value and false.
func (w *WindowedItems[T]) At(i int) (T, bool) {
	if w.window.Contains(i) && w.present[i-w.window.Begin] {
		return w.items[i-w.window.Begin], true
	}
	if w.placeholder != nil {
		return w.placeholder(i), false
	}
	var zero T
	return zero, false
}

func (w *WindowedItems[T]) move(r Range) {
	items := make([]T, r.Len())
	present := make([]bool, r.Len())
	ov := w.window.Intersect(r)
	if ov.IsEmpty() {
		w.window, w.items, w.present = r, items, present
		w.fetch(r)
		return
	}
	copy(items[ov.Begin-r.Begin:], w.items[ov.Begin-w.window.Begin:ov.End-w.window.Begin])
	copy(present[ov.Begin-r.Begin:], w.present[ov.Begin-w.window.Begin:ov.End-w.window.Begin])
	head := Range{Begin: r.Begin, End: ov.Begin}
	tail := Range{Begin: ov.End, End: r.End}
	w.window, w.items, w.present = r, items, present
	w.fetch(head)
	w.fetch(tail)
}

// fetch asks the loader for a gap inside the current window and stores whatever
// prefix it returns.
func (w *WindowedItems[T]) fetch(gap Range) {
	if gap.IsEmpty() || w.loader == nil {
		return
	}
	got := w.loader(gap)
	n := min(len(got), gap.Len())
	for i := 0; i < n; i++ {
		w.items[gap.Begin-w.window.Begin+i] = got[i]
		w.present[gap.Begin-w.window.Begin+i] = true
	}
}

func (w *WindowedItems[T]) fillHoles() {
	if w.loader == nil {
		return
	}
	i := 0
	for i < len(w.present) {
		if w.present[i] {
			i++
			continue
		}
		j := i
		for j < len(w.present) && !w.present[j] {
			j++
		}
		w.fetch(Range{Begin: w.window.Begin + i, End: w.window.Begin + j})
		i = j
	}
}
