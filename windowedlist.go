package lazykit

//go:generate mockgen -source=windowedlist.go -destination=listview_mock.go -package=lazykit

// ListView is the contract a rendering collaborator implements so a WindowedList
// can drive it. ApplyWindow announces the materialized range after each layout
// pass; ScrollTo executes a programmatic scroll request.
type ListView interface {
	ApplyWindow(r Range)
	ScrollTo(index int, animated bool)
}

// WindowedList ties a WindowTracker to a WindowedItems store and, optionally, to a
// rendering view. One instance per on-screen list. Like the tracker it wraps, it
// is single-owner and unlocked.
type WindowedList[T any] struct {
	tracker *WindowTracker
	items   *WindowedItems[T]
	view    ListView
	seenID  int
}

// NewWindowedList creates a list runtime at the top of the collection.
func NewWindowedList[T any](loader Loader[T]) *WindowedList[T] {
	return &WindowedList[T]{
		tracker: NewWindowTracker(),
		items:   NewWindowedItems(loader),
	}
}

// RestoreWindowedList creates a list runtime resuming at a persisted position.
// The attached view repositions itself when the pending request is delivered on
// the first layout pass.
func RestoreWindowedList[T any](firstIndex int, loader Loader[T]) *WindowedList[T] {
	l := NewWindowedList(loader)
	l.tracker = Restore(firstIndex)
	return l
}

// Tracker returns the underlying window tracker.
func (l *WindowedList[T]) Tracker() *WindowTracker {
	return l.tracker
}

// Items returns the underlying materialized store.
func (l *WindowedList[T]) Items() *WindowedItems[T] {
	return l.items
}

// AttachView sets the rendering collaborator driven by Layout.
func (l *WindowedList[T]) AttachView(v ListView) *WindowedList[T] {
	l.view = v
	return l
}

// Layout runs one layout pass: computes the load range for the current item
// count, materializes it, delivers at most one pending scroll request to the
// attached view, and announces the window. Returns the materialized range.
func (l *WindowedList[T]) Layout(itemCount int) Range {
	rng := l.tracker.LoadRange(itemCount)
	l.items.SetLen(itemCount)
	l.items.Apply(rng)
	if l.view != nil {
		if req, ok := l.TakeScrollRequest(); ok {
			l.view.ScrollTo(req.Index, req.Animated)
		}
		l.view.ApplyWindow(rng)
	}
	return rng
}

// OnUserScroll forwards observed viewport bounds to the tracker.
func (l *WindowedList[T]) OnUserScroll(firstIndex, lastIndex int) {
	l.tracker.OnUserScroll(firstIndex, lastIndex)
}

// ScrollTo issues a clobbering programmatic scroll. Non-clobbering callers use
// Tracker().ProgrammaticScroll directly.
func (l *WindowedList[T]) ScrollTo(index int, animated bool) error {
	return l.tracker.ProgrammaticScroll(index, animated, true)
}

// TakeScrollRequest returns the pending programmatic scroll request if its ID has
// not been seen yet. Each request is surfaced exactly once, shared with Layout's
// view delivery.
func (l *WindowedList[T]) TakeScrollRequest() (ScrollRequest, bool) {
	req := l.tracker.PendingScroll()
	if req.ID == l.seenID {
		return ScrollRequest{}, false
	}
	l.seenID = req.ID
	return req, true
}
