package lazykit

import (
	"errors"
	"fmt"
)

// ErrNegativeIndex is returned when a programmatic scroll targets a negative index.
var ErrNegativeIndex = errors.New("negative scroll index")

// ScrollRequest identifies a requested programmatic scroll target. ID increases with
// every accepted request, so a consumer can detect a fresh request even when the
// target index repeats. The zero value means no request has been made.
type ScrollRequest struct {
	ID       int
	Index    int
	Animated bool
}

// PreloadConfig controls how far the load range extends beyond the visible window.
type PreloadConfig struct {
	Default          int // forward reach when there is no scroll history
	ScrollInProgress int // trailing reach while actively scrolling
	Primary          int // leading reach while scrolling, kept ahead after stopping
	Secondary        int // trailing reach after scrolling stops
	Enabled          bool
}

// DefaultPreloadConfig returns the stock preload counts.
func DefaultPreloadConfig() PreloadConfig {
	return PreloadConfig{
		Default:          15,
		ScrollInProgress: 5,
		Primary:          20,
		Secondary:        10,
		Enabled:          true,
	}
}

func (c PreloadConfig) sanitized() PreloadConfig {
	c.Default = max(c.Default, 0)
	c.ScrollInProgress = max(c.ScrollInProgress, 0)
	c.Primary = max(c.Primary, 0)
	c.Secondary = max(c.Secondary, 0)
	return c
}

// EventKind classifies a WindowEvent.
type EventKind int

const (
	EventUserScroll EventKind = iota
	EventProgrammaticScroll
)

// WindowEvent describes a change to a tracker's visible window or pending request.
// First and Last are the bounds after the change; Request is the latest request.
type WindowEvent struct {
	Kind    EventKind
	First   int
	Last    int
	Request ScrollRequest
}

// WindowTracker owns the scroll state of one lazy list. It records viewport
// observations, classifies scroll motion from them, and expands the visible window
// into the range of items worth keeping materialized.
//
// A tracker is single-owner: all calls must come from one goroutine, normally the
// UI loop that lays the list out.
type WindowTracker struct {
	preload PreloadConfig

	first        int
	last         int
	userScrolled bool

	// prevFirst1/prevFirst2 are the first indices seen by the last two LoadRange
	// calls, -1 until recorded. prevLast1 and prevRange complete the snapshot used
	// for continuity across calls.
	prevFirst1 int
	prevFirst2 int
	prevLast1  int
	prevRange  Range
	hasPrev    bool

	req       ScrollRequest
	listeners []func(WindowEvent)
}

// NewWindowTracker returns a tracker at the top of an unmeasured list, with
// DefaultPreloadConfig applied.
func NewWindowTracker() *WindowTracker {
	return &WindowTracker{
		preload:    DefaultPreloadConfig(),
		prevFirst1: -1,
		prevFirst2: -1,
	}
}

// Configure replaces the preload configuration. Negative counts are clamped to 0.
// Takes effect on the next LoadRange call.
func (t *WindowTracker) Configure(cfg PreloadConfig) *WindowTracker {
	t.preload = cfg.sanitized()
	return t
}

// Preload returns the active preload configuration.
func (t *WindowTracker) Preload() PreloadConfig {
	return t.preload
}

// Visible returns the most recently observed visible window.
func (t *WindowTracker) Visible() Range {
	return Range{Begin: t.first, End: t.last}
}

// PendingScroll returns the latest programmatic scroll request. Consumers should
// act once per ID change; WindowedList implements that discipline.
func (t *WindowTracker) PendingScroll() ScrollRequest {
	return t.req
}

// Subscribe registers a listener for window events and returns an unsubscribe
// function. Listeners must not mutate the tracker from inside the callback.
func (t *WindowTracker) Subscribe(fn func(WindowEvent)) func() {
	t.listeners = append(t.listeners, fn)
	idx := len(t.listeners) - 1
	return func() {
		t.listeners[idx] = nil
	}
}

func (t *WindowTracker) notify(kind EventKind) {
	ev := WindowEvent{Kind: kind, First: t.first, Last: t.last, Request: t.req}
	for _, fn := range t.listeners {
		if fn != nil {
			fn(ev)
		}
	}
}

// ProgrammaticScroll requests a scroll to firstIndex, preserving the current window
// length. The request is published with a fresh ID for the rendering side to pick
// up. A negative firstIndex is rejected with ErrNegativeIndex. When
// clobberUserScroll is false the call is dropped silently if the user has already
// scrolled away from the top. Does not mark the tracker as user-scrolled.
func (t *WindowTracker) ProgrammaticScroll(firstIndex int, animated, clobberUserScroll bool) error {
	if firstIndex < 0 {
		return fmt.Errorf("programmatic scroll: %w: %d", ErrNegativeIndex, firstIndex)
	}
	if !clobberUserScroll && t.userScrolled {
		return nil
	}
	t.req = ScrollRequest{ID: t.req.ID + 1, Index: firstIndex, Animated: animated}
	t.last = firstIndex + (t.last - t.first)
	t.first = firstIndex
	t.notify(EventProgrammaticScroll)
	return nil
}

// OnUserScroll records the viewport bounds observed from a user-driven scroll.
// A first index above 0 permanently marks the tracker as user-scrolled, which
// blocks non-clobbering programmatic scrolls from then on.
func (t *WindowTracker) OnUserScroll(firstIndex, lastIndex int) {
	if firstIndex > 0 {
		t.userScrolled = true
	}
	t.first = firstIndex
	t.last = lastIndex
	t.notify(EventUserScroll)
}

// LoadRange computes the range of items to materialize for the current pass, given
// the total number of items available. The result always covers the visible window,
// extended by the preload policy for the classified scroll motion, widened for
// continuity with the previous result, and clamped to [0, itemCount].
//
// LoadRange is deterministic, never fails, and mutates only the tracker's own
// history fields. It does not notify listeners; the caller consumes the returned
// range directly.
func (t *WindowTracker) LoadRange(itemCount int) Range {
	begin := t.first
	end := t.last

	scrollingDown := t.prevFirst1 != -1 && t.prevFirst1 < t.first
	scrollingUp := t.prevFirst1 != -1 && t.prevFirst1 > t.first
	stopped := t.prevFirst2 != -1 && t.first == t.prevFirst1
	wasScrollingDown := t.prevFirst1 > t.prevFirst2
	wasScrollingUp := t.prevFirst1 < t.prevFirst2

	switch {
	case !t.preload.Enabled:
		// Load exactly the visible window.
	case scrollingDown:
		begin -= t.preload.ScrollInProgress
		end += t.preload.Primary
	case scrollingUp:
		begin -= t.preload.Primary
		end += t.preload.ScrollInProgress
	case stopped && wasScrollingDown:
		begin -= t.preload.Secondary
		end += t.preload.Primary
	case stopped && wasScrollingUp:
		begin -= t.preload.Primary
		end += t.preload.Secondary
	default:
		// Fresh list, no history yet. Nothing behind to preload.
		end += t.preload.Default
	}

	// First load establishes the window length.
	if t.last == 0 {
		t.last = end
	}

	// The recorded range is the policy's own answer, before continuity widening.
	// Widening protects the previous range for exactly one call; recording the
	// widened result instead would compound call over call and never evict.
	cand := Range{Begin: begin, End: end}.Clamp(itemCount)

	// While the visible window stays inside the previously observed one, keep the
	// previous range alive on that side. Slow scrolls must not evict fresh items.
	if t.hasPrev {
		if t.first >= t.prevFirst1 && t.first <= t.prevLast1 {
			begin = min(begin, t.prevRange.Begin)
		}
		if t.last >= t.prevFirst1 && t.last <= t.prevLast1 {
			end = max(end, t.prevRange.End)
		}
	}

	rng := Range{Begin: begin, End: end}.Clamp(itemCount)

	t.prevFirst2 = t.prevFirst1
	t.prevFirst1 = t.first
	t.prevLast1 = t.last
	t.prevRange = cand
	t.hasPrev = true

	return rng
}
