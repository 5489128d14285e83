package lazykit

import (
	"errors"
	"testing"
)

func TestNewWindowTracker(t *testing.T) {
	tr := NewWindowTracker()

	cfg := tr.Preload()
	if cfg.Default != 15 || cfg.ScrollInProgress != 5 || cfg.Primary != 20 || cfg.Secondary != 10 {
		t.Errorf("expected preload counts 15/5/20/10, got %d/%d/%d/%d",
			cfg.Default, cfg.ScrollInProgress, cfg.Primary, cfg.Secondary)
	}
	if !cfg.Enabled {
		t.Error("expected preloading enabled by default")
	}
	if got := tr.Visible(); got != (Range{}) {
		t.Errorf("expected empty visible window, got %s", got)
	}
	if got := tr.PendingScroll(); got.ID != 0 {
		t.Errorf("expected no pending scroll, got id %d", got.ID)
	}
	if tr.userScrolled {
		t.Error("expected userScrolled to start false")
	}
}

func TestLoadRangeFreshList(t *testing.T) {
	tr := NewWindowTracker()

	if got := tr.LoadRange(1000); got != (Range{0, 15}) {
		t.Errorf("expected [0,15) on the first load, got %s", got)
	}
	if tr.last != 15 {
		t.Errorf("expected the first load to adopt lastIndex 15, got %d", tr.last)
	}

	// Idle refreshes widen once past the adopted window, then settle.
	if got := tr.LoadRange(1000); got != (Range{0, 30}) {
		t.Errorf("expected [0,30) on refresh, got %s", got)
	}
	if got := tr.LoadRange(1000); got != (Range{0, 30}) {
		t.Errorf("expected [0,30) to hold steady, got %s", got)
	}
}

func TestLoadRangeScrollingDown(t *testing.T) {
	tr := NewWindowTracker()

	tr.OnUserScroll(0, 15)
	if got := tr.LoadRange(1000); got != (Range{0, 30}) {
		t.Errorf("expected [0,30) with no history, got %s", got)
	}

	tr.OnUserScroll(10, 25)
	if got := tr.LoadRange(1000); got != (Range{0, 45}) {
		t.Errorf("expected [0,45) scrolling down, got %s", got)
	}

	tr.OnUserScroll(20, 35)
	if got := tr.LoadRange(1000); got != (Range{5, 55}) {
		t.Errorf("expected [5,55) scrolling down, got %s", got)
	}
}

func TestLoadRangeScrollingUp(t *testing.T) {
	tr := NewWindowTracker()

	tr.OnUserScroll(100, 115)
	if got := tr.LoadRange(1000); got != (Range{100, 130}) {
		t.Errorf("expected [100,130) with no history, got %s", got)
	}

	tr.OnUserScroll(90, 105)
	if got := tr.LoadRange(1000); got != (Range{70, 130}) {
		t.Errorf("expected [70,130) scrolling up, got %s", got)
	}

	tr.OnUserScroll(80, 95)
	if got := tr.LoadRange(1000); got != (Range{60, 110}) {
		t.Errorf("expected [60,110) scrolling up, got %s", got)
	}
}

func TestLoadRangeStopped(t *testing.T) {
	t.Run("AfterScrollingDown", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(0, 15)
		tr.LoadRange(1000)
		tr.OnUserScroll(10, 25)
		tr.LoadRange(1000)

		// Same window again: momentum still favors below.
		tr.OnUserScroll(10, 25)
		if got := tr.LoadRange(1000); got != (Range{0, 45}) {
			t.Errorf("expected [0,45) after stopping, got %s", got)
		}
	})

	t.Run("AfterScrollingUp", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(100, 115)
		tr.LoadRange(1000)
		tr.OnUserScroll(90, 105)
		tr.LoadRange(1000)

		tr.OnUserScroll(90, 105)
		if got := tr.LoadRange(1000); got != (Range{70, 115}) {
			t.Errorf("expected [70,115) after stopping, got %s", got)
		}
	})
}

func TestLoadRangeStabilization(t *testing.T) {
	tr := NewWindowTracker()
	tr.first, tr.last = 102, 122
	tr.prevFirst1, tr.prevFirst2 = 100, 95
	tr.prevLast1 = 120
	tr.prevRange = Range{80, 140}
	tr.hasPrev = true

	got := tr.LoadRange(1000)
	if got.Begin > 80 {
		t.Errorf("expected begin to hold at 80, got %s", got)
	}
	if got.End < 140 {
		t.Errorf("expected end to hold at 140, got %s", got)
	}
	if got != (Range{80, 142}) {
		t.Errorf("expected [80,142), got %s", got)
	}
}

func TestLoadRangeJumpEvicts(t *testing.T) {
	tr := NewWindowTracker()
	tr.OnUserScroll(100, 120)
	tr.LoadRange(10000)

	// A window fully outside the previous one gets no protection.
	tr.OnUserScroll(600, 620)
	if got := tr.LoadRange(10000); got != (Range{595, 640}) {
		t.Errorf("expected a fresh window after the jump, got %s", got)
	}
}

func TestLoadRangeEvictsBehindSustainedScroll(t *testing.T) {
	tr := NewWindowTracker()
	tr.OnUserScroll(0, 15)
	tr.LoadRange(100000)

	first := 0
	var got Range
	for i := 0; i < 50; i++ {
		first += 5
		tr.OnUserScroll(first, first+15)
		got = tr.LoadRange(100000)
	}

	// Overlapping windows qualify for stabilization on every step, but the
	// protected range must not accumulate: the trail stays one step deep.
	if got != (Range{first - 10, first + 35}) {
		t.Errorf("expected [%d,%d), got %s", first-10, first+35, got)
	}
	if got.Len() > 45 {
		t.Errorf("expected the load range to stay bounded, got %d items", got.Len())
	}
}

func TestLoadRangePreloadDisabled(t *testing.T) {
	tr := NewWindowTracker().Configure(PreloadConfig{})
	tr.OnUserScroll(50, 70)
	if got := tr.LoadRange(1000); got != (Range{50, 70}) {
		t.Errorf("expected the bare visible window, got %s", got)
	}

	fresh := NewWindowTracker().Configure(PreloadConfig{})
	if got := fresh.LoadRange(1000); got != (Range{0, 0}) {
		t.Errorf("expected an empty range for an unmeasured list, got %s", got)
	}
}

func TestLoadRangeClamp(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		itemCount   int
		want        Range
	}{
		{"EmptyCollection", 0, 0, 0, Range{0, 0}},
		{"WindowPastEnd", 500, 520, 100, Range{100, 100}},
		{"EndClamped", 90, 105, 110, Range{90, 110}},
		{"NegativeCount", 10, 25, -5, Range{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewWindowTracker()
			tr.OnUserScroll(tt.first, tt.last)
			if got := tr.LoadRange(tt.itemCount); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLoadRangeContainsVisibleWindow(t *testing.T) {
	tr := NewWindowTracker()
	windows := [][2]int{{0, 15}, {40, 60}, {35, 55}, {35, 55}, {700, 720}, {10, 30}}
	for _, w := range windows {
		tr.OnUserScroll(w[0], w[1])
		got := tr.LoadRange(1000)
		if !got.ContainsRange(NewRange(w[0], w[1])) {
			t.Errorf("expected load range %s to contain visible [%d,%d)", got, w[0], w[1])
		}
		if got.Begin < 0 || got.End > 1000 || got.Begin > got.End {
			t.Errorf("expected a range clamped to [0,1000], got %s", got)
		}
	}
}

func TestLoadRangeRecordsHistory(t *testing.T) {
	tr := NewWindowTracker()
	tr.OnUserScroll(3, 18)
	tr.LoadRange(1000)
	if tr.prevFirst1 != 3 || tr.prevFirst2 != -1 || tr.prevLast1 != 18 {
		t.Errorf("expected history (3, -1, 18), got (%d, %d, %d)",
			tr.prevFirst1, tr.prevFirst2, tr.prevLast1)
	}

	tr.OnUserScroll(7, 22)
	tr.LoadRange(1000)
	if tr.prevFirst1 != 7 || tr.prevFirst2 != 3 {
		t.Errorf("expected history to shift to (7, 3), got (%d, %d)",
			tr.prevFirst1, tr.prevFirst2)
	}
}

func TestProgrammaticScroll(t *testing.T) {
	t.Run("AllocatesMonotonicIDs", func(t *testing.T) {
		tr := NewWindowTracker()
		for i := 1; i <= 5; i++ {
			if err := tr.ProgrammaticScroll(i*10, false, true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := tr.PendingScroll().ID; got != i {
				t.Errorf("expected id %d, got %d", i, got)
			}
		}
	})

	t.Run("PreservesWindowLength", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(0, 15)
		if err := tr.ProgrammaticScroll(100, true, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.Visible(); got != (Range{100, 115}) {
			t.Errorf("expected visible window [100,115), got %s", got)
		}
		req := tr.PendingScroll()
		if req.Index != 100 || !req.Animated {
			t.Errorf("expected an animated request for index 100, got %+v", req)
		}
	})

	t.Run("RejectsNegativeIndex", func(t *testing.T) {
		tr := NewWindowTracker()
		err := tr.ProgrammaticScroll(-1, false, true)
		if !errors.Is(err, ErrNegativeIndex) {
			t.Fatalf("expected ErrNegativeIndex, got %v", err)
		}
		if tr.PendingScroll().ID != 0 {
			t.Error("expected a rejected scroll to leave no request")
		}
	})

	t.Run("DroppedWithoutClobber", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(5, 25)

		if err := tr.ProgrammaticScroll(0, false, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.Visible(); got != (Range{5, 25}) {
			t.Errorf("expected the user position to survive, got %s", got)
		}
		if tr.PendingScroll().ID != 0 {
			t.Error("expected the dropped scroll to leave no request")
		}
	})

	t.Run("ClobberOverridesUserPosition", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(5, 25)

		if err := tr.ProgrammaticScroll(0, false, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.Visible(); got != (Range{0, 20}) {
			t.Errorf("expected the clobbering scroll to reposition, got %s", got)
		}
		if tr.PendingScroll().ID != 1 {
			t.Errorf("expected request id 1, got %d", tr.PendingScroll().ID)
		}
	})

	t.Run("TopWindowDoesNotBlock", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(0, 20)

		// firstIndex 0 never marks the list as user-scrolled.
		if err := tr.ProgrammaticScroll(40, false, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tr.Visible(); got != (Range{40, 60}) {
			t.Errorf("expected the scroll to apply from the top, got %s", got)
		}
	})
}

func TestOnUserScroll(t *testing.T) {
	t.Run("MarksUserScrolled", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(1, 16)
		if !tr.userScrolled {
			t.Error("expected userScrolled after a scroll past the top")
		}

		// The mark is permanent.
		tr.OnUserScroll(0, 15)
		if !tr.userScrolled {
			t.Error("expected userScrolled to stick")
		}
	})

	t.Run("TopReportDoesNotMark", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(0, 15)
		if tr.userScrolled {
			t.Error("expected a report at the top to leave userScrolled false")
		}
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("DeliversEvents", func(t *testing.T) {
		tr := NewWindowTracker()
		var events []WindowEvent
		tr.Subscribe(func(ev WindowEvent) {
			events = append(events, ev)
		})

		tr.OnUserScroll(10, 30)
		if err := tr.ProgrammaticScroll(50, true, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Kind != EventUserScroll || events[0].First != 10 || events[0].Last != 30 {
			t.Errorf("unexpected user scroll event: %+v", events[0])
		}
		if events[1].Kind != EventProgrammaticScroll || events[1].Request.ID != 1 || events[1].First != 50 {
			t.Errorf("unexpected programmatic scroll event: %+v", events[1])
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		tr := NewWindowTracker()
		calls := 0
		unsub := tr.Subscribe(func(WindowEvent) { calls++ })

		tr.OnUserScroll(10, 30)
		unsub()
		tr.OnUserScroll(20, 40)

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("DroppedScrollIsSilent", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(5, 25)

		calls := 0
		tr.Subscribe(func(WindowEvent) { calls++ })
		if err := tr.ProgrammaticScroll(0, false, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no event for a dropped scroll, got %d", calls)
		}
	})

	t.Run("LoadRangeIsSilent", func(t *testing.T) {
		tr := NewWindowTracker()
		calls := 0
		tr.Subscribe(func(WindowEvent) { calls++ })

		tr.LoadRange(1000)
		if calls != 0 {
			t.Errorf("expected no event from a layout pass, got %d", calls)
		}
	})
}

func TestConfigure(t *testing.T) {
	t.Run("ClampsNegativeCounts", func(t *testing.T) {
		tr := NewWindowTracker().Configure(PreloadConfig{
			Default: -5, ScrollInProgress: -1, Primary: -20, Secondary: -3, Enabled: true,
		})
		cfg := tr.Preload()
		if cfg.Default != 0 || cfg.ScrollInProgress != 0 || cfg.Primary != 0 || cfg.Secondary != 0 {
			t.Errorf("expected negative counts clamped to zero, got %+v", cfg)
		}
	})

	t.Run("TakesEffectNextLoad", func(t *testing.T) {
		tr := NewWindowTracker()
		tr.OnUserScroll(0, 15)
		tr.LoadRange(1000)

		tr.OnUserScroll(10, 25)
		tr.Configure(PreloadConfig{Default: 15, ScrollInProgress: 5, Primary: 3, Secondary: 10, Enabled: true})
		if got := tr.LoadRange(1000); got != (Range{0, 28}) {
			t.Errorf("expected [0,28) with the reduced primary count, got %s", got)
		}
	})
}

func BenchmarkLoadRange(b *testing.B) {
	tr := NewWindowTracker()
	for i := 0; i < b.N; i++ {
		first := (i * 7) % 900
		tr.OnUserScroll(first, first+20)
		tr.LoadRange(1000)
	}
}
