package lazykit

// Serialize extracts the persistable scroll position from a tracker. The first
// visible index is the only field that survives a session.
func Serialize(t *WindowTracker) int {
	return t.first
}

// Restore builds a tracker for a list whose previous session ended at firstIndex.
// The tracker behaves as if it had just been scrolled programmatically to that
// index, without animation and without overriding a later user scroll, so an
// attached view will reposition itself when it consumes the pending request.
// Preload counts reset to defaults. A negative index restores a fresh tracker.
func Restore(firstIndex int) *WindowTracker {
	t := NewWindowTracker()
	if firstIndex < 0 {
		return t
	}
	_ = t.ProgrammaticScroll(firstIndex, false, false)
	return t
}
