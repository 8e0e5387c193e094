package win32

import "time"

// clickTracker pairs consecutive releases of the same button into double
// clicks.
type clickTracker struct {
	maxTime time.Duration

	lastRelease [buttonCount]time.Time
	pending     [buttonCount]bool
}

func newClickTracker(maxTime time.Duration) *clickTracker {
	return &clickTracker{maxTime: maxTime}
}

// recordRelease records a release of b at the given time and reports whether
// it completes a double click. A completed pair is consumed, so a third quick
// release starts a new sequence.
func (t *clickTracker) recordRelease(b Button, at time.Time) bool {
	if t.pending[b] {
		// Negative elapsed time means the clock went backwards; start over.
		elapsed := at.Sub(t.lastRelease[b])
		if elapsed >= 0 && elapsed <= t.maxTime {
			t.pending[b] = false
			t.lastRelease[b] = time.Time{}
			return true
		}
	}
	t.pending[b] = true
	t.lastRelease[b] = at
	return false
}

func (t *clickTracker) reset() {
	t.lastRelease = [buttonCount]time.Time{}
	t.pending = [buttonCount]bool{}
}
