package object

// Timer accumulates frame time for a discrete action.
type Timer struct {
	Elapsed float64 // Seconds accumulated since the last firing
}

// Advance adds dt and reports whether the accumulated time exceeds interval.
// On firing the interval is subtracted so the remainder carries into the next tick.
// At most one firing happens per call.
func (t *Timer) Advance(dt, interval float64) bool {
	t.Elapsed += dt
	if t.Elapsed > interval {
		t.Elapsed -= interval
		return true
	}
	return false
}

// Add accumulates dt without firing. Used for cooldowns.
func (t *Timer) Add(dt float64) {
	t.Elapsed += dt
}

// Ready reports whether more than interval has accumulated.
func (t *Timer) Ready(interval float64) bool {
	return t.Elapsed > interval
}

// Reset drops all accumulated time.
func (t *Timer) Reset() {
	t.Elapsed = 0
}
