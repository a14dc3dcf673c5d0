package core

import "time"

// FixedStep helps run update loops at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	// Now is the clock; tests replace it.
	Now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{Now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the configured tick duration.
func (f *FixedStep) Step() time.Duration { return f.step }

// Ticks reports how many whole ticks elapsed since the previous call and
// keeps the remainder for the next one.
func (f *FixedStep) Ticks() int {
	now := f.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// ShouldStep reports whether at least one tick is pending, consuming one.
func (f *FixedStep) ShouldStep() bool {
	now := f.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
