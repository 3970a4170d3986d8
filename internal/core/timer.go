package core

import "time"

// FixedStep paces simulation rounds at a steady rate, independent of the
// frame rate of whatever loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting rps rounds per second.
func NewFixedStep(rps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the round rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetRate(rps int) {
	if rps <= 0 {
		rps = 10
	}
	f.step = time.Second / time.Duration(rps)
}

// Rate returns the current rounds per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// ShouldStep reports whether the simulation should advance by one round.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			// Drop backlog after a stall instead of bursting rounds.
			f.accumulator = f.step
		}
		return true
	}
	return false
}
