package model

import "time"

// DefaultMaxCatchUp bounds the ticks one Advance call can release
const DefaultMaxCatchUp = 5

// FixedTimestep releases ticks at a fixed wall-clock interval regardless of
// how often Advance is called.
type FixedTimestep struct {
	Interval   time.Duration
	MaxCatchUp int

	accumulated time.Duration
}

// NewFixedTimestep returns a gate firing once per interval
func NewFixedTimestep(interval time.Duration) *FixedTimestep {
	return &FixedTimestep{
		Interval:   interval,
		MaxCatchUp: DefaultMaxCatchUp,
	}
}

// Advance adds elapsed to the accumulator and returns how many whole
// intervals are due. Time owed past MaxCatchUp ticks is dropped.
func (f *FixedTimestep) Advance(elapsed time.Duration) int {
	if f.Interval <= 0 || elapsed <= 0 {
		return 0
	}

	f.accumulated += elapsed
	ticks := int(f.accumulated / f.Interval)
	f.accumulated -= time.Duration(ticks) * f.Interval

	if f.MaxCatchUp > 0 && ticks > f.MaxCatchUp {
		ticks = f.MaxCatchUp
		f.accumulated = 0
	}
	return ticks
}

// Reset drops any accumulated time
func (f *FixedTimestep) Reset() {
	f.accumulated = 0
}
