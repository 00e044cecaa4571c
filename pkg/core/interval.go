package core

import "github.com/chewxy/math32"

// Interval is a closed range of ray parameters or coordinates.
// Min exceeds Max only for EmptyInterval.
type Interval struct {
	Min, Max float32
}

var (
	// EmptyInterval contains nothing and is the identity for MergeIntervals
	EmptyInterval = Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}

	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// MergeIntervals returns the tightest interval enclosing both a and b
func MergeIntervals(a, b Interval) Interval {
	return Interval{Min: min(a.Min, b.Min), Max: max(a.Max, b.Max)}
}

// Size returns the width of the interval
func (i Interval) Size() float32 {
	return math32.Abs(i.Max - i.Min)
}

// Contains reports whether x lies in [Min, Max]
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Expand widens the interval by delta, half on each side
func (i Interval) Expand(delta float32) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
