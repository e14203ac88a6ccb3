package core

// DefaultInterval is the target time between automatic generations, in seconds.
const DefaultInterval = 1.0 / 15.0

// Interval accumulates frame time and fires at most once per Add. When it
// fires the accumulator restarts from zero, so a long frame never queues
// extra generations.
type Interval struct {
	step    float64
	elapsed float64
}

// NewInterval constructs an Interval firing every seconds.
func NewInterval(seconds float64) *Interval {
	i := &Interval{}
	i.SetStep(seconds)
	return i
}

// SetStep changes the firing period. Non-positive values select DefaultInterval.
func (i *Interval) SetStep(seconds float64) {
	if seconds <= 0 {
		seconds = DefaultInterval
	}
	i.step = seconds
}

// Step returns the firing period in seconds.
func (i *Interval) Step() float64 { return i.step }

// Elapsed returns the time accumulated since the last firing.
func (i *Interval) Elapsed() float64 { return i.elapsed }

// Reset discards accumulated time.
func (i *Interval) Reset() { i.elapsed = 0 }

// Add accumulates dt seconds and reports whether the period was reached.
func (i *Interval) Add(dt float64) bool {
	if dt > 0 {
		i.elapsed += dt
	}
	if i.elapsed >= i.step {
		i.elapsed = 0
		return true
	}
	return false
}
