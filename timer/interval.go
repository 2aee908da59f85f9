// Package timer provides clock-driven repeating schedules. Timers do not own
// goroutines: the owner advances them with the simulated delta each tick.
package timer

import "time"

// Interval fires once per period while running.
type Interval struct {
	period  time.Duration
	elapsed time.Duration
	running bool
}

func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Start (re)arms the interval from zero. Any schedule already in progress is
// cancelled first, so calling Start twice never yields two cadences.
func (i *Interval) Start() {
	i.elapsed = 0
	i.running = i.period > 0
}

// Stop cancels the schedule.
func (i *Interval) Stop() {
	i.elapsed = 0
	i.running = false
}

func (i *Interval) Running() bool {
	return i.running
}

func (i *Interval) Period() time.Duration {
	return i.period
}

// SetPeriod changes the period and restarts a running interval.
func (i *Interval) SetPeriod(d time.Duration) {
	i.period = d
	if i.running {
		i.Start()
	}
}

// Advance moves the interval forward by dt and returns how many periods
// completed.
func (i *Interval) Advance(dt time.Duration) int {
	if !i.running || dt <= 0 {
		return 0
	}
	i.elapsed += dt
	fired := int(i.elapsed / i.period)
	i.elapsed -= time.Duration(fired) * i.period
	return fired
}
