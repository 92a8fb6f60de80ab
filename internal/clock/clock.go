// Package clock provides frame pacing helpers for hosts that drive the
// renderer themselves instead of relying on a toolkit's frame scheduler.
package clock

import (
	"fmt"
	"math"
	"time"
)

// Clock paces a loop to a target tick rate. Tick sleeps away whatever part
// of the tick interval is left and reports the real elapsed time, so
// callers can advance animation by wall-clock deltas even when a tick
// overruns its slot.
type Clock struct {
	lastTick time.Time
}

// New returns a clock whose first tick is measured from now.
func New() *Clock {
	return &Clock{lastTick: time.Now()}
}

// Tick waits until the next tick slot at the given rate and returns the
// time elapsed since the previous tick. It panics on a non-positive or
// non-finite rate.
func (c *Clock) Tick(ticksPerSecond float64) time.Duration {
	if ticksPerSecond <= 0 || math.IsInf(ticksPerSecond, 0) || math.IsNaN(ticksPerSecond) {
		panic(fmt.Sprintf("clock: invalid tick rate %v: must be finite and positive", ticksPerSecond))
	}

	interval := time.Duration(float64(time.Second) / ticksPerSecond)
	wakeup := c.lastTick.Add(interval)
	now := time.Now()
	if !wakeup.After(now) {
		delta := now.Sub(c.lastTick)
		c.lastTick = now
		return delta
	}

	time.Sleep(wakeup.Sub(now))
	afterSleep := time.Now()
	delta := afterSleep.Sub(c.lastTick)
	c.lastTick = afterSleep
	return delta
}

// RateTracker measures the mean rate of discrete events since the last
// reset, e.g. rendered frames per second.
type RateTracker struct {
	lastReset time.Time
	events    uint64
}

// NewRateTracker returns a tracker measuring from now.
func NewRateTracker() *RateTracker {
	return &RateTracker{lastReset: time.Now()}
}

// Event records one event.
func (t *RateTracker) Event() {
	t.events++
}

// Mean returns the events-per-second rate since the last reset.
func (t *RateTracker) Mean() float64 {
	return float64(t.events) / time.Since(t.lastReset).Seconds()
}

// Reset clears the event count and restarts the measurement window.
func (t *RateTracker) Reset() {
	t.lastReset = time.Now()
	t.events = 0
}

// ApproximateTimer counts how many times a fixed interval has elapsed
// given a stream of time deltas. It keeps the remainder, so intervals are
// not lost across updates even when deltas are irregular.
type ApproximateTimer struct {
	interval  time.Duration
	remaining time.Duration
}

// NewApproximateTimer returns a timer that fires every interval.
func NewApproximateTimer(interval time.Duration) *ApproximateTimer {
	return &ApproximateTimer{interval: interval, remaining: interval}
}

// Update consumes a time delta and returns the number of whole intervals
// that elapsed during it.
func (t *ApproximateTimer) Update(delta time.Duration) int {
	difference := t.remaining.Seconds() - delta.Seconds()
	interval := t.interval.Seconds()
	elapsed := math.Floor(difference / interval)
	t.remaining = time.Duration((difference - elapsed*interval) * float64(time.Second))
	if elapsed >= 0 {
		return 0
	}
	return int(-elapsed)
}
