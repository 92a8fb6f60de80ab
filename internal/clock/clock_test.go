package clock

import (
	"testing"
	"time"
)

// TestApproximateTimerUpdate tests interval overrun counting with carried
// remainders.
func TestApproximateTimerUpdate(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		deltas   []time.Duration
		want     []int
	}{
		{
			name:     "no overrun",
			interval: time.Second,
			deltas:   []time.Duration{300 * time.Millisecond, 300 * time.Millisecond},
			want:     []int{0, 0},
		},
		{
			name:     "single overrun",
			interval: time.Second,
			deltas:   []time.Duration{600 * time.Millisecond, 600 * time.Millisecond},
			want:     []int{0, 1},
		},
		{
			name:     "multiple overruns in one delta",
			interval: time.Second,
			deltas:   []time.Duration{3500 * time.Millisecond},
			want:     []int{3},
		},
		{
			name:     "remainder carries across updates",
			interval: time.Second,
			deltas:   []time.Duration{1500 * time.Millisecond, 600 * time.Millisecond},
			want:     []int{1, 1},
		},
		{
			name:     "exact interval fires on the next update",
			interval: time.Second,
			deltas:   []time.Duration{time.Second, time.Second},
			want:     []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewApproximateTimer(tt.interval)
			for i, delta := range tt.deltas {
				if got := timer.Update(delta); got != tt.want[i] {
					t.Errorf("update %d: got %d overruns, want %d", i, got, tt.want[i])
				}
			}
		})
	}
}

// TestRateTracker tests event counting and reset.
func TestRateTracker(t *testing.T) {
	tracker := NewRateTracker()
	for i := 0; i < 10; i++ {
		tracker.Event()
	}
	time.Sleep(10 * time.Millisecond)
	if mean := tracker.Mean(); mean <= 0 {
		t.Errorf("Mean = %f, want > 0 after 10 events", mean)
	}

	tracker.Reset()
	time.Sleep(time.Millisecond)
	if mean := tracker.Mean(); mean != 0 {
		t.Errorf("Mean = %f after reset, want 0", mean)
	}
}

// TestClockTickReportsElapsed tests that Tick returns a positive delta no
// shorter than the tick interval when the loop is otherwise idle.
func TestClockTickReportsElapsed(t *testing.T) {
	c := New()
	delta := c.Tick(200)
	if delta <= 0 {
		t.Errorf("Tick returned non-positive delta %v", delta)
	}
	if delta < 4*time.Millisecond {
		t.Errorf("Tick returned %v, want at least the 5ms tick interval (minus scheduling slack)", delta)
	}
}

// TestClockTickPanicsOnInvalidRate tests the tick rate precondition.
func TestClockTickPanicsOnInvalidRate(t *testing.T) {
	rates := []float64{0, -1}
	for _, rate := range rates {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Tick(%v) did not panic", rate)
				}
			}()
			New().Tick(rate)
		}()
	}
}
