// Package stagger maps the timeline's global progress into independent
// per-item progress values, so menu items animate in sequence rather than
// all at once.
//
// For N items, item i owns the sub-range [i/N, (i+1)/N) of global progress.
// The intervals partition [0, 1] exactly. Within its interval an item's
// progress is rescaled to [0, 1], eased, and scaled to a rotation angle.
package stagger

import (
	"fmt"

	"foldmenu/timeline"
)

// MaxAngle is the rotation magnitude an item reaches at full local progress,
// in radians. 1.6 slightly overshoots a quarter turn, which gives the fold a
// snap-open feel.
const MaxAngle = 1.6

// Interval is one item's sub-range of global progress.
type Interval struct {
	Start float64
	End   float64
}

// Scheduler precomputes the per-item intervals for a fixed item count and
// derives rotation angles from global progress.
type Scheduler struct {
	n         int
	curve     timeline.Curve
	intervals []Interval
}

// NewScheduler creates a scheduler for n items easing through curve. A nil
// curve defaults to timeline.Linear. n must be at least 1.
func NewScheduler(n int, curve timeline.Curve) (*Scheduler, error) {
	if n < 1 {
		return nil, fmt.Errorf("stagger: item count must be at least 1, got %d", n)
	}
	if curve == nil {
		curve = timeline.Linear
	}
	s := &Scheduler{n: n, curve: curve}
	s.rebuild()
	return s, nil
}

func (s *Scheduler) rebuild() {
	s.intervals = make([]Interval, s.n)
	for i := 0; i < s.n; i++ {
		s.intervals[i] = Interval{
			Start: float64(i) / float64(s.n),
			End:   float64(i+1) / float64(s.n),
		}
	}
}

// Len returns the item count.
func (s *Scheduler) Len() int { return s.n }

// Intervals returns a copy of the per-item intervals.
func (s *Scheduler) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Resize recomputes the intervals for a new item count. Any in-flight
// animation is invalidated by the structural change; the caller is expected
// to cancel its run.
func (s *Scheduler) Resize(n int) error {
	if n < 1 {
		return fmt.Errorf("stagger: item count must be at least 1, got %d", n)
	}
	s.n = n
	s.rebuild()
	return nil
}

// Angle returns item i's rotation angle in [0, MaxAngle] for the given global
// progress. When mirrored is true (the driver is running in reverse), item i
// reads the angle computed for index n-1-i, so the item closest to the edge
// animates first in both directions.
func (s *Scheduler) Angle(i int, progress float64, mirrored bool) float64 {
	if i < 0 || i >= s.n {
		return 0
	}
	if mirrored {
		i = s.n - 1 - i
	}
	iv := s.intervals[i]
	local := (progress - iv.Start) / (iv.End - iv.Start)
	if local < 0 {
		local = 0
	} else if local > 1 {
		local = 1
	}
	return s.curve(local) * MaxAngle
}

// Angles returns the rotation angle of every item at the given global
// progress.
func (s *Scheduler) Angles(progress float64, mirrored bool) []float64 {
	out := make([]float64, s.n)
	for i := range out {
		out[i] = s.Angle(i, progress, mirrored)
	}
	return out
}
