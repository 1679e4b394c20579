// Package timeline implements the progress driver behind the foldmenu animations.
//
// A Driver owns a single normalized progress value in [0, 1] that advances
// toward one end of the range over a configured duration. The driver handles:
//   - Forward runs toward 1.0 (items folding away) and reverse runs toward 0.0
//     (items fanning back to rest)
//   - Cancel-and-restart: a new Start discards the in-flight run, never queues
//   - Synchronous subscriber notification on every tick, in registration order
//   - Teardown via Stop, after which no subscriber is ever notified again
//
// The driver is clock-agnostic: callers feed it wall-clock times through Tick,
// which keeps it deterministic under test and lets the host schedule frames
// however it likes (foldmenu uses tea.Tick).
package timeline

import (
	"fmt"
	"time"
)

// Direction selects which end of the progress range a run advances toward.
type Direction int

const (
	// Forward advances progress toward 1.0.
	Forward Direction = iota
	// Reverse advances progress toward 0.0.
	Reverse
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Status describes what the driver is currently doing.
type Status int

const (
	// StatusIdle means no run has been started yet (or the last one was canceled).
	StatusIdle Status = iota
	// StatusForward means a run toward 1.0 is in flight.
	StatusForward
	// StatusReverse means a run toward 0.0 is in flight.
	StatusReverse
	// StatusCompleted means the last run reached its target.
	StatusCompleted
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// subscriber pairs a notification callback with the id used to cancel it.
type subscriber struct {
	id int
	fn func(progress float64)
}

// Driver advances a normalized progress value over time and publishes it to
// subscribers. It is not safe for concurrent use; all mutation is expected to
// come from the single-threaded event/tick pipeline that owns the menu.
type Driver struct {
	duration time.Duration
	curve    Curve

	status    Status
	direction Direction
	from      float64       // linear value the current run started at
	target    float64       // linear value the current run ends at
	runFor    time.Duration // wall time of the current run, scaled by distance
	startedAt time.Time

	linear   float64 // current raw linear value
	progress float64 // curve(linear), the value subscribers see

	nextID  int
	subs    []subscriber
	stopped bool
}

// NewDriver creates a driver that takes duration to traverse the full [0, 1]
// range, exposing progress through curve. A nil curve defaults to Linear.
// A duration of zero or less is invalid configuration.
func NewDriver(duration time.Duration, curve Curve) (*Driver, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("timeline: duration must be positive, got %v", duration)
	}
	if curve == nil {
		curve = Linear
	}
	return &Driver{
		duration: duration,
		curve:    curve,
		status:   StatusIdle,
	}, nil
}

// Start begins a run from the given linear value toward the direction's
// target. Any in-flight run is discarded; there is no queuing. The run takes
// a share of the configured duration proportional to the distance it covers,
// so a mid-range restart keeps the full-range speed. Subscribers are notified
// once with the starting value.
func (d *Driver) Start(direction Direction, from float64, now time.Time) {
	if d.stopped {
		return
	}
	d.direction = direction
	d.from = clamp01(from)
	if direction == Forward {
		d.target = 1.0
		d.status = StatusForward
	} else {
		d.target = 0.0
		d.status = StatusReverse
	}
	distance := d.target - d.from
	if distance < 0 {
		distance = -distance
	}
	d.runFor = time.Duration(float64(d.duration) * distance)
	d.startedAt = now
	d.linear = d.from
	d.progress = d.curve(d.linear)

	if d.runFor == 0 {
		// Already at the target; complete immediately.
		d.linear = d.target
		d.progress = d.curve(d.linear)
		d.status = StatusCompleted
	}
	d.notify()
}

// Tick advances the in-flight run to the given time and notifies subscribers.
// It is a no-op while the driver is idle, completed, or stopped.
func (d *Driver) Tick(now time.Time) {
	if d.stopped || (d.status != StatusForward && d.status != StatusReverse) {
		return
	}
	frac := float64(now.Sub(d.startedAt)) / float64(d.runFor)
	if frac >= 1 {
		d.linear = d.target
		d.status = StatusCompleted
	} else {
		if frac < 0 {
			frac = 0
		}
		d.linear = d.from + (d.target-d.from)*frac
	}
	d.progress = d.curve(d.linear)
	d.notify()
}

// Cancel abandons the in-flight run without moving progress or notifying
// subscribers. Used when a structural change invalidates the animation.
func (d *Driver) Cancel() {
	if d.status == StatusForward || d.status == StatusReverse {
		d.status = StatusIdle
	}
}

// Progress returns the current eased progress in [0, 1].
func (d *Driver) Progress() float64 { return d.progress }

// Status returns what the driver is currently doing.
func (d *Driver) Status() Status { return d.status }

// Direction returns the direction of the most recent run.
func (d *Driver) Direction() Direction { return d.direction }

// Running reports whether a run is in flight.
func (d *Driver) Running() bool {
	return d.status == StatusForward || d.status == StatusReverse
}

// IsCompleted reports whether the last run reached its target.
func (d *Driver) IsCompleted() bool { return d.status == StatusCompleted }

// Subscribe registers fn to be called synchronously with the eased progress
// on every tick. Subscribers run in registration order. The returned cancel
// function removes the subscription.
func (d *Driver) Subscribe(fn func(progress float64)) (cancel func()) {
	id := d.nextID
	d.nextID++
	d.subs = append(d.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Stop tears the driver down: the in-flight run is abandoned and all
// subscriptions are released. No subscriber is notified after Stop returns.
func (d *Driver) Stop() {
	d.stopped = true
	d.subs = nil
	if d.status == StatusForward || d.status == StatusReverse {
		d.status = StatusIdle
	}
}

func (d *Driver) notify() {
	for _, s := range d.subs {
		s.fn(d.progress)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
