package timeline

import (
	"testing"
	"time"
)

func TestNewDriverValidation(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		wantErr  bool
	}{
		{"Positive duration", 800 * time.Millisecond, false},
		{"Zero duration", 0, true},
		{"Negative duration", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDriver(tt.duration, Linear)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestForwardRunProgress(t *testing.T) {
	d, err := NewDriver(800*time.Millisecond, Linear)
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	t0 := time.Unix(0, 0)
	d.Start(Forward, 0, t0)
	if d.Status() != StatusForward {
		t.Errorf("Expected status forward, got %v", d.Status())
	}

	d.Tick(t0.Add(400 * time.Millisecond))
	if d.Progress() != 0.5 {
		t.Errorf("Expected progress 0.5 at half duration, got %v", d.Progress())
	}

	d.Tick(t0.Add(800 * time.Millisecond))
	if d.Progress() != 1.0 {
		t.Errorf("Expected progress 1.0 at full duration, got %v", d.Progress())
	}
	if !d.IsCompleted() {
		t.Errorf("Expected completed driver after full duration")
	}
}

func TestReverseRunProgress(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)
	t0 := time.Unix(10, 0)

	d.Start(Reverse, 1.0, t0)
	if d.Status() != StatusReverse {
		t.Errorf("Expected status reverse, got %v", d.Status())
	}

	d.Tick(t0.Add(250 * time.Millisecond))
	if d.Progress() != 0.75 {
		t.Errorf("Expected progress 0.75, got %v", d.Progress())
	}

	d.Tick(t0.Add(2 * time.Second))
	if d.Progress() != 0 {
		t.Errorf("Expected progress 0 after overshoot tick, got %v", d.Progress())
	}
	if !d.IsCompleted() {
		t.Errorf("Expected completed driver")
	}
}

func TestProportionalRunDuration(t *testing.T) {
	// A run covering half the range should finish in half the duration.
	d, _ := NewDriver(time.Second, Linear)
	t0 := time.Unix(0, 0)

	d.Start(Forward, 0.5, t0)
	d.Tick(t0.Add(499 * time.Millisecond))
	if d.IsCompleted() {
		t.Errorf("Expected run still in flight just before the scaled duration")
	}
	d.Tick(t0.Add(500 * time.Millisecond))
	if !d.IsCompleted() {
		t.Errorf("Expected run completed at the scaled duration")
	}
}

func TestStartCancelsInFlightRun(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)
	t0 := time.Unix(0, 0)

	d.Start(Forward, 0, t0)
	d.Tick(t0.Add(600 * time.Millisecond))
	if d.Progress() != 0.6 {
		t.Fatalf("Expected progress 0.6 mid-run, got %v", d.Progress())
	}

	// Last command wins: restart from 0 discards the old run's timing.
	t1 := t0.Add(700 * time.Millisecond)
	d.Start(Forward, 0, t1)
	if d.Progress() != 0 {
		t.Errorf("Expected progress reset to 0 on restart, got %v", d.Progress())
	}
	d.Tick(t1.Add(500 * time.Millisecond))
	if d.Progress() != 0.5 {
		t.Errorf("Expected progress 0.5 relative to restart, got %v", d.Progress())
	}
}

func TestStartAtTargetCompletesImmediately(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)
	d.Start(Reverse, 0, time.Unix(0, 0))
	if !d.IsCompleted() {
		t.Errorf("Expected immediate completion when starting at the target")
	}
}

func TestCurveShapesExposedProgress(t *testing.T) {
	d, _ := NewDriver(time.Second, EaseIn)
	t0 := time.Unix(0, 0)
	d.Start(Forward, 0, t0)
	d.Tick(t0.Add(500 * time.Millisecond))
	if d.Progress() != 0.25 {
		t.Errorf("Expected eased progress 0.25 at linear 0.5, got %v", d.Progress())
	}
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)

	var order []string
	d.Subscribe(func(float64) { order = append(order, "first") })
	d.Subscribe(func(float64) { order = append(order, "second") })

	t0 := time.Unix(0, 0)
	d.Start(Forward, 0, t0)
	d.Tick(t0.Add(100 * time.Millisecond))

	want := []string{"first", "second", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected notification %d to be %q, got %q", i, want[i], order[i])
		}
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)

	count := 0
	cancel := d.Subscribe(func(float64) { count++ })

	t0 := time.Unix(0, 0)
	d.Start(Forward, 0, t0)
	cancel()
	d.Tick(t0.Add(100 * time.Millisecond))

	if count != 1 {
		t.Errorf("Expected only the Start notification before cancel, got %d", count)
	}
}

func TestStopSilencesDriver(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)

	count := 0
	d.Subscribe(func(float64) { count++ })

	t0 := time.Unix(0, 0)
	d.Start(Forward, 0, t0)
	d.Tick(t0.Add(100 * time.Millisecond))
	seen := count

	d.Stop()
	d.Tick(t0.Add(200 * time.Millisecond))
	d.Start(Forward, 0, t0.Add(300*time.Millisecond))
	d.Tick(t0.Add(400 * time.Millisecond))

	if count != seen {
		t.Errorf("Expected zero notifications after Stop, got %d more", count-seen)
	}
	if d.Running() {
		t.Errorf("Expected stopped driver not to be running")
	}
}

func TestCancelAbandonsRunQuietly(t *testing.T) {
	d, _ := NewDriver(time.Second, Linear)

	count := 0
	d.Subscribe(func(float64) { count++ })

	t0 := time.Unix(0, 0)
	d.Start(Forward, 0, t0)
	d.Tick(t0.Add(300 * time.Millisecond))
	seen := count

	d.Cancel()
	if d.Status() != StatusIdle {
		t.Errorf("Expected idle status after Cancel, got %v", d.Status())
	}
	d.Tick(t0.Add(400 * time.Millisecond))
	if count != seen {
		t.Errorf("Expected no notifications after Cancel")
	}
	if d.Progress() != 0.3 {
		t.Errorf("Expected progress held at 0.3 after Cancel, got %v", d.Progress())
	}
}
