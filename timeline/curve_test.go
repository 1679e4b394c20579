package timeline

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
	}{
		{"Linear", Linear},
		{"EaseIn", EaseIn},
		{"EaseOut", EaseOut},
		{"EaseInOut", EaseInOut},
		{"EaseOutBack", EaseOutBack},
		{"Spring", Spring(60, 6.0, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.curve(0); math.Abs(got) > 1e-9 {
				t.Errorf("Expected curve(0) == 0, got %v", got)
			}
			if got := tt.curve(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("Expected curve(1) == 1, got %v", got)
			}
		})
	}
}

func TestEaseInOutMidpoint(t *testing.T) {
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected EaseInOut(0.5) == 0.5, got %v", got)
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if Linear(v) != v {
			t.Errorf("Expected Linear(%v) == %v, got %v", v, v, Linear(v))
		}
	}
}

func TestSpringIsPure(t *testing.T) {
	curve := Spring(60, 6.0, 0.5)
	for _, v := range []float64{0.1, 0.33, 0.7, 0.99} {
		first := curve(v)
		second := curve(v)
		if first != second {
			t.Errorf("Expected identical outputs for t=%v, got %v then %v", v, first, second)
		}
	}
}

func TestSpringClampsOutOfRangeInput(t *testing.T) {
	curve := Spring(30, 5.0, 1.0)
	if got := curve(-0.5); got != 0 {
		t.Errorf("Expected 0 for t<0, got %v", got)
	}
	if got := curve(1.5); got != 1 {
		t.Errorf("Expected 1 for t>1, got %v", got)
	}
}
