package timeline

// Curve maps a linear animation fraction in [0, 1] to an eased fraction.
// The same curve shapes both the driver's top-level progress and the
// per-item remapping done by the stagger scheduler.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseIn starts slow and accelerates.
func EaseIn(t float64) float64 { return t * t }

// EaseOut starts fast and decelerates.
func EaseOut(t float64) float64 { return t * (2 - t) }

// EaseInOut accelerates through the first half and decelerates through the
// second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutBack decelerates with a slight overshoot past 1.0 before settling,
// which reads as a snap into place.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
