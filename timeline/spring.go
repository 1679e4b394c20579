package timeline

import "github.com/charmbracelet/harmonica"

// Spring builds a curve from a damped harmonic oscillator. The spring is
// simulated once at fps steps from 0 toward 1 and the samples are replayed by
// normalized time, so the resulting Curve stays pure like every other curve.
// Underdamped springs overshoot 1.0 on the way in; the final sample is forced
// to 1.0 so a completed run always lands exactly on its target.
func Spring(fps int, frequency, damping float64) Curve {
	if fps < 1 {
		fps = 60
	}
	spring := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)

	samples := make([]float64, fps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= fps; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		samples[i] = pos
	}
	samples[fps] = 1.0

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Linear interpolation between the two nearest samples.
		scaled := t * float64(fps)
		i := int(scaled)
		frac := scaled - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
