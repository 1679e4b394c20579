// Package reveal computes the circular clip geometry used to wipe the newly
// selected content view over the previous one.
//
// Clip is a pure function: identical inputs yield identical geometry, which
// is what lets the host skip redraws when nothing changed. The calculator
// holds no state; geometry is re-derived every frame and never persisted.
package reveal

import "foldmenu/timeline"

// FullCover is the radius scale at which the reveal covers the whole
// viewport. The clip is pinned here whenever no reveal is animating.
const FullCover = 3.0

// Position is the screen edge the menu is anchored to. It controls where the
// reveal originates on the X axis.
type Position int

const (
	PositionLeft Position = iota
	PositionRight
)

// String returns a human-readable position name.
func (p Position) String() string {
	if p == PositionRight {
		return "right"
	}
	return "left"
}

// Params are the inputs the clip is derived from each frame.
type Params struct {
	// Progress is the driver's eased global progress.
	Progress float64
	// Status is the driver's current status.
	Status timeline.Status
	// SelectedIndex and PreviousIndex are view indices from the selection
	// state machine.
	SelectedIndex int
	PreviousIndex int
	// SuppressAnimation pins the clip open for close-without-reveal runs.
	SuppressAnimation bool
	// ItemSize is the rendered height of one menu item; the reveal originates
	// at the tapped item's vertical center.
	ItemSize float64
	// ViewportWidth is the full width of the viewport, used as the reveal
	// origin when the menu sits on the right edge.
	ViewportWidth float64
	// Position is the menu's anchor edge.
	Position Position
}

// Geometry is the circular clip for one frame: a center point plus the
// radius expressed as a scale in [0, FullCover].
type Geometry struct {
	CenterX     float64
	CenterY     float64
	RadiusScale float64
}

// Equal reports whether two geometries are identical. Clip recomputation
// only signals a redraw when the geometry actually changed.
func (g Geometry) Equal(o Geometry) bool { return g == o }

// Clip derives the reveal geometry from the current frame's inputs.
//
// The radius animates with progress only while a selection-triggered forward
// run is in flight, the selection actually changed, and the run is not
// suppressed. In every other case (initial render, dismiss taps, reverse
// runs) it is pinned at FullCover so the selected view shows without a wipe.
func Clip(p Params) Geometry {
	g := Geometry{
		CenterY:     p.ItemSize*float64(p.SelectedIndex) + p.ItemSize/2,
		RadiusScale: FullCover,
	}
	if p.Position == PositionRight {
		g.CenterX = p.ViewportWidth
	}
	if p.Status == timeline.StatusForward && p.SelectedIndex != p.PreviousIndex && !p.SuppressAnimation {
		g.RadiusScale = FullCover * clamp01(p.Progress)
	}
	return g
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
