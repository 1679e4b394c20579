package foldmenu

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"foldmenu/reveal"
	"foldmenu/timeline"
)

// DefaultDuration is the time a full open or close run takes.
const DefaultDuration = 800 * time.Millisecond

// Defaults for the geometry and timing knobs.
const (
	DefaultMenuWidth     = 24
	DefaultItemSize      = 3
	DefaultEdgeDragWidth = 2
	DefaultFrameRate     = 60
)

// Option configures a Menu at construction time.
type Option func(*Menu)

// WithPosition anchors the menu to the left or right screen edge. The anchor
// controls the item stack's column, the stagger pivot, and the reveal origin.
func WithPosition(p reveal.Position) Option {
	return func(m *Menu) { m.position = p }
}

// WithMenuWidth sets the rendered width of the item column, in cells.
func WithMenuWidth(width int) Option {
	return func(m *Menu) { m.menuWidth = width }
}

// WithItemSize sets the rendered height of one item, in rows. The reveal
// origin is derived from it.
func WithItemSize(size int) Option {
	return func(m *Menu) { m.itemSize = size }
}

// WithDuration sets how long a full open or close run takes.
func WithDuration(d time.Duration) Option {
	return func(m *Menu) { m.duration = d }
}

// WithCurve sets the easing curve applied to both the global progress and
// the per-item stagger remapping.
func WithCurve(c timeline.Curve) Option {
	return func(m *Menu) { m.curve = c }
}

// WithSelectedColor sets the background of the selected item.
func WithSelectedColor(c lipgloss.Color) Option {
	return func(m *Menu) { m.selectedColor = c }
}

// WithUnselectedColor sets the background of unselected items.
func WithUnselectedColor(c lipgloss.Color) Option {
	return func(m *Menu) { m.unselectedColor = c }
}

// WithScrimColor sets the dimming overlay color. The scrim fades toward the
// background as the close run advances.
func WithScrimColor(c lipgloss.Color) Option {
	return func(m *Menu) { m.scrimColor = c }
}

// WithTapOutsideToDismiss enables dismissing the menu by clicking the scrim.
func WithTapOutsideToDismiss(enabled bool) Option {
	return func(m *Menu) { m.tapOutsideToDismiss = enabled }
}

// WithEdgeDrag enables the edge-swipe re-open gesture and sets the width of
// the hit-testable strip at the menu's screen edge, in cells.
func WithEdgeDrag(enabled bool, width int) Option {
	return func(m *Menu) {
		m.edgeDrag = enabled
		if width > 0 {
			m.edgeDragWidth = width
		}
	}
}

// WithSelectedIndex sets the initially revealed view. Reveal mode only.
func WithSelectedIndex(index int) Option {
	return func(m *Menu) { m.initialIndex = index }
}

// WithFrameRate sets how many animation frames per second the menu schedules
// while a run is in flight.
func WithFrameRate(fps int) Option {
	return func(m *Menu) {
		if fps > 0 {
			m.frameRate = fps
		}
	}
}
