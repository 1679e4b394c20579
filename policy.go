package foldmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"foldmenu/reveal"
	"foldmenu/timeline"
)

// TapItem applies a tap on the given slot. Slot 0 is the dismiss affordance:
// it collapses the items without a reveal and leaves the selection alone.
// Any other slot records the new selection and replays the stagger as a
// close cue, revealing the newly selected view along the way. The selection
// callback always fires with the raw slot index.
func (m *Menu) TapItem(slot int) tea.Cmd {
	if m.closed || slot < 0 || slot >= len(m.items) {
		return nil
	}
	m.selection.Tap(slot)
	m.driver.Start(timeline.Forward, 0, m.now())
	m.onSelected(slot)
	return m.frameCmd()
}

// TapScrim dismisses the menu from an outside tap. It is only active while
// the close run has not yet reached its end, and it never plays a reveal.
func (m *Menu) TapScrim() tea.Cmd {
	if m.closed || !m.tapOutsideToDismiss || m.driver.Progress() >= 1 {
		return nil
	}
	m.selection.Suppress = true
	m.driver.Start(timeline.Forward, 0, m.now())
	return m.frameCmd()
}

// ReleaseEdgeDrag applies the velocity policy for an edge-drag release. The
// gesture is only honored at the open extreme, and only when the velocity
// points away from the menu's edge: rightward for a left menu, leftward for
// a right menu. Any other sign is a no-op.
func (m *Menu) ReleaseEdgeDrag(velocity float64) tea.Cmd {
	if m.closed || !m.edgeDrag || !m.driver.IsCompleted() {
		return nil
	}
	opening := (m.position == reveal.PositionLeft && velocity > 0) ||
		(m.position == reveal.PositionRight && velocity < 0)
	if !opening {
		return nil
	}
	m.driver.Start(timeline.Reverse, 1, m.now())
	return m.frameCmd()
}

// ScrimColor interpolates the scrim from its configured color toward the
// background as progress advances 0→1. Terminals have no alpha channel, so
// "transparent" is a blend into the backdrop. Pure function of progress;
// non-hex colors are returned unchanged.
func ScrimColor(scrim, background lipgloss.Color, progress float64) lipgloss.Color {
	from, err := colorful.Hex(string(scrim))
	if err != nil {
		return scrim
	}
	to, err := colorful.Hex(string(background))
	if err != nil {
		return scrim
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	return lipgloss.Color(from.BlendRgb(to, progress).Hex())
}
