package foldmenu

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"foldmenu/reveal"
)

// View implements tea.Model and renders the item column next to the content
// area. The column fakes the rotating-panel fold by narrowing each item to
// cos(angle) of the menu width, so a fully rotated item collapses to nothing.
func (m *Menu) View() string {
	m.dirty = false

	column := m.renderColumn()
	content := m.renderContent()

	if m.position == reveal.PositionRight {
		return lipgloss.JoinHorizontal(lipgloss.Top, content, column)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, column, content)
}

// renderColumn draws the item stack with the current stagger angles applied.
func (m *Menu) renderColumn() string {
	angles := m.Angles()

	var s strings.Builder
	for i, label := range m.items {
		angle := angles[i]
		visible := int(math.Round(math.Cos(angle) * float64(m.menuWidth)))
		if visible < 0 {
			visible = 0
		}

		style := m.itemStyleFor(i)
		line := m.renderItemLine(label, i, visible, style)

		// Each item occupies itemSize rows; the label sits on the middle one.
		for row := 0; row < m.itemSize; row++ {
			if row == m.itemSize/2 {
				s.WriteString(line)
			} else if visible > 0 {
				s.WriteString(style.Width(visible).Render(""))
			}
			s.WriteString("\n")
		}
	}
	// Help text
	s.WriteString("\n" + helpStyle.Render("↑/↓: navigate • enter: select"))

	return lipgloss.NewStyle().Width(m.menuWidth).Render(s.String())
}

func (m *Menu) itemStyleFor(slot int) lipgloss.Style {
	if slot == 0 {
		return dismissItemStyle
	}
	if slot-1 == m.selection.Selected {
		return itemStyle.Background(m.selectedColor)
	}
	return itemStyle.Background(m.unselectedColor)
}

func (m *Menu) renderItemLine(label string, slot, visible int, style lipgloss.Style) string {
	if visible <= 0 {
		return ""
	}
	marker := "  "
	if slot == m.cursor {
		marker = "❯ "
		style = style.Bold(true)
	}
	text := marker + label
	if len([]rune(text)) > visible {
		text = string([]rune(text)[:visible])
	}
	// Anchor the visible sliver at the menu's edge.
	if m.position == reveal.PositionRight {
		return style.Width(visible).Align(lipgloss.Right).Render(text)
	}
	return style.Width(visible).Render(text)
}

// renderContent draws the content area: the single builder in builder mode,
// or the previous/selected views composited through the reveal clip in
// reveal mode. The scrim tint is applied last, fading out as the close run
// advances.
func (m *Menu) renderContent() string {
	width := m.width - m.menuWidth
	if width < 0 {
		width = 0
	}
	height := m.height

	var content string
	switch md := m.mode.(type) {
	case builderMode:
		content = md.builder(width, height)
	case revealMode:
		next := md.views[m.selection.Selected](width, height)
		geom := m.Clip()
		if geom.RadiusScale >= reveal.FullCover {
			content = next
		} else {
			prev := md.views[m.selection.Previous](width, height)
			content = renderReveal(prev, next, geom, m.position, width, height)
		}
	}

	if m.tapOutsideToDismiss && m.driver.Progress() < 1 {
		tint := ScrimColor(m.scrimColor, defaultBackgroundColor, m.driver.Progress())
		content = lipgloss.NewStyle().Foreground(tint).Render(content)
	}
	return content
}

// renderReveal composites two plain-text views through a circular clip: cells
// inside the circle come from next, the rest from prev. The wipe works on
// the character grid, so styled (ANSI-escaped) view output is not supported
// on this path; style the surrounding chrome instead.
func renderReveal(prev, next string, geom reveal.Geometry, pos reveal.Position, width, height int) string {
	prevGrid := toGrid(prev, width, height)
	nextGrid := toGrid(next, width, height)

	// The clip center arrives in viewport coordinates; map its X onto the
	// content area, which hugs the menu's edge.
	centerX := 0.0
	if pos == reveal.PositionRight {
		centerX = float64(width)
	}
	centerY := geom.CenterY

	// At FullCover the circle must reach the farthest corner of the area.
	far := 0.0
	for _, cx := range []float64{0, float64(width)} {
		for _, cy := range []float64{0, float64(height)} {
			d := math.Hypot(cx-centerX, cy-centerY)
			if d > far {
				far = d
			}
		}
	}
	radius := geom.RadiusScale / reveal.FullCover * far

	var s strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if math.Hypot(float64(x)-centerX, float64(y)-centerY) <= radius {
				s.WriteRune(nextGrid[y][x])
			} else {
				s.WriteRune(prevGrid[y][x])
			}
		}
		if y < height-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

// toGrid splits a view into a rune grid padded to exactly width x height.
func toGrid(view string, width, height int) [][]rune {
	lines := strings.Split(view, "\n")
	grid := make([][]rune, height)
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		var src []rune
		if y < len(lines) {
			src = []rune(lines[y])
		}
		for x := 0; x < width; x++ {
			if x < len(src) {
				row[x] = src[x]
			} else {
				row[x] = ' '
			}
		}
		grid[y] = row
	}
	return grid
}
