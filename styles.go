package foldmenu

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	// Default palette - Tokyo Night inspired
	defaultSelectedColor   = lipgloss.Color("#7aa2f7") // Tokyo Night blue
	defaultUnselectedColor = lipgloss.Color("#414868") // Tokyo Night border
	defaultScrimColor      = lipgloss.Color("#565f89") // Tokyo Night comment
	defaultBackgroundColor = lipgloss.Color("#1a1b26") // Tokyo Night background
	textColor              = lipgloss.Color("#c0caf5") // Tokyo Night foreground
	dimColor               = lipgloss.Color("#565f89") // Tokyo Night comment

	// Base item style; per-item background is applied at render time from the
	// configured selected/unselected colors.
	itemStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1).
			PaddingRight(1)

	// The dismiss slot is visually quieter than real entries.
	dismissItemStyle = lipgloss.NewStyle().
				Foreground(dimColor).
				PaddingLeft(1).
				PaddingRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)
)
