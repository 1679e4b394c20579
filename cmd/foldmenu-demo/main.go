// Package main demonstrates the foldmenu component with a small system
// dashboard: the menu switches between CPU, memory, and disk views, each
// revealed with the circular wipe.
//
// Run it in a terminal with mouse support; items respond to clicks, the
// content area acts as a dismissal scrim, and a drag from the left edge
// re-opens the menu once it has folded shut.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"foldmenu"
	"foldmenu/timeline"
)

// app wraps the menu so the demo owns program-level concerns (quitting)
// while the component owns the animation.
type app struct {
	menu *foldmenu.Menu
}

func (a app) Init() tea.Cmd {
	return a.menu.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			a.menu.Close()
			return a, tea.Quit
		}
	}
	_, cmd := a.menu.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.menu.View()
}

// cpuView renders per-core load bars.
func cpuView(width, height int) string {
	var s strings.Builder
	s.WriteString("CPU load\n\n")

	percents, err := cpu.Percent(0, true)
	if err != nil {
		s.WriteString(fmt.Sprintf("unavailable: %v\n", err))
		return s.String()
	}

	barWidth := width - 16
	if barWidth < 10 {
		barWidth = 10
	}
	for i, p := range percents {
		filled := int(p / 100 * float64(barWidth))
		if filled < 0 {
			filled = 0
		} else if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		s.WriteString(fmt.Sprintf("core %2d [%s] %5.1f%%\n", i, bar, p))
	}
	return s.String()
}

// memView renders virtual memory usage.
func memView(width, height int) string {
	var s strings.Builder
	s.WriteString("Memory\n\n")

	vm, err := mem.VirtualMemory()
	if err != nil {
		s.WriteString(fmt.Sprintf("unavailable: %v\n", err))
		return s.String()
	}

	s.WriteString(fmt.Sprintf("total     %s\n", formatBytes(vm.Total)))
	s.WriteString(fmt.Sprintf("used      %s (%.1f%%)\n", formatBytes(vm.Used), vm.UsedPercent))
	s.WriteString(fmt.Sprintf("available %s\n", formatBytes(vm.Available)))
	s.WriteString(fmt.Sprintf("cached    %s\n", formatBytes(vm.Cached)))
	return s.String()
}

// diskView renders usage for each mounted partition.
func diskView(width, height int) string {
	var s strings.Builder
	s.WriteString("Disks\n\n")

	parts, err := disk.Partitions(false)
	if err != nil {
		s.WriteString(fmt.Sprintf("unavailable: %v\n", err))
		return s.String()
	}

	for _, part := range parts {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			continue
		}
		s.WriteString(fmt.Sprintf("%-20s %s / %s (%.1f%%)\n",
			part.Mountpoint, formatBytes(usage.Used), formatBytes(usage.Total), usage.UsedPercent))
	}
	return s.String()
}

// formatBytes renders a byte count in human-readable units.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

func main() {
	menu, err := foldmenu.NewWithViews(
		[]string{"✕ Close", "🖥 CPU", "🧠 Memory", "💾 Disks"},
		func(slot int) {},
		[]foldmenu.ViewBuilder{cpuView, memView, diskView},
		foldmenu.WithDuration(600*time.Millisecond),
		foldmenu.WithCurve(timeline.EaseInOut),
		foldmenu.WithTapOutsideToDismiss(true),
		foldmenu.WithEdgeDrag(true, 2),
	)
	if err != nil {
		fmt.Printf("❌ Failed to build menu: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app{menu: menu}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("❌ Error running program: %v\n", err)
		os.Exit(1)
	}
}
