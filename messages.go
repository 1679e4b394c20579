package foldmenu

import "time"

// frameMsg carries the wall-clock time of one animation frame. The menu
// reschedules it via tea.Tick for as long as the timeline driver is running.
type frameMsg time.Time
