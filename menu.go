// Package foldmenu implements an animated lateral navigation menu for Bubble
// Tea programs.
//
// The menu renders a stack of selectable items anchored to one screen edge.
// Items fan in and out with a staggered rotating-panel animation, and in
// reveal mode a selection change wipes the new content view over the old one
// with a circular reveal. The package handles:
//   - Frame scheduling through tea.Tick while the timeline driver runs
//   - Mouse input: item taps, scrim taps, and edge-drag release velocity
//   - Keyboard navigation with wrap-around, in the usual TUI style
//   - The selection state machine, including the reserved dismiss slot 0
//
// The animation engine itself lives in the timeline, stagger, and reveal
// subpackages and has no Bubble Tea dependency.
package foldmenu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"foldmenu/reveal"
	"foldmenu/stagger"
	"foldmenu/timeline"
)

// ViewBuilder produces the content for one view at the given size.
type ViewBuilder func(width, height int) string

// mode is the tagged union over the two mutually exclusive rendering modes.
type mode interface{ isMode() }

// revealMode renders one of several content views, wiping between them with
// the circular reveal when the selection changes.
type revealMode struct {
	views []ViewBuilder
}

// builderMode renders a single content builder with no reveal transition.
type builderMode struct {
	builder ViewBuilder
}

func (revealMode) isMode()  {}
func (builderMode) isMode() {}

// Menu is the component. It implements tea.Model; run it inside a host
// program with mouse cell motion enabled so drag gestures are delivered.
type Menu struct {
	items      []string
	onSelected func(slot int)
	mode       mode

	// Geometry and timing knobs
	position  reveal.Position
	menuWidth int
	itemSize  int
	duration  time.Duration
	curve     timeline.Curve
	frameRate int

	// Presentation knobs
	selectedColor       lipgloss.Color
	unselectedColor     lipgloss.Color
	scrimColor          lipgloss.Color
	tapOutsideToDismiss bool
	edgeDrag            bool
	edgeDragWidth       int
	initialIndex        int

	// Animation engine, exclusively owned by this instance
	driver    *timeline.Driver
	scheduler *stagger.Scheduler
	selection Selection

	keys   keyMap
	cursor int
	width  int
	height int

	lastClip reveal.Geometry
	dirty    bool

	drag   *dragState
	closed bool

	// now is the clock used when issuing driver commands; injectable so the
	// state machine is deterministic under test.
	now func() time.Time
}

// dragState tracks an in-flight edge drag between press and release.
type dragState struct {
	lastX    int
	lastAt   time.Time
	velocity float64 // cells per second, positive rightward
}

// NewWithViews creates a menu in reveal mode: selecting slot i (i > 0) wipes
// views[i-1] over the previous view. items must have exactly one more entry
// than views, with items[0] acting as the dismiss affordance.
func NewWithViews(items []string, onSelected func(slot int), views []ViewBuilder, opts ...Option) (*Menu, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("foldmenu: reveal mode requires at least one view")
	}
	if len(views) != len(items)-1 {
		return nil, fmt.Errorf("foldmenu: got %d views for %d items; slot 0 is reserved for dismissal, so views must number one less than items", len(views), len(items))
	}
	for i, v := range views {
		if v == nil {
			return nil, fmt.Errorf("foldmenu: view %d is nil", i)
		}
	}
	m, err := newMenu(items, onSelected, revealMode{views: views}, opts)
	if err != nil {
		return nil, err
	}
	if m.initialIndex < 0 || m.initialIndex >= len(views) {
		return nil, fmt.Errorf("foldmenu: initial selected index %d out of range for %d views", m.initialIndex, len(views))
	}
	m.selection = Selection{Selected: m.initialIndex, Previous: m.initialIndex}
	return m, nil
}

// NewWithBuilder creates a menu in builder mode: a single content builder is
// rendered with no reveal transition. The selection callback still fires
// with the tapped slot index.
func NewWithBuilder(items []string, onSelected func(slot int), builder ViewBuilder, opts ...Option) (*Menu, error) {
	if builder == nil {
		return nil, fmt.Errorf("foldmenu: builder mode requires a builder")
	}
	return newMenu(items, onSelected, builderMode{builder: builder}, opts)
}

func newMenu(items []string, onSelected func(slot int), md mode, opts []Option) (*Menu, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("foldmenu: items must not be empty")
	}
	if onSelected == nil {
		return nil, fmt.Errorf("foldmenu: selection callback must not be nil")
	}

	m := &Menu{
		items:           items,
		onSelected:      onSelected,
		mode:            md,
		position:        reveal.PositionLeft,
		menuWidth:       DefaultMenuWidth,
		itemSize:        DefaultItemSize,
		duration:        DefaultDuration,
		curve:           timeline.Linear,
		frameRate:       DefaultFrameRate,
		selectedColor:   defaultSelectedColor,
		unselectedColor: defaultUnselectedColor,
		scrimColor:      defaultScrimColor,
		edgeDragWidth:   DefaultEdgeDragWidth,
		keys:            defaultKeyMap(),
		width:           100,
		height:          30,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	driver, err := timeline.NewDriver(m.duration, m.curve)
	if err != nil {
		return nil, err
	}
	scheduler, err := stagger.NewScheduler(len(items), m.curve)
	if err != nil {
		return nil, err
	}
	m.driver = driver
	m.scheduler = scheduler
	m.driver.Subscribe(m.onProgress)
	m.lastClip = m.Clip()
	return m, nil
}

// Init implements tea.Model. No initial commands are needed; the menu starts
// at rest.
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model and routes window, frame, key, and mouse
// messages.
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		if m.closed {
			return m, nil
		}
		m.driver.Tick(time.Time(msg))
		if m.driver.Running() {
			return m, m.frameCmd()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.items) - 1 // Wrap to bottom
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			} else {
				m.cursor = 0 // Wrap to top
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m, m.TapItem(m.cursor)
		case key.Matches(msg, m.keys.Dismiss):
			return m, m.TapScrim()
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

// handleMouse maps raw mouse events onto the interaction policy: item taps,
// scrim taps, and the press/motion/release lifecycle of an edge drag.
func (m *Menu) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.closed {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		// The edge strip is only hit-testable at the open extreme, so a drag
		// can never fight a run already in flight.
		if m.edgeDrag && m.driver.IsCompleted() && m.inEdgeStrip(msg.X) {
			m.drag = &dragState{lastX: msg.X, lastAt: m.now()}
			return nil
		}
		if m.inMenuColumn(msg.X) {
			slot := msg.Y / m.itemSize
			if slot >= 0 && slot < len(m.items) {
				m.cursor = slot
				return m.TapItem(slot)
			}
			return nil
		}
		return m.TapScrim()

	case tea.MouseActionMotion:
		if m.drag != nil {
			now := m.now()
			if dt := now.Sub(m.drag.lastAt).Seconds(); dt > 0 {
				m.drag.velocity = float64(msg.X-m.drag.lastX) / dt
			}
			m.drag.lastX = msg.X
			m.drag.lastAt = now
		}

	case tea.MouseActionRelease:
		if m.drag != nil {
			velocity := m.drag.velocity
			m.drag = nil
			return m.ReleaseEdgeDrag(velocity)
		}
	}

	return nil
}

// inMenuColumn reports whether column x falls inside the item stack.
func (m *Menu) inMenuColumn(x int) bool {
	if m.position == reveal.PositionRight {
		return x >= m.width-m.menuWidth
	}
	return x < m.menuWidth
}

// inEdgeStrip reports whether column x falls inside the edge-drag strip.
func (m *Menu) inEdgeStrip(x int) bool {
	if m.position == reveal.PositionRight {
		return x >= m.width-m.edgeDragWidth
	}
	return x < m.edgeDragWidth
}

// onProgress is the driver subscription. It re-derives the clip geometry and
// flags a redraw only when the geometry actually changed.
func (m *Menu) onProgress(float64) {
	clip := m.Clip()
	if !clip.Equal(m.lastClip) {
		m.lastClip = clip
		m.dirty = true
	}
}

// Clip derives the current reveal geometry from the driver and selection
// state. It is re-derived every frame and never cached across mutations.
func (m *Menu) Clip() reveal.Geometry {
	return reveal.Clip(reveal.Params{
		Progress:          m.driver.Progress(),
		Status:            m.driver.Status(),
		SelectedIndex:     m.selection.Selected,
		PreviousIndex:     m.selection.Previous,
		SuppressAnimation: m.selection.Suppress,
		ItemSize:          float64(m.itemSize),
		ViewportWidth:     float64(m.width),
		Position:          m.position,
	})
}

// Angles returns every item's current rotation angle. While the driver runs
// in reverse the stagger order is mirrored, so the item nearest the edge
// always animates first.
func (m *Menu) Angles() []float64 {
	return m.scheduler.Angles(m.driver.Progress(), m.driver.Status() == timeline.StatusReverse)
}

// RedrawNeeded reports whether the clip geometry changed since the last
// View. Ticks that leave the geometry untouched (a pinned reveal, for
// instance) never flag a redraw.
func (m *Menu) RedrawNeeded() bool {
	return m.dirty
}

// Selection returns a copy of the selection state.
func (m *Menu) Selection() Selection {
	return m.selection
}

// Driver exposes the timeline driver, primarily so hosts can subscribe their
// own per-tick derivations.
func (m *Menu) Driver() *timeline.Driver {
	return m.driver
}

// SetItems replaces the item list and rebuilds the stagger intervals. The
// structural change invalidates any in-flight run, which is canceled rather
// than left running against stale intervals.
func (m *Menu) SetItems(items []string) error {
	if len(items) == 0 {
		return fmt.Errorf("foldmenu: items must not be empty")
	}
	if rm, ok := m.mode.(revealMode); ok && len(items)-1 != len(rm.views) {
		return fmt.Errorf("foldmenu: got %d items for %d views", len(items), len(rm.views))
	}
	if err := m.scheduler.Resize(len(items)); err != nil {
		return err
	}
	m.items = items
	m.driver.Cancel()
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	return nil
}

// Close tears the menu down: the driver stops and releases its
// subscriptions, so no further stagger or clip notifications can reach a
// disposed host. Call it when the component unmounts.
func (m *Menu) Close() {
	m.closed = true
	m.driver.Stop()
}

// frameCmd schedules the next animation frame.
func (m *Menu) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
