package foldmenu

// Selection tracks which content view is showing, which one it replaced, and
// whether the next run should skip the reveal animation.
//
// Slot numbering is offset by one: slot 0 in the rendered item list is a
// reserved dismiss/back affordance, so slot i (i > 0) maps to view index i-1.
// Callback consumers see the raw slot index, including 0 for dismissal.
type Selection struct {
	// Selected is the index of the currently revealed view.
	Selected int
	// Previous is the index of the view being wiped away.
	Previous int
	// Suppress is true only for the run immediately following a
	// close-without-reveal tap; the next real selection clears it.
	Suppress bool
}

// Tap applies a tap on the given slot and reports whether the selection
// changed. Slot 0 never touches the indices; it only marks the next run as
// suppressed. Any other slot records the prior selection and selects view
// slot-1.
func (s *Selection) Tap(slot int) bool {
	if slot == 0 {
		s.Suppress = true
		return false
	}
	s.Previous = s.Selected
	s.Selected = slot - 1
	s.Suppress = false
	return true
}
