// Package game runs the interactive cave explorer.
package game

// ViewMode selects how the current grid is drawn.
type ViewMode int

const (
	// ViewFramed shows the current grid with each neighbor's touching edge.
	ViewFramed ViewMode = iota
	// ViewPlain shows the current grid alone.
	ViewPlain
)

// String returns a human-readable mode name.
func (v ViewMode) String() string {
	switch v {
	case ViewFramed:
		return "framed"
	case ViewPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewFramed {
		return ViewPlain
	}
	return ViewFramed
}
