// Package layout selects between the two presentation modes of the client
// based on terminal width. The selection is a pure function of width so the
// browsing and viewer logic stays layout-agnostic and testable without a
// rendering surface.
package layout

// Mode identifies which presentation the UI renders.
type Mode int

const (
	// ModeSplit shows the browse grid and the viewer pane side by side.
	ModeSplit Mode = iota
	// ModeCompact shows only the browse list; activating a media tile
	// opens it externally instead of entering the viewer.
	ModeCompact
)

// String returns the string representation of a layout mode.
func (m Mode) String() string {
	switch m {
	case ModeSplit:
		return "split"
	case ModeCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// DefaultBreakpoint is the terminal column count below which the UI falls
// back to the compact single-column layout.
const DefaultBreakpoint = 90

// Selector maps a viewport width to a layout Mode against a fixed
// breakpoint. Re-evaluate on every resize, not just at startup.
type Selector struct {
	breakpoint int
}

// NewSelector returns a Selector with the given column breakpoint.
// Non-positive values fall back to DefaultBreakpoint.
func NewSelector(breakpoint int) Selector {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return Selector{breakpoint: breakpoint}
}

// Select returns the layout mode for a terminal of the given width.
func (s Selector) Select(width int) Mode {
	if width < s.breakpoint {
		return ModeCompact
	}
	return ModeSplit
}
