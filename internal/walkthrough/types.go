package walkthrough

// VerticalAnchor selects where the tooltip sits relative to the target's
// vertical extent. The zero value is AnchorMiddle.
type VerticalAnchor int

const (
	// AnchorMiddle places the tooltip at the target's vertical midpoint.
	AnchorMiddle VerticalAnchor = iota
	// AnchorTop places the tooltip one target-height above the target's top edge.
	AnchorTop
	// AnchorBottom places the tooltip one target-height below the target's top edge.
	AnchorBottom
)

// String returns a human-readable name for a vertical anchor.
func (a VerticalAnchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	case AnchorMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// HorizontalAnchor selects where the tooltip sits relative to the target's
// horizontal extent. The zero value is AnchorCenter.
type HorizontalAnchor int

const (
	// AnchorCenter centers the tooltip on the target's horizontal midpoint.
	AnchorCenter HorizontalAnchor = iota
	// AnchorLeft places the tooltip one target-width left of the target's left edge.
	AnchorLeft
	// AnchorRight places the tooltip one target-width right of the target's left edge.
	AnchorRight
)

// String returns a human-readable name for a horizontal anchor.
func (a HorizontalAnchor) String() string {
	switch a {
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	case AnchorCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Step is one unit of a walkthrough: the target it is anchored to, the text
// to display, and the anchor/offset/style data that position the tooltip.
// Steps are immutable once supplied; a step's identity is its position in
// the sequence. Target ids need not be unique across steps, only resolvable
// to exactly one region at render time.
type Step struct {
	// TargetID identifies the on-screen region the step is anchored to.
	TargetID string
	// Text is the annotation displayed in the tooltip.
	Text string
	// VAnchor is the vertical anchor rule (default AnchorMiddle).
	VAnchor VerticalAnchor
	// HAnchor is the horizontal anchor rule (default AnchorCenter).
	HAnchor HorizontalAnchor
	// VOffset is added to the computed top coordinate, pre-clamp.
	VOffset int
	// HOffset is added to the computed left coordinate, pre-clamp.
	HOffset int
	// Style optionally overrides parts of the default tooltip style.
	// Nil means the default style is used unchanged.
	Style *StyleOverride
}

// Sequence is an ordered, immutable list of steps. It is supplied once when
// a walkthrough is constructed and never mutated during a run.
type Sequence []Step

// Box is an axis-aligned bounding box in viewport coordinates (cells).
type Box struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Viewport holds the current viewport dimensions in cells.
type Viewport struct {
	Width  int
	Height int
}

// Offset holds document scroll offsets: how far the visible viewport has
// scrolled from the document origin.
type Offset struct {
	X int
	Y int
}

// Placement is the computed absolute tooltip position in document
// coordinates. It is derived state: recomputed on every step change and
// resize notification, never persisted.
type Placement struct {
	Top  int
	Left int
}

// View is the read-only snapshot exposed to descendant presentational code.
// It carries only the active index and the step list; navigation operations
// stay controller-internal.
type View struct {
	// ActiveIndex is the position of the currently displayed step, or
	// InactiveIndex when no step is displayed.
	ActiveIndex int
	// Steps is the full step sequence.
	Steps Sequence
}

// Active reports whether a step is currently displayed.
func (v View) Active() bool {
	return v.ActiveIndex != InactiveIndex
}

// ActiveStep returns the currently displayed step, if any.
func (v View) ActiveStep() (Step, bool) {
	if v.ActiveIndex < 0 || v.ActiveIndex >= len(v.Steps) {
		return Step{}, false
	}
	return v.Steps[v.ActiveIndex], true
}
