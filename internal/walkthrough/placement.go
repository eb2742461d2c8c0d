package walkthrough

// DefaultTooltipWidth is the assumed tooltip width, in cells, used when an
// Engine is constructed without an explicit width.
//
// The tooltip's real width is not known before layout, so a fixed assumed
// width stands in for it during clamping and for the Center anchor's
// centering correction.
const DefaultTooltipWidth = 44

// Engine computes tooltip placements. It is stateless apart from its
// configuration and safe to copy.
type Engine struct {
	// TooltipWidth is the assumed tooltip width used for clamping and
	// center-anchor correction.
	TooltipWidth int
}

// NewEngine returns an Engine with the given assumed tooltip width.
// Non-positive widths fall back to DefaultTooltipWidth.
func NewEngine(tooltipWidth int) Engine {
	if tooltipWidth <= 0 {
		tooltipWidth = DefaultTooltipWidth
	}
	return Engine{TooltipWidth: tooltipWidth}
}

// Compute translates a step descriptor into an absolute tooltip placement.
//
// The computation starts from the target's top-left corner in document
// coordinates (viewport box origin plus scroll offset, so the tooltip tracks
// its target through scrolling), applies the step's anchor rules and user
// offsets, then clamps the result to the viewport: left to
// [0, viewport.Width-TooltipWidth], top to [0, viewport.Height]. Clamping
// silently overrides anchor math near viewport edges; a tooltip may overlap
// its target in extreme cases but never renders off-screen.
//
// Compute is pure: identical inputs always yield identical placements.
func (e Engine) Compute(step Step, target Box, viewport Viewport, scroll Offset) Placement {
	top := target.Top + scroll.Y
	left := target.Left + scroll.X

	switch step.VAnchor {
	case AnchorTop:
		top -= target.Height
	case AnchorBottom:
		top += target.Height
	default: // AnchorMiddle
		top += target.Height / 2
	}
	top += step.VOffset

	switch step.HAnchor {
	case AnchorLeft:
		left -= target.Width
	case AnchorRight:
		left += target.Width
	default: // AnchorCenter
		// Centering correction: shift by half the assumed tooltip width so
		// the tooltip body, not its left edge, sits on the target midpoint.
		left += target.Width/2 - e.TooltipWidth/2
	}
	left += step.HOffset

	return Placement{
		Top:  clamp(top, 0, viewport.Height),
		Left: clamp(left, 0, viewport.Width-e.TooltipWidth),
	}
}

// clamp forces v into [lo, hi]. When hi < lo (a viewport narrower than the
// assumed tooltip width), lo wins: the tooltip pins to the left/top edge.
func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
