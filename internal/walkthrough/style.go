package walkthrough

// TooltipStyle describes the presentational attributes of the tooltip that
// the core needs to merge. It is deliberately renderer-agnostic: the host
// maps it onto its own styling system.
type TooltipStyle struct {
	// Foreground is the text color (hex or renderer-specific name).
	Foreground string
	// Background is the fill color.
	Background string
	// BorderColor is the border color.
	BorderColor string
	// Bold renders the tooltip text bold.
	Bold bool
	// Padding is the inner padding in cells.
	Padding int
	// Width is the rendered tooltip width in cells.
	Width int
}

// StyleOverride is a partial TooltipStyle. Nil fields mean "keep the base
// value"; non-nil fields take precedence.
type StyleOverride struct {
	Foreground  *string
	Background  *string
	BorderColor *string
	Bold        *bool
	Padding     *int
	Width       *int
}

// MergeStyle shallow-merges an override over a base style: every field set
// on the override replaces the base field, every unset field retains the
// base value. Nested values are not merged recursively because TooltipStyle
// has no nested structure; the merge is and stays shallow.
func MergeStyle(base TooltipStyle, override *StyleOverride) TooltipStyle {
	if override == nil {
		return base
	}
	merged := base
	if override.Foreground != nil {
		merged.Foreground = *override.Foreground
	}
	if override.Background != nil {
		merged.Background = *override.Background
	}
	if override.BorderColor != nil {
		merged.BorderColor = *override.BorderColor
	}
	if override.Bold != nil {
		merged.Bold = *override.Bold
	}
	if override.Padding != nil {
		merged.Padding = *override.Padding
	}
	if override.Width != nil {
		merged.Width = *override.Width
	}
	return merged
}
