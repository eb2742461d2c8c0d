// Package panel provides interfaces and types for TUI panel rendering.
// The walkthrough tooltip and the demo screen regions implement the
// PanelRenderer interface for consistent rendering behavior.
package panel

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

// Common errors returned by RenderState validation.
var (
	ErrInvalidWidth  = errors.New("width must be positive")
	ErrInvalidHeight = errors.New("height must be positive")
	ErrNilTheme      = errors.New("theme cannot be nil")
)

// PanelRenderer defines the interface for rendering UI panels.
type PanelRenderer interface {
	// Render produces the visual output for this panel given the current
	// state. The returned string contains the rendered content, potentially
	// with ANSI escape codes for styling.
	Render(state *RenderState) string

	// Height returns the rendered height of the panel in terminal rows.
	Height() int
}

// Theme provides styling configuration for panel rendering.
// This interface abstracts the styling system, allowing panels to request
// styles without depending on concrete style implementations.
type Theme interface {
	// Primary returns the primary style for emphasis.
	Primary() lipgloss.Style
	// Secondary returns the secondary style for less prominent elements.
	Secondary() lipgloss.Style
	// Muted returns the muted style for de-emphasized elements.
	Muted() lipgloss.Style
	// Error returns the style for error states.
	Error() lipgloss.Style
	// Warning returns the style for warning states.
	Warning() lipgloss.Style
	// Surface returns the style for surface/background areas.
	Surface() lipgloss.Style
	// Border returns the style for borders.
	Border() lipgloss.Style
}

// RenderState holds the complete state needed for rendering a panel.
// It provides a snapshot of the TUI state at render time, decoupling panel
// renderers from the full application model.
type RenderState struct {
	// Width is the available width in terminal columns.
	Width int

	// Height is the available height in terminal rows.
	Height int

	// Theme provides styling for the panel. Required for rendering styled
	// output.
	Theme Theme

	// Step is the walkthrough step being displayed, when rendering the
	// tooltip panel.
	Step walkthrough.Step

	// StepIndex is the zero-based index of the displayed step.
	StepIndex int

	// StepCount is the total number of steps in the sequence.
	StepCount int

	// TooltipStyle is the effective tooltip style for the displayed step
	// (per-step override merged over the theme default).
	TooltipStyle walkthrough.TooltipStyle

	// AdvanceKeys and CloseKeys are the key labels shown in the tooltip
	// footer.
	AdvanceKeys []string
	CloseKeys   []string

	// Focused indicates whether this panel currently has focus.
	Focused bool
}

// Validate checks that the state is renderable.
func (s *RenderState) Validate() error {
	if s.Width <= 0 {
		return ErrInvalidWidth
	}
	if s.Height <= 0 {
		return ErrInvalidHeight
	}
	if s.Theme == nil {
		return ErrNilTheme
	}
	return nil
}
