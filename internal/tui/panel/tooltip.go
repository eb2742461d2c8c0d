package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

// Tooltip renders the floating walkthrough tooltip: a bordered box with a
// step counter header, the step text, and a key-hint footer. The box is
// positioned by the caller; Tooltip only produces its content.
type Tooltip struct {
	lastHeight int
}

// NewTooltip creates a tooltip renderer.
func NewTooltip() *Tooltip {
	return &Tooltip{}
}

// Render produces the tooltip box for the state's step.
func (t *Tooltip) Render(state *RenderState) string {
	if err := state.Validate(); err != nil {
		return ""
	}

	ts := state.TooltipStyle
	if ts.Width <= 0 {
		ts.Width = walkthrough.DefaultTooltipWidth
	}
	// Width is the full tooltip footprint; the border eats two columns.
	inner := ts.Width - 2

	header := state.Theme.Primary().Render(
		fmt.Sprintf("Step %d of %d", state.StepIndex+1, state.StepCount))

	body := lipgloss.NewStyle().Width(inner - 2*ts.Padding).Render(state.Step.Text)

	footer := state.Theme.Muted().Render(t.footer(state))

	content := strings.Join([]string{header, "", body, "", footer}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ts.BorderColor)).
		Foreground(lipgloss.Color(ts.Foreground)).
		Background(lipgloss.Color(ts.Background)).
		Padding(0, ts.Padding).
		Bold(ts.Bold).
		Width(inner)

	rendered := box.Render(content)
	t.lastHeight = lipgloss.Height(rendered)
	return rendered
}

// Height returns the height of the most recently rendered tooltip.
func (t *Tooltip) Height() int {
	return t.lastHeight
}

// footer builds the key-hint line. The advance hint reads "done" on the last
// step, since advancing from it closes the walkthrough.
func (t *Tooltip) footer(state *RenderState) string {
	advanceLabel := "next"
	if state.StepIndex == state.StepCount-1 {
		advanceLabel = "done"
	}

	var parts []string
	if len(state.AdvanceKeys) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", strings.Join(state.AdvanceKeys, "/"), advanceLabel))
	}
	if len(state.CloseKeys) > 0 {
		parts = append(parts, fmt.Sprintf("%s close", strings.Join(state.CloseKeys, "/")))
	}
	return strings.Join(parts, "  ·  ")
}
