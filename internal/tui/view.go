package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/tourguide/internal/tui/keymap"
	"github.com/Iron-Ham/tourguide/internal/tui/panel"
)

var sidebarItems = []string{
	"Overview",
	"Accounts",
	"Transactions",
	"Reports",
	"Settings",
}

// View implements tea.Model. It renders the demo document, windows it by the
// scroll offset, and composites the walkthrough overlay on top when one is
// active.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := splitLines(m.renderDocument())
	start := min(m.scroll, len(lines))
	end := min(start+m.height, len(lines))
	visible := strings.Join(lines[start:end], "\n")

	if m.walkthroughActive() {
		visible = m.renderWalkthrough(visible)
	} else if m.showHelp {
		visible = m.renderHelp(visible)
	}
	return visible
}

// renderDocument renders the full demo document in document coordinates.
// Row positions must agree with the boxes registered in layout().
func (m *Model) renderDocument() string {
	var b strings.Builder

	// Header: 3 rows.
	b.WriteString(m.theme.Primary().Render("  tourguide") +
		m.theme.Muted().Render("  ·  element-anchored walkthroughs for the terminal"))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted().Render("  press t to start the tour, ? for help"))
	b.WriteString("\n")
	b.WriteString(m.theme.Border().Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")

	// Body: sidebar column beside the content column.
	for row := range bodyHeight {
		b.WriteString(m.renderBodyRow(row))
		b.WriteString("\n")
	}

	// Footer: 1 row of key hints.
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderBodyRow(row int) string {
	cell := ""
	if row >= 1 && row-1 < len(sidebarItems) {
		cell = "  " + sidebarItems[row-1]
	}
	sidebar := padRight(m.theme.Secondary().Render(cell), sidebarWidth-1)
	divider := m.theme.Border().Render("│")

	content := ""
	if row >= 1 {
		content = m.theme.Muted().Render(fmt.Sprintf("  %2d", row)) +
			fmt.Sprintf("  Sample entry %d", row)
	}
	return sidebar + divider + content
}

func (m *Model) renderFooter() string {
	var hints []string
	for _, kb := range m.keys.GetModeBindings(m.mode) {
		hints = append(hints, fmt.Sprintf("%s %s",
			m.theme.Primary().Render(kb.Label()),
			m.theme.Muted().Render(kb.Description())))
	}
	return "  " + strings.Join(hints, "  ")
}

// renderWalkthrough dims the base screen and composites the tooltip at its
// computed placement, translated from document to screen coordinates.
func (m *Model) renderWalkthrough(base string) string {
	if !m.cfg.Walkthrough.Dimmer.Disabled {
		base = m.theme.Dimmer(m.cfg.Walkthrough.Dimmer.Foreground).Render(ansi.Strip(base))
	}

	step, ok := m.ctrl.ActiveStep()
	if !ok {
		return base
	}

	tip := m.tooltip.Render(&panel.RenderState{
		Width:        m.width,
		Height:       m.height,
		Theme:        m.theme,
		Step:         step,
		StepIndex:    m.ctrl.Active(),
		StepCount:    len(m.ctrl.View().Steps),
		TooltipStyle: m.ctrl.ActiveStyle(),
		AdvanceKeys:  m.keyLabels(keymap.CmdAdvanceStep),
		CloseKeys:    m.keyLabels(keymap.CmdCloseWalkthrough),
	})

	p, ok := m.ctrl.Placement()
	if !ok {
		return base
	}
	// Placement is in document coordinates; the screen scrolls vertically.
	return overlayAt(base, tip, p.Left, p.Top-m.scroll, m.width, m.height)
}

func (m *Model) keyLabels(cmd keymap.Command) []string {
	var labels []string
	for _, kb := range m.keys.GetBindingsForCommand(cmd, keymap.ModeWalkthrough) {
		labels = append(labels, kb.Label())
	}
	return labels
}

// renderHelp composites a centered help box listing normal-mode bindings.
func (m *Model) renderHelp(base string) string {
	var rows []string
	rows = append(rows, m.theme.Primary().Render("Key bindings"), "")
	for _, kb := range m.keys.GetModeBindings(keymap.ModeNormal) {
		rows = append(rows, fmt.Sprintf("  %-14s %s", kb.Label(), kb.Description()))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Palette().Border).
		Padding(0, 2).
		Render(strings.Join(rows, "\n"))

	w := maxLineWidth(splitLines(box))
	h := len(splitLines(box))
	x := max((m.width-w)/2, 0)
	y := max((m.height-h)/2, 0)
	return overlayAt(base, box, x, y, m.width, m.height)
}
