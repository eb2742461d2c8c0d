package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

// Theme implements panel.Theme on top of a color palette.
//
// The interface is defined in internal/tui/panel to avoid circular imports
// between styles and panel packages.
type Theme struct {
	palette *ColorPalette
}

// NewTheme creates a Theme for the named palette. Unknown names fall back to
// the default palette.
func NewTheme(name ThemeName) *Theme {
	return &Theme{palette: GetPalette(name)}
}

func (t *Theme) Primary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Primary).Bold(true)
}

func (t *Theme) Secondary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Secondary)
}

func (t *Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Muted)
}

func (t *Theme) Error() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Error).Bold(true)
}

func (t *Theme) Warning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Warning)
}

func (t *Theme) Surface() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.palette.Surface)
}

func (t *Theme) Border() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Border)
}

// Palette exposes the underlying palette for code that needs raw colors.
func (t *Theme) Palette() *ColorPalette {
	return t.palette
}

// DefaultTooltipStyle derives the walkthrough's base tooltip style from the
// theme's palette. Per-step overrides from the manifest are merged over it.
func (t *Theme) DefaultTooltipStyle() walkthrough.TooltipStyle {
	return walkthrough.TooltipStyle{
		Foreground:  string(t.palette.Text),
		Background:  string(t.palette.Surface),
		BorderColor: string(t.palette.Primary),
		Padding:     1,
		Width:       walkthrough.DefaultTooltipWidth,
	}
}

// Dimmer returns the style applied to the host screen while a walkthrough is
// active. An explicit foreground from config overrides the palette's muted
// color.
func (t *Theme) Dimmer(foreground string) lipgloss.Style {
	color := t.palette.Muted
	if foreground != "" {
		color = lipgloss.Color(foreground)
	}
	return lipgloss.NewStyle().Foreground(color).Faint(true)
}
