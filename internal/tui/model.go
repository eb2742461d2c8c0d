// Package tui implements the terminal interface: a demo document with named
// regions, and the walkthrough overlay that anchors a tooltip to them.
//
// The model owns the event bus, the geometry registry, and the walkthrough
// controller. All of them are touched only from Update and View, so none of
// them need locking.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tourguide/internal/config"
	"github.com/Iron-Ham/tourguide/internal/event"
	"github.com/Iron-Ham/tourguide/internal/geometry"
	"github.com/Iron-Ham/tourguide/internal/logging"
	"github.com/Iron-Ham/tourguide/internal/tui/keymap"
	"github.com/Iron-Ham/tourguide/internal/tui/panel"
	"github.com/Iron-Ham/tourguide/internal/tui/styles"
	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

// Target region ids registered with the geometry registry. Step manifests
// reference these in their target field.
const (
	RegionHeader  = "header"
	RegionSidebar = "sidebar"
	RegionContent = "content"
	RegionFooter  = "footer"
)

// Fixed layout dimensions for the demo document.
const (
	headerHeight = 3
	footerHeight = 1
	sidebarWidth = 24
	bodyHeight   = 40 // taller than most terminals so scrolling matters
)

// Model is the root bubbletea model.
type Model struct {
	cfg     *config.Config
	theme   *styles.Theme
	keys    *keymap.Keymap
	mode    keymap.Mode
	log     *logging.Logger
	bus     *event.Bus
	reg     *geometry.Registry
	steps   walkthrough.Sequence
	ctrl    *walkthrough.Controller
	tooltip *panel.Tooltip

	width  int
	height int
	scroll int

	showHelp bool

	// autoStart is pending until the first WindowSizeMsg gives us geometry.
	autoStart bool
}

// NewModel builds the root model. The walkthrough does not start until the
// first window size arrives, even with auto-start enabled, because no
// geometry exists before then.
func NewModel(cfg *config.Config, steps walkthrough.Sequence, log *logging.Logger) *Model {
	return &Model{
		cfg:       cfg,
		theme:     styles.NewTheme(styles.ThemeName(cfg.TUI.Theme)),
		keys:      keymap.DefaultKeymap(),
		mode:      keymap.ModeNormal,
		log:       log,
		bus:       event.NewBus(),
		reg:       geometry.NewRegistry(),
		steps:     steps,
		tooltip:   panel.NewTooltip(),
		autoStart: cfg.Walkthrough.AutoStart,
	}
}

// Bus exposes the model's event bus so hosts can observe walkthrough
// lifecycle events.
func (m *Model) Bus() *event.Bus {
	return m.bus
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.bus.Publish(event.NewViewportResizedEvent(msg.Width, msg.Height))
		if m.autoStart {
			m.autoStart = false
			m.startWalkthrough()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StepsReloadedMsg:
		return m.handleStepsReloaded(msg)

	case StepsReloadFailedMsg:
		if m.log != nil {
			m.log.Warn("step manifest reload failed", "path", msg.Path, "error", msg.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, m.mode)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.teardown()
		return m, tea.Quit

	case keymap.CmdScrollDown:
		m.setScroll(m.scroll + 1)
	case keymap.CmdScrollUp:
		m.setScroll(m.scroll - 1)

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdStartWalkthrough:
		m.startWalkthrough()

	case keymap.CmdAdvanceStep:
		if m.ctrl != nil {
			m.ctrl.Advance()
			m.syncMode()
		}
	case keymap.CmdCloseWalkthrough:
		if m.ctrl != nil {
			m.ctrl.Close()
			m.syncMode()
		}
	}
	return m, nil
}

func (m *Model) handleStepsReloaded(msg StepsReloadedMsg) (tea.Model, tea.Cmd) {
	m.steps = msg.Steps
	m.bus.Publish(event.NewStepsReloadedEvent(msg.Path, len(msg.Steps)))

	// A live walkthrough is remounted on the new sequence from step 0; a
	// finished one stays finished.
	if m.walkthroughActive() {
		m.startWalkthrough()
	}
	return m, nil
}

// startWalkthrough discards any previous controller and mounts a fresh one.
// Each controller runs its sequence exactly once; restarting means a new
// controller.
func (m *Model) startWalkthrough() {
	if len(m.steps) == 0 {
		return
	}
	if m.ctrl != nil {
		m.ctrl.Release()
	}
	m.ctrl = walkthrough.NewController(walkthrough.ControllerConfig{
		Steps:        m.steps,
		Geometry:     m.reg,
		Resize:       event.NewResizeNotifier(m.bus),
		Engine:       walkthrough.NewEngine(m.cfg.TUI.TooltipWidth),
		TooltipStyle: m.theme.DefaultTooltipStyle(),
		AutoStart:    true,
		Events:       m.bus,
		Logger:       m.log,
	})
	m.syncMode()
}

// syncMode keeps the input mode aligned with the walkthrough state.
func (m *Model) syncMode() {
	if m.walkthroughActive() {
		m.mode = keymap.ModeWalkthrough
	} else {
		m.mode = keymap.ModeNormal
	}
}

func (m *Model) walkthroughActive() bool {
	return m.ctrl != nil && m.ctrl.Active() != walkthrough.InactiveIndex
}

// teardown releases the walkthrough's resize subscription before the program
// exits.
func (m *Model) teardown() {
	if m.ctrl != nil {
		m.ctrl.Release()
	}
}

// setScroll clamps and applies a new scroll offset. Scrolling moves targets
// in the viewport, so a recompute is triggered through the resize stream.
func (m *Model) setScroll(v int) {
	maxScroll := m.documentHeight() - m.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v < 0 {
		v = 0
	}
	if v > maxScroll {
		v = maxScroll
	}
	if v == m.scroll {
		return
	}
	m.scroll = v
	m.layout()
	m.bus.Publish(event.NewViewportResizedEvent(m.width, m.height))
}

func (m *Model) documentHeight() int {
	return headerHeight + bodyHeight + footerHeight
}

// layout registers the demo regions with the geometry registry. Boxes are
// viewport-relative (document position minus scroll); the registry's scroll
// offset converts them back to document coordinates during placement. Called
// on every window size or scroll change.
func (m *Model) layout() {
	m.reg.SetViewport(walkthrough.Viewport{Width: m.width, Height: m.height})
	m.reg.SetScroll(walkthrough.Offset{Y: m.scroll})

	m.reg.Clear()
	m.reg.Register(RegionHeader, walkthrough.Box{
		Top: 0 - m.scroll, Left: 0, Width: m.width, Height: headerHeight,
	})
	m.reg.Register(RegionSidebar, walkthrough.Box{
		Top: headerHeight - m.scroll, Left: 0, Width: sidebarWidth, Height: bodyHeight,
	})
	m.reg.Register(RegionContent, walkthrough.Box{
		Top: headerHeight - m.scroll, Left: sidebarWidth, Width: m.width - sidebarWidth, Height: bodyHeight,
	})
	m.reg.Register(RegionFooter, walkthrough.Box{
		Top: headerHeight + bodyHeight - m.scroll, Left: 0, Width: m.width, Height: footerHeight,
	})
}
