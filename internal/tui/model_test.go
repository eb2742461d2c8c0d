package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/tourguide/internal/config"
	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

func testSteps() walkthrough.Sequence {
	return walkthrough.Sequence{
		{TargetID: RegionHeader, Text: "HeaderStep"},
		{TargetID: RegionSidebar, Text: "SidebarStep"},
	}
}

func testConfig(autoStart bool) *config.Config {
	cfg := config.Default()
	cfg.Walkthrough.AutoStart = autoStart
	cfg.Walkthrough.LiveReload = false
	return cfg
}

func sized(m *Model) *Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(*Model)
}

func keyPress(m *Model, k tea.KeyMsg) *Model {
	updated, _ := m.Update(k)
	return updated.(*Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_AutoStartWaitsForWindowSize(t *testing.T) {
	m := NewModel(testConfig(true), testSteps(), nil)

	if m.walkthroughActive() {
		t.Fatal("walkthrough should not start before the first window size")
	}

	m = sized(m)
	if !m.walkthroughActive() {
		t.Fatal("walkthrough should start on the first window size with auto-start")
	}
	if m.mode != "walkthrough" {
		t.Errorf("mode = %q, want walkthrough", m.mode)
	}
	if m.ctrl.Active() != 0 {
		t.Errorf("Active() = %d, want 0", m.ctrl.Active())
	}
}

func TestModel_ManualStartAndWalkToEnd(t *testing.T) {
	m := sized(NewModel(testConfig(false), testSteps(), nil))

	if m.walkthroughActive() {
		t.Fatal("walkthrough should stay inactive without auto-start")
	}

	m = keyPress(m, runeKey('t'))
	if !m.walkthroughActive() {
		t.Fatal("t should start the walkthrough")
	}

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Active() != 1 {
		t.Errorf("Active() = %d after one advance, want 1", m.ctrl.Active())
	}

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.walkthroughActive() {
		t.Error("advancing past the last step should end the walkthrough")
	}
	if m.mode != "normal" {
		t.Errorf("mode = %q after finish, want normal", m.mode)
	}
}

func TestModel_EscClosesWalkthrough(t *testing.T) {
	m := sized(NewModel(testConfig(true), testSteps(), nil))

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.walkthroughActive() {
		t.Error("esc should close the walkthrough")
	}
	if m.mode != "normal" {
		t.Errorf("mode = %q, want normal", m.mode)
	}
}

func TestModel_ViewShowsTooltipWhileActive(t *testing.T) {
	m := sized(NewModel(testConfig(true), testSteps(), nil))

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "HeaderStep") {
		t.Error("active view should contain the step text")
	}
	if !strings.Contains(view, "Step 1 of 2") {
		t.Error("active view should contain the step counter")
	}

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	view = ansi.Strip(m.View())
	if strings.Contains(view, "HeaderStep") {
		t.Error("closed view should not contain step text")
	}
}

func TestModel_ScrollMovesTooltip(t *testing.T) {
	steps := walkthrough.Sequence{{TargetID: RegionFooter, Text: "FooterStep"}}
	m := sized(NewModel(testConfig(true), steps, nil))

	before, _ := m.ctrl.Placement()

	m = keyPress(m, runeKey('j'))
	m = keyPress(m, runeKey('j'))

	after, ok := m.ctrl.Placement()
	if !ok {
		t.Fatal("placement should exist after scrolling")
	}
	// Document placement is scroll-independent for the same target, but the
	// recompute must have run; footer placement is derived from a fixed box,
	// so the document coordinates stay equal while the screen row shifts.
	if before != after {
		t.Errorf("document placement changed on scroll: %+v -> %+v", before, after)
	}
	if m.scroll != 2 {
		t.Errorf("scroll = %d, want 2", m.scroll)
	}
}

func TestModel_ScrollClamps(t *testing.T) {
	m := sized(NewModel(testConfig(false), testSteps(), nil))

	m = keyPress(m, runeKey('k'))
	if m.scroll != 0 {
		t.Errorf("scroll = %d, want 0 at top", m.scroll)
	}

	for range 200 {
		m = keyPress(m, runeKey('j'))
	}
	maxScroll := m.documentHeight() - m.height
	if m.scroll != maxScroll {
		t.Errorf("scroll = %d, want clamp at %d", m.scroll, maxScroll)
	}
}

func TestModel_ResizeRecomputesPlacement(t *testing.T) {
	steps := walkthrough.Sequence{{
		TargetID: RegionHeader,
		Text:     "HeaderStep",
		HAnchor:  walkthrough.AnchorRight,
	}}
	m := sized(NewModel(testConfig(true), steps, nil))

	wide, _ := m.ctrl.Placement()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 30})
	m = updated.(*Model)

	narrow, ok := m.ctrl.Placement()
	if !ok {
		t.Fatal("placement should exist after resize")
	}
	if narrow == wide {
		t.Error("right-anchored placement should change when the viewport narrows")
	}
}

func TestModel_StepsReloadedRemountsActiveWalkthrough(t *testing.T) {
	m := sized(NewModel(testConfig(true), testSteps(), nil))

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter}) // now on step 1

	fresh := walkthrough.Sequence{{TargetID: RegionContent, Text: "NewStep"}}
	updated, _ := m.Update(StepsReloadedMsg{Path: "steps.yaml", Steps: fresh})
	m = updated.(*Model)

	if !m.walkthroughActive() {
		t.Fatal("reload should remount an active walkthrough")
	}
	if m.ctrl.Active() != 0 {
		t.Errorf("Active() = %d after remount, want 0", m.ctrl.Active())
	}
	step, _ := m.ctrl.ActiveStep()
	if step.Text != "NewStep" {
		t.Errorf("active step = %q, want NewStep", step.Text)
	}
}

func TestModel_StepsReloadedLeavesInactiveWalkthroughAlone(t *testing.T) {
	m := sized(NewModel(testConfig(false), testSteps(), nil))

	updated, _ := m.Update(StepsReloadedMsg{
		Path:  "steps.yaml",
		Steps: walkthrough.Sequence{{TargetID: RegionContent, Text: "NewStep"}},
	})
	m = updated.(*Model)

	if m.walkthroughActive() {
		t.Error("reload must not start an inactive walkthrough")
	}
	if len(m.steps) != 1 {
		t.Errorf("len(steps) = %d, want 1", len(m.steps))
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := sized(NewModel(testConfig(false), testSteps(), nil))

	m = keyPress(m, runeKey('?'))
	if !m.showHelp {
		t.Error("? should show help")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Key bindings") {
		t.Error("help view should list key bindings")
	}

	m = keyPress(m, runeKey('?'))
	if m.showHelp {
		t.Error("? should hide help again")
	}
}

func TestModel_QuitReleasesController(t *testing.T) {
	m := sized(NewModel(testConfig(true), testSteps(), nil))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return tea.Quit")
	}
	if m.walkthroughActive() {
		t.Error("quit should release the walkthrough")
	}
}

func TestModel_EmptySequenceNeverStarts(t *testing.T) {
	m := sized(NewModel(testConfig(true), nil, nil))
	if m.walkthroughActive() {
		t.Error("empty sequence must not start")
	}
	m = keyPress(m, runeKey('t'))
	if m.walkthroughActive() {
		t.Error("t must not start an empty sequence")
	}
}
