// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declarative and mode-aware: the walkthrough overlay swaps the
// active mode rather than intercepting keys ad hoc in Update.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal      Mode = "normal"      // Default browsing mode
	ModeWalkthrough Mode = "walkthrough" // A walkthrough overlay is active
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	CmdScrollDown       Command = "scroll_down"
	CmdScrollUp         Command = "scroll_up"
	CmdStartWalkthrough Command = "start_walkthrough"
	CmdToggleHelp       Command = "toggle_help"
	CmdQuit             Command = "quit"
)

// Walkthrough mode commands
const (
	CmdAdvanceStep      Command = "advance_step"
	CmdCloseWalkthrough Command = "close_walkthrough"
)

// KeyBinding pairs a bubbles key.Binding with the command it triggers. One
// binding may carry several keys (e.g. enter, n, and space all advance).
type KeyBinding struct {
	Binding key.Binding
	Command Command
}

// NewKeyBinding builds a binding. helpKey is the label shown in help and the
// tooltip footer; keys are the raw key strings as produced by
// tea.KeyMsg.String().
func NewKeyBinding(cmd Command, helpKey, helpDesc string, keys ...string) KeyBinding {
	return KeyBinding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, helpDesc)),
		Command: cmd,
	}
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	return key.Matches(msg, kb.Binding)
}

// Label returns the help label for this binding's keys.
func (kb KeyBinding) Label() string {
	return kb.Binding.Help().Key
}

// Description returns the help description for this binding.
func (kb KeyBinding) Description() string {
	return kb.Binding.Help().Desc
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap (e.g., "default").
	Name string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
// Useful for displaying "Press X or Y to do Z" in the tooltip footer.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}
