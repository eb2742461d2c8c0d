package tui

import "github.com/Iron-Ham/tourguide/internal/walkthrough"

// StepsReloadedMsg is sent into the program when the step manifest changes on
// disk and a fresh sequence has been loaded. An active walkthrough is
// remounted on the new sequence.
type StepsReloadedMsg struct {
	Path  string
	Steps walkthrough.Sequence
}

// StepsReloadFailedMsg is sent when the changed manifest fails to load. The
// current sequence stays in effect.
type StepsReloadFailedMsg struct {
	Path string
	Err  error
}
