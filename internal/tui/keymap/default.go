package keymap

// DefaultKeymap returns the default keymap configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:      defaultNormalBindings(),
			ModeWalkthrough: defaultWalkthroughBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			NewKeyBinding(CmdScrollDown, "j/↓", "scroll down", "j", "down"),
			NewKeyBinding(CmdScrollUp, "k/↑", "scroll up", "k", "up"),
			NewKeyBinding(CmdStartWalkthrough, "t", "start walkthrough", "t"),
			NewKeyBinding(CmdToggleHelp, "?", "toggle help", "?"),
			NewKeyBinding(CmdQuit, "q", "quit", "q", "ctrl+c"),
		},
	}
}

func defaultWalkthroughBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeWalkthrough,
		Bindings: []KeyBinding{
			NewKeyBinding(CmdAdvanceStep, "enter/n/space", "next step", "enter", "n", " "),
			NewKeyBinding(CmdCloseWalkthrough, "esc/x", "close walkthrough", "esc", "x"),
			// Scrolling stays available so off-screen targets can be brought
			// into view; the tooltip tracks them through the scroll.
			NewKeyBinding(CmdScrollDown, "j/↓", "scroll down", "j", "down"),
			NewKeyBinding(CmdScrollUp, "k/↑", "scroll up", "k", "up"),
			// Quit still works while a walkthrough is up.
			NewKeyBinding(CmdQuit, "ctrl+c", "quit", "ctrl+c"),
		},
	}
}
