package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tourguide/internal/config"
	"github.com/Iron-Ham/tourguide/internal/logging"
	"github.com/Iron-Ham/tourguide/internal/steps"
)

// App wires the model, the bubbletea program, and the optional manifest
// watcher together for a full interactive session.
type App struct {
	cfg     *config.Config
	log     *logging.Logger
	program *tea.Program
	watcher *steps.Watcher
}

// NewApp loads the step manifest and assembles the program. The manifest
// watcher is only created when live reload is enabled in config.
func NewApp(cfg *config.Config, log *logging.Logger) (*App, error) {
	seq, err := steps.Load(cfg.Walkthrough.StepsFile)
	if err != nil {
		return nil, fmt.Errorf("loading steps: %w", err)
	}

	model := NewModel(cfg, seq, log)
	program := tea.NewProgram(model, tea.WithAltScreen())

	app := &App{
		cfg:     cfg,
		log:     log,
		program: program,
	}

	if cfg.Walkthrough.LiveReload {
		path := cfg.Walkthrough.StepsFile
		watcher, err := steps.NewWatcher(path, func() {
			// Runs on the watcher goroutine; program.Send hands the reload
			// to the UI loop.
			reloaded, err := steps.Load(path)
			if err != nil {
				program.Send(StepsReloadFailedMsg{Path: path, Err: err})
				return
			}
			program.Send(StepsReloadedMsg{Path: path, Steps: reloaded})
		}, log)
		if err != nil {
			return nil, fmt.Errorf("watching steps: %w", err)
		}
		app.watcher = watcher
	}

	return app, nil
}

// Run blocks until the program exits.
func (a *App) Run() error {
	if a.watcher != nil {
		a.watcher.Start()
		defer a.watcher.Stop()
	}

	if a.log != nil {
		a.log.Info("starting tui",
			"theme", a.cfg.TUI.Theme,
			"steps_file", a.cfg.Walkthrough.StepsFile,
			"live_reload", a.cfg.Walkthrough.LiveReload)
	}

	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
