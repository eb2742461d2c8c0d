package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/tourguide/internal/tui/styles"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.tooltip_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid theme names: the built-in palettes
// plus any custom themes discovered from the themes directory.
func ValidThemes() []string {
	return styles.ValidThemes()
}

// Tooltip width bounds. Narrower than 16 cells the tooltip cannot fit a
// useful annotation; wider than 120 it exceeds common terminal widths.
const (
	MinTooltipWidth = 16
	MaxTooltipWidth = 120
)

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateWalkthrough()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.TooltipWidth < MinTooltipWidth || c.TUI.TooltipWidth > MaxTooltipWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.tooltip_width",
			Value:   c.TUI.TooltipWidth,
			Message: fmt.Sprintf("must be between %d and %d", MinTooltipWidth, MaxTooltipWidth),
		})
	}

	return errors
}

func (c *Config) validateWalkthrough() []ValidationError {
	var errors []ValidationError

	if c.Walkthrough.StepsFile == "" {
		errors = append(errors, ValidationError{
			Field:   "walkthrough.steps_file",
			Value:   c.Walkthrough.StepsFile,
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
