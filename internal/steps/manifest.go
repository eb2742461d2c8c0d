// Package steps loads walkthrough step sequences from YAML manifest files
// and watches them for changes.
//
// A manifest looks like:
//
//	version: "1"
//	steps:
//	  - target: sidebar
//	    text: "Your accounts live here."
//	    vanchor: bottom
//	    hanchor: center
//	    voffset: 1
//	  - target: content
//	    text: "Transactions show up in this pane."
//	    style:
//	      foreground: "#F59E0B"
//	      bold: true
//
// Anchors default to middle/center, offsets to 0, matching the zero values
// of the walkthrough types.
package steps

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/tourguide/internal/errors"
	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

// SupportedVersion is the manifest format version this loader accepts.
const SupportedVersion = "1"

// Manifest is the on-disk YAML representation of a step sequence.
type Manifest struct {
	// Version is the manifest format version (currently "1").
	Version string `yaml:"version"`
	// Steps are the walkthrough steps in display order.
	Steps []ManifestStep `yaml:"steps"`
}

// ManifestStep is the YAML representation of a single step.
type ManifestStep struct {
	Target  string         `yaml:"target"`
	Text    string         `yaml:"text"`
	VAnchor string         `yaml:"vanchor,omitempty"`
	HAnchor string         `yaml:"hanchor,omitempty"`
	VOffset int            `yaml:"voffset,omitempty"`
	HOffset int            `yaml:"hoffset,omitempty"`
	Style   *ManifestStyle `yaml:"style,omitempty"`
}

// ManifestStyle is the YAML representation of a per-step style override.
// Absent keys keep the default tooltip style's values.
type ManifestStyle struct {
	Foreground  *string `yaml:"foreground,omitempty"`
	Background  *string `yaml:"background,omitempty"`
	BorderColor *string `yaml:"border_color,omitempty"`
	Bold        *bool   `yaml:"bold,omitempty"`
	Padding     *int    `yaml:"padding,omitempty"`
	Width       *int    `yaml:"width,omitempty"`
}

// Load reads, parses, and validates a step manifest, returning the step
// sequence it defines.
func Load(path string) (walkthrough.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading step manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates manifest bytes.
func Parse(data []byte) (walkthrough.Sequence, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewValidationError("step manifest is not valid YAML").WithCause(err)
	}

	if m.Version != SupportedVersion {
		return nil, fmt.Errorf("%w: %q", errors.ErrManifestVersion, m.Version)
	}
	if len(m.Steps) == 0 {
		return nil, errors.ErrManifestEmpty
	}

	seq := make(walkthrough.Sequence, 0, len(m.Steps))
	for i, ms := range m.Steps {
		step, err := convertStep(i, ms)
		if err != nil {
			return nil, err
		}
		seq = append(seq, step)
	}
	return seq, nil
}

// convertStep validates one manifest step and maps it onto a walkthrough.Step.
func convertStep(index int, ms ManifestStep) (walkthrough.Step, error) {
	if ms.Target == "" {
		return walkthrough.Step{}, errors.NewValidationError("step target must not be empty").
			WithField(fmt.Sprintf("steps[%d].target", index))
	}
	if ms.Text == "" {
		return walkthrough.Step{}, errors.NewValidationError("step text must not be empty").
			WithField(fmt.Sprintf("steps[%d].text", index))
	}

	vanchor, err := parseVAnchor(ms.VAnchor)
	if err != nil {
		return walkthrough.Step{}, errors.NewValidationError("unknown vertical anchor").
			WithField(fmt.Sprintf("steps[%d].vanchor", index)).
			WithValue(ms.VAnchor)
	}
	hanchor, err := parseHAnchor(ms.HAnchor)
	if err != nil {
		return walkthrough.Step{}, errors.NewValidationError("unknown horizontal anchor").
			WithField(fmt.Sprintf("steps[%d].hanchor", index)).
			WithValue(ms.HAnchor)
	}

	step := walkthrough.Step{
		TargetID: ms.Target,
		Text:     ms.Text,
		VAnchor:  vanchor,
		HAnchor:  hanchor,
		VOffset:  ms.VOffset,
		HOffset:  ms.HOffset,
	}
	if ms.Style != nil {
		step.Style = &walkthrough.StyleOverride{
			Foreground:  ms.Style.Foreground,
			Background:  ms.Style.Background,
			BorderColor: ms.Style.BorderColor,
			Bold:        ms.Style.Bold,
			Padding:     ms.Style.Padding,
			Width:       ms.Style.Width,
		}
	}
	return step, nil
}

func parseVAnchor(s string) (walkthrough.VerticalAnchor, error) {
	switch strings.ToLower(s) {
	case "", "middle":
		return walkthrough.AnchorMiddle, nil
	case "top":
		return walkthrough.AnchorTop, nil
	case "bottom":
		return walkthrough.AnchorBottom, nil
	default:
		return walkthrough.AnchorMiddle, fmt.Errorf("unknown vertical anchor %q", s)
	}
}

func parseHAnchor(s string) (walkthrough.HorizontalAnchor, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return walkthrough.AnchorCenter, nil
	case "left":
		return walkthrough.AnchorLeft, nil
	case "right":
		return walkthrough.AnchorRight, nil
	default:
		return walkthrough.AnchorCenter, fmt.Errorf("unknown horizontal anchor %q", s)
	}
}
