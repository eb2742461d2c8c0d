package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/tourguide/internal/errors"
	"github.com/Iron-Ham/tourguide/internal/walkthrough"
)

const validManifest = `version: "1"
steps:
  - target: header
    text: "This is the header."
    vanchor: bottom
    hanchor: left
    voffset: 1
  - target: sidebar
    text: "Accounts live here."
  - target: content
    text: "Styled step."
    vanchor: top
    hanchor: right
    hoffset: -2
    style:
      foreground: "#F59E0B"
      bold: true
      width: 50
`

func TestParse_ValidManifest(t *testing.T) {
	seq, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(seq) != 3 {
		t.Fatalf("len(seq) = %d, want 3", len(seq))
	}

	first := seq[0]
	if first.TargetID != "header" {
		t.Errorf("TargetID = %q, want header", first.TargetID)
	}
	if first.VAnchor != walkthrough.AnchorBottom || first.HAnchor != walkthrough.AnchorLeft {
		t.Errorf("anchors = %v/%v, want bottom/left", first.VAnchor, first.HAnchor)
	}
	if first.VOffset != 1 || first.HOffset != 0 {
		t.Errorf("offsets = %d/%d, want 1/0", first.VOffset, first.HOffset)
	}

	// Omitted anchors default to middle/center.
	second := seq[1]
	if second.VAnchor != walkthrough.AnchorMiddle || second.HAnchor != walkthrough.AnchorCenter {
		t.Errorf("default anchors = %v/%v, want middle/center", second.VAnchor, second.HAnchor)
	}
	if second.Style != nil {
		t.Error("step without style block should have nil override")
	}

	third := seq[2]
	if third.HOffset != -2 {
		t.Errorf("HOffset = %d, want -2", third.HOffset)
	}
	if third.Style == nil {
		t.Fatal("styled step should carry an override")
	}
	if third.Style.Foreground == nil || *third.Style.Foreground != "#F59E0B" {
		t.Errorf("Style.Foreground = %v", third.Style.Foreground)
	}
	if third.Style.Bold == nil || !*third.Style.Bold {
		t.Error("Style.Bold should be set true")
	}
	if third.Style.Width == nil || *third.Style.Width != 50 {
		t.Errorf("Style.Width = %v", third.Style.Width)
	}
	if third.Style.Background != nil {
		t.Error("unset style keys should stay nil")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		field    string
	}{
		{
			name:     "not yaml",
			input:    "{{{",
			sentinel: nil,
			field:    "",
		},
		{
			name:     "wrong version",
			input:    "version: \"2\"\nsteps:\n  - target: a\n    text: b\n",
			sentinel: errors.ErrManifestVersion,
		},
		{
			name:     "missing version",
			input:    "steps:\n  - target: a\n    text: b\n",
			sentinel: errors.ErrManifestVersion,
		},
		{
			name:     "no steps",
			input:    "version: \"1\"\nsteps: []\n",
			sentinel: errors.ErrManifestEmpty,
		},
		{
			name:  "empty target",
			input: "version: \"1\"\nsteps:\n  - text: b\n",
			field: "steps[0].target",
		},
		{
			name:  "empty text",
			input: "version: \"1\"\nsteps:\n  - target: a\n    text: ok\n  - target: c\n",
			field: "steps[1].text",
		},
		{
			name:  "bad vanchor",
			input: "version: \"1\"\nsteps:\n  - target: a\n    text: b\n    vanchor: diagonal\n",
			field: "steps[0].vanchor",
		},
		{
			name:  "bad hanchor",
			input: "version: \"1\"\nsteps:\n  - target: a\n    text: b\n    hanchor: sideways\n",
			field: "steps[0].hanchor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want wrapping %v", err, tt.sentinel)
			}
			if tt.field != "" {
				var ve *errors.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error = %v, want *ValidationError", err)
				}
				if ve.Field != tt.field {
					t.Errorf("Field = %q, want %q", ve.Field, tt.field)
				}
			}
		})
	}
}

func TestParse_AnchorsCaseInsensitive(t *testing.T) {
	input := "version: \"1\"\nsteps:\n  - target: a\n    text: b\n    vanchor: TOP\n    hanchor: Right\n"
	seq, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if seq[0].VAnchor != walkthrough.AnchorTop {
		t.Errorf("VAnchor = %v, want top", seq[0].VAnchor)
	}
	if seq[0].HAnchor != walkthrough.AnchorRight {
		t.Errorf("HAnchor = %v, want right", seq[0].HAnchor)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	seq, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(seq) != 3 {
		t.Errorf("len(seq) = %d, want 3", len(seq))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
