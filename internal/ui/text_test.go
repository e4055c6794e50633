package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

// forceColor enables color output for the duration of a test.
func forceColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })
}

func TestFormatter_Color(t *testing.T) {
	forceColor(t)

	result := Code.Sprint("stagecrypt init")
	if strings.Contains(result, "`") {
		t.Errorf("Expected no backticks with color enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Expected ANSI escape codes with color enabled, got: %q", result)
	}

	staged := Stage.Sprintf("stage %s", "prod")
	if strings.HasPrefix(staged, "'") {
		t.Errorf("Expected no quotes with color enabled, got: %s", staged)
	}
	if !strings.Contains(staged, "stage prod") {
		t.Errorf("Expected formatted text, got: %s", staged)
	}
}

func TestFormatter_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code", Code, "stagecrypt encrypt -s prod", "`stagecrypt encrypt -s prod`"},
		{"Path", Path, "secrets.prod.yml", "secrets.prod.yml"},
		{"Flag", Flag, "--format", "--format"},
		{"Stage", Stage, "prod", "'prod'"},
		{"Success", Success, "✓", "✓"},
		{"Error", Error, "✗", "✗"},
		{"Warning", Warning, "[dry-run]", "[dry-run]"},
		{"Info", Info, "→", "→"},
		{"Muted", Muted, "1.0 kB", "(1.0 kB)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Expected %q, got: %q", tt.want, got)
			}
		})
	}
}

func TestFormatter_NoColorFromLibrary(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	if got := Stage.Sprint("dev"); got != "'dev'" {
		t.Errorf("Expected plain decoration when color.NoColor is set, got: %q", got)
	}
}

func TestStatusLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Succeeded("done"); got != "✓ done" {
		t.Errorf("Expected %q, got: %q", "✓ done", got)
	}
	if got := Failed("broken"); got != "✗ broken" {
		t.Errorf("Expected %q, got: %q", "✗ broken", got)
	}
	if got := Hint("try again"); got != "→ try again" {
		t.Errorf("Expected %q, got: %q", "→ try again", got)
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{1000, "1.0 kB"},
		{82854982, "83 MB"},
	}
	for _, tt := range tests {
		if got := Bytes(tt.in); got != tt.want {
			t.Errorf("Bytes(%d): expected %q, got: %q", tt.in, tt.want, got)
		}
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":       "\n",
		"line":   "line\n",
		"line\n": "line\n",
		"a\nb":   "a\nb\n",
	}
	for in, want := range tests {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q): expected %q, got: %q", in, want, got)
		}
	}
}
