package ui

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Formatter wraps text in a color, or in plain decorations when color is off.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats a like fmt.Sprint.
func (f Formatter) Sprint(a ...any) string {
	return f.wrap(fmt.Sprint(a...))
}

// Sprintf formats like fmt.Sprintf.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.wrap(fmt.Sprintf(format, a...))
}

func (f Formatter) wrap(text string) string {
	if colorDisabled() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func colorDisabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

var (
	// Code is a command the user can run.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path is a file or directory.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag is a command line flag.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Stage is a deployment stage name.
	Stage = Formatter{color.New(color.FgCyan), "'", "'"}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Muted is secondary detail such as byte counts.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Succeeded returns msg prefixed with a success mark.
func Succeeded(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// Failed returns msg prefixed with a failure mark.
func Failed(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// Hint returns a follow-up suggestion line.
func Hint(msg string) string {
	return Info.Sprint("→") + " " + msg
}

// Bytes renders a byte count for humans, e.g. "1.2 kB".
func Bytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// EnsureNewline appends a newline to s unless it already ends with one.
func EnsureNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
