// Package ui renders the final status lines printed by stagecrypt commands.
//
// Each Formatter names the kind of text it wraps (a path, a stage, a
// command to run) rather than a color, so call sites read like
//
//	ui.Success.Sprint("✓") + " Encrypted " + ui.Path.Sprint(name)
//
// Colors come from fatih/color. With NO_COLOR set, or when stdout is not a
// terminal, formatters fall back to plain text decorations so the meaning
// survives in CI logs:
//   - Code: `backticks`
//   - Stage: 'single quotes'
//   - Muted: (parentheses)
//
// The Succeeded, Failed and Hint helpers build the glyph-prefixed lines
// shared by every command.
package ui
