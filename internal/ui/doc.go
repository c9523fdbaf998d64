// Package ui holds the shared terminal styling for rcmd's plain CLI output:
// the colour palette, status glyphs, the branded header and the doctor table.
//
// Colors are hex values rendered through lipgloss, which downsamples them to
// whatever the terminal supports. Use DisableColors() (for --no-color) or
// ApplyColorMode with the output.color setting to force monochrome output.
//
// The interactive builder has its own styles in internal/builder but draws
// from the same palette.
package ui
