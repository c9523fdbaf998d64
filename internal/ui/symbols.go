package ui

// Cyber glyphs for status indicators.
const (
	SymbolSuccess  = "◉" // Copied / check passed
	SymbolFail     = "✕" // Copy or check failed
	SymbolPending  = "◇" // Not yet checked
	SymbolProgress = "◆" // Selected command
	SymbolComplete = "●" // Done
	SymbolWarning  = "⚠"
)
