// Unicode symbol definitions with ASCII fallbacks for terminals that
// cannot render emoji or box-drawing glyphs reliably.
package internal

import (
	"os"
	"strings"
)

// SymbolSet is the collection of glyphs used across the UI
type SymbolSet struct {
	// Tile icons
	Folder string
	Photo  string
	Video  string

	// Branding and indicators
	Camera string
	Zoom   string

	// Selection and navigation
	Cursor string
	Active string
	Back   string

	// Playback indicators
	Play  string
	Pause string
	Muted string

	// Gauge glyphs for zoom and volume bars
	GaugeFilled string
	GaugeEmpty  string

	// Login form
	InputCursor string
}

// UnicodeSymbols provides rich glyphs for modern terminals
var UnicodeSymbols = SymbolSet{
	Folder: "📁",
	Photo:  "🖼",
	Video:  "🎬",

	Camera: "📷",
	Zoom:   "🔍",

	Cursor: "❯",
	Active: "▪",
	Back:   "⬅",

	Play:  "▶",
	Pause: "⏸",
	Muted: "🔇",

	GaugeFilled: "█",
	GaugeEmpty:  "░",

	InputCursor: "▌",
}

// ASCIISymbols provides plain-text fallbacks for compatibility
var ASCIISymbols = SymbolSet{
	Folder: "[D]",
	Photo:  "[P]",
	Video:  "[V]",

	Camera: "",
	Zoom:   "zoom",

	Cursor: ">",
	Active: "*",
	Back:   "<-",

	Play:  ">",
	Pause: "||",
	Muted: "[m]",

	GaugeFilled: "#",
	GaugeEmpty:  "-",

	InputCursor: "_",
}

// CurrentSymbols holds the active symbol set based on terminal capabilities
var CurrentSymbols SymbolSet

func init() {
	CurrentSymbols = detectSymbolSet()
}

// detectSymbolSet picks the symbol set appropriate for the current terminal
func detectSymbolSet() SymbolSet {
	// Explicit ASCII mode via environment variable
	if os.Getenv("ALBUMVIEW_ASCII") == "1" || os.Getenv("ALBUMVIEW_ASCII") == "true" {
		return ASCIISymbols
	}

	// Known problematic terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCIISymbols
	}

	// Windows Console (cmd.exe) has limited Unicode support
	if os.Getenv("COMSPEC") != "" && !isWindowsTerminal() {
		return ASCIISymbols
	}

	// SSH sessions fall back to ASCII unless the locale advertises UTF-8
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" {
		locale := strings.ToLower(os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCIISymbols
		}
	}

	return UnicodeSymbols
}

// isWindowsTerminal detects Windows Terminal, which renders Unicode well
func isWindowsTerminal() bool {
	return os.Getenv("WT_SESSION") != ""
}

// ForceASCII switches to ASCII symbols regardless of terminal detection
func ForceASCII() {
	CurrentSymbols = ASCIISymbols
}

// ForceUnicode switches to Unicode symbols regardless of terminal detection
func ForceUnicode() {
	CurrentSymbols = UnicodeSymbols
}

// FormatTitle prefixes the app name with the camera glyph when the active
// symbol set provides one.
func FormatTitle(name string) string {
	if CurrentSymbols.Camera == "" {
		return name
	}
	return CurrentSymbols.Camera + " " + name
}

// FormatGauge renders a filled/empty bar of the given width.
func FormatGauge(filled, width int) string {
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(CurrentSymbols.GaugeFilled, filled) +
		strings.Repeat(CurrentSymbols.GaugeEmpty, width-filled)
}
