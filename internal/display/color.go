// internal/display/color.go
//
// ANSI color and style helpers for the dashboard.
//
// Color usage is controlled by:
//   • Theme.Color (ColorModeAuto, ColorModeAlways, ColorModeNever)
//   • Environment variables (e.g. NO_COLOR, TERM)
//   • Whether stdout is a terminal
//
// so that in auto mode, redirecting the dashboard's output to a log file
// leaves no color codes behind. The dashboard's cursor-movement
// sequences are written regardless of these settings.

package display

import (
	"os"
	"strings"
	"sync"
)

// ansiStyle represents a pair of ANSI escape codes for styling text.
//
// Example:
//
//	ansiStyle{Open: "\x1b[1m", Close: "\x1b[0m"}   // bold
type ansiStyle struct {
	Open  string
	Close string
}

// Predefined basic styles used by the status line.
var (
	ansiBold = ansiStyle{Open: "\x1b[1m", Close: "\x1b[0m"}
	ansiDim  = ansiStyle{Open: "\x1b[2m", Close: "\x1b[0m"}

	ansiCyan   = ansiStyle{Open: "\x1b[36m", Close: "\x1b[39m"}
	ansiGreen  = ansiStyle{Open: "\x1b[32m", Close: "\x1b[39m"}
	ansiYellow = ansiStyle{Open: "\x1b[33m", Close: "\x1b[39m"}
	ansiRed    = ansiStyle{Open: "\x1b[31m", Close: "\x1b[39m"}
)

// colorSupport encapsulates lazy detection flags for ANSI support.
var (
	colorSupportOnce sync.Once
	colorSupported   bool
)

// detectColorSupport performs a one-time, best-effort detection of
// whether ANSI colors are likely to be supported in the current
// environment.
//
// The logic is deliberately simple:
//
//   - If NO_COLOR is set → no color.
//   - If TERM is empty or "dumb" → no color.
//   - If stdout is not a terminal → no color.
//   - Otherwise → assume color is supported.
//
// Applications that need stricter or richer logic can wrap Display
// outputs and apply their own transformations.
func detectColorSupport() {
	colorSupportOnce.Do(func() {
		// NO_COLOR explicitly disables colors.
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			colorSupported = false
			return
		}

		term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
		if term == "" || term == "dumb" {
			colorSupported = false
			return
		}

		if !isTerminal(os.Stdout.Fd()) {
			colorSupported = false
			return
		}

		// Default: assume color is available.
		colorSupported = true
	})
}

// isColorEnabled returns true if color should be used under the given
// Theme and environment conditions.
func isColorEnabled(t Theme) bool {
	switch t.Color {
	case ColorModeNever:
		return false
	case ColorModeAlways:
		return true
	case ColorModeAuto:
		detectColorSupport()
		return colorSupported
	default:
		// Unknown mode → conservative: no color.
		return false
	}
}

// applyStyle applies a given ansiStyle to text if color is enabled
// for the provided Theme. Otherwise, it returns the text unchanged.
func applyStyle(t Theme, s string, style ansiStyle) string {
	if s == "" {
		return s
	}
	if !isColorEnabled(t) {
		return s
	}
	return style.Open + s + style.Close
}

// styleBold emphasizes a status-slot label.
func styleBold(t Theme, s string) string {
	return applyStyle(t, s, ansiBold)
}

// styleDim renders a slot's previous value while it is being replaced.
func styleDim(t Theme, s string) string {
	return applyStyle(t, s, ansiDim)
}

// styleCode renders the current local path in a subtle color.
func styleCode(t Theme, s string) string {
	return applyStyle(t, s, ansiCyan)
}

// styleStatus colors an HTTP status code per the green 2xx / orange 3xx /
// red else convention from the error-handling design.
func styleStatus(t Theme, s string, code int) string {
	return applyStyle(t, s, statusColor(code))
}
