// internal/display/width.go
//
// Terminal width detection for the dashboard's status line, so that a
// long URL or local path gets truncated instead of wrapping and
// scrolling the fixed-cell layout out of place.
//
// Normal rules:
//   • If theme.MaxWidth > 0 → always use it
//   • Else if stdout is a TTY → try TIOCGWINSZ
//   • Else fallback to DefaultWidth (80 chars)
//
// TTY detection is delegated to go-isatty; the width ioctl itself has
// no ready-made library in this stack, so it stays a direct syscall.

package display

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/mattn/go-isatty"
)

// DefaultWidth is used when terminal size cannot be detected.
const DefaultWidth = 80

// winSize mirrors the system struct used by ioctl(TIOCGWINSZ).
type winSize struct {
	Rows uint16
	Cols uint16
	X    uint16
	Y    uint16
}

// DetectTerminalWidth attempts to read terminal width using ioctl.
// Returns (width, ok).
//
// This is a best-effort detection. If detection fails, ok=false.
func DetectTerminalWidth() (int, bool) {
	ws := &winSize{}

	// Use STDOUT for detection.
	fd := os.Stdout.Fd()

	// Only attempt on character devices.
	if !isTerminal(fd) {
		return 0, false
	}

	// Invoke ioctl(TIOCGWINSZ).
	_, _, errno := syscall.Syscall(
		syscall.SYS_IOCTL,
		fd,
		uintptr(syscall.TIOCGWINSZ),
		uintptr(unsafe.Pointer(ws)),
	)
	if errno != 0 {
		return 0, false
	}

	if ws.Cols == 0 {
		return 0, false
	}

	return int(ws.Cols), true
}

// isTerminal checks whether the given file descriptor refers to a TTY.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd)
}

// truncateToWidth clips s to at most width bytes, replacing the tail
// with an ellipsis when it does not fit. A width of 3 or less leaves s
// unchanged. Used to keep a single status slot from wrapping onto the
// next cursor-addressed line.
func truncateToWidth(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
