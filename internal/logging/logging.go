// Package logging sets up the zerolog logger. The TUI owns the terminal,
// so log output goes to a file under the state directory, and only when
// TGMONEY_DEBUG is set.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// StateDir returns the XDG-compliant state directory.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "tgmoney")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "tgmoney")
}

// LogPath returns the debug log file path.
func LogPath() string {
	return filepath.Join(StateDir(), "debug.log")
}

// New returns the process logger. Disabled unless TGMONEY_DEBUG is set;
// falls back to a disabled logger if the log file can't be opened.
func New() zerolog.Logger {
	if os.Getenv("TGMONEY_DEBUG") == "" {
		return zerolog.Nop()
	}

	if err := os.MkdirAll(StateDir(), 0o755); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(LogPath(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop()
	}

	var w io.Writer = f
	return zerolog.New(w).With().Timestamp().Logger()
}
