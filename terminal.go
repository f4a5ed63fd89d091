package dotcanvas

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Terminal abstracts the cursor control an animator needs between frames.
type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

// Xterm drives any xterm-compatible terminal.
type Xterm struct {
	Writer io.Writer
}

// ResetCursor moves the cursor to the beginning of the line and up rows.
func (t *Xterm) ResetCursor(rows int) {
	fmt.Fprintf(t.Writer, "\033[999D\033[%dA", rows)
}

func (t *Xterm) ShowCursor(show bool) {
	if show {
		t.Writer.Write([]byte("\033[?12l\033[?25h"))
	} else {
		t.Writer.Write([]byte("\033[?25l"))
	}
}

// Conservative fallback when terminal size detection fails.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// DetectSize reports the terminal dimensions in character cells for the
// given file descriptor. ok is false when the descriptor is not a terminal
// or the query fails, in which case the conservative 80x24 default is
// returned.
func DetectSize(fd int) (cols, rows int, ok bool) {
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols < 1 || rows < 1 {
		return DefaultCols, DefaultRows, false
	}
	return cols, rows, true
}

// DetectCapability infers the terminal's color tier from its environment.
// The env function is typically os.Getenv; unknown or missing values fall
// back to Monochrome, the conservative default.
func DetectCapability(env func(string) string) Capability {
	if env == nil {
		return Monochrome
	}
	switch env("COLORTERM") {
	case "truecolor", "24bit":
		return TrueColor
	}
	termName := env("TERM")
	switch {
	case strings.Contains(termName, "256color"):
		return ANSI256
	case strings.Contains(termName, "color"), strings.HasPrefix(termName, "xterm"), strings.HasPrefix(termName, "screen"):
		return ANSI16
	}
	return Monochrome
}
