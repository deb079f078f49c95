package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

// Screen clears the terminal between menus. Clearing is skipped when the
// output is not a terminal so piped and captured output stays readable.
type Screen struct {
	out     io.Writer
	enabled bool
}

// NewScreen returns a Screen that clears out when enabled and out is a terminal.
func NewScreen(out io.Writer, enabled bool) *Screen {
	return &Screen{out: out, enabled: enabled && isTerminal(out)}
}

// Clear wipes the terminal.
func (s *Screen) Clear() {
	if s.enabled {
		fmt.Fprint(s.out, clearSequence)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
