package pretty

import (
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// defaultTermWidth is assumed when the writer is not a terminal.
const defaultTermWidth = 100

// TerminalWidth returns the column width of the writer's terminal, or
// defaultTermWidth when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// truncate shortens a string to fit within width display columns,
// appending an ellipsis when anything was cut. Counts columns rather
// than bytes so full-width CJK text never splits mid-rune. Width 0
// means no limit.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
