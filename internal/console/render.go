package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/gridgames/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	files       = "  A B C D E F G H"
	highlightOn = "\033[91m"
	resetColor  = "\033[0m"
)

var titleCase = cases.Title(language.English)

func displayName(c model.Color) string {
	return titleCase.String(string(c))
}

// renderBoard draws the grid with rank labels on both sides. Cells listed in highlight are
// drawn in red, or followed by "*" when plain is set.
func renderBoard(w io.Writer, grid [8][8]string, highlight []model.Position, plain bool) {
	marked := make(map[model.Position]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	var sb strings.Builder
	sb.WriteString(files + "\n")
	for y, row := range grid {
		fmt.Fprintf(&sb, "%d ", 8-y)
		for x, cell := range row {
			switch {
			case !marked[model.Position{X: x, Y: y}]:
				sb.WriteString(cell + " ")
			case plain:
				sb.WriteString(cell + "*")
			default:
				sb.WriteString(highlightOn + cell + resetColor + " ")
			}
		}
		fmt.Fprintf(&sb, "%d\n", 8-y)
	}
	sb.WriteString(files + "\n")
	io.WriteString(w, sb.String())
}

// renderThreats prints the board followed by the threat summary for the side to move.
func renderThreats(w io.Writer, state model.GameState, plain bool) {
	renderBoard(w, state.Board, state.Threatened, plain)
	if state.IsCheck {
		fmt.Fprintln(w, "King is in check!")
	}
	if len(state.Threatened) == 0 {
		fmt.Fprintln(w, "No threatened pieces.")
		return
	}
	squares := make([]string, 0, len(state.Threatened))
	for _, pos := range state.Threatened {
		squares = append(squares, pos.String())
	}
	fmt.Fprintf(w, "Threatened pieces: %s\n", strings.Join(squares, ", "))
}

func renderHistory(w io.Writer, history []model.HistoryEntry) {
	fmt.Fprintln(w, "Move history:")
	if len(history) == 0 {
		fmt.Fprintln(w, "No moves were made.")
		return
	}
	for i, entry := range history {
		fmt.Fprintf(w, "%d. %s: %s -> %s\n", i+1, displayName(entry.Player), entry.From, entry.To)
	}
}
