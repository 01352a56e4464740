package console

import (
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
)

const (
	clearScreen   = "\x1B[2J\x1B[1;1H"
	columnNumbers = "  1   2   3   4   5   6   7\n"
	sepLineTop    = "┌───┬───┬───┬───┬───┬───┬───┐\n"
	sepLine       = "├───┼───┼───┼───┼───┼───┼───┤\n"
	sepLineBottom = "└───┴───┴───┴───┴───┴───┴───┘\n"
)

// Render draws the grid with the column numbers the player types.
func Render(w io.Writer, grid domain.Grid) error {
	var sb strings.Builder
	sb.WriteString(columnNumbers)
	sb.WriteString(sepLineTop)

	for row := 0; row < domain.Rows; row++ {
		if row > 0 {
			sb.WriteString(sepLine)
		}
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString("│ ")
			sb.WriteString(grid[row][col].String())
			sb.WriteString(" ")
		}
		sb.WriteString("│\n")
	}

	sb.WriteString(sepLineBottom)
	_, err := io.WriteString(w, sb.String())
	return err
}
