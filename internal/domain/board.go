package domain

import (
	"fmt"
	"strings"
)

// Grid is a 6x7 snapshot of the board. Row 0 is the top row.
type Grid [Rows][Columns]Cell

// Drop lets a coin fall to the lowest empty row of column and returns that row.
func (g *Grid) Drop(column int, mark Cell) (int, error) {
	if g[0][column] != Empty {
		return -1, ErrColumnFull
	}

	// shifting the disk down till it reaches the bottom or another disk
	row := 0
	for row+1 < Rows && g[row+1][column] == Empty {
		row++
	}
	g[row][column] = mark
	return row, nil
}

// At returns the cell at (row, col) and whether the position is on the board.
func (g Grid) At(row, col int) (Cell, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return Empty, false
	}
	return g[row][col], true
}

// LegalMoves lists the columns that still accept a coin, in ascending order.
func (g Grid) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if g[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

func (g Grid) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if g[0][col] == Empty {
			return false
		}
	}
	return true
}

// Settled reports whether every column obeys gravity: no empty cell sits
// below an occupied one.
func (g Grid) Settled() bool {
	for col := 0; col < Columns; col++ {
		seen := false
		for row := 0; row < Rows; row++ {
			if g[row][col] != Empty {
				seen = true
			} else if seen {
				return false
			}
		}
	}
	return true
}

// Encode packs the grid into 42 digits, row by row.
func (g Grid) Encode() string {
	var sb strings.Builder
	sb.Grow(Rows * Columns)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteByte(byte('0' + g[row][col]))
		}
	}
	return sb.String()
}

// Board owns a grid and its outcome. Drop is the only way to change either.
type Board struct {
	grid    Grid
	outcome Outcome
}

func NewBoard() *Board {
	return &Board{outcome: OnGoing}
}

// NewBoardFromGrid builds a board around an existing grid and computes its
// outcome right away.
func NewBoardFromGrid(grid Grid) *Board {
	b := &Board{grid: grid}
	b.outcome = outcomeOf(b.grid)
	return b
}

// Drop inserts a coin for mark into column. column must be in [0, Columns)
// and mark must be a player; anything else is a programming error.
func (b *Board) Drop(column int, mark Cell) (int, error) {
	if column < 0 || column >= Columns {
		panic(fmt.Sprintf("domain: column %d out of range", column))
	}
	if mark != First && mark != Second {
		panic(fmt.Sprintf("domain: cannot drop mark %d", mark))
	}
	if b.IsTerminal() {
		return -1, ErrGameOver
	}

	row, err := b.grid.Drop(column, mark)
	if err != nil {
		return -1, err
	}
	b.outcome = outcomeOf(b.grid)
	return row, nil
}

func (b *Board) Outcome() Outcome {
	return b.outcome
}

func (b *Board) IsTerminal() bool {
	return b.outcome != OnGoing
}

// Snapshot returns a copy of the grid.
func (b *Board) Snapshot() Grid {
	return b.grid
}

// outcomeOf rescans the whole grid rather than the lines through the last coin.
func outcomeOf(g Grid) Outcome {
	if w := Winner(g); w != Empty {
		return WinFor(w)
	}
	if g.IsFull() {
		return Draw
	}
	return OnGoing
}
