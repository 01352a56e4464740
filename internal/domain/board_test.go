package domain

import (
	"errors"
	"testing"
)

// drawGrid is a full grid without four in a line: columns come in pairs and
// the colour flips on every row.
func drawGrid() Grid {
	var g Grid
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if (c/2+r)%2 == 0 {
				g[r][c] = First
			} else {
				g[r][c] = Second
			}
		}
	}
	return g
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	if b.Outcome() != OnGoing {
		t.Fatalf("expected %q, got %q", OnGoing, b.Outcome())
	}
	if b.IsTerminal() {
		t.Fatal("new board should not be terminal")
	}
	if got := b.Snapshot(); got != (Grid{}) {
		t.Fatalf("expected empty grid, got %v", got)
	}
}

func TestDropFallsToLowestEmptyRow(t *testing.T) {
	b := NewBoard()

	for want := Rows - 1; want >= 0; want-- {
		row, err := b.Drop(3, First)
		if err != nil {
			t.Fatalf("drop %d: unexpected error %v", Rows-want, err)
		}
		if row != want {
			t.Errorf("expected row %d, got %d", want, row)
		}
	}

	g := b.Snapshot()
	for r := 0; r < Rows; r++ {
		if g[r][3] != First {
			t.Errorf("expected First at (%d,3), got %v", r, g[r][3])
		}
	}
}

func TestDropOnFullColumnLeavesBoardUnchanged(t *testing.T) {
	b := NewBoard()
	marks := []Cell{First, Second, First, Second, First, Second}
	for _, m := range marks {
		if _, err := b.Drop(0, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	before := b.Snapshot()
	row, err := b.Drop(0, First)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if row != -1 {
		t.Errorf("expected row -1, got %d", row)
	}
	if b.Snapshot() != before {
		t.Error("grid changed after a rejected drop")
	}
	if b.Outcome() != OnGoing {
		t.Errorf("expected %q, got %q", OnGoing, b.Outcome())
	}
}

func TestDropPanicsOnProgrammerErrors(t *testing.T) {
	tests := []struct {
		name   string
		column int
		mark   Cell
	}{
		{"negative column", -1, First},
		{"column past the edge", Columns, First},
		{"empty mark", 2, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			NewBoard().Drop(tt.column, tt.mark)
		})
	}
}

func TestThreeInARowStaysOnGoing(t *testing.T) {
	b := NewBoard()
	for col := 0; col < 3; col++ {
		if _, err := b.Drop(col, First); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Outcome() != OnGoing {
			t.Fatalf("after column %d: expected %q, got %q", col, OnGoing, b.Outcome())
		}
	}
}

func TestOutcomeFromGrid(t *testing.T) {
	horizontal := Grid{}
	for c := 0; c < 4; c++ {
		horizontal[5][c] = Second
	}

	diagonal := Grid{}
	diagonal[5][0] = First
	diagonal[4][1] = First
	diagonal[3][2] = First
	diagonal[2][3] = First

	antiDiagonal := Grid{}
	antiDiagonal[2][3] = Second
	antiDiagonal[3][4] = Second
	antiDiagonal[4][5] = Second
	antiDiagonal[5][6] = Second

	vertical := Grid{}
	for r := 2; r < Rows; r++ {
		vertical[r][6] = First
	}

	almostFull := drawGrid()
	almostFull[0][6] = Empty

	tests := []struct {
		name string
		grid Grid
		want Outcome
	}{
		{"empty", Grid{}, OnGoing},
		{"bottom row four", horizontal, SecondWon},
		{"rising diagonal", diagonal, FirstWon},
		{"falling diagonal", antiDiagonal, SecondWon},
		{"rightmost column", vertical, FirstWon},
		{"full top row without winner", drawGrid(), Draw},
		{"one slot left", almostFull, OnGoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBoardFromGrid(tt.grid).Outcome(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLastDropMakesDraw(t *testing.T) {
	g := drawGrid()
	last := g[0][6]
	g[0][6] = Empty

	b := NewBoardFromGrid(g)
	if _, err := b.Drop(6, last); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Outcome() != Draw {
		t.Fatalf("expected %q, got %q", Draw, b.Outcome())
	}
}

func TestTerminalBoardRejectsDrops(t *testing.T) {
	b := NewBoard()
	for c := 0; c < 4; c++ {
		if _, err := b.Drop(c, First); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if b.Outcome() != FirstWon {
		t.Fatalf("expected %q, got %q", FirstWon, b.Outcome())
	}

	before := b.Snapshot()
	for c := 0; c < Columns; c++ {
		if _, err := b.Drop(c, Second); !errors.Is(err, ErrGameOver) {
			t.Errorf("column %d: expected ErrGameOver, got %v", c, err)
		}
	}
	if b.Snapshot() != before {
		t.Error("terminal board was modified")
	}
	if b.Outcome() != FirstWon {
		t.Errorf("outcome changed to %q", b.Outcome())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := NewBoard()
	snap := b.Snapshot()
	snap[5][0] = Second

	if got := b.Snapshot()[5][0]; got != Empty {
		t.Errorf("board changed through its snapshot: %v", got)
	}
}

func TestGridHelpers(t *testing.T) {
	g := Grid{}
	g[5][1] = First
	g[4][1] = Second
	for r := 0; r < Rows; r++ {
		g[r][4] = Second
	}

	moves := g.LegalMoves()
	want := []int{0, 1, 2, 3, 5, 6}
	if len(moves) != len(want) {
		t.Fatalf("expected %v, got %v", want, moves)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, moves)
		}
	}

	if cell, ok := g.At(4, 1); !ok || cell != Second {
		t.Errorf("At(4,1) = %v, %v", cell, ok)
	}
	if _, ok := g.At(6, 0); ok {
		t.Error("At(6,0) should be off the board")
	}
	if _, ok := g.At(0, -1); ok {
		t.Error("At(0,-1) should be off the board")
	}

	if !g.Settled() {
		t.Error("grid should be settled")
	}
	g[2][0] = First
	if g.Settled() {
		t.Error("floating coin not detected")
	}

	enc := Grid{}.Encode()
	if len(enc) != Rows*Columns {
		t.Fatalf("expected %d digits, got %d", Rows*Columns, len(enc))
	}
	bottomLeft := Grid{}
	bottomLeft[5][0] = Second
	if got := bottomLeft.Encode(); got[35] != '2' {
		t.Errorf("expected bottom-left digit 2, got %q", got[35])
	}
}
