package domain

// Winner scans the whole grid for four equal coins in a line and returns the
// mark of the first run found, or Empty. Rows are scanned first, then
// columns, then "\" diagonals, then "/" diagonals.
func Winner(g Grid) Cell {
	// horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c+ToWin <= Columns; c++ {
			if w := run(g, r, c, 0, 1); w != Empty {
				return w
			}
		}
	}

	// vertical
	for r := 0; r+ToWin <= Rows; r++ {
		for c := 0; c < Columns; c++ {
			if w := run(g, r, c, 1, 0); w != Empty {
				return w
			}
		}
	}

	// diagonal \
	for r := 0; r+ToWin <= Rows; r++ {
		for c := 0; c+ToWin <= Columns; c++ {
			if w := run(g, r, c, 1, 1); w != Empty {
				return w
			}
		}
	}

	// diagonal /
	for r := 0; r+ToWin <= Rows; r++ {
		for c := ToWin - 1; c < Columns; c++ {
			if w := run(g, r, c, 1, -1); w != Empty {
				return w
			}
		}
	}

	return Empty
}

// run returns the mark shared by the ToWin cells starting at (r, c) along
// (dr, dc), or Empty if they differ.
func run(g Grid, r, c, dr, dc int) Cell {
	first := g[r][c]
	if first == Empty {
		return Empty
	}
	for i := 1; i < ToWin; i++ {
		if g[r+i*dr][c+i*dc] != first {
			return Empty
		}
	}
	return first
}

// CheckWin reports whether mark has four in a line through (row, column).
// It only looks at the four lines crossing that cell, so it agrees with
// Winner whenever (row, column) holds the last coin played.
func CheckWin(g Grid, row, column int, mark Cell) bool {
	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{1, -1}, // diagonal /
	}

	for _, d := range directions {
		count := 1 + CountInDirection(g, row, column, d[0], d[1], mark) +
			CountInDirection(g, row, column, -d[0], -d[1], mark)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// CountInDirection counts consecutive mark coins starting next to (row, column).
func CountInDirection(g Grid, row, column, deltaRow, deltaCol int, mark Cell) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && g[r][c] == mark {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
