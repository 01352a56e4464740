package bot

import (
	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
)

// Weights for open runs through the landing cell. Lower scores are better
// for the bot, so every open run it leaves behind pulls the score down.
const (
	THREE_DIAGONAL_WEIGHT   = -0.6
	THREE_HORIZONTAL_WEIGHT = -0.4
	THREE_VERTICAL_WEIGHT   = -0.2
	TWO_DIAGONAL_WEIGHT     = -0.3
	TWO_HORIZONTAL_WEIGHT   = -0.2
	TWO_VERTICAL_WEIGHT     = -0.1

	NEIGHBOR_HUMAN_WEIGHT = 0.1
	NEIGHBOR_MOVER_WEIGHT = -0.1
)

type offset struct {
	dRow, dCol int
}

func (o offset) times(n int) offset {
	return offset{o.dRow * n, o.dCol * n}
}

type orientation int

const (
	diagonal orientation = iota
	horizontal
	vertical
)

// LineCounts holds how many open runs pass through a cell, per orientation.
type LineCounts struct {
	Diagonal   int
	Horizontal int
	Vertical   int
}

func (lc *LineCounts) add(o orientation) {
	switch o {
	case diagonal:
		lc.Diagonal++
	case horizontal:
		lc.Horizontal++
	case vertical:
		lc.Vertical++
	}
}

// twoArms are the directions in which a neighbouring coin of the same mark
// starts a run of two. Vertical runs are handled separately.
var twoArms = []struct {
	orient orientation
	dir    offset
}{
	{diagonal, offset{-1, -1}},
	{diagonal, offset{-1, 1}},
	{diagonal, offset{1, -1}},
	{diagonal, offset{1, 1}},
	{horizontal, offset{0, -1}},
	{horizontal, offset{0, 1}},
}

// threePatterns list the pairs of cells that, together with the landing
// cell, form a run of three, and the cell that must stay open for the run
// to count. The offsets are kept exactly as tuned, including the two
// shortened diagonal probes.
var threePatterns = []struct {
	orient   orientation
	same     [2]offset
	open     offset
	needOpen bool
}{
	{diagonal, [2]offset{{-1, -1}, {-2, -2}}, offset{-3, -3}, true},
	{diagonal, [2]offset{{-1, -1}, {1, 1}}, offset{1, 2}, true},
	{diagonal, [2]offset{{-1, 1}, {-1, 2}}, offset{-3, 3}, true},
	{diagonal, [2]offset{{-1, 1}, {1, -1}}, offset{2, -2}, true},
	{horizontal, [2]offset{{0, -1}, {0, -2}}, offset{0, -3}, true},
	{horizontal, [2]offset{{0, -1}, {0, 1}}, offset{0, 2}, true},
	{vertical, [2]offset{{1, 0}, {2, 0}}, offset{}, false},
}

// neighborProbes are read at probe but reported at report. Only the first
// four report the cell they read.
var neighborProbes = []struct {
	probe, report offset
}{
	{offset{-1, -1}, offset{-1, -1}},
	{offset{-1, 1}, offset{-1, 1}},
	{offset{0, -1}, offset{0, -1}},
	{offset{0, 1}, offset{0, 1}},
	{offset{1, -1}, offset{0, -1}},
	{offset{1, 0}, offset{0, 0}},
	{offset{1, 1}, offset{0, 1}},
}

// Neighbor is one probed cell around a landing cell.
type Neighbor struct {
	Row, Col int
	Cell     domain.Cell
}

// Neighbors probes the up to seven cells around (row, col). Probes that fall
// off the board are left out.
func Neighbors(g domain.Grid, row, col int) []Neighbor {
	neighbors := make([]Neighbor, 0, len(neighborProbes))
	for _, p := range neighborProbes {
		cell, ok := g.At(row+p.probe.dRow, col+p.probe.dCol)
		if !ok {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Row:  row + p.report.dRow,
			Col:  col + p.report.dCol,
			Cell: cell,
		})
	}
	return neighbors
}

// openFor reports whether cell does not block a run of mark.
func openFor(cell, mark domain.Cell) bool {
	return cell == domain.Empty || mark == domain.Empty || cell == mark
}

func relative(g domain.Grid, row, col int, o offset) (domain.Cell, bool) {
	return g.At(row+o.dRow, col+o.dCol)
}

// sameAs reports whether the cell at o holds mark. Off-board cells read as
// empty.
func sameAs(g domain.Grid, row, col int, o offset, mark domain.Cell) bool {
	cell, _ := relative(g, row, col, o)
	return cell == mark
}

// openAt reports whether the cell at o is on the board and open for mark.
func openAt(g domain.Grid, row, col int, o offset, mark domain.Cell) bool {
	cell, ok := relative(g, row, col, o)
	return ok && openFor(cell, mark)
}

// CountTwos counts open runs of two through the coin at (row, col).
func CountTwos(g domain.Grid, row, col int) LineCounts {
	mark := g[row][col]
	var counts LineCounts

	for _, arm := range twoArms {
		d := arm.dir
		if !sameAs(g, row, col, d, mark) {
			continue
		}

		if cell, ok := relative(g, row, col, d.times(2)); ok {
			if !openFor(cell, mark) {
				continue
			}
			if openAt(g, row, col, d.times(3), mark) {
				counts.add(arm.orient)
			}
			if openAt(g, row, col, d.times(-1), mark) {
				counts.add(arm.orient)
			}
			continue
		}

		// the arm runs into the edge, so the run has to grow the other way
		if openAt(g, row, col, d.times(-1), mark) && openAt(g, row, col, d.times(-2), mark) {
			counts.add(arm.orient)
		}
	}

	if sameAs(g, row, col, offset{1, 0}, mark) && row > 2 {
		counts.Vertical++
	}

	return counts
}

// CountThrees counts open runs of three through the coin at (row, col).
func CountThrees(g domain.Grid, row, col int) LineCounts {
	mark := g[row][col]
	var counts LineCounts

	for _, p := range threePatterns {
		if !sameAs(g, row, col, p.same[0], mark) || !sameAs(g, row, col, p.same[1], mark) {
			continue
		}
		if p.needOpen && !openAt(g, row, col, p.open, mark) {
			continue
		}
		counts.add(p.orient)
	}

	return counts
}

// heuristicScore scores the position after mover's coin landed at
// (row, col). It does not look for wins.
func heuristicScore(g domain.Grid, row, col int, mover domain.Cell) float64 {
	score := 0.0

	threes := CountThrees(g, row, col)
	twos := CountTwos(g, row, col)

	score += THREE_DIAGONAL_WEIGHT * float64(threes.Diagonal)
	score += THREE_HORIZONTAL_WEIGHT * float64(threes.Horizontal)
	score += THREE_VERTICAL_WEIGHT * float64(threes.Vertical)

	score += TWO_DIAGONAL_WEIGHT * float64(twos.Diagonal)
	score += TWO_HORIZONTAL_WEIGHT * float64(twos.Horizontal)
	score += TWO_VERTICAL_WEIGHT * float64(twos.Vertical)

	human := mover.Opponent()
	for _, n := range Neighbors(g, row, col) {
		switch n.Cell {
		case human:
			score += NEIGHBOR_HUMAN_WEIGHT
		case mover:
			score += NEIGHBOR_MOVER_WEIGHT
		}
	}

	return score
}
