package domain

// Move is one coin that landed on the board.
type Move struct {
	Column int  `json:"column"`
	Row    int  `json:"row"`
	Mark   Cell `json:"mark"`
}

// Game adds turn order and a move log on top of a Board.
type Game struct {
	board *Board
	turn  Cell
	moves []Move
}

func NewGame(first Cell) *Game {
	return &Game{
		board: NewBoard(),
		turn:  first,
	}
}

// Play drops a coin for mark, which must be the player to move.
func (g *Game) Play(mark Cell, column int) (Move, error) {
	if g.board.IsTerminal() {
		return Move{}, ErrGameOver
	}
	if mark != g.turn {
		return Move{}, ErrNotYourTurn
	}

	row, err := g.board.Drop(column, mark)
	if err != nil {
		return Move{}, err
	}

	move := Move{Column: column, Row: row, Mark: mark}
	g.moves = append(g.moves, move)

	if !g.board.IsTerminal() {
		g.turn = g.turn.Opponent()
	}
	return move, nil
}

func (g *Game) Board() *Board {
	return g.board
}

// Turn is the mark expected to play next. It stays on the last mover once
// the game is over.
func (g *Game) Turn() Cell {
	return g.turn
}

// Moves returns a copy of the move log.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

func (g *Game) IsFinished() bool {
	return g.board.IsTerminal()
}
