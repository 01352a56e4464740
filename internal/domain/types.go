package domain

// Cell is the content of one board position.
type Cell int8

const (
	Empty  Cell = 0
	First  Cell = 1 // the human, drawn as "R"
	Second Cell = 2 // the bot, drawn as "Y"
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case First:
		return Second
	case Second:
		return First
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case First:
		return "R"
	case Second:
		return "Y"
	}
	return " "
}

// Outcome is the game status owned by a Board.
type Outcome string

const (
	OnGoing   Outcome = "ongoing"
	FirstWon  Outcome = "first_won"
	SecondWon Outcome = "second_won"
	Draw      Outcome = "draw"
)

// WinFor returns the winning outcome for mark.
func WinFor(mark Cell) Outcome {
	switch mark {
	case First:
		return FirstWon
	case Second:
		return SecondWon
	}
	return OnGoing
}

// Winner returns the mark that won, or Empty for OnGoing and Draw.
func (o Outcome) Winner() Cell {
	switch o {
	case FirstWon:
		return First
	case SecondWon:
		return Second
	}
	return Empty
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
	ErrNotYourTurn   Error = "not your turn"
	ErrInvalidColumn Error = "column must be a number from 1 to 7"
)
