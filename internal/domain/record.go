package domain

import "time"

// GameRecord is the summary of a finished game kept in the history store.
type GameRecord struct {
	GameID     string    `json:"game_id"`
	HumanMark  Cell      `json:"human_mark"`
	Outcome    Outcome   `json:"outcome"`
	Moves      []Move    `json:"moves"`
	Board      Grid      `json:"board"`
	CreatedAt  time.Time `json:"created_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration is the wall-clock length of the game.
func (r GameRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.CreatedAt)
}

// Stats aggregates finished games from the human's point of view.
type Stats struct {
	Played    int `json:"played"`
	HumanWins int `json:"human_wins"`
	BotWins   int `json:"bot_wins"`
	Draws     int `json:"draws"`
}
