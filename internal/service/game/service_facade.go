package game

import (
	"context"

	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
)

// GameRepository stores finished games. Service works without one.
type GameRepository interface {
	SaveGame(record domain.GameRecord) error
	Stats() (domain.Stats, error)
	RecentGames(limit int) ([]domain.GameRecord, error)
}

// MovePicker chooses the bot's column.
type MovePicker interface {
	ChooseMove(ctx context.Context, grid domain.Grid, mover domain.Cell) int
}

// Service is the entry point for game logic (facade)
type Service struct {
	Repo       GameRepository
	Picker     MovePicker
	HumanFirst bool
}

func NewService(repo GameRepository, picker MovePicker, humanFirst bool) *Service {
	return &Service{
		Repo:       repo,
		Picker:     picker,
		HumanFirst: humanFirst,
	}
}
