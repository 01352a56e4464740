package postgres

import "github.com/iamasit07/4-in-a-row/solo/internal/service/game"

var _ game.GameRepository = (*GameRepo)(nil)
