package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// SaveGame stores a finished game. Saving the same game twice overwrites it.
func (r *GameRepo) SaveGame(record domain.GameRecord) error {
	movesJSON, err := json.Marshal(record.Moves)
	if err != nil {
		return fmt.Errorf("failed to marshal moves: %w", err)
	}
	boardJSON, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %w", err)
	}

	query := `
	INSERT INTO game (game_id, human_mark, outcome, total_moves, duration_seconds, moves, board_state, created_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (game_id) DO UPDATE SET
		outcome = EXCLUDED.outcome,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		moves = EXCLUDED.moves,
		board_state = EXCLUDED.board_state,
		finished_at = EXCLUDED.finished_at;
	`

	_, err = r.DB.Exec(query,
		record.GameID,
		int(record.HumanMark),
		string(record.Outcome),
		len(record.Moves),
		int(record.Duration().Seconds()),
		string(movesJSON),
		string(boardJSON),
		record.CreatedAt,
		record.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %w", err)
	}
	return nil
}

// Stats counts finished games from the human's side.
func (r *GameRepo) Stats() (domain.Stats, error) {
	query := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE (outcome = $1 AND human_mark = $3) OR (outcome = $2 AND human_mark = $4)),
		COUNT(*) FILTER (WHERE (outcome = $1 AND human_mark = $4) OR (outcome = $2 AND human_mark = $3)),
		COUNT(*) FILTER (WHERE outcome = $5)
	FROM game;
	`

	var stats domain.Stats
	err := r.DB.QueryRow(query,
		string(domain.FirstWon),
		string(domain.SecondWon),
		int(domain.First),
		int(domain.Second),
		string(domain.Draw),
	).Scan(&stats.Played, &stats.HumanWins, &stats.BotWins, &stats.Draws)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to query game stats: %w", err)
	}
	return stats, nil
}

// RecentGames returns the last finished games, newest first.
func (r *GameRepo) RecentGames(limit int) ([]domain.GameRecord, error) {
	query := `
	SELECT game_id, human_mark, outcome, moves, board_state, created_at, finished_at
	FROM game
	ORDER BY finished_at DESC
	LIMIT $1;
	`

	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game history: %w", err)
	}
	defer rows.Close()

	var games []domain.GameRecord
	for rows.Next() {
		var record domain.GameRecord
		var humanMark int
		var outcome string
		var movesJSON, boardJSON []byte

		err := rows.Scan(
			&record.GameID,
			&humanMark,
			&outcome,
			&movesJSON,
			&boardJSON,
			&record.CreatedAt,
			&record.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}

		record.HumanMark = domain.Cell(humanMark)
		record.Outcome = domain.Outcome(outcome)

		if movesJSON != nil {
			if err := json.Unmarshal(movesJSON, &record.Moves); err != nil {
				return nil, fmt.Errorf("failed to unmarshal moves: %w", err)
			}
		}
		if boardJSON != nil {
			if err := json.Unmarshal(boardJSON, &record.Board); err != nil {
				return nil, fmt.Errorf("failed to unmarshal board state: %w", err)
			}
		}

		games = append(games, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game history: %w", err)
	}
	return games, nil
}
