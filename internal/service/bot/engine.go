package bot

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
)

var (
	// SCORE_FORCED_WIN marks a column where the bot's own coin completes four.
	SCORE_FORCED_WIN = math.Inf(-1)
	// SCORE_FORCED_LOSS marks a column after which the human has a winning reply.
	SCORE_FORCED_LOSS = math.Inf(1)
)

// ColumnScore is the score of dropping into one column. Lower is better for
// the mover.
type ColumnScore struct {
	Column int
	Score  float64
}

// ChooseMove returns the column mover should play on grid. The grid must
// have at least one legal column.
func ChooseMove(grid domain.Grid, mover domain.Cell) int {
	scores := Scores(grid, mover)
	if len(scores) == 0 {
		panic("bot: no legal column to choose from")
	}
	return findBestColumn(scores)
}

// Scores evaluates every legal column of grid, in ascending column order.
func Scores(grid domain.Grid, mover domain.Cell) []ColumnScore {
	moves := grid.LegalMoves()
	scores := make([]ColumnScore, 0, len(moves))
	for _, col := range moves {
		scores = append(scores, ColumnScore{Column: col, Score: EvaluateMove(grid, col, mover)})
	}
	return scores
}

// EvaluateMove scores mover dropping into column, which must be legal.
func EvaluateMove(grid domain.Grid, column int, mover domain.Cell) float64 {
	if mover != domain.First && mover != domain.Second {
		panic("bot: mover must be a player")
	}
	human := mover.Opponent()

	scratch := grid
	row, err := scratch.Drop(column, mover)
	if err != nil {
		panic("bot: evaluating full column " + strconv.Itoa(column))
	}

	switch domain.Winner(scratch) {
	case mover:
		return SCORE_FORCED_WIN
	case human:
		// only reachable when the grid was already lost before the move
		return SCORE_FORCED_LOSS
	}

	// Can the human win with any reply? Replies come from the columns that
	// were open before the move.
	for _, col := range grid.LegalMoves() {
		probeRow, err := scratch.Drop(col, human)
		if err != nil {
			continue
		}
		won := domain.Winner(scratch) == human
		scratch[probeRow][col] = domain.Empty
		if won {
			return SCORE_FORCED_LOSS
		}
	}

	return heuristicScore(scratch, row, column, mover)
}

// findBestColumn picks the lowest score. Ties go to the lowest column.
func findBestColumn(scores []ColumnScore) int {
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score < best.Score {
			best = s
		}
	}
	return best.Column
}

// Cache is the subset of a key/value store the Engine needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, key string) error
}

// Engine is ChooseMove with an optional cache in front of it.
type Engine struct {
	cache Cache
	ttl   time.Duration
}

// NewEngine returns an Engine. A nil cache evaluates every position.
func NewEngine(cache Cache, ttl time.Duration) *Engine {
	return &Engine{cache: cache, ttl: ttl}
}

func moveCacheKey(grid domain.Grid, mover domain.Cell) string {
	return "c4:move:" + strconv.Itoa(int(mover)) + ":" + grid.Encode()
}

// ChooseMove behaves like the package level ChooseMove. Cache failures are
// logged and never change the answer.
func (e *Engine) ChooseMove(ctx context.Context, grid domain.Grid, mover domain.Cell) int {
	if e == nil || e.cache == nil {
		return ChooseMove(grid, mover)
	}

	key := moveCacheKey(grid, mover)
	if cached, err := e.cache.Get(ctx, key); err == nil {
		col, convErr := strconv.Atoi(cached)
		if convErr == nil && col >= 0 && col < domain.Columns && grid[0][col] == domain.Empty {
			return col
		}
		log.Printf("[BOT] Evicting bad cached move %q for %s", cached, key)
		if err := e.cache.Del(ctx, key); err != nil {
			log.Printf("[BOT] Failed to evict cached move: %v", err)
		}
	}

	col := ChooseMove(grid, mover)
	if err := e.cache.Set(ctx, key, strconv.Itoa(col), e.ttl); err != nil {
		log.Printf("[BOT] Failed to cache move: %v", err)
	}
	return col
}
