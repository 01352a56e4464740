package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
	"github.com/iamasit07/4-in-a-row/solo/internal/service/game"
)

const recentGamesShown = 5

type Handler struct {
	svc          *game.Service
	in           *bufio.Scanner
	out          io.Writer
	clearScreen  bool
	restartDelay time.Duration
}

func NewHandler(svc *game.Service, in io.Reader, out io.Writer, clearBetweenTurns bool, restartDelay time.Duration) *Handler {
	return &Handler{
		svc:          svc,
		in:           bufio.NewScanner(in),
		out:          out,
		clearScreen:  clearBetweenTurns,
		restartDelay: restartDelay,
	}
}

// Run plays games back to back until the input ends or ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	for {
		err := h.PlayGame(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(h.restartDelay):
		}
	}
}

// PlayGame runs one game to the end. It returns io.EOF if the input ran out
// before the game was over.
func (h *Handler) PlayGame(ctx context.Context) error {
	session := h.svc.NewSession()
	errorMessage := ""

	for !session.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !session.IsHumanTurn() {
			if _, err := h.svc.PlayBot(ctx, session); err != nil {
				return err
			}
			continue
		}

		if err := h.draw(session.Game.Board().Snapshot()); err != nil {
			return err
		}
		fmt.Fprintf(h.out, "%sPlayer's turn\nEnter column(1-7): ", errorMessage)

		line, err := h.readLine()
		if err != nil {
			return err
		}

		column, err := ParseColumn(line)
		if err != nil {
			errorMessage = "Column must be a number from 1 to 7\n"
			continue
		}

		if _, err := h.svc.PlayHuman(session, column); err != nil {
			if errors.Is(err, domain.ErrColumnFull) {
				errorMessage = fmt.Sprintf("Cannot place coin in column %d\n", column+1)
				continue
			}
			return err
		}
		errorMessage = ""
	}

	if err := h.draw(session.Game.Board().Snapshot()); err != nil {
		return err
	}
	fmt.Fprintln(h.out, resultLine(session))

	if err := h.svc.Finish(session); err != nil {
		log.Printf("[GAME] History not updated: %v", err)
	}
	h.printStats()
	return nil
}

func (h *Handler) draw(grid domain.Grid) error {
	if h.clearScreen {
		if _, err := io.WriteString(h.out, clearScreen); err != nil {
			log.Printf("[GAME] Failed to clear screen: %v", err)
			return err
		}
	}
	if err := Render(h.out, grid); err != nil {
		log.Printf("[GAME] Failed to draw board: %v", err)
		return err
	}
	return nil
}

func (h *Handler) readLine() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(h.in.Text()), nil
}

func (h *Handler) printStats() {
	stats, ok, err := h.svc.Stats()
	if err != nil {
		log.Printf("[GAME] Could not load stats: %v", err)
		return
	}
	if !ok {
		return
	}
	fmt.Fprintf(h.out, "Games: %d  Won: %d  Lost: %d  Draws: %d\n",
		stats.Played, stats.HumanWins, stats.BotWins, stats.Draws)

	games, _, err := h.svc.RecentGames(recentGamesShown)
	if err != nil {
		log.Printf("[GAME] Could not load recent games: %v", err)
		return
	}
	if len(games) == 0 {
		return
	}
	results := make([]string, 0, len(games))
	for _, g := range games {
		results = append(results, recordResult(g))
	}
	fmt.Fprintf(h.out, "Last games: %s\n", strings.Join(results, ", "))
}

// recordResult names a stored game's result from the player's side.
func recordResult(record domain.GameRecord) string {
	switch record.Outcome.Winner() {
	case record.HumanMark:
		return "Won"
	case domain.Empty:
		return "Draw"
	}
	return "Lost"
}

func resultLine(session *game.Session) string {
	switch session.Game.Board().Outcome().Winner() {
	case session.Human:
		return "Player Won"
	case session.Bot:
		return "Computer Won"
	}
	return "Draw"
}

// ParseColumn turns the 1-based column a player typed into a 0-based index.
func ParseColumn(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > domain.Columns {
		return -1, domain.ErrInvalidColumn
	}
	return n - 1, nil
}
