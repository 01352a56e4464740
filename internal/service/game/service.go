package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/solo/internal/domain"
	"github.com/iamasit07/4-in-a-row/solo/pkg/uid"
)

// Session is one game between the human and the bot. The human always
// plays First ("R") and the bot Second ("Y"); HumanFirst only decides who
// opens.
type Session struct {
	GameID     string
	Game       *domain.Game
	Human      domain.Cell
	Bot        domain.Cell
	CreatedAt  time.Time
	FinishedAt time.Time
	saved      bool
}

func (s *Service) NewSession() *Session {
	opener := domain.First
	if !s.HumanFirst {
		opener = domain.Second
	}

	session := &Session{
		GameID:    uid.GenerateGameID(),
		Game:      domain.NewGame(opener),
		Human:     domain.First,
		Bot:       domain.Second,
		CreatedAt: time.Now(),
	}
	log.Printf("[GAME] Created session %s (human first: %t)", session.GameID, s.HumanFirst)
	return session
}

// IsHumanTurn reports whether the session waits for the human.
func (gs *Session) IsHumanTurn() bool {
	return !gs.Game.IsFinished() && gs.Game.Turn() == gs.Human
}

// PlayHuman drops the human's coin into a 0-based column.
func (s *Service) PlayHuman(session *Session, column int) (domain.Move, error) {
	if column < 0 || column >= domain.Columns {
		return domain.Move{}, domain.ErrInvalidColumn
	}
	return session.Game.Play(session.Human, column)
}

// PlayBot lets the bot move and returns the move it made.
func (s *Service) PlayBot(ctx context.Context, session *Session) (domain.Move, error) {
	if session.Game.IsFinished() {
		return domain.Move{}, domain.ErrGameOver
	}
	if session.Game.Turn() != session.Bot {
		return domain.Move{}, domain.ErrNotYourTurn
	}

	column := s.Picker.ChooseMove(ctx, session.Game.Board().Snapshot(), session.Bot)
	move, err := session.Game.Play(session.Bot, column)
	if err != nil {
		return domain.Move{}, fmt.Errorf("bot picked column %d: %w", column, err)
	}
	return move, nil
}

// Record summarises a finished session.
func (gs *Session) Record() domain.GameRecord {
	return domain.GameRecord{
		GameID:     gs.GameID,
		HumanMark:  gs.Human,
		Outcome:    gs.Game.Board().Outcome(),
		Moves:      gs.Game.Moves(),
		Board:      gs.Game.Board().Snapshot(),
		CreatedAt:  gs.CreatedAt,
		FinishedAt: gs.FinishedAt,
	}
}

var errNotFinished = errors.New("game is not finished")

// Finish stamps the end time and saves the game once, if a repository is
// configured.
func (s *Service) Finish(session *Session) error {
	if !session.Game.IsFinished() {
		return errNotFinished
	}
	if session.saved {
		return nil
	}
	if session.FinishedAt.IsZero() {
		session.FinishedAt = time.Now()
	}

	log.Printf("[GAME] Game %s finished: %s after %d moves",
		session.GameID, session.Game.Board().Outcome(), len(session.Game.Moves()))

	if s.Repo == nil {
		return nil
	}
	if err := s.Repo.SaveGame(session.Record()); err != nil {
		log.Printf("[GAME] Error saving game %s: %v", session.GameID, err)
		return err
	}
	session.saved = true
	log.Printf("[GAME] Game %s saved successfully", session.GameID)
	return nil
}

// Stats returns the stored totals, or zeros when history is disabled.
func (s *Service) Stats() (domain.Stats, bool, error) {
	if s.Repo == nil {
		return domain.Stats{}, false, nil
	}
	stats, err := s.Repo.Stats()
	if err != nil {
		return domain.Stats{}, false, err
	}
	return stats, true, nil
}

// RecentGames returns the last finished games, newest first. ok is false
// when history is disabled.
func (s *Service) RecentGames(limit int) ([]domain.GameRecord, bool, error) {
	if s.Repo == nil {
		return nil, false, nil
	}
	games, err := s.Repo.RecentGames(limit)
	if err != nil {
		return nil, false, err
	}
	return games, true, nil
}
