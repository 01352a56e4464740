package domain

import (
	"errors"
	"testing"
)

func TestGameAlternatesTurns(t *testing.T) {
	g := NewGame(First)

	if _, err := g.Play(Second, 0); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	move, err := g.Play(First, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move != (Move{Column: 3, Row: 5, Mark: First}) {
		t.Errorf("unexpected move %+v", move)
	}
	if g.Turn() != Second {
		t.Errorf("expected Second to move, got %v", g.Turn())
	}

	if _, err := g.Play(Second, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Moves()) != 2 {
		t.Errorf("expected 2 moves, got %d", len(g.Moves()))
	}
}

func TestGameKeepsTurnOnRejectedMove(t *testing.T) {
	g := NewGame(Second)
	for i := 0; i < Rows; i++ {
		if _, err := g.Play(g.Turn(), 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	turn := g.Turn()
	if _, err := g.Play(turn, 2); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if g.Turn() != turn {
		t.Error("turn passed after a rejected move")
	}
	if len(g.Moves()) != Rows {
		t.Errorf("expected %d moves, got %d", Rows, len(g.Moves()))
	}
}

func TestGameStopsAfterWin(t *testing.T) {
	g := NewGame(First)
	// First builds the bottom row, Second stacks on top of it.
	for c := 0; c < 3; c++ {
		if _, err := g.Play(First, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := g.Play(Second, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := g.Play(First, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !g.IsFinished() || g.Board().Outcome() != FirstWon {
		t.Fatalf("expected %q, got %q", FirstWon, g.Board().Outcome())
	}
	if g.Turn() != First {
		t.Errorf("turn should stay on the winner, got %v", g.Turn())
	}
	if _, err := g.Play(Second, 4); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestMovesReturnsCopy(t *testing.T) {
	g := NewGame(First)
	if _, err := g.Play(First, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moves := g.Moves()
	moves[0].Column = 6
	if g.Moves()[0].Column != 0 {
		t.Error("move log changed through the returned slice")
	}
}

func TestOutcomeWinner(t *testing.T) {
	if FirstWon.Winner() != First || SecondWon.Winner() != Second {
		t.Error("wrong winner for win outcomes")
	}
	if Draw.Winner() != Empty || OnGoing.Winner() != Empty {
		t.Error("draw and ongoing have no winner")
	}
	if First.Opponent() != Second || Second.Opponent() != First || Empty.Opponent() != Empty {
		t.Error("wrong opponent mapping")
	}
}
