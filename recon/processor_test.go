package recon

import (
	"errors"
	"reflect"
	"testing"

	"omaha-recon/detect"
	"omaha-recon/poker"
)

func cardDetections(names ...string) []detect.Detection {
	out := make([]detect.Detection, len(names))
	for i, name := range names {
		out[i] = detect.Detection{Name: name, Score: 0.99}
	}
	return out
}

func fullCycleInput() Input {
	return Input{
		PlayerCards: cardDetections("AS", "KD", "QH", "JD"),
		TableCards:  cardDetections("10S", "9S", "2H"),
		Positions: seatDetections(map[int]string{
			1: "EP",
			2: "MP",
			3: "folds",
			4: "BTN_fold",
			5: "SB",
			6: "BB",
		}),
		Actions: map[int][]detect.Detection{
			1: actionDetections("fold"),
			2: actionDetections("fold"),
			3: actionDetections("call_35", "bet"),
			4: actionDetections("fold"),
			5: actionDetections("fold"),
			6: actionDetections("check", "check", "call_35"),
		},
	}
}

func TestProcessFullCycle(t *testing.T) {
	snap, err := NewProcessor(nil).Process(fullCycleInput())
	if err != nil {
		t.Fatalf("Process err: %v", err)
	}
	if snap.CycleID == "" {
		t.Fatal("missing cycle id")
	}
	if snap.Seats[3] != poker.Cutoff {
		t.Fatalf("seat 3 = %v, want inferred CO", snap.Seats[3])
	}

	wantPreflop := []MoveRecord{
		{Position: poker.EarlyPosition, Move: poker.MoveFold},
		{Position: poker.MiddlePosition, Move: poker.MoveFold},
		{Position: poker.Cutoff, Move: poker.MoveCall},
		{Position: poker.Button, Move: poker.MoveFold},
		{Position: poker.SmallBlind, Move: poker.MoveFold},
		{Position: poker.BigBlind, Move: poker.MoveCheck},
	}
	if !reflect.DeepEqual(snap.Moves[poker.Preflop], wantPreflop) {
		t.Fatalf("preflop = %v, want %v", snap.Moves[poker.Preflop], wantPreflop)
	}
	if len(snap.Moves[poker.Flop]) != 3 {
		t.Fatalf("flop = %v, want 3 moves", snap.Moves[poker.Flop])
	}

	if snap.HeroHand == nil {
		t.Fatal("expected hero hand annotation on a flop cycle")
	}
	if street, ok := snap.Street(); !ok || street != poker.Flop {
		t.Fatalf("street = %v, %v, want flop", street, ok)
	}
	if !snap.HasMoves() || !snap.HasCards() {
		t.Fatal("snapshot predicates disagree with content")
	}
}

func TestProcessInsufficientSeats(t *testing.T) {
	in := fullCycleInput()
	in.Positions = seatDetections(map[int]string{1: "BTN", 2: "SB"})

	snap, err := NewProcessor(nil).Process(in)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if snap == nil || len(snap.PlayerCards) != 4 {
		t.Fatal("failed cycle must still carry the raw detections")
	}
	if snap.HasMoves() {
		t.Fatal("failed cycle must not carry a move history")
	}
}

func TestProcessUnsupportedPlayerCount(t *testing.T) {
	in := fullCycleInput()
	// One direct badge only: recovery assigns a single position, which no
	// seat ring covers.
	in.Positions = seatDetections(map[int]string{
		1: "BTN",
		2: "NO",
		3: "NO",
		4: "NO",
		5: "NO",
		6: "NO",
	})
	in.Actions = map[int][]detect.Detection{}

	snap, err := NewProcessor(nil).Process(in)
	var countErr *WrongPlayerCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("expected WrongPlayerCountError, got %v", err)
	}
	if countErr.Count != 1 {
		t.Fatalf("Count = %d, want 1", countErr.Count)
	}
	if snap.HasMoves() {
		t.Fatal("failed cycle must not carry a move history")
	}
}

func TestProcessReplayFailureDiscardsHistory(t *testing.T) {
	in := fullCycleInput()
	// The small blind owes half a blind; a check is not available.
	in.Actions[5] = actionDetections("check")

	snap, err := NewProcessor(nil).Process(in)
	var actErr *InvalidActionError
	if !errors.As(err, &actErr) {
		t.Fatalf("expected InvalidActionError, got %v", err)
	}
	if snap.HasMoves() {
		t.Fatalf("moves = %v, want none", snap.Moves)
	}
	if len(snap.Seats) == 0 {
		t.Fatal("recovered seats should survive a replay failure")
	}
}

func TestProcessPreflopCycleSkipsHeroHand(t *testing.T) {
	in := fullCycleInput()
	in.TableCards = nil
	in.Actions = map[int][]detect.Detection{
		1: actionDetections("fold"),
		2: actionDetections("fold"),
		3: actionDetections("fold"),
		4: actionDetections("fold"),
		5: actionDetections("fold"),
	}

	snap, err := NewProcessor(nil).Process(in)
	if err != nil {
		t.Fatalf("Process err: %v", err)
	}
	if snap.HeroHand != nil {
		t.Fatal("hero hand must not be evaluated without a flop")
	}
	if street, ok := snap.Street(); !ok || street != poker.Preflop {
		t.Fatalf("street = %v, %v, want preflop", street, ok)
	}
}

func TestProcessDeterministic(t *testing.T) {
	first, err := NewProcessor(nil).Process(fullCycleInput())
	if err != nil {
		t.Fatalf("first Process err: %v", err)
	}
	second, err := NewProcessor(nil).Process(fullCycleInput())
	if err != nil {
		t.Fatalf("second Process err: %v", err)
	}
	if !reflect.DeepEqual(first.Moves, second.Moves) {
		t.Fatalf("histories differ: %v vs %v", first.Moves, second.Moves)
	}
	if !reflect.DeepEqual(first.Seats, second.Seats) {
		t.Fatalf("seat maps differ: %v vs %v", first.Seats, second.Seats)
	}
}
