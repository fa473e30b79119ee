package recon

import (
	"fmt"
	"strings"

	"omaha-recon/poker"
)

// All reconciliation errors are cycle-scoped: the caller discards the
// cycle's partial state and starts the next sample fresh.

// WrongPlayerCountError reports a player count the seat rings cannot cover.
type WrongPlayerCountError struct {
	Count int
}

func (e *WrongPlayerCountError) Error() string {
	return fmt.Sprintf("wrong player count %d: supported range is 2..6", e.Count)
}

// InsufficientDataError reports a detection cycle that delivered fewer than
// the full six seat labels. Empty seats must arrive as the sentinel, never
// as a missing key.
type InsufficientDataError struct {
	Seats int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient seat data: got %d of %d seat labels", e.Seats, requiredSeats)
}

// InvalidPositionSequenceError reports a turn-order mismatch between the
// detected queues and the oracle's actual game order.
type InvalidPositionSequenceError struct {
	Street   poker.Street
	Actor    poker.Position
	HasActor bool
	Pending  []poker.Position
}

func (e *InvalidPositionSequenceError) Error() string {
	pending := make([]string, 0, len(e.Pending))
	for _, p := range e.Pending {
		pending = append(pending, p.String())
	}
	if !e.HasActor {
		return fmt.Sprintf(
			"position sequence error: hand is over but moves are still pending (street=%s pending=%s)",
			e.Street, strings.Join(pending, ","))
	}
	return fmt.Sprintf(
		"position sequence error: %s expected to act but has no moves (street=%s pending=%s)",
		e.Actor, e.Street, strings.Join(pending, ","))
}

// InvalidActionError reports a detected move the oracle's legality state
// refuses, pointing at a misclassified icon.
type InvalidActionError struct {
	Position poker.Position
	Move     poker.MoveType
	Street   poker.Street
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %s on %s for %s", e.Move, e.Street, e.Position)
}
